// SPDX-License-Identifier: MIT
// Package poly: sentinel errors.
//
// Only constructors return errors. Arithmetic on valid values is total.

package poly

import "errors"

var (
	// ErrBadRoot indicates a root index smaller than 1 was supplied to New.
	ErrBadRoot = errors.New("poly: root index must be a positive integer")
)
