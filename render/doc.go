// Package render turns a diagram.Diagram into text for people and tools:
// a Mermaid flowchart, a plain listing, and a YAML document.
//
// Rendering is read-only; no function here changes or re-validates the
// diagram it is given.
package render
