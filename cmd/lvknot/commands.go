package main

import (
	"fmt"
	"strings"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvknot/atlas"
	"github.com/katalvlaran/lvknot/braid"
	"github.com/katalvlaran/lvknot/chord"
	"github.com/katalvlaran/lvknot/diagram"
	"github.com/katalvlaran/lvknot/jones"
)

func (a *app) jones(cmd *cobra.Command, d diagram.Diagram) error {
	v, err := jones.Polynomial(d,
		jones.WithContext(cmd.Context()),
		jones.WithLogger(a.logger),
		jones.WithParallelDepth(a.parallelDepth),
	)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(cmd.OutOrStdout(), v)
	return err
}

func newJonesCmd(a *app) *cobra.Command {
	var (
		file    string
		metrics bool
	)
	cmd := &cobra.Command{
		Use:   "jones [NAME]",
		Short: "Print the Jones polynomial of a diagram",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := loadDiagram(file, args)
			if err != nil {
				return err
			}
			if err := a.jones(cmd, d); err != nil {
				return err
			}
			if metrics {
				return writeMetrics(cmd)
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&file, "file", "f", "", "YAML diagram file")
	cmd.Flags().BoolVar(&metrics, "metrics", false, "print evaluation counters after the result")

	return cmd
}

func newAtlasCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "atlas [NAME]",
		Short: "List the built-in diagrams, or print one",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				_, err := fmt.Fprintln(cmd.OutOrStdout(), strings.Join(atlas.Names(), "\n"))
				return err
			}
			d, err := atlas.Lookup(args[0])
			if err != nil {
				return err
			}
			return a.emit(cmd.OutOrStdout(), d)
		},
	}
}

func newRenderCmd(a *app) *cobra.Command {
	var file string
	cmd := &cobra.Command{
		Use:   "render [NAME]",
		Short: "Draw a diagram in the selected --format",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := loadDiagram(file, args)
			if err != nil {
				return err
			}
			return a.emit(cmd.OutOrStdout(), d)
		},
	}
	cmd.Flags().StringVarP(&file, "file", "f", "", "YAML diagram file")

	return cmd
}

func newChordCmd(a *app) *cobra.Command {
	var (
		word      []int
		withJones bool
	)
	cmd := &cobra.Command{
		Use:   "chord --word L0,L1,...",
		Short: "Convert a chord word into a singular diagram",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			c := chord.New(word)
			if c.IsDegenerate() {
				a.logger.Warn("degenerate chord word", "word", word, "err", chord.Validate(word))
			}
			d, err := c.ToDiagram()
			if err != nil {
				return err
			}
			if withJones {
				return a.jones(cmd, d)
			}
			return a.emit(cmd.OutOrStdout(), d)
		},
	}
	cmd.Flags().IntSliceVar(&word, "word", nil, "chord labels in order, each appearing twice")
	cmd.Flags().BoolVar(&withJones, "jones", false, "print the Jones polynomial instead of the diagram")

	return cmd
}

func newBraidCmd(a *app) *cobra.Command {
	var (
		strands   int
		word      []int
		simplify  bool
		withJones bool
	)
	cmd := &cobra.Command{
		Use:   "braid --strands N --word G1,G2,...",
		Short: "Draw a braid word, or evaluate its closure",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			b, err := braid.New(strands, word...)
			if err != nil {
				return err
			}
			if simplify {
				b = b.Simplify()
			}
			if !withJones {
				_, err := fmt.Fprint(cmd.OutOrStdout(), b)
				return err
			}
			d, err := b.Closure()
			if err != nil {
				return err
			}
			return a.jones(cmd, d)
		},
	}
	cmd.Flags().IntVar(&strands, "strands", 2, "number of strands")
	cmd.Flags().IntSliceVar(&word, "word", nil, "generators; g > 0 positive, g < 0 negative, 0 identity")
	cmd.Flags().BoolVar(&simplify, "simplify", false, "cancel adjacent inverse generators first")
	cmd.Flags().BoolVar(&withJones, "jones", false, "print the Jones polynomial of the closure")

	return cmd
}

// writeMetrics prints every lvknot_ metric family from the default registry
// in the Prometheus text exposition format.
func writeMetrics(cmd *cobra.Command) error {
	families, err := prometheus.DefaultGatherer.Gather()
	if err != nil {
		return fmt.Errorf("gather metrics: %w", err)
	}
	for _, mf := range families {
		if !strings.HasPrefix(mf.GetName(), "lvknot_") {
			continue
		}
		if _, err := expfmt.MetricFamilyToText(cmd.OutOrStdout(), mf); err != nil {
			return fmt.Errorf("write metric %s: %w", mf.GetName(), err)
		}
	}

	return nil
}
