package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvknot/atlas"
	"github.com/katalvlaran/lvknot/diagram"
	"github.com/katalvlaran/lvknot/internal/config"
	"github.com/katalvlaran/lvknot/render"
)

// app carries the settings shared by every subcommand once flags and the
// config file have been merged.
type app struct {
	configDir     string
	format        string
	logLevel      string
	parallelDepth int

	logger *slog.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:   "lvknot",
		Short: "Knot diagram toolkit",
		Long: `Evaluate Jones polynomials and render oriented knot diagrams.

Diagrams come from the built-in atlas (see 'lvknot atlas'), from a YAML
file written by 'lvknot render --format yaml', from a chord word, or from
the closure of a braid word.

Settings are read from lvknot.yaml in the --config directory; flags win.

Examples:
  lvknot jones trefoil
  lvknot render hopf --format mermaid
  lvknot chord --word 0,1,0,1 --jones
  lvknot braid --strands 3 --word 1,-2,1,-2`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd)
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&a.configDir, "config", ".", "directory holding lvknot.yaml")
	pf.StringVar(&a.format, "format", config.FormatText, "diagram output: text, mermaid or yaml")
	pf.StringVar(&a.logLevel, "log-level", "warn", "log level: debug, info, warn or error")
	pf.IntVar(&a.parallelDepth, "parallel", 0, "evaluate Jones branches concurrently down to this depth")

	root.AddCommand(
		newJonesCmd(a),
		newAtlasCmd(a),
		newRenderCmd(a),
		newChordCmd(a),
		newBraidCmd(a),
	)

	return root
}

// setup merges lvknot.yaml under the explicitly set flags and builds the
// logger.
func (a *app) setup(cmd *cobra.Command) error {
	cfg, err := config.Load(a.configDir)
	if err != nil {
		return err
	}
	flags := cmd.Flags()
	if cfg.Format != "" && !flags.Changed("format") {
		a.format = cfg.Format
	}
	if cfg.LogLevel != "" && !flags.Changed("log-level") {
		a.logLevel = cfg.LogLevel
	}
	if cfg.ParallelDepth != 0 && !flags.Changed("parallel") {
		a.parallelDepth = cfg.ParallelDepth
	}

	merged := config.Config{ParallelDepth: a.parallelDepth, LogLevel: a.logLevel, Format: a.format}
	if err := merged.Validate(); err != nil {
		return err
	}
	level, err := config.ParseLevel(a.logLevel)
	if err != nil {
		return err
	}
	a.logger = slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))
	a.logger.Debug("configuration loaded",
		"dir", a.configDir, "format", a.format, "parallel", a.parallelDepth)

	return nil
}

// loadDiagram returns the diagram in file if set, else the atlas entry
// named by args[0].
func loadDiagram(file string, args []string) (diagram.Diagram, error) {
	switch {
	case file != "" && len(args) > 0:
		return diagram.Diagram{}, errors.New("give either an atlas name or --file, not both")
	case file != "":
		data, err := os.ReadFile(file)
		if err != nil {
			return diagram.Diagram{}, fmt.Errorf("read diagram: %w", err)
		}
		return render.ParseYAML(data)
	case len(args) == 1:
		return atlas.Lookup(args[0])
	default:
		return diagram.Diagram{}, errors.New("need an atlas name or --file")
	}
}

// emit writes d in the selected output format.
func (a *app) emit(w io.Writer, d diagram.Diagram) error {
	switch a.format {
	case config.FormatMermaid:
		_, err := io.WriteString(w, render.Mermaid(d))
		return err
	case config.FormatYAML:
		out, err := render.YAML(d)
		if err != nil {
			return err
		}
		_, err = io.WriteString(w, out)
		return err
	default:
		_, err := io.WriteString(w, render.Text(d))
		return err
	}
}
