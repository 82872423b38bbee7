package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/midbel/lcharts/dash"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var errInput = errors.New("no chart description and no data file given")

type options struct {
	output  string
	title   string
	width   int
	height  int
	verbose bool

	kind  string
	data  []string
	sheet string
	xcol  int
	ycols []int
	sum   bool
	xdom  []float32
	ydom  []float32
}

func main() {
	var opts options
	rootCmd := &cobra.Command{
		Use:   "draw [chart.toml]",
		Short: "Draw a SVG chart from a chart description or from data files",
		Long: `draw renders bars, lines, areas and scatter plots as SVG documents.
The chart is described by a TOML file, or by the flags for a chart made of
CSV/XLSX files sharing the same axes.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, args, opts)
		},
		SilenceUsage: true,
	}

	rootCmd.Flags().StringVarP(&opts.output, "output", "o", "", "Output file path (default: file of the chart description, or stdout)")
	rootCmd.Flags().StringVar(&opts.title, "title", "", "Chart title")
	rootCmd.Flags().IntVar(&opts.width, "width", 0, "Chart width")
	rootCmd.Flags().IntVar(&opts.height, "height", 0, "Chart height")
	rootCmd.Flags().BoolVarP(&opts.verbose, "verbose", "v", false, "Print debug messages")

	rootCmd.Flags().StringVarP(&opts.kind, "type", "t", dash.RenderVBar, "View type: vbar, hbar, line, area, scatter")
	rootCmd.Flags().StringSliceVarP(&opts.data, "data", "d", nil, "Data files, one view per file")
	rootCmd.Flags().StringVar(&opts.sheet, "sheet", "", "Sheet of XLSX data files")
	rootCmd.Flags().IntVar(&opts.xcol, "x", 0, "Index of the x column")
	rootCmd.Flags().IntSliceVar(&opts.ycols, "y", []int{1}, "Indices of the y columns")
	rootCmd.Flags().BoolVar(&opts.sum, "sum", false, "Sum the y columns")
	rootCmd.Flags().Float32SliceVar(&opts.xdom, "xdom", nil, "Domain of the x values (min,max)")
	rootCmd.Flags().Float32SliceVar(&opts.ydom, "ydom", nil, "Domain of the y values (min,max)")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, args []string, opts options) error {
	log.SetFormatter(&log.TextFormatter{FullTimestamp: true})
	log.SetOutput(os.Stderr)
	if opts.verbose {
		log.SetLevel(log.DebugLevel)
	}

	cfg, err := loadConfig(args, opts)
	if err != nil {
		return err
	}
	flags := cmd.Flags()
	if flags.Changed("title") {
		cfg.Title = opts.title
	}
	if flags.Changed("width") {
		cfg.Width = opts.width
	}
	if flags.Changed("height") {
		cfg.Height = opts.height
	}
	log.WithFields(log.Fields{
		"width":  cfg.Width,
		"height": cfg.Height,
		"views":  len(cfg.Views),
	}).Debug("building chart")

	ch, err := cfg.Build()
	if err != nil {
		return fmt.Errorf("building chart failed: %w", err)
	}
	file := outputPath(args, opts, cfg)
	if file == "" {
		return renderTo(os.Stdout, ch.Render)
	}
	log.Debugf("saving chart to %s", file)
	return ch.Save(file)
}

// outputPath gives the file the chart is written to. The -o flag wins over the
// file of a chart description. An empty path means stdout.
func outputPath(args []string, opts options, cfg dash.Config) string {
	if opts.output != "" || len(args) == 0 {
		return opts.output
	}
	return cfg.File
}

func loadConfig(args []string, opts options) (dash.Config, error) {
	if len(args) > 0 {
		log.Debugf("loading chart description from %s", args[0])
		return dash.Load(args[0])
	}
	if len(opts.data) == 0 {
		return dash.Config{}, errInput
	}
	cfg := dash.Default()
	cfg.X.Domain = opts.xdom
	cfg.Y.Domain = opts.ydom
	for _, file := range opts.data {
		log.Debugf("using data file %s", file)
		f := dash.File{
			Type:  opts.kind,
			Path:  file,
			Sheet: opts.sheet,
			X:     opts.xcol,
			Y:     opts.ycols,
			Sum:   opts.sum,
		}
		cfg.Views = append(cfg.Views, f)
	}
	return cfg, nil
}

func renderTo(w io.Writer, render func(io.Writer) error) error {
	if err := render(w); err != nil {
		log.Errorf("rendering chart failed: %s", err)
		return err
	}
	return nil
}
