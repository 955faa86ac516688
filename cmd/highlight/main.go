// Command highlight writes translucent structure overlays for images.
//
// Usage:
//
//	highlight [flags] FILE...
//	highlight [flags] DIR NAME EXT
//
// The second form reads DIR+NAME+"."+EXT and writes
// DIR+NAME+"-highlight."+EXT. File arguments produce the same
// "-highlight" sibling next to each input, or in --out-dir.
//
// Examples:
//
//	highlight board.png
//	highlight --filter exponential --cutoff 4 scans/*.tiff
//	highlight --mode simple --tint 1,0.3,0.2 imgs/ board png
//	highlight --feature-freq 1.5 --dpi 300 board.png
//	highlight kinds
package main

import (
	"fmt"
	"log/slog"
	"os"
	"runtime"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/cwbudde/algo-highlight/dsp/dither"
	"github.com/cwbudde/algo-highlight/dsp/fft2d"
	"github.com/cwbudde/algo-highlight/dsp/filter/transfer"
	"github.com/cwbudde/algo-highlight/highlight"
)

// options mirrors the command-line flags before they are validated into a
// highlight.Config.
type options struct {
	filter      string
	cutoff      float64
	order       float64
	dpi         float64
	featureFreq float64
	tint        string
	border      string
	mode        string
	backend     string
	workers     int
	jobs        int
	maxSide     int
	blurSize    int
	blurSigma   float64
	outDir      string
	format      string
	depth       int
	dither      string
	seed        uint64
	spectrum    bool
	response    bool
	verbose     bool
}

func defaultOptions() options {
	return options{
		filter:    transfer.DefaultKind.String(),
		cutoff:    transfer.DefaultCutoff,
		order:     transfer.DefaultOrder,
		tint:      highlight.DefaultTint.String(),
		border:    highlight.BorderReference.String(),
		mode:      highlight.ModeSpectral.String(),
		backend:   fft2d.BackendAuto.String(),
		workers:   1,
		jobs:      runtime.NumCPU(),
		blurSize:  highlight.DefaultBlurSize,
		blurSigma: highlight.DefaultBlurSigma,
		depth:     16,
		dither:    dither.DitherNone.String(),
		seed:      1,
	}
}

func (o *options) register(fs *pflag.FlagSet) {
	fs.StringVarP(&o.filter, "filter", "f", o.filter, "transfer function: none, ideal, butterworth-low, butterworth-high, exponential")
	fs.Float64VarP(&o.cutoff, "cutoff", "k", o.cutoff, "cutoff radius in frequency pixels")
	fs.Float64VarP(&o.order, "order", "n", o.order, "Butterworth order")
	fs.Float64Var(&o.dpi, "dpi", 0, "scan resolution for --feature-freq (default: TIFF metadata)")
	fs.Float64Var(&o.featureFreq, "feature-freq", 0, "derive the cutoff from a feature frequency in cycles/mm, measured on the zero-padded canvas width")
	fs.StringVar(&o.tint, "tint", o.tint, "overlay color as r,g,b in [0,1]")
	fs.StringVar(&o.border, "border", o.border, "border offset sampling: reference or all")
	fs.StringVar(&o.mode, "mode", o.mode, "pipeline: spectral or simple")
	fs.StringVar(&o.backend, "backend", o.backend, "FFT backend: auto, gonum, godsp")
	fs.IntVarP(&o.workers, "workers", "w", o.workers, "goroutines per transfer pass")
	fs.IntVarP(&o.jobs, "jobs", "j", o.jobs, "images processed concurrently")
	fs.IntVar(&o.maxSide, "max-size", 0, "downscale inputs so no side exceeds this (0 keeps size)")
	fs.IntVar(&o.blurSize, "blur-size", o.blurSize, "Gaussian kernel length for --mode simple")
	fs.Float64Var(&o.blurSigma, "blur-sigma", o.blurSigma, "Gaussian sigma for --mode simple (<=0 derives it from the size)")
	fs.StringVarP(&o.outDir, "out-dir", "o", "", "write outputs here instead of next to the inputs")
	fs.StringVar(&o.format, "format", "", "output format: png, tiff, bmp (default: input extension, else png)")
	fs.IntVar(&o.depth, "depth", o.depth, "bits per channel: 16, or 8 with error-diffused alpha (bmp is always 8)")
	fs.StringVar(&o.dither, "dither", o.dither, "noise added before 8-bit quantization: none, rectangular, triangular, gaussian")
	fs.Uint64Var(&o.seed, "seed", o.seed, "dither noise seed")
	fs.BoolVar(&o.spectrum, "spectrum", false, "also write the filtered log-magnitude spectrum")
	fs.BoolVar(&o.response, "response", false, "also write the transfer function response")
	fs.BoolVarP(&o.verbose, "verbose", "v", false, "debug logging")
}

// config validates the flag values into a pipeline config.
func (o options) config() (highlight.Config, error) {
	cfg := highlight.DefaultConfig()

	var err error
	if cfg.Mode, err = highlight.ParseMode(o.mode); err != nil {
		return cfg, err
	}
	if cfg.Filter.Kind, err = transfer.ParseKind(o.filter); err != nil {
		return cfg, err
	}
	cfg.Filter.Cutoff = o.cutoff
	cfg.Filter.Order = o.order
	if cfg.Tint, err = highlight.ParseTint(o.tint); err != nil {
		return cfg, err
	}
	if cfg.Border, err = highlight.ParseBorderMode(o.border); err != nil {
		return cfg, err
	}
	if cfg.Backend, err = fft2d.ParseBackend(o.backend); err != nil {
		return cfg, err
	}
	cfg.Workers = max(o.workers, 1)
	cfg.BlurSize = o.blurSize
	cfg.BlurSigma = o.blurSigma
	cfg.KeepSpectrum = o.spectrum

	if o.depth != 8 && o.depth != 16 {
		return cfg, fmt.Errorf("%w: depth %d must be 8 or 16", highlight.ErrInvalidConfig, o.depth)
	}
	if _, err := dither.ParseDitherType(o.dither); err != nil {
		return cfg, err
	}
	return cfg, cfg.Validate()
}

func newLogger(verbose bool) *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}

func newRootCmd() *cobra.Command {
	opts := defaultOptions()

	cmd := &cobra.Command{
		Use:   "highlight [flags] FILE... | DIR NAME EXT",
		Short: "Write translucent structure overlays for images",
		Long: "highlight low-pass filters each image, keeps where the filtered image\n" +
			"rises above the original, and writes that mask as the alpha channel of\n" +
			"a constant-color overlay named <name>-highlight.<ext>.",
		Args:         cobra.MinimumNArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opts.config()
			if err != nil {
				return err
			}
			jobs, err := resolveJobs(args, opts)
			if err != nil {
				return err
			}

			b := &batch{
				cfg:    cfg,
				opts:   opts,
				logger: newLogger(opts.verbose),
			}
			results, err := b.run(jobs)
			printSummary(cmd.OutOrStdout(), results)
			return err
		},
	}
	opts.register(cmd.Flags())
	cmd.AddCommand(newKindsCmd())
	return cmd
}

func newKindsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "kinds",
		Short: "List transfer function kinds",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "Kind\tGain(d)")
			fmt.Fprintln(w, "----\t-------")
			for _, k := range transfer.Kinds() {
				fmt.Fprintf(w, "%s\t%s\n", k, gainFormula(k))
			}
			w.Flush()
		},
	}
}

func gainFormula(k transfer.Kind) string {
	switch k {
	case transfer.KindNone:
		return "1"
	case transfer.KindIdeal:
		return "1 if d < k else 0"
	case transfer.KindButterworthLow:
		return "1/(1+(d/k)^n)"
	case transfer.KindButterworthHigh:
		return "1 - 1/(1+(d/k)^n)"
	case transfer.KindExponential:
		return "exp(-d^2/(2k^2))"
	default:
		return "?"
	}
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
