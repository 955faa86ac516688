package main

import (
	"errors"
	"fmt"
	"image"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/remeh/sizedwaitgroup"

	"github.com/cwbudde/algo-highlight/dsp/dither"
	"github.com/cwbudde/algo-highlight/dsp/filter/transfer"
	"github.com/cwbudde/algo-highlight/dsp/pad"
	"github.com/cwbudde/algo-highlight/dsp/spectrum"
	"github.com/cwbudde/algo-highlight/highlight"
	"github.com/cwbudde/algo-highlight/internal/imageio"
	"github.com/cwbudde/algo-highlight/stats/pixel"
)

// Suffixes of the optional diagnostic images.
const (
	spectrumSuffix = "-spectrum"
	responseSuffix = "-tf"
)

// coverageThreshold is the alpha above which a pixel counts as highlighted.
const coverageThreshold = 0.1

// job is one input image and where its overlay goes.
type job struct {
	input  string
	output string
}

// result summarizes one processed job.
type result struct {
	job
	rows, cols int
	bytes      uint64
	coverage   float64
	filter     string
	elapsed    time.Duration
	warnings   int
	err        error
}

// resolveJobs maps the positional arguments to jobs. Three arguments where
// the first is not a regular file are read as the DIR NAME EXT triple.
func resolveJobs(args []string, opts options) ([]job, error) {
	if opts.format != "" && !imageio.CanEncode(opts.format) {
		return nil, fmt.Errorf("%w: --format %q", imageio.ErrUnsupportedFormat, opts.format)
	}

	if len(args) == 3 && !isFile(args[0]) {
		in := imageio.InputPath(args[0], args[1], args[2])
		if isFile(in) {
			ext := outputExt(args[2], opts.format)
			dir := args[0]
			if opts.outDir != "" {
				dir = withSeparator(opts.outDir)
			}
			return []job{{input: in, output: imageio.OutputPath(dir, args[1], ext)}}, nil
		}
	}

	jobs := make([]job, 0, len(args))
	seen := make(map[string]bool, len(args))
	for _, arg := range args {
		if !isFile(arg) {
			return nil, fmt.Errorf("highlight: %s: not a regular file", arg)
		}
		if seen[arg] {
			continue
		}
		seen[arg] = true

		dir, name, ext := imageio.SplitPath(arg)
		if opts.outDir != "" {
			dir = withSeparator(opts.outDir)
		}
		jobs = append(jobs, job{
			input:  arg,
			output: imageio.OutputPath(dir, name, outputExt(ext, opts.format)),
		})
	}
	return jobs, nil
}

// outputExt picks the explicit format, else the input extension when it can
// be written, else png.
func outputExt(inputExt, format string) string {
	if format != "" {
		return strings.TrimPrefix(format, ".")
	}
	if imageio.CanEncode(inputExt) {
		return strings.TrimPrefix(inputExt, ".")
	}
	return "png"
}

func withSeparator(dir string) string {
	if strings.HasSuffix(dir, string(filepath.Separator)) || strings.HasSuffix(dir, "/") {
		return dir
	}
	return dir + string(filepath.Separator)
}

func isFile(path string) bool {
	fi, err := os.Stat(path)
	return err == nil && fi.Mode().IsRegular()
}

// batch runs the pipeline over a list of jobs.
type batch struct {
	cfg    highlight.Config
	opts   options
	logger *slog.Logger
}

// run processes jobs with at most opts.jobs in flight. Results keep the
// order of jobs; failures are joined into the returned error.
func (b *batch) run(jobs []job) ([]result, error) {
	if b.opts.outDir != "" {
		if err := os.MkdirAll(b.opts.outDir, 0o755); err != nil {
			return nil, err
		}
	}

	results := make([]result, len(jobs))
	swg := sizedwaitgroup.New(max(b.opts.jobs, 1))
	for i, j := range jobs {
		swg.Add()
		go func() {
			defer swg.Done()
			results[i] = b.process(j)
		}()
	}
	swg.Wait()

	var errs []error
	for _, res := range results {
		if res.err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", res.input, res.err))
		}
	}
	return results, errors.Join(errs...)
}

// process runs one job and logs its outcome.
func (b *batch) process(j job) result {
	start := time.Now()
	res := result{job: j}

	log := b.logger.With("input", j.input)
	res.err = b.highlight(j, &res, log)
	res.elapsed = time.Since(start)

	if res.err != nil {
		log.Error("highlight failed", "err", res.err)
		return res
	}
	log.Info("highlight written",
		"output", j.output,
		"size", fmt.Sprintf("%dx%d", res.cols, res.rows),
		"bytes", humanize.Bytes(res.bytes),
		"filter", res.filter,
		"coverage", fmt.Sprintf("%.1f%%", 100*res.coverage),
		"warnings", res.warnings,
		"elapsed", res.elapsed.Round(time.Millisecond),
	)
	return res
}

func (b *batch) highlight(j job, res *result, log *slog.Logger) error {
	gray, err := imageio.Load(j.input, b.opts.maxSide)
	if err != nil {
		return err
	}
	log.Debug("decoded", "rows", gray.Rows, "cols", gray.Cols)

	cfg, err := b.imageConfig(j.input, gray.Rows, gray.Cols, log)
	if err != nil {
		return err
	}

	rep, err := highlight.Run(gray, cfg)
	if err != nil {
		return err
	}
	for _, w := range rep.Warnings {
		log.Warn("pipeline warning", "warning", w)
	}
	res.warnings = len(rep.Warnings)
	res.rows, res.cols = rep.Overlay.Rows(), rep.Overlay.Cols()
	res.coverage = pixel.Coverage(rep.Overlay.Alpha, coverageThreshold)
	if cfg.Mode == highlight.ModeSpectral {
		res.filter = cfg.Filter.String()
	} else {
		res.filter = fmt.Sprintf("blur(%d, %g)", cfg.BlurSize, cfg.BlurSigma)
	}

	out, err := b.render(j.output, rep.Overlay)
	if err != nil {
		return err
	}
	if err := imageio.Save(j.output, out); err != nil {
		return err
	}
	if fi, err := os.Stat(j.output); err == nil {
		res.bytes = uint64(fi.Size())
	}

	return b.diagnostics(j, cfg, rep, log)
}

// render picks the 16-bit overlay, or an 8-bit one with a dithered alpha
// channel for --depth 8 and formats that only store 8 bits.
func (b *batch) render(output string, o highlight.Overlay) (image.Image, error) {
	if b.opts.depth == 16 && !strings.EqualFold(filepath.Ext(output), ".bmp") {
		return o, nil
	}
	dt, err := dither.ParseDitherType(b.opts.dither)
	if err != nil {
		return nil, err
	}
	q, err := dither.NewQuantizer(dither.WithDitherType(dt), dither.WithSeed(b.opts.seed))
	if err != nil {
		return nil, err
	}
	return o.ToNRGBA(q)
}

// imageConfig derives the cutoff from the scan resolution when
// --feature-freq is set, see featureCutoff.
func (b *batch) imageConfig(input string, rows, cols int, log *slog.Logger) (highlight.Config, error) {
	cfg := b.cfg
	if b.opts.featureFreq <= 0 || cfg.Mode != highlight.ModeSpectral {
		return cfg, nil
	}

	dpi := b.opts.dpi
	if dpi <= 0 {
		var err error
		if dpi, err = imageio.DPI(input); err != nil {
			return cfg, fmt.Errorf("--feature-freq needs --dpi: %w", err)
		}
	}
	cutoff, err := featureCutoff(dpi, rows, cols, b.opts.featureFreq)
	if err != nil {
		return cfg, err
	}
	cfg.Filter.Cutoff = cutoff
	log.Debug("cutoff from resolution", "dpi", dpi, "cutoff", cutoff)
	return cfg, cfg.Validate()
}

// featureCutoff converts a feature frequency into a cutoff radius using the
// column count of the zero-padded square canvas, as the original scripts do.
func featureCutoff(dpi float64, rows, cols int, featureFreq float64) (float64, error) {
	_, sq := pad.ZeroSquareSize(rows, cols)
	return transfer.CutoffFromDPI(dpi, sq, featureFreq)
}

func (b *batch) diagnostics(j job, cfg highlight.Config, rep highlight.Report, log *slog.Logger) error {
	if b.opts.spectrum && rep.Spectrum.Rows > 0 {
		path := imageio.SiblingPath(j.output, spectrumSuffix, "png")
		img := spectrum.LogMagnitudeImage(rep.Spectrum, true)
		if err := imageio.Save(path, imageio.GrayImage(img)); err != nil {
			return err
		}
		log.Debug("spectrum written", "output", path)
	}
	if b.opts.response && cfg.Mode == highlight.ModeSpectral {
		t, err := cfg.Filter.Build()
		if err != nil {
			return err
		}
		path := imageio.SiblingPath(j.output, responseSuffix, "png")
		img := transfer.Response(t, 2*rep.Padded.Rows, 2*rep.Padded.Cols)
		if err := imageio.Save(path, imageio.GrayImage(img)); err != nil {
			return err
		}
		log.Debug("response written", "output", path)
	}
	return nil
}

// printSummary writes one table row per job.
func printSummary(w io.Writer, results []result) {
	if len(results) < 2 {
		return
	}
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "Input\tOutput\tSize\tCoverage\tTime")
	for _, r := range results {
		if r.err != nil {
			fmt.Fprintf(tw, "%s\t-\t-\t-\t%s\n", r.input, "failed")
			continue
		}
		fmt.Fprintf(tw, "%s\t%s\t%dx%d\t%.1f%%\t%s\n",
			r.input, r.output, r.cols, r.rows, 100*r.coverage, r.elapsed.Round(time.Millisecond))
	}
	tw.Flush()
}
