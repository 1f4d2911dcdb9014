package report_chart

import (
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"time"

	storage "sample-report/internal/infra/fs"
	logging "sample-report/internal/infra/log"
	"sample-report/internal/series"

	"go.uber.org/zap"
)

const (
	DefaultOutputPath = "images/sample-report-chart.png"
	DefaultTitle      = "Sample Trading Performance"
	DefaultDPI        = 150.0
	DefaultWidthIn    = 8.0
	DefaultHeightIn   = 4.5
)

var (
	// ErrCreateDir means the output directory could not be created.
	ErrCreateDir = errors.New("failed to create output directory")
	// ErrWriteImage means the image could not be rendered to disk.
	ErrWriteImage = errors.New("failed to write chart image")
)

// Options is everything Generate needs. DefaultOptions reproduces the
// fixed sample report.
type Options struct {
	OutputPath string
	Figure     Figure
	Series     series.Params
}

func DefaultOptions() Options {
	return Options{
		OutputPath: DefaultOutputPath,
		Figure: Figure{
			Title:    DefaultTitle,
			DPI:      DefaultDPI,
			WidthIn:  DefaultWidthIn,
			HeightIn: DefaultHeightIn,
		},
		Series: series.DefaultParams(),
	}
}

// Result describes a written chart.
type Result struct {
	Path     string
	Size     int64
	Width    int
	Height   int
	Series   *series.Series
	Summary  series.Summary
	Duration time.Duration
}

// Generate simulates the equity curve, renders it and writes the PNG to
// opts.OutputPath, replacing any previous file. Failures are returned as is;
// nothing is retried.
func Generate(opts Options) (*Result, error) {
	start := time.Now()

	if opts.Figure.DPI <= 0 || opts.Figure.WidthIn <= 0 || opts.Figure.HeightIn <= 0 {
		return nil, fmt.Errorf("invalid figure size %gx%g in at %g dpi", opts.Figure.WidthIn, opts.Figure.HeightIn, opts.Figure.DPI)
	}

	if err := storage.EnsureDir(filepath.Dir(opts.OutputPath)); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrCreateDir, err)
	}

	s, err := series.Generate(opts.Series)
	if err != nil {
		return nil, err
	}

	size, width, height, err := render(opts, s)
	if err != nil {
		return nil, err
	}

	res := &Result{
		Path:     opts.OutputPath,
		Size:     size,
		Width:    width,
		Height:   height,
		Series:   s,
		Summary:  series.Summarize(s),
		Duration: time.Since(start),
	}

	logging.LogInfo("Report chart generated",
		zap.String("filename", res.Path),
		zap.Int64("fileSize", res.Size),
		zap.Int("width", res.Width),
		zap.Int("height", res.Height),
		zap.Int("points", len(s.Equity)),
		zap.Int64("duration_ms", res.Duration.Milliseconds()))
	logging.LogDebug("Report summary",
		zap.Int("trades", res.Summary.TotalTrades),
		zap.Float64("winRate", res.Summary.WinRate),
		zap.Float64("profitFactor", res.Summary.ProfitFactor),
		zap.Float64("expectancy", res.Summary.Expectancy),
		zap.Float64("maxDrawdown", res.Summary.MaxDrawdown),
		zap.Float64("finalEquity", res.Summary.FinalEquity))

	return res, nil
}

// render draws s and writes it. The canvas is released on every path.
func render(opts Options, s *series.Series) (int64, int, int, error) {
	cv, err := newCanvas(opts.Figure)
	if err != nil {
		return 0, 0, 0, err
	}
	defer cv.Close()

	cv.draw(opts.Figure, s)
	img := cv.Image()

	size, err := storage.WriteImage(opts.OutputPath, func(w io.Writer) error {
		return encodePNG(w, img, opts.Figure.DPI)
	})
	if err != nil {
		return 0, 0, 0, fmt.Errorf("%w: %w", ErrWriteImage, err)
	}

	b := img.Bounds()
	return size, b.Dx(), b.Dy(), nil
}
