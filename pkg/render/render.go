// Package render draws selected series as an X/Y line plot image.
package render

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"

	"github.com/ccollicutt/graphdrawer/pkg/selector"
)

// Defaults for the output image.
const (
	DefaultOutput = "graph.png"
	DefaultDPI    = 600
	DefaultWidth  = 8 * vg.Inch
	DefaultHeight = 6 * vg.Inch
)

var (
	// ErrEmptySeries indicates a Y series has no point paired with X.
	ErrEmptySeries = errors.New("no points to plot")

	// ErrInvalidLimits indicates axis limits leave an empty range.
	ErrInvalidLimits = errors.New("axis minimum is not below maximum")
)

// Renderer writes plots to a fixed output file.
type Renderer struct {
	output string
	dpi    int
	width  vg.Length
	height vg.Length
	logger *slog.Logger
}

// Option configures a Renderer.
type Option func(*Renderer)

// WithOutput sets the image path. The extension picks the format.
func WithOutput(path string) Option {
	return func(r *Renderer) {
		if path != "" {
			r.output = path
		}
	}
}

// WithDPI sets the raster resolution.
func WithDPI(dpi int) Option {
	return func(r *Renderer) {
		if dpi > 0 {
			r.dpi = dpi
		}
	}
}

// WithSize sets the image dimensions.
func WithSize(width, height vg.Length) Option {
	return func(r *Renderer) {
		if width > 0 && height > 0 {
			r.width = width
			r.height = height
		}
	}
}

// WithLogger sets the logger.
func WithLogger(l *slog.Logger) Option {
	return func(r *Renderer) {
		if l != nil {
			r.logger = l
		}
	}
}

// New creates a Renderer with default settings.
func New(opts ...Option) *Renderer {
	r := &Renderer{
		output: DefaultOutput,
		dpi:    DefaultDPI,
		width:  DefaultWidth,
		height: DefaultHeight,
		logger: slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Render draws sel and writes the image, replacing any previous one.
// It returns the written path.
func (r *Renderer) Render(ctx context.Context, sel *selector.Selection, style Style) (string, error) {
	p, err := Build(sel, style)
	if err != nil {
		return "", err
	}

	if err := ctx.Err(); err != nil {
		return "", err
	}

	if err := r.save(p); err != nil {
		return "", fmt.Errorf("writing plot %s: %w", r.output, err)
	}

	r.logger.Info("plot written", "path", r.output, "series", len(sel.Y), "dpi", r.dpi)
	return r.output, nil
}

// Build assembles the plot without writing it.
//
// A single Y series labels the Y axis; several Y series get a legend instead.
// Axis ranges start at the exact data range and user limits override them.
func Build(sel *selector.Selection, style Style) (*plot.Plot, error) {
	if len(sel.Y) == 0 {
		return nil, fmt.Errorf("%w: no Y series", ErrEmptySeries)
	}

	pal := paletteFor(style.Grayscale)

	p := plot.New()
	p.Title.Text = style.Title
	p.BackgroundColor = pal.background
	p.Legend.Top = true

	grid := plotter.NewGrid()
	grid.Vertical.Color = pal.grid
	grid.Horizontal.Color = pal.grid
	p.Add(grid)

	for i, y := range sel.Y {
		xys, err := pairs(sel.X.Values, y.Values)
		if err != nil {
			return nil, fmt.Errorf("series %q: %w", y.Name, err)
		}

		line, err := plotter.NewLine(xys)
		if err != nil {
			return nil, fmt.Errorf("series %q: %w", y.Name, err)
		}
		pal.styleLine(line, i)
		p.Add(line)

		if len(sel.Y) > 1 {
			p.Legend.Add(y.Name, line)
		}
	}

	if len(sel.Y) == 1 {
		p.Y.Label.Text = withUnit(sel.Y[0].Name, style.YUnit)
	}
	p.X.Label.Text = withUnit(sel.X.Name, style.XUnit)

	if err := applyLimits(p, style); err != nil {
		return nil, err
	}

	return p, nil
}

// pairs zips x and y up to the shorter length.
func pairs(x, y []float64) (plotter.XYs, error) {
	n := min(len(x), len(y))
	if n == 0 {
		return nil, ErrEmptySeries
	}
	xys := make(plotter.XYs, n)
	for i := range xys {
		xys[i].X = x[i]
		xys[i].Y = y[i]
	}
	return xys, nil
}

func withUnit(label, unit string) string {
	if unit == "" {
		return label
	}
	return label + " (" + unit + ")"
}

func applyLimits(p *plot.Plot, style Style) error {
	setLimit(&p.X.Min, style.XMin)
	setLimit(&p.X.Max, style.XMax)
	setLimit(&p.Y.Min, style.YMin)
	setLimit(&p.Y.Max, style.YMax)

	if p.X.Min >= p.X.Max && (style.XMin != nil || style.XMax != nil) {
		return fmt.Errorf("x: %w (%g >= %g)", ErrInvalidLimits, p.X.Min, p.X.Max)
	}
	if p.Y.Min >= p.Y.Max && (style.YMin != nil || style.YMax != nil) {
		return fmt.Errorf("y: %w (%g >= %g)", ErrInvalidLimits, p.Y.Min, p.Y.Max)
	}
	return nil
}

func setLimit(dst *float64, v *int) {
	if v != nil {
		*dst = float64(*v)
	}
}

func (r *Renderer) save(p *plot.Plot) error {
	if ext := strings.ToLower(filepath.Ext(r.output)); ext != ".png" {
		return p.Save(r.width, r.height, r.output)
	}

	c := vgimg.NewWith(vgimg.UseWH(r.width, r.height), vgimg.UseDPI(r.dpi))
	p.Draw(draw.New(c))

	f, err := os.Create(r.output) // #nosec G304 -- output path is user configuration
	if err != nil {
		return err
	}
	if _, err := (vgimg.PngCanvas{Canvas: c}).WriteTo(f); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}
