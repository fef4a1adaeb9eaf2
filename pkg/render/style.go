package render

import (
	"image/color"

	"golang.org/x/image/colornames"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
)

// Style carries the presentation choices for one plot.
type Style struct {
	Title string

	XUnit string
	YUnit string

	// Axis limits. Nil leaves the limit at the data range.
	XMin *int
	XMax *int
	YMin *int
	YMax *int

	// Grayscale selects the black and white palette.
	Grayscale bool
}

type palette struct {
	background color.Color
	grid       color.Color
	lines      []color.Color
	width      vg.Length
	dashed     bool
}

// analytical follows matplotlib's "bmh" colour cycle.
var analytical = palette{
	background: colornames.Whitesmoke,
	grid:       colornames.Darkgray,
	lines: []color.Color{
		color.RGBA{R: 0x34, G: 0x8a, B: 0xbd, A: 0xff},
		color.RGBA{R: 0xa6, G: 0x06, B: 0x28, A: 0xff},
		color.RGBA{R: 0x7a, G: 0x68, B: 0xa6, A: 0xff},
		color.RGBA{R: 0x46, G: 0x78, B: 0x21, A: 0xff},
		color.RGBA{R: 0xd5, G: 0x5e, B: 0x00, A: 0xff},
		color.RGBA{R: 0xcc, G: 0x79, B: 0xa7, A: 0xff},
		color.RGBA{R: 0x56, G: 0xb4, B: 0xe9, A: 0xff},
		color.RGBA{R: 0x00, G: 0x9e, B: 0x73, A: 0xff},
		color.RGBA{R: 0xf0, G: 0xe4, B: 0x42, A: 0xff},
		color.RGBA{R: 0x00, G: 0x72, B: 0xb2, A: 0xff},
	},
	width: vg.Points(2),
}

var grayscale = palette{
	background: colornames.White,
	grid:       colornames.Lightgray,
	lines: []color.Color{
		color.Gray{Y: 0x00},
		color.Gray{Y: 0x66},
		color.Gray{Y: 0x99},
		color.Gray{Y: 0xb2},
	},
	width:  vg.Points(1.5),
	dashed: true,
}

func paletteFor(gray bool) palette {
	if gray {
		return grayscale
	}
	return analytical
}

// styleLine colours the i-th series. Grayscale lines also cycle dash
// patterns once the grey levels repeat.
func (p palette) styleLine(l *plotter.Line, i int) {
	l.LineStyle.Color = p.lines[i%len(p.lines)]
	l.LineStyle.Width = p.width
	if p.dashed {
		l.LineStyle.Dashes = plotutil.Dashes(i / len(p.lines))
	}
}
