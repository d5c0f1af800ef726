package appicon

import (
	"fmt"
	"image/color"
	"io"
	"math"

	svg "github.com/ajstarks/svgo/float"
)

// errWriter remembers the first write error so it can be reported after
// svgo, which ignores write errors, has finished.
type errWriter struct {
	w   io.Writer
	err error
}

func (ew *errWriter) Write(p []byte) (int, error) {
	if ew.err != nil {
		return 0, ew.err
	}
	n, err := ew.w.Write(p)
	ew.err = err
	return n, err
}

// EncodeSVG writes the icon as an SVG document with a size×size canvas.
// size must be positive and finite.
// It uses the same layout and palette as Render.
func EncodeSVG(w io.Writer, size float64, opts ...Option) error {
	if !(size > 0) || math.IsInf(size, 0) {
		return fmt.Errorf("%w: %g", ErrInvalidSize, size)
	}
	o := applyOptions(opts)
	layout := NewLayout(size)

	ew := &errWriter{w: w}
	canvas := svg.New(ew)
	canvas.Start(size, size)
	canvas.Title("AppIcon")
	for _, ly := range layout.layers(o.palette) {
		id := fmt.Sprintf(`id="%s"`, ly.name)
		fill := svgFill(canvas, ly.color)
		b := ly.box
		switch ly.kind {
		case shapeRoundedRect:
			r := clampRadius(b, ly.radius)
			canvas.Roundrect(b.Left, b.Top, b.Width(), b.Height(), r, r, id, fill)
		case shapeEllipse:
			cx, cy := b.Center()
			canvas.Ellipse(cx, cy, b.Width()/2, b.Height()/2, id, fill)
		default:
			canvas.Rect(b.Left, b.Top, b.Width(), b.Height(), id, fill)
		}
	}
	canvas.End()

	if ew.err != nil {
		return fmt.Errorf("appicon: encode svg: %w", ew.err)
	}
	return nil
}

// WriteSVG is EncodeSVG into a file at path.
func WriteSVG(path string, size float64, opts ...Option) error {
	return writeFile(path, func(w io.Writer) error {
		return EncodeSVG(w, size, opts...)
	})
}

func svgFill(canvas *svg.SVG, c color.NRGBA) string {
	if c.A == 255 {
		return canvas.RGB(int(c.R), int(c.G), int(c.B))
	}
	return canvas.RGBA(int(c.R), int(c.G), int(c.B), float64(c.A)/255)
}

// clampRadius mirrors gg, which limits a corner radius to half the
// shorter side.
func clampRadius(b Box, r float64) float64 {
	return min(r, b.Width()/2, b.Height()/2)
}
