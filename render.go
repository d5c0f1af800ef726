package appicon

import (
	"errors"
	"fmt"
	"image"
	"image/color"

	"github.com/gogpu/gg"
	"golang.org/x/image/draw"
)

// ErrInvalidSize is returned for non-positive edge lengths and for icon
// sizes a container format cannot hold.
var ErrInvalidSize = errors.New("appicon: invalid size")

// MasterSize is the edge length of the canonical AppIcon.png.
const MasterSize = 1024

type shapeKind int

const (
	shapeRect shapeKind = iota
	shapeRoundedRect
	shapeEllipse
)

// layer is one filled shape of the icon.
type layer struct {
	name   string
	kind   shapeKind
	box    Box
	radius float64
	color  color.NRGBA
}

// layers returns the icon shapes in paint order. Later layers cover
// earlier ones.
func (l Layout) layers(p Palette) []layer {
	return []layer{
		{name: "background", kind: shapeRoundedRect, box: l.Background, radius: l.BackgroundRadius, color: p.Background},
		{name: "badge", kind: shapeEllipse, box: l.Badge, color: p.Badge},
		{name: "body", kind: shapeRoundedRect, box: l.Body, radius: l.BodyRadius, color: p.Glyph},
		{name: "stand", kind: shapeRect, box: l.Stand, color: p.Glyph},
		{name: "base", kind: shapeRect, box: l.Base, color: p.Glyph},
	}
}

func (ly layer) appendPath(dc *gg.Context) {
	b := ly.box
	switch ly.kind {
	case shapeRoundedRect:
		dc.DrawRoundedRectangle(b.Left, b.Top, b.Width(), b.Height(), ly.radius)
	case shapeEllipse:
		cx, cy := b.Center()
		dc.DrawEllipse(cx, cy, b.Width()/2, b.Height()/2)
	default:
		dc.DrawRectangle(b.Left, b.Top, b.Width(), b.Height())
	}
}

// Render draws the icon onto a transparent size×size canvas.
//
// The result depends only on size and the options, so two calls with the
// same arguments return identical pixels.
func Render(size int, opts ...Option) (*image.RGBA, error) {
	if size <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidSize, size)
	}
	o := applyOptions(opts)
	layout := NewLayout(float64(size))

	return paint(size, o, func(dc *gg.Context) error {
		log := Logger()
		for _, ly := range layout.layers(o.palette) {
			log.Debug("appicon: fill layer", "layer", ly.name, "box", ly.box, "radius", ly.radius, "color", Hex(ly.color))
			dc.SetColor(ly.color)
			ly.appendPath(dc)
			if err := dc.Fill(); err != nil {
				return fmt.Errorf("appicon: draw %s: %w", ly.name, err)
			}
		}
		return nil
	})
}

// paint runs fill on a cleared size×size gg context and returns a copy of
// its pixels. Pending accelerator work is flushed before the copy.
func paint(size int, o options, fill func(dc *gg.Context) error) (*image.RGBA, error) {
	dc := gg.NewContext(size, size)
	defer func() {
		_ = dc.Close()
	}()
	dc.SetRasterizerMode(o.rasterizer)
	dc.Clear()

	if err := fill(dc); err != nil {
		return nil, err
	}
	if err := dc.FlushGPU(); err != nil {
		return nil, fmt.Errorf("appicon: flush: %w", err)
	}
	return asRGBA(dc.Image()), nil
}

// asRGBA returns img as *image.RGBA, copying only when it is some other
// image type.
func asRGBA(img image.Image) *image.RGBA {
	if rgba, ok := img.(*image.RGBA); ok {
		return rgba
	}
	b := img.Bounds()
	dst := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(dst, dst.Bounds(), img, b.Min, draw.Src)
	return dst
}
