package appicon

import "log/slog"

// Proportions of the icon, as fractions of the canvas edge.
const (
	backgroundInset  = 0.10
	backgroundRadius = 0.18
	badgeInset       = 0.25

	bodyWidth    = 0.12
	bodyHeight   = 0.25
	standWidth   = 0.04
	standHeight  = 0.10
	standGap     = 0.05
	baseWidth    = 0.15
	bodyAboveDiv = 1.5 // body top is cy - bodyHeight/bodyAboveDiv
	bodyBelowDiv = 2.5 // body bottom is cy + bodyHeight/bodyBelowDiv
)

// Box is an axis-aligned bounding box in canvas pixels.
type Box struct {
	Left, Top, Right, Bottom float64
}

// Width returns Right - Left.
func (b Box) Width() float64 {
	return b.Right - b.Left
}

// Height returns Bottom - Top.
func (b Box) Height() float64 {
	return b.Bottom - b.Top
}

// Center returns the midpoint of the box.
func (b Box) Center() (x, y float64) {
	return (b.Left + b.Right) / 2, (b.Top + b.Bottom) / 2
}

// Scale multiplies every coordinate by k.
func (b Box) Scale(k float64) Box {
	return Box{Left: b.Left * k, Top: b.Top * k, Right: b.Right * k, Bottom: b.Bottom * k}
}

// Contains reports whether the point lies inside the box, edges included.
func (b Box) Contains(x, y float64) bool {
	return x >= b.Left && x <= b.Right && y >= b.Top && y <= b.Bottom
}

func insetBox(size, pad float64) Box {
	return Box{Left: pad, Top: pad, Right: size - pad, Bottom: size - pad}
}

func centeredBox(cx, top, width, height float64) Box {
	return Box{Left: cx - width/2, Top: top, Right: cx + width/2, Bottom: top + height}
}

// Layout is the geometry of one icon render. Layers are listed in
// paint order.
type Layout struct {
	Size float64

	Background       Box
	BackgroundRadius float64

	Badge Box

	Body       Box
	BodyRadius float64
	Stand      Box
	Base       Box
}

// NewLayout computes the icon geometry for a canvas of the given edge
// length. Every coordinate is a linear function of size.
func NewLayout(size float64) Layout {
	cx, cy := size/2, size/2

	micW := size * bodyWidth
	micH := size * bodyHeight
	body := Box{
		Left:   cx - micW/2,
		Top:    cy - micH/bodyAboveDiv,
		Right:  cx + micW/2,
		Bottom: cy + micH/bodyBelowDiv,
	}

	lineW := size * standWidth
	stand := centeredBox(cx, body.Bottom+size*standGap, lineW, size*standHeight)
	base := centeredBox(cx, stand.Bottom, size*baseWidth, lineW)

	return Layout{
		Size:             size,
		Background:       insetBox(size, size*backgroundInset),
		BackgroundRadius: size * backgroundRadius,
		Badge:            insetBox(size, size*badgeInset),
		Body:             body,
		BodyRadius:       micW / 2,
		Stand:            stand,
		Base:             base,
	}
}

// Scale returns the layout for a canvas k times larger.
func (l Layout) Scale(k float64) Layout {
	return Layout{
		Size:             l.Size * k,
		Background:       l.Background.Scale(k),
		BackgroundRadius: l.BackgroundRadius * k,
		Badge:            l.Badge.Scale(k),
		Body:             l.Body.Scale(k),
		BodyRadius:       l.BodyRadius * k,
		Stand:            l.Stand.Scale(k),
		Base:             l.Base.Scale(k),
	}
}

// LogValue implements slog.LogValuer.
func (b Box) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Float64("left", b.Left),
		slog.Float64("top", b.Top),
		slog.Float64("right", b.Right),
		slog.Float64("bottom", b.Bottom),
	)
}
