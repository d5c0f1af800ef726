package appicon

import (
	"fmt"
	"image"

	"github.com/gogpu/gg"
)

// IndicatorSize is the edge length of a macOS status-bar item in points.
const IndicatorSize = 22

// Dot radius bounds in points on an IndicatorSize item. Other sizes
// scale them proportionally.
const (
	indicatorMinRadius = 3.0
	indicatorMaxRadius = 8.0
)

// ClampLevel limits an input level to [0, 1]. NaN reads as silence.
func ClampLevel(level float64) float64 {
	if !(level > 0) {
		return 0
	}
	return min(level, 1)
}

// IndicatorRadius returns the dot radius drawn for level on a size×size
// canvas.
func IndicatorRadius(size, level float64) float64 {
	r := indicatorMinRadius + ClampLevel(level)*(indicatorMaxRadius-indicatorMinRadius)
	return r * size / IndicatorSize
}

// RenderLevelIndicator draws the recording indicator shown in the menu
// bar: a badge-colored dot centered on a transparent size×size canvas
// whose radius grows linearly with the input level.
func RenderLevelIndicator(size int, level float64, opts ...Option) (*image.RGBA, error) {
	if size <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidSize, size)
	}
	o := applyOptions(opts)
	c := float64(size) / 2
	r := IndicatorRadius(float64(size), level)

	return paint(size, o, func(dc *gg.Context) error {
		Logger().Debug("appicon: fill indicator", "level", ClampLevel(level), "radius", r)
		dc.SetColor(o.palette.Badge)
		dc.DrawCircle(c, c, r)
		if err := dc.Fill(); err != nil {
			return fmt.Errorf("appicon: draw indicator: %w", err)
		}
		return nil
	})
}

// WriteLevelIndicator renders the indicator and writes it to path as PNG.
func WriteLevelIndicator(path string, size int, level float64, opts ...Option) error {
	img, err := RenderLevelIndicator(size, level, opts...)
	if err != nil {
		return err
	}
	return WritePNG(path, img)
}
