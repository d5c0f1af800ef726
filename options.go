package appicon

import "github.com/gogpu/gg"

// Option configures a render.
//
// Example:
//
//	img, err := appicon.Render(512, appicon.WithPalette(p))
type Option func(*options)

type options struct {
	palette    Palette
	rasterizer gg.RasterizerMode
}

// defaultOptions pins the scanline rasterizer so output does not depend
// on which coverage fillers or accelerators happen to be registered.
func defaultOptions() options {
	return options{
		palette:    DefaultPalette(),
		rasterizer: gg.RasterizerAnalytic,
	}
}

func applyOptions(opts []Option) options {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// WithPalette replaces the layer colors.
func WithPalette(p Palette) Option {
	return func(o *options) {
		o.palette = p
	}
}

// WithRasterizerMode selects the gg CPU rasterizer used for every fill.
func WithRasterizerMode(mode gg.RasterizerMode) Option {
	return func(o *options) {
		o.rasterizer = mode
	}
}
