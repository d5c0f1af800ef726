// Command iconkit renders the application icon and packages it for
// distribution: a master PNG, a macOS .iconset, a Windows .ico, an SVG
// and the menu-bar level indicator. Every flag defaults from an
// APPICON_* environment variable.
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"

	"github.com/pochi-app/appicon"
	"github.com/pochi-app/appicon/internal/config"
)

const usageHeader = `Usage: iconkit [flags]

Every flag defaults from the APPICON_* environment variable named in
its description. The environment is read before flags, so a malformed
variable (for example APPICON_SIZE=abc) stops iconkit even when the
matching flag is given: fix or unset the variable instead.

`

func main() {
	cfg, err := config.LoadKit()
	if err != nil {
		log.Fatalf("Failed to load config: %v (fix or unset the APPICON_* variable; flags cannot override it)", err)
	}

	fs := newFlagSet(&cfg, os.Stderr)
	_ = fs.Parse(os.Args[1:])

	if cfg.Verbose {
		appicon.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	if err := run(cfg, os.Stdout); err != nil {
		log.Fatalf("iconkit: %v", err)
	}
}

// newFlagSet binds every flag to cfg, using the current cfg values as
// defaults.
func newFlagSet(cfg *config.Kit, output io.Writer) *flag.FlagSet {
	fs := flag.NewFlagSet("iconkit", flag.ExitOnError)
	fs.SetOutput(output)
	fs.Usage = func() {
		fmt.Fprint(fs.Output(), usageHeader)
		fs.PrintDefaults()
	}

	fs.IntVar(&cfg.Size, "size", cfg.Size, "master icon edge length in pixels (APPICON_SIZE)")
	fs.StringVar(&cfg.PNG, "png", cfg.PNG, "PNG output path, empty to skip (APPICON_PNG)")
	fs.StringVar(&cfg.Iconset, "iconset", cfg.Iconset, "macOS .iconset output directory (APPICON_ICONSET)")
	fs.StringVar(&cfg.ICO, "ico", cfg.ICO, "Windows .ico output path (APPICON_ICO)")
	fs.StringVar(&cfg.SVG, "svg", cfg.SVG, "SVG output path (APPICON_SVG)")
	fs.StringVar(&cfg.Background, "background", cfg.Background, "background color override, #RRGGBB (APPICON_BACKGROUND)")
	fs.StringVar(&cfg.Badge, "badge", cfg.Badge, "badge color override, #RRGGBB (APPICON_BADGE)")
	fs.StringVar(&cfg.Glyph, "glyph", cfg.Glyph, "glyph color override, #RRGGBB (APPICON_GLYPH)")
	fs.StringVar(&cfg.Indicator, "indicator", cfg.Indicator, "menu-bar level indicator PNG path (APPICON_INDICATOR)")
	fs.IntVar(&cfg.IndicatorSize, "indicator-size", cfg.IndicatorSize, "indicator edge length in pixels (APPICON_INDICATOR_SIZE)")
	fs.Float64Var(&cfg.Level, "level", cfg.Level, "input level 0..1 drawn by the indicator (APPICON_LEVEL)")
	fs.BoolVar(&cfg.Verbose, "v", cfg.Verbose, "log rendering details to stderr (APPICON_VERBOSE)")
	return fs
}

// run renders once and writes every artifact cfg names, reporting each
// path on out.
func run(cfg config.Kit, out io.Writer) error {
	palette, err := appicon.ParsePalette(cfg.Background, cfg.Badge, cfg.Glyph)
	if err != nil {
		return err
	}
	opts := []appicon.Option{appicon.WithPalette(palette)}

	master, err := appicon.Render(cfg.Size, opts...)
	if err != nil {
		return err
	}

	steps := []struct {
		path  string
		write func(string) error
	}{
		{cfg.PNG, func(p string) error { return appicon.WritePNG(p, master) }},
		{cfg.Iconset, func(p string) error { return appicon.WriteIconset(p, master) }},
		{cfg.ICO, func(p string) error { return appicon.WriteICO(p, master) }},
		{cfg.SVG, func(p string) error { return appicon.WriteSVG(p, float64(cfg.Size), opts...) }},
		{cfg.Indicator, func(p string) error { return appicon.WriteLevelIndicator(p, cfg.IndicatorSize, cfg.Level, opts...) }},
	}
	for _, s := range steps {
		if s.path == "" {
			continue
		}
		if err := s.write(s.path); err != nil {
			return err
		}
		fmt.Fprintf(out, "wrote %s\n", s.path)
	}
	return nil
}
