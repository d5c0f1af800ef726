package appicon

import (
	"fmt"
	"image"
	"image/png"
	"io"
	"os"
	"path/filepath"

	ico "github.com/sergeymakinen/go-ico"
	"golang.org/x/image/draw"
)

// IconsetEntry is one PNG slot of a macOS .iconset directory.
type IconsetEntry struct {
	Name   string
	Pixels int
}

// IconsetEntries lists the slots iconutil expects, smallest first.
func IconsetEntries() []IconsetEntry {
	var entries []IconsetEntry
	for _, pt := range []int{16, 32, 128, 256, 512} {
		entries = append(entries,
			IconsetEntry{Name: fmt.Sprintf("icon_%dx%d.png", pt, pt), Pixels: pt},
			IconsetEntry{Name: fmt.Sprintf("icon_%dx%d@2x.png", pt, pt), Pixels: pt * 2},
		)
	}
	return entries
}

// DefaultICOSizes are the sizes packed into a Windows icon when the
// caller does not choose.
var DefaultICOSizes = []int{16, 32, 48, 256}

// Downscale resamples src to a size×size image with Catmull-Rom
// filtering. A source that already has that size is returned unscaled.
func Downscale(src image.Image, size int) (*image.RGBA, error) {
	if size <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidSize, size)
	}
	b := src.Bounds()
	if b.Dx() == size && b.Dy() == size {
		return asRGBA(src), nil
	}
	dst := image.NewRGBA(image.Rect(0, 0, size, size))
	draw.CatmullRom.Scale(dst, dst.Bounds(), src, b, draw.Src, nil)
	return dst, nil
}

// EncodePNG writes img to w as PNG.
func EncodePNG(w io.Writer, img image.Image) error {
	if err := png.Encode(w, img); err != nil {
		return fmt.Errorf("appicon: encode png: %w", err)
	}
	return nil
}

// WritePNG creates or truncates path and writes img to it as PNG.
func WritePNG(path string, img image.Image) error {
	return writeFile(path, func(w io.Writer) error {
		return EncodePNG(w, img)
	})
}

// WriteIconset writes every IconsetEntries slot into dir, creating it if
// needed. Each slot is downscaled from master.
func WriteIconset(dir string, master image.Image) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("appicon: create iconset: %w", err)
	}
	for _, e := range IconsetEntries() {
		img, err := Downscale(master, e.Pixels)
		if err != nil {
			return err
		}
		if err := WritePNG(filepath.Join(dir, e.Name), img); err != nil {
			return err
		}
	}
	Logger().Info("appicon: wrote iconset", "dir", dir, "slots", len(IconsetEntries()))
	return nil
}

// EncodeICO writes a Windows icon holding one image per requested size,
// each downscaled from master. With no sizes, DefaultICOSizes is used.
// The format caps images at 256 pixels.
func EncodeICO(w io.Writer, master image.Image, sizes ...int) error {
	if len(sizes) == 0 {
		sizes = DefaultICOSizes
	}
	images := make([]image.Image, 0, len(sizes))
	for _, size := range sizes {
		if size < 1 || size > 256 {
			return fmt.Errorf("%w: ico entry %d", ErrInvalidSize, size)
		}
		img, err := Downscale(master, size)
		if err != nil {
			return err
		}
		images = append(images, img)
	}
	if err := ico.EncodeAll(w, images); err != nil {
		return fmt.Errorf("appicon: encode ico: %w", err)
	}
	return nil
}

// WriteICO is EncodeICO into a file at path.
func WriteICO(path string, master image.Image, sizes ...int) error {
	return writeFile(path, func(w io.Writer) error {
		return EncodeICO(w, master, sizes...)
	})
}

// writeFile creates path and runs encode on it. The file is closed
// before returning, and a close error is reported.
func writeFile(path string, encode func(io.Writer) error) error {
	f, err := os.Create(path) //nolint:gosec // path is chosen by the caller
	if err != nil {
		return fmt.Errorf("appicon: create %s: %w", path, err)
	}
	if err := encode(f); err != nil {
		_ = f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("appicon: close %s: %w", path, err)
	}
	Logger().Info("appicon: wrote file", "path", path)
	return nil
}
