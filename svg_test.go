package appicon

import (
	"bytes"
	"encoding/xml"
	"errors"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

type svgDoc struct {
	Width    string       `xml:"width,attr"`
	Height   string       `xml:"height,attr"`
	Rects    []svgElement `xml:"rect"`
	Ellipses []svgElement `xml:"ellipse"`
}

type svgElement struct {
	ID    string `xml:"id,attr"`
	Style string `xml:"style,attr"`
	RX    string `xml:"rx,attr"`
}

func TestEncodeSVG(t *testing.T) {
	var buf bytes.Buffer
	if err := EncodeSVG(&buf, MasterSize); err != nil {
		t.Fatalf("EncodeSVG: %v", err)
	}

	var doc svgDoc
	if err := xml.Unmarshal(buf.Bytes(), &doc); err != nil {
		t.Fatalf("output is not valid XML: %v\n%s", err, buf.String())
	}
	if doc.Width != "1024.00" || doc.Height != "1024.00" {
		t.Errorf("canvas = %sx%s, want 1024.00x1024.00", doc.Width, doc.Height)
	}

	var ids []string
	for _, r := range doc.Rects {
		ids = append(ids, r.ID)
	}
	if got := strings.Join(ids, ","); got != "background,body,stand,base" {
		t.Errorf("rect ids = %s", got)
	}
	if len(doc.Ellipses) != 1 || doc.Ellipses[0].ID != "badge" {
		t.Fatalf("ellipses = %+v, want one badge", doc.Ellipses)
	}
	if !strings.Contains(doc.Ellipses[0].Style, "rgb(255,59,48)") {
		t.Errorf("badge style = %q", doc.Ellipses[0].Style)
	}
	if doc.Rects[0].RX != "184.32" {
		t.Errorf("background rx = %q, want 184.32", doc.Rects[0].RX)
	}
	if doc.Rects[1].RX != "61.44" {
		t.Errorf("body rx = %q, want 61.44", doc.Rects[1].RX)
	}
}

func TestEncodeSVGTranslucentPalette(t *testing.T) {
	p := DefaultPalette()
	p.Badge.A = 128

	var buf bytes.Buffer
	if err := EncodeSVG(&buf, 100, WithPalette(p)); err != nil {
		t.Fatalf("EncodeSVG: %v", err)
	}
	if !strings.Contains(buf.String(), "fill-opacity:0.50") {
		t.Errorf("translucent badge missing fill-opacity:\n%s", buf.String())
	}
}

func TestEncodeSVGInvalidSize(t *testing.T) {
	for _, size := range []float64{0, -64, math.NaN(), math.Inf(1), math.Inf(-1)} {
		var buf bytes.Buffer
		if err := EncodeSVG(&buf, size); !errors.Is(err, ErrInvalidSize) {
			t.Errorf("EncodeSVG(%g) error = %v, want ErrInvalidSize", size, err)
		}
		if buf.Len() != 0 {
			t.Errorf("EncodeSVG(%g) wrote %d bytes", size, buf.Len())
		}
	}
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("disk full") }

func TestEncodeSVGWriteError(t *testing.T) {
	err := EncodeSVG(failingWriter{}, 64)
	if err == nil || !strings.Contains(err.Error(), "disk full") {
		t.Errorf("EncodeSVG error = %v, want write error", err)
	}
}

func TestWriteSVG(t *testing.T) {
	path := filepath.Join(t.TempDir(), "AppIcon.svg")
	if err := WriteSVG(path, 256); err != nil {
		t.Fatalf("WriteSVG: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.HasPrefix(data, []byte("<?xml")) {
		t.Errorf("file does not start with an XML declaration: %q", data[:min(len(data), 20)])
	}
}

func TestClampRadius(t *testing.T) {
	b := Box{Right: 10, Bottom: 40}
	if got := clampRadius(b, 20); got != 5 {
		t.Errorf("clampRadius = %v, want 5", got)
	}
	if got := clampRadius(b, 2); got != 2 {
		t.Errorf("clampRadius = %v, want 2", got)
	}
}
