package main

import (
	"bytes"
	"image"
	"image/png"
	"os"
	"testing"
)

func TestRunWritesAppIcon(t *testing.T) {
	t.Chdir(t.TempDir())

	if err := os.WriteFile(output, []byte("old"), 0o644); err != nil {
		t.Fatal(err)
	}
	var out bytes.Buffer
	if err := run(&out); err != nil {
		t.Fatalf("run: %v", err)
	}
	if got := out.String(); got != "AppIcon.png created\n" {
		t.Errorf("stdout = %q, want %q", got, "AppIcon.png created\n")
	}

	f, err := os.Open(output)
	if err != nil {
		t.Fatalf("open %s: %v", output, err)
	}
	defer f.Close()

	img, err := png.Decode(f)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if img.Bounds() != image.Rect(0, 0, 1024, 1024) {
		t.Errorf("bounds = %v, want 1024x1024", img.Bounds())
	}
	if _, _, _, a := img.At(0, 0).RGBA(); a != 0 {
		t.Errorf("corner alpha = %d, want 0", a)
	}
}

func TestRunUnwritableDirectory(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	if err := os.Mkdir(output, 0o755); err != nil {
		t.Fatal(err)
	}

	var out bytes.Buffer
	if err := run(&out); err == nil {
		t.Fatal("expected error when AppIcon.png is a directory")
	}
	if out.Len() != 0 {
		t.Errorf("confirmation printed on failure: %q", out.String())
	}
}
