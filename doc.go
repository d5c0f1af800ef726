// Package appicon draws the Pochi application icon.
//
// # Overview
//
// The icon is a dark rounded square carrying a red recording badge with a
// white microphone glyph on top. Every shape is placed as a fixed fraction
// of the canvas edge, so the same artwork renders at any size. Drawing is
// done with the gg 2D library on its CPU rasterizer.
//
// # Quick Start
//
//	img, err := appicon.Render(appicon.MasterSize)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	if err := appicon.WritePNG("AppIcon.png", img); err != nil {
//	    log.Fatal(err)
//	}
//
// # Packaging
//
// A rendered master can be turned into platform bundles:
//   - WriteIconset: macOS .iconset directory for iconutil
//   - EncodeICO / WriteICO: Windows .ico with several sizes
//   - EncodeSVG / WriteSVG: the same layout as vector shapes
//
// # Level Indicator
//
// RenderLevelIndicator draws the menu-bar status item: a badge-colored dot
// that grows from 3 to 8 pixels in radius on a 22 pixel canvas as the
// input level goes from 0 to 1.
//
// # Coordinate System
//
// Origin (0,0) is the top-left corner, X grows right and Y grows down.
// Layout boxes are float64 and are passed to the rasterizer unrounded.
package appicon
