// Command appicon renders the 1024×1024 application icon to AppIcon.png
// in the current directory.
package main

import (
	"fmt"
	"io"
	"log"
	"os"

	"github.com/pochi-app/appicon"
)

const output = "AppIcon.png"

func main() {
	if err := run(os.Stdout); err != nil {
		log.Fatalf("appicon: %v", err)
	}
}

func run(out io.Writer) error {
	img, err := appicon.Render(appicon.MasterSize)
	if err != nil {
		return fmt.Errorf("failed to render: %w", err)
	}

	if err := appicon.WritePNG(output, img); err != nil {
		return fmt.Errorf("failed to save: %w", err)
	}

	_, err = fmt.Fprintln(out, output+" created")
	return err
}
