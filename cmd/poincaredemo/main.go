// Command poincaredemo renders the hyperbolic tiling of the Poincaré
// disk to a PNG file.
package main

import (
	"flag"
	"log"
	"log/slog"
	"os"

	"github.com/gogpu/poincare"
)

func main() {
	var (
		width   = flag.Int("width", 300, "image width")
		height  = flag.Int("height", 300, "image height")
		output  = flag.String("out", "poincare.png", "output file")
		aspect  = flag.Bool("aspect", false, "keep the disk circular on non-square images")
		verbose = flag.Bool("v", false, "enable debug logging")
	)
	flag.Parse()

	if *verbose {
		poincare.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	var opts []poincare.Option
	if *aspect {
		opts = append(opts, poincare.WithAspectCorrection())
	}

	tiling := poincare.New(opts...)
	pm, err := tiling.Render(*width, *height)
	if err != nil {
		log.Fatalf("Failed to render: %v", err)
	}
	if err := pm.SavePNG(*output); err != nil {
		log.Fatalf("Failed to save: %v", err)
	}

	log.Printf("Tiling saved to %s (%dx%d)\n", *output, *width, *height)
}
