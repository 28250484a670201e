package batch

import (
	"bytes"
	"fmt"
	"image"
	"image/png"
	"io"
	"os"
	"path/filepath"

	"github.com/HugoSmits86/nativewebp"
	"github.com/ftrvxmtrx/tga"
)

// Encode writes img in the named raster format.
func Encode(w io.Writer, img image.Image, format string) error {
	switch format {
	case "webp":
		if err := nativewebp.Encode(w, img, nil); err != nil {
			return fmt.Errorf("WebP encode: %w", err)
		}
	case "png":
		if err := png.Encode(w, img); err != nil {
			return fmt.Errorf("PNG encode: %w", err)
		}
	case "tga":
		if err := tga.Encode(w, img); err != nil {
			return fmt.Errorf("TGA encode: %w", err)
		}
	default:
		return fmt.Errorf("unknown raster format %q", format)
	}
	return nil
}

// writeChart renders one output into memory and writes the file only when
// rendering succeeded. It returns the path relative to OutputDir.
func writeChart(cfg Config, c Chart, format string) (string, error) {
	rel := c.Dataset.Name + "." + format
	outPath := filepath.Join(cfg.OutputDir, rel)

	var buf bytes.Buffer
	var err error
	if format == "svg" {
		err = c.WriteSVG(&buf, cfg)
	} else {
		err = Encode(&buf, c.Image(cfg), format)
	}
	if err != nil {
		return "", fmt.Errorf("%s: %w", rel, err)
	}

	if err := os.MkdirAll(filepath.Dir(outPath), 0755); err != nil {
		return "", err
	}
	if err := os.WriteFile(outPath, buf.Bytes(), 0644); err != nil {
		return "", err
	}
	return rel, nil
}
