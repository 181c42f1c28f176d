package themeforge

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/png"

	"golang.org/x/image/draw"
)

const (
	placeholderMinSize     = 16
	placeholderMaxSize     = 2000
	placeholderDefaultSize = 600
)

// Placeholder generates a checkerboard PNG of the given dimensions, used by
// the preview server to stand in for theme images that do not exist yet.
// A small tile is drawn once and scaled up so generation cost stays flat
// regardless of the requested size.
func Placeholder(width, height int) ([]byte, error) {
	if width < placeholderMinSize || width > placeholderMaxSize ||
		height < placeholderMinSize || height > placeholderMaxSize {
		return nil, fmt.Errorf("themeforge: placeholder size %dx%d out of range", width, height)
	}

	const tileSize = 16
	light := color.RGBA{R: 0xe2, G: 0xe2, B: 0xe2, A: 0xff}
	dark := color.RGBA{R: 0xc9, G: 0xc9, B: 0xc9, A: 0xff}

	tile := image.NewRGBA(image.Rect(0, 0, tileSize, tileSize))
	for y := 0; y < tileSize; y++ {
		for x := 0; x < tileSize; x++ {
			if (x < tileSize/2) != (y < tileSize/2) {
				tile.Set(x, y, dark)
			} else {
				tile.Set(x, y, light)
			}
		}
	}

	dst := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.NearestNeighbor.Scale(dst, dst.Bounds(), tile, tile.Bounds(), draw.Src, nil)

	// Border so the placeholder reads as intentional in the preview.
	edge := color.RGBA{R: 0x9a, G: 0x9a, B: 0x9a, A: 0xff}
	for x := 0; x < width; x++ {
		dst.Set(x, 0, edge)
		dst.Set(x, height-1, edge)
	}
	for y := 0; y < height; y++ {
		dst.Set(0, y, edge)
		dst.Set(width-1, y, edge)
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, dst); err != nil {
		return nil, fmt.Errorf("themeforge: encode placeholder: %w", err)
	}
	return buf.Bytes(), nil
}
