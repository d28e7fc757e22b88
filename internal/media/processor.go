// Package media resizes uploaded images and hands them to object storage.
package media

import (
	"bytes"
	"fmt"
	"image"
	_ "image/gif"
	"image/jpeg"
	_ "image/png"
	"strings"

	"golang.org/x/image/draw"
)

// Constraints describe the output of a resize.
type Constraints struct {
	Width   int
	Height  int
	Quality int
}

// Fixed output sizes.
var (
	UserPhoto = Constraints{Width: 500, Height: 500, Quality: 90}
	TourImage = Constraints{Width: 2000, Height: 1333, Quality: 90}
)

// Processor decodes, crops, scales and re-encodes images as JPEG.
type Processor struct{}

// NewProcessor creates a new image processor.
func NewProcessor() *Processor {
	return &Processor{}
}

// Resize decodes a JPEG, PNG or GIF, crops it to the target aspect ratio
// around the centre and scales it to exactly c.Width x c.Height.
func (p *Processor) Resize(buf []byte, c Constraints) ([]byte, error) {
	if c.Width <= 0 || c.Height <= 0 {
		return nil, fmt.Errorf("invalid target size %dx%d", c.Width, c.Height)
	}
	quality := c.Quality
	if quality <= 0 || quality > 100 {
		quality = jpeg.DefaultQuality
	}

	img, _, err := image.Decode(bytes.NewReader(buf))
	if err != nil {
		return nil, fmt.Errorf("failed to decode image: %w", err)
	}

	dst := image.NewRGBA(image.Rect(0, 0, c.Width, c.Height))
	draw.CatmullRom.Scale(dst, dst.Bounds(), img, coverRect(img.Bounds(), c.Width, c.Height), draw.Src, nil)

	var out bytes.Buffer
	if err := jpeg.Encode(&out, dst, &jpeg.Options{Quality: quality}); err != nil {
		return nil, fmt.Errorf("failed to encode JPEG: %w", err)
	}
	return out.Bytes(), nil
}

// coverRect is the largest centred sub-rectangle of src with the aspect
// ratio width:height.
func coverRect(src image.Rectangle, width, height int) image.Rectangle {
	sw, sh := src.Dx(), src.Dy()
	if sw == 0 || sh == 0 {
		return src
	}

	// Compare sw/sh with width/height without floats.
	if sw*height > sh*width {
		cropW := sh * width / height
		x0 := src.Min.X + (sw-cropW)/2
		return image.Rect(x0, src.Min.Y, x0+cropW, src.Max.Y)
	}
	cropH := sw * height / width
	y0 := src.Min.Y + (sh-cropH)/2
	return image.Rect(src.Min.X, y0, src.Max.X, y0+cropH)
}

// IsImage reports whether a declared content type is an image.
func IsImage(contentType string) bool {
	return strings.HasPrefix(strings.ToLower(strings.TrimSpace(contentType)), "image/")
}
