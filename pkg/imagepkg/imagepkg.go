// Package imagepkg provides decoding and rendition helpers for uploaded images.
package imagepkg

import (
	"bytes"
	"encoding/base64"
	"image"
	_ "image/gif"
	"image/jpeg"
	_ "image/png"
	"os"
	"path/filepath"

	"golang.org/x/image/draw"
)

// Size holds the pixel dimensions of a rendition.
type Size struct {
	Width  int
	Height int
}

// Fixed rendition sizes, smallest first.
var (
	ThumbnailSize = Size{96, 96}
	PreviewSize   = Size{200, 113}
	OriginalSize  = Size{1920, 1080}
)

// Decode decodes a base64 encoded image payload.
func Decode(b64 string) (image.Image, error) {
	raw, err := base64.StdEncoding.DecodeString(b64)
	if err != nil {
		return nil, err
	}

	img, _, err := image.Decode(bytes.NewReader(raw))
	if err != nil {
		return nil, err
	}

	return img, nil
}

// CropCenter crops the image to the center with the biggest possible region
// matching the target aspect ratio, then scales it to the target size.
func CropCenter(img image.Image, size Size) image.Image {
	ratio := float64(size.Width) / float64(size.Height)
	bounds := img.Bounds()
	width, height := bounds.Dx(), bounds.Dy()

	var region image.Rectangle

	if float64(width)/float64(height) > ratio {
		newWidth := int(float64(height) * ratio)
		offset := (width - newWidth) / 2
		region = image.Rect(bounds.Min.X+offset, bounds.Min.Y, bounds.Max.X-offset, bounds.Max.Y)
	} else {
		newHeight := int(float64(width) / ratio)
		offset := (height - newHeight) / 2
		region = image.Rect(bounds.Min.X, bounds.Min.Y+offset, bounds.Max.X, bounds.Max.Y-offset)
	}

	dst := image.NewRGBA(image.Rect(0, 0, size.Width, size.Height))
	draw.CatmullRom.Scale(dst, dst.Bounds(), img, region, draw.Over, nil)

	return dst
}

// SaveJPEG writes the image as a JPEG file under dir and returns the file name.
func SaveJPEG(img image.Image, dir, name string) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}

	f, err := os.Create(filepath.Join(dir, name))
	if err != nil {
		return "", err
	}
	defer f.Close()

	if err := jpeg.Encode(f, img, nil); err != nil {
		return "", err
	}

	return name, nil
}
