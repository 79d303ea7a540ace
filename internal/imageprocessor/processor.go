package imageprocessor

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/jpeg"
	"image/png"
	"strings"

	_ "image/gif"

	"golang.org/x/image/draw"
)

// ErrUnsupportedImage is returned when the payload is not a decodable image.
var ErrUnsupportedImage = errors.New("unsupported image")

// ImageSize - ограничивающий прямоугольник превью
type ImageSize struct {
	Name   string
	Width  int
	Height int
}

var (
	SizeThumbnail = ImageSize{Name: "thumbnail", Width: 150, Height: 150}
	SizeSmall     = ImageSize{Name: "small", Width: 400, Height: 400}
	SizeMedium    = ImageSize{Name: "medium", Width: 800, Height: 800}
)

var sizes = map[string]ImageSize{
	SizeThumbnail.Name: SizeThumbnail,
	SizeSmall.Name:     SizeSmall,
	SizeMedium.Name:    SizeMedium,
}

// ParseSize looks up a predefined size by name (case-insensitive).
func ParseSize(name string) (ImageSize, bool) {
	size, ok := sizes[strings.ToLower(strings.TrimSpace(name))]
	return size, ok
}

// Processor renders scaled-down previews of resume images.
type Processor struct {
	quality int // JPEG quality (1-100)
}

func NewProcessor(quality int) *Processor {
	if quality <= 0 || quality > 100 {
		quality = 85
	}
	return &Processor{quality: quality}
}

// Preview scales data to fit into size and returns the encoded bytes with
// their content type. PNG stays PNG, everything else is encoded as JPEG.
// Images already smaller than size are re-encoded without scaling.
func (p *Processor) Preview(data []byte, size ImageSize) ([]byte, string, error) {
	img, format, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, "", fmt.Errorf("%w: %v", ErrUnsupportedImage, err)
	}

	resized := p.resize(img, size.Width, size.Height)

	var buf bytes.Buffer
	if format == "png" {
		if err := png.Encode(&buf, resized); err != nil {
			return nil, "", fmt.Errorf("failed to encode PNG: %w", err)
		}
		return buf.Bytes(), "image/png", nil
	}

	if err := jpeg.Encode(&buf, resized, &jpeg.Options{Quality: p.quality}); err != nil {
		return nil, "", fmt.Errorf("failed to encode JPEG: %w", err)
	}
	return buf.Bytes(), "image/jpeg", nil
}

// resize сохраняет пропорции; не увеличивает.
func (p *Processor) resize(img image.Image, maxWidth, maxHeight int) image.Image {
	bounds := img.Bounds()
	width := bounds.Dx()
	height := bounds.Dy()

	if width <= maxWidth && height <= maxHeight {
		return img
	}

	ratio := float64(width) / float64(height)
	newWidth := maxWidth
	newHeight := maxHeight

	if float64(maxWidth)/float64(maxHeight) > ratio {
		newWidth = int(float64(maxHeight) * ratio)
	} else {
		newHeight = int(float64(maxWidth) / ratio)
	}
	if newWidth < 1 {
		newWidth = 1
	}
	if newHeight < 1 {
		newHeight = 1
	}

	dst := image.NewRGBA(image.Rect(0, 0, newWidth, newHeight))
	draw.CatmullRom.Scale(dst, dst.Bounds(), img, bounds, draw.Over, nil)
	return dst
}

// Dimensions returns the width and height of an encoded image.
func Dimensions(data []byte) (width, height int, err error) {
	cfg, _, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return 0, 0, fmt.Errorf("%w: %v", ErrUnsupportedImage, err)
	}
	return cfg.Width, cfg.Height, nil
}
