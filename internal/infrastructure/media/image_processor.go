package media

import (
	"bytes"
	"fmt"
	"image"
	_ "image/gif"
	"image/jpeg"
	_ "image/png"
	"path/filepath"
	"strings"

	"golang.org/x/image/draw"

	"github.com/mikiasgoitom/Folio/internal/domain/contract"
	"github.com/mikiasgoitom/Folio/internal/domain/entity"
)

const jpegQuality = 85

// MaxImagePixels bounds the decoded size of a single image.
const MaxImagePixels = 40_000_000

// ImageProcessor rejects undecodable payloads and downscales images wider than maxWidth
// to a JPEG of that width.
type ImageProcessor struct {
	maxWidth int
}

var _ contract.IImageProcessor = (*ImageProcessor)(nil)

func NewImageProcessor(maxWidth int) *ImageProcessor {
	return &ImageProcessor{maxWidth: maxWidth}
}

func (p *ImageProcessor) Process(in entity.ImagePayload) (entity.ImagePayload, error) {
	cfg, _, err := image.DecodeConfig(bytes.NewReader(in.Data))
	if err != nil {
		return entity.ImagePayload{}, fmt.Errorf("decode image header: %w", err)
	}
	if cfg.Width <= 0 || cfg.Height <= 0 || int64(cfg.Width)*int64(cfg.Height) > MaxImagePixels {
		return entity.ImagePayload{}, fmt.Errorf("image dimensions %dx%d exceed the %d pixel limit", cfg.Width, cfg.Height, MaxImagePixels)
	}

	img, _, err := image.Decode(bytes.NewReader(in.Data))
	if err != nil {
		return entity.ImagePayload{}, fmt.Errorf("decode image: %w", err)
	}

	bounds := img.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	if p.maxWidth <= 0 || w <= p.maxWidth {
		return in, nil
	}

	newH := h * p.maxWidth / w
	if newH < 1 {
		newH = 1
	}
	dst := image.NewRGBA(image.Rect(0, 0, p.maxWidth, newH))
	draw.CatmullRom.Scale(dst, dst.Bounds(), img, bounds, draw.Over, nil)

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, dst, &jpeg.Options{Quality: jpegQuality}); err != nil {
		return entity.ImagePayload{}, fmt.Errorf("encode jpeg: %w", err)
	}

	name := in.Filename
	if name != "" {
		name = strings.TrimSuffix(name, filepath.Ext(name)) + ".jpg"
	}
	return entity.ImagePayload{
		Filename:    name,
		ContentType: "image/jpeg",
		Data:        buf.Bytes(),
	}, nil
}
