// Package imaging implements the server-side image tools: resize, crop,
// format conversion and JPEG compression.
package imaging

import (
	"bytes"
	"fmt"
	"image"
	"image/jpeg"
	"image/png"
	"io"
	"strings"

	"golang.org/x/image/draw"
	_ "golang.org/x/image/webp"

	"officetools/internal/shared/errors"
)

const (
	OpResize   = "resize"
	OpCrop     = "crop"
	OpConvert  = "convert"
	OpCompress = "compress"

	FormatJPEG = "jpeg"
	FormatPNG  = "png"

	DefaultQuality   = 85
	DefaultMaxPixels = 40_000_000
)

// Options describes one operation. Width and Height are the target size for
// resize (0 keeps the aspect ratio) and the crop size for crop.
type Options struct {
	Operation string
	Width     int
	Height    int
	X         int
	Y         int
	Format    string
	Quality   int
}

type Output struct {
	Data        []byte
	ContentType string
	Format      string
	Width       int
	Height      int
}

type Processor struct {
	maxPixels int
}

func NewProcessor(maxPixels int) *Processor {
	if maxPixels <= 0 {
		maxPixels = DefaultMaxPixels
	}
	return &Processor{maxPixels: maxPixels}
}

// NormalizeOperation returns the canonical name of op.
func NormalizeOperation(op string) (string, error) {
	switch o := strings.ToLower(strings.TrimSpace(op)); o {
	case OpResize, OpCrop, OpConvert, OpCompress:
		return o, nil
	case "":
		return "", errors.NewValidationError("operation is required")
	default:
		return "", errors.NewValidationError("unknown operation", op)
	}
}

// SourceFormat reads only the image header and reports the decoder name
// (jpeg, png or webp).
func SourceFormat(r io.Reader) (string, error) {
	_, format, err := image.DecodeConfig(r)
	if err != nil {
		return "", errors.NewValidationError("unsupported or corrupt image")
	}
	return format, nil
}

// OutputFormat is the encoding Process produces for op on a source decoded
// as srcFormat. Compress always produces JPEG.
func OutputFormat(op, requested, srcFormat string) (string, error) {
	format := strings.ToLower(strings.TrimSpace(requested))
	if format == "jpg" {
		format = FormatJPEG
	}
	if op == OpCompress {
		if format != "" && format != FormatJPEG {
			return "", errors.NewValidationError("compress produces jpeg only", format)
		}
		return FormatJPEG, nil
	}
	if format == "" {
		format = srcFormat
		if format != FormatJPEG {
			format = FormatPNG
		}
	}
	if format != FormatJPEG && format != FormatPNG {
		return "", errors.NewValidationError("unsupported output format", format)
	}
	return format, nil
}

// Process decodes src, applies opts and encodes the result. The header is
// checked against the pixel limit before the image is decoded.
func (p *Processor) Process(src io.Reader, opts Options) (*Output, error) {
	op, err := NormalizeOperation(opts.Operation)
	if err != nil {
		return nil, err
	}

	data, err := io.ReadAll(src)
	if err != nil {
		return nil, fmt.Errorf("failed to read image: %w", err)
	}

	cfg, srcFormat, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return nil, errors.NewValidationError("unsupported or corrupt image")
	}
	if cfg.Width*cfg.Height > p.maxPixels {
		return nil, errors.NewValidationError("image too large", fmt.Sprintf("at most %d pixels", p.maxPixels))
	}

	format, err := OutputFormat(op, opts.Format, srcFormat)
	if err != nil {
		return nil, err
	}
	quality := opts.Quality
	if quality == 0 {
		quality = DefaultQuality
	}
	if quality < 1 || quality > 100 {
		return nil, errors.NewValidationError("quality must be between 1 and 100")
	}

	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, errors.NewValidationError("unsupported or corrupt image")
	}

	switch op {
	case OpResize:
		img, err = p.resize(img, opts.Width, opts.Height)
	case OpCrop:
		img, err = crop(img, image.Rect(opts.X, opts.Y, opts.X+opts.Width, opts.Y+opts.Height))
	}
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if err := encode(&buf, img, format, quality); err != nil {
		return nil, err
	}

	b := img.Bounds()
	return &Output{
		Data:        buf.Bytes(),
		ContentType: "image/" + format,
		Format:      format,
		Width:       b.Dx(),
		Height:      b.Dy(),
	}, nil
}

func (p *Processor) resize(src image.Image, width, height int) (image.Image, error) {
	if width < 0 || height < 0 || (width == 0 && height == 0) {
		return nil, errors.NewValidationError("width or height is required")
	}

	b := src.Bounds()
	switch {
	case width == 0:
		width = max(1, b.Dx()*height/b.Dy())
	case height == 0:
		height = max(1, b.Dy()*width/b.Dx())
	}
	if width > p.maxPixels || height > p.maxPixels || width*height > p.maxPixels {
		return nil, errors.NewValidationError("target size too large", fmt.Sprintf("at most %d pixels", p.maxPixels))
	}

	dst := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.CatmullRom.Scale(dst, dst.Bounds(), src, b, draw.Over, nil)
	return dst, nil
}

func crop(src image.Image, rect image.Rectangle) (image.Image, error) {
	b := src.Bounds()
	rect = rect.Add(b.Min)
	if rect.Empty() || !rect.In(b) {
		return nil, errors.NewValidationError("crop rectangle must fit inside the image")
	}

	dst := image.NewRGBA(image.Rect(0, 0, rect.Dx(), rect.Dy()))
	draw.Draw(dst, dst.Bounds(), src, rect.Min, draw.Src)
	return dst, nil
}

func encode(w io.Writer, img image.Image, format string, quality int) error {
	switch format {
	case FormatJPEG:
		// JPEG has no alpha; flatten onto white.
		flat := image.NewRGBA(img.Bounds())
		draw.Draw(flat, flat.Bounds(), image.White, image.Point{}, draw.Src)
		draw.Draw(flat, flat.Bounds(), img, img.Bounds().Min, draw.Over)
		if err := jpeg.Encode(w, flat, &jpeg.Options{Quality: quality}); err != nil {
			return fmt.Errorf("failed to encode jpeg: %w", err)
		}
	case FormatPNG:
		enc := png.Encoder{CompressionLevel: png.BestCompression}
		if err := enc.Encode(w, img); err != nil {
			return fmt.Errorf("failed to encode png: %w", err)
		}
	}
	return nil
}
