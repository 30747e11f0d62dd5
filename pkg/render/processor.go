package render

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	_ "image/gif"
	"image/jpeg"
	"image/png"
	"io"
	"os"

	"github.com/disintegration/imaging"
	"github.com/kerbaras/appassets/pkg/data"
	_ "golang.org/x/image/bmp"
	"golang.org/x/image/draw"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// ImageProcessor renders source images into fixed-size raster outputs
type ImageProcessor struct {
	settings Settings
}

// NewImageProcessor creates a new image processor with the given settings
func NewImageProcessor(settings Settings) *ImageProcessor {
	if settings.Quality <= 0 || settings.Quality > 100 {
		settings.Quality = DefaultSettings().Quality
	}
	return &ImageProcessor{
		settings: settings,
	}
}

// Process reads a source image, renders it to the target size and encodes it.
// name is only used to tell vector from raster sources.
func (p *ImageProcessor) Process(input io.Reader, name string, target Target) ([]byte, error) {
	if err := target.validate(); err != nil {
		return nil, err
	}

	src, err := io.ReadAll(input)
	if err != nil {
		return nil, fmt.Errorf("failed to read image: %w", err)
	}

	img, err := p.Render(src, name, target)
	if err != nil {
		return nil, err
	}

	return p.encode(img, target.Format)
}

// ProcessFile is a convenience method that reads the source from disk
func (p *ImageProcessor) ProcessFile(path string, target Target) ([]byte, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return p.Process(f, path, target)
}

// Render produces an image of exactly target.Width x target.Height
func (p *ImageProcessor) Render(src []byte, name string, target Target) (image.Image, error) {
	if err := target.validate(); err != nil {
		return nil, err
	}

	if IsVector(name, src) {
		return rasterizeSVG(src, name, target.Width, target.Height, target.Fit)
	}

	img, _, err := image.Decode(bytes.NewReader(src))
	if err != nil {
		return nil, fmt.Errorf("failed to decode image: %w", err)
	}

	switch target.Fit {
	case data.FitContain:
		return p.contain(img, target.Width, target.Height), nil
	case data.FitCover:
		return imaging.Fill(img, target.Width, target.Height, imaging.Center, imaging.Lanczos), nil
	default:
		return p.resize(img, target.Width, target.Height), nil
	}
}

// resize scales an image to the exact size using high-quality interpolation
func (p *ImageProcessor) resize(img image.Image, width, height int) image.Image {
	bounds := img.Bounds()
	if bounds.Dx() == width && bounds.Dy() == height {
		return img
	}

	dst := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.CatmullRom.Scale(dst, dst.Bounds(), img, bounds, draw.Src, nil)

	return dst
}

// contain fits the image inside the canvas and centers it on transparency
func (p *ImageProcessor) contain(img image.Image, width, height int) image.Image {
	fw, fh := fitDimensions(img.Bounds().Dx(), img.Bounds().Dy(), width, height)
	scaled := imaging.Resize(img, fw, fh, imaging.Lanczos)

	canvas := imaging.New(width, height, color.NRGBA{})
	return imaging.PasteCenter(canvas, scaled)
}

// fitDimensions returns the largest size with the source's aspect ratio that
// fits within maxWidth x maxHeight. Smaller sources are scaled up.
func fitDimensions(width, height, maxWidth, maxHeight int) (int, int) {
	if width <= 0 || height <= 0 {
		return maxWidth, maxHeight
	}

	widthScale := float64(maxWidth) / float64(width)
	heightScale := float64(maxHeight) / float64(height)

	// Use the smaller scale to ensure image fits within bounds
	scale := widthScale
	if heightScale < widthScale {
		scale = heightScale
	}

	newWidth := max(1, int(float64(width)*scale+0.5))
	newHeight := max(1, int(float64(height)*scale+0.5))

	return min(newWidth, maxWidth), min(newHeight, maxHeight)
}

// flatten composites img onto white. JPEG has no alpha channel, so
// transparent padding would otherwise come out black.
func flatten(img image.Image) image.Image {
	bounds := img.Bounds()
	dst := image.NewRGBA(image.Rect(0, 0, bounds.Dx(), bounds.Dy()))
	draw.Draw(dst, dst.Bounds(), image.White, image.Point{}, draw.Src)
	draw.Draw(dst, dst.Bounds(), img, bounds.Min, draw.Over)
	return dst
}

// encode encodes the rendered image to the requested format
func (p *ImageProcessor) encode(img image.Image, format string) ([]byte, error) {
	var buf bytes.Buffer

	switch format {
	case "jpeg", "jpg":
		img = flatten(img)
		opts := &jpeg.Options{
			Quality: p.settings.Quality,
		}
		if err := jpeg.Encode(&buf, img, opts); err != nil {
			return nil, fmt.Errorf("failed to encode JPEG: %w", err)
		}
	case "png", "":
		enc := png.Encoder{CompressionLevel: p.settings.Compression}
		if err := enc.Encode(&buf, img); err != nil {
			return nil, fmt.Errorf("failed to encode PNG: %w", err)
		}
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, format)
	}

	return buf.Bytes(), nil
}
