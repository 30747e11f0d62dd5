package render

import (
	"bytes"
	"compress/gzip"
	"errors"
	"fmt"
	"image"
	"io"
	"path/filepath"
	"strings"

	"github.com/kerbaras/appassets/pkg/data"
	"github.com/srwiley/oksvg"
	"github.com/srwiley/rasterx"
)

const (
	// sniffLen is how much of an unknown source is inspected for an <svg> root
	sniffLen = 512

	// maxInflatedSVG caps the size of a decompressed .svgz document
	maxInflatedSVG = 32 << 20
)

var ErrNoViewBox = errors.New("SVG has neither a viewBox nor a width and height")

// IsVector reports whether a source should be rasterized as SVG. The extension
// wins; unknown extensions fall back to sniffing the leading bytes.
func IsVector(name string, head []byte) bool {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".svg", ".svgz":
		return true
	case ".png", ".jpg", ".jpeg", ".gif", ".webp", ".bmp", ".tif", ".tiff":
		return false
	}

	if len(head) > sniffLen {
		head = head[:sniffLen]
	}
	return bytes.Contains(bytes.ToLower(head), []byte("<svg"))
}

// rasterizeSVG draws an SVG document directly onto a width x height canvas.
// Rendering at the target size keeps vector edges sharp.
func rasterizeSVG(src []byte, name string, width, height int, fit data.FitMode) (image.Image, error) {
	reader, err := svgReader(src, name)
	if err != nil {
		return nil, err
	}

	icon, err := oksvg.ReadIconStream(reader, oksvg.WarnErrorMode)
	if err != nil {
		return nil, fmt.Errorf("failed to parse SVG: %w", err)
	}

	vb := icon.ViewBox
	if vb.W <= 0 || vb.H <= 0 {
		return nil, ErrNoViewBox
	}

	// The view box origin is scaled along with the drawing, so it is
	// subtracted before scaling. oksvg's SetTarget shifts it unscaled.
	x, y, w, h := svgPlacement(vb.W, vb.H, width, height, fit)
	icon.Transform = rasterx.Identity.Translate(x, y).Scale(w/vb.W, h/vb.H).Translate(-vb.X, -vb.Y)

	canvas := image.NewRGBA(image.Rect(0, 0, width, height))
	scanner := rasterx.NewScannerGV(width, height, canvas, canvas.Bounds())
	raster := rasterx.NewDasher(width, height, scanner)
	icon.Draw(raster, 1.0)

	return canvas, nil
}

// svgPlacement maps a view box onto the canvas according to the fit mode.
// It returns the target rectangle handed to oksvg; it may extend past the
// canvas for cover, where the scanner clips the overflow.
func svgPlacement(viewW, viewH float64, width, height int, fit data.FitMode) (x, y, w, h float64) {
	cw, ch := float64(width), float64(height)
	if viewW <= 0 || viewH <= 0 || fit == data.FitStretch || fit == "" {
		return 0, 0, cw, ch
	}

	scale := cw / viewW
	if hs := ch / viewH; (fit == data.FitContain && hs < scale) || (fit == data.FitCover && hs > scale) {
		scale = hs
	}

	w = viewW * scale
	h = viewH * scale
	return (cw - w) / 2, (ch - h) / 2, w, h
}

func svgReader(src []byte, name string) (io.Reader, error) {
	if strings.ToLower(filepath.Ext(name)) != ".svgz" {
		return bytes.NewReader(src), nil
	}

	zr, err := gzip.NewReader(bytes.NewReader(src))
	if err != nil {
		return nil, fmt.Errorf("failed to open svgz: %w", err)
	}
	defer zr.Close()

	plain, err := io.ReadAll(io.LimitReader(zr, maxInflatedSVG+1))
	if err != nil {
		return nil, fmt.Errorf("failed to inflate svgz: %w", err)
	}
	if len(plain) > maxInflatedSVG {
		return nil, fmt.Errorf("failed to inflate svgz: document exceeds %d bytes", maxInflatedSVG)
	}
	return bytes.NewReader(plain), nil
}
