package ocr

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	_ "image/jpeg"
	"image/png"

	xdraw "golang.org/x/image/draw"
	_ "golang.org/x/image/tiff"
)

// ErrOCRNotEnabled is returned when recognition is requested but OCR
// support was not compiled in. Rebuild with -tags ocr to enable it.
// Declared outside the tagged files so callers can test for it in
// either build.
var ErrOCRNotEnabled = errors.New("OCR support not enabled; rebuild with -tags ocr")

// DefaultMinWidth is the pixel width below which scans are upscaled
// before recognition. Phone photos of printed rosters are often too
// small for Tesseract to segment reliably.
const DefaultMinWidth = 1500

// Prepare decodes a scanned image (PNG, JPEG or TIFF) and upscales it
// to at least minWidth pixels wide, preserving the aspect ratio. The
// result is re-encoded as PNG, which Tesseract accepts regardless of
// the input format. A minWidth of zero disables scaling.
func Prepare(imageData []byte, minWidth int) ([]byte, error) {
	img, _, err := image.Decode(bytes.NewReader(imageData))
	if err != nil {
		return nil, fmt.Errorf("ocr: decode image: %w", err)
	}

	if bounds := img.Bounds(); minWidth > 0 && bounds.Dx() > 0 && bounds.Dx() < minWidth {
		scale := float64(minWidth) / float64(bounds.Dx())
		height := int(float64(bounds.Dy())*scale + 0.5)
		dst := image.NewRGBA(image.Rect(0, 0, minWidth, height))
		xdraw.ApproxBiLinear.Scale(dst, dst.Bounds(), img, bounds, xdraw.Src, nil)
		img = dst
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, fmt.Errorf("ocr: encode image: %w", err)
	}
	return buf.Bytes(), nil
}
