package imaging

import (
	"bytes"
	"image"
	"image/jpeg"
	_ "image/png"

	"golang.org/x/image/draw"
)

const (
	// compressThreshold is the size below which files are passed through
	// untouched; re-encoding small images costs more than it saves.
	compressThreshold = 200 * 1024

	// maxWidth bounds the longest storefront display size.
	maxWidth = 1200

	// jpegQuality balances file size against visible artifacts.
	jpegQuality = 85
)

// Result describes the outcome of a compression attempt.
type Result struct {
	Data        []byte
	ContentType string
	// Compressed is false when the input was passed through unchanged,
	// either because it was already small or because it did not decode.
	Compressed bool
}

// Compress shrinks an uploaded image: anything at or above the size threshold
// is decoded, scaled down to at most maxWidth wide preserving aspect ratio,
// and re-encoded as JPEG. Inputs that cannot be decoded are returned as-is
// rather than rejected, so unusual but valid files still reach storage.
func Compress(data []byte, contentType string) Result {
	passthrough := Result{Data: data, ContentType: contentType}

	if len(data) < compressThreshold {
		return passthrough
	}

	src, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return passthrough
	}

	bounds := src.Bounds()
	width := bounds.Dx()
	height := bounds.Dy()

	if width > maxWidth {
		height = height * maxWidth / width
		width = maxWidth
	}

	scaled := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.ApproxBiLinear.Scale(scaled, scaled.Bounds(), src, bounds, draw.Over, nil)

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, scaled, &jpeg.Options{Quality: jpegQuality}); err != nil {
		return passthrough
	}

	return Result{
		Data:        buf.Bytes(),
		ContentType: "image/jpeg",
		Compressed:  true,
	}
}
