package imaging

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// noisyPNG encodes a width x height image of random pixels. Noise defeats
// PNG's filtering, so even modest dimensions produce a file well over the
// compression threshold.
func noisyPNG(t *testing.T, width, height int) []byte {
	t.Helper()

	rng := rand.New(rand.NewSource(42))
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			img.Set(x, y, color.RGBA{
				R: uint8(rng.Intn(256)),
				G: uint8(rng.Intn(256)),
				B: uint8(rng.Intn(256)),
				A: 255,
			})
		}
	}

	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	require.GreaterOrEqual(t, buf.Len(), compressThreshold)
	return buf.Bytes()
}

func TestCompress_SmallFilePassthrough(t *testing.T) {
	data := []byte("tiny jpeg")

	result := Compress(data, "image/jpeg")

	assert.False(t, result.Compressed)
	assert.Equal(t, data, result.Data)
	assert.Equal(t, "image/jpeg", result.ContentType)
}

func TestCompress_UndecodablePassthrough(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	data := make([]byte, compressThreshold+1)
	rng.Read(data)

	result := Compress(data, "application/octet-stream")

	assert.False(t, result.Compressed)
	assert.Equal(t, data, result.Data)
}

func TestCompress_ScalesWideImage(t *testing.T) {
	data := noisyPNG(t, 2000, 1000)

	result := Compress(data, "image/png")

	require.True(t, result.Compressed)
	assert.Equal(t, "image/jpeg", result.ContentType)

	img, format, err := image.Decode(bytes.NewReader(result.Data))
	require.NoError(t, err)
	assert.Equal(t, "jpeg", format)
	assert.Equal(t, 1200, img.Bounds().Dx())
	assert.Equal(t, 600, img.Bounds().Dy())
}

func TestCompress_KeepsNarrowDimensions(t *testing.T) {
	data := noisyPNG(t, 800, 1000)

	result := Compress(data, "image/png")

	require.True(t, result.Compressed)

	img, _, err := image.Decode(bytes.NewReader(result.Data))
	require.NoError(t, err)
	assert.Equal(t, 800, img.Bounds().Dx())
	assert.Equal(t, 1000, img.Bounds().Dy())
}

func TestDataURI(t *testing.T) {
	uri := DataURI("image/png", []byte("abc"))
	assert.Equal(t, "data:image/png;base64,YWJj", uri)
}
