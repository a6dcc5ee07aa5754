package branding

import (
	"bytes"
	"encoding/base64"
	"image"
	"image/color"
	"image/png"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"invoicestudio/internal/domain"
)

func solidImage(c color.RGBA) image.Image {
	img := image.NewRGBA(image.Rect(0, 0, 64, 64))
	for y := 0; y < 64; y++ {
		for x := 0; x < 64; x++ {
			img.Set(x, y, c)
		}
	}
	return img
}

func pngDataURL(t *testing.T, img image.Image) string {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return "data:image/png;base64," + base64.StdEncoding.EncodeToString(buf.Bytes())
}

func TestExtractPicksDominantVibrantColor(t *testing.T) {
	got := Extract(solidImage(color.RGBA{R: 0xE0, G: 0x23, B: 0x4E, A: 0xFF}))
	assert.Equal(t, "#e0234e", got.Accent)
	assert.Empty(t, got.Secondary)
}

func TestExtractSkipsWhiteBackground(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 100, 100))
	for y := 0; y < 100; y++ {
		for x := 0; x < 100; x++ {
			if x < 30 {
				img.Set(x, y, color.RGBA{R: 0x0D, G: 0x94, B: 0x88, A: 0xFF})
			} else {
				img.Set(x, y, color.RGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF})
			}
		}
	}
	got := Extract(img)
	assert.Equal(t, "#0d9488", got.Accent)
}

func TestExtractDeterministicOnEqualCounts(t *testing.T) {
	// Two colors with identical sample counts and identical saturation:
	// only the quantized-key tie-break decides their order, so repeated
	// extractions must agree.
	img := image.NewRGBA(image.Rect(0, 0, 20, 20))
	for y := 0; y < 20; y++ {
		for x := 0; x < 20; x++ {
			if x < 10 {
				img.Set(x, y, color.RGBA{R: 0xC0, G: 0x20, B: 0x20, A: 0xFF})
			} else {
				img.Set(x, y, color.RGBA{R: 0x20, G: 0x20, B: 0xC0, A: 0xFF})
			}
		}
	}

	first := Extract(img)
	assert.Equal(t, "#2020c0", first.Accent)
	assert.Equal(t, "#c02020", first.Secondary)
	for i := 0; i < 20; i++ {
		assert.Equal(t, first, Extract(img))
	}
}

func TestExtractAllWhiteFallsBackToFirstBucket(t *testing.T) {
	got := Extract(solidImage(color.RGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF}))
	assert.Equal(t, "#ffffff", got.Accent)
}

func TestExtractFromDataURL(t *testing.T) {
	url := pngDataURL(t, solidImage(color.RGBA{R: 0x00, G: 0x52, B: 0xCC, A: 0xFF}))
	got := ExtractFromDataURL(url)
	assert.Equal(t, "#0052cc", got.Accent)
}

func TestExtractFromDataURLBadInput(t *testing.T) {
	assert.Equal(t, domain.DefaultAccentColor, ExtractFromDataURL("data:image/png;base64,not-base64").Accent)
	assert.Equal(t, domain.DefaultAccentColor, ExtractFromDataURL("garbage").Accent)
}
