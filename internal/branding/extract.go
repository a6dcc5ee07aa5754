// Package branding derives accent colors from uploaded logo images so a
// document picks up its brand palette automatically.
package branding

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"sort"
	"strings"

	"invoicestudio/internal/domain"
)

// BrandColors is the extraction result. Secondary is empty when the logo
// only yields one usable color.
type BrandColors struct {
	Accent    string `json:"accent"`
	Secondary string `json:"secondary,omitempty"`
}

// quantShift folds each channel to 4 bits, giving 4096 buckets. Coarse
// enough to merge anti-aliasing noise, fine enough to keep brand colors
// apart.
const quantShift = 4

// sampleStride skips pixels while scanning; logos are flat-color images so
// a sparse sample finds the same palette.
const sampleStride = 10

type bucket struct {
	key     uint32
	r, g, b uint32
	count   int
}

// ExtractFromDataURL pulls brand colors out of a base64 data URL. Any
// decode failure falls back to the default accent rather than erroring:
// a bad logo should never block editing.
func ExtractFromDataURL(dataURL string) BrandColors {
	img, err := decodeDataURL(dataURL)
	if err != nil {
		return BrandColors{Accent: domain.DefaultAccentColor}
	}
	return Extract(img)
}

// Extract finds the dominant vibrant colors of an image. The most
// saturated mid-luminance color wins; whites and near-blacks are skipped
// because they make unusable accents.
func Extract(img image.Image) BrandColors {
	palette := dominantBuckets(img, 6)
	if len(palette) == 0 {
		return BrandColors{Accent: domain.DefaultAccentColor}
	}

	var candidates []bucket
	for _, b := range palette {
		if tooLight(b) || tooDark(b) {
			continue
		}
		candidates = append(candidates, b)
	}
	sort.SliceStable(candidates, func(i, j int) bool {
		return saturation(candidates[i]) > saturation(candidates[j])
	})

	if len(candidates) == 0 {
		return BrandColors{Accent: hexColor(palette[0])}
	}
	out := BrandColors{Accent: hexColor(candidates[0])}
	if len(candidates) > 1 {
		out.Secondary = hexColor(candidates[1])
	}
	return out
}

func decodeDataURL(dataURL string) (image.Image, error) {
	payload := dataURL
	if strings.HasPrefix(dataURL, "data:") {
		_, rest, ok := strings.Cut(dataURL, ",")
		if !ok {
			return nil, fmt.Errorf("malformed data url")
		}
		payload = rest
	}
	raw, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return nil, fmt.Errorf("decode base64: %w", err)
	}
	img, _, err := image.Decode(bytes.NewReader(raw))
	if err != nil {
		return nil, fmt.Errorf("decode image: %w", err)
	}
	return img, nil
}

// dominantBuckets quantizes a sparse pixel sample and returns the top n
// buckets by frequency. Fully transparent pixels are ignored.
func dominantBuckets(img image.Image, n int) []bucket {
	counts := make(map[uint32]*bucket)
	bounds := img.Bounds()
	for y := bounds.Min.Y; y < bounds.Max.Y; y += sampleStride {
		for x := bounds.Min.X; x < bounds.Max.X; x += sampleStride {
			r, g, b, a := img.At(x, y).RGBA()
			if a < 0x8000 {
				continue
			}
			r8, g8, b8 := r>>8, g>>8, b>>8
			key := (r8>>quantShift)<<8 | (g8>>quantShift)<<4 | b8>>quantShift
			bk, ok := counts[key]
			if !ok {
				bk = &bucket{key: key, r: r8, g: g8, b: b8}
				counts[key] = bk
			}
			bk.count++
		}
	}

	all := make([]bucket, 0, len(counts))
	for _, bk := range counts {
		all = append(all, *bk)
	}
	// Equal counts tie-break on the quantized key so the same logo always
	// yields the same ordering regardless of map iteration.
	sort.SliceStable(all, func(i, j int) bool {
		if all[i].count != all[j].count {
			return all[i].count > all[j].count
		}
		return all[i].key < all[j].key
	})
	if len(all) > n {
		all = all[:n]
	}
	return all
}

func luminance(b bucket) float64 {
	return (0.299*float64(b.r) + 0.587*float64(b.g) + 0.114*float64(b.b)) / 255
}

func tooLight(b bucket) bool { return luminance(b) > 0.9 }
func tooDark(b bucket) bool  { return luminance(b) < 0.15 }

func saturation(b bucket) float64 {
	max := float64(maxU32(b.r, maxU32(b.g, b.b))) / 255
	min := float64(minU32(b.r, minU32(b.g, b.b))) / 255
	if max == 0 {
		return 0
	}
	return (max - min) / max
}

func maxU32(a, b uint32) uint32 {
	if a > b {
		return a
	}
	return b
}

func minU32(a, b uint32) uint32 {
	if a < b {
		return a
	}
	return b
}

func hexColor(b bucket) string {
	return fmt.Sprintf("#%02x%02x%02x", b.r, b.g, b.b)
}
