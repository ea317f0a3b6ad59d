package headless

import (
	"fmt"
	"sync"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gomedium"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/font/sfnt"
)

// BodySize is the point size text is measured at.
const BodySize = 14

// Font is a registered typeface.
type Font struct {
	Family string
	Glyphs int

	mu   sync.Mutex
	face font.Face
}

// Measure returns the advance width of s in pixels at BodySize and 72 DPI.
func (f *Font) Measure(s string) float64 {
	f.mu.Lock()
	defer f.mu.Unlock()
	adv := font.MeasureString(f.face, s)
	return float64(adv) / 64
}

// builtinFonts are registered with every runtime, body font first.
var builtinFonts = [][]byte{goregular.TTF, gomedium.TTF, gomono.TTF}

func parseFont(src []byte) (*Font, error) {
	f, err := opentype.Parse(src)
	if err != nil {
		return nil, err
	}
	var buf sfnt.Buffer
	family, err := f.Name(&buf, sfnt.NameIDFull)
	if err != nil {
		return nil, fmt.Errorf("failed to read font name: %w", err)
	}
	face, err := opentype.NewFace(f, &opentype.FaceOptions{Size: BodySize, DPI: 72, Hinting: font.HintingNone})
	if err != nil {
		return nil, fmt.Errorf("failed to create face for %s: %w", family, err)
	}
	return &Font{Family: family, Glyphs: f.NumGlyphs(), face: face}, nil
}

func loadFonts(sources [][]byte) ([]*Font, error) {
	out := make([]*Font, 0, len(sources))
	for _, src := range sources {
		f, err := parseFont(src)
		if err != nil {
			return nil, err
		}
		out = append(out, f)
	}
	return out, nil
}
