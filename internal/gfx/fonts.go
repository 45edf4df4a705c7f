package gfx

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/gobolditalic"
	"golang.org/x/image/font/gofont/goitalic"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/gofont/gomonobold"
	"golang.org/x/image/font/gofont/gomonobolditalic"
	"golang.org/x/image/font/gofont/gomonoitalic"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
)

// DefaultFontName is the family used when none is configured.
const DefaultFontName = "Monospaced"

// ErrUnknownFont reports a family name with no matching face. The
// canvas still selects the proportional Go face at the requested size.
var ErrUnknownFont = errors.New("unknown font family")

type variant int

const (
	sansRegular variant = iota
	sansBold
	sansItalic
	sansBoldItalic
	monoRegular
	monoBold
	monoItalic
	monoBoldItalic
)

var variantTTF = map[variant][]byte{
	sansRegular:    goregular.TTF,
	sansBold:       gobold.TTF,
	sansItalic:     goitalic.TTF,
	sansBoldItalic: gobolditalic.TTF,
	monoRegular:    gomono.TTF,
	monoBold:       gomonobold.TTF,
	monoItalic:     gomonoitalic.TTF,
	monoBoldItalic: gomonobolditalic.TTF,
}

type faceKey struct {
	variant variant
	size    int
}

var monoFamilies = []string{"monospaced", "mono", "courier", "dialoginput", "consolas", "menlo"}

var sansFamilies = []string{"", "go", "sansserif", "sans-serif", "sans", "dialog", "serif", "helvetica", "arial", "verdana"}

// variantFor maps a font to one of the bundled Go font variants. The
// second result is false when the family name was not recognized.
func variantFor(f Font) (variant, bool) {
	name := strings.ToLower(strings.TrimSpace(f.Name))
	v, known := sansRegular, false
	for _, m := range monoFamilies {
		if strings.Contains(name, m) {
			v, known = monoRegular, true
			break
		}
	}
	if !known {
		for _, s := range sansFamilies {
			if name == s {
				known = true
				break
			}
		}
	}
	switch {
	case f.Style&Bold != 0 && f.Style&Italic != 0:
		v += sansBoldItalic
	case f.Style&Bold != 0:
		v += sansBold
	case f.Style&Italic != 0:
		v += sansItalic
	}
	return v, known
}

func unknownFont(f Font, known bool) error {
	if known {
		return nil
	}
	return fmt.Errorf("%w: %q", ErrUnknownFont, f.Name)
}

var (
	parsedMu sync.Mutex
	parsed   = make(map[variant]*opentype.Font)
)

// parsedFont returns the parsed font for v. Parsed fonts are immutable
// and shared; faces are not and belong to a single canvas.
func parsedFont(v variant) (*opentype.Font, error) {
	parsedMu.Lock()
	defer parsedMu.Unlock()
	if f, ok := parsed[v]; ok {
		return f, nil
	}
	f, err := opentype.Parse(variantTTF[v])
	if err != nil {
		return nil, err
	}
	parsed[v] = f
	return f, nil
}

func newFace(v variant, size int) (font.Face, error) {
	f, err := parsedFont(v)
	if err != nil {
		return nil, err
	}
	return opentype.NewFace(f, &opentype.FaceOptions{
		Size:    float64(size),
		DPI:     72,
		Hinting: font.HintingFull,
	})
}
