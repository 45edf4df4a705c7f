package profile

import (
	"bytes"
	"errors"
	"fmt"
	"strings"
	"testing"

	"cartesian-plane/pkg/colorutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// distinct returns a profile whose every value differs from Default().
func distinct() *Profile {
	p := Default()
	p.Name = "Distinct"
	p.GridUnit = 2 * p.GridUnit
	bump := func(g GraphPropertySet) GraphPropertySet {
		g.Width += 5
		g.BgColor = colorutil.FromRGB(colorutil.RGB(g.BgColor) ^ 0x0f0f0f)
		g.FgColor = colorutil.FromRGB(colorutil.RGB(g.FgColor) ^ 0xf0f0f0)
		g.FontName = "Go Mono"
		g.FontSize += 3.5
		g.FontBold = !g.FontBold
		g.FontItalic = !g.FontItalic
		g.FontDraw = !g.FontDraw
		return g
	}
	p.MainWindow = bump(p.MainWindow)
	for _, e := range Edges {
		p.Margins[e] = bump(p.Margins[e])
	}
	for _, s := range LineSets {
		ls := p.Lines[s]
		ls.Stroke += 1
		ls.Length += 2
		ls.Spacing += 0.25
		ls.Draw = !ls.Draw
		ls.Color = colorutil.FromRGB(colorutil.RGB(ls.Color) ^ 0x123456)
		p.Lines[s] = ls
	}
	return p
}

// baseInput returns a valid profile text as separate lines:
//
//	[0] profile <name>
//	[1] gridUnit <unit>
//	[2] class GraphPropertySetMW
//	[3] fontSize <size>
//	[4] class LinePropertySetAxes
//	[5] stroke <stroke>
//
// and the profile that loading it must produce.
func baseInput() ([]string, *Profile) {
	src := distinct()
	want := Default()
	want.Name = src.Name
	want.GridUnit = src.GridUnit
	want.MainWindow.FontSize = src.MainWindow.FontSize
	axes := want.Lines[Axes]
	axes.Stroke = src.Lines[Axes].Stroke
	want.Lines[Axes] = axes

	return []string{
		KeyProfile + " " + src.Name,
		KeyGridUnit + " " + formatFloat(src.GridUnit),
		KeyClass + " " + MainWindowClass,
		PropFontSize + " " + formatFloat(src.MainWindow.FontSize),
		KeyClass + " " + string(Axes),
		PropStroke + " " + formatFloat(src.Lines[Axes].Stroke),
	}, want
}

func insert(lines []string, at int, more ...string) []string {
	out := append([]string{}, lines[:at]...)
	out = append(out, more...)
	return append(out, lines[at:]...)
}

func load(t *testing.T, lines []string) (*Profile, ErrorList) {
	t.Helper()
	ps := NewParser(nil)
	err := ps.Load(strings.NewReader(strings.Join(lines, "\n")))
	if err == nil {
		return ps.Profile(), nil
	}
	var list ErrorList
	require.True(t, errors.As(err, &list), "unexpected error type %T", err)
	return ps.Profile(), list
}

func causes(list ErrorList) []error {
	var out []error
	for _, e := range list {
		out = append(out, e.Err)
	}
	return out
}

func TestNewParserDefaults(t *testing.T) {
	assert.Equal(t, Default(), NewParser(nil).Profile())

	p := Default()
	p.GridUnit = 99
	ps := NewParser(p)
	assert.Same(t, p, ps.Profile())
	assert.Equal(t, 99.0, ps.Profile().GridUnit)
}

func TestLoadBase(t *testing.T) {
	lines, want := baseInput()
	got, errs := load(t, lines)
	assert.Empty(t, errs)
	assert.Equal(t, want, got)
}

func TestLoadEveryLineSet(t *testing.T) {
	src := distinct()
	want := Default()
	var lines []string
	for _, s := range LineSets {
		lines = append(lines,
			KeyClass+" "+string(s),
			PropSpacing+" "+formatFloat(src.Lines[s].Spacing),
		)
		ls := want.Lines[s]
		ls.Spacing = src.Lines[s].Spacing
		want.Lines[s] = ls
	}
	got, errs := load(t, lines)
	assert.Empty(t, errs)
	assert.Equal(t, want, got)
}

func TestWriteLoadRoundTrip(t *testing.T) {
	for _, p := range []*Profile{Default(), distinct()} {
		var buf bytes.Buffer
		require.NoError(t, Write(&buf, p))

		ps := NewParser(nil)
		require.NoError(t, ps.Load(&buf))
		assert.Equal(t, p, ps.Profile(), p.Name)
	}
}

func TestExcessWhitespace(t *testing.T) {
	lines, want := baseInput()
	for i, l := range lines {
		f := strings.Fields(l)
		lines[i] = fmt.Sprintf("   \t   %s   \t   %s   \t   ", f[0], f[1])
	}
	lines = insert(lines, len(lines)/2, "     ")
	lines = append([]string{"     "}, lines...)
	lines = append(lines, "     ", "")

	got, errs := load(t, lines)
	assert.Empty(t, errs)
	assert.Equal(t, want, got)
}

func TestWrongTokenCount(t *testing.T) {
	lines, want := baseInput()
	lines = insert(lines, 3, PropFontSize+" ", PropFontSize+" 10, a")

	got, errs := load(t, lines)
	require.Len(t, errs, 2)
	assert.Equal(t, []error{ErrTokenCount, ErrTokenCount}, causes(errs))
	assert.Equal(t, []int{4, 5}, []int{errs[0].Line, errs[1].Line})
	assert.Equal(t, want, got)
}

func TestMissingClass(t *testing.T) {
	lines, want := baseInput()
	lines = insert(lines, 2, PropFontSize+" 10", PropStroke+" 2")

	got, errs := load(t, lines)
	assert.Equal(t, []error{ErrNoClass, ErrNoClass}, causes(errs))
	assert.Equal(t, want, got)
}

func TestInvalidClassClearsClass(t *testing.T) {
	// The invalid declaration follows the main window properties, so the
	// next two properties would otherwise apply to the main window.
	lines, want := baseInput()
	lines = insert(lines, 4, KeyClass+" notAValidClassName", PropStroke+" 2", PropFontSize+" 10")

	got, errs := load(t, lines)
	assert.Equal(t, []error{ErrInvalidClass, ErrNoClass, ErrNoClass}, causes(errs))
	assert.Equal(t, want, got)
}

func TestMisplacedProperty(t *testing.T) {
	lines, want := baseInput()
	lines = insert(lines, 3, PropStroke+" 2")
	lines = insert(lines, 6, PropFontSize+" 10")

	got, errs := load(t, lines)
	assert.Equal(t, []error{ErrMisplacedProperty, ErrMisplacedProperty}, causes(errs))
	assert.Equal(t, want, got)
}

func TestMisplacedPropertyEveryName(t *testing.T) {
	lines, want := baseInput()
	lines = append(lines, KeyClass+" "+MainWindowClass)
	for _, name := range []string{PropStroke, PropLength, PropSpacing, PropDraw, PropColor} {
		lines = append(lines, name+" 2")
	}
	lines = append(lines, KeyClass+" "+string(Axes))
	for _, name := range []string{PropFontBold, PropFontItalic, PropFontName, PropFontDraw, PropBgColor, PropFgColor, PropWidth} {
		lines = append(lines, name+" 2")
	}

	got, errs := load(t, lines)
	require.Len(t, errs, 12)
	for _, e := range errs {
		assert.ErrorIs(t, e, ErrMisplacedProperty)
	}
	assert.Equal(t, want, got)
}

func TestUnknownProperty(t *testing.T) {
	lines, want := baseInput()
	lines = insert(lines, 2, "notAValidPropertyName 10")
	lines = insert(lines, 4, "alsoNotValid 2")

	got, errs := load(t, lines)
	assert.Equal(t, []error{ErrUnknownProperty, ErrUnknownProperty}, causes(errs))
	assert.Equal(t, want, got)
}

func TestInvalidValue(t *testing.T) {
	lines, want := baseInput()
	lines = insert(lines, 5, PropLength+" xx", PropColor+" yy")
	lines = append(lines, KeyGridUnit+" NaN")

	got, errs := load(t, lines)
	require.Len(t, errs, 3)
	for _, e := range errs {
		assert.ErrorIs(t, e, ErrInvalidValue)
	}
	assert.Equal(t, want, got)
}

func TestErrorListIs(t *testing.T) {
	_, errs := load(t, []string{"stroke 2", "class Nope"})
	require.Len(t, errs, 2)

	var err error = errs
	assert.ErrorIs(t, err, ErrNoClass)
	assert.ErrorIs(t, err, ErrInvalidClass)
	assert.NotErrorIs(t, err, ErrTokenCount)
	assert.Contains(t, err.Error(), "line 1")
	assert.Contains(t, err.Error(), "1 more")
}

func TestNamesWithSpaces(t *testing.T) {
	got, errs := load(t, []string{
		"profile   My  Plane",
		"class GraphPropertySetLeftMargin",
		"fontName Courier New",
	})
	assert.Empty(t, errs)
	assert.Equal(t, "My Plane", got.Name)
	assert.Equal(t, "Courier New", got.Margins[Left].FontName)

	_, errs = load(t, []string{"profile"})
	assert.Equal(t, []error{ErrTokenCount}, causes(errs))
}

func TestLoadReadError(t *testing.T) {
	err := NewParser(nil).Load(failingReader{})
	require.Error(t, err)
	var list ErrorList
	assert.False(t, errors.As(err, &list))
}

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) { return 0, errors.New("boom") }
