// Package profile holds the named, persistent configuration of a plane:
// the grid unit, the main window and margin property sets, and one line
// property set per line family.
//
// Profiles are read and written in a line oriented text format:
//
//	profile Default
//	gridUnit 65
//	class GraphPropertySetMW
//	fontSize 10
//	class LinePropertySetAxes
//	stroke 2
//
// Each line is a keyword or property name followed by its value. A class
// line selects the property set the following properties apply to.
package profile

import (
	"fmt"
	"image/color"
	"maps"
	"os"

	"cartesian-plane/internal/gfx"
	"cartesian-plane/internal/plane"
	"cartesian-plane/pkg/colorutil"
)

// DefaultName is the name of the built-in profile.
const DefaultName = "Default"

// LineSet is the class name of a line property set.
type LineSet string

const (
	Axes      LineSet = "LinePropertySetAxes"
	GridLines LineSet = "LinePropertySetGridLines"
	MajorTics LineSet = "LinePropertySetTicMajor"
	MinorTics LineSet = "LinePropertySetTicMinor"
)

// LineSets lists every line property set in canonical order.
var LineSets = []LineSet{Axes, GridLines, MajorTics, MinorTics}

// Edge indexes the four margins.
type Edge int

const (
	Top Edge = iota
	Right
	Bottom
	Left
)

// Edges lists every margin in canonical order.
var Edges = []Edge{Top, Right, Bottom, Left}

// MainWindowClass is the class name of the main window property set.
const MainWindowClass = "GraphPropertySetMW"

var edgeClasses = [...]string{
	Top:    "GraphPropertySetTopMargin",
	Right:  "GraphPropertySetRightMargin",
	Bottom: "GraphPropertySetBottomMargin",
	Left:   "GraphPropertySetLeftMargin",
}

// Class returns the property set class name of the margin.
func (e Edge) Class() string {
	if e < Top || e > Left {
		return ""
	}
	return edgeClasses[e]
}

func (e Edge) String() string {
	switch e {
	case Top:
		return "top"
	case Right:
		return "right"
	case Bottom:
		return "bottom"
	case Left:
		return "left"
	}
	return fmt.Sprintf("Edge(%d)", int(e))
}

// LinePropertySet configures one family of lines.
type LinePropertySet struct {
	Stroke float64 `json:"stroke" yaml:"stroke"`
	Length float64 `json:"length" yaml:"length"`
	// Spacing is the number of lines per grid unit.
	Spacing float64    `json:"spacing" yaml:"spacing"`
	Draw    bool       `json:"draw" yaml:"draw"`
	Color   color.RGBA `json:"color" yaml:"color"`
}

// GraphPropertySet configures the main window or one margin.
type GraphPropertySet struct {
	Width      float64    `json:"width" yaml:"width"`
	BgColor    color.RGBA `json:"bgColor" yaml:"bgColor"`
	FgColor    color.RGBA `json:"fgColor" yaml:"fgColor"`
	FontName   string     `json:"fontName" yaml:"fontName"`
	FontSize   float64    `json:"fontSize" yaml:"fontSize"`
	FontBold   bool       `json:"fontBold" yaml:"fontBold"`
	FontItalic bool       `json:"fontItalic" yaml:"fontItalic"`
	FontDraw   bool       `json:"fontDraw" yaml:"fontDraw"`
}

// Font returns the label font described by the set.
func (g GraphPropertySet) Font() gfx.Font {
	style := gfx.Plain
	if g.FontBold {
		style |= gfx.Bold
	}
	if g.FontItalic {
		style |= gfx.Italic
	}
	return gfx.Font{Name: g.FontName, Style: style, Size: g.FontSize}
}

// Profile is a complete plane configuration.
type Profile struct {
	Name       string
	GridUnit   float64
	MainWindow GraphPropertySet
	Margins    [4]GraphPropertySet
	Lines      map[LineSet]LinePropertySet
}

// Default returns a new profile holding the built-in defaults.
func Default() *Profile {
	margin := GraphPropertySet{
		Width:    60,
		BgColor:  colorutil.FromRGB(0x008080),
		FgColor:  colorutil.FromRGB(0x000000),
		FontName: gfx.DefaultFontName,
		FontSize: 10,
		FontDraw: true,
	}
	return &Profile{
		Name:     DefaultName,
		GridUnit: 65,
		MainWindow: GraphPropertySet{
			Width:    500,
			BgColor:  colorutil.FromRGB(0xE6E6E6),
			FgColor:  colorutil.FromRGB(0x000000),
			FontName: gfx.DefaultFontName,
			FontSize: 10,
			FontDraw: true,
		},
		Margins: [4]GraphPropertySet{margin, margin, margin, margin},
		Lines: map[LineSet]LinePropertySet{
			Axes: {
				Stroke: 2,
				Color:  colorutil.FromRGB(0x000000),
			},
			GridLines: {
				Stroke:  1,
				Spacing: 1,
				Draw:    true,
				Color:   colorutil.FromRGB(0x4B4B4B),
			},
			MajorTics: {
				Stroke:  2,
				Length:  7,
				Spacing: 2,
				Draw:    true,
				Color:   colorutil.FromRGB(0x000000),
			},
			MinorTics: {
				Stroke:  1,
				Length:  5,
				Spacing: 10,
				Draw:    true,
				Color:   colorutil.FromRGB(0x000000),
			},
		},
	}
}

// Clone returns a deep copy of p.
func (p *Profile) Clone() *Profile {
	c := *p
	c.Lines = maps.Clone(p.Lines)
	return &c
}

// Line returns the named line property set, or the zero set when the
// profile has none.
func (p *Profile) Line(s LineSet) LinePropertySet {
	return p.Lines[s]
}

// SetLine replaces the named line property set.
func (p *Profile) SetLine(s LineSet, ls LinePropertySet) {
	if p.Lines == nil {
		p.Lines = make(map[LineSet]LinePropertySet, len(LineSets))
	}
	p.Lines[s] = ls
}

// Margin returns the property set of one margin.
func (p *Profile) Margin(e Edge) GraphPropertySet {
	return p.Margins[e]
}

// Config converts the profile into the input of a paint pass.
func (p *Profile) Config() plane.Config {
	margin := func(e Edge) plane.Margin {
		m := p.Margins[e]
		return plane.Margin{Width: m.Width, Color: m.BgColor}
	}
	family := func(s LineSet) plane.LineFamily {
		ls := p.Lines[s]
		return plane.LineFamily{
			Color:   ls.Color,
			Stroke:  ls.Stroke,
			PerUnit: ls.Spacing,
			Length:  ls.Length,
			Draw:    ls.Draw,
		}
	}
	return plane.Config{
		GridUnit:   p.GridUnit,
		Background: p.MainWindow.BgColor,
		Margins: plane.Margins{
			Top:    margin(Top),
			Right:  margin(Right),
			Bottom: margin(Bottom),
			Left:   margin(Left),
		},
		GridLines: family(GridLines),
		MinorTics: family(MinorTics),
		MajorTics: family(MajorTics),
		Axes:      family(Axes),
		Labels: plane.LabelStyle{
			Font:  p.MainWindow.Font(),
			Color: p.MainWindow.FgColor,
			Draw:  p.MainWindow.FontDraw,
		},
	}
}

// LoadFile parses the profile at path on top of the defaults. When some
// lines are invalid the returned profile holds every valid line and the
// error is an ErrorList.
func LoadFile(path string) (*Profile, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open profile: %w", err)
	}
	defer f.Close()

	ps := NewParser(nil)
	err = ps.Load(f)
	return ps.Profile(), err
}

// SaveFile writes p to path in the text format.
func SaveFile(path string, p *Profile) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create profile: %w", err)
	}
	if err := Write(f, p); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close profile: %w", err)
	}
	return nil
}
