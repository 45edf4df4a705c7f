package profile

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
)

// Keywords and property names of the text format.
const (
	KeyProfile  = "profile"
	KeyGridUnit = "gridUnit"
	KeyClass    = "class"

	PropStroke  = "stroke"
	PropLength  = "length"
	PropSpacing = "spacing"
	PropDraw    = "draw"
	PropColor   = "color"

	PropWidth      = "width"
	PropBgColor    = "bgColor"
	PropFgColor    = "fgColor"
	PropFontName   = "fontName"
	PropFontSize   = "fontSize"
	PropFontBold   = "fontBold"
	PropFontItalic = "fontItalic"
	PropFontDraw   = "fontDraw"
)

var (
	ErrTokenCount        = errors.New("wrong number of tokens")
	ErrNoClass           = errors.New("property before class declaration")
	ErrInvalidClass      = errors.New("invalid class")
	ErrMisplacedProperty = errors.New("property not valid for class")
	ErrUnknownProperty   = errors.New("unknown property")
	ErrInvalidValue      = errors.New("invalid value")
)

var lineProps = map[string]bool{
	PropStroke:  true,
	PropLength:  true,
	PropSpacing: true,
	PropDraw:    true,
	PropColor:   true,
}

var graphProps = map[string]bool{
	PropWidth:      true,
	PropBgColor:    true,
	PropFgColor:    true,
	PropFontName:   true,
	PropFontSize:   true,
	PropFontBold:   true,
	PropFontItalic: true,
	PropFontDraw:   true,
}

// ParseError describes one rejected input line.
type ParseError struct {
	Line int
	Text string
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("line %d: %v: %q", e.Line, e.Err, strings.TrimSpace(e.Text))
}

func (e *ParseError) Unwrap() error { return e.Err }

// ErrorList is every ParseError from one Load, in line order.
type ErrorList []*ParseError

func (l ErrorList) Error() string {
	switch len(l) {
	case 0:
		return "no errors"
	case 1:
		return l[0].Error()
	}
	return fmt.Sprintf("%s (and %d more errors)", l[0].Error(), len(l)-1)
}

// Unwrap exposes the individual errors to errors.Is and errors.As.
func (l ErrorList) Unwrap() []error {
	errs := make([]error, len(l))
	for i, e := range l {
		errs[i] = e
	}
	return errs
}

// Parser applies profile text to a Profile.
type Parser struct {
	profile *Profile

	// The property set selected by the last class line. At most one is
	// set; both are empty before the first valid class line.
	line  LineSet
	graph *GraphPropertySet
}

// NewParser returns a parser that updates p in place. A nil p starts from
// Default().
func NewParser(p *Profile) *Parser {
	if p == nil {
		p = Default()
	}
	return &Parser{profile: p}
}

// Profile returns the profile being updated.
func (ps *Parser) Profile() *Profile {
	return ps.profile
}

// Load applies every line of r. Invalid lines are skipped and reported
// together as an ErrorList once the input is exhausted. A read failure is
// returned as is.
func (ps *Parser) Load(r io.Reader) error {
	var errs ErrorList
	sc := bufio.NewScanner(r)
	n := 0
	for sc.Scan() {
		n++
		text := sc.Text()
		if err := ps.ParseLine(text); err != nil {
			errs = append(errs, &ParseError{Line: n, Text: text, Err: err})
		}
	}
	if err := sc.Err(); err != nil {
		return fmt.Errorf("read profile: %w", err)
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

// ParseLine applies a single line. Blank lines are ignored.
func (ps *Parser) ParseLine(text string) error {
	fields := strings.Fields(text)
	if len(fields) == 0 {
		return nil
	}
	name := fields[0]

	var value string
	switch name {
	case KeyProfile, PropFontName:
		// Names may contain spaces.
		if len(fields) < 2 {
			return ErrTokenCount
		}
		value = strings.Join(fields[1:], " ")
	default:
		if len(fields) != 2 {
			return ErrTokenCount
		}
		value = fields[1]
	}

	switch {
	case name == KeyProfile:
		ps.profile.Name = value
		return nil
	case name == KeyGridUnit:
		v, err := AsFloat(value)
		if err != nil {
			return fmt.Errorf("%w: %v", ErrInvalidValue, err)
		}
		ps.profile.GridUnit = v
		return nil
	case name == KeyClass:
		return ps.selectClass(value)
	case lineProps[name]:
		if ps.graph != nil {
			return ErrMisplacedProperty
		}
		if ps.line == "" {
			return ErrNoClass
		}
		return ps.setLineProp(name, value)
	case graphProps[name]:
		if ps.line != "" {
			return ErrMisplacedProperty
		}
		if ps.graph == nil {
			return ErrNoClass
		}
		return ps.setGraphProp(name, value)
	}
	return ErrUnknownProperty
}

func (ps *Parser) selectClass(class string) error {
	ps.line, ps.graph = "", nil
	if class == MainWindowClass {
		ps.graph = &ps.profile.MainWindow
		return nil
	}
	for _, e := range Edges {
		if class == e.Class() {
			ps.graph = &ps.profile.Margins[e]
			return nil
		}
	}
	for _, s := range LineSets {
		if class == string(s) {
			ps.line = s
			return nil
		}
	}
	return ErrInvalidClass
}

func (ps *Parser) setLineProp(name, value string) error {
	ls := ps.profile.Line(ps.line)
	var err error
	switch name {
	case PropStroke:
		ls.Stroke, err = AsFloat(value)
	case PropLength:
		ls.Length, err = AsFloat(value)
	case PropSpacing:
		ls.Spacing, err = AsFloat(value)
	case PropDraw:
		ls.Draw = AsBoolean(value)
	case PropColor:
		ls.Color, err = AsColor(value)
	}
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidValue, err)
	}
	ps.profile.SetLine(ps.line, ls)
	return nil
}

func (ps *Parser) setGraphProp(name, value string) error {
	g := *ps.graph
	var err error
	switch name {
	case PropWidth:
		g.Width, err = AsFloat(value)
	case PropBgColor:
		g.BgColor, err = AsColor(value)
	case PropFgColor:
		g.FgColor, err = AsColor(value)
	case PropFontName:
		g.FontName = value
	case PropFontSize:
		g.FontSize, err = AsFloat(value)
	case PropFontBold:
		g.FontBold = AsBoolean(value)
	case PropFontItalic:
		g.FontItalic = AsBoolean(value)
	case PropFontDraw:
		g.FontDraw = AsBoolean(value)
	}
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidValue, err)
	}
	*ps.graph = g
	return nil
}
