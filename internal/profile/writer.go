package profile

import (
	"bufio"
	"fmt"
	"io"
	"strconv"

	"cartesian-plane/pkg/colorutil"
)

// Write emits p in canonical form: the name and grid unit, the main
// window, the margins top to left, then the line sets. Every property of
// every set is written, so loading the output reproduces p exactly.
func Write(w io.Writer, p *Profile) error {
	bw := bufio.NewWriter(w)
	pair := func(name, value string) {
		fmt.Fprintf(bw, "%s %s\n", name, value)
	}

	if p.Name != "" {
		pair(KeyProfile, p.Name)
	}
	pair(KeyGridUnit, formatFloat(p.GridUnit))

	graph := func(class string, g GraphPropertySet) {
		pair(KeyClass, class)
		pair(PropWidth, formatFloat(g.Width))
		pair(PropBgColor, colorutil.Hex(g.BgColor))
		pair(PropFgColor, colorutil.Hex(g.FgColor))
		if g.FontName != "" {
			pair(PropFontName, g.FontName)
		}
		pair(PropFontSize, formatFloat(g.FontSize))
		pair(PropFontBold, strconv.FormatBool(g.FontBold))
		pair(PropFontItalic, strconv.FormatBool(g.FontItalic))
		pair(PropFontDraw, strconv.FormatBool(g.FontDraw))
	}
	graph(MainWindowClass, p.MainWindow)
	for _, e := range Edges {
		graph(e.Class(), p.Margins[e])
	}

	for _, s := range LineSets {
		ls, ok := p.Lines[s]
		if !ok {
			continue
		}
		pair(KeyClass, string(s))
		pair(PropStroke, formatFloat(ls.Stroke))
		pair(PropLength, formatFloat(ls.Length))
		pair(PropSpacing, formatFloat(ls.Spacing))
		pair(PropDraw, strconv.FormatBool(ls.Draw))
		pair(PropColor, colorutil.Hex(ls.Color))
	}

	if err := bw.Flush(); err != nil {
		return fmt.Errorf("write profile: %w", err)
	}
	return nil
}
