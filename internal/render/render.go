// Package render assembles document trees into files.
package render

import (
	"errors"
	"fmt"
	"math"
	"unicode/utf8"

	"github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/page"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/signature"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/Kaiser28/comptable-dashboard/internal/docs"
)

// Assembler turns a document tree into file bytes.
type Assembler interface {
	Assemble(d *docs.Document) ([]byte, error)
	ContentType() string
	Extension() string
}

const (
	margin     = 20.0  // mm
	usable     = 170.0 // A4 width minus margins
	fontSize   = 10.0
	lineHeight = 5.0
	charWidth  = 1.9 // average Helvetica glyph at fontSize, mm
	gridCols   = 12
)

var errNilDocument = errors.New("render: nil document")

// PDF renders A4 pages with maroto.
type PDF struct{}

func (PDF) ContentType() string { return "application/pdf" }

func (PDF) Extension() string { return "pdf" }

func (PDF) Assemble(d *docs.Document) ([]byte, error) {
	if d == nil {
		return nil, errNilDocument
	}
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(margin).
		WithRightMargin(margin).
		WithTopMargin(margin).
		WithPageNumber().
		Build()
	m := maroto.New(cfg)

	pages := [][]core.Row{title(d)}
	for _, b := range d.Blocks {
		if _, ok := b.(docs.PageBreak); ok {
			pages = append(pages, nil)
			continue
		}
		cur := len(pages) - 1
		pages[cur] = append(pages[cur], rows(b)...)
	}
	for _, rs := range pages {
		if len(rs) == 0 {
			continue
		}
		m.AddPages(page.New().Add(rs...))
	}

	out, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("render pdf: %w", err)
	}
	return out.GetBytes(), nil
}

func title(d *docs.Document) []core.Row {
	out := []core.Row{
		text.NewRow(height(d.Title, gridCols, 14), d.Title, props.Text{Size: 14, Style: fontstyle.Bold, Align: align.Center}),
	}
	if d.Subtitle != "" {
		out = append(out, text.NewRow(height(d.Subtitle, gridCols, fontSize), d.Subtitle, props.Text{Size: fontSize, Style: fontstyle.Italic, Align: align.Center}))
	}
	return append(out, row.New(6))
}

func rows(b docs.Block) []core.Row {
	switch x := b.(type) {
	case docs.Heading:
		size := 12.0
		if x.Level > 1 {
			size = 11
		}
		return []core.Row{
			row.New(3),
			text.NewRow(height(x.Text, gridCols, size), x.Text, props.Text{Size: size, Style: fontstyle.Bold, Align: align.Left}),
		}
	case docs.Paragraph:
		s := x.Text()
		p := props.Text{Size: fontSize, Style: style(x.Runs), Align: alignment(x.Align)}
		return []core.Row{text.NewRow(height(s, gridCols, fontSize)+1, s, p)}
	case docs.Table:
		return table(x)
	case docs.Signatures:
		if len(x.Lines) == 0 {
			return nil
		}
		size := gridCols / len(x.Lines)
		mentions := row.New(lineHeight * 2)
		sigs := row.New(25)
		for _, s := range x.Lines {
			mentions.Add(text.NewCol(size, s.Mention, props.Text{Size: fontSize - 1, Style: fontstyle.Italic, Align: align.Center}))
			sigs.Add(signature.NewCol(size, s.Role+" – "+s.Name, props.Signature{FontSize: fontSize - 1}))
		}
		return []core.Row{row.New(8), mentions, sigs}
	}
	return nil
}

func table(t docs.Table) []core.Row {
	n := len(t.Header)
	if n == 0 && len(t.Rows) > 0 {
		n = len(t.Rows[0])
	}
	if n == 0 {
		return nil
	}
	widths := t.Widths
	if len(widths) != n {
		widths = make([]int, n)
		for i := range widths {
			widths[i] = gridCols / n
		}
	}
	var out []core.Row
	line := func(cells []string, st fontstyle.Type) core.Row {
		h := lineHeight
		for i, c := range cells {
			if i < n {
				h = math.Max(h, height(c, widths[i], fontSize))
			}
		}
		r := row.New(h + 1)
		for i := 0; i < n; i++ {
			cell := ""
			if i < len(cells) {
				cell = cells[i]
			}
			r.Add(text.NewCol(widths[i], cell, props.Text{Size: fontSize, Style: st, Left: 1, Top: 0.5}))
		}
		return r
	}
	if len(t.Header) > 0 {
		out = append(out, line(t.Header, fontstyle.Bold))
	}
	for _, r := range t.Rows {
		out = append(out, line(r, fontstyle.Normal))
	}
	return append(out, row.New(3))
}

func style(runs []docs.Run) fontstyle.Type {
	if len(runs) == 0 {
		return fontstyle.Normal
	}
	b, i := true, true
	for _, r := range runs {
		b = b && r.Bold
		i = i && r.Italic
	}
	switch {
	case b && i:
		return fontstyle.BoldItalic
	case b:
		return fontstyle.Bold
	case i:
		return fontstyle.Italic
	}
	return fontstyle.Normal
}

func alignment(a docs.Align) align.Type {
	switch a {
	case docs.AlignCenter:
		return align.Center
	case docs.AlignRight:
		return align.Right
	case docs.AlignLeft:
		return align.Left
	}
	return align.Justify
}

// height estimates the row height needed to wrap s in a column spanning
// cols grid units.
func height(s string, cols int, size float64) float64 {
	width := usable * float64(cols) / gridCols
	perLine := math.Max(1, math.Floor(width/(charWidth*size/fontSize)))
	lines := math.Ceil(float64(utf8.RuneCountInString(s)) / perLine)
	if lines < 1 {
		lines = 1
	}
	return lines * lineHeight * size / fontSize
}
