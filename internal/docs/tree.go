// Package docs turns a validated act and its context into a document tree:
// ordered headings, paragraphs of styled runs, tables and signature blocks.
// Byte-level output belongs to an assembler.
package docs

import (
	"fmt"
	"strings"
)

// Align is the horizontal alignment of a paragraph.
type Align int

const (
	AlignJustify Align = iota
	AlignLeft
	AlignCenter
	AlignRight
)

// Run is a span of text sharing one style.
type Run struct {
	Text   string
	Bold   bool
	Italic bool
}

// Block is one element of a document body.
type Block interface {
	isBlock()
}

// Heading is a section title. Level 1 is an article or part title,
// level 2 a sub-section.
type Heading struct {
	Level int
	Text  string
}

// Paragraph is a run sequence.
type Paragraph struct {
	Runs  []Run
	Align Align
}

// Table is a grid with an optional header. Widths are column spans on a
// 12-column grid and may be empty for equal columns.
type Table struct {
	Header []string
	Rows   [][]string
	Widths []int
}

// Signature is one signing slot.
type Signature struct {
	Role    string
	Name    string
	Mention string // handwritten mention, e.g. "Bon pour cession"
}

// Signatures lays signing slots side by side.
type Signatures struct {
	Lines []Signature
}

// PageBreak starts a new page.
type PageBreak struct{}

func (Heading) isBlock()    {}
func (Paragraph) isBlock()  {}
func (Table) isBlock()      {}
func (Signatures) isBlock() {}
func (PageBreak) isBlock()  {}

// Text concatenates the runs of p.
func (p Paragraph) Text() string {
	var b strings.Builder
	for _, r := range p.Runs {
		b.WriteString(r.Text)
	}
	return b.String()
}

// Document is the output of a template.
type Document struct {
	Kind     Kind
	Title    string
	Subtitle string
	Blocks   []Block
}

// Text renders the document as plain text, one block per line.
func (d *Document) Text() string {
	var b strings.Builder
	b.WriteString(d.Title)
	b.WriteString("\n")
	if d.Subtitle != "" {
		b.WriteString(d.Subtitle)
		b.WriteString("\n")
	}
	for _, blk := range d.Blocks {
		switch x := blk.(type) {
		case Heading:
			b.WriteString(x.Text)
		case Paragraph:
			b.WriteString(x.Text())
		case Table:
			if len(x.Header) > 0 {
				b.WriteString(strings.Join(x.Header, " | "))
				b.WriteString("\n")
			}
			for _, row := range x.Rows {
				b.WriteString(strings.Join(row, " | "))
				b.WriteString("\n")
			}
			continue
		case Signatures:
			for _, s := range x.Lines {
				b.WriteString(strings.TrimSpace(fmt.Sprintf("%s %s %s", s.Role, s.Name, s.Mention)))
				b.WriteString("\n")
			}
			continue
		case PageBreak:
			b.WriteString("---")
		}
		b.WriteString("\n")
	}
	return b.String()
}

// builder helpers

func (d *Document) add(b Block) { d.Blocks = append(d.Blocks, b) }

func (d *Document) heading(text string) { d.add(Heading{Level: 1, Text: text}) }

func (d *Document) subheading(text string) { d.add(Heading{Level: 2, Text: text}) }

func (d *Document) para(runs ...Run) { d.add(Paragraph{Runs: runs}) }

func (d *Document) centered(runs ...Run) { d.add(Paragraph{Runs: runs, Align: AlignCenter}) }

func (d *Document) textf(format string, args ...any) { d.para(plain(fmt.Sprintf(format, args...))) }

func (d *Document) table(header []string, rows [][]string, widths ...int) {
	d.add(Table{Header: header, Rows: rows, Widths: widths})
}

func (d *Document) sign(lines ...Signature) { d.add(Signatures{Lines: lines}) }

func plain(s string) Run { return Run{Text: s} }

func bold(s string) Run { return Run{Text: s, Bold: true} }

func italic(s string) Run { return Run{Text: s, Italic: true} }
