package render

import "github.com/Kaiser28/comptable-dashboard/internal/docs"

// Text renders the plain-text form of a document, used for previews.
type Text struct{}

func (Text) ContentType() string { return "text/plain; charset=utf-8" }

func (Text) Extension() string { return "txt" }

func (Text) Assemble(d *docs.Document) ([]byte, error) {
	if d == nil {
		return nil, errNilDocument
	}
	return []byte(d.Text()), nil
}
