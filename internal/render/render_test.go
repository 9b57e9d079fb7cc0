package render

import (
	"bytes"
	"testing"

	"github.com/Kaiser28/comptable-dashboard/internal/docs"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sample() *docs.Document {
	return &docs.Document{
		Kind:     docs.KindActeCession,
		Title:    "ACTE DE CESSION D'ACTIONS",
		Subtitle: "Atelier Durand",
		Blocks: []docs.Block{
			docs.Heading{Level: 1, Text: "Article 1 – Cession"},
			docs.Paragraph{Runs: []docs.Run{{Text: "Le Cédant cède au Cessionnaire 10 actions pour un prix total de 500,00 €."}}},
			docs.Paragraph{Runs: []docs.Run{{Text: "IL A ÉTÉ CONVENU", Bold: true}}, Align: docs.AlignCenter},
			docs.Table{Header: []string{"Associé", "Actions"}, Rows: [][]string{{"Paul DURAND", "60"}, {"Claire MOREL", "40"}}, Widths: []int{8, 4}},
			docs.PageBreak{},
			docs.Signatures{Lines: []docs.Signature{{Role: "Le Cédant", Name: "Claire MOREL", Mention: "Bon pour cession"}, {Role: "Le Cessionnaire", Name: "Marc PETIT"}}},
		},
	}
}

func TestPDFAssemble(t *testing.T) {
	out, err := PDF{}.Assemble(sample())
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(out, []byte("%PDF")), "not a PDF header: %q", out[:min(len(out), 8)])
	assert.Equal(t, "application/pdf", PDF{}.ContentType())
}

func TestAssembleNil(t *testing.T) {
	_, err := PDF{}.Assemble(nil)
	assert.Error(t, err)
	_, err = Text{}.Assemble(nil)
	assert.Error(t, err)
}

func TestTextAssemble(t *testing.T) {
	out, err := Text{}.Assemble(sample())
	require.NoError(t, err)
	assert.Contains(t, string(out), "Paul DURAND | 60")
	assert.Equal(t, "txt", Text{}.Extension())
}

func TestStyleAndHeight(t *testing.T) {
	assert.Equal(t, fontstyle.Bold, style([]docs.Run{{Text: "a", Bold: true}, {Text: "b", Bold: true}}))
	assert.Equal(t, fontstyle.Normal, style([]docs.Run{{Text: "a", Bold: true}, {Text: "b"}}))
	assert.Equal(t, fontstyle.BoldItalic, style([]docs.Run{{Text: "a", Bold: true, Italic: true}}))

	short := height("Article 1", gridCols, fontSize)
	long := height(string(bytes.Repeat([]byte("x"), 400)), gridCols, fontSize)
	assert.Equal(t, lineHeight, short)
	assert.Greater(t, long, 3*lineHeight)
	assert.Greater(t, height("un texte moyen de quarante caractères env", 4, fontSize), short)
}
