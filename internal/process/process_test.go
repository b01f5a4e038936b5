// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package process

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/pdiddy/doc-manager/internal/document"
	"github.com/pdiddy/doc-manager/pkg/types"
)

// brokenDocument opens without loading content, so Append fails.
type brokenDocument struct {
	*document.PDF
}

func (brokenDocument) Open() {}

func TestProcess(t *testing.T) {
	tests := []struct {
		name        string
		kind        types.DocumentKind
		placeholder string
	}{
		{name: "pdf", kind: types.KindPDF, placeholder: document.PDFPlaceholder},
		{name: "word", kind: types.KindWord, placeholder: document.WordPlaceholder},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			doc, err := document.New(tt.kind, "file", &out)
			require.NoError(t, err)

			require.NoError(t, New("", &out, nil).Process(doc))

			content, loaded := doc.Content()
			assert.True(t, loaded)
			assert.Equal(t, tt.placeholder+types.DefaultSuffix, content)

			got := out.String()
			assert.True(t, strings.HasPrefix(got, "\n--- Processing document: file ---\n"))
			assert.True(t, strings.HasSuffix(got, "--- Finished processing ---\n"))
			// Read happens before the suffix is appended.
			assert.NotContains(t, got, "[Appended by processing script]")
		})
	}
}

func TestProcessCustomSuffix(t *testing.T) {
	doc := document.NewWord("memo.docx", nil)
	require.NoError(t, New(" (reviewed)", nil, nil).Process(doc))

	content, _ := doc.Content()
	assert.Equal(t, document.WordPlaceholder+" (reviewed)", content)
}

func TestProcessAll(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	var out bytes.Buffer
	docs := []document.Document{
		document.NewPDF("a.pdf", &out),
		brokenDocument{document.NewPDF("b.pdf", &out)},
		document.NewWord("c.docx", &out),
	}

	r := New("", &out, zap.New(core)).ProcessAll(docs)

	assert.Equal(t, Result{Processed: 2, Failed: 1}, r)
	assert.Equal(t, 3, r.Total())
	assert.Contains(t, out.String(), "Content for 'b.pdf' is not loaded.")
	assert.NotContains(t, out.String(), "Saving content to PDF 'b.pdf'")
	assert.Equal(t, 1, logs.FilterMessage("modifying content").Len())
}

func TestSummarize(t *testing.T) {
	doc := document.NewPDF("annual_report.pdf", nil)
	assert.Equal(t, types.DocumentSummary{Name: "annual_report.pdf", Kind: types.KindPDF}, Summarize(doc))

	doc.Open()
	s := Summarize(doc)
	assert.True(t, s.Loaded)
	assert.Equal(t, document.PDFPlaceholder, s.Content)
}
