// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package document

import (
	"fmt"
	"io"

	"github.com/pdiddy/doc-manager/pkg/types"
)

// PDFPlaceholder is the content a PDF document holds after Open.
const PDFPlaceholder = "This is the complex, binary-formatted content of a PDF file."

// PDF is a document opened and saved as a PDF.
type PDF struct {
	base
}

// NewPDF returns an unopened PDF document that prints to w.
func NewPDF(name string, w io.Writer) *PDF {
	return &PDF{base: newBase(name, w)}
}

func (d *PDF) Kind() types.DocumentKind { return types.KindPDF }

// Open simulates loading through a PDF reader.
func (d *PDF) Open() {
	fmt.Fprintf(d.out, "Opening PDF '%s' using a PDF reader library...\n", d.name)
	d.load(PDFPlaceholder)
}

// Save simulates writing with PDF formatting.
func (d *PDF) Save() {
	fmt.Fprintf(d.out, "Saving content to PDF '%s' with specific PDF formatting...\n", d.name)
}
