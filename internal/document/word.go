// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package document

import (
	"fmt"
	"io"

	"github.com/pdiddy/doc-manager/pkg/types"
)

// WordPlaceholder is the content a Word document holds after Open.
const WordPlaceholder = "This is the rich-text, XML-based content of a Word document."

// Word is a document opened and saved through a word processor.
type Word struct {
	base
}

// NewWord returns an unopened Word document that prints to w.
func NewWord(name string, w io.Writer) *Word {
	return &Word{base: newBase(name, w)}
}

func (d *Word) Kind() types.DocumentKind { return types.KindWord }

func (d *Word) Open() {
	fmt.Fprintf(d.out, "Opening Word document '%s' using a word processor library...\n", d.name)
	d.load(WordPlaceholder)
}

func (d *Word) Save() {
	fmt.Fprintf(d.out, "Saving content to Word '%s' with specific Word formatting...\n", d.name)
}
