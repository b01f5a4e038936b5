// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package document defines the Document contract and its PDF and Word
// variants. Opening and saving only print a description; no file is touched.
package document

import (
	"errors"
	"fmt"
	"io"

	"github.com/pdiddy/doc-manager/pkg/types"
)

var (
	// ErrAbstract is returned when a document is requested without a variant.
	ErrAbstract = errors.New("document: abstract document must be created as a concrete kind")
	// ErrUnknownKind is returned for a kind with no registered variant.
	ErrUnknownKind = errors.New("document: unknown kind")
	// ErrNotLoaded is returned when content is modified before Open.
	ErrNotLoaded = errors.New("document: content not loaded")
)

// Document is the contract every variant satisfies. Open and Save are
// variant-specific; the rest is shared through base.
type Document interface {
	// Name returns the identifying file name.
	Name() string
	// Kind returns the variant tag.
	Kind() types.DocumentKind
	// Open loads the variant's placeholder content.
	Open()
	// Save reports that the content was written.
	Save()
	// Read prints the content, or a notice when it is not loaded.
	Read()
	// Content returns the loaded content and whether Open has run.
	Content() (string, bool)
	// Append adds text to loaded content.
	Append(text string) error
}

// base holds the state shared by all variants. It has no Open or Save, so
// it does not satisfy Document on its own.
type base struct {
	name    string
	content *string
	out     io.Writer
}

func newBase(name string, w io.Writer) base {
	if w == nil {
		w = io.Discard
	}
	return base{name: name, out: w}
}

func (b *base) Name() string { return b.name }

func (b *base) Content() (string, bool) {
	if b.content == nil {
		return "", false
	}
	return *b.content, true
}

func (b *base) Read() {
	if b.content == nil {
		fmt.Fprintf(b.out, "Content for '%s' is not loaded. Please open the document first.\n", b.name)
		return
	}
	fmt.Fprintf(b.out, "Reading content of '%s':\n---\n%s\n---\n", b.name, *b.content)
}

// Append is the one way for callers outside the package to change content.
func (b *base) Append(text string) error {
	if b.content == nil {
		return fmt.Errorf("appending to %s: %w", b.name, ErrNotLoaded)
	}
	s := *b.content + text
	b.content = &s
	return nil
}

func (b *base) load(text string) {
	b.content = &text
}
