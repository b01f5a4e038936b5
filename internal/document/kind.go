// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package document

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/pdiddy/doc-manager/pkg/types"
)

// Variant describes a registered document kind.
type Variant struct {
	Kind       types.DocumentKind
	Extensions []string
	create     func(name string, w io.Writer) Document
}

// variants is ordered; Kinds and KindFromName rely on it.
var variants = []Variant{
	{
		Kind:       types.KindPDF,
		Extensions: []string{".pdf"},
		create:     func(name string, w io.Writer) Document { return NewPDF(name, w) },
	},
	{
		Kind:       types.KindWord,
		Extensions: []string{".doc", ".docx"},
		create:     func(name string, w io.Writer) Document { return NewWord(name, w) },
	},
}

// Kinds returns the registered variants in stable order.
func Kinds() []Variant {
	out := make([]Variant, len(variants))
	copy(out, variants)
	return out
}

// New creates an unopened document of the given kind. The empty kind is the
// abstract document and fails with ErrAbstract.
func New(kind types.DocumentKind, name string, w io.Writer) (Document, error) {
	if kind == types.KindNone {
		return nil, fmt.Errorf("creating %q: %w", name, ErrAbstract)
	}
	for _, v := range variants {
		if v.Kind == kind {
			return v.create(name, w), nil
		}
	}
	return nil, fmt.Errorf("creating %q as %q: %w", name, kind, ErrUnknownKind)
}

// KindFromName infers the variant from the file extension, ignoring case.
func KindFromName(name string) (types.DocumentKind, error) {
	ext := strings.ToLower(filepath.Ext(name))
	for _, v := range variants {
		for _, e := range v.Extensions {
			if e == ext {
				return v.Kind, nil
			}
		}
	}
	return types.KindNone, fmt.Errorf("no kind for %q: %w", name, ErrUnknownKind)
}
