// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package demo runs the fixed demonstration: build the configured documents,
// process each one, then show which parts of a document are reachable from
// outside.
package demo

import (
	"errors"
	"fmt"
	"io"

	"go.uber.org/zap"

	"github.com/pdiddy/doc-manager/internal/document"
	"github.com/pdiddy/doc-manager/internal/process"
	"github.com/pdiddy/doc-manager/pkg/types"
)

// ErrNoDocuments is returned when the configuration lists no documents.
var ErrNoDocuments = errors.New("demo: no documents configured")

// Build creates unopened documents for specs. A spec without a kind takes
// the kind implied by its file extension.
func Build(specs []types.DocumentSpec, w io.Writer) ([]document.Document, error) {
	docs := make([]document.Document, 0, len(specs))
	for _, s := range specs {
		kind := s.Kind
		if kind == types.KindNone {
			k, err := document.KindFromName(s.Name)
			if err != nil {
				return nil, err
			}
			kind = k
		}
		d, err := document.New(kind, s.Name, w)
		if err != nil {
			return nil, err
		}
		docs = append(docs, d)
	}
	return docs, nil
}

// Run executes the demonstration, writing the transcript to w.
func Run(cfg types.DemoConfig, w io.Writer, log *zap.Logger) error {
	if log == nil {
		log = zap.NewNop()
	}
	if len(cfg.Documents) == 0 {
		return ErrNoDocuments
	}

	docs, err := Build(cfg.Documents, w)
	if err != nil {
		return fmt.Errorf("building documents: %w", err)
	}
	log.Debug("documents built", zap.Int("count", len(docs)))

	r := process.New(cfg.Suffix, w, log).ProcessAll(docs)
	if r.Failed > 0 {
		return fmt.Errorf("%d document(s) failed processing", r.Failed)
	}

	showEncapsulation(docs[0], w)
	return nil
}

func showEncapsulation(doc document.Document, w io.Writer) {
	content, _ := doc.Content()
	fmt.Fprintln(w, "\n--- Demonstrating Encapsulation ---")
	fmt.Fprintf(w, "Accessing the filename (public accessor): %s\n", doc.Name())
	fmt.Fprintf(w, "Reading content through the read-only accessor: %s\n", content)
	fmt.Fprintln(w, "The content field is unexported, so other packages cannot assign it directly.")
	fmt.Fprintln(w, "Instead, we use methods like Open(), Append() and Save() to change the document's state.")
}
