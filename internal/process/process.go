// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package process runs documents through the open, read, modify, save
// sequence without knowing which variant it was given.
package process

import (
	"fmt"
	"io"

	"go.uber.org/zap"

	"github.com/pdiddy/doc-manager/internal/document"
	"github.com/pdiddy/doc-manager/pkg/types"
)

// Processor holds the settings shared across a processing run.
type Processor struct {
	// Suffix is appended to each document's content. Empty means
	// types.DefaultSuffix.
	Suffix string
	// Out receives the processing banners. Documents print through their
	// own writer.
	Out io.Writer
	Log *zap.Logger
}

// New returns a Processor writing banners to w.
func New(suffix string, w io.Writer, log *zap.Logger) *Processor {
	if suffix == "" {
		suffix = types.DefaultSuffix
	}
	if w == nil {
		w = io.Discard
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &Processor{Suffix: suffix, Out: w, Log: log}
}

// Result holds the outcome of ProcessAll.
type Result struct {
	Processed int
	Failed    int
}

// Total returns the number of documents attempted.
func (r Result) Total() int {
	return r.Processed + r.Failed
}

// Process opens, reads, appends to, and saves doc.
func (p *Processor) Process(doc document.Document) error {
	log := p.Log.With(zap.String("document", doc.Name()), zap.String("kind", string(doc.Kind())))

	fmt.Fprintf(p.Out, "\n--- Processing document: %s ---\n", doc.Name())
	doc.Open()
	log.Debug("opened")
	doc.Read()
	if err := doc.Append(p.Suffix); err != nil {
		log.Error("modifying content", zap.Error(err))
		return fmt.Errorf("processing %s: %w", doc.Name(), err)
	}
	doc.Save()
	log.Debug("saved")
	fmt.Fprintln(p.Out, "--- Finished processing ---")
	return nil
}

// ProcessAll processes docs in order. A failed document does not stop the
// run.
func (p *Processor) ProcessAll(docs []document.Document) Result {
	var r Result
	for _, d := range docs {
		if err := p.Process(d); err != nil {
			r.Failed++
			continue
		}
		r.Processed++
	}
	p.Log.Debug("run complete", zap.Int("processed", r.Processed), zap.Int("failed", r.Failed))
	return r
}

// Summarize snapshots doc's current state.
func Summarize(doc document.Document) types.DocumentSummary {
	content, loaded := doc.Content()
	return types.DocumentSummary{
		Name:    doc.Name(),
		Kind:    doc.Kind(),
		Loaded:  loaded,
		Content: content,
	}
}
