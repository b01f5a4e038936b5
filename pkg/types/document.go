// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// DocumentKind identifies a concrete document variant.
type DocumentKind string

const (
	// KindNone is the abstract document with no variant. It cannot be
	// instantiated.
	KindNone DocumentKind = ""
	KindPDF  DocumentKind = "pdf"
	KindWord DocumentKind = "word"
)

// DocumentSpec names a document to create and the variant to create it as.
type DocumentSpec struct {
	Name string       `json:"name" yaml:"name" mapstructure:"name"`
	Kind DocumentKind `json:"kind" yaml:"kind" mapstructure:"kind"`
}

// DocumentSummary is a snapshot of a document after processing.
type DocumentSummary struct {
	Name    string       `json:"name" yaml:"name"`
	Kind    DocumentKind `json:"kind" yaml:"kind"`
	Loaded  bool         `json:"loaded" yaml:"loaded"`
	Content string       `json:"content,omitempty" yaml:"content,omitempty"`
}
