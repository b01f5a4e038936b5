// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// DefaultSuffix is the text the processing routine appends to loaded content.
const DefaultSuffix = "\n[Appended by processing script]"

// DemoConfig holds settings for the demonstration sequence.
type DemoConfig struct {
	// Documents lists the documents to process, in order.
	Documents []DocumentSpec `json:"documents" yaml:"documents" mapstructure:"documents"`

	// Suffix is appended to each document's content during processing.
	Suffix string `json:"suffix" yaml:"suffix" mapstructure:"suffix"`
}

// DefaultDemoConfig returns the fixed demonstration: one PDF and one Word
// document.
func DefaultDemoConfig() DemoConfig {
	return DemoConfig{
		Documents: []DocumentSpec{
			{Name: "annual_report.pdf", Kind: KindPDF},
			{Name: "team_memo.docx", Kind: KindWord},
		},
		Suffix: DefaultSuffix,
	}
}

// LogConfig holds logger settings.
type LogConfig struct {
	// Level is the minimum level written: debug, info, warn, or error.
	Level string `json:"level" yaml:"level" mapstructure:"level"`

	// Development enables caller annotations and stack traces on warnings.
	Development bool `json:"development" yaml:"development" mapstructure:"development"`
}

// Config groups all settings read from the config file and environment.
type Config struct {
	Demo DemoConfig `json:"demo" yaml:"demo" mapstructure:"demo"`
	Log  LogConfig  `json:"log" yaml:"log" mapstructure:"log"`
}
