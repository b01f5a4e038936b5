// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/doc-manager/internal/demo"
	"github.com/pdiddy/doc-manager/internal/process"
	"github.com/pdiddy/doc-manager/pkg/types"
)

var processCmd = &cobra.Command{
	Use:   "process <names...>",
	Short: "Run documents through the processing routine",
	Long: `Process opens, reads, modifies, and saves each named document in order.
The kind is taken from the file extension (.pdf, .doc, .docx) unless --kind
is given. Nothing is read from or written to disk.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runProcess,
}

func runProcess(cmd *cobra.Command, args []string) error {
	kind, _ := cmd.Flags().GetString("kind")
	suffix, _ := cmd.Flags().GetString("suffix")
	summary, _ := cmd.Flags().GetBool("summary")
	if !cmd.Flags().Changed("suffix") {
		suffix = loadConfig().Demo.Suffix
	}

	specs := make([]types.DocumentSpec, len(args))
	for i, name := range args {
		specs[i] = types.DocumentSpec{Name: name, Kind: types.DocumentKind(kind)}
	}

	w := cmd.OutOrStdout()
	docs, err := demo.Build(specs, w)
	if err != nil {
		return err
	}

	r := process.New(suffix, w, logger).ProcessAll(docs)

	if summary {
		out := make([]types.DocumentSummary, len(docs))
		for i, d := range docs {
			out[i] = process.Summarize(d)
		}
		data, err := yaml.Marshal(out)
		if err != nil {
			return fmt.Errorf("marshaling summary: %w", err)
		}
		fmt.Fprintf(w, "\n%s", data)
	}

	if r.Failed > 0 {
		return fmt.Errorf("%d of %d document(s) failed processing", r.Failed, r.Total())
	}
	return nil
}

func init() {
	processCmd.Flags().String("kind", "", "force the document kind: pdf or word")
	processCmd.Flags().String("suffix", types.DefaultSuffix, "text appended to each document's content")
	processCmd.Flags().Bool("summary", false, "print a YAML summary of each document after processing")

	rootCmd.AddCommand(processCmd)
}
