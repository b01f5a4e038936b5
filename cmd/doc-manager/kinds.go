// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pdiddy/doc-manager/internal/document"
)

var kindsCmd = &cobra.Command{
	Use:   "kinds",
	Short: "List the document kinds and the extensions that select them",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		w := cmd.OutOrStdout()
		fmt.Fprintf(w, "%-6s  %s\n", "Kind", "Extensions")
		for _, v := range document.Kinds() {
			fmt.Fprintf(w, "%-6s  %s\n", v.Kind, strings.Join(v.Extensions, ", "))
		}
	},
}

func init() {
	rootCmd.AddCommand(kindsCmd)
}
