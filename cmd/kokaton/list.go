package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/kokaton/internal/registry"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List game modes",
	Long:  `Shows the id and title of every game mode. Pass an id to play, window or sim.`,
	Args:  cobra.NoArgs,
	RunE:  runList,
}

func runList(cmd *cobra.Command, _ []string) error {
	games := registry.List()
	width := len("MODE")
	for _, g := range games {
		width = max(width, len(g.ID))
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "%-*s  %s\n", width, "MODE", "TITLE")
	fmt.Fprintf(out, "%s  %s\n", strings.Repeat("-", width), strings.Repeat("-", len("TITLE")))
	for _, g := range games {
		fmt.Fprintf(out, "%-*s  %s\n", width, g.ID, g.Title)
	}
	return nil
}
