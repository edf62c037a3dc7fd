package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/terminoid/internal/platform/tui"
)

var keysCmd = &cobra.Command{
	Use:   "keys",
	Short: "List key bindings",
	Long:  `Shows every key terminoid responds to while playing.`,
	Args:  cobra.NoArgs,
	Run:   runKeys,
}

func runKeys(cmd *cobra.Command, _ []string) {
	bindings := tui.DefaultKeyMap().Bindings()
	out := cmd.OutOrStdout()

	// Calculate column widths
	maxKeyLen := 3 // "Key" header
	for _, b := range bindings {
		if n := len([]rune(b.Help().Key)); n > maxKeyLen {
			maxKeyLen = n
		}
	}

	fmt.Fprintf(out, "  %-*s  %s\n", maxKeyLen, "Key", "Action")
	fmt.Fprintf(out, "  %-*s  %s\n", maxKeyLen, "---", "------")
	for _, b := range bindings {
		fmt.Fprintf(out, "  %-*s  %s\n", maxKeyLen, b.Help().Key, b.Help().Desc)
	}
}
