package main

import (
	_ "embed"
	"fmt"
	"os"

	"github.com/charmbracelet/glamour"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

//go:embed rules.md
var rulesMarkdown string

var flagRulesStyle string

var rulesCmd = &cobra.Command{
	Use:   "rules",
	Short: "Show how to play",
	Run:   runRules,
}

func init() {
	rulesCmd.Flags().StringVar(&flagRulesStyle, "style", "dark", "Glamour style: dark, light, pink, notty, ascii")
}

func runRules(cmd *cobra.Command, args []string) {
	width := 80
	if w, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = min(w, 100)
	}

	out, err := renderRules(rulesMarkdown, flagRulesStyle, width)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	fmt.Print(out)
}

// renderRules renders markdown for a terminal of the given width.
func renderRules(md, style string, width int) (string, error) {
	r, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle(style),
		glamour.WithWordWrap(max(width-2, 20)),
	)
	if err != nil {
		return "", fmt.Errorf("creating renderer: %w", err)
	}
	return r.Render(md)
}
