package main

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/charmbracelet/lipgloss"
	"github.com/sebastianlopezramirez/ledger/internal/model"
	"github.com/spf13/cobra"
)

func categoriesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "categories",
		Short: "List expense categories",
		Long:  `Display the fixed expense categories with the number used to pick them in the menu.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return writeCategories(cmd.OutOrStdout(), model.Categories())
		},
	}
}

func writeCategories(out io.Writer, categories []model.Category) error {
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)

	headerStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("86"))
	fmt.Fprintf(w, "%s\t%s\t%s\n",
		headerStyle.Render("#"),
		headerStyle.Render("Category"),
		headerStyle.Render("Key"))
	fmt.Fprintf(w, "%s\t%s\t%s\n",
		strings.Repeat("-", 2),
		strings.Repeat("-", 15),
		strings.Repeat("-", 15))

	for i, c := range categories {
		fmt.Fprintf(w, "%d\t%s\t%s\n", i+1, c.Title(), c.String())
	}

	return w.Flush()
}
