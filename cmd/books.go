package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/dohyeon0608/ReadQuest/internal/catalog"
	"github.com/dohyeon0608/ReadQuest/internal/reward"
)

var booksCmd = &cobra.Command{
	Use:   "books [title]",
	Short: "List the book catalog or show a book's sections",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		cat := catalog.Default()

		if len(args) == 0 {
			fmt.Fprintf(out, "%-40s  %-10s  %8s  %6s\n", "Title", "Category", "Sections", "Bonus")
			fmt.Fprintln(out, strings.Repeat("─", 72))
			for _, b := range cat.Books() {
				fmt.Fprintf(out, "%-40s  %-10s  %8d  %5.1fx\n",
					b.Title, b.Category.DisplayName(), b.SectionCount(), reward.Multiplier(b.Category))
			}
			return nil
		}

		b, ok := cat.Lookup(args[0])
		if !ok {
			return fmt.Errorf("unknown book %q (run `readquest books` for the list)", args[0])
		}
		fmt.Fprintf(out, "%s  [%s]\n\n", b.Title, b.Category.DisplayName())
		for _, ch := range b.Chapters {
			fmt.Fprintln(out, ch.Title)
			for _, s := range ch.Sections {
				fmt.Fprintf(out, "  - %s\n", s)
			}
		}
		return nil
	},
}
