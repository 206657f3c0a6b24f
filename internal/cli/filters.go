package cli

import (
	"fmt"
	"strings"

	"github.com/samber/lo"
	"github.com/spf13/cobra"

	"github.com/gogpu/ggfx/internal/recipe"
)

func (c *CLI) filtersCommand() *cobra.Command {
	var pattern string

	cmd := &cobra.Command{
		Use:   "filters",
		Short: "List the filter types a recipe may use",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			types := lo.Filter(recipe.Types(), func(t string, _ int) bool {
				return strings.Contains(t, pattern)
			})
			for _, t := range types {
				if _, err := fmt.Fprintln(c.out, t); err != nil {
					return err
				}
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&pattern, "match", "", "only list types containing this text")

	return cmd
}
