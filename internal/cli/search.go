package cli

import (
	"fmt"

	"menu-image-resolver/internal/core/catalog"

	"github.com/spf13/cobra"
)

func lookupFamily(style string) (*catalog.Catalog, error) {
	family, ok := catalog.ParseFamily(style)
	if !ok {
		return nil, fmt.Errorf("unknown catalog style %q", style)
	}
	if family == catalog.FamilyPhotographic {
		return catalog.Photographic(), nil
	}
	return catalog.Illustrated(), nil
}

func newSearchCmd() *cobra.Command {
	var style, query string

	cmd := &cobra.Command{
		Use:   "search",
		Short: "Search a catalog by label or keyword",
		Example: `  menuimg search --style illustrated --query pizza
  menuimg search --style photographic --query suppe`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cat, err := lookupFamily(style)
			if err != nil {
				return err
			}
			entries := cat.Search(query)
			if entries == nil {
				entries = []catalog.Entry{}
			}
			return printJSON(cmd.OutOrStdout(), map[string]interface{}{
				"style":   cat.Family(),
				"entries": entries,
			})
		},
	}

	cmd.Flags().StringVar(&style, "style", string(catalog.FamilyIllustrated), "Catalog style (illustrated, photographic)")
	cmd.Flags().StringVarP(&query, "query", "q", "", "Search text, empty lists every entry")

	return cmd
}

func newCategoriesCmd() *cobra.Command {
	var style string

	cmd := &cobra.Command{
		Use:   "categories",
		Short: "List the categories used by a catalog",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cat, err := lookupFamily(style)
			if err != nil {
				return err
			}
			out := map[string]interface{}{
				"style":      cat.Family(),
				"categories": cat.Categories(),
			}
			if cat.Family() == catalog.FamilyPhotographic {
				out["fallbacks"] = catalog.PhotographicFallbacks().Categories()
			}
			return printJSON(cmd.OutOrStdout(), out)
		},
	}

	cmd.Flags().StringVar(&style, "style", string(catalog.FamilyIllustrated), "Catalog style (illustrated, photographic)")

	return cmd
}
