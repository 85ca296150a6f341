package cli

import (
	"menu-image-resolver/internal/core/catalog"
	"menu-image-resolver/internal/pkg/common"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func newCheckCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check",
		Short: "Verify the embedded catalogs",
		Long: `Runs the integrity check over the illustrated and photographic catalogs
and the photographic category fallbacks. Exits non-zero when any entry is invalid.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := catalog.VerifyEmbedded(); err != nil {
				common.LogError("Catalog integrity check failed", zap.Error(err))
				return err
			}

			return printJSON(cmd.OutOrStdout(), map[string]interface{}{
				"status": "ok",
				"catalogs": map[string]int{
					string(catalog.FamilyIllustrated):  catalog.Illustrated().Len(),
					string(catalog.FamilyPhotographic): catalog.Photographic().Len(),
				},
				"fallback_categories": len(catalog.PhotographicFallbacks().Categories()),
			})
		},
	}
}
