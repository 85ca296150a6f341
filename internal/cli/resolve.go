package cli

import (
	"context"
	"time"

	"menu-image-resolver/internal/client"
	"menu-image-resolver/internal/core/menuimage"
	"menu-image-resolver/internal/pkg/common"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

type resolveOptions struct {
	name       string
	category   string
	strategy   string
	mode       string
	customURL  string
	libraryKey string
	autoImages bool
	server     string
	timeout    time.Duration
}

func newResolveCmd() *cobra.Command {
	opts := resolveOptions{}

	cmd := &cobra.Command{
		Use:   "resolve",
		Short: "Resolve the image for one dish",
		Example: `  # Illustrated image for a dish
  menuimg resolve --name "Döner im Brot"

  # Photographic strategy with a category fallback
  menuimg resolve --name "Exotic Fusion Plate" --category Hauptgerichte --strategy photographic

  # Ask a running server instead of the embedded catalogs
  menuimg resolve --name "Pizza Margherita" --server http://localhost:8080`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			auto := opts.autoImages
			req := menuimage.ResolveRequest{
				Item: menuimage.ItemRequest{
					Name:       opts.name,
					Category:   opts.category,
					Mode:       opts.mode,
					CustomURL:  opts.customURL,
					LibraryKey: opts.libraryKey,
				},
				Restaurant: menuimage.RestaurantRequest{
					Strategy:          opts.strategy,
					AutoImagesEnabled: &auto,
				},
			}

			var (
				image *menuimage.ImageResult
				err   error
			)
			if opts.server != "" {
				image, err = resolveRemote(cmd.Context(), opts, req)
			} else {
				image, err = resolveLocal(req)
			}
			if err != nil {
				return err
			}

			return printJSON(cmd.OutOrStdout(), menuimage.ResolveResponse{Image: image})
		},
	}

	cmd.Flags().StringVarP(&opts.name, "name", "n", "", "Dish name")
	cmd.Flags().StringVarP(&opts.category, "category", "c", "", "Menu category name")
	cmd.Flags().StringVarP(&opts.strategy, "strategy", "s", string(menuimage.StrategyIllustrated), "Restaurant image strategy (illustrated, photographic, professional, mixed, none)")
	cmd.Flags().StringVarP(&opts.mode, "mode", "m", string(menuimage.ModeAuto), "Item image mode (auto, library, custom, none)")
	cmd.Flags().StringVar(&opts.customURL, "custom-url", "", "Stored custom image URL")
	cmd.Flags().StringVar(&opts.libraryKey, "library-key", "", "Catalog entry id picked from the library")
	cmd.Flags().BoolVar(&opts.autoImages, "auto-images", true, "Whether the restaurant has automatic images enabled")
	cmd.Flags().StringVar(&opts.server, "server", "", "Resolve through a running API server at this base URL")
	cmd.Flags().DurationVar(&opts.timeout, "timeout", 10*time.Second, "Request timeout when --server is set")

	return cmd
}

func resolveLocal(req menuimage.ResolveRequest) (*menuimage.ImageResult, error) {
	item, err := req.Item.ToItem()
	if err != nil {
		return nil, err
	}
	restaurant, err := req.Restaurant.ToRestaurant()
	if err != nil {
		return nil, err
	}

	image, ok := menuimage.Default().Resolve(item, restaurant)
	common.LogDebug("Resolved locally",
		zap.String("dish_name", item.Name),
		zap.String("strategy", string(restaurant.Strategy)),
		zap.String("mode", string(item.Mode)),
		zap.Bool("has_image", ok),
	)
	if !ok {
		return nil, nil
	}
	return &image, nil
}

func resolveRemote(ctx context.Context, opts resolveOptions, req menuimage.ResolveRequest) (*menuimage.ImageResult, error) {
	c := client.New(opts.server, opts.timeout)
	return c.Resolve(ctx, req)
}
