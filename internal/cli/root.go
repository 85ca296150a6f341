package cli

import (
	"fmt"
	"io"
	"os"

	"menu-image-resolver/internal/pkg/common"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

// NewRootCmd 建立 menuimg 根命令
func NewRootCmd() *cobra.Command {
	var logLevel string

	cmd := &cobra.Command{
		Use:   "menuimg",
		Short: "Resolve and inspect menu item images",
		Long: `menuimg resolves menu dishes to catalog images the same way the API does.

It can check the embedded catalogs, resolve a single dish locally or against a
running server, and search the illustrated and photographic catalogs.`,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			_ = godotenv.Load()
			if logLevel == "" {
				logLevel = os.Getenv("LOG_LEVEL")
			}
			common.InitConsoleLogger(logLevel)
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			common.Sync()
		},
	}

	cmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Log level (debug, info, warn, error)")

	cmd.AddCommand(newCheckCmd())
	cmd.AddCommand(newResolveCmd())
	cmd.AddCommand(newSearchCmd())
	cmd.AddCommand(newCategoriesCmd())

	return cmd
}

// printJSON 以縮排 JSON 輸出
func printJSON(w io.Writer, v interface{}) error {
	out, err := common.ToIndentedJSON(v)
	if err != nil {
		return fmt.Errorf("failed to encode output: %w", err)
	}
	_, err = fmt.Fprintln(w, out)
	return err
}
