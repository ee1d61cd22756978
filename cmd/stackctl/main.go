// Command stackctl runs the recommendation engine and catalog tooling
// from the shell, without the HTTP server.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/HammerMeetNail/aistackhub/internal/catalog"
	"github.com/HammerMeetNail/aistackhub/internal/logging"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

type rootOptions struct {
	catalogPath string
	debug       bool
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}
	cmd := &cobra.Command{
		Use:           "stackctl",
		Short:         "Recommend AI tool stacks and manage the tool catalog",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if opts.debug {
				logging.SetDefaultLevel(logging.LevelDebug)
			}
		},
	}
	cmd.PersistentFlags().StringVar(&opts.catalogPath, "catalog", os.Getenv("CATALOG_PATH"), "YAML catalog file (default: built-in catalog)")
	cmd.PersistentFlags().BoolVar(&opts.debug, "debug", false, "enable debug logging")

	cmd.AddCommand(
		newRecommendCmd(opts),
		newCatalogCmd(opts),
		newMigrateCmd(),
	)
	return cmd
}

func (o *rootOptions) loadCatalog() (*catalog.Catalog, error) {
	c, err := catalog.Load(o.catalogPath)
	if err != nil {
		return nil, err
	}
	logging.Debug("Catalog loaded", map[string]interface{}{
		"path":  o.catalogPath,
		"tools": len(c.Tools()),
	})
	return c, nil
}
