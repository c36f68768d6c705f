// Command gridpath finds shortest paths on text maps.
//
//	gridpath solve map.txt            draw the searched grid and the path
//	gridpath serve --addr :8080       serve the HTTP API
package main

import (
	"context"
	"os"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var version = "0.1.0-dev"

func main() {
	if err := newRootCmd().ExecuteContext(context.Background()); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var level string

	rootCmd := &cobra.Command{
		Use:   "gridpath",
		Short: "Shortest paths on grid maps with A*",
		Long: `gridpath reads a text map ('#' wall, '.' open, 'A' start, 'B' goal),
runs A* with the octile heuristic and draws the result.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			lvl, err := log.ParseLevel(level)
			if err != nil {
				return err
			}
			log.SetLevel(lvl)
			log.SetOutput(cmd.ErrOrStderr())
			return nil
		},
	}
	rootCmd.PersistentFlags().StringVar(&level, "log-level", "info", "log level: debug|info|warn|error")

	rootCmd.AddCommand(newSolveCmd(), newServeCmd())
	return rootCmd
}
