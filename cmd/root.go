// Package cmd contains the vidgrid CLI commands.
package cmd

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "vidgrid",
	Short: "Video catalog front-end: browsing pages, admin CRUD, catalog API",
	Long:  `HTTP server for a video catalog backed by a document store. Commands: serve, seed.`,
	RunE:  runServe, // default: run the server (same as "vidgrid serve")
}

func init() {
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(seedCmd)
}

// Execute runs the root command and returns the error (for main to log.Fatal).
func Execute() error {
	return rootCmd.Execute()
}
