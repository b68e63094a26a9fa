package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// Version information set at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "el",
		Short: "Build and preview HTML documents written in Go",
		Long: `el renders HTML document trees built in Go into static sites.

The CLI ships a showcase site demonstrating the element builders,
escaping rules, and SVG/MathML support:

  el serve          preview the showcase with live reload
  el build -o dist  write the showcase to a directory`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.AddCommand(
		serveCmd(),
		buildCmd(),
		versionCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		os.Exit(1)
	}
}
