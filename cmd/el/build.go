package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/el-go/el/pkg/publish"
)

func buildCmd() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "build",
		Short: "Write the showcase site to a directory",
		Long: `Render every page of the showcase site to static HTML files.

Examples:
  el build
  el build --output=dist`,
		RunE: func(cmd *cobra.Command, args []string) error {
			site := showcaseSite()
			if err := publish.Dir(site, output); err != nil {
				return err
			}
			fmt.Printf("Wrote %d pages to %s\n", site.Len(), output)
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "dist", "Output directory")

	return cmd
}
