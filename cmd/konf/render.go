package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"konf/internal/diag"
	"konf/internal/diagfmt"
	"konf/internal/diagtest"
	"konf/internal/source"
)

var renderFormat string

func init() {
	renderCmd.Flags().StringVar(&renderFormat, "format", "plain", "output format (plain|pretty|json)")
}

var renderCmd = &cobra.Command{
	Use:   "render <case.toml> [more cases...]",
	Short: "Build diagnostics from case files and render them",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		switch renderFormat {
		case "plain", "pretty", "json":
			// supported
		default:
			return fmt.Errorf("unsupported format %q (must be plain, pretty or json)", renderFormat)
		}

		colored := colorEnabled(cmd, os.Stdout)
		fileSet := source.NewFileSet()

		diags := make([]diag.Diagnostic, 0, len(args))
		for _, path := range args {
			c, err := diagtest.LoadCase(path)
			if err != nil {
				return err
			}
			d, err := c.Build()
			if err != nil {
				return err
			}
			diags = append(diags, d)

			if renderFormat == "pretty" {
				loadSnippetFiles(fileSet, d)
			}
		}

		out := cmd.OutOrStdout()
		switch renderFormat {
		case "pretty":
			for _, d := range diags {
				if err := diagfmt.Pretty(out, d, fileSet, diagfmt.PrettyOpts{Color: colored}); err != nil {
					return err
				}
			}
		case "json":
			return diagfmt.WriteJSON(out, diags, diagfmt.JSONOpts{})
		default:
			r := diagfmt.NewRenderer(out, diagfmt.Options{Color: colored})
			for _, d := range diags {
				if err := r.RenderContext(cmd.Context(), d); err != nil {
					return err
				}
			}
		}
		return nil
	},
}

// loadSnippetFiles pulls the files a diagnostic points at into the file
// set so the pretty renderer can show source lines. Missing files are
// fine: the snippet is simply omitted.
func loadSnippetFiles(fileSet *source.FileSet, d diag.Diagnostic) {
	for _, loc := range d.Locations {
		if _, ok := fileSet.GetByPath(loc.Path); ok {
			continue
		}
		_, _ = fileSet.Load(loc.Path)
	}
}
