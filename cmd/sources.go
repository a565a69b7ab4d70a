package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/ColdGrub1384/SeeLess/pkg"
	"github.com/ColdGrub1384/SeeLess/pkg/buildgen"
)

type sourceListing struct {
	Root             string   `json:"root" yaml:"root"`
	Sources          []string `json:"sources" yaml:"sources"`
	LibDir           string   `json:"libDir" yaml:"libDir"`
	LibrariesPresent bool     `json:"librariesPresent" yaml:"librariesPresent"`
	Libraries        []string `json:"libraries" yaml:"libraries"`
}

var sourcesCmd = &cobra.Command{
	Use:   "sources",
	Short: "Lists the sources and libraries that would end up in the compile script",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		format, err := cmd.Flags().GetString("format")
		if err != nil {
			return err
		}

		layout, err := getLayout(cmd)
		if err != nil {
			return err
		}

		result, err := buildgen.Discover(cmd.Context(), fs, layout)
		if err != nil {
			return err
		}

		listing := sourceListing{
			Root:             result.Layout.Root,
			Sources:          result.Sources,
			LibDir:           result.Libraries.Dir,
			LibrariesPresent: result.Libraries.Present,
			Libraries:        result.Libraries.Paths,
		}

		out := cmd.OutOrStdout()
		switch format {
		case "text":
			pkg.PrintTask(out, fmt.Sprintf("Sources in %s", listing.Root))
			for _, item := range listing.Sources {
				pkg.PrintSubtask(out, item)
			}

			if listing.LibrariesPresent {
				pkg.PrintTask(out, fmt.Sprintf("Libraries in %s", listing.LibDir))
				for _, item := range listing.Libraries {
					pkg.PrintSubtask(out, item)
				}
			} else {
				pkg.PrintTask(out, fmt.Sprintf("No library directory at %s", listing.LibDir))
			}
		case "json":
			data, err := json.MarshalIndent(listing, "", "  ")
			if err != nil {
				return eris.Wrap(err, "failed to encode listing")
			}

			_, err = fmt.Fprintln(out, string(data))
			return err
		case "yaml":
			encoder := yaml.NewEncoder(out)
			err = encoder.Encode(listing)
			if err != nil {
				return eris.Wrap(err, "failed to encode listing")
			}

			return encoder.Close()
		default:
			return eris.Errorf("unsupported format %s", format)
		}

		return nil
	},
}

func init() {
	sourcesCmd.Flags().StringP("format", "f", "text", "output format (text, json or yaml)")
	rootCmd.AddCommand(sourcesCmd)
}
