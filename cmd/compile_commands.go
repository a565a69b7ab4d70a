package cmd

import (
	"github.com/spf13/cobra"

	"github.com/ColdGrub1384/SeeLess/pkg/buildgen"
)

var compileCommandsCmd = &cobra.Command{
	Use:   "compile-commands",
	Short: "Writes a compile_commands.json for the project's sources",
	Long: `Writes a clang compilation database with the same compiler calls as the compile
script so editors and clang tooling pick up the project configuration.
Databases passed with --merge (i.e. from libraries) are appended.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		layout, err := getLayout(cmd)
		if err != nil {
			return err
		}

		output, err := cmd.Flags().GetString("output")
		if err != nil {
			return err
		}
		layout = layout.WithOutput(output)

		opts, err := getScriptOptions(cmd)
		if err != nil {
			return err
		}

		sources, err := buildgen.FindSources(cmd.Context(), fs, layout.Root)
		if err != nil {
			return err
		}

		mergeList, err := cmd.Flags().GetStringSlice("merge")
		if err != nil {
			return err
		}

		entries, err := buildgen.MergeCompDB(fs, buildgen.CompDB(sources, layout.ObjectsDir, opts), mergeList...)
		if err != nil {
			return err
		}

		data, err := buildgen.MarshalCompDB(entries)
		if err != nil {
			return err
		}

		err = buildgen.WriteFile(cmd.Context(), fs, layout.Output, data)
		if err != nil {
			return err
		}

		logger.Info().
			Str("path", layout.Output).
			Int("entries", len(entries)).
			Msgf("wrote %s", layout.Output)
		return nil
	},
}

func init() {
	compileCommandsCmd.Flags().StringP("output", "o", buildgen.DefaultCompDBPath, "path of the compilation database")
	compileCommandsCmd.Flags().StringSlice("merge", nil, "existing compile_commands.json files to append")
	rootCmd.AddCommand(compileCommandsCmd)
}
