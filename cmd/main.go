package cmd

import (
	"context"
	"os"

	"github.com/rotisserie/eris"
	"github.com/rs/zerolog"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/ColdGrub1384/SeeLess/pkg"
	"github.com/ColdGrub1384/SeeLess/pkg/buildgen"
	"github.com/ColdGrub1384/SeeLess/pkg/config"
)

var (
	cfg    *config.Config
	logger = zerolog.New(NewConsoleWriter(os.Stderr))
	fs     = afero.NewOsFs()
)

var rootCmd = &cobra.Command{
	Use:   "cproj",
	Short: "Generates the compile script for a SeeLess C project",
	Long: `Run this command inside the build directory of a project. It searches the project
(the parent directory) for .c and .cpp files and the lib directory for .ll and .bc files
and writes objects/.compile.sh, a shell script which compiles every source with clang
and links everything with llvm-link.

Set VERBOSE=1 to pass -v to every clang call.`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.Load()
		if err != nil {
			return err
		}

		logger = logger.Level(cfg.Level())
		cmd.SetContext(buildgen.WithLogger(cmd.Context(), &logger))
		return nil
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		layout, err := getLayout(cmd)
		if err != nil {
			return err
		}

		output, err := cmd.Flags().GetString("output")
		if err != nil {
			return err
		}
		if output == "" {
			output = cfg.Output
		}
		layout = layout.WithOutput(output)

		dryRun, err := cmd.Flags().GetBool("dry")
		if err != nil {
			return err
		}

		opts, err := getScriptOptions(cmd)
		if err != nil {
			return err
		}

		if dryRun {
			result, err := buildgen.Generate(cmd.Context(), fs, layout, opts)
			if err != nil {
				return err
			}

			_, err = cmd.OutOrStdout().Write(result.Script.Bytes())
			return err
		}

		_, err = buildgen.Run(cmd.Context(), fs, layout, opts)
		return err
	},
}

func init() {
	rootCmd.PersistentFlags().String("root", "", "project root to search for sources (default: parent of the working directory)")
	rootCmd.Flags().StringP("output", "o", "", "path of the generated script (default: objects/.compile.sh)")
	rootCmd.Flags().BoolP("dry", "n", false, "dry run; print the script instead of writing it")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "pass -v to the compiler regardless of $VERBOSE")
}

func getLayout(cmd *cobra.Command) (buildgen.Layout, error) {
	wd, err := os.Getwd()
	if err != nil {
		return buildgen.Layout{}, eris.Wrap(err, "failed to retrieve the current working directory")
	}

	layout := buildgen.ResolveLayout(wd)
	root, err := cmd.Flags().GetString("root")
	if err != nil {
		return layout, err
	}

	if root != "" {
		layout = layout.WithRoot(root)
	}
	return layout, nil
}

func getScriptOptions(cmd *cobra.Command) (buildgen.ScriptOptions, error) {
	opts := cfg.ScriptOptions()
	verbose, err := cmd.Flags().GetBool("verbose")
	if err != nil {
		return opts, err
	}

	if verbose {
		opts.Verbose = true
	}
	return opts, nil
}

// Main runs the CLI and returns the process exit code
func Main() int {
	err := rootCmd.ExecuteContext(context.Background())
	if err != nil {
		pkg.PrintError(os.Stderr, eris.ToString(err, debugEnabled()))
		return 1
	}

	return 0
}

func Execute() {
	os.Exit(Main())
}
