package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ColdGrub1384/SeeLess/pkg/buildgen"
)

var productNameCmd = &cobra.Command{
	Use:   "product-name [project directory]",
	Short: "Prints the value used for $PRODUCT_NAME",
	Long: `Prints the name of the linked bitcode file for a project, the value the build
expects in $PRODUCT_NAME. Defaults to the project root.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		dir := ""
		if len(args) > 0 {
			dir = args[0]
		} else {
			layout, err := getLayout(cmd)
			if err != nil {
				return err
			}
			dir = layout.Root
		}

		_, err := fmt.Fprintln(cmd.OutOrStdout(), buildgen.ProductName(dir))
		return err
	},
}

func init() {
	rootCmd.AddCommand(productNameCmd)
}
