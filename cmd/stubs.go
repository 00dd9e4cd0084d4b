package cmd

import (
	"fmt"
	"path/filepath"

	"lcb/internal/stub"

	"github.com/fatih/color"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
)

var stubsCmd = &cobra.Command{
	Use:   "stubs",
	Short: "Manage stub templates",
}

var stubsPublishCmd = &cobra.Command{
	Use:   "publish [dir]",
	Short: "Copy the built-in stubs to a directory for customisation",
	Long: `Copy the built-in stubs to a directory (default stubs/lcb). Pass the
directory to 'lcb build --stubs' to use the edited copies.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		dir := "stubs/lcb"
		if len(args) > 0 {
			dir = args[0]
		}
		force, _ := cmd.Flags().GetBool("force")

		absDir, err := filepath.Abs(dir)
		if err != nil {
			return fmt.Errorf("failed to resolve %s: %w", dir, err)
		}

		osFs := afero.NewOsFs()
		if err := osFs.MkdirAll(absDir, 0755); err != nil {
			return fmt.Errorf("failed to create %s: %w", dir, err)
		}

		written, err := stub.Publish(afero.NewBasePathFs(osFs, absDir), force)
		if err != nil {
			return err
		}

		created := color.New(color.FgGreen)
		for _, name := range written {
			created.Printf("  ✓ %s\n", filepath.Join(dir, name))
		}
		if len(written) == 0 {
			fmt.Println("All stubs already published (use --force to overwrite)")
		}

		return nil
	},
}

func init() {
	stubsPublishCmd.Flags().Bool("force", false, "Overwrite stubs that already exist")

	stubsCmd.AddCommand(stubsPublishCmd)
	rootCmd.AddCommand(stubsCmd)
}
