package commands

import (
	"fmt"
	"os"

	"github.com/panyam/forest/decl"
	"github.com/panyam/forest/loader"
	"github.com/spf13/cobra"
)

var fmtWrite bool

var fmtCmd = &cobra.Command{
	Use:   "fmt [file|-]",
	Short: "Reformats a forest program",
	Long: `Parses a program and prints it back in canonical form: one statement per
line, two space indentation inside loop bodies, and only the parentheses
that operator precedence needs.  Comments are not preserved.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := loader.StdinPath
		if len(args) > 0 {
			path = args[0]
		}
		file, err := newLoader(cmd).LoadFile(path)
		if err != nil {
			return err
		}
		formatted := decl.Format(file.Program)

		if !fmtWrite {
			fmt.Fprint(cmd.OutOrStdout(), formatted)
			return nil
		}
		if path == loader.StdinPath {
			return fmt.Errorf("cannot write formatted output back to standard input")
		}
		if err := os.WriteFile(file.FullPath, []byte(formatted), 0644); err != nil {
			return fmt.Errorf("writing %s: %w", file.FullPath, err)
		}
		return nil
	},
}

func init() {
	fmtCmd.Flags().BoolVarP(&fmtWrite, "write", "w", false, "Write the result back to the source file instead of stdout")
	AddCommand(fmtCmd)
}
