package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

var validateCmd = &cobra.Command{
	Use:   "validate <file...>",
	Short: "Parses and statically checks forest programs",
	Long: `The validate command parses one or more programs to check for syntactic
correctness, then flags problems certain to be reported at run time:
variables no enclosing loop binds and literals of the wrong kind.  It does
not run the programs.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if !newLoader(cmd).LoadFilesAndValidate(cmd.OutOrStdout(), args...) {
			return fmt.Errorf("validation failed")
		}
		return nil
	},
}

func init() {
	AddCommand(validateCmd)
}
