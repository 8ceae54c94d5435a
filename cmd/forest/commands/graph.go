package commands

import (
	"fmt"

	"github.com/panyam/forest/loader"
	"github.com/panyam/forest/runtime"
	"github.com/panyam/forest/viz"
	"github.com/spf13/cobra"
)

var (
	graphFormat string
	graphOutput string
)

var graphCmd = &cobra.Command{
	Use:   "graph [file|-]",
	Short: "Runs a forest program and draws the trees it declared",
	Long: `Runs a program and writes a diagram of every declared node and parent
link.  Nodes that were never attached to a parent are drawn as roots.  The
program's own output and runtime errors go to standard error.  Supported
formats are dot (Graphviz) and mermaid.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := loader.StdinPath
		if len(args) > 0 {
			path = args[0]
		}
		if _, ok := viz.Generators[graphFormat]; !ok {
			return fmt.Errorf("unknown diagram format %q, expected dot or mermaid", graphFormat)
		}

		file, err := newLoader(cmd).LoadFile(path)
		if err != nil {
			return err
		}

		interp := runtime.NewInterpreter(cmd.ErrOrStderr())
		interp.Run(file.Program)
		if interp.HasErrors() {
			runtime.Warn("%d runtime error(s) reported while building the diagram", len(interp.Errors))
		}

		diagram, err := viz.Generate(graphFormat, file.FullPath, interp.Env.Trees)
		if err != nil {
			return err
		}
		return writeOutput(cmd, graphOutput, diagram)
	},
}

func init() {
	graphCmd.Flags().StringVarP(&graphFormat, "format", "f", "dot", "Diagram format: dot or mermaid")
	graphCmd.Flags().StringVarP(&graphOutput, "output", "o", "", "Write the diagram to this file instead of stdout")
	AddCommand(graphCmd)
}
