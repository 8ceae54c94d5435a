package commands

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/panyam/forest/loader"
	"github.com/panyam/forest/runtime"
	"github.com/spf13/cobra"
)

var tracePath string

var runCmd = &cobra.Command{
	Use:   "run [file|-]",
	Short: "Runs a forest program",
	Long: `Parses and runs a forest program, read from the given file or from
standard input when the file is "-" or omitted.

Printed trees and runtime errors are written, in order, to standard output.
Runtime errors never stop the program.  A program that fails to parse is not
run at all and the command exits with an error.  With --strict the command
also exits with an error if any runtime error was reported.  With --trace the
executed statements, loop iterations and reported errors are written as JSON
to the given file.`,
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

		interp := runtime.NewInterpreter(cmd.OutOrStdout())
		if settings.UseColor(cmd.OutOrStdout()) {
			interp.Reporter.EnableColor()
		} else {
			interp.Reporter.DisableColor()
		}
		if tracePath != "" {
			interp.Tracer = runtime.NewExecutionTracer()
		}
		interp.Run(file.Program)

		if interp.Tracer != nil {
			if err := writeTrace(tracePath, interp.Tracer.Data(file.FullPath)); err != nil {
				return err
			}
		}

		if settings.Strict && interp.HasErrors() {
			return fmt.Errorf("%d runtime error(s) reported", len(interp.Errors))
		}
		return nil
	},
}

func writeTrace(path string, data *runtime.TraceData) error {
	out, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding trace: %w", err)
	}
	if err := os.WriteFile(path, append(out, '\n'), 0644); err != nil {
		return fmt.Errorf("writing trace file: %w", err)
	}
	runtime.Info("wrote %d trace events to %s", len(data.Events), path)
	return nil
}

func init() {
	runCmd.Flags().StringVar(&tracePath, "trace", "", "Write an execution trace as JSON to this file")
	AddCommand(runCmd)
}
