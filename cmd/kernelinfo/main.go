// Command kernelinfo inspects the strided kernel table.
//
// Usage:
//
//	kernelinfo list [--family scalar|unary] [--type float|double]
//	kernelinfo impl
//	kernelinfo eval [flags] kernel-name value...
//
// Examples:
//
//	kernelinfo list --type double
//	kernelinfo impl --generic
//	kernelinfo eval array_scalar_add_float --scalar 2 1 2 3 4
//	kernelinfo eval array_sin_assign_double --stride -2 0 0.5 1 1.5
package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/cwbudde/algo-strided/array"
	"github.com/cwbudde/algo-strided/internal/cpu"
)

// app carries the state shared by all subcommands.
type app struct {
	stdout io.Writer
	stderr io.Writer
	log    *slog.Logger

	verbose bool
	generic bool
}

func main() {
	if err := newRootCmd(os.Stdout, os.Stderr).Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	a := &app{
		stdout: stdout,
		stderr: stderr,
		log:    slog.New(slog.NewTextHandler(io.Discard, nil)),
	}

	root := &cobra.Command{
		Use:               "kernelinfo",
		Short:             "inspect and evaluate the strided array kernels",
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
	}
	root.SetOut(stdout)
	root.SetErr(stderr)

	pf := root.PersistentFlags()
	pf.BoolVarP(&a.verbose, "verbose", "v", false, "log diagnostics to stderr")
	pf.BoolVar(&a.generic, "generic", false, "use the pure Go kernels only")

	root.AddCommand(
		a.newListCmd(),
		a.newImplCmd(),
		a.newEvalCmd(),
	)
	return root
}

// setup installs the logger and selects the kernels before any subcommand runs.
func (a *app) setup(cmd *cobra.Command, args []string) error {
	level := slog.LevelWarn
	if a.verbose {
		level = slog.LevelDebug
	}
	a.log = slog.New(slog.NewTextHandler(a.stderr, &slog.HandlerOptions{Level: level}))

	if a.generic {
		cpu.SetForcedFeatures(cpu.Features{ForceGeneric: true})
	} else {
		cpu.ResetDetection()
	}
	array.Reselect()

	f := cpu.DetectFeatures()
	a.log.Debug("kernels resolved",
		"command", cmd.Name(),
		"implementation", array.Implementation(),
		"arch", f.Architecture,
		"sse2", f.HasSSE2,
		"neon", f.HasNEON,
		"force_generic", f.ForceGeneric)
	return nil
}
