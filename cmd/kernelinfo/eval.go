package main

import (
	"fmt"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/cwbudde/algo-strided/checked"
	"github.com/cwbudde/algo-strided/kernel"
)

// evalFlags describe the walk over the values given on the command line.
type evalFlags struct {
	scalar float64
	stride int
	size   int
	base   int
}

func (a *app) newEvalCmd() *cobra.Command {
	var ef evalFlags

	cmd := &cobra.Command{
		Use:   "eval kernel-name value...",
		Short: "run one kernel on the given values",
		Long: `Runs one kernel on a buffer holding the given values and prints the
buffer(s) afterwards. Without --size the walk visits as many elements as fit;
without --base it starts at the first element, or at the last one for a
negative stride. Put negative values after "--".`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, ok := kernel.Lookup(strings.ToLower(args[0]))
			if !ok {
				return fmt.Errorf("unknown kernel %q (see kernelinfo list)", args[0])
			}
			if id.Type == kernel.Float32 {
				return evalKernel[float32](a, id, ef, args[1:])
			}
			return evalKernel[float64](a, id, ef, args[1:])
		},
	}

	f := cmd.Flags()
	f.Float64Var(&ef.scalar, "scalar", 1, "scalar operand of scalar kernels")
	f.IntVar(&ef.stride, "stride", 1, "distance between logical elements, in elements")
	f.IntVar(&ef.size, "size", -1, "number of logical elements (-1: as many as fit)")
	f.IntVar(&ef.base, "base", -1, "index of logical element 0 (-1: automatic)")
	return cmd
}

func evalKernel[T kernel.Float](a *app, id kernel.Identity, ef evalFlags, args []string) error {
	values, err := parseValues[T](args)
	if err != nil {
		return err
	}

	v := walk(values, ef)
	a.log.Debug("evaluating",
		"kernel", id.Name(),
		"size", v.Size,
		"stride", v.Stride,
		"base", v.Base,
		"len", len(values))

	var out []T
	switch {
	case id.Mode == kernel.InPlace && id.Family == kernel.ScalarFamily:
		err = checked.ScalarAssign(id.Scalar, v, T(ef.scalar))
	case id.Mode == kernel.InPlace:
		err = checked.UnaryAssign(id.Unary, v)
	case id.Family == kernel.ScalarFamily:
		out = make([]T, len(values))
		err = checked.Scalar(id.Scalar, v, T(ef.scalar), withData(v, out))
	default:
		out = make([]T, len(values))
		err = checked.Unary(id.Unary, v, withData(v, out))
	}
	if err != nil {
		return err
	}

	tw := tabwriter.NewWriter(a.stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "kernel\t%s\n", id.Name())
	fmt.Fprintf(tw, "walk\tsize=%d stride=%d base=%d\n", v.Size, v.Stride, v.Base)
	if out == nil {
		fmt.Fprintf(tw, "buffer\t%s\n", formatValues(values))
	} else {
		fmt.Fprintf(tw, "input\t%s\n", formatValues(values))
		fmt.Fprintf(tw, "output\t%s\n", formatValues(out))
	}
	return tw.Flush()
}

func parseValues[T kernel.Float](args []string) ([]T, error) {
	bits := 64
	if kernel.TypeOf[T]() == kernel.Float32 {
		bits = 32
	}
	values := make([]T, len(args))
	for i, s := range args {
		x, err := strconv.ParseFloat(s, bits)
		if err != nil {
			return nil, fmt.Errorf("value %d: %w", i, err)
		}
		values[i] = T(x)
	}
	return values, nil
}

// walk builds the vector described by ef over values, filling in the
// automatic size and base.
func walk[T kernel.Float](values []T, ef evalFlags) checked.Vector[T] {
	n := len(values)
	size := ef.size
	if size < 0 {
		switch {
		case n == 0:
			size = 0
		case ef.stride == 0:
			size = 1
		default:
			size = (n-1)/max(ef.stride, -ef.stride) + 1
		}
	}
	base := ef.base
	if base < 0 {
		base = 0
		if ef.stride < 0 && size > 0 {
			base = (size - 1) * -ef.stride
		}
	}
	return checked.Strided(values, base, size, ef.stride)
}

func withData[T kernel.Float](v checked.Vector[T], data []T) checked.Vector[T] {
	v.Data = data
	return v
}

func formatValues[T kernel.Float](values []T) string {
	bits := 64
	if kernel.TypeOf[T]() == kernel.Float32 {
		bits = 32
	}
	parts := make([]string, len(values))
	for i, x := range values {
		parts[i] = strconv.FormatFloat(float64(x), 'g', -1, bits)
	}
	return "[" + strings.Join(parts, " ") + "]"
}
