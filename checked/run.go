package checked

import (
	"golang.org/x/sync/errgroup"

	"github.com/cwbudde/algo-strided/stride"
)

// run calls fn for consecutive logical ranges covering out. Ranges run
// concurrently when out is long enough and no two logical indices write the
// same element.
func run(cfg Config, out stride.Geometry, fn func(first, n int)) error {
	if err := cfg.Context.Err(); err != nil {
		return err
	}
	if out.Size == 0 {
		return nil
	}
	if cfg.Workers <= 1 || out.Aliased() || out.Size <= 2*cfg.MinChunk {
		fn(0, out.Size)
		return nil
	}

	chunk := max(cfg.MinChunk, (out.Size+cfg.Workers-1)/cfg.Workers)

	g, ctx := errgroup.WithContext(cfg.Context)
	g.SetLimit(cfg.Workers)
	for _, p := range out.Split(chunk) {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			fn(p.First, p.Size)
			return nil
		})
	}
	return g.Wait()
}
