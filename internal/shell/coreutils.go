package shell

import (
	"context"
	"maps"
	"slices"

	"github.com/u-root/u-root/pkg/core"
	"github.com/u-root/u-root/pkg/core/cat"
	"github.com/u-root/u-root/pkg/core/chmod"
	"github.com/u-root/u-root/pkg/core/cp"
	"github.com/u-root/u-root/pkg/core/find"
	"github.com/u-root/u-root/pkg/core/ls"
	"github.com/u-root/u-root/pkg/core/mkdir"
	"github.com/u-root/u-root/pkg/core/mv"
	"github.com/u-root/u-root/pkg/core/rm"
	"github.com/u-root/u-root/pkg/core/touch"
	"github.com/u-root/u-root/pkg/core/xargs"
	"mvdan.cc/sh/v3/interp"
)

var coreUtils = map[string]func() core.Command{
	"cat":   func() core.Command { return cat.New() },
	"chmod": func() core.Command { return chmod.New() },
	"cp":    func() core.Command { return cp.New() },
	"find":  func() core.Command { return find.New() },
	"ls":    func() core.Command { return ls.New() },
	"mkdir": func() core.Command { return mkdir.New() },
	"mv":    func() core.Command { return mv.New() },
	"rm":    func() core.Command { return rm.New() },
	"touch": func() core.Command { return touch.New() },
	"xargs": func() core.Command { return xargs.New() },
}

// CoreUtils lists the programs served in-process when Options.CoreUtils is
// set.
func CoreUtils() []string {
	return slices.Sorted(maps.Keys(coreUtils))
}

func (s *Shell) coreUtilsHandler() func(next interp.ExecHandlerFunc) interp.ExecHandlerFunc {
	return func(next interp.ExecHandlerFunc) interp.ExecHandlerFunc {
		return func(ctx context.Context, args []string) error {
			if len(args) == 0 {
				return next(ctx, args)
			}

			program, programArgs := args[0], args[1:]

			newCoreUtil, ok := coreUtils[program]
			if !ok {
				return next(ctx, args)
			}

			c := interp.HandlerCtx(ctx)

			cmd := newCoreUtil()
			cmd.SetIO(c.Stdin, c.Stdout, c.Stderr)
			cmd.SetWorkingDir(c.Dir)
			cmd.SetLookupEnv(func(key string) (string, bool) {
				v := c.Env.Get(key)
				return v.Str, v.Set
			})
			if err := cmd.RunContext(ctx, programArgs...); err != nil {
				// Report like an external program would so callers see a
				// status rather than a fatal interpreter error.
				if c.Stderr != nil {
					_, _ = c.Stderr.Write([]byte(program + ": " + err.Error() + "\n"))
				}
				return interp.NewExitStatus(1)
			}
			return nil
		}
	}
}
