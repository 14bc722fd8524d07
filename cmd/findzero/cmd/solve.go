package cmd

import (
	"fmt"

	log "github.com/golang/glog"
	"github.com/spf13/cobra"
	"gopkg.in/inf.v0"

	"github.com/govalues/findzero"
	"github.com/govalues/findzero/internal/config"
	"github.com/govalues/findzero/internal/poly"
)

type solveOptions struct {
	f, df      string
	guess      string
	configFile string
	maxIter    int
	margin     string
	scale      int32
	round      int32
}

func newSolveCommand() *cobra.Command {
	opts := &solveOptions{}
	cmd := &cobra.Command{
		Use:   "solve",
		Short: "Find a root of a polynomial",
		Example: `  findzero solve --f 1,-2,-4 --df 2,-2 --guess 100
  findzero solve --f 0.2,-1,1,0 --df 0.6,-2,1 --guess 1.0 --round 5
  findzero solve --config finder.toml --f 1,0,-2 --df 2,0 --guess 1 --v=2`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSolve(cmd, opts)
		},
	}
	flags := cmd.Flags()
	flags.StringVar(&opts.f, "f", "", "coefficients of f, highest degree first")
	flags.StringVar(&opts.df, "df", "", "coefficients of f', highest degree first")
	flags.StringVar(&opts.guess, "guess", "0", "initial guess")
	flags.StringVar(&opts.configFile, "config", "", "TOML or YAML file with finder parameters")
	flags.IntVar(&opts.maxIter, "max-iterations", findzero.DefaultMaxIterations, "maximum number of update steps")
	flags.StringVar(&opts.margin, "margin", "0.0000000001", "accept x when |f(x)| is less than margin")
	flags.Int32Var(&opts.scale, "scale", int32(findzero.DefaultScale), "digits after the decimal point kept when dividing")
	flags.Int32Var(&opts.round, "round", -1, "round the printed root half-up to this many digits after the decimal point")
	_ = cmd.MarkFlagRequired("f")
	_ = cmd.MarkFlagRequired("df")
	return cmd
}

// finder builds a finder from the config file, if any, and then applies
// the flags set on the command line.
func (o *solveOptions) finder(cmd *cobra.Command) (findzero.Finder, error) {
	c := config.Default()
	if o.configFile != "" {
		var err error
		c, err = config.Load(o.configFile)
		if err != nil {
			return findzero.Finder{}, err
		}
	}
	flags := cmd.Flags()
	if flags.Changed("max-iterations") {
		c.MaxIterations = o.maxIter
	}
	if flags.Changed("margin") {
		c.Margin = o.margin
	}
	if flags.Changed("scale") {
		c.Scale = o.scale
	}
	return c.Finder()
}

func runSolve(cmd *cobra.Command, o *solveOptions) error {
	finder, err := o.finder(cmd)
	if err != nil {
		return err
	}
	f, err := poly.Parse(o.f)
	if err != nil {
		return Error.New("--f: %v", err)
	}
	df, err := poly.Parse(o.df)
	if err != nil {
		return Error.New("--df: %v", err)
	}
	guess, err := findzero.Parse(o.guess)
	if err != nil {
		return Error.New("--guess: %v", err)
	}

	log.V(1).Infof("solving %v = 0 with f'(x) = %v, %v, initial guess %v", f, df, finder, guess)
	if log.V(2) {
		finder = finder.WithTrace(func(s findzero.Step) {
			log.Infof("step %v: x = %v, f(x) = %v, f'(x) = %v, next = %v", s.Iteration, s.X, s.Y, s.Slope, s.Next)
		})
	}

	x, err := finder.Solve(f.Func(), df.Func(), guess)
	if err != nil {
		return Error.Wrap(err)
	}
	if o.round >= 0 {
		x = new(inf.Dec).Round(x, inf.Scale(o.round), inf.RoundHalfUp)
	}
	_, err = fmt.Fprintln(cmd.OutOrStdout(), x)
	return err
}
