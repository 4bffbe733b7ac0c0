// Package cli wires the numlab command line: a cobra command tree whose
// flags are mirrored into viper so every option can also come from a config
// file or a NUMLAB_* environment variable.
package cli

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/katalvlaran/numlab/linsolve"
	"github.com/katalvlaran/numlab/matrix"
)

// EnvPrefix prefixes environment overrides, e.g. NUMLAB_PIVOT_TOL.
const EnvPrefix = "NUMLAB"

// Flag and config keys.
const (
	keyConfig   = "config"
	keyLogLevel = "log-level"
	keyPivotTol = "pivot-tol"
)

// ErrInvalidFlag indicates a flag value outside its domain.
var ErrInvalidFlag = errors.New("cli: invalid flag value")

// app carries per-invocation state shared by the subcommands.
type app struct {
	v      *viper.Viper
	out    io.Writer
	errOut io.Writer
	log    *slog.Logger
	opts   []linsolve.Option
}

// NewRootCommand builds the command tree writing results to out and logs to errOut.
func NewRootCommand(out, errOut io.Writer) *cobra.Command {
	a := &app{v: viper.New(), out: out, errOut: errOut}
	a.v.SetEnvPrefix(EnvPrefix)
	a.v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	a.v.AutomaticEnv()

	root := &cobra.Command{
		Use:   "numlab",
		Short: "Least-squares fits and cubic splines over dense and tridiagonal solvers.",
		Long: `numlab drives the solvers on two classic workloads:
polynomial least squares through the normal equations (solved by Gaussian
elimination and by LU, side by side) and natural cubic spline interpolation
through the Thomas algorithm.`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
	}
	root.SetOut(out)
	root.SetErr(errOut)

	root.PersistentFlags().StringP(keyConfig, "c", "", "Config file (yaml, toml or json)")
	root.PersistentFlags().String(keyLogLevel, "info", "Log level (debug, info, warn, error)")
	root.PersistentFlags().Float64(keyPivotTol, linsolve.DefaultPivotTolerance, "Pivot magnitude treated as zero")

	root.AddCommand(a.fitCommand(), a.splineCommand())

	return root
}

// setup binds the executing command's flags, reads the optional config file,
// and prepares the logger and solver options.
func (a *app) setup(cmd *cobra.Command, _ []string) error {
	if err := a.v.BindPFlags(cmd.Flags()); err != nil {
		return err
	}
	if path := a.v.GetString(keyConfig); path != "" {
		a.v.SetConfigFile(path)
		if err := a.v.ReadInConfig(); err != nil {
			return fmt.Errorf("read config %s: %w", path, err)
		}
	}

	logger, err := newLogger(a.errOut, a.v.GetString(keyLogLevel))
	if err != nil {
		return err
	}
	a.log = logger

	tol := a.v.GetFloat64(keyPivotTol)
	if math.IsNaN(tol) || math.IsInf(tol, 0) || tol < 0 {
		return fmt.Errorf("--%s=%g: %w", keyPivotTol, tol, ErrInvalidFlag)
	}
	a.opts = []linsolve.Option{linsolve.WithPivotTolerance(tol)}
	a.log.Debug("configured", "pivot_tol", tol, "config", a.v.ConfigFileUsed())

	return nil
}

func newLogger(w io.Writer, level string) (*slog.Logger, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		return nil, fmt.Errorf("--%s=%q: %w", keyLogLevel, level, ErrInvalidFlag)
	}

	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: lvl})), nil
}

// Execute runs the command tree against os.Args.
func Execute() error {
	return NewRootCommand(os.Stdout, os.Stderr).Execute()
}

// ExitCode maps an Execute error to a process status:
// 0 on success, 2 for allocation failures, 1 otherwise.
func ExitCode(err error) int {
	switch {
	case err == nil:
		return 0
	case errors.Is(err, matrix.ErrAllocation):
		return 2
	default:
		return 1
	}
}
