// internal/app/app.go
package app

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"kofamscan/internal/cli"
	"kofamscan/internal/cmdutil"
	"kofamscan/internal/config"
	"kofamscan/internal/pipeline"
	"kofamscan/internal/writers"
)

// Exit codes.
const (
	ExitOK      = 0
	ExitUsage   = 2
	ExitRuntime = 3
	ExitCancel  = 130
)

// exitError carries a non-zero exit status that is not a failure message.
type exitError struct{ code int }

func (e exitError) Error() string { return fmt.Sprintf("exit %d", e.code) }

// inputError marks unreadable or malformed input files.
type inputError struct{ err error }

func (e inputError) Error() string { return e.err.Error() }
func (e inputError) Unwrap() error { return e.err }

// RunContext parses argv, loads the inputs and writes the report to stdout.
// Diagnostics go to stderr. It returns the process exit code.
func RunContext(parent context.Context, argv []string, stdout, stderr io.Writer) int {
	outw := bufio.NewWriter(stdout)

	cmd := cli.NewRootCommand(viper.New(), func(cmd *cobra.Command, cfg config.Config) error {
		return report(cmd.Context(), outw, stderr, cfg)
	})
	// cobra falls back to os.Args on a nil slice.
	cmd.SetArgs(append([]string{}, argv...))
	cmd.SetOut(outw)
	cmd.SetErr(stderr)

	err := cmd.ExecuteContext(parent)
	if ferr := outw.Flush(); err == nil && ferr != nil {
		err = ferr
	}
	return exitCode(err, cmd, stderr)
}

// Run is RunContext without cancellation.
func Run(argv []string, stdout, stderr io.Writer) int {
	return RunContext(context.Background(), argv, stdout, stderr)
}

func report(ctx context.Context, out io.Writer, stderr io.Writer, cfg config.Config) error {
	log := cmdutil.NewLogger(stderr, cfg.Quiet, cfg.Verbose)

	res, sum, err := pipeline.Load(ctx, pipeline.Config{
		KOList:    cfg.KOList,
		Tblout:    cfg.Tblout,
		Queries:   cfg.Queries,
		MaxEValue: cfg.MaxEValue,
	})
	if err != nil {
		if errors.Is(err, context.Canceled) {
			return err
		}
		return inputError{err}
	}

	log.WithFields(logrus.Fields{
		"kos":      sum.KOs,
		"queries":  sum.Queries,
		"rows":     sum.Rows,
		"hits":     sum.Hits,
		"filtered": sum.Filtered,
	}).Debug("inputs loaded")
	if n := len(sum.UnknownKOs); n > 0 {
		cmdutil.Warnf(log, "%d profile(s) not in ko_list, reported without threshold (first: %s)", n, sum.UnknownKOs[0])
	}
	if n := len(sum.Unlisted); n > 0 {
		cmdutil.Warnf(log, "%d gene(s) with hits are missing from %s and are not reported (first: %s)", n, cfg.Queries, sum.Unlisted[0])
	}

	err = writers.Write(ctx, cfg.Format, out, writers.Report{Source: res, Detail: cfg.DetailOptions()})
	if err != nil {
		return err
	}
	if sum.Hits == 0 && cfg.NoHitExitCode != 0 {
		return exitError{cfg.NoHitExitCode}
	}
	return nil
}

func exitCode(err error, cmd *cobra.Command, stderr io.Writer) int {
	// A reader that hung up early (head, less) is not a failure.
	if err = writers.IgnoreBrokenPipe(err); err == nil {
		return ExitOK
	}
	var ee exitError
	if errors.As(err, &ee) {
		return ee.code
	}
	if errors.Is(err, context.Canceled) {
		return ExitCancel
	}
	_, _ = fmt.Fprintln(stderr, "error:", err)

	var ue cli.UsageError
	if errors.As(err, &ue) {
		_, _ = fmt.Fprint(stderr, cmd.UsageString())
		return ExitUsage
	}
	var ie inputError
	if errors.As(err, &ie) {
		return ExitUsage
	}
	return ExitRuntime
}
