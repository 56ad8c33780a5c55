// Package main implements the loxfront command-line driver.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/jcgregorio/logger"
	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"

	"github.com/you-not-fish/loxfront/internal/syntax"
)

// Version information
const Version = "0.1.0-dev"

// flag names
const (
	formatFlagName    = "format"
	verboseFlagName   = "verbose"
	allErrorsFlagName = "all-errors"
)

func main() {
	app := newApp()
	if err := app.Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "loxfront: %v\n", err)
		os.Exit(1)
	}
}

func newApp() *cli.App {
	return &cli.App{
		Name:    "loxfront",
		Usage:   "lex, parse and print Lox expressions",
		Version: Version,
		Commands: []*cli.Command{
			LexCommand(),
			ParseCommand(),
			PrintASTCommand(),
		},
	}
}

// commonCmd holds state shared by every subcommand.
type commonCmd struct {
	verbose bool

	out    io.Writer
	errOut io.Writer
	log    debugLogger
}

// debugLogger is the part of *logger.Logger and *logger.NopLogger the
// commands use.
type debugLogger interface {
	Debugf(format string, args ...interface{})
}

// newLogger returns a logger writing to w. Debug lines are kept only when
// verbose is set. Callers log directly, so no extra frames are skipped.
func newLogger(w logger.SyncWriter, verbose bool) *logger.Logger {
	return logger.NewFromOptions(&logger.Options{
		SyncWriter:   w,
		DepthDelta:   0,
		IncludeDebug: verbose,
	})
}

func (cmd *commonCmd) flags() []cli.Flag {
	return []cli.Flag{
		&cli.BoolFlag{
			Name:        verboseFlagName,
			Usage:       "emit debug logs on stderr",
			EnvVars:     []string{"LOXFRONT_VERBOSE"},
			Destination: &cmd.verbose,
		},
	}
}

// setup fills in the writers and logger that were not injected.
func (cmd *commonCmd) setup() {
	if cmd.out == nil {
		cmd.out = os.Stdout
	}
	if cmd.errOut == nil {
		cmd.errOut = os.Stderr
	}
	if cmd.log == nil {
		cmd.log = newLogger(os.Stderr, cmd.verbose)
	}
}

func (cmd *commonCmd) printf(format string, args ...interface{}) {
	fmt.Fprintf(cmd.out, format, args...)
}

// sourceCmd is a subcommand that reads one Lox source file.
type sourceCmd struct {
	commonCmd
	format    string
	allErrors bool
}

func (cmd *sourceCmd) flags(defaultFormat, formatUsage string) []cli.Flag {
	fl := []cli.Flag{
		&cli.StringFlag{
			Name:        formatFlagName,
			Value:       defaultFormat,
			Usage:       formatUsage,
			EnvVars:     []string{"LOXFRONT_FORMAT"},
			Destination: &cmd.format,
		},
		&cli.BoolFlag{
			Name:        allErrorsFlagName,
			Usage:       "report every lexical error instead of only the first",
			Destination: &cmd.allErrors,
		},
	}
	return append(fl, cmd.commonCmd.flags()...)
}

// checkFormat reports a usage error unless cmd.format is one of allowed.
func (cmd *sourceCmd) checkFormat(allowed ...string) error {
	for _, f := range allowed {
		if cmd.format == f {
			return nil
		}
	}
	return cli.Exit(fmt.Sprintf("invalid --%s %q: want one of %v", formatFlagName, cmd.format, allowed), 2)
}

// filename returns the single positional FILE argument.
func filename(cliCtx *cli.Context) (string, error) {
	if cliCtx.NArg() != 1 {
		return "", cli.Exit("expected exactly one FILE argument", 2)
	}
	return cliCtx.Args().First(), nil
}

// readSource reads the whole file at path.
func (cmd *sourceCmd) readSource(path string) (string, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return "", errors.Wrapf(err, "failed to read file %s", path)
	}
	cmd.log.Debugf("read %s: %d bytes", path, len(b))
	return string(b), nil
}

// scan lexes src and applies the lexical error policy. Tokens are returned
// only when there were no errors.
func (cmd *sourceCmd) scan(src string) ([]syntax.Token, error) {
	results := syntax.Scan(src)
	toks := syntax.Tokens(results)
	errs := syntax.Errors(results)
	cmd.log.Debugf("scanned %d tokens, %d errors", len(toks), len(errs))

	if len(errs) == 0 {
		return toks, nil
	}
	return nil, cmd.reportLexErrors(errs)
}

// reportLexErrors prints the first error, or every error with --all-errors,
// and returns the exit error.
func (cmd *sourceCmd) reportLexErrors(errs []*syntax.LexError) error {
	if !cmd.allErrors {
		errs = errs[:1]
	}
	for _, err := range errs {
		fmt.Fprintln(cmd.errOut, err)
	}
	return cli.Exit("", 1)
}
