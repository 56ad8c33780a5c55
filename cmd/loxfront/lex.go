package main

import (
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/urfave/cli/v2"

	"github.com/you-not-fish/loxfront/internal/syntax"
)

// lexCmd prints the token stream of a source file.
type lexCmd struct {
	sourceCmd
}

// LexCommand returns a [*cli.Command] for the `lex` subcommand.
func LexCommand() *cli.Command {
	cmd := &lexCmd{}
	return &cli.Command{
		Name:      "lex",
		Usage:     "print the tokens of FILE",
		ArgsUsage: "FILE",
		Flags:     cmd.flags("text", "output format: text or table"),
		Action:    cmd.action,
	}
}

func (cmd *lexCmd) action(cliCtx *cli.Context) error {
	cmd.setup()
	if err := cmd.checkFormat("text", "table"); err != nil {
		return err
	}
	path, err := filename(cliCtx)
	if err != nil {
		return err
	}

	cmd.printf("Lexing '%s'\n", path)
	src, err := cmd.readSource(path)
	if err != nil {
		return cli.Exit(err, 1)
	}

	results := syntax.Scan(src)
	cmd.log.Debugf("scanned %d slots", len(results))
	cmd.printf("Tokens:\n")

	if cmd.format == "table" {
		cmd.writeTable(syntax.Tokens(results))
		if errs := syntax.Errors(results); len(errs) > 0 {
			return cmd.reportLexErrors(errs)
		}
		return nil
	}

	var errs []*syntax.LexError
	for _, r := range results {
		if !r.OK() {
			if !cmd.allErrors {
				return cmd.reportLexErrors([]*syntax.LexError{r.Err})
			}
			errs = append(errs, r.Err)
			continue
		}
		cmd.printf(" %v\n", r.Token)
	}
	if len(errs) > 0 {
		return cmd.reportLexErrors(errs)
	}
	return nil
}

// writeTable renders toks as an index/kind/value table.
func (cmd *lexCmd) writeTable(toks []syntax.Token) {
	table := tablewriter.NewWriter(cmd.out)
	table.SetHeader([]string{"Index", "Kind", "Value"})
	for i, tok := range toks {
		value := ""
		if !tok.Value().IsZero() {
			value = tok.Value().String()
		}
		table.Append([]string{strconv.Itoa(i), tok.Kind().String(), value})
	}
	table.Render()
}
