package main

import (
	"github.com/urfave/cli/v2"

	"github.com/you-not-fish/loxfront/internal/syntax"
)

// parseCmd parses a source file as one expression and prints its AST.
type parseCmd struct {
	sourceCmd
}

// ParseCommand returns a [*cli.Command] for the `parse` subcommand.
func ParseCommand() *cli.Command {
	cmd := &parseCmd{}
	return &cli.Command{
		Name:      "parse",
		Usage:     "parse FILE as an expression and print its AST",
		ArgsUsage: "FILE",
		Flags:     cmd.flags("text", "output format: text, json or tree"),
		Action:    cmd.action,
	}
}

func (cmd *parseCmd) action(cliCtx *cli.Context) error {
	cmd.setup()
	if err := cmd.checkFormat("text", "json", "tree"); err != nil {
		return err
	}
	path, err := filename(cliCtx)
	if err != nil {
		return err
	}

	cmd.printf("Parsing '%s'\n", path)
	src, err := cmd.readSource(path)
	if err != nil {
		return cli.Exit(err, 1)
	}
	toks, err := cmd.scan(src)
	if err != nil {
		return err
	}

	x, err := syntax.Parse(toks)
	if err != nil {
		cmd.log.Debugf("parse failed: %v", err)
		return cli.Exit(err, 1)
	}
	cmd.log.Debugf("parsed %d composite nodes", syntax.CountComposite(x))

	cmd.printf("AST:\n")
	switch cmd.format {
	case "json":
		if err := syntax.FprintJSON(cmd.out, x); err != nil {
			return cli.Exit(err, 1)
		}
	case "tree":
		if err := syntax.Dump(cmd.out, x); err != nil {
			return cli.Exit(err, 1)
		}
	default:
		cmd.printf("%s\n", syntax.Sprint(x))
	}
	return nil
}
