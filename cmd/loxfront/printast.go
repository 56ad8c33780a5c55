package main

import (
	"github.com/urfave/cli/v2"

	"github.com/you-not-fish/loxfront/internal/syntax"
)

// printASTCmd prints a few hand-built trees.
type printASTCmd struct {
	commonCmd
}

// PrintASTCommand returns a [*cli.Command] for the `print-ast` subcommand.
func PrintASTCommand() *cli.Command {
	cmd := &printASTCmd{}
	return &cli.Command{
		Name:   "print-ast",
		Usage:  "print the canonical form of built-in sample trees",
		Flags:  cmd.flags(),
		Action: cmd.action,
	}
}

// sampleTrees are the trees printed by print-ast.
func sampleTrees() []syntax.Expr {
	return []syntax.Expr{
		syntax.NewBinary(
			syntax.NewString("one"),
			syntax.Bare(syntax.Plus),
			syntax.NewString("two"),
		),
		syntax.NewUnary(syntax.Bare(syntax.Minus), syntax.NewNumber(1)),
		syntax.NewBinary(
			syntax.NewUnary(syntax.Bare(syntax.Minus), syntax.NewNumber(123)),
			syntax.Bare(syntax.Star),
			syntax.NewGrouping(syntax.NewNumber(45.67)),
		),
	}
}

func (cmd *printASTCmd) action(_ *cli.Context) error {
	cmd.setup()
	for _, x := range sampleTrees() {
		cmd.printf("%s\n", syntax.Sprint(x))
	}
	cmd.log.Debugf("printed %d sample trees", len(sampleTrees()))
	return nil
}
