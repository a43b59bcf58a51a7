package cmd

import (
	"context"
	"flag"

	"github.com/google/subcommands"

	moneybox "github.com/firaseth/Money-Box"
	"github.com/firaseth/Money-Box/renderer"
)

type reportCmd struct{}

func (*reportCmd) Name() string     { return "report" }
func (*reportCmd) Synopsis() string { return "render the whole book as one report" }
func (*reportCmd) Usage() string {
	return `mbx report

  Renders both boxes, the upcoming bills and the unread notifications as a
  single markdown report.
`
}

func (*reportCmd) SetFlags(_ *flag.FlagSet) {}

func (c *reportCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	book, err := loadBook()
	if err != nil {
		return fail(err)
	}
	if gate(book) {
		return subcommands.ExitFailure
	}
	printMarkdown(renderer.Report(book, moneybox.Today()))
	return subcommands.ExitSuccess
}
