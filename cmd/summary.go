package cmd

import (
	"context"
	"flag"

	"github.com/google/subcommands"

	moneybox "github.com/firaseth/Money-Box"
	"github.com/firaseth/Money-Box/renderer"
)

type summaryCmd struct {
	box string
}

func (*summaryCmd) Name() string     { return "summary" }
func (*summaryCmd) Synopsis() string { return "show income, expenses and balance of a box" }
func (*summaryCmd) Usage() string {
	return `mbx summary [-box personal|firm]

  Shows the aggregate income, expenses and net balance of the selected box.
`
}

func (c *summaryCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.box, "box", "personal", "Box to summarize (personal or firm).")
}

func (c *summaryCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	book, err := loadBook()
	if err != nil {
		return fail(err)
	}
	if gate(book) {
		return subcommands.ExitFailure
	}
	box, err := moneybox.ParseBoxID(c.box)
	if err != nil {
		return fail(err)
	}
	printMarkdown(renderer.Summary(box, book.Summary(box), book.Security().PrivacyMode))
	return subcommands.ExitSuccess
}
