package cmd

import (
	"context"
	"flag"

	"github.com/google/subcommands"

	moneybox "github.com/firaseth/Money-Box"
	"github.com/firaseth/Money-Box/renderer"
)

type billListCmd struct {
	unpaid bool
}

func (*billListCmd) Name() string     { return "bills" }
func (*billListCmd) Synopsis() string { return "list tracked bills" }
func (*billListCmd) Usage() string {
	return `mbx bills [-unpaid]

  Lists the tracked bills, most recent first, with their due status.
`
}

func (c *billListCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.unpaid, "unpaid", false, "Show only unpaid bills.")
}

func (c *billListCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	book, err := loadBook()
	if err != nil {
		return fail(err)
	}
	if gate(book) {
		return subcommands.ExitFailure
	}
	bills := book.Bills().Bills()
	if c.unpaid {
		bills = book.Bills().Unpaid()
	}
	printMarkdown(renderer.Bills(bills, moneybox.Today(), book.Security().PrivacyMode))
	return subcommands.ExitSuccess
}
