package cmd

import (
	"context"
	"flag"

	"github.com/google/subcommands"

	moneybox "github.com/firaseth/Money-Box"
	"github.com/firaseth/Money-Box/renderer"
)

type txCmd struct {
	box  string
	head int
}

func (*txCmd) Name() string     { return "tx" }
func (*txCmd) Synopsis() string { return "list the transactions of a box" }
func (*txCmd) Usage() string {
	return `mbx tx [-box personal|firm] [-head <n>]

  Lists the transactions of the selected box, most recent first.
`
}

func (c *txCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.box, "box", "personal", "Box to list (personal or firm).")
	f.IntVar(&c.head, "head", 0, "Show only the first N transactions.")
}

func (c *txCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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

	txs := book.Ledger(box).Transactions()
	if c.head > 0 && len(txs) > c.head {
		txs = txs[:c.head]
	}
	printMarkdown(renderer.Transactions(box, txs, book.Security().PrivacyMode))
	return subcommands.ExitSuccess
}
