package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/google/subcommands"

	moneybox "github.com/firaseth/Money-Box"
)

type billAddCmd struct {
	description string
	amount      string
	due         string
	category    string
	frequency   string
}

func (*billAddCmd) Name() string     { return "bill-add" }
func (*billAddCmd) Synopsis() string { return "track a new bill" }
func (*billAddCmd) Usage() string {
	return `mbx bill-add -desc <description> -amount <amount> -due <date> [-cat <category>] [-freq weekly|monthly|annually]

  Tracks a new unpaid bill. A bill due within the next three days raises a
  notification immediately.

Usage Examples:
# A monthly AWS bill due in two days.
$ mbx bill-add -desc AWS -amount 50 -due +2d
`
}

func (c *billAddCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.description, "desc", "", "Bill description.")
	f.StringVar(&c.amount, "amount", "", "Bill amount, a positive number.")
	f.StringVar(&c.due, "due", "", "Due date.")
	f.StringVar(&c.category, "cat", "General", "Bill category.")
	f.StringVar(&c.frequency, "freq", "monthly", "Bill frequency (weekly, monthly or annually).")
}

func (c *billAddCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	book, err := loadBook()
	if err != nil {
		return fail(err)
	}
	if gate(book) {
		return subcommands.ExitFailure
	}

	amount, err := moneybox.ParseMoney(c.amount, book.Currency())
	if err != nil {
		return fail(err)
	}
	due, err := moneybox.ParseDate(c.due)
	if err != nil {
		return fail(err)
	}
	freq, err := moneybox.ParseFrequency(c.frequency)
	if err != nil {
		return fail(err)
	}

	bill, err := book.AddBill(c.description, amount, due, c.category, freq)
	if err != nil {
		return fail(err)
	}
	fmt.Printf("Tracking bill %q (%s) due %s.\n", bill.Description, bill.Amount, bill.DueDate)
	return subcommands.ExitSuccess
}
