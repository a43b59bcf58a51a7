package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/google/subcommands"

	moneybox "github.com/firaseth/Money-Box"
)

type addCmd struct {
	box         string
	description string
	amount      string
	category    string
	typ         string
	date        string
}

func (*addCmd) Name() string     { return "add" }
func (*addCmd) Synopsis() string { return "record a transaction in a box" }
func (*addCmd) Usage() string {
	return `mbx add -desc <description> -amount <amount> [-box personal|firm] [-type income|expense] [-cat <category>] [-date <date>]

  Records a transaction in the selected box and re-evaluates the alerts.

Usage Examples:
# A salary into the personal box.
$ mbx add -desc Salary -amount 1000 -type income

# Office supplies for the firm.
$ mbx add -box firm -desc "Office Supplies" -amount 120.50 -cat Office
`
}

func (c *addCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.box, "box", "personal", "Box to record into (personal or firm).")
	f.StringVar(&c.description, "desc", "", "Transaction description.")
	f.StringVar(&c.amount, "amount", "", "Transaction amount, a positive number.")
	f.StringVar(&c.category, "cat", "General", "Transaction category.")
	f.StringVar(&c.typ, "type", "expense", "Transaction type (income or expense).")
	f.StringVar(&c.date, "date", "", "Transaction date, defaults to today.")
}

func (c *addCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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
	typ, err := moneybox.ParseTransactionType(c.typ)
	if err != nil {
		return fail(err)
	}
	amount, err := moneybox.ParseMoney(c.amount, book.Currency())
	if err != nil {
		return fail(err)
	}
	date := moneybox.Today()
	if c.date != "" {
		if date, err = moneybox.ParseDate(c.date); err != nil {
			return fail(err)
		}
	}

	tx, err := book.AddTransaction(box, date, c.description, amount, c.category, typ)
	if err != nil {
		return fail(err)
	}
	fmt.Printf("Added %s %q (%s) to the %s box.\n", tx.Type, tx.Description, tx.Amount, box.Name())
	return subcommands.ExitSuccess
}
