package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/google/subcommands"

	moneybox "github.com/firaseth/Money-Box"
)

type billPayCmd struct {
	box string
}

func (*billPayCmd) Name() string     { return "pay" }
func (*billPayCmd) Synopsis() string { return "settle a bill and record the expense" }
func (*billPayCmd) Usage() string {
	return `mbx pay [-box personal|firm] <bill-id>

  Marks the bill paid and records the matching expense in the selected box,
  as one operation. Paying an already-paid bill does nothing.
`
}

func (c *billPayCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.box, "box", "personal", "Box that settles the bill (personal or firm).")
}

func (c *billPayCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Println(c.Usage())
		return subcommands.ExitUsageError
	}
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

	tx, err := book.PayBill(f.Arg(0), box)
	if err != nil {
		return fail(err)
	}
	if tx == nil {
		fmt.Println("Bill is already paid.")
		return subcommands.ExitSuccess
	}
	fmt.Printf("Settled: %s (%s) recorded in the %s box.\n", tx.Description, tx.Amount, box.Name())
	return subcommands.ExitSuccess
}
