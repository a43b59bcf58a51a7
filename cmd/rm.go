package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/google/subcommands"

	moneybox "github.com/firaseth/Money-Box"
)

type rmCmd struct {
	box string
}

func (*rmCmd) Name() string     { return "rm" }
func (*rmCmd) Synopsis() string { return "remove a transaction by id" }
func (*rmCmd) Usage() string {
	return `mbx rm [-box personal|firm] <transaction-id>

  Removes the transaction with the given id from the selected box.
  Removing an unknown id does nothing.
`
}

func (c *rmCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.box, "box", "personal", "Box to remove from (personal or firm).")
}

func (c *rmCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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
	removed, err := book.RemoveTransaction(box, f.Arg(0))
	if err != nil {
		return fail(err)
	}
	if !removed {
		fmt.Printf("No transaction %q in the %s box.\n", f.Arg(0), box.Name())
		return subcommands.ExitSuccess
	}
	fmt.Printf("Removed transaction %q from the %s box.\n", f.Arg(0), box.Name())
	return subcommands.ExitSuccess
}
