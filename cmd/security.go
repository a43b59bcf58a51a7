package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/google/subcommands"
)

type pinCmd struct {
	pin string
}

func (*pinCmd) Name() string     { return "pin" }
func (*pinCmd) Synopsis() string { return "set the 4-digit lock pin" }
func (*pinCmd) Usage() string {
	return `mbx pin -set <pin>

  Sets the lock pin. The pin must be exactly 4 digits; anything else is
  rejected. Changing the pin requires the book to be unlocked.
`
}

func (c *pinCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.pin, "set", "", "The new 4-digit pin.")
}

func (c *pinCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	book, err := loadBook()
	if err != nil {
		return fail(err)
	}
	if err := book.SetPIN(c.pin); err != nil {
		return fail(err)
	}
	fmt.Println("PIN set. Lock the book with 'mbx lock'.")
	return subcommands.ExitSuccess
}

type lockCmd struct{}

func (*lockCmd) Name() string     { return "lock" }
func (*lockCmd) Synopsis() string { return "lock the book behind the pin gate" }
func (*lockCmd) Usage() string {
	return `mbx lock

  Locks the book. Ledger data stays inaccessible until unlocked with the pin.
`
}

func (*lockCmd) SetFlags(_ *flag.FlagSet) {}

func (c *lockCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	book, err := loadBook()
	if err != nil {
		return fail(err)
	}
	if err := book.Lock(); err != nil {
		return fail(err)
	}
	fmt.Println("Locked.")
	return subcommands.ExitSuccess
}

type unlockCmd struct {
	pin string
}

func (*unlockCmd) Name() string     { return "unlock" }
func (*unlockCmd) Synopsis() string { return "unlock the book with the pin" }
func (*unlockCmd) Usage() string {
	return `mbx unlock -pin <pin>

  Unlocks the book when the pin matches exactly. A wrong pin leaves the book
  locked.
`
}

func (c *unlockCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.pin, "pin", "", "The candidate pin.")
}

func (c *unlockCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	book, err := loadBook()
	if err != nil {
		return fail(err)
	}
	if err := book.Unlock(c.pin); err != nil {
		return fail(err)
	}
	fmt.Println("Unlocked.")
	return subcommands.ExitSuccess
}

type privacyCmd struct{}

func (*privacyCmd) Name() string     { return "privacy" }
func (*privacyCmd) Synopsis() string { return "toggle privacy mode" }
func (*privacyCmd) Usage() string {
	return `mbx privacy

  Toggles privacy mode. With privacy mode on, rendered amounts are masked.
  This is display-only and does not restrict access to the data.
`
}

func (*privacyCmd) SetFlags(_ *flag.FlagSet) {}

func (c *privacyCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	book, err := loadBook()
	if err != nil {
		return fail(err)
	}
	if book.TogglePrivacy() {
		fmt.Println("Privacy mode on: amounts are masked.")
	} else {
		fmt.Println("Privacy mode off.")
	}
	return subcommands.ExitSuccess
}
