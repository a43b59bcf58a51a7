package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/google/subcommands"

	"github.com/firaseth/Money-Box/renderer"
)

type notificationsCmd struct {
	clear bool
}

func (*notificationsCmd) Name() string     { return "notifications" }
func (*notificationsCmd) Synopsis() string { return "show or clear the notification feed" }
func (*notificationsCmd) Usage() string {
	return `mbx notifications [-clear]

  Shows the notification feed, most recent first. With -clear, marks every
  notification read (nothing is deleted).
`
}

func (c *notificationsCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.clear, "clear", false, "Mark all notifications read.")
}

func (c *notificationsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	book, err := loadBook()
	if err != nil {
		return fail(err)
	}
	if gate(book) {
		return subcommands.ExitFailure
	}
	if c.clear {
		book.ClearNotifications()
		fmt.Println("All notifications marked read.")
		return subcommands.ExitSuccess
	}
	printMarkdown(renderer.Notifications(book.Notifications().List()))
	return subcommands.ExitSuccess
}
