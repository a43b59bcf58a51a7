package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/google/subcommands"
)

type themeCmd struct{}

func (*themeCmd) Name() string     { return "theme" }
func (*themeCmd) Synopsis() string { return "show or set the presentation theme" }
func (*themeCmd) Usage() string {
	return `mbx theme [light|dark]

  Without an argument, shows the persisted theme preference. With one,
  records it. The theme is a display preference only.
`
}

func (*themeCmd) SetFlags(_ *flag.FlagSet) {}

func (c *themeCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	book, err := loadBook()
	if err != nil {
		return fail(err)
	}
	if f.NArg() == 0 {
		theme := book.Theme()
		if theme == "" {
			theme = "light"
		}
		fmt.Println(theme)
		return subcommands.ExitSuccess
	}
	theme := f.Arg(0)
	if theme != "light" && theme != "dark" {
		return fail(fmt.Errorf("unknown theme %q, use light or dark", theme))
	}
	book.SetTheme(theme)
	fmt.Printf("Theme set to %s.\n", theme)
	return subcommands.ExitSuccess
}
