package cmd

import (
	"context"
	"flag"

	"github.com/google/subcommands"

	"github.com/firaseth/Money-Box/marketing"
)

// The marketing commands browse static launch collateral. They are available
// even while the book is locked: they expose no financial data.

type brandCmd struct{}

func (*brandCmd) Name() string             { return "brand" }
func (*brandCmd) Synopsis() string         { return "show the brand palette" }
func (*brandCmd) Usage() string            { return "mbx brand\n\n  Shows the MoneyBox brand palette.\n" }
func (*brandCmd) SetFlags(_ *flag.FlagSet) {}
func (*brandCmd) Execute(_ context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	printMarkdown(marketing.RenderBrand())
	return subcommands.ExitSuccess
}

type socialCmd struct {
	platform string
}

func (*socialCmd) Name() string     { return "social" }
func (*socialCmd) Synopsis() string { return "show the social media kit" }
func (*socialCmd) Usage() string {
	return `mbx social [-platform Instagram|Twitter|LinkedIn]

  Shows the ready-to-post social templates, optionally for one platform.
`
}
func (c *socialCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.platform, "platform", "", "Only show templates for this platform.")
}
func (c *socialCmd) Execute(_ context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	printMarkdown(marketing.RenderSocial(c.platform))
	return subcommands.ExitSuccess
}

type emailCmd struct{}

func (*emailCmd) Name() string             { return "email" }
func (*emailCmd) Synopsis() string         { return "show the onboarding email sequences" }
func (*emailCmd) Usage() string            { return "mbx email\n\n  Shows the onboarding email drip.\n" }
func (*emailCmd) SetFlags(_ *flag.FlagSet) {}
func (*emailCmd) Execute(_ context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	printMarkdown(marketing.RenderEmails())
	return subcommands.ExitSuccess
}

type adsCmd struct{}

func (*adsCmd) Name() string             { return "ads" }
func (*adsCmd) Synopsis() string         { return "show the paid advertising kit" }
func (*adsCmd) Usage() string            { return "mbx ads\n\n  Shows the paid advertising creatives.\n" }
func (*adsCmd) SetFlags(_ *flag.FlagSet) {}
func (*adsCmd) Execute(_ context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	printMarkdown(marketing.RenderAds())
	return subcommands.ExitSuccess
}

type launchCmd struct{}

func (*launchCmd) Name() string             { return "launch" }
func (*launchCmd) Synopsis() string         { return "show the launch checklist" }
func (*launchCmd) Usage() string            { return "mbx launch\n\n  Shows the launch checklist.\n" }
func (*launchCmd) SetFlags(_ *flag.FlagSet) {}
func (*launchCmd) Execute(_ context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	printMarkdown(marketing.RenderLaunch())
	return subcommands.ExitSuccess
}

type supportCmd struct{}

func (*supportCmd) Name() string             { return "support" }
func (*supportCmd) Synopsis() string         { return "show the support hub FAQ" }
func (*supportCmd) Usage() string            { return "mbx support\n\n  Shows the support hub FAQ.\n" }
func (*supportCmd) SetFlags(_ *flag.FlagSet) {}
func (*supportCmd) Execute(_ context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	printMarkdown(marketing.RenderSupport())
	return subcommands.ExitSuccess
}
