package marketing

import (
	"fmt"
	"strings"
)

// RenderBrand renders the brand palette as markdown.
func RenderBrand() string {
	var b strings.Builder
	b.WriteString("# Brand Palette\n\n")
	b.WriteString("| Name | Hex |\n|---|---|\n")
	for _, c := range BrandColors {
		fmt.Fprintf(&b, "| %s | `%s` |\n", c.Name, c.Hex)
	}
	return b.String()
}

// RenderSocial renders the social templates, optionally filtered by platform.
func RenderSocial(platform string) string {
	var b strings.Builder
	b.WriteString("# Social Media Kit\n")
	for _, t := range SocialTemplates {
		if platform != "" && !strings.EqualFold(platform, t.Platform) {
			continue
		}
		fmt.Fprintf(&b, "\n## %s: %s\n\n%s\n", t.Platform, t.Title, t.Content)
	}
	return b.String()
}

// RenderEmails renders the onboarding email drip.
func RenderEmails() string {
	var b strings.Builder
	b.WriteString("# Email Sequences\n")
	for _, e := range EmailSequences {
		fmt.Fprintf(&b, "\n## Day %d: %s\n\n%s\n\n*CTA: %s*\n", e.Day, e.Subject, e.Body, e.CTA)
	}
	return b.String()
}

// RenderAds renders the paid-advertising kit.
func RenderAds() string {
	var b strings.Builder
	b.WriteString("# Paid Advertising\n")
	for _, a := range AdCopies {
		fmt.Fprintf(&b, "\n## %s\n\n**%s**\n\n%s\n\n`%s`\n", a.Channel, a.Headline, a.Description, a.URL)
	}
	return b.String()
}

// RenderLaunch renders the launch checklist with completion marks.
func RenderLaunch() string {
	var b strings.Builder
	b.WriteString("# Launch Strategy\n\n")
	for _, item := range LaunchChecklist {
		mark := " "
		if item.Completed {
			mark = "x"
		}
		fmt.Fprintf(&b, "- [%s] %s\n", mark, item.Task)
	}
	return b.String()
}

// RenderSupport renders the support hub FAQ.
func RenderSupport() string {
	var b strings.Builder
	b.WriteString("# Support Hub\n")
	for _, f := range SupportFAQs {
		fmt.Fprintf(&b, "\n## %s\n\n%s\n", f.Question, f.Answer)
	}
	return b.String()
}
