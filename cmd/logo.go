package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/google/subcommands"

	"github.com/firaseth/Money-Box/logogen"
)

type logoCmd struct {
	prompt string
	out    string
}

func (*logoCmd) Name() string     { return "logo" }
func (*logoCmd) Synopsis() string { return "generate a logo concept with the AI studio" }
func (*logoCmd) Usage() string {
	return `mbx logo [-prompt <idea>] [-o <file>]

  Asks the Gemini image model for a MoneyBox logo concept and writes the
  image to a file. Requires GEMINI_API_KEY. A failed generation leaves
  everything else untouched.
`
}

func (c *logoCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.prompt, "prompt", "", "Free-text idea for the logo. A default brand prompt is used when empty.")
	f.StringVar(&c.out, "o", "logo.png", "Output file for the generated image.")
}

func (c *logoCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	cfg, err := LoadConfig()
	if err != nil {
		return fail(err)
	}
	if cfg.GeminiAPIKey == "" {
		return fail(fmt.Errorf("GEMINI_API_KEY is not set"))
	}

	gen, err := logogen.NewFromAPIKey(ctx, cfg.GeminiAPIKey)
	if err != nil {
		return fail(err)
	}
	logo, err := gen.Generate(ctx, c.prompt)
	if err != nil {
		return fail(err)
	}

	out := c.out
	if ext := extensionFor(logo.MIMEType); ext != "" && !strings.HasSuffix(out, ext) {
		out = strings.TrimSuffix(out, ".png") + ext
	}
	if err := os.WriteFile(out, logo.Data, 0644); err != nil {
		return fail(fmt.Errorf("could not write logo to %q: %w", out, err))
	}
	fmt.Printf("Logo concept written to %s (%s, %d bytes).\n", out, logo.MIMEType, len(logo.Data))
	return subcommands.ExitSuccess
}

func extensionFor(mime string) string {
	switch mime {
	case "image/png":
		return ".png"
	case "image/jpeg":
		return ".jpg"
	case "image/webp":
		return ".webp"
	default:
		return ""
	}
}
