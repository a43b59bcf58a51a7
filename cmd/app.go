// Package cmd implements the CLI application to manage a MoneyBox book.
package cmd

import (
	"fmt"
	"os"

	"github.com/caarlos0/env/v8"
	"github.com/charmbracelet/glamour"
	"github.com/google/subcommands"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	moneybox "github.com/firaseth/Money-Box"
	"github.com/firaseth/Money-Box/store"
)

// Config is the application environment. A .env file is honored when present.
type Config struct {
	Home         string `env:"MONEYBOX_HOME" envDefault:".moneybox"`
	Currency     string `env:"MONEYBOX_CURRENCY" envDefault:"USD"`
	GeminiAPIKey string `env:"GEMINI_API_KEY"`
}

// LoadConfig reads the environment, loading .env first if one exists.
func LoadConfig() (Config, error) {
	if err := godotenv.Load(); err != nil {
		logrus.WithError(err).Debug("no .env file loaded")
	}
	cfg := Config{}
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("could not parse environment: %w", err)
	}
	return cfg, nil
}

// Commands is the full command set, registered by the mbx binary.
var Commands = []subcommands.Command{
	&addCmd{},
	&rmCmd{},
	&txCmd{},
	&summaryCmd{},
	&billAddCmd{},
	&billListCmd{},
	&billPayCmd{},
	&notificationsCmd{},
	&reportCmd{},
	&pinCmd{},
	&lockCmd{},
	&unlockCmd{},
	&privacyCmd{},
	&themeCmd{},
	&brandCmd{},
	&socialCmd{},
	&emailCmd{},
	&adsCmd{},
	&launchCmd{},
	&supportCmd{},
	&logoCmd{},
	&stateCmd{},
}

// openStore opens the state directory from the environment.
func openStore() (*store.Dir, Config, error) {
	cfg, err := LoadConfig()
	if err != nil {
		return nil, Config{}, err
	}
	s, err := store.Open(cfg.Home)
	if err != nil {
		return nil, Config{}, err
	}
	return s, cfg, nil
}

// loadBook opens the store and loads the whole book from it.
func loadBook() (*moneybox.Book, error) {
	s, cfg, err := openStore()
	if err != nil {
		return nil, err
	}
	return moneybox.Load(s, cfg.Currency)
}

// gate refuses access to ledger data while the book is locked. It returns
// true when the command must stop.
func gate(b *moneybox.Book) bool {
	if !b.Security().IsLocked {
		return false
	}
	fmt.Fprintln(os.Stderr, "MoneyBox is locked. Run 'mbx unlock -pin <pin>' first.")
	return true
}

// fail prints the error and returns the failure status.
func fail(err error) subcommands.ExitStatus {
	fmt.Fprintln(os.Stderr, "Error:", err)
	return subcommands.ExitFailure
}

// printMarkdown renders markdown for the terminal, falling back to the raw
// text when the renderer cannot run.
func printMarkdown(md string) {
	out, err := glamour.Render(md, "auto")
	if err != nil {
		fmt.Print(md)
		return
	}
	fmt.Print(out)
}
