package cmd

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"

	"github.com/PaesslerAG/jsonpath"
	"github.com/google/subcommands"
)

type stateCmd struct {
	key  string
	path string
}

func (*stateCmd) Name() string     { return "state" }
func (*stateCmd) Synopsis() string { return "inspect the raw persisted state" }
func (*stateCmd) Usage() string {
	return `mbx state [-k <key>] [-p <jsonpath>]

  Without flags, lists the persisted state keys. With -k, prints the raw JSON
  stored under that key; -p extracts a value from it with a JSONPath
  expression.

Usage Examples:
# Amount of the most recent bill.
$ mbx state -k bills -p "$[0].amount"
`
}

func (c *stateCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.key, "k", "", "State key to print.")
	f.StringVar(&c.path, "p", "", "JSONPath expression to extract from the value.")
}

func (c *stateCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	s, _, err := openStore()
	if err != nil {
		return fail(err)
	}

	if c.key == "" {
		keys, err := s.Keys()
		if err != nil {
			return fail(err)
		}
		for _, k := range keys {
			fmt.Println(k)
		}
		return subcommands.ExitSuccess
	}

	data, ok, err := s.Raw(c.key)
	if err != nil {
		return fail(err)
	}
	if !ok {
		return fail(fmt.Errorf("no state under key %q", c.key))
	}

	if c.path == "" {
		fmt.Println(string(data))
		return subcommands.ExitSuccess
	}

	var jobj interface{}
	if err := json.Unmarshal(data, &jobj); err != nil {
		return fail(fmt.Errorf("could not decode state %q: %w", c.key, err))
	}
	jval, err := jsonpath.Get(c.path, jobj)
	if err != nil {
		return fail(fmt.Errorf("jsonpath %q failed: %w", c.path, err))
	}
	out, err := json.MarshalIndent(jval, "", "  ")
	if err != nil {
		return fail(err)
	}
	fmt.Println(string(out))
	return subcommands.ExitSuccess
}
