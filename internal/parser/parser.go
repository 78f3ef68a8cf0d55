// Package parser puts os.Args and environment signals into Config structure and validates it for any issues
package parser

import (
	"flag"
	"strings"

	"github.com/UnendingLoop/minigrep/internal/model"
)

// BuildConfig parses args where args[0] is the program name.
func BuildConfig(args []string, env model.EnvSignals) (*model.Config, error) {
	if len(args) < 3 {
		return nil, model.NewConfigError(model.ErrNotEnoughArgs)
	}

	var cfg model.Config
	foundQuery := false
	positional := make([]string, 0, 2)
	flags := make([]string, 0)

	for _, arg := range args[1:] {
		switch {
		case !strings.HasPrefix(arg, "--"):
			positional = append(positional, arg)
		case arg == model.FlagCaseSensitive, arg == model.FlagIgnoreCase:
			flags = append(flags, arg)
		default:
			return nil, model.NewConfigError(model.ErrInvalidArgument)
		}
	}

	// первый позиционный аргумент - всегда query, даже пустой; путь заполняется, пока он пуст
	for _, arg := range positional {
		switch {
		case !foundQuery:
			cfg.Query = arg
			foundQuery = true
		case cfg.FilePath == "":
			cfg.FilePath = arg
		}
	}

	if cfg.Query == "" || cfg.FilePath == "" {
		return nil, model.NewConfigError(model.ErrMissingQueryOrPath)
	}

	cfg.Policy = ResolvePolicy(env, flags)
	return &cfg, nil
}

// ResolvePolicy picks the case policy: flags left to right override the environment default.
func ResolvePolicy(env model.EnvSignals, flags []string) model.CasePolicy {
	policy := defaultPolicy(env)
	for _, f := range flags {
		switch f {
		case model.FlagCaseSensitive:
			policy = model.Sensitive
		case model.FlagIgnoreCase:
			policy = model.Insensitive
		}
	}
	return policy
}

// CASE_SENSITIVE проверяется раньше IGNORE_CASE и перекрывает его
func defaultPolicy(env model.EnvSignals) model.CasePolicy {
	switch {
	case env.CaseSensitive:
		return model.Sensitive
	case env.IgnoreCase:
		return model.Insensitive
	default:
		return model.Sensitive
	}
}

// EnvFromLookup reads environment signals through lookup, usually os.LookupEnv.
func EnvFromLookup(lookup func(string) (string, bool)) model.EnvSignals {
	_, cs := lookup(model.EnvCaseSensitive)
	_, ic := lookup(model.EnvIgnoreCase)
	return model.EnvSignals{CaseSensitive: cs, IgnoreCase: ic}
}

// InitNodeParam parses search-node flags, args without the program name.
func InitNodeParam(args []string) (*model.NodeInit, error) {
	flagParser := flag.NewFlagSet("minigrep-node", flag.ContinueOnError)
	addr := flagParser.String("address", "", "specify search-node listen address, e.g. ':8080'")

	if err := flagParser.Parse(args); err != nil {
		return nil, &model.AppError{Kind: model.KindConfig, Message: "failed to parse node flags", Err: err}
	}

	if *addr == "" {
		return nil, model.NewConfigError(model.ErrEmptyAddress)
	}

	return &model.NodeInit{Address: *addr}, nil
}
