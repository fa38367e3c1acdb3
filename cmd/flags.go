package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"gooze.dev/pkg/pwmutate/internal/domain"
	m "gooze.dev/pkg/pwmutate/internal/model"
)

// modeValue is a pflag.Value that only accepts the mode choices, so invalid
// values are rejected while flags are parsed.
type modeValue struct {
	name string
}

var _ pflag.Value = (*modeValue)(nil)

func (v *modeValue) String() string {
	return v.name
}

func (v *modeValue) Set(name string) error {
	mode, err := m.ParseMode(name)
	if err != nil {
		return err
	}

	if mode == m.ModeNone {
		return fmt.Errorf("%w %q (choose from %s)", m.ErrUnknownMode, name, strings.Join(m.ModeChoices, ", "))
	}

	v.name = name

	return nil
}

func (v *modeValue) Type() string {
	return strings.Join(m.ModeChoices, "|")
}

// configureTokenFlags registers the prepend/append flags shared by the root
// and estimate commands.
func configureTokenFlags(flags *pflag.FlagSet) {
	flags.VarP(&modeValue{}, prependFlagName, "p", "prepend either special characters or numbers")
	bindFlagToConfig(flags.Lookup(prependFlagName), prependConfigKey)

	flags.VarP(&modeValue{}, appendFlagName, "a", "append either special characters or numbers")
	bindFlagToConfig(flags.Lookup(appendFlagName), appendConfigKey)

	flags.String(prependRangeFlagName, "", "range of numbers for prepend (e.g., 0-99)")
	bindFlagToConfig(flags.Lookup(prependRangeFlagName), prependRangeConfigKey)

	flags.String(appendRangeFlagName, "", "range of numbers for append (e.g., 0-99)")
	bindFlagToConfig(flags.Lookup(appendRangeFlagName), appendRangeConfigKey)
}

// bindFlagToConfig wires a Cobra flag to a Viper key so config/env values feed the flag.
func bindFlagToConfig(flag *pflag.Flag, key string) {
	if flag == nil {
		cobra.CheckErr(fmt.Errorf("flag for config key %q not found", key))
		return
	}

	cobra.CheckErr(viper.BindPFlag(key, flag))
}

// tokenArgsFromConfig reads the token selection after flags, env and config
// have been merged by viper.
func tokenArgsFromConfig() (domain.TokenArgs, error) {
	prepend, err := m.ParseMode(viper.GetString(prependConfigKey))
	if err != nil {
		return domain.TokenArgs{}, fmt.Errorf("--%s: %w", prependFlagName, err)
	}

	appendMode, err := m.ParseMode(viper.GetString(appendConfigKey))
	if err != nil {
		return domain.TokenArgs{}, fmt.Errorf("--%s: %w", appendFlagName, err)
	}

	return domain.TokenArgs{
		Prepend:      prepend,
		PrependRange: viper.GetString(prependRangeConfigKey),
		Append:       appendMode,
		AppendRange:  viper.GetString(appendRangeConfigKey),
	}, nil
}
