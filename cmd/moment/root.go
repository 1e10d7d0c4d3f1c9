package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	moment "github.com/goliatone/go-moment"
)

const (
	keyConfig    = "config"
	keyLocale    = "locale"
	keyZone      = "tz"
	keyNow       = "now"
	keyLocaleDir = "locale-dir"
	keyVerbose   = "verbose"
	keyFallbacks = "fallbacks"
)

// app holds the state one invocation resolves before running a subcommand.
type app struct {
	v      *viper.Viper
	errOut io.Writer

	registry *moment.Registry
	locale   *moment.Locale
	location *time.Location
	now      time.Time
}

func newRootCommand(out, errOut io.Writer) *cobra.Command {
	a := &app{v: viper.New(), errOut: errOut}

	root := &cobra.Command{
		Use:           "moment",
		Short:         "Format, parse and compare dates with locale aware layouts",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup()
		},
	}
	root.SetOut(out)
	root.SetErr(errOut)

	flags := root.PersistentFlags()
	flags.String(keyConfig, "", "config file (default ./moment.yaml)")
	flags.StringP(keyLocale, "l", "en", "locale used for names and phrases")
	flags.String(keyZone, "", "IANA time zone (default local)")
	flags.String(keyNow, "", "reference instant instead of the system clock")
	flags.String(keyLocaleDir, "", "directory with extra locale files")
	flags.BoolP(keyVerbose, "v", false, "log locale and parse decisions to stderr")

	a.v.SetEnvPrefix("MOMENT")
	a.v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	a.v.AutomaticEnv()
	_ = a.v.BindPFlags(flags)

	root.AddCommand(
		newFormatCommand(a),
		newParseCommand(a),
		newFromCommand(a),
		newCalendarCommand(a),
		newDiffCommand(a),
		newAddCommand(a),
		newLocalesCommand(a),
	)
	return root
}

func (a *app) readConfig() error {
	if path := a.v.GetString(keyConfig); path != "" {
		a.v.SetConfigFile(path)
	} else {
		a.v.SetConfigName("moment")
		a.v.AddConfigPath(".")
	}

	if err := a.v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return nil
		}
		return fmt.Errorf("read config: %w", err)
	}
	return nil
}

func (a *app) setup() error {
	if err := a.readConfig(); err != nil {
		return err
	}

	if a.v.GetBool(keyVerbose) {
		moment.SetLogger(slog.New(slog.NewTextHandler(a.errOut, &slog.HandlerOptions{Level: slog.LevelDebug})))
	}

	opts := []moment.Option{moment.WithDefaultLocale(a.v.GetString(keyLocale))}
	if dir := a.v.GetString(keyLocaleDir); dir != "" {
		opts = append(opts, moment.WithLocaleDir(dir))
	}
	for locale, chain := range a.v.GetStringMapStringSlice(keyFallbacks) {
		opts = append(opts, moment.WithFallback(locale, chain...))
	}

	cfg, err := moment.NewConfig(opts...)
	if err != nil {
		return err
	}
	a.registry, err = cfg.BuildRegistry()
	if err != nil {
		return err
	}
	a.locale = a.registry.Current()

	a.location = time.Local
	if name := a.v.GetString(keyZone); name != "" {
		if a.location, err = time.LoadLocation(name); err != nil {
			return fmt.Errorf("load time zone: %w", err)
		}
	}

	a.now = time.Now()
	if raw := a.v.GetString(keyNow); raw != "" {
		ref := a.locale.ParseInLocation(raw, a.location)
		if !ref.IsValid() {
			return fmt.Errorf("--now: %w", ref.Err())
		}
		a.now = ref.Time()
	}
	return nil
}

func (a *app) reference() moment.Moment {
	return moment.FromTime(a.now.In(a.location)).WithLocaleTable(a.locale)
}

// moment reads a command argument. "now" is the reference instant.
func (a *app) moment(input string, layouts ...string) (moment.Moment, error) {
	if strings.EqualFold(strings.TrimSpace(input), "now") {
		return a.reference(), nil
	}
	m := a.locale.ParseInLocation(input, a.location, layouts...)
	if !m.IsValid() {
		return m, m.Err()
	}
	return m, nil
}

// referenceFlag resolves an optional reference argument such as --to.
func (a *app) referenceFlag(input string) (moment.Moment, error) {
	if input == "" {
		return a.reference(), nil
	}
	return a.moment(input)
}
