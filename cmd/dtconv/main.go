// Package main provides dtconv, a small command line front end for
// parsing, reformatting, shifting and comparing date/time text.
package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/JesseCoretta/go-dtplus"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// app carries the state shared by every subcommand of one invocation.
type app struct {
	v        *viper.Viper
	resolver *dtplus.TableResolver
}

func newRootCmd() *cobra.Command {
	a := &app{v: viper.New()}
	a.v.SetEnvPrefix("DTCONV")
	a.v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	a.v.AutomaticEnv()

	root := &cobra.Command{
		Use:           "dtconv",
		Short:         "Parse, reformat, shift and compare date/time text",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd.ErrOrStderr())
		},
		PersistentPostRunE: func(_ *cobra.Command, _ []string) error {
			if a.resolver != nil {
				return a.resolver.Close()
			}
			return nil
		},
	}

	root.PersistentFlags().String("log-level", "warn", "Set log level (debug|info|warn|error)")
	root.PersistentFlags().String("zones", "", "YAML file of additional zone abbreviations")
	root.PersistentFlags().String("config", "", "dtplus configuration keywords, e.g. \"fast,timezone\"")
	for _, name := range []string{"log-level", "zones", "config"} {
		if err := a.v.BindPFlag(name, root.PersistentFlags().Lookup(name)); err != nil {
			panic(err)
		}
	}

	root.AddCommand(
		a.parseCmd(),
		a.shiftCmd(),
		a.compareCmd(),
		a.addCmd(),
		a.formatsCmd(),
	)

	return root
}

func (a *app) setup(stderr io.Writer) error {
	level, err := log.ParseLevel(a.v.GetString("log-level"))
	if err != nil {
		return err
	}
	logger := log.NewWithOptions(stderr, log.Options{Prefix: "dtconv", Level: level})
	dtplus.SetLogger(logger)

	a.resolver = dtplus.NewTableResolver()
	if path := a.v.GetString("zones"); path != "" {
		f, err := os.Open(path)
		if err != nil {
			return err
		}
		defer f.Close()
		if err = a.resolver.Load(f); err != nil {
			return err
		}
		logger.Debug("loaded zone table", "path", path, "labels", a.resolver.Labels())
	}
	return nil
}

// parse parses text with the named format (or auto-detection) and
// applies the --config keywords, if any.
func (a *app) parse(text, format string, variant int) (*dtplus.DateTime, error) {
	dt := dtplus.New()
	if kw := a.v.GetString("config"); kw != "" {
		cfg, err := dtplus.NewConfig(kw)
		if err != nil {
			return nil, err
		}
		dt.Configure(cfg, true)
	}

	f := dtplus.FormatAutomatic
	if format != "" {
		var err error
		if f, err = dtplus.FormatByName(format); err != nil {
			return nil, err
		}
	}

	if err := dt.ParseFormat(text, f, variant); err != nil {
		return nil, err
	}
	return dt, nil
}

func render(dt *dtplus.DateTime, out string) (string, error) {
	f, err := dtplus.FormatByName(out)
	if err != nil {
		return "", err
	}
	return dt.Format(f)
}

func (a *app) parseCmd() *cobra.Command {
	var in, out string
	var variant int

	cmd := &cobra.Command{
		Use:   "parse <text>",
		Short: "Parse text and print it in another format",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dt, err := a.parse(args[0], in, variant)
			if err != nil {
				return err
			}
			s, err := render(dt, out)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\n", s, dt.Precision())
			return nil
		},
	}
	cmd.Flags().StringVar(&in, "format", "", "input format name (default: auto-detect)")
	cmd.Flags().IntVar(&variant, "variant", 0, "input template variant")
	cmd.Flags().StringVar(&out, "out", "automatic", "output format name")
	return cmd
}

func (a *app) shiftCmd() *cobra.Command {
	var out string

	cmd := &cobra.Command{
		Use:   "shift <text> <zone>",
		Short: "Move a zoned date/time into another zone",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			dt, err := a.parse(args[0], "", 0)
			if err != nil {
				return err
			}
			if err = dt.ShiftTimeZone(args[1], a.resolver); err != nil {
				return err
			}
			s, err := render(dt, out)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), s)
			return nil
		},
	}
	cmd.Flags().StringVar(&out, "out", "automatic", "output format name")
	return cmd
}

func (a *app) compareCmd() *cobra.Command {
	var precision string

	cmd := &cobra.Command{
		Use:   "compare <a> <b>",
		Short: "Compare two date/times at a given precision",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			x, err := a.parse(args[0], "", 0)
			if err != nil {
				return err
			}
			y, err := a.parse(args[1], "", 0)
			if err != nil {
				return err
			}
			if precision != "" {
				p, err := dtplus.ParsePrecision(precision)
				if err != nil {
					return err
				}
				x.SetPrecision(p)
				y.SetPrecision(p)
			}

			// both operands are normalized to the zone of the first
			if x.TimeZone() != "" && y.TimeZone() != "" {
				if err = y.ShiftTimeZone(x.TimeZone(), a.resolver); err != nil {
					return err
				}
			}

			rel := "="
			switch dtplus.Compare(x, y) {
			case -1:
				rel = "<"
			case 1:
				rel = ">"
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s %s\n", x, rel, y)
			return nil
		},
	}
	cmd.Flags().StringVar(&precision, "precision", "", "comparison precision (default: that of the first operand)")
	return cmd
}

func (a *app) addCmd() *cobra.Command {
	var years, months, days, hours, minutes, seconds int
	var out string

	cmd := &cobra.Command{
		Use:   "add <text>",
		Short: "Add signed amounts to the fields of a date/time",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dt, err := a.parse(args[0], "", 0)
			if err != nil {
				return err
			}
			dt.AddYear(years)
			dt.AddMonth(months)
			dt.AddDay(days)
			dt.AddHour(hours)
			dt.AddMinute(minutes)
			dt.AddSecond(seconds)

			s, err := render(dt, out)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), s)
			return nil
		},
	}
	cmd.Flags().IntVar(&years, "years", 0, "years to add")
	cmd.Flags().IntVar(&months, "months", 0, "months to add")
	cmd.Flags().IntVar(&days, "days", 0, "days to add")
	cmd.Flags().IntVar(&hours, "hours", 0, "hours to add")
	cmd.Flags().IntVar(&minutes, "minutes", 0, "minutes to add")
	cmd.Flags().IntVar(&seconds, "seconds", 0, "seconds to add")
	cmd.Flags().StringVar(&out, "out", "automatic", "output format name")
	return cmd
}

func (a *app) formatsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "formats",
		Short: "List the registered formats",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			w := cmd.OutOrStdout()
			for _, f := range dtplus.Formats() {
				var tmpls []string
				for v := 0; v < f.Variants(); v++ {
					tmpls = append(tmpls, f.Template(v))
				}
				fmt.Fprintf(w, "%-26s %-8s %s\n", f, f.Precision(), strings.Join(tmpls, " | "))
			}
			return nil
		},
	}
}
