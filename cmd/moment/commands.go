package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	moment "github.com/goliatone/go-moment"
)

const isoLayout = "YYYY-MM-DDTHH:mm:ss.SSSZ"

func newFormatCommand(a *app) *cobra.Command {
	var layout string
	cmd := &cobra.Command{
		Use:   "format [date]",
		Short: "Print a date with a layout (default: the reference instant)",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			input := "now"
			if len(args) == 1 {
				input = args[0]
			}
			m, err := a.moment(input)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), m.Format(layout))
			return nil
		},
	}
	cmd.Flags().StringVarP(&layout, "format", "f", string(moment.FormatLLLL), "output layout")
	return cmd
}

func newParseCommand(a *app) *cobra.Command {
	var (
		layouts []string
		output  string
	)
	cmd := &cobra.Command{
		Use:   "parse <input>",
		Short: "Parse input with one or more layouts and print it as ISO 8601",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := a.moment(args[0], layouts...)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), m.Format(output))
			return nil
		},
	}
	cmd.Flags().StringArrayVar(&layouts, "layout", nil, "input layout, repeat to try several")
	cmd.Flags().StringVarP(&output, "output", "o", isoLayout, "output layout")
	return cmd
}

func newFromCommand(a *app) *cobra.Command {
	var (
		to       string
		noSuffix bool
	)
	cmd := &cobra.Command{
		Use:   "from <date>",
		Short: `Describe a date relative to another ("in 2 hours", "3 days ago")`,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := a.moment(args[0])
			if err != nil {
				return err
			}
			ref, err := a.referenceFlag(to)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), m.From(ref, noSuffix))
			return nil
		},
	}
	cmd.Flags().StringVar(&to, "to", "", "reference date (default: the reference instant)")
	cmd.Flags().BoolVar(&noSuffix, "no-suffix", false, "omit the future and past wrapper")
	return cmd
}

func newCalendarCommand(a *app) *cobra.Command {
	var to string
	cmd := &cobra.Command{
		Use:   "calendar <date>",
		Short: `Describe a date by its calendar day ("Tomorrow at 3:25 PM")`,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := a.moment(args[0])
			if err != nil {
				return err
			}
			ref, err := a.referenceFlag(to)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), m.CalendarFrom(ref))
			return nil
		},
	}
	cmd.Flags().StringVar(&to, "to", "", "reference date (default: the reference instant)")
	return cmd
}

func newDiffCommand(a *app) *cobra.Command {
	var (
		unit    string
		precise bool
	)
	cmd := &cobra.Command{
		Use:   "diff <a> <b>",
		Short: "Print a minus b in a unit",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			resolved, ok := moment.ParseUnit(unit)
			if !ok {
				return fmt.Errorf("unknown unit %q", unit)
			}
			left, err := a.moment(args[0])
			if err != nil {
				return err
			}
			right, err := a.moment(args[1])
			if err != nil {
				return err
			}
			diff := left.Diff(right, resolved, precise)
			fmt.Fprintln(cmd.OutOrStdout(), strconv.FormatFloat(diff, 'f', -1, 64))
			return nil
		},
	}
	cmd.Flags().StringVarP(&unit, "unit", "u", "ms", "unit (ms, s, m, h, d, w, M, y or their names)")
	cmd.Flags().BoolVar(&precise, "precise", false, "keep the fractional part")
	return cmd
}

func newAddCommand(a *app) *cobra.Command {
	var (
		output   string
		subtract bool
	)
	cmd := &cobra.Command{
		Use:   "add <date> <amount> <unit> [<amount> <unit>...]",
		Short: "Add amounts of calendar or clock units to a date",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) < 3 || len(args)%2 == 0 {
				return fmt.Errorf("expected a date followed by amount and unit pairs")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := a.moment(args[0])
			if err != nil {
				return err
			}
			delta, err := parseDelta(args[1:])
			if err != nil {
				return err
			}
			if subtract {
				m = m.Subtract(delta)
			} else {
				m = m.Add(delta)
			}
			fmt.Fprintln(cmd.OutOrStdout(), m.Format(output))
			return nil
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", isoLayout, "output layout")
	cmd.Flags().BoolVar(&subtract, "subtract", false, "subtract the amounts instead")
	return cmd
}

// parseDelta reads "3 days 2 h" style amount and unit pairs.
func parseDelta(pairs []string) (moment.Delta, error) {
	values := make(map[string]int, len(pairs)/2)
	for i := 0; i+1 < len(pairs); i += 2 {
		amount, err := strconv.Atoi(pairs[i])
		if err != nil {
			return moment.Delta{}, fmt.Errorf("invalid amount %q", pairs[i])
		}
		unit, ok := moment.ParseUnit(pairs[i+1])
		if !ok {
			return moment.Delta{}, fmt.Errorf("unknown unit %q", pairs[i+1])
		}
		values[string(unit)] += amount
	}
	return moment.DeltaFrom(values), nil
}

func newLocalesCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "locales",
		Short: "List registered locales, marking the selected one",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			current := a.registry.CurrentID()
			for _, id := range a.registry.Locales() {
				marker := " "
				if id == current {
					marker = "*"
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", marker, id)
			}
		},
	}
}
