package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/viant/dsutil/conv"
	"github.com/viant/dsutil/dates"
	"github.com/viant/dsutil/internal/logger"
)

// ErrInvalidDates is returned by validate when at least one date does not parse
var ErrInvalidDates = errors.New("invalid dates")

type conversion struct {
	Input  string `json:"input" yaml:"input"`
	Output string `json:"output,omitempty" yaml:"output,omitempty"`
	Error  string `json:"error,omitempty" yaml:"error,omitempty"`
}

func (a *app) convertCommand() *cobra.Command {
	var inFormats []string
	var outFormat string
	cmd := &cobra.Command{
		Use:   "convert DATE...",
		Short: "Convert dates between patterns",
		Long: `Converts every date with the first matching input pattern.
Without input patterns the configured input_formats are used, and without those
partial dates such as 06-02 or 3/4/7 13 are expanded to four digit years.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(inFormats) == 0 {
				inFormats = a.cfg.InputFormats
			}
			if !cmd.Flags().Changed("out") {
				outFormat = a.cfg.OutputFormat
			}
			results := make([]conversion, 0, len(args))
			lines := make([]string, 0, len(args))
			for _, date := range args {
				var converted string
				var err error
				if len(inFormats) == 0 {
					converted, err = dates.ConvertDateMapped(date, dates.PartialToStandardConversions)
				} else {
					converted, err = dates.ConvertDateAny(date, inFormats, outFormat)
				}
				if err != nil {
					return err
				}
				logger.DebugKV(cmd.Context(), "converted", "input", date, "output", converted)
				results = append(results, conversion{Input: date, Output: converted})
				lines = append(lines, converted)
			}
			return a.print(cmd, results, lines...)
		},
	}
	cmd.Flags().StringArrayVarP(&inFormats, "in", "i", nil, "input pattern, repeat to try several in order")
	cmd.Flags().StringVarP(&outFormat, "out", "o", dates.StandardDateFormat, "output pattern")
	return cmd
}

func (a *app) partialCommand() *cobra.Command {
	var boundaryName, granularityName string
	cmd := &cobra.Command{
		Use:   "partial DATE...",
		Short: "Resolve yyyy, yyyy-MM or yyyy-MM-dd dates to a boundary day",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			boundary := a.cfg.ParsedBoundary
			if cmd.Flags().Changed("boundary") {
				var err error
				if boundary, err = dates.ParseTimeBoundary(boundaryName); err != nil {
					return err
				}
			}
			granularity, err := dates.ParseTimeGranularity(granularityName)
			if err != nil {
				return err
			}
			results := make([]conversion, 0, len(args))
			lines := make([]string, 0, len(args))
			for _, date := range args {
				resolved, err := dates.InterpretPartialDate(date, granularity, boundary)
				if err != nil {
					return err
				}
				results = append(results, conversion{Input: date, Output: resolved})
				lines = append(lines, resolved)
			}
			return a.print(cmd, results, lines...)
		},
	}
	cmd.Flags().StringVarP(&boundaryName, "boundary", "b", dates.Lower.String(), "lower, upper or upper_excluded")
	cmd.Flags().StringVarP(&granularityName, "granularity", "g", dates.Day.String(), "resolution of the result")
	return cmd
}

func (a *app) addCommand() *cobra.Command {
	var format string
	cmd := &cobra.Command{
		Use:   "add DATE AMOUNT UNIT",
		Short: "Add an amount of calendar units to a date",
		Long: `Adds AMOUNT units (years, months, weeks, days, hours, minutes, seconds or ms)
to DATE. Month arithmetic clamps to the end of the month. Use -- before negative amounts.`,
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			amount, err := conv.Int(args[1])
			if err != nil {
				return err
			}
			unit, err := dates.ParseUnit(args[2])
			if err != nil {
				return err
			}
			result, err := dates.AddTimeFormat(args[0], format, unit, amount)
			if err != nil {
				return err
			}
			logger.DebugKV(cmd.Context(), "added", "date", args[0], "period", unit.MultipliedBy(amount).String())
			return a.print(cmd, conversion{Input: args[0], Output: result}, result)
		},
	}
	cmd.Flags().StringVarP(&format, "format", "f", dates.StandardDateFormat, "pattern of the date and the result")
	return cmd
}

func (a *app) validateCommand() *cobra.Command {
	var format string
	cmd := &cobra.Command{
		Use:   "validate DATE...",
		Short: "Check that dates parse with a pattern",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			results := make([]conversion, 0, len(args))
			lines := make([]string, 0, len(args))
			invalid := 0
			for _, date := range args {
				result := conversion{Input: date, Output: "valid"}
				if err := dates.ValidateDateFormat(date, format); err != nil {
					logger.WarnKV(cmd.Context(), "invalid date", "date", date, "error", err)
					result = conversion{Input: date, Error: err.Error()}
					invalid++
				}
				results = append(results, result)
				lines = append(lines, date+": "+result.Output+result.Error)
			}
			if err := a.print(cmd, results, lines...); err != nil {
				return err
			}
			if invalid > 0 {
				return fmt.Errorf("%w: %d of %d", ErrInvalidDates, invalid, len(args))
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&format, "format", "f", dates.StandardDateFormat, "pattern dates must match")
	return cmd
}
