package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/thurmanmarka/lunarphase"
)

var eventsCmd = &cobra.Command{
	Use:   "events",
	Short: "List the phase events of the lunation nearest a date",
	RunE:  runEvents,
}

var classifyCmd = &cobra.Command{
	Use:   "classify",
	Short: "Print the phase an instant falls in",
	RunE:  runClassify,
}

var calendarCmd = &cobra.Command{
	Use:   "calendar",
	Short: "List every phase event between two instants",
	Example: `  lunarphase calendar --from 2016-01-01 --to 2016-12-31 --tz Europe/Paris
  lunarphase calendar --from 2016-01-01 --to 2016-12-31 --phase full_moon`,
	RunE: runCalendar,
}

func init() {
	eventsCmd.Flags().String("date", "", "reference date (defaults to now in tz)")

	classifyCmd.Flags().String("time", "", "instant to classify (defaults to now in tz)")

	calendarCmd.Flags().String("from", "", "start of the range (required)")
	calendarCmd.Flags().String("to", "", "end of the range (required)")
	calendarCmd.Flags().String("phase", "", "only list this phase (e.g. full_moon)")
	_ = calendarCmd.MarkFlagRequired("from")
	_ = calendarCmd.MarkFlagRequired("to")
}

// ---------------------
// events
// ---------------------

func runEvents(cmd *cobra.Command, args []string) error {
	loc, err := location()
	if err != nil {
		return err
	}
	dateS, _ := cmd.Flags().GetString("date")
	ref, err := parseInstant(dateS, loc)
	if err != nil {
		return err
	}

	c, err := newCalculator(ref, loc)
	if err != nil {
		return err
	}
	events, err := c.AllPhaseEvents()
	if err != nil {
		return fmt.Errorf("computing phase events: %w", err)
	}
	logger.Debug("computed lunation",
		zap.Time("reference", ref),
		zap.Float64("decimal_year", c.DecimalYear()))

	if viper.GetBool("json") {
		return printJSON(eventsOutput{
			Reference: ref,
			Timezone:  loc.String(),
			Events:    events.Slice(),
		})
	}

	fmt.Printf("Lunation nearest %s (%s)\n\n", ref.Format("2006-01-02"), loc)
	printEvents(events.Slice())
	return nil
}

// ---------------------
// classify
// ---------------------

func runClassify(cmd *cobra.Command, args []string) error {
	loc, err := location()
	if err != nil {
		return err
	}
	timeS, _ := cmd.Flags().GetString("time")
	at, err := parseInstant(timeS, loc)
	if err != nil {
		return err
	}

	c, err := newCalculator(at, loc)
	if err != nil {
		return err
	}
	phase, err := c.ClassifyInstant(at)
	if err != nil && !errors.Is(err, lunarphase.ErrIndeterminate) {
		return err
	}

	if viper.GetBool("json") {
		out := classifyOutput{Time: at, Timezone: loc.String()}
		if phase.Valid() {
			out.Phase = &phase
		}
		return printJSON(out)
	}

	fmt.Printf("Moon phase at %s (%s)\n", at.Format(time.RFC3339), loc)
	if !phase.Valid() {
		fmt.Printf("  Name : undetermined\n")
		return nil
	}
	fmt.Printf("  Name : %s\n", phase)
	return nil
}

// ---------------------
// calendar
// ---------------------

func runCalendar(cmd *cobra.Command, args []string) error {
	loc, err := location()
	if err != nil {
		return err
	}
	fromS, _ := cmd.Flags().GetString("from")
	toS, _ := cmd.Flags().GetString("to")
	phaseS, _ := cmd.Flags().GetString("phase")

	from, err := parseInstant(fromS, loc)
	if err != nil {
		return fmt.Errorf("--from: %w", err)
	}
	to, err := parseInstant(toS, loc)
	if err != nil {
		return fmt.Errorf("--to: %w", err)
	}

	filter := lunarphase.NoPhase
	if phaseS != "" {
		if filter, err = lunarphase.ParsePhase(phaseS); err != nil {
			return err
		}
	}

	c, err := newCalculator(from, loc)
	if err != nil {
		return err
	}
	events, err := c.EventsBetween(from, to)
	if err != nil {
		return err
	}
	if filter.Valid() {
		kept := events[:0]
		for _, e := range events {
			if e.Phase == filter {
				kept = append(kept, e)
			}
		}
		events = kept
	}
	logger.Debug("computed calendar",
		zap.Time("from", from),
		zap.Time("to", to),
		zap.Int("events", len(events)))

	if viper.GetBool("json") {
		return printJSON(events)
	}
	printEvents(events)
	return nil
}

// ---------------------
// Shared helpers
// ---------------------

type eventsOutput struct {
	Reference time.Time               `json:"reference"`
	Timezone  string                  `json:"timezone"`
	Events    []lunarphase.PhaseEvent `json:"events"`
}

type classifyOutput struct {
	Time     time.Time         `json:"time"`
	Timezone string            `json:"timezone"`
	Phase    *lunarphase.Phase `json:"phase"` // null when undetermined
}

func printEvents(events []lunarphase.PhaseEvent) {
	for _, e := range events {
		fmt.Printf("%-16s %s  (JD %.5f)\n", e.Phase, e.Time.Format(time.RFC3339), e.JulianDay)
	}
}

func printJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("failed to encode JSON: %w", err)
	}
	return nil
}
