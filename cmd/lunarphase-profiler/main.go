package main

import (
	"encoding/csv"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"github.com/tkuchiki/parsetime"
	"go.uber.org/zap"

	"github.com/thurmanmarka/lunarphase"
)

// searchWindow is how far either side of a reference time the profiler
// looks for the computed event of the same phase.
const searchWindow = 20 * 24 * time.Hour

type options struct {
	tz      string
	refCSV  string
	outCSV  string
	verbose bool
}

// CSV format:
//
// phase,time
// new_moon,2016-10-30T17:38:00Z
// first_quarter,2016-11-07 20:51
//
//   - phase is a phase key or name (full_moon, "Full Moon")
//   - time is RFC3339, or 2006-01-02 15:04[:05] in the zone given by --tz
func main() {
	var opts options

	cmd := &cobra.Command{
		Use:          "lunarphase-profiler",
		Short:        "Compare computed phase events against a reference CSV",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(opts)
		},
	}
	cmd.Flags().StringVar(&opts.tz, "tz", "UTC", "IANA time zone name (e.g. Europe/Paris)")
	cmd.Flags().StringVar(&opts.refCSV, "refcsv", "", "path to reference CSV file (phase,time)")
	cmd.Flags().StringVar(&opts.outCSV, "outcsv", "", "optional path to write per-row error CSV")
	cmd.Flags().BoolVarP(&opts.verbose, "verbose", "v", false, "print per-row errors instead of only summary")
	_ = cmd.MarkFlagRequired("refcsv")

	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

type row struct {
	line  int
	phase lunarphase.Phase
	ref   time.Time
}

func run(opts options) error {
	logger, err := zap.NewDevelopment()
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer func() { _ = logger.Sync() }()

	loc, err := time.LoadLocation(opts.tz)
	if err != nil {
		return fmt.Errorf("failed to load timezone %q: %w", opts.tz, err)
	}

	f, err := os.Open(opts.refCSV)
	if err != nil {
		return fmt.Errorf("failed to open refcsv %q: %w", opts.refCSV, err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1 // allow variable, we validate

	records, err := r.ReadAll()
	if err != nil {
		return fmt.Errorf("failed to read CSV: %w", err)
	}
	if len(records) == 0 {
		return errors.New("empty CSV file")
	}

	var outWriter *csv.Writer
	if opts.outCSV != "" {
		outFile, err := os.Create(opts.outCSV)
		if err != nil {
			return fmt.Errorf("failed to create outcsv %q: %w", opts.outCSV, err)
		}
		defer outFile.Close()

		outWriter = csv.NewWriter(outFile)
		defer outWriter.Flush()

		if err := outWriter.Write([]string{"phase", "ref", "got", "err", "signed"}); err != nil {
			return fmt.Errorf("failed to write outcsv header: %w", err)
		}
	}

	parser, err := parsetime.NewParseTime(loc)
	if err != nil {
		return fmt.Errorf("failed to create time parser: %w", err)
	}

	var (
		overall  errorStats
		perPhase [lunarphase.NumPhases]errorStats
		skipped  int
		total    int
	)

	for i, rec := range records {
		// If first row looks like a header, skip it.
		if i == 0 && len(rec) >= 1 && strings.EqualFold(strings.TrimSpace(rec[0]), "phase") {
			continue
		}
		total++

		rw, err := parseRow(i+1, rec, loc, parser)
		if err != nil {
			logger.Warn("skipping row", zap.Error(err))
			skipped++
			continue
		}

		got, err := nearestEvent(rw.phase, rw.ref, loc)
		if err != nil {
			logger.Warn("skipping row", zap.Int("row", rw.line), zap.Error(err))
			skipped++
			continue
		}

		overall.add(got.Time, rw.ref)
		perPhase[rw.phase].add(got.Time, rw.ref)

		absErr := diffMinutes(got.Time, rw.ref)
		signed := diffMinutesSigned(got.Time, rw.ref)

		if opts.verbose {
			fmt.Printf("%-16s err=%.2f min (got=%s ref=%s)\n",
				rw.phase, absErr,
				got.Time.Format(time.RFC3339), rw.ref.Format(time.RFC3339))
		}

		if outWriter != nil {
			out := []string{
				rw.phase.Key(),
				rw.ref.Format(time.RFC3339),
				got.Time.Format(time.RFC3339),
				fmt.Sprintf("%.6f", absErr),
				fmt.Sprintf("%.6f", signed),
			}
			if err := outWriter.Write(out); err != nil {
				logger.Warn("failed to write outcsv row", zap.Int("row", rw.line), zap.Error(err))
			}
		}
	}

	fmt.Println("=== lunarphase profiler summary ===")
	fmt.Printf("TZ:     %s\n", loc.String())
	fmt.Printf("Rows:   %d (processed), %d skipped\n", total-skipped, skipped)

	if overall.abs.count == 0 {
		fmt.Println("No valid rows to compute stats.")
		return nil
	}

	overall.abs.write(os.Stdout, "Error (minutes)", "avg")
	overall.signed.write(os.Stdout, "Signed error (minutes, our - ref)", "mean")

	for p := lunarphase.NewMoon; p <= lunarphase.WaningCrescent; p++ {
		s := perPhase[p]
		if s.abs.count == 0 {
			continue
		}
		s.signed.write(os.Stdout, fmt.Sprintf("%s signed error (minutes)", p), "mean")
	}
	return nil
}

func parseRow(line int, rec []string, loc *time.Location, parser parsetime.ParseTime) (row, error) {
	if len(rec) < 2 {
		return row{}, fmt.Errorf("row %d: expected 2 columns (phase,time), got %d", line, len(rec))
	}

	phase, err := lunarphase.ParsePhase(rec[0])
	if err != nil {
		return row{}, fmt.Errorf("row %d: %w", line, err)
	}

	ref, err := parseRefTime(strings.TrimSpace(rec[1]), loc, parser)
	if err != nil {
		return row{}, fmt.Errorf("row %d: %w", line, err)
	}

	return row{line: line, phase: phase, ref: ref}, nil
}

func parseRefTime(s string, loc *time.Location, parser parsetime.ParseTime) (time.Time, error) {
	for _, layout := range []string{time.RFC3339, "2006-01-02 15:04:05", "2006-01-02 15:04"} {
		if t, err := time.ParseInLocation(layout, s, loc); err == nil {
			return t.In(loc), nil
		}
	}
	t, err := parser.Parse(s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid time %q: %w", s, err)
	}
	return t.In(loc), nil
}

// nearestEvent returns the computed event of phase p closest to ref.
func nearestEvent(p lunarphase.Phase, ref time.Time, loc *time.Location) (lunarphase.PhaseEvent, error) {
	c, err := lunarphase.New(ref, lunarphase.WithLocation(loc))
	if err != nil {
		return lunarphase.PhaseEvent{}, err
	}
	events, err := c.EventsBetween(ref.Add(-searchWindow), ref.Add(searchWindow))
	if err != nil {
		return lunarphase.PhaseEvent{}, err
	}

	var (
		best  lunarphase.PhaseEvent
		found bool
	)
	for _, e := range events {
		if e.Phase != p {
			continue
		}
		if !found || absDuration(e.Time.Sub(ref)) < absDuration(best.Time.Sub(ref)) {
			best, found = e, true
		}
	}
	if !found {
		return lunarphase.PhaseEvent{}, fmt.Errorf("no %s within %s of %s", p, searchWindow, ref.Format(time.RFC3339))
	}
	return best, nil
}

func absDuration(d time.Duration) time.Duration {
	if d < 0 {
		return -d
	}
	return d
}
