package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/tkuchiki/parsetime"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/thurmanmarka/lunarphase"
)

var (
	cfgFile string
	logger  = zap.NewNop()
)

var rootCmd = &cobra.Command{
	Use:   "lunarphase",
	Short: "Lunar phase times and classification",
	Long: `lunarphase computes the eight phase events of a lunation (new moon,
crescents, quarters, gibbous phases and full moon) and tells which phase
an instant falls in.

Without a subcommand it prints the phase at the current time.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		config := zap.NewProductionConfig()
		if viper.GetBool("verbose") {
			config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		}
		l, err := config.Build()
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		logger = l
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		_ = logger.Sync()
	},
	RunE: runClassify,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default .lunarphase.yaml)")
	rootCmd.PersistentFlags().String("tz", "UTC", "IANA time zone name (e.g. Europe/Paris)")
	rootCmd.PersistentFlags().Bool("json", false, "output result as JSON")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "verbose output")

	_ = viper.BindPFlag("tz", rootCmd.PersistentFlags().Lookup("tz"))
	_ = viper.BindPFlag("json", rootCmd.PersistentFlags().Lookup("json"))
	_ = viper.BindPFlag("verbose", rootCmd.PersistentFlags().Lookup("verbose"))

	rootCmd.Flags().String("time", "", "instant to classify (defaults to now in tz)")

	rootCmd.AddCommand(eventsCmd, classifyCmd, calendarCmd)
}

func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName(".lunarphase")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")
		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(home)
		}
	}

	viper.SetEnvPrefix("LUNARPHASE")
	viper.AutomaticEnv()

	// No config file is fine; flags and defaults apply.
	_ = viper.ReadInConfig()
}

func location() (*time.Location, error) {
	name := viper.GetString("tz")
	loc, err := time.LoadLocation(name)
	if err != nil {
		return nil, fmt.Errorf("invalid time zone %q: %w", name, err)
	}
	return loc, nil
}

// parseInstant reads s in loc. An empty s means now. Besides the layouts
// parsetime understands, plain dates and minute precision times are
// accepted.
func parseInstant(s string, loc *time.Location) (time.Time, error) {
	if s == "" {
		return time.Now().In(loc), nil
	}

	p, err := parsetime.NewParseTime(loc)
	if err == nil {
		if t, err := p.Parse(s); err == nil {
			return t.In(loc), nil
		}
	}

	layouts := []string{
		"2006-01-02T15:04",
		"2006-01-02 15:04",
		"2006-01-02",
	}
	for _, layout := range layouts {
		if t, err := time.ParseInLocation(layout, s, loc); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("could not parse time %q", s)
}

func newCalculator(ref time.Time, loc *time.Location) (*lunarphase.Calculator, error) {
	return lunarphase.New(ref,
		lunarphase.WithLocation(loc),
		lunarphase.WithLogger(logger),
	)
}
