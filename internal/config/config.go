package config

import (
	"github.com/shopspring/decimal"
	"github.com/spf13/viper"

	"github.com/Augusto-Mathias/analise-sinais-trading/internal/analytics"
)

type Config struct {
	Port  string `mapstructure:"PORT"`
	DBDSN string `mapstructure:"DB_DSN"` // empty disables persistence

	InitialCapital float64   `mapstructure:"INITIAL_CAPITAL"`
	DefaultPayout  float64   `mapstructure:"DEFAULT_PAYOUT"`
	StakeLadder    []float64 `mapstructure:"STAKE_LADDER"`
	SafetyMultiple int64     `mapstructure:"CAPITAL_SAFETY_MULTIPLE"`

	MinHourSampleFloor int     `mapstructure:"MIN_HOUR_SAMPLE"`
	MinHourSamplePct   float64 `mapstructure:"MIN_HOUR_SAMPLE_PCT"`
	MinPairOps         int     `mapstructure:"MIN_PAIR_OPS"`
}

func LoadConfig() (config Config, err error) {
	viper.AddConfigPath(".")
	viper.SetConfigName("app")
	viper.SetConfigType("env")
	viper.AutomaticEnv()

	viper.SetDefault("PORT", "8080")
	viper.SetDefault("DB_DSN", "")
	viper.SetDefault("INITIAL_CAPITAL", 500.0)
	viper.SetDefault("DEFAULT_PAYOUT", 0.85)
	viper.SetDefault("STAKE_LADDER", []float64{2.0, 4.3, 9.24})
	viper.SetDefault("CAPITAL_SAFETY_MULTIPLE", 5)
	viper.SetDefault("MIN_HOUR_SAMPLE", 10)
	viper.SetDefault("MIN_HOUR_SAMPLE_PCT", 0.005)
	viper.SetDefault("MIN_PAIR_OPS", 5)

	err = viper.ReadInConfig()
	// If config file not found, we can still use env vars
	if _, ok := err.(viper.ConfigFileNotFoundError); ok {
		err = nil
	}

	if err != nil {
		return Config{}, err
	}
	err = viper.Unmarshal(&config)
	return
}

// Stakes converts the configured ladder into decimals for the simulator.
func (c Config) Stakes() []decimal.Decimal {
	stakes := make([]decimal.Decimal, 0, len(c.StakeLadder))
	for _, s := range c.StakeLadder {
		stakes = append(stakes, decimal.NewFromFloat(s))
	}
	return stakes
}

// AnalyticsOptions merges the configured sample thresholds over the
// default classification bands.
func (c Config) AnalyticsOptions() analytics.Options {
	opts := analytics.DefaultOptions()
	if c.MinHourSampleFloor > 0 {
		opts.MinHourSampleFloor = c.MinHourSampleFloor
	}
	if c.MinHourSamplePct > 0 {
		opts.MinHourSamplePct = c.MinHourSamplePct
	}
	if c.MinPairOps > 0 {
		opts.MinPairOps = c.MinPairOps
	}
	return opts
}
