package cmd

import (
	"log"

	"github.com/vetmatch/vetmatch/internal/catalog"
	"github.com/vetmatch/vetmatch/internal/match"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const (
	app = "vetmatch"
)

type Config struct {
	// Profile is the path to the parsed candidate profile JSON.
	Profile string                `mapstructure:"profile"`
	Catalog *catalog.LoaderConfig `mapstructure:"catalog"`
	// Matching holds the call-level defaults for the match command.
	Matching *MatchingConfig `mapstructure:"matching"`
	// Engine holds the scoring configuration; unset sections fall back to
	// the built-in defaults.
	Engine *match.Config `mapstructure:"engine"`
}

type MatchingConfig struct {
	MinScore int `mapstructure:"min-score"`
	Limit    int `mapstructure:"limit"`
	Offset   int `mapstructure:"offset"`
}

var (
	// Used for flags.
	cfgFile string

	rootCmd = &cobra.Command{
		Use:   app,
		Short: "vetmatch ranks civilian and military positions against a candidate profile",
	}
)

// Execute executes the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	if err := viper.BindEnv("profile", "VETMATCH_PROFILE"); err != nil {
		log.Fatalf("binding VETMATCH_PROFILE environment variable: %v", err)
	}

	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "a config file (default is vetmatch.yaml in current directory)")
	rootCmd.PersistentFlags().BoolP("debug", "d", false, "verbose/debug output")
	rootCmd.PersistentFlags().BoolP("json", "j", false, "json format for logging")

	viper.BindPFlag("debug", rootCmd.PersistentFlags().Lookup("debug"))
	viper.BindPFlag("json", rootCmd.PersistentFlags().Lookup("json"))
}

func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.AddConfigPath(".")
		viper.SetConfigName(app + ".yaml")
	}

	// The config file is optional: flags and built-in defaults cover a bare
	// invocation. An explicitly named or malformed file still fails hard.
	if err := viper.ReadInConfig(); err != nil {
		if cfgFile != "" {
			log.Fatal(err)
		}
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			log.Fatal(err)
		}
	}
}

func getConfig() (*Config, error) {
	var config *Config
	if err := viper.Unmarshal(&config); err != nil {
		return config, err
	}

	if config == nil {
		config = &Config{}
	}
	if config.Matching == nil {
		config.Matching = &MatchingConfig{}
	}
	if config.Engine == nil {
		config.Engine = &match.Config{}
	}
	config.Engine.ApplyDefaults()

	return config, nil
}
