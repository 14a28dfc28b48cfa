package cmd

import (
	"log"

	"github.com/vetmatch/vetmatch/internal/catalog"
	"github.com/vetmatch/vetmatch/internal/logger"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "Show position catalog statistics",
	Run: func(_ *cobra.Command, _ []string) {
		runCatalog()
	},
}

func init() {
	rootCmd.AddCommand(catalogCmd)
}

func runCatalog() {
	logger, err := logger.New(viper.GetBool("json"), viper.GetBool("debug"))
	if err != nil {
		log.Fatalf("creating a logger: %s", err)
	}

	config, err := getConfig()
	if err != nil {
		logger.Fatal("getting a config", zap.Error(err))
	}

	positions, err := catalog.Load(config.Catalog)
	if err != nil {
		logger.Fatal("loading position catalog", zap.Error(err))
	}

	logger.Info("position catalog",
		zap.Int("total_positions", positions.Len()),
		zap.Any("sources", positions.CountBySource()),
	)
}
