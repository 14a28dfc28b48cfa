package cmd

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/vetmatch/vetmatch/internal/catalog"
	"github.com/vetmatch/vetmatch/internal/logger"
	"github.com/vetmatch/vetmatch/internal/match"
	"github.com/vetmatch/vetmatch/internal/profile"

	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

const (
	PromptInspect       = "Inspect a match"
	PromptReportByField = "Report by career field"
	PromptMatchesToFile = "Dump matches to file"
	PromptExit          = "Exit"

	maxInsightLogLength = 120
)

var errExit = errors.New("exit requested")

var matchPrompt = promptui.Select{
	Label: "What next?",
	Items: []string{PromptInspect, PromptReportByField, PromptMatchesToFile, PromptExit},
}

var matchCmd = &cobra.Command{
	Use:   "match",
	Short: "Score and rank the position catalog against a candidate profile",
	Run: func(cmd *cobra.Command, _ []string) {
		runMatch(cmd)
	},
}

func init() {
	rootCmd.AddCommand(matchCmd)

	matchCmd.Flags().StringP("profile", "p", "", "path to the parsed candidate profile JSON")
	matchCmd.Flags().Int("min-score", 0, "drop positions scoring below this overall score")
	matchCmd.Flags().Int("limit", 0, "maximum number of matches to return (default 10)")
	matchCmd.Flags().Int("offset", 0, "number of ranked matches to skip")
	matchCmd.Flags().BoolP("print-only", "y", false, "print matches as JSON and exit without the interactive menu")

	viper.BindPFlag("profile", matchCmd.Flags().Lookup("profile"))
	viper.BindPFlag("matching.min-score", matchCmd.Flags().Lookup("min-score"))
	viper.BindPFlag("matching.limit", matchCmd.Flags().Lookup("limit"))
	viper.BindPFlag("matching.offset", matchCmd.Flags().Lookup("offset"))
}

// runMatch is the main command for the cli.
func runMatch(cmd *cobra.Command) {
	logger, err := logger.New(viper.GetBool("json"), viper.GetBool("debug"))
	if err != nil {
		log.Fatalf("creating a logger: %s", err)
	}

	config, err := getConfig()
	if err != nil {
		logger.Fatal("getting a config", zap.Error(err))
	}

	logger.Info("starting vetmatch", zap.String("version", version))

	pretty, _ := json.MarshalIndent(config, "", "  ")
	logger.Debug(fmt.Sprintf("starting with config: \n %s", pretty))

	if strings.TrimSpace(config.Profile) == "" {
		logger.Fatal("candidate profile path is required",
			zap.String("hint", "set the 'profile' key, the --profile flag, or VETMATCH_PROFILE"),
		)
	}

	candidate, err := profile.LoadFromFile(config.Profile)
	if err != nil {
		logger.Fatal("loading candidate profile", zap.Error(err))
	}

	logger.Info("loaded candidate profile",
		zap.String("path", config.Profile),
		zap.Int("skills", len(candidate.Resume.Skills)),
		zap.Int("assessments", len(candidate.AssessmentResults)),
	)

	positions, err := catalog.Load(config.Catalog)
	if err != nil {
		logger.Fatal("loading position catalog", zap.Error(err))
	}

	if positions.Len() == 0 {
		logger.Info("exiting",
			zap.String("reason", "no positions available, catalog not yet populated"),
			zap.String("hint", "run the job scrapers and point catalog.jacobs-file / catalog.mos-file at their output"),
		)
		return
	}

	logger.Info("loaded position catalog",
		zap.Int("count", positions.Len()),
		zap.Any("sources", positions.CountBySource()),
	)

	engine, err := match.NewEngine(config.Engine)
	if err != nil {
		logger.Fatal("building matching engine", zap.Error(err))
	}

	matches, err := engine.Rank(candidate, positions, match.Options{
		MinScore: config.Matching.MinScore,
		Limit:    config.Matching.Limit,
		Offset:   config.Matching.Offset,
	})
	if err != nil {
		logger.Fatal("ranking positions", zap.Error(err))
	}

	if len(matches) == 0 {
		logger.Info("exiting", zap.String("reason", "no positions met the minimum score"))
		return
	}

	enriched, err := match.Enrich(matches, positions)
	if err != nil {
		logger.Fatal("enriching matches", zap.Error(err))
	}

	for _, m := range enriched {
		logger.Info("match",
			zap.String("position_id", m.PositionID),
			zap.String("title", m.PositionTitle),
			zap.Int("score", m.OverallScore),
			zap.String("recommendation", m.Recommendation),
			zap.String("insights", insightsForLog(m)),
		)
	}

	if cmd.Flag("print-only").Value.String() == "true" {
		out, _ := json.MarshalIndent(enriched, "", "  ")
		fmt.Println(string(out))
		return
	}

	for {
		_, action, err := matchPrompt.Run()
		if err != nil {
			logger.Fatal("exiting", zap.Error(err))
		}

		if err := handleMatchAction(action, logger, enriched, positions); err != nil {
			if errors.Is(err, errExit) {
				return
			}
			logger.Fatal("exiting", zap.Error(err))
		}
	}
}

func insightsForLog(m *match.EnrichedMatch) string {
	return logger.TruncateForLog(strings.Join(m.Insights, "; "), maxInsightLogLength)
}

func handleMatchAction(action string, logger *zap.Logger, enriched []*match.EnrichedMatch, positions *catalog.Positions) error {
	switch action {
	case PromptInspect:
		return inspectMatch(enriched)
	case PromptReportByField:
		report := matchedPositions(enriched, positions).ReportByCareerField()
		pretty, _ := json.MarshalIndent(report, "", "  ")
		logger.Info(string(pretty), zap.Int("matches count", len(enriched)))
		return nil
	case PromptMatchesToFile:
		filename, err := dumpMatchesToTmpFile(enriched)
		if err != nil {
			return fmt.Errorf("dump matches to file: %w", err)
		}
		logger.Info("dumping matches to file", zap.String("filename", filename))
		return nil
	case PromptExit:
		logger.Info("exiting", zap.String("reason", "got exit from prompt"))
		return errExit
	default:
		return fmt.Errorf("invalid action: %s", action)
	}
}

func inspectMatch(enriched []*match.EnrichedMatch) error {
	items := make([]string, 0, len(enriched))
	for _, m := range enriched {
		items = append(items, fmt.Sprintf("%s %s / score %d / %s",
			m.PositionID, m.PositionTitle, m.OverallScore, m.Recommendation,
		))
	}

	inspectPrompt := promptui.Select{
		Label: "Choose a match and press ENTER",
		Items: items,
	}

	idx, _, err := inspectPrompt.Run()
	if err != nil {
		return err
	}

	pretty, err := json.MarshalIndent(enriched[idx], "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(pretty))
	return nil
}

// matchedPositions narrows the catalog to the positions present in the match
// list so reports only cover what was actually returned.
func matchedPositions(enriched []*match.EnrichedMatch, positions *catalog.Positions) *catalog.Positions {
	matched := &catalog.Positions{}
	for _, m := range enriched {
		if position := positions.FindByID(m.PositionID); position != nil {
			matched.Items = append(matched.Items, position)
		}
	}
	return matched
}

func dumpMatchesToTmpFile(enriched []*match.EnrichedMatch) (string, error) {
	file, err := os.CreateTemp("", "matches_*.json")
	if err != nil {
		return "", err
	}
	defer file.Close()

	enc := json.NewEncoder(file)
	enc.SetIndent("", "  ")
	if err := enc.Encode(enriched); err != nil {
		return "", err
	}
	return file.Name(), nil
}
