package cmd

import (
	"fmt"
	"log"
	"time"

	"github.com/spigell/interview-coach/internal/history"
	logutil "github.com/spigell/interview-coach/internal/logger"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show recent practice attempts from the history database",
	Run: func(cmd *cobra.Command, _ []string) {
		showHistory(cmd)
	},
}

func init() {
	rootCmd.AddCommand(historyCmd)

	historyCmd.Flags().IntP("limit", "l", 20, "how many attempts to show")
}

func showHistory(cmd *cobra.Command) {
	logger, err := logutil.New(viper.GetBool("json"), viper.GetBool("debug"))
	if err != nil {
		log.Fatalf("creating a logger: %s", err)
	}

	config, err := getConfig()
	if err != nil {
		logger.Fatal("getting a config", zap.Error(err))
	}

	if config.HistoryDB == "" {
		logger.Fatal("history database is not configured",
			zap.String("hint", "set the history-db key in the configuration file"),
		)
	}

	store, err := history.Open(config.HistoryDB)
	if err != nil {
		logger.Fatal("opening history database", zap.Error(err))
	}
	defer store.Close()

	limit, _ := cmd.Flags().GetInt("limit")

	attempts, err := store.RecentAttempts(limit)
	if err != nil {
		logger.Fatal("querying attempts", zap.Error(err))
	}

	if len(attempts) == 0 {
		fmt.Println("No attempts recorded yet.")
		return
	}

	for _, a := range attempts {
		fmt.Printf("%s | %s | Q:%s | %d/10 | %s\n",
			a.CreatedAt.Format(time.RFC3339),
			a.Difficulty,
			a.QuestionID,
			a.Score,
			logutil.TruncateForLog(a.Reason, 80),
		)
	}

	avg, count, err := store.OverallAverage()
	if err != nil {
		logger.Fatal("querying overall average", zap.Error(err))
	}

	fmt.Printf("\nAverage score: %.2f/10 over %d recorded attempts\n", avg, count)
}
