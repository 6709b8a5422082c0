package cmd

import (
	"context"
	"log"
	"os/signal"
	"syscall"

	"github.com/spigell/interview-coach/internal/history"
	logutil "github.com/spigell/interview-coach/internal/logger"
	"github.com/spigell/interview-coach/internal/question"
	"github.com/spigell/interview-coach/internal/server"
	"github.com/spigell/interview-coach/internal/session"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the practice page and the evaluation HTTP API",
	Run: func(_ *cobra.Command, _ []string) {
		serve()
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().StringP("address", "a", "", "listen address (overrides config)")

	viper.BindPFlag("server.address", serveCmd.Flags().Lookup("address"))
}

func serve() {
	logger, err := logutil.New(viper.GetBool("json"), viper.GetBool("debug"))
	if err != nil {
		log.Fatalf("creating a logger: %s", err)
	}

	config, err := getConfig()
	if err != nil {
		logger.Fatal("getting a config", zap.Error(err))
	}

	address := defaultAddress
	if config.Server != nil && config.Server.Address != "" {
		address = config.Server.Address
	}

	logger.Info("starting the interview coach server", zap.String("version", version))

	set, err := question.Load(config.QuestionsFile)
	if err != nil {
		logger.Fatal("loading questions",
			zap.Error(err),
			zap.String("hint", "set the questions-file key or the COACH_QUESTIONS_FILE environment variable"),
		)
	}

	logger.Info("questions loaded", zap.Int("count", set.Len()))

	var store *history.Store
	if config.HistoryDB != "" {
		store, err = history.Open(config.HistoryDB)
		if err != nil {
			logger.Fatal("opening history database", zap.Error(err))
		}
		defer store.Close()
	}

	srv := server.New(set, server.Options{
		Address: address,
		Logger:  logger,
		Sink:    session.NewLog(config.SessionLog),
		Store:   store,
	})

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	if err := srv.Run(ctx); err != nil {
		logger.Fatal("server failed", zap.Error(err))
	}
}
