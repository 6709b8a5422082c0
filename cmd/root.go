package cmd

import (
	"errors"
	"log"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const (
	app = "interview-coach"

	defaultQuestionsFile = "questions.yaml"
	defaultSessionLog    = "session_log.txt"
	defaultCount         = 5
	defaultDifficulty    = "Intermediate"
	defaultAddress       = "127.0.0.1:5000"
)

type Config struct {
	QuestionsFile string         `mapstructure:"questions-file"`
	SessionLog    string         `mapstructure:"session-log"`
	HistoryDB     string         `mapstructure:"history-db"`
	Session       *SessionConfig `mapstructure:"session"`
	Server        *ServerConfig  `mapstructure:"server"`
}

type SessionConfig struct {
	Count      int    `mapstructure:"count"`
	Difficulty string `mapstructure:"difficulty"`
}

type ServerConfig struct {
	Address string `mapstructure:"address"`
}

var (
	// Used for flags.
	cfgFile string

	rootCmd = &cobra.Command{
		Use:   app,
		Short: "interview-coach is a cybersecurity interview practice coach with heuristic answer scoring",
	}
)

// Execute executes the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	if err := viper.BindEnv("questions-file", "COACH_QUESTIONS_FILE"); err != nil {
		log.Fatalf("binding COACH_QUESTIONS_FILE environment variable: %v", err)
	}

	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "a config file (default is interview-coach.yaml in current directory)")
	rootCmd.PersistentFlags().BoolP("debug", "d", false, "verbose/debug output")
	rootCmd.PersistentFlags().BoolP("json", "j", false, "json format for logging")

	viper.BindPFlag("debug", rootCmd.PersistentFlags().Lookup("debug"))
	viper.BindPFlag("json", rootCmd.PersistentFlags().Lookup("json"))
}

func initConfig() {
	viper.SetDefault("questions-file", defaultQuestionsFile)
	viper.SetDefault("session-log", defaultSessionLog)
	viper.SetDefault("session.count", defaultCount)
	viper.SetDefault("session.difficulty", defaultDifficulty)
	viper.SetDefault("server.address", defaultAddress)

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.AddConfigPath(".")
		viper.SetConfigName(app + ".yaml")
	}

	// The config file is optional; the defaults cover a plain run. An
	// explicitly requested or malformed file is still fatal.
	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if cfgFile == "" && errors.As(err, &notFound) {
			return
		}
		log.Fatal(err)
	}
}

func getConfig() (*Config, error) {
	var config *Config
	err := viper.Unmarshal(&config)
	if err != nil {
		return config, err
	}

	return config, nil
}
