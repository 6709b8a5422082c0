package cmd

import (
	"bufio"
	"errors"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/spigell/interview-coach/internal/evaluator"
	"github.com/spigell/interview-coach/internal/history"
	logutil "github.com/spigell/interview-coach/internal/logger"
	"github.com/spigell/interview-coach/internal/question"
	"github.com/spigell/interview-coach/internal/render"
	"github.com/spigell/interview-coach/internal/selection"
	"github.com/spigell/interview-coach/internal/session"

	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

const (
	PromptContinue = "Continue"
	PromptExplain  = "Explain the concept"
	PromptQuit     = "Quit"

	answerPrompt = "Your answer (end with a single blank line; 'skip' to skip, 'quit' to finish):"
)

var errExit = errors.New("exit requested")

var practiceCmd = &cobra.Command{
	Use:   "practice",
	Short: "Run an interactive practice session",
	Run: func(cmd *cobra.Command, _ []string) {
		practice(cmd)
	},
}

func init() {
	rootCmd.AddCommand(practiceCmd)

	practiceCmd.Flags().IntP("count", "n", 0, "how many questions to ask (overrides config)")
	practiceCmd.Flags().StringP("difficulty", "D", "", "starting difficulty (Basic / Intermediate / Advanced), skips the prompt")
	practiceCmd.Flags().Bool("no-color", false, "disable colored output")
}

// practice is the interactive session loop of the cli.
func practice(cmd *cobra.Command) {
	logger, err := logutil.New(viper.GetBool("json"), viper.GetBool("debug"))
	if err != nil {
		log.Fatalf("creating a logger: %s", err)
	}

	config, err := getConfig()
	if err != nil {
		logger.Fatal("getting a config", zap.Error(err))
	}

	if config.Session == nil {
		config.Session = &SessionConfig{Count: defaultCount, Difficulty: defaultDifficulty}
	}

	logger.Info("starting the interview coach", zap.String("version", version))

	set, err := question.Load(config.QuestionsFile)
	if err != nil {
		logger.Fatal("loading questions",
			zap.Error(err),
			zap.String("hint", "set the questions-file key or the COACH_QUESTIONS_FILE environment variable"),
		)
	}

	logger.Info("questions loaded", zap.Int("count", set.Len()))

	difficulty := chooseDifficulty(cmd, config)

	count := config.Session.Count
	if n, _ := cmd.Flags().GetInt("count"); n > 0 {
		count = n
	}
	noColor, _ := cmd.Flags().GetBool("no-color")

	sink := session.NewLog(config.SessionLog)

	var store *history.Store
	if config.HistoryDB != "" {
		store, err = history.Open(config.HistoryDB)
		if err != nil {
			logger.Fatal("opening history database", zap.Error(err))
		}
		defer store.Close()
	}

	sess := session.New()
	logger = logutil.WithFields(logger, zap.String(logutil.FieldSession, sess.ID))

	policy := session.DefaultPolicy()
	scanner := bufio.NewScanner(os.Stdin)

	fmt.Println("Welcome to the Cybersecurity Interview Coach.")

	pool, err := selection.Run(logger, []selection.Filter{selection.NewByDifficulty(difficulty)}, set)
	if err != nil {
		logger.Fatal("selecting questions", zap.Error(err))
	}

	picked := pool.Pick(count)

questions:
	for i := 0; i < len(picked); i++ {
		q := picked[i]
		fmt.Printf("\nQuestion %d/%d — (%s, %s)\n", i+1, len(picked), q.Type, q.Difficulty)
		fmt.Println(q.Text)

		answer, err := readAnswer(scanner)
		if err != nil {
			logger.Fatal("reading the answer", zap.Error(err))
		}

		switch strings.ToLower(answer) {
		case "quit":
			fmt.Println("Ending session early.")
			break questions
		case "skip":
			fmt.Println("Skipped.")
			sess.Skip(q)
			continue
		}

		result := evaluator.Evaluate(q, answer)
		fmt.Println(render.Feedback(result, noColor))

		sess.Record(q, result.Score, result.Reason)
		logger.Debug("answer evaluated",
			logutil.EvaluationFields(q.ID, string(q.Type), string(difficulty), result.Score)...,
		)

		recordAttempt(logger, sink, store, sess.ID, difficulty, q, result)

		if next, changed := policy.Advise(difficulty, sess.Scores()); changed {
			difficulty = next
			fmt.Printf("Adaptive hint: switching difficulty to %s based on performance.\n", difficulty)

			refill, err := refillQueue(logger, set, sess.AskedIDs(), difficulty, len(picked)-i-1)
			if err != nil {
				logger.Fatal("reselecting questions", zap.Error(err))
			}
			picked = append(picked[:i+1:i+1], refill...)
		}

		if err := postAnswerActions(q, noColor); err != nil {
			if errors.Is(err, errExit) {
				fmt.Println("Ending session.")
				break questions
			}
			logger.Fatal("prompt failed", zap.Error(err))
		}
	}

	printSummary(sess)
}

// chooseDifficulty resolves the starting difficulty: flag first, then an
// interactive prompt, then the configured value for non-interactive runs.
func chooseDifficulty(cmd *cobra.Command, config *Config) question.Difficulty {
	if flag := cmd.Flag("difficulty"); flag != nil && flag.Value.String() != "" {
		return question.ParseDifficulty(flag.Value.String())
	}

	prompt := promptui.Select{
		Label:     "Choose difficulty",
		Items:     []string{string(question.Basic), string(question.Intermediate), string(question.Advanced)},
		CursorPos: 1,
	}

	_, choice, err := prompt.Run()
	if err != nil {
		return question.ParseDifficulty(config.Session.Difficulty)
	}

	return question.ParseDifficulty(choice)
}

// refillQueue picks replacement questions for the not-yet-asked tail of the
// queue after a difficulty switch, avoiding repeats while unasked questions
// remain.
func refillQueue(logger *zap.Logger, set *question.Set, askedIDs []string, difficulty question.Difficulty, remaining int) ([]*question.Question, error) {
	if remaining <= 0 {
		return nil, nil
	}

	pool, err := selection.Run(logger, []selection.Filter{
		selection.NewByDifficulty(difficulty),
		selection.NewExcludeAsked(askedIDs),
	}, set)
	if err != nil {
		return nil, err
	}

	return pool.Pick(remaining), nil
}

// readAnswer collects lines from the scanner until the first blank line.
func readAnswer(scanner *bufio.Scanner) (string, error) {
	fmt.Println(answerPrompt)

	var lines []string
	for scanner.Scan() {
		line := scanner.Text()
		if strings.TrimSpace(line) == "" {
			break
		}
		lines = append(lines, line)
	}

	if err := scanner.Err(); err != nil {
		return "", err
	}

	return strings.TrimSpace(strings.Join(lines, "\n")), nil
}

// recordAttempt writes one evaluation to the log sink and, when configured,
// the history store. Sink failures are logged, not fatal: the user already
// has the feedback on screen.
func recordAttempt(logger *zap.Logger, sink *session.Log, store *history.Store, sessionID string, difficulty question.Difficulty, q *question.Question, result *evaluator.Result) {
	err := sink.Append(session.Entry{
		SessionID:  sessionID,
		Difficulty: difficulty,
		QuestionID: q.ID,
		Score:      result.Score,
		Reason:     result.Reason,
	})
	if err != nil {
		logger.Warn("appending to session log", zap.Error(err))
	}

	if store == nil {
		return
	}

	err = store.RecordAttempt(&history.Attempt{
		SessionID:  sessionID,
		QuestionID: q.ID,
		Type:       string(q.Type),
		Difficulty: string(difficulty),
		Score:      result.Score,
		Reason:     result.Reason,
	})
	if err != nil {
		logger.Warn("recording attempt", zap.Error(err))
	}
}

func postAnswerActions(q *question.Question, noColor bool) error {
	for {
		prompt := promptui.Select{
			Label: "Next?",
			Items: []string{PromptContinue, PromptExplain, PromptQuit},
		}

		_, action, err := prompt.Run()
		if err != nil {
			return err
		}

		switch action {
		case PromptContinue:
			return nil
		case PromptExplain:
			fmt.Println(render.Explanation(q, noColor))
		case PromptQuit:
			return errExit
		default:
			return fmt.Errorf("invalid action: %s", action)
		}
	}
}

func printSummary(sess *session.Session) {
	fmt.Println("\n=== Session Summary ===")

	if len(sess.Outcomes) == 0 {
		fmt.Println("No scored answers in this session.")
		return
	}

	summary := sess.Summary()
	fmt.Printf("Average score: %.2f/10 over %d answered questions\n", summary.Average, summary.Answered)
	if summary.Skipped > 0 {
		fmt.Printf("Skipped questions: %d\n", summary.Skipped)
	}

	fmt.Println("Question breakdown:")
	for _, o := range sess.Outcomes {
		fmt.Printf(" - Q%s | %s | %s => %d/10\n", o.Question.ID, o.Question.Type, o.Question.Difficulty, o.Score)
	}

	fmt.Println("Thanks for practicing — keep iterating on the tips and focus on measurable results and clear structure.")
}
