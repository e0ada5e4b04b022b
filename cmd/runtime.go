package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/dohyeon0608/ReadQuest/internal/catalog"
	"github.com/dohyeon0608/ReadQuest/internal/config"
	"github.com/dohyeon0608/ReadQuest/internal/game"
	"github.com/dohyeon0608/ReadQuest/internal/leaderboard"
	"github.com/dohyeon0608/ReadQuest/internal/llm"
	"github.com/dohyeon0608/ReadQuest/internal/logger"
	"github.com/dohyeon0608/ReadQuest/internal/progression"
	"github.com/dohyeon0608/ReadQuest/internal/quiz"
	"github.com/dohyeon0608/ReadQuest/internal/store"
)

// runtime is everything a command needs: config, store, logger and session.
type runtime struct {
	cfg     config.Config
	store   *store.Store
	log     *logger.Logger
	session *game.Session
}

// openRuntime loads config, opens the store and builds a session. With
// withQuiz set it also builds the LLM provider; a missing key only disables
// quizzes.
func openRuntime(cmd *cobra.Command, withQuiz bool) (*runtime, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	flag, _ := cmd.Flags().GetString("db")
	dbPath, err := cfg.ResolveDBPath(flag)
	if err != nil {
		return nil, fmt.Errorf("resolve database path: %w", err)
	}
	if err := store.EnsureDir(dbPath); err != nil {
		return nil, fmt.Errorf("create database directory: %w", err)
	}

	log, err := logger.New(cfg.LogMode, cfg.ResolveLogFile(dbPath))
	if err != nil {
		return nil, fmt.Errorf("init logger: %w", err)
	}

	st, err := store.Open(dbPath)
	if err != nil {
		log.Sync()
		return nil, fmt.Errorf("open database: %w", err)
	}
	log.Debug("store opened", "path", dbPath, "command", cmd.CommandPath())

	rt := &runtime{cfg: cfg, store: st, log: log}

	var gen quiz.Generator
	if withQuiz {
		gen = rt.quizGenerator(cmd)
	}

	rt.session = game.New(game.Options{
		Catalog:     catalog.Default(),
		Plans:       st.PlanRepo(),
		Progression: progression.NewService(st.SnapshotRepo(), st.EventRepo(), st, log),
		Quiz:        gen,
		Board:       leaderboard.Default(),
		QuizTimeout: cfg.LLM.Timeout,
		Log:         log,
	})
	return rt, nil
}

func (rt *runtime) quizGenerator(cmd *cobra.Command) quiz.Generator {
	if err := rt.cfg.LLM.Validate(); err != nil {
		fmt.Fprintln(os.Stderr, "LLM provider not configured:", err)
		fmt.Fprintln(os.Stderr, "Quizzes will be unavailable; quests can still be skipped without reward.")
		rt.log.Warn("quiz generation disabled", "error", err)
		return nil
	}
	provider, err := llm.NewProvider(cmd.Context(), rt.cfg.LLM, rt.store.EventRepo(), rt.log)
	if err != nil {
		fmt.Fprintln(os.Stderr, "LLM provider unavailable:", err)
		rt.log.Warn("quiz generation disabled", "provider", rt.cfg.LLM.Provider, "error", err)
		return nil
	}
	rt.log.Info("quiz generation enabled", "provider", rt.cfg.LLM.Provider, "model", provider.ModelID())
	return quiz.New(provider, quiz.DefaultConfig())
}

func (rt *runtime) Close() {
	if err := rt.store.Close(); err != nil {
		rt.log.Warn("close store", "error", err)
	}
	rt.log.Sync()
}
