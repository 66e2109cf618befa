package cmd

import (
	"context"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/spf13/cobra"

	"github.com/JOHN41-tech/assistant-L/internal/config"
	"github.com/JOHN41-tech/assistant-L/internal/learning"
	"github.com/JOHN41-tech/assistant-L/internal/llm"
	"github.com/JOHN41-tech/assistant-L/internal/logger"
	"github.com/JOHN41-tech/assistant-L/internal/quiz"
	"github.com/JOHN41-tech/assistant-L/internal/resources"
	"github.com/JOHN41-tech/assistant-L/internal/roadmap"
	"github.com/JOHN41-tech/assistant-L/internal/server"
	"github.com/JOHN41-tech/assistant-L/internal/session"
	"github.com/JOHN41-tech/assistant-L/internal/store"
	"github.com/JOHN41-tech/assistant-L/internal/tutor"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP API server",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runServe(cmd)
	},
}

func runServe(cmd *cobra.Command) error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfgPath, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return err
	}

	log, err := logger.New(cfg.Log.Mode)
	if err != nil {
		return err
	}
	defer log.Sync()

	dbPath := cfg.DB.Path
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		dbPath = p
	}
	if dbPath == "" {
		dbPath, err = store.DefaultDBPath()
		if err != nil {
			return err
		}
	}
	db, err := store.Open(dbPath)
	if err != nil {
		return err
	}
	log.Info("database opened", "path", dbPath)

	var sessions session.Store
	if cfg.Redis.Addr != "" {
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		if err := client.Ping(ctx).Err(); err != nil {
			return err
		}
		defer client.Close()
		sessions = session.NewRedisStore(client, time.Duration(cfg.Redis.SessionTTL))
		log.Info("session store", "backend", "redis", "addr", cfg.Redis.Addr)
	} else {
		sessions = session.NewMemoryStore()
		log.Info("session store", "backend", "memory")
	}

	provider, err := llm.NewProviderFromEnv(ctx, log)
	if err != nil {
		return err
	}
	log.Info("llm provider ready", "model", provider.ModelID())

	svc := learning.NewService(learning.Deps{
		Sessions:  sessions,
		Roadmaps:  roadmap.New(provider, roadmap.DefaultConfig()),
		Quizzes:   quiz.NewGenerator(provider, quiz.DefaultConfig()),
		Tutor:     tutor.New(provider, tutor.DefaultConfig()),
		Resources: resources.NewFinder(provider, resources.DefaultConfig(), log),
		Topics:    store.NewTopicRepo(db),
		Notes:     store.NewNoteRepo(db),
		Chat:      store.NewChatRepo(db),
		Scores:    store.NewScoreRepo(db),
		Logger:    log,
	})

	return server.New(svc, log, cfg.Server.Port).Run(ctx)
}
