package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"github.com/peterkuimelis/arcomage/internal/config"
	"github.com/peterkuimelis/arcomage/internal/web"
)

func main() {
	port := flag.String("port", config.Env(config.EnvPort, "8080"), "HTTP port to listen on ($"+config.EnvPort+")")
	cfg := config.FromEnv()
	flag.StringVar(&cfg.PresetsFile, "presets", cfg.PresetsFile, "path to extra presets YAML file ($"+config.EnvPresets+")")
	flag.StringVar(&cfg.Bot, "bot", cfg.Bot, "default bot level ($"+config.EnvBot+")")
	flag.StringVar(&cfg.DatabaseURL, "db", cfg.DatabaseURL, "PostgreSQL DSN for match results ($"+config.EnvDatabase+")")
	flag.BoolVar(&cfg.Debug, "debug", cfg.Debug, "enable debug logging ($"+config.EnvDebug+")")
	flag.Parse()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	rt, err := cfg.Open(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer rt.Close()

	srv := web.NewServer(web.Config{
		Presets: rt.Presets,
		Bot:     rt.Bot,
		Results: rt.Results,
		Logger:  rt.Logger,
	})

	addr := ":" + *port
	rt.Logger.Info("arcomage web API listening", zap.String("url", "http://localhost"+addr))
	if err := srv.ListenAndServe(ctx, addr); err != nil {
		rt.Logger.Error("server stopped", zap.Error(err))
		os.Exit(1)
	}
}
