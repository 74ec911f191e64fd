package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/mark3labs/mcp-go/server"

	"github.com/peterkuimelis/arcomage/internal/config"
	arcmcp "github.com/peterkuimelis/arcomage/internal/mcp"
)

func main() {
	cfg := config.FromEnv()
	flag.StringVar(&cfg.PresetsFile, "presets", cfg.PresetsFile, "path to extra presets YAML file ($"+config.EnvPresets+")")
	flag.StringVar(&cfg.Bot, "bot", cfg.Bot, "default bot level ($"+config.EnvBot+")")
	flag.StringVar(&cfg.DatabaseURL, "db", cfg.DatabaseURL, "PostgreSQL DSN for match results ($"+config.EnvDatabase+")")
	flag.BoolVar(&cfg.Debug, "debug", cfg.Debug, "enable debug logging ($"+config.EnvDebug+")")
	flag.Parse()

	rt, err := cfg.Open(context.Background())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer rt.Close()

	tools := arcmcp.NewTools(arcmcp.SessionConfig{
		Presets: rt.Presets,
		Bot:     rt.Bot,
		Results: rt.Results,
		Logger:  rt.Logger,
	})
	defer tools.Close()

	s := server.NewMCPServer("arcomage", "1.0.0")
	tools.Register(s)

	if err := server.ServeStdio(s); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
