package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/peterkuimelis/arcomage/internal/config"
	arcnet "github.com/peterkuimelis/arcomage/internal/net"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var err error
	switch os.Args[1] {
	case "serve":
		err = runServe(ctx, os.Args[2:])
	case "join":
		err = runJoin(ctx, os.Args[2:])
	case "local":
		err = runLocal(ctx, os.Args[2:])
	default:
		printUsage()
		os.Exit(1)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println("Usage:")
	fmt.Println("  arcomage serve [--port P] [--presets FILE] [--bot LEVEL] [--db DSN]")
	fmt.Println("  arcomage join  [--addr ADDR] [--preset NAME] [--bot LEVEL]")
	fmt.Println("  arcomage local [--preset NAME] [--bot LEVEL] [--presets FILE]")
	fmt.Println()
	fmt.Println("Commands:")
	fmt.Println("  serve   Host matches against the bot for TCP clients")
	fmt.Println("  join    Connect to a server and play")
	fmt.Println("  local   Play against the bot in this terminal")
}

// configFlags registers the shared flags on fs.
func configFlags(fs *flag.FlagSet) *config.Config {
	cfg := config.FromEnv()
	fs.StringVar(&cfg.PresetsFile, "presets", cfg.PresetsFile, "path to extra presets YAML file ($"+config.EnvPresets+")")
	fs.StringVar(&cfg.Bot, "bot", cfg.Bot, "bot level: greedy or random ($"+config.EnvBot+")")
	fs.StringVar(&cfg.DatabaseURL, "db", cfg.DatabaseURL, "PostgreSQL DSN for match results ($"+config.EnvDatabase+")")
	fs.BoolVar(&cfg.Debug, "debug", cfg.Debug, "enable debug logging ($"+config.EnvDebug+")")
	return &cfg
}

func runServe(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("serve", flag.ExitOnError)
	port := fs.String("port", config.Env(config.EnvPort, "9000"), "TCP port to listen on ($"+config.EnvPort+")")
	cfg := configFlags(fs)
	fs.Parse(args)

	rt, err := cfg.Open(ctx)
	if err != nil {
		return err
	}
	defer rt.Close()

	srv := &arcnet.Server{
		Port:    *port,
		Presets: rt.Presets,
		Bot:     rt.Bot,
		Results: rt.Results,
		Logger:  rt.Logger,
	}
	return srv.Run(ctx)
}

func runJoin(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("join", flag.ExitOnError)
	addr := fs.String("addr", "localhost:9000", "server address to connect to")
	preset := fs.String("preset", "", "preset name (empty for Default)")
	level := fs.String("bot", "", "bot level (empty for the server's choice)")
	fs.Parse(args)

	return arcnet.Connect(ctx, *addr, *preset, *level, os.Stdin, os.Stdout)
}

func runLocal(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("local", flag.ExitOnError)
	preset := fs.String("preset", "", "preset name (empty for Default)")
	cfg := configFlags(fs)
	fs.Parse(args)

	rt, err := cfg.Open(ctx)
	if err != nil {
		return err
	}
	defer rt.Close()

	srv := &arcnet.Server{
		Presets: rt.Presets,
		Bot:     rt.Bot,
		Results: rt.Results,
		Logger:  rt.Logger,
	}
	return srv.RunLocal(ctx, *preset, "", os.Stdin, os.Stdout)
}
