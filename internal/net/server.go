package net

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"sync"

	"go.uber.org/zap"

	"github.com/peterkuimelis/arcomage/internal/bot"
	"github.com/peterkuimelis/arcomage/internal/game"
	"github.com/peterkuimelis/arcomage/internal/match"
	"github.com/peterkuimelis/arcomage/internal/store"
)

// Server hosts matches between TCP clients and in-process bots. Every
// connection gets its own match.
type Server struct {
	Port    string
	Presets []game.NamedPreset // in addition to the built-in ones
	Bot     bot.Level          // used when the client does not choose
	Results store.Store        // optional
	Logger  *zap.Logger
}

func (s *Server) logger() *zap.Logger {
	if s.Logger == nil {
		return zap.NewNop()
	}
	return s.Logger
}

// Run listens on Port and serves until ctx is cancelled.
func (s *Server) Run(ctx context.Context) error {
	ln, err := net.Listen("tcp", ":"+s.Port)
	if err != nil {
		return fmt.Errorf("listen: %w", err)
	}
	s.logger().Info("waiting for players", zap.String("addr", ln.Addr().String()))
	return s.Serve(ctx, ln)
}

// Serve accepts connections on ln until ctx is cancelled. ln is closed on
// return.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	go func() {
		<-ctx.Done()
		ln.Close()
	}()

	var wg sync.WaitGroup
	defer wg.Wait()

	for {
		conn, err := ln.Accept()
		if err != nil {
			if ctx.Err() != nil {
				return nil
			}
			return fmt.Errorf("accept: %w", err)
		}
		wg.Add(1)
		go func() {
			defer wg.Done()
			defer conn.Close()
			stop := context.AfterFunc(ctx, func() { conn.Close() })
			defer stop()
			if err := s.HandleConn(ctx, conn); err != nil {
				s.logger().Warn("connection closed", zap.String("remote", conn.RemoteAddr().String()), zap.Error(err))
			}
		}()
	}
}

// HandleConn reads the join handshake from conn and plays one session.
func (s *Server) HandleConn(ctx context.Context, conn net.Conn) error {
	logger := s.logger().With(zap.String("remote", conn.RemoteAddr().String()))
	nc := NewNetworkController(conn, s.Presets, logger)

	join, err := nc.recv()
	if errors.Is(err, io.EOF) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("read join message: %w", err)
	}
	if join.Type != MsgJoin {
		err := fmt.Errorf("expected %s, got %q", MsgJoin, join.Type)
		_ = nc.SendError(err)
		return err
	}

	level := s.Bot
	if join.Bot != "" {
		if level, err = bot.ParseLevel(join.Bot); err != nil {
			_ = nc.SendError(err)
			return err
		}
	}
	preset, err := match.ResolvePreset(join.PresetName, s.Presets)
	if join.Preset != nil {
		preset, err = *join.Preset, nil
	}
	if err != nil {
		_ = nc.SendError(err)
		return err
	}

	logger.Info("player joined",
		zap.String("preset", game.PresetName(game.ValidatePreset(preset))),
		zap.String("bot", string(level)))

	m := match.New(match.Config{
		View:     nc,
		BotLevel: level,
		Settings: match.NewMemorySettings(preset),
		Results:  s.Results,
		Logger:   logger,
	})
	defer m.Destroy()

	return nc.Serve(ctx, m)
}

// RunLocal plays a single session in this process: the server side and the
// terminal client talk over an in-memory pipe.
func (s *Server) RunLocal(ctx context.Context, presetName, level string, in io.Reader, out io.Writer) error {
	clientConn, serverConn := net.Pipe()
	defer clientConn.Close()

	errCh := make(chan error, 1)
	go func() {
		defer serverConn.Close()
		errCh <- s.HandleConn(ctx, serverConn)
	}()

	client := NewClient(clientConn, in, out)
	if err := client.Join(presetName, level); err != nil {
		return err
	}
	if err := client.RunREPL(ctx); err != nil {
		return err
	}
	clientConn.Close()
	return <-errCh
}
