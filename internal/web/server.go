package web

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net"
	"net/http"
	"time"

	"github.com/coder/websocket"
	"go.uber.org/zap"

	"github.com/peterkuimelis/arcomage/internal/bot"
	"github.com/peterkuimelis/arcomage/internal/game"
	arcnet "github.com/peterkuimelis/arcomage/internal/net"
	"github.com/peterkuimelis/arcomage/internal/store"
)

const defaultResultsLimit = 50

// Config configures the web server.
type Config struct {
	Presets []game.NamedPreset // in addition to the built-in ones
	Bot     bot.Level
	Results store.Store // optional
	Logger  *zap.Logger
}

// Server is the Arcomage HTTP API. Browsers play over /ws using the same
// JSON messages as the TCP protocol.
type Server struct {
	cfg    Config
	game   *arcnet.Server
	logger *zap.Logger
	mux    *http.ServeMux
}

// NewServer creates a new web server.
func NewServer(cfg Config) *Server {
	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	s := &Server{
		cfg: cfg,
		game: &arcnet.Server{
			Presets: cfg.Presets,
			Bot:     cfg.Bot,
			Results: cfg.Results,
			Logger:  logger,
		},
		logger: logger,
		mux:    http.NewServeMux(),
	}
	s.setupRoutes()
	return s
}

func (s *Server) setupRoutes() {
	s.mux.HandleFunc("GET /api/cards", s.handleCards)
	s.mux.HandleFunc("GET /api/presets", s.handlePresets)
	s.mux.HandleFunc("GET /api/results", s.handleResults)

	// WebSocket play
	s.mux.HandleFunc("GET /ws", s.handleWebSocket)
}

// Handler returns the server's HTTP handler.
func (s *Server) Handler() http.Handler { return s.mux }

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(v)
}

// handleWebSocket runs one game session for the browser. Every websocket
// text message is one protocol message, starting with "join".
func (s *Server) handleWebSocket(w http.ResponseWriter, r *http.Request) {
	wsConn, err := websocket.Accept(w, r, &websocket.AcceptOptions{
		InsecureSkipVerify: true, // Allow connections from any origin
	})
	if err != nil {
		s.logger.Warn("websocket accept error", zap.Error(err))
		return
	}
	defer wsConn.CloseNow()

	ctx := r.Context()
	clientConn, serverConn := net.Pipe()
	defer clientConn.Close()

	go func() {
		defer serverConn.Close()
		if err := s.game.HandleConn(ctx, serverConn); err != nil {
			s.logger.Warn("session ended", zap.String("remote", r.RemoteAddr), zap.Error(err))
		}
	}()

	done := make(chan struct{})

	// Session → WebSocket
	go func() {
		defer close(done)
		dec := json.NewDecoder(clientConn)
		for {
			var msg json.RawMessage
			if err := dec.Decode(&msg); err != nil {
				if !errors.Is(err, io.EOF) && !errors.Is(err, io.ErrClosedPipe) {
					s.logger.Warn("session read error", zap.Error(err))
				}
				return
			}
			if err := wsConn.Write(ctx, websocket.MessageText, msg); err != nil {
				s.logger.Debug("websocket write error", zap.Error(err))
				return
			}
		}
	}()

	// WebSocket → session
	go func() {
		defer clientConn.Close()
		for {
			_, data, err := wsConn.Read(ctx)
			if err != nil {
				return
			}
			if _, err := clientConn.Write(append(data, '\n')); err != nil {
				return
			}
		}
	}()

	<-done
	wsConn.Close(websocket.StatusNormalClosure, "game ended")
}

// ListenAndServe serves HTTP on addr until ctx is cancelled.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.mux,
		ReadHeaderTimeout: 10 * time.Second,
	}
	errCh := make(chan error, 1)
	go func() { errCh <- srv.ListenAndServe() }()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	}
}
