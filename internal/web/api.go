package web

import (
	"net/http"
	"strconv"

	"go.uber.org/zap"

	"github.com/peterkuimelis/arcomage/internal/game"
	"github.com/peterkuimelis/arcomage/internal/store"
)

func (s *Server) handleCards(w http.ResponseWriter, r *http.Request) {
	catalog := game.Catalog()
	cards := make([]game.CardData, 0, len(catalog))
	for _, c := range catalog {
		cards = append(cards, c.Data())
	}
	writeJSON(w, cards)
}

func (s *Server) handlePresets(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, append(game.Presets(), s.cfg.Presets...))
}

func (s *Server) handleResults(w http.ResponseWriter, r *http.Request) {
	limit := defaultResultsLimit
	if v := r.URL.Query().Get("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			http.Error(w, "limit must be a non-negative integer", http.StatusBadRequest)
			return
		}
		limit = n
	}

	results := []store.Result{}
	if s.cfg.Results != nil {
		list, err := s.cfg.Results.ListResults(r.Context(), limit)
		if err != nil {
			s.logger.Error("could not list results", zap.Error(err))
			http.Error(w, "could not list results", http.StatusInternalServerError)
			return
		}
		results = append(results, list...)
	}
	writeJSON(w, results)
}
