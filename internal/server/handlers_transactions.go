package server

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/globobank/frauddesk/internal/models"
)

func (s *Server) handleListTransactions(w http.ResponseWriter, r *http.Request) {
	page, limit := pageParams(r)
	txns, pagination := s.store.ListTransactions(page, limit)
	writeData(w, http.StatusOK, txns, &pagination)
}

func (s *Server) handleGetTransaction(w http.ResponseWriter, r *http.Request) {
	tx, err := s.store.TransactionByID(chi.URLParam(r, "id"))
	if err != nil {
		mapError(w, err)
		return
	}
	writeData(w, http.StatusOK, tx, nil)
}

func (s *Server) handleFlaggedTransactions(w http.ResponseWriter, r *http.Request) {
	writeData(w, http.StatusOK, s.store.FlaggedTransactions(), nil)
}

func (s *Server) handleFlagTransaction(w http.ResponseWriter, r *http.Request) {
	var in models.FlagTransactionInput
	if !decodeBody(w, r, &in) {
		return
	}
	if len(in.Reasons) == 0 {
		writeError(w, http.StatusBadRequest, "at least one reason is required")
		return
	}

	tx, err := s.store.FlagTransaction(chi.URLParam(r, "id"), in.Reasons)
	if err != nil {
		mapError(w, err)
		return
	}
	writeData(w, http.StatusOK, tx, nil)
}

func (s *Server) handleDashboardStats(w http.ResponseWriter, r *http.Request) {
	writeData(w, http.StatusOK, s.store.Stats(), nil)
}
