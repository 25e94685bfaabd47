package server

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/globobank/frauddesk/internal/models"
)

func (s *Server) handleListCustomers(w http.ResponseWriter, r *http.Request) {
	page, limit := pageParams(r)
	customers, pagination := s.store.ListCustomers(page, limit)
	writeData(w, http.StatusOK, customers, &pagination)
}

func (s *Server) handleGetCustomer(w http.ResponseWriter, r *http.Request) {
	c, err := s.store.CustomerByID(chi.URLParam(r, "id"))
	if err != nil {
		mapError(w, err)
		return
	}
	writeData(w, http.StatusOK, c, nil)
}

func (s *Server) handleSearchCustomers(w http.ResponseWriter, r *http.Request) {
	var in models.CustomerSearchInput
	if !decodeBody(w, r, &in) {
		return
	}

	customers, pagination := s.store.SearchCustomers(in.Query, in.Page, in.Limit)
	writeData(w, http.StatusOK, customers, &pagination)
}

func (s *Server) handleCustomerCases(w http.ResponseWriter, r *http.Request) {
	cases, err := s.store.CasesByCustomer(chi.URLParam(r, "id"))
	if err != nil {
		mapError(w, err)
		return
	}
	writeData(w, http.StatusOK, cases, nil)
}

func (s *Server) handleCustomerTransactions(w http.ResponseWriter, r *http.Request) {
	txns, err := s.store.TransactionsByCustomer(chi.URLParam(r, "id"))
	if err != nil {
		mapError(w, err)
		return
	}
	writeData(w, http.StatusOK, txns, nil)
}
