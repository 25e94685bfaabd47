package server

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/globobank/frauddesk/internal/models"
)

// Role floors for the destructive case operations. List/get/create/update
// are open to every authenticated operator.
var (
	resolveRoles = []models.Role{models.RoleSeniorAnalyst, models.RoleManager, models.RoleAdmin}
	deleteRoles  = []models.Role{models.RoleAdmin}
)

func (s *Server) handleListCases(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	filter := CaseFilter{
		Status:     models.CaseStatus(q.Get("status")),
		Priority:   models.Priority(q.Get("priority")),
		AssignedTo: q.Get("assignedTo"),
	}
	page, limit := pageParams(r)

	cases, pagination := s.store.ListCases(filter, page, limit)
	writeData(w, http.StatusOK, cases, &pagination)
}

func (s *Server) handleGetCase(w http.ResponseWriter, r *http.Request) {
	fc, err := s.store.CaseByID(chi.URLParam(r, "id"))
	if err != nil {
		mapError(w, err)
		return
	}
	writeData(w, http.StatusOK, fc, nil)
}

func (s *Server) handleCreateCase(w http.ResponseWriter, r *http.Request) {
	var in models.CreateFraudCaseInput
	if !decodeBody(w, r, &in) {
		return
	}
	if in.CustomerID == "" {
		writeError(w, http.StatusBadRequest, "customerId is required")
		return
	}

	fc, err := s.store.CreateCase(in, userFrom(r.Context()).ID)
	if err != nil {
		mapError(w, err)
		return
	}
	writeData(w, http.StatusCreated, fc, nil)
}

func (s *Server) handleUpdateCase(w http.ResponseWriter, r *http.Request) {
	var in models.UpdateFraudCaseInput
	if !decodeBody(w, r, &in) {
		return
	}

	fc, err := s.store.UpdateCase(chi.URLParam(r, "id"), in)
	if err != nil {
		mapError(w, err)
		return
	}
	writeData(w, http.StatusOK, fc, nil)
}

func (s *Server) handleDeleteCase(w http.ResponseWriter, r *http.Request) {
	s.requireRole(deleteRoles, func(w http.ResponseWriter, r *http.Request) {
		if err := s.store.DeleteCase(chi.URLParam(r, "id")); err != nil {
			mapError(w, err)
			return
		}
		writeData(w, http.StatusOK, map[string]string{"id": chi.URLParam(r, "id")}, nil)
	})(w, r)
}

func (s *Server) handleAssignCase(w http.ResponseWriter, r *http.Request) {
	var in models.AssignFraudCaseInput
	if !decodeBody(w, r, &in) {
		return
	}
	if in.AnalystID == "" {
		writeError(w, http.StatusBadRequest, "analystId is required")
		return
	}

	fc, err := s.store.AssignCase(chi.URLParam(r, "id"), in.AnalystID)
	if err != nil {
		mapError(w, err)
		return
	}
	writeData(w, http.StatusOK, fc, nil)
}

func (s *Server) handleResolveCase(w http.ResponseWriter, r *http.Request) {
	s.requireRole(resolveRoles, func(w http.ResponseWriter, r *http.Request) {
		var in models.ResolveFraudCaseInput
		if !decodeBody(w, r, &in) {
			return
		}
		if in.Outcome == "" || in.Reason == "" {
			writeError(w, http.StatusBadRequest, "outcome and reason are required")
			return
		}

		fc, err := s.store.ResolveCase(chi.URLParam(r, "id"), in, userFrom(r.Context()).ID)
		if err != nil {
			mapError(w, err)
			return
		}
		writeData(w, http.StatusOK, fc, nil)
	})(w, r)
}
