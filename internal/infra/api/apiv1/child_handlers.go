package apiv1

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"daycare-backend/internal/domain/model"
)

type childResponse struct {
	ID          string     `json:"id"`
	FirstName   string     `json:"first_name"`
	LastName    string     `json:"last_name"`
	DateOfBirth *time.Time `json:"date_of_birth,omitempty"`
	GroupID     *string    `json:"group_id,omitempty"`
	Active      bool       `json:"active"`
	Allergies   string     `json:"allergies,omitempty"`
	Medications string     `json:"medications,omitempty"`
	Note        string     `json:"note,omitempty"`
}

func toChildResponse(c *model.Child) childResponse {
	return childResponse{
		ID:          c.ID,
		FirstName:   c.FirstName,
		LastName:    c.LastName,
		DateOfBirth: c.DateOfBirth,
		GroupID:     c.GroupID,
		Active:      c.Active,
		Allergies:   c.Allergies,
		Medications: c.Medications,
		Note:        c.Note,
	}
}

func (s *Server) handleCreateChild(w http.ResponseWriter, r *http.Request) {
	claims := getClaims(r)
	var req struct {
		FirstName   string     `json:"first_name"`
		LastName    string     `json:"last_name"`
		DateOfBirth *time.Time `json:"date_of_birth"`
		GroupID     *string    `json:"group_id"`
	}
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	c, err := s.children.Create(r.Context(), claims.UserID, req.FirstName, req.LastName, req.DateOfBirth, req.GroupID)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, toChildResponse(c))
}

func (s *Server) handleGetChild(w http.ResponseWriter, r *http.Request) {
	c, err := s.children.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toChildResponse(c))
}

func (s *Server) handleLinkGuardian(w http.ResponseWriter, r *http.Request) {
	claims := getClaims(r)
	var req struct {
		GuardianUserID string `json:"guardian_user_id"`
	}
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if err := s.children.LinkGuardian(r.Context(), claims.UserID, req.GuardianUserID, chi.URLParam(r, "id")); err != nil {
		writeDomainError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
