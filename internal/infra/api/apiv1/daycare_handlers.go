package apiv1

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"daycare-backend/internal/domain/model"
)

type daycareResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	OrgNumber string    `json:"org_number"`
	Address   string    `json:"address,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

func toDaycareResponse(d *model.Daycare) daycareResponse {
	return daycareResponse{
		ID:        d.ID,
		Name:      d.Name,
		OrgNumber: d.OrgNumber,
		Address:   d.Address,
		CreatedAt: d.CreatedAt,
	}
}

func (s *Server) handleCreateDaycare(w http.ResponseWriter, r *http.Request) {
	claims := getClaims(r)
	var req struct {
		Name      string `json:"name"`
		OrgNumber string `json:"org_number"`
		Address   string `json:"address"`
	}
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	d, err := s.daycares.Create(r.Context(), claims.UserID, req.Name, req.OrgNumber, req.Address)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, toDaycareResponse(d))
}

func (s *Server) handleGetDaycare(w http.ResponseWriter, r *http.Request) {
	d, err := s.daycares.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toDaycareResponse(d))
}

func (s *Server) handleMyDaycares(w http.ResponseWriter, r *http.Request) {
	claims := getClaims(r)
	daycares, err := s.daycares.ListForGuardian(r.Context(), claims.UserID)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	out := make([]daycareResponse, 0, len(daycares))
	for _, d := range daycares {
		out = append(out, toDaycareResponse(d))
	}
	writeJSON(w, http.StatusOK, out)
}

func (s *Server) handleCreateGroup(w http.ResponseWriter, r *http.Request) {
	claims := getClaims(r)
	var req struct {
		Name        string `json:"name"`
		Description string `json:"description"`
	}
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	g, err := s.daycares.CreateGroup(r.Context(), claims.UserID, chi.URLParam(r, "id"), req.Name, req.Description)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, g)
}

func (s *Server) handleListGroups(w http.ResponseWriter, r *http.Request) {
	groups, err := s.daycares.ListGroups(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, groups)
}
