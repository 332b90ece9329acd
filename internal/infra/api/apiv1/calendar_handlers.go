package apiv1

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
)

func (s *Server) handleCreateCalendarEvent(w http.ResponseWriter, r *http.Request) {
	claims := getClaims(r)
	var req struct {
		DaycareID   string     `json:"daycare_id"`
		GroupID     *string    `json:"group_id"`
		Title       string     `json:"title"`
		Description string     `json:"description"`
		Location    string     `json:"location"`
		StartTime   time.Time  `json:"start_time"`
		EndTime     *time.Time `json:"end_time"`
	}
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	e, err := s.calendar.Create(r.Context(), claims.UserID, req.DaycareID, req.GroupID,
		req.Title, req.Description, req.Location, req.StartTime, req.EndTime)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, e)
}

func (s *Server) handleUpdateCalendarEvent(w http.ResponseWriter, r *http.Request) {
	claims := getClaims(r)
	var req struct {
		Title       string     `json:"title"`
		Description string     `json:"description"`
		Location    string     `json:"location"`
		StartTime   time.Time  `json:"start_time"`
		EndTime     *time.Time `json:"end_time"`
	}
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	e, err := s.calendar.Update(r.Context(), claims.UserID, chi.URLParam(r, "id"),
		req.Title, req.Description, req.Location, req.StartTime, req.EndTime)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, e)
}

func (s *Server) handleDeleteCalendarEvent(w http.ResponseWriter, r *http.Request) {
	claims := getClaims(r)
	if err := s.calendar.Delete(r.Context(), claims.UserID, chi.URLParam(r, "id")); err != nil {
		writeDomainError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleListCalendarEvents(w http.ResponseWriter, r *http.Request) {
	daycareID := chi.URLParam(r, "id")

	// Default window is the current month.
	now := time.Now()
	from := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	to := from.AddDate(0, 1, 0)

	if v := r.URL.Query().Get("from"); v != "" {
		parsed, err := time.Parse(time.RFC3339, v)
		if err != nil {
			writeError(w, http.StatusUnprocessableEntity, "from must be RFC3339")
			return
		}
		from = parsed
	}
	if v := r.URL.Query().Get("to"); v != "" {
		parsed, err := time.Parse(time.RFC3339, v)
		if err != nil {
			writeError(w, http.StatusUnprocessableEntity, "to must be RFC3339")
			return
		}
		to = parsed
	}

	events, err := s.calendar.ListByDaycareRange(r.Context(), daycareID, from, to)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, events)
}
