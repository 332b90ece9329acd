package apiv1

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"daycare-backend/internal/domain/model"
)

func (s *Server) handleRecordAttendance(w http.ResponseWriter, r *http.Request) {
	claims := getClaims(r)
	var req struct {
		ChildID   string     `json:"child_id"`
		EventType string     `json:"event_type"`
		EventTime *time.Time `json:"event_time"`
		Note      string     `json:"note"`
	}
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	eventType, err := model.ParseAttendanceEventType(req.EventType)
	if err != nil {
		writeError(w, http.StatusUnprocessableEntity, "unknown event type")
		return
	}
	when := time.Now()
	if req.EventTime != nil {
		when = *req.EventTime
	}
	a, err := s.attendance.RecordEvent(r.Context(), req.ChildID, eventType, when, req.Note, claims.UserID)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, a)
}

func (s *Server) handleListAttendance(w http.ResponseWriter, r *http.Request) {
	day := time.Now()
	if v := r.URL.Query().Get("date"); v != "" {
		parsed, err := time.Parse("2006-01-02", v)
		if err != nil {
			writeError(w, http.StatusUnprocessableEntity, "date must be YYYY-MM-DD")
			return
		}
		day = parsed
	}
	events, err := s.attendance.ListByChildAndDay(r.Context(), chi.URLParam(r, "id"), day)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, events)
}

func (s *Server) handleAttendanceStatus(w http.ResponseWriter, r *http.Request) {
	last, err := s.attendance.CurrentStatus(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeDomainError(w, err)
		return
	}
	if last == nil {
		writeJSON(w, http.StatusOK, map[string]interface{}{"status": "unknown"})
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"status":     string(last.EventType),
		"event_time": last.EventTime,
	})
}

func (s *Server) handleReportAbsence(w http.ResponseWriter, r *http.Request) {
	claims := getClaims(r)
	var req struct {
		ChildID string    `json:"child_id"`
		Date    time.Time `json:"date"`
		Reason  string    `json:"reason"`
		Note    string    `json:"note"`
	}
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	a, err := s.absences.Report(r.Context(), req.ChildID, claims.UserID, req.Date, req.Reason, req.Note)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, a)
}

func (s *Server) handleListAbsences(w http.ResponseWriter, r *http.Request) {
	absences, err := s.absences.ListByChild(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, absences)
}

func (s *Server) handleReportVacation(w http.ResponseWriter, r *http.Request) {
	claims := getClaims(r)
	var req struct {
		ChildID   string    `json:"child_id"`
		StartDate time.Time `json:"start_date"`
		EndDate   time.Time `json:"end_date"`
		Note      string    `json:"note"`
	}
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	v, err := s.vacations.Report(r.Context(), req.ChildID, claims.UserID, req.StartDate, req.EndDate, req.Note)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, v)
}

func (s *Server) handleListVacations(w http.ResponseWriter, r *http.Request) {
	vacations, err := s.vacations.ListByChild(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, vacations)
}
