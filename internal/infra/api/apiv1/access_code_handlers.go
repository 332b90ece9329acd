package apiv1

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"daycare-backend/internal/domain/model"
)

type accessCodeResponse struct {
	ID        string     `json:"id"`
	Code      string     `json:"code"`
	DaycareID string     `json:"daycare_id"`
	MaxUses   int        `json:"max_uses"`
	UsedCount int        `json:"used_count"`
	Active    bool       `json:"active"`
	CreatedAt time.Time  `json:"created_at"`
	ExpiresAt *time.Time `json:"expires_at,omitempty"`
}

// issuerRole reports whether the caller's token carries a role allowed to
// manage access codes.
func issuerRole(r *http.Request) bool {
	claims := getClaims(r)
	return claims != nil && model.Role(claims.Role).CanIssueAccessCodes()
}

func toAccessCodeResponse(c *model.AccessCode) accessCodeResponse {
	return accessCodeResponse{
		ID:        c.ID,
		Code:      c.Code,
		DaycareID: c.DaycareID,
		MaxUses:   c.MaxUses,
		UsedCount: c.UsedCount,
		Active:    c.Active,
		CreatedAt: c.CreatedAt,
		ExpiresAt: c.ExpiresAt,
	}
}

func (s *Server) handleCreateAccessCode(w http.ResponseWriter, r *http.Request) {
	claims := getClaims(r)
	var req struct {
		DaycareID string     `json:"daycare_id"`
		MaxUses   int        `json:"max_uses"`
		ExpiresAt *time.Time `json:"expires_at"`
	}
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if req.MaxUses == 0 {
		req.MaxUses = s.cfg.AccessCodes.DefaultMaxUses
	}
	code, err := s.codes.Create(r.Context(), req.DaycareID, claims.UserID, req.MaxUses, req.ExpiresAt)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, toAccessCodeResponse(code))
}

// handleUseAccessCode serves both validation and redemption. A body without
// guardian_user_id only checks the code and must not consume capacity; with
// it, the guardian is linked and one use is consumed.
func (s *Server) handleUseAccessCode(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Code           string `json:"code"`
		GuardianUserID string `json:"guardian_user_id"`
	}
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if req.Code == "" {
		writeError(w, http.StatusUnprocessableEntity, "code is required")
		return
	}

	var (
		dc  *model.Daycare
		err error
	)
	redeemed := req.GuardianUserID != ""
	if redeemed {
		dc, err = s.codes.Redeem(r.Context(), req.Code, req.GuardianUserID)
	} else {
		dc, err = s.codes.Validate(r.Context(), req.Code)
	}
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"redeemed": redeemed,
		"daycare": map[string]string{
			"id":   dc.ID,
			"name": dc.Name,
		},
	})
}

func (s *Server) handleListAccessCodes(w http.ResponseWriter, r *http.Request) {
	if !issuerRole(r) {
		writeError(w, http.StatusForbidden, "forbidden")
		return
	}
	daycareID := chi.URLParam(r, "daycareID")
	codes, err := s.codes.ListByDaycare(r.Context(), daycareID)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	out := make([]accessCodeResponse, 0, len(codes))
	for _, c := range codes {
		out = append(out, toAccessCodeResponse(c))
	}
	writeJSON(w, http.StatusOK, out)
}

func (s *Server) handleDeactivateAccessCode(w http.ResponseWriter, r *http.Request) {
	if !issuerRole(r) {
		writeError(w, http.StatusForbidden, "forbidden")
		return
	}
	if err := s.codes.Deactivate(r.Context(), chi.URLParam(r, "code")); err != nil {
		writeDomainError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
