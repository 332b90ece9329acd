package apiv1

import (
	"context"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"

	"daycare-backend/internal/config"
	"daycare-backend/internal/infra/logging"
	"daycare-backend/internal/infra/metrics"
	"daycare-backend/internal/infra/redis"
	"daycare-backend/internal/usecase"
)

type ctxKey string

const claimsKey ctxKey = "claims"

// Server owns the HTTP surface: routing, auth middleware, and translation
// between JSON requests and usecase calls.
type Server struct {
	auth       usecase.AuthUseCase
	users      usecase.UserUseCase
	codes      usecase.AccessCodeUseCase
	daycares   usecase.DaycareUseCase
	children   usecase.ChildUseCase
	attendance usecase.AttendanceUseCase
	absences   usecase.AbsenceUseCase
	vacations  usecase.VacationUseCase
	calendar   usecase.CalendarUseCase

	authMgr *AuthManager
	limiter *redis.RateLimiter
	cfg     *config.Config
	log     *zerolog.Logger
}

func NewServer(
	auth usecase.AuthUseCase,
	users usecase.UserUseCase,
	codes usecase.AccessCodeUseCase,
	daycares usecase.DaycareUseCase,
	children usecase.ChildUseCase,
	attendance usecase.AttendanceUseCase,
	absences usecase.AbsenceUseCase,
	vacations usecase.VacationUseCase,
	calendar usecase.CalendarUseCase,
	authMgr *AuthManager,
	limiter *redis.RateLimiter,
	cfg *config.Config,
	logger *zerolog.Logger,
) *Server {
	return &Server{
		auth:       auth,
		users:      users,
		codes:      codes,
		daycares:   daycares,
		children:   children,
		attendance: attendance,
		absences:   absences,
		vacations:  vacations,
		calendar:   calendar,
		authMgr:    authMgr,
		limiter:    limiter,
		cfg:        cfg,
		log:        logger,
	}
}

func (s *Server) Router() http.Handler {
	r := chi.NewRouter()

	r.Use(s.requestID)
	r.Use(s.recoverer)
	r.Use(s.requestLog)

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("OK"))
	})
	r.Method(http.MethodGet, "/metrics", promhttp.Handler())

	r.Route("/api/v1", func(r chi.Router) {
		r.Post("/auth/register", s.handleRegister)
		r.Post("/auth/login", s.handleLogin)

		r.Group(func(r chi.Router) {
			r.Use(s.requireAuth)

			r.Post("/auth/change-password", s.handleChangePassword)
			r.Get("/me", s.handleMe)
			r.Get("/me/daycares", s.handleMyDaycares)

			r.Route("/access-codes", func(r chi.Router) {
				r.Post("/", s.handleCreateAccessCode)
				r.With(s.rateLimitRedeem).Post("/use", s.handleUseAccessCode)
				r.Get("/daycare/{daycareID}", s.handleListAccessCodes)
				r.Delete("/{code}", s.handleDeactivateAccessCode)
			})

			r.Route("/daycares", func(r chi.Router) {
				r.Post("/", s.handleCreateDaycare)
				r.Get("/{id}", s.handleGetDaycare)
				r.Post("/{id}/groups", s.handleCreateGroup)
				r.Get("/{id}/groups", s.handleListGroups)
				r.Get("/{id}/calendar-events", s.handleListCalendarEvents)
			})

			r.Route("/children", func(r chi.Router) {
				r.Post("/", s.handleCreateChild)
				r.Get("/{id}", s.handleGetChild)
				r.Post("/{id}/guardians", s.handleLinkGuardian)
				r.Get("/{id}/attendance", s.handleListAttendance)
				r.Get("/{id}/attendance/current", s.handleAttendanceStatus)
				r.Get("/{id}/absences", s.handleListAbsences)
				r.Get("/{id}/vacations", s.handleListVacations)
			})

			r.Post("/attendance", s.handleRecordAttendance)
			r.Post("/absences", s.handleReportAbsence)
			r.Post("/vacations", s.handleReportVacation)

			r.Route("/calendar-events", func(r chi.Router) {
				r.Post("/", s.handleCreateCalendarEvent)
				r.Put("/{id}", s.handleUpdateCalendarEvent)
				r.Delete("/{id}", s.handleDeleteCalendarEvent)
			})
		})
	})

	return r
}

// requestID tags every request with a fresh id for log correlation.
func (s *Server) requestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := logging.WithRequestID(r.Context(), uuid.NewString())
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func (s *Server) requestLog(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		l := logging.With(r.Context(), s.log)
		start := time.Now()
		ww := &respWriter{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(ww, r)
		elapsed := time.Since(start)
		metrics.ObserveHTTP(r.Method, strconv.Itoa(ww.status), float64(elapsed.Milliseconds()))
		l.Info().
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Int("status", ww.status).
			Dur("duration", elapsed).
			Msg("http_request")
	})
}

type respWriter struct {
	http.ResponseWriter
	status int
}

func (w *respWriter) WriteHeader(status int) {
	w.status = status
	w.ResponseWriter.WriteHeader(status)
}

func (s *Server) recoverer(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if rec := recover(); rec != nil {
				l := logging.With(r.Context(), s.log)
				l.Error().Interface("panic", rec).Msg("panic recovered")
				writeError(w, http.StatusInternalServerError, "internal error")
			}
		}()
		next.ServeHTTP(w, r)
	})
}

func (s *Server) requireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		header := r.Header.Get("Authorization")
		if !strings.HasPrefix(header, "Bearer ") {
			writeError(w, http.StatusUnauthorized, "missing or invalid authorization header")
			return
		}
		claims, err := s.authMgr.Parse(strings.TrimPrefix(header, "Bearer "))
		if err != nil {
			writeError(w, http.StatusUnauthorized, "invalid token")
			return
		}
		ctx := context.WithValue(r.Context(), claimsKey, claims)
		ctx = logging.WithUserID(ctx, claims.UserID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// rateLimitRedeem throttles redemption attempts per caller so a leaked code
// cannot be brute-forced or drained in a burst.
func (s *Server) rateLimitRedeem(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if s.limiter == nil {
			next.ServeHTTP(w, r)
			return
		}
		key := redis.RedeemAttemptKey(clientKey(r))
		ok, err := s.limiter.Allow(r.Context(), key,
			s.cfg.AccessCodes.RedeemRateLimit, s.cfg.AccessCodes.RedeemRateWindow)
		if err != nil {
			// Redis being down must not block redemptions.
			l := logging.With(r.Context(), s.log)
			l.Warn().Err(err).Msg("rate limiter unavailable")
			next.ServeHTTP(w, r)
			return
		}
		if !ok {
			writeError(w, http.StatusTooManyRequests, "too many attempts")
			return
		}
		next.ServeHTTP(w, r)
	})
}

func clientKey(r *http.Request) string {
	if claims := getClaims(r); claims != nil {
		return claims.UserID
	}
	host := r.RemoteAddr
	if i := strings.LastIndexByte(host, ':'); i > 0 {
		host = host[:i]
	}
	return host
}

func getClaims(r *http.Request) *Claims {
	if claims, ok := r.Context().Value(claimsKey).(*Claims); ok {
		return claims
	}
	return nil
}
