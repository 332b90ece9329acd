package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"daycare-backend/internal/config"
	"daycare-backend/internal/infra/api/apiv1"
	pg "daycare-backend/internal/infra/db/postgres"
	"daycare-backend/internal/infra/logging"
	"daycare-backend/internal/infra/metrics"
	red "daycare-backend/internal/infra/redis"
	"daycare-backend/internal/usecase"
)

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	logger := logging.New(cfg.Log, cfg.Runtime.Dev)
	if cfg.Runtime.Dev {
		logger.Info().Msg("developer mode enabled")
	}
	metrics.MustRegister()

	// ---- Postgres ----
	pool, err := pg.NewPgxPool(ctx, cfg.Database.URL, cfg.Database.MaxConns)
	if err != nil {
		logger.Fatal().Err(err).Msg("postgres connect failed")
	}
	defer pool.Close()

	// ---- Redis ----
	redisClient, err := red.NewClient(ctx, &cfg.Redis)
	if err != nil {
		logger.Fatal().Err(err).Msg("redis connect failed")
	}
	defer redisClient.Close()
	rateLimiter := red.NewRateLimiter(redisClient)

	// ---- Repositories ----
	userRepo := pg.NewUserRepo(pool)
	daycareRepo := pg.NewDaycareRepo(pool)
	groupRepo := pg.NewDaycareGroupRepo(pool)
	childRepo := pg.NewChildRepo(pool)
	membershipRepo := pg.NewMembershipRepo(pool)
	codeRepo := pg.NewAccessCodeRepo(pool)
	attendanceRepo := pg.NewAttendanceRepo(pool)
	absenceRepo := pg.NewAbsenceRepo(pool)
	vacationRepo := pg.NewVacationRepo(pool)
	calendarRepo := pg.NewCalendarEventRepo(pool)
	txManager := pg.NewTxManager(pool)

	// ---- Use cases ----
	gen := usecase.NewCodeGenerator(nil)
	authUC := usecase.NewAuthUseCase(userRepo, logger)
	userUC := usecase.NewUserUseCase(userRepo, logger)
	codeUC := usecase.NewAccessCodeUseCase(
		codeRepo, membershipRepo, userRepo, daycareRepo,
		gen, txManager, cfg.AccessCodes.MaxGenerateAttempts, logger)
	daycareUC := usecase.NewDaycareUseCase(daycareRepo, groupRepo, membershipRepo, userRepo, logger)
	childUC := usecase.NewChildUseCase(childRepo, userRepo, logger)
	attendanceUC := usecase.NewAttendanceUseCase(attendanceRepo, childRepo, userRepo, logger)
	absenceUC := usecase.NewAbsenceUseCase(absenceRepo, childRepo, userRepo, logger)
	vacationUC := usecase.NewVacationUseCase(vacationRepo, childRepo, userRepo, logger)
	calendarUC := usecase.NewCalendarUseCase(calendarRepo, daycareRepo, userRepo, logger)

	// ---- HTTP ----
	authMgr := apiv1.NewAuthManager(cfg.Auth.JWTSecret, cfg.Auth.TokenTTL)
	server := apiv1.NewServer(
		authUC, userUC, codeUC, daycareUC, childUC,
		attendanceUC, absenceUC, vacationUC, calendarUC,
		authMgr, rateLimiter, cfg, logger)

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      server.Router(),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	go func() {
		logger.Info().Int("port", cfg.Server.Port).Msg("http server listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal().Err(err).Msg("http server failed")
		}
	}()

	// ---- Graceful shutdown ----
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh
	logger.Info().Msg("shutting down")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error().Err(err).Msg("shutdown error")
	}
}
