package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"communityserver/internal/adapter/repo"
	"communityserver/internal/gateway"
	"communityserver/internal/http/handlers"
	httpapi "communityserver/internal/http/httpapi"
	"communityserver/internal/infra"
	"communityserver/internal/infra/geoip"
	"communityserver/internal/middleware"
	"communityserver/internal/service"
)

func main() {
	_ = godotenv.Load()

	cfg, err := infra.LoadConfig()
	if err != nil {
		panic(err)
	}
	logger := infra.NewLogger(cfg.AppEnv)

	ctx := context.Background()
	dbpool, err := infra.NewDBPool(ctx, cfg)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to connect database")
	}
	defer dbpool.Close()

	sqlExec := infra.NewSQLRunner(dbpool, logger)

	registrationRepo := repo.NewRegistrationRepository(sqlExec)
	donationRepo := repo.NewDonationRepository(sqlExec)
	userRepo := repo.NewUserRepository(sqlExec)
	eventRepo := repo.NewEventRepository(sqlExec)
	statsRepo := repo.NewStatsRepository(sqlExec)

	orders := gateway.NewClient(cfg.GatewayBaseURL, cfg.GatewayKeyID, cfg.GatewayKeySecret, nil)

	registrations := service.NewRegistrationService(registrationRepo, eventRepo, logger)
	donations := service.NewDonationService(donationRepo, userRepo, orders, cfg.GatewayKeySecret, cfg.DonationCurrency, logger)
	events := service.NewEventService(eventRepo, logger)

	app := handlers.NewApp(registrations, donations, events, statsRepo, logger)

	var lookup middleware.CountryLookup
	resolver, err := geoip.NewResolver(cfg.GeoIPDBPath)
	if err != nil {
		logger.Warn().Err(err).Msg("geoip resolver unavailable, continuing without country lookups")
	} else if resolver != nil {
		lookup = resolver.CountryCode
	}

	router := httpapi.NewRouter(app, cfg, lookup)
	server := infra.NewHTTPServer(cfg, router)

	go func() {
		logger.Info().Msgf("API listening on :%s", cfg.Port)
		if err := server.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal().Err(err).Msg("http server failed")
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTPIdleTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error().Err(err).Msg("failed to shutdown server")
	}
	logger.Info().Msg("server stopped")
}
