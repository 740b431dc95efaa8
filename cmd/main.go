package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/ijalalfrz/travel-search-service/internal/app/config"
	"github.com/ijalalfrz/travel-search-service/internal/app/dto"
	"github.com/ijalalfrz/travel-search-service/internal/app/endpoints"
	"github.com/ijalalfrz/travel-search-service/internal/app/service"
	"github.com/ijalalfrz/travel-search-service/internal/app/transport"
	"github.com/ijalalfrz/travel-search-service/internal/pkg/amadeus"
	"github.com/ijalalfrz/travel-search-service/internal/pkg/geo"
	"github.com/ijalalfrz/travel-search-service/internal/pkg/logger"
	"github.com/ijalalfrz/travel-search-service/internal/pkg/searchtask"
	"github.com/ijalalfrz/travel-search-service/internal/pkg/transportapi"
	"github.com/redis/go-redis/v9"
)

// @title           Travel Search Service API
// @version         0.0.1
// @description     flight, hotel and train search backed by Amadeus and TransportAPI
// @host      localhost:8080
// @BasePath  /
// @license.name Rizal Alfarizi
// @license.url https://github.com/ijalalfrz
func main() {

	cfg := config.MustInitConfig(".env")
	logger.InitStructuredLogger(cfg.LogLevel)

	slog.Debug("config loaded successfully", slog.Any("config", cfg))
	runApp(cfg)
}

func runApp(cfg config.Config) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	slog.InfoContext(ctx, "starting...", slog.String("log_level", string(cfg.LogLevel)))

	var waitGroup sync.WaitGroup
	// Starts the server in a go routine
	waitGroup.Add(1)
	go func() {
		defer waitGroup.Done()
		startHTTPServer(ctx, cfg)
	}()

	sigChannel := make(chan os.Signal, 1)
	signal.Notify(sigChannel, os.Interrupt, syscall.SIGTERM, syscall.SIGQUIT)

	select {
	case sig := <-sigChannel:
		cancel()
		slog.InfoContext(ctx, "received OS signal. Exiting...", slog.String("signal", sig.String()))
	case <-ctx.Done():
		slog.ErrorContext(ctx, "failed to start HTTP server")
	}

	waitGroup.Wait()
	slog.InfoContext(ctx, "All service closed...")
}

func startHTTPServer(ctx context.Context, cfg config.Config) {
	endpts := makeEndpoints(ctx, &cfg)
	router := transport.MakeHTTPRouter(&cfg, endpts)
	server := &http.Server{
		Handler:      router,
		Addr:         fmt.Sprintf(":%d", cfg.HTTP.Port),
		WriteTimeout: cfg.HTTP.Timeout,
		ReadTimeout:  cfg.HTTP.Timeout,
	}

	slog.Info("running HTTP server...", slog.Int("port", cfg.HTTP.Port))

	go func() {
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.ErrorContext(ctx, "failed to start HTTP server", slog.String("error", err.Error()))
		}
	}()

	<-ctx.Done()

	if err := server.Shutdown(ctx); err != nil {
		slog.ErrorContext(ctx, "failed to shutdown HTTP server", slog.String("error", err.Error()))
	}

	slog.InfoContext(ctx, "HTTP server shutdown gracefully")
}

func makeEndpoints(ctx context.Context, cfg *config.Config) endpoints.Endpoints {
	// init validator
	if err := dto.InitValidator(); err != nil {
		slog.ErrorContext(ctx, "failed to init validator", slog.String("error", err.Error()))
		panic(err)
	}

	cities, err := geo.Load(cfg.Search.CityCoordinatesFile)
	if err != nil {
		slog.ErrorContext(ctx, "failed to load city table", slog.String("error", err.Error()))
		panic(err)
	}

	tracker := searchtask.NewTracker(initSequenceStore(ctx, cfg))

	amadeusCfg := amadeus.ClientConfig{
		BaseURL:      cfg.Amadeus.BaseURL,
		ClientID:     cfg.Amadeus.ClientID,
		ClientSecret: cfg.Amadeus.ClientSecret,
		Timeout:      cfg.Amadeus.Timeout,
	}
	tokens := amadeus.NewTokenProvider(amadeusCfg)
	hotels := amadeus.NewHotelClient(amadeusCfg)

	flightService := service.NewFlightService(tokens, amadeus.NewFlightClient(amadeusCfg), tracker,
		cfg.Amadeus.CurrencyCode, cfg.Amadeus.MaxResults)
	hotelService := service.NewHotelService(tokens, hotels, hotels, cities, tracker)
	trainService := service.NewTrainService(transportapi.NewClient(transportapi.Config{
		BaseURL: cfg.TransportAPI.BaseURL,
		AppID:   cfg.TransportAPI.AppID,
		AppKey:  cfg.TransportAPI.AppKey,
		Timeout: cfg.TransportAPI.Timeout,
	}), tracker)

	// init service endpoint
	return endpoints.Endpoints{
		FlightEndpoint: endpoints.MakeFlightEndpoint(flightService),
		HotelEndpoint:  endpoints.MakeHotelEndpoint(hotelService),
		TrainEndpoint:  endpoints.MakeTrainEndpoint(trainService),
	}
}

// initSequenceStore uses process memory unless SEQUENCE_STORE=redis.
func initSequenceStore(ctx context.Context, cfg *config.Config) searchtask.SequenceStore {
	if cfg.Search.SequenceStore != config.SequenceStoreRedis {
		return searchtask.NewMemoryStore(cfg.Search.SequenceTTL)
	}

	redisClient := redis.NewClient(&redis.Options{
		Addr:         cfg.Redis.Addr,
		Password:     cfg.Redis.Password,
		DB:           cfg.Redis.DB,
		DialTimeout:  cfg.Redis.Timeout,
		ReadTimeout:  cfg.Redis.Timeout,
		WriteTimeout: cfg.Redis.Timeout,
	})

	if err := redisClient.Ping(ctx).Err(); err != nil {
		slog.WarnContext(ctx, "redis unreachable, searches run untracked until it recovers",
			slog.String("addr", cfg.Redis.Addr),
			slog.String("error", err.Error()))
	}

	return searchtask.NewRedisStore(redisClient, cfg.Search.SequenceTTL)
}
