package transport

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
	"github.com/ijalalfrz/travel-search-service/internal/app/config"
	"github.com/ijalalfrz/travel-search-service/internal/app/dto"
	"github.com/ijalalfrz/travel-search-service/internal/app/endpoints"
	httptransport "github.com/ijalalfrz/travel-search-service/internal/pkg/transport/http"
)

// MakeHTTPRouter builds the HTTP router with all the service endpoints.
func MakeHTTPRouter(
	cfg *config.Config,
	endpts endpoints.Endpoints,
) *chi.Mux {
	// Initialize Router
	router := chi.NewRouter()

	router.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})

	router.Route("/api/v1", func(router chi.Router) {
		router.Use(
			httptransport.RequestID(),
			httptransport.SessionID(),
			httptransport.RequestLogger(slog.Default()),
			httptransport.CORSMiddleware(cfg.HTTP.CORSAllowedOrigins),
			httptransport.Recoverer(slog.Default()),
			render.SetContentType(render.ContentTypeJSON),
		)

		router.Post("/flights/search", httptransport.MakeHandlerFunc(
			endpts.FlightEndpoint.Search,
			httptransport.DecodeRequest[dto.FlightSearchRequest],
			httptransport.ResponseWithBody,
		))

		router.Get("/hotels/search", httptransport.MakeHandlerFunc(
			endpts.HotelEndpoint.Search,
			httptransport.DecodeQuery[dto.HotelSearchRequest],
			httptransport.ResponseWithBody,
		))

		router.Post("/hotels/bookings", httptransport.MakeHandlerFunc(
			endpts.HotelEndpoint.Book,
			httptransport.DecodeRequest[dto.HotelBookingRequest],
			httptransport.CreatedWithBody,
		))

		departures := httptransport.MakeHandlerFunc(
			endpts.TrainEndpoint.Departures,
			decodeDeparturesRequest,
			httptransport.ResponseWithBody,
		)
		router.Get("/trains/departures", departures)
		router.Get("/trains/{station}/departures", departures)
	})

	return router
}

func decodeDeparturesRequest(_ context.Context, r *http.Request) (interface{}, error) {
	var req dto.TrainDeparturesRequest
	if err := req.BindStation(chi.URLParam(r, "station")); err != nil {
		return nil, err
	}

	return &req, nil
}
