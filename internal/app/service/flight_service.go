package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/ijalalfrz/travel-search-service/internal/app/dto"
	"github.com/ijalalfrz/travel-search-service/internal/pkg/amadeus"
	"github.com/ijalalfrz/travel-search-service/internal/pkg/exception"
	"github.com/ijalalfrz/travel-search-service/internal/pkg/flight"
	"github.com/ijalalfrz/travel-search-service/internal/pkg/logger"
	"github.com/ijalalfrz/travel-search-service/internal/pkg/searchtask"
)

type TokenSource interface {
	Token(ctx context.Context) (string, error)
}

type FlightOfferSearcher interface {
	SearchOffers(ctx context.Context, token string, query amadeus.FlightQuery) ([]amadeus.FlightOffer, error)
}

type FlightService struct {
	Tokens       TokenSource
	Offers       FlightOfferSearcher
	Tracker      *searchtask.Tracker
	CurrencyCode string
	MaxResults   int
}

func NewFlightService(tokens TokenSource, offers FlightOfferSearcher,
	tracker *searchtask.Tracker, currencyCode string, maxResults int) *FlightService {
	return &FlightService{
		Tokens:       tokens,
		Offers:       offers,
		Tracker:      tracker,
		CurrencyCode: currencyCode,
		MaxResults:   maxResults,
	}
}

// Search godoc
// @Summary      Search flight offers
// @Tags         Flights
// @Param        request  body      dto.FlightSearchRequest  true  "Search request"
// @Success      200      {object}  dto.FlightSearchView
// @Failure      400      {object}  dto.ErrorResponse
// @Failure      409      {object}  dto.ErrorResponse
// @Router       /api/v1/flights/search [post]
func (s *FlightService) Search(ctx context.Context, req dto.FlightSearchRequest) (dto.FlightSearchView, error) {
	if err := req.Validate(); err != nil {
		return dto.FlightSearchView{}, fmt.Errorf("validate flight search: %w", err)
	}

	task := s.Tracker.Begin(ctx, searchtask.SessionKey(FeatureFlights, logger.SessionID(ctx)))
	defer task.Finish()

	view := s.search(task.Context(), req)

	if !task.Current() {
		slog.InfoContext(ctx, "discarding superseded flight search", slog.Int64("sequence", task.Sequence()))

		return dto.FlightSearchView{}, searchtask.ErrSearchSuperseded
	}

	view.Sequence = task.Sequence()

	return view, nil
}

func (s *FlightService) search(ctx context.Context, req dto.FlightSearchRequest) dto.FlightSearchView {
	token, err := s.Tokens.Token(ctx)
	if err != nil {
		slog.WarnContext(ctx, "flight search without token, using sample flights", slog.Any("error", err))

		if errors.Is(err, amadeus.ErrMissingCredentials) {
			return s.sample(ctx, dto.ErrorMessage(exception.KindConfiguration, msgAmadeusCredentialsMissing))
		}

		return s.sample(ctx, dto.ErrorMessage(exception.KindTransport, msgFlightTokenFailed))
	}

	offers, err := s.Offers.SearchOffers(ctx, token, amadeus.FlightQuery{
		OriginLocationCode:      req.Origin,
		DestinationLocationCode: req.Destination,
		DepartureDate:           req.DepartureDate,
		ReturnDate:              req.ReturnDate,
		Adults:                  req.Adults,
		NonStop:                 req.NonStop,
		CurrencyCode:            s.CurrencyCode,
		Max:                     s.MaxResults,
		TravelClass:             req.TravelClass,
	})
	if err != nil {
		slog.WarnContext(ctx, "flight offers unavailable, using sample flights", slog.Any("error", err))

		return s.sample(ctx, dto.ErrorMessage(exception.KindTransport, msgFlightFetchFailed))
	}

	rows := flight.ToRows(ctx, offers)
	if len(rows) == 0 {
		return dto.FlightSearchView{
			Source:  dto.SourceLive,
			Message: dto.InfoMessage(exception.KindEmpty, msgFlightNoOffers),
			Offers:  rows,
		}
	}

	return dto.FlightSearchView{
		Source: dto.SourceLive,
		Offers: flight.SortRows(rows, req.SortBy, req.SortOrder),
	}
}

func (s *FlightService) sample(ctx context.Context, msg *dto.Message) dto.FlightSearchView {
	return dto.FlightSearchView{
		Source:  dto.SourceSample,
		Message: msg,
		Offers:  SampleFlights(ctx),
	}
}
