package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/ijalalfrz/travel-search-service/internal/app/dto"
	"github.com/ijalalfrz/travel-search-service/internal/pkg/amadeus"
	"github.com/ijalalfrz/travel-search-service/internal/pkg/exception"
	"github.com/ijalalfrz/travel-search-service/internal/pkg/geo"
	"github.com/ijalalfrz/travel-search-service/internal/pkg/hotel"
	"github.com/ijalalfrz/travel-search-service/internal/pkg/logger"
	"github.com/ijalalfrz/travel-search-service/internal/pkg/searchtask"
	"github.com/ijalalfrz/travel-search-service/internal/pkg/utils"
)

const (
	DefaultCity     = "New York"
	DefaultStayDays = 2
)

type HotelOfferSearcher interface {
	SearchOffers(ctx context.Context, token string, query amadeus.HotelQuery) ([]json.RawMessage, error)
}

type HotelOrderCreator interface {
	CreateHotelOrder(ctx context.Context, token string, payload json.RawMessage) (json.RawMessage, error)
}

type HotelService struct {
	Tokens  TokenSource
	Offers  HotelOfferSearcher
	Orders  HotelOrderCreator
	Cities  *geo.Directory
	Tracker *searchtask.Tracker
	Now     func() time.Time
}

func NewHotelService(tokens TokenSource, offers HotelOfferSearcher, orders HotelOrderCreator,
	cities *geo.Directory, tracker *searchtask.Tracker) *HotelService {
	return &HotelService{
		Tokens:  tokens,
		Offers:  offers,
		Orders:  orders,
		Cities:  cities,
		Tracker: tracker,
		Now:     time.Now,
	}
}

// Search godoc
// @Summary      Search hotel offers in a supported city
// @Tags         Hotels
// @Param        city            query     string  false  "City name"
// @Param        check_in_date   query     string  false  "YYYY-MM-DD"
// @Param        check_out_date  query     string  false  "YYYY-MM-DD"
// @Success      200             {object}  dto.HotelSearchView
// @Failure      400             {object}  dto.ErrorResponse
// @Failure      409             {object}  dto.ErrorResponse
// @Router       /api/v1/hotels/search [get]
func (s *HotelService) Search(ctx context.Context, req dto.HotelSearchRequest) (dto.HotelSearchView, error) {
	req = s.withDefaults(req)
	if req.CheckOutDate <= req.CheckInDate {
		return dto.HotelSearchView{}, ErrInvalidStayDates
	}

	task := s.Tracker.Begin(ctx, searchtask.SessionKey(FeatureHotels, logger.SessionID(ctx)))
	defer task.Finish()

	view := s.search(task.Context(), req)

	if !task.Current() {
		slog.InfoContext(ctx, "discarding superseded hotel search", slog.Int64("sequence", task.Sequence()))

		return dto.HotelSearchView{}, searchtask.ErrSearchSuperseded
	}

	view.Sequence = task.Sequence()
	view.CheckInDate = req.CheckInDate
	view.CheckOutDate = req.CheckOutDate

	return view, nil
}

func (s *HotelService) withDefaults(req dto.HotelSearchRequest) dto.HotelSearchRequest {
	today := s.Now()

	if req.City == "" {
		req.City = DefaultCity
	}

	if req.CheckInDate == "" {
		req.CheckInDate = today.Format(utils.DateLayout)
	}

	if req.CheckOutDate == "" {
		checkIn, err := time.Parse(utils.DateLayout, req.CheckInDate)
		if err != nil {
			checkIn = today
		}

		req.CheckOutDate = checkIn.AddDate(0, 0, DefaultStayDays).Format(utils.DateLayout)
	}

	return req
}

func (s *HotelService) search(ctx context.Context, req dto.HotelSearchRequest) dto.HotelSearchView {
	city, ok := s.Cities.Lookup(req.City)
	if !ok {
		slog.InfoContext(ctx, "unsupported hotel city", slog.String("city", req.City))

		msg := fmt.Sprintf("City not supported. Try %s.", s.Cities.SupportedList())

		return s.sample(req.City, dto.ErrorMessage(exception.KindUnsupportedCity, msg))
	}

	token, err := s.Tokens.Token(ctx)
	if err != nil {
		slog.WarnContext(ctx, "hotel search without token, using mock hotels", slog.Any("error", err))

		if errors.Is(err, amadeus.ErrMissingCredentials) {
			return s.sample(city.Name, dto.ErrorMessage(exception.KindConfiguration, msgAmadeusCredentialsMissing))
		}

		return s.sample(city.Name, dto.ErrorMessage(exception.KindTransport, msgHotelTokenFailed))
	}

	raws, err := s.Offers.SearchOffers(ctx, token, amadeus.HotelQuery{
		Latitude:     city.Latitude,
		Longitude:    city.Longitude,
		CheckInDate:  req.CheckInDate,
		CheckOutDate: req.CheckOutDate,
		RoomQuantity: req.RoomQuantity,
		Adults:       req.Adults,
	})
	if err != nil {
		slog.WarnContext(ctx, "hotel offers unavailable, using mock hotels", slog.Any("error", err))

		return s.sample(city.Name, dto.ErrorMessage(exception.KindTransport, msgHotelFetchFailed))
	}

	if len(raws) == 0 {
		return s.sample(city.Name, dto.InfoMessage(exception.KindEmpty, msgHotelNoResults))
	}

	return dto.HotelSearchView{
		Source: dto.SourceLive,
		City:   city.Name,
		Hotels: hotel.NormalizeAll(hotel.DecodeAll(raws)),
	}
}

func (s *HotelService) sample(city string, msg *dto.Message) dto.HotelSearchView {
	return dto.HotelSearchView{
		Source:  dto.SourceSample,
		Message: msg,
		City:    city,
		Hotels:  SampleHotels(),
	}
}

// Book godoc
// @Summary      Create a hotel booking
// @Tags         Hotels
// @Param        request  body      dto.HotelBookingRequest  true  "Booking document"
// @Success      201      {object}  object
// @Failure      400      {object}  dto.ErrorResponse
// @Failure      502      {object}  dto.ErrorResponse
// @Failure      503      {object}  dto.ErrorResponse
// @Router       /api/v1/hotels/bookings [post]
func (s *HotelService) Book(ctx context.Context, req dto.HotelBookingRequest) (json.RawMessage, error) {
	payload, err := req.Payload()
	if err != nil {
		return nil, fmt.Errorf("encode booking payload: %w", err)
	}

	token, err := s.Tokens.Token(ctx)
	if err != nil {
		return nil, fmt.Errorf("booking token: %w", err)
	}

	order, err := s.Orders.CreateHotelOrder(ctx, token, payload)
	if err != nil {
		return nil, fmt.Errorf("create hotel order: %w", err)
	}

	slog.InfoContext(ctx, "hotel booking created")

	return order, nil
}
