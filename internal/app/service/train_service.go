package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/ijalalfrz/travel-search-service/internal/app/dto"
	"github.com/ijalalfrz/travel-search-service/internal/pkg/exception"
	"github.com/ijalalfrz/travel-search-service/internal/pkg/logger"
	"github.com/ijalalfrz/travel-search-service/internal/pkg/searchtask"
	"github.com/ijalalfrz/travel-search-service/internal/pkg/transportapi"
	"github.com/ijalalfrz/travel-search-service/internal/pkg/utils"
)

type DepartureBoardFetcher interface {
	LiveDepartures(ctx context.Context, stationCode string) (transportapi.Board, error)
}

type TrainService struct {
	Boards  DepartureBoardFetcher
	Tracker *searchtask.Tracker
}

func NewTrainService(boards DepartureBoardFetcher, tracker *searchtask.Tracker) *TrainService {
	return &TrainService{
		Boards:  boards,
		Tracker: tracker,
	}
}

// Departures godoc
// @Summary      Live departures for a station
// @Tags         Trains
// @Param        station  path      string  true  "3-letter station code"
// @Success      200      {object}  dto.TrainDeparturesView
// @Failure      400      {object}  dto.ErrorResponse
// @Failure      409      {object}  dto.ErrorResponse
// @Router       /api/v1/trains/{station}/departures [get]
func (s *TrainService) Departures(ctx context.Context, req dto.TrainDeparturesRequest) (dto.TrainDeparturesView, error) {
	if err := req.BindStation(req.StationCode); err != nil {
		return dto.TrainDeparturesView{}, fmt.Errorf("validate station: %w", err)
	}

	task := s.Tracker.Begin(ctx, searchtask.SessionKey(FeatureTrains, logger.SessionID(ctx)))
	defer task.Finish()

	view, err := s.departures(task.Context(), req.StationCode)
	if err != nil {
		return dto.TrainDeparturesView{}, err
	}

	if !task.Current() {
		slog.InfoContext(ctx, "discarding superseded departures lookup", slog.Int64("sequence", task.Sequence()))

		return dto.TrainDeparturesView{}, searchtask.ErrSearchSuperseded
	}

	view.Sequence = task.Sequence()

	return view, nil
}

func (s *TrainService) departures(ctx context.Context, code string) (dto.TrainDeparturesView, error) {
	board, err := s.Boards.LiveDepartures(ctx, code)

	switch {
	case err == nil:
		return dto.TrainDeparturesView{
			Source:      dto.SourceLive,
			StationCode: code,
			StationName: board.StationName,
			Departures:  departureRows(board.Departures.All),
		}, nil
	case errors.Is(err, transportapi.ErrInvalidStationCode):
		return dto.TrainDeparturesView{}, fmt.Errorf("live departures: %w", err)
	case errors.Is(err, transportapi.ErrMissingCredentials):
		return s.sample(code, "", dto.ErrorMessage(exception.KindConfiguration, transportapi.ErrMissingCredentials.Message)), nil
	case errors.Is(err, transportapi.ErrNoDepartures):
		return s.sample(code, board.StationName, dto.InfoMessage(exception.KindEmpty, msgTrainNoDepartures)), nil
	default:
		slog.WarnContext(ctx, "live departures unavailable, using sample trains", slog.Any("error", err))

		return s.sample(code, "", dto.ErrorMessage(exception.KindTransport, msgTrainFetchFailed)), nil
	}
}

func (s *TrainService) sample(code, stationName string, msg *dto.Message) dto.TrainDeparturesView {
	return dto.TrainDeparturesView{
		Source:      dto.SourceSample,
		Message:     msg,
		StationCode: code,
		StationName: stationName,
		Departures:  SampleDepartures(),
	}
}

func departureRows(departures []transportapi.Departure) []dto.DepartureRow {
	rows := make([]dto.DepartureRow, 0, len(departures))

	for _, d := range departures {
		rows = append(rows, dto.DepartureRow{
			Scheduled:   d.AimedDepartureTime,
			Expected:    utils.FirstNonEmpty(d.ExpectedDepartureTime, d.AimedDepartureTime),
			Destination: d.DestinationName,
			Platform:    utils.FirstNonEmpty(d.Platform, "-"),
			Status:      d.Status,
			Operator:    d.OperatorName,
		})
	}

	return rows
}
