package endpoints

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-kit/kit/endpoint"
	"github.com/ijalalfrz/travel-search-service/internal/app/dto"
)

type TrainService interface {
	Departures(ctx context.Context, req dto.TrainDeparturesRequest) (dto.TrainDeparturesView, error)
}

type TrainEndpoint struct {
	Departures endpoint.Endpoint
}

func MakeTrainEndpoint(service TrainService) TrainEndpoint {
	return TrainEndpoint{
		Departures: makeDeparturesEndpoint(service),
	}
}

func makeDeparturesEndpoint(service TrainService) endpoint.Endpoint {
	return func(ctx context.Context, req interface{}) (interface{}, error) {
		request, ok := req.(*dto.TrainDeparturesRequest)
		if !ok || request == nil {
			return nil, errors.New("invalid type")
		}

		view, err := service.Departures(ctx, *request)
		if err != nil {
			return nil, fmt.Errorf("train service: %w", err)
		}

		return view, nil
	}
}
