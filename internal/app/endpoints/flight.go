package endpoints

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-kit/kit/endpoint"
	"github.com/ijalalfrz/travel-search-service/internal/app/dto"
)

type FlightService interface {
	Search(ctx context.Context, req dto.FlightSearchRequest) (dto.FlightSearchView, error)
}

type FlightEndpoint struct {
	Search endpoint.Endpoint
}

func MakeFlightEndpoint(service FlightService) FlightEndpoint {
	return FlightEndpoint{
		Search: makeFlightSearchEndpoint(service),
	}
}

func makeFlightSearchEndpoint(service FlightService) endpoint.Endpoint {
	return func(ctx context.Context, req interface{}) (interface{}, error) {
		request, ok := req.(*dto.FlightSearchRequest)
		if !ok || request == nil {
			return nil, errors.New("invalid type")
		}

		view, err := service.Search(ctx, *request)
		if err != nil {
			return nil, fmt.Errorf("flight service: %w", err)
		}

		return view, nil
	}
}
