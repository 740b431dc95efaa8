package endpoints

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/go-kit/kit/endpoint"
	"github.com/ijalalfrz/travel-search-service/internal/app/dto"
)

type HotelService interface {
	Search(ctx context.Context, req dto.HotelSearchRequest) (dto.HotelSearchView, error)
	Book(ctx context.Context, req dto.HotelBookingRequest) (json.RawMessage, error)
}

type HotelEndpoint struct {
	Search endpoint.Endpoint
	Book   endpoint.Endpoint
}

func MakeHotelEndpoint(service HotelService) HotelEndpoint {
	return HotelEndpoint{
		Search: makeHotelSearchEndpoint(service),
		Book:   makeHotelBookEndpoint(service),
	}
}

func makeHotelSearchEndpoint(service HotelService) endpoint.Endpoint {
	return func(ctx context.Context, req interface{}) (interface{}, error) {
		request, ok := req.(*dto.HotelSearchRequest)
		if !ok || request == nil {
			return nil, errors.New("invalid type")
		}

		view, err := service.Search(ctx, *request)
		if err != nil {
			return nil, fmt.Errorf("hotel service: %w", err)
		}

		return view, nil
	}
}

func makeHotelBookEndpoint(service HotelService) endpoint.Endpoint {
	return func(ctx context.Context, req interface{}) (interface{}, error) {
		request, ok := req.(*dto.HotelBookingRequest)
		if !ok || request == nil {
			return nil, errors.New("invalid type")
		}

		order, err := service.Book(ctx, *request)
		if err != nil {
			return nil, fmt.Errorf("hotel booking: %w", err)
		}

		return order, nil
	}
}
