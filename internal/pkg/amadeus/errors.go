package amadeus

import (
	"net/http"

	"github.com/ijalalfrz/travel-search-service/internal/pkg/exception"
)

var ErrMissingCredentials = exception.ApplicationError{
	Kind:       exception.KindConfiguration,
	StatusCode: http.StatusServiceUnavailable,
	Message:    "amadeus client credentials are not configured",
}

var ErrTokenUnavailable = exception.ApplicationError{
	Kind:       exception.KindTransport,
	StatusCode: http.StatusBadGateway,
	Message:    "could not get access token",
}

var ErrUpstreamUnavailable = exception.ApplicationError{
	Kind:       exception.KindTransport,
	StatusCode: http.StatusBadGateway,
	Message:    "amadeus request failed",
}

var ErrBookingFailed = exception.ApplicationError{
	Kind:       exception.KindTransport,
	StatusCode: http.StatusBadGateway,
	Message:    "failed to create hotel booking",
}
