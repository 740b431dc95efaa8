package transportapi

import (
	"net/http"

	"github.com/ijalalfrz/travel-search-service/internal/pkg/exception"
)

var ErrInvalidStationCode = exception.ApplicationError{
	Kind:       exception.KindValidation,
	StatusCode: http.StatusBadRequest,
	Message:    "station code must be exactly 3 characters",
}

var ErrMissingCredentials = exception.ApplicationError{
	Kind:       exception.KindConfiguration,
	StatusCode: http.StatusServiceUnavailable,
	Message:    "API credentials missing. Set TRANSPORT_API_APP_ID and TRANSPORT_API_APP_KEY",
}

var ErrFetchFailed = exception.ApplicationError{
	Kind:       exception.KindTransport,
	StatusCode: http.StatusBadGateway,
	Message:    "Failed to fetch train data",
}

var ErrNoDepartures = exception.ApplicationError{
	Kind:       exception.KindEmpty,
	StatusCode: http.StatusNotFound,
	Message:    "No train data found",
}
