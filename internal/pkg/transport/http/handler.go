package http

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"

	"github.com/go-chi/render"
	"github.com/go-kit/kit/endpoint"
	kithttp "github.com/go-kit/kit/transport/http"
	"github.com/ijalalfrz/travel-search-service/internal/pkg/exception"
)

var ErrInvalidBody = exception.ApplicationError{
	Kind:       exception.KindValidation,
	StatusCode: http.StatusBadRequest,
	Message:    "request body must be valid JSON",
}

// QueryBinder is implemented by requests read from the URL query.
type QueryBinder interface {
	BindQuery(values url.Values) error
}

// MakeHandlerFunc serves an endpoint with the shared error encoder.
func MakeHandlerFunc(
	ep endpoint.Endpoint,
	dec kithttp.DecodeRequestFunc,
	enc kithttp.EncodeResponseFunc,
	opts ...kithttp.ServerOption,
) http.HandlerFunc {
	opts = append([]kithttp.ServerOption{kithttp.ServerErrorEncoder(ErrorResponse)}, opts...)

	return kithttp.NewServer(ep, dec, enc, opts...).ServeHTTP
}

// DecodeRequest decodes a JSON body into *T and runs its render.Binder hook.
func DecodeRequest[T any](_ context.Context, r *http.Request) (interface{}, error) {
	var req T

	binder, ok := any(&req).(render.Binder)
	if !ok {
		return nil, fmt.Errorf("%T does not implement render.Binder", &req)
	}

	if err := render.Bind(r, binder); err != nil {
		var appErr exception.ApplicationError
		if errors.As(err, &appErr) {
			return nil, err
		}

		return nil, ErrInvalidBody.WithCause(err)
	}

	return &req, nil
}

// DecodeQuery binds the URL query into *T.
func DecodeQuery[T any](_ context.Context, r *http.Request) (interface{}, error) {
	var req T

	binder, ok := any(&req).(QueryBinder)
	if !ok {
		return nil, fmt.Errorf("%T does not implement QueryBinder", &req)
	}

	if err := binder.BindQuery(r.URL.Query()); err != nil {
		return nil, fmt.Errorf("error bind query: %w", err)
	}

	return &req, nil
}
