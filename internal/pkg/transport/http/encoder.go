package http

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/ijalalfrz/travel-search-service/internal/app/dto"
	"github.com/ijalalfrz/travel-search-service/internal/pkg/exception"
)

// ResponseWithBody is the common method to encode all response types to the client.
func ResponseWithBody(_ context.Context, w http.ResponseWriter, response interface{}) error {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")

	if err := json.NewEncoder(w).Encode(response); err != nil {
		return fmt.Errorf("encode response body: %w", err)
	}

	return nil
}

// CreatedWithBody writes a 201 with the response encoded as JSON.
func CreatedWithBody(_ context.Context, w http.ResponseWriter, response interface{}) error {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(http.StatusCreated)

	if err := json.NewEncoder(w).Encode(response); err != nil {
		return fmt.Errorf("encode response body: %w", err)
	}

	return nil
}

func NoContentResponse(_ context.Context, w http.ResponseWriter, _ interface{}) error {
	w.WriteHeader(http.StatusNoContent)

	return nil
}

// ErrorResponse encodes the error response to the client. Application errors
// carry their own status and kind; anything else is a logged 500.
func ErrorResponse(ctx context.Context, err error, respWriter http.ResponseWriter) {
	var (
		appErr exception.ApplicationError
		body   dto.ErrorResponse
		status int
	)

	if errors.As(err, &appErr) {
		status = appErr.StatusCode
		if status == 0 {
			status = http.StatusInternalServerError
		}

		body = dto.ErrorResponse{Error: appErr.Message, Kind: string(appErr.Kind)}
		if status >= http.StatusInternalServerError {
			slog.ErrorContext(ctx, appErr.Message, slog.Any("error", err))
		}
	} else {
		status = http.StatusInternalServerError
		body = dto.ErrorResponse{Error: err.Error()}

		slog.ErrorContext(ctx, err.Error(), slog.Any("error", err))
	}

	respWriter.Header().Set("Content-Type", "application/json; charset=utf-8")
	respWriter.WriteHeader(status)

	//nolint:errcheck,errchkjson
	json.NewEncoder(respWriter).Encode(body)
}
