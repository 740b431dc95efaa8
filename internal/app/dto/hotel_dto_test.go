//go:build unit

package dto

import (
	"encoding/json"
	"net/url"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHotelSearchRequest_BindQuery(t *testing.T) {
	_ = InitValidator()

	bindRequest := func(query string, want HotelSearchRequest, wantMsg string) func(t *testing.T) {
		return func(t *testing.T) {
			values, err := url.ParseQuery(query)
			require.NoError(t, err)

			var got HotelSearchRequest
			err = got.BindQuery(values)

			if wantMsg != "" {
				require.Error(t, err)
				assert.Equal(t, wantMsg, err.Error())
				return
			}

			require.NoError(t, err)
			if diff := cmp.Diff(want, got); diff != "" {
				t.Fatalf("BindQuery() mismatch (-want +got):\n%s", diff)
			}
		}
	}

	t.Run("full_query", bindRequest(
		"city=Paris&check_in_date=2025-03-01&check_out_date=2025-03-03&adults=2&room_quantity=1",
		HotelSearchRequest{City: "Paris", CheckInDate: "2025-03-01", CheckOutDate: "2025-03-03", Adults: 2, RoomQuantity: 1},
		"",
	))
	t.Run("empty_query_uses_defaults_later", bindRequest("", HotelSearchRequest{}, ""))
	t.Run("bad_date", bindRequest("check_in_date=01/03/2025", HotelSearchRequest{}, "check_in_date does not match the 2006-01-02 format"))
	t.Run("bad_number", bindRequest("adults=two", HotelSearchRequest{}, "adults must be a whole number"))
	t.Run("checkout_not_after_checkin", bindRequest(
		"check_in_date=2025-03-03&check_out_date=2025-03-03",
		HotelSearchRequest{},
		"check_out_date must be after check_in_date",
	))
}

func TestHotelBookingRequest_Validate(t *testing.T) {
	validateRequest := func(data string, wantErr bool) func(t *testing.T) {
		return func(t *testing.T) {
			req := HotelBookingRequest{Data: json.RawMessage(data)}
			err := req.Validate()
			assert.Equal(t, wantErr, err != nil, "Validate() error = %v", err)
		}
	}

	t.Run("object", validateRequest(`{"offerId":"X"}`, false))
	t.Run("empty", validateRequest(``, true))
	t.Run("array", validateRequest(`[1]`, true))
	t.Run("broken", validateRequest(`{"offerId":`, true))
}

func TestHotelBookingRequest_Payload(t *testing.T) {
	req := HotelBookingRequest{Data: json.RawMessage(`{"offerId":"X"}`)}

	got, err := req.Payload()
	require.NoError(t, err)
	assert.JSONEq(t, `{"data":{"offerId":"X"}}`, string(got))
}
