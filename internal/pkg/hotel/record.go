// Package hotel turns hotel search records into display rows.
//
// Two record shapes exist. Live records come from the offers API with the
// property nested under "hotel" and prices under "offers". Mock records are
// flat, with name, address, rating and price at the top level. Decode
// classifies a raw record; Normalize resolves every display field on its own,
// so a partially populated record still renders.
package hotel

import (
	"bytes"
	"encoding/json"
	"strconv"
)

// Record is either a LiveRecord or a MockRecord.
type Record interface {
	isRecord()
}

// LiveRecord is a record in the offers API shape. Flat holds any top-level
// fields that arrived alongside the nested ones.
type LiveRecord struct {
	Hotel  LiveHotel
	Offers []LiveOffer
	Flat   FlatFields
}

// MockRecord is a record in the flat sample-data shape.
type MockRecord struct {
	FlatFields
}

func (LiveRecord) isRecord() {}
func (MockRecord) isRecord() {}

type FlatFields struct {
	Name    string      `json:"name"`
	Address Address     `json:"address"`
	Rating  Rating      `json:"rating"`
	Price   *OfferPrice `json:"price,omitempty"`
}

type LiveHotel struct {
	HotelID  string  `json:"hotelId"`
	Name     string  `json:"name"`
	CityCode string  `json:"cityCode"`
	Address  Address `json:"address"`
	Rating   Rating  `json:"rating"`
}

type LiveOffer struct {
	ID           string     `json:"id"`
	CheckInDate  string     `json:"checkInDate"`
	CheckOutDate string     `json:"checkOutDate"`
	Price        OfferPrice `json:"price"`
}

type OfferPrice struct {
	Currency string `json:"currency"`
	Total    string `json:"total"`
}

type Address struct {
	Lines       []string `json:"lines"`
	CityName    string   `json:"cityName,omitempty"`
	CountryCode string   `json:"countryCode,omitempty"`
}

// Rating accepts a JSON string or number. Null or absent leaves it empty.
type Rating string

func (r *Rating) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*r = ""
		return nil
	}

	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*r = Rating(s)
		return nil
	}

	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	*r = Rating(n.String())

	return nil
}

// RatingFromFloat formats a numeric rating the way upstream numbers render.
func RatingFromFloat(v float64) Rating {
	return Rating(strconv.FormatFloat(v, 'f', -1, 64))
}

// Decode classifies raw as live when it carries a nested hotel object or an
// offers list, and as mock otherwise. Each field is decoded on its own: a
// field of the wrong type is left empty and the rest of the record survives.
// Input that is not a JSON object becomes an empty MockRecord.
func Decode(raw json.RawMessage) Record {
	top, ok := decodeObject(raw)
	if !ok {
		return MockRecord{}
	}

	flat := decodeFlat(top)
	nested, hasHotel := decodeObject(top["hotel"])
	offers := decodeOffers(top["offers"])

	if !hasHotel && len(offers) == 0 {
		return MockRecord{FlatFields: flat}
	}

	live := LiveRecord{Offers: offers, Flat: flat}
	if hasHotel {
		live.Hotel = LiveHotel{
			HotelID:  decodeString(nested["hotelId"]),
			Name:     decodeString(nested["name"]),
			CityCode: decodeString(nested["cityCode"]),
			Address:  decodeAddress(nested["address"]),
			Rating:   decodeRating(nested["rating"]),
		}
	}

	return live
}

// DecodeAll decodes every record, keeping order.
func DecodeAll(raws []json.RawMessage) []Record {
	records := make([]Record, len(raws))
	for i, raw := range raws {
		records[i] = Decode(raw)
	}

	return records
}

// decodeObject reports false for absent, null and non-object values.
func decodeObject(raw json.RawMessage) (map[string]json.RawMessage, bool) {
	if len(raw) == 0 {
		return nil, false
	}

	var fields map[string]json.RawMessage
	if err := json.Unmarshal(raw, &fields); err != nil || fields == nil {
		return nil, false
	}

	return fields, true
}

func decodeFlat(fields map[string]json.RawMessage) FlatFields {
	flat := FlatFields{
		Name:    decodeString(fields["name"]),
		Address: decodeAddress(fields["address"]),
		Rating:  decodeRating(fields["rating"]),
	}

	if price, ok := decodeObject(fields["price"]); ok {
		p := decodePrice(price)
		flat.Price = &p
	}

	return flat
}

func decodeOffers(raw json.RawMessage) []LiveOffer {
	if len(raw) == 0 {
		return nil
	}

	var items []json.RawMessage
	if err := json.Unmarshal(raw, &items); err != nil || len(items) == 0 {
		return nil
	}

	offers := make([]LiveOffer, len(items))
	for i, item := range items {
		fields, ok := decodeObject(item)
		if !ok {
			continue
		}

		offers[i] = LiveOffer{
			ID:           decodeString(fields["id"]),
			CheckInDate:  decodeString(fields["checkInDate"]),
			CheckOutDate: decodeString(fields["checkOutDate"]),
		}
		if price, ok := decodeObject(fields["price"]); ok {
			offers[i].Price = decodePrice(price)
		}
	}

	return offers
}

func decodePrice(fields map[string]json.RawMessage) OfferPrice {
	return OfferPrice{
		Currency: decodeString(fields["currency"]),
		Total:    decodeString(fields["total"]),
	}
}

func decodeAddress(raw json.RawMessage) Address {
	fields, ok := decodeObject(raw)
	if !ok {
		return Address{}
	}

	addr := Address{
		CityName:    decodeString(fields["cityName"]),
		CountryCode: decodeString(fields["countryCode"]),
	}

	var lines []json.RawMessage
	if len(fields["lines"]) > 0 && json.Unmarshal(fields["lines"], &lines) == nil {
		for _, l := range lines {
			if s := decodeString(l); s != "" {
				addr.Lines = append(addr.Lines, s)
			}
		}
	}

	return addr
}

func decodeString(raw json.RawMessage) string {
	var s string
	if len(raw) == 0 || json.Unmarshal(raw, &s) != nil {
		return ""
	}

	return s
}

func decodeRating(raw json.RawMessage) Rating {
	var r Rating
	if len(raw) == 0 || json.Unmarshal(raw, &r) != nil {
		return ""
	}

	return r
}
