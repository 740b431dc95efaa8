package dto

import (
	"github.com/ijalalfrz/travel-search-service/internal/pkg/transportapi"
)

// DefaultStationCode is London King's Cross.
const DefaultStationCode = "KGX"

type TrainDeparturesRequest struct {
	StationCode string `json:"station_code" validate:"len=3"`
}

// BindStation normalizes and validates a station code taken from the path.
func (s *TrainDeparturesRequest) BindStation(code string) error {
	s.StationCode = transportapi.NormalizeStationCode(code)
	if s.StationCode == "" {
		s.StationCode = DefaultStationCode
	}

	return s.Validate()
}

func (s *TrainDeparturesRequest) Validate() error {
	if err := ValidateSingleError(s); err != nil {
		return validationError(err.Error())
	}

	return nil
}

type DepartureRow struct {
	Scheduled   string `json:"scheduled"`
	Expected    string `json:"expected"`
	Destination string `json:"destination"`
	Platform    string `json:"platform"`
	Status      string `json:"status"`
	Operator    string `json:"operator,omitempty"`
}

type TrainDeparturesView struct {
	Sequence    int64          `json:"sequence,omitempty"`
	Source      Source         `json:"source"`
	Message     *Message       `json:"message,omitempty"`
	StationCode string         `json:"station_code"`
	StationName string         `json:"station_name,omitempty"`
	Departures  []DepartureRow `json:"departures"`
}
