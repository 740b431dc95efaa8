package transportapi

// Board is the live.json response for one station.
type Board struct {
	Date        string     `json:"date"`
	TimeOfDay   string     `json:"time_of_day"`
	RequestTime string     `json:"request_time"`
	StationName string     `json:"station_name"`
	StationCode string     `json:"station_code"`
	Departures  Departures `json:"departures"`
}

type Departures struct {
	All []Departure `json:"all"`
}

type Departure struct {
	Mode                  string `json:"mode"`
	Service               string `json:"service"`
	TrainUID              string `json:"train_uid"`
	Platform              string `json:"platform"`
	OperatorName          string `json:"operator_name"`
	AimedDepartureTime    string `json:"aimed_departure_time"`
	ExpectedDepartureTime string `json:"expected_departure_time"`
	OriginName            string `json:"origin_name"`
	DestinationName       string `json:"destination_name"`
	Status                string `json:"status"`
}
