package endpoints

// Endpoints groups every endpoint served over HTTP.
type Endpoints struct {
	FlightEndpoint FlightEndpoint
	HotelEndpoint  HotelEndpoint
	TrainEndpoint  TrainEndpoint
}
