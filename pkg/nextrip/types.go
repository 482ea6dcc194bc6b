package nextrip

// RouteDescriptor is one entry of the routes listing
type RouteDescriptor struct {
	Description string `json:"Description" validate:"required"`
	ProviderID  string `json:"ProviderID"`
	RouteID     string `json:"Route" validate:"required"`
}

// DirectionDescriptor is one direction a route runs in
type DirectionDescriptor struct {
	Label string `json:"Text" validate:"required"`
	Value string `json:"Value" validate:"required"`
}

// StopDescriptor is one timepoint stop served by a route in a direction
type StopDescriptor struct {
	Label string `json:"Text" validate:"required"`
	Value string `json:"Value" validate:"required"`
}

// DepartureRecord is a single predicted or scheduled departure from a stop.
// Actual is a pointer so a missing field can be told apart from false.
type DepartureRecord struct {
	Actual        *bool  `json:"Actual" validate:"required"`
	DepartureText string `json:"DepartureText" validate:"required"`
	DepartureTime string `json:"DepartureTime" validate:"required"`

	RouteDirection string `json:"RouteDirection"`
	Route          string `json:"Route"`
	Description    string `json:"Description"`
	BlockNumber    int    `json:"BlockNumber"`
	Gate           string `json:"Gate"`
	Terminal       string `json:"Terminal"`

	VehicleHeading   int     `json:"VehicleHeading"`
	VehicleLatitude  float64 `json:"VehicleLatitude"`
	VehicleLongitude float64 `json:"VehicleLongitude"`
}

func (d DepartureRecord) IsActual() bool {
	return d.Actual != nil && *d.Actual
}
