package nextriptest

const RoutesJSON = `[
  {
    "Description": "METRO Blue Line",
    "ProviderID": "8",
    "Route": "901"
  },
  {
    "Description": "METRO Green Line",
    "ProviderID": "8",
    "Route": "902"
  },
  {
    "Description": "5 - Brklyn Center - Fremont - 26th Av - Chicago - MOA",
    "ProviderID": "8",
    "Route": "5"
  }
]`

const DirectionsJSON = `[
  {
    "Text": "NORTHBOUND",
    "Value": "4"
  },
  {
    "Text": "SOUTHBOUND",
    "Value": "1"
  }
]`

const StopsJSON = `[
  {
    "Text": "44th Ave  and Fremont Ave ",
    "Value": "44FM"
  },
  {
    "Text": "Osseo Rd and 47th Ave ",
    "Value": "47OS"
  },
  {
    "Text": "Brooklyn Center Transit Center",
    "Value": "BCTC"
  }
]`

const TimesActualJSON = `[
  {
    "Actual": true,
    "BlockNumber": 1078,
    "DepartureText": "16 Min",
    "DepartureTime": "\/Date(1538971260000-0500)\/",
    "Description": "Fremont Av\/Brklyn Ctr\/Transit Ctr",
    "Gate": "",
    "Route": "5",
    "RouteDirection": "SOUTHBOUND",
    "Terminal": "M",
    "VehicleHeading": 0,
    "VehicleLatitude": 44.95512,
    "VehicleLongitude": -93.26259
  },
  {
    "Actual": false,
    "BlockNumber": 1220,
    "DepartureText": "11:44",
    "DepartureTime": "\/Date(1538973840000-0500)\/",
    "Description": "Fremont Av\/Brklyn Ctr\/Transit Ctr",
    "Gate": "",
    "Route": "5",
    "RouteDirection": "SOUTHBOUND",
    "Terminal": "M",
    "VehicleHeading": 0,
    "VehicleLatitude": 44.85284,
    "VehicleLongitude": -93.23808
  }
]`

const TimesScheduledJSON = `[
  {
    "Actual": false,
    "BlockNumber": 1078,
    "DepartureText": "11:01",
    "DepartureTime": "\/Date(1538971260000-0500)\/",
    "Description": "Fremont Av\/Brklyn Ctr\/Transit Ctr",
    "Gate": "",
    "Route": "5",
    "RouteDirection": "SOUTHBOUND",
    "Terminal": "M",
    "VehicleHeading": 0,
    "VehicleLatitude": 44.95512,
    "VehicleLongitude": -93.26259
  },
  {
    "Actual": false,
    "BlockNumber": 1220,
    "DepartureText": "11:44",
    "DepartureTime": "\/Date(1538973840000-0500)\/",
    "Description": "Fremont Av\/Brklyn Ctr\/Transit Ctr",
    "Gate": "",
    "Route": "5",
    "RouteDirection": "SOUTHBOUND",
    "Terminal": "M",
    "VehicleHeading": 0,
    "VehicleLatitude": 44.85284,
    "VehicleLongitude": -93.23808
  }
]`

// ReferenceTime is 22 minutes before the first departure in TimesScheduledJSON
const ReferenceTime = "1538969940000"

// HappyPath serves route 5 southbound with a live departure at
// Brooklyn Center Transit Center and a scheduled one at 44th Ave
func HappyPath() Fixture {
	return Fixture{
		Routes: &Response{Body: RoutesJSON},
		Directions: map[string]Response{
			"5": {Body: DirectionsJSON},
		},
		Stops: map[string]Response{
			"5/1": {Body: StopsJSON},
			"5/4": {Body: StopsJSON},
		},
		Times: map[string]Response{
			"5/1/BCTC": {Body: TimesActualJSON},
			"5/1/44FM": {Body: TimesScheduledJSON},
		},
	}
}
