package domain

// TrailerArrival is the payload of trailer_arrived.
type TrailerArrival struct {
	TrailerID   string `json:"TrailerID"`
	ArrivalTime string `json:"ArrivalTime"`
}

// TrailerDoor is the payload of set_door.
type TrailerDoor struct {
	TrailerID string `json:"TrailerID"`
	Door      string `json:"Door"`
}

// ShipmentArrival is the payload of shipment_trailer_arrival.
type ShipmentArrival struct {
	LoadID      string `json:"LoadId"`
	ArrivalTime string `json:"ArrivalTime"`
	TrailerNum  string `json:"TrailerNum"`
}

// ShipmentDoor is the payload of set_shipment_door.
type ShipmentDoor struct {
	LoadID string `json:"LoadId"`
	Door   string `json:"Door"`
}

// PickStart is the payload of start_shipment_pick.
type PickStart struct {
	LoadID    string `json:"LoadId"`
	StartTime string `json:"StartTime"`
	Picker    string `json:"Picker"`
}

// PickFinish is the payload of finish_shipment_pick.
type PickFinish struct {
	LoadID     string `json:"LoadId"`
	FinishTime string `json:"FinishTime"`
}

// VerifiedBy is the payload of verified_by.
type VerifiedBy struct {
	LoadID     string `json:"LoadId"`
	VerifiedBy string `json:"VerifiedBy"`
}

// LoadRef is the payload of shipment_start_loading and shipment_hold.
type LoadRef struct {
	LoadID string `json:"LoadId"`
}

// Departure is the payload of shipment_depart.
type Departure struct {
	LoadID     string `json:"LoadId"`
	DepartTime string `json:"DepartTime"`
	Seal       string `json:"Seal"`
}
