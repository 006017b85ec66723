package domain

import "fmt"

// ShipmentStatus is the lifecycle stage of an outbound shipment.
type ShipmentStatus string

const (
	StatusNotStarted   ShipmentStatus = "NOT STARTED"
	StatusPicking      ShipmentStatus = "PICKING"
	StatusVerification ShipmentStatus = "VERIFICATION"
	StatusReadyToLoad  ShipmentStatus = "READY TO LOAD"
	StatusLoading      ShipmentStatus = "LOADING"
	StatusComplete     ShipmentStatus = "COMPLETE"
)

// Shipment is an outbound load keyed by LoadId.
type Shipment struct {
	ScheduleDate   string         `json:"ScheduleDate"`
	ScheduleTime   string         `json:"ScheduleTime"`
	ArrivalTime    string         `json:"ArrivalTime"`
	DepartTime     string         `json:"DepartTime"`
	Dock           string         `json:"Dock"`
	Door           string         `json:"Door"`
	LoadID         string         `json:"LoadId"`
	LoadNum        string         `json:"LoadNum"`
	Status         ShipmentStatus `json:"Status"`
	Picker         string         `json:"Picker"`
	PickStartTime  string         `json:"PickStartTime"`
	PickFinishTime string         `json:"PickFinishTime"`
	VerifiedBy     string         `json:"VerifiedBy"`
	TrailerNum     string         `json:"TrailerNum"`
	IsHold         bool           `json:"IsHold"`
	Seal           string         `json:"Seal"`
}

// ShipmentLine is one item line of a shipment's details.
type ShipmentLine struct {
	Item     string `json:"item"`
	Quantity int    `json:"quantity"`
	IP       string `json:"ip"`
}

// CurrentStatus treats a blank status as NOT STARTED; freshly created
// shipments carry no status until the backend assigns one.
func (s Shipment) CurrentStatus() ShipmentStatus {
	if s.Status == "" {
		return StatusNotStarted
	}
	return s.Status
}

// IsComplete reports whether the shipment reached its terminal state.
func (s Shipment) IsComplete() bool {
	return s.CurrentStatus() == StatusComplete
}

func (s Shipment) require(event string, from ShipmentStatus) error {
	if s.CurrentStatus() != from {
		return fmt.Errorf("%w: %s on %s shipment %s", ErrInvalidTransition, event, s.CurrentStatus(), s.LoadID)
	}
	return nil
}

func (s Shipment) requireOpen(event string) error {
	if s.IsComplete() {
		return fmt.Errorf("%w: %s on completed shipment %s", ErrInvalidTransition, event, s.LoadID)
	}
	return nil
}

// StartPick moves NOT STARTED to PICKING.
func (s Shipment) StartPick(picker, startTime string) (Shipment, error) {
	if err := s.require("start pick", StatusNotStarted); err != nil {
		return s, err
	}
	s.Status = StatusPicking
	s.Picker = picker
	s.PickStartTime = startTime
	return s, nil
}

// FinishPick moves PICKING to VERIFICATION.
func (s Shipment) FinishPick(finishTime string) (Shipment, error) {
	if err := s.require("finish pick", StatusPicking); err != nil {
		return s, err
	}
	s.Status = StatusVerification
	s.PickFinishTime = finishTime
	return s, nil
}

// Verify moves VERIFICATION to READY TO LOAD.
func (s Shipment) Verify(verifiedBy string) (Shipment, error) {
	if err := s.require("verify", StatusVerification); err != nil {
		return s, err
	}
	s.Status = StatusReadyToLoad
	s.VerifiedBy = verifiedBy
	return s, nil
}

// BeginLoading moves READY TO LOAD to LOADING once a trailer has arrived.
func (s Shipment) BeginLoading() (Shipment, error) {
	if err := s.require("begin loading", StatusReadyToLoad); err != nil {
		return s, err
	}
	if s.ArrivalTime == "" {
		return s, fmt.Errorf("%w: begin loading before trailer arrival on shipment %s", ErrInvalidTransition, s.LoadID)
	}
	s.Status = StatusLoading
	return s, nil
}

// Depart moves LOADING to COMPLETE.
func (s Shipment) Depart(departTime, seal string) (Shipment, error) {
	if err := s.require("depart", StatusLoading); err != nil {
		return s, err
	}
	s.Status = StatusComplete
	s.DepartTime = departTime
	s.Seal = seal
	return s, nil
}

// AssignTrailer records the trailer and its arrival without changing status.
func (s Shipment) AssignTrailer(arrivalTime, trailerNum string) (Shipment, error) {
	if err := s.requireOpen("set trailer"); err != nil {
		return s, err
	}
	s.ArrivalTime = arrivalTime
	s.TrailerNum = trailerNum
	return s, nil
}

// AssignDoor records the dock door without changing status.
func (s Shipment) AssignDoor(door string) (Shipment, error) {
	if err := s.requireOpen("set door"); err != nil {
		return s, err
	}
	s.Door = door
	return s, nil
}

// ToggleHold flips the hold flag without changing status.
func (s Shipment) ToggleHold() (Shipment, error) {
	if err := s.requireOpen("hold"); err != nil {
		return s, err
	}
	s.IsHold = !s.IsHold
	return s, nil
}
