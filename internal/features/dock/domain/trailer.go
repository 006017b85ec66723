package domain

// Schedule is the yard schedule attached to a trailer.
type Schedule struct {
	ScheduleDate string `json:"ScheduleDate"`
	ScheduleTime string `json:"ScheduleTime"`
	ArrivalTime  string `json:"ArrivalTime"`
	CarrierCode  string `json:"CarrierCode"`
	ContactEmail string `json:"ContactEmail"`
	DoorNumber   string `json:"DoorNumber"`
	IsHot        bool   `json:"IsHot"`
	LastFreeDate string `json:"LastFreeDate"`
	LoadStatus   string `json:"LoadStatus"`
	RequestDate  string `json:"RequestDate"`
	IsStat6      bool   `json:"IsStat6"`
}

// Trailer is a trailer record as served by the dock API, keyed by TrailerID.
type Trailer struct {
	TrailerID string   `json:"TrailerID"`
	Schedule  Schedule `json:"Schedule"`
	// CiscoIDs lists the raw facility location codes the trailer serves.
	CiscoIDs []string `json:"CiscoIDs"`
}

// ScheduleRequest sets the schedule fields of a trailer. It is both the REST
// body of set_schedule and the payload of the schedule_trailer broadcast.
type ScheduleRequest struct {
	TrailerID    string `json:"TrailerID"`
	ScheduleDate string `json:"ScheduleDate"`
	RequestDate  string `json:"RequestDate"`
	CarrierCode  string `json:"CarrierCode"`
	ScheduleTime string `json:"ScheduleTime"`
	LastFreeDate string `json:"LastFreeDate"`
	ContactEmail string `json:"ContactEmail"`
	Door         string `json:"Door"`
}

// ApplySchedule returns a copy of t with the request's schedule fields applied.
func (t Trailer) ApplySchedule(req ScheduleRequest) Trailer {
	t.Schedule.ScheduleDate = req.ScheduleDate
	t.Schedule.RequestDate = req.RequestDate
	t.Schedule.CarrierCode = req.CarrierCode
	t.Schedule.ScheduleTime = req.ScheduleTime
	t.Schedule.LastFreeDate = req.LastFreeDate
	t.Schedule.ContactEmail = req.ContactEmail
	t.Schedule.DoorNumber = req.Door
	return t
}

// ToggleHot flips the hot flag.
func (t Trailer) ToggleHot() Trailer {
	t.Schedule.IsHot = !t.Schedule.IsHot
	return t
}

// Arrive records the arrival time.
func (t Trailer) Arrive(at string) Trailer {
	t.Schedule.ArrivalTime = at
	return t
}

// AssignDoor records the dock door.
func (t Trailer) AssignDoor(door string) Trailer {
	t.Schedule.DoorNumber = door
	return t
}
