package domain

// RecentTrailer remembers a trailer this client scheduled recently.
type RecentTrailer struct {
	TrailerID string `json:"trailer_id"`
	Date      string `json:"date"`
	Time      string `json:"time"`
	Scac      string `json:"scac"`
}

// RecentFromSchedule derives the recent-trailers entry for a schedule request.
func RecentFromSchedule(req ScheduleRequest) RecentTrailer {
	return RecentTrailer{
		TrailerID: req.TrailerID,
		Date:      req.ScheduleDate,
		Time:      req.ScheduleTime,
		Scac:      req.CarrierCode,
	}
}
