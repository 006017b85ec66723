package domain

import (
	"cmp"
	"slices"
	"strconv"
	"strings"
)

// ClockStamp is the layout used for arrival, pick and departure stamps.
const ClockStamp = "15:04:05"

// ParseClock extracts hours and minutes from an "HH:MM" style schedule time.
// Missing or non-numeric parts count as zero, so blank times sort first.
func ParseClock(s string) (hours, minutes int) {
	parts := strings.Split(strings.TrimSpace(s), ":")
	hours = atoiOrZero(parts[0])
	if len(parts) > 1 {
		minutes = atoiOrZero(parts[1])
	}
	return hours, minutes
}

func atoiOrZero(s string) int {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0
	}
	return n
}

func compareClock(a, b string) int {
	ah, am := ParseClock(a)
	bh, bm := ParseClock(b)
	if c := cmp.Compare(ah, bh); c != 0 {
		return c
	}
	return cmp.Compare(am, bm)
}

// SortTrailersBySchedule orders trailers by schedule time, keeping server order on ties.
func SortTrailersBySchedule(trailers []Trailer) {
	slices.SortStableFunc(trailers, func(a, b Trailer) int {
		return compareClock(a.Schedule.ScheduleTime, b.Schedule.ScheduleTime)
	})
}

// SortShipmentsBySchedule orders shipments by schedule time, then by dock.
func SortShipmentsBySchedule(shipments []Shipment) {
	slices.SortStableFunc(shipments, func(a, b Shipment) int {
		if c := compareClock(a.ScheduleTime, b.ScheduleTime); c != 0 {
			return c
		}
		return cmp.Compare(a.Dock, b.Dock)
	})
}
