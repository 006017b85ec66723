package domain

import "fmt"

// View names the screen the client is showing.
type View string

const (
	ViewLanding           View = "landing"
	ViewLoadDetails       View = "load_details"
	ViewTodaysSchedule    View = "todays_schedule"
	ViewEditTrailer       View = "edit_trailer"
	ViewTrailersDateRange View = "trailers_date_range"
	ViewRecent            View = "recent"
	ViewShipments         View = "shipments"
	ViewTodaysShipments   View = "todays_shipments"
	ViewSetPicker         View = "set_picker"
	ViewVerifiedBy        View = "verified_by"
	ViewDepart            View = "depart"
	ViewSetTrailer        View = "set_trailer"
	ViewSetDoor           View = "set_door"
	ViewShipmentDetails   View = "shipment_details"
	ViewNewShipment       View = "new_shipment"
	ViewUpload            View = "upload"
	ViewGmap              View = "gmap"
	ViewFixParts          View = "fix_parts"
)

var knownViews = map[View]struct{}{
	ViewLanding: {}, ViewLoadDetails: {}, ViewTodaysSchedule: {}, ViewEditTrailer: {},
	ViewTrailersDateRange: {}, ViewRecent: {}, ViewShipments: {}, ViewTodaysShipments: {},
	ViewSetPicker: {}, ViewVerifiedBy: {}, ViewDepart: {}, ViewSetTrailer: {},
	ViewSetDoor: {}, ViewShipmentDetails: {}, ViewNewShipment: {}, ViewUpload: {},
	ViewGmap: {}, ViewFixParts: {},
}

// ParseView validates a view name.
func ParseView(s string) (View, error) {
	v := View(s)
	if _, ok := knownViews[v]; !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownView, s)
	}
	return v, nil
}
