package service

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	dock "dockyard/internal/features/dock/domain"
	"dockyard/internal/features/exports/domain"
	recon "dockyard/internal/features/reconciliation/domain"
)

const (
	sidDate    = "20060102"
	isoDate    = "2006-01-02"
	recentDate = "01-02-2006"

	scheduleHeader = "Container ID, Request Date, SCAC Code, Plant Code, Schedule Date, Schedule Time, Arrival Time, Door Number, Contact Email"
	recentHeader   = "Trailer, Scheduled Date, Scheduled Time, Carrier"
	gmapHeader     = "Part Number, Scale OH, Scale AL, Scale Missing, Scale Actual, GMAP, Dif, In Transit, Plant, Plant DOH"
	linesHeader    = "item,quantity,ip"
)

// Formatter renders records into the fixed flat-file layouts of the
// warehouse system. Fields are written as-is, without quoting.
type Formatter struct {
	loc *time.Location
	now func() time.Time
}

// NewFormatter creates a Formatter stamping dates in loc.
func NewFormatter(loc *time.Location) *Formatter {
	if loc == nil {
		loc = time.Local
	}
	return &Formatter{loc: loc, now: time.Now}
}

func (f *Formatter) stamp() string {
	return f.now().In(f.loc).Format(sidDate)
}

func num(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func sidLine(b *strings.Builder, trailerID, cisco, part string, qty int, date string) {
	loc := domain.RenderLocation(cisco)
	fmt.Fprintf(b, "%s%s,%s,%d,DAL,P, ,%s,%s,%s,1\n", trailerID, loc, part, qty, loc, date, trailerID)
}

// Load renders the SID export of one trailer's load details.
func (f *Formatter) Load(trailerID string, loads []dock.SidParts) string {
	var b strings.Builder
	date := f.stamp()
	for _, sid := range loads {
		for _, p := range sid.Parts {
			sidLine(&b, trailerID, sid.Sid.CiscoID, p.PartNumber, p.Quantity, date)
		}
	}
	return b.String()
}

// Daily renders the SID export of every trailer's flattened SID lines.
func (f *Formatter) Daily(trailers []dock.Sids) string {
	var b strings.Builder
	date := f.stamp()
	for _, t := range trailers {
		for _, s := range t.Sids {
			sidLine(&b, t.TrailerID, s.Cisco, s.Part, s.Quantity, date)
		}
	}
	return b.String()
}

// Recent renders the recent-trailers export. Dates that are not YYYY-MM-DD
// pass through unchanged.
func (f *Formatter) Recent(recent []dock.RecentTrailer) string {
	var b strings.Builder
	b.WriteString(recentHeader + "\n")
	for _, r := range recent {
		date := r.Date
		if d, err := time.Parse(isoDate, r.Date); err == nil {
			date = d.Format(recentDate)
		}
		fmt.Fprintf(&b, "%s,%s,%s,%s\n", r.TrailerID, date, r.Time, r.Scac)
	}
	return b.String()
}

// Schedule renders the today's-schedule export.
func (f *Formatter) Schedule(trailers []dock.Trailer) string {
	var b strings.Builder
	b.WriteString(scheduleHeader + "\n")
	for _, t := range trailers {
		s := t.Schedule
		fmt.Fprintf(&b, "%s,%s,%s,%s,%s,%s,%s,%s,%s\n",
			t.TrailerID, s.RequestDate, s.CarrierCode, domain.RenderLocations(t.CiscoIDs),
			s.ScheduleDate, s.ScheduleTime, s.ArrivalTime, s.DoorNumber, s.ContactEmail)
	}
	return b.String()
}

// GmapCompare renders the GMAP against scale comparison.
func (f *Formatter) GmapCompare(rows []recon.ItemCompare) string {
	var b strings.Builder
	b.WriteString(gmapHeader + "\n")
	for _, r := range rows {
		fmt.Fprintf(&b, "%s,%d,%d,%d,%d,%d,%d,%d,%s,%s\n",
			r.Part, r.ScaleOHQuantity, r.ScaleALQuantity, r.ScaleMissingQuantity, r.ScaleActualQuantity,
			r.ASLQuantity, r.Dif, r.InTransit, r.Plant, r.PlantDOH)
	}
	return b.String()
}

// ItemMaster renders item-master upload rows.
func (f *Formatter) ItemMaster(rows []recon.ItemMaster) string {
	var b strings.Builder
	for _, m := range rows {
		fmt.Fprintf(&b, "%s,%s,GM,,%s,,A,%s,%s,%s,1,1,1,1,1,%d,%s,%s,%s,%s,%d,%s,%s,%s,%s,\n",
			m.Part, m.Desc, m.Class, m.Location, m.Wide, m.Size,
			m.StdPk, num(m.PriLen), num(m.PriWid), num(m.PriHei), num(m.PriWt),
			m.PalQty, num(m.PalLen), num(m.PalWid), num(m.PalHei), num(m.PalWt))
	}
	return b.String()
}

// LinesTemplate returns the empty shipment-lines upload template.
func (f *Formatter) LinesTemplate() string {
	return linesHeader + "\n"
}
