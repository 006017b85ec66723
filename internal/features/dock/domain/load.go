package domain

// Part is one part number and quantity loaded under a SID.
type Part struct {
	PartNumber string `json:"partNumber"`
	Quantity   int    `json:"quantity"`
}

// Sid identifies a shipment stop and the facility it is destined for.
type Sid struct {
	CiscoID string `json:"CiscoID"`
	ID      string `json:"id"`
}

// SidParts groups the parts loaded under one SID.
type SidParts struct {
	Sid   Sid    `json:"Sid"`
	Parts []Part `json:"Parts"`
}

// SidAndParts is one flattened SID line of the daily load feed.
type SidAndParts struct {
	Sid      string `json:"Sid"`
	Cisco    string `json:"Cisco"`
	Part     string `json:"Part"`
	Quantity int    `json:"Quantity"`
}

// Sids holds the flattened SID lines of one trailer.
type Sids struct {
	TrailerID string        `json:"TrailerID"`
	Sids      []SidAndParts `json:"Sids"`
}
