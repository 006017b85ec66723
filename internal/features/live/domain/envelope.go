// Package domain defines the wire format of the live update feed.
package domain

import "errors"

var (
	// ErrUnknownMessageType is returned when an envelope names a type this client does not handle.
	ErrUnknownMessageType = errors.New("unknown message type")
	// ErrNotBroadcastable is returned for actions that are never sent to peers.
	ErrNotBroadcastable = errors.New("action is not broadcast to peers")
	// ErrNotConnected is returned when sending without an open connection.
	ErrNotConnected = errors.New("live channel not connected")
)

// MessageType is the envelope's "type" field.
type MessageType string

// Types sent and accepted.
const (
	TypeHotTrailer      MessageType = "hot_trailer"
	TypeScheduleTrailer MessageType = "schedule_trailer"
	TypeSetDoor         MessageType = "set_door"
	TypeTrailerArrived  MessageType = "trailer_arrived"
	TypeShipmentArrival MessageType = "shipment_trailer_arrival"
	TypeSetShipmentDoor MessageType = "set_shipment_door"
	TypeStartPick       MessageType = "start_shipment_pick"
	TypeFinishPick      MessageType = "finish_shipment_pick"
	TypeVerifiedBy      MessageType = "verified_by"
	TypeStartLoading    MessageType = "shipment_start_loading"
	TypeDepart          MessageType = "shipment_depart"
	TypeHold            MessageType = "shipment_hold"
	TypeNewShipment     MessageType = "new_shipment"
)

// aliases maps alternate inbound names onto the canonical type.
var aliases = map[MessageType]MessageType{
	"set_shipment_trailer": TypeShipmentArrival,
	"shipment_loading":     TypeStartLoading,
	"start_loading":        TypeStartLoading,
}

// Canonical resolves inbound aliases.
func (t MessageType) Canonical() MessageType {
	if c, ok := aliases[t]; ok {
		return c
	}
	return t
}

// Envelope is the outer JSON frame. Data.Message holds the payload as a JSON
// document encoded into a string, except for hot_trailer which carries the
// bare trailer id.
type Envelope struct {
	Type MessageType `json:"type"`
	Data Data        `json:"data"`
}

// Data wraps the encoded payload.
type Data struct {
	Message string `json:"message"`
}
