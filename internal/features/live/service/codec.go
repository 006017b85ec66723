package service

import (
	"encoding/json"
	"fmt"
	"time"

	dockdomain "dockyard/internal/features/dock/domain"
	"dockyard/internal/features/dock/state"
	"dockyard/internal/features/live/domain"
)

// Codec translates between store actions and live envelopes.
type Codec struct {
	loc *time.Location
	now func() time.Time
}

// NewCodec creates a Codec. Arrival notices without a time are stamped with
// the local clock in loc.
func NewCodec(loc *time.Location) *Codec {
	if loc == nil {
		loc = time.Local
	}
	return &Codec{loc: loc, now: time.Now}
}

func wrap(t domain.MessageType, payload any) (domain.Envelope, error) {
	b, err := json.Marshal(payload)
	if err != nil {
		return domain.Envelope{}, fmt.Errorf("failed to encode %s payload: %w", t, err)
	}
	return domain.Envelope{Type: t, Data: domain.Data{Message: string(b)}}, nil
}

// Encode renders a confirmed change for peers.
func (c *Codec) Encode(a state.Action) (domain.Envelope, error) {
	switch a := a.(type) {
	case state.ToggleHotTrailer:
		return domain.Envelope{Type: domain.TypeHotTrailer, Data: domain.Data{Message: a.TrailerID}}, nil
	case state.SetTrailerArrival:
		return wrap(domain.TypeTrailerArrived, domain.TrailerArrival{TrailerID: a.TrailerID, ArrivalTime: a.ArrivalTime})
	case state.ScheduleTrailer:
		return wrap(domain.TypeScheduleTrailer, a.Request)
	case state.SetTrailerDoor:
		return wrap(domain.TypeSetDoor, domain.TrailerDoor{TrailerID: a.TrailerID, Door: a.Door})
	case state.AddShipment:
		return wrap(domain.TypeNewShipment, a.Shipment)
	case state.SetShipmentTrailer:
		return wrap(domain.TypeShipmentArrival, domain.ShipmentArrival{LoadID: a.LoadID, ArrivalTime: a.ArrivalTime, TrailerNum: a.TrailerNum})
	case state.SetShipmentDoor:
		return wrap(domain.TypeSetShipmentDoor, domain.ShipmentDoor{LoadID: a.LoadID, Door: a.Door})
	case state.StartShipmentPick:
		return wrap(domain.TypeStartPick, domain.PickStart{LoadID: a.LoadID, StartTime: a.StartTime, Picker: a.Picker})
	case state.FinishShipmentPick:
		return wrap(domain.TypeFinishPick, domain.PickFinish{LoadID: a.LoadID, FinishTime: a.FinishTime})
	case state.VerifyShipment:
		return wrap(domain.TypeVerifiedBy, domain.VerifiedBy{LoadID: a.LoadID, VerifiedBy: a.VerifiedBy})
	case state.BeginShipmentLoading:
		return wrap(domain.TypeStartLoading, domain.LoadRef{LoadID: a.LoadID})
	case state.DepartShipment:
		return wrap(domain.TypeDepart, domain.Departure{LoadID: a.LoadID, DepartTime: a.DepartTime, Seal: a.Seal})
	case state.ToggleShipmentHold:
		return wrap(domain.TypeHold, domain.LoadRef{LoadID: a.LoadID})
	default:
		return domain.Envelope{}, fmt.Errorf("%w: %s", domain.ErrNotBroadcastable, a.ActionName())
	}
}

func unwrap[T any](env domain.Envelope) (T, error) {
	var v T
	if err := json.Unmarshal([]byte(env.Data.Message), &v); err != nil {
		return v, fmt.Errorf("malformed %s payload: %w", env.Type, err)
	}
	return v, nil
}

// Decode turns a peer notification into the action that replays it locally.
func (c *Codec) Decode(env domain.Envelope) (state.Action, error) {
	switch env.Type.Canonical() {
	case domain.TypeHotTrailer:
		if env.Data.Message == "" {
			return nil, fmt.Errorf("malformed %s payload: empty trailer id", env.Type)
		}
		return state.ToggleHotTrailer{TrailerID: env.Data.Message}, nil

	case domain.TypeTrailerArrived:
		p, err := unwrap[domain.TrailerArrival](env)
		if err != nil {
			return nil, err
		}
		if p.ArrivalTime == "" {
			p.ArrivalTime = c.now().In(c.loc).Format(dockdomain.ClockStamp)
		}
		return state.SetTrailerArrival{TrailerID: p.TrailerID, ArrivalTime: p.ArrivalTime}, nil

	case domain.TypeScheduleTrailer:
		p, err := unwrap[dockdomain.ScheduleRequest](env)
		if err != nil {
			return nil, err
		}
		return state.ScheduleTrailer{Request: p}, nil

	case domain.TypeSetDoor:
		p, err := unwrap[domain.TrailerDoor](env)
		if err != nil {
			return nil, err
		}
		return state.SetTrailerDoor{TrailerID: p.TrailerID, Door: p.Door}, nil

	case domain.TypeNewShipment:
		p, err := unwrap[dockdomain.Shipment](env)
		if err != nil {
			return nil, err
		}
		if p.LoadID == "" {
			return nil, fmt.Errorf("malformed %s payload: missing LoadId", env.Type)
		}
		return state.AddShipment{Shipment: p}, nil

	case domain.TypeShipmentArrival:
		p, err := unwrap[domain.ShipmentArrival](env)
		if err != nil {
			return nil, err
		}
		return state.SetShipmentTrailer{LoadID: p.LoadID, ArrivalTime: p.ArrivalTime, TrailerNum: p.TrailerNum}, nil

	case domain.TypeSetShipmentDoor:
		p, err := unwrap[domain.ShipmentDoor](env)
		if err != nil {
			return nil, err
		}
		return state.SetShipmentDoor{LoadID: p.LoadID, Door: p.Door}, nil

	case domain.TypeStartPick:
		p, err := unwrap[domain.PickStart](env)
		if err != nil {
			return nil, err
		}
		return state.StartShipmentPick{LoadID: p.LoadID, Picker: p.Picker, StartTime: p.StartTime}, nil

	case domain.TypeFinishPick:
		p, err := unwrap[domain.PickFinish](env)
		if err != nil {
			return nil, err
		}
		return state.FinishShipmentPick{LoadID: p.LoadID, FinishTime: p.FinishTime}, nil

	case domain.TypeVerifiedBy:
		p, err := unwrap[domain.VerifiedBy](env)
		if err != nil {
			return nil, err
		}
		return state.VerifyShipment{LoadID: p.LoadID, VerifiedBy: p.VerifiedBy}, nil

	case domain.TypeStartLoading:
		p, err := unwrap[domain.LoadRef](env)
		if err != nil {
			return nil, err
		}
		return state.BeginShipmentLoading{LoadID: p.LoadID}, nil

	case domain.TypeDepart:
		p, err := unwrap[domain.Departure](env)
		if err != nil {
			return nil, err
		}
		return state.DepartShipment{LoadID: p.LoadID, DepartTime: p.DepartTime, Seal: p.Seal}, nil

	case domain.TypeHold:
		p, err := unwrap[domain.LoadRef](env)
		if err != nil {
			return nil, err
		}
		return state.ToggleShipmentHold{LoadID: p.LoadID}, nil

	default:
		return nil, fmt.Errorf("%w: %q", domain.ErrUnknownMessageType, env.Type)
	}
}
