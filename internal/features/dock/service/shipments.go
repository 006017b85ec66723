package service

import (
	"context"
	"fmt"
	"time"

	"dockyard/internal/features/dock/domain"
	"dockyard/internal/features/dock/ports"
	"dockyard/internal/features/dock/state"
)

// ShipmentService runs shipment lifecycle commands. Each transition is checked
// against the loaded shipment before the REST call so an invalid step never
// reaches the backend.
type ShipmentService struct {
	api         ports.ShipmentAPI
	store       ports.StateStore
	broadcaster ports.Broadcaster
	loc         *time.Location
	now         func() time.Time
}

// NewShipmentService creates a new ShipmentService.
func NewShipmentService(api ports.ShipmentAPI, store ports.StateStore, b ports.Broadcaster, loc *time.Location) *ShipmentService {
	if loc == nil {
		loc = time.Local
	}
	return &ShipmentService{
		api:         api,
		store:       store,
		broadcaster: b,
		loc:         loc,
		now:         time.Now,
	}
}

func (s *ShipmentService) stamp() string {
	return s.now().In(s.loc).Format(domain.ClockStamp)
}

// prepare authorizes the caller and validates the transition on the loaded shipment.
// lifecycle steps are refused while the shipment is on hold.
func (s *ShipmentService) prepare(loadID string, admin, lifecycle bool, check func(domain.Shipment) (domain.Shipment, error)) (domain.User, domain.Shipment, error) {
	u, err := authorize(s.store, admin)
	if err != nil {
		return u, domain.Shipment{}, err
	}
	sh, ok := s.store.Snapshot().Shipment(loadID)
	if !ok {
		return u, sh, fmt.Errorf("%w: %s", domain.ErrUnknownShipment, loadID)
	}
	if lifecycle && sh.IsHold {
		return u, sh, fmt.Errorf("%w: %s", ErrShipmentOnHold, loadID)
	}
	if _, err := check(sh); err != nil {
		return u, sh, err
	}
	return u, sh, nil
}

// LoadAll fetches every shipment into the store, ordered by schedule time then dock.
func (s *ShipmentService) LoadAll(ctx context.Context) ([]domain.Shipment, error) {
	tok, err := token(s.store)
	if err != nil {
		return nil, err
	}
	shipments, err := s.api.AllShipments(ctx, tok)
	if err != nil {
		return nil, apiError(ctx, s.store, "load shipments", err)
	}
	domain.SortShipmentsBySchedule(shipments)
	return shipments, s.store.Dispatch(ctx, state.SetShipments{Shipments: shipments})
}

// LoadToday fetches the shipments for date (today when empty).
func (s *ShipmentService) LoadToday(ctx context.Context, date string) ([]domain.Shipment, error) {
	tok, err := token(s.store)
	if err != nil {
		return nil, err
	}
	if date == "" {
		date = s.now().In(s.loc).Format(isoDate)
	}
	shipments, err := s.api.TodaysShipments(ctx, tok, date)
	if err != nil {
		return nil, apiError(ctx, s.store, "load todays shipments", err)
	}
	domain.SortShipmentsBySchedule(shipments)
	return shipments, s.store.Dispatch(ctx, state.SetShipments{Shipments: shipments})
}

// Create registers a new shipment and puts the canonical record at the top of the list.
func (s *ShipmentService) Create(ctx context.Context, in domain.Shipment) (*domain.Shipment, error) {
	u, err := authorize(s.store, false)
	if err != nil {
		return nil, err
	}
	if in.LoadID == "" {
		return nil, fmt.Errorf("service: create shipment: load id is required")
	}
	created, err := s.api.CreateShipment(ctx, u.Token, in)
	if err != nil {
		return nil, apiError(ctx, s.store, "create shipment", err)
	}
	commit(ctx, s.store, s.broadcaster, state.AddShipment{Shipment: *created})
	return created, nil
}

// AssignTrailer records the trailer for a shipment; an empty arrival means now.
func (s *ShipmentService) AssignTrailer(ctx context.Context, loadID, trailerNum, arrivalTime string) error {
	if arrivalTime == "" {
		arrivalTime = s.stamp()
	}
	u, _, err := s.prepare(loadID, false, false, func(sh domain.Shipment) (domain.Shipment, error) {
		return sh.AssignTrailer(arrivalTime, trailerNum)
	})
	if err != nil {
		return err
	}
	if err := s.api.SetShipmentTrailer(ctx, u.Token, loadID, arrivalTime, trailerNum); err != nil {
		return apiError(ctx, s.store, "set shipment trailer", err)
	}
	commit(ctx, s.store, s.broadcaster, state.SetShipmentTrailer{LoadID: loadID, ArrivalTime: arrivalTime, TrailerNum: trailerNum})
	return nil
}

// AssignDoor records the door for a shipment.
func (s *ShipmentService) AssignDoor(ctx context.Context, loadID, door string) error {
	u, _, err := s.prepare(loadID, false, false, func(sh domain.Shipment) (domain.Shipment, error) {
		return sh.AssignDoor(door)
	})
	if err != nil {
		return err
	}
	if err := s.api.SetShipmentDoor(ctx, u.Token, loadID, door); err != nil {
		return apiError(ctx, s.store, "set shipment door", err)
	}
	commit(ctx, s.store, s.broadcaster, state.SetShipmentDoor{LoadID: loadID, Door: door})
	return nil
}

// StartPick assigns a picker. An already recorded pick start time is kept.
func (s *ShipmentService) StartPick(ctx context.Context, loadID, picker string) error {
	var start string
	u, _, err := s.prepare(loadID, false, true, func(sh domain.Shipment) (domain.Shipment, error) {
		start = sh.PickStartTime
		if start == "" {
			start = s.stamp()
		}
		return sh.StartPick(picker, start)
	})
	if err != nil {
		return err
	}
	if err := s.api.StartShipmentPick(ctx, u.Token, loadID, picker, start); err != nil {
		return apiError(ctx, s.store, "start pick", err)
	}
	commit(ctx, s.store, s.broadcaster, state.StartShipmentPick{LoadID: loadID, Picker: picker, StartTime: start})
	return nil
}

// FinishPick records the end of picking.
func (s *ShipmentService) FinishPick(ctx context.Context, loadID string) error {
	finish := s.stamp()
	u, _, err := s.prepare(loadID, false, true, func(sh domain.Shipment) (domain.Shipment, error) {
		return sh.FinishPick(finish)
	})
	if err != nil {
		return err
	}
	if err := s.api.FinishShipmentPick(ctx, u.Token, loadID, finish); err != nil {
		return apiError(ctx, s.store, "finish pick", err)
	}
	commit(ctx, s.store, s.broadcaster, state.FinishShipmentPick{LoadID: loadID, FinishTime: finish})
	return nil
}

// Verify records who checked the pick.
func (s *ShipmentService) Verify(ctx context.Context, loadID, verifiedBy string) error {
	u, _, err := s.prepare(loadID, false, true, func(sh domain.Shipment) (domain.Shipment, error) {
		return sh.Verify(verifiedBy)
	})
	if err != nil {
		return err
	}
	if err := s.api.VerifyShipment(ctx, u.Token, loadID, verifiedBy); err != nil {
		return apiError(ctx, s.store, "verify shipment", err)
	}
	commit(ctx, s.store, s.broadcaster, state.VerifyShipment{LoadID: loadID, VerifiedBy: verifiedBy})
	return nil
}

// BeginLoading starts loading a verified shipment whose trailer has arrived.
func (s *ShipmentService) BeginLoading(ctx context.Context, loadID string) error {
	u, _, err := s.prepare(loadID, false, true, domain.Shipment.BeginLoading)
	if err != nil {
		return err
	}
	if err := s.api.BeginShipmentLoading(ctx, u.Token, loadID); err != nil {
		return apiError(ctx, s.store, "begin loading", err)
	}
	commit(ctx, s.store, s.broadcaster, state.BeginShipmentLoading{LoadID: loadID})
	return nil
}

// Depart completes a loading shipment.
func (s *ShipmentService) Depart(ctx context.Context, loadID, seal string) error {
	departTime := s.stamp()
	u, _, err := s.prepare(loadID, false, true, func(sh domain.Shipment) (domain.Shipment, error) {
		return sh.Depart(departTime, seal)
	})
	if err != nil {
		return err
	}
	if err := s.api.DepartShipment(ctx, u.Token, loadID, departTime, seal); err != nil {
		return apiError(ctx, s.store, "depart shipment", err)
	}
	commit(ctx, s.store, s.broadcaster, state.DepartShipment{LoadID: loadID, DepartTime: departTime, Seal: seal})
	return nil
}

// ToggleHold flips the hold flag. Admin only.
func (s *ShipmentService) ToggleHold(ctx context.Context, loadID string) error {
	u, _, err := s.prepare(loadID, true, false, domain.Shipment.ToggleHold)
	if err != nil {
		return err
	}
	if err := s.api.HoldShipment(ctx, u.Token, loadID); err != nil {
		return apiError(ctx, s.store, "hold shipment", err)
	}
	commit(ctx, s.store, s.broadcaster, state.ToggleShipmentHold{LoadID: loadID})
	return nil
}

// Details fetches a shipment's item lines.
func (s *ShipmentService) Details(ctx context.Context, loadID string) ([]domain.ShipmentLine, error) {
	tok, err := token(s.store)
	if err != nil {
		return nil, err
	}
	lines, err := s.api.ShipmentDetails(ctx, tok, loadID)
	if err != nil {
		return nil, apiError(ctx, s.store, "shipment details", err)
	}
	return lines, nil
}

// SaveLines replaces a shipment's item lines.
func (s *ShipmentService) SaveLines(ctx context.Context, loadID string, lines []domain.ShipmentLine) error {
	u, err := authorize(s.store, false)
	if err != nil {
		return err
	}
	if err := s.api.SetShipmentLines(ctx, u.Token, loadID, lines); err != nil {
		return apiError(ctx, s.store, "save shipment lines", err)
	}
	return nil
}

// Select makes a loaded shipment the current one.
func (s *ShipmentService) Select(ctx context.Context, loadID string) error {
	sh, ok := s.store.Snapshot().Shipment(loadID)
	if !ok {
		return fmt.Errorf("%w: %s", domain.ErrUnknownShipment, loadID)
	}
	return s.store.Dispatch(ctx, state.SetCurrentShipment{Shipment: sh})
}
