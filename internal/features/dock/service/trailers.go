package service

import (
	"context"
	"fmt"
	"time"

	"dockyard/internal/features/dock/domain"
	"dockyard/internal/features/dock/ports"
	"dockyard/internal/features/dock/state"
)

const (
	isoDate     = "2006-01-02"
	requestDate = "1/2/2006"
)

// TrailerService runs trailer commands: REST call first, then the local store, then peers.
type TrailerService struct {
	api         ports.TrailerAPI
	store       ports.StateStore
	broadcaster ports.Broadcaster
	loc         *time.Location
	now         func() time.Time
}

// NewTrailerService creates a new TrailerService. Dates default to "today" in loc.
func NewTrailerService(api ports.TrailerAPI, store ports.StateStore, b ports.Broadcaster, loc *time.Location) *TrailerService {
	if loc == nil {
		loc = time.Local
	}
	return &TrailerService{
		api:         api,
		store:       store,
		broadcaster: b,
		loc:         loc,
		now:         time.Now,
	}
}

func (s *TrailerService) today() time.Time {
	return s.now().In(s.loc)
}

// LoadAll fetches every trailer into the store in server order.
func (s *TrailerService) LoadAll(ctx context.Context) ([]domain.Trailer, error) {
	tok, err := token(s.store)
	if err != nil {
		return nil, err
	}
	trailers, err := s.api.AllTrailers(ctx, tok)
	if err != nil {
		return nil, apiError(ctx, s.store, "load trailers", err)
	}
	return trailers, s.store.Dispatch(ctx, state.SetTrailers{Trailers: trailers})
}

// LoadToday fetches the trailers for date (today when empty), ordered by schedule time.
func (s *TrailerService) LoadToday(ctx context.Context, date string) ([]domain.Trailer, error) {
	tok, err := token(s.store)
	if err != nil {
		return nil, err
	}
	if date == "" {
		date = s.today().Format(isoDate)
	}
	trailers, err := s.api.TodaysTrailers(ctx, tok, date)
	if err != nil {
		return nil, apiError(ctx, s.store, "load todays trailers", err)
	}
	domain.SortTrailersBySchedule(trailers)
	return trailers, s.store.Dispatch(ctx, state.SetTrailers{Trailers: trailers})
}

// LoadRange fetches the trailers scheduled between from and to, ordered by schedule time.
func (s *TrailerService) LoadRange(ctx context.Context, from, to string) ([]domain.Trailer, error) {
	tok, err := token(s.store)
	if err != nil {
		return nil, err
	}
	trailers, err := s.api.TrailersInRange(ctx, tok, from, to)
	if err != nil {
		return nil, apiError(ctx, s.store, "load trailer range", err)
	}
	domain.SortTrailersBySchedule(trailers)
	return trailers, s.store.Dispatch(ctx, state.SetTrailers{Trailers: trailers})
}

// SetArrival records a trailer's arrival; an empty time means now.
func (s *TrailerService) SetArrival(ctx context.Context, trailerID, arrivalTime string) error {
	u, err := authorize(s.store, false)
	if err != nil {
		return err
	}
	if arrivalTime == "" {
		arrivalTime = s.today().Format(domain.ClockStamp)
	}
	if err := s.api.SetArrivalTime(ctx, u.Token, trailerID, arrivalTime); err != nil {
		return apiError(ctx, s.store, "set arrival", err)
	}
	commit(ctx, s.store, s.broadcaster, state.SetTrailerArrival{TrailerID: trailerID, ArrivalTime: arrivalTime})
	return nil
}

// ToggleHot flips a trailer's hot flag.
func (s *TrailerService) ToggleHot(ctx context.Context, trailerID string) error {
	u, err := authorize(s.store, false)
	if err != nil {
		return err
	}
	if err := s.api.ToggleHotTrailer(ctx, u.Token, trailerID); err != nil {
		return apiError(ctx, s.store, "toggle hot", err)
	}
	commit(ctx, s.store, s.broadcaster, state.ToggleHotTrailer{TrailerID: trailerID})
	return nil
}

// Schedule sets a trailer's schedule and remembers it among the recent trailers.
// A blank RequestDate is stamped with today's date.
func (s *TrailerService) Schedule(ctx context.Context, req domain.ScheduleRequest) error {
	u, err := authorize(s.store, false)
	if err != nil {
		return err
	}
	if req.TrailerID == "" {
		return fmt.Errorf("service: schedule: trailer id is required")
	}
	if req.RequestDate == "" {
		req.RequestDate = s.today().Format(requestDate)
	}
	if err := s.api.SetSchedule(ctx, u.Token, req); err != nil {
		return apiError(ctx, s.store, "schedule trailer", err)
	}

	commit(ctx, s.store, s.broadcaster, state.ScheduleTrailer{Request: req})
	_ = s.store.Dispatch(ctx, state.AddRecentTrailer{Trailer: domain.RecentFromSchedule(req)})
	return nil
}

// LoadDetails fetches the SIDs and parts loaded on a trailer.
func (s *TrailerService) LoadDetails(ctx context.Context, trailerID string) ([]domain.SidParts, error) {
	tok, err := token(s.store)
	if err != nil {
		return nil, err
	}
	loads, err := s.api.LoadInfo(ctx, tok, trailerID)
	if err != nil {
		return nil, apiError(ctx, s.store, "load details", err)
	}
	return loads, nil
}

// DailyLoads fetches the flattened SID lines for date (today when empty).
func (s *TrailerService) DailyLoads(ctx context.Context, date string) ([]domain.Sids, error) {
	tok, err := token(s.store)
	if err != nil {
		return nil, err
	}
	if date == "" {
		date = s.today().Format(isoDate)
	}
	loads, err := s.api.DailyLoads(ctx, tok, date)
	if err != nil {
		return nil, apiError(ctx, s.store, "daily loads", err)
	}
	return loads, nil
}

// Select makes a loaded trailer the current one.
func (s *TrailerService) Select(ctx context.Context, trailerID string) error {
	t, ok := s.store.Snapshot().Trailer(trailerID)
	if !ok {
		return fmt.Errorf("%w: %s", domain.ErrUnknownTrailer, trailerID)
	}
	return s.store.Dispatch(ctx, state.SetCurrentTrailer{Trailer: t})
}

// ClearRecent forgets every recent trailer.
func (s *TrailerService) ClearRecent(ctx context.Context) error {
	return s.store.Dispatch(ctx, state.ClearRecentTrailers{})
}
