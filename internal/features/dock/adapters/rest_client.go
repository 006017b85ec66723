package adapters

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strings"

	"dockyard/internal/core/config"
	"dockyard/internal/core/httpclient"
	"dockyard/internal/core/metrics"
	"dockyard/internal/core/proxy"
	"dockyard/internal/features/dock/domain"
	"dockyard/internal/features/dock/ports"
)

// DockAPIClient implements the auth, trailer, shipment and upload ports against
// the dock backend's JSON REST API.
type DockAPIClient struct {
	// client is the HTTP client used for API requests.
	client *http.Client
	// config holds the backend endpoints.
	config config.DockAPIConfig
}

// NewDockAPIClient creates a new DockAPIClient.
func NewDockAPIClient(cfg config.DockAPIConfig, p proxy.Settings) *DockAPIClient {
	return &DockAPIClient{
		client: httpclient.NewClient(cfg.Timeout(), p),
		config: cfg,
	}
}

type credentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type loginResponse struct {
	Token        string  `json:"token"`
	RefreshToken *string `json:"refresh_token"`
	User         struct {
		Username string `json:"username"`
		Role     string `json:"role"`
	} `json:"user"`
}

// Login exchanges credentials for a session user.
func (a *DockAPIClient) Login(ctx context.Context, username, password string) (*domain.User, error) {
	var resp loginResponse
	if err := a.do(ctx, "login", http.MethodPost, a.authURL("/login"), "", credentials{username, password}, &resp); err != nil {
		return nil, err
	}

	return &domain.User{
		Username:     resp.User.Username,
		Role:         domain.Role(resp.User.Role),
		Token:        resp.Token,
		RefreshToken: resp.RefreshToken,
	}, nil
}

// Register creates a new account.
func (a *DockAPIClient) Register(ctx context.Context, username, password string) error {
	return a.do(ctx, "register", http.MethodPost, a.authURL("/register"), "", credentials{username, password}, nil)
}

type dateRequest struct {
	Date string `json:"date"`
}

type dateRangeRequest struct {
	Date1 string `json:"date1"`
	Date2 string `json:"date2"`
}

type trailerRequest struct {
	TrailerID string `json:"TrailerID"`
}

type arrivalRequest struct {
	TrailerID   string `json:"TrailerID"`
	ArrivalTime string `json:"ArrivalTime"`
}

type loadInfoRequest struct {
	Param string `json:"param"`
}

// AllTrailers fetches every scheduled trailer.
func (a *DockAPIClient) AllTrailers(ctx context.Context, token string) ([]domain.Trailer, error) {
	var out []domain.Trailer
	err := a.do(ctx, "schedule_trailer", http.MethodGet, a.apiURL("/schedule_trailer"), token, nil, &out)
	return out, err
}

// TodaysTrailers fetches the trailers scheduled on date (YYYY-MM-DD).
func (a *DockAPIClient) TodaysTrailers(ctx context.Context, token, date string) ([]domain.Trailer, error) {
	var out []domain.Trailer
	err := a.do(ctx, "todays_trucks", http.MethodPost, a.apiURL("/todays_trucks"), token, dateRequest{date}, &out)
	return out, err
}

// TrailersInRange fetches the trailers scheduled between two dates.
func (a *DockAPIClient) TrailersInRange(ctx context.Context, token, from, to string) ([]domain.Trailer, error) {
	var out []domain.Trailer
	err := a.do(ctx, "trucks_date_range", http.MethodPost, a.apiURL("/trucks_date_range"), token, dateRangeRequest{from, to}, &out)
	return out, err
}

// SetArrivalTime records a trailer's arrival.
func (a *DockAPIClient) SetArrivalTime(ctx context.Context, token, trailerID, arrivalTime string) error {
	return a.do(ctx, "set_arrivalTime", http.MethodPost, a.apiURL("/set_arrivalTime"), token, arrivalRequest{trailerID, arrivalTime}, nil)
}

// ToggleHotTrailer flips a trailer's hot flag server-side.
func (a *DockAPIClient) ToggleHotTrailer(ctx context.Context, token, trailerID string) error {
	return a.do(ctx, "hot_trailer", http.MethodPost, a.apiURL("/hot_trailer"), token, trailerRequest{trailerID}, nil)
}

// SetSchedule stores a trailer's schedule.
func (a *DockAPIClient) SetSchedule(ctx context.Context, token string, req domain.ScheduleRequest) error {
	return a.do(ctx, "set_schedule", http.MethodPost, a.apiURL("/set_schedule"), token, req, nil)
}

// LoadInfo fetches the SIDs and parts loaded on a trailer.
func (a *DockAPIClient) LoadInfo(ctx context.Context, token, trailerID string) ([]domain.SidParts, error) {
	var out []domain.SidParts
	err := a.do(ctx, "get_load_info", http.MethodPost, a.apiURL("/get_load_info"), token, loadInfoRequest{trailerID}, &out)
	return out, err
}

// DailyLoads fetches the flattened SID lines of every trailer on date.
func (a *DockAPIClient) DailyLoads(ctx context.Context, token, date string) ([]domain.Sids, error) {
	var out []domain.Sids
	err := a.do(ctx, "trailers", http.MethodPost, a.apiURL("/trailers"), token, dateRequest{date}, &out)
	return out, err
}

type loadRequest struct {
	LoadID string `json:"LoadId"`
}

type shipmentTrailerRequest struct {
	ArrivalTime string `json:"ArrivalTime"`
	LoadID      string `json:"LoadId"`
	TrailerNum  string `json:"TrailerNum"`
}

type shipmentDoorRequest struct {
	LoadID string `json:"LoadId"`
	Door   string `json:"Door"`
}

type pickStartRequest struct {
	StartTime string `json:"StartTime"`
	LoadID    string `json:"LoadId"`
	Picker    string `json:"Picker"`
}

type pickFinishRequest struct {
	LoadID     string `json:"LoadId"`
	FinishTime string `json:"FinishTime"`
}

type verificationRequest struct {
	LoadID     string `json:"LoadId"`
	VerifiedBy string `json:"VerifiedBy"`
}

type departRequest struct {
	LoadID     string `json:"LoadId"`
	DepartTime string `json:"DepartTime"`
	Seal       string `json:"Seal"`
}

type shipmentLinesRequest struct {
	LoadID string                `json:"LoadId"`
	Lines  []domain.ShipmentLine `json:"Lines"`
}

// AllShipments fetches every shipment.
func (a *DockAPIClient) AllShipments(ctx context.Context, token string) ([]domain.Shipment, error) {
	var out []domain.Shipment
	err := a.do(ctx, "get_shipments", http.MethodGet, a.apiURL("/get_shipments"), token, nil, &out)
	return out, err
}

// TodaysShipments fetches the shipments scheduled on date.
func (a *DockAPIClient) TodaysShipments(ctx context.Context, token, date string) ([]domain.Shipment, error) {
	var out []domain.Shipment
	err := a.do(ctx, "get_todays_shipments", http.MethodPost, a.apiURL("/get_todays_shipments"), token, dateRequest{date}, &out)
	return out, err
}

// CreateShipment creates a shipment and returns the canonical record.
func (a *DockAPIClient) CreateShipment(ctx context.Context, token string, s domain.Shipment) (*domain.Shipment, error) {
	var out domain.Shipment
	if err := a.do(ctx, "new_shipment", http.MethodPost, a.apiURL("/new_shipment"), token, s, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// SetShipmentTrailer assigns a trailer and arrival time to a shipment.
func (a *DockAPIClient) SetShipmentTrailer(ctx context.Context, token, loadID, arrivalTime, trailerNum string) error {
	body := shipmentTrailerRequest{ArrivalTime: arrivalTime, LoadID: loadID, TrailerNum: trailerNum}
	return a.do(ctx, "set_shipment_trailer", http.MethodPost, a.apiURL("/set_shipment_trailer"), token, body, nil)
}

// SetShipmentDoor assigns a door to a shipment.
func (a *DockAPIClient) SetShipmentDoor(ctx context.Context, token, loadID, door string) error {
	return a.do(ctx, "shipment_door", http.MethodPost, a.apiURL("/shipment_door"), token, shipmentDoorRequest{loadID, door}, nil)
}

// StartShipmentPick records the picker and pick start.
func (a *DockAPIClient) StartShipmentPick(ctx context.Context, token, loadID, picker, startTime string) error {
	body := pickStartRequest{StartTime: startTime, LoadID: loadID, Picker: picker}
	return a.do(ctx, "set_shipment_pick_start", http.MethodPost, a.apiURL("/set_shipment_pick_start"), token, body, nil)
}

// FinishShipmentPick records the pick finish.
func (a *DockAPIClient) FinishShipmentPick(ctx context.Context, token, loadID, finishTime string) error {
	return a.do(ctx, "shipment_pick_finish", http.MethodPost, a.apiURL("/shipment_pick_finish"), token, pickFinishRequest{loadID, finishTime}, nil)
}

// VerifyShipment records who verified the pick.
func (a *DockAPIClient) VerifyShipment(ctx context.Context, token, loadID, verifiedBy string) error {
	return a.do(ctx, "shipment_verification", http.MethodPost, a.apiURL("/shipment_verification"), token, verificationRequest{loadID, verifiedBy}, nil)
}

// BeginShipmentLoading marks a shipment as loading.
func (a *DockAPIClient) BeginShipmentLoading(ctx context.Context, token, loadID string) error {
	return a.do(ctx, "shipment_begin_loading", http.MethodPost, a.apiURL("/shipment_begin_loading"), token, loadRequest{loadID}, nil)
}

// DepartShipment records departure and seal.
func (a *DockAPIClient) DepartShipment(ctx context.Context, token, loadID, departTime, seal string) error {
	body := departRequest{LoadID: loadID, DepartTime: departTime, Seal: seal}
	return a.do(ctx, "set_shipment_departureTime", http.MethodPost, a.apiURL("/set_shipment_departureTime"), token, body, nil)
}

// HoldShipment toggles a shipment's hold flag server-side.
func (a *DockAPIClient) HoldShipment(ctx context.Context, token, loadID string) error {
	return a.do(ctx, "shipment_hold", http.MethodPost, a.apiURL("/shipment_hold"), token, loadRequest{loadID}, nil)
}

// ShipmentDetails fetches a shipment's item lines.
func (a *DockAPIClient) ShipmentDetails(ctx context.Context, token, loadID string) ([]domain.ShipmentLine, error) {
	var out []domain.ShipmentLine
	err := a.do(ctx, "get_shipment_details", http.MethodPost, a.apiURL("/get_shipment_details"), token, loadRequest{loadID}, &out)
	return out, err
}

// SetShipmentLines replaces a shipment's item lines.
func (a *DockAPIClient) SetShipmentLines(ctx context.Context, token, loadID string, lines []domain.ShipmentLine) error {
	return a.do(ctx, "shipment_lines", http.MethodPost, a.apiURL("/shipment_lines"), token, shipmentLinesRequest{loadID, lines}, nil)
}

// Upload forwards a CSV file to the ingestion service as multipart field "file".
func (a *DockAPIClient) Upload(ctx context.Context, token, filename string, r io.Reader) error {
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)

	part, err := mw.CreateFormFile("file", filename)
	if err != nil {
		return fmt.Errorf("upload: failed to create form file: %w", err)
	}
	if _, err := io.Copy(part, r); err != nil {
		return fmt.Errorf("upload: failed to copy file: %w", err)
	}
	if err := mw.Close(); err != nil {
		return fmt.Errorf("upload: failed to finalize form: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, strings.TrimRight(a.config.UploadURL, "/")+"/upload", &buf)
	if err != nil {
		return fmt.Errorf("upload: failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", mw.FormDataContentType())
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	return a.send(req, "upload", nil)
}

func (a *DockAPIClient) authURL(path string) string {
	return strings.TrimRight(a.config.AuthURL, "/") + path
}

func (a *DockAPIClient) apiURL(path string) string {
	return strings.TrimRight(a.config.BaseURL, "/") + "/api" + path
}

// do sends a JSON request and decodes a JSON response into out when out is non-nil.
func (a *DockAPIClient) do(ctx context.Context, op, method, url, token string, body, out any) error {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("%s: failed to encode request: %w", op, err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, reader)
	if err != nil {
		return fmt.Errorf("%s: failed to create request: %w", op, err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	return a.send(req, op, out)
}

func (a *DockAPIClient) send(req *http.Request, op string, out any) error {
	resp, err := a.client.Do(req)
	if err != nil {
		metrics.DockAPICalls.WithLabelValues(op, metrics.OutcomeError).Inc()
		return fmt.Errorf("%s: failed to execute request: %w", op, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden {
		metrics.DockAPICalls.WithLabelValues(op, metrics.OutcomeRejected).Inc()
		return fmt.Errorf("%s: %w (status %d)", op, ports.ErrUnauthorized, resp.StatusCode)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		metrics.DockAPICalls.WithLabelValues(op, metrics.OutcomeError).Inc()
		return fmt.Errorf("%s: dock API returned status: %d", op, resp.StatusCode)
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			metrics.DockAPICalls.WithLabelValues(op, metrics.OutcomeError).Inc()
			return fmt.Errorf("%s: failed to decode response: %w", op, err)
		}
	}

	metrics.DockAPICalls.WithLabelValues(op, metrics.OutcomeOK).Inc()
	return nil
}
