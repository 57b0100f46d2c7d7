// Package trackclient is the tracking client for the scholarship
// application lookup service: it validates a candidate identifier, drives
// exactly one bounded lookup request per submission, and maps every
// failure onto a fixed user-facing message.
package trackclient

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"regexp"
	"time"
)

// DefaultTimeout is the hard deadline on a lookup request. Exceeding it
// aborts the in-flight request.
const DefaultTimeout = 10 * time.Second

// User-facing messages. These strings are the rendering contract and must
// not be reworded.
const (
	MsgIDRequired        = "Application ID is required"
	MsgIDNotNumber       = "Application ID must be a number"
	MsgTimeout           = "Request timed out. Please try again."
	MsgInvalidResponse   = "Invalid response from server"
	MsgConnectionError   = "Unable to connect to the database. Please try again later"
	MsgTableError        = "Database configuration error. Please contact support"
	MsgGenericFailure    = "Failed to fetch application details"
	MsgIncompleteData    = "Incomplete application data received"
	MsgNoInternet        = "No internet connection. Please check your network and try again"
	MsgServerUnreachable = "Unable to connect to the server. Please try again later"
)

var digitsOnly = regexp.MustCompile(`^\d+$`)

// ErrorKind distinguishes the failure taxonomy without parsing messages.
type ErrorKind int

const (
	KindValidation ErrorKind = iota
	KindTimeout
	KindTransport
	KindMalformedResponse
	KindNotFound
	KindStore
)

// LookupError carries a user-facing message plus the failure kind.
type LookupError struct {
	Kind    ErrorKind
	Message string
	Err     error
}

func (e *LookupError) Error() string { return e.Message }
func (e *LookupError) Unwrap() error { return e.Err }

// Validate checks the identifier shape before any network call. The field
// is required and must be one or more decimal digits; no range bound is
// applied, arbitrarily large digit strings pass.
func Validate(id string) error {
	if id == "" {
		return &LookupError{Kind: KindValidation, Message: MsgIDRequired}
	}
	if !digitsOnly.MatchString(id) {
		return &LookupError{Kind: KindValidation, Message: MsgIDNotNumber}
	}
	return nil
}

// Record is the normalized application record as rendered by the client.
// Timestamps stay textual here; a missing one displays as NotAvailable.
type Record struct {
	ID               int     `json:"id"`
	Name             string  `json:"name"`
	CourseName       string  `json:"course_name"`
	YearOfStudy      int     `json:"year_of_study"`
	CreatedAt        *string `json:"created_at"`
	UpdatedAt        *string `json:"updated_at"`
	StudentSalaried  bool    `json:"student_salaried"`
	FatherAlive      bool    `json:"father_alive"`
	FatherWorking    bool    `json:"father_working"`
	FatherOccupation *string `json:"father_occupation"`
	MotherAlive      bool    `json:"mother_alive"`
	MotherWorking    bool    `json:"mother_working"`
	MotherOccupation *string `json:"mother_occupation"`
	MarksheetUpload  *string `json:"marksheet_upload"`
	AadharNo         string  `json:"aadhar_no"`
	CapID            string  `json:"cap_id"`
}

// NotAvailable is rendered for absent optional fields.
const NotAvailable = "Not Available"

// DisplayCreatedAt returns the created timestamp or NotAvailable.
func (r *Record) DisplayCreatedAt() string { return displayText(r.CreatedAt) }

// DisplayUpdatedAt returns the updated timestamp or NotAvailable.
func (r *Record) DisplayUpdatedAt() string { return displayText(r.UpdatedAt) }

func displayText(s *string) string {
	if s == nil || *s == "" {
		return NotAvailable
	}
	return *s
}

// failureBody is the error shape the service emits.
type failureBody struct {
	Error   string `json:"error"`
	Details string `json:"details"`
	Code    string `json:"code"`
}

// Client performs lookups against the service.
type Client struct {
	baseURL string
	hc      *http.Client
	timeout time.Duration
}

// Option customizes a Client.
type Option func(*Client)

// WithTimeout overrides the per-request deadline.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) { c.timeout = d }
}

// WithHTTPClient substitutes the underlying transport.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.hc = hc }
}

// New creates a Client for the service at baseURL (e.g. "http://localhost:8080").
func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL: baseURL,
		hc:      &http.Client{},
		timeout: DefaultTimeout,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Track validates id and performs exactly one lookup request. On success it
// returns the record; every failure is a *LookupError whose Message is
// ready to render.
func (c *Client) Track(ctx context.Context, id string) (*Record, error) {
	if err := Validate(id); err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet,
		c.baseURL+"/api/track?id="+url.QueryEscape(id), nil)
	if err != nil {
		return nil, &LookupError{Kind: KindTransport, Message: err.Error(), Err: err}
	}

	resp, err := c.hc.Do(req)
	if err != nil {
		return nil, classifyTransportError(err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &LookupError{Kind: KindMalformedResponse, Message: MsgInvalidResponse, Err: err}
	}

	if resp.StatusCode >= http.StatusBadRequest {
		return nil, decodeFailure(body, id)
	}

	var rec Record
	if err := json.Unmarshal(body, &rec); err != nil {
		return nil, &LookupError{Kind: KindMalformedResponse, Message: MsgInvalidResponse, Err: err}
	}

	// The transport succeeded, but a body without id and name is no record.
	if rec.ID == 0 || rec.Name == "" {
		return nil, &LookupError{Kind: KindMalformedResponse, Message: MsgIncompleteData}
	}

	return &rec, nil
}

// decodeFailure maps a failure body onto the user message. An unparseable
// body is MsgInvalidResponse regardless of status.
func decodeFailure(body []byte, id string) *LookupError {
	var fb failureBody
	if err := json.Unmarshal(body, &fb); err != nil {
		return &LookupError{Kind: KindMalformedResponse, Message: MsgInvalidResponse, Err: err}
	}

	switch fb.Code {
	case "NOT_FOUND":
		return &LookupError{
			Kind:    KindNotFound,
			Message: fmt.Sprintf("Application with ID %s was not found", id),
		}
	case "CONNECTION_ERROR":
		return &LookupError{Kind: KindStore, Message: MsgConnectionError}
	case "TABLE_ERROR":
		return &LookupError{Kind: KindStore, Message: MsgTableError}
	}

	if fb.Error != "" {
		return &LookupError{Kind: KindStore, Message: fb.Error}
	}
	if fb.Details != "" {
		return &LookupError{Kind: KindStore, Message: fb.Details}
	}
	return &LookupError{Kind: KindStore, Message: MsgGenericFailure}
}

// classifyTransportError distinguishes the deadline abort, a host with no
// connectivity, and a reachable-but-refusing server; anything else
// surfaces its raw message.
func classifyTransportError(err error) *LookupError {
	if errors.Is(err, context.DeadlineExceeded) {
		return &LookupError{Kind: KindTimeout, Message: MsgTimeout, Err: err}
	}

	var dnsErr *net.DNSError
	if errors.As(err, &dnsErr) {
		return &LookupError{Kind: KindTransport, Message: MsgNoInternet, Err: err}
	}

	var opErr *net.OpError
	if errors.As(err, &opErr) {
		return &LookupError{Kind: KindTransport, Message: MsgServerUnreachable, Err: err}
	}

	return &LookupError{Kind: KindTransport, Message: err.Error(), Err: err}
}
