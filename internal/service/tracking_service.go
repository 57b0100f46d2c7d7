package service

import (
	"context"
	"errors"
	"net"
	"regexp"
	"strconv"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/rs/zerolog"
	"github.com/vidyasetu/scholartrack-backend/internal/model"
	"github.com/vidyasetu/scholartrack-backend/internal/repository"
	"github.com/vidyasetu/scholartrack-backend/internal/response"
)

var (
	// ErrMissingID signals a request with no identifier at all.
	ErrMissingID = errors.New("application id is required")
	// ErrInvalidID signals an identifier that is not a pure digit string.
	// The client enforces the same rule before submitting; this is the
	// server-side half of it.
	ErrInvalidID = errors.New("application id must be a number")
	// ErrApplicationNotFound signals a point query that matched zero rows.
	ErrApplicationNotFound = errors.New("application not found")
)

var digitsOnly = regexp.MustCompile(`^\d+$`)

// StoreError is any failure acquiring or using the record store connection,
// classified into the code the client understands.
type StoreError struct {
	Code response.ErrCode
	Err  error
}

func (e *StoreError) Error() string { return e.Err.Error() }
func (e *StoreError) Unwrap() error { return e.Err }

// TrackingService implements the application lookup contract: validate the
// identifier, issue exactly one point query, normalize the row.
type TrackingService struct {
	repo *repository.ApplicationRepository
	log  zerolog.Logger
}

// NewTrackingService creates a new TrackingService.
func NewTrackingService(repo *repository.ApplicationRepository, log zerolog.Logger) *TrackingService {
	return &TrackingService{
		repo: repo,
		log:  log.With().Str("component", "tracking_service").Logger(),
	}
}

// Track looks up the application identified by rawID and returns its
// normalized record. Failures are ErrMissingID, ErrInvalidID,
// ErrApplicationNotFound, or a classified *StoreError. The service never
// retries and never mutates the record.
func (s *TrackingService) Track(ctx context.Context, rawID string) (*model.Application, error) {
	if rawID == "" {
		return nil, ErrMissingID
	}
	if !digitsOnly.MatchString(rawID) {
		return nil, ErrInvalidID
	}

	// Digits-only already held, so the only parse failure is overflow.
	// No row can carry an id beyond the key range, so that is a miss,
	// not a store error.
	id, err := strconv.ParseInt(rawID, 10, 64)
	if err != nil {
		return nil, ErrApplicationNotFound
	}

	row, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrApplicationNotFound
		}
		code := classifyStoreError(err)
		s.log.Error().
			Err(err).
			Int64("application_id", id).
			Str("code", string(code)).
			Msg("Store lookup failed")
		return nil, &StoreError{Code: code, Err: err}
	}

	return row.Normalize(), nil
}

// classifyStoreError maps a store failure onto the error-code taxonomy:
// unreachable/refused connections and auth failures are CONNECTION_ERROR,
// a missing applications table is TABLE_ERROR, everything else DB_ERROR.
func classifyStoreError(err error) response.ErrCode {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch {
		case pgErr.Code == "42P01": // undefined_table
			return response.ErrTable
		case strings.HasPrefix(pgErr.Code, "08"): // connection_exception class
			return response.ErrConnection
		case pgErr.Code == "28000" || pgErr.Code == "28P01": // auth failures
			return response.ErrConnection
		}
		return response.ErrDB
	}

	var connErr *pgconn.ConnectError
	if errors.As(err, &connErr) {
		return response.ErrConnection
	}

	var netErr net.Error
	if errors.As(err, &netErr) {
		return response.ErrConnection
	}

	// The per-query deadline fired before the store answered.
	if errors.Is(err, context.DeadlineExceeded) {
		return response.ErrConnection
	}

	return response.ErrDB
}
