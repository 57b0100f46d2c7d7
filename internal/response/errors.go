package response

// ErrCode is a typed error code enum for consistent API error identification.
// The tracking client keys its user-facing messages off these values, so
// they are part of the wire contract.
type ErrCode string

const (
	// ─── Lookup ────────────────────────────────────────────────────────
	ErrNotFound ErrCode = "NOT_FOUND"

	// ─── Record store ──────────────────────────────────────────────────
	ErrConnection ErrCode = "CONNECTION_ERROR"
	ErrTable      ErrCode = "TABLE_ERROR"
	ErrDB         ErrCode = "DB_ERROR"

	// ─── Rate limiting ─────────────────────────────────────────────────
	ErrRateLimitExceeded ErrCode = "RATE_LIMIT_EXCEEDED"
)

// GetMessage returns the fixed human-readable message for a given error code.
func GetMessage(code ErrCode) string {
	switch code {
	case ErrNotFound:
		return "Application not found"
	case ErrConnection, ErrTable, ErrDB:
		return "Failed to fetch application details"
	case ErrRateLimitExceeded:
		return "Too many requests. Please try again later"
	default:
		return "An unexpected error occurred"
	}
}
