package trackclient

import (
	"context"
	"net"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func lookupErr(t *testing.T, err error) *LookupError {
	t.Helper()
	var le *LookupError
	require.ErrorAs(t, err, &le)
	return le
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		id      string
		wantMsg string
	}{
		{"empty", "", MsgIDRequired},
		{"letters", "abc", MsgIDNotNumber},
		{"mixed", "42x", MsgIDNotNumber},
		{"decimal", "4.2", MsgIDNotNumber},
		{"spaces", " 42", MsgIDNotNumber},
		{"plain digits", "42", ""},
		{"huge digit string", "123456789012345678901234567890", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Validate(tt.id)
			if tt.wantMsg == "" {
				assert.NoError(t, err)
				return
			}
			le := lookupErr(t, err)
			assert.Equal(t, KindValidation, le.Kind)
			assert.Equal(t, tt.wantMsg, le.Message)
		})
	}
}

func TestTrack_InvalidIDSendsNoRequest(t *testing.T) {
	var hits atomic.Int64
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
	}))
	defer srv.Close()

	c := New(srv.URL)
	for _, id := range []string{"", "abc", "1.5"} {
		_, err := c.Track(context.Background(), id)
		assert.Error(t, err)
	}
	assert.Zero(t, hits.Load())
}

func TestTrack_Success(t *testing.T) {
	var gotPath atomic.Value
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath.Store(r.URL.String())
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"id": 42, "name": "Aarav Sharma",
			"course_name": "B.Tech Computer Science", "year_of_study": 2,
			"created_at": "2024-03-15T05:00:00Z", "updated_at": null,
			"student_salaried": false, "father_alive": true,
			"father_working": true, "father_occupation": "Farmer",
			"mother_alive": true, "mother_working": false,
			"mother_occupation": null, "marksheet_upload": null,
			"aadhar_no": "482913776521", "cap_id": "CAP2024-0101"
		}`))
	}))
	defer srv.Close()

	rec, err := New(srv.URL).Track(context.Background(), "42")

	require.NoError(t, err)
	assert.Equal(t, "/api/track?id=42", gotPath.Load())
	assert.Equal(t, 42, rec.ID)
	assert.Equal(t, "Aarav Sharma", rec.Name)
	assert.Equal(t, "B.Tech Computer Science", rec.CourseName)
	assert.Equal(t, 2, rec.YearOfStudy)
	assert.True(t, rec.FatherAlive)
	assert.False(t, rec.StudentSalaried)
	assert.Equal(t, "2024-03-15T05:00:00Z", rec.DisplayCreatedAt())
	assert.Equal(t, NotAvailable, rec.DisplayUpdatedAt())
}

func TestTrack_IncompleteRecord(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"missing name", `{"id": 42}`},
		{"missing id", `{"name": "Aarav Sharma"}`},
		{"empty object", `{}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.Write([]byte(tt.body))
			}))
			defer srv.Close()

			_, err := New(srv.URL).Track(context.Background(), "42")

			le := lookupErr(t, err)
			assert.Equal(t, KindMalformedResponse, le.Kind)
			assert.Equal(t, MsgIncompleteData, le.Message)
		})
	}
}

func TestTrack_UnparseableBody(t *testing.T) {
	// Parse failures win over status interpretation.
	for _, status := range []int{http.StatusOK, http.StatusInternalServerError} {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(status)
			w.Write([]byte(`<html>gateway error</html>`))
		}))

		_, err := New(srv.URL).Track(context.Background(), "42")
		srv.Close()

		le := lookupErr(t, err)
		assert.Equal(t, KindMalformedResponse, le.Kind)
		assert.Equal(t, MsgInvalidResponse, le.Message)
	}
}

func TestTrack_FailureCodeMapping(t *testing.T) {
	tests := []struct {
		name     string
		status   int
		body     string
		wantKind ErrorKind
		wantMsg  string
	}{
		{
			"not found",
			http.StatusNotFound,
			`{"error": "Application not found", "code": "NOT_FOUND"}`,
			KindNotFound,
			"Application with ID 42 was not found",
		},
		{
			"connection error",
			http.StatusInternalServerError,
			`{"error": "Failed to fetch application details", "code": "CONNECTION_ERROR"}`,
			KindStore,
			MsgConnectionError,
		},
		{
			"table error",
			http.StatusInternalServerError,
			`{"error": "Failed to fetch application details", "code": "TABLE_ERROR"}`,
			KindStore,
			MsgTableError,
		},
		{
			"unknown code falls back to error field",
			http.StatusInternalServerError,
			`{"error": "Failed to fetch application details", "code": "DB_ERROR"}`,
			KindStore,
			"Failed to fetch application details",
		},
		{
			"no code, error field",
			http.StatusBadRequest,
			`{"error": "Application ID is required"}`,
			KindStore,
			"Application ID is required",
		},
		{
			"no code or error, details field",
			http.StatusInternalServerError,
			`{"details": "timeout acquiring connection"}`,
			KindStore,
			"timeout acquiring connection",
		},
		{
			"empty body object",
			http.StatusInternalServerError,
			`{}`,
			KindStore,
			MsgGenericFailure,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				w.Write([]byte(tt.body))
			}))
			defer srv.Close()

			_, err := New(srv.URL).Track(context.Background(), "42")

			le := lookupErr(t, err)
			assert.Equal(t, tt.wantKind, le.Kind)
			assert.Equal(t, tt.wantMsg, le.Message)
		})
	}
}

func TestTrack_Timeout(t *testing.T) {
	release := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-release
	}))
	defer srv.Close()
	defer close(release)

	start := time.Now()
	_, err := New(srv.URL, WithTimeout(50*time.Millisecond)).Track(context.Background(), "42")

	le := lookupErr(t, err)
	assert.Equal(t, KindTimeout, le.Kind)
	assert.Equal(t, MsgTimeout, le.Message)
	assert.Less(t, time.Since(start), 5*time.Second, "deadline must abort the in-flight request")
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

// dnsFailTransport simulates a host with no name resolution at all.
type dnsFailTransport struct{}

func (dnsFailTransport) RoundTrip(*http.Request) (*http.Response, error) {
	return nil, &net.DNSError{Err: "no such host", Name: "tracker.invalid", IsNotFound: true}
}

func TestTrack_NoConnectivity(t *testing.T) {
	c := New("http://tracker.invalid",
		WithHTTPClient(&http.Client{Transport: dnsFailTransport{}}))

	_, err := c.Track(context.Background(), "42")

	le := lookupErr(t, err)
	assert.Equal(t, KindTransport, le.Kind)
	assert.Equal(t, MsgNoInternet, le.Message)
}

func TestTrack_ServerUnreachable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := srv.URL
	srv.Close()

	_, err := New(url).Track(context.Background(), "42")

	le := lookupErr(t, err)
	assert.Equal(t, KindTransport, le.Kind)
	assert.Equal(t, MsgServerUnreachable, le.Message)
	assert.Error(t, le.Err)
}
