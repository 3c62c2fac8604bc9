package http

import (
	"bufio"
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-post-gateway/internal/service"
	"github.com/MKhiriev/go-post-gateway/internal/utils"
	"github.com/MKhiriev/go-post-gateway/models"
)

// recordingHandler remembers every identity that reached it.
type recordingHandler struct {
	identities []models.Identity
}

func (rh *recordingHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	identity, _ := utils.IdentityFromContext(r.Context())
	rh.identities = append(rh.identities, identity)
	w.WriteHeader(http.StatusOK)
}

// tamper flips one character inside the signature segment.
func tamper(token string) string {
	i := strings.LastIndex(token, ".") + 5
	b := []byte(token)
	if b[i] == 'A' {
		b[i] = 'B'
	} else {
		b[i] = 'A'
	}
	return string(b)
}

func TestExtractCredential(t *testing.T) {
	tests := []struct {
		name    string
		header  string
		want    string
		wantErr error
	}{
		{name: "absent", header: "", wantErr: service.ErrMissingCredential},
		{name: "whitespace", header: "   ", wantErr: service.ErrMissingCredential},
		{name: "prefix only", header: "Bearer ", wantErr: service.ErrMissingCredential},
		{name: "scheme only", header: "Bearer", wantErr: service.ErrMissingCredential},
		{name: "prefix and spaces", header: "Bearer    ", wantErr: service.ErrMissingCredential},
		{name: "other scheme", header: "Basic dXNlcjpwYXNz", wantErr: service.ErrMalformedCredential},
		{name: "no space", header: "Bearerabc.def.ghi", wantErr: service.ErrMalformedCredential},
		{name: "short", header: "abc", wantErr: service.ErrMalformedCredential},
		{name: "bearer", header: "Bearer abc.def.ghi", want: "abc.def.ghi"},
		{name: "lower case scheme", header: "bearer abc.def.ghi", want: "abc.def.ghi"},
		{name: "surrounding spaces", header: "  Bearer abc.def.ghi  ", want: "abc.def.ghi"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := extractCredential(tt.header)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.ErrorIs(t, err, service.ErrAuth)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestAuth_TokenGate(t *testing.T) {
	valid := issueToken(t, "u123")

	expired, err := jwt.NewWithClaims(jwt.SigningMethodHS256, models.TokenClaims{
		UserID:           "u123",
		RegisteredClaims: jwt.RegisteredClaims{ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Minute))},
	}).SignedString([]byte(testSignKey))
	require.NoError(t, err)

	foreign, err := utils.GenerateJWTToken("", "u123", time.Minute, "another-secret")
	require.NoError(t, err)

	tests := []struct {
		name       string
		header     string
		setHeader  bool
		wantStatus int
		wantUserID string
	}{
		{name: "missing header", wantStatus: http.StatusUnauthorized},
		{name: "empty bearer", header: "Bearer ", setHeader: true, wantStatus: http.StatusUnauthorized},
		{name: "garbage token", header: "Bearer not-a-token", setHeader: true, wantStatus: http.StatusUnauthorized},
		{name: "wrong scheme", header: "Token " + valid, setHeader: true, wantStatus: http.StatusUnauthorized},
		{name: "wrong secret", header: "Bearer " + foreign.String(), setHeader: true, wantStatus: http.StatusUnauthorized},
		{name: "tampered signature", header: "Bearer " + tamper(valid), setHeader: true, wantStatus: http.StatusUnauthorized},
		{name: "expired", header: "Bearer " + expired, setHeader: true, wantStatus: http.StatusUnauthorized},
		{name: "valid", header: "Bearer " + valid, setHeader: true, wantStatus: http.StatusOK, wantUserID: "u123"},
		{name: "valid lower case scheme", header: "bearer " + valid, setHeader: true, wantStatus: http.StatusOK, wantUserID: "u123"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, _ := newGateHandler(t)
			next := &recordingHandler{}

			req := httptest.NewRequest(http.MethodGet, "/posts", nil)
			if tt.setHeader {
				req.Header.Set("Authorization", tt.header)
			}

			rec := serve(h.auth(next), req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantStatus == http.StatusOK {
				require.Len(t, next.identities, 1)
				assert.Equal(t, tt.wantUserID, next.identities[0].UserID)
				assert.Empty(t, rec.Body.String(), "the gate writes nothing on success")
				return
			}

			assert.Empty(t, next.identities, "next handler must not run")
			assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
			assert.JSONEq(t, `{"message":"auth error"}`, rec.Body.String())
		})
	}
}

func TestAuth_SameTokenSameIdentity(t *testing.T) {
	h, _ := newGateHandler(t)
	next := &recordingHandler{}
	gate := h.auth(next)
	token := issueToken(t, "u123")

	for range 2 {
		req := httptest.NewRequest(http.MethodGet, "/account", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		require.Equal(t, http.StatusOK, serve(gate, req).Code)
	}

	require.Len(t, next.identities, 2)
	assert.Equal(t, next.identities[0], next.identities[1])
}

func TestAuth_FailureBodiesAreIdentical(t *testing.T) {
	h, _ := newGateHandler(t)
	gate := h.auth(&recordingHandler{})

	missing := serve(gate, httptest.NewRequest(http.MethodGet, "/posts", nil))

	req := httptest.NewRequest(http.MethodGet, "/posts", nil)
	req.Header.Set("Authorization", "Bearer "+tamper(issueToken(t, "u1")))
	badSignature := serve(gate, req)

	assert.Equal(t, missing.Code, badSignature.Code)
	assert.Equal(t, missing.Body.String(), badSignature.Body.String())
}

func TestAuth_LogsOneWarningWithReason(t *testing.T) {
	h, logs := newGateHandler(t)
	handler := h.withTraceID(h.auth(&recordingHandler{}))

	req := httptest.NewRequest(http.MethodGet, "/posts", nil)
	req.Header.Set(traceIDHeader, "trace-1")
	serve(handler, req)

	var warnings []map[string]any
	scanner := bufio.NewScanner(bytes.NewReader(logs.Bytes()))
	for scanner.Scan() {
		var line map[string]any
		require.NoError(t, json.Unmarshal(scanner.Bytes(), &line))
		if line["level"] == "warn" {
			warnings = append(warnings, line)
		}
	}

	require.Len(t, warnings, 1)
	assert.Equal(t, "missing_credential", warnings[0]["reason"])
	assert.Equal(t, "trace-1", warnings[0]["trace_id"])
}

func TestIdentityFrom(t *testing.T) {
	_, err := identityFrom(httptest.NewRequest(http.MethodGet, "/", nil))
	assert.ErrorIs(t, err, errNoIdentity)

	identity, err := identityFrom(withIdentityOf(httptest.NewRequest(http.MethodGet, "/", nil), "u9"))
	require.NoError(t, err)
	assert.Equal(t, "u9", identity.UserID)
}
