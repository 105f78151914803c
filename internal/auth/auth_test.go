package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestManager_IssueVerify(t *testing.T) {
	m := NewManager("test-secret", time.Hour)

	claims := Claims{UserID: uuid.New(), RoleID: uuid.New()}

	token, err := m.Issue(claims)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	got, err := m.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, claims.UserID, got.UserID)
	assert.Equal(t, claims.RoleID, got.RoleID)
}

func TestManager_VerifyExpired(t *testing.T) {
	m := NewManager("test-secret", time.Hour)

	issued := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	m.now = func() time.Time { return issued }

	token, err := m.Issue(Claims{UserID: uuid.New(), RoleID: uuid.New()})
	require.NoError(t, err)

	m.now = func() time.Time { return issued.Add(2 * time.Hour) }

	_, err = m.Verify(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestManager_VerifyWrongSecret(t *testing.T) {
	token, err := NewManager("secret-a", time.Hour).Issue(Claims{UserID: uuid.New(), RoleID: uuid.New()})
	require.NoError(t, err)

	_, err = NewManager("secret-b", time.Hour).Verify(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestMiddleware(t *testing.T) {
	m := NewManager("test-secret", time.Hour)
	userID := uuid.New()

	token, err := m.Issue(Claims{UserID: userID, RoleID: uuid.New()})
	require.NoError(t, err)

	var gotClaims *Claims

	handler := m.Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		claims, ok := FromContext(r.Context())
		require.True(t, ok)

		gotClaims = claims
	}))

	type testCase struct {
		name       string
		header     string
		wantStatus int
	}

	tests := []testCase{
		{name: "Valid", header: "Bearer " + token, wantStatus: http.StatusOK},
		{name: "Missing", header: "", wantStatus: http.StatusUnauthorized},
		{name: "NotBearer", header: "Basic abc", wantStatus: http.StatusUnauthorized},
		{name: "Garbage", header: "Bearer not-a-token", wantStatus: http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}

			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}

	require.NotNil(t, gotClaims)
	assert.Equal(t, userID, gotClaims.UserID)
}
