package service

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"schooladmin_backend/internals/features/users/auth/model"
	helperAuth "schooladmin_backend/internals/helpers/auth"
)

func testIssuer() TokenIssuer {
	return TokenIssuer{
		AccessSecret:  []byte("access"),
		RefreshSecret: []byte("refresh"),
		AccessTTL:     time.Hour,
		RefreshTTL:    24 * time.Hour,
	}
}

func TestIssueAccess_ClaimsMatchMiddleware(t *testing.T) {
	iss := testIssuer()
	u := model.UserModel{UserID: uuid.New(), UserName: "Bendahara", UserRole: "accountant"}
	now := time.Now().UTC()

	tok, exp, err := iss.IssueAccess(u, now)
	require.NoError(t, err)
	assert.WithinDuration(t, now.Add(time.Hour), exp, time.Second)

	claims := &helperAuth.Claims{}
	parsed, err := jwt.ParseWithClaims(tok, claims, func(*jwt.Token) (interface{}, error) { return iss.AccessSecret, nil })
	require.NoError(t, err)
	assert.True(t, parsed.Valid)
	assert.Equal(t, u.UserID.String(), claims.Subject)
	assert.Equal(t, "accountant", claims.Role)
	assert.Equal(t, "Bendahara", claims.Name)
	require.NotNil(t, claims.ExpiresAt)
}

func TestRefreshToken_RoundTrip(t *testing.T) {
	iss := testIssuer()
	uid := uuid.New()
	now := time.Now().UTC()

	a, _, err := iss.IssueRefresh(uid, now)
	require.NoError(t, err)
	b, _, err := iss.IssueRefresh(uid, now)
	require.NoError(t, err)
	assert.NotEqual(t, a, b)
	assert.NotEqual(t, iss.RefreshHash(a), iss.RefreshHash(b))

	got, err := iss.ParseRefresh(a)
	require.NoError(t, err)
	assert.Equal(t, uid, got)
}

func TestParseRefresh_Rejects(t *testing.T) {
	iss := testIssuer()
	now := time.Now().UTC()

	expired, _, err := iss.IssueRefresh(uuid.New(), now.Add(-48*time.Hour))
	require.NoError(t, err)
	_, err = iss.ParseRefresh(expired)
	assert.Error(t, err)

	// an access token signed with the same secret is still not a refresh token
	same := iss
	same.AccessSecret = iss.RefreshSecret
	access, _, err := same.IssueAccess(model.UserModel{UserID: uuid.New(), UserRole: "admin"}, now)
	require.NoError(t, err)
	_, err = iss.ParseRefresh(access)
	assert.Error(t, err)

	_, err = iss.ParseRefresh("garbage")
	assert.Error(t, err)
}

func TestPasswordHash(t *testing.T) {
	h, err := HashPassword("s3cret-pass")
	require.NoError(t, err)
	assert.NotEqual(t, "s3cret-pass", h)
	assert.True(t, CheckPassword(h, "s3cret-pass"))
	assert.False(t, CheckPassword(h, "wrong"))
}
