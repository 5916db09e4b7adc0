package services

import (
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"nl2query/internal/apis/dtos"
	"nl2query/internal/utils"
)

func newAuthService(t *testing.T) AuthService {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte("s3cret"), bcrypt.MinCost)
	require.NoError(t, err)
	jwtService := utils.NewJWTService("test-signing-key", time.Hour)
	return NewAuthService("client-1", string(hash), jwtService, time.Hour)
}

func TestIssueToken(t *testing.T) {
	svc := newAuthService(t)

	resp, status, err := svc.IssueToken(&dtos.TokenRequest{
		ClientID:     "client-1",
		ClientSecret: "s3cret",
	})
	require.NoError(t, err)
	assert.Equal(t, uint(http.StatusOK), status)
	assert.NotEmpty(t, resp.AccessToken)
	assert.Equal(t, "Bearer", resp.TokenType)
	assert.Equal(t, int64(3600), resp.ExpiresIn)
}

func TestIssueTokenBadCredentials(t *testing.T) {
	svc := newAuthService(t)

	_, status, err := svc.IssueToken(&dtos.TokenRequest{
		ClientID:     "client-1",
		ClientSecret: "wrong",
	})
	assert.Error(t, err)
	assert.Equal(t, uint(http.StatusUnauthorized), status)

	_, status, err = svc.IssueToken(&dtos.TokenRequest{
		ClientID:     "intruder",
		ClientSecret: "s3cret",
	})
	assert.Error(t, err)
	assert.Equal(t, uint(http.StatusUnauthorized), status)
}
