package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJWTRoundTrip(t *testing.T) {
	svc := NewJWTService("signing-key", time.Hour)

	token, err := svc.GenerateToken("client-1")
	require.NoError(t, err)

	clientID, err := svc.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, "client-1", clientID)
}

func TestJWTWrongSecret(t *testing.T) {
	token, err := NewJWTService("key-a", time.Hour).GenerateToken("client-1")
	require.NoError(t, err)

	_, err = NewJWTService("key-b", time.Hour).ValidateToken(token)
	assert.Error(t, err)
}

func TestJWTExpired(t *testing.T) {
	svc := NewJWTService("signing-key", -time.Minute)

	token, err := svc.GenerateToken("client-1")
	require.NoError(t, err)

	_, err = svc.ValidateToken(token)
	assert.Error(t, err)
}
