package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret-key-for-signing"

func TestGenerateAndParseJWT(t *testing.T) {
	token, err := GenerateJWT("alice", testSecret, 30*time.Minute)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := ParseJWT(token, testSecret)
	require.NoError(t, err)
	assert.Equal(t, "alice", claims.Subject)
	assert.WithinDuration(t, time.Now().Add(30*time.Minute), claims.ExpiresAt.Time, 5*time.Second)
}

func TestParseJWT_Expired(t *testing.T) {
	token, err := GenerateJWT("alice", testSecret, -time.Minute)
	require.NoError(t, err)

	_, err = ParseJWT(token, testSecret)
	assert.Error(t, err)
}

func TestParseJWT_ShortTTLStillValid(t *testing.T) {
	// A token validates right up to its expiry.
	token, err := GenerateJWT("alice", testSecret, 2*time.Second)
	require.NoError(t, err)

	_, err = ParseJWT(token, testSecret)
	assert.NoError(t, err)
}

func TestParseJWT_WrongKey(t *testing.T) {
	token, err := GenerateJWT("alice", "some-other-secret", 30*time.Minute)
	require.NoError(t, err)

	_, err = ParseJWT(token, testSecret)
	assert.Error(t, err)
}

func TestParseJWT_Malformed(t *testing.T) {
	_, err := ParseJWT("not-a-token", testSecret)
	assert.Error(t, err)
}
