package auth

import (
	"context"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"taskmanager/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSecret(t *testing.T) {
	_, err := NewSecret([]byte("short"))
	assert.ErrorContains(t, err, "at least 32 bytes")

	raw := []byte(strings.Repeat("k", MinSecretLength))
	s, err := NewSecret(raw)
	require.NoError(t, err)

	// The secret does not alias the caller's buffer.
	raw[0] = 'x'
	assert.Equal(t, byte('k'), s.key[0])
}

func TestLoadSecret_Literal(t *testing.T) {
	s, err := LoadSecret(context.Background(), config.SecretKeyConfig{
		Signing: testSecretA,
		Source:  "constant://?val=ignored&decoder=string",
	})
	require.NoError(t, err)
	assert.Equal(t, []byte(testSecretA), s.key)
}

func TestLoadSecret_ConstantSource(t *testing.T) {
	source := "constant://?decoder=string&val=" + url.QueryEscape(testSecretB)

	s, err := LoadSecret(context.Background(), config.SecretKeyConfig{Source: source})
	require.NoError(t, err)
	assert.Equal(t, []byte(testSecretB), s.key)
}

func TestLoadSecret_FileSource(t *testing.T) {
	path := filepath.Join(t.TempDir(), "jwt-secret")
	require.NoError(t, os.WriteFile(path, []byte(testSecretA+"\n"), 0o600))

	s, err := LoadSecret(context.Background(), config.SecretKeyConfig{
		Source: "file://" + filepath.ToSlash(path) + "?decoder=string",
	})
	require.NoError(t, err)
	assert.Equal(t, []byte(testSecretA), s.key)
}

func TestLoadSecret_Errors(t *testing.T) {
	_, err := LoadSecret(context.Background(), config.SecretKeyConfig{})
	assert.Error(t, err)

	_, err = LoadSecret(context.Background(), config.SecretKeyConfig{Source: "unknown://secret"})
	assert.Error(t, err)

	_, err = LoadSecret(context.Background(), config.SecretKeyConfig{Source: "constant://?val=tooshort&decoder=string"})
	assert.ErrorContains(t, err, "at least 32 bytes")
}
