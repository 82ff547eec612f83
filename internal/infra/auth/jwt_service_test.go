package auth

import (
	"encoding/base64"
	"strings"
	"testing"
	"time"

	domainerrors "taskmanager/internal/domain/errors"
	"taskmanager/internal/domain/service"

	"github.com/golang-jwt/jwt/v5"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	testSecretA = "test_signing_secret_A_0123456789abcdef"
	testSecretB = "test_signing_secret_B_0123456789abcdef"

	base64URLAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789-_"
)

func newTestTokenService(t *testing.T, secret string, lifetime time.Duration) service.TokenService {
	t.Helper()

	s, err := NewSecret([]byte(secret))
	require.NoError(t, err)

	svc, err := NewJWTService(s, lifetime)
	require.NoError(t, err)

	return svc
}

func signRaw(t *testing.T, method jwt.SigningMethod, key any, claims jwt.Claims) string {
	t.Helper()

	token, err := jwt.NewWithClaims(method, claims).SignedString(key)
	require.NoError(t, err)

	return token
}

func TestJWTService_IssueAndVerify(t *testing.T) {
	svc := newTestTokenService(t, testSecretA, time.Hour)
	t0 := time.Unix(1_700_000_000, 0)

	token, err := svc.IssueToken("alice@example.com", t0)
	require.NoError(t, err)
	assert.Len(t, strings.Split(token, "."), 3)

	claims, err := svc.VerifyToken(token, t0)
	require.NoError(t, err)
	assert.Equal(t, "alice@example.com", claims.Subject)
	assert.True(t, claims.IssuedAt.Equal(t0))
	assert.True(t, claims.ExpiresAt.Equal(t0.Add(time.Hour)))
	assert.Equal(t, time.Hour, svc.Lifetime())
}

func TestJWTService_ExpiryBoundary(t *testing.T) {
	svc := newTestTokenService(t, testSecretA, 3600*time.Second)
	issuedAt := time.Unix(1000, 0)

	token, err := svc.IssueToken("alice", issuedAt)
	require.NoError(t, err)

	claims, err := svc.VerifyToken(token, time.Unix(4599, 0))
	require.NoError(t, err)
	assert.Equal(t, "alice", claims.Subject)

	_, err = svc.VerifyToken(token, time.Unix(4600, 0))
	assert.True(t, errors.Is(err, domainerrors.ErrTokenExpired))

	_, err = svc.VerifyToken(token, time.Unix(9000, 0))
	assert.True(t, errors.Is(err, domainerrors.ErrTokenExpired))
}

func TestJWTService_ValidThroughoutLifetime(t *testing.T) {
	lifetime := 10 * time.Second
	svc := newTestTokenService(t, testSecretA, lifetime)
	t0 := time.Unix(50_000, 0)

	token, err := svc.IssueToken("bob", t0)
	require.NoError(t, err)

	for offset := time.Duration(0); offset < lifetime; offset += 500 * time.Millisecond {
		_, err := svc.VerifyToken(token, t0.Add(offset))
		assert.NoError(t, err, "offset %s", offset)
	}
}

func TestJWTService_SameInstantTokensAreBothValid(t *testing.T) {
	svc := newTestTokenService(t, testSecretA, time.Minute)
	now := time.Unix(2000, 0)

	first, err := svc.IssueToken("alice", now)
	require.NoError(t, err)
	second, err := svc.IssueToken("alice", now)
	require.NoError(t, err)

	_, err = svc.VerifyToken(first, now)
	assert.NoError(t, err)
	_, err = svc.VerifyToken(second, now)
	assert.NoError(t, err)
}

func TestJWTService_WrongSecret(t *testing.T) {
	issuer := newTestTokenService(t, testSecretA, time.Hour)
	verifier := newTestTokenService(t, testSecretB, time.Hour)
	now := time.Unix(1000, 0)

	token, err := issuer.IssueToken("alice", now)
	require.NoError(t, err)

	_, err = verifier.VerifyToken(token, now)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidSignature))
}

func TestJWTService_SignatureCheckedBeforeExpiry(t *testing.T) {
	issuer := newTestTokenService(t, testSecretA, time.Second)
	verifier := newTestTokenService(t, testSecretB, time.Second)

	token, err := issuer.IssueToken("alice", time.Unix(1000, 0))
	require.NoError(t, err)

	_, err = verifier.VerifyToken(token, time.Unix(5000, 0))
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidSignature))
	assert.False(t, errors.Is(err, domainerrors.ErrTokenExpired))
}

func TestJWTService_AnyAlteredSignatureCharacterIsRejected(t *testing.T) {
	svc := newTestTokenService(t, testSecretA, time.Hour)
	now := time.Unix(1000, 0)

	token, err := svc.IssueToken("alice", now)
	require.NoError(t, err)

	cut := strings.LastIndex(token, ".") + 1
	prefix, signature := token[:cut], token[cut:]

	for i := range len(signature) {
		for _, c := range base64URLAlphabet {
			if byte(c) == signature[i] {
				continue
			}

			altered := prefix + signature[:i] + string(c) + signature[i+1:]
			_, err := svc.VerifyToken(altered, now)
			require.Truef(t, errors.Is(err, domainerrors.ErrInvalidSignature),
				"position %d replaced with %q: got %v", i, c, err)
		}
	}
}

func TestJWTService_AlteredPayloadIsRejected(t *testing.T) {
	svc := newTestTokenService(t, testSecretA, time.Hour)
	now := time.Unix(1000, 0)

	token, err := svc.IssueToken("alice", now)
	require.NoError(t, err)

	parts := strings.Split(token, ".")
	forged := base64.RawURLEncoding.EncodeToString([]byte(`{"sub":"mallory","iat":1000,"exp":4600}`))

	_, err = svc.VerifyToken(parts[0]+"."+forged+"."+parts[2], now)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidSignature))
}

func TestJWTService_RejectsOtherAlgorithms(t *testing.T) {
	svc := newTestTokenService(t, testSecretA, time.Hour)
	now := time.Unix(1000, 0)
	claims := jwt.RegisteredClaims{
		Subject:   "alice",
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(time.Hour)),
	}

	tests := map[string]string{
		"none":  signRaw(t, jwt.SigningMethodNone, jwt.UnsafeAllowNoneSignatureType, claims),
		"HS512": signRaw(t, jwt.SigningMethodHS512, []byte(testSecretA), claims),
	}

	for name, token := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := svc.VerifyToken(token, now)
			assert.True(t, errors.Is(err, domainerrors.ErrInvalidSignature), "got %v", err)
		})
	}
}

func TestJWTService_MalformedTokens(t *testing.T) {
	svc := newTestTokenService(t, testSecretA, time.Hour)
	now := time.Unix(1000, 0)

	header := base64.RawURLEncoding.EncodeToString([]byte(`{"alg":"HS256","typ":"JWT"}`))

	tests := map[string]string{
		"empty":            "",
		"single segment":   "not-a-jwt-token-format",
		"two segments":     header + ".e30",
		"four segments":    header + ".e30.sig.extra",
		"header not b64":   "!!!." + "e30" + ".c2ln",
		"header not json":  base64.RawURLEncoding.EncodeToString([]byte("nope")) + ".e30.c2ln",
		"payload not json": header + "." + base64.RawURLEncoding.EncodeToString([]byte("nope")) + ".c2ln",
		"exp not numeric": header + "." +
			base64.RawURLEncoding.EncodeToString([]byte(`{"sub":"alice","exp":"tomorrow"}`)) + ".c2ln",
	}

	for name, token := range tests {
		t.Run(name, func(t *testing.T) {
			claims, err := svc.VerifyToken(token, now)
			assert.Nil(t, claims)
			assert.True(t, errors.Is(err, domainerrors.ErrMalformedToken), "got %v", err)
		})
	}
}

func TestJWTService_RequiresSubjectAndExpiry(t *testing.T) {
	svc := newTestTokenService(t, testSecretA, time.Hour)
	now := time.Unix(1000, 0)
	key := []byte(testSecretA)

	noSubject := signRaw(t, jwt.SigningMethodHS256, key, jwt.RegisteredClaims{
		ExpiresAt: jwt.NewNumericDate(now.Add(time.Hour)),
	})
	_, err := svc.VerifyToken(noSubject, now)
	assert.True(t, errors.Is(err, domainerrors.ErrMalformedToken))

	noExpiry := signRaw(t, jwt.SigningMethodHS256, key, jwt.RegisteredClaims{
		Subject: "alice",
	})
	_, err = svc.VerifyToken(noExpiry, now)
	assert.True(t, errors.Is(err, domainerrors.ErrMalformedToken))
}

func TestJWTService_IssueRejectsEmptySubject(t *testing.T) {
	svc := newTestTokenService(t, testSecretA, time.Hour)

	token, err := svc.IssueToken("", time.Unix(1000, 0))
	assert.Empty(t, token)
	assert.True(t, errors.Is(err, domainerrors.ErrTokenIssueFailed))
}

func TestNewJWTService_InvalidArguments(t *testing.T) {
	_, err := NewJWTService(Secret{}, time.Hour)
	assert.Error(t, err)

	s, err := NewSecret([]byte(testSecretA))
	require.NoError(t, err)

	_, err = NewJWTService(s, 0)
	assert.Error(t, err)
}

func TestJWTService_UndecodableSignatureIsInvalidSignature(t *testing.T) {
	svc := newTestTokenService(t, testSecretA, time.Hour)
	now := time.Unix(1000, 0)

	token, err := svc.IssueToken("alice", now)
	require.NoError(t, err)

	// The final character of a 43 character HS256 signature carries two
	// padding bits; a character with those bits set fails strict decoding.
	last := token[len(token)-1]
	replacement := byte('B')
	if last == replacement {
		replacement = 'C'
	}
	altered := token[:len(token)-1] + string(replacement)

	_, err = svc.VerifyToken(altered, now)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidSignature), "got %v", err)
	assert.False(t, errors.Is(err, domainerrors.ErrMalformedToken))

	_, err = svc.VerifyToken(token[:strings.LastIndex(token, ".")+1]+"!!!", now)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidSignature), "got %v", err)
}

func TestJWTService_SubSecondIssueInstantIsTruncated(t *testing.T) {
	lifetime := 10 * time.Second
	svc := newTestTokenService(t, testSecretA, lifetime)
	t0 := time.Unix(1000, 0).Add(700 * time.Millisecond)

	token, err := svc.IssueToken("alice", t0)
	require.NoError(t, err)

	claims, err := svc.VerifyToken(token, t0)
	require.NoError(t, err)
	assert.True(t, claims.IssuedAt.Equal(time.Unix(1000, 0)))
	assert.True(t, claims.ExpiresAt.Equal(time.Unix(1010, 0)))

	_, err = svc.VerifyToken(token, time.Unix(1009, 999_000_000))
	assert.NoError(t, err)

	// Expiry is derived from the truncated instant, not from t0.
	_, err = svc.VerifyToken(token, time.Unix(1010, 300_000_000))
	assert.True(t, errors.Is(err, domainerrors.ErrTokenExpired), "got %v", err)
}
