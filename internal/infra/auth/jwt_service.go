package auth

import (
	"encoding/json"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"taskmanager/internal/domain/entity"
	domainerrors "taskmanager/internal/domain/errors"
	"taskmanager/internal/domain/service"
	"taskmanager/internal/errors"
)

// jwtService is a concrete implementation of the TokenService interface using HS256 JWTs.
type jwtService struct {
	secret   Secret
	lifetime time.Duration

	// structure decodes header and payload segments.
	structure *jwt.Parser
	// signature verifies the HMAC. Time based claims are checked by the service itself
	// against the caller supplied instant.
	signature *jwt.Parser
}

// NewJWTService is the constructor for jwtService.
func NewJWTService(secret Secret, lifetime time.Duration) (service.TokenService, error) {
	if len(secret.key) == 0 {
		return nil, errors.New("jwt secret must be provided")
	}
	if lifetime <= 0 {
		return nil, errors.Errorf("token lifetime must be positive, got %s", lifetime)
	}

	return &jwtService{
		secret:    secret,
		lifetime:  lifetime,
		structure: jwt.NewParser(jwt.WithStrictDecoding()),
		signature: jwt.NewParser(
			jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
			jwt.WithoutClaimsValidation(),
			jwt.WithStrictDecoding(),
		),
	}, nil
}

// IssueToken signs {sub, iat, exp} for subject. Claims carry whole seconds,
// so now is truncated before the expiry is derived from it.
func (s *jwtService) IssueToken(subject string, now time.Time) (string, error) {
	if subject == "" {
		return "", domainerrors.ErrTokenIssueFailed.WrapMessage("subject is empty")
	}

	issuedAt := now.Truncate(time.Second)
	claims := jwt.RegisteredClaims{
		Subject:   subject,
		IssuedAt:  jwt.NewNumericDate(issuedAt),
		ExpiresAt: jwt.NewNumericDate(issuedAt.Add(s.lifetime)),
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret.key)
	if err != nil {
		return "", errors.Wrap(domainerrors.ErrTokenIssueFailed, err.Error())
	}

	return signed, nil
}

// VerifyToken checks the token in three stages and stops at the first failure.
func (s *jwtService) VerifyToken(token string, now time.Time) (*entity.Claims, error) {
	if err := s.checkStructure(token); err != nil {
		return nil, domainerrors.ErrMalformedToken.WrapMessage(err.Error())
	}

	// Every failure from here on that concerns the signature segment or the
	// algorithm is a signature failure.
	claims := &jwt.RegisteredClaims{}
	if _, err := s.signature.ParseWithClaims(token, claims, s.keyFunc); err != nil {
		return nil, domainerrors.ErrInvalidSignature.WrapMessage(err.Error())
	}

	if claims.Subject == "" {
		return nil, domainerrors.ErrMalformedToken.WrapMessage("token has no subject")
	}
	if claims.ExpiresAt == nil {
		return nil, domainerrors.ErrMalformedToken.WrapMessage("token has no expiry")
	}

	result := &entity.Claims{
		Subject:   claims.Subject,
		ExpiresAt: claims.ExpiresAt.Time,
	}
	if claims.IssuedAt != nil {
		result.IssuedAt = claims.IssuedAt.Time
	}

	if !result.ValidAt(now) {
		return nil, domainerrors.ErrTokenExpired.WrapMessage("token expired at " + result.ExpiresAt.UTC().Format(time.RFC3339))
	}

	return result, nil
}

// checkStructure decodes header and payload only. The signature segment is
// left to the signature parser.
func (s *jwtService) checkStructure(token string) error {
	parts := strings.Split(token, ".")
	if len(parts) != 3 {
		return errors.Errorf("token has %d segments, want 3", len(parts))
	}

	headerBytes, err := s.structure.DecodeSegment(parts[0])
	if err != nil {
		return errors.Wrap(err, "could not base64 decode header")
	}
	var header map[string]any
	if err := json.Unmarshal(headerBytes, &header); err != nil {
		return errors.Wrap(err, "could not JSON decode header")
	}

	payloadBytes, err := s.structure.DecodeSegment(parts[1])
	if err != nil {
		return errors.Wrap(err, "could not base64 decode claims")
	}
	var claims jwt.RegisteredClaims
	if err := json.Unmarshal(payloadBytes, &claims); err != nil {
		return errors.Wrap(err, "could not JSON decode claims")
	}

	return nil
}

// Lifetime returns the configured validity window.
func (s *jwtService) Lifetime() time.Duration {
	return s.lifetime
}

func (s *jwtService) keyFunc(token *jwt.Token) (any, error) {
	if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
		return nil, jwt.ErrSignatureInvalid
	}

	return s.secret.key, nil
}
