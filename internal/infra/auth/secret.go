package auth

import (
	"context"
	"strings"

	"gocloud.dev/runtimevar"
	// Drivers selectable through secretKey.source.
	_ "gocloud.dev/runtimevar/constantvar"
	_ "gocloud.dev/runtimevar/filevar"

	"taskmanager/config"
	"taskmanager/internal/errors"
)

// MinSecretLength is the smallest accepted HS256 key, matching the hash output size.
const MinSecretLength = 32

// Secret is the immutable HMAC key shared by token issuance and verification.
type Secret struct {
	key []byte
}

// NewSecret copies raw into a Secret after checking its length.
func NewSecret(raw []byte) (Secret, error) {
	if len(raw) < MinSecretLength {
		return Secret{}, errors.Errorf("signing secret must be at least %d bytes, got %d", MinSecretLength, len(raw))
	}

	key := make([]byte, len(raw))
	copy(key, raw)

	return Secret{key: key}, nil
}

// LoadSecret resolves the signing secret once. A literal value takes precedence
// over the runtimevar source.
func LoadSecret(ctx context.Context, cfg config.SecretKeyConfig) (Secret, error) {
	if cfg.Signing != "" {
		return NewSecret([]byte(cfg.Signing))
	}
	if cfg.Source == "" {
		return Secret{}, errors.New("no signing secret configured")
	}

	v, err := runtimevar.OpenVariable(ctx, cfg.Source)
	if err != nil {
		return Secret{}, errors.Wrap(err, "open signing secret source")
	}
	defer v.Close()

	snapshot, err := v.Latest(ctx)
	if err != nil {
		return Secret{}, errors.Wrap(err, "read signing secret source")
	}

	var raw string
	switch val := snapshot.Value.(type) {
	case string:
		raw = val
	case []byte:
		raw = string(val)
	default:
		return Secret{}, errors.Errorf("signing secret source decoded to %T, use decoder=string or decoder=bytes", snapshot.Value)
	}

	// Secret files usually end with a newline.
	return NewSecret([]byte(strings.TrimSpace(raw)))
}
