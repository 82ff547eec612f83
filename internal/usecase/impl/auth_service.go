// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	deliverycontext "taskmanager/internal/delivery/context"
	"taskmanager/internal/domain/entity"
	domainerrors "taskmanager/internal/domain/errors"
	"taskmanager/internal/domain/repository"
	"taskmanager/internal/domain/service"
	"taskmanager/internal/errors"
	"taskmanager/internal/usecase"
)

// TokenTypeBearer is the scheme clients present the issued token with.
const TokenTypeBearer = "Bearer"

// defaultPublishTimeout bounds how long a login waits on the event broker.
const defaultPublishTimeout = 500 * time.Millisecond

// authService implements the AuthUsecase interface.
type authService struct {
	credentials repository.CredentialRepository
	hasher      service.PasswordHasher
	tokens      service.TokenService
	publisher   service.EventPublisher
	metrics     service.AuthMetrics
	clock       service.Clock
	logger      *slog.Logger

	// dummyHash is checked when the username is unknown, so both denial
	// paths cost one comparison at the configured work factor.
	dummyHash      string
	publishTimeout time.Duration
}

// NewAuthService is the constructor for authService. All collaborators are explicit.
// It hashes a random password once to obtain the unknown-user comparison target.
func NewAuthService(
	credentials repository.CredentialRepository,
	hasher service.PasswordHasher,
	tokens service.TokenService,
	publisher service.EventPublisher,
	metrics service.AuthMetrics,
	clock service.Clock,
	logger *slog.Logger,
) (usecase.AuthUsecase, error) {
	dummyHash, err := hasher.Hash(uuid.NewString())
	if err != nil {
		return nil, errors.Wrap(err, "failed to derive dummy password hash")
	}

	return &authService{
		credentials:    credentials,
		hasher:         hasher,
		tokens:         tokens,
		publisher:      publisher,
		metrics:        metrics,
		clock:          clock,
		logger:         logger,
		dummyHash:      dummyHash,
		publishTimeout: defaultPublishTimeout,
	}, nil
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *authService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Login validates the input, checks the password and issues a token.
func (srv *authService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.LoginOutput, error) {
	if err := validateLoginInput(input); err != nil {
		srv.metrics.ObserveLogin(service.OutcomeInvalidInput)

		return nil, err
	}

	credential, err := srv.credentials.FindByUsername(ctx, input.Username)
	if errors.Is(err, repository.ErrCredentialNotFound) {
		srv.hasher.Check(input.Password, srv.dummyHash)

		return nil, srv.denyLogin(ctx, input.Username, service.OutcomeUnknownUser)
	}
	if err != nil {
		srv.metrics.ObserveLogin(service.OutcomeError)

		return nil, errors.Wrap(err, "failed to find credential")
	}

	if !srv.hasher.Check(input.Password, credential.PasswordHash) {
		return nil, srv.denyLogin(ctx, input.Username, service.OutcomeBadPassword)
	}

	now := srv.clock.Now()
	token, err := srv.tokens.IssueToken(credential.Username, now)
	if err != nil {
		srv.metrics.ObserveLogin(service.OutcomeError)

		return nil, errors.Wrap(err, "failed to issue token")
	}

	srv.metrics.ObserveLogin(service.OutcomeSuccess)
	srv.publish(ctx, entity.AuthEventLoginSucceeded, credential.Username, "")
	srv.log(ctx).Info("Login succeeded", slog.String("subject", credential.Username))

	return &usecase.LoginOutput{
		Token:     token,
		TokenType: TokenTypeBearer,
		Subject:   credential.Username,
		ExpiresAt: now.Truncate(time.Second).Add(srv.tokens.Lifetime()),
	}, nil
}

// Authenticate verifies token at the current instant, then reloads the subject.
func (srv *authService) Authenticate(ctx context.Context, token string) (*entity.Claims, error) {
	claims, err := srv.tokens.VerifyToken(token, srv.clock.Now())
	if err != nil {
		srv.metrics.ObserveTokenVerification(tokenOutcome(err))

		return nil, err
	}

	if _, err := srv.credentials.FindByUsername(ctx, claims.Subject); err != nil {
		if errors.Is(err, repository.ErrCredentialNotFound) {
			srv.metrics.ObserveTokenVerification(service.OutcomeSubjectGone)

			return nil, domainerrors.ErrAuthenticationFailed.WrapMessage("token subject no longer exists")
		}
		srv.metrics.ObserveTokenVerification(service.OutcomeError)

		return nil, errors.Wrap(err, "failed to load token subject")
	}

	srv.metrics.ObserveTokenVerification(service.OutcomeSuccess)

	return claims, nil
}

func (srv *authService) denyLogin(ctx context.Context, username, outcome string) error {
	srv.metrics.ObserveLogin(outcome)
	srv.publish(ctx, entity.AuthEventLoginFailed, username, outcome)
	srv.log(ctx).Info("Login denied", slog.String("username", username), slog.String("reason", outcome))

	return domainerrors.ErrAuthenticationFailed.WrapMessage(outcome)
}

// publish never fails the caller and waits at most publishTimeout.
func (srv *authService) publish(ctx context.Context, eventType entity.AuthEventType, subject, reason string) {
	ctx, cancel := context.WithTimeout(ctx, srv.publishTimeout)
	defer cancel()

	event := &entity.AuthEvent{
		ID:         uuid.NewString(),
		RequestID:  deliverycontext.GetRequestIDFromContext(ctx),
		Type:       eventType,
		Subject:    subject,
		Reason:     reason,
		OccurredAt: srv.clock.Now().UTC(),
	}

	if err := srv.publisher.PublishAuthEvent(ctx, event); err != nil {
		srv.log(ctx).Warn("Failed to publish auth event",
			slog.String("event_type", eventType.String()),
			slog.Any("error", err),
		)
	}
}

func validateLoginInput(input *usecase.LoginInput) error {
	if input == nil {
		return domainerrors.ErrInvalidCredential.WrapMessage("login input is missing")
	}
	if strings.TrimSpace(input.Username) == "" {
		return domainerrors.ErrInvalidCredential.WrapMessage("username is required")
	}
	if strings.TrimSpace(input.Password) == "" {
		return domainerrors.ErrInvalidCredential.WrapMessage("password is required")
	}

	return nil
}

func tokenOutcome(err error) string {
	switch {
	case errors.Is(err, domainerrors.ErrMalformedToken):
		return service.OutcomeMalformedToken
	case errors.Is(err, domainerrors.ErrInvalidSignature):
		return service.OutcomeInvalidSignature
	case errors.Is(err, domainerrors.ErrTokenExpired):
		return service.OutcomeTokenExpired
	default:
		return service.OutcomeError
	}
}
