package service

// Outcome labels reported to AuthMetrics.
const (
	OutcomeSuccess          = "success"
	OutcomeInvalidInput     = "invalid_input"
	OutcomeUnknownUser      = "unknown_user"
	OutcomeBadPassword      = "bad_password"
	OutcomeMalformedToken   = "malformed"
	OutcomeInvalidSignature = "invalid_signature"
	OutcomeTokenExpired     = "expired"
	OutcomeSubjectGone      = "subject_gone"
	OutcomeError            = "error"
)

// AuthMetrics counts authentication outcomes.
type AuthMetrics interface {
	ObserveLogin(outcome string)
	ObserveTokenVerification(outcome string)
}
