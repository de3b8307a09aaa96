package types

// ErrorKind classifies a remote failure by what the caller can do about it.
type ErrorKind string

const (
	// ErrorAuth covers 401 and 403: credentials missing, wrong, or insufficient.
	ErrorAuth ErrorKind = "auth"
	// ErrorNotFound covers 404: the entity or endpoint does not exist.
	ErrorNotFound ErrorKind = "not_found"
	// ErrorConflict covers 409: the request clashes with remote state.
	ErrorConflict ErrorKind = "conflict"
	// ErrorRateLimited covers 429.
	ErrorRateLimited ErrorKind = "rate_limited"
	// ErrorRemoteUnavailable covers 5xx: the relay or the service behind it is down.
	ErrorRemoteUnavailable ErrorKind = "remote_unavailable"
	// ErrorInvalidRequest covers 400: the relay rejected the request shape.
	ErrorInvalidRequest ErrorKind = "invalid_request"
	// ErrorUnknownRemote covers everything else.
	ErrorUnknownRemote ErrorKind = "unknown_remote"
)

// FailureReason describes why an operation, or one recipient within a
// fan-out operation, failed.
type FailureReason struct {
	Kind    ErrorKind
	Message string
}

// RecipientFailure ties a failure to the recipient it concerns. Index is the
// recipient's position in the caller's original argument order.
type RecipientFailure struct {
	Index     int
	Recipient Recipient
	Reason    FailureReason
}

// ResultStatus discriminates the Result union.
type ResultStatus int

const (
	// StatusSuccess: the operation succeeded for every recipient.
	StatusSuccess ResultStatus = iota
	// StatusPartial: a fan-out operation succeeded for some recipients and
	// failed for others. This is a normal outcome, not an error.
	StatusPartial
	// StatusFailure: the operation failed outright.
	StatusFailure
)

// Result is the outcome of one remote operation. Partial failure is
// representable rather than exceptional: a 2xx status on a fan-out request
// does not imply the relay delivered to every recipient.
type Result[T any] struct {
	Status   ResultStatus
	Value    T
	Failures []RecipientFailure
	Reason   FailureReason
}

// Success wraps a fully successful outcome.
func Success[T any](value T) Result[T] {
	return Result[T]{Status: StatusSuccess, Value: value}
}

// Partial wraps an outcome that succeeded for some recipients only. The
// value still reflects the recipients that succeeded.
func Partial[T any](value T, failures []RecipientFailure) Result[T] {
	return Result[T]{Status: StatusPartial, Value: value, Failures: failures}
}

// Failed wraps an outright failure.
func Failed[T any](kind ErrorKind, message string) Result[T] {
	return Result[T]{Status: StatusFailure, Reason: FailureReason{Kind: kind, Message: message}}
}

// Ok reports whether every recipient succeeded.
func (r Result[T]) Ok() bool { return r.Status == StatusSuccess }

// IsPartial reports whether the operation succeeded for some recipients only.
func (r Result[T]) IsPartial() bool { return r.Status == StatusPartial }

// IsFailure reports whether the operation failed outright.
func (r Result[T]) IsFailure() bool { return r.Status == StatusFailure }
