package service

// ResponseType enumerates the outcomes a service call can report to handlers
type ResponseType int

const (
	// InvalidData response
	InvalidData ResponseType = iota

	// Error response
	Error

	// Forbidden response
	Forbidden

	// NotFound response
	NotFound

	// Success response
	Success

	// Blocked response - the resource is frozen by a pending signing basket
	Blocked

	// Conflict response - the request re-runs an already finalised step
	Conflict

	// Expired response - the parent resource is rejected or expired
	Expired

	// ChecksumMismatch response - the stored aggregate failed integrity verification
	ChecksumMismatch
)

var vals = [...]string{
	"invalid-data",
	"error",
	"forbidden",
	"not-found",
	"success",
	"blocked",
	"conflict",
	"expired",
	"checksum-mismatch",
}

// String representation of `ResponseType`
func (a ResponseType) String() string {
	return vals[a]
}
