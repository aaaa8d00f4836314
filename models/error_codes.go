package models

// Stable business error codes surfaced to TPPs. These never change between
// releases as callers key retry and messaging behaviour off them.
const (
	ErrCodeResourceBlocked       = "RESOURCE_BLOCKED"
	ErrCodeStatusInvalid         = "STATUS_INVALID"
	ErrCodePsuCredentialsInvalid = "PSU_CREDENTIALS_INVALID"
	ErrCodeResourceExpired       = "RESOURCE_EXPIRED"
	ErrCodeChecksum              = "CHECKSUM_ERROR"
	ErrCodeFormatError           = "FORMAT_ERROR"
)

// ErrorResourceRest is the body returned for any business rule rejection
type ErrorResourceRest struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}
