package service

import "github.com/companieshouse/sca.api.ch.gov.uk/models"

// StepKind identifies which SCA step an authorisation update represents
type StepKind int

const (
	// StepIdentification - the update carries no authentication fields, only a PSU identity
	StepIdentification StepKind = iota

	// StepAuthentication - the update carries a password
	StepAuthentication

	// StepMethodSelection - the update selects an authentication method
	StepMethodSelection

	// StepAuthenticationData - the update carries a one-time code
	StepAuthenticationData

	// StepConfirmation - the update carries a confirmation code
	StepConfirmation
)

var stepKinds = [...]string{
	"identification",
	"authentication",
	"method-selection",
	"authentication-data",
	"confirmation",
}

// String representation of `StepKind`
func (k StepKind) String() string {
	return stepKinds[k]
}

// ClassifyUpdate determines which SCA step an update request represents from
// the optional fields it carries. A request always maps to exactly one step:
// the first populated field in precedence order wins, and later fields are
// not inspected. Absence of every optional field yields identification.
func ClassifyUpdate(update models.AuthorisationUpdateRequest) StepKind {
	switch {
	case update.ConfirmationCode != "":
		return StepConfirmation
	case update.ScaAuthenticationData != "":
		return StepAuthenticationData
	case update.AuthenticationMethodID != "":
		return StepMethodSelection
	case update.Password != "":
		return StepAuthentication
	default:
		return StepIdentification
	}
}
