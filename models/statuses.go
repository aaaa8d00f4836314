package models

// Domain identifies which kind of business resource an authorisation belongs to
type Domain string

// All resource domains that can carry authorisations
const (
	DomainAccountAccess       Domain = "account-access"
	DomainPayment             Domain = "payment"
	DomainPaymentCancellation Domain = "payment-cancellation"
	DomainFundsConfirmation   Domain = "funds-confirmation"
	DomainSigningBasket       Domain = "signing-basket"
)

// Domains lists every resource domain enabled in this deployment
var Domains = []Domain{
	DomainAccountAccess,
	DomainPayment,
	DomainPaymentCancellation,
	DomainFundsConfirmation,
	DomainSigningBasket,
}

// IsValid reports whether the domain is one of the enabled resource domains
func (d Domain) IsValid() bool {
	for _, domain := range Domains {
		if d == domain {
			return true
		}
	}
	return false
}

// ScaApproach is the delivery mechanism used to authenticate the PSU
type ScaApproach string

// All supported SCA approaches
const (
	ApproachRedirect       ScaApproach = "redirect"
	ApproachDecoupled      ScaApproach = "decoupled"
	ApproachEmbedded       ScaApproach = "embedded"
	ApproachDelegatedToken ScaApproach = "delegated-token"
)

// Approaches lists every SCA approach enabled in this deployment
var Approaches = []ScaApproach{
	ApproachRedirect,
	ApproachDecoupled,
	ApproachEmbedded,
	ApproachDelegatedToken,
}

// ScaStatus is the lifecycle state of a single authorisation attempt
type ScaStatus string

// Authorisation lifecycle states. Received is initial; Finalised, Failed and
// Exempted are terminal.
const (
	ScaStatusReceived         ScaStatus = "received"
	ScaStatusPsuIdentified    ScaStatus = "psu-identified"
	ScaStatusPsuAuthenticated ScaStatus = "psu-authenticated"
	ScaStatusMethodSelected   ScaStatus = "method-selected"
	ScaStatusStarted          ScaStatus = "started"
	ScaStatusFinalised        ScaStatus = "finalised"
	ScaStatusFailed           ScaStatus = "failed"
	ScaStatusExempted         ScaStatus = "exempted"
)

// IsTerminal reports whether no further updates may be applied to an
// authorisation in this state
func (s ScaStatus) IsTerminal() bool {
	return s == ScaStatusFinalised || s == ScaStatusFailed || s == ScaStatusExempted
}

// IsTerminalSuccess reports whether the authorisation completed successfully
func (s ScaStatus) IsTerminalSuccess() bool {
	return s == ScaStatusFinalised || s == ScaStatusExempted
}

// ResourceStatus is the business status of a consent or payment aggregate
type ResourceStatus string

// Resource business statuses. Resources are never physically deleted; they
// are retired through Rejected, Expired, Revoked or Terminated.
const (
	ResourceStatusReceived            ResourceStatus = "received"
	ResourceStatusPartiallyAuthorised ResourceStatus = "partially-authorised"
	ResourceStatusValid               ResourceStatus = "valid"
	ResourceStatusRejected            ResourceStatus = "rejected"
	ResourceStatusExpired             ResourceStatus = "expired"
	ResourceStatusRevoked             ResourceStatus = "revoked"
	ResourceStatusTerminated          ResourceStatus = "terminated"
)

// AwaitingConfirmationStatuses is the status set swept by the not-confirmed
// expiration job
var AwaitingConfirmationStatuses = []ResourceStatus{
	ResourceStatusReceived,
	ResourceStatusPartiallyAuthorised,
}
