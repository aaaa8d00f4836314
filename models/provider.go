package models

// Provider result values returned by the ASPSP SCA provider
const (
	ProviderResultApproved = "approved"
	ProviderResultDeclined = "declined"
	ProviderResultPending  = "pending"
)

// OutgoingProviderAuthRequest is the body sent to the provider to verify PSU
// credentials
type OutgoingProviderAuthRequest struct {
	PsuID    string `json:"psu_id"`
	Password string `json:"password"`
}

// IncomingProviderAuthResponse is the provider response to a credential check
type IncomingProviderAuthResponse struct {
	Result      string              `json:"result"`
	ScaExempted bool                `json:"sca_exempted"`
	ScaMethods  []ProviderScaMethod `json:"sca_methods"`
	PsuMessage  string              `json:"psu_message"`
}

// ProviderScaMethod is one authentication method as described by the provider
type ProviderScaMethod struct {
	ID              string `json:"id"`
	Type            string `json:"type"`
	Name            string `json:"name"`
	ExplanationText string `json:"explanation_text"`
}

// OutgoingProviderChallengeRequest asks the provider to send a one-time code
// over the chosen method
type OutgoingProviderChallengeRequest struct {
	PsuID    string `json:"psu_id"`
	MethodID string `json:"method_id"`
}

// IncomingProviderChallengeResponse describes the challenge issued to the PSU
type IncomingProviderChallengeResponse struct {
	Result         string `json:"result"`
	OtpMaxLength   int    `json:"otp_max_length"`
	OtpFormat      string `json:"otp_format"`
	AdditionalInfo string `json:"additional_information"`
	PsuMessage     string `json:"psu_message"`
}

// OutgoingProviderDecoupledRequest asks the provider to push a confirmation
// to the PSU's paired device
type OutgoingProviderDecoupledRequest struct {
	PsuID           string `json:"psu_id"`
	AuthorisationID string `json:"authorisation_id"`
	MethodID        string `json:"method_id,omitempty"`
}

// IncomingProviderDecoupledResponse is the provider response to a decoupled
// start or poll call
type IncomingProviderDecoupledResponse struct {
	Result     string `json:"result"`
	PsuMessage string `json:"psu_message"`
}

// OutgoingProviderVerifyRequest submits a code entered by the PSU for
// verification
type OutgoingProviderVerifyRequest struct {
	PsuID           string `json:"psu_id"`
	AuthorisationID string `json:"authorisation_id"`
	Code            string `json:"code"`
}

// IncomingProviderVerifyResponse is the provider verdict on a submitted code
type IncomingProviderVerifyResponse struct {
	Result     string `json:"result"`
	PsuMessage string `json:"psu_message"`
}

// IncomingProviderTokenResponse is the provider verdict on a delegated token
type IncomingProviderTokenResponse struct {
	Result      string `json:"result"`
	ScaExempted bool   `json:"sca_exempted"`
	PsuMessage  string `json:"psu_message"`
}

// IncomingProviderRedirectResponse carries the redirect target issued by the
// provider for a redirect authorisation
type IncomingProviderRedirectResponse struct {
	Result      string `json:"result"`
	RedirectURL string `json:"redirect_url"`
}
