package models

import "time"

// IncomingAuthorisationRequest is the data received in the body of an
// authorisation creation request
type IncomingAuthorisationRequest struct {
	PsuID string `json:"psu_id,omitempty"`
}

// AuthorisationUpdateRequest carries the optional fields of an authorisation
// update. Which fields are present determines the SCA step being performed.
type AuthorisationUpdateRequest struct {
	PsuID                  string `json:"psu_id,omitempty"`
	Password               string `json:"password,omitempty"`
	AuthenticationMethodID string `json:"authentication_method_id,omitempty"`
	ScaAuthenticationData  string `json:"sca_authentication_data,omitempty"`
	ConfirmationCode       string `json:"confirmation_code,omitempty"`
}

// AuthorisationRest is the public facing authorisation returned in responses
type AuthorisationRest struct {
	MetaData          AuthorisationMetaDataRest `json:"-"`
	ScaStatus         ScaStatus                 `json:"sca_status"`
	ScaApproach       ScaApproach               `json:"sca_approach"`
	PsuID             string                    `json:"psu_id,omitempty"`
	ChosenScaMethodID string                    `json:"chosen_sca_method_id,omitempty"`
	FailureReason     string                    `json:"failure_reason,omitempty"`
	CreatedAt         time.Time                 `json:"created_at,omitempty"`
	ExpiresAt         time.Time                 `json:"expires_at,omitempty"`
	Links             AuthorisationLinksRest    `json:"links"`
}

// AuthorisationMetaDataRest contains fields not served to the TPP
type AuthorisationMetaDataRest struct {
	ID       string
	ParentID string
	Domain   Domain
}

// AuthorisationLinksRest is a set of URLs related to the authorisation
type AuthorisationLinksRest struct {
	Self        string `json:"self" validate:"required"`
	Resource    string `json:"resource"`
	ScaRedirect string `json:"sca_redirect,omitempty"`
}

// AuthorisationUpdateResponse is the user-facing payload returned from an
// authorisation update
type AuthorisationUpdateResponse struct {
	ScaStatus           ScaStatus              `json:"sca_status"`
	PsuMessage          string                 `json:"psu_message,omitempty"`
	AvailableScaMethods []ScaMethodRest        `json:"available_sca_methods,omitempty"`
	ChosenScaMethod     *ScaMethodRest         `json:"chosen_sca_method,omitempty"`
	ChallengeData       *ChallengeDataRest     `json:"challenge_data,omitempty"`
	Links               AuthorisationLinksRest `json:"links"`
}

// AuthorisationStatusResponse is returned by the authorisation status endpoint
type AuthorisationStatusResponse struct {
	ScaStatus ScaStatus `json:"sca_status"`
}

// AuthorisationListResponse lists the authorisation sub-resources of a
// consent or payment
type AuthorisationListResponse struct {
	Authorisations []AuthorisationRest `json:"authorisations"`
}

// ScaMethodRest describes one authentication method offered to the PSU
type ScaMethodRest struct {
	ID             string `json:"id"`
	Type           string `json:"type"`
	Name           string `json:"name,omitempty"`
	ExplanationText string `json:"explanation_text,omitempty"`
}

// ChallengeDataRest carries the challenge served to the PSU for the chosen
// authentication method
type ChallengeDataRest struct {
	OtpMaxLength   int    `json:"otp_max_length,omitempty"`
	OtpFormat      string `json:"otp_format,omitempty"`
	AdditionalInfo string `json:"additional_information,omitempty"`
}
