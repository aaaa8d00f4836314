package service

import "github.com/companieshouse/sca.api.ch.gov.uk/models"

// ScaProvider is the ASPSP-side collaborator that performs the actual
// authentication work: credential checks, one-time codes, decoupled device
// confirmations, redirect journeys and delegated token validation. The
// engine only consumes its success/declined/pending verdicts.
type ScaProvider interface {
	AuthenticatePsu(psuID, password string) (*models.IncomingProviderAuthResponse, error)
	RequestAuthorisationCode(psuID, methodID string) (*models.IncomingProviderChallengeResponse, error)
	VerifyScaCode(psuID, authorisationID, code string) (*models.IncomingProviderVerifyResponse, error)
	StartDecoupled(psuID, authorisationID, methodID string) (*models.IncomingProviderDecoupledResponse, error)
	PollDecoupledConfirmation(psuID, authorisationID string) (*models.IncomingProviderDecoupledResponse, error)
	ValidateDelegatedToken(psuID string) (*models.IncomingProviderTokenResponse, error)
	IssueRedirectLink(authorisationID string) (*models.IncomingProviderRedirectResponse, error)
}
