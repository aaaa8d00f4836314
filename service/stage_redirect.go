package service

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/companieshouse/chs.go/log"
	"github.com/companieshouse/sca.api.ch.gov.uk/config"
	"github.com/companieshouse/sca.api.ch.gov.uk/models"
)

// RedirectStages holds the stage handlers for the redirect SCA approach.
// The PSU authenticates on a hosted journey, so the engine only records
// identity, hands out the redirect target and verifies the returned
// confirmation code.
type RedirectStages struct {
	Provider ScaProvider
	Config   config.Config
}

// Identification records the PSU identity and issues the redirect target for
// the hosted authentication journey
func (s *RedirectStages) Identification(req *http.Request, authorisation *models.AuthorisationRest, resource *models.ResourceRest, update models.AuthorisationUpdateRequest) (*models.AuthorisationUpdateResponse, ResponseType, error) {
	redirect, err := s.Provider.IssueRedirectLink(authorisation.MetaData.ID)
	if err != nil {
		err = fmt.Errorf("error issuing redirect link: [%v]", err)
		log.ErrorR(req, err)
		return nil, Error, err
	}

	response := stageResponse(authorisation, models.ScaStatusPsuIdentified)
	response.Links.ScaRedirect = s.redirectTarget(redirect.RedirectURL)
	response.PsuMessage = "Please continue authentication at your bank"

	return response, Success, nil
}

// redirectTarget resolves the provider's redirect reference against the
// configured web journey base. Providers hand back either an absolute URL or
// a journey path relative to the hosted journey.
func (s *RedirectStages) redirectTarget(reference string) string {
	if strings.HasPrefix(reference, "http://") || strings.HasPrefix(reference, "https://") {
		return reference
	}

	return strings.TrimSuffix(s.Config.ScaWebURL, "/") + "/" + strings.TrimPrefix(reference, "/")
}

// Authentication is not applicable to the redirect approach; credentials are
// collected on the hosted journey
func (s *RedirectStages) Authentication(req *http.Request, authorisation *models.AuthorisationRest, resource *models.ResourceRest, update models.AuthorisationUpdateRequest) (*models.AuthorisationUpdateResponse, ResponseType, error) {
	return unsupportedStepError(models.ApproachRedirect, StepAuthentication)
}

// MethodSelection is not applicable to the redirect approach
func (s *RedirectStages) MethodSelection(req *http.Request, authorisation *models.AuthorisationRest, resource *models.ResourceRest, update models.AuthorisationUpdateRequest) (*models.AuthorisationUpdateResponse, ResponseType, error) {
	return unsupportedStepError(models.ApproachRedirect, StepMethodSelection)
}

// AuthenticationData is not applicable to the redirect approach
func (s *RedirectStages) AuthenticationData(req *http.Request, authorisation *models.AuthorisationRest, resource *models.ResourceRest, update models.AuthorisationUpdateRequest) (*models.AuthorisationUpdateResponse, ResponseType, error) {
	return unsupportedStepError(models.ApproachRedirect, StepAuthenticationData)
}

// Confirmation verifies the code returned from the hosted journey and
// finalises the authorisation
func (s *RedirectStages) Confirmation(req *http.Request, authorisation *models.AuthorisationRest, resource *models.ResourceRest, update models.AuthorisationUpdateRequest) (*models.AuthorisationUpdateResponse, ResponseType, error) {
	psuID := effectivePsuID(authorisation, update)

	verification, err := s.Provider.VerifyScaCode(psuID, authorisation.MetaData.ID, update.ConfirmationCode)
	if err != nil {
		err = fmt.Errorf("error verifying confirmation code: [%v]", err)
		log.ErrorR(req, err)
		return nil, Error, err
	}

	if verification.Result != models.ProviderResultApproved {
		log.InfoR(req, "confirmation code declined by provider", log.Data{"authorisation_id": authorisation.MetaData.ID})
		return failedStageResponse(authorisation, verification.PsuMessage), Success, nil
	}

	return stageResponse(authorisation, models.ScaStatusFinalised), Success, nil
}
