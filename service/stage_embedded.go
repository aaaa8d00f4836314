package service

import (
	"fmt"
	"net/http"

	"github.com/companieshouse/chs.go/log"
	"github.com/companieshouse/sca.api.ch.gov.uk/mappers"
	"github.com/companieshouse/sca.api.ch.gov.uk/models"
)

// EmbeddedStages holds the stage handlers for the embedded SCA approach.
// Every authentication factor travels through the API itself.
type EmbeddedStages struct {
	Provider ScaProvider
}

// Identification records the PSU identity supplied on the update
func (s *EmbeddedStages) Identification(req *http.Request, authorisation *models.AuthorisationRest, resource *models.ResourceRest, update models.AuthorisationUpdateRequest) (*models.AuthorisationUpdateResponse, ResponseType, error) {
	if update.PsuID == "" && authorisation.PsuID == "" {
		return nil, InvalidData, newValidationError(models.ErrCodeFormatError, "no PSU identity supplied for identification")
	}

	return stageResponse(authorisation, models.ScaStatusPsuIdentified), Success, nil
}

// Authentication verifies the PSU's credentials with the provider. When only
// a single factor is required the authorisation finalises straight away;
// with a single available method the challenge is issued immediately;
// otherwise the PSU is offered the method list.
func (s *EmbeddedStages) Authentication(req *http.Request, authorisation *models.AuthorisationRest, resource *models.ResourceRest, update models.AuthorisationUpdateRequest) (*models.AuthorisationUpdateResponse, ResponseType, error) {
	psuID := effectivePsuID(authorisation, update)
	if psuID == "" {
		return nil, InvalidData, newValidationError(models.ErrCodeFormatError, "no PSU identity available for authentication")
	}

	authentication, err := s.Provider.AuthenticatePsu(psuID, update.Password)
	if err != nil {
		err = fmt.Errorf("error authenticating PSU with provider: [%v]", err)
		log.ErrorR(req, err)
		return nil, Error, err
	}

	if authentication.Result != models.ProviderResultApproved {
		log.InfoR(req, "PSU credentials declined by provider", log.Data{"authorisation_id": authorisation.MetaData.ID})
		return failedStageResponse(authorisation, "PSU credentials invalid"), Success, nil
	}

	if authentication.ScaExempted {
		return stageResponse(authorisation, models.ScaStatusExempted), Success, nil
	}

	// A single authentication factor satisfies SCA here, so skip method
	// selection and the challenge round-trip entirely.
	if len(authentication.ScaMethods) == 0 {
		return stageResponse(authorisation, models.ScaStatusFinalised), Success, nil
	}

	if len(authentication.ScaMethods) == 1 {
		return s.issueChallenge(req, authorisation, psuID, authentication.ScaMethods[0].ID)
	}

	response := stageResponse(authorisation, models.ScaStatusPsuAuthenticated)
	response.AvailableScaMethods = mappers.MapProviderScaMethods(authentication.ScaMethods)
	response.PsuMessage = "Please select an authentication method"

	return response, Success, nil
}

// MethodSelection requests a one-time code over the chosen method
func (s *EmbeddedStages) MethodSelection(req *http.Request, authorisation *models.AuthorisationRest, resource *models.ResourceRest, update models.AuthorisationUpdateRequest) (*models.AuthorisationUpdateResponse, ResponseType, error) {
	psuID := effectivePsuID(authorisation, update)
	if psuID == "" {
		return nil, InvalidData, newValidationError(models.ErrCodeFormatError, "no PSU identity available for method selection")
	}

	return s.issueChallenge(req, authorisation, psuID, update.AuthenticationMethodID)
}

// AuthenticationData verifies the one-time code entered by the PSU
func (s *EmbeddedStages) AuthenticationData(req *http.Request, authorisation *models.AuthorisationRest, resource *models.ResourceRest, update models.AuthorisationUpdateRequest) (*models.AuthorisationUpdateResponse, ResponseType, error) {
	return s.verifyCode(req, authorisation, update, update.ScaAuthenticationData)
}

// Confirmation verifies the confirmation code closing the authorisation
func (s *EmbeddedStages) Confirmation(req *http.Request, authorisation *models.AuthorisationRest, resource *models.ResourceRest, update models.AuthorisationUpdateRequest) (*models.AuthorisationUpdateResponse, ResponseType, error) {
	return s.verifyCode(req, authorisation, update, update.ConfirmationCode)
}

func (s *EmbeddedStages) issueChallenge(req *http.Request, authorisation *models.AuthorisationRest, psuID, methodID string) (*models.AuthorisationUpdateResponse, ResponseType, error) {
	challenge, err := s.Provider.RequestAuthorisationCode(psuID, methodID)
	if err != nil {
		err = fmt.Errorf("error requesting authorisation code: [%v]", err)
		log.ErrorR(req, err)
		return nil, Error, err
	}

	if challenge.Result != models.ProviderResultApproved {
		log.InfoR(req, "authorisation code request declined by provider", log.Data{"authorisation_id": authorisation.MetaData.ID})
		return failedStageResponse(authorisation, challenge.PsuMessage), Success, nil
	}

	response := stageResponse(authorisation, models.ScaStatusMethodSelected)
	response.ChosenScaMethod = &models.ScaMethodRest{ID: methodID}
	response.ChallengeData = mappers.MapProviderChallenge(challenge)
	response.PsuMessage = challenge.PsuMessage

	return response, Success, nil
}

func (s *EmbeddedStages) verifyCode(req *http.Request, authorisation *models.AuthorisationRest, update models.AuthorisationUpdateRequest, code string) (*models.AuthorisationUpdateResponse, ResponseType, error) {
	psuID := effectivePsuID(authorisation, update)

	verification, err := s.Provider.VerifyScaCode(psuID, authorisation.MetaData.ID, code)
	if err != nil {
		err = fmt.Errorf("error verifying authentication code: [%v]", err)
		log.ErrorR(req, err)
		return nil, Error, err
	}

	if verification.Result != models.ProviderResultApproved {
		log.InfoR(req, "authentication code declined by provider", log.Data{"authorisation_id": authorisation.MetaData.ID})
		return failedStageResponse(authorisation, verification.PsuMessage), Success, nil
	}

	return stageResponse(authorisation, models.ScaStatusFinalised), Success, nil
}
