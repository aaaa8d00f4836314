package service

import (
	"fmt"
	"net/http"

	"github.com/companieshouse/chs.go/log"
	"github.com/companieshouse/sca.api.ch.gov.uk/models"
)

// DecoupledStages holds the stage handlers for the decoupled SCA approach.
// The PSU confirms on a paired device; the engine starts the confirmation
// and polls for its outcome, holding no open connection in between.
type DecoupledStages struct {
	Provider ScaProvider
}

// Identification records the PSU identity supplied on the update
func (s *DecoupledStages) Identification(req *http.Request, authorisation *models.AuthorisationRest, resource *models.ResourceRest, update models.AuthorisationUpdateRequest) (*models.AuthorisationUpdateResponse, ResponseType, error) {
	if update.PsuID == "" && authorisation.PsuID == "" {
		return nil, InvalidData, newValidationError(models.ErrCodeFormatError, "no PSU identity supplied for identification")
	}

	response := stageResponse(authorisation, models.ScaStatusPsuIdentified)
	response.PsuMessage = "Please use your banking app to continue"

	return response, Success, nil
}

// Authentication verifies the PSU's credentials and pushes the confirmation
// to their paired device
func (s *DecoupledStages) Authentication(req *http.Request, authorisation *models.AuthorisationRest, resource *models.ResourceRest, update models.AuthorisationUpdateRequest) (*models.AuthorisationUpdateResponse, ResponseType, error) {
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

	return s.startDecoupled(req, authorisation, psuID, "")
}

// MethodSelection pushes the confirmation to the device paired with the
// chosen method
func (s *DecoupledStages) MethodSelection(req *http.Request, authorisation *models.AuthorisationRest, resource *models.ResourceRest, update models.AuthorisationUpdateRequest) (*models.AuthorisationUpdateResponse, ResponseType, error) {
	psuID := effectivePsuID(authorisation, update)
	if psuID == "" {
		return nil, InvalidData, newValidationError(models.ErrCodeFormatError, "no PSU identity available for method selection")
	}

	return s.startDecoupled(req, authorisation, psuID, update.AuthenticationMethodID)
}

// AuthenticationData polls the provider for the device confirmation outcome
func (s *DecoupledStages) AuthenticationData(req *http.Request, authorisation *models.AuthorisationRest, resource *models.ResourceRest, update models.AuthorisationUpdateRequest) (*models.AuthorisationUpdateResponse, ResponseType, error) {
	return s.pollConfirmation(req, authorisation, update)
}

// Confirmation polls the provider for the device confirmation outcome
func (s *DecoupledStages) Confirmation(req *http.Request, authorisation *models.AuthorisationRest, resource *models.ResourceRest, update models.AuthorisationUpdateRequest) (*models.AuthorisationUpdateResponse, ResponseType, error) {
	return s.pollConfirmation(req, authorisation, update)
}

func (s *DecoupledStages) startDecoupled(req *http.Request, authorisation *models.AuthorisationRest, psuID, methodID string) (*models.AuthorisationUpdateResponse, ResponseType, error) {
	decoupled, err := s.Provider.StartDecoupled(psuID, authorisation.MetaData.ID, methodID)
	if err != nil {
		err = fmt.Errorf("error starting decoupled confirmation: [%v]", err)
		log.ErrorR(req, err)
		return nil, Error, err
	}

	if decoupled.Result == models.ProviderResultDeclined {
		log.InfoR(req, "decoupled confirmation declined by provider", log.Data{"authorisation_id": authorisation.MetaData.ID})
		return failedStageResponse(authorisation, decoupled.PsuMessage), Success, nil
	}

	response := stageResponse(authorisation, models.ScaStatusMethodSelected)
	if methodID != "" {
		response.ChosenScaMethod = &models.ScaMethodRest{ID: methodID}
	}
	response.PsuMessage = decoupled.PsuMessage

	return response, Success, nil
}

func (s *DecoupledStages) pollConfirmation(req *http.Request, authorisation *models.AuthorisationRest, update models.AuthorisationUpdateRequest) (*models.AuthorisationUpdateResponse, ResponseType, error) {
	psuID := effectivePsuID(authorisation, update)

	confirmation, err := s.Provider.PollDecoupledConfirmation(psuID, authorisation.MetaData.ID)
	if err != nil {
		err = fmt.Errorf("error polling decoupled confirmation: [%v]", err)
		log.ErrorR(req, err)
		return nil, Error, err
	}

	switch confirmation.Result {
	case models.ProviderResultApproved:
		return stageResponse(authorisation, models.ScaStatusFinalised), Success, nil
	case models.ProviderResultPending:
		response := stageResponse(authorisation, models.ScaStatusStarted)
		response.PsuMessage = "Awaiting confirmation on your device"
		return response, Success, nil
	default:
		log.InfoR(req, "decoupled confirmation declined", log.Data{"authorisation_id": authorisation.MetaData.ID})
		return failedStageResponse(authorisation, confirmation.PsuMessage), Success, nil
	}
}
