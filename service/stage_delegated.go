package service

import (
	"fmt"
	"net/http"

	"github.com/companieshouse/chs.go/log"
	"github.com/companieshouse/sca.api.ch.gov.uk/models"
)

// DelegatedTokenStages holds the stage handlers for the delegated-token SCA
// approach. The PSU's identity was established out-of-band by a previously
// issued access token, so identification can finalise the authorisation in a
// single step.
type DelegatedTokenStages struct {
	Provider ScaProvider
}

// Identification validates the delegated token for the PSU and finalises or
// exempts the authorisation
func (s *DelegatedTokenStages) Identification(req *http.Request, authorisation *models.AuthorisationRest, resource *models.ResourceRest, update models.AuthorisationUpdateRequest) (*models.AuthorisationUpdateResponse, ResponseType, error) {
	return s.validateToken(req, authorisation, update)
}

// Confirmation re-validates the delegated token before closing the
// authorisation
func (s *DelegatedTokenStages) Confirmation(req *http.Request, authorisation *models.AuthorisationRest, resource *models.ResourceRest, update models.AuthorisationUpdateRequest) (*models.AuthorisationUpdateResponse, ResponseType, error) {
	return s.validateToken(req, authorisation, update)
}

// Unsupported rejects steps that have no meaning under the delegated-token
// approach
func (s *DelegatedTokenStages) Unsupported(req *http.Request, authorisation *models.AuthorisationRest, resource *models.ResourceRest, update models.AuthorisationUpdateRequest) (*models.AuthorisationUpdateResponse, ResponseType, error) {
	return unsupportedStepError(models.ApproachDelegatedToken, ClassifyUpdate(update))
}

func (s *DelegatedTokenStages) validateToken(req *http.Request, authorisation *models.AuthorisationRest, update models.AuthorisationUpdateRequest) (*models.AuthorisationUpdateResponse, ResponseType, error) {
	psuID := effectivePsuID(authorisation, update)
	if psuID == "" {
		return nil, InvalidData, newValidationError(models.ErrCodeFormatError, "no PSU identity supplied for token validation")
	}

	token, err := s.Provider.ValidateDelegatedToken(psuID)
	if err != nil {
		err = fmt.Errorf("error validating delegated token: [%v]", err)
		log.ErrorR(req, err)
		return nil, Error, err
	}

	if token.Result != models.ProviderResultApproved {
		log.InfoR(req, "delegated token declined by provider", log.Data{"authorisation_id": authorisation.MetaData.ID})
		return failedStageResponse(authorisation, token.PsuMessage), Success, nil
	}

	if token.ScaExempted {
		return stageResponse(authorisation, models.ScaStatusExempted), Success, nil
	}

	return stageResponse(authorisation, models.ScaStatusFinalised), Success, nil
}
