package service

import (
	"github.com/companieshouse/sca.api.ch.gov.uk/models"
)

// effectivePsuID prefers the identity supplied on this update over the one
// recorded at an earlier step
func effectivePsuID(authorisation *models.AuthorisationRest, update models.AuthorisationUpdateRequest) string {
	if update.PsuID != "" {
		return update.PsuID
	}
	return authorisation.PsuID
}

func stageResponse(authorisation *models.AuthorisationRest, status models.ScaStatus) *models.AuthorisationUpdateResponse {
	return &models.AuthorisationUpdateResponse{
		ScaStatus: status,
		Links:     authorisation.Links,
	}
}

func failedStageResponse(authorisation *models.AuthorisationRest, reason string) *models.AuthorisationUpdateResponse {
	response := stageResponse(authorisation, models.ScaStatusFailed)
	response.PsuMessage = reason
	return response
}

func unsupportedStepError(approach models.ScaApproach, step StepKind) (*models.AuthorisationUpdateResponse, ResponseType, error) {
	return nil, InvalidData, newValidationError(models.ErrCodeFormatError,
		"step [%s] is not applicable to the %s SCA approach", step, approach)
}
