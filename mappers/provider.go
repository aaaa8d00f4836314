package mappers

import (
	"github.com/companieshouse/sca.api.ch.gov.uk/models"
)

// MapProviderScaMethods maps the provider's authentication method list to
// the rest model served to the TPP
func MapProviderScaMethods(methods []models.ProviderScaMethod) []models.ScaMethodRest {
	mapped := make([]models.ScaMethodRest, 0, len(methods))
	for _, method := range methods {
		mapped = append(mapped, models.ScaMethodRest{
			ID:              method.ID,
			Type:            method.Type,
			Name:            method.Name,
			ExplanationText: method.ExplanationText,
		})
	}

	return mapped
}

// MapProviderChallenge maps a provider challenge response to the rest model
// served to the TPP
func MapProviderChallenge(challenge *models.IncomingProviderChallengeResponse) *models.ChallengeDataRest {
	if challenge == nil {
		return nil
	}

	return &models.ChallengeDataRest{
		OtpMaxLength:   challenge.OtpMaxLength,
		OtpFormat:      challenge.OtpFormat,
		AdditionalInfo: challenge.AdditionalInfo,
	}
}
