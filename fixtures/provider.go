package fixtures

import "github.com/companieshouse/sca.api.ch.gov.uk/models"

func GetProviderAuthApprovedResponse(methods int) *models.IncomingProviderAuthResponse {
	response := &models.IncomingProviderAuthResponse{
		Result: models.ProviderResultApproved,
	}

	if methods >= 1 {
		response.ScaMethods = append(response.ScaMethods, models.ProviderScaMethod{
			ID:   "sms-1",
			Type: "SMS_OTP",
			Name: "SMS to registered mobile",
		})
	}
	if methods >= 2 {
		response.ScaMethods = append(response.ScaMethods, models.ProviderScaMethod{
			ID:   "push-1",
			Type: "PUSH_OTP",
			Name: "Push to banking app",
		})
	}

	return response
}

func GetProviderAuthDeclinedResponse() *models.IncomingProviderAuthResponse {
	return &models.IncomingProviderAuthResponse{
		Result:     models.ProviderResultDeclined,
		PsuMessage: "Credentials not recognised",
	}
}

func GetProviderChallengeResponse() *models.IncomingProviderChallengeResponse {
	return &models.IncomingProviderChallengeResponse{
		Result:       models.ProviderResultApproved,
		OtpMaxLength: 6,
		OtpFormat:    "integer",
		PsuMessage:   "Enter the code we sent to your phone",
	}
}

func GetProviderVerifyResponse(result string) *models.IncomingProviderVerifyResponse {
	response := &models.IncomingProviderVerifyResponse{Result: result}
	if result != models.ProviderResultApproved {
		response.PsuMessage = "The code entered was not correct"
	}

	return response
}

func GetProviderDecoupledResponse(result string) *models.IncomingProviderDecoupledResponse {
	return &models.IncomingProviderDecoupledResponse{
		Result:     result,
		PsuMessage: "Confirm this request in your banking app",
	}
}

func GetProviderTokenResponse(result string, exempted bool) *models.IncomingProviderTokenResponse {
	return &models.IncomingProviderTokenResponse{
		Result:      result,
		ScaExempted: exempted,
	}
}

func GetProviderRedirectResponse() *models.IncomingProviderRedirectResponse {
	return &models.IncomingProviderRedirectResponse{
		Result:      models.ProviderResultApproved,
		RedirectURL: "https://sca.web/journey/abc123",
	}
}
