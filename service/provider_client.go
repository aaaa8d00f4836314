package service

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io/ioutil"
	"net/http"

	"github.com/companieshouse/sca.api.ch.gov.uk/config"
	"github.com/companieshouse/sca.api.ch.gov.uk/models"
)

// ProviderClient is an HTTP-backed implementation of ScaProvider talking to
// the ASPSP SCA provider service
type ProviderClient struct {
	Config config.Config
}

// AuthenticatePsu asks the provider to verify the PSU's credentials
func (p *ProviderClient) AuthenticatePsu(psuID, password string) (*models.IncomingProviderAuthResponse, error) {
	providerRequest := models.OutgoingProviderAuthRequest{
		PsuID:    psuID,
		Password: password,
	}

	response := &models.IncomingProviderAuthResponse{}
	err := p.callProvider("POST", p.Config.ScaProviderURL+"/authentications", providerRequest, response)
	if err != nil {
		return nil, err
	}

	return response, nil
}

// RequestAuthorisationCode asks the provider to send a one-time code to the
// PSU over the chosen authentication method
func (p *ProviderClient) RequestAuthorisationCode(psuID, methodID string) (*models.IncomingProviderChallengeResponse, error) {
	providerRequest := models.OutgoingProviderChallengeRequest{
		PsuID:    psuID,
		MethodID: methodID,
	}

	response := &models.IncomingProviderChallengeResponse{}
	err := p.callProvider("POST", p.Config.ScaProviderURL+"/challenges", providerRequest, response)
	if err != nil {
		return nil, err
	}

	return response, nil
}

// VerifyScaCode submits a code entered by the PSU for verification
func (p *ProviderClient) VerifyScaCode(psuID, authorisationID, code string) (*models.IncomingProviderVerifyResponse, error) {
	providerRequest := models.OutgoingProviderVerifyRequest{
		PsuID:           psuID,
		AuthorisationID: authorisationID,
		Code:            code,
	}

	response := &models.IncomingProviderVerifyResponse{}
	err := p.callProvider("POST", p.Config.ScaProviderURL+"/verifications", providerRequest, response)
	if err != nil {
		return nil, err
	}

	return response, nil
}

// StartDecoupled asks the provider to push a confirmation request to the
// PSU's paired device
func (p *ProviderClient) StartDecoupled(psuID, authorisationID, methodID string) (*models.IncomingProviderDecoupledResponse, error) {
	providerRequest := models.OutgoingProviderDecoupledRequest{
		PsuID:           psuID,
		AuthorisationID: authorisationID,
		MethodID:        methodID,
	}

	response := &models.IncomingProviderDecoupledResponse{}
	err := p.callProvider("POST", p.Config.ScaProviderURL+"/decoupled", providerRequest, response)
	if err != nil {
		return nil, err
	}

	return response, nil
}

// PollDecoupledConfirmation checks whether the PSU has confirmed on their
// paired device yet
func (p *ProviderClient) PollDecoupledConfirmation(psuID, authorisationID string) (*models.IncomingProviderDecoupledResponse, error) {
	response := &models.IncomingProviderDecoupledResponse{}
	err := p.callProvider("GET", fmt.Sprintf("%s/decoupled/%s", p.Config.ScaProviderURL, authorisationID), nil, response)
	if err != nil {
		return nil, err
	}

	return response, nil
}

// ValidateDelegatedToken checks whether the PSU identity carries a valid
// delegated access token established out-of-band
func (p *ProviderClient) ValidateDelegatedToken(psuID string) (*models.IncomingProviderTokenResponse, error) {
	response := &models.IncomingProviderTokenResponse{}
	err := p.callProvider("GET", fmt.Sprintf("%s/tokens/%s", p.Config.ScaProviderURL, psuID), nil, response)
	if err != nil {
		return nil, err
	}

	return response, nil
}

// IssueRedirectLink asks the provider for the redirect target of the hosted
// authentication journey
func (p *ProviderClient) IssueRedirectLink(authorisationID string) (*models.IncomingProviderRedirectResponse, error) {
	response := &models.IncomingProviderRedirectResponse{}
	err := p.callProvider("GET", fmt.Sprintf("%s/redirects/%s", p.Config.ScaProviderURL, authorisationID), nil, response)
	if err != nil {
		return nil, err
	}

	return response, nil
}

func (p *ProviderClient) callProvider(method, url string, requestBody interface{}, responseBody interface{}) error {
	var bodyReader *bytes.Buffer
	if requestBody != nil {
		marshalled, err := json.Marshal(requestBody)
		if err != nil {
			return fmt.Errorf("error marshalling provider request: [%s]", err)
		}
		bodyReader = bytes.NewBuffer(marshalled)
	} else {
		bodyReader = bytes.NewBuffer(nil)
	}

	request, err := http.NewRequest(method, url, bodyReader)
	if err != nil {
		return fmt.Errorf("error generating request for SCA provider: [%s]", err)
	}

	request.Header.Add("accept", "application/json")
	request.Header.Add("authorization", "Bearer "+p.Config.ScaProviderBearerToken)
	request.Header.Add("content-type", "application/json")

	resp, err := http.DefaultClient.Do(request)
	if err != nil {
		return fmt.Errorf("error sending request to SCA provider: [%s]", err)
	}

	defer resp.Body.Close()
	body, err := ioutil.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("error reading response from SCA provider: [%s]", err)
	}

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		return fmt.Errorf("error status [%v] back from SCA provider", resp.StatusCode)
	}

	err = json.Unmarshal(body, responseBody)
	if err != nil {
		return fmt.Errorf("error reading response from SCA provider: [%s]", err)
	}

	return nil
}
