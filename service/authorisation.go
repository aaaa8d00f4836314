package service

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/companieshouse/chs.go/log"
	"github.com/companieshouse/sca.api.ch.gov.uk/config"
	"github.com/companieshouse/sca.api.ch.gov.uk/dao"
	"github.com/companieshouse/sca.api.ch.gov.uk/helpers"
	"github.com/companieshouse/sca.api.ch.gov.uk/models"
	"github.com/companieshouse/sca.api.ch.gov.uk/transformers"
	"github.com/companieshouse/sca.api.ch.gov.uk/utils"
	"github.com/google/uuid"
)

// AuthorisationService drives the SCA authorisation lifecycle: creating
// authorisation attempts against a resource, applying classified updates
// through the stage table, and settling the parent resource when an attempt
// reaches a terminal status.
type AuthorisationService struct {
	DAO       dao.DAO
	Config    config.Config
	Registry  *StageRegistry
	Validator *AuthorisationValidator
	Guard     *ChecksumGuard
	Clock     Clock
}

// CreateAuthorisation starts a new authorisation attempt on the given
// resource
func (service *AuthorisationService) CreateAuthorisation(req *http.Request, resource *models.ResourceRest, incoming *models.IncomingAuthorisationRequest) (*models.AuthorisationRest, ResponseType, error) {
	existing, err := service.authorisationsForParent(resource.MetaData.ID)
	if err != nil {
		log.ErrorR(req, err)
		return nil, Error, err
	}

	if responseType, err := service.Validator.ValidateCreate(resource, existing, incoming.PsuID); responseType != Success {
		log.InfoR(req, "authorisation creation rejected", log.Data{"resource_id": resource.MetaData.ID, "reason": err.Error()})
		return nil, responseType, err
	}

	now := service.Clock.Now()

	authorisation := models.AuthorisationRest{
		MetaData: models.AuthorisationMetaDataRest{
			ID:       uuid.NewString(),
			ParentID: resource.MetaData.ID,
			Domain:   resource.MetaData.Domain,
		},
		ScaStatus:   models.ScaStatusReceived,
		ScaApproach: service.resolveApproach(req),
		PsuID:       incoming.PsuID,
		CreatedAt:   now,
		ExpiresAt:   now.Add(service.Config.AuthorisationExpiryPeriod),
	}
	authorisation.Links = models.AuthorisationLinksRest{
		Self:     fmt.Sprintf("resources/%s/authorisations/%s", resource.MetaData.ID, authorisation.MetaData.ID),
		Resource: fmt.Sprintf("resources/%s", resource.MetaData.ID),
	}

	authorisationDB := transformers.AuthorisationTransformer{}.TransformToDB(authorisation)
	if err := service.DAO.CreateAuthorisation(&authorisationDB); err != nil {
		err = fmt.Errorf("error creating authorisation in database: [%v]", err)
		log.ErrorR(req, err)
		return nil, Error, err
	}

	if incoming.PsuID != "" {
		if responseType, err := service.recordPsuOnResource(req, resource.MetaData.ID, incoming.PsuID); responseType != Success {
			return nil, responseType, err
		}
	}

	log.InfoR(req, "authorisation created", log.Data{
		"authorisation_id": authorisation.MetaData.ID,
		"resource_id":      resource.MetaData.ID,
		"sca_approach":     authorisation.ScaApproach,
	})

	return &authorisation, Success, nil
}

// UpdateAuthorisation classifies the update, runs the matching stage handler
// and applies its outcome to the authorisation and, on a terminal status, to
// the parent resource
func (service *AuthorisationService) UpdateAuthorisation(req *http.Request, resourceID, authorisationID string, update models.AuthorisationUpdateRequest) (*models.AuthorisationUpdateResponse, ResponseType, error) {
	previousResource, err := service.DAO.GetResource(resourceID)
	if err != nil {
		err = fmt.Errorf("error getting resource [%s] from database: [%v]", resourceID, err)
		log.ErrorR(req, err)
		return nil, Error, err
	}
	if previousResource == nil {
		return nil, NotFound, nil
	}

	authorisationDB, err := service.DAO.GetAuthorisation(authorisationID)
	if err != nil {
		err = fmt.Errorf("error getting authorisation [%s] from database: [%v]", authorisationID, err)
		log.ErrorR(req, err)
		return nil, Error, err
	}
	if authorisationDB == nil {
		return nil, NotFound, nil
	}

	resource := transformers.ResourceTransformer{}.TransformToRest(*previousResource)
	authorisation := transformers.AuthorisationTransformer{}.TransformToRest(*authorisationDB)

	step := ClassifyUpdate(update)

	if responseType, err := service.Validator.ValidateUpdate(&resource, &authorisation, resourceID, step, update); responseType != Success {
		log.InfoR(req, "authorisation update rejected", log.Data{"authorisation_id": authorisationID, "reason": err.Error()})
		return nil, responseType, err
	}

	handler, err := service.Registry.Resolve(authorisation.MetaData.Domain, authorisation.ScaApproach, step)
	if err != nil {
		log.ErrorR(req, err)
		return nil, Error, err
	}

	response, responseType, err := handler(req, &authorisation, &resource, update)
	if responseType != Success {
		return nil, responseType, err
	}

	if err := service.applyStageOutcome(req, &authorisation, update, response); err != nil {
		log.ErrorR(req, err)
		return nil, Error, err
	}

	if response.ScaStatus.IsTerminal() {
		if responseType, err := service.settleResource(req, previousResource, &authorisation, response.ScaStatus); responseType != Success {
			return nil, responseType, err
		}
	}

	log.InfoR(req, "authorisation updated", log.Data{
		"authorisation_id": authorisationID,
		"step":             step,
		"sca_status":       response.ScaStatus,
	})

	return response, Success, nil
}

// GetAuthorisation retrieves an authorisation by id, checking it belongs to
// the given resource
func (service *AuthorisationService) GetAuthorisation(req *http.Request, resourceID, authorisationID string) (*models.AuthorisationRest, ResponseType, error) {
	authorisationDB, err := service.DAO.GetAuthorisation(authorisationID)
	if err != nil {
		err = fmt.Errorf("error getting authorisation [%s] from database: [%v]", authorisationID, err)
		log.ErrorR(req, err)
		return nil, Error, err
	}
	if authorisationDB == nil || authorisationDB.Data.ParentID != resourceID {
		return nil, NotFound, nil
	}

	authorisation := transformers.AuthorisationTransformer{}.TransformToRest(*authorisationDB)

	return &authorisation, Success, nil
}

// GetAuthorisationsByParent lists the authorisation attempts made against a
// resource
func (service *AuthorisationService) GetAuthorisationsByParent(req *http.Request, resourceID string) ([]models.AuthorisationRest, ResponseType, error) {
	authorisations, err := service.authorisationsForParent(resourceID)
	if err != nil {
		log.ErrorR(req, err)
		return nil, Error, err
	}

	return authorisations, Success, nil
}

// resolveApproach picks the SCA approach for a new authorisation. An explicit
// TPP redirect preference wins; otherwise the configured default applies.
func (service *AuthorisationService) resolveApproach(req *http.Request) models.ScaApproach {
	switch helpers.GetTppRedirectPreference(req) {
	case "true":
		return models.ApproachRedirect
	case "false":
		return models.ApproachEmbedded
	default:
		return models.ScaApproach(service.Config.DefaultScaApproach)
	}
}

// applyStageOutcome patches the authorisation with the fields the stage
// handler settled
func (service *AuthorisationService) applyStageOutcome(req *http.Request, authorisation *models.AuthorisationRest, update models.AuthorisationUpdateRequest, response *models.AuthorisationUpdateResponse) error {
	patch := models.AuthorisationDB{
		ID: authorisation.MetaData.ID,
		Data: models.AuthorisationDataDB{
			ScaStatus: string(response.ScaStatus),
			PsuID:     update.PsuID,
		},
	}

	if response.ChosenScaMethod != nil {
		patch.Data.ChosenScaMethodID = response.ChosenScaMethod.ID
	}
	if response.ScaStatus == models.ScaStatusFailed {
		patch.Data.FailureReason = response.PsuMessage
	}

	if err := service.DAO.PatchAuthorisation(authorisation.MetaData.ID, &patch); err != nil {
		return fmt.Errorf("error patching authorisation [%s]: [%v]", authorisation.MetaData.ID, err)
	}

	authorisation.ScaStatus = response.ScaStatus
	if update.PsuID != "" {
		authorisation.PsuID = update.PsuID
	}

	return nil
}

// settleResource applies a terminal authorisation outcome to the parent
// resource. A resource still awaiting confirmation moves to valid,
// partially-authorised or rejected exactly once; already settled resources
// are left untouched.
func (service *AuthorisationService) settleResource(req *http.Request, previous *models.ResourceDB, authorisation *models.AuthorisationRest, outcome models.ScaStatus) (ResponseType, error) {
	resource := transformers.ResourceTransformer{}.TransformToRest(*previous)

	if !resourceAwaitingConfirmation(resource.Status) {
		return Success, nil
	}

	var next models.ResourceStatus

	switch {
	case outcome == models.ScaStatusFailed:
		next = models.ResourceStatusRejected

	case outcome.IsTerminalSuccess():
		authorised, err := service.countAuthorisedPsus(authorisation.MetaData.ParentID)
		if err != nil {
			log.ErrorR(req, err)
			return Error, err
		}

		if resource.MultilevelScaRequired && authorised < 2 {
			next = models.ResourceStatusPartiallyAuthorised
		} else {
			next = models.ResourceStatusValid
		}

	default:
		return Success, nil
	}

	if resource.Status == next {
		return Success, nil
	}

	if psuID := authorisation.PsuID; psuID != "" && !contains(resource.PsuIDs, psuID) {
		resource.PsuIDs = append(resource.PsuIDs, psuID)
	}
	resource.Status = next
	resource.StatusChangedAt = service.Clock.Now()
	resource.Etag = utils.GenerateEtag()

	updated := transformers.ResourceTransformer{}.TransformToDB(resource)
	if err := service.Guard.VerifyAndSave(&updated); err != nil {
		var checksumErr *ChecksumError
		if errors.As(err, &checksumErr) {
			log.ErrorR(req, err)
			return ChecksumMismatch, err
		}
		log.ErrorR(req, err)
		return Error, err
	}

	log.InfoR(req, "resource settled", log.Data{"resource_id": resource.MetaData.ID, "status": next})

	return Success, nil
}

// countAuthorisedPsus counts the distinct PSU identities holding a
// successful authorisation against the resource
func (service *AuthorisationService) countAuthorisedPsus(resourceID string) (int, error) {
	authorisations, err := service.authorisationsForParent(resourceID)
	if err != nil {
		return 0, err
	}

	seen := make(map[string]bool)
	for _, authorisation := range authorisations {
		if authorisation.ScaStatus.IsTerminalSuccess() && authorisation.PsuID != "" {
			seen[authorisation.PsuID] = true
		}
	}

	return len(seen), nil
}

// recordPsuOnResource appends a newly seen PSU identity to the resource
func (service *AuthorisationService) recordPsuOnResource(req *http.Request, resourceID, psuID string) (ResponseType, error) {
	previous, err := service.DAO.GetResource(resourceID)
	if err != nil {
		err = fmt.Errorf("error getting resource [%s] from database: [%v]", resourceID, err)
		log.ErrorR(req, err)
		return Error, err
	}
	if previous == nil {
		return NotFound, nil
	}

	resource := transformers.ResourceTransformer{}.TransformToRest(*previous)
	if contains(resource.PsuIDs, psuID) {
		return Success, nil
	}

	resource.PsuIDs = append(resource.PsuIDs, psuID)
	resource.Etag = utils.GenerateEtag()

	updated := transformers.ResourceTransformer{}.TransformToDB(resource)
	if err := service.Guard.VerifyAndSave(&updated); err != nil {
		var checksumErr *ChecksumError
		if errors.As(err, &checksumErr) {
			log.ErrorR(req, err)
			return ChecksumMismatch, err
		}
		log.ErrorR(req, err)
		return Error, err
	}

	return Success, nil
}

func (service *AuthorisationService) authorisationsForParent(resourceID string) ([]models.AuthorisationRest, error) {
	authorisationsDB, err := service.DAO.FindAuthorisationsByParent(resourceID)
	if err != nil {
		return nil, fmt.Errorf("error getting authorisations for resource [%s]: [%v]", resourceID, err)
	}

	authorisations := make([]models.AuthorisationRest, 0, len(authorisationsDB))
	for _, authorisationDB := range authorisationsDB {
		authorisations = append(authorisations, transformers.AuthorisationTransformer{}.TransformToRest(authorisationDB))
	}

	return authorisations, nil
}

func resourceAwaitingConfirmation(status models.ResourceStatus) bool {
	for _, awaiting := range models.AwaitingConfirmationStatuses {
		if status == awaiting {
			return true
		}
	}
	return false
}

func contains(values []string, value string) bool {
	for _, v := range values {
		if v == value {
			return true
		}
	}
	return false
}
