package service

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/companieshouse/chs.go/log"
	"github.com/companieshouse/sca.api.ch.gov.uk/config"
	"github.com/companieshouse/sca.api.ch.gov.uk/dao"
	"github.com/companieshouse/sca.api.ch.gov.uk/helpers"
	"github.com/companieshouse/sca.api.ch.gov.uk/models"
	"github.com/companieshouse/sca.api.ch.gov.uk/transformers"
	"github.com/companieshouse/sca.api.ch.gov.uk/utils"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ResourceService owns the consent/payment aggregates that authorisations
// attach to
type ResourceService struct {
	DAO    dao.DAO
	Config config.Config
	Guard  *ChecksumGuard
	Clock  Clock
}

// CreateResource creates a resource in the received status and returns it
func (service *ResourceService) CreateResource(req *http.Request, incoming *models.IncomingResourceRequest) (*models.ResourceRest, ResponseType, error) {
	domain := models.Domain(incoming.Domain)
	if !domain.IsValid() {
		return nil, InvalidData, newValidationError(models.ErrCodeFormatError, "domain [%s] is not supported", incoming.Domain)
	}

	if incoming.Amount != "" {
		if _, err := decimal.NewFromString(incoming.Amount); err != nil {
			return nil, InvalidData, newValidationError(models.ErrCodeFormatError, "amount [%s] is not a valid decimal", incoming.Amount)
		}
	}

	var validUntil time.Time
	if incoming.ValidUntil != "" {
		parsed, err := time.Parse(time.RFC3339, incoming.ValidUntil)
		if err != nil {
			return nil, InvalidData, newValidationError(models.ErrCodeFormatError, "valid_until [%s] is not a valid RFC3339 timestamp", incoming.ValidUntil)
		}
		validUntil = parsed
	}

	createdBy, err := createdByFromRequest(req)
	if err != nil {
		log.ErrorR(req, err)
		return nil, Error, err
	}

	now := service.Clock.Now()

	resource := models.ResourceRest{
		MetaData: models.ResourceMetaDataRest{
			ID:     uuid.NewString(),
			Domain: domain,
		},
		Status:                resourceInitialStatus(),
		Reference:             incoming.Reference,
		Amount:                incoming.Amount,
		Currency:              incoming.Currency,
		AspspAccountIDs:       incoming.AspspAccountIDs,
		MultilevelScaRequired: incoming.MultilevelScaRequired,
		CreatedAt:             now,
		StatusChangedAt:       now,
		ValidUntil:            validUntil,
		CreatedBy:             createdBy,
		Etag:                  utils.GenerateEtag(),
		Kind:                  "sca#resource",
	}
	resource.Links = models.ResourceLinksRest{
		Self:           fmt.Sprintf("resources/%s", resource.MetaData.ID),
		Authorisations: fmt.Sprintf("resources/%s/authorisations", resource.MetaData.ID),
	}

	resourceDB := transformers.ResourceTransformer{}.TransformToDB(resource)
	if err := service.DAO.CreateResource(&resourceDB); err != nil {
		err = fmt.Errorf("error creating resource in database: [%v]", err)
		log.ErrorR(req, err)
		return nil, Error, err
	}

	log.InfoR(req, "resource created", log.Data{"resource_id": resource.MetaData.ID, "domain": domain})

	return &resource, Success, nil
}

// GetResource retrieves a resource by id
func (service *ResourceService) GetResource(req *http.Request, id string) (*models.ResourceRest, ResponseType, error) {
	resourceDB, err := service.DAO.GetResource(id)
	if err != nil {
		err = fmt.Errorf("error getting resource [%s] from database: [%v]", id, err)
		log.ErrorR(req, err)
		return nil, Error, err
	}
	if resourceDB == nil {
		return nil, NotFound, nil
	}

	resource := transformers.ResourceTransformer{}.TransformToRest(*resourceDB)

	return &resource, Success, nil
}

// UpdateResourceStatus moves a resource to the given status through the
// checksum guard
func (service *ResourceService) UpdateResourceStatus(req *http.Request, id string, status models.ResourceStatus) (*models.ResourceRest, ResponseType, error) {
	previous, err := service.DAO.GetResource(id)
	if err != nil {
		err = fmt.Errorf("error getting resource [%s] from database: [%v]", id, err)
		log.ErrorR(req, err)
		return nil, Error, err
	}
	if previous == nil {
		return nil, NotFound, nil
	}

	resource := transformers.ResourceTransformer{}.TransformToRest(*previous)
	resource.Status = status
	resource.StatusChangedAt = service.Clock.Now()
	resource.Etag = utils.GenerateEtag()

	updated := transformers.ResourceTransformer{}.TransformToDB(resource)
	if err := service.Guard.VerifyAndSave(&updated); err != nil {
		var checksumErr *ChecksumError
		if errors.As(err, &checksumErr) {
			log.ErrorR(req, err)
			return nil, ChecksumMismatch, err
		}
		log.ErrorR(req, err)
		return nil, Error, err
	}

	resource.MetaData.Checksum = updated.Checksum

	log.InfoR(req, "resource status updated", log.Data{"resource_id": id, "status": status})

	return &resource, Success, nil
}

// SetSigningBasketBlocked flags or unflags the resource as blocked by a
// pending signing basket
func (service *ResourceService) SetSigningBasketBlocked(req *http.Request, id string, blocked bool) (*models.ResourceRest, ResponseType, error) {
	previous, err := service.DAO.GetResource(id)
	if err != nil {
		err = fmt.Errorf("error getting resource [%s] from database: [%v]", id, err)
		log.ErrorR(req, err)
		return nil, Error, err
	}
	if previous == nil {
		return nil, NotFound, nil
	}

	resource := transformers.ResourceTransformer{}.TransformToRest(*previous)
	resource.SigningBasketBlocked = blocked
	resource.Etag = utils.GenerateEtag()

	updated := transformers.ResourceTransformer{}.TransformToDB(resource)
	if err := service.Guard.VerifyAndSave(&updated); err != nil {
		var checksumErr *ChecksumError
		if errors.As(err, &checksumErr) {
			log.ErrorR(req, err)
			return nil, ChecksumMismatch, err
		}
		log.ErrorR(req, err)
		return nil, Error, err
	}

	resource.MetaData.Checksum = updated.Checksum

	return &resource, Success, nil
}

func resourceInitialStatus() models.ResourceStatus {
	return models.ResourceStatusReceived
}

// createdByFromRequest reads the authorised user details forwarded on the
// request headers
func createdByFromRequest(req *http.Request) (models.CreatedByRest, error) {
	details, err := authUserDetailsFromRequest(req)
	if err != nil {
		return models.CreatedByRest{}, err
	}

	return models.CreatedByRest{
		ID:       details.ID,
		Email:    details.Email,
		Forename: details.Forename,
		Surname:  details.Surname,
	}, nil
}

func authUserDetailsFromRequest(req *http.Request) (models.AuthUserDetails, error) {
	user := strings.Split(helpers.GetAuthorisedUser(req), ";")
	email := user[0]
	var forename string
	var surname string

	for i := 1; i < len(user); i++ {
		v := strings.Split(user[i], "=")
		if v[0] == " forename" {
			forename = v[1]
		} else if v[0] == " surname" {
			surname = v[1]
		} else {
			return models.AuthUserDetails{}, fmt.Errorf("unexpected format in Eric-Authorised-User: %s", user)
		}
	}

	return models.AuthUserDetails{
		ID:       helpers.GetAuthorisedIdentity(req),
		Email:    email,
		Forename: forename,
		Surname:  surname,
	}, nil
}
