package transformers

import (
	"github.com/companieshouse/sca.api.ch.gov.uk/models"
)

// ResourceTransformer transforms resource aggregate data between rest and
// database models
type ResourceTransformer struct{}

// TransformToDB transforms a resource rest model into a resource database model
func (rt ResourceTransformer) TransformToDB(rest models.ResourceRest) models.ResourceDB {
	resourceData := models.ResourceDataDB{
		Status:                  string(rest.Status),
		Reference:               rest.Reference,
		Amount:                  rest.Amount,
		Currency:                rest.Currency,
		AspspAccountIDs:         rest.AspspAccountIDs,
		MultilevelScaRequired:   rest.MultilevelScaRequired,
		SigningBasketBlocked:    rest.SigningBasketBlocked,
		SigningBasketAuthorised: rest.SigningBasketAuthorised,
		PsuIDs:                  rest.PsuIDs,
		CreatedAt:               rest.CreatedAt,
		StatusChangedAt:         rest.StatusChangedAt,
		ValidUntil:              rest.ValidUntil,
		Etag:                    rest.Etag,
		Kind:                    rest.Kind,
	}

	resourceData.CreatedBy = models.CreatedByDB(rest.CreatedBy)
	resourceData.Links = models.ResourceLinks{
		Self:           rest.Links.Self,
		Authorisations: rest.Links.Authorisations,
	}

	resource := models.ResourceDB{
		ID:       rest.MetaData.ID,
		Domain:   string(rest.MetaData.Domain),
		Checksum: rest.MetaData.Checksum,
		Data:     resourceData,
	}

	return resource
}

// TransformToRest transforms a resource database model into a resource rest model
func (rt ResourceTransformer) TransformToRest(dbResource models.ResourceDB) models.ResourceRest {
	resource := models.ResourceRest{
		MetaData: models.ResourceMetaDataRest{
			ID:       dbResource.ID,
			Domain:   models.Domain(dbResource.Domain),
			Checksum: dbResource.Checksum,
		},
		Status:                  models.ResourceStatus(dbResource.Data.Status),
		Reference:               dbResource.Data.Reference,
		Amount:                  dbResource.Data.Amount,
		Currency:                dbResource.Data.Currency,
		AspspAccountIDs:         dbResource.Data.AspspAccountIDs,
		MultilevelScaRequired:   dbResource.Data.MultilevelScaRequired,
		SigningBasketBlocked:    dbResource.Data.SigningBasketBlocked,
		SigningBasketAuthorised: dbResource.Data.SigningBasketAuthorised,
		PsuIDs:                  dbResource.Data.PsuIDs,
		CreatedAt:               dbResource.Data.CreatedAt,
		StatusChangedAt:         dbResource.Data.StatusChangedAt,
		ValidUntil:              dbResource.Data.ValidUntil,
		CreatedBy:               models.CreatedByRest(dbResource.Data.CreatedBy),
		Links: models.ResourceLinksRest{
			Self:           dbResource.Data.Links.Self,
			Authorisations: dbResource.Data.Links.Authorisations,
		},
		Etag: dbResource.Data.Etag,
		Kind: dbResource.Data.Kind,
	}

	return resource
}
