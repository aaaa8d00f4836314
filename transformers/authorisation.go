package transformers

import (
	"fmt"

	"github.com/companieshouse/sca.api.ch.gov.uk/models"
)

// AuthorisationTransformer transforms authorisation data between rest and
// database models
type AuthorisationTransformer struct{}

// TransformToDB transforms an authorisation rest model into an authorisation
// database model
func (at AuthorisationTransformer) TransformToDB(rest models.AuthorisationRest) models.AuthorisationDB {
	authorisation := models.AuthorisationDB{
		ID: rest.MetaData.ID,
		Data: models.AuthorisationDataDB{
			ParentID:          rest.MetaData.ParentID,
			Domain:            string(rest.MetaData.Domain),
			ScaApproach:       string(rest.ScaApproach),
			ScaStatus:         string(rest.ScaStatus),
			PsuID:             rest.PsuID,
			ChosenScaMethodID: rest.ChosenScaMethodID,
			FailureReason:     rest.FailureReason,
			CreatedAt:         rest.CreatedAt,
			ExpiresAt:         rest.ExpiresAt,
		},
	}

	return authorisation
}

// TransformToRest transforms an authorisation database model into an
// authorisation rest model
func (at AuthorisationTransformer) TransformToRest(dbAuthorisation models.AuthorisationDB) models.AuthorisationRest {
	authorisation := models.AuthorisationRest{
		MetaData: models.AuthorisationMetaDataRest{
			ID:       dbAuthorisation.ID,
			ParentID: dbAuthorisation.Data.ParentID,
			Domain:   models.Domain(dbAuthorisation.Data.Domain),
		},
		ScaStatus:         models.ScaStatus(dbAuthorisation.Data.ScaStatus),
		ScaApproach:       models.ScaApproach(dbAuthorisation.Data.ScaApproach),
		PsuID:             dbAuthorisation.Data.PsuID,
		ChosenScaMethodID: dbAuthorisation.Data.ChosenScaMethodID,
		FailureReason:     dbAuthorisation.Data.FailureReason,
		CreatedAt:         dbAuthorisation.Data.CreatedAt,
		ExpiresAt:         dbAuthorisation.Data.ExpiresAt,
		Links: models.AuthorisationLinksRest{
			Self:     fmt.Sprintf("resources/%s/authorisations/%s", dbAuthorisation.Data.ParentID, dbAuthorisation.ID),
			Resource: fmt.Sprintf("resources/%s", dbAuthorisation.Data.ParentID),
		},
	}

	return authorisation
}
