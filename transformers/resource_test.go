package transformers

import (
	"testing"
	"time"

	"github.com/companieshouse/sca.api.ch.gov.uk/models"
	. "github.com/smartystreets/goconvey/convey"
)

func TestUnitResourceTransformer(t *testing.T) {
	createdAt := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

	rest := models.ResourceRest{
		MetaData: models.ResourceMetaDataRest{
			ID:       "res-1",
			Domain:   models.DomainPayment,
			Checksum: "002_abc",
		},
		Status:                models.ResourceStatusPartiallyAuthorised,
		Reference:             "ref-123",
		Amount:                "10.50",
		Currency:              "GBP",
		AspspAccountIDs:       []string{"acc-1"},
		MultilevelScaRequired: true,
		PsuIDs:                []string{"psu-1"},
		CreatedAt:             createdAt,
		CreatedBy: models.CreatedByRest{
			Email:    "email@companieshouse.gov.uk",
			Forename: "forename",
			ID:       "id",
			Surname:  "surname",
		},
		Links: models.ResourceLinksRest{
			Self:           "resources/res-1",
			Authorisations: "resources/res-1/authorisations",
		},
		Etag: "etag",
		Kind: "sca#resource",
	}

	Convey("Rest to DB to rest round-trips all fields", t, func() {
		db := ResourceTransformer{}.TransformToDB(rest)

		So(db.ID, ShouldEqual, "res-1")
		So(db.Domain, ShouldEqual, string(models.DomainPayment))
		So(db.Checksum, ShouldEqual, "002_abc")
		So(db.Data.Status, ShouldEqual, string(models.ResourceStatusPartiallyAuthorised))
		So(db.Data.CreatedBy.Email, ShouldEqual, "email@companieshouse.gov.uk")

		roundTripped := ResourceTransformer{}.TransformToRest(db)
		So(roundTripped, ShouldResemble, rest)
	})
}

func TestUnitAuthorisationTransformer(t *testing.T) {
	createdAt := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

	db := models.AuthorisationDB{
		ID: "auth-1",
		Data: models.AuthorisationDataDB{
			ParentID:          "res-1",
			Domain:            string(models.DomainPayment),
			ScaApproach:       string(models.ApproachEmbedded),
			ScaStatus:         string(models.ScaStatusStarted),
			PsuID:             "psu-1",
			ChosenScaMethodID: "sms-1",
			CreatedAt:         createdAt,
			ExpiresAt:         createdAt.Add(30 * time.Minute),
		},
	}

	Convey("DB to rest decorates the links from the stored ids", t, func() {
		rest := AuthorisationTransformer{}.TransformToRest(db)

		So(rest.MetaData.ID, ShouldEqual, "auth-1")
		So(rest.MetaData.ParentID, ShouldEqual, "res-1")
		So(rest.ScaApproach, ShouldEqual, models.ApproachEmbedded)
		So(rest.ScaStatus, ShouldEqual, models.ScaStatusStarted)
		So(rest.Links.Self, ShouldEqual, "resources/res-1/authorisations/auth-1")
		So(rest.Links.Resource, ShouldEqual, "resources/res-1")
	})

	Convey("Rest to DB carries the metadata back to the stored shape", t, func() {
		rest := AuthorisationTransformer{}.TransformToRest(db)
		roundTripped := AuthorisationTransformer{}.TransformToDB(rest)

		So(roundTripped, ShouldResemble, db)
	})
}
