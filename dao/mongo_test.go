package dao

import (
	"testing"
	"time"

	"github.com/companieshouse/sca.api.ch.gov.uk/config"
	"github.com/companieshouse/sca.api.ch.gov.uk/models"
	"go.mongodb.org/mongo-driver/mongo"

	. "github.com/smartystreets/goconvey/convey"
)

func TestUnitCreateResource(t *testing.T) {
	Convey("Create Resource", t, func() {
		cfg, _ := config.Get()
		client = &mongo.Client{}
		dao := NewDAO(cfg)

		resource := models.ResourceDB{}
		err := dao.CreateResource(&resource)
		So(err.Error(), ShouldEqual, "the Insert operation must have a Deployment set before Execute can be called")
	})
}

func TestUnitGetResource(t *testing.T) {
	Convey("Get Resource", t, func() {
		cfg, _ := config.Get()
		client = &mongo.Client{}
		dao := NewDAO(cfg)

		resource, err := dao.GetResource("id123")
		So(resource, ShouldBeNil)
		So(err.Error(), ShouldEqual, "the Find operation must have a Deployment set before Execute can be called")
	})
}

func TestUnitSaveResource(t *testing.T) {
	Convey("Save Resource", t, func() {
		cfg, _ := config.Get()
		client = &mongo.Client{}
		dao := NewDAO(cfg)

		resource := models.ResourceDB{
			ID:     "id123",
			Domain: "payment",
			Data: models.ResourceDataDB{
				Status:    "received",
				Reference: "ref-123",
			},
		}
		err := dao.SaveResource(&resource)
		So(err.Error(), ShouldEqual, "the Update operation must have a Deployment set before Execute can be called")
	})
}

func TestUnitFindResourcesByStatus(t *testing.T) {
	Convey("Find resources by status", t, func() {
		cfg, _ := config.Get()
		client = &mongo.Client{}
		dao := NewDAO(cfg)

		resources, err := dao.FindResourcesByStatus("payment", []string{"received"}, 0, 100)
		So(resources, ShouldBeNil)
		So(err.Error(), ShouldEqual, "the Find operation must have a Deployment set before Execute can be called")
	})
}

func TestUnitCountResourcesByStatus(t *testing.T) {
	Convey("Count resources by status", t, func() {
		cfg, _ := config.Get()
		client = &mongo.Client{}
		dao := NewDAO(cfg)

		count, err := dao.CountResourcesByStatus("payment", []string{"received"})
		So(count, ShouldEqual, 0)
		So(err, ShouldNotBeNil)
	})
}

func TestUnitBulkUpdateResourceStatus(t *testing.T) {
	Convey("Bulk update resource status", t, func() {
		cfg, _ := config.Get()
		client = &mongo.Client{}
		dao := NewDAO(cfg)

		err := dao.BulkUpdateResourceStatus([]string{"id123"}, "expired", time.Now())
		So(err.Error(), ShouldEqual, "the Update operation must have a Deployment set before Execute can be called")
	})
}

func TestUnitCreateAuthorisation(t *testing.T) {
	Convey("Create Authorisation", t, func() {
		cfg, _ := config.Get()
		client = &mongo.Client{}
		dao := NewDAO(cfg)

		authorisation := models.AuthorisationDB{}
		err := dao.CreateAuthorisation(&authorisation)
		So(err.Error(), ShouldEqual, "the Insert operation must have a Deployment set before Execute can be called")
	})
}

func TestUnitGetAuthorisation(t *testing.T) {
	Convey("Get Authorisation", t, func() {
		cfg, _ := config.Get()
		client = &mongo.Client{}
		dao := NewDAO(cfg)

		authorisation, err := dao.GetAuthorisation("id123")
		So(authorisation, ShouldBeNil)
		So(err.Error(), ShouldEqual, "the Find operation must have a Deployment set before Execute can be called")
	})
}

func TestUnitPatchAuthorisation(t *testing.T) {
	Convey("Patch Authorisation", t, func() {
		cfg, _ := config.Get()
		client = &mongo.Client{}
		dao := NewDAO(cfg)

		update := models.AuthorisationDB{
			ID: "id123",
			Data: models.AuthorisationDataDB{
				ScaStatus: "finalised",
				PsuID:     "psu-1",
			},
		}
		err := dao.PatchAuthorisation("id123", &update)
		So(err.Error(), ShouldEqual, "the Update operation must have a Deployment set before Execute can be called")
	})
}

func TestUnitFindAuthorisationsByParent(t *testing.T) {
	Convey("Find authorisations by parent", t, func() {
		cfg, _ := config.Get()
		client = &mongo.Client{}
		dao := NewDAO(cfg)

		authorisations, err := dao.FindAuthorisationsByParent("id123")
		So(authorisations, ShouldBeNil)
		So(err.Error(), ShouldEqual, "the Find operation must have a Deployment set before Execute can be called")
	})
}
