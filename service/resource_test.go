package service

import (
	"net/http/httptest"
	"testing"

	"github.com/companieshouse/sca.api.ch.gov.uk/config"
	"github.com/companieshouse/sca.api.ch.gov.uk/dao"
	"github.com/companieshouse/sca.api.ch.gov.uk/models"
	"github.com/golang/mock/gomock"
	. "github.com/smartystreets/goconvey/convey"
)

func createMockResourceService(mockDao *dao.MockDAO) *ResourceService {
	return &ResourceService{
		DAO:    mockDao,
		Config: config.Config{},
		Guard:  NewChecksumGuard(mockDao),
		Clock:  fixedClock{now: testNow},
	}
}

func TestUnitCreateResource(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	incoming := func() *models.IncomingResourceRequest {
		return &models.IncomingResourceRequest{
			Domain:    string(models.DomainPayment),
			Reference: "ref-123",
			Amount:    "10.50",
			Currency:  "GBP",
		}
	}

	Convey("An unsupported domain is invalid", t, func() {
		service := createMockResourceService(dao.NewMockDAO(mockCtrl))
		req := httptest.NewRequest("POST", "/test", nil)

		request := incoming()
		request.Domain = "lending"

		resource, responseType, err := service.CreateResource(req, request)
		So(resource, ShouldBeNil)
		So(responseType, ShouldEqual, InvalidData)
		So(err, ShouldNotBeNil)
	})

	Convey("A malformed amount is invalid", t, func() {
		service := createMockResourceService(dao.NewMockDAO(mockCtrl))
		req := httptest.NewRequest("POST", "/test", nil)

		request := incoming()
		request.Amount = "ten pounds"

		resource, responseType, err := service.CreateResource(req, request)
		So(resource, ShouldBeNil)
		So(responseType, ShouldEqual, InvalidData)
		So(err, ShouldNotBeNil)
	})

	Convey("A malformed valid_until is invalid", t, func() {
		service := createMockResourceService(dao.NewMockDAO(mockCtrl))
		req := httptest.NewRequest("POST", "/test", nil)

		request := incoming()
		request.ValidUntil = "tomorrow"

		resource, responseType, err := service.CreateResource(req, request)
		So(resource, ShouldBeNil)
		So(responseType, ShouldEqual, InvalidData)
		So(err, ShouldNotBeNil)
	})

	Convey("A valid request creates the resource in the received status", t, func() {
		mockDao := dao.NewMockDAO(mockCtrl)
		service := createMockResourceService(mockDao)

		mockDao.EXPECT().CreateResource(gomock.Any()).DoAndReturn(func(resource *models.ResourceDB) error {
			So(resource.Domain, ShouldEqual, string(models.DomainPayment))
			So(resource.Data.Status, ShouldEqual, string(models.ResourceStatusReceived))
			So(resource.Data.Reference, ShouldEqual, "ref-123")
			So(resource.Checksum, ShouldBeEmpty)
			return nil
		})

		req := httptest.NewRequest("POST", "/test", nil)
		req.Header.Set("Eric-Authorised-User", "email@companieshouse.gov.uk; forename=forename; surname=surname")
		req.Header.Set("Eric-Identity", "identity")

		resource, responseType, err := service.CreateResource(req, incoming())
		So(err, ShouldBeNil)
		So(responseType, ShouldEqual, Success)
		So(resource.MetaData.ID, ShouldNotBeEmpty)
		So(resource.Status, ShouldEqual, models.ResourceStatusReceived)
		So(resource.CreatedBy.Email, ShouldEqual, "email@companieshouse.gov.uk")
		So(resource.CreatedBy.ID, ShouldEqual, "identity")
		So(resource.Links.Self, ShouldEqual, "resources/"+resource.MetaData.ID)
		So(resource.Etag, ShouldNotBeEmpty)
	})
}

func TestUnitGetResource(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	Convey("A missing resource is not found", t, func() {
		mockDao := dao.NewMockDAO(mockCtrl)
		service := createMockResourceService(mockDao)

		mockDao.EXPECT().GetResource("res-x").Return(nil, nil)

		req := httptest.NewRequest("GET", "/test", nil)
		resource, responseType, err := service.GetResource(req, "res-x")
		So(resource, ShouldBeNil)
		So(responseType, ShouldEqual, NotFound)
		So(err, ShouldBeNil)
	})

	Convey("A stored resource is transformed to the rest model", t, func() {
		mockDao := dao.NewMockDAO(mockCtrl)
		service := createMockResourceService(mockDao)

		mockDao.EXPECT().GetResource("res-1").Return(settledResource("res-1"), nil)

		req := httptest.NewRequest("GET", "/test", nil)
		resource, responseType, err := service.GetResource(req, "res-1")
		So(err, ShouldBeNil)
		So(responseType, ShouldEqual, Success)
		So(resource.MetaData.ID, ShouldEqual, "res-1")
		So(resource.Status, ShouldEqual, models.ResourceStatusValid)
	})
}

func TestUnitUpdateResourceStatus(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	Convey("A revocation on an intact resource goes through the guard", t, func() {
		mockDao := dao.NewMockDAO(mockCtrl)
		service := createMockResourceService(mockDao)

		previous := settledResource("res-1")
		checksum, err := service.Guard.Registry.Current().Calculate(previous)
		So(err, ShouldBeNil)
		previous.Checksum = checksum

		mockDao.EXPECT().GetResource("res-1").Return(previous, nil).Times(2)
		mockDao.EXPECT().SaveResource(gomock.Any()).DoAndReturn(func(resource *models.ResourceDB) error {
			So(resource.Data.Status, ShouldEqual, string(models.ResourceStatusRevoked))
			So(resource.Checksum, ShouldBeEmpty)
			return nil
		})

		req := httptest.NewRequest("PATCH", "/test", nil)
		resource, responseType, err := service.UpdateResourceStatus(req, "res-1", models.ResourceStatusRevoked)
		So(err, ShouldBeNil)
		So(responseType, ShouldEqual, Success)
		So(resource.Status, ShouldEqual, models.ResourceStatusRevoked)
	})

	Convey("A tampered resource reports a checksum mismatch and is not written", t, func() {
		mockDao := dao.NewMockDAO(mockCtrl)
		service := createMockResourceService(mockDao)

		previous := settledResource("res-1")
		checksum, err := service.Guard.Registry.Current().Calculate(previous)
		So(err, ShouldBeNil)
		previous.Checksum = checksum
		previous.Data.Amount = "999.99"

		mockDao.EXPECT().GetResource("res-1").Return(previous, nil).Times(2)

		req := httptest.NewRequest("PATCH", "/test", nil)
		resource, responseType, err := service.UpdateResourceStatus(req, "res-1", models.ResourceStatusRevoked)
		So(resource, ShouldBeNil)
		So(responseType, ShouldEqual, ChecksumMismatch)
		So(err, ShouldNotBeNil)
	})
}
