package handlers

import (
	"context"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/companieshouse/sca.api.ch.gov.uk/config"
	"github.com/companieshouse/sca.api.ch.gov.uk/dao"
	"github.com/companieshouse/sca.api.ch.gov.uk/helpers"
	"github.com/companieshouse/sca.api.ch.gov.uk/models"
	"github.com/golang/mock/gomock"
	"github.com/gorilla/mux"
	. "github.com/smartystreets/goconvey/convey"
)

func setUpHandlers(t *testing.T) (*gomock.Controller, *dao.MockDAO) {
	mockCtrl := gomock.NewController(t)
	mockDao := dao.NewMockDAO(mockCtrl)
	cfg, _ := config.Get()
	register(mux.NewRouter(), *cfg, mockDao)
	return mockCtrl, mockDao
}

func TestUnitHandleCreateResource(t *testing.T) {
	mockCtrl, mockDao := setUpHandlers(t)
	defer mockCtrl.Finish()

	Convey("Request body empty", t, func() {
		req := httptest.NewRequest("POST", "/resources", nil)
		w := httptest.NewRecorder()
		HandleCreateResource(w, req)
		So(w.Code, ShouldEqual, 400)
	})

	Convey("Request body invalid", t, func() {
		req := httptest.NewRequest("POST", "/resources", strings.NewReader("not json"))
		w := httptest.NewRecorder()
		HandleCreateResource(w, req)
		So(w.Code, ShouldEqual, 400)
	})

	Convey("Required fields missing", t, func() {
		req := httptest.NewRequest("POST", "/resources", strings.NewReader(`{"domain":"payment"}`))
		w := httptest.NewRecorder()
		HandleCreateResource(w, req)
		So(w.Code, ShouldEqual, 400)
	})

	Convey("Successful creation", t, func() {
		mockDao.EXPECT().CreateResource(gomock.Any()).Return(nil)

		body := `{"domain":"payment","reference":"ref-123","amount":"10.50","currency":"GBP"}`
		req := httptest.NewRequest("POST", "/resources", strings.NewReader(body))
		req.Header.Set("Eric-Authorised-User", "email@companieshouse.gov.uk; forename=forename; surname=surname")
		req.Header.Set("Eric-Identity", "identity")

		w := httptest.NewRecorder()
		HandleCreateResource(w, req)
		So(w.Code, ShouldEqual, 201)
		So(w.Header().Get("Content-Type"), ShouldEqual, "application/json")
		So(w.Header().Get("Location"), ShouldStartWith, "resources/")
	})
}

func TestUnitHandleGetResource(t *testing.T) {
	mockCtrl, _ := setUpHandlers(t)
	defer mockCtrl.Finish()

	Convey("No resource in context", t, func() {
		req := httptest.NewRequest("GET", "/resources/res-1", nil)
		w := httptest.NewRecorder()
		HandleGetResource(w, req)
		So(w.Code, ShouldEqual, 500)
	})

	Convey("Resource served from context", t, func() {
		resource := &models.ResourceRest{
			MetaData: models.ResourceMetaDataRest{ID: "res-1", Domain: models.DomainPayment},
			Status:   models.ResourceStatusReceived,
		}

		req := httptest.NewRequest("GET", "/resources/res-1", nil)
		ctx := context.WithValue(req.Context(), helpers.ContextKeyResource, resource)

		w := httptest.NewRecorder()
		HandleGetResource(w, req.WithContext(ctx))
		So(w.Code, ShouldEqual, 200)
		So(w.Body.String(), ShouldContainSubstring, `"status":"received"`)
	})
}

func TestUnitHandleGetResourceStatus(t *testing.T) {
	mockCtrl, _ := setUpHandlers(t)
	defer mockCtrl.Finish()

	Convey("Status served from context", t, func() {
		resource := &models.ResourceRest{
			MetaData: models.ResourceMetaDataRest{ID: "res-1"},
			Status:   models.ResourceStatusValid,
		}

		req := httptest.NewRequest("GET", "/resources/res-1/status", nil)
		ctx := context.WithValue(req.Context(), helpers.ContextKeyResource, resource)

		w := httptest.NewRecorder()
		HandleGetResourceStatus(w, req.WithContext(ctx))
		So(w.Code, ShouldEqual, 200)
		So(w.Body.String(), ShouldContainSubstring, `"status":"valid"`)
	})
}
