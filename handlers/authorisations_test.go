package handlers

import (
	"context"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/companieshouse/sca.api.ch.gov.uk/helpers"
	"github.com/companieshouse/sca.api.ch.gov.uk/models"
	"github.com/golang/mock/gomock"
	"github.com/gorilla/mux"
	. "github.com/smartystreets/goconvey/convey"
)

func TestUnitHandleCreateAuthorisation(t *testing.T) {
	mockCtrl, mockDao := setUpHandlers(t)
	defer mockCtrl.Finish()

	Convey("No resource in context", t, func() {
		req := httptest.NewRequest("POST", "/resources/res-1/authorisations", nil)
		w := httptest.NewRecorder()
		HandleCreateAuthorisation(w, req)
		So(w.Code, ShouldEqual, 500)
	})

	Convey("Successful creation without a body", t, func() {
		resource := &models.ResourceRest{
			MetaData: models.ResourceMetaDataRest{ID: "res-1", Domain: models.DomainPayment},
			Status:   models.ResourceStatusReceived,
		}

		mockDao.EXPECT().FindAuthorisationsByParent("res-1").Return(nil, nil)
		mockDao.EXPECT().CreateAuthorisation(gomock.Any()).Return(nil)

		req := httptest.NewRequest("POST", "/resources/res-1/authorisations", nil)
		ctx := context.WithValue(req.Context(), helpers.ContextKeyResource, resource)

		w := httptest.NewRecorder()
		HandleCreateAuthorisation(w, req.WithContext(ctx))
		So(w.Code, ShouldEqual, 201)
		So(w.Body.String(), ShouldContainSubstring, `"sca_status":"received"`)
	})

	Convey("A blocked resource surfaces the stable error code", t, func() {
		resource := &models.ResourceRest{
			MetaData:             models.ResourceMetaDataRest{ID: "res-1", Domain: models.DomainPayment},
			Status:               models.ResourceStatusReceived,
			SigningBasketBlocked: true,
		}

		mockDao.EXPECT().FindAuthorisationsByParent("res-1").Return(nil, nil)

		req := httptest.NewRequest("POST", "/resources/res-1/authorisations", strings.NewReader(`{"psu_id":"psu-1"}`))
		ctx := context.WithValue(req.Context(), helpers.ContextKeyResource, resource)

		w := httptest.NewRecorder()
		HandleCreateAuthorisation(w, req.WithContext(ctx))
		So(w.Code, ShouldEqual, 400)
		So(w.Body.String(), ShouldContainSubstring, models.ErrCodeResourceBlocked)
	})
}

func TestUnitHandleUpdateAuthorisation(t *testing.T) {
	mockCtrl, mockDao := setUpHandlers(t)
	defer mockCtrl.Finish()

	Convey("Request body empty", t, func() {
		req := httptest.NewRequest("PUT", "/resources/res-1/authorisations/auth-1", nil)
		w := httptest.NewRecorder()
		HandleUpdateAuthorisation(w, req)
		So(w.Code, ShouldEqual, 400)
	})

	Convey("Unknown resource is not found", t, func() {
		mockDao.EXPECT().GetResource("res-x").Return(nil, nil)

		req := httptest.NewRequest("PUT", "/resources/res-x/authorisations/auth-1", strings.NewReader(`{}`))
		req = mux.SetURLVars(req, map[string]string{"resource_id": "res-x", "authorisation_id": "auth-1"})

		w := httptest.NewRecorder()
		HandleUpdateAuthorisation(w, req)
		So(w.Code, ShouldEqual, 404)
	})

	Convey("A terminal authorisation conflicts", t, func() {
		resource := &models.ResourceDB{
			ID:     "res-1",
			Domain: string(models.DomainPayment),
			Data:   models.ResourceDataDB{Status: string(models.ResourceStatusReceived)},
		}
		authorisation := &models.AuthorisationDB{
			ID: "auth-1",
			Data: models.AuthorisationDataDB{
				ParentID:    "res-1",
				Domain:      string(models.DomainPayment),
				ScaApproach: string(models.ApproachRedirect),
				ScaStatus:   string(models.ScaStatusFinalised),
				ExpiresAt:   time.Now().Add(time.Hour),
			},
		}

		mockDao.EXPECT().GetResource("res-1").Return(resource, nil)
		mockDao.EXPECT().GetAuthorisation("auth-1").Return(authorisation, nil)

		req := httptest.NewRequest("PUT", "/resources/res-1/authorisations/auth-1", strings.NewReader(`{"psu_id":"psu-1"}`))
		req = mux.SetURLVars(req, map[string]string{"resource_id": "res-1", "authorisation_id": "auth-1"})

		w := httptest.NewRecorder()
		HandleUpdateAuthorisation(w, req)
		So(w.Code, ShouldEqual, 409)
		So(w.Body.String(), ShouldContainSubstring, models.ErrCodeStatusInvalid)
	})
}

func TestUnitHandleGetAuthorisationStatus(t *testing.T) {
	mockCtrl, mockDao := setUpHandlers(t)
	defer mockCtrl.Finish()

	Convey("The SCA status alone is served", t, func() {
		authorisation := &models.AuthorisationDB{
			ID: "auth-1",
			Data: models.AuthorisationDataDB{
				ParentID:  "res-1",
				Domain:    string(models.DomainPayment),
				ScaStatus: string(models.ScaStatusStarted),
			},
		}

		mockDao.EXPECT().GetAuthorisation("auth-1").Return(authorisation, nil)

		req := httptest.NewRequest("GET", "/resources/res-1/authorisations/auth-1/status", nil)
		req = mux.SetURLVars(req, map[string]string{"resource_id": "res-1", "authorisation_id": "auth-1"})

		w := httptest.NewRecorder()
		HandleGetAuthorisationStatus(w, req)
		So(w.Code, ShouldEqual, 200)
		So(w.Body.String(), ShouldEqual, "{\"sca_status\":\"started\"}\n")
	})
}

func TestUnitHandleListAuthorisations(t *testing.T) {
	mockCtrl, mockDao := setUpHandlers(t)
	defer mockCtrl.Finish()

	Convey("The authorisations of the resource in context are listed", t, func() {
		resource := &models.ResourceRest{
			MetaData: models.ResourceMetaDataRest{ID: "res-1", Domain: models.DomainPayment},
		}

		mockDao.EXPECT().FindAuthorisationsByParent("res-1").Return([]models.AuthorisationDB{
			{ID: "auth-1", Data: models.AuthorisationDataDB{ParentID: "res-1", ScaStatus: string(models.ScaStatusReceived)}},
		}, nil)

		req := httptest.NewRequest("GET", "/resources/res-1/authorisations", nil)
		ctx := context.WithValue(req.Context(), helpers.ContextKeyResource, resource)

		w := httptest.NewRecorder()
		HandleListAuthorisations(w, req.WithContext(ctx))
		So(w.Code, ShouldEqual, 200)
		So(w.Body.String(), ShouldContainSubstring, "auth-1")
	})
}
