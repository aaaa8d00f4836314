package interceptors

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/companieshouse/sca.api.ch.gov.uk/config"
	"github.com/companieshouse/sca.api.ch.gov.uk/dao"
	"github.com/companieshouse/sca.api.ch.gov.uk/helpers"
	"github.com/companieshouse/sca.api.ch.gov.uk/models"
	"github.com/companieshouse/sca.api.ch.gov.uk/service"
	"github.com/golang/mock/gomock"
	"github.com/gorilla/mux"

	. "github.com/smartystreets/goconvey/convey"
)

func GetTestHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, req *http.Request) {
		w.WriteHeader(http.StatusOK)
	}
}

// resourceServedHandler asserts the interceptor put the resource into context
func resourceServedHandler(t *testing.T) http.HandlerFunc {
	return func(w http.ResponseWriter, req *http.Request) {
		_, ok := req.Context().Value(helpers.ContextKeyResource).(*models.ResourceRest)
		if !ok {
			t.Error("resource missing from request context")
		}
		w.WriteHeader(http.StatusOK)
	}
}

func createInterceptorWithMockDAO(controller *gomock.Controller, cfg *config.Config) (ResourceAuthenticationInterceptor, *dao.MockDAO) {
	mockDAO := dao.NewMockDAO(controller)
	resourceService := service.ResourceService{
		DAO:    mockDAO,
		Config: *cfg,
		Guard:  service.NewChecksumGuard(mockDAO),
		Clock:  service.NewSystemClock(),
	}
	return ResourceAuthenticationInterceptor{Service: resourceService}, mockDAO
}

func storedResource(creatorID string) *models.ResourceDB {
	return &models.ResourceDB{
		ID:     "res-1",
		Domain: string(models.DomainPayment),
		Data: models.ResourceDataDB{
			Status:    string(models.ResourceStatusReceived),
			CreatedBy: models.CreatedByDB{ID: creatorID},
		},
	}
}

func TestUnitResourceAuthenticationInterceptor(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()
	cfg, _ := config.Get()

	Convey("No resource ID in request", t, func() {
		req, err := http.NewRequest("GET", "/resources/", nil)
		So(err, ShouldBeNil)
		req.Header.Set("Eric-Identity", "identity")
		req.Header.Set("Eric-Identity-Type", "oauth2")

		interceptor, _ := createInterceptorWithMockDAO(mockCtrl, cfg)

		w := httptest.NewRecorder()
		test := interceptor.ResourceAuthenticationIntercept(GetTestHandler())
		test.ServeHTTP(w, req)
		So(w.Code, ShouldEqual, http.StatusBadRequest)
	})

	Convey("Identity type not oauth2 or API key", t, func() {
		req, err := http.NewRequest("GET", "/resources/res-1", nil)
		So(err, ShouldBeNil)
		req = mux.SetURLVars(req, map[string]string{"resource_id": "res-1"})
		req.Header.Set("Eric-Identity", "identity")
		req.Header.Set("Eric-Identity-Type", "other")

		interceptor, _ := createInterceptorWithMockDAO(mockCtrl, cfg)

		w := httptest.NewRecorder()
		test := interceptor.ResourceAuthenticationIntercept(GetTestHandler())
		test.ServeHTTP(w, req)
		So(w.Code, ShouldEqual, http.StatusUnauthorized)
	})

	Convey("No authorised identity", t, func() {
		req, err := http.NewRequest("GET", "/resources/res-1", nil)
		So(err, ShouldBeNil)
		req = mux.SetURLVars(req, map[string]string{"resource_id": "res-1"})
		req.Header.Set("Eric-Identity-Type", "oauth2")

		interceptor, _ := createInterceptorWithMockDAO(mockCtrl, cfg)

		w := httptest.NewRecorder()
		test := interceptor.ResourceAuthenticationIntercept(GetTestHandler())
		test.ServeHTTP(w, req)
		So(w.Code, ShouldEqual, http.StatusUnauthorized)
	})

	Convey("Error retrieving resource", t, func() {
		req, err := http.NewRequest("GET", "/resources/res-1", nil)
		So(err, ShouldBeNil)
		req = mux.SetURLVars(req, map[string]string{"resource_id": "res-1"})
		req.Header.Set("Eric-Identity", "identity")
		req.Header.Set("Eric-Identity-Type", "oauth2")

		interceptor, mockDAO := createInterceptorWithMockDAO(mockCtrl, cfg)
		mockDAO.EXPECT().GetResource("res-1").Return(nil, fmt.Errorf("error reading from db"))

		w := httptest.NewRecorder()
		test := interceptor.ResourceAuthenticationIntercept(GetTestHandler())
		test.ServeHTTP(w, req)
		So(w.Code, ShouldEqual, http.StatusInternalServerError)
	})

	Convey("Resource not found", t, func() {
		req, err := http.NewRequest("GET", "/resources/res-1", nil)
		So(err, ShouldBeNil)
		req = mux.SetURLVars(req, map[string]string{"resource_id": "res-1"})
		req.Header.Set("Eric-Identity", "identity")
		req.Header.Set("Eric-Identity-Type", "oauth2")

		interceptor, mockDAO := createInterceptorWithMockDAO(mockCtrl, cfg)
		mockDAO.EXPECT().GetResource("res-1").Return(nil, nil)

		w := httptest.NewRecorder()
		test := interceptor.ResourceAuthenticationIntercept(GetTestHandler())
		test.ServeHTTP(w, req)
		So(w.Code, ShouldEqual, http.StatusNotFound)
	})

	Convey("Authorised as creator", t, func() {
		req, err := http.NewRequest("GET", "/resources/res-1", nil)
		So(err, ShouldBeNil)
		req = mux.SetURLVars(req, map[string]string{"resource_id": "res-1"})
		req.Header.Set("Eric-Identity", "identity")
		req.Header.Set("Eric-Identity-Type", "oauth2")

		interceptor, mockDAO := createInterceptorWithMockDAO(mockCtrl, cfg)
		mockDAO.EXPECT().GetResource("res-1").Return(storedResource("identity"), nil)

		w := httptest.NewRecorder()
		test := interceptor.ResourceAuthenticationIntercept(resourceServedHandler(t))
		test.ServeHTTP(w, req)
		So(w.Code, ShouldEqual, http.StatusOK)
	})

	Convey("Authorised as API key request", t, func() {
		req, err := http.NewRequest("PUT", "/resources/res-1/authorisations/auth-1", nil)
		So(err, ShouldBeNil)
		req = mux.SetURLVars(req, map[string]string{"resource_id": "res-1"})
		req.Header.Set("Eric-Identity", "identity")
		req.Header.Set("Eric-Identity-Type", "key")

		interceptor, mockDAO := createInterceptorWithMockDAO(mockCtrl, cfg)
		mockDAO.EXPECT().GetResource("res-1").Return(storedResource("someone-else"), nil)

		w := httptest.NewRecorder()
		test := interceptor.ResourceAuthenticationIntercept(resourceServedHandler(t))
		test.ServeHTTP(w, req)
		So(w.Code, ShouldEqual, http.StatusOK)
	})

	Convey("Authorised as maintenance role on GET", t, func() {
		req, err := http.NewRequest("GET", "/resources/res-1", nil)
		So(err, ShouldBeNil)
		req = mux.SetURLVars(req, map[string]string{"resource_id": "res-1"})
		req.Header.Set("Eric-Identity", "identity")
		req.Header.Set("Eric-Identity-Type", "oauth2")
		req.Header.Set("ERIC-Authorised-Roles", "/admin/sca-maintenance")

		interceptor, mockDAO := createInterceptorWithMockDAO(mockCtrl, cfg)
		mockDAO.EXPECT().GetResource("res-1").Return(storedResource("someone-else"), nil)

		w := httptest.NewRecorder()
		test := interceptor.ResourceAuthenticationIntercept(GetTestHandler())
		test.ServeHTTP(w, req)
		So(w.Code, ShouldEqual, http.StatusOK)
	})

	Convey("Maintenance role cannot write", t, func() {
		req, err := http.NewRequest("PUT", "/resources/res-1/authorisations/auth-1", nil)
		So(err, ShouldBeNil)
		req = mux.SetURLVars(req, map[string]string{"resource_id": "res-1"})
		req.Header.Set("Eric-Identity", "identity")
		req.Header.Set("Eric-Identity-Type", "oauth2")
		req.Header.Set("ERIC-Authorised-Roles", "/admin/sca-maintenance")

		interceptor, mockDAO := createInterceptorWithMockDAO(mockCtrl, cfg)
		mockDAO.EXPECT().GetResource("res-1").Return(storedResource("someone-else"), nil)

		w := httptest.NewRecorder()
		test := interceptor.ResourceAuthenticationIntercept(GetTestHandler())
		test.ServeHTTP(w, req)
		So(w.Code, ShouldEqual, http.StatusUnauthorized)
	})
}

func TestUnitMaintenanceAuthenticationIntercept(t *testing.T) {

	Convey("Identity type not oauth2 or API key", t, func() {
		req, err := http.NewRequest("POST", "/admin/sweeps", nil)
		So(err, ShouldBeNil)
		req.Header.Set("Eric-Identity-Type", "other")

		w := httptest.NewRecorder()
		test := MaintenanceAuthenticationIntercept(GetTestHandler())
		test.ServeHTTP(w, req)
		So(w.Code, ShouldEqual, http.StatusUnauthorized)
	})

	Convey("Oauth2 caller without the maintenance role", t, func() {
		req, err := http.NewRequest("POST", "/admin/sweeps", nil)
		So(err, ShouldBeNil)
		req.Header.Set("Eric-Identity", "identity")
		req.Header.Set("Eric-Identity-Type", "oauth2")
		req.Header.Set("ERIC-Authorised-Roles", "noroles")

		w := httptest.NewRecorder()
		test := MaintenanceAuthenticationIntercept(GetTestHandler())
		test.ServeHTTP(w, req)
		So(w.Code, ShouldEqual, http.StatusForbidden)
	})

	Convey("Oauth2 caller with the maintenance role", t, func() {
		req, err := http.NewRequest("POST", "/admin/sweeps", nil)
		So(err, ShouldBeNil)
		req.Header.Set("Eric-Identity", "identity")
		req.Header.Set("Eric-Identity-Type", "oauth2")
		req.Header.Set("ERIC-Authorised-Roles", "/admin/sca-maintenance")

		userServed := func(w http.ResponseWriter, r *http.Request) {
			userID, ok := r.Context().Value(helpers.ContextKeyUserID).(string)
			if !ok || userID != "identity" {
				t.Error("acting user missing from request context")
			}
			w.WriteHeader(http.StatusOK)
		}

		w := httptest.NewRecorder()
		test := MaintenanceAuthenticationIntercept(http.HandlerFunc(userServed))
		test.ServeHTTP(w, req)
		So(w.Code, ShouldEqual, http.StatusOK)
	})

	Convey("API key caller", t, func() {
		req, err := http.NewRequest("POST", "/admin/sweeps", nil)
		So(err, ShouldBeNil)
		req.Header.Set("Eric-Identity", "identity")
		req.Header.Set("Eric-Identity-Type", "key")

		w := httptest.NewRecorder()
		test := MaintenanceAuthenticationIntercept(GetTestHandler())
		test.ServeHTTP(w, req)
		So(w.Code, ShouldEqual, http.StatusOK)
	})
}
