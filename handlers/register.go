package handlers

import (
	"net/http"
	"os"

	"github.com/companieshouse/chs.go/log"
	"github.com/companieshouse/sca.api.ch.gov.uk/config"
	"github.com/companieshouse/sca.api.ch.gov.uk/dao"
	"github.com/companieshouse/sca.api.ch.gov.uk/interceptors"
	"github.com/companieshouse/sca.api.ch.gov.uk/service"
	"github.com/gorilla/mux"
)

var resourceService *service.ResourceService
var authorisationService *service.AuthorisationService
var sweepService *service.SweepService

// Register defines the route mappings for the main router and it's
// subrouters. The sweep service is returned so the caller can run the
// background expiration sweeps.
func Register(mainRouter *mux.Router, cfg config.Config) *service.SweepService {
	return register(mainRouter, cfg, dao.NewDAO(&cfg))
}

func register(mainRouter *mux.Router, cfg config.Config, d dao.DAO) *service.SweepService {
	clock := service.NewSystemClock()
	guard := service.NewChecksumGuard(d)
	provider := &service.ProviderClient{Config: cfg}

	registry := service.NewStageRegistry(provider, cfg)
	if err := registry.CheckCoverage(); err != nil {
		log.Error(err)
		os.Exit(1)
	}

	resourceService = &service.ResourceService{
		DAO:    d,
		Config: cfg,
		Guard:  guard,
		Clock:  clock,
	}

	authorisationService = &service.AuthorisationService{
		DAO:       d,
		Config:    cfg,
		Registry:  registry,
		Validator: &service.AuthorisationValidator{Clock: clock},
		Guard:     guard,
		Clock:     clock,
	}

	sweepService = &service.SweepService{
		DAO:    d,
		Config: cfg,
		Guard:  guard,
		Clock:  clock,
	}

	ra := &interceptors.ResourceAuthenticationInterceptor{
		Service: *resourceService,
	}

	mainRouter.HandleFunc("/healthcheck", healthCheck).Methods("GET").Name("get-healthcheck")

	// Create subrouters. Each group of endpoints carries its own middleware,
	// so the router needs to be split up.

	// create-resource must not be intercepted by the resource interceptor, so needs its own subrouter
	rootResourceRouter := mainRouter.PathPrefix("/resources").Subrouter()
	rootResourceRouter.HandleFunc("", HandleCreateResource).Methods("POST").Name("create-resource")

	// endpoints on a single resource need the resource loaded and authorised
	resourceRouter := rootResourceRouter.PathPrefix("/{resource_id}").Subrouter()
	resourceRouter.HandleFunc("", HandleGetResource).Methods("GET").Name("get-resource")
	resourceRouter.HandleFunc("/status", HandleGetResourceStatus).Methods("GET").Name("get-resource-status")
	resourceRouter.HandleFunc("/authorisations", HandleCreateAuthorisation).Methods("POST").Name("create-authorisation")
	resourceRouter.HandleFunc("/authorisations", HandleListAuthorisations).Methods("GET").Name("list-authorisations")
	resourceRouter.HandleFunc("/authorisations/{authorisation_id}", HandleGetAuthorisation).Methods("GET").Name("get-authorisation")
	resourceRouter.HandleFunc("/authorisations/{authorisation_id}", HandleUpdateAuthorisation).Methods("PUT").Name("update-authorisation")
	resourceRouter.HandleFunc("/authorisations/{authorisation_id}/status", HandleGetAuthorisationStatus).Methods("GET").Name("get-authorisation-status")

	// maintenance endpoints need their own interceptor
	maintenanceRouter := mainRouter.PathPrefix("/admin").Subrouter()
	maintenanceRouter.HandleFunc("/resources/{resource_id}/status", HandlePatchResourceStatus).Methods("PATCH").Name("patch-resource-status")
	maintenanceRouter.HandleFunc("/resources/{resource_id}/signing-basket", HandlePatchSigningBasket).Methods("PATCH").Name("patch-signing-basket")
	maintenanceRouter.HandleFunc("/sweeps", HandleTriggerSweep).Methods("POST").Name("trigger-sweep")

	// Set middleware for subrouters
	rootResourceRouter.Use(log.Handler)
	resourceRouter.Use(ra.ResourceAuthenticationIntercept)
	maintenanceRouter.Use(log.Handler, interceptors.MaintenanceAuthenticationIntercept)

	return sweepService
}

func healthCheck(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
}
