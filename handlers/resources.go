package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/companieshouse/chs.go/log"
	"github.com/companieshouse/sca.api.ch.gov.uk/helpers"
	"github.com/companieshouse/sca.api.ch.gov.uk/models"
	"github.com/companieshouse/sca.api.ch.gov.uk/service"
	"github.com/companieshouse/sca.api.ch.gov.uk/utils"

	"gopkg.in/go-playground/validator.v9"
)

// HandleCreateResource creates a consent or payment resource in the received
// status and returns it
func HandleCreateResource(w http.ResponseWriter, req *http.Request) {
	if req.Body == nil {
		log.ErrorR(req, fmt.Errorf("request body empty"))
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	requestDecoder := json.NewDecoder(req.Body)
	var incomingResourceRequest models.IncomingResourceRequest
	err := requestDecoder.Decode(&incomingResourceRequest)
	if err != nil {
		log.ErrorR(req, fmt.Errorf("request body invalid: [%v]", err))
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	if err = validateResourceCreate(incomingResourceRequest); err != nil {
		log.ErrorR(req, fmt.Errorf("invalid POST request to create resource: [%v]", err))
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	resource, responseType, err := resourceService.CreateResource(req, &incomingResourceRequest)
	if err != nil {
		log.ErrorR(req, fmt.Errorf("error creating resource: [%v]", err))
		writeErrorResponse(w, req, responseType, err)
		return
	}

	w.Header().Set("Location", resource.Links.Self)
	utils.WriteJSONWithStatus(w, req, resource, http.StatusCreated)

	log.InfoR(req, "Successful POST request for new resource", log.Data{"resource_id": resource.MetaData.ID, "status": http.StatusCreated})
}

// HandleGetResource retrieves the resource from request context
func HandleGetResource(w http.ResponseWriter, req *http.Request) {
	resource, ok := req.Context().Value(helpers.ContextKeyResource).(*models.ResourceRest)
	if !ok {
		log.ErrorR(req, fmt.Errorf("invalid ResourceRest in request context"))
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	utils.WriteJSONWithStatus(w, req, resource, http.StatusOK)

	log.InfoR(req, "Successful GET request for resource", log.Data{"resource_id": resource.MetaData.ID})
}

// HandleGetResourceStatus serves just the status of the resource in context
func HandleGetResourceStatus(w http.ResponseWriter, req *http.Request) {
	resource, ok := req.Context().Value(helpers.ContextKeyResource).(*models.ResourceRest)
	if !ok {
		log.ErrorR(req, fmt.Errorf("invalid ResourceRest in request context"))
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	utils.WriteJSONWithStatus(w, req, models.ResourceStatusResponse{Status: resource.Status}, http.StatusOK)
}

func validateResourceCreate(incomingResourceRequest models.IncomingResourceRequest) error {
	validate := validator.New()
	return validate.Struct(incomingResourceRequest)
}

// writeErrorResponse maps a service response type onto an http status and
// writes the matching error body
func writeErrorResponse(w http.ResponseWriter, req *http.Request, responseType service.ResponseType, err error) {
	status := statusForResponseType(responseType)

	var validationErr *service.ValidationError
	if errors.As(err, &validationErr) {
		utils.WriteJSONWithStatus(w, req, models.ErrorResourceRest{Code: validationErr.Code, Message: validationErr.Reason}, status)
		return
	}

	w.WriteHeader(status)
}

func statusForResponseType(responseType service.ResponseType) int {
	switch responseType {
	case service.InvalidData:
		return http.StatusBadRequest
	case service.Forbidden:
		return http.StatusForbidden
	case service.NotFound:
		return http.StatusNotFound
	case service.Blocked:
		return http.StatusBadRequest
	case service.Conflict:
		return http.StatusConflict
	case service.Expired:
		return http.StatusGone
	case service.ChecksumMismatch:
		return http.StatusInternalServerError
	default:
		return http.StatusInternalServerError
	}
}
