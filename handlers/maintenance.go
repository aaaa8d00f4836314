package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/companieshouse/chs.go/log"
	"github.com/companieshouse/sca.api.ch.gov.uk/helpers"
	"github.com/companieshouse/sca.api.ch.gov.uk/models"
	"github.com/companieshouse/sca.api.ch.gov.uk/utils"
	"github.com/go-playground/validator/v10"
	"github.com/gorilla/mux"
)

// ResourceStatusPatchRequest is the body of an admin status patch
type ResourceStatusPatchRequest struct {
	Status string `json:"status" validate:"required"`
}

// SigningBasketPatchRequest flags or unflags a resource as blocked by a
// pending signing basket
type SigningBasketPatchRequest struct {
	Blocked bool `json:"blocked"`
}

// HandlePatchResourceStatus moves a resource to an explicit status. Admin
// surface for revocations and terminations driven by the ASPSP back office.
func HandlePatchResourceStatus(w http.ResponseWriter, req *http.Request) {
	vars := mux.Vars(req)
	resourceID := vars["resource_id"]

	if req.Body == nil {
		log.ErrorR(req, fmt.Errorf("request body empty"))
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	requestDecoder := json.NewDecoder(req.Body)
	var patch ResourceStatusPatchRequest
	if err := requestDecoder.Decode(&patch); err != nil {
		log.ErrorR(req, fmt.Errorf("request body invalid: [%v]", err))
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	v := validator.New()
	if err := v.Struct(patch); err != nil {
		log.ErrorR(req, fmt.Errorf("error validating request: %w", err))
		m := utils.NewMessageResponse("error validating request")
		utils.WriteJSONWithStatus(w, req, m, http.StatusUnprocessableEntity)
		return
	}

	userID, ok := req.Context().Value(helpers.ContextKeyUserID).(string)
	if !ok {
		log.ErrorR(req, fmt.Errorf("error getting user ID from request context"))
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	status := models.ResourceStatus(patch.Status)
	if !allowedMaintenanceStatus(status) {
		log.ErrorR(req, fmt.Errorf("status [%s] cannot be applied through maintenance", patch.Status))
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	resource, responseType, err := resourceService.UpdateResourceStatus(req, resourceID, status)
	if err != nil {
		log.ErrorR(req, fmt.Errorf("error patching resource status: [%v]", err))
		writeErrorResponse(w, req, responseType, err)
		return
	}
	if resource == nil {
		w.WriteHeader(statusForResponseType(responseType))
		return
	}

	utils.WriteJSONWithStatus(w, req, resource, http.StatusOK)

	log.InfoR(req, "Successful PATCH request for resource status", log.Data{"resource_id": resourceID, "resource_status": status, "user_id": userID})
}

// HandlePatchSigningBasket flags or unflags the resource as blocked by a
// pending signing basket
func HandlePatchSigningBasket(w http.ResponseWriter, req *http.Request) {
	vars := mux.Vars(req)
	resourceID := vars["resource_id"]

	if req.Body == nil {
		log.ErrorR(req, fmt.Errorf("request body empty"))
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	requestDecoder := json.NewDecoder(req.Body)
	var patch SigningBasketPatchRequest
	if err := requestDecoder.Decode(&patch); err != nil {
		log.ErrorR(req, fmt.Errorf("request body invalid: [%v]", err))
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	resource, responseType, err := resourceService.SetSigningBasketBlocked(req, resourceID, patch.Blocked)
	if err != nil {
		log.ErrorR(req, fmt.Errorf("error patching signing basket state: [%v]", err))
		writeErrorResponse(w, req, responseType, err)
		return
	}
	if resource == nil {
		w.WriteHeader(statusForResponseType(responseType))
		return
	}

	utils.WriteJSONWithStatus(w, req, resource, http.StatusOK)

	log.InfoR(req, "Successful PATCH request for signing basket state", log.Data{"resource_id": resourceID, "blocked": patch.Blocked})
}

// HandleTriggerSweep runs the expiration sweeps on demand
func HandleTriggerSweep(w http.ResponseWriter, req *http.Request) {
	notConfirmed, err := sweepService.SweepNotConfirmed(req.Context())
	if err != nil {
		log.ErrorR(req, fmt.Errorf("error sweeping unconfirmed resources: [%v]", err))
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	lapsed, err := sweepService.SweepValidUntil(req.Context())
	if err != nil {
		log.ErrorR(req, fmt.Errorf("error sweeping lapsed resources: [%v]", err))
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	log.InfoR(req, "expiration sweeps complete", log.Data{"not_confirmed_expired": notConfirmed, "lapsed_expired": lapsed})

	w.WriteHeader(http.StatusNoContent)
}

func allowedMaintenanceStatus(status models.ResourceStatus) bool {
	switch status {
	case models.ResourceStatusRevoked, models.ResourceStatusTerminated, models.ResourceStatusExpired:
		return true
	default:
		return false
	}
}
