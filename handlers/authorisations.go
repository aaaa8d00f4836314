package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/companieshouse/chs.go/log"
	"github.com/companieshouse/sca.api.ch.gov.uk/helpers"
	"github.com/companieshouse/sca.api.ch.gov.uk/models"
	"github.com/gorilla/mux"

	"github.com/companieshouse/sca.api.ch.gov.uk/utils"
)

// HandleCreateAuthorisation starts a new authorisation attempt against the
// resource in context
func HandleCreateAuthorisation(w http.ResponseWriter, req *http.Request) {
	resource, ok := req.Context().Value(helpers.ContextKeyResource).(*models.ResourceRest)
	if !ok {
		log.ErrorR(req, fmt.Errorf("invalid ResourceRest in request context"))
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	var incomingAuthorisationRequest models.IncomingAuthorisationRequest
	if req.Body != nil && req.ContentLength != 0 {
		requestDecoder := json.NewDecoder(req.Body)
		if err := requestDecoder.Decode(&incomingAuthorisationRequest); err != nil {
			log.ErrorR(req, fmt.Errorf("request body invalid: [%v]", err))
			w.WriteHeader(http.StatusBadRequest)
			return
		}
	}

	authorisation, responseType, err := authorisationService.CreateAuthorisation(req, resource, &incomingAuthorisationRequest)
	if err != nil {
		log.ErrorR(req, fmt.Errorf("error creating authorisation: [%v]", err))
		writeErrorResponse(w, req, responseType, err)
		return
	}

	w.Header().Set("Location", authorisation.Links.Self)
	utils.WriteJSONWithStatus(w, req, authorisation, http.StatusCreated)

	log.InfoR(req, "Successful POST request for new authorisation", log.Data{"authorisation_id": authorisation.MetaData.ID, "status": http.StatusCreated})
}

// HandleUpdateAuthorisation applies one SCA step to an authorisation. The
// step performed is decided by which fields are present in the body.
func HandleUpdateAuthorisation(w http.ResponseWriter, req *http.Request) {
	vars := mux.Vars(req)
	resourceID := vars["resource_id"]
	authorisationID := vars["authorisation_id"]

	if req.Body == nil {
		log.ErrorR(req, fmt.Errorf("request body empty"))
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	requestDecoder := json.NewDecoder(req.Body)
	var update models.AuthorisationUpdateRequest
	if err := requestDecoder.Decode(&update); err != nil {
		log.ErrorR(req, fmt.Errorf("request body invalid: [%v]", err))
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	response, responseType, err := authorisationService.UpdateAuthorisation(req, resourceID, authorisationID, update)
	if err != nil {
		log.ErrorR(req, fmt.Errorf("error updating authorisation: [%v]", err))
		writeErrorResponse(w, req, responseType, err)
		return
	}
	if response == nil {
		w.WriteHeader(statusForResponseType(responseType))
		return
	}

	utils.WriteJSONWithStatus(w, req, response, http.StatusOK)

	log.InfoR(req, "Successful PUT request to update authorisation", log.Data{"authorisation_id": authorisationID, "sca_status": response.ScaStatus})
}

// HandleGetAuthorisation retrieves a single authorisation attempt
func HandleGetAuthorisation(w http.ResponseWriter, req *http.Request) {
	vars := mux.Vars(req)
	resourceID := vars["resource_id"]
	authorisationID := vars["authorisation_id"]

	authorisation, responseType, err := authorisationService.GetAuthorisation(req, resourceID, authorisationID)
	if err != nil {
		log.ErrorR(req, fmt.Errorf("error getting authorisation: [%v]", err))
		writeErrorResponse(w, req, responseType, err)
		return
	}
	if authorisation == nil {
		w.WriteHeader(statusForResponseType(responseType))
		return
	}

	utils.WriteJSONWithStatus(w, req, authorisation, http.StatusOK)
}

// HandleGetAuthorisationStatus serves just the SCA status of an authorisation
func HandleGetAuthorisationStatus(w http.ResponseWriter, req *http.Request) {
	vars := mux.Vars(req)
	resourceID := vars["resource_id"]
	authorisationID := vars["authorisation_id"]

	authorisation, responseType, err := authorisationService.GetAuthorisation(req, resourceID, authorisationID)
	if err != nil {
		log.ErrorR(req, fmt.Errorf("error getting authorisation status: [%v]", err))
		writeErrorResponse(w, req, responseType, err)
		return
	}
	if authorisation == nil {
		w.WriteHeader(statusForResponseType(responseType))
		return
	}

	utils.WriteJSONWithStatus(w, req, models.AuthorisationStatusResponse{ScaStatus: authorisation.ScaStatus}, http.StatusOK)
}

// HandleListAuthorisations lists the authorisation attempts made against the
// resource in context
func HandleListAuthorisations(w http.ResponseWriter, req *http.Request) {
	resource, ok := req.Context().Value(helpers.ContextKeyResource).(*models.ResourceRest)
	if !ok {
		log.ErrorR(req, fmt.Errorf("invalid ResourceRest in request context"))
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	authorisations, responseType, err := authorisationService.GetAuthorisationsByParent(req, resource.MetaData.ID)
	if err != nil {
		log.ErrorR(req, fmt.Errorf("error listing authorisations: [%v]", err))
		writeErrorResponse(w, req, responseType, err)
		return
	}

	utils.WriteJSONWithStatus(w, req, models.AuthorisationListResponse{Authorisations: authorisations}, http.StatusOK)
}
