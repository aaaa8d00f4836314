package interceptors

import (
	"context"
	"fmt"
	"net/http"

	"github.com/companieshouse/chs.go/log"
	"github.com/companieshouse/sca.api.ch.gov.uk/helpers"
	"github.com/companieshouse/sca.api.ch.gov.uk/service"
	"github.com/gorilla/mux"
)

// ResourceAuthenticationInterceptor contains the resource service used in the interceptor
type ResourceAuthenticationInterceptor struct {
	Service service.ResourceService
}

// ResourceAuthenticationIntercept loads the resource named in the path,
// checks the caller is allowed to act on it and stores it in the request
// context for the handler
func (interceptor ResourceAuthenticationInterceptor) ResourceAuthenticationIntercept(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		vars := mux.Vars(r)
		id := vars["resource_id"]
		if id == "" {
			log.ErrorR(r, fmt.Errorf("ResourceAuthenticationInterceptor error: no resource id"))
			w.WriteHeader(http.StatusBadRequest)
			return
		}

		identityType := helpers.GetAuthorisedIdentityType(r)
		if !(identityType == helpers.Oauth2IdentityType || identityType == helpers.APIKeyIdentityType) {
			log.Error(fmt.Errorf("authentication interceptor unauthorised: not oauth2 or API key identity type"))
			w.WriteHeader(http.StatusUnauthorized)
			return
		}

		authorisedUser := ""
		if identityType == helpers.Oauth2IdentityType {
			authorisedUser = helpers.GetAuthorisedIdentity(r)
			if authorisedUser == "" {
				log.Error(fmt.Errorf("ResourceAuthenticationInterceptor unauthorised: no authorised identity"))
				w.WriteHeader(http.StatusUnauthorized)
				return
			}
		}

		resource, responseType, err := interceptor.Service.GetResource(r, id)
		if err != nil {
			log.Error(fmt.Errorf("ResourceAuthenticationInterceptor error when retrieving resource: [%v]", err), log.Data{"service_response_type": responseType.String()})
			w.WriteHeader(http.StatusInternalServerError)
			return
		}

		if responseType == service.NotFound {
			w.WriteHeader(http.StatusNotFound)
			return
		}

		if responseType != service.Success {
			log.Error(fmt.Errorf("ResourceAuthenticationInterceptor error when retrieving resource. Status: [%s]", responseType.String()))
			w.WriteHeader(http.StatusInternalServerError)
			return
		}

		ctx := context.WithValue(r.Context(), helpers.ContextKeyResource, resource)

		authUserIsCreator := authorisedUser != "" && authorisedUser == resource.CreatedBy.ID
		authUserHasMaintenanceRole := helpers.IsRoleAuthorised(r, helpers.AdminScaMaintenanceRole)
		isAPIKeyRequest := identityType == helpers.APIKeyIdentityType

		debugMap := log.Data{
			"resource_id":                    id,
			"auth_user_is_creator":           authUserIsCreator,
			"auth_user_has_maintenance_role": authUserHasMaintenanceRole,
			"request_method":                 r.Method,
		}

		switch {
		case authUserIsCreator:
			log.InfoR(r, "ResourceAuthenticationInterceptor authorised as creator", debugMap)
			next.ServeHTTP(w, r.WithContext(ctx))
		case isAPIKeyRequest:
			log.InfoR(r, "ResourceAuthenticationInterceptor authorised as API key request", debugMap)
			next.ServeHTTP(w, r.WithContext(ctx))
		case authUserHasMaintenanceRole && http.MethodGet == r.Method:
			log.InfoR(r, "ResourceAuthenticationInterceptor authorised as maintenance role", debugMap)
			next.ServeHTTP(w, r.WithContext(ctx))
		default:
			log.InfoR(r, "ResourceAuthenticationInterceptor unauthorised", debugMap)
			w.WriteHeader(http.StatusUnauthorized)
		}
	})
}
