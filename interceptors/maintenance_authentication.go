package interceptors

import (
	"context"
	"fmt"
	"net/http"

	"github.com/companieshouse/chs.go/log"
	"github.com/companieshouse/sca.api.ch.gov.uk/helpers"
)

// MaintenanceAuthenticationIntercept restricts maintenance endpoints to
// callers holding the SCA maintenance admin role
func MaintenanceAuthenticationIntercept(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		identityType := helpers.GetAuthorisedIdentityType(r)
		if identityType != helpers.Oauth2IdentityType && identityType != helpers.APIKeyIdentityType {
			log.Error(fmt.Errorf("maintenance interceptor unauthorised: not oauth2 or API key identity type"))
			w.WriteHeader(http.StatusUnauthorized)
			return
		}

		if identityType == helpers.Oauth2IdentityType && !helpers.IsRoleAuthorised(r, helpers.AdminScaMaintenanceRole) {
			log.InfoR(r, "maintenance interceptor unauthorised: missing maintenance role")
			w.WriteHeader(http.StatusForbidden)
			return
		}

		// Make the acting user available to the handlers for audit logging
		ctx := context.WithValue(r.Context(), helpers.ContextKeyUserID, helpers.GetAuthorisedIdentity(r))
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
