package service

import (
	"github.com/companieshouse/sca.api.ch.gov.uk/models"
)

// AuthorisationValidator runs the business pre-condition checks before any
// stage handler executes. Checks run in a fixed order and short-circuit on
// the first failure.
type AuthorisationValidator struct {
	Clock Clock
}

// ValidateCreate applies the create-path checks for a new authorisation on
// the given resource
func (v *AuthorisationValidator) ValidateCreate(resource *models.ResourceRest, existing []models.AuthorisationRest, psuID string) (ResponseType, error) {
	if resource.SigningBasketBlocked {
		return Blocked, newValidationError(models.ErrCodeResourceBlocked,
			"resource [%s] is blocked by a pending signing basket", resource.MetaData.ID)
	}

	if resource.SigningBasketAuthorised {
		return Conflict, newValidationError(models.ErrCodeStatusInvalid,
			"resource [%s] has already been authorised through a signing basket", resource.MetaData.ID)
	}

	if err := v.checkPsuIdentity(resource, psuID); err != nil {
		return Forbidden, err
	}

	// A (resource, PSU) pair gets exactly one successful authorisation;
	// repeat attempts are a conflict, never a silent re-run.
	for _, authorisation := range existing {
		if authorisation.PsuID == psuID && authorisation.ScaStatus.IsTerminalSuccess() {
			return Conflict, newValidationError(models.ErrCodeStatusInvalid,
				"PSU [%s] has already successfully authorised resource [%s]", psuID, resource.MetaData.ID)
		}
	}

	if resource.Status == models.ResourceStatusRejected {
		return Expired, newValidationError(models.ErrCodeResourceExpired,
			"resource [%s] has been rejected", resource.MetaData.ID)
	}

	return Success, nil
}

// ValidateUpdate applies the update-path checks before a stage handler runs
func (v *AuthorisationValidator) ValidateUpdate(resource *models.ResourceRest, authorisation *models.AuthorisationRest, parentID string, step StepKind, update models.AuthorisationUpdateRequest) (ResponseType, error) {
	// Defend against id substitution: the authorisation in the path must
	// belong to the resource in the path.
	if authorisation.MetaData.ParentID != parentID {
		return Forbidden, newValidationError(models.ErrCodeStatusInvalid,
			"authorisation [%s] does not belong to resource [%s]", authorisation.MetaData.ID, parentID)
	}

	if resource.SigningBasketBlocked {
		return Blocked, newValidationError(models.ErrCodeResourceBlocked,
			"resource [%s] is blocked by a pending signing basket", resource.MetaData.ID)
	}

	if authorisation.ScaStatus.IsTerminal() {
		return Conflict, newValidationError(models.ErrCodeStatusInvalid,
			"authorisation [%s] has already reached the terminal status [%s]", authorisation.MetaData.ID, authorisation.ScaStatus)
	}

	if !authorisation.ExpiresAt.IsZero() && v.Clock.Now().After(authorisation.ExpiresAt) {
		return Expired, newValidationError(models.ErrCodeResourceExpired,
			"authorisation [%s] has expired", authorisation.MetaData.ID)
	}

	if update.PsuID != "" && authorisation.PsuID != "" && update.PsuID != authorisation.PsuID {
		return Forbidden, newValidationError(models.ErrCodePsuCredentialsInvalid,
			"PSU [%s] does not match the identity recorded on authorisation [%s]", update.PsuID, authorisation.MetaData.ID)
	}

	if resource.Status == models.ResourceStatusRejected {
		// Confirmation against a rejected resource is an invalid state, not
		// a generic expiry; the code entered may well have been correct.
		if step == StepConfirmation {
			return Conflict, newValidationError(models.ErrCodeStatusInvalid,
				"resource [%s] was rejected before confirmation", resource.MetaData.ID)
		}
		return Expired, newValidationError(models.ErrCodeResourceExpired,
			"resource [%s] has been rejected", resource.MetaData.ID)
	}

	return Success, nil
}

// checkPsuIdentity enforces the multilevel-SCA identity rules: without
// multilevel SCA only the identity already recorded on the resource may
// authorise it; with multilevel SCA a new distinct identity is welcome.
func (v *AuthorisationValidator) checkPsuIdentity(resource *models.ResourceRest, psuID string) error {
	if psuID == "" || len(resource.PsuIDs) == 0 {
		return nil
	}

	for _, recorded := range resource.PsuIDs {
		if recorded == psuID {
			return nil
		}
	}

	if resource.MultilevelScaRequired {
		return nil
	}

	return newValidationError(models.ErrCodePsuCredentialsInvalid,
		"PSU [%s] does not match the identity recorded on resource [%s]", psuID, resource.MetaData.ID)
}
