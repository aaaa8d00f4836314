package service

import (
	"fmt"
	"net/http"

	"github.com/companieshouse/sca.api.ch.gov.uk/config"
	"github.com/companieshouse/sca.api.ch.gov.uk/models"
)

// StageHandler applies one classified SCA step to an authorisation. It
// returns the response payload carrying the next SCA status; handler-level
// business failures (wrong code, declined confirmation) come back as a
// failed status inside the payload, not as an error.
type StageHandler func(req *http.Request, authorisation *models.AuthorisationRest, resource *models.ResourceRest, update models.AuthorisationUpdateRequest) (*models.AuthorisationUpdateResponse, ResponseType, error)

// stageKey is the composite lookup key for stage resolution. All three axes
// are typed so an unregistered combination cannot be constructed by string
// concatenation mistakes.
type stageKey struct {
	Domain   models.Domain
	Approach models.ScaApproach
	Step     StepKind
}

func (k stageKey) String() string {
	return fmt.Sprintf("%s/%s/%s", k.Domain, k.Approach, k.Step)
}

var allSteps = []StepKind{
	StepIdentification,
	StepAuthentication,
	StepMethodSelection,
	StepAuthenticationData,
	StepConfirmation,
}

// StageRegistry resolves the handler responsible for a
// domain/approach/step combination. It is built once at process start and
// read-only thereafter.
type StageRegistry struct {
	stages map[stageKey]StageHandler
}

// NewStageRegistry builds the full stage table for every enabled domain and
// approach
func NewStageRegistry(provider ScaProvider, cfg config.Config) *StageRegistry {
	registry := &StageRegistry{stages: make(map[stageKey]StageHandler)}

	redirect := &RedirectStages{Provider: provider, Config: cfg}
	embedded := &EmbeddedStages{Provider: provider}
	decoupled := &DecoupledStages{Provider: provider}
	delegated := &DelegatedTokenStages{Provider: provider}

	for _, domain := range models.Domains {
		registry.register(domain, models.ApproachRedirect, StepIdentification, redirect.Identification)
		registry.register(domain, models.ApproachRedirect, StepAuthentication, redirect.Authentication)
		registry.register(domain, models.ApproachRedirect, StepMethodSelection, redirect.MethodSelection)
		registry.register(domain, models.ApproachRedirect, StepAuthenticationData, redirect.AuthenticationData)
		registry.register(domain, models.ApproachRedirect, StepConfirmation, redirect.Confirmation)

		registry.register(domain, models.ApproachEmbedded, StepIdentification, embedded.Identification)
		registry.register(domain, models.ApproachEmbedded, StepAuthentication, embedded.Authentication)
		registry.register(domain, models.ApproachEmbedded, StepMethodSelection, embedded.MethodSelection)
		registry.register(domain, models.ApproachEmbedded, StepAuthenticationData, embedded.AuthenticationData)
		registry.register(domain, models.ApproachEmbedded, StepConfirmation, embedded.Confirmation)

		registry.register(domain, models.ApproachDecoupled, StepIdentification, decoupled.Identification)
		registry.register(domain, models.ApproachDecoupled, StepAuthentication, decoupled.Authentication)
		registry.register(domain, models.ApproachDecoupled, StepMethodSelection, decoupled.MethodSelection)
		registry.register(domain, models.ApproachDecoupled, StepAuthenticationData, decoupled.AuthenticationData)
		registry.register(domain, models.ApproachDecoupled, StepConfirmation, decoupled.Confirmation)

		registry.register(domain, models.ApproachDelegatedToken, StepIdentification, delegated.Identification)
		registry.register(domain, models.ApproachDelegatedToken, StepAuthentication, delegated.Unsupported)
		registry.register(domain, models.ApproachDelegatedToken, StepMethodSelection, delegated.Unsupported)
		registry.register(domain, models.ApproachDelegatedToken, StepAuthenticationData, delegated.Unsupported)
		registry.register(domain, models.ApproachDelegatedToken, StepConfirmation, delegated.Confirmation)
	}

	return registry
}

func (r *StageRegistry) register(domain models.Domain, approach models.ScaApproach, step StepKind, handler StageHandler) {
	r.stages[stageKey{Domain: domain, Approach: approach, Step: step}] = handler
}

// Resolve returns the stage handler for the given combination. A miss is a
// configuration fault, not a business error; CheckCoverage exists so this
// never happens on a running service.
func (r *StageRegistry) Resolve(domain models.Domain, approach models.ScaApproach, step StepKind) (StageHandler, error) {
	key := stageKey{Domain: domain, Approach: approach, Step: step}
	handler, ok := r.stages[key]
	if !ok {
		return nil, &NoStageConfiguredError{Missing: []string{key.String()}}
	}
	return handler, nil
}

// CheckCoverage verifies that every enabled domain/approach/step combination
// has a registered handler. Called at startup so a deployment with a hole in
// the table fails fast instead of failing per request.
func (r *StageRegistry) CheckCoverage() error {
	var missing []string
	for _, domain := range models.Domains {
		for _, approach := range models.Approaches {
			for _, step := range allSteps {
				key := stageKey{Domain: domain, Approach: approach, Step: step}
				if _, ok := r.stages[key]; !ok {
					missing = append(missing, key.String())
				}
			}
		}
	}

	if len(missing) > 0 {
		return &NoStageConfiguredError{Missing: missing}
	}
	return nil
}
