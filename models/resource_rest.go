package models

import "time"

// IncomingResourceRequest is the data received in the body of a resource
// initiation request
type IncomingResourceRequest struct {
	Domain                string   `json:"domain"                  validate:"required"`
	Reference             string   `json:"reference"               validate:"required"`
	Amount                string   `json:"amount,omitempty"`
	Currency              string   `json:"currency,omitempty"`
	AspspAccountIDs       []string `json:"aspsp_account_ids,omitempty"`
	MultilevelScaRequired bool     `json:"multilevel_sca_required"`
	ValidUntil            string   `json:"valid_until,omitempty"`
}

// ResourceRest is the public facing consent/payment aggregate returned in
// responses
type ResourceRest struct {
	MetaData                ResourceMetaDataRest `json:"-"`
	Status                  ResourceStatus       `json:"status"`
	Reference               string               `json:"reference,omitempty"`
	Amount                  string               `json:"amount,omitempty"`
	Currency                string               `json:"currency,omitempty"`
	AspspAccountIDs         []string             `json:"-"`
	MultilevelScaRequired   bool                 `json:"multilevel_sca_required"`
	SigningBasketBlocked    bool                 `json:"-"`
	SigningBasketAuthorised bool                 `json:"-"`
	PsuIDs                  []string             `json:"-"`
	CreatedAt               time.Time            `json:"created_at,omitempty"`
	StatusChangedAt         time.Time            `json:"-"`
	ValidUntil              time.Time            `json:"valid_until,omitempty"`
	CreatedBy               CreatedByRest        `json:"created_by"`
	Links                   ResourceLinksRest    `json:"links"`
	Etag                    string               `json:"etag"`
	Kind                    string               `json:"kind"`
}

// ResourceMetaDataRest contains fields not served to the TPP
type ResourceMetaDataRest struct {
	ID       string
	Domain   Domain
	Checksum string
}

// CreatedByRest is the TPP user who initiated the resource
type CreatedByRest struct {
	Email    string `json:"email"`
	Forename string `json:"forename"`
	ID       string `json:"id"`
	Surname  string `json:"surname"`
}

// ResourceLinksRest is a set of URLs related to the resource, including self
type ResourceLinksRest struct {
	Self           string `json:"self" validate:"required"`
	Authorisations string `json:"authorisations"`
}

// ResourceStatusResponse is returned by the resource status endpoint
type ResourceStatusResponse struct {
	Status ResourceStatus `json:"status"`
}
