package models

import "time"

// ResourceDB contains the consent or payment aggregate as stored in the DB
type ResourceDB struct {
	ID       string         `bson:"_id"`
	Domain   string         `bson:"domain"`
	Checksum string         `bson:"checksum,omitempty"`
	Data     ResourceDataDB `bson:"data"`
}

// ResourceDataDB holds the mutable business state of a resource
type ResourceDataDB struct {
	Status                  string         `bson:"status"`
	Reference               string         `bson:"reference,omitempty"`
	Amount                  string         `bson:"amount,omitempty"`
	Currency                string         `bson:"currency,omitempty"`
	AspspAccountIDs         []string       `bson:"aspsp_account_ids,omitempty"`
	MultilevelScaRequired   bool           `bson:"multilevel_sca_required"`
	SigningBasketBlocked    bool           `bson:"signing_basket_blocked"`
	SigningBasketAuthorised bool           `bson:"signing_basket_authorised"`
	PsuIDs                  []string       `bson:"psu_ids,omitempty"`
	CreatedAt               time.Time      `bson:"created_at,omitempty"`
	StatusChangedAt         time.Time      `bson:"status_changed_at,omitempty"`
	ValidUntil              time.Time      `bson:"valid_until,omitempty"`
	CreatedBy               CreatedByDB    `bson:"created_by"`
	Links                   ResourceLinks  `bson:"links"`
	Etag                    string         `bson:"etag,omitempty"`
	Kind                    string         `bson:"kind,omitempty"`
}

// CreatedByDB is the TPP user who initiated the resource
type CreatedByDB struct {
	Email    string `bson:"email"`
	Forename string `bson:"forename"`
	ID       string `bson:"id"`
	Surname  string `bson:"surname"`
}

// ResourceLinks is a set of URLs related to the resource, including self
type ResourceLinks struct {
	Self           string `bson:"self"`
	Authorisations string `bson:"authorisations"`
}
