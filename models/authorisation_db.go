package models

import "time"

// AuthorisationDB contains a single SCA authorisation attempt as stored in
// the DB. Transient authentication secrets are never written here.
type AuthorisationDB struct {
	ID   string              `bson:"_id"`
	Data AuthorisationDataDB `bson:"data"`
}

// AuthorisationDataDB holds the mutable state of an authorisation attempt
type AuthorisationDataDB struct {
	ParentID          string    `bson:"parent_id"`
	Domain            string    `bson:"domain"`
	ScaApproach       string    `bson:"sca_approach"`
	ScaStatus         string    `bson:"sca_status"`
	PsuID             string    `bson:"psu_id,omitempty"`
	ChosenScaMethodID string    `bson:"chosen_sca_method_id,omitempty"`
	FailureReason     string    `bson:"failure_reason,omitempty"`
	CreatedAt         time.Time `bson:"created_at,omitempty"`
	ExpiresAt         time.Time `bson:"expires_at,omitempty"`
}
