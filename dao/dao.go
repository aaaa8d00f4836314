package dao

import (
	"time"

	"github.com/companieshouse/sca.api.ch.gov.uk/config"
	"github.com/companieshouse/sca.api.ch.gov.uk/models"
)

// DAO is an interface for accessing resource and authorisation data from a
// backend store
type DAO interface {
	CreateResource(resource *models.ResourceDB) error
	GetResource(id string) (*models.ResourceDB, error)
	SaveResource(resource *models.ResourceDB) error
	FindResourcesByStatus(domain string, statuses []string, page int64, pageSize int64) ([]models.ResourceDB, error)
	CountResourcesByStatus(domain string, statuses []string) (int64, error)
	BulkUpdateResourceStatus(ids []string, status string, statusChangedAt time.Time) error
	CreateAuthorisation(authorisation *models.AuthorisationDB) error
	GetAuthorisation(id string) (*models.AuthorisationDB, error)
	PatchAuthorisation(id string, update *models.AuthorisationDB) error
	FindAuthorisationsByParent(parentID string) ([]models.AuthorisationDB, error)
}

// NewDAO returns a new DAO backed by MongoDB using the given configuration
func NewDAO(cfg *config.Config) DAO {
	database := getMongoDatabase(cfg.MongoDBURL, cfg.Database)
	return &MongoService{
		db:                      database,
		ResourceCollection:      cfg.Collection,
		AuthorisationCollection: cfg.AuthCollection,
	}
}
