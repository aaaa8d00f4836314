package dao

import (
	"context"
	"time"

	"github.com/companieshouse/chs.go/log"
	"github.com/companieshouse/sca.api.ch.gov.uk/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var client *mongo.Client

func getMongoClient(mongoDBURL string) *mongo.Client {
	if client != nil {
		return client
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	clientOptions := options.Client().ApplyURI(mongoDBURL)

	var err error
	client, err = mongo.Connect(ctx, clientOptions)

	// Assume the caller of this func cannot handle the case where there is no
	// database connection, so the service must crash here as it cannot do its
	// work without a connection.
	if err != nil {
		log.Error(err)
		panic(err)
	}

	// Check we can connect to the mongodb instance. The failure here is
	// service-fatal for the same reason as above.
	pingContext, pingCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer pingCancel()
	err = client.Ping(pingContext, nil)
	if err != nil {
		log.Error(err)
		panic(err)
	}

	log.Info("connected to mongodb successfully")

	return client
}

// MongoDatabaseInterface is an interface that describes the mongodb database
type MongoDatabaseInterface interface {
	Collection(name string, opts ...*options.CollectionOptions) *mongo.Collection
}

func getMongoDatabase(mongoDBURL, databaseName string) MongoDatabaseInterface {
	return getMongoClient(mongoDBURL).Database(databaseName)
}

// MongoService is an implementation of the DAO interface using MongoDB as
// the backend driver.
type MongoService struct {
	db                      MongoDatabaseInterface
	ResourceCollection      string
	AuthorisationCollection string
}

// CreateResource writes a new resource aggregate to the DB
func (m *MongoService) CreateResource(resource *models.ResourceDB) error {
	collection := m.db.Collection(m.ResourceCollection)
	_, err := collection.InsertOne(context.Background(), resource)

	return err
}

// GetResource gets a resource aggregate from the DB
// If the resource is not found in the DB, return nil
func (m *MongoService) GetResource(id string) (*models.ResourceDB, error) {
	var resource models.ResourceDB

	collection := m.db.Collection(m.ResourceCollection)
	dbResource := collection.FindOne(context.Background(), bson.M{"_id": id})

	err := dbResource.Err()
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, err
	}

	err = dbResource.Decode(&resource)
	if err != nil {
		return nil, err
	}

	return &resource, nil
}

// SaveResource replaces the stored resource aggregate in full. Callers must
// route status/checksum changes through the checksum guard.
func (m *MongoService) SaveResource(resource *models.ResourceDB) error {
	collection := m.db.Collection(m.ResourceCollection)
	_, err := collection.ReplaceOne(context.Background(), bson.M{"_id": resource.ID}, resource, options.Replace().SetUpsert(true))

	return err
}

// FindResourcesByStatus returns one page of resources in the given domain
// whose business status is in the supplied set
func (m *MongoService) FindResourcesByStatus(domain string, statuses []string, page int64, pageSize int64) ([]models.ResourceDB, error) {
	collection := m.db.Collection(m.ResourceCollection)

	findOptions := options.Find().
		SetSort(bson.D{{Key: "data.created_at", Value: 1}}).
		SetSkip(page * pageSize).
		SetLimit(pageSize)

	cursor, err := collection.Find(context.Background(), bson.M{
		"domain":      domain,
		"data.status": bson.M{"$in": statuses},
	}, findOptions)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(context.Background())

	var resources []models.ResourceDB
	err = cursor.All(context.Background(), &resources)
	if err != nil {
		return nil, err
	}

	return resources, nil
}

// CountResourcesByStatus counts the resources in the given domain whose
// business status is in the supplied set
func (m *MongoService) CountResourcesByStatus(domain string, statuses []string) (int64, error) {
	collection := m.db.Collection(m.ResourceCollection)

	return collection.CountDocuments(context.Background(), bson.M{
		"domain":      domain,
		"data.status": bson.M{"$in": statuses},
	})
}

// BulkUpdateResourceStatus transitions every resource in ids to the supplied
// status in a single update call
func (m *MongoService) BulkUpdateResourceStatus(ids []string, status string, statusChangedAt time.Time) error {
	collection := m.db.Collection(m.ResourceCollection)

	_, err := collection.UpdateMany(context.Background(),
		bson.M{"_id": bson.M{"$in": ids}},
		bson.M{"$set": bson.M{
			"data.status":            status,
			"data.status_changed_at": statusChangedAt,
		}},
	)

	return err
}

// CreateAuthorisation writes a new authorisation to the DB
func (m *MongoService) CreateAuthorisation(authorisation *models.AuthorisationDB) error {
	collection := m.db.Collection(m.AuthorisationCollection)
	_, err := collection.InsertOne(context.Background(), authorisation)

	return err
}

// GetAuthorisation gets an authorisation from the DB
// If the authorisation is not found in the DB, return nil
func (m *MongoService) GetAuthorisation(id string) (*models.AuthorisationDB, error) {
	var authorisation models.AuthorisationDB

	collection := m.db.Collection(m.AuthorisationCollection)
	dbAuthorisation := collection.FindOne(context.Background(), bson.M{"_id": id})

	err := dbAuthorisation.Err()
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, err
	}

	err = dbAuthorisation.Decode(&authorisation)
	if err != nil {
		return nil, err
	}

	return &authorisation, nil
}

// PatchAuthorisation patches an authorisation in the DB. Updates are applied
// per-authorisation so concurrent attempts under the same parent never
// overwrite each other.
func (m *MongoService) PatchAuthorisation(id string, update *models.AuthorisationDB) error {
	collection := m.db.Collection(m.AuthorisationCollection)

	patchUpdate := make(bson.M)

	// Patch only these fields
	if update.Data.ScaStatus != "" {
		patchUpdate["data.sca_status"] = update.Data.ScaStatus
	}
	if update.Data.ScaApproach != "" {
		patchUpdate["data.sca_approach"] = update.Data.ScaApproach
	}
	if update.Data.PsuID != "" {
		patchUpdate["data.psu_id"] = update.Data.PsuID
	}
	if update.Data.ChosenScaMethodID != "" {
		patchUpdate["data.chosen_sca_method_id"] = update.Data.ChosenScaMethodID
	}
	if update.Data.FailureReason != "" {
		patchUpdate["data.failure_reason"] = update.Data.FailureReason
	}

	updateCall := bson.M{"$set": patchUpdate}

	_, err := collection.UpdateOne(context.Background(), bson.M{"_id": id}, updateCall)

	return err
}

// FindAuthorisationsByParent returns every authorisation attached to the
// given consent or payment
func (m *MongoService) FindAuthorisationsByParent(parentID string) ([]models.AuthorisationDB, error) {
	collection := m.db.Collection(m.AuthorisationCollection)

	cursor, err := collection.Find(context.Background(), bson.M{"data.parent_id": parentID})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(context.Background())

	var authorisations []models.AuthorisationDB
	err = cursor.All(context.Background(), &authorisations)
	if err != nil {
		return nil, err
	}

	return authorisations, nil
}
