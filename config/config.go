// Package config defines the environment variable and command-line flags
// supported by this service and includes default values for particular
// fields.
package config

import (
	"sync"
	"time"

	"github.com/companieshouse/gofigure"
)

var cfg *Config
var mtx sync.Mutex

// Config defines the configuration options for this service.
type Config struct {
	BindAddr               string `env:"BIND_ADDR"                 flag:"bind-addr"                 flagDesc:"Bind address"`
	Collection             string `env:"MONGODB_COLLECTION"        flag:"mongodb-collection"        flagDesc:"MongoDB collection for resource data"`
	AuthCollection         string `env:"MONGODB_AUTH_COLLECTION"   flag:"mongodb-auth-collection"   flagDesc:"MongoDB collection for authorisation data"`
	Database               string `env:"MONGODB_DATABASE"          flag:"mongodb-database"          flagDesc:"MongoDB database for data"`
	MongoDBURL             string `env:"MONGODB_URL"               flag:"mongodb-url"               flagDesc:"MongoDB server URL"`
	ScaWebURL              string `env:"SCA_WEB_URL"               flag:"sca-web-url"               flagDesc:"Base URL for the SCA redirect web journey"`
	ScaProviderURL         string `env:"SCA_PROVIDER_URL"          flag:"sca-provider-url"          flagDesc:"URL used to make calls to the ASPSP SCA provider"`
	ScaProviderBearerToken string `env:"SCA_PROVIDER_BEARER_TOKEN" flag:"sca-provider-bearer-token" flagDesc:"Bearer Token used to authenticate API calls with the SCA provider"`
	DefaultScaApproach     string `env:"DEFAULT_SCA_APPROACH"      flag:"default-sca-approach"      flagDesc:"SCA approach applied when the TPP expresses no redirect preference"`

	// AuthorisationExpiryPeriod bounds a single authorisation attempt;
	// NotConfirmedExpiryPeriod bounds how long a resource may sit awaiting
	// confirmation before the sweep retires it.
	AuthorisationExpiryPeriod time.Duration `env:"AUTHORISATION_EXPIRY_PERIOD"  flag:"authorisation-expiry-period"  flagDesc:"How long an authorisation attempt stays updatable"`
	NotConfirmedExpiryPeriod  time.Duration `env:"NOT_CONFIRMED_EXPIRY_PERIOD"  flag:"not-confirmed-expiry-period"  flagDesc:"How long a resource may await confirmation"`
	SweepPageSize             int64         `env:"SWEEP_PAGE_SIZE"              flag:"sweep-page-size"              flagDesc:"Page size used by the expiration sweeps"`
	SweepInterval             time.Duration `env:"SWEEP_INTERVAL"               flag:"sweep-interval"               flagDesc:"Interval between background expiration sweeps (0 disables the ticker)"`
}

// DefaultConfig returns a pointer to a Config instance that has been populated
// with default values.
func DefaultConfig() *Config {
	return &Config{
		Database:                  "transaction_authorisations",
		Collection:                "resources",
		AuthCollection:            "authorisations",
		DefaultScaApproach:        "redirect",
		AuthorisationExpiryPeriod: 30 * time.Minute,
		NotConfirmedExpiryPeriod:  24 * time.Hour,
		SweepPageSize:             100,
	}
}

// Get returns a pointer to a Config instance that has been populated with
// values provided by the environment or command-line flags, or with default
// values if none are provided.
func Get() (*Config, error) {
	mtx.Lock()
	defer mtx.Unlock()

	if cfg != nil {
		return cfg, nil
	}

	cfg = DefaultConfig()

	err := gofigure.Gofigure(cfg)
	if err != nil {
		return nil, err
	}

	return cfg, nil
}
