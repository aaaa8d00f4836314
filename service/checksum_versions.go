package service

import (
	"crypto/sha512"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"sort"

	"github.com/companieshouse/sca.api.ch.gov.uk/models"
	"github.com/shopspring/decimal"
)

// ChecksumVersion computes a tamper digest over the settled fields of a
// resource. Versions are append-only: a digest stamped by an old version must
// stay verifiable after new versions ship.
type ChecksumVersion interface {
	Tag() string
	Calculate(resource *models.ResourceDB) (string, error)
}

// ChecksumRegistry resolves digest versions by tag and knows which version
// stamps new digests
type ChecksumRegistry struct {
	versions map[string]ChecksumVersion
	current  ChecksumVersion
}

// NewChecksumRegistry returns a registry holding every shipped digest
// version, with the latest one current
func NewChecksumRegistry() *ChecksumRegistry {
	v1 := &checksumV1{}
	v2 := &checksumV2{}

	return &ChecksumRegistry{
		versions: map[string]ChecksumVersion{
			v1.Tag(): v1,
			v2.Tag(): v2,
		},
		current: v2,
	}
}

// Current returns the version used to stamp new digests
func (r *ChecksumRegistry) Current() ChecksumVersion {
	return r.current
}

// ByTag returns the version that produced a stored digest, matched on the
// digest's version prefix
func (r *ChecksumRegistry) ByTag(tag string) (ChecksumVersion, error) {
	version, ok := r.versions[tag]
	if !ok {
		return nil, fmt.Errorf("no checksum version registered for tag [%s]", tag)
	}

	return version, nil
}

// checksumV1 is the original digest. It predates account scoping, so account
// ids are not part of the projection.
type checksumV1 struct{}

type checksumProjectionV1 struct {
	Reference string `json:"reference"`
	Amount    string `json:"amount"`
	Currency  string `json:"currency"`
	PsuIDs    string `json:"psu_ids"`
}

func (v *checksumV1) Tag() string {
	return "001"
}

func (v *checksumV1) Calculate(resource *models.ResourceDB) (string, error) {
	projection := checksumProjectionV1{
		Reference: resource.Data.Reference,
		Amount:    normaliseAmount(resource.Data.Amount),
		Currency:  resource.Data.Currency,
		PsuIDs:    joinSorted(resource.Data.PsuIDs),
	}

	return digest(v.Tag(), projection)
}

// checksumV2 extends the projection with the aspsp account ids the resource
// is scoped to
type checksumV2 struct{}

type checksumProjectionV2 struct {
	Reference       string `json:"reference"`
	Amount          string `json:"amount"`
	Currency        string `json:"currency"`
	PsuIDs          string `json:"psu_ids"`
	AspspAccountIDs string `json:"aspsp_account_ids"`
}

func (v *checksumV2) Tag() string {
	return "002"
}

func (v *checksumV2) Calculate(resource *models.ResourceDB) (string, error) {
	projection := checksumProjectionV2{
		Reference:       resource.Data.Reference,
		Amount:          normaliseAmount(resource.Data.Amount),
		Currency:        resource.Data.Currency,
		PsuIDs:          joinSorted(resource.Data.PsuIDs),
		AspspAccountIDs: joinSorted(resource.Data.AspspAccountIDs),
	}

	return digest(v.Tag(), projection)
}

// digest serialises the projection to canonical JSON and returns the digest
// in its stored form: the version tag, an underscore, then the base64 of the
// sha512 of the projection
func digest(tag string, projection interface{}) (string, error) {
	serialised, err := json.Marshal(projection)
	if err != nil {
		return "", fmt.Errorf("error serialising checksum projection: [%v]", err)
	}

	sum := sha512.Sum512(serialised)

	return tag + "_" + base64.StdEncoding.EncodeToString(sum[:]), nil
}

// normaliseAmount fixes the amount to two decimal places so that textual
// variants of the same value ("10.5", "10.50") digest identically
func normaliseAmount(amount string) string {
	if amount == "" {
		return ""
	}

	parsed, err := decimal.NewFromString(amount)
	if err != nil {
		return amount
	}

	return parsed.StringFixed(2)
}

func joinSorted(values []string) string {
	sorted := make([]string, len(values))
	copy(sorted, values)
	sort.Strings(sorted)

	joined := ""
	for i, value := range sorted {
		if i > 0 {
			joined += ","
		}
		joined += value
	}

	return joined
}
