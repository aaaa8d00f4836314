package service

import (
	"fmt"
	"strings"

	"github.com/companieshouse/sca.api.ch.gov.uk/dao"
	"github.com/companieshouse/sca.api.ch.gov.uk/models"
)

// ChecksumGuard wraps every status-changing write to a settled resource in a
// verify-then-recompute cycle. A digest mismatch aborts the write and the
// stored aggregate is left untouched.
type ChecksumGuard struct {
	DAO      dao.DAO
	Registry *ChecksumRegistry
}

// NewChecksumGuard returns a guard over the given store using every shipped
// digest version
func NewChecksumGuard(dao dao.DAO) *ChecksumGuard {
	return &ChecksumGuard{DAO: dao, Registry: NewChecksumRegistry()}
}

// VerifyAndSave persists the incoming resource after verifying the checksum
// it carries against the aggregate currently held in the store. The guard
// re-reads the persisted state itself, so a commit landing between the
// caller's read and this save surfaces as a ChecksumError instead of a
// silent overwrite, as does any out-of-band edit of the protected fields.
//
// Verification only applies once a resource has settled: before the first
// transition to valid there is no digest to verify, and the write goes
// through unconditionally. On a verified write the digest is recomputed with
// the current version, upgrading legacy digests in passing.
func (g *ChecksumGuard) VerifyAndSave(incoming *models.ResourceDB) error {
	previous, err := g.DAO.GetResource(incoming.ID)
	if err != nil {
		return fmt.Errorf("error getting resource [%s] from database: [%v]", incoming.ID, err)
	}
	if previous == nil {
		return fmt.Errorf("resource [%s] no longer exists in the database", incoming.ID)
	}

	if err := g.verify(previous, incoming.Checksum); err != nil {
		return err
	}

	if err := g.stamp(incoming); err != nil {
		return err
	}

	if err := g.DAO.SaveResource(incoming); err != nil {
		return fmt.Errorf("error saving resource [%s]: [%v]", incoming.ID, err)
	}

	return nil
}

// VerifyAndSaveAll applies VerifyAndSave semantics across a batch. Failures
// are isolated per resource; the first error of each kind is reported after
// the batch completes.
func (g *ChecksumGuard) VerifyAndSaveAll(resources []*models.ResourceDB) error {
	var failed []string
	var firstErr error

	for _, resource := range resources {
		if err := g.VerifyAndSave(resource); err != nil {
			failed = append(failed, resource.ID)
			if firstErr == nil {
				firstErr = err
			}
		}
	}

	if firstErr != nil {
		return fmt.Errorf("error saving resources [%s]: [%v]", strings.Join(failed, ", "), firstErr)
	}

	return nil
}

// verify recomputes the digest of the persisted aggregate with the version
// named by the carried checksum's tag and compares byte for byte
func (g *ChecksumGuard) verify(previous *models.ResourceDB, carried string) error {
	// Digests are stamped on the transition to valid; until then integrity
	// is not yet guarded.
	if previous.Data.Status != string(models.ResourceStatusValid) {
		return nil
	}

	if carried == "" {
		return &ChecksumError{ResourceID: previous.ID, Reason: "no checksum supplied against a settled resource"}
	}

	tag, _, found := strings.Cut(carried, "_")
	if !found {
		return &ChecksumError{ResourceID: previous.ID, Reason: "supplied checksum has no version tag"}
	}

	version, err := g.Registry.ByTag(tag)
	if err != nil {
		return &ChecksumError{ResourceID: previous.ID, Reason: err.Error()}
	}

	recomputed, err := version.Calculate(previous)
	if err != nil {
		return fmt.Errorf("error recomputing checksum for resource [%s]: [%v]", previous.ID, err)
	}

	if recomputed != carried {
		return &ChecksumError{ResourceID: previous.ID, Reason: "persisted aggregate does not match the supplied checksum"}
	}

	return nil
}

// stamp records a current-version digest on the updated aggregate when it is
// settled, and clears it otherwise
func (g *ChecksumGuard) stamp(updated *models.ResourceDB) error {
	if updated.Data.Status != string(models.ResourceStatusValid) {
		updated.Checksum = ""
		return nil
	}

	checksum, err := g.Registry.Current().Calculate(updated)
	if err != nil {
		return fmt.Errorf("error calculating checksum for resource [%s]: [%v]", updated.ID, err)
	}

	updated.Checksum = checksum

	return nil
}
