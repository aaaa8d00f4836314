package service

import (
	"context"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/companieshouse/chs.go/log"
	"github.com/companieshouse/sca.api.ch.gov.uk/config"
	"github.com/companieshouse/sca.api.ch.gov.uk/dao"
	"github.com/companieshouse/sca.api.ch.gov.uk/models"
	"github.com/companieshouse/sca.api.ch.gov.uk/transformers"
	"github.com/companieshouse/sca.api.ch.gov.uk/utils"
	"golang.org/x/sync/errgroup"
)

// SweepService retires resources whose confirmation window or validity
// period has lapsed. Sweeps are idempotent; a resource retired by one pass
// simply stops matching the next.
type SweepService struct {
	DAO    dao.DAO
	Config config.Config
	Guard  *ChecksumGuard
	Clock  Clock
}

var awaitingStatuses = []string{
	string(models.ResourceStatusReceived),
	string(models.ResourceStatusPartiallyAuthorised),
}

// SweepNotConfirmed expires resources that have sat awaiting confirmation
// for longer than the configured period, returning the number expired.
// Domains are swept concurrently; a failing page is logged and skipped so
// one bad page cannot stall the rest of the sweep.
func (service *SweepService) SweepNotConfirmed(ctx context.Context) (int, error) {
	group, _ := errgroup.WithContext(ctx)

	var expired int64
	for _, domain := range models.Domains {
		domain := domain
		group.Go(func() error {
			count, err := service.sweepNotConfirmedDomain(domain)
			atomic.AddInt64(&expired, int64(count))
			return err
		})
	}

	err := group.Wait()

	return int(expired), err
}

func (service *SweepService) sweepNotConfirmedDomain(domain models.Domain) (int, error) {
	count, err := service.DAO.CountResourcesByStatus(string(domain), awaitingStatuses)
	if err != nil {
		return 0, fmt.Errorf("error counting awaiting resources for domain [%s]: [%v]", domain, err)
	}

	pageSize := service.Config.SweepPageSize
	pages := (count + pageSize - 1) / pageSize
	now := service.Clock.Now()

	swept := 0
	for page := int64(0); page < pages; page++ {
		resources, err := service.DAO.FindResourcesByStatus(string(domain), awaitingStatuses, page, pageSize)
		if err != nil {
			log.Error(fmt.Errorf("error fetching sweep page [%d] for domain [%s]: [%v]", page, domain, err))
			continue
		}

		var expired []string
		for _, resource := range resources {
			if resource.Data.SigningBasketBlocked {
				continue
			}
			if service.IsConfirmationExpired(&resource, now) {
				expired = append(expired, resource.ID)
			}
		}

		if len(expired) == 0 {
			continue
		}

		if err := service.DAO.BulkUpdateResourceStatus(expired, string(models.ResourceStatusExpired), now); err != nil {
			log.Error(fmt.Errorf("error expiring sweep page [%d] for domain [%s]: [%v]", page, domain, err))
			continue
		}

		swept += len(expired)
		log.Info("expired unconfirmed resources", log.Data{"domain": domain, "count": len(expired)})
	}

	return swept, nil
}

// SweepValidUntil expires settled resources whose validity period has
// lapsed, returning the number expired. These writes go through the
// checksum guard: a tampered aggregate stays untouched and is reported
// rather than silently rewritten.
func (service *SweepService) SweepValidUntil(ctx context.Context) (int, error) {
	group, _ := errgroup.WithContext(ctx)

	var expired int64
	for _, domain := range models.Domains {
		domain := domain
		group.Go(func() error {
			count, err := service.sweepValidUntilDomain(domain)
			atomic.AddInt64(&expired, int64(count))
			return err
		})
	}

	err := group.Wait()

	return int(expired), err
}

func (service *SweepService) sweepValidUntilDomain(domain models.Domain) (int, error) {
	statuses := []string{string(models.ResourceStatusValid)}

	count, err := service.DAO.CountResourcesByStatus(string(domain), statuses)
	if err != nil {
		return 0, fmt.Errorf("error counting valid resources for domain [%s]: [%v]", domain, err)
	}

	pageSize := service.Config.SweepPageSize
	pages := (count + pageSize - 1) / pageSize
	now := service.Clock.Now()

	swept := 0
	for page := int64(0); page < pages; page++ {
		resources, err := service.DAO.FindResourcesByStatus(string(domain), statuses, page, pageSize)
		if err != nil {
			log.Error(fmt.Errorf("error fetching sweep page [%d] for domain [%s]: [%v]", page, domain, err))
			continue
		}

		var lapsed []*models.ResourceDB
		for i := range resources {
			previous := resources[i]
			if previous.Data.SigningBasketBlocked {
				continue
			}
			if previous.Data.ValidUntil.IsZero() || !previous.Data.ValidUntil.Before(now) {
				continue
			}

			resource := transformers.ResourceTransformer{}.TransformToRest(previous)
			resource.Status = models.ResourceStatusExpired
			resource.StatusChangedAt = now
			resource.Etag = utils.GenerateEtag()

			updated := transformers.ResourceTransformer{}.TransformToDB(resource)
			lapsed = append(lapsed, &updated)
		}

		if len(lapsed) == 0 {
			continue
		}

		if err := service.Guard.VerifyAndSaveAll(lapsed); err != nil {
			log.Error(fmt.Errorf("error expiring sweep page [%d] for domain [%s]: [%v]", page, domain, err))
			continue
		}

		swept += len(lapsed)
		log.Info("expired lapsed resources", log.Data{"domain": domain, "count": len(lapsed)})
	}

	return swept, nil
}

// IsConfirmationExpired reports whether a resource has outlived its
// confirmation window at the given instant
func (service *SweepService) IsConfirmationExpired(resource *models.ResourceDB, now time.Time) bool {
	reference := resource.Data.CreatedAt
	if reference.IsZero() {
		reference = resource.Data.StatusChangedAt
	}
	if reference.IsZero() {
		return false
	}

	return now.Sub(reference) > service.Config.NotConfirmedExpiryPeriod
}

// Run sweeps on the configured interval until the context is cancelled.
// A zero interval disables the ticker.
func (service *SweepService) Run(ctx context.Context) {
	if service.Config.SweepInterval <= 0 {
		log.Info("expiration sweeps disabled")
		return
	}

	ticker := time.NewTicker(service.Config.SweepInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if _, err := service.SweepNotConfirmed(ctx); err != nil {
				log.Error(err)
			}
			if _, err := service.SweepValidUntil(ctx); err != nil {
				log.Error(err)
			}
		}
	}
}
