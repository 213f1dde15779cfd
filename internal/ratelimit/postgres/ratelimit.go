package postgres

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	rlDatamodel "github.com/frahmantamala/employee-directory/internal/core/datamodel/ratelimit"
	"github.com/frahmantamala/employee-directory/internal/ratelimit"
)

type RateLimitStore struct {
	db *gorm.DB
}

func NewRateLimitStore(db *gorm.DB) ratelimit.StoreAPI {
	return &RateLimitStore{db: db}
}

func (s *RateLimitStore) DeleteOlderThan(ip string, cutoff time.Time) error {
	return s.db.
		Where("ip_address = ? AND last_request < ?", ip, cutoff).
		Delete(&rlDatamodel.RateLimitRecord{}).Error
}

func (s *RateLimitStore) GetOrCreate(ip string, orgID *uuid.UUID, now time.Time) (*rlDatamodel.RateLimitRecord, error) {
	var record rlDatamodel.RateLimitRecord
	err := s.scopeKey(ip, orgID).First(&record).Error
	if err == nil {
		return &record, nil
	}
	if err != gorm.ErrRecordNotFound {
		return nil, err
	}

	record = rlDatamodel.RateLimitRecord{
		IPAddress:      ip,
		OrganizationID: orgID,
		RequestCount:   0,
		WindowStart:    now,
		LastRequest:    now,
	}
	if err := s.db.Create(&record).Error; err != nil {
		return nil, err
	}
	return &record, nil
}

func (s *RateLimitStore) SumSince(ip string, orgID *uuid.UUID, since time.Time) (int64, error) {
	var total *int64
	err := s.scopeKey(ip, orgID).
		Where("last_request >= ?", since).
		Select("SUM(request_count)").
		Scan(&total).Error
	if err != nil {
		return 0, err
	}
	if total == nil {
		return 0, nil
	}
	return *total, nil
}

func (s *RateLimitStore) Increment(record *rlDatamodel.RateLimitRecord, now time.Time) error {
	record.RequestCount++
	record.LastRequest = now
	return s.db.Model(record).Updates(map[string]interface{}{
		"request_count": record.RequestCount,
		"last_request":  record.LastRequest,
	}).Error
}

// scopeKey narrows queries to one (ip, org) ledger key. A nil org means the
// global scope, which must not match tenant-scoped rows.
func (s *RateLimitStore) scopeKey(ip string, orgID *uuid.UUID) *gorm.DB {
	query := s.db.Model(&rlDatamodel.RateLimitRecord{}).Where("ip_address = ?", ip)
	if orgID == nil {
		return query.Where("organization_id IS NULL")
	}
	return query.Where("organization_id = ?", *orgID)
}
