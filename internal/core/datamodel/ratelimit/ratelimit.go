package ratelimit

import (
	"time"

	"github.com/google/uuid"
)

// RateLimitRecord is one row of the request-counting ledger. A given
// (ip, organization) pair can own several rows over time; the limiter sums
// the counts of the rows whose last_request falls inside the lookback window.
type RateLimitRecord struct {
	ID             int64      `gorm:"column:id;primaryKey"`
	IPAddress      string     `gorm:"column:ip_address;not null;index:idx_rate_limit_ip_last,priority:1"`
	OrganizationID *uuid.UUID `gorm:"column:organization_id;type:uuid"`
	RequestCount   int64      `gorm:"column:request_count;not null;default:0"`
	WindowStart    time.Time  `gorm:"column:window_start;not null"`
	LastRequest    time.Time  `gorm:"column:last_request;not null;index:idx_rate_limit_ip_last,priority:2"`
}

func (RateLimitRecord) TableName() string {
	return "rate_limit_records"
}
