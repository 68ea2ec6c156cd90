package models

import (
	"time"

	"github.com/google/uuid"
)

type AnalysisStatus string

const (
	StatusCompleted  AnalysisStatus = "completed"
	StatusParseError AnalysisStatus = "parse_error"
	StatusShapeError AnalysisStatus = "shape_error"
	StatusFailed     AnalysisStatus = "failed"
)

// AnalysisRecord is one row of the analysis ledger. It holds metadata only:
// no job description, resume text or model output is ever stored.
type AnalysisRecord struct {
	ID                  uuid.UUID      `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	Status              AnalysisStatus `gorm:"type:varchar(32);not null;index" json:"status"`
	MatchPercent        *int           `json:"match_percent,omitempty"`
	Tier                *MatchTier     `gorm:"type:varchar(16);index" json:"tier,omitempty"`
	MissingKeywordCount int            `json:"missing_keyword_count"`
	Provider            string         `gorm:"type:varchar(32)" json:"provider"`
	Model               string         `gorm:"type:text" json:"model"`
	DurationMs          int64          `json:"duration_ms"`
	ErrorMessage        *string        `gorm:"type:text" json:"error_message,omitempty"`
	CreatedAt           time.Time      `gorm:"default:CURRENT_TIMESTAMP" json:"created_at"`
}

func (AnalysisRecord) TableName() string {
	return "analysis_records"
}

type AnalysisStats struct {
	Total    int64                    `json:"total"`
	ByStatus map[AnalysisStatus]int64 `json:"by_status"`
	ByTier   map[MatchTier]int64      `json:"by_tier"`
}
