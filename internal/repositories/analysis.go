package repositories

import (
	"fmt"

	"gorm.io/gorm"

	"alfredoptarigan/smart-ats/internal/models"
)

type AnalysisRepository interface {
	Create(record *models.AnalysisRecord) error
	Stats() (*models.AnalysisStats, error)
}

type analysisRepository struct {
	db *gorm.DB
}

func NewAnalysisRepository(db *gorm.DB) AnalysisRepository {
	return &analysisRepository{db: db}
}

func (r *analysisRepository) Create(record *models.AnalysisRecord) error {
	if err := r.db.Create(record).Error; err != nil {
		return fmt.Errorf("failed to create analysis record: %w", err)
	}
	return nil
}

type groupCount struct {
	Label string
	Count int64
}

func (r *analysisRepository) Stats() (*models.AnalysisStats, error) {
	stats := &models.AnalysisStats{
		ByStatus: make(map[models.AnalysisStatus]int64),
		ByTier:   make(map[models.MatchTier]int64),
	}

	if err := r.db.Model(&models.AnalysisRecord{}).Count(&stats.Total).Error; err != nil {
		return nil, fmt.Errorf("failed to count analysis records: %w", err)
	}

	var byStatus []groupCount
	err := r.db.Model(&models.AnalysisRecord{}).
		Select("status AS label, COUNT(*) AS count").
		Group("status").
		Scan(&byStatus).Error
	if err != nil {
		return nil, fmt.Errorf("failed to group by status: %w", err)
	}
	for _, row := range byStatus {
		stats.ByStatus[models.AnalysisStatus(row.Label)] = row.Count
	}

	var byTier []groupCount
	err = r.db.Model(&models.AnalysisRecord{}).
		Select("tier AS label, COUNT(*) AS count").
		Where("tier IS NOT NULL").
		Group("tier").
		Scan(&byTier).Error
	if err != nil {
		return nil, fmt.Errorf("failed to group by tier: %w", err)
	}
	for _, row := range byTier {
		stats.ByTier[models.MatchTier(row.Label)] = row.Count
	}

	return stats, nil
}
