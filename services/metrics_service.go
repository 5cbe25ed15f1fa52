package services

import (
	"context"
	"fmt"

	"daily-diet/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// DietMetrics summarizes a user's full meal history.
type DietMetrics struct {
	Count            int `json:"count"`
	CountOnDiet      int `json:"countOnDiet"`
	CountOffDiet     int `json:"countOffDiet"`
	BestDietSequence int `json:"bestDietSequence"`
}

type MetricsService struct {
	db *gorm.DB
}

func NewMetricsService(db *gorm.DB) *MetricsService {
	return &MetricsService{db: db}
}

// DietMetrics loads the caller's meal history, most recent first, and reduces
// it in a single pass. The secondary id sort keeps the order deterministic
// when two meals share a creation timestamp.
func (s *MetricsService) DietMetrics(ctx context.Context, userID uuid.UUID) (DietMetrics, error) {
	var meals []models.Meal
	err := s.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC, id DESC").
		Find(&meals).Error
	if err != nil {
		return DietMetrics{}, fmt.Errorf("load meal history: %w", err)
	}
	return ComputeDietMetrics(meals), nil
}

// ComputeDietMetrics counts on/off-diet meals and the longest run of
// consecutive on-diet meals in the given order. Consecutive means adjacent in
// the sequence as recorded, not calendar-adjacent.
func ComputeDietMetrics(meals []models.Meal) DietMetrics {
	var m DietMetrics
	currentSequence := 0
	for _, meal := range meals {
		m.Count++
		if meal.IsDiet {
			m.CountOnDiet++
			currentSequence++
		} else {
			m.CountOffDiet++
			currentSequence = 0
		}
		if currentSequence > m.BestDietSequence {
			m.BestDietSequence = currentSequence
		}
	}
	return m
}
