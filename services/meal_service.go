package services

import (
	"context"
	"errors"
	"fmt"

	"daily-diet/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var ErrMealNotFound = errors.New("meal not found")

// MealInput is the validated create/update payload. Owner and creation time
// are never part of it.
type MealInput struct {
	Name        string
	Description string
	IsDiet      bool
}

type MealService struct {
	db *gorm.DB
}

func NewMealService(db *gorm.DB) *MealService {
	return &MealService{db: db}
}

func (s *MealService) Create(ctx context.Context, userID uuid.UUID, in MealInput) (*models.Meal, error) {
	meal := models.Meal{
		Name:        in.Name,
		Description: in.Description,
		IsDiet:      in.IsDiet,
		UserID:      userID,
	}
	if err := s.db.WithContext(ctx).Create(&meal).Error; err != nil {
		return nil, fmt.Errorf("create meal: %w", err)
	}
	return &meal, nil
}

func (s *MealService) List(ctx context.Context, userID uuid.UUID) ([]models.Meal, error) {
	meals := []models.Meal{}
	if err := s.db.WithContext(ctx).Where("user_id = ?", userID).Find(&meals).Error; err != nil {
		return nil, fmt.Errorf("list meals: %w", err)
	}
	return meals, nil
}

// GetByID resolves a meal by (id, owner). A meal owned by someone else is
// reported the same way as a missing one.
func (s *MealService) GetByID(ctx context.Context, userID, mealID uuid.UUID) (*models.Meal, error) {
	var meal models.Meal
	err := s.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", mealID, userID).
		First(&meal).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrMealNotFound
		}
		return nil, fmt.Errorf("get meal: %w", err)
	}
	return &meal, nil
}

func (s *MealService) Update(ctx context.Context, userID, mealID uuid.UUID, in MealInput) error {
	meal, err := s.GetByID(ctx, userID, mealID)
	if err != nil {
		return err
	}

	// Map form so zero values (empty description, is_diet=false) are written.
	err = s.db.WithContext(ctx).Model(meal).Updates(map[string]interface{}{
		"name":        in.Name,
		"description": in.Description,
		"is_diet":     in.IsDiet,
	}).Error
	if err != nil {
		return fmt.Errorf("update meal: %w", err)
	}
	return nil
}

func (s *MealService) Delete(ctx context.Context, userID, mealID uuid.UUID) error {
	if _, err := s.GetByID(ctx, userID, mealID); err != nil {
		return err
	}

	err := s.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", mealID, userID).
		Delete(&models.Meal{}).Error
	if err != nil {
		return fmt.Errorf("delete meal: %w", err)
	}
	return nil
}
