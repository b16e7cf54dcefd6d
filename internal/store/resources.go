package store

import (
	"context"
	"errors"

	"github.com/pcote/learningmachine/internal/models"
	"gorm.io/gorm"
)

// AddResource inserts a clickable resource owned by userID. When exerciseID
// is non-nil the resource is linked to that exercise in the same
// transaction, so the resource row and its link land together or not at
// all.
func (s *Store) AddResource(ctx context.Context, caption, url, userID string, exerciseID *uint) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		resource := models.Resource{
			Caption: caption,
			URL:     url,
			UserID:  userID,
		}

		if err := tx.Create(&resource).Error; err != nil {
			return err
		}

		if exerciseID == nil {
			return nil
		}

		link := models.ResourceExercise{
			ExerciseID: *exerciseID,
			ResourceID: resource.ID,
		}

		return tx.Create(&link).Error
	})
}

// Resources returns every resource owned by userID.
func (s *Store) Resources(ctx context.Context, userID string) ([]models.Resource, error) {
	var resources []models.Resource

	err := s.db.WithContext(ctx).Where("user_id = ?", userID).Find(&resources).Error

	if err != nil {
		return nil, err
	}

	return resources, nil
}

// ResourcesForExercise returns the resources owned by userID that are
// linked to the given exercise. Owned resources linked elsewhere, or not
// linked at all, are excluded.
func (s *Store) ResourcesForExercise(ctx context.Context, exerciseID uint, userID string) ([]models.Resource, error) {
	var resources []models.Resource

	err := s.db.WithContext(ctx).
		Joins("JOIN resource_exercises ON resource_exercises.resource_id = resources.id").
		Where("resources.user_id = ? AND resource_exercises.exercise_id = ?", userID, exerciseID).
		Find(&resources).Error

	if err != nil {
		return nil, err
	}

	return resources, nil
}

// DeleteResource removes a resource and its exercise links in one
// transaction, with the ownership check inside the same transaction.
// Returns false, without writing anything, when resourceID does not exist
// or is not owned by userID.
func (s *Store) DeleteResource(ctx context.Context, userID string, resourceID uint) (bool, error) {
	deleted := false

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var resource models.Resource

		err := tx.Where("id = ? AND user_id = ?", resourceID, userID).First(&resource).Error

		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil
			}
			return err
		}

		if err := tx.Where("resource_id = ?", resourceID).Delete(&models.ResourceExercise{}).Error; err != nil {
			return err
		}

		if err := tx.Delete(&models.Resource{}, resourceID).Error; err != nil {
			return err
		}

		deleted = true

		return nil
	})

	return deleted, err
}
