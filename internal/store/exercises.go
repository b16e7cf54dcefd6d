package store

import (
	"context"
	"errors"

	"github.com/pcote/learningmachine/internal/models"
	"gorm.io/gorm"
)

// ExerciseAttempts pairs an exercise with its attempt history.
type ExerciseAttempts struct {
	Exercise models.Exercise
	Attempts []models.Attempt
}

func (s *Store) AddExercise(ctx context.Context, question, answer, userID string) error {
	exercise := models.Exercise{
		Question: question,
		Answer:   answer,
		UserID:   userID,
	}

	return s.db.WithContext(ctx).Create(&exercise).Error
}

// Exercises returns every exercise owned by userID.
func (s *Store) Exercises(ctx context.Context, userID string) ([]models.Exercise, error) {
	var exercises []models.Exercise

	err := s.db.WithContext(ctx).
		Select("id", "question", "answer", "user_id").
		Where("user_id = ?", userID).
		Find(&exercises).Error

	if err != nil {
		return nil, err
	}

	return exercises, nil
}

// AttemptHistory returns every exercise owned by userID together with its
// attempts. One attempts query per exercise; per-user exercise counts are
// small enough that a batched join isn't worth it.
func (s *Store) AttemptHistory(ctx context.Context, userID string) ([]ExerciseAttempts, error) {
	exercises, err := s.Exercises(ctx, userID)

	if err != nil {
		return nil, err
	}

	history := make([]ExerciseAttempts, 0, len(exercises))

	for _, exercise := range exercises {
		attempts, err := s.Attempts(ctx, exercise.ID)

		if err != nil {
			return nil, err
		}

		history = append(history, ExerciseAttempts{
			Exercise: exercise,
			Attempts: attempts,
		})
	}

	return history, nil
}

// DeleteExercise removes an exercise together with its attempts and
// resource links. The ownership check and the cascade run in one
// transaction, so a concurrent delete cannot slip between them. Returns
// false, without writing anything, when exerciseID does not exist or is
// not owned by userID.
func (s *Store) DeleteExercise(ctx context.Context, userID string, exerciseID uint) (bool, error) {
	deleted := false

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var exercise models.Exercise

		err := tx.Where("id = ? AND user_id = ?", exerciseID, userID).First(&exercise).Error

		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil
			}
			return err
		}

		if err := tx.Where("exercise_id = ?", exerciseID).Delete(&models.Attempt{}).Error; err != nil {
			return err
		}

		if err := tx.Where("exercise_id = ?", exerciseID).Delete(&models.ResourceExercise{}).Error; err != nil {
			return err
		}

		if err := tx.Delete(&models.Exercise{}, exerciseID).Error; err != nil {
			return err
		}

		deleted = true

		return nil
	})

	return deleted, err
}
