package store

import (
	"context"
	"time"

	"github.com/pcote/learningmachine/internal/models"
)

// AddAttempt records a self-assessed score against an exercise. The
// timestamp is assigned here, not by the caller. Exercise ownership is not
// checked; attempts are only ever reachable through exercises the session
// user owns.
func (s *Store) AddAttempt(ctx context.Context, exerciseID uint, score int) error {
	attempt := models.Attempt{
		ExerciseID:    exerciseID,
		Score:         score,
		WhenAttempted: time.Now(),
	}

	return s.db.WithContext(ctx).Create(&attempt).Error
}

// Attempts returns every attempt recorded against the given exercise.
func (s *Store) Attempts(ctx context.Context, exerciseID uint) ([]models.Attempt, error) {
	var attempts []models.Attempt

	err := s.db.WithContext(ctx).
		Select("score", "when_attempted").
		Where("exercise_id = ?", exerciseID).
		Find(&attempts).Error

	if err != nil {
		return nil, err
	}

	return attempts, nil
}
