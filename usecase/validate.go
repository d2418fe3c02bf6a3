package usecase

import (
	"errors"
	"fmt"
	"main/model"
)

const (
	maxTagsPerEntity = 5
	maxTagLength     = 20
)

func validateTags(tags []string) ([]string, error) {
	if len(tags) == 0 {
		return nil, nil
	}
	var validTags []string
	for _, tag := range tags {
		if tag != "" {
			validTags = append(validTags, tag)
		}
	}
	if len(validTags) > maxTagsPerEntity {
		return nil, fmt.Errorf("cannot exceed %d tags", maxTagsPerEntity)
	}
	for _, tag := range validTags {
		if len(tag) > maxTagLength {
			return nil, fmt.Errorf("tag cannot exceed %d characters", maxTagLength)
		}
	}
	return validTags, nil
}

func validatePriority(priority model.Priority) error {
	switch priority {
	case model.PriorityLow, model.PriorityMedium, model.PriorityHigh:
		return nil
	}
	return fmt.Errorf("invalid priority level %q", priority)
}

func validateDifficulty(difficulty model.Difficulty) error {
	switch difficulty {
	case model.DifficultyEasy, model.DifficultyMedium, model.DifficultyHard:
		return nil
	}
	return fmt.Errorf("invalid difficulty level %q", difficulty)
}

func validateDays(days []string) error {
	if len(days) == 0 {
		return errors.New("at least one day is required")
	}
	for _, day := range days {
		if !model.IsValidWeekday(day) {
			return fmt.Errorf("invalid weekday %q", day)
		}
	}
	return nil
}
