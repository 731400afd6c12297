package models

import (
	"errors"
)

var (
	ErrGeneral                      = errors.New("an error occurred on the server during your request")
	ErrResourceNotFound             = errors.New("there is no")
	ErrCategoryRulePatternEmpty     = errors.New("the pattern of a category rule must not be empty")
	ErrCategoryRulePatternNotUnique = errors.New("the pattern of a category rule must be unique")
	ErrThemeInvalid                 = errors.New("the theme must be one of 'light', 'dark' or 'system'")
	ErrGoalTargetImmutable          = errors.New("the target amount of a goal cannot be changed")
)
