package filter

import (
	"errors"

	model "bored/activity/internal/model/db"
)

var ErrInvalidRange = errors.New("некорректный диапазон")

// Criteria - необязательные условия пользователя. nil означает "не задано".
type Criteria struct {
	Type             string
	Participants     *int
	PriceMin         *float64
	PriceMax         *float64
	AccessibilityMin *float64
	AccessibilityMax *float64
}

func (c Criteria) IsEmpty() bool {
	return c.Type == "" && c.Participants == nil &&
		c.PriceMin == nil && c.PriceMax == nil &&
		c.AccessibilityMin == nil && c.AccessibilityMax == nil
}

func (c Criteria) Validate() error {
	if err := validateRange("price", c.PriceMin, c.PriceMax); err != nil {
		return err
	}
	return validateRange("accessibility", c.AccessibilityMin, c.AccessibilityMax)
}

// Match возвращает true, только если активность проходит все заданные условия.
func (c Criteria) Match(a *model.Activity) bool {
	if a == nil {
		return false
	}
	if c.Type != "" && c.Type != a.Type {
		return false
	}
	if c.Participants != nil && *c.Participants != a.Participants {
		return false
	}
	return inRange(a.Price, c.PriceMin, c.PriceMax) &&
		inRange(a.Accessibility, c.AccessibilityMin, c.AccessibilityMax)
}
