package filter

import "fmt"

// Отсутствующая граница считается неограниченной.
func inRange(x float64, lo, hi *float64) bool {
	if lo != nil && x < *lo {
		return false
	}
	if hi != nil && x > *hi {
		return false
	}
	return true
}

func validateRange(name string, lo, hi *float64) error {
	if lo != nil && hi != nil && *lo > *hi {
		return fmt.Errorf("%w: %s min %v больше max %v", ErrInvalidRange, name, *lo, *hi)
	}
	return nil
}
