package db

import "fmt"

const (
	TypeEducation    = "education"
	TypeRecreational = "recreational"
	TypeSocial       = "social"
	TypeBusywork     = "busywork"
	TypeCharity      = "charity"
	TypeCooking      = "cooking"
	TypeRelaxation   = "relaxation"
	TypeMusic        = "music"
	TypeDIY          = "diy"
)

var knownTypes = map[string]struct{}{
	TypeEducation:    {},
	TypeRecreational: {},
	TypeSocial:       {},
	TypeBusywork:     {},
	TypeCharity:      {},
	TypeCooking:      {},
	TypeRelaxation:   {},
	TypeMusic:        {},
	TypeDIY:          {},
}

// KnownType сообщает, входит ли t в словарь типов Bored API.
func KnownType(t string) bool {
	_, ok := knownTypes[t]
	return ok
}

type Activity struct {
	Activity      string  `db:"activity" json:"activity"`           // Описание
	Type          string  `db:"type" json:"type"`                   // Категория
	Participants  int     `db:"participants" json:"participants"`   // >= 1
	Price         float64 `db:"price" json:"price"`                 // 0 = бесплатно, до 1
	Accessibility float64 `db:"accessibility" json:"accessibility"` // 0 = доступнее всего, до 1
}

type StoredActivity struct {
	ID int64 `db:"id"`
	Activity
}

func (s StoredActivity) String() string {
	return fmt.Sprintf("#%d [%s] %s (participants: %d, price: %.2f, accessibility: %.2f)",
		s.ID, s.Type, s.Activity.Activity, s.Participants, s.Price, s.Accessibility)
}
