package game

import (
	"fmt"
	"math"
)

// CurrencyKind names one of the resources a quest can cost or reward.
type CurrencyKind string

const (
	CurrencyCash              CurrencyKind = "cash"
	CurrencyUnderstandings    CurrencyKind = "understandings"
	CurrencyProcrastinations  CurrencyKind = "procrastinations"
	CurrencyMaxActivatedItems CurrencyKind = "maxActivatedItems"
)

// Currency is an amount of one resource. CourseIndex is only meaningful for
// understandings and is -1 otherwise.
type Currency struct {
	Kind        CurrencyKind `yaml:"kind" json:"kind"`
	CourseIndex int          `yaml:"courseIndex" json:"courseIndex"`
	Amount      float64      `yaml:"amount" json:"amount"`
}

func Cash(amount float64) Currency {
	return Currency{Kind: CurrencyCash, CourseIndex: -1, Amount: amount}
}

func Understandings(courseIndex int, amount float64) Currency {
	return Currency{Kind: CurrencyUnderstandings, CourseIndex: courseIndex, Amount: amount}
}

func Procrastinations(amount float64) Currency {
	return Currency{Kind: CurrencyProcrastinations, CourseIndex: -1, Amount: amount}
}

func MaxActivatedItems(amount float64) Currency {
	return Currency{Kind: CurrencyMaxActivatedItems, CourseIndex: -1, Amount: amount}
}

// Balance returns how much of the currency's resource the state holds.
// Understandings of a missing course count as zero.
func (s *State) Balance(c Currency) float64 {
	switch c.Kind {
	case CurrencyCash:
		return s.Cash
	case CurrencyProcrastinations:
		return s.Procrastinations
	case CurrencyMaxActivatedItems:
		return float64(s.MaxActivatedItems)
	case CurrencyUnderstandings:
		if course := s.Course(c.CourseIndex); course != nil {
			return course.Understandings
		}
	}
	return 0
}

// CanAfford reports whether every cost can be paid.
func (s *State) CanAfford(costs []Currency) bool {
	for _, c := range costs {
		if s.Balance(c) < c.Amount {
			return false
		}
	}
	return true
}

// Pay deducts a cost. It does not check affordability.
func (s *State) Pay(c Currency) {
	s.adjust(c.Kind, c.CourseIndex, c.Amount, true)
}

// Gain credits a reward. Understandings granted this way do not count towards score.
func (s *State) Gain(c Currency) {
	s.adjust(c.Kind, c.CourseIndex, c.Amount, false)
}

func (s *State) adjust(kind CurrencyKind, courseIndex int, amount float64, spend bool) {
	apply := func(balance float64) float64 {
		if spend {
			return subtract(balance, amount)
		}
		return balance + amount
	}
	switch kind {
	case CurrencyCash:
		s.Cash = apply(s.Cash)
	case CurrencyProcrastinations:
		s.Procrastinations = apply(s.Procrastinations)
	case CurrencyMaxActivatedItems:
		s.MaxActivatedItems = toCount(apply(float64(s.MaxActivatedItems)))
	case CurrencyUnderstandings:
		if course := s.Course(courseIndex); course != nil {
			course.Understandings = apply(course.Understandings)
		}
	}
}

// subtract pays amount from balance. Paying an infinite cost from an infinite
// balance leaves nothing rather than NaN.
func subtract(balance, amount float64) float64 {
	if math.IsInf(balance, 1) && math.IsInf(amount, 1) {
		return 0
	}
	return balance - amount
}

// toCount converts an amount to a non-negative slot count.
func toCount(v float64) int {
	if math.IsNaN(v) || v <= 0 {
		return 0
	}
	if v >= InventorySize {
		return InventorySize
	}
	return int(v)
}

// Label renders the currency for log lines and the UI.
func (c Currency) Label(s *State) string {
	amount := FormatAmount(c.Amount)
	switch c.Kind {
	case CurrencyCash:
		return fmt.Sprintf("**$%s**", amount)
	case CurrencyProcrastinations:
		return fmt.Sprintf("**%s** procrastination", amount)
	case CurrencyMaxActivatedItems:
		return fmt.Sprintf("**%s** activation slot(s)", amount)
	case CurrencyUnderstandings:
		title := "unknown course"
		if course := s.Course(c.CourseIndex); course != nil {
			title = course.Title
		}
		return fmt.Sprintf("**%s** %s understanding", amount, title)
	}
	return amount
}
