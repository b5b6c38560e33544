package models

// PlanSnapshot is the locally cached plan of a single day.
type PlanSnapshot struct {
	Date string   `json:"date"`
	Plan DateData `json:"plan"`
}

// Valid reports whether the snapshot has a date and a non-empty plan.
func (s *PlanSnapshot) Valid() bool {
	return s != nil && s.Date != "" && len(s.Plan) > 0
}
