package cleaner

// Report describes what one rule application changed.
type Report struct {
	Rule    string   `json:"rule"`
	Columns []string `json:"columns"`
	// Repaired counts cells replaced by a sentinel, default or cap.
	Repaired int `json:"repaired"`
	// Coerced counts non-null cells that did not coerce and became null.
	Coerced int `json:"coerced"`
	// Removed counts dropped rows.
	Removed    int `json:"removed"`
	RowsBefore int `json:"rows_before"`
	RowsAfter  int `json:"rows_after"`
}

// Changed reports whether the rule touched the dataset at all.
func (r Report) Changed() bool {
	return r.Repaired > 0 || r.Coerced > 0 || r.Removed > 0
}
