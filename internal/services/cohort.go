package services

// Cohort is a derived age-bracket label used to group users for peer-based
// recommendation. It is recomputed on every request, never persisted.
type Cohort string

const (
	CohortUnder21 Cohort = "under_21"
	Cohort21To30  Cohort = "21_30"
	Cohort31To40  Cohort = "31_40"
	CohortOver40  Cohort = "over_40"
)

// ClassifyAge maps a non-negative age onto its cohort. This function is the
// single source of truth for the bracket boundaries; callers must never
// reimplement them inline. Boundaries: [0,21) [21,30] [31,40] (40,inf).
func ClassifyAge(age int) Cohort {
	switch {
	case age < 21:
		return CohortUnder21
	case age <= 30:
		return Cohort21To30
	case age <= 40:
		return Cohort31To40
	default:
		return CohortOver40
	}
}

// CohortForAge classifies an optional age. A user with no recorded age (or a
// corrupt negative one) has no cohort, which downstream turns into an empty
// recommendation result rather than an error.
func CohortForAge(age *int) (Cohort, bool) {
	if age == nil || *age < 0 {
		return "", false
	}
	return ClassifyAge(*age), true
}
