package services

import "testing"

func TestClassifyAgeBoundaries(t *testing.T) {
	cases := []struct {
		age  int
		want Cohort
	}{
		{0, CohortUnder21},
		{12, CohortUnder21},
		{20, CohortUnder21},
		{21, Cohort21To30},
		{25, Cohort21To30},
		{30, Cohort21To30},
		{31, Cohort31To40},
		{35, Cohort31To40},
		{40, Cohort31To40},
		{41, CohortOver40},
		{67, CohortOver40},
	}
	for _, tc := range cases {
		if got := ClassifyAge(tc.age); got != tc.want {
			t.Errorf("ClassifyAge(%d) = %q, want %q", tc.age, got, tc.want)
		}
	}
}

func TestCohortForAge(t *testing.T) {
	age := 28
	negative := -3

	cases := []struct {
		name   string
		age    *int
		want   Cohort
		wantOK bool
	}{
		{"nil age", nil, "", false},
		{"negative age", &negative, "", false},
		{"known age", &age, Cohort21To30, true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := CohortForAge(tc.age)
			if ok != tc.wantOK {
				t.Fatalf("ok = %v, want %v", ok, tc.wantOK)
			}
			if got != tc.want {
				t.Fatalf("cohort = %q, want %q", got, tc.want)
			}
		})
	}
}
