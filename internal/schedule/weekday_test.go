package schedule

import "testing"

func TestNormalizeDays(t *testing.T) {
	cases := []struct {
		name string
		in   []Weekday
		want []Weekday
	}{
		{
			name: "sorts into Monday-first order",
			in:   []Weekday{Friday, Wednesday, Monday},
			want: []Weekday{Monday, Wednesday, Friday},
		},
		{
			name: "drops repeated days",
			in:   []Weekday{Tuesday, Monday, Tuesday, Tuesday},
			want: []Weekday{Monday, Tuesday},
		},
		{
			name: "empty set stays empty",
			in:   nil,
			want: []Weekday{},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := NormalizeDays(tc.in)
			if len(got) != len(tc.want) {
				t.Fatalf("NormalizeDays(%v) = %v, want %v", tc.in, got, tc.want)
			}
			for i := range got {
				if got[i] != tc.want[i] {
					t.Fatalf("NormalizeDays(%v) = %v, want %v", tc.in, got, tc.want)
				}
			}
		})
	}
}
