package clinicalc

import (
	"testing"
	"time"
)

func date(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return t
}

func TestAge_AroundBirthday(t *testing.T) {
	birth := date("1990-06-15")

	tests := []struct {
		asOf string
		want int
	}{
		{"2024-06-14", 33}, // day before birthday
		{"2024-06-15", 34}, // on the birthday
		{"2024-06-16", 34}, // day after
		{"2024-05-31", 33}, // earlier month
		{"2024-07-01", 34}, // later month
		{"1990-06-15", 0},
	}
	for _, tt := range tests {
		if got := Age(birth, date(tt.asOf)); got != tt.want {
			t.Errorf("Age(%s, %s) = %d, want %d", "1990-06-15", tt.asOf, got, tt.want)
		}
	}
}

func TestAge_LeapYearBirthday(t *testing.T) {
	birth := date("2000-02-29")
	if got := Age(birth, date("2023-02-28")); got != 22 {
		t.Errorf("Age before Feb 29 = %d, want 22", got)
	}
	if got := Age(birth, date("2023-03-01")); got != 23 {
		t.Errorf("Age after Feb 29 = %d, want 23", got)
	}
}

func TestBMI(t *testing.T) {
	got, ok := BMI(180, 81)
	if !ok || got != 25.0 {
		t.Errorf("BMI(180, 81) = %v, %v; want 25.0, true", got, ok)
	}

	got, ok = BMI(170, 65.5)
	if !ok || got != 22.66 {
		t.Errorf("BMI(170, 65.5) = %v, %v; want 22.66, true", got, ok)
	}
}

func TestBMI_MissingOrZeroInputs(t *testing.T) {
	// Zero height must not divide by zero; absent inputs arrive as zero.
	cases := [][2]float64{{0, 81}, {180, 0}, {0, 0}, {-170, 70}, {170, -1}}
	for _, c := range cases {
		if _, ok := BMI(c[0], c[1]); ok {
			t.Errorf("BMI(%v, %v) reported a value, want none", c[0], c[1])
		}
	}
}
