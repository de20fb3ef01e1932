package seeder

import (
	"math"
	"testing"
	"time"
)

func TestBirthDateAgeRange(t *testing.T) {
	days := []time.Time{
		time.Date(2025, time.March, 1, 15, 0, 0, 0, time.UTC),
		time.Date(2028, time.February, 29, 9, 0, 0, 0, time.UTC),
		time.Date(2024, time.December, 31, 23, 0, 0, 0, time.UTC),
	}

	for _, day := range days {
		t.Run(day.Format(dateLayout), func(t *testing.T) {
			g := NewDataGenerator(11)
			g.now = func() time.Time { return day }
			today := g.Today()

			for i := 0; i < 20000; i++ {
				b := g.BirthDate(18, 30)
				age := today.Year() - b.Year()
				if today.Month() < b.Month() || (today.Month() == b.Month() && today.Day() < b.Day()) {
					age--
				}
				if age < 18 || age > 30 {
					t.Fatalf("Birthdate %s gives age %d", b.Format(dateLayout), age)
				}
			}
		})
	}
}

func TestYearsBeforeClampsLeapDay(t *testing.T) {
	tests := []struct {
		from time.Time
		n    int
		want string
	}{
		{time.Date(2028, time.February, 29, 0, 0, 0, 0, time.UTC), 18, "2010-02-28"},
		{time.Date(2028, time.February, 29, 0, 0, 0, 0, time.UTC), 4, "2024-02-29"},
		{time.Date(2025, time.March, 1, 0, 0, 0, 0, time.UTC), 18, "2007-03-01"},
	}
	for _, tt := range tests {
		if got := yearsBefore(tt.from, tt.n).Format(dateLayout); got != tt.want {
			t.Errorf("yearsBefore(%s, %d) = %s, want %s", tt.from.Format(dateLayout), tt.n, got, tt.want)
		}
	}
}

func TestDateInYear(t *testing.T) {
	g := NewDataGenerator(5)
	for year := 2021; year <= 2025; year++ {
		for i := 0; i < 500; i++ {
			d := g.DateInYear(year)
			if d.Year() != year {
				t.Fatalf("DateInYear(%d) = %s", year, d.Format(dateLayout))
			}
		}
	}
}

func TestScoreIsRounded(t *testing.T) {
	g := NewDataGenerator(9)
	for i := 0; i < 1000; i++ {
		v := g.Score(30, 100)
		if v < 30 || v > 100 {
			t.Fatalf("Score %v out of range", v)
		}
		if math.Abs(v*100-math.Round(v*100)) > 1e-6 {
			t.Fatalf("Score %v has more than two decimals", v)
		}
	}
}

func TestSampleIDsDistinct(t *testing.T) {
	g := NewDataGenerator(2)
	ids := []int64{1, 2, 3, 4, 5, 6}

	for i := 0; i < 200; i++ {
		sample := g.SampleIDs(ids, 4)
		seen := make(map[int64]bool)
		for _, id := range sample {
			if seen[id] {
				t.Fatalf("Duplicate id in sample %v", sample)
			}
			seen[id] = true
		}
	}
	if ids[0] != 1 || ids[5] != 6 {
		t.Errorf("SampleIDs modified its input: %v", ids)
	}
}

func TestFinalScore(t *testing.T) {
	tests := []struct {
		test, exam, want float64
	}{
		{30, 100, 65},
		{70.25, 80.75, 75.5},
		{41.13, 88.01, 64.57},
	}
	for _, tt := range tests {
		if got := finalScore(tt.test, tt.exam); math.Abs(got-tt.want) > 1e-9 {
			t.Errorf("finalScore(%v, %v) = %v, want %v", tt.test, tt.exam, got, tt.want)
		}
	}
}

func TestSameSeedSameValues(t *testing.T) {
	a, b := NewDataGenerator(99), NewDataGenerator(99)
	for i := 0; i < 20; i++ {
		if x, y := a.Digits(6), b.Digits(6); x != y {
			t.Fatalf("Generators with equal seeds diverged: %s != %s", x, y)
		}
	}
}
