package seeder

import (
	"fmt"
	"math"
	"time"

	"github.com/brianvoe/gofakeit/v7"
)

// DataGenerator produces the random and fabricated values of every stage.
// All randomness flows through one seeded faker so a fixed seed reproduces
// a run.
type DataGenerator struct {
	faker *gofakeit.Faker
	now   func() time.Time
}

func NewDataGenerator(seed int64) *DataGenerator {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &DataGenerator{
		faker: gofakeit.New(uint64(seed)),
		now:   time.Now,
	}
}

func (g *DataGenerator) FirstName() string { return g.faker.FirstName() }
func (g *DataGenerator) LastName() string  { return g.faker.LastName() }
func (g *DataGenerator) Email() string     { return g.faker.Email() }
func (g *DataGenerator) Phone() string     { return g.faker.Phone() }

// Today is the generation date at midnight UTC.
func (g *DataGenerator) Today() time.Time {
	now := g.now().UTC()
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
}

// Intn returns a value in [min, max].
func (g *DataGenerator) Intn(min, max int) int {
	return g.faker.IntRange(min, max)
}

func (g *DataGenerator) Pick(values []string) string {
	return values[g.faker.IntRange(0, len(values)-1)]
}

func (g *DataGenerator) PickInt(values []int) int {
	return values[g.faker.IntRange(0, len(values)-1)]
}

func (g *DataGenerator) PickID(ids []int64) int64 {
	return ids[g.faker.IntRange(0, len(ids)-1)]
}

// SampleIDs returns k distinct ids drawn without replacement. ids is not
// modified.
func (g *DataGenerator) SampleIDs(ids []int64, k int) []int64 {
	pool := make([]int64, len(ids))
	copy(pool, ids)
	for i := 0; i < k; i++ {
		j := g.faker.IntRange(i, len(pool)-1)
		pool[i], pool[j] = pool[j], pool[i]
	}
	return pool[:k]
}

// Score returns a value uniform in [min, max] rounded to two decimals.
func (g *DataGenerator) Score(min, max float64) float64 {
	return round2(g.faker.Float64Range(min, max))
}

// Digits returns n random decimal digits.
func (g *DataGenerator) Digits(n int) string {
	return fmt.Sprintf("%0*d", n, g.faker.IntRange(0, pow10(n)-1))
}

// BirthDate returns a date for which the age today is between minAge and
// maxAge inclusive.
func (g *DataGenerator) BirthDate(minAge, maxAge int) time.Time {
	today := g.Today()
	earliest := yearsBefore(today, maxAge+1).AddDate(0, 0, 1)
	latest := yearsBefore(today, minAge)
	return g.dateBetween(earliest, latest)
}

// yearsBefore moves t back n years, clamping Feb 29 to Feb 28 instead of
// rolling over into March.
func yearsBefore(t time.Time, n int) time.Time {
	first := time.Date(t.Year()-n, t.Month(), 1, 0, 0, 0, 0, time.UTC)
	lastDay := first.AddDate(0, 1, -1).Day()
	return first.AddDate(0, 0, min(t.Day(), lastDay)-1)
}

// DateInYear returns a date uniform over Jan 1 .. Dec 31 of year.
func (g *DataGenerator) DateInYear(year int) time.Time {
	return g.dateBetween(
		time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC),
		time.Date(year, time.December, 31, 0, 0, 0, 0, time.UTC),
	)
}

func (g *DataGenerator) dateBetween(start, end time.Time) time.Time {
	days := int(end.Sub(start).Hours() / 24)
	return start.AddDate(0, 0, g.faker.IntRange(0, days))
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

func pow10(n int) int {
	p := 1
	for i := 0; i < n; i++ {
		p *= 10
	}
	return p
}
