package moment

import (
	"math"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
)

func TestAddDelta(t *testing.T) {
	base := FromFields(2011, 9, 12, 6, 7, 8, 500)
	cases := []struct {
		name  string
		delta Delta
		want  []int
	}{
		{"milliseconds", Delta{Milliseconds: 50}, []int{2011, 9, 12, 6, 7, 8, 550}},
		{"seconds", Delta{Seconds: 1}, []int{2011, 9, 12, 6, 7, 9, 500}},
		{"minutes", Delta{Minutes: 1}, []int{2011, 9, 12, 6, 8, 8, 500}},
		{"hours", Delta{Hours: 1}, []int{2011, 9, 12, 7, 7, 8, 500}},
		{"days", Delta{Days: 1}, []int{2011, 9, 13, 6, 7, 8, 500}},
		{"weeks", Delta{Weeks: 1}, []int{2011, 9, 19, 6, 7, 8, 500}},
		{"months", Delta{Months: 1}, []int{2011, 10, 12, 6, 7, 8, 500}},
		{"years", Delta{Years: 1}, []int{2012, 9, 12, 6, 7, 8, 500}},
		{"mixed", Delta{Years: 1, Months: 3, Days: 20, Hours: 18}, []int{2013, 1, 2, 0, 7, 8, 500}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if diff := cmp.Diff(tc.want, fieldsOf(base.Add(tc.delta))); diff != "" {
				t.Fatalf("Add mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestAddUnitKeys(t *testing.T) {
	base := FromFields(2011, 9, 12, 6, 7, 8, 500)
	cases := []struct {
		unit string
		want []int
	}{
		{"ms", []int{2011, 9, 12, 6, 7, 8, 501}},
		{"s", []int{2011, 9, 12, 6, 7, 9, 500}},
		{"m", []int{2011, 9, 12, 6, 8, 8, 500}},
		{"h", []int{2011, 9, 12, 7, 7, 8, 500}},
		{"d", []int{2011, 9, 13, 6, 7, 8, 500}},
		{"w", []int{2011, 9, 19, 6, 7, 8, 500}},
		{"M", []int{2011, 10, 12, 6, 7, 8, 500}},
		{"y", []int{2012, 9, 12, 6, 7, 8, 500}},
		{"days", []int{2011, 9, 13, 6, 7, 8, 500}},
		{"Months", []int{2011, 10, 12, 6, 7, 8, 500}},
		{"fortnights", []int{2011, 9, 12, 6, 7, 8, 500}},
	}
	for _, tc := range cases {
		t.Run(tc.unit, func(t *testing.T) {
			if diff := cmp.Diff(tc.want, fieldsOf(base.AddUnit(tc.unit, 1))); diff != "" {
				t.Fatalf("AddUnit(%q) mismatch (-want +got):\n%s", tc.unit, diff)
			}
		})
	}
}

func TestSubtract(t *testing.T) {
	base := FromFields(2011, 9, 12, 6, 7, 8, 500)
	got := base.Subtract(DeltaFrom(map[string]int{"y": 1, "M": 1, "d": 1, "h": 1, "x": 9}))
	want := []int{2010, 8, 11, 5, 7, 8, 500}
	if diff := cmp.Diff(want, fieldsOf(got)); diff != "" {
		t.Fatalf("Subtract mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(fieldsOf(base.SubtractUnit("M", 2)), fieldsOf(base.AddUnit("M", -2))); diff != "" {
		t.Fatalf("SubtractUnit differs from negative AddUnit:\n%s", diff)
	}
}

func TestAddMonthClampsToMonthEnd(t *testing.T) {
	cases := []struct {
		name  string
		start Moment
		delta Delta
		want  []int
	}{
		{"jan 31 to feb", FromFields(2010, 0, 31), Delta{Months: 1}, []int{2010, 1, 28, 0, 0, 0, 0}},
		{"jan 31 to leap feb", FromFields(2012, 0, 31), Delta{Months: 1}, []int{2012, 1, 29, 0, 0, 0, 0}},
		{"leap day plus year", FromFields(2012, 1, 29), Delta{Years: 1}, []int{2013, 1, 28, 0, 0, 0, 0}},
		{"mar 31 minus month", FromFields(2011, 2, 31), Delta{Months: -1}, []int{2011, 1, 28, 0, 0, 0, 0}},
		{"dec to jan", FromFields(2010, 11, 15), Delta{Months: 1}, []int{2011, 0, 15, 0, 0, 0, 0}},
		{"jan back to dec", FromFields(2011, 0, 31), Delta{Months: -1}, []int{2010, 11, 31, 0, 0, 0, 0}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if diff := cmp.Diff(tc.want, fieldsOf(tc.start.Add(tc.delta))); diff != "" {
				t.Fatalf("mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestAddAcrossDST(t *testing.T) {
	newYork := mustLocation(t, "America/New_York")
	// 2011-03-13 02:00 is the spring forward in New York.
	base := FromTime(time.Date(2011, time.March, 12, 5, 0, 0, 0, newYork))

	if got := base.AddUnit("d", 1).Hours(); got != 5 {
		t.Fatalf("adding a day changed the hour to %d", got)
	}
	if got := base.AddUnit("h", 24).Hours(); got != 6 {
		t.Fatalf("adding 24 hours = %d; want 6", got)
	}
	if got := base.AddUnit("M", 1).Hours(); got != 5 {
		t.Fatalf("adding a month changed the hour to %d", got)
	}
}

func TestAddZeroIsIdentity(t *testing.T) {
	m := FromFields(2011, 9, 12, 6, 7, 8, 500)
	if !m.Clone().Add(Delta{}).Time().Equal(m.Time()) {
		t.Fatalf("Add(Delta{}) changed the instant")
	}
	if !m.AddUnit("d", 0).Time().Equal(m.Time()) {
		t.Fatalf("AddUnit(d, 0) changed the instant")
	}
}

func TestDiff(t *testing.T) {
	cases := []struct {
		name    string
		a, b    Moment
		unit    Unit
		precise bool
		want    float64
	}{
		{"ms", FromUnixMilli(1000), FromUnixMilli(0), "", false, 1000},
		{"ms half", FromUnixMilli(1000), FromUnixMilli(500), "", false, 500},
		{"ms negative", FromUnixMilli(0), FromUnixMilli(1000), "", false, -1000},
		{"ms equal", FromUnixMilli(1000), FromUnixMilli(1000), UnitMilliseconds, false, 0},

		{"years", FromFields(2010), FromFields(2011), UnitYears, false, -1},
		{"years precise", FromFields(2010), FromFields(2011, 6), UnitYears, true, -1.5},
		{"months", FromFields(2010), FromFields(2010, 2), UnitMonths, false, -2},
		{"weeks", FromFields(2010), FromFields(2010, 0, 7), UnitWeeks, false, 0},
		{"weeks 8 days", FromFields(2010), FromFields(2010, 0, 9), UnitWeeks, false, -1},
		{"weeks three", FromFields(2010), FromFields(2010, 0, 22), UnitWeeks, false, -3},
		{"days", FromFields(2010), FromFields(2010, 0, 4), UnitDays, false, -3},
		{"hours", FromFields(2010), FromFields(2010, 0, 1, 4), UnitHours, false, -4},
		{"minutes", FromFields(2010), FromFields(2010, 0, 1, 0, 5), UnitMinutes, false, -5},
		{"seconds", FromFields(2010), FromFields(2010, 0, 1, 0, 0, 6), UnitSeconds, false, -6},

		{"years after", FromFields(2011), FromFields(2010), UnitYears, false, 1},
		{"years after precise", FromFields(2011, 6), FromFields(2010), UnitYears, true, 1.5},
		{"months after", FromFields(2010, 2), FromFields(2010), UnitMonths, false, 2},
		{"days after", FromFields(2010, 0, 4), FromFields(2010), UnitDays, false, 3},
		{"hours after", FromFields(2010, 0, 1, 4), FromFields(2010), UnitHours, false, 4},
		{"days truncated", FromFields(2010, 0, 4, 23), FromFields(2010), UnitDays, false, 3},
		{"days precise", FromFields(2010, 0, 4, 12), FromFields(2010), UnitDays, true, 3.5},
		{"hours truncated toward zero", FromFields(2010), FromFields(2010, 0, 1, 1, 30), UnitHours, false, -1},
		{"below one unit", FromFields(2010), FromFields(2010, 0, 1, 0, 30), UnitHours, false, 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := tc.a.Diff(tc.b, tc.unit, tc.precise)
			if got != tc.want || math.Signbit(got) != math.Signbit(tc.want) {
				t.Fatalf("Diff = %v; want %v", got, tc.want)
			}
		})
	}
}

func TestDiffDaysAcrossDST(t *testing.T) {
	newYork := mustLocation(t, "America/New_York")
	before := FromTime(time.Date(2011, time.March, 12, 0, 0, 0, 0, newYork))
	after := FromTime(time.Date(2011, time.March, 14, 0, 0, 0, 0, newYork))

	if got := after.Diff(before, UnitDays, true); got != 2 {
		t.Fatalf("Diff(days) across DST = %v; want 2", got)
	}
	if got := after.Diff(before, UnitHours, true); got != 47 {
		t.Fatalf("Diff(hours) across DST = %v; want 47", got)
	}
}

func TestDiffInvalid(t *testing.T) {
	bad := FromValues("x")
	if got := FromFields(2010).Diff(bad, UnitDays, false); !math.IsNaN(got) {
		t.Fatalf("Diff with invalid operand = %v; want NaN", got)
	}
	if got := bad.Diff(FromFields(2010), "", false); !math.IsNaN(got) {
		t.Fatalf("Diff on invalid receiver = %v; want NaN", got)
	}
}

func TestParseUnit(t *testing.T) {
	cases := []struct {
		key  string
		want Unit
		ok   bool
	}{
		{"m", UnitMinutes, true},
		{"M", UnitMonths, true},
		{"minutes", UnitMinutes, true},
		{"Months", UnitMonths, true},
		{"ms", UnitMilliseconds, true},
		{"Y", "", false},
		{"decades", "", false},
	}
	for _, tc := range cases {
		got, ok := ParseUnit(tc.key)
		if got != tc.want || ok != tc.ok {
			t.Fatalf("ParseUnit(%q) = %q, %v; want %q, %v", tc.key, got, ok, tc.want, tc.ok)
		}
	}
}
