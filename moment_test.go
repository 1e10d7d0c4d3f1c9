package moment

import (
	"errors"
	"math"
	"os"
	"testing"
	"time"
	_ "time/tzdata"

	"github.com/google/go-cmp/cmp"
)

func TestMain(m *testing.M) {
	SetDefaultLocation(time.UTC)
	os.Exit(m.Run())
}

func fieldsOf(m Moment) []int {
	return []int{m.Year(), m.Month(), m.Date(), m.Hours(), m.Minutes(), m.Seconds(), m.Milliseconds()}
}

func mustLocation(t *testing.T, name string) *time.Location {
	t.Helper()
	loc, err := time.LoadLocation(name)
	if err != nil {
		t.Fatalf("LoadLocation(%q): %v", name, err)
	}
	return loc
}

func withClock(t *testing.T, now time.Time) {
	t.Helper()
	previous := NowFunc
	NowFunc = func() time.Time { return now }
	t.Cleanup(func() { NowFunc = previous })
}

func withDefaultRegistry(t *testing.T) *Registry {
	t.Helper()
	registry := NewRegistry()
	SetDefaultRegistry(registry)
	t.Cleanup(func() { SetDefaultRegistry(nil) })
	return registry
}

func TestFromFieldsRoundTrip(t *testing.T) {
	cases := [][]int{
		{2010, 1, 14, 15, 25, 50, 125},
		{1999, 11, 31, 23, 59, 59, 999},
		{2000, 0, 1, 0, 0, 0, 0},
		{2012, 1, 29, 12, 30, 0, 1},
	}
	for _, fields := range cases {
		got := fieldsOf(FromFields(fields...))
		if diff := cmp.Diff(fields, got); diff != "" {
			t.Fatalf("FromFields(%v) mismatch (-want +got):\n%s", fields, diff)
		}
	}
}

func TestFromFieldsDefaults(t *testing.T) {
	got := fieldsOf(FromFields(2010))
	want := []int{2010, 0, 1, 0, 0, 0, 0}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("defaults mismatch (-want +got):\n%s", diff)
	}

	if m := FromFields(1, 2, 3, 4, 5, 6, 7, 8); m.IsValid() {
		t.Fatalf("expected eight fields to be invalid")
	}
}

func TestFromFieldsNormalizesOverflow(t *testing.T) {
	m := FromFields(2010, 12, 1)
	if m.Year() != 2011 || m.Month() != 0 {
		t.Fatalf("month 12 = %d-%d; want 2011-0", m.Year(), m.Month())
	}
}

func TestFromValues(t *testing.T) {
	m := FromValues(2010, int64(1), 14.0)
	if diff := cmp.Diff([]int{2010, 1, 14, 0, 0, 0, 0}, fieldsOf(m)); diff != "" {
		t.Fatalf("FromValues mismatch (-want +got):\n%s", diff)
	}

	bad := FromValues(2010, "February")
	if bad.IsValid() {
		t.Fatalf("expected non numeric field to be invalid")
	}
	if !errors.Is(bad.Err(), ErrInvalidInput) {
		t.Fatalf("Err() = %v; want ErrInvalidInput", bad.Err())
	}
	if FromValues(2010, 1.5).IsValid() {
		t.Fatalf("expected fractional field to be invalid")
	}
}

func TestFromValuesUnsigned(t *testing.T) {
	m := FromValues(uint(2010), uint64(1), uintptr(14), uint8(15))
	if !m.IsValid() {
		t.Fatalf("unsigned fields rejected: %v", m.Err())
	}
	if diff := cmp.Diff([]int{2010, 1, 14, 15, 0, 0, 0}, fieldsOf(m)); diff != "" {
		t.Fatalf("FromValues mismatch (-want +got):\n%s", diff)
	}

	overflow := FromValues(2010, ^uint64(0))
	if overflow.IsValid() {
		t.Fatalf("expected uint64 past the int range to be invalid")
	}
	if !errors.Is(overflow.Err(), ErrInvalidInput) {
		t.Fatalf("Err() = %v; want ErrInvalidInput", overflow.Err())
	}
}

func TestFromUnixMilli(t *testing.T) {
	m := FromUnixMilli(1318781876406)
	if got := m.UnixMilli(); got != 1318781876406 {
		t.Fatalf("UnixMilli() = %d", got)
	}
	if got := m.Value(); got != 1318781876406 {
		t.Fatalf("Value() = %v", got)
	}
	if got := m.Unix(); got != 1318781876 {
		t.Fatalf("Unix() = %d", got)
	}
}

func TestNowUsesClock(t *testing.T) {
	now := time.Date(2010, time.February, 14, 15, 25, 50, 0, time.UTC)
	withClock(t, now)
	if got := Now().Time(); !got.Equal(now) {
		t.Fatalf("Now() = %v; want %v", got, now)
	}
}

func TestCloneIsIndependent(t *testing.T) {
	a := FromFields(2010, 1, 14)
	b := a.Clone().SetYear(2011)
	if a.Year() != 2010 || b.Year() != 2011 {
		t.Fatalf("clone shared state: a=%d b=%d", a.Year(), b.Year())
	}
}

func TestSetters(t *testing.T) {
	base := FromFields(2011, 9, 12, 6, 7, 8, 9)
	cases := []struct {
		name string
		got  Moment
		want []int
	}{
		{"year", base.SetYear(2012), []int{2012, 9, 12, 6, 7, 8, 9}},
		{"month", base.SetMonth(1), []int{2011, 1, 12, 6, 7, 8, 9}},
		{"month overflow", base.SetMonth(12), []int{2012, 0, 12, 6, 7, 8, 9}},
		{"date", base.SetDate(31), []int{2011, 9, 31, 6, 7, 8, 9}},
		{"hours", base.SetHours(23), []int{2011, 9, 12, 23, 7, 8, 9}},
		{"minutes", base.SetMinutes(59), []int{2011, 9, 12, 6, 59, 8, 9}},
		{"seconds", base.SetSeconds(60), []int{2011, 9, 12, 6, 8, 0, 9}},
		{"milliseconds", base.SetMilliseconds(999), []int{2011, 9, 12, 6, 7, 8, 999}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if diff := cmp.Diff(tc.want, fieldsOf(tc.got)); diff != "" {
				t.Fatalf("mismatch (-want +got):\n%s", diff)
			}
		})
	}
	if base.Year() != 2011 {
		t.Fatalf("setter modified receiver")
	}
}

func TestSetDay(t *testing.T) {
	// 2011-10-12 is a Wednesday.
	base := FromFields(2011, 9, 12)
	cases := []struct {
		day  int
		date int
	}{
		{0, 9}, {3, 12}, {6, 15}, {7, 16}, {-1, 8}, {14, 23},
	}
	for _, tc := range cases {
		if got := base.SetDay(tc.day).Date(); got != tc.date {
			t.Fatalf("SetDay(%d).Date() = %d; want %d", tc.day, got, tc.date)
		}
	}
}

func TestWeekdayFollowsLocale(t *testing.T) {
	withDefaultRegistry(t)
	// Sunday.
	m := FromFields(2010, 1, 14)
	if got := m.Weekday(); got != 0 {
		t.Fatalf("en Weekday() = %d; want 0", got)
	}
	de := m.WithLocale("de")
	if got := de.Weekday(); got != 6 {
		t.Fatalf("de Weekday() = %d; want 6", got)
	}
	if got := de.SetWeekday(0).Format("dddd D"); got != "Montag 8" {
		t.Fatalf("de SetWeekday(0) = %q; want %q", got, "Montag 8")
	}
}

func TestIsLeapYear(t *testing.T) {
	cases := map[int]bool{
		2008: true, 2000: true, 2100: false, 2010: false, 1900: false, 2012: true,
	}
	for year, want := range cases {
		if got := FromFields(year).IsLeapYear(); got != want {
			t.Fatalf("IsLeapYear(%d) = %v; want %v", year, got, want)
		}
	}
}

func TestDaysInMonth(t *testing.T) {
	cases := []struct {
		year, month, want int
	}{
		{2010, 0, 31}, {2010, 1, 28}, {2012, 1, 29}, {2010, 3, 30}, {2010, 11, 31},
	}
	for _, tc := range cases {
		if got := FromFields(tc.year, tc.month).DaysInMonth(); got != tc.want {
			t.Fatalf("DaysInMonth(%d, %d) = %d; want %d", tc.year, tc.month, got, tc.want)
		}
	}
}

func TestStartAndEndOfDay(t *testing.T) {
	m := FromFields(2011, 1, 2, 3, 4, 5, 6)

	sod := m.StartOfDay()
	if diff := cmp.Diff([]int{2011, 1, 2, 0, 0, 0, 0}, fieldsOf(sod)); diff != "" {
		t.Fatalf("StartOfDay mismatch (-want +got):\n%s", diff)
	}
	if !sod.StartOfDay().Time().Equal(sod.Time()) {
		t.Fatalf("StartOfDay is not idempotent")
	}

	eod := m.EndOfDay()
	if diff := cmp.Diff([]int{2011, 1, 2, 23, 59, 59, 999}, fieldsOf(eod)); diff != "" {
		t.Fatalf("EndOfDay mismatch (-want +got):\n%s", diff)
	}
}

func TestZone(t *testing.T) {
	west := FromTime(time.Date(2011, 1, 1, 0, 0, 0, 0, time.FixedZone("", -5*3600)))
	if got := west.Zone(); got != 300 {
		t.Fatalf("Zone() = %d; want 300", got)
	}
	east := FromTime(time.Date(2011, 1, 1, 0, 0, 0, 0, time.FixedZone("", 90*60)))
	if got := east.Zone(); got != -90 {
		t.Fatalf("Zone() = %d; want -90", got)
	}
}

func TestIsDST(t *testing.T) {
	newYork := mustLocation(t, "America/New_York")
	sydney := mustLocation(t, "Australia/Sydney")
	cases := []struct {
		name string
		t    time.Time
		want bool
	}{
		{"new york winter", time.Date(2011, 1, 15, 12, 0, 0, 0, newYork), false},
		{"new york summer", time.Date(2011, 7, 15, 12, 0, 0, 0, newYork), true},
		{"sydney summer", time.Date(2011, 1, 15, 12, 0, 0, 0, sydney), true},
		{"sydney winter", time.Date(2011, 7, 15, 12, 0, 0, 0, sydney), false},
		{"utc", time.Date(2011, 7, 15, 12, 0, 0, 0, time.UTC), false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := FromTime(tc.t).IsDST(); got != tc.want {
				t.Fatalf("IsDST() = %v; want %v", got, tc.want)
			}
		})
	}
}

func TestInvalidMomentPropagates(t *testing.T) {
	m := Parse("not a date at all", "YYYY-MM-DD")
	if m.IsValid() {
		t.Fatalf("expected invalid moment")
	}
	if !errors.Is(m.Err(), ErrInvalidInput) {
		t.Fatalf("Err() = %v; want ErrInvalidInput", m.Err())
	}
	if diff := cmp.Diff([]int{0, 0, 0, 0, 0, 0, 0}, fieldsOf(m)); diff != "" {
		t.Fatalf("accessors of invalid moment (-want +got):\n%s", diff)
	}
	if !math.IsNaN(m.Value()) {
		t.Fatalf("Value() = %v; want NaN", m.Value())
	}
	if got := m.Format("YYYY"); got != InvalidDate {
		t.Fatalf("Format() = %q; want %q", got, InvalidDate)
	}
	if got := m.AddUnit("d", 1).SetYear(2010); got.IsValid() {
		t.Fatalf("mutators revived invalid moment")
	}
	if got := m.From(FromFields(2010), false); got != InvalidDate {
		t.Fatalf("From() = %q; want %q", got, InvalidDate)
	}
	if got := m.CalendarFrom(FromFields(2010)); got != InvalidDate {
		t.Fatalf("CalendarFrom() = %q; want %q", got, InvalidDate)
	}
	if m.IsLeapYear() || m.IsDST() {
		t.Fatalf("invalid moment reported calendar facts")
	}
}
