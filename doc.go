// Package moment provides a locale-aware wrapper around time.Time with a
// token based format and parse language, calendar arithmetic and humanized
// relative times.
//
// Layout tokens:
//
//	M Mo MM MMM MMMM     month: 2 2nd 02 Feb February
//	D Do DD              day of month: 14 14th 14
//	DDD DDDo DDDD        day of year: 45 45th 045
//	d do ddd dddd        day of week: 0 0th Sun Sunday
//	w wo ww              ISO week: 6 6th 06
//	YY YYYY              year: 10 2010
//	a A                  meridiem: pm PM
//	H HH h hh            hour: 15 15 3 03
//	m mm s ss            minute and second
//	S SS SSS             fractional second: 1 12 125
//	z zz                 zone abbreviation
//	Z ZZ                 offset: -08:00 -0800
//	LT L LL LLL LLLL     locale presets
//
// Text inside brackets is literal ("[at] LT") and a backslash escapes the
// next character.
//
// Unbound moments format with the current locale of DefaultRegistry, which
// starts as "en". Use SetLocale to switch it or WithLocale to bind a single
// moment.
package moment
