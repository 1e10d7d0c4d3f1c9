package moment

import (
	"strings"
	"sync"

	"golang.org/x/text/language"
)

// englishOrdinal renders 1st, 2nd, 3rd, 4th... with 11th-13th as "th".
func englishOrdinal(n int) string {
	if n < 0 {
		n = -n
	}
	if (n%100)/10 == 1 {
		return "th"
	}
	switch n % 10 {
	case 1:
		return "st"
	case 2:
		return "nd"
	case 3:
		return "rd"
	default:
		return "th"
	}
}

var englishMeridiem = MeridiemWords("am", "pm", "AM", "PM")

var (
	englishOnce  sync.Once
	englishTable *Locale
)

// englishLocale is the base table every registered locale falls back to.
func englishLocale() *Locale {
	englishOnce.Do(func() {
		englishTable = newEnglishLocale()
	})
	return englishTable
}

func newEnglishLocale() *Locale {
	return &Locale{
		ID:  "en",
		Tag: language.English,
		Months: []string{
			"January", "February", "March", "April", "May", "June",
			"July", "August", "September", "October", "November", "December",
		},
		MonthsShort:   []string{"Jan", "Feb", "Mar", "Apr", "May", "Jun", "Jul", "Aug", "Sep", "Oct", "Nov", "Dec"},
		Weekdays:      []string{"Sunday", "Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday"},
		WeekdaysShort: []string{"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"},
		Ordinal:       englishOrdinal,
		Meridiem:      englishMeridiem,
		LongDateFormat: map[LongDateKey]string{
			FormatLT:   "h:mm A",
			FormatL:    "MM/DD/YYYY",
			FormatLL:   "MMMM D YYYY",
			FormatLLL:  "MMMM D YYYY LT",
			FormatLLLL: "dddd, MMMM D YYYY LT",
		},
		RelativeTime: RelativeTimeTable{
			Future: "in %s",
			Past:   "%s ago",
			Units: map[RelativeKey]RelativePhrase{
				RelativeSeconds: Phrase("a few seconds"),
				RelativeMinute:  Phrase("a minute"),
				RelativeMinutes: Phrase("%d minutes"),
				RelativeHour:    Phrase("an hour"),
				RelativeHours:   Phrase("%d hours"),
				RelativeDay:     Phrase("a day"),
				RelativeDays:    Phrase("%d days"),
				RelativeMonth:   Phrase("a month"),
				RelativeMonths:  Phrase("%d months"),
				RelativeYear:    Phrase("a year"),
				RelativeYears:   Phrase("%d years"),
			},
		},
		Calendar: map[CalendarKey]CalendarPhrase{
			CalendarSameDay:  CalendarLayout("[Today at] LT"),
			CalendarNextDay:  CalendarLayout("[Tomorrow at] LT"),
			CalendarNextWeek: CalendarLayout("dddd [at] LT"),
			CalendarLastDay:  CalendarLayout("[Yesterday at] LT"),
			CalendarLastWeek: CalendarLayout("[last] dddd [at] LT"),
			CalendarSameElse: CalendarLayout("L"),
		},
	}
}

// hourAgreement builds a calendar phrase whose article agrees with the hour,
// e.g. "a la 1:00" but "a les 2:00".
func hourAgreement(format, singular, plural string) CalendarPhrase {
	return func(m Moment) string {
		word := plural
		if m.Hours() == 1 {
			word = singular
		}
		return strings.ReplaceAll(format, "{}", word)
	}
}

func newCatalanLocale() *Locale {
	return &Locale{
		ID:  "ca",
		Tag: language.Catalan,
		Months: []string{
			"Gener", "Febrer", "Març", "Abril", "Maig", "Juny",
			"Juliol", "Agost", "Setembre", "Octubre", "Novembre", "Desembre",
		},
		MonthsShort:    []string{"Gen.", "Febr.", "Mar.", "Abr.", "Mai.", "Jun.", "Jul.", "Ag.", "Set.", "Oct.", "Nov.", "Des."},
		Weekdays:       []string{"Diumenge", "Dilluns", "Dimarts", "Dimecres", "Dijous", "Divendres", "Dissabte"},
		WeekdaysShort:  []string{"Dg.", "Dl.", "Dt.", "Dc.", "Dj.", "Dv.", "Ds."},
		Ordinal:        SuffixOrdinal("º"),
		FirstDayOfWeek: 1,
		LongDateFormat: map[LongDateKey]string{
			FormatLT:   "H:mm",
			FormatL:    "DD/MM/YYYY",
			FormatLL:   "D MMMM YYYY",
			FormatLLL:  "D MMMM YYYY LT",
			FormatLLLL: "dddd D MMMM YYYY LT",
		},
		RelativeTime: RelativeTimeTable{
			Future: "en %s",
			Past:   "fa %s",
			Units: map[RelativeKey]RelativePhrase{
				RelativeSeconds: Phrase("uns segons"),
				RelativeMinute:  Phrase("un minut"),
				RelativeMinutes: Phrase("%d minuts"),
				RelativeHour:    Phrase("una hora"),
				RelativeHours:   Phrase("%d hores"),
				RelativeDay:     Phrase("un dia"),
				RelativeDays:    Phrase("%d dies"),
				RelativeMonth:   Phrase("un mes"),
				RelativeMonths:  Phrase("%d mesos"),
				RelativeYear:    Phrase("un any"),
				RelativeYears:   Phrase("%d anys"),
			},
		},
		Calendar: map[CalendarKey]CalendarPhrase{
			CalendarSameDay:  hourAgreement("[avui a {}] LT", "la", "les"),
			CalendarNextDay:  hourAgreement("[demá a {}] LT", "la", "les"),
			CalendarNextWeek: hourAgreement("dddd [a {}] LT", "la", "les"),
			CalendarLastDay:  hourAgreement("[ahir a {}] LT", "la", "les"),
			CalendarLastWeek: hourAgreement("[el] dddd [passat a {}] LT", "la", "les"),
			CalendarSameElse: CalendarLayout("L"),
		},
	}
}

func newSpanishLocale() *Locale {
	return &Locale{
		ID:  "es",
		Tag: language.Spanish,
		Months: []string{
			"Enero", "Febrero", "Marzo", "Abril", "Mayo", "Junio",
			"Julio", "Agosto", "Septiembre", "Octubre", "Noviembre", "Diciembre",
		},
		MonthsShort:    []string{"Ene.", "Feb.", "Mar.", "Abr.", "May.", "Jun.", "Jul.", "Ago.", "Sep.", "Oct.", "Nov.", "Dic."},
		Weekdays:       []string{"Domingo", "Lunes", "Martes", "Miércoles", "Jueves", "Viernes", "Sábado"},
		WeekdaysShort:  []string{"Dom.", "Lun.", "Mar.", "Mié.", "Jue.", "Vie.", "Sáb."},
		Ordinal:        SuffixOrdinal("º"),
		FirstDayOfWeek: 1,
		LongDateFormat: map[LongDateKey]string{
			FormatLT:   "H:mm",
			FormatL:    "DD/MM/YYYY",
			FormatLL:   "D [de] MMMM [de] YYYY",
			FormatLLL:  "D [de] MMMM [de] YYYY LT",
			FormatLLLL: "dddd, D [de] MMMM [de] YYYY LT",
		},
		RelativeTime: RelativeTimeTable{
			Future: "en %s",
			Past:   "hace %s",
			Units: map[RelativeKey]RelativePhrase{
				RelativeSeconds: Phrase("unos segundos"),
				RelativeMinute:  Phrase("un minuto"),
				RelativeMinutes: Phrase("%d minutos"),
				RelativeHour:    Phrase("una hora"),
				RelativeHours:   Phrase("%d horas"),
				RelativeDay:     Phrase("un día"),
				RelativeDays:    Phrase("%d días"),
				RelativeMonth:   Phrase("un mes"),
				RelativeMonths:  Phrase("%d meses"),
				RelativeYear:    Phrase("un año"),
				RelativeYears:   Phrase("%d años"),
			},
		},
		Calendar: map[CalendarKey]CalendarPhrase{
			CalendarSameDay:  hourAgreement("[hoy a la{}] LT", "", "s"),
			CalendarNextDay:  hourAgreement("[mañana a la{}] LT", "", "s"),
			CalendarNextWeek: hourAgreement("dddd [a la{}] LT", "", "s"),
			CalendarLastDay:  hourAgreement("[ayer a la{}] LT", "", "s"),
			CalendarLastWeek: hourAgreement("[el] dddd [pasado a la{}] LT", "", "s"),
			CalendarSameElse: CalendarLayout("L"),
		},
	}
}

func newGalicianLocale() *Locale {
	return &Locale{
		ID:  "gl",
		Tag: language.Make("gl"),
		Months: []string{
			"Xaneiro", "Febreiro", "Marzo", "Abril", "Maio", "Xuño",
			"Xullo", "Agosto", "Setembro", "Octubro", "Novembro", "Decembro",
		},
		MonthsShort:    []string{"Xan.", "Feb.", "Mar.", "Abr.", "Mai.", "Xuñ.", "Xul.", "Ago.", "Set.", "Out.", "Nov.", "Dec."},
		Weekdays:       []string{"Domingo", "Luns", "Martes", "Mércores", "Xoves", "Venres", "Sábado"},
		WeekdaysShort:  []string{"Dom.", "Lun.", "Mar.", "Mér.", "Xov.", "Ven.", "Sáb."},
		Ordinal:        SuffixOrdinal("º"),
		FirstDayOfWeek: 1,
		LongDateFormat: map[LongDateKey]string{
			FormatLT:   "H:mm",
			FormatL:    "DD/MM/YYYY",
			FormatLL:   "D MMMM YYYY",
			FormatLLL:  "D MMMM YYYY LT",
			FormatLLLL: "dddd D MMMM YYYY LT",
		},
		RelativeTime: RelativeTimeTable{
			Future: "en %s",
			Past:   "fai %s",
			Units: map[RelativeKey]RelativePhrase{
				RelativeSeconds: Phrase("uns segundo"),
				RelativeMinute:  Phrase("un minuto"),
				RelativeMinutes: Phrase("%d minutos"),
				RelativeHour:    Phrase("unha hora"),
				RelativeHours:   Phrase("%d horas"),
				RelativeDay:     Phrase("un día"),
				RelativeDays:    Phrase("%d días"),
				RelativeMonth:   Phrase("un mes"),
				RelativeMonths:  Phrase("%d meses"),
				RelativeYear:    Phrase("un ano"),
				RelativeYears:   Phrase("%d anos"),
			},
		},
		Calendar: map[CalendarKey]CalendarPhrase{
			CalendarSameDay:  hourAgreement("[hoxe {}] LT", "a", "ás"),
			CalendarNextDay:  hourAgreement("[mañá {}] LT", "a", "ás"),
			CalendarNextWeek: hourAgreement("dddd [{}] LT", "a", "ás"),
			CalendarLastDay:  hourAgreement("[onte {}] LT", "a", "á"),
			CalendarLastWeek: hourAgreement("[o] dddd [pasado {}] LT", "a", "ás"),
			CalendarSameElse: CalendarLayout("L"),
		},
	}
}

// polishPhrase picks the nominative form for a single unit without suffix and
// the accusative one when the phrase is wrapped ("za minutę").
func polishPhrase(withoutSuffix, withSuffix string) RelativePhrase {
	return func(_ int, bare bool, _ RelativeKey, _ bool) string {
		if bare {
			return withoutSuffix
		}
		return withSuffix
	}
}

func newPolishLocale() *Locale {
	pl := language.Polish
	return &Locale{
		ID:  "pl",
		Tag: pl,
		Months: []string{
			"styczeń", "luty", "marzec", "kwiecień", "maj", "czerwiec",
			"lipiec", "sierpień", "wrzesień", "październik", "listopad", "grudzień",
		},
		MonthsShort:    []string{"sty", "lut", "mar", "kwi", "maj", "cze", "lip", "sie", "wrz", "paź", "lis", "gru"},
		Weekdays:       []string{"niedziela", "poniedziałek", "wtorek", "środa", "czwartek", "piątek", "sobota"},
		WeekdaysShort:  []string{"nie", "pon", "wt", "śr", "czw", "pt", "sb"},
		Ordinal:        SuffixOrdinal("."),
		FirstDayOfWeek: 1,
		LongDateFormat: map[LongDateKey]string{
			FormatLT:   "HH:mm",
			FormatL:    "DD-MM-YYYY",
			FormatLL:   "D MMMM YYYY",
			FormatLLL:  "D MMMM YYYY LT",
			FormatLLLL: "dddd, D MMMM YYYY LT",
		},
		RelativeTime: RelativeTimeTable{
			Future: "za %s",
			Past:   "%s temu",
			Units: map[RelativeKey]RelativePhrase{
				RelativeSeconds: Phrase("kilka sekund"),
				RelativeMinute:  polishPhrase("minuta", "minutę"),
				RelativeMinutes: PluralPhrase(pl, map[PluralCategory]string{PluralFew: "%d minuty", PluralOther: "%d minut"}),
				RelativeHour:    polishPhrase("godzina", "godzinę"),
				RelativeHours:   PluralPhrase(pl, map[PluralCategory]string{PluralFew: "%d godziny", PluralOther: "%d godzin"}),
				RelativeDay:     Phrase("1 dzień"),
				RelativeDays:    Phrase("%d dni"),
				RelativeMonth:   Phrase("miesiąc"),
				RelativeMonths:  PluralPhrase(pl, map[PluralCategory]string{PluralFew: "%d miesiące", PluralOther: "%d miesięcy"}),
				RelativeYear:    Phrase("rok"),
				RelativeYears:   PluralPhrase(pl, map[PluralCategory]string{PluralFew: "%d lata", PluralOther: "%d lat"}),
			},
		},
		Calendar: map[CalendarKey]CalendarPhrase{
			CalendarSameDay:  CalendarLayout("[Dziś o] LT"),
			CalendarNextDay:  CalendarLayout("[Jutro o] LT"),
			CalendarNextWeek: CalendarLayout("[W] dddd [o] LT"),
			CalendarLastDay:  CalendarLayout("[Wczoraj o] LT"),
			CalendarLastWeek: CalendarLayout("[W zeszły/łą] dddd [o] LT"),
			CalendarSameElse: CalendarLayout("L"),
		},
	}
}

func newPortugueseLocale() *Locale {
	return &Locale{
		ID:  "pt",
		Tag: language.Portuguese,
		Months: []string{
			"Janeiro", "Fevereiro", "Março", "Abril", "Maio", "Junho",
			"Julho", "Agosto", "Setembro", "Outubro", "Novembro", "Dezembro",
		},
		MonthsShort: []string{"Jan", "Fev", "Mar", "Abr", "Mai", "Jun", "Jul", "Ago", "Set", "Out", "Nov", "Dez"},
		Weekdays: []string{
			"Domingo", "Segunda-feira", "Terça-feira", "Quarta-feira",
			"Quinta-feira", "Sexta-feira", "Sábado",
		},
		WeekdaysShort: []string{"Dom", "Seg", "Ter", "Qua", "Qui", "Sex", "Sáb"},
		Ordinal:       SuffixOrdinal("º"),
		LongDateFormat: map[LongDateKey]string{
			FormatLT:   "HH:mm",
			FormatL:    "DD/MM/YYYY",
			FormatLL:   "D [de] MMMM [de] YYYY",
			FormatLLL:  "D [de] MMMM [de] YYYY LT",
			FormatLLLL: "dddd, D [de] MMMM [de] YYYY LT",
		},
		RelativeTime: RelativeTimeTable{
			Future: "em %s",
			Past:   "%s atrás",
			Units: map[RelativeKey]RelativePhrase{
				RelativeSeconds: Phrase("segundos"),
				RelativeMinute:  Phrase("um minuto"),
				RelativeMinutes: Phrase("%d minutos"),
				RelativeHour:    Phrase("uma hora"),
				RelativeHours:   Phrase("%d horas"),
				RelativeDay:     Phrase("um dia"),
				RelativeDays:    Phrase("%d dias"),
				RelativeMonth:   Phrase("um mês"),
				RelativeMonths:  Phrase("%d meses"),
				RelativeYear:    Phrase("um ano"),
				RelativeYears:   Phrase("%d anos"),
			},
		},
		Calendar: map[CalendarKey]CalendarPhrase{
			CalendarSameDay:  CalendarLayout("[Hoje às] LT"),
			CalendarNextDay:  CalendarLayout("[Amanhã às] LT"),
			CalendarNextWeek: CalendarLayout("dddd [às] LT"),
			CalendarLastDay:  CalendarLayout("[Ontem às] LT"),
			CalendarLastWeek: func(m Moment) string {
				// Sábado and Domingo are masculine.
				if day := m.Day(); day == 0 || day == 6 {
					return "[Último] dddd [às] LT"
				}
				return "[Última] dddd [às] LT"
			},
			CalendarSameElse: CalendarLayout("L"),
		},
	}
}

func newRussianLocale() *Locale {
	ru := language.Russian
	forms := func(one, few, many string) RelativePhrase {
		return PluralPhrase(ru, map[PluralCategory]string{
			PluralOne:   "%d " + one,
			PluralFew:   "%d " + few,
			PluralMany:  "%d " + many,
			PluralOther: "%d " + few,
		})
	}
	return &Locale{
		ID:  "ru",
		Tag: ru,
		Months: []string{
			"январь", "февраль", "март", "апрель", "май", "июнь",
			"июль", "август", "сентябрь", "октябрь", "ноябрь", "декабрь",
		},
		MonthsShort:    []string{"янв", "фев", "мар", "апр", "май", "июн", "июл", "авг", "сен", "окт", "ноя", "дек"},
		Weekdays:       []string{"воскресенье", "понедельник", "вторник", "среда", "четверг", "пятница", "суббота"},
		WeekdaysShort:  []string{"вск", "пнд", "втр", "срд", "чтв", "птн", "суб"},
		Ordinal:        SuffixOrdinal("."),
		FirstDayOfWeek: 1,
		LongDateFormat: map[LongDateKey]string{
			FormatLT:   "HH:mm",
			FormatL:    "DD-MM-YYYY",
			FormatLL:   "D MMMM YYYY",
			FormatLLL:  "D MMMM YYYY LT",
			FormatLLLL: "dddd, D MMMM YYYY LT",
		},
		RelativeTime: RelativeTimeTable{
			Future: "через %s",
			Past:   "%s назад",
			Units: map[RelativeKey]RelativePhrase{
				RelativeSeconds: Phrase("несколько секунд"),
				RelativeMinute:  Phrase("минуту"),
				RelativeMinutes: forms("минуту", "минуты", "минут"),
				RelativeHour:    Phrase("час"),
				RelativeHours:   forms("час", "часа", "часов"),
				RelativeDay:     Phrase("1 день"),
				RelativeDays:    forms("день", "дня", "дней"),
				RelativeMonth:   Phrase("месяц"),
				RelativeMonths:  forms("месяц", "месяца", "месяцев"),
				RelativeYear:    Phrase("год"),
				RelativeYears:   forms("год", "года", "лет"),
			},
		},
		Calendar: map[CalendarKey]CalendarPhrase{
			CalendarSameDay: CalendarLayout("[Сегодня в] LT"),
			CalendarNextDay: CalendarLayout("[Завтра в] LT"),
			CalendarLastDay: CalendarLayout("[Вчера в] LT"),
			CalendarNextWeek: func(m Moment) string {
				if m.Day() == 2 {
					return "[Во] dddd [в] LT"
				}
				return "[В] dddd [в] LT"
			},
			CalendarLastWeek: func(m Moment) string {
				switch m.Day() {
				case 1, 2, 4:
					return "[В прошлый] dddd [в] LT"
				case 0:
					return "[В прошлое] dddd [в] LT"
				default:
					return "[В прошлую] dddd [в] LT"
				}
			},
			CalendarSameElse: CalendarLayout("L"),
		},
	}
}

// codedLocales are the built-in tables that need functions for grammatical
// agreement. The remaining built-ins are decoded from embedded locale files.
var codedLocales = []func() *Locale{
	englishLocale,
	newCatalanLocale,
	newSpanishLocale,
	newGalicianLocale,
	newPolishLocale,
	newPortugueseLocale,
	newRussianLocale,
}
