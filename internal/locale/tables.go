package locale

var supported = []string{"en", "en-GB", "de", "es", "fr", "it", "ja", "ko", "nl", "pt", "zh"}

var registry = map[string]*Locale{
	"en":    English,
	"en-GB": BritishEnglish,
	"de":    German,
	"es":    Spanish,
	"fr":    French,
	"it":    Italian,
	"ja":    Japanese,
	"ko":    Korean,
	"nl":    Dutch,
	"pt":    Portuguese,
	"zh":    Chinese,
}

var (
	englishMonthsLong = [12]string{
		"January", "February", "March", "April", "May", "June",
		"July", "August", "September", "October", "November", "December",
	}
	englishMonthsShort = [12]string{
		"Jan", "Feb", "Mar", "Apr", "May", "Jun",
		"Jul", "Aug", "Sep", "Oct", "Nov", "Dec",
	}
	englishDaysLong = [7]string{
		"Sunday", "Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday",
	}
	englishDaysShort = [7]string{"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"}

	englishUnits = map[string]string{
		"year":      "Year",
		"month":     "Month",
		"day":       "Day",
		"weekday":   "Weekday",
		"hour":      "Hour",
		"minute":    "Minute",
		"second":    "Second",
		"dayperiod": "Day period",
	}
)

var English = &Locale{
	Tag:         "en",
	MonthsLong:  englishMonthsLong,
	MonthsShort: englishMonthsShort,
	DaysLong:    englishDaysLong,
	DaysShort:   englishDaysShort,
	AM:          "AM",
	PM:          "PM",
	Order:       OrderMDY,
	NumSep:      "/",
	Units:       englishUnits,
	TwelveHour:  true,
}

var BritishEnglish = &Locale{
	Tag:         "en-GB",
	MonthsLong:  englishMonthsLong,
	MonthsShort: englishMonthsShort,
	DaysLong:    englishDaysLong,
	DaysShort:   englishDaysShort,
	AM:          "am",
	PM:          "pm",
	Order:       OrderDMY,
	NumSep:      "/",
	Units:       englishUnits,
	TwelveHour:  true,
}

var German = &Locale{
	Tag: "de",
	MonthsLong: [12]string{
		"Januar", "Februar", "März", "April", "Mai", "Juni",
		"Juli", "August", "September", "Oktober", "November", "Dezember",
	},
	MonthsShort: [12]string{
		"Jan", "Feb", "Mär", "Apr", "Mai", "Jun",
		"Jul", "Aug", "Sep", "Okt", "Nov", "Dez",
	},
	DaysLong: [7]string{
		"Sonntag", "Montag", "Dienstag", "Mittwoch", "Donnerstag", "Freitag", "Samstag",
	},
	DaysShort: [7]string{"So", "Mo", "Di", "Mi", "Do", "Fr", "Sa"},
	AM:        "vorm.",
	PM:        "nachm.",
	Order:     OrderDMY,
	NumSep:    ".",
	Units: map[string]string{
		"year":      "Jahr",
		"month":     "Monat",
		"day":       "Tag",
		"weekday":   "Wochentag",
		"hour":      "Stunde",
		"minute":    "Minute",
		"second":    "Sekunde",
		"dayperiod": "Tageshälfte",
	},
}

var Spanish = &Locale{
	Tag: "es",
	MonthsLong: [12]string{
		"enero", "febrero", "marzo", "abril", "mayo", "junio",
		"julio", "agosto", "septiembre", "octubre", "noviembre", "diciembre",
	},
	MonthsShort: [12]string{
		"ene", "feb", "mar", "abr", "may", "jun",
		"jul", "ago", "sep", "oct", "nov", "dic",
	},
	DaysLong: [7]string{
		"domingo", "lunes", "martes", "miércoles", "jueves", "viernes", "sábado",
	},
	DaysShort: [7]string{"dom", "lun", "mar", "mié", "jue", "vie", "sáb"},
	AM:        "a. m.",
	PM:        "p. m.",
	Order:     OrderDMY,
	NumSep:    "/",
	Units: map[string]string{
		"year":      "Año",
		"month":     "Mes",
		"day":       "Día",
		"weekday":   "Día de la semana",
		"hour":      "Hora",
		"minute":    "Minuto",
		"second":    "Segundo",
		"dayperiod": "Periodo del día",
	},
}

var French = &Locale{
	Tag: "fr",
	MonthsLong: [12]string{
		"janvier", "février", "mars", "avril", "mai", "juin",
		"juillet", "août", "septembre", "octobre", "novembre", "décembre",
	},
	MonthsShort: [12]string{
		"janv", "févr", "mars", "avr", "mai", "juin",
		"juil", "août", "sept", "oct", "nov", "déc",
	},
	DaysLong: [7]string{
		"dimanche", "lundi", "mardi", "mercredi", "jeudi", "vendredi", "samedi",
	},
	DaysShort: [7]string{"dim", "lun", "mar", "mer", "jeu", "ven", "sam"},
	AM:        "AM",
	PM:        "PM",
	Order:     OrderDMY,
	NumSep:    "/",
	Units: map[string]string{
		"year":      "Année",
		"month":     "Mois",
		"day":       "Jour",
		"weekday":   "Jour de la semaine",
		"hour":      "Heure",
		"minute":    "Minute",
		"second":    "Seconde",
		"dayperiod": "Cadran",
	},
}

var Italian = &Locale{
	Tag: "it",
	MonthsLong: [12]string{
		"gennaio", "febbraio", "marzo", "aprile", "maggio", "giugno",
		"luglio", "agosto", "settembre", "ottobre", "novembre", "dicembre",
	},
	MonthsShort: [12]string{
		"gen", "feb", "mar", "apr", "mag", "giu",
		"lug", "ago", "set", "ott", "nov", "dic",
	},
	DaysLong: [7]string{
		"domenica", "lunedì", "martedì", "mercoledì", "giovedì", "venerdì", "sabato",
	},
	DaysShort: [7]string{"dom", "lun", "mar", "mer", "gio", "ven", "sab"},
	AM:        "AM",
	PM:        "PM",
	Order:     OrderDMY,
	NumSep:    "/",
	Units: map[string]string{
		"year":      "Anno",
		"month":     "Mese",
		"day":       "Giorno",
		"weekday":   "Giorno della settimana",
		"hour":      "Ora",
		"minute":    "Minuto",
		"second":    "Secondo",
		"dayperiod": "Periodo del giorno",
	},
}

var Japanese = &Locale{
	Tag: "ja",
	MonthsLong: [12]string{
		"1月", "2月", "3月", "4月", "5月", "6月",
		"7月", "8月", "9月", "10月", "11月", "12月",
	},
	MonthsShort: [12]string{
		"1月", "2月", "3月", "4月", "5月", "6月",
		"7月", "8月", "9月", "10月", "11月", "12月",
	},
	DaysLong: [7]string{
		"日曜日", "月曜日", "火曜日", "水曜日", "木曜日", "金曜日", "土曜日",
	},
	DaysShort: [7]string{"日", "月", "火", "水", "木", "金", "土"},
	AM:        "午前",
	PM:        "午後",
	Order:     OrderYMD,
	NumSep:    "/",
	Marks:     &DateMarks{Year: "年", Day: "日"},
	Units: map[string]string{
		"year":      "年",
		"month":     "月",
		"day":       "日",
		"weekday":   "曜日",
		"hour":      "時",
		"minute":    "分",
		"second":    "秒",
		"dayperiod": "午前/午後",
	},
	PeriodFirst: true,
}

var Korean = &Locale{
	Tag: "ko",
	MonthsLong: [12]string{
		"1월", "2월", "3월", "4월", "5월", "6월",
		"7월", "8월", "9월", "10월", "11월", "12월",
	},
	MonthsShort: [12]string{
		"1월", "2월", "3월", "4월", "5월", "6월",
		"7월", "8월", "9월", "10월", "11월", "12월",
	},
	DaysLong: [7]string{
		"일요일", "월요일", "화요일", "수요일", "목요일", "금요일", "토요일",
	},
	DaysShort: [7]string{"일", "월", "화", "수", "목", "금", "토"},
	AM:        "오전",
	PM:        "오후",
	Order:     OrderYMD,
	NumSep:    ". ",
	Marks:     &DateMarks{Year: "년", Day: "일", Spaced: true},
	Units: map[string]string{
		"year":      "년",
		"month":     "월",
		"day":       "일",
		"weekday":   "요일",
		"hour":      "시",
		"minute":    "분",
		"second":    "초",
		"dayperiod": "오전/오후",
	},
	TwelveHour:  true,
	PeriodFirst: true,
}

var Dutch = &Locale{
	Tag: "nl",
	MonthsLong: [12]string{
		"januari", "februari", "maart", "april", "mei", "juni",
		"juli", "augustus", "september", "oktober", "november", "december",
	},
	MonthsShort: [12]string{
		"jan", "feb", "mrt", "apr", "mei", "jun",
		"jul", "aug", "sep", "okt", "nov", "dec",
	},
	DaysLong: [7]string{
		"zondag", "maandag", "dinsdag", "woensdag", "donderdag", "vrijdag", "zaterdag",
	},
	DaysShort: [7]string{"zo", "ma", "di", "wo", "do", "vr", "za"},
	AM:        "a.m.",
	PM:        "p.m.",
	Order:     OrderDMY,
	NumSep:    "-",
	Units: map[string]string{
		"year":      "Jaar",
		"month":     "Maand",
		"day":       "Dag",
		"weekday":   "Dag van de week",
		"hour":      "Uur",
		"minute":    "Minuut",
		"second":    "Seconde",
		"dayperiod": "Dagdeel",
	},
}

var Portuguese = &Locale{
	Tag: "pt",
	MonthsLong: [12]string{
		"janeiro", "fevereiro", "março", "abril", "maio", "junho",
		"julho", "agosto", "setembro", "outubro", "novembro", "dezembro",
	},
	MonthsShort: [12]string{
		"jan", "fev", "mar", "abr", "mai", "jun",
		"jul", "ago", "set", "out", "nov", "dez",
	},
	DaysLong: [7]string{
		"domingo", "segunda-feira", "terça-feira", "quarta-feira",
		"quinta-feira", "sexta-feira", "sábado",
	},
	DaysShort: [7]string{"dom", "seg", "ter", "qua", "qui", "sex", "sáb"},
	AM:        "AM",
	PM:        "PM",
	Order:     OrderDMY,
	NumSep:    "/",
	Units: map[string]string{
		"year":      "Ano",
		"month":     "Mês",
		"day":       "Dia",
		"weekday":   "Dia da semana",
		"hour":      "Hora",
		"minute":    "Minuto",
		"second":    "Segundo",
		"dayperiod": "Período do dia",
	},
}

var Chinese = &Locale{
	Tag: "zh",
	MonthsLong: [12]string{
		"一月", "二月", "三月", "四月", "五月", "六月",
		"七月", "八月", "九月", "十月", "十一月", "十二月",
	},
	MonthsShort: [12]string{
		"1月", "2月", "3月", "4月", "5月", "6月",
		"7月", "8月", "9月", "10月", "11月", "12月",
	},
	DaysLong: [7]string{
		"星期日", "星期一", "星期二", "星期三", "星期四", "星期五", "星期六",
	},
	DaysShort: [7]string{"周日", "周一", "周二", "周三", "周四", "周五", "周六"},
	AM:        "上午",
	PM:        "下午",
	Order:     OrderYMD,
	NumSep:    "/",
	Marks:     &DateMarks{Year: "年", Day: "日"},
	Units: map[string]string{
		"year":      "年",
		"month":     "月",
		"day":       "日",
		"weekday":   "星期",
		"hour":      "小时",
		"minute":    "分钟",
		"second":    "秒",
		"dayperiod": "上午/下午",
	},
	TwelveHour:  true,
	PeriodFirst: true,
}
