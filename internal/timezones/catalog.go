package timezones

import "strings"

// zoneIDs is the picker catalog, grouped by region. It is a curated
// cut of the IANA database, not the whole thing; Load still accepts
// any id the platform knows.
var zoneIDs = []string{
	"UTC",

	"Africa/Cairo",
	"Africa/Casablanca",
	"Africa/Johannesburg",
	"Africa/Lagos",
	"Africa/Nairobi",

	"America/Anchorage",
	"America/Argentina/Buenos_Aires",
	"America/Bogota",
	"America/Caracas",
	"America/Chicago",
	"America/Denver",
	"America/Halifax",
	"America/Havana",
	"America/Lima",
	"America/Los_Angeles",
	"America/Mexico_City",
	"America/New_York",
	"America/Phoenix",
	"America/Santiago",
	"America/Sao_Paulo",
	"America/St_Johns",
	"America/Toronto",
	"America/Vancouver",

	"Asia/Baghdad",
	"Asia/Bangkok",
	"Asia/Dhaka",
	"Asia/Dubai",
	"Asia/Hong_Kong",
	"Asia/Jakarta",
	"Asia/Jerusalem",
	"Asia/Kabul",
	"Asia/Karachi",
	"Asia/Kathmandu",
	"Asia/Kolkata",
	"Asia/Kuala_Lumpur",
	"Asia/Manila",
	"Asia/Riyadh",
	"Asia/Seoul",
	"Asia/Shanghai",
	"Asia/Singapore",
	"Asia/Taipei",
	"Asia/Tehran",
	"Asia/Tokyo",
	"Asia/Yangon",

	"Atlantic/Azores",
	"Atlantic/Reykjavik",

	"Australia/Adelaide",
	"Australia/Brisbane",
	"Australia/Darwin",
	"Australia/Hobart",
	"Australia/Melbourne",
	"Australia/Perth",
	"Australia/Sydney",

	"Europe/Amsterdam",
	"Europe/Athens",
	"Europe/Belgrade",
	"Europe/Berlin",
	"Europe/Brussels",
	"Europe/Bucharest",
	"Europe/Budapest",
	"Europe/Copenhagen",
	"Europe/Dublin",
	"Europe/Helsinki",
	"Europe/Istanbul",
	"Europe/Kyiv",
	"Europe/Lisbon",
	"Europe/London",
	"Europe/Madrid",
	"Europe/Moscow",
	"Europe/Oslo",
	"Europe/Paris",
	"Europe/Prague",
	"Europe/Rome",
	"Europe/Stockholm",
	"Europe/Vienna",
	"Europe/Warsaw",
	"Europe/Zurich",

	"Pacific/Auckland",
	"Pacific/Fiji",
	"Pacific/Guam",
	"Pacific/Honolulu",
	"Pacific/Port_Moresby",
}

var catalog = buildCatalog()

func buildCatalog() []Option {
	out := make([]Option, len(zoneIDs))
	for i, id := range zoneIDs {
		out[i] = optionFor(id)
	}
	return out
}

func optionFor(id string) Option {
	region, rest, ok := strings.Cut(id, "/")
	if !ok {
		return Option{ID: id, City: id, Region: "Other"}
	}
	city := rest
	if idx := strings.LastIndexByte(rest, '/'); idx >= 0 {
		city = rest[idx+1:]
	}
	return Option{
		ID:     id,
		City:   strings.ReplaceAll(city, "_", " "),
		Region: region,
	}
}
