package country

import (
	"fmt"
	"math/rand/v2"

	"idconsole/internal/types"
)

type rules struct {
	name        string
	callingCode string
	anchors     []types.GeoPoint
	zip         func(r *rand.Rand) string
	phone       func(r *rand.Rand) string
}

var table = map[Code]rules{
	US: {
		name:        "United States",
		callingCode: "+1",
		anchors:     points(40.7128, -74.0060, 34.0522, -118.2437, 41.8781, -87.6298),
		zip:         func(r *rand.Rand) string { return fmt.Sprint(between(r, 10000, 99999)) },
		phone:       northAmerican("+1"),
	},
	UK: {
		name:        "United Kingdom",
		callingCode: "+44",
		anchors:     points(51.5074, -0.1278, 53.4808, -2.2426),
		zip:         func(r *rand.Rand) string { return fmt.Sprintf("SW1A %dAA", between(r, 1, 9)) },
		phone:       func(r *rand.Rand) string { return "+44 7" + digits(r, 9) },
	},
	FR: {
		name:        "France",
		callingCode: "+33",
		anchors:     points(48.8566, 2.3522, 45.7640, 4.8357),
		zip:         defaultZip,
		phone:       func(r *rand.Rand) string { return fmt.Sprintf("+33 %d%s", between(r, 6, 7), digits(r, 8)) },
	},
	DE: {
		name:        "Germany",
		callingCode: "+49",
		anchors:     points(52.5200, 13.4050, 50.1109, 8.6821),
		zip:         defaultZip,
		phone:       func(r *rand.Rand) string { return fmt.Sprintf("+49 1%d %s", between(r, 50, 79), digits(r, 8)) },
	},
	CN: {
		name:        "China",
		callingCode: "+86",
		anchors:     points(39.9042, 116.4074, 31.2304, 121.4737, 23.1291, 113.2644),
		zip:         func(r *rand.Rand) string { return fmt.Sprint(between(r, 100000, 999999)) },
		phone:       func(r *rand.Rand) string { return fmt.Sprintf("+86 1%d %s", between(r, 30, 99), digits(r, 8)) },
	},
	TW: {
		name:        "Taiwan",
		callingCode: "+886",
		anchors:     points(25.0330, 121.5654, 22.6273, 120.3014),
		zip:         defaultZip,
		phone:       func(r *rand.Rand) string { return "+886 9" + digits(r, 8) },
	},
	HK: {
		name:        "Hong Kong",
		callingCode: "+852",
		anchors:     points(22.3193, 114.1694, 22.2855, 114.1577),
		zip:         defaultZip,
		phone:       func(r *rand.Rand) string { return fmt.Sprintf("+852 %d%s", between(r, 5, 9), digits(r, 7)) },
	},
	JP: {
		name:        "Japan",
		callingCode: "+81",
		anchors:     points(35.6895, 139.6917, 34.6937, 135.5023),
		zip:         func(r *rand.Rand) string { return fmt.Sprintf("%d-%d", between(r, 100, 999), between(r, 1000, 9999)) },
		phone: func(r *rand.Rand) string {
			return fmt.Sprintf("+81 %d-%s-%s", between(r, 70, 90), digits(r, 4), digits(r, 4))
		},
	},
	IN: {
		name:        "India",
		callingCode: "+91",
		anchors:     points(28.6139, 77.2090, 19.0760, 72.8777),
		zip:         defaultZip,
		phone:       func(r *rand.Rand) string { return fmt.Sprintf("+91 %d %s", between(r, 6000, 9999), digits(r, 6)) },
	},
	AU: {
		name:        "Australia",
		callingCode: "+61",
		anchors:     points(-33.8688, 151.2093, -37.8136, 144.9631),
		zip:         defaultZip,
		phone:       func(r *rand.Rand) string { return "+61 4" + digits(r, 8) },
	},
	BR: {
		name:        "Brazil",
		callingCode: "+55",
		anchors:     points(-23.5505, -46.6333, -22.9068, -43.1729),
		zip:         defaultZip,
		phone:       func(r *rand.Rand) string { return fmt.Sprintf("+55 %d 9%s", between(r, 11, 99), digits(r, 8)) },
	},
	CA: {
		name:        "Canada",
		callingCode: "+1",
		anchors:     points(43.6532, -79.3832, 45.5017, -73.5673),
		zip:         defaultZip,
		phone:       northAmerican("+1"),
	},
	RU: {
		name:        "Russia",
		callingCode: "+7",
		anchors:     points(55.7558, 37.6173, 59.9343, 30.3351),
		zip:         defaultZip,
		phone:       func(r *rand.Rand) string { return "+7 9" + digits(r, 9) },
	},
	ZA: {
		name:        "South Africa",
		callingCode: "+27",
		anchors:     points(-33.9249, 18.4241, -26.2041, 28.0473),
		zip:         defaultZip,
		phone:       func(r *rand.Rand) string { return fmt.Sprintf("+27 %d %s", between(r, 60, 89), digits(r, 7)) },
	},
	MX: {
		name:        "Mexico",
		callingCode: "+52",
		anchors:     points(19.4326, -99.1332, 20.6597, -103.3496),
		zip:         defaultZip,
		phone:       func(r *rand.Rand) string { return fmt.Sprintf("+52 %d %s", between(r, 11, 99), digits(r, 8)) },
	},
	KR: {
		name:        "South Korea",
		callingCode: "+82",
		anchors:     points(37.5665, 126.9780, 35.1796, 129.0756),
		zip:         defaultZip,
		phone:       func(r *rand.Rand) string { return fmt.Sprintf("+82 10-%s-%s", digits(r, 4), digits(r, 4)) },
	},
	IT: {
		name:        "Italy",
		callingCode: "+39",
		anchors:     points(41.9028, 12.4964, 45.4642, 9.1900),
		zip:         defaultZip,
		phone:       func(r *rand.Rand) string { return "+39 3" + digits(r, 9) },
	},
	ES: {
		name:        "Spain",
		callingCode: "+34",
		anchors:     points(40.4168, -3.7038, 41.3851, 2.1734),
		zip:         defaultZip,
		phone:       func(r *rand.Rand) string { return "+34 6" + digits(r, 8) },
	},
	TR: {
		name:        "Turkey",
		callingCode: "+90",
		anchors:     points(41.0082, 28.9784, 39.9334, 32.8597),
		zip:         defaultZip,
		phone:       func(r *rand.Rand) string { return "+90 5" + digits(r, 9) },
	},
	SA: {
		name:        "Saudi Arabia",
		callingCode: "+966",
		anchors:     points(24.7136, 46.6753, 21.4858, 39.1925),
		zip:         defaultZip,
		phone:       func(r *rand.Rand) string { return "+966 5" + digits(r, 8) },
	},
	AR: {
		name:        "Argentina",
		callingCode: "+54",
		anchors:     points(-34.6037, -58.3816, -31.4201, -64.1888),
		zip:         defaultZip,
		phone:       func(r *rand.Rand) string { return fmt.Sprintf("+54 9 %d %s", between(r, 11, 99), digits(r, 8)) },
	},
	EG: {
		name:        "Egypt",
		callingCode: "+20",
		anchors:     points(30.0444, 31.2357, 31.2001, 29.9187),
		zip:         defaultZip,
		phone:       func(r *rand.Rand) string { return fmt.Sprintf("+20 1%d%s", between(r, 0, 2), digits(r, 8)) },
	},
	NG: {
		name:        "Nigeria",
		callingCode: "+234",
		anchors:     points(6.5244, 3.3792, 9.0765, 7.3986),
		zip:         defaultZip,
		phone:       func(r *rand.Rand) string { return fmt.Sprintf("+234 %d%s", between(r, 70, 90), digits(r, 8)) },
	},
	ID: {
		name:        "Indonesia",
		callingCode: "+62",
		anchors:     points(-6.2088, 106.8456, -7.2575, 112.7521),
		zip:         defaultZip,
		phone:       func(r *rand.Rand) string { return "+62 8" + digits(r, 9) },
	},
}

func defaultZip(r *rand.Rand) string {
	return fmt.Sprint(between(r, 10000, 99999))
}

func northAmerican(prefix string) func(r *rand.Rand) string {
	return func(r *rand.Rand) string {
		return fmt.Sprintf("%s (%d) %d-%s", prefix, between(r, 200, 999), between(r, 200, 999), digits(r, 4))
	}
}

// points builds anchors from flat lat/lon pairs
func points(coords ...float64) []types.GeoPoint {
	out := make([]types.GeoPoint, 0, len(coords)/2)
	for i := 0; i+1 < len(coords); i += 2 {
		out = append(out, types.NewGeoPoint(coords[i], coords[i+1]))
	}
	return out
}
