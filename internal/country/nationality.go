package country

// nationalityOverrides rewrites codes before they are sent to the person
// service. The East Asian entries map to US because the service has no
// matching name sets.
var nationalityOverrides = map[Code]string{
	UK: "GB",
	CN: "US",
	TW: "US",
	HK: "US",
	JP: "US",
	KR: "US",
}

// nationalities accepted by the person service
var nationalities = map[string]bool{
	"US": true, "GB": true, "FR": true, "DE": true, "AU": true, "BR": true,
	"CA": true, "ES": true, "MX": true, "TR": true, "IN": true,
}

// Nationality returns the nationality hint for the person service, or ""
// when the service has no data set for c
func Nationality(c Code) string {
	nat := string(c)
	if o, ok := nationalityOverrides[c]; ok {
		nat = o
	}
	if !nationalities[nat] {
		return ""
	}
	return nat
}
