package pricer

import "time"

// CountryZoneResolver maps an OCPI country code to a time zone, used as a
// fallback when a CDR carries no explicit zone and none was forced via
// WithTimeZone. Callers with richer auto-detection tables than the small
// illustrative one built in here can supply their own via
// WithCountryZoneResolver.
type CountryZoneResolver interface {
	Zone(countryCode string) (*time.Location, bool)
}

// countryZones is intentionally small and illustrative, covering a handful
// of common OCPI member-state country codes; it is not meant to be
// exhaustive. Production deployments needing broader coverage should
// supply their own CountryZoneResolver.
var countryZones = map[string]string{
	"NLD": "Europe/Amsterdam",
	"NL":  "Europe/Amsterdam",
	"DEU": "Europe/Berlin",
	"DE":  "Europe/Berlin",
	"BEL": "Europe/Brussels",
	"BE":  "Europe/Brussels",
	"FRA": "Europe/Paris",
	"FR":  "Europe/Paris",
	"GBR": "Europe/London",
	"GB":  "Europe/London",
	"ESP": "Europe/Madrid",
	"ES":  "Europe/Madrid",
	"ITA": "Europe/Rome",
	"IT":  "Europe/Rome",
	"CHE": "Europe/Zurich",
	"CH":  "Europe/Zurich",
	"AUT": "Europe/Vienna",
	"AT":  "Europe/Vienna",
	"DNK": "Europe/Copenhagen",
	"DK":  "Europe/Copenhagen",
	"SWE": "Europe/Stockholm",
	"SE":  "Europe/Stockholm",
	"NOR": "Europe/Oslo",
	"NO":  "Europe/Oslo",
	"POL": "Europe/Warsaw",
	"PL":  "Europe/Warsaw",
	"PRT": "Europe/Lisbon",
	"PT":  "Europe/Lisbon",
	"USA": "America/New_York",
	"US":  "America/New_York",
}

type defaultCountryZoneResolver struct{}

// DefaultCountryZoneResolver returns the built-in illustrative
// country-code-to-zone table.
func DefaultCountryZoneResolver() CountryZoneResolver {
	return defaultCountryZoneResolver{}
}

func (defaultCountryZoneResolver) Zone(countryCode string) (*time.Location, bool) {
	name, ok := countryZones[countryCode]
	if !ok {
		return nil, false
	}
	loc, err := time.LoadLocation(name)
	if err != nil {
		return nil, false
	}
	return loc, true
}
