// Package geo maps free-text country names to flags and world regions.
package geo

import "strings"

const onlineMarker = "🌐"

// Regions used by statistics. Anything unknown is RegionOther.
const (
	RegionEurope       = "Europe"
	RegionNorthAmerica = "North America"
	RegionSouthAmerica = "South America"
	RegionAsia         = "Asia"
	RegionMiddleEast   = "Middle East"
	RegionOceania      = "Oceania"
	RegionAfrica       = "Africa"
	RegionRemote       = "Remote"
	RegionOther        = "Other"
)

type country struct {
	code   string
	region string
}

// keys are lower-cased, trimmed country names and common aliases.
var countries = map[string]country{
	"united states": {"US", RegionNorthAmerica},
	"usa":           {"US", RegionNorthAmerica},
	"us":            {"US", RegionNorthAmerica},
	"america":       {"US", RegionNorthAmerica},
	"canada":        {"CA", RegionNorthAmerica},
	"mexico":        {"MX", RegionNorthAmerica},
	"guatemala":     {"GT", RegionNorthAmerica},

	"united kingdom":   {"GB", RegionEurope},
	"uk":               {"GB", RegionEurope},
	"great britain":    {"GB", RegionEurope},
	"england":          {"GB", RegionEurope},
	"scotland":         {"GB", RegionEurope},
	"wales":            {"GB", RegionEurope},
	"northern ireland": {"GB", RegionEurope},
	"germany":          {"DE", RegionEurope},
	"france":           {"FR", RegionEurope},
	"spain":            {"ES", RegionEurope},
	"italy":            {"IT", RegionEurope},
	"netherlands":      {"NL", RegionEurope},
	"the netherlands":  {"NL", RegionEurope},
	"holland":          {"NL", RegionEurope},
	"belgium":          {"BE", RegionEurope},
	"sweden":           {"SE", RegionEurope},
	"norway":           {"NO", RegionEurope},
	"denmark":          {"DK", RegionEurope},
	"finland":          {"FI", RegionEurope},
	"poland":           {"PL", RegionEurope},
	"austria":          {"AT", RegionEurope},
	"switzerland":      {"CH", RegionEurope},
	"ireland":          {"IE", RegionEurope},
	"portugal":         {"PT", RegionEurope},
	"czechia":          {"CZ", RegionEurope},
	"czech republic":   {"CZ", RegionEurope},
	"hungary":          {"HU", RegionEurope},
	"romania":          {"RO", RegionEurope},
	"greece":           {"GR", RegionEurope},
	"croatia":          {"HR", RegionEurope},
	"slovenia":         {"SI", RegionEurope},
	"slovakia":         {"SK", RegionEurope},
	"bulgaria":         {"BG", RegionEurope},
	"serbia":           {"RS", RegionEurope},
	"ukraine":          {"UA", RegionEurope},
	"lithuania":        {"LT", RegionEurope},
	"latvia":           {"LV", RegionEurope},
	"estonia":          {"EE", RegionEurope},
	"iceland":          {"IS", RegionEurope},
	"malta":            {"MT", RegionEurope},
	"luxembourg":       {"LU", RegionEurope},
	"cyprus":           {"CY", RegionEurope},

	"japan":       {"JP", RegionAsia},
	"china":       {"CN", RegionAsia},
	"south korea": {"KR", RegionAsia},
	"korea":       {"KR", RegionAsia},
	"india":       {"IN", RegionAsia},
	"singapore":   {"SG", RegionAsia},
	"thailand":    {"TH", RegionAsia},
	"vietnam":     {"VN", RegionAsia},
	"malaysia":    {"MY", RegionAsia},
	"indonesia":   {"ID", RegionAsia},
	"philippines": {"PH", RegionAsia},
	"taiwan":      {"TW", RegionAsia},
	"hong kong":   {"HK", RegionAsia},

	"israel":               {"IL", RegionMiddleEast},
	"uae":                  {"AE", RegionMiddleEast},
	"united arab emirates": {"AE", RegionMiddleEast},
	"saudi arabia":         {"SA", RegionMiddleEast},
	"qatar":                {"QA", RegionMiddleEast},
	"turkey":               {"TR", RegionMiddleEast},

	"australia":   {"AU", RegionOceania},
	"new zealand": {"NZ", RegionOceania},

	"brazil":    {"BR", RegionSouthAmerica},
	"argentina": {"AR", RegionSouthAmerica},
	"chile":     {"CL", RegionSouthAmerica},
	"colombia":  {"CO", RegionSouthAmerica},
	"peru":      {"PE", RegionSouthAmerica},
	"venezuela": {"VE", RegionSouthAmerica},
	"ecuador":   {"EC", RegionSouthAmerica},
	"uruguay":   {"UY", RegionSouthAmerica},

	"south africa": {"ZA", RegionAfrica},
	"egypt":        {"EG", RegionAfrica},
	"nigeria":      {"NG", RegionAfrica},
	"kenya":        {"KE", RegionAfrica},
	"morocco":      {"MA", RegionAfrica},

	"online": {onlineMarker, RegionRemote},
	"remote": {onlineMarker, RegionRemote},
}

func lookup(name string) (country, bool) {
	c, ok := countries[strings.ToLower(strings.TrimSpace(name))]
	return c, ok
}

// Code returns the ISO 3166-1 alpha-2 code for a country name, or "".
// Online events yield the globe marker.
func Code(name string) string {
	c, ok := lookup(name)
	if !ok {
		return ""
	}
	return c.code
}

// Flag returns the flag emoji for a country name, the globe for online events and
// "" when the country is unknown.
func Flag(name string) string {
	code := Code(name)
	if code == "" || code == onlineMarker {
		return code
	}
	var b strings.Builder
	for _, r := range strings.ToUpper(code) {
		// Regional indicator symbols start at U+1F1E6 for 'A'.
		b.WriteRune(r - 'A' + 0x1F1E6)
	}
	return b.String()
}

// Region returns the world region of a country name, or RegionOther.
func Region(name string) string {
	c, ok := lookup(name)
	if !ok {
		return RegionOther
	}
	return c.region
}
