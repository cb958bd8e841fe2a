package rules

// DefaultRegion is the only city whose street names the default tables describe.
const DefaultRegion = "Calgary"

var defaultStreetSuffixes = map[string]string{
	"Ave":   "Avenue",
	"AVE":   "Avenue",
	"Ave.":  "Avenue",
	"Blvd":  "Boulevard",
	"Blvd.": "Boulevard",
	"Ct":    "Court",
	"Dr":    "Drive",
	"Dr.":   "Drive",
	"Rd":    "Road",
	"Rd.":   "Road",
	"St":    "Street",
	"St.":   "Street",
	"Tr":    "Trail",
}

var defaultDirections = map[string]string{
	"East":       "E",
	"N.E.":       "NE",
	"N.W.":       "NW",
	"N.W":        "NW",
	"North":      "N",
	"Northeast":  "NE",
	"Northwest":  "NW",
	"S.E":        "SE",
	"S.W.":       "SW",
	"South":      "S",
	"South-east": "SE",
	"South-west": "SW",
	"Southeast":  "SE",
	"Southwest":  "SW",
}

var defaultExpectedStreets = []string{
	"Street", "Avenue", "Boulevard", "Drive", "Court", "Place", "Square",
	"Lane", "Road", "Trail", "Parkway", "Commons", "Terrace", "Heights", "Way",
	"Bay", "Centre", "Circle", "Close", "Common", "Cove", "Crescent", "Gate",
	"Grove", "Hill", "Landing", "Link", "Manor", "Mews", "Park", "Plaza",
	"Rise", "Row", "View", "Villas", "Gardens", "Green",
}

var defaultExpectedDirections = []string{"NW", "NE", "SW", "SE", "N", "E", "S", "W"}

// Default returns the built-in Calgary convention.
func Default() *Set {
	return &Set{
		Region:             DefaultRegion,
		StreetSuffixes:     NewTable(defaultStreetSuffixes),
		Directions:         NewTable(defaultDirections),
		ExpectedStreets:    NewVocabulary(defaultExpectedStreets...),
		ExpectedDirections: NewVocabulary(defaultExpectedDirections...),
	}
}
