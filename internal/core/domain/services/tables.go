package services

import "aboshop/internal/core/domain/model/checkout"

// Operator facts. The home postal code anchors every distance
// computation; an order delivered there has distance zero.
const (
	OperatorName        = "New Digital Media Power"
	HomePostalCode      = "72762"
	HomeCity            = "Reutlingen"
	DefaultVariantID    = 1
	SportsVariantID     = 2
	CountyVariantID     = 3
	GenericCoverageCity = "Unknown"
)

// plzInfo is a known postal code with resolved city and coordinates.
type plzInfo struct {
	city string
	lat  float64
	lon  float64
}

// postalCodeDirectory is the fixed sample of postal codes with known
// coordinates. Codes outside this table fall back to the deterministic
// first-digit distance estimate.
var postalCodeDirectory = map[string]plzInfo{
	"70173": {city: "Stuttgart", lat: 48.7758, lon: 9.1829},
	"72762": {city: "Reutlingen", lat: 48.4921, lon: 9.2144},
	"72764": {city: "Reutlingen", lat: 48.4833, lon: 9.2167},
	"72070": {city: "Tübingen", lat: 48.5216, lon: 9.0576},
	"73728": {city: "Esslingen", lat: 48.7406, lon: 9.3108},
	"89073": {city: "Ulm", lat: 48.4011, lon: 9.9876},
	"80331": {city: "München", lat: 48.1374, lon: 11.5755},
	"10115": {city: "Berlin", lat: 52.5328, lon: 13.3884},
	"20095": {city: "Hamburg", lat: 53.5511, lon: 9.9937},
	"50667": {city: "Köln", lat: 50.9375, lon: 6.9603},
	"60311": {city: "Frankfurt", lat: 50.1109, lon: 8.6821},
	"01067": {city: "Dresden", lat: 51.0504, lon: 13.7373},
	"04109": {city: "Leipzig", lat: 51.3397, lon: 12.3731},
	"28195": {city: "Bremen", lat: 53.0793, lon: 8.8017},
	"45127": {city: "Essen", lat: 51.4582, lon: 7.0158},
	"44135": {city: "Dortmund", lat: 51.5136, lon: 7.4653},
	"90402": {city: "Nürnberg", lat: 49.4521, lon: 11.0767},
	"04275": {city: "Leipzig", lat: 51.3195, lon: 12.3731},
	"76133": {city: "Karlsruhe", lat: 49.0069, lon: 8.4037},
	"23552": {city: "Lübeck", lat: 53.8655, lon: 10.6866},
}

// cityCoverage maps a resolved city to its locally covered variant.
// Cities outside the table default to the generic variant.
var cityCoverage = map[string]int{
	"Stuttgart":  1,
	"Reutlingen": 1,
	"Tübingen":   3,
	"Esslingen":  1,
	"Ulm":        2,
	"München":    2,
	"Berlin":     2,
	"Hamburg":    2,
	"Köln":       1,
	"Frankfurt":  2,
	"Dresden":    1,
	"Leipzig":    1,
	"Bremen":     2,
	"Essen":      1,
	"Dortmund":   1,
	"Nürnberg":   1,
	"Karlsruhe":  1,
	"Lübeck":     1,
}

// variantCatalog is the full set of local editions.
var variantCatalog = []checkout.Variant{
	{ID: 1, Name: "Stadtausgabe", Description: "City Edition - Local news from the city center"},
	{ID: 2, Name: "Sportversion", Description: "Sports Edition - Extended sports coverage"},
	{ID: 3, Name: "Landkreisinfos", Description: "County Edition - News from surrounding areas"},
}

// Pricing constants. Weekend cadence is cheaper than daily; premium
// variants carry a fixed surcharge; postal delivery fees are tiered
// strictly by distance bracket.
const (
	baseMonthlyDaily   = 29.99
	baseMonthlyWeekend = 14.99

	sportsSurcharge = 5.00
	countySurcharge = 2.00

	localReachKm = 50.0

	postFeeNear    = 3.00  // distance <= 100 km
	postFeeMid     = 5.00  // distance <= 300 km
	postFeeFar     = 8.00  // distance <= 500 km
	postFeeFarther = 15.00 // distance > 500 km

	annualDiscountFactor = 0.9
)
