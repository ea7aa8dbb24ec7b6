// Package models defines the data structures for Agrilens
package models

// Sector classifies a company within the food and agriculture value chain.
type Sector string

const (
	SectorFoodManufacturer Sector = "food-manufacturer"
	SectorAgChemical       Sector = "ag-chemical"
	SectorCommodityTrader  Sector = "commodity-trader"
	SectorSeedsGenetics    Sector = "seeds-genetics"
	SectorAnimalFeed       Sector = "animal-feed"
)

// ESGRating is an MSCI-style letter grade.
type ESGRating string

const (
	RatingAAA ESGRating = "AAA"
	RatingAA  ESGRating = "AA"
	RatingA   ESGRating = "A"
	RatingBBB ESGRating = "BBB"
	RatingBB  ESGRating = "BB"
	RatingB   ESGRating = "B"
	RatingCCC ESGRating = "CCC"
)

// CDPScore is a Carbon Disclosure Project letter grade.
type CDPScore string

// ESGData holds a company's sustainability scores (0-100) and external rating.
type ESGData struct {
	Overall       int       `json:"overall"`
	Environmental int       `json:"environmental"`
	Social        int       `json:"social"`
	Governance    int       `json:"governance"`
	Rating        ESGRating `json:"rating"`
	LastUpdated   string    `json:"lastUpdated"`
}

// ClimateData holds a company's emissions and climate-target disclosures.
// Scope figures are metric tons CO2e; carbon intensity is tCO2e per $M revenue.
type ClimateData struct {
	Scope1          float64  `json:"scope1"`
	Scope2          float64  `json:"scope2"`
	Scope3          float64  `json:"scope3"`
	CarbonIntensity float64  `json:"carbonIntensity"`
	RenewableEnergy float64  `json:"renewableEnergy"`
	NetZeroTarget   *int     `json:"netZeroTarget"`
	CDPScore        CDPScore `json:"cdpScore"`
}

// Company is a static reference entry, defined at build time and never
// mutated at runtime.
type Company struct {
	Ticker      string      `json:"ticker"`
	Name        string      `json:"name"`
	Sector      Sector      `json:"sector"`
	Country     string      `json:"country"`
	Description string      `json:"description"`
	ESG         ESGData     `json:"esg"`
	Climate     ClimateData `json:"climate"`
}
