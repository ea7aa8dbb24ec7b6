package catalog

import "github.com/agrilens/agrilens/internal/models"

func year(y int) *int { return &y }

// companies is the tracked universe: 14 food, agriculture, and commodity
// companies. ESG scores and ratings follow MSCI-style grading; climate
// figures are company-reported disclosures (scope totals in tCO2e, carbon
// intensity in tCO2e per $M revenue).
var companies = []models.Company{
	{
		Ticker:      "ADM",
		Name:        "Archer-Daniels-Midland",
		Sector:      models.SectorCommodityTrader,
		Country:     "United States",
		Description: "Global grain originator and oilseed processor turning crops into food ingredients, animal feed, and biofuels.",
		ESG: models.ESGData{
			Overall: 68, Environmental: 64, Social: 70, Governance: 72,
			Rating: models.RatingAA, LastUpdated: "2025-05-12",
		},
		Climate: models.ClimateData{
			Scope1: 12_400_000, Scope2: 3_100_000, Scope3: 58_200_000,
			CarbonIntensity: 162.4, RenewableEnergy: 17.5,
			NetZeroTarget: year(2050), CDPScore: "B",
		},
	},
	{
		Ticker:      "BG",
		Name:        "Bunge Global",
		Sector:      models.SectorCommodityTrader,
		Country:     "United States",
		Description: "Agribusiness and food company connecting farmers to consumers across oilseeds, grains, and edible oils.",
		ESG: models.ESGData{
			Overall: 63, Environmental: 60, Social: 64, Governance: 68,
			Rating: models.RatingA, LastUpdated: "2025-04-28",
		},
		Climate: models.ClimateData{
			Scope1: 6_800_000, Scope2: 1_900_000, Scope3: 71_500_000,
			CarbonIntensity: 148.9, RenewableEnergy: 22.0,
			NetZeroTarget: year(2050), CDPScore: "A-",
		},
	},
	{
		Ticker:      "GIS",
		Name:        "General Mills",
		Sector:      models.SectorFoodManufacturer,
		Country:     "United States",
		Description: "Packaged food manufacturer behind Cheerios, Betty Crocker, and Blue Buffalo, with regenerative agriculture commitments.",
		ESG: models.ESGData{
			Overall: 74, Environmental: 71, Social: 75, Governance: 77,
			Rating: models.RatingAA, LastUpdated: "2025-06-02",
		},
		Climate: models.ClimateData{
			Scope1: 820_000, Scope2: 640_000, Scope3: 11_900_000,
			CarbonIntensity: 68.1, RenewableEnergy: 34.0,
			NetZeroTarget: year(2050), CDPScore: "A-",
		},
	},
	{
		Ticker:      "KHC",
		Name:        "Kraft Heinz",
		Sector:      models.SectorFoodManufacturer,
		Country:     "United States",
		Description: "Global food and beverage company with an iconic condiments and packaged meals portfolio.",
		ESG: models.ESGData{
			Overall: 55, Environmental: 52, Social: 56, Governance: 60,
			Rating: models.RatingBBB, LastUpdated: "2025-03-17",
		},
		Climate: models.ClimateData{
			Scope1: 710_000, Scope2: 530_000, Scope3: 27_300_000,
			CarbonIntensity: 104.6, RenewableEnergy: 12.5,
			NetZeroTarget: year(2050), CDPScore: "B",
		},
	},
	{
		Ticker:      "MDLZ",
		Name:        "Mondelez International",
		Sector:      models.SectorFoodManufacturer,
		Country:     "United States",
		Description: "Snacking giant behind Oreo, Cadbury, and Milka, exposed to cocoa and wheat supply chains.",
		ESG: models.ESGData{
			Overall: 66, Environmental: 63, Social: 68, Governance: 69,
			Rating: models.RatingA, LastUpdated: "2025-05-20",
		},
		Climate: models.ClimateData{
			Scope1: 590_000, Scope2: 480_000, Scope3: 23_800_000,
			CarbonIntensity: 71.3, RenewableEnergy: 27.0,
			NetZeroTarget: year(2050), CDPScore: "A-",
		},
	},
	{
		Ticker:      "TSN",
		Name:        "Tyson Foods",
		Sector:      models.SectorFoodManufacturer,
		Country:     "United States",
		Description: "Largest US protein producer across chicken, beef, and pork, with significant methane and feed footprints.",
		ESG: models.ESGData{
			Overall: 44, Environmental: 38, Social: 46, Governance: 52,
			Rating: models.RatingBB, LastUpdated: "2025-02-11",
		},
		Climate: models.ClimateData{
			Scope1: 5_200_000, Scope2: 2_300_000, Scope3: 38_600_000,
			CarbonIntensity: 86.8, RenewableEnergy: 8.0,
			NetZeroTarget: year(2050), CDPScore: "C",
		},
	},
	{
		Ticker:      "K",
		Name:        "Kellanova",
		Sector:      models.SectorFoodManufacturer,
		Country:     "United States",
		Description: "Snacks-led spinoff of Kellogg's holding Pringles, Cheez-It, and international cereal brands.",
		ESG: models.ESGData{
			Overall: 70, Environmental: 67, Social: 72, Governance: 73,
			Rating: models.RatingAA, LastUpdated: "2025-04-09",
		},
		Climate: models.ClimateData{
			Scope1: 430_000, Scope2: 390_000, Scope3: 9_700_000,
			CarbonIntensity: 63.9, RenewableEnergy: 30.5,
			NetZeroTarget: year(2050), CDPScore: "B",
		},
	},
	{
		Ticker:      "NTR",
		Name:        "Nutrien",
		Sector:      models.SectorAgChemical,
		Country:     "Canada",
		Description: "World's largest fertilizer producer by capacity across potash, nitrogen, and phosphate, plus ag retail.",
		ESG: models.ESGData{
			Overall: 61, Environmental: 55, Social: 64, Governance: 70,
			Rating: models.RatingA, LastUpdated: "2025-05-30",
		},
		Climate: models.ClimateData{
			Scope1: 11_600_000, Scope2: 2_100_000, Scope3: 16_400_000,
			CarbonIntensity: 412.7, RenewableEnergy: 14.0,
			NetZeroTarget: nil, CDPScore: "B",
		},
	},
	{
		Ticker:      "MOS",
		Name:        "The Mosaic Company",
		Sector:      models.SectorAgChemical,
		Country:     "United States",
		Description: "Leading producer of concentrated phosphate and potash crop nutrients for global agriculture.",
		ESG: models.ESGData{
			Overall: 56, Environmental: 50, Social: 58, Governance: 64,
			Rating: models.RatingBBB, LastUpdated: "2025-03-25",
		},
		Climate: models.ClimateData{
			Scope1: 3_900_000, Scope2: 1_700_000, Scope3: 6_200_000,
			CarbonIntensity: 389.5, RenewableEnergy: 21.0,
			NetZeroTarget: year(2040), CDPScore: "B",
		},
	},
	{
		Ticker:      "CF",
		Name:        "CF Industries",
		Sector:      models.SectorAgChemical,
		Country:     "United States",
		Description: "Nitrogen fertilizer manufacturer investing in blue and green ammonia to decarbonize production.",
		ESG: models.ESGData{
			Overall: 58, Environmental: 54, Social: 57, Governance: 66,
			Rating: models.RatingBBB, LastUpdated: "2025-06-14",
		},
		Climate: models.ClimateData{
			Scope1: 9_800_000, Scope2: 1_200_000, Scope3: 7_900_000,
			CarbonIntensity: 681.2, RenewableEnergy: 9.5,
			NetZeroTarget: year(2050), CDPScore: "B-",
		},
	},
	{
		Ticker:      "FMC",
		Name:        "FMC Corporation",
		Sector:      models.SectorAgChemical,
		Country:     "United States",
		Description: "Crop protection pure play developing insecticides, herbicides, and biologicals.",
		ESG: models.ESGData{
			Overall: 65, Environmental: 62, Social: 66, Governance: 68,
			Rating: models.RatingA, LastUpdated: "2025-02-27",
		},
		Climate: models.ClimateData{
			Scope1: 210_000, Scope2: 180_000, Scope3: 2_400_000,
			CarbonIntensity: 88.4, RenewableEnergy: 19.0,
			NetZeroTarget: year(2035), CDPScore: "A-",
		},
	},
	{
		Ticker:      "CTVA",
		Name:        "Corteva Agriscience",
		Sector:      models.SectorSeedsGenetics,
		Country:     "United States",
		Description: "Seed and crop protection company spun from DowDuPont, a leader in germplasm and gene editing.",
		ESG: models.ESGData{
			Overall: 71, Environmental: 69, Social: 71, Governance: 74,
			Rating: models.RatingAA, LastUpdated: "2025-05-06",
		},
		Climate: models.ClimateData{
			Scope1: 640_000, Scope2: 560_000, Scope3: 8_100_000,
			CarbonIntensity: 53.2, RenewableEnergy: 29.0,
			NetZeroTarget: year(2050), CDPScore: "A-",
		},
	},
	{
		Ticker:      "BAYRY",
		Name:        "Bayer",
		Sector:      models.SectorSeedsGenetics,
		Country:     "Germany",
		Description: "Life sciences conglomerate whose Crop Science division leads global seeds and traits after the Monsanto acquisition.",
		ESG: models.ESGData{
			Overall: 52, Environmental: 56, Social: 48, Governance: 50,
			Rating: models.RatingBBB, LastUpdated: "2025-04-18",
		},
		Climate: models.ClimateData{
			Scope1: 1_900_000, Scope2: 1_400_000, Scope3: 13_700_000,
			CarbonIntensity: 72.6, RenewableEnergy: 25.5,
			NetZeroTarget: year(2050), CDPScore: "A-",
		},
	},
	{
		Ticker:      "FFARM.AS",
		Name:        "ForFarmers",
		Sector:      models.SectorAnimalFeed,
		Country:     "Netherlands",
		Description: "European compound feed company supplying complete nutrition programs to livestock farmers.",
		ESG: models.ESGData{
			Overall: 59, Environmental: 57, Social: 60, Governance: 62,
			Rating: models.RatingA, LastUpdated: "2025-03-03",
		},
		Climate: models.ClimateData{
			Scope1: 95_000, Scope2: 41_000, Scope3: 5_600_000,
			CarbonIntensity: 183.7, RenewableEnergy: 16.0,
			NetZeroTarget: year(2050), CDPScore: "B",
		},
	},
}
