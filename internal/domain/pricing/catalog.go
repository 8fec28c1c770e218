package pricing

import "rrportal/internal/domain/entities"

// Static guideline price catalogs. These mirror the listed prices originally
// quoted to customers per study type and therapeutic area; the breakdown
// prefers them over arithmetic splits whenever every guideline resolves.

var toxicityCatalog = map[string]map[string]float64{
	"Acute Toxicity": {
		"OECD 402 - Acute Dermal Toxicity":                 45000,
		"OECD 403 - Acute Inhalation Toxicity":             85000,
		"OECD 420 - Acute Oral Toxicity (Fixed Dose)":      40000,
		"OECD 423 - Acute Oral Toxicity (Class Method)":    40000,
		"OECD 425 - Acute Oral Toxicity (Up-and-Down)":     48000,
	},
	"Repeated Dose Toxicity": {
		"OECD 407 - 28-Day Oral Toxicity (Rodents)":        185000,
		"OECD 408 - 90-Day Oral Toxicity (Rodents)":        420000,
		"OECD 410 - 21/28-Day Dermal Toxicity":             195000,
		"OECD 412 - 28-Day Inhalation Toxicity":            350000,
	},
	"Local Tolerance": {
		"OECD 404 - Acute Dermal Irritation/Corrosion":     28000,
		"OECD 405 - Acute Eye Irritation/Corrosion":        30000,
		"OECD 406 - Skin Sensitisation (Guinea Pig)":       95000,
		"OECD 429 - Skin Sensitisation (LLNA)":             120000,
	},
	"Genotoxicity": {
		"OECD 471 - Bacterial Reverse Mutation (Ames)":     65000,
		"OECD 474 - Mammalian Erythrocyte Micronucleus":    110000,
		"OECD 475 - Mammalian Bone Marrow Chromosomal Aberration": 125000,
	},
}

var invitroCatalog = map[string]map[string]float64{
	"Cytotoxicity": {
		"ISO 10993-5 - MTT Cytotoxicity":                   25000,
		"Neutral Red Uptake Assay":                         28000,
		"Colony Formation Assay":                           35000,
	},
	"Genotoxicity": {
		"OECD 471 - Bacterial Reverse Mutation (Ames)":     60000,
		"OECD 487 - In Vitro Mammalian Cell Micronucleus":  95000,
		"OECD 473 - In Vitro Chromosomal Aberration":       90000,
	},
	"Dermal Models": {
		"OECD 431 - In Vitro Skin Corrosion (RhE)":         85000,
		"OECD 439 - In Vitro Skin Irritation (RhE)":        80000,
		"OECD 432 - In Vitro 3T3 NRU Phototoxicity":        70000,
		"OECD 437 - Bovine Corneal Opacity (BCOP)":         75000,
	},
}

// ListedPrice resolves a guideline's original listed price for the given
// study type. When the category is known only that therapeutic area is
// consulted; otherwise every area of the study type's catalog is scanned.
func ListedPrice(studyType, category, guideline string) (float64, bool) {
	var catalog map[string]map[string]float64
	switch studyType {
	case entities.StudyTypeToxicity:
		catalog = toxicityCatalog
	case entities.StudyTypeInvitro:
		catalog = invitroCatalog
	default:
		return 0, false
	}

	if category != "" {
		price, ok := catalog[category][guideline]
		return price, ok
	}
	for _, area := range catalog {
		if price, ok := area[guideline]; ok {
			return price, true
		}
	}
	return 0, false
}
