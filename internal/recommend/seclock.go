package recommend

// SecLock recommends hardware from the SecLock wholesale catalog, which
// aggregates multiple manufacturers.
type SecLock struct{}

func (d *SecLock) Info() Info {
	return Info{
		ID:      "seclock",
		Name:    "SecLock",
		Website: "https://www.seclock.com",
	}
}

func (d *SecLock) Recommend(spec Spec) []Product {
	var recs []Product
	add := func(manufacturer string, p Product) {
		p.Distributor = "SecLock (" + manufacturer + ")"
		recs = append(recs, p)
	}

	// Oversized or metal-clad doors get heavy-duty hardware.
	heavy := spec.Width > 42 || spec.Height > 84 ||
		spec.Material == "steel" || spec.Material == "fiberglass"

	if spec.Commercial() || spec.FireRated {
		if heavy {
			add("LCN", Product{
				Name:         "LCN 4040XP Series Heavy Duty Door Closer",
				Category:     "Door Closers",
				Description:  "Extra heavy-duty cast iron door closer for high-traffic openings.",
				URL:          "https://www.seclock.com/catalog/price-books/lcn",
				ModelNumbers: []string{"4040XP", "4040XP-CUSH"},
				Features:     []string{"Cast iron construction", "Adjustable closing speeds", "ADA compliant options"},
				PriceRange:   "$280-$550",
			})
		} else {
			add("Norton", Product{
				Name:         "Norton 7500 Series Door Closer",
				Category:     "Door Closers",
				Description:  "Architectural grade surface door closer with precision-machined components.",
				URL:          "https://www.seclock.com/catalog/price-books/norton",
				ModelNumbers: []string{"7500", "7500H"},
				Features:     []string{"Tri-style mounting", "Adjustable closing speeds"},
				PriceRange:   "$200-$400",
			})
		}
	}

	if spec.WantsHardware("lockset") || spec.WantsHardware("deadbolt") || spec.Commercial() {
		if spec.Commercial() {
			add("Schlage", Product{
				Name:         "Schlage ND Series Cylindrical Lock",
				Category:     "Commercial Locks",
				Description:  "Heavy-duty cylindrical lever lock, BHMA Grade 1 certified.",
				URL:          "https://www.seclock.com/catalog/price-books/schlage",
				ModelNumbers: []string{"ND50PD", "ND80PD"},
				Features:     []string{"Grade 1 certified", "UL listed for 3-hour fire doors"},
				PriceRange:   "$180-$400",
			})
		} else {
			add("Schlage", Product{
				Name:         "Schlage ALX Series Cylindrical Lock",
				Category:     "Cylindrical Locks",
				Description:  "Commercial-grade cylindrical lock for mid-range applications.",
				URL:          "https://www.seclock.com/catalog/price-books/schlage",
				ModelNumbers: []string{"ALX50P", "ALX70P"},
				Features:     []string{"ANSI/BHMA Grade 2", "Easy rekeying"},
				PriceRange:   "$120-$250",
			})
		}
	}

	if spec.WantsHardware("deadbolt") {
		add("Schlage", Product{
			Name:         "Schlage B Series Commercial Deadbolt",
			Category:     "Commercial Deadbolts",
			Description:  "Heavy-duty commercial deadbolt with Grade 1 security.",
			URL:          "https://www.seclock.com/catalog/price-books/schlage",
			ModelNumbers: []string{"B560P", "B562P"},
			Features:     []string{"ANSI Grade 1", "1\" throw bolt"},
			PriceRange:   "$100-$250",
		})
	}

	if heavy {
		add("McKinney", Product{
			Name:         "McKinney TA2714 Heavy Weight Hinge",
			Category:     "Hinges",
			Description:  "Five-knuckle architectural hinge for heavy doors in high-frequency applications.",
			URL:          "https://www.seclock.com/catalog/price-books/mckinney",
			ModelNumbers: []string{"TA2714"},
			Features:     []string{"Heavy weight bearing", "Ball bearing"},
			PriceRange:   "$25-$60 each",
		})
	} else {
		add("Hager", Product{
			Name:         "Hager BB1279 Full Mortise Hinge",
			Category:     "Hinges",
			Description:  "Standard weight ball bearing hinge for commercial interior doors.",
			URL:          "https://www.seclock.com/catalog/price-books/hager",
			ModelNumbers: []string{"BB1279"},
			Features:     []string{"Ball bearing", "Multiple finishes"},
			PriceRange:   "$15-$40 each",
		})
	}

	if spec.FireRated {
		add("NGP", Product{
			Name:         "NGP Door Smoke Seal",
			Category:     "Fire Door Seals",
			Description:  "Intumescent smoke seal for fire-rated door assemblies.",
			URL:          "https://www.seclock.com/catalog/price-books/ngp",
			ModelNumbers: []string{"970", "970N"},
			Features:     []string{"UL listed", "Expands with heat"},
			PriceRange:   "$20-$60",
		})
	}

	if spec.DoorType == "exterior-entry" {
		add("Pemko", Product{
			Name:         "Pemko S88 Door Bottom Seal",
			Category:     "Weatherstripping",
			Description:  "Heavy-duty aluminum door bottom with silicone seal.",
			URL:          "https://www.seclock.com/catalog/price-books/pemko",
			ModelNumbers: []string{"S88D", "S88BL"},
			Features:     []string{"Silicone insert", "Sound reduction"},
			PriceRange:   "$30-$80",
		})
	}

	return recs
}
