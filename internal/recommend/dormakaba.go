package recommend

// Dormakaba recommends commercial door hardware from the dormakaba catalog.
type Dormakaba struct{}

func (d *Dormakaba) Info() Info {
	return Info{
		ID:      "dormakaba",
		Name:    "Dormakaba",
		Website: "https://www.dormakaba.com/us-en",
	}
}

func (d *Dormakaba) Recommend(spec Spec) []Product {
	var recs []Product
	add := func(p Product) {
		p.Distributor = "Dormakaba"
		recs = append(recs, p)
	}

	if spec.WantsHardware("doorcloser") || spec.Commercial() {
		if spec.Width <= 48 {
			add(Product{
				Name:         "8600 Series Surface Door Closer",
				Category:     "Door Closers",
				Description:  "Heavy-duty surface mounted closer for high-traffic commercial applications.",
				URL:          "https://www.dormakaba.com/us-en/offering/products/door-hardware/door-closers",
				ModelNumbers: []string{"8616", "8626", "8646"},
				Features:     []string{"Adjustable backcheck", "Delayed action option", "Hold-open arm available"},
				PriceRange:   "$150-300",
			})
		}
		add(Product{
			Name:         "RTS88 Concealed Overhead Closer",
			Category:     "Door Closers",
			Description:  "Concealed in-frame closer for a clean architectural appearance.",
			URL:          "https://www.dormakaba.com/us-en/offering/products/door-hardware/door-closers",
			ModelNumbers: []string{"RTS88"},
			Features:     []string{"Concealed installation", "Adjustable backcheck", "Hold-open function"},
			PriceRange:   "$300-500",
		})
	}

	if spec.WantsHardware("lockset") || spec.WantsHardware("handle") {
		if spec.Commercial() {
			add(Product{
				Name:         "8200 Series Mortise Lock",
				Category:     "Mechanical Locks",
				Description:  "Heavy-duty mortise lock for commercial applications.",
				URL:          "https://www.dormakaba.com/us-en/offering/products/door-hardware/mechanical-door-locks",
				ModelNumbers: []string{"8215", "8217", "8225"},
				Features:     []string{"Grade 1 certified", "Fire rated", "Multiple lever styles"},
				PriceRange:   "$300-600",
			})
		}
		add(Product{
			Name:         "W Series Cylindrical Lock",
			Category:     "Mechanical Locks",
			Description:  "Heavy-duty cylindrical lock for commercial and institutional applications.",
			URL:          "https://www.dormakaba.com/us-en/offering/products/door-hardware/mechanical-door-locks",
			ModelNumbers: []string{"W101", "W301", "W501"},
			Features:     []string{"Grade 1 certified", "IC core compatible"},
			PriceRange:   "$150-350",
		})
	}

	if spec.DoorType == "commercial" || (spec.DoorType == "exterior-entry" && spec.Width >= 30) {
		if spec.HasGlass {
			add(Product{
				Name:         "9000NS Narrow Stile Exit Device",
				Category:     "Exit Devices",
				Description:  "Designed for aluminum and glass storefront doors with narrow stile profiles.",
				URL:          "https://www.dormakaba.com/us-en/offering/products/door-hardware/door-hardware-exit-devices",
				ModelNumbers: []string{"9100NS", "9200NS"},
				Features:     []string{"Touch bar operation", "Field reversible"},
				PriceRange:   "$500-900",
			})
		} else if spec.Width >= 30 && spec.Width <= 48 {
			add(Product{
				Name:         "9000 Series Rim Exit Device",
				Category:     "Exit Devices",
				Description:  "Heavy-duty rim exit device for high-traffic emergency egress.",
				URL:          "https://www.dormakaba.com/us-en/offering/products/door-hardware/door-hardware-exit-devices",
				ModelNumbers: []string{"9100", "9200", "9300"},
				Features:     []string{"Grade 1 certified", "Fire rated up to 3 hours", "Dogging function"},
				PriceRange:   "$400-800",
			})
		}
	}

	if spec.FireRated {
		add(Product{
			Name:         "Electromagnetic Door Holder",
			Category:     "Fire/Life Safety",
			Description:  "Holds fire doors open and releases on fire alarm signal.",
			URL:          "https://www.dormakaba.com/us-en/offering/products/door-hardware/firelife-safety-devices",
			ModelNumbers: []string{"EM200", "EM500"},
			Features:     []string{"24V DC operation", "Manual release"},
			PriceRange:   "$100-300",
		})
	}

	return recs
}
