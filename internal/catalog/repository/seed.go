package repository

import "github.com/smesiteli/storefront/internal/catalog/domain"

// Seed data for the faucet storefront. Served as-is by the memory
// repository; the postgres repository expects the same rows in its
// categories/products tables.

func SeedCategories() []domain.Category {
	return []domain.Category{
		{ID: "kitchen", Name: "Kitchen Faucets", Slug: "kitchen"},
		{ID: "bathroom", Name: "Bathroom Faucets", Slug: "bathroom"},
		{ID: "shower", Name: "Shower Faucets", Slug: "shower"},
		{ID: "basin", Name: "Basin Faucets", Slug: "basin"},
	}
}

func SeedProducts() []domain.Product {
	return []domain.Product{
		{
			ID:          "1",
			Name:        "GROHE Essence Kitchen Faucet",
			Slug:        "grohe-essence-kitchen",
			Description: "Premium kitchen faucet with a pull-out spout and SilkMove technology for smooth control of temperature and water flow.",
			Price:       18500,
			Currency:    "KGS",
			Images: []string{
				"https://images.unsplash.com/photo-1585847787681-26c7aec6210d",
				"https://images.unsplash.com/photo-1556911220-bff31c812dba",
			},
			Category:     "kitchen",
			Material:     "Brass",
			Finish:       "Chrome",
			Availability: true,
			Rating:       &domain.Rating{Value: 4.8, ReviewCount: 124},
			Features: []string{
				"Pull-out spout",
				"SilkMove technology",
				"Quick-mount system",
				"Ceramic cartridge",
			},
		},
		{
			ID:          "2",
			Name:        "Hansgrohe Logis Bath Faucet",
			Slug:        "hansgrohe-logis-bath",
			Description: "Elegant bathroom faucet with an automatic bath-shower diverter. Quality German engineering.",
			Price:       9800,
			Currency:    "KGS",
			Images: []string{
				"https://images.unsplash.com/photo-1620626011761-996317b8d101",
				"https://images.unsplash.com/photo-1584622650111-993a426fbf0a",
			},
			Category:     "bathroom",
			Material:     "Brass",
			Finish:       "Chrome",
			Availability: true,
			Rating:       &domain.Rating{Value: 4.6, ReviewCount: 89},
			Features: []string{
				"Automatic diverter",
				"EcoSmart water saving",
				"QuickClean system",
				"Thermostatic cartridge",
			},
		},
		{
			ID:          "3",
			Name:        "GROHE Eurosmart Shower Faucet",
			Slug:        "grohe-eurosmart-shower",
			Description: "Modern shower faucet with EcoJoy technology saving up to 50% of water without losing comfort.",
			Price:       7850,
			Currency:    "KGS",
			Images: []string{
				"https://images.unsplash.com/photo-1552321554-5fefe8c9ef14",
				"https://images.unsplash.com/photo-1564540579594-0930edb6de43",
			},
			Category:     "shower",
			Material:     "Brass",
			Finish:       "Chrome",
			Availability: true,
			Rating:       &domain.Rating{Value: 4.7, ReviewCount: 156},
			Features: []string{
				"EcoJoy technology",
				"StarLight chrome coating",
				"Built-in check valve",
				"Quick installation",
			},
		},
		{
			ID:          "4",
			Name:        "Axor Citterio Basin Faucet",
			Slug:        "axor-citterio-basin",
			Description: "Premium designer basin faucet. Italian design by Antonio Citterio.",
			Price:       28900,
			Currency:    "KGS",
			Images: []string{
				"https://images.unsplash.com/photo-1620626011761-996317b8d101",
				"https://images.unsplash.com/photo-1607472586893-edb57bdc0e39",
			},
			Category:     "basin",
			Material:     "Brass",
			Finish:       "Matte chrome",
			Availability: true,
			Rating:       &domain.Rating{Value: 4.9, ReviewCount: 67},
			Features: []string{
				"Antonio Citterio design",
				"AirPower aeration technology",
				"Hansgrohe ceramic cartridge",
				"ComfortZone raised spout",
			},
		},
		{
			ID:          "5",
			Name:        "Blanco Linus-S Kitchen Faucet",
			Slug:        "blanco-linus-s",
			Description: "Functional kitchen faucet with a high spout and an integrated water filtration system.",
			Price:       14450,
			Currency:    "KGS",
			Images: []string{
				"https://images.unsplash.com/photo-1595514535116-52677f421d0a",
				"https://images.unsplash.com/photo-1556911220-bff31c812dba",
			},
			Category:     "kitchen",
			Material:     "Silgranit",
			Finish:       "Anthracite",
			Availability: false,
			Rating:       &domain.Rating{Value: 4.5, ReviewCount: 43},
			Features: []string{
				"High spout",
				"Integrated filtration system",
				"360° swivel",
				"Scratch-resistant coating",
			},
		},
		{
			ID:          "6",
			Name:        "GROHE Grohtherm Thermostatic Shower Faucet",
			Slug:        "grohe-grohtherm-thermostat",
			Description: "Premium thermostatic faucet with TurboStat technology reaching the set temperature instantly.",
			Price:       21950,
			Currency:    "KGS",
			Images: []string{
				"https://images.unsplash.com/photo-1584622650111-993a426fbf0a",
				"https://images.unsplash.com/photo-1552321554-5fefe8c9ef14",
			},
			Category:     "shower",
			Material:     "Brass",
			Finish:       "Chrome",
			Availability: true,
			Rating:       &domain.Rating{Value: 4.9, ReviewCount: 201},
			Features: []string{
				"TurboStat technology",
				"SafeStop scald protection at 38°C",
				"CoolTouch technology",
				"Built-in check valve",
			},
		},
	}
}
