package usecase

import "jaybesin/internal/domain/entity"

// Compiled-in catalog and settings used to initialise an empty store and
// as the fallback when the settings singleton has never been saved.

func DefaultSettings() entity.Settings {
	return entity.Settings{
		CompanyName:      "Jaybesin Autos",
		Tagline:          "China's Finest. West Africa's Pride.",
		Email:            "info@jaybesin.com",
		Phone:            "+233 XX XXX XXXX",
		Whatsapp:         "+233XXXXXXXXX",
		Address:          "Accra, Greater Accra, Ghana",
		ShowPricesGlobal: true,
		ShowGhsPrice:     true,
		GhsRate:          16.2,
		AnnBarText:       "🚗 Now taking Pre-Orders for 2025 — Limited slots available. ",
		AnnBarOn:         true,
		HeroSlides: []entity.HeroSlide{
			{Label: "Welcome to Jaybesin Autos"},
		},
		Theme: DefaultTheme(),
		Testimonials: []entity.Testimonial{
			{Name: "Kwame Asante", Role: "Accra, Ghana", Text: "Jaybesin Autos made the whole process seamless. My BYD Han arrived in perfect condition, duties were handled professionally. Highly recommend!", Stars: 5},
			{Name: "Abena Mensah", Role: "Kumasi, Ghana", Text: "Fantastic service. The team guided me through every step. I'm now driving a Haval H6 and saving 40% on fuel costs versus my old petrol car.", Stars: 5},
			{Name: "Kofi Darko", Role: "Takoradi, Ghana", Text: "Pre-ordered my Tank 500 and the tracking system kept me updated throughout. Arrived ahead of schedule. Exceptional business.", Stars: 5},
		},
	}
}

// DefaultTheme is the "Dark Neon" palette.
func DefaultTheme() entity.Theme {
	return entity.Theme{
		Accent1:       "#00E5A0",
		Accent2:       "#00D4FF",
		Accent3:       "#FF6B35",
		Accent4:       "#7B2FFF",
		BgPrimary:     "#050A0E",
		BgSecondary:   "#0A1118",
		BgTertiary:    "#0F1822",
		BgCard:        "#0C141C",
		BgInput:       "#12202C",
		TextPrimary:   "#F0F4FF",
		TextSecondary: "#8B9CC8",
		TextMuted:     "#4A5878",
		BorderHex:     "#1A2E4A",
		NavBg:         "#080C14E8",
		FooterBg:      "#0D1220",
		BtnText:       "#050A0E",
	}
}

func DefaultVehicles() []entity.Vehicle {
	return []entity.Vehicle{
		{ID: "1", Brand: "Xiaomi", Model: "SU7", Year: 2024, Type: "Saloon", Fuel: "Electric", Drivetrain: "AWD", Price: 38500, Duties: 9625, TotalGhana: 48125, Availability: entity.AvailabilityPreorder, ShowPrice: true, Description: "China's answer to the Tesla Model S. Ultra-sleek, loaded with tech, breathtakingly fast.", Specs: map[string]string{"range": "730km", "power": "495hp", "acceleration": "0–100 in 2.78s", "battery": "101kWh"}, Images: []string{}, Emoji: "⚡", Featured: true},
		{ID: "2", Brand: "BYD", Model: "Han EV", Year: 2023, Type: "Saloon", Fuel: "Electric", Drivetrain: "AWD", Price: 29900, Duties: 7475, TotalGhana: 37375, Availability: entity.AvailabilityPreorder, ShowPrice: true, Description: "BYD's flagship luxury sedan with Blade Battery technology and premium interior.", Specs: map[string]string{"range": "605km", "power": "517hp", "acceleration": "0–100 in 3.9s", "battery": "85.4kWh"}, Images: []string{}, Emoji: "🚗", Featured: true},
		{ID: "3", Brand: "Haval", Model: "H6 HEV", Year: 2023, Type: "SUV", Fuel: "Hybrid", Drivetrain: "2WD", Price: 22500, Duties: 5625, TotalGhana: 28125, Availability: entity.AvailabilityInStock, ShowPrice: true, Description: "China's best-selling SUV. Refined, spacious, incredibly fuel-efficient.", Specs: map[string]string{"range": "1050km", "power": "243hp", "acceleration": "0–100 in 7.7s", "engine": "1.5T+Motor"}, Images: []string{}, Emoji: "🚙"},
		{ID: "4", Brand: "Tank", Model: "500 HEV", Year: 2024, Type: "4x4", Fuel: "Hybrid", Drivetrain: "4WD", Price: 58000, Duties: 14500, TotalGhana: 72500, Availability: entity.AvailabilityPreorder, ShowPrice: true, Description: "China's Range Rover — commanding, powerful, and lavish.", Specs: map[string]string{"range": "900km", "power": "342hp+Motor", "acceleration": "0–100 in 5.8s", "engine": "3.0T V6"}, Images: []string{}, Emoji: "🦁", Featured: true},
		{ID: "5", Brand: "Chery", Model: "Tiggo 8 Pro", Year: 2023, Type: "SUV", Fuel: "Gasoline", Drivetrain: "AWD", Price: 18500, Duties: 4625, TotalGhana: 23125, Availability: entity.AvailabilityInStock, ShowPrice: true, Description: "Seven-seater family SUV with Italian-designed interior.", Specs: map[string]string{"range": "550km", "power": "197hp", "acceleration": "0–100 in 7.9s", "engine": "1.6T"}, Images: []string{}, Emoji: "🚐"},
		{ID: "6", Brand: "Geely", Model: "Monjaro", Year: 2023, Type: "SUV", Fuel: "Gasoline", Drivetrain: "AWD", Price: 26000, Duties: 6500, TotalGhana: 32500, Availability: entity.AvailabilityPreorder, ShowPrice: true, Description: "Premium crossover with Volvo-derived technology.", Specs: map[string]string{"range": "600km", "power": "238hp", "acceleration": "0–100 in 7.6s", "engine": "2.0T"}, Images: []string{}, Emoji: "🏔️"},
	}
}

func DefaultChargers() []entity.Charger {
	return []entity.Charger{
		{ID: "1", Name: "AC Home 7kW", Brand: "BYD", Type: "AC", Power: "7kW", Price: 850, Installation: 350, Emoji: "🔌"},
		{ID: "2", Name: "DC Fast 60kW", Brand: "CATL", Type: "DC Fast", Power: "60kW", Price: 8500, Installation: 2200, Emoji: "⚡"},
		{ID: "3", Name: "AC Commercial 22kW", Brand: "Huawei", Type: "AC", Power: "22kW", Price: 2400, Installation: 800, Emoji: "🏢"},
	}
}

func DefaultParts() []entity.Part {
	return []entity.Part{
		{ID: "1", Name: "BYD Blade Battery Cell", Compatible: "BYD Han / Atto 3", Category: "Battery", Price: 1200, Emoji: "🔋"},
		{ID: "2", Name: "Haval H6 Front Bumper", Compatible: "Haval H6 2020-2023", Category: "Body", Price: 380, Emoji: "🚗"},
		{ID: "3", Name: "Geely Brake Pads Set", Compatible: "Geely Coolray / Monjaro", Category: "Brakes", Price: 95, Emoji: "🛑"},
		{ID: "4", Name: "Universal TPMS Sensors 4pc", Compatible: "Universal", Category: "Electronics", Price: 120, Emoji: "📡"},
	}
}

func DefaultOrders() []entity.Order {
	demo := entity.Order{
		ID:       "ACG-2024-001",
		Customer: "Kwame Mensah",
		Email:    "kwame@example.com",
		Phone:    "+233 244 123 456",
		Item:     "Tank 500 HEV",
		Type:     "vehicle",
		Amount:   72500,
		Status:   entity.StatusOceanFreight,
		Date:     "2024-11-15",
		Tracking: []entity.TrackingStep{
			{Step: "Order Confirmed", Done: true, Date: "Nov 15, 2024"},
			{Step: "Payment Received", Done: true, Date: "Nov 16, 2024"},
			{Step: "Sourcing in China", Done: true, Date: "Nov 20, 2024"},
			{Step: "Port Clearance (China)", Done: true, Date: "Dec 02, 2024"},
			{Step: "Ocean Freight", Active: true, Date: "Est. Dec 20, 2024"},
			{Step: "Arrival at Tema Port", Date: "Est. Jan 08, 2025"},
			{Step: "Ghana Customs & Duties", Date: "Est. Jan 14, 2025"},
			{Step: "Ready for Collection", Date: "Est. Jan 20, 2025"},
		},
	}
	demo.DeriveTracking()
	return []entity.Order{demo}
}

func DefaultInquiries() []entity.Inquiry {
	return []entity.Inquiry{
		{ID: "1", Name: "Ama Owusu", Email: "ama@gmail.com", Phone: "+233 20 555 1234", Subject: "BYD Han EV availability", Message: "I'd love to know when the BYD Han EV will be in stock. What are the financing options?", Date: "2024-12-01", Status: entity.InquiryNew, Type: "vehicle"},
		{ID: "2", Name: "Kwabena Boateng", Email: "kb@corp.com", Phone: "+233 54 888 9999", Subject: "EV Charging for Office", Message: "We need 3 × 22kW chargers installed at our corporate HQ.", Date: "2024-12-03", Status: entity.InquiryReplied, Type: "charging"},
	}
}
