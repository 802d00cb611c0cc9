package repository

import "bean-market/internal/domain"

// seedProducts returns the demo catalog the marketplace launches with.
func seedProducts() []domain.Product {
	return []domain.Product{
		{
			ID:            "p1",
			Name:          "Ethiopian Yirgacheffe",
			Origin:        "Ethiopia",
			Description:   "A bright and complex coffee with floral and citrus notes. Grown in the highlands of Ethiopia, this coffee is known for its distinctive floral bouquet and bright acidity.",
			Price:         14.99,
			ImageURL:      "https://images.pexels.com/photos/4820769/pexels-photo-4820769.jpeg",
			StockQuantity: 50,
			SoldQuantity:  15,
			RoastLevel:    "Light",
			Process:       "Washed",
			FlavorNotes:   []string{"Jasmine", "Lemon", "Bergamot", "Honey"},
			IsOrganic:     true,
			Acidity:       "High",
			Body:          "Light",
			Altitude:      "1,900 - 2,200 MASL",
			Farm:          "Various smallholder farms",
			HarvestPeriod: "October - December",
			Varieties:     "Heirloom",
			Rating:        4.8,
			Seller:        "Sunshine Roasters",
		},
		{
			ID:            "p2",
			Name:          "Colombian Supremo",
			Origin:        "Colombia",
			Description:   "A balanced and smooth coffee with notes of caramel and chocolate. Grown in the Huila region of Colombia, this coffee offers the classic Colombian profile with a rich sweetness.",
			Price:         12.99,
			ImageURL:      "https://images.pexels.com/photos/4820778/pexels-photo-4820778.jpeg",
			StockQuantity: 75,
			SoldQuantity:  25,
			RoastLevel:    "Medium",
			Process:       "Washed",
			FlavorNotes:   []string{"Caramel", "Chocolate", "Hazelnut", "Red Apple"},
			IsOrganic:     false,
			Acidity:       "Medium",
			Body:          "Medium",
			Altitude:      "1,600 - 1,900 MASL",
			Farm:          "El Paraiso",
			HarvestPeriod: "April - July",
			Varieties:     "Castillo, Colombia",
			Rating:        4.5,
			Seller:        "Mountain Peak Coffee",
		},
		{
			ID:            "p3",
			Name:          "Sumatra Mandheling",
			Origin:        "Indonesia",
			Description:   "A full-bodied, earthy coffee with low acidity and notes of cedar and spice. This coffee undergoes wet-hulling, a unique processing method that contributes to its distinctive character.",
			Price:         13.49,
			ImageURL:      "https://images.pexels.com/photos/2074122/pexels-photo-2074122.jpeg",
			StockQuantity: 30,
			SoldQuantity:  10,
			RoastLevel:    "Dark",
			Process:       "Wet-Hulled",
			FlavorNotes:   []string{"Cedar", "Spice", "Dark Chocolate", "Earthy"},
			IsOrganic:     false,
			Acidity:       "Low",
			Body:          "Full",
			Altitude:      "1,200 - 1,500 MASL",
			Farm:          "Various smallholder farms",
			Varieties:     "Ateng, Jember",
			Rating:        4.3,
			Seller:        "Pacific Traders",
		},
		{
			ID:            "p4",
			Name:          "Costa Rican Tarrazu",
			Origin:        "Costa Rica",
			Description:   "A clean and bright coffee with notes of citrus and honey. Grown in the Tarrazu region, known for producing some of Costa Rica's finest coffees.",
			Price:         14.29,
			ImageURL:      "https://images.pexels.com/photos/2536991/pexels-photo-2536991.jpeg",
			StockQuantity: 40,
			SoldQuantity:  18,
			RoastLevel:    "Medium",
			Process:       "Washed",
			FlavorNotes:   []string{"Orange", "Honey", "Almond", "Toffee"},
			IsOrganic:     true,
			Acidity:       "Medium-High",
			Body:          "Medium",
			Altitude:      "1,400 - 1,800 MASL",
			Farm:          "La Pastora",
			HarvestPeriod: "December - March",
			Varieties:     "Caturra, Catuai",
			Rating:        4.6,
			Seller:        "Tropical Beans Co.",
		},
		{
			ID:            "p5",
			Name:          "Kenyan AA",
			Origin:        "Kenya",
			Description:   "A bold and juicy coffee with complex fruity acidity and notes of blackcurrant and tomato. Kenyan coffees are known for their distinctive winey acidity and full flavor.",
			Price:         15.99,
			ImageURL:      "https://images.pexels.com/photos/2363305/pexels-photo-2363305.jpeg",
			StockQuantity: 25,
			SoldQuantity:  12,
			RoastLevel:    "Medium-Light",
			Process:       "Washed",
			FlavorNotes:   []string{"Blackcurrant", "Tomato", "Blackberry", "Brown Sugar"},
			IsOrganic:     false,
			Acidity:       "High",
			Body:          "Medium-Full",
			Altitude:      "1,700 - 2,000 MASL",
			Varieties:     "SL28, SL34, Ruiru 11",
			Rating:        4.7,
			Seller:        "Safari Roasters",
		},
		{
			ID:            "p6",
			Name:          "Guatemala Antigua",
			Origin:        "Guatemala",
			Description:   "A rich and complex coffee with notes of chocolate, caramel, and spice. Grown in the Antigua Valley, surrounded by volcanoes, which contribute to the rich soil.",
			Price:         13.99,
			ImageURL:      "https://images.pexels.com/photos/6103104/pexels-photo-6103104.jpeg",
			StockQuantity: 35,
			SoldQuantity:  15,
			RoastLevel:    "Medium-Dark",
			Process:       "Washed",
			FlavorNotes:   []string{"Chocolate", "Caramel", "Cinnamon", "Orange"},
			IsOrganic:     false,
			Acidity:       "Medium",
			Body:          "Medium-Full",
			Altitude:      "1,500 - 1,700 MASL",
			Farm:          "La Flor del Café",
			HarvestPeriod: "January - March",
			Varieties:     "Bourbon, Caturra",
			Rating:        4.5,
			Seller:        "Maya Coffee Traders",
		},
	}
}

// seedReviews returns the demo reviews shipped with the catalog.
func seedReviews() []domain.Review {
	return []domain.Review{
		{
			ID:        "r1",
			ProductID: "p1",
			UserID:    "u1",
			UserName:  "Coffee Lover",
			Rating:    5,
			Title:     "Best Ethiopian I've tried!",
			Content:   "This Yirgacheffe has incredible floral and citrus notes. The aroma alone is worth the price. I brewed it using a V60 and it was absolutely delightful.",
			Date:      "2024-04-15T14:32:00Z",
		},
		{
			ID:        "r2",
			ProductID: "p1",
			UserID:    "u2",
			UserName:  "Jane Smith",
			Rating:    4,
			Title:     "Excellent but pricey",
			Content:   "The flavor profile is amazing - very complex and aromatic. I only wish it was a bit more affordable for everyday drinking. Nevertheless, it's a treat for special mornings.",
			Date:      "2024-04-02T09:15:00Z",
		},
		{
			ID:        "r3",
			ProductID: "p1",
			UserID:    "u3",
			UserName:  "Barista Bob",
			Rating:    5,
			Title:     "Exceptional quality",
			Content:   "As a barista, I'm quite picky about my coffee. This Ethiopian bean is exceptional - perfect acidity, amazing aroma, and it makes a fantastic pour-over. Highly recommended!",
			Date:      "2024-03-27T16:45:00Z",
		},
	}
}
