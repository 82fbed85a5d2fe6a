package catalog

import "github.com/BruksfildServices01/barber-booking/internal/models"

func seedRewards() []models.Reward {
	return []models.Reward{
		{ID: "r1", Name: "Free Line-Up", Description: "Get a free line-up with any haircut", PointsRequired: 50, Icon: "scissors", Category: "free-service"},
		{ID: "r2", Name: "10% Off", Description: "10% off your next booking", PointsRequired: 100, Icon: "percent", Category: "discount"},
		{ID: "r3", Name: "Free Beard Trim", Description: "Complimentary beard trim service", PointsRequired: 150, Icon: "scissors", Category: "free-service"},
		{ID: "r4", Name: "20% Off", Description: "20% off any service", PointsRequired: 250, Icon: "percent", Category: "discount"},
		{ID: "r5", Name: "Free Haircut", Description: "One free haircut of your choice", PointsRequired: 500, Icon: "crown", Category: "free-service"},
		{ID: "r6", Name: "VIP Treatment", Description: "Premium hot towel + scalp massage", PointsRequired: 300, Icon: "star", Category: "upgrade"},
	}
}

func seedServices() []models.Service {
	return []models.Service{
		{ID: "s1", Name: "Classic Fade", Description: "Clean fade with precision lining", DurationMin: 30, Price: 35, Category: models.CategoryHaircut},
		{ID: "s2", Name: "Skin Fade", Description: "Ultra-clean skin to hair transition", DurationMin: 40, Price: 40, Category: models.CategoryHaircut},
		{ID: "s3", Name: "Buzz Cut", Description: "Quick and clean all-over buzz", DurationMin: 20, Price: 25, Category: models.CategoryHaircut},
		{ID: "s4", Name: "Taper Cut", Description: "Classic taper with natural finish", DurationMin: 35, Price: 35, Category: models.CategoryHaircut},
		{ID: "s5", Name: "Design Cut", Description: "Custom designs and patterns", DurationMin: 50, Price: 55, Category: models.CategoryHaircut},
		{ID: "s6", Name: "Line-Up", Description: "Sharp edge-up and line work", DurationMin: 15, Price: 20, Category: models.CategoryHaircut},
		{ID: "s7", Name: "Beard Trim", Description: "Shape and trim your beard", DurationMin: 20, Price: 20, Category: models.CategoryBeard},
		{ID: "s8", Name: "Beard Shape-Up", Description: "Define and sculpt your beard", DurationMin: 25, Price: 25, Category: models.CategoryBeard},
		{ID: "s9", Name: "Hot Towel Shave", Description: "Traditional hot towel treatment", DurationMin: 30, Price: 35, Category: models.CategoryBeard},
		{ID: "s10", Name: "Hot Towel Treatment", Description: "Relaxing hot towel service", DurationMin: 15, Price: 15, Category: models.CategoryPremium},
		{ID: "s11", Name: "Scalp Massage", Description: "Therapeutic scalp massage", DurationMin: 20, Price: 25, Category: models.CategoryPremium},
		{ID: "s12", Name: "Hair Coloring", Description: "Professional hair coloring", DurationMin: 60, Price: 80, Category: models.CategoryPremium},
	}
}

const unsplash = "https://images.unsplash.com/"

func seedShops() []models.Barbershop {
	return []models.Barbershop{
		{
			ID:           "1",
			Name:         "Lusaka Gents Salon",
			Address:      "Cairo Road, Lusaka",
			DistanceKm:   0.5,
			Rating:       4.8,
			ReviewCount:  245,
			Images:       []string{unsplash + "photo-1585747860715-2ba37e788b70?w=800", unsplash + "photo-1503951914875-452162b0f3f1?w=800", unsplash + "photo-1621605815971-fbc98d665033?w=800"},
			IsOpen:       true,
			OpeningHours: "8:00 AM - 8:00 PM",
			Phone:        "+260 97 123 4567",
			WaitTimeMin:  15,
			SpecialOffers: []string{
				"15% off first visit",
				"Free beard trim with haircut on Tuesdays",
			},
			Coordinates: models.Coordinates{Lat: -15.4167, Lng: 28.2833},
			Barbers: []models.Barber{
				{ID: "b1", Name: "Marcus Johnson", Avatar: unsplash + "photo-1507003211169-0a1dd7228f2d?w=200", Specialty: "Fades & Designs", Rating: 4.9, Experience: "8 years"},
				{ID: "b2", Name: "Derek Williams", Avatar: unsplash + "photo-1500648767791-00dcc994a43e?w=200", Specialty: "Classic Cuts", Rating: 4.8, Experience: "12 years"},
				{ID: "b3", Name: "Andre Thompson", Avatar: unsplash + "photo-1472099645785-5658abf4ff4e?w=200", Specialty: "Beard Specialist", Rating: 4.7, Experience: "6 years"},
			},
			Services: seedServices(),
			Reviews: []models.Review{
				{ID: "r1", UserName: "James K.", Avatar: unsplash + "photo-1599566150163-29194dcabd36?w=100", Rating: 5, Comment: "Best fade I ever got! Marcus is a true artist.", Date: "2 days ago"},
				{ID: "r2", UserName: "Michael R.", Avatar: unsplash + "photo-1527980965255-d3b416303d12?w=100", Rating: 5, Comment: "Clean shop, professional service. Highly recommend!", Date: "1 week ago"},
				{ID: "r3", UserName: "David L.", Avatar: unsplash + "photo-1560250097-0b93528c311a?w=100", Rating: 4, Comment: "Great experience overall. Will be back.", Date: "2 weeks ago"},
			},
		},
		{
			ID:           "2",
			Name:         "Ndola Elite Barbershop",
			Address:      "President Avenue, Ndola",
			DistanceKm:   1.2,
			Rating:       4.6,
			ReviewCount:  198,
			Images:       []string{unsplash + "photo-1622286342621-4bd786c2447c?w=800", unsplash + "photo-1599351431202-1e0f0137899a?w=800", unsplash + "photo-1493256338651-d82f7acb2b38?w=800"},
			IsOpen:       true,
			OpeningHours: "9:00 AM - 7:00 PM",
			Phone:        "+260 96 234 5678",
			WaitTimeMin:  20,
			SpecialOffers: []string{
				"Student discount with ID",
				"Happy Hour: 2-4 PM",
			},
			Coordinates: models.Coordinates{Lat: -12.9716, Lng: 28.6388},
			Barbers: []models.Barber{
				{ID: "b4", Name: "Carlos Rivera", Avatar: unsplash + "photo-1506794778202-cad84cf45f1d?w=200", Specialty: "Traditional Cuts", Rating: 4.8, Experience: "15 years"},
				{ID: "b5", Name: "Tony Martinez", Avatar: unsplash + "photo-1463453091185-61582044d556?w=200", Specialty: "Modern Styles", Rating: 4.6, Experience: "7 years"},
			},
			Services: seedServices(),
			Reviews: []models.Review{
				{ID: "r4", UserName: "Chris P.", Avatar: unsplash + "photo-1570295999919-56ceb5ecca61?w=100", Rating: 5, Comment: "Old school vibes with modern skills. Love it!", Date: "3 days ago"},
				{ID: "r5", UserName: "Alex M.", Avatar: unsplash + "photo-1580489944761-15a19d654956?w=100", Rating: 4, Comment: "Great atmosphere and service.", Date: "1 week ago"},
			},
		},
		{
			ID:           "3",
			Name:         "Kitwe Royal Cuts",
			Address:      "Freedom Way, Kitwe",
			DistanceKm:   1.8,
			Rating:       4.7,
			ReviewCount:  312,
			Images:       []string{unsplash + "photo-1521590832167-7bcbfaa6381f?w=800", unsplash + "photo-1596362601603-5b81db154520?w=800", unsplash + "photo-1560066984-138dadb4c035?w=800"},
			IsOpen:       true,
			OpeningHours: "8:30 AM - 7:30 PM",
			Phone:        "+260 95 345 6789",
			WaitTimeMin:  10,
			Coordinates:  models.Coordinates{Lat: -12.8131, Lng: 28.2139},
			Barbers: []models.Barber{
				{ID: "b6", Name: "Jaylen Brooks", Avatar: unsplash + "photo-1519085360753-af0119f7cbe7?w=200", Specialty: "Creative Designs", Rating: 4.9, Experience: "10 years"},
				{ID: "b7", Name: "Malik Jackson", Avatar: unsplash + "photo-1522556189639-b150ed9c4330?w=200", Specialty: "Precision Fades", Rating: 4.8, Experience: "9 years"},
				{ID: "b8", Name: "Darius King", Avatar: unsplash + "photo-1492562080023-ab3db95bfbce?w=200", Specialty: "All-Around Expert", Rating: 4.7, Experience: "11 years"},
			},
			Services: seedServices(),
			Reviews: []models.Review{
				{ID: "r6", UserName: "Tyler H.", Avatar: unsplash + "photo-1507003211169-0a1dd7228f2d?w=100", Rating: 5, Comment: "Jaylen did an amazing design cut. Pure talent!", Date: "1 day ago"},
			},
		},
		{
			ID:            "4",
			Name:          "Livingstone Style Barbers",
			Address:       "Mosi-oa-Tunya Road, Livingstone",
			DistanceKm:    2.5,
			Rating:        4.6,
			ReviewCount:   189,
			Images:        []string{unsplash + "photo-1503951914875-452162b0f3f1?w=800", unsplash + "photo-1585747860715-2ba37e788b70?w=800"},
			IsOpen:        true,
			OpeningHours:  "9:00 AM - 8:00 PM",
			Phone:         "+260 97 765 4321",
			WaitTimeMin:   10,
			SpecialOffers: []string{"Loyalty program: 10th cut free"},
			Coordinates:   models.Coordinates{Lat: -14.4309, Lng: 28.4516},
			Barbers: []models.Barber{
				{ID: "b9", Name: "Kevin Brown", Avatar: unsplash + "photo-1542909168-82c3e7fdca5c?w=200", Specialty: "Quick Cuts", Rating: 4.6, Experience: "5 years"},
			},
			Services: seedServices(),
			Reviews: []models.Review{
				{ID: "r7", UserName: "Brandon S.", Avatar: unsplash + "photo-1500648767791-00dcc994a43e?w=100", Rating: 5, Comment: "Fast and efficient. Perfect for busy people.", Date: "4 days ago"},
			},
		},
		{
			ID:           "5",
			Name:         "Kabwe Classic Cuts",
			Address:      "Independence Avenue, Kabwe",
			DistanceKm:   3.2,
			Rating:       4.9,
			ReviewCount:  567,
			Images:       []string{unsplash + "photo-1621605815971-fbc98d665033?w=800", unsplash + "photo-1622286342621-4bd786c2447c?w=800"},
			IsOpen:       true,
			OpeningHours: "8:00 AM - 10:00 PM",
			Phone:        "+1 (555) 567-8901",
			WaitTimeMin:  30,
			SpecialOffers: []string{
				"VIP membership available",
				"Complimentary drinks",
			},
			Coordinates: models.Coordinates{Lat: -17.8536, Lng: 25.8606},
			Barbers: []models.Barber{
				{ID: "b10", Name: "Vincent Cole", Avatar: unsplash + "photo-1507003211169-0a1dd7228f2d?w=200", Specialty: "Celebrity Stylist", Rating: 5.0, Experience: "20 years"},
				{ID: "b11", Name: "Ray Mitchell", Avatar: unsplash + "photo-1500648767791-00dcc994a43e?w=200", Specialty: "Premium Services", Rating: 4.9, Experience: "14 years"},
				{ID: "b12", Name: "Jerome Davis", Avatar: unsplash + "photo-1472099645785-5658abf4ff4e?w=200", Specialty: "Luxury Grooming", Rating: 4.8, Experience: "12 years"},
			},
			Services: seedServices(),
			Reviews: []models.Review{
				{ID: "r8", UserName: "Marcus W.", Avatar: unsplash + "photo-1599566150163-29194dcabd36?w=100", Rating: 5, Comment: "The VIP experience is worth every penny. Top tier!", Date: "2 days ago"},
				{ID: "r9", UserName: "Jordan T.", Avatar: unsplash + "photo-1527980965255-d3b416303d12?w=100", Rating: 5, Comment: "Best barbershop in the city. Period.", Date: "5 days ago"},
			},
		},
	}
}
