package catalog

import "vipqueens/models"

func seedServices() []models.Service {
	return []models.Service{
		{
			ID:              "service_1",
			Name:            "Basic Haircut & Styling",
			Category:        "Hair Styling",
			Price:           models.PriceRange{Min: 1500, Max: 2500},
			Duration:        "1.5 hours",
			DurationMinutes: 90,
			Description:     "Professional haircut with styling and finishing",
		},
		{
			ID:              "service_2",
			Name:            "Premium Cut & Style",
			Category:        "Hair Styling",
			Price:           models.PriceRange{Min: 2500, Max: 3500},
			Duration:        "2 hours",
			DurationMinutes: 120,
			Description:     "Luxurious haircut with advanced styling techniques",
		},
		{
			ID:              "service_3",
			Name:            "Professional Blow Dry",
			Category:        "Hair Styling",
			Price:           models.PriceRange{Min: 1200, Max: 2000},
			Duration:        "1 hour",
			DurationMinutes: 60,
			Description:     "Expert blow dry with volume and shine",
		},
		{
			ID:              "service_4",
			Name:            "Box Braids",
			Category:        "Hair Braiding",
			Price:           models.PriceRange{Min: 3000, Max: 6000},
			Duration:        "4 hours",
			DurationMinutes: 240,
			Description:     "Beautiful protective box braids in various sizes",
		},
		{
			ID:              "service_5",
			Name:            "Cornrows",
			Category:        "Hair Braiding",
			Price:           models.PriceRange{Min: 2000, Max: 4000},
			Duration:        "2.5 hours",
			DurationMinutes: 150,
			Description:     "Classic cornrow styles with creative patterns",
		},
		{
			ID:              "service_6",
			Name:            "Twist Styles",
			Category:        "Hair Braiding",
			Price:           models.PriceRange{Min: 2500, Max: 5000},
			Duration:        "3 hours",
			DurationMinutes: 180,
			Description:     "Elegant twist styles for all occasions",
		},
		{
			ID:              "service_7",
			Name:            "Deep Conditioning Treatment",
			Category:        "Hair Treatment",
			Price:           models.PriceRange{Min: 1500, Max: 2500},
			Duration:        "1.5 hours",
			DurationMinutes: 90,
			Description:     "Intensive moisture treatment for healthy hair",
		},
		{
			ID:              "service_8",
			Name:            "Protein Hair Treatment",
			Category:        "Hair Treatment",
			Price:           models.PriceRange{Min: 2000, Max: 3000},
			Duration:        "2 hours",
			DurationMinutes: 120,
			Description:     "Strengthening protein treatment for damaged hair",
		},
		{
			ID:              "service_9",
			Name:            "Hot Oil Treatment",
			Category:        "Hair Treatment",
			Price:           models.PriceRange{Min: 1000, Max: 1800},
			Duration:        "1 hour",
			DurationMinutes: 60,
			Description:     "Nourishing hot oil treatment for scalp health",
		},
		{
			ID:              "service_10",
			Name:            "Chemical Relaxer",
			Category:        "Hair Relaxing",
			Price:           models.PriceRange{Min: 2000, Max: 3500},
			Duration:        "2.5 hours",
			DurationMinutes: 150,
			Description:     "Professional chemical relaxer for smooth results",
		},
		{
			ID:              "service_11",
			Name:            "Keratin Treatment",
			Category:        "Hair Relaxing",
			Price:           models.PriceRange{Min: 4000, Max: 6000},
			Duration:        "3 hours",
			DurationMinutes: 180,
			Description:     "Premium keratin treatment for frizz-free hair",
		},
		{
			ID:              "service_12",
			Name:            "Gel Manicure",
			Category:        "Nail Services",
			Price:           models.PriceRange{Min: 1200, Max: 1800},
			Duration:        "1.25 hours",
			DurationMinutes: 75,
			Description:     "Long-lasting gel manicure with chip-resistant finish",
		},
		{
			ID:              "service_13",
			Name:            "Spa Pedicure",
			Category:        "Nail Services",
			Price:           models.PriceRange{Min: 1500, Max: 2000},
			Duration:        "1.5 hours",
			DurationMinutes: 90,
			Description:     "Luxurious spa pedicure with exfoliation and massage",
		},
		{
			ID:              "service_14",
			Name:            "Nail Art Design",
			Category:        "Nail Services",
			Price:           models.PriceRange{Min: 500, Max: 1500},
			Duration:        "1 hour",
			DurationMinutes: 60,
			Description:     "Creative nail art designs and decorations",
		},
	}
}

func seedStaff() []models.Staff {
	weekdays := []string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday"}
	allWeek := append(append([]string{}, weekdays...), "Sunday")

	return []models.Staff{
		{
			ID:          "staff_1",
			Name:        "Catherine",
			Role:        "Senior Stylist & Owner",
			Image:       "https://res.cloudinary.com/deasyoglq/image/upload/v1753684481/catherine_s3vklr.jpg",
			Specialties: []string{"Hair Styling", "Hair Treatment", "Hair Relaxing"},
			IsAvailable: true,
			WorkingHours: models.WorkingHours{
				Start: "06:00",
				End:   "22:00",
				Days:  weekdays,
			},
		},
		{
			ID:          "staff_2",
			Name:        "Njeri",
			Role:        "Hair Specialist",
			Image:       "https://res.cloudinary.com/deasyoglq/image/upload/v1753684481/njeri_i7nxbj.jpg",
			Specialties: []string{"Hair Styling", "Hair Treatment", "Hair Relaxing"},
			IsAvailable: true,
			WorkingHours: models.WorkingHours{
				Start: "06:00",
				End:   "22:00",
				Days:  weekdays,
			},
		},
		{
			ID:          "staff_3",
			Name:        "Ann",
			Role:        "Braiding Expert",
			Image:       "https://res.cloudinary.com/deasyoglq/image/upload/v1753684481/ann_qcjpxg.jpg",
			Specialties: []string{"Hair Braiding"},
			IsAvailable: true,
			WorkingHours: models.WorkingHours{
				Start: "06:00",
				End:   "22:00",
				Days:  weekdays,
			},
		},
		{
			ID:          "staff_4",
			Name:        "Rachael",
			Role:        "Nail Technician",
			Image:       "https://res.cloudinary.com/deasyoglq/image/upload/v1753684481/rachael_r0w9s6.jpg",
			Specialties: []string{"Nail Services"},
			IsAvailable: true,
			WorkingHours: models.WorkingHours{
				Start: "06:00",
				End:   "22:00",
				Days:  allWeek,
			},
		},
	}
}
