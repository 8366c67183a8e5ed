package repository

import "innovated/internal/model"

// SeedCourses returns the demo catalog every fresh store starts with. The
// records carry no IDs; the storage implementation assigns them on insert.
func SeedCourses() []model.Course {
	rating := 49 // 4.9 out of 5
	return []model.Course{
		{
			Title:       "CyberSmart Kids",
			Description: "Learn how to protect yourself and your data from cyber threats in this comprehensive course.",
			Level:       "Beginner",
			Price:       79,
			Instructor:  "Michael",
			Rating:      &rating,
			ImageURL:    "https://images.unsplash.com/photo-1526374965328-7f61d4dc18c5",
			Duration:    "6 weeks",
			Bullets: []string{
				"Threat identification",
				"Password management",
				"Safe browsing habits",
				"Data protection strategies",
			},
			Category:            "cybersecurity",
			DetailedDescription: "Hola~",
		},
	}
}
