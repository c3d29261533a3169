package rest

// Seed loads a small demo data set.
func (b *Backend) Seed() {
	for _, a := range []row{
		{"name": "Parking", "icon": "car"},
		{"name": "Toilets", "icon": "restroom"},
		{"name": "Campsite", "icon": "tent"},
		{"name": "Water point", "icon": "droplet"},
	} {
		b.Insert(amenities.name, a)
	}

	b.Insert(companies.name, row{"name": "Kenya Hikers Club", "slug": "kenya-hikers-club", "is_verified": true, "is_active": true, "hike_count": 1})
	b.Insert(companies.name, row{"name": "Rift Valley Treks", "slug": "rift-valley-treks", "is_verified": false, "is_active": true, "hike_count": 0})

	b.Insert(trails.name, row{
		"name": "Ngong Hills", "slug": "ngong-hills", "status": "published",
		"difficulty": "moderate", "distance_km": "12.50", "duration_min": 4.0, "elevation_gain_m": 620,
		"county_slug": "kajiado", "county": row{"id": 2, "name": "Kajiado", "slug": "kajiado"},
		"short_description": "Seven knuckles above the Rift.",
	})
	b.Insert(trails.name, row{
		"name": "Karura Forest Loop", "slug": "karura-forest-loop", "status": "draft",
		"difficulty": "easy", "distance_km": 5.2, "county_slug": "nairobi",
	})

	b.Insert(groupHikes.name, row{
		"title": "Sunrise on Ngong", "slug": "sunrise-on-ngong", "status": "published", "status_label": "Published",
		"is_featured": true, "can_edit": true, "can_delete": true, "can_publish": true, "can_cancel": true,
		"company":  row{"id": 1, "name": "Kenya Hikers Club", "slug": "kenya-hikers-club"},
		"trail":    row{"id": 1, "slug": "ngong-hills", "name": "Ngong Hills", "difficulty": "moderate"},
		"dates":    row{"start_date": "2026-11-07", "start_time": "05:30", "is_multi_day": false},
		"location": row{"type": "trail", "name": "Ngong Hills", "latitude": "-1.3910", "longitude": "36.6400"},
		"pricing":  row{"price": "1500.00", "currency": "KES", "formatted": "KES 1,500", "is_free": false},
	})
}
