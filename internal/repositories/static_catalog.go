package repositories

import "wayfare/internal/models/trip_models"

// staticRegions is the whole reference dataset. Durations are minutes, costs
// are US dollars per person.
var staticRegions = []trip_models.Region{
	{
		ID:     "blue-ridge-va",
		Name:   "Blue Ridge Mountains, VA",
		Center: trip_models.Coordinate{Latitude: 37.8961, Longitude: -79.0653},
		Weather: trip_models.Weather{
			Condition:    "Partly cloudy",
			TemperatureC: 21.0,
		},
		POIs: []trip_models.POI{
			{
				ID:            "humpback-rocks",
				Name:          "Humpback Rocks",
				Category:      "hiking",
				DurationMins:  60,
				Cost:          0,
				Location:      trip_models.Coordinate{Latitude: 37.9687, Longitude: -78.8967},
				BestVisitTime: trip_models.VisitMorning,
			},
			{
				ID:            "natural-bridge",
				Name:          "Natural Bridge State Park",
				Category:      "nature",
				DurationMins:  90,
				Cost:          15,
				Location:      trip_models.Coordinate{Latitude: 37.6290, Longitude: -79.5436},
				BestVisitTime: trip_models.VisitAfternoon,
			},
			{
				ID:            "peaks-of-otter",
				Name:          "Peaks of Otter",
				Category:      "hiking",
				DurationMins:  150,
				Cost:          0,
				Location:      trip_models.Coordinate{Latitude: 37.4446, Longitude: -79.6076},
				BestVisitTime: trip_models.VisitMorning,
			},
			{
				ID:            "mabry-mill",
				Name:          "Mabry Mill",
				Category:      "history",
				DurationMins:  45,
				Cost:          0,
				Location:      trip_models.Coordinate{Latitude: 36.7507, Longitude: -80.4056},
				BestVisitTime: trip_models.VisitAfternoon,
			},
			{
				ID:            "blue-ridge-music-center",
				Name:          "Blue Ridge Music Center",
				Category:      "culture",
				DurationMins:  75,
				Cost:          10,
				Location:      trip_models.Coordinate{Latitude: 36.5676, Longitude: -80.8365},
				BestVisitTime: trip_models.VisitEvening,
			},
			{
				ID:            "tuckahoe-orchard",
				Name:          "Tuckahoe Apple Orchard",
				Category:      "food",
				DurationMins:  40,
				Cost:          12,
				Location:      trip_models.Coordinate{Latitude: 37.7320, Longitude: -79.2214},
				BestVisitTime: trip_models.VisitAnytime,
			},
		},
	},
	{
		ID:     "shenandoah-va",
		Name:   "Shenandoah Valley, VA",
		Center: trip_models.Coordinate{Latitude: 38.5322, Longitude: -78.4366},
		Weather: trip_models.Weather{
			Condition:    "Sunny",
			TemperatureC: 24.5,
		},
		POIs: []trip_models.POI{
			{
				ID:            "old-rag",
				Name:          "Old Rag Mountain",
				Category:      "hiking",
				DurationMins:  330,
				Cost:          1,
				Location:      trip_models.Coordinate{Latitude: 38.5514, Longitude: -78.3160},
				BestVisitTime: trip_models.VisitMorning,
			},
			{
				ID:            "luray-caverns",
				Name:          "Luray Caverns",
				Category:      "nature",
				DurationMins:  90,
				Cost:          32,
				Location:      trip_models.Coordinate{Latitude: 38.6640, Longitude: -78.4836},
				BestVisitTime: trip_models.VisitAnytime,
			},
			{
				ID:            "dark-hollow-falls",
				Name:          "Dark Hollow Falls",
				Category:      "hiking",
				DurationMins:  80,
				Cost:          0,
				Location:      trip_models.Coordinate{Latitude: 38.5208, Longitude: -78.4306},
				BestVisitTime: trip_models.VisitMorning,
			},
			{
				ID:            "skyline-overlook",
				Name:          "Skyline Drive Overlook",
				Category:      "scenic",
				DurationMins:  30,
				Cost:          0,
				Location:      trip_models.Coordinate{Latitude: 38.6303, Longitude: -78.3450},
				BestVisitTime: trip_models.VisitEvening,
			},
			{
				ID:            "heritage-market",
				Name:          "Shenandoah Heritage Market",
				Category:      "food",
				DurationMins:  45,
				Cost:          20,
				Location:      trip_models.Coordinate{Latitude: 38.3901, Longitude: -78.9475},
				BestVisitTime: trip_models.VisitAfternoon,
			},
		},
	},
	{
		ID:     "outer-banks-nc",
		Name:   "Outer Banks, NC",
		Center: trip_models.Coordinate{Latitude: 35.9582, Longitude: -75.6201},
		Weather: trip_models.Weather{
			Condition:    "Windy",
			TemperatureC: 26.0,
		},
		POIs: []trip_models.POI{
			{
				ID:            "wright-brothers",
				Name:          "Wright Brothers National Memorial",
				Category:      "history",
				DurationMins:  90,
				Cost:          10,
				Location:      trip_models.Coordinate{Latitude: 36.0157, Longitude: -75.6679},
				BestVisitTime: trip_models.VisitMorning,
			},
			{
				ID:            "cape-hatteras-light",
				Name:          "Cape Hatteras Lighthouse",
				Category:      "scenic",
				DurationMins:  60,
				Cost:          10,
				Location:      trip_models.Coordinate{Latitude: 35.2519, Longitude: -75.5288},
				BestVisitTime: trip_models.VisitAfternoon,
			},
			{
				ID:            "jockeys-ridge",
				Name:          "Jockey's Ridge State Park",
				Category:      "nature",
				DurationMins:  75,
				Cost:          0,
				Location:      trip_models.Coordinate{Latitude: 35.9640, Longitude: -75.6326},
				BestVisitTime: trip_models.VisitEvening,
			},
			{
				ID:            "roanoke-festival-park",
				Name:          "Roanoke Island Festival Park",
				Category:      "history",
				DurationMins:  120,
				Cost:          11,
				Location:      trip_models.Coordinate{Latitude: 35.9094, Longitude: -75.6674},
				BestVisitTime: trip_models.VisitAfternoon,
			},
			{
				ID:            "duck-donuts",
				Name:          "Duck Donuts",
				Category:      "food",
				DurationMins:  20,
				Cost:          8,
				Location:      trip_models.Coordinate{Latitude: 36.1699, Longitude: -75.7549},
				BestVisitTime: trip_models.VisitMorning,
			},
		},
	},
}
