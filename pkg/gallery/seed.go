// Copyright 2026 Teradata
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//	http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
package gallery

import "time"

func ts(year int, month time.Month, day, hour, min int) time.Time {
	return time.Date(year, month, day, hour, min, 0, 0, time.UTC)
}

func tsp(year int, month time.Month, day, hour, min int) *time.Time {
	t := ts(year, month, day, hour, min)
	return &t
}

// SeedImages returns the demonstration gallery: six records spanning
// three shoots, with cross-relations inside each shoot.
func SeedImages() []*Image {
	return []*Image{
		{
			ID:         "img_001",
			Filename:   "beach_sunset.jpg",
			Path:       "/gallery/beach_sunset.jpg",
			UploadedAt: ts(2024, time.October, 15, 10, 30),
			CapturedAt: tsp(2024, time.October, 15, 18, 45),
			Location:   "Malibu Beach, California",
			Tags:       []string{"beach", "sunset", "landscape", "nature"},
			Relations:  []string{"img_002", "img_003"},
			Quality:    QualityExcellent,
			Width:      4000,
			Height:     3000,
			Size:       2500000,
		},
		{
			ID:         "img_002",
			Filename:   "beach_people.jpg",
			Path:       "/gallery/beach_people.jpg",
			UploadedAt: ts(2024, time.October, 15, 10, 32),
			CapturedAt: tsp(2024, time.October, 15, 18, 50),
			Location:   "Malibu Beach, California",
			Tags:       []string{"beach", "people", "group photo"},
			Relations:  []string{"img_001", "img_003"},
			Quality:    QualityGood,
			Width:      4000,
			Height:     3000,
			Size:       2300000,
		},
		{
			ID:         "img_003",
			Filename:   "beach_blurry.jpg",
			Path:       "/gallery/beach_blurry.jpg",
			UploadedAt: ts(2024, time.October, 15, 10, 35),
			CapturedAt: tsp(2024, time.October, 15, 19, 0),
			Location:   "Malibu Beach, California",
			Tags:       []string{"beach", "blurry"},
			Relations:  []string{"img_001", "img_002"},
			Quality:    QualityBlurry,
			Width:      4000,
			Height:     3000,
			Size:       2100000,
		},
		{
			ID:         "img_004",
			Filename:   "mountain_hike.jpg",
			Path:       "/gallery/mountain_hike.jpg",
			UploadedAt: ts(2024, time.September, 20, 14, 15),
			CapturedAt: tsp(2024, time.September, 20, 15, 30),
			Location:   "Rocky Mountains, Colorado",
			Tags:       []string{"mountain", "hiking", "landscape"},
			Relations:  []string{"img_005"},
			Quality:    QualityExcellent,
			Width:      3840,
			Height:     2160,
			Size:       1800000,
		},
		{
			ID:         "img_005",
			Filename:   "mountain_selfie.jpg",
			Path:       "/gallery/mountain_selfie.jpg",
			UploadedAt: ts(2024, time.September, 20, 14, 20),
			CapturedAt: tsp(2024, time.September, 20, 15, 45),
			Location:   "Rocky Mountains, Colorado",
			Tags:       []string{"mountain", "selfie", "people"},
			Relations:  []string{"img_004"},
			Quality:    QualityGood,
			Width:      3840,
			Height:     2160,
			Size:       1600000,
		},
		{
			ID:         "img_006",
			Filename:   "city_lights.jpg",
			Path:       "/gallery/city_lights.jpg",
			UploadedAt: ts(2024, time.August, 10, 20, 45),
			CapturedAt: tsp(2024, time.August, 10, 22, 30),
			Location:   "New York City, New York",
			Tags:       []string{"city", "night", "lights", "skyline"},
			Relations:  []string{},
			Quality:    QualityExcellent,
			Width:      5120,
			Height:     3200,
			Size:       3100000,
		},
	}
}
