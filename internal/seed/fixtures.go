package seed

import "tripcatalog/internal/domain"

func f64(v float64) *float64 { return &v }

// Fixture ids are assigned explicitly so hotel/activity/transfer rows and
// the curated itineraries can reference them by number, independent of
// whatever auto-increment state the database carries.
func locationFixtures() []domain.Location {
	return []domain.Location{
		{ID: 1, Name: "Patong Beach", Region: "Phuket", Description: "Phuket's most famous beach resort area, with a wide sandy beach and vibrant nightlife", Latitude: f64(7.8949), Longitude: f64(98.2963)},
		{ID: 2, Name: "Karon Beach", Region: "Phuket", Description: "A long stretch of white sand with crystal clear water, less crowded than Patong", Latitude: f64(7.8429), Longitude: f64(98.2946)},
		{ID: 3, Name: "Kata Beach", Region: "Phuket", Description: "A scenic bay with palm trees and soft white sand, popular with families", Latitude: f64(7.8206), Longitude: f64(98.2959)},
		{ID: 4, Name: "Phuket Town", Region: "Phuket", Description: "The capital of Phuket province with Sino-Portuguese architecture and local markets", Latitude: f64(7.8804), Longitude: f64(98.3923)},
		{ID: 5, Name: "Phi Phi Islands", Region: "Phuket", Description: "A group of stunning islands with limestone cliffs, clear waters and white sand beaches", Latitude: f64(7.7407), Longitude: f64(98.7784)},
		{ID: 6, Name: "Ao Nang", Region: "Krabi", Description: "A central beach town in Krabi with shops, restaurants, and access to nearby islands", Latitude: f64(8.0329), Longitude: f64(98.8268)},
		{ID: 7, Name: "Railay Beach", Region: "Krabi", Description: "A stunning peninsula accessible only by boat, famous for rock climbing and beautiful beaches", Latitude: f64(8.0055), Longitude: f64(98.8371)},
		{ID: 8, Name: "Koh Lanta", Region: "Krabi", Description: "A relaxed island with long beaches and a laid-back atmosphere", Latitude: f64(7.6521), Longitude: f64(99.0409)},
		{ID: 9, Name: "Krabi Town", Region: "Krabi", Description: "The main town in Krabi province with markets, temples and authentic Thai culture", Latitude: f64(8.0863), Longitude: f64(98.9063)},
	}
}

func hotelFixtures() []domain.Hotel {
	return []domain.Hotel{
		{ID: 1, Name: "Patong Resort Hotel", Description: "Comfortable resort close to Patong's beach and nightlife", StarRating: 4.0, LocationID: 1, Address: "208 Rat-Uthit 200 Pi Road, Patong, Kathu, Phuket", PricePerNight: 85.0, Amenities: "Swimming pool, Restaurant, Free WiFi, Spa, Fitness center", ImageURL: "https://example.com/patong_resort.jpg"},
		{ID: 2, Name: "Karon Sea Sands Resort & Spa", Description: "Relaxing resort just steps from Karon Beach", StarRating: 4.0, LocationID: 2, Address: "24 Soi Karon Soi 2, Karon, Muang, Phuket", PricePerNight: 90.0, Amenities: "Swimming pool, Spa, Restaurant, Free WiFi, Tour desk", ImageURL: "https://example.com/karon_sea_sands.jpg"},
		{ID: 3, Name: "Kata Palm Resort & Spa", Description: "Tropical resort with large pools and easy beach access", StarRating: 4.0, LocationID: 3, Address: "60 Kata Road, Kata Beach, Phuket", PricePerNight: 95.0, Amenities: "Swimming pools, Spa, 2 Restaurants, Pool bar, Free WiFi", ImageURL: "https://example.com/kata_palm.jpg"},
		{ID: 4, Name: "The Memory at On On Hotel", Description: "Historic Sino-Portuguese building in Phuket Old Town", StarRating: 3.0, LocationID: 4, Address: "19 Phang Nga Road, Phuket Town", PricePerNight: 45.0, Amenities: "Free WiFi, 24-hour front desk, Tour desk", ImageURL: "https://example.com/on_on_hotel.jpg"},
		{ID: 5, Name: "Phi Phi Island Village Beach Resort", Description: "Luxury beachfront resort with bungalows on Phi Phi Island", StarRating: 4.5, LocationID: 5, Address: "49 Moo 8, Aonang, Muang, Krabi", PricePerNight: 210.0, Amenities: "Private beach, Infinity pool, Dive center, Spa, Multiple restaurants", ImageURL: "https://example.com/phi_phi_village.jpg"},
		{ID: 6, Name: "Aonang Cliff Beach Resort", Description: "Hillside resort with stunning views over Ao Nang Bay", StarRating: 4.0, LocationID: 6, Address: "328 Moo 2, Ao Nang, Muang, Krabi", PricePerNight: 120.0, Amenities: "Infinity pools, Rooftop bar, Spa, Fitness center, Restaurants", ImageURL: "https://example.com/aonang_cliff.jpg"},
		{ID: 7, Name: "Rayavadee", Description: "Luxury resort set amidst tropical gardens surrounded by beaches", StarRating: 5.0, LocationID: 7, Address: "214 Moo 2, Tambon Ao-Nang, Muang, Krabi", PricePerNight: 450.0, Amenities: "Multiple restaurants, Spa, Private beach areas, Free activities, Pavilion-style villas", ImageURL: "https://example.com/rayavadee.jpg"},
		{ID: 8, Name: "Lanta Sand Resort & Spa", Description: "Beachfront resort with beautiful sunset views", StarRating: 4.0, LocationID: 8, Address: "279 Moo 3, Saladan, Koh Lanta", PricePerNight: 105.0, Amenities: "Swimming pools, Spa, Restaurant, Beach bar, Free WiFi", ImageURL: "https://example.com/lanta_sand.jpg"},
		{ID: 9, Name: "The Brown Hotel", Description: "Modern hotel in central Krabi Town", StarRating: 3.5, LocationID: 9, Address: "129 Uttarakit Road, Paknam, Muang, Krabi", PricePerNight: 55.0, Amenities: "Restaurant, Free WiFi, Tour desk, Airport shuttle", ImageURL: "https://example.com/brown_hotel.jpg"},
	}
}

func activityFixtures() []domain.Activity {
	return []domain.Activity{
		{ID: 1, Name: "Bangla Road Night Experience", Description: "Experience Patong's famous nightlife scene along Bangla Road", Duration: 4.0, Price: 30.0, LocationID: 1, ImageURL: "https://example.com/bangla_road.jpg", ActivityType: "Nightlife"},
		{ID: 2, Name: "Patong Beach Day", Description: "Relax on Patong Beach with included sun loungers and umbrella", Duration: 6.0, Price: 15.0, LocationID: 1, ImageURL: "https://example.com/patong_beach.jpg", ActivityType: "Beach"},
		{ID: 3, Name: "Karon Viewpoint Visit", Description: "Visit the famous Karon Viewpoint for spectacular views of three beaches", Duration: 2.0, Price: 25.0, LocationID: 2, ImageURL: "https://example.com/karon_viewpoint.jpg", ActivityType: "Sightseeing"},
		{ID: 4, Name: "Surf Lesson at Kata Beach", Description: "Learn to surf with professional instructors at Kata Beach", Duration: 3.0, Price: 45.0, LocationID: 3, ImageURL: "https://example.com/kata_surf.jpg", ActivityType: "Water Sport"},
		{ID: 5, Name: "Old Phuket Town Walking Tour", Description: "Guided tour of Phuket Town's historic center with Sino-Portuguese architecture", Duration: 3.0, Price: 35.0, LocationID: 4, ImageURL: "https://example.com/phuket_town_tour.jpg", ActivityType: "Cultural Tour"},
		{ID: 6, Name: "Phi Phi Islands Boat Tour", Description: "Full-day speedboat tour of Phi Phi Islands including Maya Bay and snorkeling spots", Duration: 8.0, Price: 85.0, LocationID: 5, ImageURL: "https://example.com/phi_phi_tour.jpg", ActivityType: "Boat Tour"},
		{ID: 7, Name: "Kayaking at Ao Nang", Description: "Guided kayaking tour through the stunning limestone cliffs and lagoons", Duration: 4.0, Price: 40.0, LocationID: 6, ImageURL: "https://example.com/ao_nang_kayak.jpg", ActivityType: "Water Sport"},
		{ID: 8, Name: "Rock Climbing at Railay", Description: "Rock climbing session on Railay's world-famous limestone cliffs for all levels", Duration: 5.0, Price: 65.0, LocationID: 7, ImageURL: "https://example.com/railay_climbing.jpg", ActivityType: "Adventure"},
		{ID: 9, Name: "Four Islands Tour from Railay", Description: "Boat tour to four nearby islands with snorkeling and beach time", Duration: 7.0, Price: 55.0, LocationID: 7, ImageURL: "https://example.com/four_islands.jpg", ActivityType: "Boat Tour"},
		{ID: 10, Name: "Koh Lanta National Park Trip", Description: "Visit to Koh Lanta National Park with hiking and beach time", Duration: 6.0, Price: 50.0, LocationID: 8, ImageURL: "https://example.com/lanta_national_park.jpg", ActivityType: "Nature"},
		{ID: 11, Name: "Krabi Night Market Tour", Description: "Evening tour of Krabi's vibrant night market with food tastings", Duration: 3.0, Price: 25.0, LocationID: 9, ImageURL: "https://example.com/krabi_night_market.jpg", ActivityType: "Food & Culture"},
		{ID: 12, Name: "Tiger Cave Temple Tour", Description: "Visit the famous Tiger Cave Temple with 1,237 steps to panoramic views", Duration: 4.0, Price: 35.0, LocationID: 9, ImageURL: "https://example.com/tiger_cave.jpg", ActivityType: "Cultural Tour"},
		{ID: 13, Name: "Elephant Sanctuary Visit", Description: "Ethical elephant sanctuary visit with feeding and bathing", Duration: 5.0, Price: 70.0, LocationID: 4, ImageURL: "https://example.com/elephant_sanctuary.jpg", ActivityType: "Wildlife"},
		{ID: 14, Name: "Big Buddha Visit", Description: "Trip to Phuket's iconic 45-meter marble Buddha statue with island views", Duration: 3.0, Price: 30.0, LocationID: 4, ImageURL: "https://example.com/big_buddha.jpg", ActivityType: "Cultural Tour"},
		{ID: 15, Name: "Thai Cooking Class", Description: "Learn to cook authentic Thai dishes with local ingredients", Duration: 4.0, Price: 55.0, LocationID: 9, ImageURL: "https://example.com/thai_cooking.jpg", ActivityType: "Food & Culture"},
	}
}

func transferFixtures() []domain.Transfer {
	return []domain.Transfer{
		{ID: 1, OriginID: 4, DestinationID: 1, TransferType: "Car", Duration: 1.0, Price: 20.0, Description: "Private car transfer from Phuket Airport to Patong Beach"},
		{ID: 2, OriginID: 4, DestinationID: 2, TransferType: "Car", Duration: 1.2, Price: 25.0, Description: "Private car transfer from Phuket Town to Karon Beach"},
		{ID: 3, OriginID: 4, DestinationID: 3, TransferType: "Car", Duration: 1.3, Price: 25.0, Description: "Private car transfer from Phuket Town to Kata Beach"},
		{ID: 4, OriginID: 1, DestinationID: 2, TransferType: "Car", Duration: 0.3, Price: 15.0, Description: "Private car transfer between Patong and Karon Beach"},
		{ID: 5, OriginID: 2, DestinationID: 3, TransferType: "Car", Duration: 0.2, Price: 12.0, Description: "Private car transfer between Karon and Kata Beach"},
		{ID: 6, OriginID: 1, DestinationID: 3, TransferType: "Car", Duration: 0.5, Price: 15.0, Description: "Private car transfer between Patong and Kata Beach"},
		{ID: 7, OriginID: 1, DestinationID: 5, TransferType: "Speedboat", Duration: 1.0, Price: 40.0, Description: "Speedboat transfer from Patong to Phi Phi Islands"},
		{ID: 8, OriginID: 5, DestinationID: 1, TransferType: "Speedboat", Duration: 1.0, Price: 40.0, Description: "Speedboat transfer from Phi Phi Islands to Patong"},
		{ID: 9, OriginID: 5, DestinationID: 6, TransferType: "Ferry", Duration: 1.5, Price: 25.0, Description: "Ferry transfer from Phi Phi Islands to Ao Nang"},
		{ID: 10, OriginID: 9, DestinationID: 6, TransferType: "Car", Duration: 0.5, Price: 15.0, Description: "Private car transfer from Krabi Town to Ao Nang"},
		{ID: 11, OriginID: 6, DestinationID: 7, TransferType: "Longtail Boat", Duration: 0.3, Price: 10.0, Description: "Longtail boat transfer from Ao Nang to Railay Beach"},
		{ID: 12, OriginID: 7, DestinationID: 6, TransferType: "Longtail Boat", Duration: 0.3, Price: 10.0, Description: "Longtail boat transfer from Railay Beach to Ao Nang"},
		{ID: 13, OriginID: 6, DestinationID: 8, TransferType: "Minivan + Ferry", Duration: 2.5, Price: 35.0, Description: "Combined minivan and ferry transfer from Ao Nang to Koh Lanta"},
		{ID: 14, OriginID: 1, DestinationID: 6, TransferType: "Minivan", Duration: 3.0, Price: 55.0, Description: "Private minivan transfer from Patong Beach to Ao Nang"},
		{ID: 15, OriginID: 4, DestinationID: 9, TransferType: "Minivan", Duration: 2.5, Price: 45.0, Description: "Private minivan transfer from Phuket Town to Krabi Town"},
	}
}
