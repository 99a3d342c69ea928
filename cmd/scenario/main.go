// Command scenario replays the reference reservation run against a fresh
// in-memory service: seed rooms and users, attempt a fixed sequence of
// bookings (some designed to fail), re-price a room, then print every
// registry. A rejected booking is reported and the run continues.
package main

import (
	"fmt"
	"log"
	"time"

	"github.com/abdo-isfi/Hotel-Reservation-System/models"
	"github.com/abdo-isfi/Hotel-Reservation-System/services"
)

func main() {
	fmt.Println("=========================================")
	fmt.Println("   HOTEL RESERVATION SYSTEM - TEST RUN   ")
	fmt.Println("=========================================")
	fmt.Println()

	service := services.NewHotelService(services.RealClock{})

	// --- Setup ---
	fmt.Println(">>> 1. Creating Rooms and Users...")
	service.SetRoom(1, models.StandardSuite, 1000)
	service.SetRoom(2, models.JuniorSuite, 2000)
	service.SetRoom(3, models.MasterSuite, 3000)
	fmt.Println("Rooms created.")

	service.SetUser(1, 5000)
	service.SetUser(2, 10000)
	fmt.Println("Users created.")

	june30 := date(2026, time.June, 30)
	july7 := date(2026, time.July, 7)
	july8 := date(2026, time.July, 8)
	july9 := date(2026, time.July, 9)

	// Test 1: 7 nights in room 2 cost 14000; user 1 only has 5000.
	fmt.Println("\n>>> Test 1: User 1 books Room 2 (Too expensive)")
	attemptBooking(service, 1, 2, june30, july7)

	// Test 2: same request with check-in and check-out swapped.
	fmt.Println("\n>>> Test 2: User 1 books Room 2 (Inverted Dates)")
	attemptBooking(service, 1, 2, july7, june30)

	// Test 3: 1 night at 1000; balance 5000 -> 4000.
	fmt.Println("\n>>> Test 3: User 1 books Room 1 (Valid: 1 night)")
	attemptBooking(service, 1, 1, july7, july8)

	// Test 4: overlaps Test 3's stay in room 1.
	fmt.Println("\n>>> Test 4: User 2 books Room 1 (Overlap)")
	attemptBooking(service, 2, 1, july7, july9)

	// Test 5: 1 night at 3000; balance 10000 -> 7000.
	fmt.Println("\n>>> Test 5: User 2 books Room 3 (Valid)")
	attemptBooking(service, 2, 3, july7, july8)

	// Test 6: re-pricing room 1 must not rewrite Test 3's booking.
	fmt.Println("\n>>> Test 6: Modifying Room 1 (STANDARD -> MASTER, 1000 -> 10000)")
	service.SetRoom(1, models.MasterSuite, 10000)
	fmt.Println("Room 1 updated.")

	printAll(service)
	printAllUsers(service)
}

func attemptBooking(service *services.HotelService, userID, roomID int, checkIn, checkOut time.Time) {
	booking, err := service.BookRoom(userID, roomID, checkIn, checkOut)
	if err != nil {
		log.Printf("[FAILURE] %v", err)
		return
	}
	fmt.Printf("Booking confirmed for User %d in Room %d. Cost: %d\n",
		booking.UserID, booking.RoomID, booking.TotalPrice)
}

func printAll(service *services.HotelService) {
	fmt.Println("\n=== PRINT ALL DATA ===")
	fmt.Println("--- Rooms ---")
	for _, room := range service.Rooms() {
		fmt.Println(room)
	}

	fmt.Println("\n--- Bookings (Newest to Oldest) ---")
	bookings := service.BookingsNewestFirst()
	if len(bookings) == 0 {
		fmt.Println("No bookings found.")
	} else {
		for _, booking := range bookings {
			fmt.Println(booking)
		}
	}
	fmt.Println("======================")
}

func printAllUsers(service *services.HotelService) {
	fmt.Println("\n=== PRINT ALL USERS (Newest to Oldest) ===")
	for _, user := range service.UsersNewestFirst() {
		fmt.Println(user)
	}
	fmt.Println("==========================================")
}

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.Local)
}
