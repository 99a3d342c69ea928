package models

import (
	"fmt"
	"time"
)

// Booking is an immutable ledger entry. It references the user by ID only
// (later balance changes do not alter the booking) and carries a by-value
// snapshot of the room's type and price taken at booking time, so a later
// room upsert never rewrites history.
type Booking struct {
	UserID int `json:"userId"`
	RoomID int `json:"roomId"`

	// Snapshot of the room at booking time.
	RoomType      RoomType `json:"roomType"`
	PricePerNight int      `json:"pricePerNight"`

	CheckIn    time.Time `json:"checkIn"`  // inclusive
	CheckOut   time.Time `json:"checkOut"` // exclusive
	BookedOn   time.Time `json:"bookedOn"`
	TotalPrice int       `json:"totalPrice"`
}

// NewBooking captures the room snapshot and fixes the total price forever:
// nights between check-in and check-out times the price per night as it is
// right now. Dates must already be normalized civil dates.
func NewBooking(user *User, room *Room, checkIn, checkOut, bookedOn time.Time) *Booking {
	return &Booking{
		UserID:        user.ID,
		RoomID:        room.ID,
		RoomType:      room.Type,
		PricePerNight: room.PricePerNight,
		CheckIn:       checkIn,
		CheckOut:      checkOut,
		BookedOn:      bookedOn,
		TotalPrice:    Nights(checkIn, checkOut) * room.PricePerNight,
	}
}

func (b Booking) String() string {
	return fmt.Sprintf("Booking [User: %d | Room: %d (%s) | %s to %s | Total: %d | Booked On: %s]",
		b.UserID, b.RoomID, b.RoomType,
		b.CheckIn.Format(DateLayout), b.CheckOut.Format(DateLayout),
		b.TotalPrice, b.BookedOn.Format(DateLayout))
}
