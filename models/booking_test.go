package models

import (
	"testing"
	"time"
)

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

func TestNewBookingSnapshot(t *testing.T) {
	user := &User{ID: 7, Balance: 5000}
	room := &Room{ID: 3, Type: JuniorSuite, PricePerNight: 2000}

	booking := NewBooking(user, room, date(2026, time.June, 30), date(2026, time.July, 7), date(2026, time.June, 1))

	if booking.UserID != 7 || booking.RoomID != 3 {
		t.Errorf("identifiers = user %d room %d", booking.UserID, booking.RoomID)
	}
	if booking.TotalPrice != 7*2000 {
		t.Errorf("total = %d, want 14000", booking.TotalPrice)
	}

	// Later room changes must not reach the booking.
	room.Type = MasterSuite
	room.PricePerNight = 99999
	if booking.RoomType != JuniorSuite || booking.PricePerNight != 2000 {
		t.Errorf("snapshot follows the room: %s/%d", booking.RoomType, booking.PricePerNight)
	}
}

func TestNights(t *testing.T) {
	if n := Nights(date(2026, time.July, 7), date(2026, time.July, 8)); n != 1 {
		t.Errorf("one night = %d", n)
	}
	if n := Nights(date(2026, time.June, 30), date(2026, time.July, 7)); n != 7 {
		t.Errorf("seven nights = %d", n)
	}
}

func TestCivilDate(t *testing.T) {
	loc := time.FixedZone("UTC+5", 5*60*60)
	in := time.Date(2026, time.July, 7, 23, 45, 0, 0, loc)

	got := CivilDate(in)
	want := date(2026, time.July, 7)
	if !got.Equal(want) {
		t.Errorf("CivilDate = %v, want %v", got, want)
	}
}

func TestRoomTypeValid(t *testing.T) {
	for _, rt := range []RoomType{StandardSuite, JuniorSuite, MasterSuite} {
		if !rt.Valid() {
			t.Errorf("%s reported invalid", rt)
		}
	}
	if RoomType("PENTHOUSE").Valid() {
		t.Error("unknown type reported valid")
	}
}
