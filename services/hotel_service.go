package services

import (
	"fmt"
	"sync"
	"time"

	"github.com/abdo-isfi/Hotel-Reservation-System/models"
)

// HotelService owns all reservation state: the room registry, the user
// registry and the append-only booking ledger. There are no package-level
// singletons; one long-lived instance is shared by the controllers and the
// scenario driver. Every operation takes the mutex, so the whole
// validate-and-commit pipeline of BookRoom is a single critical section and
// a failed booking leaves no partial effect behind.
type HotelService struct {
	mu       sync.Mutex
	rooms    []*models.Room
	users    []*models.User
	bookings []*models.Booking
	clock    Clock
}

func NewHotelService(clock Clock) *HotelService {
	if clock == nil {
		clock = RealClock{}
	}
	return &HotelService{clock: clock}
}

// SetRoom creates the room on first call and afterwards replaces its type
// and nightly price in place. Bookings made before an update keep their old
// snapshot. Values are accepted as given; rooms are never deleted.
func (s *HotelService) SetRoom(id int, roomType models.RoomType, pricePerNight int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if room := s.findRoom(id); room != nil {
		room.Type = roomType
		room.PricePerNight = pricePerNight
		return
	}
	s.rooms = append(s.rooms, &models.Room{
		ID:            id,
		Type:          roomType,
		PricePerNight: pricePerNight,
	})
}

// SetUser creates the user on first call and afterwards overwrites the
// balance unconditionally, including balances already debited by bookings.
// The creation timestamp is set once and survives later upserts.
func (s *HotelService) SetUser(id, balance int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if user := s.findUser(id); user != nil {
		user.Balance = balance
		return
	}
	s.users = append(s.users, &models.User{
		ID:        id,
		Balance:   balance,
		CreatedAt: s.clock.Now(),
	})
}

// FindRoom returns a copy of the room, if registered.
func (s *HotelService) FindRoom(id int) (models.Room, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if room := s.findRoom(id); room != nil {
		return *room, true
	}
	return models.Room{}, false
}

// FindUser returns a copy of the user, if registered.
func (s *HotelService) FindUser(id int) (models.User, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if user := s.findUser(id); user != nil {
		return *user, true
	}
	return models.User{}, false
}

// BookRoom runs the admissibility pipeline and, if every check passes,
// commits the reservation: it debits the user and appends a booking that
// snapshots the room's current type and price. Checks run in a fixed order
// and the first failure wins; on failure nothing is mutated.
func (s *HotelService) BookRoom(userID, roomID int, checkIn, checkOut time.Time) (models.Booking, error) {
	in := models.CivilDate(checkIn)
	out := models.CivilDate(checkOut)

	s.mu.Lock()
	defer s.mu.Unlock()

	// 1. Dates: check-out strictly after check-in. Same-day stays are
	// rejected here, not treated as zero-cost bookings.
	if !out.After(in) {
		return models.Booking{}, fmt.Errorf("%w: check-out %s must be after check-in %s",
			ErrInvalidDateRange, out.Format(models.DateLayout), in.Format(models.DateLayout))
	}

	// 2. User exists.
	user := s.findUser(userID)
	if user == nil {
		return models.Booking{}, fmt.Errorf("%w: user %d", ErrUserNotFound, userID)
	}

	// 3. Room exists.
	room := s.findRoom(roomID)
	if room == nil {
		return models.Booking{}, fmt.Errorf("%w: room %d", ErrRoomNotFound, roomID)
	}

	// 4. Availability over the half-open range [in, out).
	if !s.roomAvailable(roomID, in, out) {
		return models.Booking{}, fmt.Errorf("%w: room %d is not available from %s to %s",
			ErrRoomUnavailable, roomID, in.Format(models.DateLayout), out.Format(models.DateLayout))
	}

	// 5. Price the stay against the room's current nightly rate.
	cost := models.Nights(in, out) * room.PricePerNight

	// 6. Solvency: a booking must never drive the balance negative.
	if user.Balance < cost {
		return models.Booking{}, fmt.Errorf("%w: cost %d exceeds balance %d",
			ErrInsufficientBalance, cost, user.Balance)
	}

	// 7. Commit.
	user.Balance -= cost
	booking := models.NewBooking(user, room, in, out, models.CivilDate(s.clock.Now()))
	s.bookings = append(s.bookings, booking)
	return *booking, nil
}

// Rooms returns the rooms in insertion order.
func (s *HotelService) Rooms() []models.Room {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]models.Room, 0, len(s.rooms))
	for _, room := range s.rooms {
		out = append(out, *room)
	}
	return out
}

// BookingsNewestFirst returns the ledger reversed. The canonical creation
// order is never mutated; the view is rebuilt on each call.
func (s *HotelService) BookingsNewestFirst() []models.Booking {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]models.Booking, 0, len(s.bookings))
	for i := len(s.bookings) - 1; i >= 0; i-- {
		out = append(out, *s.bookings[i])
	}
	return out
}

// UsersNewestFirst returns the users in reverse insertion order. Insertion
// order, not last activity: an upsert on an existing user does not move it.
func (s *HotelService) UsersNewestFirst() []models.User {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]models.User, 0, len(s.users))
	for i := len(s.users) - 1; i >= 0; i-- {
		out = append(out, *s.users[i])
	}
	return out
}

func (s *HotelService) findRoom(id int) *models.Room {
	for _, room := range s.rooms {
		if room.ID == id {
			return room
		}
	}
	return nil
}

func (s *HotelService) findUser(id int) *models.User {
	for _, user := range s.users {
		if user.ID == id {
			return user
		}
	}
	return nil
}

// roomAvailable reports whether [in, out) is free of overlap with every
// existing booking for the room. Ranges that merely touch (one ends exactly
// when the other begins) do not overlap.
func (s *HotelService) roomAvailable(roomID int, in, out time.Time) bool {
	for _, b := range s.bookings {
		if b.RoomID != roomID {
			continue
		}
		if in.Before(b.CheckOut) && out.After(b.CheckIn) {
			return false
		}
	}
	return true
}
