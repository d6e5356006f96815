package service

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/vasavigrand/vgbilling/internal/bill/domain"
)

var (
	guestNameRe = regexp.MustCompile(`^[a-zA-Z\s]+$`)
	contactRe   = regexp.MustCompile(`^[6-9]\d{9}$`)
)

// validateIssueRequest reports the first violated rule and stops. The order
// mirrors the front-desk form: guest name, contact, dates, then each room in
// index order, then cross-field consistency.
func validateIssueRequest(req domain.IssueRequest) error {
	name := strings.TrimSpace(req.Guest.Name)
	if name == "" {
		return domain.ErrGuestNameRequired
	}
	if len(name) < 2 || !guestNameRe.MatchString(name) {
		return domain.ErrGuestNameInvalid
	}

	if !contactRe.MatchString(strings.TrimSpace(req.Guest.Contact)) {
		return domain.ErrContactInvalid
	}

	if !req.Window.Complete() {
		return domain.ErrDatesRequired
	}
	if _, _, err := req.Window.Resolve(); err != nil {
		return domain.ErrDatesInvalid
	}

	for i, room := range req.Rooms {
		if strings.TrimSpace(room.RoomType) == "" {
			return fmt.Errorf("room %d: %w", i+1, domain.ErrRoomTypeRequired)
		}
		if room.UnitPrice <= 0 {
			return fmt.Errorf("room %d: %w", i+1, domain.ErrUnitPriceInvalid)
		}
		if room.Count < 1 {
			return fmt.Errorf("room %d: %w", i+1, domain.ErrRoomCountInvalid)
		}
		if room.Window != nil {
			if _, _, err := room.Window.MergedWith(req.Window).Resolve(); err != nil {
				return fmt.Errorf("room %d: %w", i+1, domain.ErrDatesInvalid)
			}
		}
		if !room.Override.Valid() {
			return fmt.Errorf("room %d: %w", i+1, domain.ErrOverrideInvalid)
		}
	}

	totalRooms := 0
	for _, room := range req.Rooms {
		totalRooms += room.Count
	}
	if req.RoomsRequested > 0 && req.RoomsRequested != totalRooms {
		return domain.ErrRoomCountMismatch
	}
	if totalRooms < 1 || totalRooms > 20 {
		return domain.ErrRoomsOutOfRange
	}

	if req.Guest.Adults < 1 || req.Guest.Adults > 10 {
		return domain.ErrAdultsOutOfRange
	}
	if req.Guest.Children < 0 || req.Guest.Children > 10 {
		return domain.ErrChildrenOutOfRange
	}

	if !req.BillType.Valid() {
		return domain.ErrBillTypeInvalid
	}
	if !req.Override.Valid() {
		return domain.ErrOverrideInvalid
	}

	return nil
}
