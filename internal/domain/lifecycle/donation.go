package lifecycle

import (
	"fmt"
	"time"

	"foodlink/internal/domain/entity"
	domainerrors "foodlink/internal/domain/errors"
)

// MinExpiryLead is the shortest allowed span between now and a donation's expiry.
const MinExpiryLead = 30 * time.Minute

var transitions = map[entity.DonationStatus][]entity.DonationStatus{
	entity.DonationStatusAvailable: {
		entity.DonationStatusAccepted,
		entity.DonationStatusExpired,
		entity.DonationStatusCancelled,
	},
	entity.DonationStatusAccepted: {
		entity.DonationStatusPickedUp,
		entity.DonationStatusAvailable,
		entity.DonationStatusExpired,
	},
	entity.DonationStatusPickedUp: {
		entity.DonationStatusDelivered,
	},
}

// CanTransition reports whether a donation in current may move to target.
func CanTransition(current, target entity.DonationStatus) bool {
	for _, next := range transitions[current] {
		if next == target {
			return true
		}
	}

	return false
}

// Transition returns an invalid-transition error naming current when the move is not allowed.
func Transition(current, target entity.DonationStatus) error {
	if !CanTransition(current, target) {
		return domainerrors.NewInvalidTransitionError(string(current), string(target))
	}

	return nil
}

// ValidateExpiry checks the timing of a new or edited donation against food-safety rules.
func ValidateExpiry(now, preparedAt, expiry, pickupDeadline time.Time, category entity.FoodCategory) error {
	maxShelf, ok := category.MaxShelfLife()
	if !ok {
		return domainerrors.NewShelfLifeViolation(fmt.Sprintf("unknown food category %q", category))
	}

	if preparedAt.After(now) {
		return domainerrors.NewShelfLifeViolation("prepared time must not be in the future")
	}

	if expiry.Before(now.Add(MinExpiryLead)) {
		return domainerrors.NewShelfLifeViolation("expiry time must be at least 30 minutes from now")
	}

	if expiry.After(preparedAt.Add(maxShelf)) {
		return domainerrors.NewShelfLifeViolation(fmt.Sprintf(
			"expiry time exceeds the %s shelf life of %s", category, formatHours(maxShelf)))
	}

	if pickupDeadline.After(expiry) {
		return domainerrors.NewShelfLifeViolation("pickup deadline must not be after expiry time")
	}

	return nil
}

func formatHours(d time.Duration) string {
	return fmt.Sprintf("%dh", int(d.Hours()))
}
