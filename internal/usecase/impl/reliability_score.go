package impl

import (
	"math"
	"time"

	"foodlink/internal/domain/entity"
)

const (
	weightDeliverySuccess = 0.40
	weightPickupSpeed     = 0.20
	weightCancellation    = 0.15
	weightCompletion      = 0.15
	weightRecency         = 0.10
)

// ReliabilityScore derives an organization's reliability from its aggregated pickup history.
// ok is false when the organization never accepted a donation.
func ReliabilityScore(stats *entity.OrganizationStats, now time.Time) (score int, ok bool) {
	if !stats.HasHistory() {
		return 0, false
	}

	accepted := float64(stats.TotalAccepted)

	deliverySuccess := float64(stats.TotalDelivered) / accepted * 100

	pickupSpeed := neutralFactorScore
	if stats.AvgResponseMins != nil {
		pickupSpeed = stepScore(*stats.AvgResponseMins, responseTimeSteps, responseTimeFloor)
	}

	failureRate := float64(stats.TotalFailed) / accepted
	cancellation := math.Max(0, 100-200*failureRate)

	completion := math.Min(100, float64(stats.TotalDelivered+stats.TotalPickedUp)/accepted*100)

	recency := recencyFloor
	if stats.LastActivityAt != nil {
		recency = stepScore(now.Sub(*stats.LastActivityAt).Hours()/24, recencySteps, recencyFloor)
	}

	total := weightDeliverySuccess*deliverySuccess +
		weightPickupSpeed*pickupSpeed +
		weightCancellation*cancellation +
		weightCompletion*completion +
		weightRecency*recency

	return entity.ClampReliability(int(math.Round(total))), true
}
