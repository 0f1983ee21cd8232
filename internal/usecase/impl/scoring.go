package impl

import (
	"math"
	"strings"
	"time"

	"foodlink/internal/domain/entity"
	"foodlink/internal/errors"
)

// Factor names accepted in matching.weights.
const (
	FactorDistance     = "distance"
	FactorUrgency      = "urgency"
	FactorReliability  = "reliability"
	FactorResponseTime = "responseTime"
	FactorSuccessRate  = "successRate"
	FactorCapacity     = "capacity"
	FactorTimeOfDay    = "timeOfDay"
)

const neutralFactorScore = 50.0

// ErrInvalidScoringWeights is returned when a weight override names an unknown factor,
// is negative, or leaves the model without any positive weight.
var ErrInvalidScoringWeights = errors.New("invalid scoring weights")

// step maps every value up to and including limit to score.
type step struct {
	limit float64
	score float64
}

var (
	urgencySteps = []step{{15, 100}, {30, 90}, {60, 75}, {120, 55}, {240, 35}}
	// Shared by the matching response-time factor and the reliability pickup-speed factor.
	responseTimeSteps = []step{{15, 100}, {30, 85}, {45, 70}, {60, 55}, {90, 40}}
	recencySteps      = []step{{1, 100}, {3, 80}, {7, 60}, {14, 35}}
)

const (
	urgencyFloor      = 15.0
	responseTimeFloor = 25.0
	recencyFloor      = 15.0
)

func stepScore(value float64, steps []step, floor float64) float64 {
	for _, s := range steps {
		if value <= s.limit {
			return s.score
		}
	}

	return floor
}

func clampScore(score float64) float64 {
	return math.Max(0, math.Min(100, score))
}

// FactorInput is everything a factor may look at for one donation/organization pair.
type FactorInput struct {
	Donation     *entity.Donation
	Organization *entity.Organization
	// Stats is nil when the organization has no pickup history.
	Stats      *entity.OrganizationStats
	DistanceKm float64
	RadiusKm   float64
	Now        time.Time
	// TimeOfDay is computed once per ranking call and shared by every candidate.
	TimeOfDay float64
}

// FactorFunc scores one pair on a single axis in [0,100].
type FactorFunc func(in *FactorInput) float64

// Factor is one weighted entry of a ScoringModel.
type Factor struct {
	Name   string
	Weight float64
	Score  FactorFunc
}

// ScoringModel is the declarative weighted sum used to rank candidates.
type ScoringModel struct {
	factors     []Factor
	totalWeight float64
}

func defaultFactors() []Factor {
	return []Factor{
		{Name: FactorDistance, Weight: 0.25, Score: distanceFactor},
		{Name: FactorUrgency, Weight: 0.20, Score: urgencyFactor},
		{Name: FactorReliability, Weight: 0.15, Score: reliabilityFactor},
		{Name: FactorResponseTime, Weight: 0.15, Score: responseTimeFactor},
		{Name: FactorSuccessRate, Weight: 0.10, Score: successRateFactor},
		{Name: FactorCapacity, Weight: 0.10, Score: capacityFactor},
		{Name: FactorTimeOfDay, Weight: 0.05, Score: timeOfDayFactor},
	}
}

// DefaultScoringModel returns the reference weights.
func DefaultScoringModel() *ScoringModel {
	model, _ := NewScoringModel(nil)

	return model
}

// NewScoringModel applies weight overrides, matched case-insensitively by factor name,
// on top of the reference weights.
func NewScoringModel(overrides map[string]float64) (*ScoringModel, error) {
	factors := defaultFactors()

	for name, weight := range overrides {
		idx := -1
		for i := range factors {
			if strings.EqualFold(factors[i].Name, name) {
				idx = i

				break
			}
		}
		if idx < 0 {
			return nil, errors.Wrapf(ErrInvalidScoringWeights, "unknown factor %q", name)
		}
		if weight < 0 || math.IsNaN(weight) {
			return nil, errors.Wrapf(ErrInvalidScoringWeights, "negative weight for %q", name)
		}
		factors[idx].Weight = weight
	}

	var total float64
	for _, f := range factors {
		total += f.Weight
	}
	if total <= 0 {
		return nil, errors.WithStack(ErrInvalidScoringWeights)
	}

	return &ScoringModel{factors: factors, totalWeight: total}, nil
}

// Weights returns the effective weight of every factor.
func (m *ScoringModel) Weights() map[string]float64 {
	weights := make(map[string]float64, len(m.factors))
	for _, f := range m.factors {
		weights[f.Name] = f.Weight
	}

	return weights
}

// Score returns the composite score and the per-factor breakdown. Weights that do not
// sum to one are normalized so the composite stays in [0,100].
func (m *ScoringModel) Score(in *FactorInput) (float64, map[string]float64) {
	breakdown := make(map[string]float64, len(m.factors))

	var composite float64
	for _, f := range m.factors {
		score := clampScore(f.Score(in))
		breakdown[f.Name] = score
		composite += f.Weight * score
	}

	return clampScore(composite / m.totalWeight), breakdown
}

func distanceFactor(in *FactorInput) float64 {
	if in.RadiusKm <= 0 || in.DistanceKm > in.RadiusKm {
		return 0
	}

	return 100 * math.Exp(-2*in.DistanceKm/in.RadiusKm)
}

func urgencyFactor(in *FactorInput) float64 {
	return stepScore(in.Donation.ExpiryTime.Sub(in.Now).Minutes(), urgencySteps, urgencyFloor)
}

func reliabilityFactor(in *FactorInput) float64 {
	return float64(entity.ClampReliability(in.Organization.ReliabilityScore))
}

func responseTimeFactor(in *FactorInput) float64 {
	if in.Stats == nil || in.Stats.AvgResponseMins == nil {
		return neutralFactorScore
	}

	return stepScore(*in.Stats.AvgResponseMins, responseTimeSteps, responseTimeFloor)
}

func successRateFactor(in *FactorInput) float64 {
	if !in.Stats.HasHistory() {
		return neutralFactorScore
	}

	return float64(in.Stats.TotalDelivered) / float64(in.Stats.TotalAccepted) * 100
}

// capacityFactor is full up to the historical average quantity, falls linearly to 60 at the
// historical maximum and decays to 0 at twice the maximum.
func capacityFactor(in *FactorInput) float64 {
	if !in.Stats.HasHistory() || in.Stats.MaxQuantity <= 0 {
		return neutralFactorScore
	}

	quantity := in.Donation.Quantity
	avg, peak := in.Stats.AvgQuantity, in.Stats.MaxQuantity

	switch {
	case quantity <= avg:
		return 100
	case quantity <= peak:
		return 100 - 40*(quantity-avg)/(peak-avg)
	default:
		return math.Max(0, 60*(1-(quantity-peak)/peak))
	}
}

func timeOfDayFactor(in *FactorInput) float64 {
	return in.TimeOfDay
}

// timeOfDayScore penalizes the morning and evening rush windows and late night.
func timeOfDayScore(local time.Time) float64 {
	hour := local.Hour()

	switch {
	case (hour >= 8 && hour < 10) || (hour >= 17 && hour < 20):
		return 60
	case hour >= 22 || hour < 6:
		return 40
	default:
		return 100
	}
}
