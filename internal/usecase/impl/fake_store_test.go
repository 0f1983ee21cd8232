package impl

import (
	"context"
	"slices"
	"sync"
	"time"

	"foodlink/internal/domain/entity"
	"foodlink/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/paulmach/orb"
)

// fakeStore is an in-memory implementation of every repository, used where tests need
// state to carry over between sweep passes.
type fakeStore struct {
	mu        sync.Mutex
	donations map[uuid.UUID]*entity.Donation
	orgs      map[uuid.UUID]*entity.Organization
	logs      []*entity.PickupLog

	// transitionErrs makes TransitionStatus fail for the given donation.
	transitionErrs map[uuid.UUID]error
	adjustCalls    map[uuid.UUID]int
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		donations:      make(map[uuid.UUID]*entity.Donation),
		orgs:           make(map[uuid.UUID]*entity.Organization),
		transitionErrs: make(map[uuid.UUID]error),
		adjustCalls:    make(map[uuid.UUID]int),
	}
}

func (f *fakeStore) addOrganization(score int) *entity.Organization {
	org := &entity.Organization{
		ID:               uuid.New(),
		Name:             "org",
		IsActive:         true,
		IsVerified:       true,
		ReliabilityScore: score,
	}
	f.orgs[org.ID] = org

	return org
}

// addAccepted stores a donation accepted by org at acceptedAt, with its open pickup log.
func (f *fakeStore) addAccepted(org *entity.Organization, acceptedAt time.Time) *entity.Donation {
	orgID := org.ID
	at := acceptedAt
	donation := &entity.Donation{
		ID:             uuid.New(),
		DonorID:        uuid.New(),
		Title:          "bread",
		Category:       entity.FoodCategoryBakery,
		Quantity:       5,
		ExpiryTime:     acceptedAt.Add(6 * time.Hour),
		PickupDeadline: acceptedAt.Add(5 * time.Hour),
		Status:         entity.DonationStatusAccepted,
		AcceptedBy:     &orgID,
		AcceptedAt:     &at,
	}
	f.donations[donation.ID] = donation
	f.logs = append(f.logs, &entity.PickupLog{
		ID:             uuid.New(),
		DonationID:     donation.ID,
		OrganizationID: org.ID,
		AcceptedAt:     acceptedAt,
		Status:         entity.PickupStatusInProgress,
	})

	return donation
}

// addAvailable stores an unclaimed donation with the given pickup deadline.
func (f *fakeStore) addAvailable(pickupDeadline time.Time) *entity.Donation {
	donation := &entity.Donation{
		ID:             uuid.New(),
		DonorID:        uuid.New(),
		Title:          "soup",
		Category:       entity.FoodCategoryCookedMeal,
		Quantity:       8,
		ExpiryTime:     pickupDeadline.Add(time.Hour),
		PickupDeadline: pickupDeadline,
		Status:         entity.DonationStatusAvailable,
	}
	f.donations[donation.ID] = donation

	return donation
}

// accept simulates an organization accepting a donation that is available again.
func (f *fakeStore) accept(donationID uuid.UUID, org *entity.Organization, at time.Time) {
	f.mu.Lock()
	defer f.mu.Unlock()

	d := f.donations[donationID]
	orgID := org.ID
	acceptedAt := at
	d.Status = entity.DonationStatusAccepted
	d.AcceptedBy = &orgID
	d.AcceptedAt = &acceptedAt
	f.logs = append(f.logs, &entity.PickupLog{
		ID:             uuid.New(),
		DonationID:     donationID,
		OrganizationID: org.ID,
		AcceptedAt:     at,
		Status:         entity.PickupStatusInProgress,
	})
}

func (f *fakeStore) donation(id uuid.UUID) *entity.Donation {
	f.mu.Lock()
	defer f.mu.Unlock()

	return cloneDonation(f.donations[id])
}

func (f *fakeStore) score(id uuid.UUID) int {
	f.mu.Lock()
	defer f.mu.Unlock()

	return f.orgs[id].ReliabilityScore
}

func (f *fakeStore) logsFor(donationID uuid.UUID) []*entity.PickupLog {
	f.mu.Lock()
	defer f.mu.Unlock()

	var logs []*entity.PickupLog
	for _, log := range f.logs {
		if log.DonationID == donationID {
			copied := *log
			logs = append(logs, &copied)
		}
	}

	return logs
}

func cloneDonation(d *entity.Donation) *entity.Donation {
	if d == nil {
		return nil
	}
	copied := *d
	copied.ReassignHistory = slices.Clone(d.ReassignHistory)

	return &copied
}

// --- TransactionManager / RepositoryFactory ---

func (f *fakeStore) Execute(_ context.Context, fn func(repository.RepositoryFactory) error) error {
	return fn(f)
}

func (f *fakeStore) NewDonationRepository() repository.DonationRepository         { return f }
func (f *fakeStore) NewOrganizationRepository() repository.OrganizationRepository { return f }
func (f *fakeStore) NewPickupLogRepository() repository.PickupLogRepository       { return f }

// --- DonationRepository ---

func (f *fakeStore) CreateDonation(_ context.Context, donation *entity.Donation) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if donation.ID == uuid.Nil {
		donation.ID = uuid.New()
	}
	f.donations[donation.ID] = cloneDonation(donation)

	return nil
}

func (f *fakeStore) FindDonationByID(_ context.Context, id uuid.UUID) (*entity.Donation, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	d, ok := f.donations[id]
	if !ok {
		return nil, repository.ErrDonationNotFound
	}

	return cloneDonation(d), nil
}

func (f *fakeStore) UpdateDonationDetails(_ context.Context, donation *entity.Donation) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	d, ok := f.donations[donation.ID]
	if !ok {
		return repository.ErrDonationNotFound
	}
	if d.Status != entity.DonationStatusAvailable {
		return repository.ErrDonationStateConflict
	}
	f.donations[donation.ID] = cloneDonation(donation)

	return nil
}

func (f *fakeStore) TransitionStatus(_ context.Context, id uuid.UUID, t entity.DonationTransition) (*entity.Donation, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if err, ok := f.transitionErrs[id]; ok {
		return nil, err
	}

	d, ok := f.donations[id]
	if !ok {
		return nil, repository.ErrDonationNotFound
	}
	if d.Status != t.From {
		return nil, repository.ErrDonationStateConflict
	}
	if t.ExpectedAcceptedBy != nil && (d.AcceptedBy == nil || *d.AcceptedBy != *t.ExpectedAcceptedBy) {
		return nil, repository.ErrDonationStateConflict
	}
	if t.AcceptedBefore != nil && (d.AcceptedAt == nil || d.AcceptedAt.After(*t.AcceptedBefore)) {
		return nil, repository.ErrDonationStateConflict
	}
	if t.PickupDeadlineBefore != nil && d.PickupDeadline.After(*t.PickupDeadlineBefore) {
		return nil, repository.ErrDonationStateConflict
	}

	d.Status = t.To
	if t.ClearAcceptance {
		d.AcceptedBy = nil
		d.AcceptedAt = nil
	}
	if t.AcceptedBy != nil {
		d.AcceptedBy = t.AcceptedBy
	}
	if t.AcceptedAt != nil {
		d.AcceptedAt = t.AcceptedAt
	}
	if t.PickedUpAt != nil {
		d.PickedUpAt = t.PickedUpAt
	}
	if t.DeliveredAt != nil {
		d.DeliveredAt = t.DeliveredAt
	}
	if t.IncrementReassign {
		d.ReassignCount++
	}

	return cloneDonation(d), nil
}

func (f *fakeStore) AppendReassignEntry(_ context.Context, donationID uuid.UUID, entry entity.ReassignEntry) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	d, ok := f.donations[donationID]
	if !ok {
		return repository.ErrDonationNotFound
	}
	d.ReassignHistory = append(d.ReassignHistory, entry)

	return nil
}

func (f *fakeStore) FindOverdueAvailable(_ context.Context, now time.Time, limit int) ([]*entity.Donation, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	var overdue []*entity.Donation
	for _, d := range f.donations {
		if d.Status == entity.DonationStatusAvailable && !d.PickupDeadline.After(now) {
			overdue = append(overdue, cloneDonation(d))
		}
	}
	slices.SortFunc(overdue, func(a, b *entity.Donation) int {
		return a.PickupDeadline.Compare(b.PickupDeadline)
	})
	if limit > 0 && len(overdue) > limit {
		overdue = overdue[:limit]
	}

	return overdue, nil
}

func (f *fakeStore) FindStaleAccepted(_ context.Context, cutoff time.Time, limit int) ([]*entity.Donation, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	var stale []*entity.Donation
	for _, d := range f.donations {
		if d.Status == entity.DonationStatusAccepted && d.AcceptedAt != nil && !d.AcceptedAt.After(cutoff) {
			stale = append(stale, cloneDonation(d))
		}
	}
	slices.SortFunc(stale, func(a, b *entity.Donation) int {
		return a.AcceptedAt.Compare(*b.AcceptedAt)
	})
	if limit > 0 && len(stale) > limit {
		stale = stale[:limit]
	}

	return stale, nil
}

// --- OrganizationRepository ---

func (f *fakeStore) FindOrganizationsNear(_ context.Context, _ orb.Point, _ float64, filter repository.OrganizationFilter) ([]*entity.Organization, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	var orgs []*entity.Organization
	for _, org := range f.orgs {
		if slices.Contains(filter.ExcludeIDs, org.ID) {
			continue
		}
		copied := *org
		orgs = append(orgs, &copied)
	}

	return orgs, nil
}

func (f *fakeStore) FindOrganizationByID(_ context.Context, id uuid.UUID) (*entity.Organization, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	org, ok := f.orgs[id]
	if !ok {
		return nil, repository.ErrOrganizationNotFound
	}
	copied := *org

	return &copied, nil
}

func (f *fakeStore) AdjustReliability(_ context.Context, id uuid.UUID, delta int) (*entity.Organization, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	org, ok := f.orgs[id]
	if !ok {
		return nil, repository.ErrOrganizationNotFound
	}
	f.adjustCalls[id]++
	org.ReliabilityScore = entity.ClampReliability(org.ReliabilityScore + delta)
	copied := *org

	return &copied, nil
}

func (f *fakeStore) SetReliability(_ context.Context, id uuid.UUID, score int) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	org, ok := f.orgs[id]
	if !ok {
		return repository.ErrOrganizationNotFound
	}
	org.ReliabilityScore = entity.ClampReliability(score)

	return nil
}

func (f *fakeStore) ListActiveOrganizationIDs(_ context.Context) ([]uuid.UUID, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	var ids []uuid.UUID
	for id, org := range f.orgs {
		if org.IsActive {
			ids = append(ids, id)
		}
	}

	return ids, nil
}

func (f *fakeStore) FindDeviceTokens(_ context.Context, _ uuid.UUID) ([]string, error) {
	return nil, nil
}

func (f *fakeStore) DeactivateDeviceTokens(_ context.Context, _ []string) error {
	return nil
}

// --- PickupLogRepository ---

func (f *fakeStore) AggregateStats(_ context.Context, _ []uuid.UUID, _ time.Time) (map[uuid.UUID]*entity.OrganizationStats, error) {
	return map[uuid.UUID]*entity.OrganizationStats{}, nil
}

func (f *fakeStore) CreateLog(_ context.Context, log *entity.PickupLog) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	copied := *log
	f.logs = append(f.logs, &copied)

	return nil
}

func (f *fakeStore) advanceLog(donationID, organizationID uuid.UUID, from entity.PickupStatus, apply func(*entity.PickupLog)) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	for _, log := range f.logs {
		if log.DonationID == donationID && log.OrganizationID == organizationID && log.Status == from {
			apply(log)

			return nil
		}
	}

	return repository.ErrPickupLogNotFound
}

func (f *fakeStore) MarkPickedUp(_ context.Context, donationID, organizationID uuid.UUID, pickupTime time.Time) error {
	return f.advanceLog(donationID, organizationID, entity.PickupStatusInProgress, func(log *entity.PickupLog) {
		log.Status = entity.PickupStatusPickedUp
		log.PickupTime = &pickupTime
	})
}

func (f *fakeStore) MarkDelivered(_ context.Context, donationID, organizationID uuid.UUID, deliveryTime time.Time, beneficiaryCount int) error {
	return f.advanceLog(donationID, organizationID, entity.PickupStatusPickedUp, func(log *entity.PickupLog) {
		log.Status = entity.PickupStatusDelivered
		log.DeliveryTime = &deliveryTime
		log.BeneficiaryCount = beneficiaryCount
	})
}

func (f *fakeStore) MarkFailed(_ context.Context, donationID, organizationID uuid.UUID, reason string) error {
	return f.advanceLog(donationID, organizationID, entity.PickupStatusInProgress, func(log *entity.PickupLog) {
		log.Status = entity.PickupStatusFailed
		log.FailureReason = reason
	})
}
