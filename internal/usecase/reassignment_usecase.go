package usecase

import "context"

// SweepResult counts the outcome of one sweep pass
type SweepResult struct {
	Reassigned int `json:"reassigned"`
	Expired    int `json:"expired"`
	Failed     int `json:"failed"`
}

// ReassignmentUsecase recovers donations abandoned after acceptance
type ReassignmentUsecase interface {
	// RunReassignmentSweep handles every stale acceptance once. Per-donation failures are
	// logged and counted; the returned error only reports that the pass could not run.
	RunReassignmentSweep(ctx context.Context) (*SweepResult, error)

	// RunExpirySweep moves available donations past their pickup deadline to expired.
	// Only Expired and Failed are counted.
	RunExpirySweep(ctx context.Context) (*SweepResult, error)
}
