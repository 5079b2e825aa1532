package engine

import (
	"context"
	"math"

	"github.com/Annoyingpheonix/Axiom/internal/storage"
)

// Trust score adjustments on terminal verification outcomes.
const (
	TrustGainVerified    = 0.5
	TrustLossSoftApprove = 1.0
)

// AttemptState tracks one verification attempt for a habit.
// IDLE → SUBMITTED → {VERIFIED | REJECTED | SOFT_APPROVE | FAILED}.
// FAILED is local (the agent produced nothing usable) and is distinct
// from REJECTED: it charges nothing and the user may resubmit.
type AttemptState string

const (
	AttemptIdle        AttemptState = "IDLE"
	AttemptSubmitted   AttemptState = "SUBMITTED"
	AttemptVerified    AttemptState = "VERIFIED"
	AttemptRejected    AttemptState = "REJECTED"
	AttemptSoftApprove AttemptState = "SOFT_APPROVE"
	AttemptFailed      AttemptState = "FAILED"
)

// VerificationResult is what the evidence-verification capability
// returns. Status is trusted directly; the scores are caller-visible
// metadata, validated but never re-derived.
type VerificationResult struct {
	FraudScore int
	Confidence int
	Status     VerificationStatus
	Notes      string
}

// EvidenceVerifier is the external evidence-verification capability.
type EvidenceVerifier interface {
	VerifyEvidence(ctx context.Context, habitTitle, evidence string, trustScore float64) (*VerificationResult, error)
}

// QuestGenerator is the external quest-authoring capability.
type QuestGenerator interface {
	GenerateQuest(ctx context.Context, goal string, profile storage.UserProfile, class ClassType) (*GeneratedQuest, error)
}

// ValidateVerification rejects malformed verifier payloads outright.
func ValidateVerification(res *VerificationResult) error {
	if res == nil {
		return PayloadError{Field: "result", Reason: "missing"}
	}
	if !res.Status.IsTerminal() {
		return PayloadError{Field: "status", Reason: "not a terminal verification status"}
	}
	if res.FraudScore < 0 || res.FraudScore > 100 {
		return PayloadError{Field: "fraudScore", Reason: "out of range [0,100]"}
	}
	if res.Confidence < 0 || res.Confidence > 100 {
		return PayloadError{Field: "confidence", Reason: "out of range [0,100]"}
	}
	return nil
}

// ApplyTrustDelta returns the trust score after a terminal outcome.
// VERIFIED earns +0.5 capped at 100; SOFT_APPROVE pays out but costs
// 1 trust, floored at 0; REJECTED leaves trust untouched.
func ApplyTrustDelta(trust float64, status VerificationStatus) float64 {
	switch status {
	case StatusVerified:
		return math.Min(100, trust+TrustGainVerified)
	case StatusSoftApprove:
		return math.Max(0, trust-TrustLossSoftApprove)
	default:
		return ClampTrust(trust)
	}
}

// StatusForFraudScore is the documented score-to-status mapping the
// verification agent honors: <20 verified, 20–50 soft approve,
// >50 rejected. Exactly one status per score, no overlap, no gap.
func StatusForFraudScore(score int) VerificationStatus {
	switch {
	case score < 20:
		return StatusVerified
	case score <= 50:
		return StatusSoftApprove
	default:
		return StatusRejected
	}
}

// AttemptStateFor maps a terminal verification status to the attempt
// state it ends in.
func AttemptStateFor(status VerificationStatus) AttemptState {
	switch status {
	case StatusVerified:
		return AttemptVerified
	case StatusRejected:
		return AttemptRejected
	case StatusSoftApprove:
		return AttemptSoftApprove
	default:
		return AttemptFailed
	}
}
