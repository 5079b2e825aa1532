package agents

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/Annoyingpheonix/Axiom/internal/engine"
)

// VerifierAgent judges submitted evidence for fraud. Implements
// engine.EvidenceVerifier.
type VerifierAgent struct {
	client *Client
}

func NewVerifierAgent(client *Client) *VerifierAgent {
	return &VerifierAgent{client: client}
}

const verifyTemperature = 0.3

type verifyPayload struct {
	FraudScore int    `json:"fraudScore"`
	Confidence int    `json:"confidence"`
	Status     string `json:"status"`
	Notes      string `json:"notes"`
}

func (a *VerifierAgent) VerifyEvidence(ctx context.Context, habitTitle, evidence string, trustScore float64) (*engine.VerificationResult, error) {
	if !a.client.IsConfigured() {
		return nil, fmt.Errorf("GEMINI_API_KEY is not set")
	}

	raw, err := a.client.generate(ctx, verifyPrompt(habitTitle, evidence, trustScore), verifyTemperature)
	if err != nil {
		return nil, err
	}

	var p verifyPayload
	if err := json.Unmarshal([]byte(raw), &p); err != nil {
		return nil, fmt.Errorf("failed to decode verification payload: %w", err)
	}

	return &engine.VerificationResult{
		FraudScore: p.FraudScore,
		Confidence: p.Confidence,
		Status:     engine.VerificationStatus(p.Status),
		Notes:      p.Notes,
	}, nil
}

func verifyPrompt(habitTitle, evidence string, trustScore float64) string {
	return fmt.Sprintf(`You are the Verification Sentinel for a gamified self-improvement system.
A player claims to have completed the habit %q and submitted this evidence:
---
%s
---
Their current trust score is %.1f out of 100. Higher trust warrants more benefit of the doubt; low trust warrants skepticism.

Assess how likely the evidence is fabricated, vague, or copied. Score fraud from 0 (clearly genuine) to 100 (clearly fake), then map it to a status:
- fraudScore below 20: "VERIFIED"
- fraudScore 20 to 50: "SOFT_APPROVE"
- fraudScore above 50: "REJECTED"

Respond with JSON only, matching exactly:
{
  "fraudScore": number,
  "confidence": number,
  "status": "VERIFIED" | "SOFT_APPROVE" | "REJECTED",
  "notes": string
}
Keep notes to one sentence addressed to the player.`, habitTitle, evidence, trustScore)
}
