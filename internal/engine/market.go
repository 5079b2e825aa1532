package engine

import "github.com/Annoyingpheonix/Axiom/internal/storage"

// EffectOf decodes a stored skill's effect into its tagged variant.
// Stat is only populated for STAT_BOOST effects.
func EffectOf(s storage.Skill) SkillEffect {
	e := SkillEffect{Kind: EffectKind(s.EffectKind), Value: s.EffectValue}
	if e.Kind == EffectStatBoost && s.EffectStat != nil {
		e.Stat = ParseStat(*s.EffectStat)
	}
	return e
}

// PurchaseOutcome carries the post-purchase state values. Skill is
// non-nil only for SKILL items.
type PurchaseOutcome struct {
	Stats storage.UserStats
	Item  storage.MarketItem
	Skill *storage.Skill
}

// Purchase settles a marketplace purchase. Preconditions are checked
// in order, first failure wins: not already purchased, sufficient
// balance in the item's currency, level, trust. A denial is an
// InputRejectedError and nothing is mutated.
//
// On success the cost is deducted from the matching currency,
// PREMIUM flips isPro (one-way), SKILL yields an unlocked skill
// record, and the item is marked purchased (one-way).
func Purchase(item storage.MarketItem, u storage.UserStats, trustScore float64) (PurchaseOutcome, error) {
	if item.Purchased {
		return PurchaseOutcome{}, InputRejectedError{Reason: "item already purchased"}
	}

	switch Currency(item.Currency) {
	case CurrencyCredits:
		if u.Credits < item.Cost {
			return PurchaseOutcome{}, InputRejectedError{Reason: "insufficient credits"}
		}
	case CurrencyGold:
		if u.Gold < item.Cost {
			return PurchaseOutcome{}, InputRejectedError{Reason: "insufficient gold"}
		}
	default:
		return PurchaseOutcome{}, PayloadError{Field: "currency", Reason: "unknown currency"}
	}

	if u.Level < item.ReqLevel {
		return PurchaseOutcome{}, InputRejectedError{Reason: "level too low"}
	}
	if ClampTrust(trustScore) < item.ReqTrust {
		return PurchaseOutcome{}, InputRejectedError{Reason: "trust score too low"}
	}

	switch Currency(item.Currency) {
	case CurrencyCredits:
		u.Credits -= item.Cost
	case CurrencyGold:
		u.Gold -= item.Cost
	}

	out := PurchaseOutcome{}
	switch ItemType(item.Type) {
	case ItemPremium:
		u.IsPro = true
	case ItemSkill:
		out.Skill = &storage.Skill{
			ID:          item.ID,
			Name:        item.Name,
			Description: item.Description,
			Type:        "ACTIVE",
			Rank:        "Bronze",
			EffectKind:  string(EffectXPBoost),
			EffectValue: 2,
		}
	}

	item.Purchased = true
	out.Stats = u
	out.Item = item
	return out, nil
}
