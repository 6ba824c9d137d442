// MarriageBroker — marriage candidates, acceptance odds, dowries, and
// alliance execution. Invoked by the host on demand, not on the tick.
package diplomacy

import (
	"fmt"
	"log/slog"
	"math"

	"github.com/talgya/crowncourt/internal/realm"
	"github.com/talgya/crowncourt/internal/royals"
)

// Marriage tuning constants.
const (
	marriageMinAge      = 16.0
	marriageBaseChance  = 0.3
	marriageMaxChance   = 0.95
	marriageRelationDiv = 200.0

	relationOnMarriage = 30.0
	relationOnRejected = -10.0
)

// Dowry is the resource grant paid to the player on a successful alliance.
type Dowry struct {
	Gold     int `json:"gold"`
	Soldiers int `json:"soldiers"`
}

// Candidate is an heir available for a marriage alliance.
type Candidate struct {
	Person      *royals.Person `json:"person"`
	KingdomID   string         `json:"kingdom_id"`
	KingdomName string         `json:"kingdom_name"`
	Relation    float64        `json:"relation"`
	Chance      float64        `json:"chance"`
	Dowry       Dowry          `json:"dowry"`
}

// ProposalResult reports the outcome of a marriage proposal.
type ProposalResult struct {
	Accepted  bool           `json:"accepted"`
	Chance    float64        `json:"chance"`
	Spouse    *royals.Person `json:"spouse,omitempty"`
	KingdomID string         `json:"kingdom_id"`
	Dowry     Dowry          `json:"dowry"`
}

// GetCandidates lists every eligible heir across all active kingdoms with
// relation >= 0: alive, unmarried, opposite gender to the seeker, and of
// marriageable age. Candidates carry their acceptance chance and dowry.
func (c *Core) GetCandidates(seekerGender royals.Gender, diplomacyBonus float64) []Candidate {
	c.mu.Lock()
	defer c.mu.Unlock()

	var out []Candidate
	for _, k := range c.kingdoms {
		if !k.Active() {
			continue
		}
		rel := c.relations.Get(k.ID)
		if rel < 0 {
			continue
		}
		for _, h := range k.Heirs {
			if !h.Alive || h.Married || h.Gender == seekerGender || h.Age < marriageMinAge {
				continue
			}
			out = append(out, Candidate{
				Person:      h.Clone(),
				KingdomID:   k.ID,
				KingdomName: k.Name,
				Relation:    rel,
				Chance:      marriageChance(rel, diplomacyBonus),
				Dowry:       CalculateDowry(k, h),
			})
		}
	}
	return out
}

// CalculateDowry computes the grant a kingdom offers with an heir.
// Gold starts at a tenth of the kingdom's wealth; a beautiful heir raises
// it by half, a wise one by a further three tenths, in that order.
func CalculateDowry(k *realm.Kingdom, heir *royals.Person) Dowry {
	gold := math.Floor(float64(k.Wealth) * 0.1)
	if heir.HasTrait(royals.TraitBeautiful) {
		gold *= 1.5
	}
	if heir.HasTrait(royals.TraitWise) {
		gold *= 1.3
	}
	return Dowry{
		Gold:     int(gold),
		Soldiers: int(math.Floor(float64(k.Strength) * 0.05)),
	}
}

// ProposeMarriage asks for a candidate's hand on behalf of a seeker.
// Returns ErrCandidateNotFound when the candidate is not an eligible heir
// of any kingdom. On rejection the kingdom's relation drops.
func (c *Core) ProposeMarriage(candidateID, seekerID string, diplomacyBonus float64) (ProposalResult, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	k, heir := c.findHeir(candidateID)
	if heir == nil {
		return ProposalResult{}, fmt.Errorf("candidate %q: %w", candidateID, ErrCandidateNotFound)
	}

	rel := c.relations.Get(k.ID)
	chance := marriageChance(rel, diplomacyBonus)

	if c.rng.Float() < chance {
		return c.executeMarriage(heir, k, seekerID, chance), nil
	}

	c.relations.Adjust(k.ID, relationOnRejected)
	slog.Info("marriage proposal rejected", "kingdom", k.Name, "candidate", heir.Name)
	c.emit(Event{
		Day:         c.day,
		Kind:        EventMarriageRejected,
		Description: fmt.Sprintf("%s of %s has declined the proposal", heir.Name, k.Name),
		KingdomID:   k.ID,
		KingdomName: k.Name,
		Person:      heir.Clone(),
		SeekerID:    seekerID,
	})
	return ProposalResult{Accepted: false, Chance: chance, KingdomID: k.ID}, nil
}

// executeMarriage finalizes an accepted alliance: the heir is married off,
// relations warm, and the dowry is credited to the player's treasury.
// Downstream family bookkeeping consumes the emitted event. Callers hold c.mu.
func (c *Core) executeMarriage(heir *royals.Person, k *realm.Kingdom, seekerID string, chance float64) ProposalResult {
	heir.Married = true
	c.relations.Adjust(k.ID, relationOnMarriage)

	dowry := CalculateDowry(k, heir)
	if c.treasury != nil {
		c.treasury.CreditGold(dowry.Gold)
	}

	slog.Info("marriage alliance formed",
		"kingdom", k.Name,
		"spouse", heir.Name,
		"dowry_gold", dowry.Gold,
		"dowry_soldiers", dowry.Soldiers,
	)
	c.emit(Event{
		Day:         c.day,
		Kind:        EventMarriageFormed,
		Description: fmt.Sprintf("%s of %s has joined the player's dynasty", heir.Name, k.Name),
		KingdomID:   k.ID,
		KingdomName: k.Name,
		Person:      heir.Clone(),
		SeekerID:    seekerID,
		Dowry:       &dowry,
	})

	return ProposalResult{
		Accepted:  true,
		Chance:    chance,
		Spouse:    heir.Clone(),
		KingdomID: k.ID,
		Dowry:     dowry,
	}
}

// SendGift spends treasury gold to warm relations with a kingdom.
// The relation gain is a tenth of the gold, capped at 25 per gift.
func (c *Core) SendGift(kingdomID string, gold int) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	k, ok := c.byID[kingdomID]
	if !ok || !k.Active() {
		return fmt.Errorf("kingdom %q: %w", kingdomID, ErrKingdomNotFound)
	}
	if gold <= 0 {
		return fmt.Errorf("gift of %d gold: amount must be positive", gold)
	}
	if c.treasury != nil {
		if err := c.treasury.DebitGold(gold); err != nil {
			return fmt.Errorf("gift to %s: %w", k.Name, err)
		}
	}

	gain := float64(gold) / 10.0
	if gain > 25 {
		gain = 25
	}
	c.relations.Adjust(k.ID, gain)

	slog.Info("gift sent", "kingdom", k.Name, "gold", gold, "relation_gain", gain)
	c.emit(Event{
		Day:         c.day,
		Kind:        EventGiftSent,
		Description: fmt.Sprintf("A gift of %d gold was sent to %s", gold, k.Name),
		KingdomID:   k.ID,
		KingdomName: k.Name,
	})
	return nil
}

// findHeir locates a living, unmarried heir by ID across active kingdoms.
func (c *Core) findHeir(personID string) (*realm.Kingdom, *royals.Person) {
	for _, k := range c.kingdoms {
		if !k.Active() {
			continue
		}
		for _, h := range k.Heirs {
			if h.ID == personID && h.Alive && !h.Married {
				return k, h
			}
		}
	}
	return nil, nil
}

// marriageChance is the acceptance probability for a proposal.
func marriageChance(relation, diplomacyBonus float64) float64 {
	chance := marriageBaseChance + relation/marriageRelationDiv + diplomacyBonus
	if chance > marriageMaxChance {
		chance = marriageMaxChance
	}
	return chance
}
