package ashtakoota

import (
	"fmt"

	"stellar/internal/domain"
)

// Canonical factor names, in scoring order.
const (
	FactorVarna   = "Varna"
	FactorVashya  = "Vashya"
	FactorTara    = "Tara"
	FactorYoni    = "Yoni"
	FactorMaitri  = "Maitri"
	FactorGana    = "Gana"
	FactorBhakoot = "Bhakoot"
	FactorNadi    = "Nadi"
)

const (
	maxTotalRomantic   = 36
	maxTotalFriendship = 32 // Yoni's 4 leave the ceiling when folded
)

var factorNotes = map[string]string{
	FactorVarna:   "Varna (Personality): Based on Moon sign caste classification.",
	FactorVashya:  "Vashya (Dominance/Mutual Influence): Based on Rashi mutual influence.",
	FactorTara:    "Tara (Health): Based on Nakshatra distance.",
	FactorYoni:    "Yoni (Sexual): Based on Nakshatra yoni animal compatibility.",
	FactorMaitri:  "Maitri (Friendship): Based on Moon lord friendship.",
	FactorGana:    "Gana (Temperament): Based on Nakshatra gana type.",
	FactorBhakoot: "Bhakoot (Emotional): Based on Moon sign distance matrix.",
	FactorNadi:    "Nadi (Future Generation): Based on Nakshatra nadi type.",
}

var friendshipNotes = map[string]string{
	FactorYoni:    "Not applicable for friendship. Yoni folded under emotional closeness.",
	FactorBhakoot: "Bhakoot (Emotional): Includes Yoni-derived closeness for friendship.",
	FactorVashya:  "Vashya (Mutual Influence): Based on Rashi mutual influence for friendship compatibility.",
}

// Engine computes ashtakoota verdicts. Stateless and safe for concurrent use;
// external caching belongs to callers, keyed on the three Evaluate inputs.
type Engine struct{}

func NewEngine() *Engine { return &Engine{} }

// Evaluate scores profiles a and b for the given report kind. Both profiles
// are validated before any table lookup; an out-of-range field fails the whole
// evaluation and names the offender.
func (e *Engine) Evaluate(a, b domain.BirthProfile, kind domain.ReportKind) (domain.CompatibilityResult, error) {
	if !kind.Valid() {
		return domain.CompatibilityResult{}, fmt.Errorf("report kind %q: unknown", kind)
	}
	if err := a.Validate(); err != nil {
		return domain.CompatibilityResult{}, fmt.Errorf("profile a: %w", err)
	}
	if err := b.Validate(); err != nil {
		return domain.CompatibilityResult{}, fmt.Errorf("profile b: %w", err)
	}

	factors := resolve(a, b, kind)
	if kind == domain.ReportFriendship {
		factors = foldFriendship(factors)
	}

	res := domain.CompatibilityResult{
		Factors:  factors,
		Total:    sumScores(factors),
		MaxTotal: maxTotalRomantic,
		Dosha:    evaluateDosha(a, b),
	}
	if kind == domain.ReportFriendship {
		res.MaxTotal = maxTotalFriendship
	}
	return res, nil
}

// scoreFactors runs all eight scorers in the resolved orientation and returns
// the romantic-shaped sheet.
func scoreFactors(primary, secondary domain.BirthProfile) []domain.FactorResult {
	ps, ss := Sign(primary.Sign), Sign(secondary.Sign)
	pa, sa := Asterism(primary.Asterism), Asterism(secondary.Asterism)
	factors := []domain.FactorResult{
		{Name: FactorVarna, Score: varnaScore(ps, ss), Max: MaxVarna},
		{Name: FactorVashya, Score: vashyaScore(ps, ss), Max: MaxVashya},
		{Name: FactorTara, Score: taraScore(pa, sa), Max: MaxTara},
		{Name: FactorYoni, Score: yoniScore(pa, sa), Max: MaxYoni},
		{Name: FactorMaitri, Score: maitriScore(ps, ss), Max: MaxMaitri},
		{Name: FactorGana, Score: ganaScore(pa, sa), Max: MaxGana},
		{Name: FactorBhakoot, Score: bhakootScore(ps, ss), Max: MaxBhakoot},
		{Name: FactorNadi, Score: nadiScore(pa, sa), Max: MaxNadi},
	}
	for i := range factors {
		factors[i].Note = factorNotes[factors[i].Name]
	}
	return factors
}

// foldFriendship reshapes a romantic sheet for a friendship report: Yoni is
// absorbed into Bhakoot (capped at Bhakoot's maximum) and zeroed, and the
// affected notes are rewritten. The Yoni slot stays in place at value 0.
func foldFriendship(factors []domain.FactorResult) []domain.FactorResult {
	out := make([]domain.FactorResult, len(factors))
	copy(out, factors)

	var yoni, bhakoot int = -1, -1
	for i, f := range out {
		switch f.Name {
		case FactorYoni:
			yoni = i
		case FactorBhakoot:
			bhakoot = i
		}
	}
	if yoni < 0 || bhakoot < 0 {
		return out
	}

	folded := out[bhakoot].Score + out[yoni].Score
	if folded > MaxBhakoot {
		folded = MaxBhakoot
	}
	out[bhakoot].Score = folded
	out[yoni].Score = 0
	for name, note := range friendshipNotes {
		for i := range out {
			if out[i].Name == name {
				out[i].Note = note
			}
		}
	}
	return out
}
