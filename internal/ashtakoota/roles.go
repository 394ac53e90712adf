package ashtakoota

import "stellar/internal/domain"

// Role resolution decides which profile feeds the order-sensitive scorers as
// primary. For a romantic pair with two specified, opposite binary genders the
// classical roles are fixed: the male profile is primary. Every other pairing
// has no principled orientation, so both orientations are scored in full and
// the strictly higher total wins; an exact tie keeps the (a, b) order.

func genderedRoles(a, b domain.BirthProfile, kind domain.ReportKind) (primary, secondary domain.BirthProfile, ok bool) {
	if kind != domain.ReportRomantic {
		return a, b, false
	}
	switch {
	case a.Gender == domain.GenderMale && b.Gender == domain.GenderFemale:
		return a, b, true
	case a.Gender == domain.GenderFemale && b.Gender == domain.GenderMale:
		return b, a, true
	}
	return a, b, false
}

// resolve returns the oriented eight-factor score sheet. Both branches of the
// dual evaluation run to completion before the totals are compared.
func resolve(a, b domain.BirthProfile, kind domain.ReportKind) []domain.FactorResult {
	if primary, secondary, ok := genderedRoles(a, b, kind); ok {
		return scoreFactors(primary, secondary)
	}
	forward := scoreFactors(a, b)
	reverse := scoreFactors(b, a)
	if sumScores(reverse) > sumScores(forward) {
		return reverse
	}
	return forward
}

func sumScores(factors []domain.FactorResult) float64 {
	var total float64
	for _, f := range factors {
		total += f.Score
	}
	return total
}
