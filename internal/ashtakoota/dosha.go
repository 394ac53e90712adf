package ashtakoota

import "stellar/internal/domain"

// evaluateDosha reports the classical cancellations. Orientation-independent:
// it sees the raw pair, never the resolved roles, and never touches scores.
//
// Nadi dosha is cancelled whenever the signs match or the asterisms match;
// only a pair differing in both carries it. Bhakoot dosha is cancelled exactly
// when the signs are equal.
func evaluateDosha(a, b domain.BirthProfile) domain.DoshaFlags {
	return domain.DoshaFlags{
		NadiCancelled:    a.Sign == b.Sign || a.Asterism == b.Asterism,
		BhakootCancelled: a.Sign == b.Sign,
	}
}
