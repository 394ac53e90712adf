package ashtakoota

// The eight kootas. Each scorer takes the primary profile's value first; the
// orientation is established by the role resolver before any scorer runs.
// Varna, Tara, Yoni and Nadi are insensitive to the order, the rest are not.

// Factor maxima, in classical order. They sum to 36.
const (
	MaxVarna   = 1
	MaxVashya  = 2
	MaxTara    = 3
	MaxYoni    = 4
	MaxMaitri  = 5
	MaxGana    = 6
	MaxBhakoot = 7
	MaxNadi    = 8
)

// varnaScore awards the point when the primary's caste rank is at least the
// secondary's.
func varnaScore(primary, secondary Sign) float64 {
	if signVarna[primary] >= signVarna[secondary] {
		return 1
	}
	return 0
}

// vashyaScore never returns 0: the classical floor for an uncontrolled pair
// is 1, not an omission in the table.
func vashyaScore(primary, secondary Sign) float64 {
	if v, ok := vashyaOverride[[2]Sign{primary, secondary}]; ok {
		return v
	}
	p, s := signVashya[primary], signVashya[secondary]
	if p == s {
		return 2
	}
	for _, ally := range vashyaAllies[p] {
		if s == ally {
			return 2
		}
	}
	return 1
}

// taraScore counts asterism steps in both directions; a remainder mod 9 of
// 2, 4, 6, 8 or 9 is favorable. Both favorable scores 3, one scores 1.5.
func taraScore(primary, secondary Asterism) float64 {
	favorable := func(from, to Asterism) bool {
		d := (int(to) - int(from)) % 27
		if d < 0 {
			d += 27
		}
		if d == 0 {
			d = 27
		}
		rem := d % 9
		if rem == 0 {
			rem = 9
		}
		switch rem {
		case 2, 4, 6, 8, 9:
			return true
		}
		return false
	}
	f1 := favorable(secondary, primary)
	f2 := favorable(primary, secondary)
	switch {
	case f1 && f2:
		return 3
	case f1 || f2:
		return 1.5
	}
	return 0
}

// yoniScore classifies the unordered animal pair. Sworn enmity outranks
// friendship; unclassified cross-class pairs default to the neutral 2.
func yoniScore(primary, secondary Asterism) float64 {
	a, b := asterismYoni[primary], asterismYoni[secondary]
	if a == b {
		return 4
	}
	key := pairOf(a, b)
	if _, ok := yoniHighlyIncompatible[key]; ok {
		return 0
	}
	if _, ok := yoniFriendly[key]; ok {
		return 3
	}
	if _, ok := yoniEnemy[key]; ok {
		return 1
	}
	return 2
}

// maitriScore rates the secondary's ruling body by the primary's friendship
// graph, which is not symmetric.
func maitriScore(primary, secondary Sign) float64 {
	p, s := signLord[primary], signLord[secondary]
	if p == s {
		return 5
	}
	switch grahaRelation[p][s] {
	case relFriend:
		return 4
	case relNeutral:
		return 3
	case relEnemy:
		return 1
	}
	return 0
}

func ganaScore(primary, secondary Asterism) float64 {
	return ganaTable[asterismGana[primary]][asterismGana[secondary]]
}

func bhakootScore(primary, secondary Sign) float64 {
	return bhakootMatrix[primary-1][secondary-1]
}

func nadiScore(primary, secondary Asterism) float64 {
	if asterismNadi[primary] != asterismNadi[secondary] {
		return 8
	}
	return 0
}
