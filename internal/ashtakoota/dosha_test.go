package ashtakoota

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"stellar/internal/domain"
)

// Quantified over the full 12x27 space against a fixed counterpart: nadi
// cancellation holds unless both sign and asterism differ; bhakoot
// cancellation holds exactly on equal signs.
func TestEvaluateDoshaQuantified(t *testing.T) {
	fixed := domain.BirthProfile{Sign: 4, Asterism: 13, Subdivision: 2}

	for sign := 1; sign <= 12; sign++ {
		for asterism := 1; asterism <= 27; asterism++ {
			p := domain.BirthProfile{Sign: sign, Asterism: asterism, Subdivision: 1}
			flags := evaluateDosha(p, fixed)

			wantNadi := sign == fixed.Sign || asterism == fixed.Asterism
			assert.Equal(t, wantNadi, flags.NadiCancelled, "nadi sign=%d asterism=%d", sign, asterism)
			assert.Equal(t, sign == fixed.Sign, flags.BhakootCancelled, "bhakoot sign=%d", sign)

			// Orientation-independent.
			assert.Equal(t, flags, evaluateDosha(fixed, p))
		}
	}
}

func TestEvaluateDoshaBothMatch(t *testing.T) {
	p := domain.BirthProfile{Sign: 4, Asterism: 13, Subdivision: 2}
	flags := evaluateDosha(p, p)
	assert.True(t, flags.NadiCancelled)
	assert.True(t, flags.BhakootCancelled)
}

func TestEvaluateDoshaBothDiffer(t *testing.T) {
	a := domain.BirthProfile{Sign: 1, Asterism: 1, Subdivision: 1}
	b := domain.BirthProfile{Sign: 2, Asterism: 2, Subdivision: 1}
	flags := evaluateDosha(a, b)
	assert.False(t, flags.NadiCancelled)
	assert.False(t, flags.BhakootCancelled)
}
