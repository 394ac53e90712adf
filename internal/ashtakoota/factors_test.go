package ashtakoota

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVarnaScore(t *testing.T) {
	tests := []struct {
		name               string
		primary, secondary Sign
		want               float64
	}{
		{"same sign", Aries, Aries, 1},
		{"higher rank primary", Cancer, Gemini, 1},
		{"lower rank primary", Gemini, Cancer, 0},
		{"equal rank different signs", Aries, Leo, 1},
		{"vaishya over shudra", Taurus, Libra, 1},
		{"shudra under kshatriya", Aquarius, Scorpio, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, varnaScore(tt.primary, tt.secondary))
		})
	}
}

func TestVashyaScore(t *testing.T) {
	tests := []struct {
		name               string
		primary, secondary Sign
		want               float64
	}{
		{"same class", Aries, Taurus, 2},
		{"cross class", Aries, Gemini, 1},
		{"override lowers same-class pair", Capricorn, Aquarius, 1},
		{"override reversed", Aquarius, Capricorn, 1},
		{"override raises cross-class pair", Sagittarius, Pisces, 2},
		{"override cancer scorpio", Cancer, Scorpio, 1},
		{"insect vs quadruped", Scorpio, Aries, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, vashyaScore(tt.primary, tt.secondary))
		})
	}
}

func TestVashyaScoreNeverZero(t *testing.T) {
	for p := Aries; p <= Pisces; p++ {
		for s := Aries; s <= Pisces; s++ {
			got := vashyaScore(p, s)
			assert.GreaterOrEqual(t, got, 1.0, "vashya(%d,%d)", p, s)
			assert.LessOrEqual(t, got, 2.0, "vashya(%d,%d)", p, s)
		}
	}
}

func TestTaraScore(t *testing.T) {
	tests := []struct {
		name               string
		primary, secondary Asterism
		want               float64
	}{
		{"same asterism", Ashwini, Ashwini, 3},
		{"nine apart both favorable", Ashwini, Magha, 3},
		{"adjacent one favorable", Ashwini, Bharani, 1.5},
		{"three apart one favorable", Ashwini, Rohini, 1.5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, taraScore(tt.primary, tt.secondary))
		})
	}
}

func TestTaraScoreSymmetric(t *testing.T) {
	for p := Ashwini; p <= Revati; p++ {
		for s := Ashwini; s <= Revati; s++ {
			assert.Equal(t, taraScore(p, s), taraScore(s, p), "tara(%d,%d)", p, s)
		}
	}
}

func TestYoniScore(t *testing.T) {
	tests := []struct {
		name               string
		primary, secondary Asterism
		want               float64
	}{
		{"identical animal", Rohini, Mrigashira, 4}, // both serpent
		{"same asterism", Chitra, Chitra, 4},
		{"friendly horse deer", Ashwini, Anuradha, 3},
		{"friendly elephant sheep", Bharani, Krittika, 3},
		{"friendly dog monkey", Ardra, PurvaAshadha, 3},
		{"sworn enemies dog deer", Ardra, Anuradha, 0},
		{"sworn enemies cat rat", Punarvasu, Magha, 0},
		{"sworn enemies cow tiger", UttaraPhalguni, Chitra, 0},
		{"sworn enemies sheep monkey", Krittika, Shravana, 0},
		{"neutral horse elephant", Ashwini, Bharani, 2},
		{"neutral rat cow", Magha, UttaraPhalguni, 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, yoniScore(tt.primary, tt.secondary))
			assert.Equal(t, tt.want, yoniScore(tt.secondary, tt.primary), "unordered")
		})
	}
}

func TestMaitriScore(t *testing.T) {
	tests := []struct {
		name               string
		primary, secondary Sign
		want               float64
	}{
		{"same lord", Aries, Scorpio, 5},
		{"friend", Aries, Leo, 4},
		{"neutral", Aries, Taurus, 3},
		{"enemy", Gemini, Cancer, 1},
		{"asymmetric reverse is friend", Cancer, Gemini, 4},
		{"saturn regards mars enemy", Capricorn, Aries, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, maitriScore(tt.primary, tt.secondary))
		})
	}
}

func TestGanaScore(t *testing.T) {
	tests := []struct {
		name               string
		primary, secondary Asterism
		want               float64
	}{
		{"divine divine", Ashwini, Mrigashira, 6},
		{"divine over mortal", Ashwini, Bharani, 6},
		{"divine over fiend", Ashwini, Krittika, 0},
		{"mortal over divine", Bharani, Ashwini, 5},
		{"mortal over fiend", Bharani, Krittika, 1},
		{"fiend over divine", Krittika, Ashwini, 1},
		{"fiend over mortal", Krittika, Bharani, 0},
		{"fiend fiend", Krittika, Ashlesha, 6},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ganaScore(tt.primary, tt.secondary))
		})
	}
}

// The divine/fiend asymmetry is the reason role resolution evaluates both
// orientations for ungendered pairs.
func TestGanaScoreAsymmetry(t *testing.T) {
	assert.NotEqual(t, ganaScore(Ashwini, Krittika), ganaScore(Krittika, Ashwini))
}

func TestBhakootScore(t *testing.T) {
	tests := []struct {
		name               string
		primary, secondary Sign
		want               float64
	}{
		{"same sign", Leo, Leo, 7},
		{"second from", Aries, Taurus, 0},
		{"fifth from", Aries, Leo, 0},
		{"sixth from", Aries, Virgo, 0},
		{"fourth from", Aries, Cancer, 7},
		{"seventh from", Aries, Libra, 7},
		{"tenth from", Libra, Cancer, 7},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, bhakootScore(tt.primary, tt.secondary))
		})
	}
}

func TestBhakootMatrixCellsAreZeroOrSeven(t *testing.T) {
	for p := Aries; p <= Pisces; p++ {
		for s := Aries; s <= Pisces; s++ {
			got := bhakootScore(p, s)
			assert.True(t, got == 0 || got == 7, "bhakoot(%d,%d)=%v", p, s, got)
		}
	}
}

func TestNadiScore(t *testing.T) {
	assert.Equal(t, 0.0, nadiScore(Ashwini, Rohini), "same physiology class")
	assert.Equal(t, 8.0, nadiScore(Ashwini, Bharani), "different class")
	assert.Equal(t, 0.0, nadiScore(Krittika, Ardra), "antya pair")
}

func TestFactorScoresStayInDocumentedSets(t *testing.T) {
	in := func(v float64, set ...float64) bool {
		for _, s := range set {
			if v == s {
				return true
			}
		}
		return false
	}
	for p := Aries; p <= Pisces; p++ {
		for s := Aries; s <= Pisces; s++ {
			assert.True(t, in(varnaScore(p, s), 0, 1), "varna(%d,%d)", p, s)
			assert.True(t, in(vashyaScore(p, s), 1, 2), "vashya(%d,%d)", p, s)
			assert.True(t, in(maitriScore(p, s), 0, 1, 3, 4, 5), "maitri(%d,%d)", p, s)
			assert.True(t, in(bhakootScore(p, s), 0, 7), "bhakoot(%d,%d)", p, s)
		}
	}
	for p := Ashwini; p <= Revati; p++ {
		for s := Ashwini; s <= Revati; s++ {
			assert.True(t, in(taraScore(p, s), 0, 1.5, 3), "tara(%d,%d)", p, s)
			assert.True(t, in(yoniScore(p, s), 0, 1, 2, 3, 4), "yoni(%d,%d)", p, s)
			assert.True(t, in(ganaScore(p, s), 0, 1, 5, 6), "gana(%d,%d)", p, s)
			assert.True(t, in(nadiScore(p, s), 0, 8), "nadi(%d,%d)", p, s)
		}
	}
}
