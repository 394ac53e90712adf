package domain

import "time"

// Core domain models. The engine consumes already-derived lunar classifications;
// raw birth date/time/place never enters this package.

type Gender string

const (
	GenderMale        Gender = "male"
	GenderFemale      Gender = "female"
	GenderOther       Gender = "other"
	GenderUnspecified Gender = ""
)

// ReportKind selects the pairing context: romantic reports keep the classical
// eight-factor shape, friendship reports fold Yoni into Bhakoot.
type ReportKind string

const (
	ReportRomantic   ReportKind = "romantic"
	ReportFriendship ReportKind = "friendship"
)

func (k ReportKind) Valid() bool {
	return k == ReportRomantic || k == ReportFriendship
}

// BirthProfile is the lunar classification of one person: moon sign (rashi),
// lunar mansion (nakshatra), and quarter of the mansion (pada).
type BirthProfile struct {
	Sign        int    `json:"sign"`
	Asterism    int    `json:"asterism"`
	Subdivision int    `json:"subdivision"`
	Gender      Gender `json:"gender,omitempty"`
}

// Validate rejects any field outside its closed domain. Out-of-range values are
// a caller bug and must never reach a table lookup.
func (p BirthProfile) Validate() error {
	if p.Sign < 1 || p.Sign > 12 {
		return &OutOfRangeError{Field: "sign", Value: p.Sign, Min: 1, Max: 12}
	}
	if p.Asterism < 1 || p.Asterism > 27 {
		return &OutOfRangeError{Field: "asterism", Value: p.Asterism, Min: 1, Max: 27}
	}
	if p.Subdivision < 1 || p.Subdivision > 4 {
		return &OutOfRangeError{Field: "subdivision", Value: p.Subdivision, Min: 1, Max: 4}
	}
	return nil
}

// FactorResult is the outcome of one koota. Score is fractional because Tara
// permits half points; Note is static per factor.
type FactorResult struct {
	Name  string  `json:"name"`
	Score float64 `json:"score"`
	Max   int     `json:"max"`
	Note  string  `json:"note"`
}

// DoshaFlags report whether a structural affliction in Nadi or Bhakoot is
// classically cancelled. They annotate interpretation only; scores are never
// altered by them.
type DoshaFlags struct {
	NadiCancelled    bool `json:"nadi_cancelled"`
	BhakootCancelled bool `json:"bhakoot_cancelled"`
}

// CompatibilityResult is the full verdict: the eight factors in classical
// order, their sum, the achievable ceiling, and the dosha annotations.
// Constructed once per evaluation and immutable afterwards.
type CompatibilityResult struct {
	Factors  []FactorResult `json:"factors"`
	Total    float64        `json:"total"`
	MaxTotal int            `json:"max_total"`
	Dosha    DoshaFlags     `json:"dosha"`
}

type PersonKind string

const (
	PersonUser    PersonKind = "user"
	PersonPartner PersonKind = "partner"
)

// Person is a stored profile: a user of the product or a saved partner.
type Person struct {
	ID        string       `json:"id"`
	Name      string       `json:"name"`
	Kind      PersonKind   `json:"kind"`
	Birth     BirthProfile `json:"birth"`
	CreatedAt time.Time    `json:"created_at"`
}
