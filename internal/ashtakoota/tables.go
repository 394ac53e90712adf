// Package ashtakoota implements the classical eight-factor (36-point) lunar
// compatibility score. Everything here is pure computation over compiled-in
// reference data; inputs are validated before any lookup, so every table is a
// total function over its enum.
package ashtakoota

// Sign is a moon sign (rashi), 1..12.
type Sign int

const (
	Aries Sign = iota + 1
	Taurus
	Gemini
	Cancer
	Leo
	Virgo
	Libra
	Scorpio
	Sagittarius
	Capricorn
	Aquarius
	Pisces
)

// Asterism is a lunar mansion (nakshatra), 1..27.
type Asterism int

const (
	Ashwini Asterism = iota + 1
	Bharani
	Krittika
	Rohini
	Mrigashira
	Ardra
	Punarvasu
	Pushya
	Ashlesha
	Magha
	PurvaPhalguni
	UttaraPhalguni
	Hasta
	Chitra
	Swati
	Vishakha
	Anuradha
	Jyeshtha
	Moola
	PurvaAshadha
	UttaraAshadha
	Shravana
	Dhanishta
	Shatabhisha
	PurvaBhadrapada
	UttaraBhadrapada
	Revati
)

// Varna is the four-level caste rank; ordering encodes the hierarchy so rank
// comparison is plain integer comparison.
type Varna int

const (
	Shudra Varna = iota + 1
	Vaishya
	Kshatriya
	Brahmin
)

var signVarna = [13]Varna{
	Aries: Kshatriya, Taurus: Vaishya, Gemini: Shudra, Cancer: Brahmin,
	Leo: Kshatriya, Virgo: Vaishya, Libra: Shudra, Scorpio: Kshatriya,
	Sagittarius: Kshatriya, Capricorn: Vaishya, Aquarius: Shudra, Pisces: Brahmin,
}

// VashyaClass is the dominance class of a sign.
type VashyaClass int

const (
	Quadruped VashyaClass = iota + 1 // chatushpada
	Human                            // dwipada
	Aquatic                          // jalachara
	Insect                           // keeta
	Wild                             // vanachara
)

var signVashya = [13]VashyaClass{
	Aries: Quadruped, Taurus: Quadruped, Gemini: Human, Cancer: Aquatic,
	Leo: Quadruped, Virgo: Human, Libra: Human, Scorpio: Insect,
	Sagittarius: Human, Capricorn: Aquatic, Aquarius: Aquatic, Pisces: Aquatic,
}

// vashyaAllies lists, per class, the classes it holds sway over. In the
// classical table each class only answers to itself.
var vashyaAllies = map[VashyaClass][]VashyaClass{
	Quadruped: {Quadruped},
	Human:     {Human},
	Aquatic:   {Aquatic},
	Insect:    {Insect},
	Wild:      {Wild},
}

// vashyaOverride fixes a handful of sign pairs whose score the class rule gets
// wrong (both orders present; values 1 or 2, never 0).
var vashyaOverride = map[[2]Sign]float64{
	{Aries, Leo}: 2, {Leo, Aries}: 2,
	{Taurus, Libra}: 2, {Libra, Taurus}: 2,
	{Gemini, Virgo}: 2, {Virgo, Gemini}: 2,
	{Cancer, Scorpio}: 1, {Scorpio, Cancer}: 1,
	{Sagittarius, Pisces}: 2, {Pisces, Sagittarius}: 2,
	{Capricorn, Aquarius}: 1, {Aquarius, Capricorn}: 1,
}

// YoniAnimal is the animal-affinity class of an asterism. Fourteen classes
// cover all twenty-seven asterisms.
type YoniAnimal int

const (
	Horse YoniAnimal = iota + 1
	Elephant
	Sheep
	Serpent
	Dog
	Cat
	Rat
	Cow
	Buffalo
	Tiger
	Deer
	Monkey
	Mongoose
	Lion
)

var asterismYoni = [28]YoniAnimal{
	Ashwini: Horse, Bharani: Elephant, Krittika: Sheep, Rohini: Serpent,
	Mrigashira: Serpent, Ardra: Dog, Punarvasu: Cat, Pushya: Sheep,
	Ashlesha: Cat, Magha: Rat, PurvaPhalguni: Rat, UttaraPhalguni: Cow,
	Hasta: Buffalo, Chitra: Tiger, Swati: Buffalo, Vishakha: Tiger,
	Anuradha: Deer, Jyeshtha: Deer, Moola: Dog, PurvaAshadha: Monkey,
	UttaraAshadha: Mongoose, Shravana: Monkey, Dhanishta: Lion,
	Shatabhisha: Horse, PurvaBhadrapada: Lion, UttaraBhadrapada: Cow,
	Revati: Elephant,
}

// animalPair is an unordered key: constructors normalize the order.
type animalPair [2]YoniAnimal

func pairOf(a, b YoniAnimal) animalPair {
	if a > b {
		a, b = b, a
	}
	return animalPair{a, b}
}

func pairSet(pairs ...animalPair) map[animalPair]struct{} {
	set := make(map[animalPair]struct{}, len(pairs))
	for _, p := range pairs {
		set[pairOf(p[0], p[1])] = struct{}{}
	}
	return set
}

var yoniFriendly = pairSet(
	animalPair{Horse, Serpent}, animalPair{Horse, Deer}, animalPair{Horse, Monkey},
	animalPair{Elephant, Sheep}, animalPair{Elephant, Buffalo}, animalPair{Elephant, Monkey},
	animalPair{Elephant, Serpent},
	animalPair{Sheep, Cow}, animalPair{Sheep, Buffalo},
	animalPair{Dog, Monkey},
	animalPair{Cat, Deer}, animalPair{Cat, Lion},
)

// yoniHighlyIncompatible are the sworn-enemy pairs; they score 0 and take
// precedence over every other classification.
var yoniHighlyIncompatible = pairSet(
	animalPair{Horse, Buffalo},
	animalPair{Elephant, Lion},
	animalPair{Sheep, Monkey},
	animalPair{Serpent, Mongoose},
	animalPair{Dog, Deer},
	animalPair{Cat, Rat},
	animalPair{Cow, Tiger},
)

// yoniEnemy is the plain-enmity tier. In the classical source every entry is
// also sworn-enemy, so this tier is shadowed in practice; it is kept as
// written so the 1-point branch stays an explicit case.
var yoniEnemy = pairSet(
	animalPair{Horse, Buffalo},
	animalPair{Elephant, Lion},
	animalPair{Sheep, Monkey},
	animalPair{Serpent, Mongoose},
	animalPair{Dog, Deer},
	animalPair{Cat, Rat},
	animalPair{Cow, Tiger},
)

// Graha is a ruling body.
type Graha int

const (
	Sun Graha = iota + 1
	Moon
	Mars
	Mercury
	Jupiter
	Venus
	Saturn
)

var signLord = [13]Graha{
	Aries: Mars, Taurus: Venus, Gemini: Mercury, Cancer: Moon,
	Leo: Sun, Virgo: Mercury, Libra: Venus, Scorpio: Mars,
	Sagittarius: Jupiter, Capricorn: Saturn, Aquarius: Saturn, Pisces: Jupiter,
}

type relation int

const (
	relNeutral relation = iota
	relFriend
	relEnemy
)

// grahaRelation[a][b] is how a regards b. Not symmetric: the Moon counts the
// Sun a friend while the Sun's friendship is not returned by Venus, etc.
var grahaRelation = [8][8]relation{
	Sun:     {Moon: relFriend, Mars: relFriend, Jupiter: relFriend, Venus: relEnemy, Saturn: relEnemy, Mercury: relNeutral},
	Moon:    {Sun: relFriend, Mercury: relFriend, Mars: relNeutral, Jupiter: relNeutral, Venus: relNeutral, Saturn: relNeutral},
	Mars:    {Sun: relFriend, Moon: relFriend, Jupiter: relFriend, Mercury: relEnemy, Venus: relNeutral, Saturn: relNeutral},
	Mercury: {Sun: relFriend, Venus: relFriend, Moon: relEnemy, Mars: relNeutral, Jupiter: relNeutral, Saturn: relNeutral},
	Jupiter: {Sun: relFriend, Moon: relFriend, Mars: relFriend, Mercury: relEnemy, Venus: relEnemy, Saturn: relNeutral},
	Venus:   {Mercury: relFriend, Saturn: relFriend, Sun: relEnemy, Moon: relEnemy, Mars: relNeutral, Jupiter: relNeutral},
	Saturn:  {Mercury: relFriend, Venus: relFriend, Sun: relEnemy, Moon: relEnemy, Mars: relEnemy, Jupiter: relNeutral},
}

// Gana is the temperament class of an asterism.
type Gana int

const (
	Divine Gana = iota + 1 // deva
	Mortal                 // manushya
	Fiend                  // rakshasa
)

var asterismGana = [28]Gana{
	Ashwini: Divine, Bharani: Mortal, Krittika: Fiend, Rohini: Mortal,
	Mrigashira: Divine, Ardra: Mortal, Punarvasu: Divine, Pushya: Divine,
	Ashlesha: Fiend, Magha: Fiend, PurvaPhalguni: Mortal, UttaraPhalguni: Mortal,
	Hasta: Divine, Chitra: Fiend, Swati: Divine, Vishakha: Fiend,
	Anuradha: Divine, Jyeshtha: Fiend, Moola: Fiend, PurvaAshadha: Mortal,
	UttaraAshadha: Mortal, Shravana: Divine, Dhanishta: Fiend, Shatabhisha: Fiend,
	PurvaBhadrapada: Mortal, UttaraBhadrapada: Mortal, Revati: Divine,
}

// ganaTable[primary][secondary]; deliberately not symmetric (Divine over
// Fiend scores 0, Fiend over Divine scores 1).
var ganaTable = [4][4]float64{
	Divine: {Divine: 6, Mortal: 6, Fiend: 0},
	Mortal: {Divine: 5, Mortal: 6, Fiend: 1},
	Fiend:  {Divine: 1, Mortal: 0, Fiend: 6},
}

// Nadi is the physiology class of an asterism.
type Nadi int

const (
	Adi Nadi = iota + 1
	Madhya
	Antya
)

var asterismNadi = [28]Nadi{
	Ashwini: Adi, Bharani: Madhya, Krittika: Antya, Rohini: Adi,
	Mrigashira: Madhya, Ardra: Antya, Punarvasu: Adi, Pushya: Madhya,
	Ashlesha: Antya, Magha: Adi, PurvaPhalguni: Madhya, UttaraPhalguni: Antya,
	Hasta: Adi, Chitra: Madhya, Swati: Antya, Vishakha: Adi,
	Anuradha: Madhya, Jyeshtha: Antya, Moola: Adi, PurvaAshadha: Madhya,
	UttaraAshadha: Antya, Shravana: Adi, Dhanishta: Madhya, Shatabhisha: Antya,
	PurvaBhadrapada: Adi, UttaraBhadrapada: Madhya, Revati: Antya,
}

// bhakootMatrix[primary-1][secondary-1]; every cell is 0 or 7.
var bhakootMatrix = [12][12]float64{
	{7, 0, 7, 7, 0, 0, 7, 0, 0, 7, 7, 0},
	{0, 7, 0, 7, 7, 0, 0, 7, 0, 0, 7, 7},
	{7, 0, 7, 0, 7, 7, 0, 0, 7, 0, 0, 7},
	{7, 7, 0, 7, 0, 7, 7, 0, 0, 7, 0, 0},
	{0, 7, 7, 0, 7, 0, 7, 7, 0, 0, 7, 0},
	{0, 0, 7, 7, 0, 7, 0, 7, 7, 0, 0, 7},
	{7, 0, 0, 7, 7, 0, 7, 0, 7, 7, 0, 0},
	{0, 7, 0, 0, 7, 7, 0, 7, 0, 7, 7, 0},
	{0, 0, 7, 0, 0, 7, 7, 0, 7, 0, 7, 7},
	{7, 0, 0, 7, 0, 0, 7, 7, 0, 7, 0, 7},
	{7, 7, 0, 0, 7, 0, 0, 7, 7, 0, 7, 0},
	{0, 7, 7, 0, 0, 7, 0, 0, 7, 7, 0, 7},
}
