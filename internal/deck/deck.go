package deck

import (
	"math/rand"
	"strings"

	"github.com/arcanaland/highcard/internal/card"
	"k8s.io/klog/v2"
)

// DefaultSeed is the seed used when neither config nor flags set one
const DefaultSeed int64 = 9876543210

// FullSize is the number of cards in a freshly built deck
const FullSize = (card.MaxRank - card.MinRank + 1) * 4

// NewRand creates the random source for a whole session. Build one per
// process and pass it to every deck so a seed reproduces the full run.
func NewRand(seed int64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}

// Deck is an ordered stack of cards drawn from the front
type Deck struct {
	cards []card.Card
	rng   *rand.Rand
}

// New builds the full deck in rank-major order: 2 of clubs, 2 of diamonds, ...
func New(rng *rand.Rand) *Deck {
	cards := make([]card.Card, 0, FullSize)
	for rank := card.MinRank; rank <= card.MaxRank; rank++ {
		for _, suit := range card.Suits {
			cards = append(cards, card.MustNew(rank, suit))
		}
	}
	return &Deck{cards: cards, rng: rng}
}

// FromCards builds a deck holding exactly the given cards, front first
func FromCards(rng *rand.Rand, cards ...card.Card) *Deck {
	d := &Deck{cards: make([]card.Card, len(cards)), rng: rng}
	copy(d.cards, cards)
	return d
}

// Shuffle permutes the remaining cards in place
func (d *Deck) Shuffle() {
	d.rng.Shuffle(len(d.cards), func(i, j int) {
		d.cards[i], d.cards[j] = d.cards[j], d.cards[i]
	})
	klog.V(3).Infof("deck shuffled, %d cards", len(d.cards))
}

func (d *Deck) Size() int {
	return len(d.cards)
}

// Draw removes the top card. ok is false when the deck is empty.
func (d *Deck) Draw() (c card.Card, ok bool) {
	if len(d.cards) == 0 {
		return card.Card{}, false
	}
	c = d.cards[0]
	d.cards = d.cards[1:]
	return c, true
}

// Cards returns a copy of the remaining cards in order
func (d *Deck) Cards() []card.Card {
	out := make([]card.Card, len(d.cards))
	copy(out, d.cards)
	return out
}

// String renders the remaining cards as a bracketed list
func (d *Deck) String() string {
	if len(d.cards) == 0 {
		return "[--empty--]"
	}
	names := make([]string, len(d.cards))
	for i, c := range d.cards {
		names[i] = c.String()
	}
	return "[" + strings.Join(names, ", ") + "]"
}
