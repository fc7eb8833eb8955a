package card

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/arcanaland/highcard/internal/types"
)

// Suit is one of the four card suits, always stored lowercase
type Suit string

const (
	Clubs    Suit = "clubs"
	Diamonds Suit = "diamonds"
	Hearts   Suit = "hearts"
	Spades   Suit = "spades"
)

// Suits lists every suit in deck construction order
var Suits = []Suit{Clubs, Diamonds, Hearts, Spades}

const (
	MinRank = 2
	MaxRank = 10
)

// ParseSuit matches s case-insensitively against the known suits.
// Anything unrecognized becomes Clubs.
func ParseSuit(s string) Suit {
	candidate := Suit(strings.ToLower(s))
	for _, suit := range Suits {
		if suit == candidate {
			return suit
		}
	}
	return Clubs
}

// Symbol returns the glyph used to draw the suit
func (s Suit) Symbol() string {
	switch s {
	case Clubs:
		return "♣"
	case Diamonds:
		return "♦"
	case Hearts:
		return "♥"
	case Spades:
		return "♠"
	default:
		return "•"
	}
}

// Red reports whether the suit is printed in red
func (s Suit) Red() bool {
	return s == Diamonds || s == Hearts
}

// ParseRank converts user text into a rank
func ParseRank(s string) (int, error) {
	rank, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, types.WrapError(types.ErrInvalidArgument,
			fmt.Sprintf("rank must be an integer between %d and %d", MinRank, MaxRank), err)
	}
	if err := checkRank(rank); err != nil {
		return 0, err
	}
	return rank, nil
}

func checkRank(rank int) error {
	if rank < MinRank || rank > MaxRank {
		return types.Errorf(types.ErrInvalidArgument,
			"rank %d out of range, must be between %d and %d", rank, MinRank, MaxRank)
	}
	return nil
}

// Card is a rank and a suit. Cards order by rank only.
type Card struct {
	rank int
	suit Suit
}

// New creates a card, rejecting ranks outside [MinRank, MaxRank]
func New(rank int, suit string) (Card, error) {
	var c Card
	if err := c.SetRank(rank); err != nil {
		return Card{}, err
	}
	c.SetSuit(suit)
	return c, nil
}

// MustNew is New for literal values known to be valid
func MustNew(rank int, suit Suit) Card {
	c, err := New(rank, string(suit))
	if err != nil {
		panic(err)
	}
	return c
}

func (c Card) Rank() int { return c.rank }
func (c Card) Suit() Suit { return c.suit }

// SetRank replaces the rank; the card is left unchanged on error
func (c *Card) SetRank(rank int) error {
	if err := checkRank(rank); err != nil {
		return err
	}
	c.rank = rank
	return nil
}

// SetSuit replaces the suit, normalizing it with ParseSuit
func (c *Card) SetSuit(suit string) {
	c.suit = ParseSuit(suit)
}

// Compare returns -1, 0 or +1 comparing ranks. Suit never breaks ties.
func (c Card) Compare(other Card) int {
	switch {
	case c.rank > other.rank:
		return 1
	case c.rank < other.rank:
		return -1
	default:
		return 0
	}
}

func (c Card) GreaterThan(other Card) bool { return c.Compare(other) > 0 }
func (c Card) LessThan(other Card) bool { return c.Compare(other) < 0 }
func (c Card) Equal(other Card) bool { return c.Compare(other) == 0 }

// String renders the card as "<rank> of <suit>"
func (c Card) String() string {
	return fmt.Sprintf("%d of %s", c.rank, c.suit)
}
