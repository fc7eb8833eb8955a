package deck

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/arcanaland/highcard/internal/card"
)

type DeckTestSuite struct {
	suite.Suite
}

func TestDeckSuite(t *testing.T) {
	suite.Run(t, new(DeckTestSuite))
}

func multiset(cards []card.Card) map[string]int {
	counts := make(map[string]int)
	for _, c := range cards {
		counts[c.String()]++
	}
	return counts
}

func (s *DeckTestSuite) TestNewDeckIsComplete() {
	d := New(NewRand(1))

	s.Require().Equal(36, d.Size())
	s.Require().Equal(FullSize, d.Size())

	counts := multiset(d.Cards())
	s.Len(counts, 36, "no duplicate cards")
	for rank := card.MinRank; rank <= card.MaxRank; rank++ {
		for _, suit := range card.Suits {
			s.Equal(1, counts[card.MustNew(rank, suit).String()])
		}
	}
}

func (s *DeckTestSuite) TestNewDeckOrder() {
	cards := New(NewRand(1)).Cards()

	s.Equal("2 of clubs", cards[0].String())
	s.Equal("2 of diamonds", cards[1].String())
	s.Equal("3 of clubs", cards[4].String())
	s.Equal("10 of spades", cards[35].String())
}

func (s *DeckTestSuite) TestShufflePreservesMultiset() {
	d := New(NewRand(DefaultSeed))
	before := multiset(d.Cards())

	for i := 0; i < 10; i++ {
		d.Shuffle()
		s.Equal(before, multiset(d.Cards()))
	}
	s.Equal(36, d.Size())
}

func (s *DeckTestSuite) TestShuffleIsReproducible() {
	a := New(NewRand(42))
	b := New(NewRand(42))
	a.Shuffle()
	b.Shuffle()
	s.Equal(a.String(), b.String())

	c := New(NewRand(43))
	c.Shuffle()
	s.NotEqual(a.String(), c.String())
}

func (s *DeckTestSuite) TestDrawTakesFromFront() {
	d := New(NewRand(1))

	for expected := 35; expected >= 0; expected-- {
		front := d.Cards()[0]
		c, ok := d.Draw()
		s.Require().True(ok)
		s.Equal(front.String(), c.String())
		s.Equal(expected, d.Size())
	}

	c, ok := d.Draw()
	s.False(ok)
	s.Equal(card.Card{}, c)
	s.Equal(0, d.Size())
}

func (s *DeckTestSuite) TestString() {
	testCases := []struct {
		name     string
		keep     int
		expected string
	}{
		{name: "two cards left", keep: 2, expected: "[10 of hearts, 10 of spades]"},
		{name: "one card left", keep: 1, expected: "[10 of spades]"},
		{name: "empty", keep: 0, expected: "[--empty--]"},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			d := New(NewRand(1))
			for d.Size() > tc.keep {
				d.Draw()
			}
			s.Equal(tc.expected, d.String())
		})
	}
}

func (s *DeckTestSuite) TestFromCards() {
	d := FromCards(NewRand(1), card.MustNew(4, card.Hearts), card.MustNew(9, card.Clubs))

	s.Equal(2, d.Size())
	s.Equal("[4 of hearts, 9 of clubs]", d.String())
	s.Equal("[--empty--]", FromCards(NewRand(1)).String())
}

func (s *DeckTestSuite) TestCardsReturnsCopy() {
	d := New(NewRand(1))
	cards := d.Cards()
	cards[0] = card.MustNew(9, card.Spades)

	s.Equal("2 of clubs", d.Cards()[0].String())
}
