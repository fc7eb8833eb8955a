package game

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"math/rand"
	"strings"

	"github.com/fatih/color"
	"github.com/google/uuid"
	"k8s.io/klog/v2"

	"github.com/arcanaland/highcard/internal/card"
	"github.com/arcanaland/highcard/internal/deck"
	"github.com/arcanaland/highcard/internal/types"
)

// State is a step of the session
type State int

const (
	AwaitingStart State = iota
	Playing
	Ended
)

func (s State) String() string {
	switch s {
	case AwaitingStart:
		return "awaiting-start"
	case Playing:
		return "playing"
	case Ended:
		return "ended"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// Outcome of a single round, seen from the player's side
type Outcome int

const (
	PlayerWins Outcome = iota
	OpponentWins
	Tie
)

func (o Outcome) String() string {
	switch o {
	case PlayerWins:
		return "YOU WIN"
	case OpponentWins:
		return "I WIN"
	default:
		return "TIE"
	}
}

// Round records one pair of draws
type Round struct {
	Player   card.Card
	Opponent card.Card
	Outcome  Outcome
}

var (
	affirmative = map[string]bool{"": true, "yes": true, "y": true, "t": true, "true": true, "ye": true}
	negative    = map[string]bool{"no": true, "n": true, "nope": true, "nah": true}
)

const (
	startPrompt = "Are you ready to start? "
	againPrompt = "Would you like to play again? "
	rule        = "----------------------------------------"
)

// Game runs one interactive session against the program
type Game struct {
	ID string

	deck     *deck.Deck
	in       *bufio.Reader
	out      io.Writer
	state    State
	shuffles int
	rounds   []Round

	colorEnabled bool
	banner       *color.Color
	win          *color.Color
	lose         *color.Color
	tie          *color.Color
}

// Option configures a Game
type Option func(*Game)

// WithDeck plays with d instead of a freshly built deck
func WithDeck(d *deck.Deck) Option {
	return func(g *Game) { g.deck = d }
}

// WithInitialShuffles sets how many times the deck is shuffled on creation
func WithInitialShuffles(n int) Option {
	return func(g *Game) { g.shuffles = n }
}

// WithColor forces colored output on or off
func WithColor(enabled bool) Option {
	return func(g *Game) { g.colorEnabled = enabled }
}

// New creates a game reading answers from in and writing to out. Its deck
// is built from rng and shuffled twice unless options say otherwise.
func New(rng *rand.Rand, in io.Reader, out io.Writer, opts ...Option) *Game {
	g := &Game{
		ID:       uuid.NewString(),
		in:       bufio.NewReader(in),
		out:      out,
		state:    AwaitingStart,
		shuffles: 2,
	}
	for _, opt := range opts {
		opt(g)
	}
	if g.deck == nil {
		g.deck = deck.New(rng)
	}
	for i := 0; i < g.shuffles; i++ {
		g.deck.Shuffle()
	}

	g.banner = g.style(color.FgCyan)
	g.win = g.style(color.FgGreen, color.Bold)
	g.lose = g.style(color.FgRed, color.Bold)
	g.tie = g.style(color.FgYellow, color.Bold)
	return g
}

func (g *Game) style(attrs ...color.Attribute) *color.Color {
	c := color.New(attrs...)
	if g.colorEnabled {
		c.EnableColor()
	} else {
		c.DisableColor()
	}
	return c
}

func (g *Game) State() State { return g.state }
func (g *Game) Deck() *deck.Deck { return g.deck }
func (g *Game) Rounds() []Round { return g.rounds }

// Start runs the session until it ends. Only a failing input reader
// produces an error; closed input ends the session normally.
func (g *Game) Start() error {
	klog.V(1).Infof("session %s: started with %d cards", g.ID, g.deck.Size())
	for g.state != Ended {
		var err error
		switch g.state {
		case AwaitingStart:
			err = g.awaitStart()
		case Playing:
			err = g.play()
		}
		if err != nil {
			return err
		}
	}
	g.end()
	return nil
}

func (g *Game) awaitStart() error {
	fmt.Fprintln(g.out, g.banner.Sprint(rule))
	fmt.Fprintln(g.out, g.banner.Sprint("Welcome to a basic game."))
	fmt.Fprintln(g.out, g.banner.Sprint("You and this program will take turns picking cards."))
	fmt.Fprintln(g.out, g.banner.Sprint("The one with the highest value card wins"))
	fmt.Fprintln(g.out, g.banner.Sprint(rule))

	answer, ok, err := g.ask(startPrompt)
	if err != nil {
		return err
	}

	switch {
	case !ok:
		g.transition(Ended)
	case affirmative[answer]:
		g.transition(Playing)
	case negative[answer] || g.deck.Size() == 0:
		g.transition(Ended)
	default:
		fmt.Fprintln(g.out, "Invalid input. Please try again.")
	}
	return nil
}

func (g *Game) play() error {
	if g.deck.Size() < 2 {
		fmt.Fprintln(g.out, "Not enough cards to play")
		g.transition(Ended)
		return nil
	}

	r := g.playRound()
	fmt.Fprintf(g.out, "You picked %s, and I picked %s\n", r.Player, r.Opponent)
	switch r.Outcome {
	case PlayerWins:
		fmt.Fprintln(g.out, g.win.Sprint(r.Outcome))
	case OpponentWins:
		fmt.Fprintln(g.out, g.lose.Sprint(r.Outcome))
	default:
		fmt.Fprintln(g.out, g.tie.Sprint(r.Outcome))
	}

	answer, ok, err := g.ask(againPrompt)
	if err != nil {
		return err
	}
	if ok && affirmative[answer] {
		return nil
	}
	if ok && !negative[answer] {
		klog.V(1).Infof("session %s: unrecognized answer %q, ending", g.ID, answer)
	}
	g.transition(Ended)
	return nil
}

// playRound draws for the player, then the opponent, then reshuffles
func (g *Game) playRound() Round {
	player, _ := g.deck.Draw()
	opponent, _ := g.deck.Draw()
	g.deck.Shuffle()

	r := Round{Player: player, Opponent: opponent}
	switch player.Compare(opponent) {
	case 1:
		r.Outcome = PlayerWins
	case -1:
		r.Outcome = OpponentWins
	default:
		r.Outcome = Tie
	}
	g.rounds = append(g.rounds, r)
	klog.V(2).Infof("session %s: round %d %s vs %s: %s, %d cards left",
		g.ID, len(g.rounds), player, opponent, r.Outcome, g.deck.Size())
	return r
}

func (g *Game) end() {
	fmt.Fprintln(g.out, "Sorry to see you go")
	fmt.Fprintln(g.out, "-----Remaining cards-----")
	fmt.Fprintln(g.out, g.deck)
	klog.V(1).Infof("session %s: ended after %d rounds, %d cards left",
		g.ID, len(g.rounds), g.deck.Size())
}

// ask prints prompt and reads one lowercased line. ok is false once the
// input is exhausted.
func (g *Game) ask(prompt string) (answer string, ok bool, err error) {
	fmt.Fprint(g.out, prompt)

	line, err := g.in.ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", false, types.WrapError(types.ErrInternalError, "reading input", err)
	}
	if errors.Is(err, io.EOF) && line == "" {
		fmt.Fprintln(g.out)
		return "", false, nil
	}

	return strings.ToLower(strings.TrimRight(line, "\r\n")), true, nil
}

func (g *Game) transition(next State) {
	klog.V(2).Infof("session %s: %s -> %s", g.ID, g.state, next)
	g.state = next
}
