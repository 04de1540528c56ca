package practice

import (
	"fmt"
	"math/rand/v2"
	"strconv"
	"strings"

	"github.com/at-ishikawa/acreage/internal/conversion"
)

const (
	DefaultMaxAcres = 100
	// MaxAcresLimit keeps generated square feet within MaxValue.
	MaxAcresLimit = 1000
)

//go:generate mockgen -source=generator.go -destination=../mocks/practice/mock_rand.go -package=mock_practice Rand

// Rand is the source of randomness of a Generator. *rand.Rand satisfies it.
type Rand interface {
	IntN(n int) int
}

// ProblemState is the problem being practiced. It is replaced as a whole.
type ProblemState struct {
	Direction conversion.Direction
	Value     string
}

// Question states the problem in words, e.g. "Convert 87,120 square feet to acres".
func (p ProblemState) Question() string {
	v, err := ParseValue(p.Value)
	if err != nil {
		return p.Direction.Title()
	}
	return fmt.Sprintf("Convert %s %s to %s",
		conversion.FormatGrouped(v),
		strings.ToLower(p.Direction.SourceUnit()),
		strings.ToLower(p.Direction.TargetUnit()),
	)
}

// Generator creates random problems whose answer is a whole or half acre.
type Generator struct {
	rand      Rand
	maxAcres  int
	direction conversion.Direction
}

// NewGenerator creates a generator for acreages in [0.5, maxAcres).
// maxAcres below 1 falls back to DefaultMaxAcres and above MaxAcresLimit is clamped to it.
// An empty direction picks one of both directions at random for every problem.
func NewGenerator(r Rand, maxAcres int, direction conversion.Direction) *Generator {
	switch {
	case maxAcres < 1:
		maxAcres = DefaultMaxAcres
	case maxAcres > MaxAcresLimit:
		maxAcres = MaxAcresLimit
	}
	return &Generator{
		rand:      r,
		maxAcres:  maxAcres,
		direction: direction,
	}
}

// NewRand returns a random source seeded with seed, or randomly seeded when seed is 0.
func NewRand(seed uint64) *rand.Rand {
	if seed == 0 {
		return rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	return rand.New(rand.NewPCG(seed, seed))
}

func (g *Generator) Next() ProblemState {
	direction := g.direction
	if direction == "" {
		direction = conversion.DirectionSqftToAcres
		if g.rand.IntN(2) == 1 {
			direction = conversion.DirectionAcresToSqft
		}
	}

	halves := g.rand.IntN(g.maxAcres*2-1) + 1
	acres := float64(halves) / 2

	value := acres
	if direction == conversion.DirectionSqftToAcres {
		value = acres * conversion.SquareFeetPerAcre
	}
	return ProblemState{
		Direction: direction,
		Value:     strconv.FormatFloat(value, 'f', -1, 64),
	}
}
