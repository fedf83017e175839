// engine/engine.go - Pure progression/scoring rule engine
package engine

import (
	"fmt"
	"hash/fnv"
	"math/rand/v2"
	"time"

	"barkhaven/gamedata"
)

// Engine evaluates the game's progression and scoring rules. It holds no
// mutable game state: the catalog is read-only, and every method computes its
// result from explicit arguments. The random source and clock are injected so
// tests can run deterministically.
type Engine struct {
	catalog *gamedata.Catalog
	rng     *rand.Rand
	now     func() time.Time
}

type Option func(*Engine)

// WithSeed makes every random draw reproducible.
func WithSeed(seed int64) Option {
	return func(e *Engine) {
		e.rng = seededRNG(seed)
	}
}

// WithNow replaces the wall clock, for deterministic season/event tests.
func WithNow(now func() time.Time) Option {
	return func(e *Engine) {
		e.now = now
	}
}

// New builds an engine over a validated catalog.
func New(catalog *gamedata.Catalog, opts ...Option) *Engine {
	e := &Engine{
		catalog: catalog,
		rng:     seededRNG(time.Now().UnixNano()),
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Catalog exposes the injected catalog for read-only lookups.
func (e *Engine) Catalog() *gamedata.Catalog {
	return e.catalog
}

func seededRNG(seed int64) *rand.Rand {
	// Non-cryptographic PRNG is intentional for game simulation behavior.
	// #nosec G404
	return rand.New(rand.NewPCG(seedWord(seed, "a"), seedWord(seed, "b")))
}

func seedWord(seed int64, salt string) uint64 {
	h := fnv.New64a()
	_, _ = h.Write([]byte(fmt.Sprintf("%d:%s", seed, salt)))
	return h.Sum64()
}
