// Package fixture produces unique-looking names and numbers for test data.
package fixture

import (
	"errors"
	"math/rand/v2"
	"strconv"
	"sync"

	"k8s.io/apimachinery/pkg/util/sets"
)

const (
	// MinSuffix and MaxSuffix bound the 4-digit suffix range.
	MinSuffix = 1000
	MaxSuffix = 9999

	suffixSpace = MaxSuffix - MinSuffix + 1
)

// ErrSuffixSpaceExhausted is raised when every suffix of the range has been issued.
var ErrSuffixSpaceExhausted = errors.New("all 4-digit suffixes have been issued")

// Generator hands out random 4-digit suffixes, never the same one twice.
// It is safe for concurrent use.
type Generator struct {
	mu   sync.Mutex
	rnd  *rand.Rand
	used sets.Set[int]
}

// NewGenerator creates a Generator. A nil source uses a randomly seeded PCG.
func NewGenerator(src rand.Source) *Generator {
	if src == nil {
		src = rand.NewPCG(rand.Uint64(), rand.Uint64())
	}
	return &Generator{
		rnd:  rand.New(src),
		used: sets.New[int](),
	}
}

// Default is the process-wide generator behind UniqueName and UniqueID.
var Default = NewGenerator(nil)

// Suffix returns a suffix in [MinSuffix, MaxSuffix] not issued before.
// It panics with ErrSuffixSpaceExhausted once all suffixes are used.
func (g *Generator) Suffix() int {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.used.Len() >= suffixSpace {
		panic(ErrSuffixSpaceExhausted)
	}
	for {
		n := MinSuffix + g.rnd.IntN(suffixSpace)
		if !g.used.Has(n) {
			g.used.Insert(n)
			return n
		}
	}
}

// UniqueName appends a fresh suffix to base, e.g. "Holiday" -> "Holiday4821".
func (g *Generator) UniqueName(base string) string {
	return base + strconv.Itoa(g.Suffix())
}

// UniqueID adds a fresh suffix to base.
func (g *Generator) UniqueID(base int) int {
	return base + g.Suffix()
}

// Issued reports how many suffixes have been handed out.
func (g *Generator) Issued() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.used.Len()
}

// UniqueName calls Default.UniqueName.
func UniqueName(base string) string {
	return Default.UniqueName(base)
}

// UniqueID calls Default.UniqueID.
func UniqueID(base int) int {
	return Default.UniqueID(base)
}
