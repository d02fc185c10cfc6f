package payment

import (
	"fmt"
	"math/rand/v2"
	"time"
)

// SymbolGenerator produces variable symbols of the form YYMMDDNNN: the
// current date followed by a zero-padded random suffix in [0, 999].
//
// Symbols are not unique. With 1000 suffixes per day, collisions are
// expected on busy days and are resolved by hand during bank reconciliation.
type SymbolGenerator struct {
	loc     *time.Location
	nowFunc func() time.Time
	intn    func(n int) int
}

// NewSymbolGenerator returns a generator dating symbols in loc.
func NewSymbolGenerator(loc *time.Location) *SymbolGenerator {
	if loc == nil {
		loc = time.UTC
	}
	return &SymbolGenerator{
		loc:     loc,
		nowFunc: time.Now,
		intn:    rand.IntN,
	}
}

// Next returns a fresh variable symbol.
func (g *SymbolGenerator) Next() string {
	now := g.nowFunc().In(g.loc)
	return fmt.Sprintf("%s%03d", now.Format("060102"), g.intn(1000))
}
