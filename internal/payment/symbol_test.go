package payment

import (
	"regexp"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestSymbolGenerator_Format(t *testing.T) {
	g := NewSymbolGenerator(time.UTC)
	g.nowFunc = func() time.Time { return time.Date(2026, time.March, 7, 10, 0, 0, 0, time.UTC) }
	g.intn = func(int) int { return 7 }

	assert.Equal(t, "260307007", g.Next())
}

func TestSymbolGenerator_UsesLocation(t *testing.T) {
	prague, err := time.LoadLocation("Europe/Prague")
	if err != nil {
		t.Skipf("tzdata unavailable: %v", err)
	}
	g := NewSymbolGenerator(prague)
	// 23:30 UTC on Dec 31 is already Jan 1 in Prague.
	g.nowFunc = func() time.Time { return time.Date(2025, time.December, 31, 23, 30, 0, 0, time.UTC) }
	g.intn = func(int) int { return 999 }

	assert.Equal(t, "260101999", g.Next())
}

func TestSymbolGenerator_Pattern(t *testing.T) {
	g := NewSymbolGenerator(time.UTC)
	pattern := regexp.MustCompile(`^\d{6}\d{3}$`)

	for i := 0; i < 200; i++ {
		before := time.Now().UTC().Format("060102")
		vs := g.Next()
		after := time.Now().UTC().Format("060102")

		assert.Regexp(t, pattern, vs)
		prefix := vs[:6]
		assert.True(t, prefix == before || prefix == after, "date prefix %s", prefix)
	}
}
