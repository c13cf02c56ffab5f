package autoresponse

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSampleReturnsPoolMember(t *testing.T) {
	c := NewStaticCatalog(DefaultResponses())

	pool := DefaultResponses()[KindGreeting]
	for i := 0; i < 20; i++ {
		assert.Contains(t, pool, c.Sample(KindGreeting))
	}
}

func TestSamplePicksByIndex(t *testing.T) {
	c := NewStaticCatalog(map[Kind][]string{
		KindWait: {"a", "b", "c"},
	})
	c.pick = func(int) int { return 2 }

	assert.Equal(t, "c", c.Sample(KindWait))
}

func TestSampleUnknownKindFallsBack(t *testing.T) {
	c := NewStaticCatalog(DefaultResponses())

	assert.Equal(t, Fallback, c.Sample("weather"))
	assert.Equal(t, Fallback, c.Sample(""))
}

func TestSampleEmptyPoolFallsBack(t *testing.T) {
	c := NewStaticCatalog(map[Kind][]string{KindProblem: {}})

	assert.Equal(t, Fallback, c.Sample(KindProblem))
}
