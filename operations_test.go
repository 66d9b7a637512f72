package thompson

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestReachable(t *testing.T) {
	a := MustCompile("(a|b)*c")
	assert.Equal(t, []int{0, 1, 2, 3, 4}, Reachable(a).GetArray())

	a = MustCompile("a+")
	assert.Equal(t, []int{0, 1}, Reachable(a).GetArray())
}

func TestIsEmpty(t *testing.T) {
	for _, expression := range []string{"", "a", "(a|b)*c", "a+b*"} {
		assert.False(t, IsEmpty(MustCompile(expression)), expression)
	}
}

func TestAcceptsEmpty(t *testing.T) {
	t.Run("nullable", func(t *testing.T) {
		for _, expression := range []string{"", "a*", "a*|b", "(a+)*", "(a*b*)+"} {
			assert.True(t, AcceptsEmpty(MustCompile(expression)), expression)
		}
	})

	t.Run("not nullable", func(t *testing.T) {
		for _, expression := range []string{"a", "a+", "a*b", "(a|b)+", "ab*"} {
			assert.False(t, AcceptsEmpty(MustCompile(expression)), expression)
		}
	})
}
