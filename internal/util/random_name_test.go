package util

import (
	"math/rand"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetRandomName(t *testing.T) {
	random = rand.New(rand.NewSource(0)) // nolint:gosec

	a := assert.New(t)
	for i := 0; i < 10; i++ {
		parts := strings.SplitN(GetRandomName(), " ", 2)
		a.Len(parts, 2)
		a.Contains(adjectives, parts[0])
		a.Contains(animals, parts[1])
	}
}
