package maputil

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestZip(t *testing.T) {
	m, err := Zip([]string{"gold", "shards"}, []int{100, 3})
	assert.Nil(t, err)
	assert.Equal(t, map[string]int{"gold": 100, "shards": 3}, m)

	m, err = Zip([]string{"a", "a"}, []int{1, 2})
	assert.Nil(t, err)
	assert.Equal(t, map[string]int{"a": 2}, m, "later duplicate wins")

	_, err = Zip([]string{"a"}, []int{1, 2})
	assert.NotNil(t, err)

	m, err = Zip[string, int](nil, nil)
	assert.Nil(t, err)
	assert.Empty(t, m)
}

func TestKeys(t *testing.T) {
	keys := Keys(map[string]int{"a": 1, "b": 2})
	assert.ElementsMatch(t, []string{"a", "b"}, keys)
	assert.Empty(t, Keys(map[string]int{}))
}
