package osfile

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolveName(t *testing.T) {
	calls := 0
	lookup := func(id string) (string, error) {
		calls++
		if id == "0" {
			return "root", nil
		}
		return "", errors.New("unknown id")
	}
	cache := make(map[string]string)

	assert.Equal(t, "root", resolveName(cache, "0", lookup))
	assert.Equal(t, "root", resolveName(cache, "0", lookup))
	assert.Equal(t, 1, calls)

	assert.Equal(t, "1234", resolveName(cache, "1234", lookup))
	assert.Equal(t, 2, calls)
}
