package credential

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHashPassword(t *testing.T) {
	// sha256("admin"), hex encoded
	assert.Equal(t,
		"8c6976e5b5410415bde908bd4dee15dfb167a9c873fc4bb8a81f6f2ab448a918",
		HashPassword("admin"),
	)
	assert.Equal(t, HashPassword("x"), HashPassword("x"))
	assert.NotEqual(t, HashPassword("x"), HashPassword("y"))
}

func TestNewAPIKey(t *testing.T) {
	hexRE := regexp.MustCompile(`^[0-9a-f]{32}$`)

	a, err := NewAPIKey()
	assert.NoError(t, err)
	b, err := NewAPIKey()
	assert.NoError(t, err)

	assert.Regexp(t, hexRE, a)
	assert.Regexp(t, hexRE, b)
	assert.NotEqual(t, a, b)
}
