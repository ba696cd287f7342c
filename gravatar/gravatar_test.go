package gravatar

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestURLNormalizesEmail(t *testing.T) {
	assert.Equal(t, URL("user@example.com"), URL("  User@Example.com "))
}

func TestURLKnownDigest(t *testing.T) {
	assert.Equal(t,
		"https://www.gravatar.com/avatar/b58996c504c5638798eb6b511e6f49af",
		URL("user@example.com"))
}
