package resources

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIconIsCached(t *testing.T) {
	first, err := Icon(AppIcon)
	require.NoError(t, err)
	assert.Equal(t, AppIcon, first.Name())
	assert.Contains(t, string(first.Content()), "<svg")

	second := MustIcon(AppIcon)
	assert.Same(t, first, second)
}

func TestIconMissing(t *testing.T) {
	_, err := Icon("absent.svg")
	assert.ErrorContains(t, err, "load icon icon/absent.svg")
	assert.Panics(t, func() { MustIcon("absent.svg") })
}
