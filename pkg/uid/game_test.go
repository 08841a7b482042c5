package uid

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateGameID(t *testing.T) {
	a, b := GenerateGameID(), GenerateGameID()
	assert.NotEqual(t, a, b)

	id, err := uuid.Parse(a)
	require.NoError(t, err)
	assert.Equal(t, uuid.Version(4), id.Version())
}

func TestGenerateMatchID_IsTimeOrdered(t *testing.T) {
	id, err := uuid.Parse(GenerateMatchID())
	require.NoError(t, err)
	assert.Equal(t, uuid.Version(7), id.Version())

	first, second := GenerateMatchID(), GenerateMatchID()
	assert.LessOrEqual(t, first, second)
}
