package runtime

import (
	"errors"
	"testing"

	"github.com/aretw0/samuel/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStageSequence_LengthMismatch(t *testing.T) {
	displayed, err := domain.ParseSequence("r. r. r.")
	require.NoError(t, err)

	st := newStage(1, displayed, domain.Snapshot{}, &domain.CrossStageState{})
	st.colours = st.colours[:2]

	seq, err := st.sequence()
	assert.Nil(t, seq)
	require.Error(t, err)

	var mismatch *LengthMismatchError
	require.True(t, errors.As(err, &mismatch))
	assert.Equal(t, 3, mismatch.Symbols)
	assert.Equal(t, 2, mismatch.Colours)
	assert.Equal(t, displayed, mismatch.Displayed)
	assert.ErrorIs(t, err, domain.ErrLengthMismatch)
	assert.Contains(t, err.Error(), "3 symbols, 2 colours")
}

func TestStageSequence_Rebuilds(t *testing.T) {
	displayed, err := domain.ParseSequence("r. y- g.")
	require.NoError(t, err)

	st := newStage(1, displayed, domain.Snapshot{}, &domain.CrossStageState{})
	seq, err := st.sequence()
	require.NoError(t, err)
	assert.Equal(t, displayed, seq)
}
