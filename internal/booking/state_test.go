package booking

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTransition(t *testing.T) {
	t.Run("Waiting To Approved", func(t *testing.T) {
		next, err := Transition(StatusWaiting, true)
		require.NoError(t, err)
		assert.Equal(t, StatusApproved, next)
	})

	t.Run("Waiting To Rejected", func(t *testing.T) {
		next, err := Transition(StatusWaiting, false)
		require.NoError(t, err)
		assert.Equal(t, StatusRejected, next)
	})

	t.Run("Approved Is Terminal", func(t *testing.T) {
		for _, approve := range []bool{true, false} {
			_, err := Transition(StatusApproved, approve)
			assert.ErrorIs(t, err, ErrAlreadyDecided)
		}
	})

	t.Run("Rejected Is Terminal", func(t *testing.T) {
		for _, approve := range []bool{true, false} {
			_, err := Transition(StatusRejected, approve)
			assert.ErrorIs(t, err, ErrAlreadyDecided)
		}
	})
}
