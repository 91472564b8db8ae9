//go:build unit

package commands_test

import (
	"testing"

	"crewcal/internal/pkg/errs"
	"crewcal/internal/usecase/commands"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInflightGuard(t *testing.T) {
	g := commands.NewInflightGuard()

	release, err := g.Acquire("booking-1")
	require.NoError(t, err)

	_, err = g.Acquire("booking-1")
	assert.ErrorIs(t, err, errs.ErrConcurrentModification)

	// unrelated keys are independent
	release2, err := g.Acquire("booking-2")
	require.NoError(t, err)
	release2()

	release()
	release3, err := g.Acquire("booking-1")
	require.NoError(t, err)
	release3()
}
