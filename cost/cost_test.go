package cost

import (
	"errors"
	"testing"

	"github.com/chia-network/clvm-go/clvmerr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChargeAccumulates(t *testing.T) {
	m := New(100)
	require.NoError(t, m.Charge(40))
	require.NoError(t, m.Charge(40))
	assert.Equal(t, uint64(80), m.Running())
	assert.Equal(t, uint64(20), m.Remaining())
}

func TestChargeFailsFastOnOverflow(t *testing.T) {
	m := New(100)
	require.NoError(t, m.Charge(90))
	err := m.Charge(20)
	require.Error(t, err)
	assert.True(t, errors.Is(err, clvmerr.CostExceeded))
	// Running total must not include the rejected charge.
	assert.Equal(t, uint64(90), m.Running())
}

func TestUnlimitedMeter(t *testing.T) {
	m := New(0)
	require.NoError(t, m.Charge(1<<62))
	require.NoError(t, m.Charge(1<<62))
	assert.Equal(t, ^uint64(0), New(0).Remaining())
}
