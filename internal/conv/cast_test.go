package conv

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIntToUint64(t *testing.T) {
	v, err := IntToUint64(42)
	require.NoError(t, err)
	assert.Equal(t, uint64(42), v)

	v, err = IntToUint64(0)
	require.NoError(t, err)
	assert.Equal(t, uint64(0), v)

	_, err = IntToUint64(-1)
	assert.Error(t, err)
}

func TestUint64ToInt(t *testing.T) {
	v, err := Uint64ToInt(42)
	require.NoError(t, err)
	assert.Equal(t, 42, v)

	v, err = Uint64ToInt(uint64(math.MaxInt))
	require.NoError(t, err)
	assert.Equal(t, math.MaxInt, v)

	_, err = Uint64ToInt(uint64(math.MaxInt) + 1)
	assert.Error(t, err)
}

func TestMulUint64(t *testing.T) {
	v, err := MulUint64(3, 12)
	require.NoError(t, err)
	assert.Equal(t, uint64(36), v)

	v, err = MulUint64(0, math.MaxUint64)
	require.NoError(t, err)
	assert.Equal(t, uint64(0), v)

	_, err = MulUint64(math.MaxUint64, 2)
	assert.Error(t, err)

	_, err = MulUint64(1<<33, 1<<33)
	assert.Error(t, err)
}
