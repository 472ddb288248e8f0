package mmap

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMapAnon_AllocWriteClose(t *testing.T) {
	m, err := MapAnon(4096)
	require.NoError(t, err)

	assert.Equal(t, 4096, m.Size())
	data := m.Bytes()
	require.Len(t, data, 4096)

	// Anonymous mappings are zero-filled
	assert.Equal(t, make([]byte, 4096), data)

	// The region is writable and readable
	data[0] = 0xAB
	data[4095] = 0xCD
	assert.Equal(t, byte(0xAB), m.Bytes()[0])
	assert.Equal(t, byte(0xCD), m.Bytes()[4095])

	require.NoError(t, m.Close())
	assert.True(t, m.Closed())
	assert.Nil(t, m.Bytes())

	// Close is idempotent
	assert.NoError(t, m.Close())
}

func TestMapAnon_ZeroSize(t *testing.T) {
	m, err := MapAnon(0)
	require.NoError(t, err)
	assert.Equal(t, 0, m.Size())
	assert.Nil(t, m.Bytes())
	assert.NoError(t, m.Close())
}

func TestMapAnon_NegativeSize(t *testing.T) {
	_, err := MapAnon(-1)
	assert.ErrorIs(t, err, ErrInvalidSize)
}

func TestMapAnon_Advise(t *testing.T) {
	m, err := MapAnon(4096)
	require.NoError(t, err)
	defer m.Close()

	// Advisory only; must not fail for any pattern
	assert.NoError(t, m.Advise(AccessSequential))
	assert.NoError(t, m.Advise(AccessRandom))
	assert.NoError(t, m.Advise(AccessDefault))
}

func TestMapAnon_AdviseClosed(t *testing.T) {
	m, err := MapAnon(4096)
	require.NoError(t, err)
	require.NoError(t, m.Close())

	assert.ErrorIs(t, m.Advise(AccessRandom), ErrClosed)
}
