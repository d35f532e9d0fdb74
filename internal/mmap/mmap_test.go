package mmap

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMapAnon_ReadWriteClose(t *testing.T) {
	m, err := MapAnon(100)
	require.NoError(t, err)

	data := m.Bytes()
	assert.Len(t, data, 100)
	assert.Equal(t, 100, m.Size())
	assert.Equal(t, os.Getpagesize(), m.Reserved())

	for i, b := range data {
		if b != 0 {
			t.Fatalf("byte %d not zero-filled", i)
		}
	}

	data[0] = 0xAB
	data[99] = 0xCD
	assert.Equal(t, byte(0xAB), m.Bytes()[0])
	assert.Equal(t, byte(0xCD), m.Bytes()[99])

	require.NoError(t, m.Advise(AccessRandom))
	require.NoError(t, m.Close())

	// Close is idempotent
	require.NoError(t, m.Close())
	assert.Nil(t, m.Bytes())
	assert.ErrorIs(t, m.Advise(AccessDefault), ErrClosed)
}

func TestMapAnon_InvalidSize(t *testing.T) {
	_, err := MapAnon(0)
	assert.ErrorIs(t, err, ErrInvalidSize)

	_, err = MapAnon(-5)
	assert.ErrorIs(t, err, ErrInvalidSize)
}

func TestPageAlign(t *testing.T) {
	page := os.Getpagesize()
	assert.Equal(t, page, PageAlign(1))
	assert.Equal(t, page, PageAlign(page))
	assert.Equal(t, 2*page, PageAlign(page+1))
}
