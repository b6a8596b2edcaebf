package session

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKeyBytes(t *testing.T) {
	cases := []struct {
		key  Key
		want []byte
	}{
		{KeyArrowUp, []byte("\x1b[A")},
		{KeyArrowDown, []byte("\x1b[B")},
		{KeyArrowLeft, []byte("\x1b[D")},
		{KeyArrowRight, []byte("\x1b[C")},
		{KeyEnter, []byte("\n")},
		{KeyInterrupt, []byte{0x03}},
	}
	for _, tc := range cases {
		t.Run(tc.key.String(), func(t *testing.T) {
			b, err := KeyPress(tc.key).Bytes()
			require.NoError(t, err)
			assert.Equal(t, tc.want, b)
		})
	}
}

func TestRawBytes(t *testing.T) {
	b, err := RawBytes([]byte{0x04}).Bytes()
	require.NoError(t, err)
	assert.Equal(t, []byte{0x04}, b)
}

func TestRawBytes_EmptyRejected(t *testing.T) {
	_, err := RawBytes(nil).Bytes()

	var wf *WorkflowError
	assert.ErrorAs(t, err, &wf)
}

func TestParseKey(t *testing.T) {
	k, ok := ParseKey("Interrupt")
	require.True(t, ok)
	assert.Equal(t, KeyInterrupt, k)

	_, ok = ParseKey("NoSuchKey")
	assert.False(t, ok)
}
