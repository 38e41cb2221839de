package hash

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestContentIsDeterministic(t *testing.T) {
	data := []byte{0x0b, 0x0b, 0x02, 0x41, 0x61, 0x31, 0x41, 0x62, 0x32, 0x03, 0x06}

	require.Equal(t, Content(data), Content(append([]byte{}, data...)))
}

func TestContentDiffersForDifferentInput(t *testing.T) {
	require.NotEqual(t, Content([]byte{0x18}), Content([]byte{0x19}))
}
