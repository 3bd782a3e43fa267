package hash

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSum64KnownVector(t *testing.T) {
	// xxHash64 of the empty input with the zero seed.
	require.Equal(t, uint64(0xef46db3751d8e999), Sum64(nil))
	require.Equal(t, uint64(0xef46db3751d8e999), Sum64([]byte{}))
}

func TestSum64Deterministic(t *testing.T) {
	data := []byte("voxel container")

	require.Equal(t, Sum64(data), Sum64(data))
	require.NotEqual(t, Sum64(data), Sum64([]byte("voxel containex")))
}

func TestStreamingMatchesOneShot(t *testing.T) {
	chunks := [][]byte{
		[]byte("VOX "),
		{0x96, 0x00, 0x00, 0x00},
		[]byte("MAIN"),
	}

	var whole []byte
	d := New()
	for _, c := range chunks {
		_, _ = d.Write(c)
		whole = append(whole, c...)
	}

	require.Equal(t, Sum64(whole), d.Sum64())
}

func TestDigestReset(t *testing.T) {
	d := New()
	_, _ = d.Write([]byte("first"))
	d.Reset()
	_, _ = d.Write([]byte("second"))

	require.Equal(t, Sum64([]byte("second")), d.Sum64())
}
