package vox

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSizeVolume(t *testing.T) {
	require.Equal(t, int64(27), Size{X: 3, Y: 3, Z: 3}.Volume())
	require.Equal(t, int64(0), Size{X: 0, Y: 5, Z: 5}.Volume())

	// A full byte-addressable grid must not overflow 32 bits.
	full := Size{X: 256, Y: 256, Z: 256}
	require.Equal(t, int64(MaxVoxelCount), full.Volume())
}

func TestPaletteIsZero(t *testing.T) {
	var p Palette
	require.True(t, p.IsZero())

	p[17] = Color{R: 1}
	require.False(t, p.IsZero())

	grad := gradientPalette()
	require.False(t, grad.IsZero())
}

func TestAddModel(t *testing.T) {
	var d Data
	require.Empty(t, d.Models)

	voxels := []Voxel{{X: 1, Y: 2, Z: 3, ColorIndex: 4}}
	d.AddModel(Size{X: 8, Y: 8, Z: 8}, voxels)
	d.AddModel(Size{X: 1, Y: 1, Z: 1}, nil)

	require.Len(t, d.Models, 2)
	require.Equal(t, Size{X: 8, Y: 8, Z: 8}, d.Models[0].Size)
	require.Equal(t, 1, d.Models[0].VoxelCount())
	require.Equal(t, 0, d.Models[1].VoxelCount())

	// The voxel slice is shared, not copied.
	voxels[0].ColorIndex = 9
	require.Equal(t, uint8(9), d.Models[0].Voxels[0].ColorIndex)
}
