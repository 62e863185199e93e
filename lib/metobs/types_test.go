package metobs

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseBBox(t *testing.T) {
	bbox, err := ParseBBox("7.9, 54.5,15.3,57.8")
	require.NoError(t, err)
	require.Equal(t, &BBox{West: 7.9, South: 54.5, East: 15.3, North: 57.8}, bbox)
	require.Equal(t, "7.90,54.50,15.30,57.80", bbox.String())
}

func TestParseBBoxRejectsMalformed(t *testing.T) {
	_, err := ParseBBox("7.9,54.5,15.3")
	require.Error(t, err)
	require.Contains(t, err.Error(), "got 3")

	_, err = ParseBBox("west,south,east,north")
	require.Error(t, err)
}
