package track

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/evorace/evorace-go/evo"
)

func defaultTrack(t *testing.T) *Track {
	t.Helper()
	cfg := evo.DefaultConfig()
	require.NoError(t, cfg.Validate())
	return Generate(&cfg.Track)
}

func TestGenerateSize(t *testing.T) {
	tr := defaultTrack(t)
	w, h := tr.Size()
	assert.Equal(t, 1200, w)
	assert.Equal(t, 750, h)
}

func TestStartPoseIsOnTheLane(t *testing.T) {
	tr := defaultTrack(t)
	start := tr.StartPose()

	assert.True(t, tr.Drivable(int(start.X), int(start.Y)))
	assert.Equal(t, 90.0, start.Heading)

	// The start sits in the middle of the left straight.
	assert.InDelta(t, 600-480+45, start.X, 1e-9)
	assert.InDelta(t, 375, start.Y, 1e-9)
}

func TestInfieldIsNotDrivable(t *testing.T) {
	tr := defaultTrack(t)
	w, h := tr.Size()
	assert.False(t, tr.Drivable(w/2, h/2))
}

func TestCornersAreNotDrivable(t *testing.T) {
	tr := defaultTrack(t)
	assert.False(t, tr.Drivable(0, 0))
	assert.False(t, tr.Drivable(1199, 749))
}

func TestOutOfBoundsQueries(t *testing.T) {
	tr := defaultTrack(t)

	assert.False(t, tr.InBounds(-1, 0))
	assert.False(t, tr.InBounds(0, -1))
	assert.False(t, tr.InBounds(1200, 0))
	assert.False(t, tr.InBounds(0, 750))
	assert.True(t, tr.InBounds(0, 0))

	// Out-of-bounds points are never drivable, without panicking.
	assert.False(t, tr.Drivable(-5, -5))
	assert.False(t, tr.Drivable(99999, 99999))
}

func TestLaneWidthIsRespected(t *testing.T) {
	tr := defaultTrack(t)
	cy := 375

	// Walking right from the outer left edge: the lane spans lane_width
	// pixels, then the infield begins.
	outerLeft := 600 - 480 // cx - outer_radius_x
	assert.True(t, tr.Drivable(outerLeft+1, cy))
	assert.True(t, tr.Drivable(outerLeft+89, cy))
	assert.False(t, tr.Drivable(outerLeft+91, cy))
	assert.False(t, tr.Drivable(outerLeft-1, cy))
}
