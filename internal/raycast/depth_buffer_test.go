package raycast

import (
	"math"
	"testing"

	"github.com/harbdog/raycaster-go/geom"
)

func TestBuildDepthBuffer_SampleCountAndOrder(t *testing.T) {
	grid := borderedRoom(10)
	pose := Pose{Position: geom.Vector2{X: 5.5 * tileSize, Y: 5.5 * tileSize}, Heading: 0.4}
	fov := geom.Radians(70)

	for _, rayCount := range []int{1, 2, 7, 240} {
		buffer := BuildDepthBuffer(pose, grid, rayCount, fov, 1000)
		if len(buffer) != rayCount {
			t.Fatalf("rayCount=%d: got %d samples", rayCount, len(buffer))
		}
		if !almostEqual(buffer[0].Angle, pose.Heading-fov/2, 1e-12) {
			t.Errorf("rayCount=%d: first ray at %.6f, expected %.6f", rayCount, buffer[0].Angle, pose.Heading-fov/2)
		}
		for i, sample := range buffer {
			if sample.Column != i {
				t.Errorf("rayCount=%d: sample %d has column %d", rayCount, i, sample.Column)
			}
			if sample.Angle >= pose.Heading+fov/2 {
				t.Errorf("rayCount=%d: sample %d angle %.6f beyond right edge", rayCount, i, sample.Angle)
			}
			if i > 0 {
				step := sample.Angle - buffer[i-1].Angle
				if step <= 0 || !almostEqual(step, fov/float64(rayCount), 1e-9) {
					t.Errorf("rayCount=%d: uneven angular step %.9f at sample %d", rayCount, step, i)
				}
			}
		}
	}
}

func TestBuildDepthBuffer_ZeroRaysBecomesOne(t *testing.T) {
	grid := borderedRoom(5)
	pose := Pose{Position: geom.Vector2{X: 2.5 * tileSize, Y: 2.5 * tileSize}}
	if got := len(BuildDepthBuffer(pose, grid, 0, 1, 1000)); got != 1 {
		t.Errorf("Expected 1 sample, got %d", got)
	}
}

// Looking straight at a flat wall, every column must report the same
// perpendicular distance; raw ray lengths would bulge toward the edges.
func TestBuildDepthBuffer_FisheyeCorrection(t *testing.T) {
	grid := borderedRoom(10)
	pose := Pose{Position: geom.Vector2{X: 5.5 * tileSize, Y: 5.5 * tileSize}, Heading: 0}
	fov := geom.Radians(70)

	buffer := BuildDepthBuffer(pose, grid, 61, fov, 1000)
	for _, sample := range buffer {
		if !sample.Hit || sample.TileX != 9 {
			t.Fatalf("ray %d: expected east wall hit, got %+v", sample.Column, sample)
		}
		if !almostEqual(sample.Distance, 3.5*tileSize, 1e-9) {
			t.Errorf("ray %d: perpendicular distance %.9f, expected %.1f", sample.Column, sample.Distance, 3.5*tileSize)
		}
		if sample.RayLength < sample.Distance-1e-9 {
			t.Errorf("ray %d: ray length %.6f shorter than perpendicular distance %.6f", sample.Column, sample.RayLength, sample.Distance)
		}
	}

	edge := buffer[0]
	wantLength := 3.5 * tileSize / math.Cos(edge.Angle)
	if !almostEqual(edge.RayLength, wantLength, 1e-6) {
		t.Errorf("Edge ray length %.6f, expected %.6f", edge.RayLength, wantLength)
	}
}

func TestBuildDepthBuffer_MissesKeepMaxDistance(t *testing.T) {
	grid := borderedRoom(10)
	pose := Pose{Position: geom.Vector2{X: 5.5 * tileSize, Y: 5.5 * tileSize}}

	buffer := BuildDepthBuffer(pose, grid, 9, geom.Radians(60), 50)
	for _, sample := range buffer {
		if sample.Hit {
			t.Errorf("ray %d: unexpected hit inside 50 units", sample.Column)
		}
		if sample.Distance != 50 {
			t.Errorf("ray %d: miss distance %.3f, expected 50", sample.Column, sample.Distance)
		}
	}
}

func TestDepthBuffer_ColumnFor(t *testing.T) {
	buffer := make(DepthBuffer, 240)

	testCases := []struct {
		screenX int
		want    int
	}{
		{0, 0},
		{3, 0},
		{4, 1},
		{959, 239},
		{-5, 0},
		{2000, 239},
	}
	for _, tc := range testCases {
		if got := buffer.ColumnFor(tc.screenX, 960); got != tc.want {
			t.Errorf("ColumnFor(%d) = %d, want %d", tc.screenX, got, tc.want)
		}
	}

	var empty DepthBuffer
	if got := empty.At(10, 960); !math.IsInf(got.Distance, 1) {
		t.Errorf("Empty buffer should report infinite depth, got %.3f", got.Distance)
	}
}
