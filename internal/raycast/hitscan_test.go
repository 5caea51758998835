package raycast

import (
	"testing"

	"github.com/harbdog/raycaster-go/geom"
)

func TestHitscan_ShortRangeMisses(t *testing.T) {
	grid := borderedRoom(10)
	origin := geom.Vector2{X: 5.5 * tileSize, Y: 5.5 * tileSize}

	result := Hitscan(origin, 0, 150, grid)
	if result.Hit {
		t.Fatal("Wall is 224 units away; a 150 unit shot must miss")
	}
	if result.Distance != 150 {
		t.Errorf("Expected miss distance 150, got %.3f", result.Distance)
	}
	if !almostEqual(result.Point.X, origin.X+150, 1e-9) || !almostEqual(result.Point.Y, origin.Y, 1e-9) {
		t.Errorf("Expected projected point (%.1f, %.1f), got (%.3f, %.3f)", origin.X+150, origin.Y, result.Point.X, result.Point.Y)
	}
}

func TestHitscan_HitReportsImpact(t *testing.T) {
	grid := borderedRoom(10)
	origin := geom.Vector2{X: 5.5 * tileSize, Y: 5.5 * tileSize}

	result := Hitscan(origin, 0, 1200, grid)
	if !result.Hit {
		t.Fatal("Expected a hit")
	}
	if !almostEqual(result.Distance, 3.5*tileSize, 1e-9) {
		t.Errorf("Expected distance %.1f, got %.6f", 3.5*tileSize, result.Distance)
	}
	if result.Point.X != 9*tileSize {
		t.Errorf("Impact should sit exactly on the wall face x=%.1f, got %.9f", 9*tileSize, result.Point.X)
	}
	if result.Cell != 1 {
		t.Errorf("Expected wall code 1, got %d", result.Cell)
	}
}

func TestHitscan_PointAndDistanceAgree(t *testing.T) {
	grid := borderedRoom(10)
	origin := geom.Vector2{X: 2.2 * tileSize, Y: 6.7 * tileSize}

	for _, angle := range []float64{0.3, 1.2, 2.2, 4.4, 5.9} {
		result := Hitscan(origin, angle, 2000, grid)
		if !result.Hit {
			t.Fatalf("angle=%.1f: expected a hit", angle)
		}
		d := geom.Distance(origin.X, origin.Y, result.Point.X, result.Point.Y)
		if !almostEqual(d, result.Distance, 1e-6) {
			t.Errorf("angle=%.1f: point is %.6f away, reported %.6f", angle, d, result.Distance)
		}
	}
}
