package dial

import (
	"math"
	"testing"
)

func TestHourLineTableNoonIsZero(t *testing.T) {
	table := HourLineTable(48)
	for _, line := range table {
		if line.Hour == 12 {
			if math.Abs(line.AngleRad) > 1e-9 {
				t.Fatalf("noon line angle = %v, want 0", line.AngleRad)
			}
			return
		}
	}
	t.Fatal("table has no noon entry")
}

func TestHourLineTableSymmetry(t *testing.T) {
	table := HourLineTable(48)
	byHour := make(map[int]float64, len(table))
	for _, line := range table {
		byHour[line.Hour] = line.AngleRad
	}
	for offset := 1; offset <= 6; offset++ {
		morning, afternoon := byHour[12-offset], byHour[12+offset]
		if math.Abs(morning+afternoon) > 1e-9 {
			t.Errorf("hours %d and %d not mirrored: %v vs %v", 12-offset, 12+offset, morning, afternoon)
		}
		if morning <= 0 {
			t.Errorf("morning hour %d angle = %v, want positive", 12-offset, morning)
		}
	}
}

func TestHourLineTableQuarterTurnAtSix(t *testing.T) {
	table := HourLineTable(48)
	for _, line := range table {
		if line.Hour == 6 && math.Abs(line.AngleRad-math.Pi/2) > 1e-9 {
			t.Errorf("6 o'clock line = %v, want pi/2", line.AngleRad)
		}
		if line.Hour == 18 && math.Abs(line.AngleRad+math.Pi/2) > 1e-9 {
			t.Errorf("18 o'clock line = %v, want -pi/2", line.AngleRad)
		}
	}
}

func TestHourLineTableMonotonic(t *testing.T) {
	table := HourLineTable(52)
	for i := 1; i < len(table); i++ {
		if table[i].AngleRad >= table[i-1].AngleRad {
			t.Fatalf("angles not strictly decreasing at hour %d: %v -> %v",
				table[i].Hour, table[i-1].AngleRad, table[i].AngleRad)
		}
	}
}

func TestPlateGeometry(t *testing.T) {
	geo := Plate(10, 32)
	if len(geo.Indices)%3 != 0 {
		t.Fatalf("index count %d not a multiple of 3", len(geo.Indices))
	}
	for _, v := range geo.Vertices {
		if v.Position[1] != 0 {
			t.Fatalf("plate vertex off the y=0 plane: %v", v.Position)
		}
		r := math.Hypot(float64(v.Position[0]), float64(v.Position[2]))
		if r > 10+1e-4 {
			t.Fatalf("plate vertex outside radius: %v", v.Position)
		}
		if v.Sway != 0 {
			t.Fatal("plate must not sway")
		}
	}
	if geo.Swaying() {
		t.Fatal("plate reported as swaying")
	}
}

func TestGnomonRake(t *testing.T) {
	const height = 4.0
	const lat = 48.0
	geo := Gnomon(height, lat)
	if len(geo.Indices)%3 != 0 {
		t.Fatalf("index count %d not a multiple of 3", len(geo.Indices))
	}
	var maxY float32
	var tipZ float32
	for _, v := range geo.Vertices {
		if v.Position[1] > maxY {
			maxY = v.Position[1]
			tipZ = v.Position[2]
		}
		if v.Position[2] > 1e-6 {
			t.Fatalf("gnomon extends south of the center: %v", v.Position)
		}
	}
	if maxY != height {
		t.Fatalf("gnomon height = %v, want %v", maxY, height)
	}
	gotRake := math.Atan2(float64(maxY), float64(-tipZ)) / deg2rad
	if math.Abs(gotRake-lat) > 1e-3 {
		t.Fatalf("style rake = %v degrees, want %v", gotRake, lat)
	}
}

func TestHourLinesFollowTable(t *testing.T) {
	table := HourLineTable(48)
	geo := HourLines(table, 2, 9, 0.1)
	if want := len(table) * 4; len(geo.Vertices) != want {
		t.Fatalf("vertex count = %d, want %d", len(geo.Vertices), want)
	}
	// Every strip midpoint should sit along its line's direction.
	for i, line := range table {
		v := geo.Vertices[i*4 : i*4+4]
		var cx, cz float64
		for _, p := range v {
			cx += float64(p.Position[0]) / 4
			cz += float64(p.Position[2]) / 4
		}
		got := math.Atan2(cx, -cz)
		if math.Abs(got-line.AngleRad) > 1e-4 {
			t.Errorf("hour %d strip at angle %v, want %v", line.Hour, got, line.AngleRad)
		}
	}
	for _, v := range geo.Vertices {
		if v.Position[1] <= 0 {
			t.Fatal("hour line strip not lifted above the plate")
		}
	}
}

func TestGrassRingDeterministicAndSwaying(t *testing.T) {
	a := GrassRing(50, 10, 14, 7)
	b := GrassRing(50, 10, 14, 7)
	if len(a.Vertices) != len(b.Vertices) {
		t.Fatal("same seed produced different blade counts")
	}
	for i := range a.Vertices {
		if a.Vertices[i] != b.Vertices[i] {
			t.Fatalf("same seed diverged at vertex %d", i)
		}
	}
	if !a.Swaying() {
		t.Fatal("grass must carry sway weights")
	}
	for i := 0; i < len(a.Vertices); i += 3 {
		if a.Vertices[i].Sway != 0 || a.Vertices[i+1].Sway != 0 {
			t.Fatal("blade roots must be rigid")
		}
		if a.Vertices[i+2].Sway != 1 {
			t.Fatal("blade tip must carry full sway weight")
		}
		rootX, rootZ := float64(a.Vertices[i].Position[0]), float64(a.Vertices[i].Position[2])
		r := math.Hypot(rootX, rootZ)
		if r < 10-0.1 || r > 14+0.1 {
			t.Fatalf("blade root outside annulus: radius %v", r)
		}
	}
}
