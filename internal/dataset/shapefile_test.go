package dataset

import (
	"math"
	"path/filepath"
	"testing"

	"windarrows/internal/geo"

	"github.com/jonas-p/go-shp"
)

func writePoints(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "stations.shp")

	w, err := shp.Create(path, shp.POINT)
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	fields := []shp.Field{
		shp.StringField("ID", 8),
		shp.FloatField("DEG", 8, 1),
		shp.FloatField("DIST", 8, 1),
		shp.StringField("NAME", 16),
	}
	if err := w.SetFields(fields); err != nil {
		t.Fatalf("SetFields: %v", err)
	}

	rows := []struct {
		x, y float64
		id   string
		deg  float64
		name string
	}{
		{7.45, 46.95, "bern", 270, "Bern"},
		{8.54, 47.37, "", 90, ""},
	}
	for _, r := range rows {
		n := int(w.Write(&shp.Point{X: r.x, Y: r.y}))
		if r.id != "" {
			w.WriteAttribute(n, 0, r.id)
		}
		w.WriteAttribute(n, 1, r.deg)
		if r.name != "" {
			w.WriteAttribute(n, 3, r.name)
		}
	}
	// Only the first row gets a distance
	w.WriteAttribute(0, 2, 35.0)
	w.Close()

	return path
}

func TestLoadArrows(t *testing.T) {
	records, err := NewShapefileLoader(DefaultColumns()).LoadArrows(writePoints(t))
	if err != nil {
		t.Fatalf("LoadArrows: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("got %d records, want 2", len(records))
	}

	bern := records[0]
	if bern.ID != "bern" || bern.Label != "Bern" {
		t.Errorf("record 0 = %+v", bern)
	}
	if bern.Origin == nil || bern.Origin.Lat != 46.95 || bern.Origin.Lon != 7.45 {
		t.Errorf("record 0 origin = %v", bern.Origin)
	}
	if bern.Bearing != 270 || bern.Distance != 35 {
		t.Errorf("record 0 bearing/distance = %v/%v", bern.Bearing, bern.Distance)
	}

	second := records[1]
	if second.ID != "2" {
		t.Errorf("missing id should default to the shape number, got %q", second.ID)
	}
	if !math.IsNaN(second.Distance) {
		t.Errorf("unwritten distance should be NaN, got %v", second.Distance)
	}
}

func TestLoadArrowsMissingField(t *testing.T) {
	cols := DefaultColumns()
	cols.Distance = "speed"
	if _, err := NewShapefileLoader(cols).LoadArrows(writePoints(t)); err == nil {
		t.Errorf("expected an error for a missing distance field")
	}
}

func TestLoadBasemap(t *testing.T) {
	path := filepath.Join(t.TempDir(), "coast.shp")
	w, err := shp.Create(path, shp.POLYLINE)
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	w.Write(shp.NewPolyLine([][]shp.Point{
		{{X: 0, Y: 0}, {X: 1, Y: 1}, {X: 2, Y: 1}},
		{{X: 5, Y: 5}, {X: 6, Y: 6}},
		{{X: 9, Y: 9}},
	}))
	w.Close()

	features, err := NewShapefileLoader(DefaultColumns()).LoadBasemap(path, geo.FeatureCoastline)
	if err != nil {
		t.Fatalf("LoadBasemap: %v", err)
	}
	if len(features) != 2 {
		t.Fatalf("got %d features, want 2 (single-point part dropped)", len(features))
	}
	if len(features[0].Points) != 3 || len(features[1].Points) != 2 {
		t.Errorf("parts not split: %d and %d points", len(features[0].Points), len(features[1].Points))
	}
	if features[0].Type != geo.FeatureCoastline || features[0].Points[1] != (geo.LatLon{Lat: 1, Lon: 1}) {
		t.Errorf("feature 0 = %+v", features[0])
	}
}

func TestLoadBasemapMissing(t *testing.T) {
	if _, err := NewShapefileLoader(DefaultColumns()).LoadBasemap(filepath.Join(t.TempDir(), "none.shp"), geo.FeatureBorder); err == nil {
		t.Errorf("expected an error for a missing shapefile")
	}
}
