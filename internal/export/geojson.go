package export

import (
	"fmt"
	"os"

	"windarrows/internal/arrow"
	"windarrows/internal/geo"
	"windarrows/internal/scale"

	geojson "github.com/paulmach/go.geojson"
)

func coordinates(points []geo.LatLon) [][]float64 {
	coords := make([][]float64, 0, len(points))
	for _, p := range points {
		coords = append(coords, []float64{p.Lon, p.Lat})
	}
	return coords
}

func setCommon(f *geojson.Feature, d arrow.Data, role string) {
	f.SetProperty("id", d.ID)
	f.SetProperty("role", role)
	f.SetProperty("valid", d.Valid)
	if d.Label != "" {
		f.SetProperty("label", d.Label)
	}
}

// Arrows converts the last rendering of every entity in the layer into a
// feature collection. Each arrow yields a "line" and an "arrowhead" feature;
// invalid records yield a "point" feature. Detached entities are skipped.
func Arrows(layer *arrow.Layer) *geojson.FeatureCollection {
	fc := geojson.NewFeatureCollection()

	for _, e := range layer.All() {
		d := e.Data()
		r := e.Rendering()

		switch r.Kind {
		case arrow.RenderArrow:
			line := geojson.NewLineStringFeature(coordinates(r.Geometry.Line[:]))
			setCommon(line, d, "line")
			line.SetProperty("bearing", d.Bearing)
			line.SetProperty("distance", d.Distance)
			line.SetProperty("color", r.Color.Hex())
			fc.AddFeature(line)

			head := geojson.NewLineStringFeature(coordinates(r.Geometry.Arrowhead))
			setCommon(head, d, "arrowhead")
			head.SetProperty("color", r.Color.Hex())
			fc.AddFeature(head)

		case arrow.RenderPoint:
			point := geojson.NewPointFeature([]float64{r.Point.Lon, r.Point.Lat})
			setCommon(point, d, "point")
			point.SetProperty("radius", r.Radius)
			fc.AddFeature(point)
		}
	}

	return fc
}

// Scale describes the current scale bar as a property-only feature
func Scale(st scale.State) *geojson.Feature {
	f := &geojson.Feature{
		Type:       "Feature",
		Properties: make(map[string]interface{}),
	}
	f.SetProperty("role", "scale")
	f.SetProperty("meters", st.Meters)
	f.SetProperty("width_px", st.WidthPx)
	f.SetProperty("label", st.Label)
	return f
}

// WriteFile writes a feature collection as GeoJSON
func WriteFile(filename string, fc *geojson.FeatureCollection) error {
	data, err := fc.MarshalJSON()
	if err != nil {
		return fmt.Errorf("failed to encode GeoJSON: %w", err)
	}
	if err := os.WriteFile(filename, data, 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", filename, err)
	}
	return nil
}
