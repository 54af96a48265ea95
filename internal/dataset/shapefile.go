package dataset

import (
	"fmt"
	"strings"

	"windarrows/internal/arrow"
	"windarrows/internal/geo"

	"github.com/jonas-p/go-shp"
)

// ShapefileLoader loads arrow records and basemap layers from ESRI shapefiles
type ShapefileLoader struct {
	columns Columns
}

// NewShapefileLoader creates a new shapefile loader
func NewShapefileLoader(columns Columns) *ShapefileLoader {
	return &ShapefileLoader{
		columns: columns,
	}
}

// fieldIndices maps normalized attribute names to their field index
func fieldIndices(shape *shp.Reader) map[string]int {
	indices := make(map[string]int)
	for i, field := range shape.Fields() {
		indices[normalizeName(field.String())] = i
	}
	return indices
}

// LoadArrows reads one arrow per point shape. Attribute columns are matched
// by name; shapefile names are truncated to 10 characters.
func (s *ShapefileLoader) LoadArrows(path string) ([]arrow.Data, error) {
	shape, err := shp.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open arrows shapefile: %w", err)
	}
	defer shape.Close()

	indices := fieldIndices(shape)
	for _, col := range []string{s.columns.Bearing, s.columns.Distance} {
		if _, ok := indices[normalizeName(col)]; !ok {
			return nil, fmt.Errorf("missing required field: %s", col)
		}
	}

	attr := func(n int, name string) string {
		i, ok := indices[normalizeName(name)]
		if !ok {
			return ""
		}
		return trimAttribute(shape.ReadAttribute(n, i))
	}

	var records []arrow.Data
	for shape.Next() {
		n, p := shape.Shape()

		point, ok := p.(*shp.Point)
		if !ok {
			continue
		}

		id := attr(n, s.columns.ID)
		if id == "" {
			id = fmt.Sprintf("%d", n+1)
		}

		records = append(records, arrow.Data{
			ID:       id,
			Origin:   &geo.LatLon{Lat: point.Y, Lon: point.X},
			Bearing:  parseNumber(attr(n, s.columns.Bearing)),
			Distance: parseNumber(attr(n, s.columns.Distance)),
			ColorKey: parseValue(attr(n, s.columns.Value)),
			Label:    attr(n, s.columns.Label),
		})
	}
	if err := shape.Err(); err != nil {
		return nil, fmt.Errorf("failed to read arrows shapefile: %w", err)
	}

	return records, nil
}

// LoadBasemap loads a shapefile as basemap features. Lines and polygon
// outlines become line features; points become places labelled from a NAME field.
func (s *ShapefileLoader) LoadBasemap(path string, ftype geo.FeatureType) ([]*geo.Feature, error) {
	shape, err := shp.Open(path)
	if err != nil {
		return nil, err
	}
	defer shape.Close()

	indices := fieldIndices(shape)
	nameIdx := -1
	for _, name := range []string{"name", "nameascii", "name_en"} {
		if i, ok := indices[name]; ok {
			nameIdx = i
			break
		}
	}

	features := make([]*geo.Feature, 0)
	for shape.Next() {
		n, p := shape.Shape()

		switch g := p.(type) {
		case *shp.PolyLine:
			features = append(features, partsToFeatures(ftype, g.Points, g.Parts)...)
		case *shp.Polygon:
			features = append(features, partsToFeatures(ftype, g.Points, g.Parts)...)
		case *shp.Point:
			name := ""
			if nameIdx >= 0 {
				name = trimAttribute(shape.ReadAttribute(n, nameIdx))
			}
			features = append(features, geo.NewPointFeature(geo.FeaturePlace, geo.LatLon{Lat: g.Y, Lon: g.X}, name))
		}
	}

	if err := shape.Err(); err != nil {
		return nil, err
	}

	return features, nil
}

// trimAttribute strips DBF padding; unwritten cells are null-filled
func trimAttribute(s string) string {
	return strings.Trim(s, " \x00")
}

// partsToFeatures splits a multi-part shape so separate rings are not joined
func partsToFeatures(ftype geo.FeatureType, points []shp.Point, parts []int32) []*geo.Feature {
	var features []*geo.Feature
	for i, start := range parts {
		end := int32(len(points))
		if i+1 < len(parts) {
			end = parts[i+1]
		}
		if end-start < 2 {
			continue
		}

		line := make([]geo.LatLon, 0, end-start)
		for _, pt := range points[start:end] {
			line = append(line, geo.LatLon{Lat: pt.Y, Lon: pt.X})
		}
		features = append(features, geo.NewLineFeature(ftype, line))
	}
	return features
}
