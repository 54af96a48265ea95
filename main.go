package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"windarrows/internal/arrow"
	"windarrows/internal/config"
	"windarrows/internal/dataset"
	"windarrows/internal/debug"
	"windarrows/internal/export"
	"windarrows/internal/geo"
	"windarrows/internal/scale"
	"windarrows/internal/ui"
)

func main() {
	if err := config.LoadEnv(); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
	}

	// Parse command line flags
	cfg, err := config.Parse(os.Args[1:], os.Stderr)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	// Show help if requested
	if cfg.Help {
		fmt.Println("windarrows - Terminal map of directional arrows")
		fmt.Println("\nUsage: windarrows [options]")
		fmt.Println("\nOptions:")
		cfg.PrintDefaults(os.Stdout)
		os.Exit(0)
	}

	// Set up debug logging if requested
	if cfg.DebugLog != "" {
		logFile, err := os.Create(cfg.DebugLog)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Warning: failed to create debug log: %v\n", err)
		} else {
			defer logFile.Close()
			debug.SetOutput(logFile)
			debug.Log("windarrows debug log started")
			fmt.Printf("Debug logging enabled: %s\n", cfg.DebugLog)
		}
	}

	// Load arrow records
	records, err := loadRecords(cfg.DataPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to load arrows: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Loaded %d arrow records\n", len(records))

	layer, err := arrow.NewLayerFromData(records, cfg.ArrowConfig())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	// Load the optional basemap
	features := make(map[geo.FeatureType][]*geo.Feature)
	if cfg.BasemapPath != "" {
		fmt.Println("Loading basemap...")
		loader := dataset.NewShapefileLoader(dataset.DefaultColumns())
		fs, err := loader.LoadBasemap(cfg.BasemapPath, cfg.BasemapLayer)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Warning: failed to load basemap: %v\n", err)
		} else {
			for _, f := range fs {
				features[f.Type] = append(features[f.Type], f)
			}
			fmt.Printf("Loaded %d basemap features\n", len(fs))
		}
	}

	scaleOpts := scale.DefaultOptions()
	scaleOpts.Position = cfg.ScalePosition
	scaleOpts.MaxWidth = float64(cfg.ScaleWidth)
	scaleOpts.StretchFactor = cfg.Stretch
	scaleOpts.UnitLabel = cfg.ScaleUnit

	if cfg.GeoJSONPath != "" {
		if err := writeGeoJSON(cfg, layer, features, scaleOpts); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Wrote %s\n", cfg.GeoJSONPath)
		return
	}

	// Create and run application
	fmt.Printf("Starting windarrows (radius: %.0f miles, aspect: %.1f, unit: %s)...\n", cfg.RadiusMiles, cfg.AspectRatio, cfg.Unit)
	app, err := ui.NewApp(layer, features, scaleOpts, cfg.RadiusMiles, cfg.AspectRatio)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to create application: %v\n", err)
		os.Exit(1)
	}

	// Run with panic recovery to ensure terminal is always restored
	func() {
		defer func() {
			if r := recover(); r != nil {
				fmt.Fprintf(os.Stderr, "\nPanic: %v\n", r)
			}
		}()

		if err := app.Run(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
	}()

	fmt.Println("\nGoodbye!")
}

// loadRecords picks a loader by file extension
func loadRecords(path string) ([]arrow.Data, error) {
	if path == "" {
		return nil, fmt.Errorf("no data file given (use -data or WINDARROWS_DATA)")
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".shp":
		return dataset.NewShapefileLoader(dataset.DefaultColumns()).LoadArrows(path)
	case ".csv", ".txt":
		return dataset.NewCSVLoader(path, dataset.DefaultColumns()).Load()
	}
	return nil, fmt.Errorf("unsupported data file %q (want .csv or .shp)", path)
}

// writeGeoJSON renders the layer off-screen at the default terminal size
// and writes the result with the scale bar
func writeGeoJSON(cfg *config.Config, layer *arrow.Layer, features map[geo.FeatureType][]*geo.Feature, scaleOpts scale.Options) error {
	const width, height = 80, 24

	view := ui.NewMapView(width, height, features, layer, scaleOpts, cfg.RadiusMiles, cfg.AspectRatio)
	defer layer.Detach()

	fc := export.Arrows(layer)
	fc.AddFeature(export.Scale(view.Scale().State()))
	debug.Log("Exporting %d features", len(fc.Features))

	return export.WriteFile(cfg.GeoJSONPath, fc)
}
