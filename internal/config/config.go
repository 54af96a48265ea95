package config

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"windarrows/internal/arrow"
	"windarrows/internal/geo"
	"windarrows/internal/scale"

	"github.com/joho/godotenv"
)

// EnvPrefix is prepended to every environment variable name
const EnvPrefix = "WINDARROWS_"

// Config is the parsed command line
type Config struct {
	Help bool

	DataPath     string
	BasemapPath  string
	BasemapLayer geo.FeatureType
	GeoJSONPath  string
	DebugLog     string

	Unit         geo.DistanceUnit
	Stretch      float64
	Wind         bool
	SourceMarker bool
	ClosingLine  bool

	RadiusMiles   float64
	AspectRatio   float64
	ScaleWidth    int
	ScaleUnit     string
	ScalePosition scale.Position

	flags *flag.FlagSet
}

// LoadEnv loads .env files into the process environment. A missing file
// is not an error; variables already set are never overridden.
func LoadEnv(filenames ...string) error {
	if err := godotenv.Load(filenames...); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("failed to load .env: %w", err)
	}
	return nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(EnvPrefix + key); v != "" {
		return v
	}
	return fallback
}

func getEnvFloat(key string, fallback float64) float64 {
	if v, err := strconv.ParseFloat(getEnv(key, ""), 64); err == nil {
		return v
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	if v, err := strconv.ParseBool(getEnv(key, "")); err == nil {
		return v
	}
	return fallback
}

// Parse reads flags from args (without the program name). Environment
// variables supply the defaults so flags always win.
func Parse(args []string, output io.Writer) (*Config, error) {
	fs := flag.NewFlagSet("windarrows", flag.ContinueOnError)
	fs.SetOutput(output)

	cfg := &Config{flags: fs}
	var unit, layer, position string

	fs.BoolVar(&cfg.Help, "h", false, "Show help message")
	fs.StringVar(&cfg.DataPath, "data", getEnv("DATA", ""), "Arrow records, .csv or point .shp (env WINDARROWS_DATA)")
	fs.StringVar(&cfg.BasemapPath, "basemap", getEnv("BASEMAP", ""), "Basemap shapefile (env WINDARROWS_BASEMAP)")
	fs.StringVar(&layer, "basemap-layer", getEnv("BASEMAP_LAYER", "coastline"), "Basemap layer: coastline, border, river or place")
	fs.StringVar(&cfg.GeoJSONPath, "geojson", getEnv("GEOJSON", ""), "Write rendered arrows as GeoJSON and exit")
	fs.StringVar(&cfg.DebugLog, "d", getEnv("DEBUG_LOG", ""), "Debug log file (e.g., debug.log)")
	fs.StringVar(&unit, "unit", getEnv("UNIT", string(geo.UnitKilometers)), "Distance unit: km or px (env WINDARROWS_UNIT)")
	fs.Float64Var(&cfg.Stretch, "stretch", getEnvFloat("STRETCH", 1), "Multiply every arrow length (env WINDARROWS_STRETCH)")
	fs.BoolVar(&cfg.Wind, "wind", getEnvBool("WIND", false), "Bearings are wind directions (blowing from)")
	fs.BoolVar(&cfg.SourceMarker, "source-marker", getEnvBool("SOURCE_MARKER", false), "Mark the origin of every arrow")
	fs.BoolVar(&cfg.ClosingLine, "closing-line", getEnvBool("CLOSING_LINE", false), "Close the arrowhead triangle")
	fs.Float64Var(&cfg.RadiusMiles, "r", getEnvFloat("RADIUS", 150), "Map radius in miles")
	fs.Float64Var(&cfg.AspectRatio, "a", getEnvFloat("ASPECT", 2.0), "Character aspect ratio - adjust for font width (1.0-4.0)")
	fs.IntVar(&cfg.ScaleWidth, "scale-width", int(getEnvFloat("SCALE_WIDTH", 40)), "Maximum scale bar width in cells")
	fs.StringVar(&cfg.ScaleUnit, "scale-unit", getEnv("SCALE_UNIT", "km/h"), "Label appended to the scale value")
	fs.StringVar(&position, "scale-position", getEnv("SCALE_POSITION", "bottomright"), "Scale corner: bottomleft, bottomright, topleft or topright (env WINDARROWS_SCALE_POSITION)")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if cfg.Help {
		return cfg, nil
	}

	var err error
	if cfg.Unit, err = geo.ParseDistanceUnit(unit); err != nil {
		return nil, err
	}
	if cfg.BasemapLayer, err = geo.ParseFeatureType(strings.ToLower(layer)); err != nil {
		return nil, err
	}
	var ok bool
	if cfg.ScalePosition, ok = scale.ParsePosition(position); !ok {
		return nil, fmt.Errorf("unknown scale position: %q", position)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// PrintDefaults writes the flag descriptions to w
func (c *Config) PrintDefaults(w io.Writer) {
	if c.flags == nil {
		return
	}
	c.flags.SetOutput(w)
	c.flags.PrintDefaults()
}

// Validate checks value ranges
func (c *Config) Validate() error {
	if c.AspectRatio < 1.0 || c.AspectRatio > 4.0 {
		return errors.New("aspect ratio must be between 1.0 and 4.0")
	}
	if c.RadiusMiles <= 0 {
		return errors.New("map radius must be positive")
	}
	if c.Stretch <= 0 {
		return errors.New("stretch factor must be positive")
	}
	if c.ScaleWidth < 1 {
		return errors.New("scale width must be at least one cell")
	}
	return nil
}

// ArrowConfig returns the arrow options selected on the command line
func (c *Config) ArrowConfig() arrow.Config {
	ac := arrow.DefaultConfig()
	ac.DistanceUnit = c.Unit
	ac.StretchFactor = c.Stretch
	ac.IsWindDegree = c.Wind
	ac.DrawSourceMarker = c.SourceMarker
	ac.ArrowheadClosingLine = c.ClosingLine
	ac.ColorScheme = arrow.WindSpeedScheme()
	ac.PopupContent = func(d arrow.Data) string { return d.String() }
	return ac
}
