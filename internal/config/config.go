package config

import "time"

const (
	// Particle field
	DensityDivisor  = 9000.0 // One particle per this many square world units
	RadiusMin       = 1.0    // Particle radius lower bound
	RadiusMax       = 2.5    // Particle radius upper bound (exclusive)
	SpeedRange      = 0.2    // Velocity components drawn from [-SpeedRange, SpeedRange)
	LinkDistance    = 120.0  // Pairs closer than this are connected
	HighlightRadius = 150.0  // Pointer distance that lights up a particle's links
	AmbientOpacity  = 0.8    // Opacity scale for links away from the pointer
	ParticleAlpha   = 0.8    // Particle fill alpha

	// Stroke styling
	AmbientLineWidth   = 0.3
	HighlightLineWidth = 1.2
	HighlightGlow      = 15.0

	// Terminal canvas
	CellWidth       = 8.0  // World units covered by one terminal column
	CellHeight      = 16.0 // World units covered by one terminal row (chars are ~2:1 tall)
	GridSpacing     = 40.0 // Static grid overlay spacing in world units
	GridAlpha       = 0.05 // Static grid overlay opacity
	VignetteEnabled = true

	// Palette
	AccentHex     = "#3B82F6"
	BackgroundHex = "#020617"
	HighlightHex  = "#FFFFFF"

	// Telemetry
	DefaultEndpoint = "http://127.0.0.1:5000"
	PollInterval    = time.Second
	RequestTimeout  = 2 * time.Second
	MaxPollBackoff  = 10 * time.Second
	HistorySize     = 10 // Chart samples kept
	LogSize         = 6  // Log lines kept
	ChartMinScale   = 8  // Chart y-axis never scales below this

	// Risk thresholds used by the demo source
	RiskMediumAt = 10
	RiskHighAt   = 15

	// App
	TargetFPS  = 30
	AppName    = "CROWDWATCH"
	AppVersion = "1.0"
)
