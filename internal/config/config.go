// Package config handles game configuration loading and management.
package config

// Config holds all game settings.
type Config struct {
	Graphics GraphicsConfig `yaml:"graphics"`
	Game     GameConfig     `yaml:"game"`
	Data     DataConfig     `yaml:"data"`
	Logging  LoggingConfig  `yaml:"logging"`
}

// GraphicsConfig holds display settings.
type GraphicsConfig struct {
	Width      int  `yaml:"width"`
	Height     int  `yaml:"height"`
	Fullscreen bool `yaml:"fullscreen"`
	VSync      bool `yaml:"vsync"`
}

// GameConfig holds gameplay settings.
type GameConfig struct {
	StartRoom   string  `yaml:"start_room"`
	WalkSpeed   float32 `yaml:"walk_speed"`   // Avatar speed, world units/sec
	ZombieCount int     `yaml:"zombie_count"` // Hostiles spawned per room
	Language    string  `yaml:"language"`
	ShowFPS     bool    `yaml:"show_fps"`
}

// DataConfig holds game data file paths.
type DataConfig struct {
	RoomsDir string `yaml:"rooms_dir"` // Directory of room definitions
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Graphics: GraphicsConfig{
			Width:      960,
			Height:     600,
			Fullscreen: false,
			VSync:      true,
		},
		Game: GameConfig{
			StartRoom:   "street",
			WalkSpeed:   120.0,
			ZombieCount: 2,
			Language:    "en",
			ShowFPS:     false,
		},
		Data: DataConfig{
			RoomsDir: "rooms",
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}
