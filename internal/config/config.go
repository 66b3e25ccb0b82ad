// Package config loads site, server and map settings from YAML, with
// defaults and environment overrides.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/Ko-stant/outlook-map/internal/mapgen"
)

var (
	ErrUnknownKey    = errors.New("no config value for key")
	ErrInvalidConfig = errors.New("invalid config")
)

type Site struct {
	Name     string `yaml:"name"`
	URL      string `yaml:"url"`
	ShortURL string `yaml:"shorturl"`
}

type Server struct {
	Port      string `yaml:"port"`
	StaticDir string `yaml:"static_dir"`
	// ShutdownTimeout is parsed with time.ParseDuration.
	ShutdownTimeout string `yaml:"shutdown_timeout"`
}

type Map struct {
	Width        float64 `yaml:"width"`
	Height       float64 `yaml:"height"`
	Seed         uint64  `yaml:"seed"`
	AvatarRadius float64 `yaml:"avatar_radius"`
	PointsFile   string  `yaml:"points_file"`

	// AllowRegenerate lets any connected client replace the map for everyone.
	AllowRegenerate bool `yaml:"allow_regenerate"`
}

type Data struct {
	OccupationsFile string `yaml:"occupations_file"`
}

type Config struct {
	Site   Site   `yaml:"site"`
	Server Server `yaml:"server"`
	Map    Map    `yaml:"map"`
	Data   Data   `yaml:"data"`
}

func Default() *Config {
	return &Config{
		Site: Site{
			Name:     "Occupational Outlook Handbook",
			URL:      "http://ooh.gov",
			ShortURL: "ooh.gov",
		},
		Server: Server{
			Port:            "8080",
			StaticDir:       "internal/web/static",
			ShutdownTimeout: "5s",
		},
		Map: Map{
			Width:        1000,
			Height:       800,
			Seed:         1,
			AvatarRadius: 12,
			PointsFile:   "",

			AllowRegenerate: true,
		},
		Data: Data{
			OccupationsFile: "content/occupations.json",
		},
	}
}

// Load reads path over the defaults. An empty path returns the defaults.
// APP_PORT, when set, overrides the configured port.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config YAML: %w", err)
		}
	}

	if port := os.Getenv("APP_PORT"); port != "" {
		cfg.Server.Port = port
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	if c.Map.Width <= 0 || c.Map.Height <= 0 {
		return fmt.Errorf("%w: map size %gx%g", ErrInvalidConfig, c.Map.Width, c.Map.Height)
	}
	if c.Map.AvatarRadius <= 0 {
		return fmt.Errorf("%w: avatar radius %g", ErrInvalidConfig, c.Map.AvatarRadius)
	}
	if hub := mapgen.HubRadiusRatio * c.Map.Height; c.Map.AvatarRadius >= hub {
		return fmt.Errorf("%w: avatar radius %g does not fit the hub radius %g", ErrInvalidConfig, c.Map.AvatarRadius, hub)
	}
	if c.Server.Port == "" {
		return fmt.Errorf("%w: empty port", ErrInvalidConfig)
	}
	return nil
}

// Get returns the value for a dotted key such as "site.name".
func (c *Config) Get(key string) (any, error) {
	switch strings.ToLower(key) {
	case "site.name":
		return c.Site.Name, nil
	case "site.url":
		return c.Site.URL, nil
	case "site.shorturl":
		return c.Site.ShortURL, nil
	case "server.port":
		return c.Server.Port, nil
	case "server.static_dir":
		return c.Server.StaticDir, nil
	case "server.shutdown_timeout":
		return c.Server.ShutdownTimeout, nil
	case "map.width":
		return c.Map.Width, nil
	case "map.height":
		return c.Map.Height, nil
	case "map.seed":
		return c.Map.Seed, nil
	case "map.avatar_radius":
		return c.Map.AvatarRadius, nil
	case "map.points_file":
		return c.Map.PointsFile, nil
	case "map.allow_regenerate":
		return c.Map.AllowRegenerate, nil
	case "data.occupations_file":
		return c.Data.OccupationsFile, nil
	}
	return nil, fmt.Errorf("%w: %s", ErrUnknownKey, key)
}

// GetString is Get for string-valued keys; other values are formatted.
func (c *Config) GetString(key string) (string, error) {
	v, err := c.Get(key)
	if err != nil {
		return "", err
	}
	switch t := v.(type) {
	case string:
		return t, nil
	case float64:
		return strconv.FormatFloat(t, 'g', -1, 64), nil
	default:
		return fmt.Sprint(t), nil
	}
}
