// Package config loads the eye display configuration from YAML.
//
// A file describes every panel (bus, pins, geometry), the sprite assets and
// the animation parameters shared by all eyes. Missing fields keep their
// defaults, which match a single 1.54" 240x240 panel wired to a Raspberry Pi.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"io"
	"os"
	"reflect"
	"strings"
	"time"

	"github.com/flavioheleno/st7789/eye"
	"gopkg.in/yaml.v3"
)

// Config is the whole configuration file.
type Config struct {
	// Hz is the SPI clock limit applied to every bus, 0 keeps the driver default.
	Hz int64 `yaml:"hz"`

	// Eyes lists one panel per eye. They are animated in this order.
	Eyes []Eye `yaml:"eyes"`

	Assets    Assets    `yaml:"assets"`
	Animation Animation `yaml:"animation"`
}

// Eye is one panel and its wiring.
type Eye struct {
	SPI       string `yaml:"spi"`       // spireg name, empty for the first bus
	DC        string `yaml:"dc"`        // Data/Command pin
	RST       string `yaml:"rst"`       // Reset pin, optional
	Backlight string `yaml:"backlight"` // Backlight pin, optional

	Width    int  `yaml:"width"`
	Height   int  `yaml:"height"`
	Rotation int  `yaml:"rotation"`
	RowStart int  `yaml:"rowstart"`
	ColStart int  `yaml:"colstart"`
	Invert   bool `yaml:"invert"`
	BGR      bool `yaml:"bgr"`
}

// Size returns the panel dimensions.
func (e Eye) Size() image.Point {
	return image.Pt(e.Width, e.Height)
}

// Assets names the sprite images. Empty paths select the built-in art.
type Assets struct {
	Eyeball     string `yaml:"eyeball"`
	Iris        string `yaml:"iris"`
	IrisSize    int    `yaml:"iris_size"`   // Diameter of the built-in iris
	Transparent int    `yaml:"transparent"` // Iris palette index shown as transparent
}

// Animation holds the eye.Config parameters that don't depend on geometry.
type Animation struct {
	Ease     float64       `yaml:"ease"`
	MinDwell time.Duration `yaml:"min_dwell"`
	MaxDwell time.Duration `yaml:"max_dwell"`
	Radius   float64       `yaml:"radius"`
}

// DefaultEye returns the wiring of a 1.54" panel on a Raspberry Pi.
func DefaultEye() Eye {
	return Eye{
		DC:        "GPIO25",
		RST:       "GPIO27",
		Backlight: "GPIO18",
		Width:     240,
		Height:    240,
		Rotation:  90,
		RowStart:  80,
		Invert:    true,
	}
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	def := eye.DefaultConfig()
	return &Config{
		Eyes: []Eye{DefaultEye()},
		Assets: Assets{
			IrisSize: 110,
		},
		Animation: Animation{
			Ease:     def.EaseFactor,
			MinDwell: def.MinDwell,
			MaxDwell: def.MaxDwell,
			Radius:   def.Radius,
		},
	}
}

// Load reads the configuration file at path on top of Default.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: failed to read %s: %w", path, err)
	}
	return Parse(data)
}

// Parse decodes YAML data on top of Default and validates the result.
// Unknown top-level fields are rejected.
func Parse(data []byte) (*Config, error) {
	cfg := Default()

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("config: failed to parse: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// eyeFields lists the yaml keys of Eye.
var eyeFields = func() map[string]bool {
	fields := make(map[string]bool)
	t := reflect.TypeOf(Eye{})
	for i := 0; i < t.NumField(); i++ {
		name, _, _ := strings.Cut(t.Field(i).Tag.Get("yaml"), ",")
		fields[name] = true
	}
	return fields
}()

// UnmarshalYAML decodes an eye on top of DefaultEye, so a file only needs
// to list what differs from the reference wiring. Unknown keys are
// rejected; Node.Decode doesn't inherit the decoder's KnownFields.
func (e *Eye) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind == yaml.MappingNode {
		for i := 0; i+1 < len(value.Content); i += 2 {
			key := value.Content[i]
			if !eyeFields[key.Value] {
				return fmt.Errorf("line %d: unknown eye field %q", key.Line, key.Value)
			}
		}
	}

	type plain Eye
	p := plain(DefaultEye())
	if err := value.Decode(&p); err != nil {
		return err
	}
	*e = Eye(p)
	return nil
}

// Validate checks the configuration.
func (c *Config) Validate() error {
	if len(c.Eyes) == 0 {
		return errors.New("config: at least one eye is required")
	}
	if c.Hz < 0 {
		return fmt.Errorf("config: hz %d must not be negative", c.Hz)
	}
	for i, e := range c.Eyes {
		if e.DC == "" {
			return fmt.Errorf("config: eye %d: dc pin is required", i)
		}
		if e.Width <= 0 || e.Height <= 0 {
			return fmt.Errorf("config: eye %d: invalid size %dx%d", i, e.Width, e.Height)
		}
		switch e.Rotation {
		case 0, 90, 180, 270:
		default:
			return fmt.Errorf("config: eye %d: rotation %d is not a multiple of 90", i, e.Rotation)
		}
	}
	if c.Assets.Iris == "" && c.Assets.IrisSize <= 0 {
		return errors.New("config: iris_size must be positive without an iris asset")
	}
	if c.Assets.Transparent < 0 || c.Assets.Transparent > 255 {
		return fmt.Errorf("config: transparent index %d outside [0, 255]", c.Assets.Transparent)
	}
	if err := c.Animation.EyeConfig(image.Point{}, image.Point{}).Validate(); err != nil {
		return fmt.Errorf("config: animation: %w", err)
	}
	return nil
}

// EyeConfig returns the animation parameters for an iris of size iris on a
// panel of size screen, centering the iris.
func (a Animation) EyeConfig(screen, iris image.Point) eye.Config {
	return eye.Config{
		EaseFactor: a.Ease,
		MinDwell:   a.MinDwell,
		MaxDwell:   a.MaxDwell,
		Center:     eye.Centered(screen, iris),
		Radius:     a.Radius,
	}
}
