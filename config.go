package stenografi

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/amirrezaask/stenografi/symbols"
)

type Config struct {
	LibraryPath  string
	ResourcesDir string
	FontName     string
	FontSize     int
	Zoom         float32
	WindowWidth  int
	WindowHeight int
	Strict       bool
	Layout       LayoutOptions
	Alphabet     symbols.Alphabet
}

var defaultConfig = Config{
	LibraryPath:  "res/library.json",
	ResourcesDir: "res",
	FontName:     "DejaVuSans",
	FontSize:     25,
	Zoom:         0.5,
	WindowWidth:  1280,
	WindowHeight: 720,
	Layout: LayoutOptions{
		Start:            Vec2{X: 60, Y: 180},
		WordSpacing:      80,
		LineHeight:       330,
		AverageWordWidth: 290,
	},
}

func DefaultConfig() *Config {
	cfg := defaultConfig
	cfg.Alphabet = symbols.Default()
	return &cfg
}

func parseFloat(value string) (float32, error) {
	f, err := strconv.ParseFloat(value, 32)
	return float32(f), err
}

func addToConfig(cfg *Config, key string, value string) error {
	var err error
	switch key {
	case "library":
		cfg.LibraryPath = value
	case "resources":
		cfg.ResourcesDir = value
	case "font":
		cfg.FontName = value
	case "font_size":
		cfg.FontSize, err = strconv.Atoi(value)
	case "zoom":
		cfg.Zoom, err = parseFloat(value)
		if err == nil && cfg.Zoom <= 0 {
			err = errors.New("zoom must be positive")
		}
	case "width":
		cfg.WindowWidth, err = strconv.Atoi(value)
	case "height":
		cfg.WindowHeight, err = strconv.Atoi(value)
	case "strict":
		cfg.Strict = value == "true"
	case "word_spacing":
		cfg.Layout.WordSpacing, err = parseFloat(value)
	case "line_height":
		cfg.Layout.LineHeight, err = parseFloat(value)
	case "word_width":
		cfg.Layout.AverageWordWidth, err = parseFloat(value)
	case "start_x":
		cfg.Layout.Start.X, err = parseFloat(value)
	case "start_y":
		cfg.Layout.Start.Y, err = parseFloat(value)
	case "alphabet":
		cfg.Alphabet, err = parseAlphabet(value)
	}

	return err
}

// parseAlphabet reads a space separated list of symbol names, highest
// priority first. Shadowed symbols are rejected since they could never be
// produced.
func parseAlphabet(value string) (symbols.Alphabet, error) {
	var alphabet symbols.Alphabet
	for _, name := range strings.Fields(value) {
		sym, err := symbols.FromName(name)
		if err != nil {
			return nil, err
		}
		alphabet = append(alphabet, sym)
	}
	if len(alphabet) == 0 {
		return nil, errors.New("alphabet is empty")
	}
	if err := alphabet.Validate(); err != nil {
		return nil, err
	}
	return alphabet, nil
}

func ParseConfig(content string) (*Config, error) {
	cfg := DefaultConfig()
	lines := strings.Split(content, "\n")

	for i, line := range lines {
		line = strings.Trim(line, " \t\r")
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		splitted := strings.SplitN(line, " ", 2)
		if len(splitted) != 2 {
			continue
		}
		key := strings.Trim(splitted[0], " \t\r")
		value := strings.Trim(splitted[1], " \t\r")
		if err := addToConfig(cfg, key, value); err != nil {
			return nil, fmt.Errorf("config line %d (%s): %w", i+1, key, err)
		}
	}

	return cfg, nil
}

// ReadConfig reads cfgPath, a missing file means defaults.
func ReadConfig(cfgPath string) (*Config, error) {
	if _, err := os.Stat(cfgPath); errors.Is(err, os.ErrNotExist) {
		return DefaultConfig(), nil
	}
	bs, err := os.ReadFile(cfgPath)
	if err != nil {
		return nil, err
	}

	return ParseConfig(string(bs))
}
