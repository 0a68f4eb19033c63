package findbugs

import (
	"bytes"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/go-playground/validator/v10"
	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"
)

// Config holds the settings of a report run. Threshold and effort are kept
// as names, they are resolved tolerantly when the run starts.
type Config struct {
	Threshold       string   `yaml:"threshold" toml:"threshold"`
	Effort          string   `yaml:"effort" toml:"effort"`
	Formats         []string `yaml:"formats" toml:"formats" validate:"min=1,dive,oneof=html xml"`
	OutputDirectory string   `yaml:"outputDirectory" toml:"outputDirectory" validate:"required"`
	OutputName      string   `yaml:"outputName" toml:"outputName" validate:"required,excludesall=/"`
	Locale          string   `yaml:"locale" toml:"locale"`
	LinkXref        bool     `yaml:"linkXref" toml:"linkXref"`
	XrefLocation    string   `yaml:"xrefLocation" toml:"xrefLocation"`
	DetailsLink     bool     `yaml:"detailsLink" toml:"detailsLink"`
	EngineVersion   string   `yaml:"engineVersion" toml:"engineVersion"`
	ClassesDir      string   `yaml:"classesDirectory" toml:"classesDirectory"`
}

// NewConfig initializes a configuration with the defaults of the plugin.
func NewConfig() *Config {
	return &Config{
		Formats:         []string{"html"},
		OutputDirectory: "target/site",
		OutputName:      "findbugs",
		XrefLocation:    "xref",
		DetailsLink:     true,
	}
}

// ReadFrom implements the io.ReaderFrom interface. The YAML document is
// merged into the current values.
func (c *Config) ReadFrom(r io.Reader) (int64, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return int64(len(data)), err
	}
	if err = yaml.Unmarshal(data, c); err != nil {
		return int64(len(data)), fmt.Errorf("parsing config: %w", err)
	}
	return int64(len(data)), nil
}

// WriteTo implements the io.WriterTo interface. This should
// be used to save or print out the configuration information.
func (c *Config) WriteTo(w io.Writer) (int64, error) {
	data, err := yaml.Marshal(c)
	if err != nil {
		return 0, err
	}
	return io.Copy(w, bytes.NewReader(data))
}

// LoadConfig reads a YAML or TOML configuration file, chosen by extension,
// on top of the defaults.
func LoadConfig(fs afero.Fs, path string) (*Config, error) {
	cfg := NewConfig()
	data, err := afero.ReadFile(fs, path)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		if _, err := toml.Decode(string(data), cfg); err != nil {
			return nil, fmt.Errorf("parsing config file: %w", err)
		}
	default:
		if _, err := cfg.ReadFrom(bytes.NewReader(data)); err != nil {
			return nil, err
		}
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}
	return cfg, nil
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// Validate checks the structural settings. Threshold and effort names are
// not validated, unknown names fall back to their defaults.
func (c *Config) Validate() error {
	return validate.Struct(c)
}
