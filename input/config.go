package input

import (
	"fmt"
	"io/ioutil"
	"os"
	"strings"

	"gopkg.in/yaml.v2"

	crc "github.com/pd0mz/go-crc"
)

// Config selects the engine and the message source of a checksum run.
type Config struct {
	// Engine is the name of the checksum engine, see crc.Engines.
	Engine string

	// Source is one of SourceHex, SourceBits, SourceText or SourcePCAP.
	Source string

	// Charset used to encode text sources.
	Charset string

	// Capacity is the largest message size in bytes.
	Capacity int

	// Verbose enables debug logging.
	Verbose bool
}

func (c *Config) defaults() {
	if c.Source == "" {
		c.Source = SourceHex
	}
	if c.Charset == "" {
		c.Charset = CharsetBinary
	}
	if c.Capacity == 0 {
		c.Capacity = DefaultCapacity
	}
}

// Validate checks the configuration for unknown names and bad sizes.
func (c *Config) Validate() error {
	if _, err := crc.Lookup(c.Engine); err != nil {
		return err
	}
	if _, ok := SourceName[c.Source]; !ok {
		return fmt.Errorf("crc/input: unknown source %q", c.Source)
	}
	if c.Source == SourceText {
		if _, ok := charsets[strings.ToLower(c.Charset)]; !ok {
			return fmt.Errorf("%w %q", ErrUnknownCharset, c.Charset)
		}
	}
	if c.Capacity < 1 {
		return fmt.Errorf("crc/input: capacity must be positive, got %d", c.Capacity)
	}
	return nil
}

// ParseConfig parses a YAML configuration. Missing values are set to their
// defaults; the engine has no default and must be set by the caller if it is
// missing from the configuration.
func ParseConfig(data []byte) (*Config, error) {
	c := &Config{}
	if err := yaml.Unmarshal(data, c); err != nil {
		return nil, fmt.Errorf("crc/input: config: %v", err)
	}
	c.defaults()
	return c, nil
}

// LoadConfig reads and parses the YAML configuration file at path.
func LoadConfig(path string) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	d, err := ioutil.ReadAll(f)
	if err != nil {
		return nil, err
	}
	return ParseConfig(d)
}

// NewConfig returns a configuration for engine with all defaults set.
func NewConfig(engine string) *Config {
	c := &Config{Engine: engine}
	c.defaults()
	return c
}
