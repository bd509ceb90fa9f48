package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"github.com/dmitrijs2005/closet/internal/flagx"
	"github.com/dmitrijs2005/closet/internal/timex"
	"gopkg.in/yaml.v3"
)

// FileConfig is a DTO used exclusively for decoding config files. Pointer
// fields distinguish "absent" from "zero", so a file only overrides the keys
// it sets.
type FileConfig struct {
	BaseURL        *string         `json:"base_url" yaml:"base_url"`
	RequestTimeout *timex.Duration `json:"request_timeout" yaml:"request_timeout"`
	NoticeDuration *timex.Duration `json:"notice_duration" yaml:"notice_duration"`
	LogLevel       *string         `json:"log_level" yaml:"log_level"`
	LogFormat      *string         `json:"log_format" yaml:"log_format"`
}

func decodeFile(path string, data []byte, fc *FileConfig) error {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return yaml.Unmarshal(data, fc)
	default:
		return json.Unmarshal(data, fc)
	}
}

func (fc *FileConfig) apply(cfg *Config) {
	if fc.BaseURL != nil {
		cfg.BaseURL = *fc.BaseURL
	}
	if fc.RequestTimeout != nil {
		cfg.RequestTimeout = fc.RequestTimeout.Duration
	}
	if fc.NoticeDuration != nil {
		cfg.NoticeDuration = fc.NoticeDuration.Duration
	}
	if fc.LogLevel != nil {
		cfg.LogLevel = *fc.LogLevel
	}
	if fc.LogFormat != nil {
		cfg.LogFormat = *fc.LogFormat
	}
}

// parseFile overlays Config with values from the file named by -c/-config.
// It does nothing when no file is given and panics on read or decode errors
// (main recovers nothing: a broken config file is fatal at startup).
func parseFile(cfg *Config) {
	path := flagx.ConfigFileFlag()
	if path == "" {
		return
	}

	data, err := os.ReadFile(path)
	if err != nil {
		panic(err)
	}

	var fc FileConfig
	if err := decodeFile(path, data, &fc); err != nil {
		panic(err)
	}
	fc.apply(cfg)
}
