package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// fileConfig mirrors [StructuredConfig] for JSON and YAML config files.
type fileConfig struct {
	App struct {
		Debug      string `json:"debug" yaml:"debug"`
		IntentName string `json:"intent_name" yaml:"intent_name"`
	} `json:"app" yaml:"app"`

	Server struct {
		HTTPAddress    string   `json:"http_address" yaml:"http_address"`
		SkillPath      string   `json:"skill_path" yaml:"skill_path"`
		MaxBodySize    string   `json:"max_body_size" yaml:"max_body_size"`
		MaxConnections int      `json:"max_connections" yaml:"max_connections"`
		RequestTimeout Duration `json:"request_timeout" yaml:"request_timeout"`
	} `json:"server" yaml:"server"`

	Downstream struct {
		WebhookURL string   `json:"webhook_url" yaml:"webhook_url"`
		Timeout    Duration `json:"timeout" yaml:"timeout"`
	} `json:"downstream" yaml:"downstream"`

	Verification struct {
		Signature          string   `json:"signature" yaml:"signature"`
		TimestampTolerance Duration `json:"timestamp_tolerance" yaml:"timestamp_tolerance"`
		SkillID            string   `json:"skill_id" yaml:"skill_id"`
		CertCacheSize      int      `json:"cert_cache_size" yaml:"cert_cache_size"`
	} `json:"verification" yaml:"verification"`
}

// parseFile reads a JSON (.json) or YAML (.yaml, .yml) config file.
func parseFile(path string) (*StructuredConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error reading config file: %w", err)
	}

	var fc fileConfig
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		err = json.Unmarshal(data, &fc)
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &fc)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedConfigFile, path)
	}
	if err != nil {
		return nil, fmt.Errorf("error decoding config file: %w", err)
	}

	return &StructuredConfig{
		App: App{
			Debug:      fc.App.Debug,
			IntentName: fc.App.IntentName,
		},
		Server: Server{
			HTTPAddress:    fc.Server.HTTPAddress,
			SkillPath:      fc.Server.SkillPath,
			MaxBodySize:    fc.Server.MaxBodySize,
			MaxConnections: fc.Server.MaxConnections,
			RequestTimeout: time.Duration(fc.Server.RequestTimeout),
		},
		Downstream: Downstream{
			WebhookURL: fc.Downstream.WebhookURL,
			Timeout:    time.Duration(fc.Downstream.Timeout),
		},
		Verification: Verification{
			Signature:          fc.Verification.Signature,
			TimestampTolerance: time.Duration(fc.Verification.TimestampTolerance),
			SkillID:            fc.Verification.SkillID,
			CertCacheSize:      fc.Verification.CertCacheSize,
		},
	}, nil
}

// Duration is a wrapper around time.Duration that decodes from strings like
// "1h" or "30s" as well as from plain nanosecond numbers, in JSON and YAML.
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v any
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return fmt.Errorf("invalid duration %s", string(b))
	}
}

func (d *Duration) UnmarshalYAML(node *yaml.Node) error {
	if node.Tag == "!!int" {
		var n int64
		if err := node.Decode(&n); err != nil {
			return err
		}
		*d = Duration(time.Duration(n))
		return nil
	}

	tmp, err := time.ParseDuration(node.Value)
	if err != nil {
		return err
	}
	*d = Duration(tmp)
	return nil
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
