package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig is the layout of the JSON configuration file.
type StructuredJSONConfig struct {
	App struct {
		Version string `json:"version"`
	} `json:"app,omitempty"`

	Agent struct {
		MaxPassTries  int      `json:"max_pass_tries"`
		EvictInterval Duration `json:"evict_interval"`
		LockHashCost  int      `json:"lock_hash_cost"`
	} `json:"agent,omitempty"`

	Storage struct {
		DSN       string `json:"dsn"`
		ConfigDir string `json:"config_dir"`
	} `json:"storage,omitempty"`

	Prompt struct {
		Mode string `json:"mode"`
	} `json:"prompt,omitempty"`

	Log struct {
		Level string `json:"level"`
		File  string `json:"file"`
	} `json:"log,omitempty"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &StructuredConfig{
		App: App{
			Version: jsonCfg.App.Version,
		},
		Agent: Agent{
			MaxPassTries:  jsonCfg.Agent.MaxPassTries,
			EvictInterval: time.Duration(jsonCfg.Agent.EvictInterval),
			LockHashCost:  jsonCfg.Agent.LockHashCost,
		},
		Storage: Storage{
			DSN:       jsonCfg.Storage.DSN,
			ConfigDir: jsonCfg.Storage.ConfigDir,
		},
		Prompt: Prompt{
			Mode: jsonCfg.Prompt.Mode,
		},
		Log: Log{
			Level: jsonCfg.Log.Level,
			File:  jsonCfg.Log.File,
		},
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling from strings like "1h", "30s"
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
		return json.Unmarshal(b, (*time.Duration)(d))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
