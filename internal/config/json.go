package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig mirrors [StructuredConfig] in the layout accepted from
// a JSON file. Durations may be given as strings ("15s") or nanoseconds.
type StructuredJSONConfig struct {
	App struct {
		OrderTransitions string `json:"order_transitions"`
		LogFile          string `json:"log_file"`
	} `json:"app,omitempty"`

	Adapter struct {
		HTTPAddress    string   `json:"http_address"`
		RequestTimeout Duration `json:"request_timeout"`
	} `json:"adapter,omitempty"`

	Storage struct {
		DB struct {
			DSN string `json:"dsn"`
		} `json:"db,omitempty"`
	} `json:"storage,omitempty"`

	Workers struct {
		PersistInterval Duration `json:"persist_interval"`
	} `json:"workers,omitempty"`

	Stub struct {
		HTTPAddress   string   `json:"http_address"`
		AdminUser     string   `json:"admin_user"`
		AdminPassword string   `json:"admin_password"`
		TokenSignKey  string   `json:"token_sign_key"`
		TokenIssuer   string   `json:"token_issuer"`
		TokenDuration Duration `json:"token_duration"`
		SeedDemoData  bool     `json:"seed_demo_data"`
	} `json:"stub,omitempty"`
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
			OrderTransitions: jsonCfg.App.OrderTransitions,
			LogFile:          jsonCfg.App.LogFile,
		},
		Adapter: Adapter{
			HTTPAddress:    jsonCfg.Adapter.HTTPAddress,
			RequestTimeout: time.Duration(jsonCfg.Adapter.RequestTimeout),
		},
		Storage: Storage{
			DB: DB{DSN: jsonCfg.Storage.DB.DSN},
		},
		Workers: Workers{
			PersistInterval: time.Duration(jsonCfg.Workers.PersistInterval),
		},
		Stub: Stub{
			HTTPAddress:   jsonCfg.Stub.HTTPAddress,
			AdminUser:     jsonCfg.Stub.AdminUser,
			AdminPassword: jsonCfg.Stub.AdminPassword,
			TokenSignKey:  jsonCfg.Stub.TokenSignKey,
			TokenIssuer:   jsonCfg.Stub.TokenIssuer,
			TokenDuration: time.Duration(jsonCfg.Stub.TokenDuration),
			SeedDemoData:  jsonCfg.Stub.SeedDemoData,
		},
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling from strings like "1h", "30s"
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v interface{}
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
		return fmt.Errorf("invalid duration: %s", string(b))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
