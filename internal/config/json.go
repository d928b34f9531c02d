package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig mirrors [StructuredConfig] with JSON tags and
// string-friendly durations.
type StructuredJSONConfig struct {
	Remote struct {
		Backend string `json:"backend"`
		Folder  string `json:"folder"`
	} `json:"remote,omitempty"`

	Dropbox struct {
		AppKey         string   `json:"app_key"`
		AppSecret      string   `json:"app_secret"`
		RefreshToken   string   `json:"refresh_token"`
		AccessToken    string   `json:"access_token"`
		APIURL         string   `json:"api_url"`
		ContentURL     string   `json:"content_url"`
		TokenURL       string   `json:"token_url"`
		RequestTimeout Duration `json:"request_timeout"`
		MaxRetries     *int     `json:"max_retries"`
	} `json:"dropbox,omitempty"`

	S3 struct {
		Bucket          string   `json:"bucket"`
		Region          string   `json:"region"`
		Endpoint        string   `json:"endpoint"`
		UsePathStyle    bool     `json:"use_path_style"`
		AccessKeyID     string   `json:"access_key_id"`
		SecretAccessKey string   `json:"secret_access_key"`
		RequestTimeout  Duration `json:"request_timeout"`
	} `json:"s3,omitempty"`

	Local struct {
		Directory string `json:"directory"`
	} `json:"local,omitempty"`

	Sync struct {
		Policy      string   `json:"policy"`
		Traversal   string   `json:"traversal"`
		NoModTime   bool     `json:"no_mtime"`
		DryRun      bool     `json:"dry_run"`
		Interval    Duration `json:"interval"`
		Interactive bool     `json:"interactive"`
	} `json:"sync,omitempty"`

	Log struct {
		Level  string `json:"level"`
		Format string `json:"format"`
		File   string `json:"file"`
	} `json:"log,omitempty"`

	Metrics struct {
		File string `json:"file"`
	} `json:"metrics,omitempty"`
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
		Remote: Remote{
			Backend: jsonCfg.Remote.Backend,
			Folder:  jsonCfg.Remote.Folder,
		},
		Dropbox: Dropbox{
			AppKey:         jsonCfg.Dropbox.AppKey,
			AppSecret:      jsonCfg.Dropbox.AppSecret,
			RefreshToken:   jsonCfg.Dropbox.RefreshToken,
			AccessToken:    jsonCfg.Dropbox.AccessToken,
			APIURL:         jsonCfg.Dropbox.APIURL,
			ContentURL:     jsonCfg.Dropbox.ContentURL,
			TokenURL:       jsonCfg.Dropbox.TokenURL,
			RequestTimeout: time.Duration(jsonCfg.Dropbox.RequestTimeout),
			MaxRetries:     jsonCfg.Dropbox.MaxRetries,
		},
		S3: S3{
			Bucket:          jsonCfg.S3.Bucket,
			Region:          jsonCfg.S3.Region,
			Endpoint:        jsonCfg.S3.Endpoint,
			UsePathStyle:    jsonCfg.S3.UsePathStyle,
			AccessKeyID:     jsonCfg.S3.AccessKeyID,
			SecretAccessKey: jsonCfg.S3.SecretAccessKey,
			RequestTimeout:  time.Duration(jsonCfg.S3.RequestTimeout),
		},
		Local: Local{
			Directory: jsonCfg.Local.Directory,
		},
		Sync: Sync{
			Policy:      jsonCfg.Sync.Policy,
			Traversal:   jsonCfg.Sync.Traversal,
			NoModTime:   jsonCfg.Sync.NoModTime,
			DryRun:      jsonCfg.Sync.DryRun,
			Interval:    time.Duration(jsonCfg.Sync.Interval),
			Interactive: jsonCfg.Sync.Interactive,
		},
		Log: Log{
			Level:  jsonCfg.Log.Level,
			Format: jsonCfg.Log.Format,
			File:   jsonCfg.Log.File,
		},
		Metrics: Metrics{
			File: jsonCfg.Metrics.File,
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
		return fmt.Errorf("invalid duration %s", string(b))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
