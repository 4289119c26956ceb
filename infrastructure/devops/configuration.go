package devops

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"
)

type ClientConfig struct {
	BaseURL string `yaml:"baseUrl"`
}

const defaultBaseURL = "https://rcauthy.serveo.net"

var (
	once    sync.Once
	cfg     ClientConfig
	loadErr error
)

// ConfigDir is where the client keeps its config, device ID and session.
func ConfigDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".rcauthy"), nil
}

// LoadClientConfig reads config.yaml from the config dir once. A missing
// file is fine; RCAUTHY_BASE_URL overrides either way.
func LoadClientConfig() (ClientConfig, error) {
	once.Do(func() {
		cfg = ClientConfig{BaseURL: defaultBaseURL}

		dir, err := ConfigDir()
		if err != nil {
			loadErr = fmt.Errorf("resolve config dir: %w", err)
			return
		}

		data, err := os.ReadFile(filepath.Join(dir, "config.yaml"))
		if err != nil && !errors.Is(err, fs.ErrNotExist) {
			loadErr = fmt.Errorf("read config: %w", err)
			return
		}
		if err == nil {
			if err := yaml.Unmarshal(data, &cfg); err != nil {
				loadErr = fmt.Errorf("unmarshal yaml: %w", err)
				return
			}
		}

		if v := os.Getenv("RCAUTHY_BASE_URL"); v != "" {
			cfg.BaseURL = v
		}
		if cfg.BaseURL == "" {
			cfg.BaseURL = defaultBaseURL
		}
	})

	return cfg, loadErr
}

// EnsureDeviceID returns the install's device identifier, generating and
// persisting one on first use. The registration contract binds accounts
// to this value, so it must survive restarts.
func EnsureDeviceID() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	path := filepath.Join(dir, "device-id")

	data, err := os.ReadFile(path)
	if err == nil {
		id := strings.TrimSpace(string(data))
		if id != "" {
			return id, nil
		}
	} else if !errors.Is(err, fs.ErrNotExist) {
		return "", fmt.Errorf("read device id: %w", err)
	}

	id := uuid.New().String()
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return "", err
	}
	if err := os.WriteFile(path, []byte(id+"\n"), 0o600); err != nil {
		return "", fmt.Errorf("persist device id: %w", err)
	}

	return id, nil
}
