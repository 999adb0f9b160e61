package linklist

import (
	"encoding/json"
	"fmt"
	"os"
)

// persistedConfig describes a saved data file. It lives next to the data in
// <path>.config so the data file itself stays header-less.
type persistedConfig struct {
	RecordSize  int    `json:"record_size"`
	Records     uint64 `json:"records"`
	Fingerprint string `json:"fingerprint"`
}

func configPath(base string) string { return base + ".config" }

func writeConfig(path string, cfg persistedConfig) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create config file: %w", err)
	}
	defer f.Close()
	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	if err := enc.Encode(cfg); err != nil {
		return fmt.Errorf("encode config: %w", err)
	}
	return nil
}

// readConfig loads the sidecar for a data file. ok is false when there is no
// sidecar.
func readConfig(path string) (cfg persistedConfig, ok bool, err error) {
	f, err := os.Open(path)
	if os.IsNotExist(err) {
		return cfg, false, nil
	}
	if err != nil {
		return cfg, false, fmt.Errorf("open config file: %w", err)
	}
	defer f.Close()
	if err := json.NewDecoder(f).Decode(&cfg); err != nil {
		return cfg, false, fmt.Errorf("decode config: %w", err)
	}
	return cfg, true, nil
}

// verify checks a data file against the sidecar and reports every mismatch.
func (cfg persistedConfig) verify(recordSize int, data []byte) error {
	if cfg.RecordSize != recordSize {
		return fmt.Errorf("config mismatch: record_size %d, list uses %d", cfg.RecordSize, recordSize)
	}
	if n := uint64(len(data) / recordSize); n != cfg.Records {
		return fmt.Errorf("config mismatch: records %d, file holds %d", cfg.Records, n)
	}
	if want := fmt.Sprintf("%016x", fingerprintBytes(data)); cfg.Fingerprint != "" && cfg.Fingerprint != want {
		return fmt.Errorf("config mismatch: fingerprint %s, file has %s", cfg.Fingerprint, want)
	}
	return nil
}
