package strategyconfig

import (
	"bytes"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Load reads a YAML file on top of the built-in defaults
// SSOT 핵심: KnownFields(true)로 오타/미사용 필드 즉시 실패
func Load(path string) (*Config, []byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, err
	}

	cfg, err := Parse(data)
	if err != nil {
		return nil, data, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, data, nil
}

// Parse decodes YAML bytes over the defaults and validates
func Parse(data []byte) (*Config, error) {
	cfg := Default()
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true) // 알 수 없는 필드 발견 시 에러 반환
	if err := dec.Decode(cfg); err != nil {
		return nil, err
	}

	if err := Validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadOrDefault 경로가 비어 있으면 내장 기본값
func LoadOrDefault(path string) (*Config, *Snapshot, error) {
	cfg := Default()
	source := "builtin"

	if path != "" {
		loaded, _, err := Load(path)
		if err != nil {
			return nil, nil, err
		}
		cfg = loaded
		source = path
	}

	hash, err := Hash(cfg)
	if err != nil {
		return nil, nil, err
	}

	return cfg, &Snapshot{
		StrategyID: cfg.Meta.StrategyID,
		ConfigHash: hash,
		Source:     source,
		LoadedAt:   time.Now(),
	}, nil
}

// Hash generates SHA256 hash from Config (canonical JSON)
// 주의: map 대신 struct 사용으로 해시 재현성 보장
func Hash(cfg *Config) (string, error) {
	jsonBytes, err := json.Marshal(cfg)
	if err != nil {
		return "", err
	}

	sum := sha256.Sum256(jsonBytes)
	return hex.EncodeToString(sum[:]), nil
}
