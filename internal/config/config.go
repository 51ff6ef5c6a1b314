package config

import (
	"os"
	"time"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Duration makes time.Duration yaml-decodable from strings like "10s".
type Duration time.Duration

func (d *Duration) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return err
	}
	parsed, err := time.ParseDuration(s)
	if err != nil {
		return errors.Wrapf(err, "parse duration %q", s)
	}
	*d = Duration(parsed)
	return nil
}

func (d Duration) Std() time.Duration { return time.Duration(d) }

type ChainConfig struct {
	Chain           string   `yaml:"chain"`
	BlockInterval   Duration `yaml:"block_interval"`
	TxInterval      Duration `yaml:"tx_interval"`
	MempoolInterval Duration `yaml:"mempool_interval"`
}

type BackendConfig struct {
	BaseURL  string   `yaml:"base_url"`
	APIKey   string   `yaml:"api_key"`
	CacheTTL Duration `yaml:"cache_ttl"`
}

type FeedConfig struct {
	Limit        int `yaml:"limit"`
	HistoryDepth int `yaml:"history_depth"`
}

type AppConfig struct {
	Backend BackendConfig `yaml:"backend"`
	Chains  []ChainConfig `yaml:"chains"`
	Feed    FeedConfig    `yaml:"feed"`
}

func LoadConfig(path string) (*AppConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var cfg AppConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, errors.Wrapf(err, "parse config %s", path)
	}
	cfg.applyDefaults()
	return &cfg, nil
}

func (c *AppConfig) applyDefaults() {
	if c.Backend.CacheTTL == 0 {
		c.Backend.CacheTTL = Duration(5 * time.Second)
	}
	if c.Feed.Limit == 0 {
		c.Feed.Limit = 25
	}
	if c.Feed.HistoryDepth == 0 {
		c.Feed.HistoryDepth = 5
	}
	for i := range c.Chains {
		cc := &c.Chains[i]
		if cc.BlockInterval == 0 {
			cc.BlockInterval = Duration(10 * time.Second)
		}
		if cc.TxInterval == 0 {
			cc.TxInterval = Duration(10 * time.Second)
		}
		if cc.MempoolInterval == 0 {
			cc.MempoolInterval = Duration(5 * time.Second)
		}
	}
}
