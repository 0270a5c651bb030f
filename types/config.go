package types

import (
	"github.com/BurntSushi/toml"
)

// Config is the whole TOML configuration of a local ledger.
type Config struct {
	Title   string            `toml:"title"`
	Ledger  *LedgerConfig     `toml:"ledger"`
	Log     *LogConfig        `toml:"log"`
	RPS     *RPSConfig        `toml:"rps"`
	Genesis []*GenesisAccount `toml:"genesis"`
}

// LedgerConfig selects and locates the state database backend.
type LedgerConfig struct {
	Driver  string `toml:"driver"`
	DbPath  string `toml:"dbPath"`
	DbCache int32  `toml:"dbCache"`
}

// LogConfig mirrors the console/file logging knobs.
type LogConfig struct {
	Loglevel        string `toml:"loglevel"`
	LogConsoleLevel string `toml:"logConsoleLevel"`
	LogFile         string `toml:"logFile"`
	MaxFileSize     uint32 `toml:"maxFileSize"`
	MaxBackups      uint32 `toml:"maxBackups"`
	MaxAge          uint32 `toml:"maxAge"`
	LocalTime       bool   `toml:"localTime"`
	Compress        bool   `toml:"compress"`
}

// RPSConfig carries the executor parameters.
type RPSConfig struct {
	// RevealTimeout is the grace period in seconds after a game ends
	// during which settlement requires both reveals.
	RevealTimeout int64 `toml:"revealTimeout"`
}

// GenesisAccount funds one address at ledger initialization.
type GenesisAccount struct {
	Addr    string `toml:"addr"`
	Balance int64  `toml:"balance"`
}

// InitCfg reads the configuration file and fills defaults.
func InitCfg(path string) (*Config, error) {
	var cfg Config
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return nil, err
	}
	cfg.FillDefaults()
	return &cfg, nil
}

// FillDefaults completes missing sections so callers never nil-check.
func (c *Config) FillDefaults() {
	if c.Ledger == nil {
		c.Ledger = &LedgerConfig{}
	}
	if c.Ledger.Driver == "" {
		c.Ledger.Driver = "goleveldb"
	}
	if c.Ledger.DbPath == "" {
		c.Ledger.DbPath = "datadir"
	}
	if c.Ledger.DbCache <= 0 {
		c.Ledger.DbCache = 64
	}
	if c.RPS == nil {
		c.RPS = &RPSConfig{}
	}
	if c.RPS.RevealTimeout <= 0 {
		c.RPS.RevealTimeout = DefaultRevealTimeout
	}
}
