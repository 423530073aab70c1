package config

import (
	"errors"
	"fmt"
	"runtime"

	"github.com/nondejus/lisk-vanity/pkg/matcher"
)

// Errors
var (
	ErrNoDevices = errors.New("no computation devices specified")
)

// Config holds the validated run parameters. Parsing happens in cmd; the
// search core consumes these as already-checked values.
type Config struct {
	MaxLength       int    // maximum decimal digits of the address
	GenerateKeypair bool   // raw private key mode instead of passphrase mode
	Threads         int    // CPU worker count
	GPU             bool   // enable the accelerator worker
	GPUThreads      uint64 // accelerator batch size
	GPUPlatform     int
	GPUDevice       int
	Limit           uint64 // stop after this many solutions, 0 = unbounded
	NoProgress      bool   // disable the reporter and attempt counting
	SimpleOutput    bool   // one-line "<key> <address>" output
}

// NewConfig creates a configuration with the default values. The default
// thread count leaves one core free for the rest of the machine.
func NewConfig() *Config {
	return &Config{
		MaxLength:  14,
		Threads:    runtime.NumCPU() - 1,
		GPUThreads: 1 << 20,
		Limit:      1,
	}
}

// Validate checks the configuration before any search state is built.
func (c *Config) Validate() error {
	if c.MaxLength < 1 || c.MaxLength > matcher.MaxLength {
		return fmt.Errorf("address length must be between 1 and %d, got %d", matcher.MaxLength, c.MaxLength)
	}
	if c.Threads < 0 {
		return fmt.Errorf("thread count must not be negative, got %d", c.Threads)
	}
	if c.GPU && c.GPUThreads == 0 {
		return fmt.Errorf("gpu thread count must be positive")
	}
	if c.Threads == 0 && !c.GPU {
		return ErrNoDevices
	}
	return nil
}
