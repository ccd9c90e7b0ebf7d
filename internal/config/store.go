package config

import (
	"fmt"
	"strings"
)

type Store struct {
	Driver StoreDriver `env:"STORE_DRIVER" envDefault:"MEMORY"`
	Seed   bool        `env:"STORE_SEED" envDefault:"true"`
}

// StoreDriver selects the backing store for products and categories.
type StoreDriver uint8

const (
	StoreDriverMemory StoreDriver = iota
	StoreDriverPostgres
)

// String returns the string representation of the store driver.
func (d StoreDriver) String() string {
	return []string{"MEMORY", "POSTGRES"}[d]
}

// UnmarshalText implements [encoding.TextUnmarshaler].
func (d *StoreDriver) UnmarshalText(text []byte) error {
	switch strings.ToUpper(string(text)) {
	case "MEMORY":
		*d = StoreDriverMemory
	case "POSTGRES":
		*d = StoreDriverPostgres
	default:
		return fmt.Errorf("unknown store driver: %s", text)
	}
	return nil
}

func (d StoreDriver) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}
