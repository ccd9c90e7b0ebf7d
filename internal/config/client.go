package config

import "time"

type Client struct {
	BaseURL string        `env:"INVENTORY_API_URL" envDefault:"http://localhost:8000"`
	Timeout time.Duration `env:"INVENTORY_API_TIMEOUT" envDefault:"10s"`
}
