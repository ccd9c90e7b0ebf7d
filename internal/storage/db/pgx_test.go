package db

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tuanvumaihuynh/product-inventory/internal/config"
)

func TestConnectionString(t *testing.T) {
	t.Run("Should escape credentials", func(t *testing.T) {
		dsn := connectionString(config.Postgres{
			Host:     "db",
			Port:     5432,
			User:     "inv",
			Password: "p@ss/word",
			DB:       "inventory",
			SSLMode:  "disable",
		})

		assert.Equal(t, "postgres://inv:p%40ss%2Fword@db:5432/inventory?sslmode=disable", dsn)
	})
}
