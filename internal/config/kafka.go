package config

type Kafka struct {
	Addresses []string `env:"KAFKA_ADDRESSES" envSeparator:","`
	Group     string   `env:"KAFKA_GROUP" envDefault:"product-inventory"`
	ClientID  string   `env:"KAFKA_CLIENT_ID" envDefault:"product-inventory"`
}

// Enabled reports whether a broker address was configured.
func (k Kafka) Enabled() bool {
	return len(k.Addresses) > 0
}
