package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	Server   ServerConfig
	Merchant MerchantConfig
}

type ServerConfig struct {
	Host string
	Port int
}

type MerchantConfig struct {
	VPA  string
	Name string
}

func New() (*Config, error) {
	const op = "config.New"

	_ = godotenv.Load()

	serverHost := os.Getenv("SERVER_HOST")
	if serverHost == "" {
		serverHost = "localhost"
	}

	serverPortStr := os.Getenv("SERVER_PORT")
	if serverPortStr == "" {
		serverPortStr = "8080"
	}

	serverPort, err := strconv.Atoi(serverPortStr)
	if err != nil {
		return nil, fmt.Errorf("%s: invalid SERVER_PORT: %w", op, err)
	}

	merchantVPA := os.Getenv("MERCHANT_VPA")
	if merchantVPA == "" {
		merchantVPA = "mswipe.1400111324038715@kotak"
	}

	merchantName := os.Getenv("MERCHANT_NAME")
	if merchantName == "" {
		merchantName = "BookMyShow"
	}

	return &Config{
		Server: ServerConfig{
			Host: serverHost,
			Port: serverPort,
		},
		Merchant: MerchantConfig{
			VPA:  merchantVPA,
			Name: merchantName,
		},
	}, nil
}
