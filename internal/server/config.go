package server

import (
	"os"

	"gopkg.in/yaml.v3"
)

// Config — настройки сервера; файл необязателен, все поля имеют умолчания
type Config struct {
	Addr      string `yaml:"addr"`
	StaticDir string `yaml:"static_dir"`

	Defaults struct {
		Eps     float64 `yaml:"eps"`
		FEps    float64 `yaml:"feps"`
		Order   int     `yaml:"order"`
		MaxEval int     `yaml:"max_eval"`
	} `yaml:"defaults"`
}

func DefaultConfig() Config {
	var c Config
	c.Addr = ":8080"
	c.StaticDir = "static"
	c.Defaults.Eps = 1e-10
	c.Defaults.FEps = 0
	c.Defaults.Order = 5
	c.Defaults.MaxEval = 200
	return c
}

// LoadConfig читает YAML-файл поверх умолчаний; пустой путь — только умолчания
func LoadConfig(path string) (Config, error) {
	c := DefaultConfig()
	if path == "" {
		return c, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return c, err
	}
	if err := yaml.Unmarshal(data, &c); err != nil {
		return c, err
	}
	if c.Addr == "" {
		c.Addr = ":8080"
	}
	if c.StaticDir == "" {
		c.StaticDir = "static"
	}
	return c, nil
}
