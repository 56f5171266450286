package config

import (
	"log"

	"github.com/gookit/config/v2"
	"github.com/gookit/config/v2/json"
	"github.com/gookit/config/v2/toml"
	"github.com/gookit/config/v2/yaml"
)

type Config struct {
	*config.Config
}

func MustLoad(paths ...string) *Config {
	c, err := Load(paths...)
	if err != nil {
		log.Fatal(err)
	}
	return c
}

// Load reads the given json | yaml | toml files in order. With no paths the
// config is empty and only `default` tags apply when binding.
func Load(paths ...string) (c *Config, err error) {
	newConfig := config.New("hstore").WithOptions(
		config.WithTagName("config"),
		config.ParseEnv,
		config.ParseTime,
		config.ParseDefault,
	)

	c = &Config{newConfig}
	c.AddDriver(json.Driver)
	c.AddDriver(toml.Driver)
	c.AddDriver(yaml.Driver)

	if len(paths) == 0 {
		return
	}
	err = c.LoadFiles(paths...)
	return
}

// Bind binds the section under key ("" for the whole config) into dst.
func (c *Config) Bind(key string, dst any) error {
	return c.BindStruct(key, dst)
}
