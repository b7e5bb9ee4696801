package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/v2"
	"github.com/spf13/pflag"
)

// envPrefix namespaces the site's environment variables. Segment separators
// use a double underscore: GOODPLACE_SERVER__PORT maps to server.port.
const envPrefix = "GOODPLACE_"

// Load builds the configuration by layering, lowest precedence first:
// built-in defaults, the YAML config file (if present), environment
// variables, and CLI flags. flags may be nil.
func Load(configFile string, flags *pflag.FlagSet) (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(confmap.Provider(Defaults(), "."), nil); err != nil {
		return nil, fmt.Errorf("loading defaults: %w", err)
	}

	path, explicit := configFile, configFile != ""
	if !explicit {
		path = DefaultConfigFile
	}
	if _, err := os.Stat(path); err == nil {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("loading config file %s: %w", path, err)
		}
	} else if explicit {
		return nil, fmt.Errorf("config file %s: %w", path, err)
	}

	if err := k.Load(env.Provider(envPrefix, ".", envKey), nil); err != nil {
		return nil, fmt.Errorf("loading environment: %w", err)
	}
	loadCMSEnv(k)

	if flags != nil {
		if err := k.Load(posflag.ProviderWithFlag(flags, ".", k, flagKey), nil); err != nil {
			return nil, fmt.Errorf("loading flags: %w", err)
		}
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("unmarshalling config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// envKey maps GOODPLACE_SERVER__PORT to server.port.
func envKey(key string) string {
	key = strings.ToLower(strings.TrimPrefix(key, envPrefix))
	return strings.ReplaceAll(key, "__", ".")
}

// loadCMSEnv honors the conventional Contentful variable names, which
// deployments commonly set without the site prefix.
func loadCMSEnv(k *koanf.Koanf) {
	if v := os.Getenv("CONTENTFUL_SPACE_ID"); v != "" {
		_ = k.Set("cms.space_id", v)
	}
	if v := os.Getenv("CONTENTFUL_ACCESS_TOKEN"); v != "" {
		_ = k.Set("cms.access_token", v)
	}
}

// flagKey routes recognized serve flags into their config keys; other
// flags are ignored.
func flagKey(f *pflag.Flag) (string, interface{}) {
	if !f.Changed {
		return "", nil
	}
	switch f.Name {
	case "port":
		v, _ := pflagInt(f)
		return "server.port", v
	case "watch":
		return "server.watch", f.Value.String() == "true"
	default:
		return "", nil
	}
}

func pflagInt(f *pflag.Flag) (int, error) {
	var v int
	_, err := fmt.Sscanf(f.Value.String(), "%d", &v)
	return v, err
}
