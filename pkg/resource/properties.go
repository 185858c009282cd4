package resource

import (
	"bytes"
	"fmt"
	"os"
	"regexp"
	"time"

	"github.com/spf13/viper"
	"weather-etl/pkg/log"
)

var envPattern = regexp.MustCompile(`^\$\{([^:}]+)(?::([^}]*))?}$`)

// Properties holds application properties loaded from YAML, with ${ENV:default}
// placeholders resolved against the process environment.
type Properties struct {
	v *viper.Viper
}

// Load reads properties from filepath. When filepath is empty or missing, fallback is parsed instead.
func Load(filepath string, fallback []byte) (*Properties, error) {
	v := viper.New()
	v.SetConfigType("yml")

	if filepath != "" {
		if _, err := os.Stat(filepath); err == nil {
			v.SetConfigFile(filepath)
			if err := v.ReadInConfig(); err != nil {
				return nil, fmt.Errorf("fail to read properties %s: %w", filepath, err)
			}
			return resolve(v)
		}
		log.Debugf("Properties file %s not found, using embedded defaults", filepath)
	}

	if err := v.ReadConfig(bytes.NewReader(fallback)); err != nil {
		return nil, fmt.Errorf("fail to read embedded properties: %w", err)
	}
	return resolve(v)
}

func resolve(v *viper.Viper) (*Properties, error) {
	properties := make(map[string]any)
	parsePropertiesMap("", v.AllSettings(), properties)

	for key, value := range properties {
		v.Set(key, value)
	}
	return &Properties{v: v}, nil
}

// parsePropertiesMap reads recursively the YAML file
func parsePropertiesMap(prefix string, data map[string]any, result map[string]any) {
	for key, value := range data {
		fullKey := key
		if prefix != "" {
			fullKey = prefix + "." + key
		}

		switch v := value.(type) {
		case string:
			result[fullKey] = resolveEnvVariable(v)
		case int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64, float32, float64, bool:
			result[fullKey] = v
		case map[string]any:
			parsePropertiesMap(fullKey, v, result)
		default:
			log.Debugf("Ignoring key '%s' with unsupported type.", fullKey)
		}
	}
}

// resolveEnvVariable resolves a ${NAME:default} value; any other string is returned as is.
func resolveEnvVariable(value string) string {
	matches := envPattern.FindStringSubmatch(value)
	if matches == nil {
		return value
	}

	if envValue, exists := os.LookupEnv(matches[1]); exists && envValue != "" {
		return envValue
	}
	return matches[2]
}

func (p *Properties) Get(key string) any {
	return p.v.Get(key)
}

func (p *Properties) GetString(key string) string {
	return p.v.GetString(key)
}

func (p *Properties) GetBool(key string) bool {
	return p.v.GetBool(key)
}

func (p *Properties) GetDuration(key string) time.Duration {
	return p.v.GetDuration(key)
}

func (p *Properties) GetInt(key string) int {
	return p.v.GetInt(key)
}
