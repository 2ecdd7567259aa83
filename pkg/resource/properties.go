package resource

import (
	"bytes"
	"errors"
	"io/fs"
	"log"
	"os"
	"regexp"
	"strings"
	"sync"
	"time"

	"github.com/spf13/viper"

	"todolist-api/configs"
)

var (
	properties = viper.New()
	mu         sync.RWMutex
	envPattern = regexp.MustCompile(`^\$\{([^:}]+)(?::([^}]*))?}$`)
)

// init loads application properties from YAML
func init() {
	if err := Init(configs.Env.PropertiesFilePath); err != nil {
		log.Fatalf("Fail to read properties: %v", err)
	}
}

// Init (re)loads the properties from filepath. When the file does not exist the
// copy embedded in the configs package is used.
func Init(filepath string) error {
	v := viper.New()
	v.SetConfigType("yml")

	content, err := os.ReadFile(filepath)
	if errors.Is(err, fs.ErrNotExist) {
		content = configs.ApplicationYAML
	} else if err != nil {
		return err
	}

	if err := v.ReadConfig(bytes.NewReader(content)); err != nil {
		return err
	}

	resolved := make(map[string]any)
	parsePropertiesMap("", v.AllSettings(), resolved)
	for key, value := range resolved {
		v.Set(key, value)
	}

	mu.Lock()
	properties = v
	mu.Unlock()
	return nil
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
		case []any:
			result[fullKey] = v
		case map[string]any:
			parsePropertiesMap(fullKey, v, result)
		default:
			log.Printf("Ignoring key '%s' with unsupported type.", fullKey)
		}
	}
}

// resolveEnvVariable expands a ${NAME:default} placeholder. Plain values are returned as is.
func resolveEnvVariable(value string) string {
	matches := envPattern.FindStringSubmatch(strings.TrimSpace(value))
	if matches == nil {
		return value
	}

	if envValue, exists := os.LookupEnv(matches[1]); exists {
		return envValue
	}
	return matches[2]
}

func current() *viper.Viper {
	mu.RLock()
	defer mu.RUnlock()
	return properties
}

// Set overrides a property at runtime. Mostly useful in tests.
func Set(key string, value any) {
	current().Set(key, value)
}

func Get(key string) any {
	return current().Get(key)
}

func GetString(key string) string {
	return current().GetString(key)
}

func GetStringOrDefault(key, defaultValue string) string {
	if value := current().GetString(key); value != "" {
		return value
	}
	return defaultValue
}

func GetBool(key string) bool {
	return current().GetBool(key)
}

func GetDuration(key string) time.Duration {
	return current().GetDuration(key)
}

func GetInt(key string) int {
	return current().GetInt(key)
}

func GetInt64(key string) int64 {
	return current().GetInt64(key)
}

func GetStringSlice(key string) []string {
	return current().GetStringSlice(key)
}
