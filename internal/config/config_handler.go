package config

import (
	"fmt"
	"log/slog"
	"net/url"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"sync"

	"github.com/fsnotify/fsnotify"
	"github.com/mitchellh/mapstructure"
	"github.com/spf13/viper"
)

const envPrefix = "FOLIOVIEW"

type ConfigHandler struct {
	viper *viper.Viper
	lock  *sync.Mutex
}

func (c *ConfigHandler) HandleChanges(callback func(Config, error)) {
	c.viper.OnConfigChange(func(e fsnotify.Event) {
		slog.Info("config file changed", "path", e.Name)
		callback(c.Config())
	})
}

// NewConfigHandler creates a configuration handler that reads the config file,
// applies environment variable overrides and can watch the file for changes.
// Viper will look through the list of paths and use the first one where there
// is a file, so the path specified in the FOLIOVIEW_CONFIG env variable always
// takes precedence over the rest.
func NewConfigHandler() *ConfigHandler {
	v := viper.New()
	v.SetConfigType("yaml")
	v.SetConfigName("config")
	configPaths := []string{}
	configPathEnv := os.Getenv("FOLIOVIEW_CONFIG")
	if configPathEnv != "" {
		configPaths = append(configPaths, configPathEnv)
	}
	if home, err := os.UserConfigDir(); err == nil {
		configPaths = append(configPaths, filepath.Join(home, "folioview"))
	}
	configPaths = append(configPaths, ".")
	for _, path := range configPaths {
		v.AddConfigPath(path)
	}
	setDefaults(v)
	return &ConfigHandler{viper: v, lock: &sync.Mutex{}}
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("api.timeoutseconds", 30)
	v.SetDefault("session.store", SessionStoreFile)
	if dir, err := os.UserConfigDir(); err == nil {
		v.SetDefault("session.tokenfile", filepath.Join(dir, "folioview", "tokens.json"))
	}
	v.SetDefault("session.keepalive.expirymarginminutes", 3)
	v.SetDefault("redis.keyprefix", "folioview")
}

func (c *ConfigHandler) getConfig() (Config, error) {
	var output Config
	err := c.viper.ReadInConfig()
	if err != nil {
		switch err.(type) {
		default:
			return Config{}, err
		case viper.ConfigFileNotFoundError:
			slog.Info("could not find any config files - only defaults and environment variables will be used")
		}
	}
	// env variables overwrite anything set in the config file
	for _, key := range c.viper.AllKeys() {
		envKey := envPrefix + "_" + strings.ToUpper(strings.ReplaceAll(key, ".", "_"))
		err := c.viper.BindEnv(key, envKey)
		if err != nil {
			return Config{}, fmt.Errorf("config: unable to bind env %s: %w", envKey, err)
		}
	}
	err = c.viper.Unmarshal(
		&output,
		viper.DecodeHook(
			mapstructure.ComposeDecodeHookFunc(
				parseStringAsURL(),
			),
		),
	)
	if err != nil {
		return Config{}, err
	}
	err = output.Validate()
	if err != nil {
		return Config{}, err
	}
	return output, nil
}

func (c *ConfigHandler) Config() (Config, error) {
	c.lock.Lock()
	defer c.lock.Unlock()
	return c.getConfig()
}

func (c *ConfigHandler) Watch() {
	c.viper.WatchConfig()
}

func parseStringAsURL() mapstructure.DecodeHookFuncType {
	return func(f reflect.Type, t reflect.Type, data any) (interface{}, error) {
		// Check that the data is string
		if f.Kind() != reflect.String {
			return data, nil
		}

		// Check that the target type is our custom type
		if t != reflect.TypeOf(url.URL{}) {
			return data, nil
		}

		dataStr, ok := data.(string)
		if !ok {
			return nil, fmt.Errorf("cannot cast URL value to string")
		}
		if dataStr == "" {
			return nil, fmt.Errorf("empty values are not allowed for URLs")
		}
		url, err := url.Parse(dataStr)
		if err != nil {
			return nil, err
		}
		return url, nil
	}
}
