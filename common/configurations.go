package common

import (
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/spf13/viper"
)

// Configurations exported
type Configurations struct {
	Server  ServerConfigurations
	Client  ClientConfigurations
	Gateway GatewayConfigurations
	Log     LogConfigurations
}

// ServerConfigurations exported
type ServerConfigurations struct {
	Port string
}

// ClientConfigurations holds the settings handed to client.New.
type ClientConfigurations struct {
	BaseURL   string
	Timeout   time.Duration
	UserAgent string
}

// GatewayConfigurations exported
type GatewayConfigurations struct {
	// RetryTimeouts retries upstream calls that failed with a timeout.
	RetryTimeouts bool
	// DefaultGasPriceDecimals is used by the quote route when the caller omits it.
	DefaultGasPriceDecimals string
}

// LogConfigurations exported
type LogConfigurations struct {
	Level  string
	Format string
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", "8080")
	v.SetDefault("client.baseurl", DefaultBaseURL)
	v.SetDefault("client.timeout", DefaultTimeout)
	v.SetDefault("client.useragent", DefaultUserAgent)
	v.SetDefault("gateway.retrytimeouts", true)
	v.SetDefault("gateway.defaultgaspricedecimals", "1000000000")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")
}

// LoadConfig reads config_<name>.yaml from the given paths (the working directory when
// none are given). A missing file is not an error: defaults and OPENOCEAN_* environment
// variables still apply, e.g. OPENOCEAN_CLIENT_TIMEOUT=10s.
func LoadConfig(name string, paths ...string) (Configurations, error) {
	v := viper.New()

	// Set the file name of the configurations file
	v.SetConfigName("config_" + name)
	v.SetConfigType("yaml")

	// Set the path to look for the configurations file
	if len(paths) == 0 {
		paths = []string{"."}
	}
	for _, p := range paths {
		v.AddConfigPath(p)
	}

	// Enable VIPER to read Environment Variables
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	var configuration Configurations

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return configuration, errors.Wrap(err, "reading config file")
		}
	}

	if err := v.Unmarshal(&configuration); err != nil {
		return configuration, errors.Wrap(err, "decoding config into struct")
	}

	return configuration, nil
}
