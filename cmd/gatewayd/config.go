package main

import (
	"strings"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// Config the application's configuration structure
type Config struct {
	HTTPListenPort int

	MongoURL      string
	MongoDatabase string

	RedisURL      string
	RedisHost     string
	RedisPort     int
	RedisUsername string
	RedisPassword string

	RabbitEnabled  bool
	RabbitScheme   string
	RabbitHost     string
	RabbitPort     int
	RabbitUsername string
	RabbitPassword string
	RabbitQueue    string

	ConnectAttempts int
	ConnectBackoff  time.Duration

	EventLogFile string
	Profiling    bool
}

// LoadConfig loads the config from a file if specified, otherwise from the environment
func LoadConfig(cmd *cobra.Command, envPrefix string) (*Config, error) {
	// Setting defaults for this application
	viper.SetDefault("httpListenPort", 8080)
	viper.SetDefault("mongoURL", "mongodb://localhost:27017")
	viper.SetDefault("mongoDatabase", "gateway")
	viper.SetDefault("redisURL", "")
	viper.SetDefault("redisHost", "localhost")
	viper.SetDefault("redisPort", 6379)
	viper.SetDefault("redisUsername", "")
	viper.SetDefault("redisPassword", "")
	viper.SetDefault("rabbitEnabled", false)
	viper.SetDefault("rabbitScheme", "amqp")
	viper.SetDefault("rabbitHost", "localhost")
	viper.SetDefault("rabbitPort", 5672)
	viper.SetDefault("rabbitUsername", "guest")
	viper.SetDefault("rabbitPassword", "guest")
	viper.SetDefault("rabbitQueue", "events")
	viper.SetDefault("connectAttempts", 3)
	viper.SetDefault("connectBackoff", 500*time.Millisecond)
	viper.SetDefault("eventLogFile", "gateway.log")
	viper.SetDefault("profiling", false)

	// Read Config from ENV
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.SetEnvPrefix(envPrefix)
	viper.AutomaticEnv()

	// Read Config from Flags
	err := viper.BindPFlags(cmd.Flags())
	if err != nil {
		return nil, err
	}

	// Read Config from file
	if configFile, err := cmd.Flags().GetString("config-file"); err == nil && configFile != "" {
		viper.SetConfigFile(configFile)

		if err := viper.ReadInConfig(); err != nil {
			return nil, err
		}
	}

	var config Config

	err = viper.Unmarshal(&config)
	if err != nil {
		return nil, err
	}

	return &config, nil
}
