// Package config loads the configuration of services that use structured
// errors: service identity, logging, stack capture and tracing.
//
// It uses Viper to read a YAML/JSON/TOML file and godotenv to load an
// optional .env file. Environment variables override file values; a key
// such as logging.level is read from LOGGING_LEVEL, or from
// <PREFIX>_LOGGING_LEVEL when WithEnvPrefix is used.
//
// # Usage
//
//	var cfg config.ServiceConfig
//	if err := config.LoadConfig("comments", &cfg); err != nil {
//	    return err
//	}
//	cfg.ApplyDefaults()
//	if err := cfg.Validate(); err != nil {
//	    return err
//	}
//	cfg.Apply()
package config
