package config

import (
	"errors"
	"github.com/bassbeaver/glistener/helper"
	"github.com/spf13/viper"
	"os"
	"path/filepath"
)

const (
	KeyParameters       = "parameters"
	KeyServices         = "services"
	KeyEventListeners   = "event_listeners"
	KeyPriorityOrder    = "priority_order"
	KeyLogLevel         = "log_level"
	KeyInspectorPort    = "inspector.port"
	KeyInspectorTimeout = "inspector.shutdown_timeout"
)

// BuildFromDir reads every config file with a viper supported extension from configPath (or from the
// directory of configPath if it is a file) and merges them into one viper object.
func BuildFromDir(configPath string) (*viper.Viper, error) {
	configObj := viper.New()

	var configDir string
	configPathStat, configPathStatError := os.Stat(configPath)
	if nil != configPathStatError {
		return nil, errors.New("failed to read configs: " + configPathStatError.Error())
	}
	if configPathStat.IsDir() {
		configDir = configPath
	} else {
		configDir = filepath.Dir(configPath)
	}

	firstConfigFile := true
	pathWalkError := filepath.Walk(
		configDir,
		func(path string, info os.FileInfo, err error) error {
			if err != nil {
				return errors.New("failed to read config file " + path + ", error: " + err.Error())
			}

			if info.IsDir() {
				return nil
			}

			configFileExt := filepath.Ext(info.Name())
			// if extension is not allowed - take next file
			if "" == configFileExt || !helper.StringInSlice(configFileExt[1:], viper.SupportedExts) {
				return nil
			}

			configObj.SetConfigFile(path)

			if firstConfigFile {
				if configError := configObj.ReadInConfig(); nil != configError {
					return configError
				}

				firstConfigFile = false
			} else {
				if configError := configObj.MergeInConfig(); nil != configError {
					return configError
				}
			}

			return nil
		},
	)
	if nil != pathWalkError {
		return nil, errors.New("failed to read configs: " + pathWalkError.Error())
	}

	return configObj, nil
}

// ReadEventListeners decodes the event_listeners section. Missing section means no listeners.
func ReadEventListeners(configObj *viper.Viper) ([]EventListenerConfig, error) {
	listenersConfig := make([]EventListenerConfig, 0)
	if !configObj.IsSet(KeyEventListeners) {
		return listenersConfig, nil
	}

	if unmarshalError := configObj.UnmarshalKey(KeyEventListeners, &listenersConfig); nil != unmarshalError {
		return nil, errors.New("failed to read event listeners config, error: " + unmarshalError.Error())
	}

	for _, listenerConfig := range listenersConfig {
		if validationError := listenerConfig.Validate(); nil != validationError {
			return nil, errors.New("invalid event listener config: " + validationError.Error())
		}
	}

	return listenersConfig, nil
}
