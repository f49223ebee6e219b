package config

import (
	"fmt"
	"os"

	log "github.com/sirupsen/logrus"

	"github.com/go-viper/mapstructure/v2"
	"github.com/spf13/viper"
)

const (
	ConfigFileEnvVar   = "REGISTRY_CONFIG_FILE"
	StandardConfigPath = "/etc/lamassuiot/registry.yml"
)

func DecodeStruct[E any](source interface{}) (E, error) {
	var target E
	err := mapstructure.Decode(source, &target)
	if err != nil {
		var zero E
		return zero, fmt.Errorf("could not decode struct: %w", err)
	}
	return target, nil
}

func EncodeStruct[E any](source E) (map[string]interface{}, error) {
	var target map[string]interface{}
	err := mapstructure.Decode(source, &target)
	if err != nil {
		return nil, fmt.Errorf("could not encode struct: %w", err)
	}
	return target, nil
}

func readConfig[E any](configFilePath string, defaults *E) (*E, error) {
	vp := viper.New()

	if defaults != nil {
		defaultsMap, err := EncodeStruct(*defaults)
		if err != nil {
			return nil, err
		}

		setDefaults(vp, "", defaultsMap)
	}

	vp.SetConfigFile(configFilePath)
	if err := vp.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("error while processing config file: %w", err)
	}

	var config E
	err := vp.Unmarshal(&config)
	if err != nil {
		return nil, fmt.Errorf("could not unmarshal config: %w", err)
	}

	return &config, nil
}

// setDefaults flattens nested sections into dotted keys so that a file
// overriding one key of a section keeps the defaults of its siblings.
func setDefaults(vp *viper.Viper, prefix string, values map[string]interface{}) {
	for key, value := range values {
		fullKey := key
		if prefix != "" {
			fullKey = prefix + "." + key
		}

		switch v := value.(type) {
		case map[string]interface{}:
			setDefaults(vp, fullKey, v)
		default:
			if value != nil && value != "" {
				vp.SetDefault(fullKey, value)
			}
		}
	}
}

// LoadConfig reads the file named by REGISTRY_CONFIG_FILE, falling back to the
// standard path when the variable is unset or the file cannot be processed.
func LoadConfig[E any](defaults *E) (*E, error) {
	var err error
	var conf *E

	configFileEnv := os.Getenv(ConfigFileEnvVar)
	loadStandardPaths := true

	if configFileEnv != "" {
		loadStandardPaths = false
		log.Infof("loading config file from %s", configFileEnv)
		conf, err = readConfig[E](configFileEnv, defaults)

		if err != nil {
			log.Warnf("failed to load config file specified in ENV '%s' variable. will try to load from standard paths: %s", ConfigFileEnvVar, err)
			loadStandardPaths = true
		}
	} else {
		log.Infof("ENV '%s' variable not set, will try to load from standard paths", ConfigFileEnvVar)
	}

	if loadStandardPaths {
		conf, err = readConfig[E](StandardConfigPath, defaults)
	}
	if err != nil {
		return nil, err
	}

	return conf, nil
}

// LoadConfigFile reads an explicit file, used when a path is passed on the command line.
func LoadConfigFile[E any](path string, defaults *E) (*E, error) {
	return readConfig[E](path, defaults)
}
