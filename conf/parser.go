package conf

import (
	"encoding/json"
	stdErrors "errors"
	"path/filepath"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/tatterwing/lootkit/util/errors"
	"github.com/tatterwing/lootkit/util/ioutil"
)

var validate = validator.New()

func init() {
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := fld.Tag.Get("json")
		if name == "" {
			return strings.ToLower(fld.Name)
		}
		return name
	})
}

func Parse(configFilePath string) (*Config, error) {
	bs, err := ioutil.ReadFile(configFilePath)
	if err != nil {
		return nil, errors.Wrap(err, "error")
	}

	config := &Config{}
	err = unmarshalAndValidate(bs, config)
	if err != nil {
		return nil, errors.Wrapf(err, "error: fail to parse the config file %v", configFilePath)
	}
	resolveAllFilePathsToConfigFolder(config, filepath.Dir(configFilePath))
	return config, nil
}

func unmarshalAndValidate(bs []byte, config *Config) error {
	err := json.Unmarshal(bs, config)
	if err != nil {
		return errors.WithStack(err)
	}

	err = validate.Struct(config)
	if err != nil {
		var errs validator.ValidationErrors
		if stdErrors.As(err, &errs) && len(errs) > 0 {
			validatedError := errors.New("invalid config values")
			for _, err := range errs {
				fieldName := err.Namespace()[strings.Index(err.Namespace(), ".")+1:]
				validatedError = errors.Join(validatedError, errors.Newf("  the '%v' field should be '%v'", fieldName, err.ActualTag()))
			}
			return validatedError
		}
	}
	return nil
}

func resolveAllFilePathsToConfigFolder(config *Config, configFileFolder string) {
	snapshot := config.Snapshot
	if snapshot != nil {
		snapshot.File = resolveTo(snapshot.File, configFileFolder)
		if snapshot.IndexFile != "" {
			snapshot.IndexFile = resolveTo(snapshot.IndexFile, configFileFolder)
		}
	}
}

func resolveTo(relativePath string, basePath string) string {
	if filepath.IsAbs(relativePath) {
		return relativePath
	}
	return filepath.Join(basePath, relativePath)
}
