package config

import (
	"errors"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"

	foundationerrors "git.home.luguber.info/inful/seogen/internal/foundation/errors"
)

const exampleHeader = "# seogen configuration\n# Values may reference environment variables as ${VAR}; .env and .env.local are loaded first.\n"

// Init writes an example configuration file to path. An existing file is
// only replaced when force is set.
func Init(path string, force bool) error {
	if _, err := os.Stat(path); err == nil && !force {
		return foundationerrors.ConfigError("configuration file already exists (use --force to overwrite)").
			WithContext("path", path).
			Build()
	} else if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return foundationerrors.WrapError(err, foundationerrors.CategoryFileSystem, "failed to stat config file").
			WithContext("path", path).
			Build()
	}

	example := Default()
	example.Dimensions.File = "dimensions.yaml"
	example.Ledger.Path = ".seogen/ledger.db"
	example.Notify.NATSURL = "${SEOGEN_NATS_URL}"

	data, err := yaml.Marshal(example)
	if err != nil {
		return foundationerrors.InternalError("failed to marshal example config").WithCause(err).Build()
	}
	if err := os.WriteFile(path, append([]byte(exampleHeader), data...), 0o644); err != nil {
		return foundationerrors.WrapError(err, foundationerrors.CategoryFileSystem, "failed to write config file").
			Fatal().
			WithContext("path", path).
			Build()
	}
	return nil
}
