package domain

import (
	"errors"

	"go.trai.ch/zerr"
)

var (
	// ErrConfiguration classifies errors caused by missing or malformed build output
	// and by requests for entry points or assets the build does not contain.
	ErrConfiguration = zerr.New("configuration error")

	// ErrInvalidArgument classifies errors caused by invalid caller input.
	ErrInvalidArgument = zerr.New("invalid argument")

	// ErrManifestNotFound is returned when manifest.json does not exist.
	ErrManifestNotFound = zerr.New("manifest does not exist")

	// ErrManifestInvalid is returned when manifest.json is not valid JSON.
	ErrManifestInvalid = zerr.New("invalid manifest file, not valid JSON")

	// ErrEntrypointsNotFound is returned when entrypoints.json does not exist.
	ErrEntrypointsNotFound = zerr.New("entrypoints file does not exist")

	// ErrEntrypointsInvalid is returned when entrypoints.json is not valid JSON.
	ErrEntrypointsInvalid = zerr.New("invalid entrypoints file, not valid JSON")

	// ErrBuildOutputReadFailed is returned when a build output file exists but cannot be read.
	ErrBuildOutputReadFailed = zerr.New("failed to read build output")

	// ErrEntryPointNotFound is returned when the requested entry point is absent from entrypoints.json.
	ErrEntryPointNotFound = zerr.New("no entry point found in entrypoints.json")

	// ErrManifestKeyNotFound is returned when a logical asset path is absent from manifest.json.
	ErrManifestKeyNotFound = zerr.New("asset not found in manifest")

	// ErrInvalidAssetKind is returned when an asset kind is neither script nor style.
	ErrInvalidAssetKind = zerr.New("asset kind has to be either script or style")

	// ErrRegistrationFailed is returned when the host registry rejects a registration.
	ErrRegistrationFailed = zerr.New("failed to register asset")

	// ErrEnqueueFailed is returned when the host registry rejects an enqueue.
	ErrEnqueueFailed = zerr.New("failed to enqueue asset")

	// ErrHandleNotRegistered is returned when enqueueing a handle that was never registered.
	ErrHandleNotRegistered = zerr.New("handle not registered")

	// ErrHandleAlreadyExists is returned when a handle is added to a graph twice.
	ErrHandleAlreadyExists = zerr.New("handle already exists")

	// ErrCycleDetected is returned when asset dependencies form a cycle.
	ErrCycleDetected = zerr.New("cycle detected")

	// ErrRenderFailed is returned when registered assets cannot be written as markup.
	ErrRenderFailed = zerr.New("failed to render assets")

	// ErrFingerprintFailed is returned when the build descriptors cannot be fingerprinted.
	ErrFingerprintFailed = zerr.New("failed to fingerprint build output")

	// ErrNoEntryPointsSpecified is returned when a command needs at least one entry point.
	ErrNoEntryPointsSpecified = zerr.New("no entry points specified")

	// ErrNoBuildsSpecified is returned when a command needs at least one build name.
	ErrNoBuildsSpecified = zerr.New("no builds specified")

	// ErrConfigNotFound is returned when no encore.yaml can be found.
	ErrConfigNotFound = zerr.New("could not find encore.yaml")

	// ErrConfigReadFailed is returned when the config file cannot be read.
	ErrConfigReadFailed = zerr.New("failed to read config file")

	// ErrConfigParseFailed is returned when the config file cannot be parsed.
	ErrConfigParseFailed = zerr.New("failed to parse config file")

	// ErrEnvFileReadFailed is returned when a .env file exists but cannot be parsed.
	ErrEnvFileReadFailed = zerr.New("failed to read .env file")

	// ErrMissingOutputPath is returned when the project does not configure an output path.
	ErrMissingOutputPath = zerr.New("missing output path")
)

// ConfigurationError tags err with ErrConfiguration.
func ConfigurationError(err error) error {
	return errors.Join(ErrConfiguration, err)
}

// InvalidArgumentError tags err with ErrInvalidArgument.
func InvalidArgumentError(err error) error {
	return errors.Join(ErrInvalidArgument, err)
}
