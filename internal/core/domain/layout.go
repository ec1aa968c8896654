package domain

const (
	// ManifestFileName is the name of the manifest emitted by the build.
	ManifestFileName = "manifest.json"

	// EntrypointsFileName is the name of the entry point descriptor emitted by the build.
	EntrypointsFileName = "entrypoints.json"

	// ConfigFileName is the name of the project configuration file.
	ConfigFileName = "encore.yaml"

	// EnvFileName is the name of the optional environment override file next to ConfigFileName.
	EnvFileName = ".env"

	// HandlePrefix is prepended to every handle derived by the resolver.
	HandlePrefix = "encore_"

	// DefaultMedia is the media attribute applied to styles when none is configured.
	DefaultMedia = "all"

	// AutoVersion asks for the asset version to be derived from the build descriptors.
	AutoVersion = "auto"

	// DevServerMarker identifies URLs already pointing at a development server.
	DevServerMarker = "localhost"
)
