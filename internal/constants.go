package internal

const (
	ManifestFileName = "gqlmerge.yaml"
	ManifestVersion  = 1
)

const (
	ConfigFileName = ".gqlmerge"
	EnvPrefix      = "GQLMERGE"
)
