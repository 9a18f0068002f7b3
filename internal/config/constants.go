package config

// Version is the compiler version reported by the CLI.
const Version = "0.3.0"

// SourceFileExtension is the extension of Brio source files.
const SourceFileExtension = ".brio"

// ProjectFileName is the per-project configuration file the driver looks for
// next to the entry point.
const ProjectFileName = "brio.yaml"
