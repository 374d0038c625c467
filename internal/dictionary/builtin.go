package dictionary

import (
	"embed"
	"io/fs"
)

//go:embed locales
var localesFS embed.FS

// Builtin returns the embedded YAML dictionary: the "en" default directory
// plus single-file overrides for "en-GB" and "de".
func Builtin() Source {
	sub, err := fs.Sub(localesFS, "locales")
	if err != nil {
		// "locales" is embedded at build time.
		panic(err)
	}
	return NewYAMLSource(sub)
}
