package dictionary

import (
	"errors"
	"fmt"
	"io/fs"
	"path"
	"slices"
	"strings"
)

// decodeFunc turns one file's bytes into a Fragment. locale is the locale
// the file was published for; its root entry must name it.
type decodeFunc func(origin, locale string, data []byte) (Fragment, error)

// fsSource implements the shared locale file layout over an fs.FS:
//
//	<locale>/*.<ext>   any number of files, read in lexical order
//	<locale>.<ext>     a single file
//
// Both are read when present, directory first. Locales are also looked up
// with '_' in place of '-' ("en_GB.yml").
type fsSource struct {
	fsys   fs.FS
	exts   []string
	decode decodeFunc
}

// Fragments implements Source.
func (s *fsSource) Fragments(locale string) ([]Fragment, error) {
	files, err := s.files(locale)
	if err != nil {
		return nil, err
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrLocaleNotFound, locale)
	}

	fragments := make([]Fragment, 0, len(files))
	for _, name := range files {
		data, err := fs.ReadFile(s.fsys, name)
		if err != nil {
			return nil, fmt.Errorf("reading %s: %w", name, err)
		}
		f, err := s.decode(name, locale, data)
		if err != nil {
			return nil, fmt.Errorf("decoding %s: %w", name, err)
		}
		f.Locale = locale
		f.Origin = name
		fragments = append(fragments, f)
	}
	return fragments, nil
}

// files lists the dictionary files published for locale.
func (s *fsSource) files(locale string) ([]string, error) {
	names := []string{locale}
	if alt := strings.ReplaceAll(locale, "-", "_"); alt != locale {
		names = append(names, alt)
	}

	var files []string
	for _, name := range names {
		entries, err := fs.ReadDir(s.fsys, name)
		switch {
		case err == nil:
			for _, e := range entries {
				if !e.IsDir() && s.matches(e.Name()) {
					files = append(files, path.Join(name, e.Name()))
				}
			}
		case errors.Is(err, fs.ErrNotExist):
		default:
			return nil, fmt.Errorf("scanning %s: %w", name, err)
		}

		for _, ext := range s.exts {
			file := name + ext
			info, err := fs.Stat(s.fsys, file)
			if err == nil && !info.IsDir() {
				files = append(files, file)
			}
		}
	}
	return files, nil
}

func (s *fsSource) matches(name string) bool {
	return slices.Contains(s.exts, path.Ext(name))
}

// shapeError reports a file that does not have the shared shape: exactly one
// root entry (the locale) containing a "faker" mapping.
func shapeError(msg string) error {
	return fmt.Errorf("invalid dictionary file: %s", msg)
}

// checkRoot verifies that a file's root entry names locale, in either
// spelling ("en-GB" or "en_GB").
func checkRoot(root, locale string) error {
	if root == locale || root == strings.ReplaceAll(locale, "-", "_") {
		return nil
	}
	return shapeError(fmt.Sprintf("root entry %q does not match locale %q", root, locale))
}
