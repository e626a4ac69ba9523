// internal/storage/files.go
package storage

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/maruel/natural"
)

var (
	// ErrMissingDocument means an item's primary page cannot be read; the item is skipped.
	ErrMissingDocument = errors.New("missing primary document")
	// ErrMissingOptionalDocument means the secondary page cannot be read.
	ErrMissingOptionalDocument = errors.New("missing secondary document")
)

const (
	primaryPrefix   = "mdn_"
	secondaryPrefix = "wp_"
	htmlExt         = ".html"
	uriExt          = ".uri"
)

// Documents keeps downloaded pages on disk: mdn_<name>.html with its source
// URL in mdn_<name>.html.uri, and wp_<name>.html for the secondary site.
type Documents struct {
	dir string
}

// Open returns a store rooted at dir, creating it when needed.
func Open(dir string) (*Documents, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create download dir: %w", err)
	}
	return &Documents{dir: dir}, nil
}

func (d *Documents) Dir() string { return d.dir }

func (d *Documents) primaryPath(name string) string {
	return filepath.Join(d.dir, primaryPrefix+name+htmlExt)
}

func (d *Documents) secondaryPath(name string) string {
	return filepath.Join(d.dir, secondaryPrefix+name+htmlExt)
}

func (d *Documents) HasPrimary(name string) bool   { return exists(d.primaryPath(name)) }
func (d *Documents) HasSecondary(name string) bool { return exists(d.secondaryPath(name)) }

// SavePrimary stores the page body and the URL it came from.
func (d *Documents) SavePrimary(name string, body []byte, uri string) error {
	if err := checkName(name); err != nil {
		return err
	}
	p := d.primaryPath(name)
	if err := os.WriteFile(p, body, 0o644); err != nil {
		return err
	}
	return os.WriteFile(p+uriExt, []byte(uri), 0o644)
}

func (d *Documents) SaveSecondary(name string, body []byte) error {
	if err := checkName(name); err != nil {
		return err
	}
	return os.WriteFile(d.secondaryPath(name), body, 0o644)
}

// LoadPrimary returns the page and its source URL. A missing or unreadable
// page wraps ErrMissingDocument. A missing .uri file yields an empty URL.
func (d *Documents) LoadPrimary(name string) ([]byte, string, error) {
	p := d.primaryPath(name)
	body, err := os.ReadFile(p)
	if err != nil {
		return nil, "", fmt.Errorf("%w: %s: %w", ErrMissingDocument, name, err)
	}
	uri, err := os.ReadFile(p + uriExt)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, "", fmt.Errorf("%w: %s: %w", ErrMissingDocument, name, err)
	}
	return body, strings.TrimSpace(string(uri)), nil
}

// LoadSecondary wraps ErrMissingOptionalDocument when the page is absent.
func (d *Documents) LoadSecondary(name string) ([]byte, error) {
	body, err := os.ReadFile(d.secondaryPath(name))
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrMissingOptionalDocument, name, err)
	}
	return body, nil
}

// Items lists the names of all stored primary pages in natural order, so
// discovery order does not depend on directory enumeration.
func (d *Documents) Items() ([]string, error) {
	entries, err := os.ReadDir(d.dir)
	if err != nil {
		return nil, err
	}
	var names []string
	for _, e := range entries {
		n := e.Name()
		if e.IsDir() || !strings.HasPrefix(n, primaryPrefix) || !strings.HasSuffix(n, htmlExt) {
			continue
		}
		names = append(names, strings.TrimSuffix(strings.TrimPrefix(n, primaryPrefix), htmlExt))
	}
	sort.Sort(natural.StringSlice(names))
	return names, nil
}

func checkName(name string) error {
	if name == "" || strings.ContainsAny(name, `/\`) || name == "." || name == ".." {
		return fmt.Errorf("invalid item name %q", name)
	}
	return nil
}

func exists(p string) bool {
	_, err := os.Stat(p)
	return err == nil
}
