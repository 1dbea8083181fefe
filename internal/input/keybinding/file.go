package keybinding

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"github.com/tidwall/gjson"
	"github.com/tidwall/pretty"
	"github.com/tidwall/sjson"
	"gopkg.in/yaml.v3"

	"github.com/dshills/termstack/internal/command"
	"github.com/dshills/termstack/internal/input/key"
)

// ErrInvalidFile reports a binding file with unusable entries.
var ErrInvalidFile = errors.New("invalid binding file")

// Format is a binding file encoding.
type Format uint8

const (
	FormatTOML Format = iota
	FormatYAML
	FormatJSON
)

// String returns the format name.
func (f Format) String() string {
	switch f {
	case FormatTOML:
		return "toml"
	case FormatYAML:
		return "yaml"
	case FormatJSON:
		return "json"
	default:
		return "unknown"
	}
}

// FormatForPath picks the format from a file extension.
func FormatForPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return FormatTOML, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".json":
		return FormatJSON, nil
	default:
		return 0, fmt.Errorf("%w: unsupported extension %q", ErrInvalidFile, filepath.Ext(path))
	}
}

// FileEntry is one binding as written in a file.
type FileEntry struct {
	Key      string   `toml:"key" yaml:"key"`
	Scope    string   `toml:"scope,omitempty" yaml:"scope,omitempty"`
	Commands []string `toml:"commands" yaml:"commands,flow"`
}

// File is the contents of a binding file.
type File struct {
	Bindings []FileEntry `toml:"binding" yaml:"binding"`
}

// LoadFile reads a binding file, choosing the format by extension.
func LoadFile(path string) (*File, error) {
	format, err := FormatForPath(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading binding file: %w", err)
	}
	f, err := Parse(data, format)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return f, nil
}

// Parse decodes binding file data.
func Parse(data []byte, format Format) (*File, error) {
	var f File
	switch format {
	case FormatTOML:
		if err := toml.Unmarshal(data, &f); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidFile, err)
		}
	case FormatYAML:
		if err := yaml.Unmarshal(data, &f); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidFile, err)
		}
	case FormatJSON:
		if !gjson.ValidBytes(data) {
			return nil, fmt.Errorf("%w: malformed JSON", ErrInvalidFile)
		}
		gjson.GetBytes(data, "binding").ForEach(func(_, item gjson.Result) bool {
			entry := FileEntry{
				Key:   item.Get("key").String(),
				Scope: item.Get("scope").String(),
			}
			for _, c := range item.Get("commands").Array() {
				entry.Commands = append(entry.Commands, c.String())
			}
			f.Bindings = append(f.Bindings, entry)
			return true
		})
	default:
		return nil, fmt.Errorf("%w: unknown format %d", ErrInvalidFile, format)
	}
	return &f, nil
}

// Resolve parses every entry. All problems are reported together.
func (f *File) Resolve() ([]Entry, error) {
	entries := make([]Entry, 0, len(f.Bindings))
	var errs []error

	for i, fe := range f.Bindings {
		k, ok := key.TryParse(fe.Key)
		if !ok || !k.IsValid() {
			errs = append(errs, fmt.Errorf("entry %d: invalid key %q", i, fe.Key))
			continue
		}
		scope, err := ParseScope(fe.Scope)
		if err != nil {
			errs = append(errs, fmt.Errorf("entry %d: %w", i, err))
			continue
		}
		if len(fe.Commands) == 0 {
			errs = append(errs, fmt.Errorf("entry %d: %w", i, ErrNoCommands))
			continue
		}
		cmds := make([]command.Command, 0, len(fe.Commands))
		for _, name := range fe.Commands {
			c, ok := command.Parse(name)
			if !ok {
				errs = append(errs, fmt.Errorf("entry %d: unknown command %q", i, name))
				continue
			}
			cmds = append(cmds, c)
		}
		if len(cmds) != len(fe.Commands) {
			continue
		}
		entries = append(entries, Entry{Key: k, Binding: Binding{Commands: cmds, Scope: scope}})
	}

	if len(errs) > 0 {
		return nil, fmt.Errorf("%w: %w", ErrInvalidFile, errors.Join(errs...))
	}
	return entries, nil
}

// Apply resolves the file and sets each entry on b with ReplaceCommands.
// Nothing is applied when any entry is invalid.
func (f *File) Apply(b *Bindings) error {
	entries, err := f.Resolve()
	if err != nil {
		return err
	}
	for _, e := range entries {
		if err := b.ReplaceCommands(e.Key, e.Binding.Scope, e.Binding.Commands...); err != nil {
			return err
		}
	}
	return nil
}

// FileFromBindings captures the bindings of b that run on the table
// owner.
func FileFromBindings(b *Bindings) *File {
	f := &File{}
	for _, e := range b.All() {
		if e.Binding.Owner != nil {
			continue
		}
		fe := FileEntry{Key: e.Key.String(), Scope: e.Binding.Scope.String()}
		for _, c := range e.Binding.Commands {
			fe.Commands = append(fe.Commands, c.String())
		}
		f.Bindings = append(f.Bindings, fe)
	}
	return f
}

// Marshal encodes the file.
func (f *File) Marshal(format Format) ([]byte, error) {
	switch format {
	case FormatTOML:
		return toml.Marshal(f)
	case FormatYAML:
		return yaml.Marshal(f)
	case FormatJSON:
		data := []byte(`{"binding":[]}`)
		var err error
		for i, fe := range f.Bindings {
			prefix := fmt.Sprintf("binding.%d.", i)
			if data, err = sjson.SetBytes(data, prefix+"key", fe.Key); err != nil {
				return nil, err
			}
			if data, err = sjson.SetBytes(data, prefix+"scope", fe.Scope); err != nil {
				return nil, err
			}
			if data, err = sjson.SetBytes(data, prefix+"commands", fe.Commands); err != nil {
				return nil, err
			}
		}
		return pretty.Pretty(data), nil
	default:
		return nil, fmt.Errorf("%w: unknown format %d", ErrInvalidFile, format)
	}
}

// SaveFile writes the bindings of b to path, choosing the format by
// extension.
func SaveFile(path string, b *Bindings) error {
	format, err := FormatForPath(path)
	if err != nil {
		return err
	}
	data, err := FileFromBindings(b).Marshal(format)
	if err != nil {
		return fmt.Errorf("encoding bindings: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing binding file: %w", err)
	}
	return nil
}
