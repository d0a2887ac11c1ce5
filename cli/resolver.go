package cli

import (
	"errors"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/goccy/go-yaml"

	"github.com/ardnew/psplibdoc/log"
)

// resolve is a [kong.ConfigurationLoader] that reads a YAML configuration
// file.
//
// It can be used with [kong.Configuration] like this:
//
//	kong.Configuration(resolve, "/path/to/config.yaml")
//
// Top-level keys name application flags. A mapping keyed by a command name
// holds flags for that command and takes precedence over top-level keys:
//
//	log_level: debug
//	doc: /opt/psp/psplibdoc_660.xml
//	query:
//	  suggest: false
//	dump:
//	  format: json
//
// Flag names with hyphens (e.g., "log-level") may use underscores in the
// file. Command-line flags override file values. A file that cannot be
// parsed is logged and ignored.
func resolve(r io.Reader) (kong.Resolver, error) {
	var raw map[string]any

	if err := yaml.NewDecoder(r).Decode(&raw); err != nil {
		if !errors.Is(err, io.EOF) {
			log.Warn("ignoring configuration file", slog.Any("error", err))
		}

		return config{}, nil
	}

	return config(normalize(raw)), nil
}

// config implements [kong.Resolver] for YAML configuration.
type config map[string]any

// Validate implements [kong.Resolver].
func (r config) Validate(*kong.Application) error {
	return nil
}

// Resolve implements [kong.Resolver].
func (r config) Resolve(
	_ *kong.Context,
	parent *kong.Path,
	flag *kong.Flag,
) (any, error) {
	if parent != nil && parent.Command != nil {
		if sub, ok := r[parent.Command.Name].(map[string]any); ok {
			if value, ok := config(sub).lookup(flag.Name); ok {
				return value, nil
			}
		}
	}

	if value, ok := r.lookup(flag.Name); ok {
		if _, isSection := value.(map[string]any); !isSection {
			return value, nil
		}
	}

	// Not found - return nil to let Kong use defaults
	return nil, nil
}

// lookup finds name as written or with hyphens replaced by underscores.
func (r config) lookup(name string) (any, bool) {
	if value, ok := r[name]; ok {
		return value, true
	}

	value, ok := r[strings.ReplaceAll(name, "-", "_")]

	return value, ok
}

// normalize converts decoded YAML into values kong can parse. Numbers become
// strings; nested mappings are normalized recursively.
func normalize(m map[string]any) map[string]any {
	out := make(map[string]any, len(m))

	for key, value := range m {
		switch v := value.(type) {
		case map[string]any:
			out[key] = normalize(v)
		case int:
			out[key] = strconv.Itoa(v)
		case int64:
			out[key] = strconv.FormatInt(v, 10)
		case uint64:
			out[key] = strconv.FormatUint(v, 10)
		case float64:
			out[key] = strconv.FormatFloat(v, 'f', -1, 64)
		default:
			out[key] = v
		}
	}

	return out
}
