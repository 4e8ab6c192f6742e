package schema

import (
	"bytes"
	"fmt"
	"path/filepath"
	"strings"
)

// SourceFormat represents the format of the source schema document.
type SourceFormat string

const (
	// SourceFormatXML is the native schema format
	SourceFormatXML SourceFormat = "xml"
	// SourceFormatYAML is a YAML rendition of the schema
	SourceFormatYAML SourceFormat = "yaml"
	// SourceFormatJSON is a JSON rendition of the schema
	SourceFormatJSON SourceFormat = "json"
	// SourceFormatTOML is a TOML rendition of the schema
	SourceFormatTOML SourceFormat = "toml"
	// SourceFormatUnknown means the format could not be detected
	SourceFormatUnknown SourceFormat = "unknown"
)

// String returns the format name.
func (f SourceFormat) String() string {
	return string(f)
}

// ParseSourceFormat converts a user-supplied format name to a SourceFormat.
func ParseSourceFormat(name string) (SourceFormat, error) {
	switch strings.ToLower(name) {
	case "xml":
		return SourceFormatXML, nil
	case "yaml", "yml":
		return SourceFormatYAML, nil
	case "json":
		return SourceFormatJSON, nil
	case "toml":
		return SourceFormatTOML, nil
	default:
		return SourceFormatUnknown, fmt.Errorf("unknown schema format %q (valid: xml, yaml, json, toml)", name)
	}
}

// FormatBytes formats a byte count into a human-readable string using binary units (KiB, MiB, etc.)
func FormatBytes(size int64) string {
	if size < 0 {
		return fmt.Sprintf("%d B", size)
	}

	const unit = 1024
	if size < unit {
		return fmt.Sprintf("%d B", size)
	}

	div, exp := int64(unit), 0
	for n := size / unit; n >= unit && exp < 5; n /= unit {
		div *= unit
		exp++
	}

	return fmt.Sprintf("%.1f %ciB", float64(size)/float64(div), "KMGTPE"[exp])
}

// detectFormatFromPath detects the source format from a file path
func detectFormatFromPath(path string) SourceFormat {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".xml":
		return SourceFormatXML
	case ".json":
		return SourceFormatJSON
	case ".yaml", ".yml":
		return SourceFormatYAML
	case ".toml":
		return SourceFormatTOML
	default:
		return SourceFormatUnknown
	}
}

// utf8BOM is the byte order mark some editors write at the start of UTF-8 files.
var utf8BOM = []byte("\xEF\xBB\xBF")

// detectFormatFromContent guesses the format from the first non-blank byte
// after any byte order mark. TOML is never guessed; it needs an extension or
// an explicit format.
func detectFormatFromContent(data []byte) SourceFormat {
	trimmed := bytes.TrimLeft(bytes.TrimPrefix(data, utf8BOM), " \t\n\r")
	if len(trimmed) == 0 {
		return SourceFormatUnknown
	}

	switch trimmed[0] {
	case '<':
		return SourceFormatXML
	case '{', '[':
		return SourceFormatJSON
	default:
		return SourceFormatYAML
	}
}
