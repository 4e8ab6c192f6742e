// Package commands provides CLI command handlers for optgen.
package commands

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/erraggy/optgen/internal/cliutil"
	"github.com/erraggy/optgen/internal/fileutil"
	"github.com/erraggy/optgen/schema"
	"go.yaml.in/yaml/v4"
)

// Output format constants
const (
	FormatText = "text"
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// StdinFilePath is the special file path used to indicate reading from stdin.
const StdinFilePath = "-"

// DefaultSchemaFile is read when optgen runs without arguments.
const DefaultSchemaFile = "options.xml"

// streams are the standard streams a command reads from and writes to.
type streams struct {
	in  io.Reader
	out io.Writer
	err io.Writer
}

func osStreams() streams {
	return streams{in: os.Stdin, out: os.Stdout, err: os.Stderr}
}

// ValidateOutputFormat validates an output format and returns an error if invalid.
func ValidateOutputFormat(format string) error {
	if format != FormatText && format != FormatJSON && format != FormatYAML {
		return fmt.Errorf("invalid format '%s'. Valid formats: %s, %s, %s", format, FormatText, FormatJSON, FormatYAML)
	}
	return nil
}

// OutputStructured writes data to w in the specified format (json or yaml).
func OutputStructured(w io.Writer, data any, format string) error {
	var bytes []byte
	var err error

	switch format {
	case FormatJSON:
		bytes, err = json.MarshalIndent(data, "", "  ")
	case FormatYAML:
		bytes, err = yaml.Marshal(data)
	default:
		return fmt.Errorf("invalid format for structured output: %s", format)
	}

	if err != nil {
		return fmt.Errorf("marshaling to %s: %w", format, err)
	}

	cliutil.Writef(w, "%s\n", bytes)
	return nil
}

// FormatSchemaPath returns a display-friendly path for the schema.
// Returns "<stdin>" if the path is StdinFilePath, otherwise returns the path as-is.
func FormatSchemaPath(path string) string {
	if path == StdinFilePath {
		return "<stdin>"
	}
	return path
}

// ValidateOutputPath checks that writing outputPath does not clobber the schema.
// An existing output file only produces a warning on w.
func ValidateOutputPath(w io.Writer, outputPath, inputPath string) error {
	if inputPath == StdinFilePath {
		inputPath = ""
	}
	exists, err := fileutil.CheckOutputPath(outputPath, inputPath)
	if err != nil {
		return fmt.Errorf("commands: %w", err)
	}
	if exists {
		cliutil.Writef(w, "Warning: output file %s already exists and will be overwritten\n", outputPath)
	}
	return nil
}

// newLogger returns a debug logger writing to w, or nil when verbose is off.
func newLogger(verbose bool, w io.Writer) schema.Logger {
	if !verbose {
		return nil
	}
	handler := slog.NewTextHandler(w, &slog.HandlerOptions{Level: slog.LevelDebug})
	return schema.NewSlogAdapter(slog.New(handler))
}

// loadSchema parses the schema at path, or from s.in when path is StdinFilePath.
// An empty format means the format is detected.
func loadSchema(path, format string, s streams, logger schema.Logger) (*schema.ParseResult, error) {
	var opts []schema.ParseOption
	if path == StdinFilePath {
		opts = append(opts, schema.WithReader(s.in), schema.WithSourceName(FormatSchemaPath(path)))
	} else {
		opts = append(opts, schema.WithFilePath(path))
	}
	if format != "" {
		f, err := schema.ParseSourceFormat(format)
		if err != nil {
			return nil, err
		}
		opts = append(opts, schema.WithFormat(f))
	}
	opts = append(opts, schema.WithLogger(logger))

	return schema.ParseWithOptions(opts...)
}
