package schema

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/erraggy/optgen/opterrors"
)

// Parser handles option schema parsing
type Parser struct {
	// Format forces the source format. If empty or unknown, the format is
	// detected from the file extension, then from the content.
	Format SourceFormat
	// Logger is the structured logger for debug output
	// If nil, logging is disabled (default)
	Logger Logger
}

// New creates a new Parser instance with default settings
func New() *Parser {
	return &Parser{}
}

// log returns the configured logger, or a no-op logger if none is set.
func (p *Parser) log() Logger {
	if p.Logger != nil {
		return p.Logger
	}
	return NopLogger{}
}

// ParseResult contains the parsed schema document and metadata about its source.
//
// Callers should treat ParseResult as read-only after parsing.
type ParseResult struct {
	// Document is the typed schema tree
	Document *Document
	// SourcePath is the path the document was read from. When the source was
	// not a file, it is the name of the method that read it plus the format extension.
	SourcePath string
	// SourceFormat is the format of the source document
	SourceFormat SourceFormat
	// LoadTime is the time taken to load the source data
	LoadTime time.Duration
	// SourceSize is the size of the source data in bytes
	SourceSize int64
	// Stats contains statistical information about the document
	Stats DocumentStats
}

// Parse parses a schema file.
func (p *Parser) Parse(path string) (*ParseResult, error) {
	loadStart := time.Now()
	data, err := os.ReadFile(path) //nolint:gosec // G304 - path is the user-selected schema file
	loadTime := time.Since(loadStart)
	if err != nil {
		return nil, fmt.Errorf("schema: failed to read file: %w", err)
	}

	format := p.Format
	if format == "" || format == SourceFormatUnknown {
		format = detectFormatFromPath(path)
	}

	res, err := p.parse(data, format, path)
	if err != nil {
		return nil, err
	}
	res.LoadTime = loadTime
	return res, nil
}

// ParseReader parses a schema document from r.
func (p *Parser) ParseReader(r io.Reader) (*ParseResult, error) {
	loadStart := time.Now()
	data, err := io.ReadAll(r)
	loadTime := time.Since(loadStart)
	if err != nil {
		return nil, fmt.Errorf("schema: failed to read data: %w", err)
	}
	res, err := p.parse(data, p.Format, "ParseReader")
	if err != nil {
		return nil, err
	}
	res.LoadTime = loadTime
	return res, nil
}

// ParseBytes parses a schema document held in memory.
func (p *Parser) ParseBytes(data []byte) (*ParseResult, error) {
	return p.parse(data, p.Format, "ParseBytes")
}

// parse decodes data in the given format. name is used as the source path;
// when it is a method name, the detected format is appended as an extension.
func (p *Parser) parse(data []byte, format SourceFormat, name string) (*ParseResult, error) {
	size := int64(len(data))
	data = bytes.TrimPrefix(data, utf8BOM)

	if format == "" || format == SourceFormatUnknown {
		format = detectFormatFromContent(data)
	} else if normalized, err := ParseSourceFormat(string(format)); err == nil {
		format = normalized
	}
	if format == SourceFormatUnknown {
		return nil, &opterrors.SchemaError{Path: name, Message: "document is empty"}
	}

	source := name
	if name == "ParseReader" || name == "ParseBytes" {
		source = name + "." + format.String()
	}

	log := p.log().With("source", source, "format", format.String())
	log.Debug("parsing schema", "size", len(data))

	var doc *Document
	var err error
	if format == SourceFormatXML {
		doc, err = decodeXML(data, source, log)
	} else {
		doc, err = decodeStructured(data, format, source, log)
	}
	if err != nil {
		return nil, fmt.Errorf("schema: %w", err)
	}

	stats := GetDocumentStats(doc)
	log.Debug("parsed schema", "class", doc.ClassName, "sections", stats.SectionCount, "options", stats.OptionCount)

	return &ParseResult{
		Document:     doc,
		SourcePath:   source,
		SourceFormat: format,
		SourceSize:   size,
		Stats:        stats,
	}, nil
}
