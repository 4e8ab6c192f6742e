// This file implements the XML schema reader. The grammar is enforced while
// streaming tokens, and the same forward pass assigns option and section
// ordinals, so no tree query is ever needed.

package schema

import (
	"bytes"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"slices"
	"strings"
	"unicode/utf8"

	"github.com/erraggy/optgen/opterrors"
	"golang.org/x/text/encoding/ianaindex"
	"golang.org/x/text/transform"
)

type elementKind int

const (
	kindRoot elementKind = iota
	kindProgram
	kindProgramText
	kindOptions
	kindSection
	kindOption
	kindOptionDescription
	kindArg
)

// elementRule describes what an element kind may contain.
type elementRule struct {
	children map[string]elementKind
	required []string
	optional []string
	text     bool
}

var rootChildren = map[string]elementKind{
	"program": kindProgram,
	"options": kindOptions,
	"section": kindSection,
	"option":  kindOption,
}

var grammar = map[elementKind]elementRule{
	kindRoot: {
		children: rootChildren,
		required: []string{"class"},
	},
	kindProgram: {
		children: map[string]elementKind{
			"description": kindProgramText,
			"copyright":   kindProgramText,
			"usage":       kindProgramText,
		},
	},
	kindProgramText: {text: true},
	kindOptions: {
		children: map[string]elementKind{
			"section": kindSection,
			"option":  kindOption,
		},
	},
	kindSection: {
		children: map[string]elementKind{"option": kindOption},
		required: []string{"title"},
	},
	kindOption: {
		children: map[string]elementKind{
			"description": kindOptionDescription,
			"arg":         kindArg,
		},
		required: []string{"long"},
		optional: []string{"short", "if"},
	},
	kindOptionDescription: {text: true},
	kindArg: {
		required: []string{"type", "name"},
		optional: []string{"default", "optional"},
	},
}

// exactlyOnce and atMostOnce list child cardinalities per element kind.
var exactlyOnce = map[elementKind][]string{
	kindRoot:    {"program"},
	kindProgram: {"description", "copyright"},
	kindOption:  {"description"},
}

var atMostOnce = map[elementKind][]string{
	kindRoot:    {"program", "options"},
	kindProgram: {"description", "copyright"},
	kindOption:  {"description", "arg"},
}

type xmlFrame struct {
	name   string
	kind   elementKind
	attrs  map[string]string
	counts map[string]int
	text   strings.Builder
	option int
}

type xmlReader struct {
	dec     *xml.Decoder
	source  string
	logger  Logger
	builder *documentBuilder
	stack   []*xmlFrame
	program Program
	sawRoot bool
}

// decodeXML parses and grammar-checks an XML schema in one forward pass.
func decodeXML(data []byte, source string, logger Logger) (*Document, error) {
	r := &xmlReader{
		dec:     xml.NewDecoder(bytes.NewReader(data)),
		source:  source,
		logger:  logger,
		builder: newDocumentBuilder(),
	}
	r.dec.Strict = true
	r.dec.CharsetReader = charsetReader
	if err := r.run(); err != nil {
		return nil, err
	}
	doc, err := r.builder.finish()
	if err != nil {
		return nil, r.fail("%s", err.Error())
	}
	return doc, nil
}

// charsetReader converts documents that declare a non-UTF-8 encoding, such as
// ISO-8859-1, to UTF-8. Labels are resolved through the IANA registry.
func charsetReader(label string, input io.Reader) (io.Reader, error) {
	enc, err := ianaindex.IANA.Encoding(label)
	if err != nil {
		return nil, fmt.Errorf("unsupported encoding %q: %w", label, err)
	}
	if enc == nil {
		return nil, fmt.Errorf("unsupported encoding %q", label)
	}
	return transform.NewReader(input, enc.NewDecoder()), nil
}

func (r *xmlReader) run() error {
	for {
		tok, err := r.dec.Token()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			var syntaxErr *xml.SyntaxError
			if errors.As(err, &syntaxErr) {
				return &opterrors.SchemaError{Path: r.source, Line: syntaxErr.Line, Message: "malformed XML", Cause: err}
			}
			return &opterrors.SchemaError{Path: r.source, Message: "malformed XML", Cause: err}
		}

		switch t := tok.(type) {
		case xml.StartElement:
			if err := r.start(t); err != nil {
				return err
			}
		case xml.EndElement:
			if err := r.end(); err != nil {
				return err
			}
		case xml.CharData:
			if err := r.chars(t); err != nil {
				return err
			}
		}
	}

	if !r.sawRoot {
		return &opterrors.SchemaError{Path: r.source, Message: "document has no root element"}
	}
	if len(r.stack) > 0 {
		return r.fail("unexpected end of document")
	}
	return nil
}

func (r *xmlReader) top() *xmlFrame {
	if len(r.stack) == 0 {
		return nil
	}
	return r.stack[len(r.stack)-1]
}

func (r *xmlReader) elementPath() string {
	names := make([]string, 0, len(r.stack))
	for _, f := range r.stack {
		names = append(names, f.name)
	}
	return strings.Join(names, "/")
}

func (r *xmlReader) fail(format string, args ...any) error {
	line, col := r.dec.InputPos()
	return &opterrors.SchemaError{
		Path:    r.source,
		Element: r.elementPath(),
		Line:    line,
		Column:  col,
		Message: fmt.Sprintf(format, args...),
	}
}

func (r *xmlReader) start(el xml.StartElement) error {
	name := el.Name.Local
	parent := r.top()

	var kind elementKind
	if parent == nil {
		if r.sawRoot {
			return r.fail("unexpected element <%s> after the root element", name)
		}
		r.sawRoot = true
		kind = kindRoot
	} else {
		rule := grammar[parent.kind]
		k, ok := rule.children[name]
		if !ok {
			return r.fail("element <%s> is not allowed in <%s>", name, parent.name)
		}
		parent.counts[name]++
		if parent.counts[name] > 1 && slices.Contains(atMostOnce[parent.kind], name) {
			return r.fail("element <%s> may appear only once in <%s>", name, parent.name)
		}
		kind = k
	}

	frame := &xmlFrame{
		name:   name,
		kind:   kind,
		counts: make(map[string]int),
		option: -1,
	}
	r.stack = append(r.stack, frame)

	attrs, err := r.attributes(el, grammar[kind])
	if err != nil {
		return err
	}
	frame.attrs = attrs

	switch kind {
	case kindRoot:
		r.builder.setClass(attrs["class"])
	case kindSection:
		if err := r.builder.openSection(attrs["title"]); err != nil {
			return r.fail("%s", err.Error())
		}
	case kindOption:
		return r.startOption(frame)
	case kindArg:
		return r.startArg(frame, parent)
	}
	return nil
}

// attributes checks el's attributes against rule and returns them by local name.
func (r *xmlReader) attributes(el xml.StartElement, rule elementRule) (map[string]string, error) {
	attrs := make(map[string]string, len(el.Attr))
	for _, a := range el.Attr {
		if a.Name.Space == "xmlns" || a.Name.Local == "xmlns" {
			continue
		}
		if !slices.Contains(rule.required, a.Name.Local) && !slices.Contains(rule.optional, a.Name.Local) {
			return nil, r.fail("attribute %q is not allowed on <%s>", a.Name.Local, el.Name.Local)
		}
		attrs[a.Name.Local] = a.Value
	}
	for _, req := range rule.required {
		if attrs[req] == "" {
			return nil, r.fail("missing required attribute %q on <%s>", req, el.Name.Local)
		}
	}
	return attrs, nil
}

func (r *xmlReader) startOption(frame *xmlFrame) error {
	short := frame.attrs["short"]
	if utf8.RuneCountInString(short) > 1 {
		return r.fail("short name %q of option %q must be a single character", short, frame.attrs["long"])
	}
	idx, err := r.builder.addOption(Option{
		Long:  frame.attrs["long"],
		Short: short,
		If:    frame.attrs["if"],
	})
	if err != nil {
		return r.fail("%s", err.Error())
	}
	frame.option = idx
	r.logger.Debug("option", "long", frame.attrs["long"], "index", idx, "section", r.builder.option(idx).SectionIndex)
	return nil
}

func (r *xmlReader) startArg(frame, parent *xmlFrame) error {
	arg := &Argument{
		Type: frame.attrs["type"],
		Name: frame.attrs["name"],
	}
	if def, ok := frame.attrs["default"]; ok {
		arg.Default = &def
	}
	switch frame.attrs["optional"] {
	case "", "no":
	case "yes":
		arg.Optional = true
	default:
		return r.fail("attribute \"optional\" must be \"yes\" or \"no\", got %q", frame.attrs["optional"])
	}
	r.builder.option(parent.option).Arg = arg
	return nil
}

func (r *xmlReader) chars(data xml.CharData) error {
	frame := r.top()
	if frame == nil {
		return nil
	}
	if grammar[frame.kind].text {
		frame.text.Write(data)
		return nil
	}
	if len(bytes.TrimSpace(data)) > 0 {
		return r.fail("unexpected text in <%s>", frame.name)
	}
	return nil
}

func (r *xmlReader) end() error {
	frame := r.top()
	for _, name := range exactlyOnce[frame.kind] {
		if frame.counts[name] != 1 {
			return r.fail("<%s> requires exactly one <%s> element", frame.name, name)
		}
	}

	r.stack = r.stack[:len(r.stack)-1]
	parent := r.top()

	switch frame.kind {
	case kindProgramText:
		text := frame.text.String()
		switch frame.name {
		case "description":
			r.program.Description = text
		case "copyright":
			r.program.Copyright = text
		case "usage":
			r.program.Usage = append(r.program.Usage, text)
		}
	case kindProgram:
		if err := r.builder.setProgram(r.program); err != nil {
			return r.fail("%s", err.Error())
		}
	case kindOptionDescription:
		r.builder.option(parent.option).Description = frame.text.String()
	case kindSection:
		r.builder.closeSection()
	}
	return nil
}
