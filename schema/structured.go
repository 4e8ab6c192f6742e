// This file implements the YAML, JSON, and TOML schema readers. These formats
// are decoded into a generic tree, checked against the embedded JSON Schema
// grammar, and then walked in document order to build the Document.

package schema

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"sync"

	"github.com/BurntSushi/toml"
	"github.com/erraggy/optgen/opterrors"
	"github.com/xeipuuv/gojsonschema"
	"go.yaml.in/yaml/v4"
)

//go:embed grammar.json
var grammarJSON []byte

var compileGrammar = sync.OnceValues(func() (*gojsonschema.Schema, error) {
	return gojsonschema.NewSchema(gojsonschema.NewBytesLoader(grammarJSON))
})

// GrammarJSON returns the JSON Schema that structured schema documents must satisfy.
func GrammarJSON() []byte {
	return bytes.Clone(grammarJSON)
}

// decodeStructured parses a YAML, JSON, or TOML schema document.
func decodeStructured(data []byte, format SourceFormat, source string, logger Logger) (*Document, error) {
	tree, err := decodeTree(data, format)
	if err != nil {
		return nil, &opterrors.SchemaError{Path: source, Message: "malformed " + format.String(), Cause: err}
	}

	if err := validateTree(tree, source); err != nil {
		return nil, err
	}
	logger.Debug("grammar check passed", "source", source, "format", format.String())

	return buildFromTree(tree, source, logger)
}

func decodeTree(data []byte, format SourceFormat) (map[string]any, error) {
	var tree map[string]any
	switch format {
	case SourceFormatJSON:
		dec := json.NewDecoder(bytes.NewReader(data))
		dec.UseNumber()
		if err := dec.Decode(&tree); err != nil {
			return nil, err
		}
	case SourceFormatTOML:
		if _, err := toml.Decode(string(data), &tree); err != nil {
			return nil, err
		}
	default:
		if err := yaml.Unmarshal(data, &tree); err != nil {
			return nil, err
		}
	}
	if tree == nil {
		return nil, fmt.Errorf("document is empty")
	}
	return tree, nil
}

// validateTree checks a decoded tree against the embedded grammar.
func validateTree(tree map[string]any, source string) error {
	grammar, err := compileGrammar()
	if err != nil {
		return fmt.Errorf("schema: compiling grammar: %w", err)
	}

	result, err := grammar.Validate(gojsonschema.NewGoLoader(tree))
	if err != nil {
		return &opterrors.SchemaError{Path: source, Message: "document cannot be checked against the grammar", Cause: err}
	}
	if result.Valid() {
		return nil
	}

	errs := result.Errors()
	msgs := make([]string, 0, len(errs))
	for _, e := range errs {
		msgs = append(msgs, fmt.Sprintf("%s: %s", e.Field(), e.Description()))
	}
	return &opterrors.SchemaError{
		Path:    source,
		Element: errs[0].Field(),
		Message: strings.Join(msgs, "; "),
	}
}

// buildFromTree walks a grammar-checked tree. The grammar guarantees the
// shapes asserted here.
func buildFromTree(tree map[string]any, source string, logger Logger) (*Document, error) {
	b := newDocumentBuilder()
	b.setClass(mapGetString(tree, "class"))

	prog, _ := tree["program"].(map[string]any)
	if err := b.setProgram(Program{
		Description: mapGetString(prog, "description"),
		Copyright:   mapGetString(prog, "copyright"),
		Usage:       mapGetStringSlice(prog, "usage"),
	}); err != nil {
		return nil, &opterrors.SchemaError{Path: source, Element: "program", Message: err.Error()}
	}

	for si, rawSection := range mapGetSlice(tree, "sections") {
		section, _ := rawSection.(map[string]any)
		title := mapGetString(section, "title")
		if err := b.openSection(title); err != nil {
			return nil, &opterrors.SchemaError{Path: source, Element: fmt.Sprintf("sections.%d", si), Message: err.Error()}
		}

		for oi, rawOption := range mapGetSlice(section, "options") {
			element := fmt.Sprintf("sections.%d.options.%d", si, oi)
			m, _ := rawOption.(map[string]any)
			opt := Option{
				Long:        mapGetString(m, "long"),
				Short:       mapGetString(m, "short"),
				If:          mapGetString(m, "if"),
				Description: mapGetString(m, "description"),
			}
			if argMap, ok := m["arg"].(map[string]any); ok {
				opt.Arg = decodeArgument(argMap)
			}
			idx, err := b.addOption(opt)
			if err != nil {
				return nil, &opterrors.SchemaError{Path: source, Element: element, Message: err.Error()}
			}
			logger.Debug("option", "long", opt.Long, "index", idx, "section", si)
		}
		b.closeSection()
	}

	doc, err := b.finish()
	if err != nil {
		return nil, &opterrors.SchemaError{Path: source, Message: err.Error()}
	}
	return doc, nil
}

func decodeArgument(m map[string]any) *Argument {
	arg := &Argument{
		Type: mapGetString(m, "type"),
		Name: mapGetString(m, "name"),
	}
	if v, ok := m["default"]; ok && v != nil {
		text := scalarText(v)
		arg.Default = &text
	}
	switch v := m["optional"].(type) {
	case bool:
		arg.Optional = v
	case string:
		arg.Optional = v == "yes"
	}
	return arg
}

// scalarText renders a decoded scalar as the literal text used in declarations.
func scalarText(v any) string {
	switch t := v.(type) {
	case string:
		return t
	case json.Number:
		return t.String()
	case bool:
		return strconv.FormatBool(t)
	case int:
		return strconv.Itoa(t)
	case int64:
		return strconv.FormatInt(t, 10)
	case uint64:
		return strconv.FormatUint(t, 10)
	case float64:
		return strconv.FormatFloat(t, 'g', -1, 64)
	default:
		return fmt.Sprint(t)
	}
}

func mapGetString(m map[string]any, key string) string {
	if m == nil {
		return ""
	}
	s, _ := m[key].(string)
	return s
}

func mapGetSlice(m map[string]any, key string) []any {
	if m == nil {
		return nil
	}
	switch v := m[key].(type) {
	case []any:
		return v
	case []map[string]any:
		out := make([]any, 0, len(v))
		for _, item := range v {
			out = append(out, item)
		}
		return out
	}
	return nil
}

func mapGetStringSlice(m map[string]any, key string) []string {
	items := mapGetSlice(m, key)
	if len(items) == 0 {
		return nil
	}
	out := make([]string, 0, len(items))
	for _, item := range items {
		if s, ok := item.(string); ok {
			out = append(out, s)
		}
	}
	return out
}
