package schema

import (
	"bufio"
	"bytes"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// frontMatter is the optional YAML header of a model document.
type frontMatter struct {
	Name string `yaml:"name"`
}

// LoadFile loads and parses a markdown model document from the given path.
func LoadFile(path string) (*Model, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read model file %s: %w", path, err)
	}

	return Parse(data)
}

// Parse parses markdown data into a Model.
func Parse(data []byte) (*Model, error) {
	body, fm, err := splitFrontMatter(data)
	if err != nil {
		return nil, err
	}

	p := &parser{model: &Model{Name: fm.Name}}

	scanner := bufio.NewScanner(bytes.NewReader(body))
	for scanner.Scan() {
		p.line++
		if err := p.consume(scanner.Text()); err != nil {
			return nil, err
		}
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to scan model document: %w", err)
	}

	if err := p.flushSection(); err != nil {
		return nil, err
	}

	return p.model, nil
}

// splitFrontMatter separates the optional YAML front matter from the body.
func splitFrontMatter(data []byte) ([]byte, frontMatter, error) {
	var fm frontMatter

	const marker = "---\n"

	text := strings.ReplaceAll(string(data), "\r\n", "\n")
	if !strings.HasPrefix(text, marker) {
		return []byte(text), fm, nil
	}

	rest := text[len(marker):]

	end := strings.Index(rest, "\n"+marker)
	if end < 0 {
		return nil, fm, fmt.Errorf("unterminated front matter")
	}

	header := rest[:end]
	body := rest[end+1+len(marker):]

	if err := yaml.Unmarshal([]byte(header), &fm); err != nil {
		return nil, fm, fmt.Errorf("failed to parse front matter: %w", err)
	}

	return []byte(body), fm, nil
}

// sectionItem is one top-level list item of a section with its nested options.
type sectionItem struct {
	text    string
	line    int
	options []string
}

// parser holds the line-scanning state for one document.
type parser struct {
	model    *Model
	line     int
	section  string
	items    []sectionItem
	sawTitle bool
}

// consume processes one line of the document body.
func (p *parser) consume(raw string) error {
	line := strings.TrimRight(raw, " \t")
	trimmed := strings.TrimSpace(line)

	switch {
	case trimmed == "":
		return nil

	case strings.HasPrefix(trimmed, "### "):
		if err := p.flushSection(); err != nil {
			return err
		}

		p.section = strings.TrimSpace(strings.TrimPrefix(trimmed, "### "))

		if p.section == "" {
			return fmt.Errorf("line %d: empty section heading", p.line)
		}

		return nil

	case strings.HasPrefix(trimmed, "## "):
		// Organizational grouping heading, no semantic content.
		return nil

	case strings.HasPrefix(trimmed, "# "):
		// The first document title wins over the front matter name.
		if !p.sawTitle {
			p.model.Name = strings.TrimSpace(strings.TrimPrefix(trimmed, "# "))
			p.sawTitle = true
		}

		return nil

	case strings.HasPrefix(trimmed, "- "):
		return p.consumeItem(line, trimmed)

	default:
		// Free prose between sections is ignored.
		return nil
	}
}

// consumeItem processes a list item line, distinguishing top-level items
// from nested option items by indentation.
func (p *parser) consumeItem(line, trimmed string) error {
	if p.section == "" {
		// List items outside any section carry no meaning.
		return nil
	}

	text := strings.TrimSpace(strings.TrimPrefix(trimmed, "- "))

	indent := len(line) - len(strings.TrimLeft(line, " \t"))
	if indent >= 2 {
		if len(p.items) == 0 {
			return fmt.Errorf("line %d: option without an attribute in section %q", p.line, p.section)
		}

		last := &p.items[len(p.items)-1]
		last.options = append(last.options, text)

		return nil
	}

	p.items = append(p.items, sectionItem{text: text, line: p.line})

	return nil
}

// flushSection converts the collected items of the current section into an
// ObjectDef or EnumDef on the model.
func (p *parser) flushSection() error {
	if p.section == "" {
		return nil
	}

	name := p.section
	items := p.items
	p.section = ""
	p.items = nil

	if isEnumSection(items) {
		enum, err := parseEnum(name, items)
		if err != nil {
			return err
		}

		p.model.Enums = append(p.model.Enums, *enum)

		return nil
	}

	obj, err := parseObject(name, items)
	if err != nil {
		return err
	}

	p.model.Objects = append(p.model.Objects, *obj)

	return nil
}

// isEnumSection reports whether the section's items are enum mappings.
// A section is an enum when its first item is a KEY = value pair.
func isEnumSection(items []sectionItem) bool {
	if len(items) == 0 {
		return false
	}

	return strings.Contains(items[0].text, "=")
}

// parseEnum converts KEY = value items into an EnumDef.
func parseEnum(name string, items []sectionItem) (*EnumDef, error) {
	mappings := make(map[string]string, len(items))

	for _, item := range items {
		key, value, found := strings.Cut(item.text, "=")
		if !found {
			return nil, fmt.Errorf("line %d: enum %s: expected KEY = value, got %q", item.line, name, item.text)
		}

		key = strings.TrimSpace(key)
		value = strings.TrimSpace(value)

		if key == "" {
			return nil, fmt.Errorf("line %d: enum %s: empty variant key", item.line, name)
		}

		if _, exists := mappings[key]; exists {
			return nil, fmt.Errorf("line %d: enum %s: duplicate variant key %q", item.line, name, key)
		}

		mappings[key] = value
	}

	return &EnumDef{Name: name, Mappings: mappings}, nil
}

// parseObject converts attribute items into an ObjectDef.
func parseObject(name string, items []sectionItem) (*ObjectDef, error) {
	obj := &ObjectDef{Name: name}

	for _, item := range items {
		attr, err := parseAttribute(name, item)
		if err != nil {
			return nil, err
		}

		obj.Attributes = append(obj.Attributes, *attr)
	}

	return obj, nil
}

// parseAttribute builds one AttributeDef from a list item and its options.
func parseAttribute(objName string, item sectionItem) (*AttributeDef, error) {
	attrName := item.text

	required := false
	if strings.HasPrefix(attrName, "__") && strings.HasSuffix(attrName, "__") && len(attrName) > 4 {
		attrName = strings.TrimSuffix(strings.TrimPrefix(attrName, "__"), "__")
		required = true
	}

	if attrName == "" || strings.ContainsAny(attrName, " \t") {
		return nil, fmt.Errorf("line %d: object %s: invalid attribute name %q", item.line, objName, item.text)
	}

	attr := &AttributeDef{Name: attrName, Required: required}

	for _, opt := range item.options {
		key, value, found := strings.Cut(opt, ":")
		if !found {
			continue
		}

		key = strings.TrimSpace(key)
		value = strings.TrimSpace(value)

		switch strings.ToLower(key) {
		case "type":
			for _, dtype := range strings.Split(value, ",") {
				dtype = strings.TrimSpace(dtype)
				if dtype == "" {
					continue
				}

				if strings.HasSuffix(dtype, "[]") {
					dtype = strings.TrimSuffix(dtype, "[]")
					attr.IsArray = true
				}

				attr.Dtypes = append(attr.Dtypes, dtype)
			}
		case "multiple":
			attr.IsArray = strings.EqualFold(value, "true")
		default:
			// Description and any other annotations are not used here.
		}
	}

	// An attribute without a declared type is a plain string.
	if len(attr.Dtypes) == 0 {
		attr.Dtypes = []string{"string"}
	}

	return attr, nil
}
