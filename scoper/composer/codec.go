package composer

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"slices"
	"strings"
	"unicode/utf8"

	"go.yaml.in/yaml/v4"
)

// indent is the indentation unit of re-encoded documents.
const indent = "    "

// maxDepth bounds array and object nesting, matching PHP's json_decode default.
const maxDepth = 512

// decodeOrdered decodes a single JSON value from contents.
//
// It returns the value as plain Go data (objects as map[string]any, numbers
// as json.Number) together with a yaml.Node tree recording the source key
// order. Invalid UTF-8, nesting deeper than maxDepth and trailing data after
// the top-level value are rejected.
func decodeOrdered(contents string) (any, *yaml.Node, error) {
	if !utf8.ValidString(contents) {
		return nil, nil, errors.New("malformed UTF-8 characters")
	}

	dec := json.NewDecoder(strings.NewReader(contents))
	dec.UseNumber()

	data, node, err := decodeValue(dec, 0)
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, nil, io.ErrUnexpectedEOF
		}
		return nil, nil, err
	}

	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		if err == nil {
			err = errors.New("unexpected data after top-level value")
		}
		return nil, nil, err
	}
	return data, node, nil
}

// decodeValue reads the next complete value from dec.
// Duplicate object keys keep their first position and their last value,
// matching encoding/json's last-wins semantics. depth is the number of
// enclosing arrays and objects.
func decodeValue(dec *json.Decoder, depth int) (any, *yaml.Node, error) {
	tok, err := dec.Token()
	if err != nil {
		return nil, nil, err
	}

	switch v := tok.(type) {
	case json.Delim:
		if depth >= maxDepth {
			return nil, nil, fmt.Errorf("maximum nesting depth of %d exceeded", maxDepth)
		}
		switch v {
		case '{':
			return decodeObject(dec, depth+1)
		case '[':
			return decodeArray(dec, depth+1)
		default:
			return nil, nil, fmt.Errorf("unexpected delimiter %q", rune(v))
		}
	case string:
		return v, scalarNode("!!str", v), nil
	case json.Number:
		return v, scalarNode("!!float", v.String()), nil
	case bool:
		if v {
			return v, scalarNode("!!bool", "true"), nil
		}
		return v, scalarNode("!!bool", "false"), nil
	case nil:
		return nil, scalarNode("!!null", "null"), nil
	default:
		return nil, nil, fmt.Errorf("unexpected token %v", tok)
	}
}

func decodeObject(dec *json.Decoder, depth int) (any, *yaml.Node, error) {
	data := make(map[string]any)
	node := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
	positions := make(map[string]int)

	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return nil, nil, err
		}
		key, ok := keyTok.(string)
		if !ok {
			return nil, nil, fmt.Errorf("unexpected object key %v", keyTok)
		}

		val, valNode, err := decodeValue(dec, depth)
		if err != nil {
			return nil, nil, err
		}

		data[key] = val
		if pos, seen := positions[key]; seen {
			node.Content[pos+1] = valNode
			continue
		}
		positions[key] = len(node.Content)
		node.Content = append(node.Content, scalarNode("!!str", key), valNode)
	}

	// closing '}'
	if _, err := dec.Token(); err != nil {
		return nil, nil, err
	}
	return data, node, nil
}

func decodeArray(dec *json.Decoder, depth int) (any, *yaml.Node, error) {
	data := make([]any, 0)
	node := &yaml.Node{Kind: yaml.SequenceNode, Tag: "!!seq"}

	for dec.More() {
		val, valNode, err := decodeValue(dec, depth)
		if err != nil {
			return nil, nil, err
		}
		data = append(data, val)
		node.Content = append(node.Content, valNode)
	}

	// closing ']'
	if _, err := dec.Token(); err != nil {
		return nil, nil, err
	}
	return data, node, nil
}

// encodeOrdered encodes data as indented JSON, ordering object keys the way
// node records them. Keys present in data but not in node are appended in
// sorted order, so the output is a pure function of (node, data).
func encodeOrdered(node *yaml.Node, data any) (string, error) {
	var compact bytes.Buffer
	if err := marshalNodeAsJSON(&compact, node, data); err != nil {
		return "", err
	}

	var out bytes.Buffer
	if err := json.Indent(&out, compact.Bytes(), "", indent); err != nil {
		return "", err
	}
	return out.String(), nil
}

// marshalNodeAsJSON writes data to buf as compact JSON, preserving the key
// order recorded in node.
func marshalNodeAsJSON(buf *bytes.Buffer, node *yaml.Node, data any) error {
	if node == nil {
		return writeJSON(buf, data)
	}

	switch node.Kind {
	case yaml.MappingNode:
		dataMap, ok := data.(map[string]any)
		if !ok {
			// Data was replaced by a value of another type.
			return writeJSON(buf, data)
		}

		buf.WriteByte('{')

		dataKeys := make([]string, 0, len(dataMap))
		for k := range dataMap {
			dataKeys = append(dataKeys, k)
		}
		keyOrder := mergeKeyOrder(extractKeyOrder(node), dataKeys)

		first := true
		for _, key := range keyOrder {
			val, exists := dataMap[key]
			if !exists {
				continue
			}

			if !first {
				buf.WriteByte(',')
			}
			first = false

			if err := writeJSON(buf, key); err != nil {
				return err
			}
			buf.WriteByte(':')

			if err := marshalNodeAsJSON(buf, lookupValue(node, key), val); err != nil {
				return err
			}
		}

		buf.WriteByte('}')
		return nil

	case yaml.SequenceNode:
		dataSlice, ok := data.([]any)
		if !ok {
			return writeJSON(buf, data)
		}

		buf.WriteByte('[')
		for i, item := range dataSlice {
			if i > 0 {
				buf.WriteByte(',')
			}
			var childNode *yaml.Node
			if i < len(node.Content) {
				childNode = node.Content[i]
			}
			if err := marshalNodeAsJSON(buf, childNode, item); err != nil {
				return err
			}
		}
		buf.WriteByte(']')
		return nil

	default:
		return writeJSON(buf, data)
	}
}

// extractKeyOrder returns the keys of a MappingNode in their source order.
func extractKeyOrder(node *yaml.Node) []string {
	if node == nil || node.Kind != yaml.MappingNode {
		return nil
	}

	keys := make([]string, 0, len(node.Content)/2)
	for i := 0; i+1 < len(node.Content); i += 2 {
		if node.Content[i].Kind == yaml.ScalarNode {
			keys = append(keys, node.Content[i].Value)
		}
	}
	return keys
}

// lookupValue returns the value node stored under key in a mapping node, or
// nil when node is not a mapping or lacks the key. Duplicate keys were
// collapsed at decode time, so the first match is the only one.
func lookupValue(node *yaml.Node, key string) *yaml.Node {
	if node == nil || node.Kind != yaml.MappingNode {
		return nil
	}
	for i := 0; i+1 < len(node.Content); i += 2 {
		if k := node.Content[i]; k.Kind == yaml.ScalarNode && k.Value == key {
			return node.Content[i+1]
		}
	}
	return nil
}

// mergeKeyOrder returns keys in source order, with any extra keys from data appended (sorted for determinism).
func mergeKeyOrder(sourceKeys, dataKeys []string) []string {
	seenKeys := make(map[string]bool, len(sourceKeys))
	for _, k := range sourceKeys {
		seenKeys[k] = true
	}

	var extraKeys []string
	for _, k := range dataKeys {
		if !seenKeys[k] {
			extraKeys = append(extraKeys, k)
		}
	}
	slices.Sort(extraKeys)

	return append(slices.Clip(sourceKeys), extraKeys...)
}

// writeJSON marshals v without HTML escaping and appends it to buf.
func writeJSON(buf *bytes.Buffer, v any) error {
	var tmp bytes.Buffer
	enc := json.NewEncoder(&tmp)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return err
	}
	buf.Write(bytes.TrimSuffix(tmp.Bytes(), []byte("\n")))
	return nil
}

func scalarNode(tag, value string) *yaml.Node {
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: tag, Value: value}
}

// jsonKind names the JSON type of a decoded value for error messages.
func jsonKind(v any) string {
	switch v.(type) {
	case nil:
		return "null"
	case map[string]any:
		return "object"
	case []any:
		return "array"
	case string:
		return "string"
	case json.Number, float64:
		return "number"
	case bool:
		return "boolean"
	default:
		return fmt.Sprintf("%T", v)
	}
}
