package extract

import (
	"bytes"
	"encoding/json"
	"encoding/xml"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// ConfigPairs parses a configuration file into flat dotted key/value pairs.
// The format is chosen by file extension; unknown extensions fall back to
// properties-style line parsing.
func ConfigPairs(filename string, data []byte) (map[string]string, error) {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".json":
		return jsonPairs(data)
	case ".yml", ".yaml":
		return yamlPairs(data)
	case ".xml":
		return xmlPairs(data)
	default:
		return PropertiesPairs(data), nil
	}
}

// PropertiesPairs parses .properties / .env style "key=value" lines.
// Comment lines (# or !) and lines without a separator are skipped.
func PropertiesPairs(data []byte) map[string]string {
	out := map[string]string{}
	for _, line := range strings.Split(string(data), "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") || strings.HasPrefix(line, "!") {
			continue
		}
		sep := strings.IndexAny(line, "=:")
		if sep < 0 {
			continue
		}
		key := strings.TrimSpace(line[:sep])
		if key == "" {
			continue
		}
		out[key] = strings.TrimSpace(line[sep+1:])
	}
	return out
}

func jsonPairs(data []byte) (map[string]string, error) {
	var root any
	if err := json.Unmarshal(data, &root); err != nil {
		return nil, fmt.Errorf("parse json config: %w", err)
	}
	out := map[string]string{}
	flattenValue("", root, out)
	return out, nil
}

func yamlPairs(data []byte) (map[string]string, error) {
	var root any
	if err := yaml.Unmarshal(data, &root); err != nil {
		return nil, fmt.Errorf("parse yaml config: %w", err)
	}
	out := map[string]string{}
	flattenValue("", root, out)
	return out, nil
}

// flattenValue walks nested maps and lists, producing dotted keys
// ("server.port", "hosts.0").
func flattenValue(prefix string, v any, out map[string]string) {
	switch t := v.(type) {
	case map[string]any:
		for k, child := range t {
			flattenValue(joinKey(prefix, k), child, out)
		}
	case map[any]any:
		for k, child := range t {
			flattenValue(joinKey(prefix, fmt.Sprint(k)), child, out)
		}
	case []any:
		for i, child := range t {
			flattenValue(joinKey(prefix, fmt.Sprint(i)), child, out)
		}
	case nil:
		if prefix != "" {
			out[prefix] = ""
		}
	default:
		if prefix != "" {
			out[prefix] = fmt.Sprint(t)
		}
	}
}

func joinKey(prefix, key string) string {
	if prefix == "" {
		return key
	}
	return prefix + "." + key
}

// xmlPairs flattens an XML document into dotted element-path keys. The root
// element name is dropped from the path. Elements with a "name" or "key"
// attribute use that attribute instead of the tag name, which covers
// <property name="x">y</property> shapes.
func xmlPairs(data []byte) (map[string]string, error) {
	dec := xml.NewDecoder(bytes.NewReader(data))
	out := map[string]string{}
	var path []string
	var text strings.Builder

	for {
		tok, err := dec.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("parse xml config: %w", err)
		}
		switch t := tok.(type) {
		case xml.StartElement:
			name := t.Name.Local
			for _, a := range t.Attr {
				if a.Name.Local == "name" || a.Name.Local == "key" {
					name = a.Value
					break
				}
			}
			path = append(path, name)
			text.Reset()
		case xml.CharData:
			text.Write(t)
		case xml.EndElement:
			if v := strings.TrimSpace(text.String()); v != "" && len(path) > 1 {
				out[strings.Join(path[1:], ".")] = v
			}
			text.Reset()
			if len(path) > 0 {
				path = path[:len(path)-1]
			}
		}
	}
	return out, nil
}
