// Package output serializes translation tables to JSON documents and catalogs.
package output

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/tidwall/pretty"
	"github.com/ukaji3/sheet2i18n/pkg/sheet2i18n/models"
)

// ErrKeyConflict indicates a nested key is used both as a value and as a parent.
var ErrKeyConflict = errors.New("key conflict")

// prettyOptions renders objects with a 2-space indent and keeps key order.
var prettyOptions = &pretty.Options{Width: 80, Prefix: "", Indent: "  ", SortKeys: false}

// JSONOptions controls the document layout.
type JSONOptions struct {
	// ByLocale groups keys under their locale instead of locales under their key.
	ByLocale bool
	// NestKeys splits keys on "." into nested objects.
	NestKeys bool
}

// object is a JSON object that remembers field insertion order.
// Field values are strings or *object.
type object struct {
	keys   []string
	fields map[string]any
	// entry marks an object holding one translation's locales; nesting may not descend into it.
	entry bool
}

func newObject() *object {
	return &object{fields: make(map[string]any)}
}

func (o *object) set(k string, v any) {
	if _, ok := o.fields[k]; !ok {
		o.keys = append(o.keys, k)
	}
	o.fields[k] = v
}

// insert stores v under key, splitting it into a path when nest is set.
func (o *object) insert(key string, v any, nest bool) error {
	if !nest {
		o.set(key, v)
		return nil
	}

	path := strings.Split(key, ".")
	for _, seg := range path {
		if seg == "" {
			return fmt.Errorf("%w: key %q has an empty path segment", ErrKeyConflict, key)
		}
	}

	cur := o
	for i, seg := range path[:len(path)-1] {
		existing, ok := cur.fields[seg]
		if !ok {
			child := newObject()
			cur.set(seg, child)
			cur = child
			continue
		}
		child, isObj := existing.(*object)
		if !isObj || child.entry {
			return fmt.Errorf("%w: key %q is nested under value %q", ErrKeyConflict, key, strings.Join(path[:i+1], "."))
		}
		cur = child
	}

	last := path[len(path)-1]
	if existing, ok := cur.fields[last]; ok {
		if child, isObj := existing.(*object); isObj && !child.entry {
			return fmt.Errorf("%w: key %q is also a parent of other keys", ErrKeyConflict, key)
		}
	}
	cur.set(last, v)
	return nil
}

// encode writes the object as compact JSON without HTML escaping.
func (o *object) encode(buf *bytes.Buffer) error {
	buf.WriteByte('{')
	for i, k := range o.keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		if err := encodeString(buf, k); err != nil {
			return err
		}
		buf.WriteByte(':')
		switch v := o.fields[k].(type) {
		case *object:
			if err := v.encode(buf); err != nil {
				return err
			}
		case string:
			if err := encodeString(buf, v); err != nil {
				return err
			}
		default:
			return fmt.Errorf("unsupported value %T for key %q", v, k)
		}
	}
	buf.WriteByte('}')
	return nil
}

// render returns the indented document with a trailing newline.
func (o *object) render() ([]byte, error) {
	var buf bytes.Buffer
	if err := o.encode(&buf); err != nil {
		return nil, err
	}
	return pretty.PrettyOptions(buf.Bytes(), prettyOptions), nil
}

func encodeString(buf *bytes.Buffer, s string) error {
	var tmp bytes.Buffer
	enc := json.NewEncoder(&tmp)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(s); err != nil {
		return err
	}
	buf.Write(bytes.TrimRight(tmp.Bytes(), "\n"))
	return nil
}

// ToJSON serializes the table. Keys follow source order and locales follow
// header order in both layouts.
func ToJSON(table *models.TranslationTable, opts JSONOptions) ([]byte, error) {
	root := newObject()

	if opts.ByLocale {
		for _, locale := range table.Locales {
			byKey := newObject()
			for _, row := range table.Rows() {
				v, ok := row.Values[locale]
				if !ok {
					continue
				}
				if err := byKey.insert(row.Key, v, opts.NestKeys); err != nil {
					return nil, err
				}
			}
			root.set(locale, byKey)
		}
		return root.render()
	}

	for _, row := range table.Rows() {
		entry := newObject()
		entry.entry = true
		for _, locale := range table.Locales {
			if v, ok := row.Values[locale]; ok {
				entry.set(locale, v)
			}
		}
		if err := root.insert(row.Key, entry, opts.NestKeys); err != nil {
			return nil, err
		}
	}
	return root.render()
}
