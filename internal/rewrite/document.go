// Package rewrite updates asset-path references inside GES project files.
// It parses each file as a raw XML token stream, rewrites attribute values
// containing the reduced old path, and writes the result back behind a
// backup guard.
package rewrite

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"io"
	"io/fs"
	"os"
)

// Document is a parsed project file held as an XML token stream. Keeping the
// tokens rather than a typed schema means every element and attribute of the
// project file survives a rewrite untouched except for the values that
// actually matched.
type Document struct {
	path   string
	tokens []xml.Token
}

// Replacement records one attribute value that was rewritten.
type Replacement struct {
	Element string
	Attr    string
	Old     string
	New     string
}

// ParseFile reads and parses a project file. A file that is not well-formed
// XML is a per-file error; the caller decides whether to continue the batch.
func ParseFile(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return Parse(path, data)
}

// Parse parses data as XML, remembering path for later Save.
func Parse(path string, data []byte) (*Document, error) {
	dec := xml.NewDecoder(bytes.NewReader(data))
	var tokens []xml.Token
	for {
		tok, err := dec.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("parse %s: %w", path, err)
		}
		// Token reuses its buffer on the next call.
		tokens = append(tokens, xml.CopyToken(tok))
	}
	return &Document{path: path, tokens: tokens}, nil
}

// RewriteAttrs replaces every occurrence of oldCore with newCore in every
// attribute value of the document and returns one Replacement per changed
// attribute. An empty oldCore is a no-op; matching the empty string would
// hit every position of every value.
func (d *Document) RewriteAttrs(oldCore, newCore string) []Replacement {
	if oldCore == "" {
		return nil
	}
	var reps []Replacement
	for i, tok := range d.tokens {
		start, ok := tok.(xml.StartElement)
		if !ok {
			continue
		}
		for j, attr := range start.Attr {
			updated, n := rewriteValue(attr.Value, oldCore, newCore)
			if n == 0 || updated == attr.Value {
				continue
			}
			reps = append(reps, Replacement{
				Element: start.Name.Local,
				Attr:    attr.Name.Local,
				Old:     attr.Value,
				New:     updated,
			})
			start.Attr[j].Value = updated
		}
		d.tokens[i] = start
	}
	return reps
}

// WriteTo serializes the token stream.
func (d *Document) WriteTo(w io.Writer) error {
	enc := xml.NewEncoder(w)
	for _, tok := range d.tokens {
		if err := enc.EncodeToken(tok); err != nil {
			return fmt.Errorf("encode %s: %w", d.path, err)
		}
	}
	if err := enc.Flush(); err != nil {
		return fmt.Errorf("encode %s: %w", d.path, err)
	}
	return nil
}

// Save serializes the document back over its source path, preserving the
// file mode. Callers must run the backup guard first.
func (d *Document) Save() error {
	var buf bytes.Buffer
	if err := d.WriteTo(&buf); err != nil {
		return err
	}
	mode := fs.FileMode(0644)
	if info, err := os.Stat(d.path); err == nil {
		mode = info.Mode().Perm()
	}
	if err := os.WriteFile(d.path, buf.Bytes(), mode); err != nil {
		return fmt.Errorf("write %s: %w", d.path, err)
	}
	return nil
}
