package project

import (
	"bytes"
	"encoding/xml"
	"errors"
	"io"
	"strings"
)

// utf8BOM is written at the start of most manifests saved by Visual Studio.
var utf8BOM = []byte{0xef, 0xbb, 0xbf}

// compileItemPath is the element chain whose Include attributes are collected.
var compileItemPath = []string{"Project", "ItemGroup", "Compile"}

// compileItems reads the whole document and returns the Include values of
// Project/ItemGroup/Compile in the msbuild namespace, in document order.
func compileItems(data []byte) ([]string, error) {
	decoder := xml.NewDecoder(bytes.NewReader(bytes.TrimPrefix(data, utf8BOM)))
	decoder.Strict = true

	var (
		items []string
		stack []xml.Name
		roots int
	)
	for {
		token, err := decoder.Token()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, err
		}

		switch t := token.(type) {
		case xml.StartElement:
			if len(stack) == 0 {
				roots++
				if roots > 1 {
					return nil, ErrMultipleRootElements
				}
			}
			stack = append(stack, t.Name)
			if matchesCompileItem(stack) {
				items = append(items, includeValues(t.Attr)...)
			}
		case xml.EndElement:
			stack = stack[:len(stack)-1]
		case xml.CharData:
			if len(stack) == 0 && len(bytes.TrimSpace(t)) > 0 {
				return nil, ErrContentOutsideRoot
			}
		}
	}

	if roots == 0 {
		return nil, ErrNoRootElement
	}
	return items, nil
}

func matchesCompileItem(stack []xml.Name) bool {
	if len(stack) != len(compileItemPath) {
		return false
	}
	for i, name := range stack {
		if name.Space != MSBuildNamespace || name.Local != compileItemPath[i] {
			return false
		}
	}
	return true
}

// includeValues splits the Include attribute into its ';' separated items.
func includeValues(attrs []xml.Attr) []string {
	var values []string
	for _, attr := range attrs {
		if attr.Name.Space != "" || attr.Name.Local != "Include" {
			continue
		}
		for _, item := range strings.Split(attr.Value, ";") {
			if item = strings.TrimSpace(item); item != "" {
				values = append(values, item)
			}
		}
	}
	return values
}
