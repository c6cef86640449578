package manifest

import (
	"fmt"

	"github.com/tidwall/gjson"
)

// Field obtains single field of manifest document without full deserialization.
// path uses gjson syntax, for example "title" or "dependencies.0".
func Field(document, path string) (string, error) {
	if !gjson.Valid(document) {
		return "", fmt.Errorf("manifest document is not valid JSON")
	}

	result := gjson.Get(document, path)
	if !result.Exists() {
		return "", fmt.Errorf("manifest has no field under path %s", path)
	}

	return result.String(), nil
}

// Title obtains title field of manifest document.
func Title(document string) (string, error) {
	return Field(document, "title")
}

// Version obtains version field of manifest document.
func Version(document string) (string, error) {
	return Field(document, "version")
}
