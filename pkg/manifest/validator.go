// Package manifest holds services that validate addon manifest documents
// (addon.json) against a JSON schema.
//
// Package contains two types of manifest validators:
//
// raw - which accepts JSON schema string,
// reference - which accepts reference to JSON schema (URL or OS path),
//
// RawValidator and ReferenceValidator run on xeipuuv/gojsonschema and cover
// JSON Schema drafts v4, v6 and v7. RawQRIValidator runs on qri-io/jsonschema
// and covers drafts 7 and 2019-09.
package manifest

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"path"
	"strings"

	"github.com/qri-io/jsonschema"
	jschema "github.com/xeipuuv/gojsonschema"

	"github.com/wojsza/gmodutils/pkg/httpctx"
	"github.com/wojsza/gmodutils/pkg/osutils"
	v "github.com/wojsza/gmodutils/pkg/validator"
)

// RawValidator is entity that has ability to validate manifest against JSON schema passed as string.
type RawValidator struct{}

// RawQRIValidator is entity that has ability to validate manifest against JSON schema passed as string.
// qri-io/jsonschema is used under the hood.
type RawQRIValidator struct{}

// ReferenceValidator is entity that has ability to validate manifest against JSON schema passed as reference.
type ReferenceValidator struct {
	fileValidator v.Validator
	urlValidator  v.Validator

	// schemasDir represents absolute path to JSON schemas directory.
	schemasDir string
}

func NewRawValidator() RawValidator {
	return RawValidator{}
}

func NewRawQRIValidator() RawQRIValidator {
	return RawQRIValidator{}
}

// NewReferenceValidator creates new ReferenceValidator with provided services
func NewReferenceValidator(schemasDir string, fileValidator, urlValidator v.Validator) ReferenceValidator {
	return ReferenceValidator{
		fileValidator: fileValidator,
		urlValidator:  urlValidator,
		schemasDir:    schemasDir,
	}
}

// NewDefaultReferenceValidator creates new ReferenceValidator with fixed services
func NewDefaultReferenceValidator(schemasDir string) ReferenceValidator {
	return NewReferenceValidator(schemasDir, osutils.NewFileValidator(), httpctx.NewURLValidator())
}

// Validate validates manifest document against jsonSchema.
func (rv RawValidator) Validate(document, jsonSchema string) error {
	result, err := jschema.Validate(jschema.NewStringLoader(jsonSchema), jschema.NewStringLoader(document))
	if err != nil {
		return err
	}

	return resultError(result)
}

// Validate validates manifest document against JSON schema located in schemaPath.
// schemaPath may be URL or relative/full path to json schema on user OS
func (rv ReferenceValidator) Validate(document, schemaPath string) error {
	source, err := rv.getSource(schemaPath)
	if err != nil {
		return err
	}

	result, err := jschema.Validate(jschema.NewReferenceLoader(source), jschema.NewStringLoader(document))
	if err != nil {
		return err
	}

	return resultError(result)
}

// Validate validates manifest document against jsonSchema.
func (rv RawQRIValidator) Validate(document, jsonSchema string) error {
	rs := &jsonschema.Schema{}
	if err := json.Unmarshal([]byte(jsonSchema), rs); err != nil {
		return err
	}

	keyErrs, err := rs.ValidateBytes(context.Background(), []byte(document))
	if err != nil {
		return err
	}

	if len(keyErrs) == 0 {
		return nil
	}

	messages := make([]string, 0, len(keyErrs))
	for _, keyErr := range keyErrs {
		messages = append(messages, keyErr.Error())
	}

	return errors.New(strings.Join(messages, " "))
}

// getSource accepts rawSource, validates it and returns valid source.
// available sources are: file system os path and URL
func (rv ReferenceValidator) getSource(rawSource string) (string, error) {
	if rawSource == "" {
		return rawSource, errors.New("provided rawSource should not be empty string")
	}

	if errURL := rv.urlValidator.Validate(rawSource); errURL == nil {
		return rawSource, nil
	}

	pth := rawSource
	if !path.IsAbs(rawSource) {
		pth = path.Clean(path.Join(rv.schemasDir, rawSource))
	}

	if errPath := rv.fileValidator.Validate(pth); errPath == nil {
		return "file://" + pth, nil
	}

	return "", fmt.Errorf("%s isn't valid path to any resource on your OS, nor valid URL", rawSource)
}

// resultError folds all schema violations of result into single error, nil when valid.
func resultError(result *jschema.Result) error {
	if result.Valid() {
		return nil
	}

	var sb strings.Builder
	for _, resultErr := range result.Errors() {
		sb.WriteString(resultErr.String())
	}

	return errors.New(sb.String())
}
