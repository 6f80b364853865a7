// Package schema provides JSON schema validation for suitereport configuration files.
package schema

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
	"gopkg.in/yaml.v3"

	schemafs "github.com/AndreyAkinshin/suitereport/schema"
)

const reportSchemaName = "report.schema.json"

var (
	reportSchema *jsonschema.Schema
	compileOnce  sync.Once
	compileErr   error
)

// compileSchemas compiles the embedded schema once.
func compileSchemas() error {
	compileOnce.Do(func() {
		compiler := jsonschema.NewCompiler()

		data, err := schemafs.FS.ReadFile(reportSchemaName)
		if err != nil {
			compileErr = fmt.Errorf("read report schema: %w", err)
			return
		}

		doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(data))
		if err != nil {
			compileErr = fmt.Errorf("unmarshal report schema: %w", err)
			return
		}

		if err := compiler.AddResource(reportSchemaName, doc); err != nil {
			compileErr = fmt.Errorf("add report schema resource: %w", err)
			return
		}

		reportSchema, err = compiler.Compile(reportSchemaName)
		if err != nil {
			compileErr = fmt.Errorf("compile report schema: %w", err)
			return
		}
	})

	return compileErr
}

// ValidateConfig validates YAML config data against the report schema.
// An empty document is valid.
func ValidateConfig(data []byte) error {
	if err := compileSchemas(); err != nil {
		return err
	}

	var raw any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("invalid YAML: %w", err)
	}
	if raw == nil {
		raw = map[string]any{}
	}

	// Round-trip through JSON so the validator sees JSON types
	// (json.Number, map[string]any) rather than YAML decoder types.
	jsonData, err := json.Marshal(raw)
	if err != nil {
		return fmt.Errorf("config is not representable as JSON: %w", err)
	}
	v, err := jsonschema.UnmarshalJSON(bytes.NewReader(jsonData))
	if err != nil {
		return fmt.Errorf("invalid JSON: %w", err)
	}

	if err := reportSchema.Validate(v); err != nil {
		return fmt.Errorf("config validation failed: %w", err)
	}

	return nil
}
