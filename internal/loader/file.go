package loader

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
	"gopkg.in/yaml.v3"

	"quiz-runner/internal/quiz"
)

//go:embed schema.json
var schemaJSON []byte

const schemaURL = "schema://quiz.json"

var (
	compileOnce    sync.Once
	compiledSchema *jsonschema.Schema
	compileErr     error

	errNoQuestions = errors.New("questions list is missing")
)

type document struct {
	Questions []documentQuestion `json:"questions" yaml:"questions"`
}

type documentQuestion struct {
	Question string   `json:"question" yaml:"question"`
	Options  []string `json:"options" yaml:"options"`
	Answer   int      `json:"answer" yaml:"answer"`
}

func loadFile(path string) ([]quiz.Record, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &quiz.LoadError{Source: path, Err: err}
	}

	var doc document
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		doc, err = decodeYAML(data)
	default:
		doc, err = decodeJSON(data)
	}
	if err != nil {
		return nil, &quiz.ParseError{Source: path, Err: err}
	}
	if doc.Questions == nil {
		return nil, &quiz.ParseError{Source: path, Err: errNoQuestions}
	}

	records := make([]quiz.Record, 0, len(doc.Questions))
	for _, item := range doc.Questions {
		records = append(records, quiz.Record{
			Prompt:  item.Question,
			Options: item.Options,
			Answer:  item.Answer,
		})
	}
	return records, nil
}

func decodeJSON(data []byte) (document, error) {
	var parsed any
	if err := json.Unmarshal(data, &parsed); err != nil {
		return document{}, fmt.Errorf("invalid JSON: %w", err)
	}

	schema, err := quizSchema()
	if err != nil {
		return document{}, err
	}
	if err := schema.Validate(parsed); err != nil {
		return document{}, fmt.Errorf("schema validation failed: %w", err)
	}

	var doc document
	if err := json.Unmarshal(data, &doc); err != nil {
		return document{}, fmt.Errorf("invalid JSON: %w", err)
	}
	return doc, nil
}

func decodeYAML(data []byte) (document, error) {
	var doc document
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return document{}, errNoQuestions
		}
		return document{}, fmt.Errorf("invalid YAML: %w", err)
	}
	if err := decoder.Decode(&struct{}{}); err != io.EOF {
		if err == nil {
			return document{}, errors.New("multiple YAML documents are not supported")
		}
		return document{}, fmt.Errorf("invalid YAML: %w", err)
	}
	return doc, nil
}

func quizSchema() (*jsonschema.Schema, error) {
	compileOnce.Do(func() {
		var def any
		if err := json.Unmarshal(schemaJSON, &def); err != nil {
			compileErr = fmt.Errorf("parse schema definition: %w", err)
			return
		}

		c := jsonschema.NewCompiler()
		if err := c.AddResource(schemaURL, def); err != nil {
			compileErr = fmt.Errorf("add resource: %w", err)
			return
		}
		compiledSchema, compileErr = c.Compile(schemaURL)
	})
	return compiledSchema, compileErr
}
