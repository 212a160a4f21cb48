package kb

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

var (
	// ErrUnsupportedFormat is returned for file extensions no loader handles.
	ErrUnsupportedFormat = errors.New("kb: unsupported knowledge-base format")

	// ErrEmptyDocument is returned when a file parses but yields no content.
	ErrEmptyDocument = errors.New("kb: document contains no data")
)

// Load reads a knowledge-base file, dispatching on extension.
// JSON and YAML files must contain a full Document; XLSX and PDF files
// are treated as uploads and produce a Document whose only populated
// section is UploadedData.
func Load(path string) (*Document, error) {
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(path), "."))
	switch ext {
	case "json":
		return loadJSON(path)
	case "yaml", "yml":
		return loadYAML(path)
	case "xlsx", "xls":
		uploads, err := LoadXLSX(path)
		if err != nil {
			return nil, err
		}
		return &Document{UploadedData: uploads}, nil
	case "pdf":
		uploads, err := LoadPDF(path)
		if err != nil {
			return nil, err
		}
		return &Document{UploadedData: uploads}, nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, ext)
	}
}

func loadJSON(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading knowledge base: %w", err)
	}
	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parsing knowledge base JSON: %w", err)
	}
	if doc.Empty() {
		return nil, ErrEmptyDocument
	}
	return &doc, nil
}

func loadYAML(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading knowledge base: %w", err)
	}
	var doc Document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parsing knowledge base YAML: %w", err)
	}
	if doc.Empty() {
		return nil, ErrEmptyDocument
	}
	return &doc, nil
}

// Merge combines two documents, with entries from other appended after
// (or, for maps, overriding) the receiver's. Used to fold uploads into
// a base knowledge base.
func Merge(base, other *Document) *Document {
	if base == nil {
		return other
	}
	if other == nil {
		return base
	}
	merged := *base
	if len(other.Profile) > 0 {
		if merged.Profile == nil {
			merged.Profile = make(map[string]string, len(other.Profile))
		}
		for k, v := range other.Profile {
			merged.Profile[k] = v
		}
	}
	if len(other.AI) > 0 {
		if merged.AI == nil {
			merged.AI = make(map[string]string, len(other.AI))
		}
		for k, v := range other.AI {
			merged.AI[k] = v
		}
	}
	merged.Cards = append(merged.Cards, other.Cards...)
	merged.Certificates = append(merged.Certificates, other.Certificates...)
	merged.Collaborations = append(merged.Collaborations, other.Collaborations...)
	merged.Interests = append(merged.Interests, other.Interests...)
	merged.SoftSkills = append(merged.SoftSkills, other.SoftSkills...)
	merged.UploadedData = append(merged.UploadedData, other.UploadedData...)
	return &merged
}
