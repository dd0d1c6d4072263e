package progress

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

// ExportVersion is the current export document format.
const ExportVersion = 1

// Document is the portable JSON form of a profile's progress, used for
// backup and transfer between installs. The first-launch flag is local to
// an install and is not exported.
type Document struct {
	Version            int                        `json:"version"`
	UserName           string                     `json:"userName"`
	UserAge            string                     `json:"userAge"`
	FavoriteColor      ColorToken                 `json:"favoriteColor"`
	CompletedGames     map[string]bool            `json:"completedGames"`
	Scores             map[string]int             `json:"scores"`
	Percentages        map[string]float64         `json:"percentages"`
	Achievements       []string                   `json:"achievements"`
	ExperienceLevels   map[string]ExperienceLevel `json:"experienceLevels"`
	AutoAdjust         bool                       `json:"autoAdjust"`
	PerformanceHistory map[string]float64         `json:"performanceHistory"`
}

const documentSchema = `{
	"type": "object",
	"required": ["version"],
	"additionalProperties": false,
	"properties": {
		"version": {"const": 1},
		"userName": {"type": "string"},
		"userAge": {"type": "string"},
		"favoriteColor": {"type": "string"},
		"completedGames": {"type": "object", "additionalProperties": {"type": "boolean"}},
		"scores": {"type": "object", "additionalProperties": {"type": "integer"}},
		"percentages": {"type": "object", "additionalProperties": {"$ref": "#/$defs/fraction"}},
		"achievements": {"type": ["array", "null"], "items": {"type": "string"}, "uniqueItems": true},
		"experienceLevels": {"type": "object", "additionalProperties": {"enum": ["rookie", "pro"]}},
		"autoAdjust": {"type": "boolean"},
		"performanceHistory": {"type": "object", "additionalProperties": {"$ref": "#/$defs/fraction"}}
	},
	"$defs": {
		"fraction": {"type": "number", "minimum": 0, "maximum": 1}
	}
}`

var (
	compileOnce    sync.Once
	compiledSchema *jsonschema.Schema
	compileErr     error
)

func exportSchema() (*jsonschema.Schema, error) {
	compileOnce.Do(func() {
		var def any
		if err := json.Unmarshal([]byte(documentSchema), &def); err != nil {
			compileErr = fmt.Errorf("parse schema definition: %w", err)
			return
		}
		c := jsonschema.NewCompiler()
		const url = "schema://progress-export.json"
		if err := c.AddResource(url, def); err != nil {
			compileErr = fmt.Errorf("add resource: %w", err)
			return
		}
		compiledSchema, compileErr = c.Compile(url)
	})
	return compiledSchema, compileErr
}

// Export writes the current progress as an indented JSON document.
func (s *Store) Export(w io.Writer) error {
	p := s.Snapshot()
	doc := Document{
		Version:            ExportVersion,
		UserName:           p.UserName,
		UserAge:            p.UserAge,
		FavoriteColor:      p.FavoriteColor,
		CompletedGames:     p.CompletedGames,
		Scores:             p.Scores,
		Percentages:        p.Percentages,
		Achievements:       p.Achievements,
		ExperienceLevels:   p.ExperienceLevels,
		AutoAdjust:         p.AutoAdjust,
		PerformanceHistory: p.PerformanceHistory,
	}
	if doc.Achievements == nil {
		doc.Achievements = []string{}
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("encode export: %w", err)
	}
	return nil
}

// ParseDocument reads and validates an export document.
func ParseDocument(r io.Reader) (*Document, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read document: %w", err)
	}

	var parsed any
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return nil, fmt.Errorf("invalid JSON: %w", err)
	}

	schema, err := exportSchema()
	if err != nil {
		return nil, fmt.Errorf("compile export schema: %w", err)
	}
	if err := schema.Validate(parsed); err != nil {
		return nil, fmt.Errorf("schema validation failed: %w", err)
	}

	var doc Document
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("decode document: %w", err)
	}
	return &doc, nil
}

// Import replaces the stored progress with the document read from r.
// The first-launch flag is preserved. Invalid documents leave the store
// unchanged.
func (s *Store) Import(ctx context.Context, r io.Reader) error {
	doc, err := ParseDocument(r)
	if err != nil {
		return err
	}

	s.update(ctx, Event{Kind: ProgressUpdated}, func(p *Profile) bool {
		next := Profile{
			UserName:           doc.UserName,
			UserAge:            doc.UserAge,
			FavoriteColor:      doc.FavoriteColor,
			CompletedGames:     doc.CompletedGames,
			Scores:             doc.Scores,
			Percentages:        doc.Percentages,
			Achievements:       doc.Achievements,
			ExperienceLevels:   doc.ExperienceLevels,
			AutoAdjust:         doc.AutoAdjust,
			PerformanceHistory: doc.PerformanceHistory,
			FirstLaunchDone:    p.FirstLaunchDone,
		}
		if next.FavoriteColor == "" {
			next.FavoriteColor = DefaultColor
		}
		next.normalize()
		*p = next
		return true
	})
	return nil
}
