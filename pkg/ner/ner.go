// Package ner extracts named entities from free text.
package ner

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/jdkato/prose/v2"
)

// Entity is a recognised span and its category label (PERSON, GPE, ...).
type Entity struct {
	Text  string
	Label string
}

// Extractor finds named entities in text.
// Implementations are safe for concurrent use.
type Extractor interface {
	Extract(ctx context.Context, text string) ([]Entity, error)
}

// englishModel decodes prose's bundled tagger and entity model. Decoding is
// slow, so it happens once per process; inference only reads the model.
var englishModel = sync.OnceValue(func() *prose.Model {
	return prose.ModelFromData("en")
})

type proseExtractor struct {
	model *prose.Model
}

// New returns an Extractor backed by prose's bundled English model. The model
// is loaded on the first call and shared by every Extractor.
func New() Extractor {
	return proseExtractor{model: englishModel()}
}

// Extract returns entities in document order. Blank input yields no entities.
func (e proseExtractor) Extract(ctx context.Context, text string) ([]Entity, error) {
	if strings.TrimSpace(text) == "" {
		return []Entity{}, nil
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	doc, err := prose.NewDocument(text, prose.WithSegmentation(false), prose.UsingModel(e.model))
	if err != nil {
		return nil, fmt.Errorf("ner: failed to analyse text: %w", err)
	}

	ents := doc.Entities()
	out := make([]Entity, 0, len(ents))
	for _, e := range ents {
		out = append(out, Entity{Text: e.Text, Label: e.Label})
	}
	return out, nil
}
