// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"math/rand/v2"
	"strings"
	"sync"

	"github.com/MKhiriev/go-agro-sync/models"
)

const (
	classSeparator = "___"

	minConfidence   = 0.70
	confidenceRange = 0.25

	defaultAccuracy = 94.93
)

// simulatedClassifier stands in for the ML model: it picks a random class
// of the taxonomy with a confidence in [0.70, 0.95).
type simulatedClassifier struct {
	info models.PlantInfo

	mu  sync.Mutex
	rnd *rand.Rand
}

// NewSimulatedClassifier returns a Classifier over the taxonomy of plantInfo.
// A nil src seeds from the runtime.
func NewSimulatedClassifier(plantInfo PlantInfoService, src rand.Source) (Classifier, error) {
	info := plantInfo.PlantInfo(context.Background())
	if len(info.Classes) == 0 {
		return nil, ErrEmptyTaxonomy
	}
	if src == nil {
		src = rand.NewPCG(rand.Uint64(), rand.Uint64())
	}

	return &simulatedClassifier{info: info, rnd: rand.New(src)}, nil
}

func (c *simulatedClassifier) Classify(ctx context.Context, _ string) (models.Analysis, error) {
	if err := ctx.Err(); err != nil {
		return models.Analysis{}, err
	}

	c.mu.Lock()
	idx := c.rnd.IntN(len(c.info.Classes))
	confidence := minConfidence + c.rnd.Float64()*confidenceRange
	c.mu.Unlock()

	class := c.info.Classes[idx]
	portuguese := class
	if idx < len(c.info.ClassesPT) {
		portuguese = c.info.ClassesPT[idx]
	}

	plant, disease := splitClass(class)

	accuracy := c.info.Accuracy
	if accuracy == 0 {
		accuracy = defaultAccuracy
	}

	return models.Analysis{
		PlantType:      plant,
		Disease:        disease,
		PortugueseName: portuguese,
		Confidence:     confidence,
		Accuracy:       accuracy,
	}, nil
}

// splitClass splits "Plant___Disease". A class without a disease part is
// treated as healthy.
func splitClass(class string) (plant, disease string) {
	plant, disease, found := strings.Cut(class, classSeparator)
	if !found || disease == "" {
		return plant, models.DiseaseHealthy
	}
	return plant, disease
}
