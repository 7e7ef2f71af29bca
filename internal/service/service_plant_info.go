// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	_ "embed"
	"encoding/json"
	"fmt"
	"maps"
	"slices"

	"github.com/MKhiriev/go-agro-sync/models"
)

//go:embed data/model_info.json
var modelInfoJSON []byte

type plantInfoService struct {
	info models.PlantInfo
}

// NewPlantInfoService loads the embedded taxonomy.
func NewPlantInfoService() (PlantInfoService, error) {
	info, err := parsePlantInfo(modelInfoJSON)
	if err != nil {
		return nil, err
	}

	return &plantInfoService{info: info}, nil
}

func parsePlantInfo(raw []byte) (models.PlantInfo, error) {
	var info models.PlantInfo
	if err := json.Unmarshal(raw, &info); err != nil {
		return models.PlantInfo{}, fmt.Errorf("parse model info: %w", err)
	}
	if len(info.Classes) == 0 {
		return models.PlantInfo{}, ErrEmptyTaxonomy
	}

	return info, nil
}

// PlantInfo returns a copy callers may modify.
func (s *plantInfoService) PlantInfo(_ context.Context) models.PlantInfo {
	info := s.info
	info.Classes = slices.Clone(s.info.Classes)
	info.ClassesPT = slices.Clone(s.info.ClassesPT)
	info.PlantEmojis = maps.Clone(s.info.PlantEmojis)
	info.HealthStatus = maps.Clone(s.info.HealthStatus)
	return info
}
