// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-agro-sync/internal/adapter"
	"github.com/MKhiriev/go-agro-sync/internal/logger"
	"github.com/MKhiriev/go-agro-sync/internal/store"
	"github.com/MKhiriev/go-agro-sync/models"
)

// PlantInfoKey holds the reference-data snapshot.
const PlantInfoKey = "plantInfo"

var ErrNoReferenceData = errors.New("no reference data available offline")

type clientReferenceDataService struct {
	kv      store.LocalKVRepository
	adapter adapter.ServerAdapter
	state   ConnectivityState

	logger *logger.Logger
}

func NewClientReferenceDataService(kv store.LocalKVRepository, serverAdapter adapter.ServerAdapter, state ConnectivityState, logger *logger.Logger) ClientReferenceDataService {
	return &clientReferenceDataService{
		kv:      kv,
		adapter: serverAdapter,
		state:   state,
		logger:  logger,
	}
}

func (s *clientReferenceDataService) Load(ctx context.Context) (models.PlantInfo, error) {
	if s.state.IsOnline() {
		info, err := s.adapter.PlantInfo(ctx)
		if err == nil {
			s.save(ctx, info)
			return info, nil
		}
		s.logger.Warn().Err(err).Str("func", "*clientReferenceDataService.Load").Msg("fetching plant info failed, using snapshot")
	}

	return s.snapshot(ctx)
}

func (s *clientReferenceDataService) Clear(ctx context.Context) error {
	return s.kv.Delete(ctx, PlantInfoKey)
}

func (s *clientReferenceDataService) save(ctx context.Context, info models.PlantInfo) {
	raw, err := json.Marshal(info)
	if err == nil {
		err = s.kv.Put(ctx, PlantInfoKey, raw)
	}
	if err != nil {
		s.logger.Err(err).Str("func", "*clientReferenceDataService.save").Msg("plant info snapshot not persisted")
	}
}

func (s *clientReferenceDataService) snapshot(ctx context.Context) (models.PlantInfo, error) {
	raw, err := s.kv.Get(ctx, PlantInfoKey)
	if errors.Is(err, store.ErrKeyNotFound) {
		return models.PlantInfo{}, ErrNoReferenceData
	}
	if err != nil {
		return models.PlantInfo{}, fmt.Errorf("read plant info snapshot: %w", err)
	}

	var info models.PlantInfo
	if err = json.Unmarshal(raw, &info); err != nil {
		return models.PlantInfo{}, fmt.Errorf("decode plant info snapshot: %w", err)
	}
	return info, nil
}
