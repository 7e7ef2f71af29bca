// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"github.com/MKhiriev/go-agro-sync/internal/adapter"
	"github.com/MKhiriev/go-agro-sync/internal/logger"
	"github.com/MKhiriev/go-agro-sync/internal/store"
)

type ClientServices struct {
	RecordStore          ClientRecordStore
	Reconciler           ClientReconciler
	SubmissionService    ClientSubmissionService
	ReferenceDataService ClientReferenceDataService
}

func NewClientServices(localStore *store.ClientStorages, serverAdapter adapter.ServerAdapter, state ConnectivityState, broadcaster Broadcaster, logger *logger.Logger) *ClientServices {
	records := NewClientRecordStore(localStore.KVRepository, nil, logger)

	return &ClientServices{
		RecordStore:          records,
		Reconciler:           NewClientReconciler(records, serverAdapter, state, broadcaster, logger),
		SubmissionService:    NewClientSubmissionService(records, serverAdapter, state, logger),
		ReferenceDataService: NewClientReferenceDataService(localStore.KVRepository, serverAdapter, state, logger),
	}
}
