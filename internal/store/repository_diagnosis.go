// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-agro-sync/internal/logger"
	"github.com/MKhiriev/go-agro-sync/models"
	"github.com/jackc/pgerrcode"
)

// diagnosisRepository is the PostgreSQL-backed implementation of
// [DiagnosisRepository] over the "diagnoses" table.
type diagnosisRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewDiagnosisRepository constructs a [DiagnosisRepository] backed by db.
func NewDiagnosisRepository(db *DB, logger *logger.Logger) DiagnosisRepository {
	logger.Debug().Msg("creating diagnosis repository")
	return &diagnosisRepository{
		db:     db,
		logger: logger,
	}
}

// SaveDiagnosis inserts d and returns it with the generated id and creation
// time. Transient failures are retried through [DB.withRetry].
//
// Error handling:
//   - PostgreSQL check/not-null violation → [ErrInvalidDiagnosis].
//   - No row returned → [ErrDiagnosisNotSaved].
//   - Any other driver-level error → wrapped as "unexpected DB error".
func (r *diagnosisRepository) SaveDiagnosis(ctx context.Context, d models.Diagnosis) (models.Diagnosis, error) {
	log := logger.FromContext(ctx)

	err := r.db.withRetry(ctx, func() error {
		return r.db.QueryRowContext(ctx, saveDiagnosis,
			d.UserID,
			d.PlantType,
			d.Disease,
			d.Confidence,
			d.Latitude,
			d.Longitude,
			d.Synced,
			nullString(d.ImageHash),
			d.UserLocation,
		).Scan(&d.ID, &d.Timestamp)
	})
	if err != nil {
		log.Err(err).Str("func", "*diagnosisRepository.SaveDiagnosis").Msg("error saving diagnosis")

		if errors.Is(err, sql.ErrNoRows) {
			return models.Diagnosis{}, ErrDiagnosisNotSaved
		}

		switch pgErrorCode(err) {
		case pgerrcode.CheckViolation, pgerrcode.NotNullViolation:
			return models.Diagnosis{}, ErrInvalidDiagnosis
		default:
			return models.Diagnosis{}, fmt.Errorf("unexpected DB error: %w", err)
		}
	}

	return d, nil
}

// ListDiagnoses returns at most limit diagnoses ordered newest first.
func (r *diagnosisRepository) ListDiagnoses(ctx context.Context, limit uint64) ([]models.Diagnosis, error) {
	log := logger.FromContext(ctx)

	query, args, err := listDiagnosesQuery(limit).ToSql()
	if err != nil {
		return nil, fmt.Errorf("error building list query: %w", err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*diagnosisRepository.ListDiagnoses").Msg("error querying diagnoses")
		return nil, fmt.Errorf("unexpected DB error: %w", err)
	}
	defer rows.Close()

	diagnoses := make([]models.Diagnosis, 0, limit)
	for rows.Next() {
		var d models.Diagnosis
		if err := rows.Scan(
			&d.ID,
			&d.UserID,
			&d.PlantType,
			&d.Disease,
			&d.Confidence,
			&d.Latitude,
			&d.Longitude,
			&d.Timestamp,
			&d.Synced,
			&d.ImageHash,
			&d.UserLocation,
		); err != nil {
			log.Err(err).Str("func", "*diagnosisRepository.ListDiagnoses").Msg("error scanning diagnosis")
			return nil, err
		}
		diagnoses = append(diagnoses, d)
	}

	if err := rows.Err(); err != nil {
		log.Err(err).Str("func", "*diagnosisRepository.ListDiagnoses").Msg("error iterating diagnoses")
		return nil, fmt.Errorf("unexpected DB error: %w", err)
	}

	return diagnoses, nil
}

// CountByPlantAndDisease groups all diagnoses by (plant_type, disease).
func (r *diagnosisRepository) CountByPlantAndDisease(ctx context.Context) ([]models.PlantDiseaseCount, error) {
	log := logger.FromContext(ctx)

	query, args, err := countByPlantAndDiseaseQuery().ToSql()
	if err != nil {
		return nil, fmt.Errorf("error building stats query: %w", err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*diagnosisRepository.CountByPlantAndDisease").Msg("error querying stats")
		return nil, fmt.Errorf("unexpected DB error: %w", err)
	}
	defer rows.Close()

	var counts []models.PlantDiseaseCount
	for rows.Next() {
		var c models.PlantDiseaseCount
		if err := rows.Scan(&c.PlantType, &c.Disease, &c.Count, &c.AvgConfidence); err != nil {
			log.Err(err).Str("func", "*diagnosisRepository.CountByPlantAndDisease").Msg("error scanning stats row")
			return nil, err
		}
		counts = append(counts, c)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("unexpected DB error: %w", err)
	}

	return counts, nil
}

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}
