// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	sq "github.com/Masterminds/squirrel"
)

const (
	saveDiagnosis = `INSERT INTO diagnoses (user_id, plant_type, disease, confidence, latitude, longitude, synced, image_hash, user_location)
    VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
    RETURNING id, created_at;`

	diagnosesTable = "diagnoses"
)

var diagnosisColumns = []string{
	"id", "user_id", "plant_type", "disease", "confidence", "latitude", "longitude",
	"created_at", "synced", "COALESCE(image_hash, '')", "user_location",
}

// psql builds PostgreSQL statements with $N placeholders.
var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

func listDiagnosesQuery(limit uint64) sq.SelectBuilder {
	return psql.Select(diagnosisColumns...).
		From(diagnosesTable).
		OrderBy("created_at DESC", "id DESC").
		Limit(limit)
}

func countByPlantAndDiseaseQuery() sq.SelectBuilder {
	return psql.Select("plant_type", "disease", "COUNT(*) AS count", "AVG(confidence) AS avg_confidence").
		From(diagnosesTable).
		GroupBy("plant_type", "disease").
		OrderBy("count DESC", "plant_type", "disease")
}
