// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

const (
	getKV = `SELECT value FROM kv WHERE key = ?;`

	putKV = `INSERT INTO kv (key, value, updated_at) VALUES (?, ?, CURRENT_TIMESTAMP)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at;`

	deleteKV = `DELETE FROM kv WHERE key = ?;`

	createPartition = `INSERT OR IGNORE INTO cache_partitions (name) VALUES (?);`

	listPartitions = `SELECT name FROM cache_partitions ORDER BY rowid;`

	deletePartitionEntries = `DELETE FROM cache_entries WHERE partition = ?;`

	deletePartition = `DELETE FROM cache_partitions WHERE name = ?;`

	// putCacheEntry writes nothing when the partition does not exist
	putCacheEntry = `INSERT INTO cache_entries (partition, key, status, header, body, stored_at)
		SELECT ?, ?, ?, ?, ?, ?
		WHERE EXISTS (SELECT 1 FROM cache_partitions WHERE name = ?)
		ON CONFLICT(partition, key) DO UPDATE SET
			status = excluded.status,
			header = excluded.header,
			body = excluded.body,
			stored_at = excluded.stored_at;`

	matchCacheEntry = `SELECT key, status, header, body, stored_at
		FROM cache_entries
		WHERE partition = ? AND key = ?;`

	matchAnyCacheEntry = `SELECT e.key, e.status, e.header, e.body, e.stored_at
		FROM cache_entries e
		JOIN cache_partitions p ON p.name = e.partition
		WHERE e.key = ?
		ORDER BY p.rowid
		LIMIT 1;`

	listCacheKeys = `SELECT key FROM cache_entries WHERE partition = ? ORDER BY stored_at, key;`
)
