// Copyright (c) 2025 Cazou Vilela
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package models

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestUnwrap(t *testing.T) {
	t.Parallel()

	wrapped := map[string]interface{}{
		"data": map[string]interface{}{"jobId": float64(42)},
	}
	require.Equal(t, int64(42), Unwrap(wrapped).Int("jobId"))

	flat := map[string]interface{}{"jobId": float64(7)}
	require.Equal(t, int64(7), Unwrap(flat).Int("jobId"))

	// non-object data field is left alone
	odd := map[string]interface{}{"data": "plain string", "jobId": float64(9)}
	require.Equal(t, int64(9), Unwrap(odd).Int("jobId"))
}

func TestEntityAccessor(t *testing.T) {
	t.Parallel()

	p := SyncPayload{
		"connection": map[string]interface{}{
			"name": "Postgres → BigQuery",
			"url":  "https://cloud.airbyte.com/connections/1",
		},
		"source": map[string]interface{}{"name": "Postgres"},
	}

	conn := p.Entity("connection")
	require.Equal(t, "Postgres → BigQuery", conn.Name)
	require.Equal(t, "https://cloud.airbyte.com/connections/1", conn.URL)

	src := p.Entity("source")
	require.Equal(t, "Postgres", src.Name)
	require.Empty(t, src.URL)

	missing := p.Entity("destination")
	require.Empty(t, missing.Name)
	require.Equal(t, "N/A", missing.DisplayName())
}

func TestScalarRendering(t *testing.T) {
	t.Parallel()

	p := SyncPayload{
		"jobId":     float64(12345),
		"startedAt": "2025-08-29T10:00:00Z",
		"ratio":     1.5,
	}
	require.Equal(t, "12345", p.Scalar("jobId"))
	require.Equal(t, "2025-08-29T10:00:00Z", p.Scalar("startedAt"))
	require.Equal(t, "1.5", p.Scalar("ratio"))
	require.Equal(t, "N/A", p.Scalar("finishedAt"))
	require.Equal(t, "N/A", SyncPayload{"startedAt": ""}.Scalar("startedAt"))
}

func TestSuccessDefaultsTrue(t *testing.T) {
	t.Parallel()

	require.True(t, SyncPayload{}.Success())
	require.True(t, SyncPayload{"success": true}.Success())
	require.False(t, SyncPayload{"success": false}.Success())
}

func TestDuration(t *testing.T) {
	t.Parallel()

	require.Equal(t, "2m 30s", SyncPayload{"durationFormatted": "2m 30s"}.Duration())
	require.Equal(t, "150 segundos", SyncPayload{"durationInSeconds": float64(150)}.Duration())
	require.Equal(t, "N/A", SyncPayload{}.Duration())
}

func TestBytesPrefersFormatted(t *testing.T) {
	t.Parallel()

	p := SyncPayload{
		"bytesEmittedFormatted": "1.2 MB",
		"bytesCommitted":        float64(1048576),
	}
	require.Equal(t, "1.2 MB", p.Bytes("bytesEmittedFormatted", "bytesEmitted"))
	require.Equal(t, "1048576", p.Bytes("bytesCommittedFormatted", "bytesCommitted"))
	require.Equal(t, "N/A", SyncPayload{}.Bytes("bytesEmittedFormatted", "bytesEmitted"))
}

func TestGroupThousands(t *testing.T) {
	t.Parallel()

	require.Equal(t, "0", GroupThousands(0))
	require.Equal(t, "999", GroupThousands(999))
	require.Equal(t, "1,000", GroupThousands(1000))
	require.Equal(t, "1,234,567", GroupThousands(1234567))
	require.Equal(t, "-12,345", GroupThousands(-12345))
}
