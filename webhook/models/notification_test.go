// Copyright (c) 2025 Cazou Vilela
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package models

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestClassifyAction(t *testing.T) {
	t.Parallel()

	require.Equal(t, ActionMeta{Emoji: "🔴", Label: "FALHA"}, ClassifyAction("failed"))
	require.Equal(t, ActionMeta{Emoji: "🛒", Label: "PEDIDO"}, ClassifyAction("pedido"))
	require.Equal(t, ActionMeta{Emoji: "📢", Label: "DEPLOY"}, ClassifyAction("deploy"))
}

func TestHeaderColor(t *testing.T) {
	t.Parallel()

	require.Equal(t, "#FF4444", HeaderColor("failed"))
	require.Equal(t, "#DC3545", HeaderColor("erro"))
	require.Equal(t, "#667eea", HeaderColor("deploy"))
	require.Equal(t, "#667eea", HeaderColor(""))
}

func TestExtractConnectionName(t *testing.T) {
	t.Parallel()

	require.Equal(t, "Postgres Sync", ExtractConnectionName(map[string]interface{}{
		"connection": map[string]interface{}{"name": "Postgres Sync"},
	}))
	require.Equal(t, "conn-42", ExtractConnectionName(map[string]interface{}{
		"connection": "conn-42",
	}))
	require.Equal(t, "", ExtractConnectionName(map[string]interface{}{}))
	require.Equal(t, "", ExtractConnectionName(map[string]interface{}{
		"connection": map[string]interface{}{"id": float64(1)},
	}))
}
