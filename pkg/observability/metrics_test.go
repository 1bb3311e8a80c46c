package observability_test

import (
	"context"
	"testing"

	"github.com/aretw0/samuel"
	"github.com/aretw0/samuel/pkg/domain"
	"github.com/aretw0/samuel/pkg/observability"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetrics_RecordsStage(t *testing.T) {
	reg := prometheus.NewRegistry()
	m, err := observability.NewMetrics(reg)
	require.NoError(t, err)

	displayed, err := domain.ParseSequence("b- y- b- y.")
	require.NoError(t, err)

	p := samuel.NewFromSnapshot(domain.Snapshot{BatteryCount: 5, ModuleCount: 6}, samuel.WithHooks(m.Hooks()))
	_, err = p.AdvanceWith(context.Background(), displayed)
	require.NoError(t, err)

	// Blue 2, Yellow 1, Blue 1 (fallback), Yellow 5 (fallback).
	assert.Equal(t, 4, testutil.CollectAndCount(reg, "samuel_rules_applied_total"))
	assert.Equal(t, 2, testutil.CollectAndCount(reg, "samuel_rules_skipped_total"))

	assert.Equal(t, 1, testutil.CollectAndCount(reg, "samuel_stages_solved_total"))
}

func TestMetrics_DoubleRegistrationFails(t *testing.T) {
	reg := prometheus.NewRegistry()
	_, err := observability.NewMetrics(reg)
	require.NoError(t, err)

	_, err = observability.NewMetrics(reg)
	assert.Error(t, err)
}
