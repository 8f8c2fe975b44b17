package callreg_test

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/srg/btmock/callreg"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCollector(t *testing.T) {
	reg := callreg.New()
	reg.Record("BTM_AllocateSCN")
	reg.Record("BTM_AllocateSCN")
	reg.Record("BTM_FreeSCN")

	promReg := prometheus.NewPedanticRegistry()
	require.NoError(t, promReg.Register(callreg.NewCollector(reg)))

	families, err := promReg.Gather()
	require.NoError(t, err)
	require.Len(t, families, 1)
	assert.Equal(t, "btmock_stub_calls_total", families[0].GetName())

	got := map[string]float64{}
	for _, m := range families[0].GetMetric() {
		require.Len(t, m.GetLabel(), 1)
		assert.Equal(t, "function", m.GetLabel()[0].GetName())
		got[m.GetLabel()[0].GetValue()] = m.GetCounter().GetValue()
	}
	assert.Equal(t, map[string]float64{"BTM_AllocateSCN": 2, "BTM_FreeSCN": 1}, got)

	reg.ResetAll()
	families, err = promReg.Gather()
	require.NoError(t, err)
	assert.Empty(t, families, "no series after reset")
}
