package calltest

import (
	"fmt"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/srg/btmock/callreg"
	"github.com/srg/btmock/pkg/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

// recordingT captures assertion failures instead of failing the test.
type recordingT struct {
	errors []string
}

func (r *recordingT) Errorf(format string, args ...interface{}) {
	r.errors = append(r.errors, fmt.Sprintf(format, args...))
}

func newRegistry(calls ...string) *callreg.Registry {
	reg := callreg.New(callreg.WithJournal(16))
	for _, name := range calls {
		reg.Record(name)
	}
	return reg
}

func TestAssertCalled(t *testing.T) {
	reg := newRegistry("BTA_AvEnable")

	rt := &recordingT{}
	assert.True(t, AssertCalled(rt, reg, "BTA_AvEnable"))
	assert.False(t, AssertCalled(rt, reg, "BTA_AvDisable"))

	require.Len(t, rt.errors, 1)
	assert.Contains(t, rt.errors[0], "expected BTA_AvDisable to be called")
	assert.Contains(t, rt.errors[0], "BTA_AvEnable=1")
}

func TestAssertCalledTimes(t *testing.T) {
	reg := newRegistry("AVCT_MsgReq", "AVCT_MsgReq")

	rt := &recordingT{}
	assert.True(t, AssertCalledTimes(rt, reg, "AVCT_MsgReq", 2))
	assert.True(t, AssertCalledTimes(rt, reg, "AVCT_Register", 0))
	assert.False(t, AssertCalledTimes(rt, reg, "AVCT_MsgReq", 3))

	require.Len(t, rt.errors, 1)
	assert.Contains(t, rt.errors[0], "called 3 time(s), got 2")
}

func TestAssertNotCalled(t *testing.T) {
	reg := newRegistry("BTM_FreeSCN")

	rt := &recordingT{}
	assert.True(t, AssertNotCalled(rt, reg, "BTM_AllocateSCN"))
	assert.False(t, AssertNotCalled(rt, reg, "BTM_FreeSCN"))
	require.Len(t, rt.errors, 1)
}

func TestAssertOnlyCalled(t *testing.T) {
	reg := newRegistry("AVRC_Init", "AVRC_AddRecord", "BTA_SdpEnable")

	rt := &recordingT{}
	assert.True(t, AssertOnlyCalled(rt, reg, "AVRC_Init", "AVRC_AddRecord", "BTA_SdpEnable", "AVRC_RemoveRecord"))
	assert.False(t, AssertOnlyCalled(rt, reg, "AVRC_Init", "AVRC_AddRecord"))

	require.Len(t, rt.errors, 1)
	assert.Equal(t, "unexpected stub calls: BTA_SdpEnable=1", rt.errors[0])
}

func TestAssertCallOrder(t *testing.T) {
	reg := newRegistry("AVCT_Register", "AVCT_GetPeerMtu", "AVCT_CreateConn", "AVCT_MsgReq", "AVCT_Deregister")

	tests := []struct {
		name  string
		order []string
		ok    bool
	}{
		{name: "exact subsequence", order: []string{"AVCT_Register", "AVCT_CreateConn", "AVCT_Deregister"}, ok: true},
		{name: "empty order", order: nil, ok: true},
		{name: "reversed", order: []string{"AVCT_Deregister", "AVCT_Register"}, ok: false},
		{name: "never called", order: []string{"AVCT_Register", "AVCT_RemoveConn"}, ok: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rt := &recordingT{}
			assert.Equal(t, tt.ok, AssertCallOrder(rt, reg, tt.order...))
			assert.Equal(t, !tt.ok, len(rt.errors) == 1)
		})
	}

	t.Run("disabled journal", func(t *testing.T) {
		rt := &recordingT{}
		plain := callreg.New()
		plain.Record("AVCT_Register")

		assert.False(t, AssertCallOrder(rt, plain, "AVCT_Register"))
		require.Len(t, rt.errors, 1)
		assert.Contains(t, rt.errors[0], "journal is empty")
	})
}

func TestAssertNilRegistryUsesDefault(t *testing.T) {
	callreg.ResetAll()
	t.Cleanup(callreg.ResetAll)

	callreg.Record("btm_ble_adv_init")

	rt := &recordingT{}
	assert.True(t, AssertCalledTimes(rt, nil, "btm_ble_adv_init", 1))
	assert.True(t, AssertOnlyCalled(rt, nil, "btm_ble_adv_init"))
	assert.Empty(t, rt.errors)
}

// RegistrySuiteTestSuite exercises RegistrySuite through a real suite run.
type RegistrySuiteTestSuite struct {
	RegistrySuite

	hook *test.Hook
}

func (s *RegistrySuiteTestSuite) SetupTest() {
	s.Registry = callreg.New(callreg.WithJournal(8))
	s.Config = config.DefaultConfig()
	s.Config.ReportFormat = "json"
	s.Logger, s.hook = test.NewNullLogger()
	s.Logger.SetLevel(logrus.DebugLevel)
	s.RegistrySuite.SetupTest()
}

func (s *RegistrySuiteTestSuite) TestSetupLogsThroughSuiteLogger() {
	entry := s.hook.LastEntry()
	s.Require().NotNil(entry)
	s.Equal(logrus.DebugLevel, entry.Level)
	s.Equal(s.T().Name(), entry.Data["test"])
}

func (s *RegistrySuiteTestSuite) TestFailureReportUsesConfiguredFormat() {
	s.Registry.Record("BTA_AvOpen")
	s.Registry.Record("BTA_AvOpen")

	report, err := s.FailureReport()
	s.Require().NoError(err)
	s.JSONEq(`{"BTA_AvOpen": 2}`, report)

	s.Config.ReportFormat = "table"
	report, err = s.FailureReport()
	s.Require().NoError(err)
	s.Contains(report, "BTA_AvOpen  2")

	s.Config.ReportFormat = "xml"
	_, err = s.FailureReport()
	s.ErrorIs(err, callreg.ErrUnsupportedFormat)
}

func (s *RegistrySuiteTestSuite) TestStartsEmpty() {
	s.Equal(0, s.Registry.Len())
	s.Registry.Record("BTA_AvOpen")
	s.Registry.Record("BTA_AvStart")
	s.AssertCalled("BTA_AvOpen")
	s.AssertCalledTimes("BTA_AvStart", 1)
	s.AssertNotCalled("BTA_AvStop")
	s.AssertOnlyCalled("BTA_AvOpen", "BTA_AvStart")
	s.AssertCallOrder("BTA_AvOpen", "BTA_AvStart")
}

func (s *RegistrySuiteTestSuite) TestResetBetweenTests() {
	// Runs in either order with TestStartsEmpty; both see a clean registry.
	s.Equal(0, s.Registry.Len())
	s.Empty(s.Registry.Journal())
	s.NotNil(s.Logger)
}

func TestRegistrySuite(t *testing.T) {
	suite.Run(t, new(RegistrySuiteTestSuite))
}

func TestCallConcurrently(t *testing.T) {
	reg := callreg.New()

	CallConcurrently(4, func(w int) {
		reg.Record(fmt.Sprintf("BTA_AvStart%d", w))
	})
	assert.Equal(t, 4, reg.Len())

	assert.NotPanics(t, func() {
		CallConcurrently(-1, func(int) { reg.Record("BTA_AvStop") })
	})
	assert.Zero(t, reg.Count("BTA_AvStop"))
}
