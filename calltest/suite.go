package calltest

import (
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/srg/btmock/callreg"
	"github.com/srg/btmock/pkg/config"
	"github.com/stretchr/testify/suite"
)

// RegistrySuite is a testify suite base that isolates stub call counts per test.
//
// SetupTest resets the registry, so every test starts from zero. When a test
// fails, TearDownTest logs a table of the calls recorded during it.
//
// Basic usage:
//
//	type AvSuite struct {
//	    calltest.RegistrySuite
//	    stub *av.Stub
//	}
//
//	func (s *AvSuite) SetupTest() {
//	    s.stub = &av.Stub{}
//	    s.RegistrySuite.SetupTest() // Call parent last to apply configuration
//	}
//
//	func (s *AvSuite) TestEnable() {
//	    s.stub.Enable(0, nil)
//	    s.AssertCalledTimes(av.FnEnable, 1)
//	}
//
// Registry defaults to callreg.Default. Set it before SetupTest runs to use a
// private registry instead. Config.ReportFormat selects the failure report
// format; Logger receives setup diagnostics and the report.
type RegistrySuite struct {
	suite.Suite

	Registry *callreg.Registry
	Config   *config.Config
	Logger   *logrus.Logger
}

// SetupTest resets the registry
func (s *RegistrySuite) SetupTest() {
	if s.Registry == nil {
		s.Registry = callreg.Default()
	}
	if s.Config == nil {
		s.Config = config.DefaultConfig()
	}
	if s.Logger == nil {
		s.Logger = logrus.New()
		s.Logger.SetLevel(logrus.DebugLevel) // enable debug logs to track execution flow
	}
	s.Registry.ResetAll()
	s.Logger.WithField("test", s.T().Name()).Debug("Call registry reset for test")
}

// TearDownTest logs recorded calls for failed tests
func (s *RegistrySuite) TearDownTest() {
	if !s.T().Failed() || s.Registry == nil || s.Config == nil || s.Logger == nil {
		return
	}
	report, err := s.FailureReport()
	if err != nil {
		s.Logger.WithError(err).Error("Failed to render stub call report")
		return
	}
	s.Logger.WithFields(logrus.Fields{
		"test":   s.T().Name(),
		"format": s.Config.ReportFormat,
	}).Errorf("Stub calls recorded during failed test:\n%s", report)
}

// FailureReport renders the current counts in Config.ReportFormat.
func (s *RegistrySuite) FailureReport() (string, error) {
	cfg := s.Config
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	var b strings.Builder
	if err := callreg.WriteReport(&b, s.Registry.Snapshot(), cfg.ReportFormat); err != nil {
		return "", err
	}
	return b.String(), nil
}

// AssertCalled asserts name was recorded at least once
func (s *RegistrySuite) AssertCalled(name string) bool {
	s.T().Helper()
	return AssertCalled(s.T(), s.Registry, name)
}

// AssertCalledTimes asserts name was recorded exactly n times
func (s *RegistrySuite) AssertCalledTimes(name string, n uint64) bool {
	s.T().Helper()
	return AssertCalledTimes(s.T(), s.Registry, name, n)
}

// AssertNotCalled asserts name was not recorded
func (s *RegistrySuite) AssertNotCalled(name string) bool {
	s.T().Helper()
	return AssertNotCalled(s.T(), s.Registry, name)
}

// AssertOnlyCalled asserts nothing outside allowed was recorded
func (s *RegistrySuite) AssertOnlyCalled(allowed ...string) bool {
	s.T().Helper()
	return AssertOnlyCalled(s.T(), s.Registry, allowed...)
}

// AssertCallOrder asserts names were journaled in order
func (s *RegistrySuite) AssertCallOrder(names ...string) bool {
	s.T().Helper()
	return AssertCallOrder(s.T(), s.Registry, names...)
}
