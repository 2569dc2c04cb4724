package provider

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/rxtech-lab/argo-analysis/pkg/errors"
)

type ProviderTestSuite struct {
	suite.Suite
}

func TestProviderSuite(t *testing.T) {
	suite.Run(t, new(ProviderTestSuite))
}

func (suite *ProviderTestSuite) TestNewProviderYahoo() {
	p, err := NewProvider(ProviderYahoo, Config{})
	suite.Require().NoError(err)
	suite.Equal("yahoo", p.Name())
}

func (suite *ProviderTestSuite) TestNewProviderBinance() {
	p, err := NewProvider(ProviderBinance, Config{})
	suite.Require().NoError(err)
	suite.Equal("binance", p.Name())
}

func (suite *ProviderTestSuite) TestNewProviderPolygonRequiresKey() {
	_, err := NewProvider(ProviderPolygon, Config{})
	suite.Error(err)
	suite.Equal(errors.ErrCodeInvalidConfiguration, errors.GetCode(err))

	p, err := NewProvider(ProviderPolygon, Config{PolygonAPIKey: "test-key"})
	suite.Require().NoError(err)
	suite.Equal("polygon", p.Name())
}

func (suite *ProviderTestSuite) TestNewProviderUnknown() {
	_, err := NewProvider(ProviderType("alpaca"), Config{})
	suite.Error(err)
	suite.Equal(errors.ErrCodeInvalidProvider, errors.GetCode(err))
}
