package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"fifi-core/config"
	"fifi-core/numeric"
)

func TestDefaults(t *testing.T) {
	var c config.Config
	assert.Equal(t, numeric.DefaultFloatPrec, c.Precision())
	assert.Equal(t, 10, c.OutputRadix())
	assert.False(t, c.Infinity())
	assert.False(t, c.GraphicsEnabled())
}

func TestOverridesAndApply(t *testing.T) {
	var c config.Config
	c.SetPrecision(128)
	c.SetOutputRadix(16)
	c.SetInfinity(true)
	c.SetGraphicsEnabled(true)

	assert.Equal(t, uint(128), c.Precision())
	assert.Equal(t, 16, c.OutputRadix())
	assert.True(t, c.Infinity())
	assert.True(t, c.GraphicsEnabled())

	defer func() { numeric.FloatPrec = numeric.DefaultFloatPrec }()
	c.Apply()
	assert.Equal(t, uint(128), numeric.FloatPrec)
}
