package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vilunov/goposit/internal/config"
)

func TestRunCheckPasses(t *testing.T) {
	cfg := config.DefaultConfig()
	assert.NoError(t, runCheck(cfg))
}

func TestRunMinimizePasses(t *testing.T) {
	cfg := config.DefaultConfig()
	assert.NoError(t, runMinimize(cfg))
}

func TestScenariosMatchSpecTable(t *testing.T) {
	assert.Len(t, scenarios, 6)
	for _, s := range scenarios {
		assert.NotEmpty(t, s.left)
		assert.NotEmpty(t, s.right)
		assert.NotEmpty(t, s.expect)
	}
}
