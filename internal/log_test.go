package internal

import (
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogger(t *testing.T) {
	logger, hook := test.NewNullLogger()
	logger.SetLevel(logrus.DebugLevel)
	SetLogger(logger)
	defer SetLogger(nil)

	_, ok := Classify(Polyline{{0, 0}, {1, 0}})
	require.False(t, ok)
	entry := hook.LastEntry()
	require.NotNil(t, entry)
	assert.Equal(t, logrus.DebugLevel, entry.Level)
	assert.Equal(t, "no shape match: too short", entry.Message)
	assert.Equal(t, 2, entry.Data["points"])

	assert.Nil(t, Trim(rail, Point{100, 50}, nil))
	assert.Equal(t, "trim is a no-op: too few intersections", hook.LastEntry().Message)

	SetLogger(nil)
	hook.Reset()
	Classify(Polyline{{0, 0}, {1, 0}})
	assert.Empty(t, hook.AllEntries(), "nil restores the silent default")
	assert.NotSame(t, logger, Logger())
}
