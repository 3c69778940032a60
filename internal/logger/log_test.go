package logger

import (
	"bytes"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
)

func TestEnable_Levels(t *testing.T) {
	l := Get()
	prevOut, prevLevel := l.Out, l.GetLevel()
	t.Cleanup(func() {
		l.SetOutput(prevOut)
		l.SetLevel(prevLevel)
	})

	tests := []struct {
		level string
		want  logrus.Level
	}{
		{"debug", logrus.DebugLevel},
		{"INFO", logrus.InfoLevel},
		{"warn", logrus.WarnLevel},
		{"error", logrus.ErrorLevel},
		{"bogus", logrus.DebugLevel},
	}
	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			var buf bytes.Buffer
			Enable(&buf, tt.level)
			assert.Equal(t, tt.want, l.GetLevel())
		})
	}
}

func TestEnable_WritesFields(t *testing.T) {
	l := Get()
	prevOut, prevLevel := l.Out, l.GetLevel()
	t.Cleanup(func() {
		l.SetOutput(prevOut)
		l.SetLevel(prevLevel)
	})

	var buf bytes.Buffer
	Enable(&buf, "debug")
	l.WithFields(Fields{"env": "publish"}).Debug("resolved")
	assert.Contains(t, buf.String(), "env=publish")
	assert.Contains(t, buf.String(), "resolved")
}
