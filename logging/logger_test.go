package logging

import (
	"bytes"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
)

func TestLogrus(t *testing.T) {
	cases := map[string]struct {
		classification Classification
		expectLevel    string
	}{
		"warn":    {classification: Warn, expectLevel: "level=warning"},
		"info":    {classification: Info, expectLevel: "level=info"},
		"debug":   {classification: Debug, expectLevel: "level=debug"},
		"unknown": {classification: "TRACE", expectLevel: "level=info"},
	}

	for name, c := range cases {
		t.Run(name, func(t *testing.T) {
			var buf bytes.Buffer
			l := logrus.New()
			l.SetOutput(&buf)
			l.SetLevel(logrus.DebugLevel)
			l.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})

			NewLogrus(l).Logf(c.classification, "selected %d items", 3)

			out := buf.String()
			if !strings.Contains(out, c.expectLevel) {
				t.Errorf("expected %q in %q", c.expectLevel, out)
			}
			if !strings.Contains(out, "selected 3 items") {
				t.Errorf("expected message in %q", out)
			}
		})
	}
}

func TestLogrusEntry(t *testing.T) {
	var buf bytes.Buffer
	l := logrus.New()
	l.SetOutput(&buf)
	l.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})

	NewLogrus(l.WithField("feed", "news.yaml")).Logf(Warn, "skipped")

	if !strings.Contains(buf.String(), "feed=news.yaml") {
		t.Errorf("expected entry fields in %q", buf.String())
	}
}

func TestNoop(t *testing.T) {
	var l Logger = Noop{}
	l.Logf(Warn, "nothing %s", "happens")
}
