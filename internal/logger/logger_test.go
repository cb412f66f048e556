package logger

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

func TestSetup(t *testing.T) {
	t.Cleanup(func() {
		logrus.SetLevel(logrus.InfoLevel)
		logrus.SetFormatter(&logrus.TextFormatter{})
	})

	if err := Setup("debug", false); err != nil {
		t.Fatalf("Setup() error = %v", err)
	}
	if logrus.GetLevel() != logrus.DebugLevel {
		t.Errorf("level = %v, want debug", logrus.GetLevel())
	}

	if err := Setup("verboso", false); err == nil {
		t.Error("Setup() deveria rejeitar nível inválido")
	}
}

func TestNewModuleLogger_JSON(t *testing.T) {
	var buf bytes.Buffer
	t.Cleanup(func() {
		SetOutput(os.Stderr)
		logrus.SetFormatter(&logrus.TextFormatter{})
	})

	if err := Setup("info", true); err != nil {
		t.Fatalf("Setup() error = %v", err)
	}
	SetOutput(&buf)

	NewModuleLogger("pagseguro-webhook").WithField("txid", "tx1").Info("pix recebido")

	var entry map[string]interface{}
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("saída não é JSON: %v (%s)", err, buf.String())
	}
	if entry["module"] != "pagseguro-webhook" || entry["txid"] != "tx1" {
		t.Errorf("entry = %v", entry)
	}
}

func TestLoggerWithContextAddsRequestID(t *testing.T) {
	gin.SetMode(gin.TestMode)
	var buf bytes.Buffer
	t.Cleanup(func() { SetOutput(os.Stderr) })
	SetOutput(&buf)

	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest("GET", "/health", nil)
	c.Request.Header.Set("X-Request-ID", "req-123")

	LoggerWithContext(NewModuleLogger("handlers"), c).Info("ok")
	if !strings.Contains(buf.String(), "req-123") {
		t.Errorf("log sem request id: %s", buf.String())
	}

	if LoggerWithContext(NewModuleLogger("handlers"), nil) == nil {
		t.Error("LoggerWithContext(nil) retornou nil")
	}
}
