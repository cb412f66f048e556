// Package logger configura o logrus e cria loggers por módulo
package logger

import (
	"fmt"
	"io"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// RequestIDKey é a chave do request id no contexto do gin
const RequestIDKey = "request_id"

// Setup define nível e formato do logger global.
// Em produção usa JSON; nos demais ambientes, texto com timestamp.
func Setup(level string, production bool) error {
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		return fmt.Errorf("nível de log inválido %q: %w", level, err)
	}

	logrus.SetLevel(lvl)
	logrus.SetOutput(os.Stdout)
	if production {
		logrus.SetFormatter(&logrus.JSONFormatter{})
	} else {
		logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}
	return nil
}

// SetOutput redireciona o logger global (útil em testes e na CLI)
func SetOutput(w io.Writer) {
	logrus.SetOutput(w)
}

// NewModuleLogger retorna um logger com o campo module preenchido
func NewModuleLogger(module string) logrus.FieldLogger {
	return logrus.WithField("module", module)
}

// LoggerWithContext adiciona o request id da requisição, quando houver
func LoggerWithContext(l logrus.FieldLogger, c *gin.Context) logrus.FieldLogger {
	if c == nil {
		return l
	}
	if id := c.GetString(RequestIDKey); id != "" {
		return l.WithField(RequestIDKey, id)
	}
	if c.Request != nil {
		if id := c.GetHeader("X-Request-ID"); id != "" {
			return l.WithField(RequestIDKey, id)
		}
	}
	return l
}
