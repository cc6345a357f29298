package api

import (
	"time"

	"github.com/sirupsen/logrus"

	"github.com/liora-app/liora/internal/logging"
)

// Handler carries the dependencies shared by all HTTP handlers. The clock is
// a field so tests can pin "today".
type Handler struct {
	log *logrus.Logger
	now func() time.Time
}

func NewHandler(log *logrus.Logger) *Handler {
	if log == nil {
		log = logging.Log
	}
	return &Handler{
		log: log,
		now: time.Now,
	}
}
