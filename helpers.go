package main

import (
	log "github.com/sirupsen/logrus"

	"gitlab.com/dagmap/dagmap/internal/errortracking"
)

func capturingFatal(err error, msg string) {
	errortracking.CaptureErrWithStackTrace(err)
	log.WithError(err).Fatal(msg)
}
