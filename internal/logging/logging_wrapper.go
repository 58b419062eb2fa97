package logging

import (
	"net/http"

	"github.com/sirupsen/logrus"
)

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

// LoggingWrapper logs the start and completion of every request served by handler
// and attaches a fresh LogData to the request context for handlers to enrich.
func LoggingWrapper(loggingName string, log *logrus.Logger, handler http.Handler) http.HandlerFunc {
	return func(w http.ResponseWriter, req *http.Request) {
		log.Debugf("Handler.%v.Start", loggingName)

		logData := NewLogData(log)
		logData.AddData("method", req.Method)
		logData.AddData("path", req.URL.Path)

		recorder := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		endTimer := logData.AddTiming("duration")
		handler.ServeHTTP(recorder, req.WithContext(WithLogData(req.Context(), logData)))
		endTimer()

		logData.AddData("status", recorder.status)
		if recorder.status >= http.StatusInternalServerError {
			logData.Log().Errorf("Handler.%v.Error", loggingName)
			return
		}

		logData.Log().Infof("Handler.%v.Complete", loggingName)
	}
}
