package journal

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
)

// Journal is the append-only milestone log. Each pipeline milestone
// becomes one "YYYY-MM-DD HH:MM:SS : message" line.
type Journal struct {
	logger *logrus.Logger
	file   *os.File
}

type lineFormatter struct{}

func (lineFormatter) Format(entry *logrus.Entry) ([]byte, error) {
	return []byte(entry.Time.Format("2006-01-02 15:04:05") + " : " + entry.Message + "\n"), nil
}

func Open(path string) (*Journal, error) {
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, fmt.Errorf("failed to open log file %s: %v", path, err)
	}

	logger := logrus.New()
	logger.SetLevel(logrus.InfoLevel)
	logger.SetFormatter(lineFormatter{})
	logger.SetOutput(f)

	return &Journal{
		logger: logger,
		file:   f,
	}, nil
}

func (j *Journal) Log(message string) {
	j.logger.Info(message)
}

func (j *Journal) Logf(format string, args ...any) {
	j.logger.Infof(format, args...)
}

func (j *Journal) Close() error {
	return j.file.Close()
}
