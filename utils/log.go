package utils

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	rotatelogs "github.com/lestrrat-go/file-rotatelogs"
	"github.com/sirupsen/logrus"
	"github.com/topfreegames/pitaya/v3/pkg/logger/interfaces"
	logruswrapper "github.com/topfreegames/pitaya/v3/pkg/logger/logrus"
)

const (
	logMaxAge   = 7 * 24 * time.Hour
	logRotation = 24 * time.Hour
)

// Formatter 单行日志格式: 时间 [级别] 文件:行 函数 消息
type Formatter struct{}

func (f *Formatter) Format(entry *logrus.Entry) ([]byte, error) {
	timestamp := entry.Time.Format(time.DateTime)
	level := strings.ToLower(entry.Level.String())

	fileName, funcName := "?", "?"
	line := 0
	if entry.Caller != nil {
		fileName = filepath.Base(entry.Caller.File)
		line = entry.Caller.Line
		parts := strings.Split(entry.Caller.Function, ".")
		funcName = parts[len(parts)-1]
	}

	msg := fmt.Sprintf("%s [%s] %s:%d %s %s\n", timestamp, level, fileName, line, funcName, entry.Message)
	return []byte(msg), nil
}

// Logger 创建按天轮转的文件日志器，logDir为空时使用./logs
func Logger(level logrus.Level, logDir string) interfaces.Logger {
	l := logrus.New()
	if writer, err := newWriter(logDir); err != nil {
		logrus.Fatalf("Failed to create log writer: %v", err)
	} else {
		l.SetOutput(writer)
	}
	l.SetReportCaller(true)
	l.Formatter = &Formatter{}
	l.SetLevel(level)
	return logruswrapper.NewWithFieldLogger(l)
}

func newWriter(logDir string) (*SafeRotateLogs, error) {
	if logDir == "" {
		logDir = "./logs"
	}
	programName := filepath.Base(os.Args[0])
	logFile := filepath.Join(logDir, fmt.Sprintf("%s-%%Y%%m%%d.log", programName))
	if err := os.MkdirAll(logDir, os.ModePerm); err != nil {
		logrus.Fatalf("Failed to create log directory: %v", err)
	}

	writer, err := rotatelogs.New(
		logFile,
		rotatelogs.WithMaxAge(logMaxAge),
		rotatelogs.WithRotationTime(logRotation),
	)
	if err != nil {
		return nil, err
	}
	return &SafeRotateLogs{
		RotateLogs: writer,
		logPattern: logFile,
	}, nil
}

// SafeRotateLogs 包装轮转写入器，日志文件被外部删除时自动重建
type SafeRotateLogs struct {
	*rotatelogs.RotateLogs
	logPattern string
}

func (s *SafeRotateLogs) Write(p []byte) (n int, err error) {
	currentLogFile := s.RotateLogs.CurrentFileName()
	if _, err := os.Stat(currentLogFile); os.IsNotExist(err) {
		writer, err := rotatelogs.New(
			s.logPattern,
			rotatelogs.WithMaxAge(logMaxAge),
			rotatelogs.WithRotationTime(logRotation),
		)
		if err != nil {
			return 0, fmt.Errorf("failed to recreate log writer: %v", err)
		}
		s.RotateLogs = writer
	}
	return s.RotateLogs.Write(p)
}
