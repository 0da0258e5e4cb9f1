package middleware

import (
	"bytes"
	"testing"

	"github.com/ariebrainware/ward-census/config"
	"github.com/ariebrainware/ward-census/util"
	"github.com/gin-gonic/gin"
	"github.com/go-redis/redismock/v9"
	"github.com/sirupsen/logrus"
)

func setGinTestMode() {
	gin.SetMode(gin.TestMode)
}

// captureAccessLog routes access events to a text-formatted buffer.
func captureAccessLog(t *testing.T) *bytes.Buffer {
	t.Helper()
	buf := &bytes.Buffer{}
	logger := logrus.New()
	logger.SetOutput(buf)
	logger.SetFormatter(&logrus.TextFormatter{DisableColors: true, DisableTimestamp: true})
	prev := util.SetAccessLoggerForTest(logger)
	t.Cleanup(func() { util.SetAccessLoggerForTest(prev) })
	return buf
}

func setupRedisMock(t *testing.T) redismock.ClientMock {
	t.Helper()
	rdb, mock := redismock.NewClientMock()
	config.SetRedisClientForTesting(rdb)
	t.Cleanup(config.ResetRedisClientForTest)
	return mock
}

func withStaffSecret(t *testing.T) {
	t.Helper()
	prev := util.GetJWTSecretByte()
	util.SetJWTSecret("middleware-test-secret")
	t.Cleanup(func() { util.SetJWTSecret(string(prev)) })
}
