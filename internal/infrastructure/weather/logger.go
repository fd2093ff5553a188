package weather

import "github.com/rs/zerolog"

// leveledLogger adapta zerolog a retryablehttp.LeveledLogger.
type leveledLogger struct {
	zl zerolog.Logger
}

func (l leveledLogger) Error(msg string, kv ...interface{}) { l.zl.Error().Fields(kv).Msg(msg) }
func (l leveledLogger) Info(msg string, kv ...interface{})  { l.zl.Info().Fields(kv).Msg(msg) }
func (l leveledLogger) Debug(msg string, kv ...interface{}) { l.zl.Debug().Fields(kv).Msg(msg) }
func (l leveledLogger) Warn(msg string, kv ...interface{})  { l.zl.Warn().Fields(kv).Msg(msg) }
