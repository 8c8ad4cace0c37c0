package middleware

import (
	"time"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// Logging creates a middleware that logs every handled update
func Logging(logger *zap.Logger) tele.MiddlewareFunc {
	return func(next tele.HandlerFunc) tele.HandlerFunc {
		return func(c tele.Context) error {
			start := time.Now()
			err := next(c)

			fields := []zap.Field{
				zap.Int64("user_id", c.Sender().ID),
				zap.Duration("took", time.Since(start)),
			}
			if err != nil {
				fields = append(fields, zap.Error(err))
				logger.Error("Update failed", fields...)
				return err
			}

			logger.Info("Update handled", fields...)
			return nil
		}
	}
}
