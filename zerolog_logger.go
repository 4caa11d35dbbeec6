package direct

import "github.com/rs/zerolog"

// ZerologLogger adapts a [zerolog.Logger] to the [RequestLogger] interface.
// Supply it via [WithRequestLogger]:
//
//	c, err := direct.New(customerID, token, direct.V1,
//	    direct.WithRequestLogger(direct.NewZerologLogger(log.Logger)),
//	)
type ZerologLogger struct {
	log zerolog.Logger
}

func NewZerologLogger(log zerolog.Logger) *ZerologLogger {
	return &ZerologLogger{log: log}
}

func (l *ZerologLogger) Errorf(format string, v ...any) { l.log.Error().Msgf(format, v...) }
func (l *ZerologLogger) Warnf(format string, v ...any)  { l.log.Warn().Msgf(format, v...) }
func (l *ZerologLogger) Debugf(format string, v ...any) { l.log.Debug().Msgf(format, v...) }
