package zerolog

import (
	"github.com/rendercache/rendercache"
	"github.com/rs/zerolog"
)

var _ rendercache.Logger = Logger{}

type Logger struct{ L zerolog.Logger }

func (z Logger) Debug(msg string, f rendercache.Fields) { z.L.Debug().Fields(fields(f)).Msg(msg) }
func (z Logger) Info(msg string, f rendercache.Fields)  { z.L.Info().Fields(fields(f)).Msg(msg) }
func (z Logger) Warn(msg string, f rendercache.Fields)  { z.L.Warn().Fields(fields(f)).Msg(msg) }
func (z Logger) Error(msg string, f rendercache.Fields) { z.L.Error().Fields(fields(f)).Msg(msg) }

func fields(f rendercache.Fields) map[string]any {
	if len(f) == 0 {
		return nil
	}
	return map[string]any(f)
}
