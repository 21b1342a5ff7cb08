package cmd

import (
	"go.uber.org/zap"

	"chromacraft/palette"
)

// progress is a palette.Observer that counts events and logs each accepted
// color at debug level.
type progress struct {
	logger   *zap.Logger
	target   int
	accepted int
	rejected int
}

func newProgress(logger *zap.Logger, target int) *progress {
	return &progress{logger: logger, target: target}
}

func (p *progress) Accepted(c palette.Color, size int) {
	p.accepted++
	p.logger.Debug("accepted color",
		zap.String("hex", c.Hex()),
		zap.Int("size", size),
		zap.Int("target", p.target),
		zap.Int("rejected", p.rejected))
}

func (p *progress) Rejected(c palette.Color, against palette.Color, distance float64) {
	p.rejected++
	if ce := p.logger.Check(zap.DebugLevel, "rejected color"); ce != nil {
		ce.Write(
			zap.String("hex", c.Hex()),
			zap.String("against", against.Hex()),
			zap.Float64("distance", distance))
	}
}
