package logging

import (
	"fmt"
	"go.uber.org/zap"
)

// New returns a JSON production logger, or a console development logger.
func New(production bool) (*zap.Logger, error) {
	var (
		logger *zap.Logger
		err    error
	)

	if production {
		logger, err = zap.NewProduction()
	} else {
		logger, err = zap.NewDevelopment()
	}
	if err != nil {
		return nil, fmt.Errorf("zap.New: %w", err)
	}

	return logger.With(zap.String("service", "bakery-web")), nil
}
