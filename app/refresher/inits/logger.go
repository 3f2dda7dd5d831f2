package inits

import (
	"go.uber.org/zap"
)

func Logger(isDebug bool) (*zap.Logger, error) {
	if isDebug {
		return zap.NewDevelopment()
	} else {
		return zap.NewProduction()
	}
}
