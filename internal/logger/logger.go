package logger

import (
	"log"

	"go.uber.org/zap"
)

// Init: global zap logger'ı kurar; sonrasında zap.S() / zap.L() kullanılır.
func Init(env string) {
	var (
		l   *zap.Logger
		err error
	)
	if env == "dev" {
		l, err = zap.NewDevelopment()
	} else {
		l, err = zap.NewProduction()
	}
	if err != nil {
		log.Fatalf("Logger kurulamadı: %v", err)
	}
	zap.ReplaceGlobals(l)
}
