package storage

import (
	"stoktakip-backend/internal/config"

	"go.uber.org/zap"
)

// Open: açılışta bir kez backend seçer. Önce kalıcı veritabanı denenir;
// açılamazsa tek seferlik uyarıyla fallback'e geçilir. Seçim oturum boyunca
// sabittir, çalışma sırasında backend değiştirilmez.
func Open(cfg *config.Config) (Store, error) {
	durable, err := OpenDurable(cfg.DatabaseDriver, cfg.DatabaseDSN)
	if err == nil {
		zap.S().Infow("Kalıcı veritabanı açıldı", "driver", cfg.DatabaseDriver)
		return durable, nil
	}

	zap.S().Warnw("Kalıcı veritabanı açılamadı, fallback moduna geçiliyor",
		"driver", cfg.DatabaseDriver, "error", err)

	fb, fbErr := OpenFallback(cfg.DataDir)
	if fbErr != nil {
		return nil, fbErr
	}
	return fb, nil
}
