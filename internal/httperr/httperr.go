package httperr

import (
	"stoktakip-backend/internal/ledger"

	"github.com/gofiber/fiber/v2"
)

// From: ledger hata sınıflarını HTTP durum kodlarına çevirir.
func From(err error) error {
	e, ok := err.(*ledger.Error)
	if !ok {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}
	switch e.Kind {
	case ledger.KindValidation:
		return fiber.NewError(fiber.StatusBadRequest, e.Message)
	case ledger.KindInsufficientStock:
		return fiber.NewError(fiber.StatusConflict, e.Message)
	case ledger.KindNotFound:
		return fiber.NewError(fiber.StatusNotFound, e.Message)
	default:
		// storage / partial_commit: kullanıcıya tek hata sinyali
		return fiber.NewError(fiber.StatusInternalServerError, e.Message)
	}
}
