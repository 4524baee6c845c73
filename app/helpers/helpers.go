package helpers

import (
	"context"
	"log"
	"net/http"

	"github.com/leekchan/accounting"
	"github.com/shopmind/go-storefront/app/apperrors"
	"github.com/shopspring/decimal"
	"github.com/unrolled/render"
)

type contextKey string

const (
	ContextKeyUserID contextKey = "userID"
)

func UserIDFromContext(ctx context.Context) string {
	userID, ok := ctx.Value(ContextKeyUserID).(string)
	if !ok {
		return ""
	}
	return userID
}

func ContextWithUserID(ctx context.Context, userID string) context.Context {
	return context.WithValue(ctx, ContextKeyUserID, userID)
}

var priceFormatter = accounting.Accounting{Symbol: "$", Precision: 2}

// FormatPrice renders a money value for display fields in API payloads.
func FormatPrice(amount decimal.Decimal) string {
	return priceFormatter.FormatMoney(amount.InexactFloat64())
}

// RespondError writes a JSON error payload. Typed application errors
// keep their status and message; anything else is logged and hidden
// behind a generic 500.
func RespondError(rnd *render.Render, w http.ResponseWriter, err error) {
	if appErr, ok := apperrors.Is(err); ok {
		_ = rnd.JSON(w, appErr.StatusCode, map[string]interface{}{
			"error": appErr.Message,
		})
		return
	}

	log.Printf("internal error: %v", err)
	_ = rnd.JSON(w, http.StatusInternalServerError, map[string]interface{}{
		"error": "Internal server error.",
	})
}
