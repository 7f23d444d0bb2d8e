package handler

import (
	"context"
	"net/http"

	"github.com/osse101/Adventure_Go/internal/domain"
	"github.com/osse101/Adventure_Go/internal/trade"
)

type SendCurrencyRequest struct {
	From   string `json:"from" validate:"required,max=100,excludesall=\x00\n\r\t"`
	To     string `json:"to" validate:"required,max=100,excludesall=\x00\n\r\t"`
	Amount int64  `json:"amount" validate:"gt=0"`
}

// HandleSendCurrency moves currency between two users
// @Summary Send currency
// @Tags trade
// @Accept json
// @Produce json
// @Param request body SendCurrencyRequest true "Transfer"
// @Success 200 {object} SuccessResponse
// @Failure 400 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /trade/currency [post]
func HandleSendCurrency(svc trade.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		handleAction(w, r, ErrMsgSendCurrencyFailed, func(ctx context.Context, req SendCurrencyRequest) (SuccessResponse, error) {
			if err := svc.SendCurrency(ctx, req.From, req.To, req.Amount); err != nil {
				return SuccessResponse{}, err
			}
			return SuccessResponse{Message: MsgCurrencySent}, nil
		})
	}
}

type GiveItemRequest struct {
	From     string `json:"from" validate:"required,max=100,excludesall=\x00\n\r\t"`
	To       string `json:"to" validate:"required,max=100,excludesall=\x00\n\r\t"`
	ItemName string `json:"item" validate:"required,max=200"`
	Quantity int    `json:"quantity" validate:"min=1,max=1000"`
}

// HandleGiveItem moves backpack items between two users
// @Summary Give item
// @Tags trade
// @Accept json
// @Produce json
// @Param request body GiveItemRequest true "Item transfer"
// @Success 200 {object} domain.Item
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /trade/item [post]
func HandleGiveItem(svc trade.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		handleAction(w, r, ErrMsgGiveItemFailed, func(ctx context.Context, req GiveItemRequest) (*domain.Item, error) {
			return svc.GiveItem(ctx, req.From, req.To, req.ItemName, req.Quantity)
		})
	}
}
