package service

import (
	"context"

	"booktrade-backend/internal/domains/trade/model"
)

type TradeService interface {
	CreateTrade(ctx context.Context, req *model.CreateTradeRequest) (*model.Trade, error)
	AcceptTrade(ctx context.Context, id string) (*model.AcceptResult, error)
	RejectTrade(ctx context.Context, id string) (*model.Trade, error)

	ListOutgoing(ctx context.Context, userID string) ([]*model.TradeDetail, error)
	ListIncoming(ctx context.Context, userID string) ([]*model.TradeDetail, error)
	ListAccepted(ctx context.Context, userID string) ([]*model.TradeDetail, error)
	ListRejected(ctx context.Context, userID string) ([]*model.TradeDetail, error)
}
