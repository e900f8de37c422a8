package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"booktrade-backend/internal/domains/trade/model"
)

type TradeRepository interface {
	Create(ctx context.Context, trade *model.Trade) error
	GetByID(ctx context.Context, id uuid.UUID) (*model.Trade, error)
	// ExistsRequested reports whether the exact four-way combination
	// already has a pending request.
	ExistsRequested(ctx context.Context, senderID, receiverID, senderBookID, receiverBookID uuid.UUID) (bool, error)

	// UpdateStatus moves the trade to the given status and returns the
	// updated row. With onlyRequested set the update is conditional on
	// the trade still being Requested and fails with
	// model.ErrTradeNotRequested otherwise.
	UpdateStatus(ctx context.Context, id uuid.UUID, status string, onlyRequested bool) (*model.Trade, error)
	UpdateStatusTx(ctx context.Context, tx pgx.Tx, id uuid.UUID, status string, onlyRequested bool) (*model.Trade, error)

	// Joined queries. Requested lists are ordered by creation time,
	// settled lists by the time they were settled.
	ListOutgoing(ctx context.Context, userID uuid.UUID) ([]*model.TradeDetail, error)
	ListIncoming(ctx context.Context, userID uuid.UUID) ([]*model.TradeDetail, error)
	ListAccepted(ctx context.Context, userID uuid.UUID) ([]*model.TradeDetail, error)
	ListRejected(ctx context.Context, userID uuid.UUID) ([]*model.TradeDetail, error)
}
