package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	bookrepo "booktrade-backend/internal/domains/book/repository"
	ordermodel "booktrade-backend/internal/domains/order/model"
	orderrepo "booktrade-backend/internal/domains/order/repository"
	"booktrade-backend/internal/domains/trade/model"
	"booktrade-backend/internal/domains/trade/repository"
	userrepo "booktrade-backend/internal/domains/user/repository"
	apperrors "booktrade-backend/internal/shared/errors"
	"booktrade-backend/pkg/database"
)

// =====================================================
// TRADE SERVICE IMPLEMENTATION
// =====================================================

type tradeService struct {
	tradeRepo repository.TradeRepository
	orderRepo orderrepo.OrderRepository
	userRepo  userrepo.UserRepository
	bookRepo  bookrepo.BookRepository
	tx        database.Transactor

	// strict makes Accept/Reject conditional on the trade still being
	// Requested. When off, re-settling a trade is allowed and
	// re-accepting materializes duplicate orders.
	strict bool
}

func NewTradeService(
	tradeRepo repository.TradeRepository,
	orderRepo orderrepo.OrderRepository,
	userRepo userrepo.UserRepository,
	bookRepo bookrepo.BookRepository,
	tx database.Transactor,
	strict bool,
) TradeService {
	return &tradeService{
		tradeRepo: tradeRepo,
		orderRepo: orderRepo,
		userRepo:  userRepo,
		bookRepo:  bookRepo,
		tx:        tx,
		strict:    strict,
	}
}

func (s *tradeService) CreateTrade(ctx context.Context, req *model.CreateTradeRequest) (*model.Trade, error) {
	// Step 1: Validate input
	if err := req.Validate(); err != nil {
		return nil, apperrors.Validation(err.Error())
	}

	senderID, _ := uuid.Parse(req.SenderID)
	senderBookID, _ := uuid.Parse(req.SenderBookID)
	receiverID, _ := uuid.Parse(req.ReceiverID)
	receiverBookID, _ := uuid.Parse(req.ReceiverBookID)

	if senderID == receiverID {
		return nil, apperrors.BusinessRule("Sender and Receiver cannot be the same user")
	}

	// Step 2: Verify users exist
	if exists, err := s.userRepo.Exists(ctx, senderID); err != nil {
		return nil, apperrors.Internal("failed to check sender", err)
	} else if !exists {
		return nil, apperrors.NotFound("Sender not found")
	}

	if exists, err := s.userRepo.Exists(ctx, receiverID); err != nil {
		return nil, apperrors.Internal("failed to check receiver", err)
	} else if !exists {
		return nil, apperrors.NotFound("Receiver not found")
	}

	// Step 3: Verify books exist
	if exists, err := s.bookRepo.Exists(ctx, senderBookID); err != nil {
		return nil, apperrors.Internal("failed to check sender book", err)
	} else if !exists {
		return nil, apperrors.NotFound("Sender book not found")
	}

	if exists, err := s.bookRepo.Exists(ctx, receiverBookID); err != nil {
		return nil, apperrors.Internal("failed to check receiver book", err)
	} else if !exists {
		return nil, apperrors.NotFound("Receiver book not found")
	}

	// Step 4: Prevent duplicate ownership
	if owns, err := s.orderRepo.ExistsByUserAndBook(ctx, senderID, receiverBookID); err != nil {
		return nil, apperrors.Internal("failed to check sender orders", err)
	} else if owns {
		return nil, apperrors.BusinessRule("Sender already owns the receiver's book")
	}

	if owns, err := s.orderRepo.ExistsByUserAndBook(ctx, receiverID, senderBookID); err != nil {
		return nil, apperrors.Internal("failed to check receiver orders", err)
	} else if owns {
		return nil, apperrors.BusinessRule("Receiver already owns the sender's book")
	}

	// Step 5: Prevent duplicate trade requests
	if exists, err := s.tradeRepo.ExistsRequested(ctx, senderID, receiverID, senderBookID, receiverBookID); err != nil {
		return nil, apperrors.Internal("failed to check pending trades", err)
	} else if exists {
		return nil, apperrors.BusinessRule("Trade request already exists")
	}

	// Step 6: Create the trade
	trade := &model.Trade{
		ID:             uuid.New(),
		SenderID:       senderID,
		SenderBookID:   senderBookID,
		ReceiverID:     receiverID,
		ReceiverBookID: receiverBookID,
		Status:         model.StatusRequested,
		CreatedAt:      time.Now(),
	}
	trade.UpdatedAt = trade.CreatedAt

	if err := s.tradeRepo.Create(ctx, trade); err != nil {
		return nil, apperrors.Internal("failed to create trade", err)
	}

	return trade, nil
}

func (s *tradeService) AcceptTrade(ctx context.Context, id string) (*model.AcceptResult, error) {
	tradeID, err := uuid.Parse(id)
	if err != nil {
		return nil, apperrors.Validation("Invalid Trade ID")
	}

	trade, err := s.tradeRepo.GetByID(ctx, tradeID)
	if err != nil {
		if err == model.ErrTradeNotFound {
			return nil, apperrors.NotFound("Trade not found")
		}
		return nil, apperrors.Internal("failed to get trade", err)
	}

	if s.strict && trade.Status != model.StatusRequested {
		return nil, apperrors.Conflict("Trade is not in Requested state")
	}

	now := time.Now()
	orders := []*ordermodel.Order{
		{
			ID:        uuid.New(),
			UserID:    trade.ReceiverID,
			BookID:    trade.SenderBookID,
			Source:    ordermodel.SourceTrade,
			CreatedAt: now,
		},
		{
			ID:        uuid.New(),
			UserID:    trade.SenderID,
			BookID:    trade.ReceiverBookID,
			Source:    ordermodel.SourceTrade,
			CreatedAt: now,
		},
	}

	// Orders are persisted before the status flips; the transaction
	// makes the pair atomic.
	var updated *model.Trade
	err = s.tx.WithinTx(ctx, func(tx pgx.Tx) error {
		for _, order := range orders {
			if err := s.orderRepo.CreateTx(ctx, tx, order); err != nil {
				return err
			}
		}

		updated, err = s.tradeRepo.UpdateStatusTx(ctx, tx, tradeID, model.StatusAccepted, s.strict)
		return err
	})
	if err != nil {
		if err == model.ErrTradeNotRequested {
			return nil, apperrors.Conflict("Trade is not in Requested state")
		}
		if err == model.ErrTradeNotFound {
			return nil, apperrors.NotFound("Trade not found")
		}
		return nil, apperrors.Internal("failed to accept trade", err)
	}

	return &model.AcceptResult{Trade: updated, Orders: orders}, nil
}

func (s *tradeService) RejectTrade(ctx context.Context, id string) (*model.Trade, error) {
	tradeID, err := uuid.Parse(id)
	if err != nil {
		return nil, apperrors.Validation("Invalid Trade ID")
	}

	if _, err := s.tradeRepo.GetByID(ctx, tradeID); err != nil {
		if err == model.ErrTradeNotFound {
			return nil, apperrors.NotFound("Trade not found")
		}
		return nil, apperrors.Internal("failed to get trade", err)
	}

	updated, err := s.tradeRepo.UpdateStatus(ctx, tradeID, model.StatusRejected, s.strict)
	if err != nil {
		if err == model.ErrTradeNotRequested {
			return nil, apperrors.Conflict("Trade is not in Requested state")
		}
		if err == model.ErrTradeNotFound {
			return nil, apperrors.NotFound("Trade not found")
		}
		return nil, apperrors.Internal("failed to reject trade", err)
	}

	return updated, nil
}

func (s *tradeService) ListOutgoing(ctx context.Context, userID string) ([]*model.TradeDetail, error) {
	id, err := uuid.Parse(userID)
	if err != nil {
		return nil, apperrors.Validation("Invalid User ID")
	}

	trades, err := s.tradeRepo.ListOutgoing(ctx, id)
	if err != nil {
		return nil, apperrors.Internal("failed to list requested trades", err)
	}
	return trades, nil
}

func (s *tradeService) ListIncoming(ctx context.Context, userID string) ([]*model.TradeDetail, error) {
	id, err := uuid.Parse(userID)
	if err != nil {
		return nil, apperrors.Validation("Invalid User ID")
	}

	trades, err := s.tradeRepo.ListIncoming(ctx, id)
	if err != nil {
		return nil, apperrors.Internal("failed to list trade requests", err)
	}
	return trades, nil
}

func (s *tradeService) ListAccepted(ctx context.Context, userID string) ([]*model.TradeDetail, error) {
	id, err := uuid.Parse(userID)
	if err != nil {
		return nil, apperrors.Validation("Invalid User ID")
	}

	trades, err := s.tradeRepo.ListAccepted(ctx, id)
	if err != nil {
		return nil, apperrors.Internal("failed to list accepted trades", err)
	}
	return trades, nil
}

func (s *tradeService) ListRejected(ctx context.Context, userID string) ([]*model.TradeDetail, error) {
	id, err := uuid.Parse(userID)
	if err != nil {
		return nil, apperrors.Validation("Invalid User ID")
	}

	trades, err := s.tradeRepo.ListRejected(ctx, id)
	if err != nil {
		return nil, apperrors.Internal("failed to list rejected trades", err)
	}
	return trades, nil
}
