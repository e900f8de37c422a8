package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"booktrade-backend/internal/domains/trade/model"
)

// =====================================================
// POSTGRES REPOSITORY IMPLEMENTATION
// =====================================================

type postgresTradeRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresTradeRepository(pool *pgxpool.Pool) TradeRepository {
	return &postgresTradeRepository{pool: pool}
}

// rowQuerier is satisfied by both *pgxpool.Pool and pgx.Tx, so status
// updates can run standalone or inside a caller-owned transaction.
type rowQuerier interface {
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

const tradeColumns = `
	id, sender_id, sender_book_id, receiver_id, receiver_book_id,
	status, created_at, updated_at`

func scanTrade(row pgx.Row) (*model.Trade, error) {
	trade := &model.Trade{}
	err := row.Scan(
		&trade.ID,
		&trade.SenderID,
		&trade.SenderBookID,
		&trade.ReceiverID,
		&trade.ReceiverBookID,
		&trade.Status,
		&trade.CreatedAt,
		&trade.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return trade, nil
}

func (r *postgresTradeRepository) Create(ctx context.Context, trade *model.Trade) error {
	query := `
		INSERT INTO trades (
			id, sender_id, sender_book_id, receiver_id, receiver_book_id,
			status, created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`

	_, err := r.pool.Exec(ctx, query,
		trade.ID, trade.SenderID, trade.SenderBookID,
		trade.ReceiverID, trade.ReceiverBookID,
		trade.Status, trade.CreatedAt, trade.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to create trade: %w", err)
	}

	return nil
}

func (r *postgresTradeRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Trade, error) {
	query := `SELECT ` + tradeColumns + ` FROM trades WHERE id = $1`

	trade, err := scanTrade(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrTradeNotFound
		}
		return nil, fmt.Errorf("failed to get trade: %w", err)
	}

	return trade, nil
}

func (r *postgresTradeRepository) ExistsRequested(ctx context.Context, senderID, receiverID, senderBookID, receiverBookID uuid.UUID) (bool, error) {
	query := `
		SELECT EXISTS(
			SELECT 1 FROM trades
			WHERE sender_id = $1 AND receiver_id = $2
				AND sender_book_id = $3 AND receiver_book_id = $4
				AND status = $5
		)
	`

	var exists bool
	err := r.pool.QueryRow(ctx, query,
		senderID, receiverID, senderBookID, receiverBookID,
		model.StatusRequested).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check pending trade: %w", err)
	}

	return exists, nil
}

func (r *postgresTradeRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status string, onlyRequested bool) (*model.Trade, error) {
	return updateStatus(ctx, r.pool, id, status, onlyRequested)
}

func (r *postgresTradeRepository) UpdateStatusTx(ctx context.Context, tx pgx.Tx, id uuid.UUID, status string, onlyRequested bool) (*model.Trade, error) {
	return updateStatus(ctx, tx, id, status, onlyRequested)
}

func updateStatus(ctx context.Context, q rowQuerier, id uuid.UUID, status string, onlyRequested bool) (*model.Trade, error) {
	query := `
		UPDATE trades SET status = $2, updated_at = NOW()
		WHERE id = $1`
	args := []any{id, status}

	if onlyRequested {
		query += ` AND status = $3`
		args = append(args, model.StatusRequested)
	}
	query += ` RETURNING ` + tradeColumns

	trade, err := scanTrade(q.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			if onlyRequested {
				return nil, model.ErrTradeNotRequested
			}
			return nil, model.ErrTradeNotFound
		}
		return nil, fmt.Errorf("failed to update trade status: %w", err)
	}

	return trade, nil
}

// =====================================================
// JOINED QUERIES
// =====================================================

const tradeDetailQuery = `
	SELECT t.id, t.status, t.created_at, t.updated_at,
		su.id, su.display_name, su.email,
		ru.id, ru.display_name, ru.email,
		sb.id, sb.title, sb.author, sb.price, sb.image_url,
		rb.id, rb.title, rb.author, rb.price, rb.image_url
	FROM trades t
	JOIN users su ON su.id = t.sender_id
	JOIN users ru ON ru.id = t.receiver_id
	JOIN books sb ON sb.id = t.sender_book_id
	JOIN books rb ON rb.id = t.receiver_book_id`

func (r *postgresTradeRepository) listDetails(ctx context.Context, where, order string, args ...any) ([]*model.TradeDetail, error) {
	rows, err := r.pool.Query(ctx, tradeDetailQuery+where+order, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list trades: %w", err)
	}
	defer rows.Close()

	trades := []*model.TradeDetail{}
	for rows.Next() {
		trade := &model.TradeDetail{}
		err := rows.Scan(
			&trade.ID,
			&trade.Status,
			&trade.CreatedAt,
			&trade.UpdatedAt,
			&trade.Sender.ID,
			&trade.Sender.DisplayName,
			&trade.Sender.Email,
			&trade.Receiver.ID,
			&trade.Receiver.DisplayName,
			&trade.Receiver.Email,
			&trade.SenderBook.ID,
			&trade.SenderBook.Title,
			&trade.SenderBook.Author,
			&trade.SenderBook.Price,
			&trade.SenderBook.ImageURL,
			&trade.ReceiverBook.ID,
			&trade.ReceiverBook.Title,
			&trade.ReceiverBook.Author,
			&trade.ReceiverBook.Price,
			&trade.ReceiverBook.ImageURL,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan trade: %w", err)
		}
		trades = append(trades, trade)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read trades: %w", err)
	}

	return trades, nil
}

func (r *postgresTradeRepository) ListOutgoing(ctx context.Context, userID uuid.UUID) ([]*model.TradeDetail, error) {
	return r.listDetails(ctx,
		` WHERE t.sender_id = $1 AND t.status = $2`,
		` ORDER BY t.created_at DESC`,
		userID, model.StatusRequested)
}

func (r *postgresTradeRepository) ListIncoming(ctx context.Context, userID uuid.UUID) ([]*model.TradeDetail, error) {
	return r.listDetails(ctx,
		` WHERE t.receiver_id = $1 AND t.status = $2`,
		` ORDER BY t.created_at DESC`,
		userID, model.StatusRequested)
}

func (r *postgresTradeRepository) ListAccepted(ctx context.Context, userID uuid.UUID) ([]*model.TradeDetail, error) {
	return r.listDetails(ctx,
		` WHERE (t.sender_id = $1 OR t.receiver_id = $1) AND t.status = $2`,
		` ORDER BY t.updated_at DESC`,
		userID, model.StatusAccepted)
}

func (r *postgresTradeRepository) ListRejected(ctx context.Context, userID uuid.UUID) ([]*model.TradeDetail, error) {
	return r.listDetails(ctx,
		` WHERE (t.sender_id = $1 OR t.receiver_id = $1) AND t.status = $2`,
		` ORDER BY t.updated_at DESC`,
		userID, model.StatusRejected)
}
