package service

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	bookmodel "booktrade-backend/internal/domains/book/model"
	ordermodel "booktrade-backend/internal/domains/order/model"
	"booktrade-backend/internal/domains/trade/model"
	usermodel "booktrade-backend/internal/domains/user/model"
	apperrors "booktrade-backend/internal/shared/errors"
	"booktrade-backend/pkg/database"
)

// =====================================================
// FAKES
// =====================================================

type fakeTradeRepo struct {
	trades map[uuid.UUID]*model.Trade
}

func newFakeTradeRepo() *fakeTradeRepo {
	return &fakeTradeRepo{trades: map[uuid.UUID]*model.Trade{}}
}

func (r *fakeTradeRepo) Create(ctx context.Context, trade *model.Trade) error {
	copied := *trade
	r.trades[trade.ID] = &copied
	return nil
}

func (r *fakeTradeRepo) GetByID(ctx context.Context, id uuid.UUID) (*model.Trade, error) {
	trade, ok := r.trades[id]
	if !ok {
		return nil, model.ErrTradeNotFound
	}
	copied := *trade
	return &copied, nil
}

func (r *fakeTradeRepo) ExistsRequested(ctx context.Context, senderID, receiverID, senderBookID, receiverBookID uuid.UUID) (bool, error) {
	for _, trade := range r.trades {
		if trade.Status == model.StatusRequested &&
			trade.SenderID == senderID && trade.ReceiverID == receiverID &&
			trade.SenderBookID == senderBookID && trade.ReceiverBookID == receiverBookID {
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeTradeRepo) UpdateStatus(ctx context.Context, id uuid.UUID, status string, onlyRequested bool) (*model.Trade, error) {
	trade, ok := r.trades[id]
	if !ok {
		return nil, model.ErrTradeNotFound
	}
	if onlyRequested && trade.Status != model.StatusRequested {
		return nil, model.ErrTradeNotRequested
	}
	trade.Status = status
	trade.UpdatedAt = time.Now()
	copied := *trade
	return &copied, nil
}

func (r *fakeTradeRepo) UpdateStatusTx(ctx context.Context, tx pgx.Tx, id uuid.UUID, status string, onlyRequested bool) (*model.Trade, error) {
	return r.UpdateStatus(ctx, id, status, onlyRequested)
}

func (r *fakeTradeRepo) ListOutgoing(ctx context.Context, userID uuid.UUID) ([]*model.TradeDetail, error) {
	return nil, nil
}

func (r *fakeTradeRepo) ListIncoming(ctx context.Context, userID uuid.UUID) ([]*model.TradeDetail, error) {
	return nil, nil
}

func (r *fakeTradeRepo) ListAccepted(ctx context.Context, userID uuid.UUID) ([]*model.TradeDetail, error) {
	return nil, nil
}

func (r *fakeTradeRepo) ListRejected(ctx context.Context, userID uuid.UUID) ([]*model.TradeDetail, error) {
	return nil, nil
}

type fakeOrderRepo struct {
	orders []*ordermodel.Order
}

func (r *fakeOrderRepo) Create(ctx context.Context, order *ordermodel.Order) error {
	copied := *order
	r.orders = append(r.orders, &copied)
	return nil
}

func (r *fakeOrderRepo) CreateTx(ctx context.Context, tx pgx.Tx, order *ordermodel.Order) error {
	return r.Create(ctx, order)
}

func (r *fakeOrderRepo) ListByUser(ctx context.Context, userID uuid.UUID) ([]*ordermodel.OrderDetail, error) {
	return nil, nil
}

func (r *fakeOrderRepo) ExistsByUserAndBook(ctx context.Context, userID, bookID uuid.UUID) (bool, error) {
	for _, order := range r.orders {
		if order.UserID == userID && order.BookID == bookID {
			return true, nil
		}
	}
	return false, nil
}

type fakeUserRepo struct {
	ids map[uuid.UUID]bool
}

func (r *fakeUserRepo) Create(ctx context.Context, user *usermodel.User) error { return nil }
func (r *fakeUserRepo) GetByID(ctx context.Context, id uuid.UUID) (*usermodel.User, error) {
	return nil, usermodel.ErrUserNotFound
}
func (r *fakeUserRepo) GetByUID(ctx context.Context, uid string) (*usermodel.User, error) {
	return nil, usermodel.ErrUserNotFound
}
func (r *fakeUserRepo) List(ctx context.Context) ([]*usermodel.User, error) { return nil, nil }
func (r *fakeUserRepo) ListExcluding(ctx context.Context, id uuid.UUID) ([]*usermodel.User, error) {
	return nil, nil
}
func (r *fakeUserRepo) Update(ctx context.Context, user *usermodel.User) error { return nil }
func (r *fakeUserRepo) DeleteByUID(ctx context.Context, uid string) error      { return nil }
func (r *fakeUserRepo) Exists(ctx context.Context, id uuid.UUID) (bool, error) {
	return r.ids[id], nil
}
func (r *fakeUserRepo) AddFavorite(ctx context.Context, uid, bookID string) ([]string, bool, error) {
	return nil, false, nil
}
func (r *fakeUserRepo) RemoveFavorite(ctx context.Context, uid, bookID string) ([]string, bool, error) {
	return nil, false, nil
}
func (r *fakeUserRepo) ToggleFavorite(ctx context.Context, uid, bookID string) ([]string, bool, error) {
	return nil, false, nil
}

type fakeBookRepo struct {
	ids map[uuid.UUID]bool
}

func (r *fakeBookRepo) Create(ctx context.Context, book *bookmodel.Book) error { return nil }
func (r *fakeBookRepo) GetByID(ctx context.Context, id uuid.UUID) (*bookmodel.Book, error) {
	return nil, bookmodel.ErrBookNotFound
}
func (r *fakeBookRepo) List(ctx context.Context) ([]*bookmodel.Book, error) { return nil, nil }
func (r *fakeBookRepo) ListByOwner(ctx context.Context, ownerUID string) ([]*bookmodel.Book, error) {
	return nil, nil
}
func (r *fakeBookRepo) ListWithCoordinates(ctx context.Context) ([]*bookmodel.Book, error) {
	return nil, nil
}
func (r *fakeBookRepo) Update(ctx context.Context, book *bookmodel.Book) error { return nil }
func (r *fakeBookRepo) Delete(ctx context.Context, id uuid.UUID) error         { return nil }
func (r *fakeBookRepo) Exists(ctx context.Context, id uuid.UUID) (bool, error) {
	return r.ids[id], nil
}

// fakeTransactor runs the function without a real transaction; the fake
// repositories ignore the tx handle.
type fakeTransactor struct{}

func (t *fakeTransactor) WithinTx(ctx context.Context, fn database.TxFunc) error {
	return fn(nil)
}

// =====================================================
// FIXTURE
// =====================================================

type tradeFixture struct {
	tradeRepo *fakeTradeRepo
	orderRepo *fakeOrderRepo
	userRepo  *fakeUserRepo
	bookRepo  *fakeBookRepo

	sender       uuid.UUID
	receiver     uuid.UUID
	senderBook   uuid.UUID
	receiverBook uuid.UUID
}

func newTradeFixture() *tradeFixture {
	f := &tradeFixture{
		tradeRepo:    newFakeTradeRepo(),
		orderRepo:    &fakeOrderRepo{},
		userRepo:     &fakeUserRepo{ids: map[uuid.UUID]bool{}},
		bookRepo:     &fakeBookRepo{ids: map[uuid.UUID]bool{}},
		sender:       uuid.New(),
		receiver:     uuid.New(),
		senderBook:   uuid.New(),
		receiverBook: uuid.New(),
	}
	f.userRepo.ids[f.sender] = true
	f.userRepo.ids[f.receiver] = true
	f.bookRepo.ids[f.senderBook] = true
	f.bookRepo.ids[f.receiverBook] = true
	return f
}

func (f *tradeFixture) service(strict bool) TradeService {
	return NewTradeService(f.tradeRepo, f.orderRepo, f.userRepo, f.bookRepo, &fakeTransactor{}, strict)
}

func (f *tradeFixture) request() *model.CreateTradeRequest {
	return &model.CreateTradeRequest{
		SenderID:       f.sender.String(),
		SenderBookID:   f.senderBook.String(),
		ReceiverID:     f.receiver.String(),
		ReceiverBookID: f.receiverBook.String(),
	}
}

// =====================================================
// CREATE
// =====================================================

func TestCreateTrade(t *testing.T) {
	f := newTradeFixture()
	svc := f.service(true)

	trade, err := svc.CreateTrade(context.Background(), f.request())
	require.NoError(t, err)

	assert.Equal(t, model.StatusRequested, trade.Status)
	assert.Equal(t, f.sender, trade.SenderID)
	assert.Equal(t, f.receiverBook, trade.ReceiverBookID)
	assert.Len(t, f.tradeRepo.trades, 1)
}

func TestCreateTradeInvalidID(t *testing.T) {
	f := newTradeFixture()
	svc := f.service(true)

	req := f.request()
	req.SenderID = "not-a-uuid"

	_, err := svc.CreateTrade(context.Background(), req)
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrValidation)
}

func TestCreateTradeSelfTrade(t *testing.T) {
	f := newTradeFixture()
	svc := f.service(true)

	req := f.request()
	req.ReceiverID = req.SenderID

	_, err := svc.CreateTrade(context.Background(), req)
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrConflict)
	assert.Equal(t, "Sender and Receiver cannot be the same user", apperrors.Message(err))
}

func TestCreateTradeMissingEntities(t *testing.T) {
	tests := []struct {
		name    string
		corrupt func(f *tradeFixture)
		message string
	}{
		{
			name:    "sender missing",
			corrupt: func(f *tradeFixture) { delete(f.userRepo.ids, f.sender) },
			message: "Sender not found",
		},
		{
			name:    "receiver missing",
			corrupt: func(f *tradeFixture) { delete(f.userRepo.ids, f.receiver) },
			message: "Receiver not found",
		},
		{
			name:    "sender book missing",
			corrupt: func(f *tradeFixture) { delete(f.bookRepo.ids, f.senderBook) },
			message: "Sender book not found",
		},
		{
			name:    "receiver book missing",
			corrupt: func(f *tradeFixture) { delete(f.bookRepo.ids, f.receiverBook) },
			message: "Receiver book not found",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newTradeFixture()
			tt.corrupt(f)

			_, err := f.service(true).CreateTrade(context.Background(), f.request())
			require.Error(t, err)
			assert.ErrorIs(t, err, apperrors.ErrNotFound)
			assert.Equal(t, tt.message, apperrors.Message(err))
		})
	}
}

func TestCreateTradeAlreadyOwned(t *testing.T) {
	f := newTradeFixture()
	f.orderRepo.orders = append(f.orderRepo.orders, &ordermodel.Order{
		ID:     uuid.New(),
		UserID: f.sender,
		BookID: f.receiverBook,
		Source: ordermodel.SourceTrade,
	})

	_, err := f.service(true).CreateTrade(context.Background(), f.request())
	require.Error(t, err)
	assert.Equal(t, "Sender already owns the receiver's book", apperrors.Message(err))
}

func TestCreateTradeDuplicateRequest(t *testing.T) {
	f := newTradeFixture()
	svc := f.service(true)

	_, err := svc.CreateTrade(context.Background(), f.request())
	require.NoError(t, err)

	_, err = svc.CreateTrade(context.Background(), f.request())
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrConflict)
	assert.Equal(t, "Trade request already exists", apperrors.Message(err))
}

// A settled trade no longer blocks a new request for the same pair.
func TestCreateTradeAfterRejection(t *testing.T) {
	f := newTradeFixture()
	svc := f.service(true)

	trade, err := svc.CreateTrade(context.Background(), f.request())
	require.NoError(t, err)

	_, err = svc.RejectTrade(context.Background(), trade.ID.String())
	require.NoError(t, err)

	_, err = svc.CreateTrade(context.Background(), f.request())
	require.NoError(t, err)
}

// =====================================================
// ACCEPT
// =====================================================

func TestAcceptTrade(t *testing.T) {
	f := newTradeFixture()
	svc := f.service(true)

	trade, err := svc.CreateTrade(context.Background(), f.request())
	require.NoError(t, err)

	result, err := svc.AcceptTrade(context.Background(), trade.ID.String())
	require.NoError(t, err)

	assert.Equal(t, model.StatusAccepted, result.Trade.Status)
	require.Len(t, result.Orders, 2)

	// Receiver obtains the sender's book and vice versa.
	assert.Equal(t, f.receiver, result.Orders[0].UserID)
	assert.Equal(t, f.senderBook, result.Orders[0].BookID)
	assert.Equal(t, f.sender, result.Orders[1].UserID)
	assert.Equal(t, f.receiverBook, result.Orders[1].BookID)

	for _, order := range result.Orders {
		assert.Equal(t, ordermodel.SourceTrade, order.Source)
	}
	assert.Len(t, f.orderRepo.orders, 2)
}

func TestAcceptTradeNotFound(t *testing.T) {
	f := newTradeFixture()

	_, err := f.service(true).AcceptTrade(context.Background(), uuid.New().String())
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestAcceptTradeInvalidID(t *testing.T) {
	f := newTradeFixture()

	_, err := f.service(true).AcceptTrade(context.Background(), "nope")
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrValidation)
}

func TestAcceptTradeStrictRejectsSettled(t *testing.T) {
	f := newTradeFixture()
	svc := f.service(true)

	trade, err := svc.CreateTrade(context.Background(), f.request())
	require.NoError(t, err)

	_, err = svc.AcceptTrade(context.Background(), trade.ID.String())
	require.NoError(t, err)

	_, err = svc.AcceptTrade(context.Background(), trade.ID.String())
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrConflict)
	assert.Equal(t, "Trade is not in Requested state", apperrors.Message(err))

	// No extra orders were materialized.
	assert.Len(t, f.orderRepo.orders, 2)
}

// Lax mode keeps the legacy behavior: re-accepting settles again and
// materializes a second pair of orders.
func TestAcceptTradeLaxAllowsReaccept(t *testing.T) {
	f := newTradeFixture()
	svc := f.service(false)

	trade, err := svc.CreateTrade(context.Background(), f.request())
	require.NoError(t, err)

	_, err = svc.AcceptTrade(context.Background(), trade.ID.String())
	require.NoError(t, err)

	result, err := svc.AcceptTrade(context.Background(), trade.ID.String())
	require.NoError(t, err)

	assert.Equal(t, model.StatusAccepted, result.Trade.Status)
	assert.Len(t, f.orderRepo.orders, 4)
}

// =====================================================
// REJECT
// =====================================================

func TestRejectTrade(t *testing.T) {
	f := newTradeFixture()
	svc := f.service(true)

	trade, err := svc.CreateTrade(context.Background(), f.request())
	require.NoError(t, err)

	updated, err := svc.RejectTrade(context.Background(), trade.ID.String())
	require.NoError(t, err)

	assert.Equal(t, model.StatusRejected, updated.Status)
	assert.Empty(t, f.orderRepo.orders)
}

func TestRejectTradeStrictRejectsSettled(t *testing.T) {
	f := newTradeFixture()
	svc := f.service(true)

	trade, err := svc.CreateTrade(context.Background(), f.request())
	require.NoError(t, err)

	_, err = svc.RejectTrade(context.Background(), trade.ID.String())
	require.NoError(t, err)

	_, err = svc.RejectTrade(context.Background(), trade.ID.String())
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrConflict)
}

func TestRejectTradeLaxAllowsResettle(t *testing.T) {
	f := newTradeFixture()
	svc := f.service(false)

	trade, err := svc.CreateTrade(context.Background(), f.request())
	require.NoError(t, err)

	_, err = svc.RejectTrade(context.Background(), trade.ID.String())
	require.NoError(t, err)

	updated, err := svc.RejectTrade(context.Background(), trade.ID.String())
	require.NoError(t, err)
	assert.Equal(t, model.StatusRejected, updated.Status)
}

// =====================================================
// LISTS
// =====================================================

func TestTradeListsRejectInvalidUserID(t *testing.T) {
	f := newTradeFixture()
	svc := f.service(true)
	ctx := context.Background()

	for _, call := range []func() error{
		func() error { _, err := svc.ListOutgoing(ctx, "bad"); return err },
		func() error { _, err := svc.ListIncoming(ctx, "bad"); return err },
		func() error { _, err := svc.ListAccepted(ctx, "bad"); return err },
		func() error { _, err := svc.ListRejected(ctx, "bad"); return err },
	} {
		err := call()
		require.Error(t, err)
		assert.ErrorIs(t, err, apperrors.ErrValidation)
	}
}
