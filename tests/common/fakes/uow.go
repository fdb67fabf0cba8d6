// Package fakes provides an in-memory record store implementing the
// usecase contracts, so command and job tests run without Postgres.
package fakes

import (
	"context"
	"sort"
	"sync"
	"time"

	"swipemarket/internal/domain/listing"
	"swipemarket/internal/domain/order"
	"swipemarket/internal/domain/user"
	"swipemarket/internal/infra"
	"swipemarket/internal/infra/db"
	"swipemarket/internal/usecase/shared"

	"github.com/google/uuid"
)

type state struct {
	listings map[uuid.UUID]shared.ListingSnapshot
	orders   map[string]shared.OrderSnapshot
	users    map[uuid.UUID]shared.UserSnapshot
}

func newState() *state {
	return &state{
		listings: make(map[uuid.UUID]shared.ListingSnapshot),
		orders:   make(map[string]shared.OrderSnapshot),
		users:    make(map[uuid.UUID]shared.UserSnapshot),
	}
}

func (s *state) clone() *state {
	c := newState()
	for k, v := range s.listings {
		c.listings[k] = v
	}
	for k, v := range s.orders {
		c.orders[k] = v
	}
	for k, v := range s.users {
		c.users[k] = v
	}
	return c
}

// UnitOfWork is a map-backed shared.UnitOfWork. Within takes a snapshot of
// the state and restores it when fn fails, matching transactional rollback.
type UnitOfWork struct {
	mu sync.Mutex
	st *state
}

func NewUnitOfWork() *UnitOfWork {
	return &UnitOfWork{st: newState()}
}

func (u *UnitOfWork) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	u.mu.Lock()
	defer u.mu.Unlock()

	backup := u.st.clone()
	if err := fn(ctx, &memTx{st: u.st}); err != nil {
		u.st = backup
		return err
	}
	return nil
}

func (u *UnitOfWork) WithDB(ctx context.Context, fn func(ctx context.Context, dbtx db.DBTX) error) error {
	u.mu.Lock()
	defer u.mu.Unlock()
	return fn(ctx, nil)
}

func (u *UnitOfWork) Reads() shared.CommandReads {
	return &memReads{st: u.st}
}

// Seed helpers and state accessors.

func (u *UnitOfWork) PutListing(s shared.ListingSnapshot) {
	u.mu.Lock()
	defer u.mu.Unlock()
	u.st.listings[s.ID] = s
}

func (u *UnitOfWork) PutOrder(s shared.OrderSnapshot) {
	u.mu.Lock()
	defer u.mu.Unlock()
	u.st.orders[s.ID] = s
}

func (u *UnitOfWork) PutUser(s shared.UserSnapshot) {
	u.mu.Lock()
	defer u.mu.Unlock()
	u.st.users[s.ID] = s
}

func (u *UnitOfWork) Listing(id uuid.UUID) (shared.ListingSnapshot, bool) {
	u.mu.Lock()
	defer u.mu.Unlock()
	s, ok := u.st.listings[id]
	return s, ok
}

func (u *UnitOfWork) Order(id string) (shared.OrderSnapshot, bool) {
	u.mu.Lock()
	defer u.mu.Unlock()
	s, ok := u.st.orders[id]
	return s, ok
}

func (u *UnitOfWork) User(id uuid.UUID) (shared.UserSnapshot, bool) {
	u.mu.Lock()
	defer u.mu.Unlock()
	s, ok := u.st.users[id]
	return s, ok
}

// ReadStore serves the query-side ports from the same state; the DBTX
// argument is ignored.
func (u *UnitOfWork) ReadStore() *ReadStore {
	return &ReadStore{u: u}
}

type memTx struct {
	st *state
}

func (t *memTx) DB() db.DBTX                        { return nil }
func (t *memTx) Listings() shared.ListingRepository { return &listingRepo{st: t.st} }
func (t *memTx) Orders() shared.OrderRepository     { return &orderRepo{st: t.st} }
func (t *memTx) Users() shared.UserRepository       { return &userRepo{st: t.st} }
func (t *memTx) Reads() shared.CommandReads         { return &memReads{st: t.st} }

type listingRepo struct {
	st *state
}

func (r *listingRepo) Create(_ context.Context, _ db.DBTX, l *listing.Listing) error {
	if _, ok := r.st.listings[l.ID()]; ok {
		return infra.WrapRepoErr(infra.KindDuplicateKey, "listing already exists", nil)
	}
	r.st.listings[l.ID()] = shared.ListingSnapshot{
		ID:              l.ID(),
		SellerID:        l.SellerID(),
		SellerName:      l.SellerName(),
		DiningHall:      l.DiningHall(),
		TimeStart:       l.TimeStart(),
		TimeEnd:         l.TimeEnd(),
		TransactionDate: l.TransactionDate(),
		SellerRating:    l.SellerRating(),
		PaymentTypes:    l.PaymentTypes(),
		PriceCents:      l.PriceCents(),
		Status:          l.Status(),
	}
	return nil
}

func (r *listingRepo) MarkClaimed(_ context.Context, _ db.DBTX, id uuid.UUID) error {
	return r.setStatus(id, listing.StatusClaimed)
}

func (r *listingRepo) MarkCancelled(_ context.Context, _ db.DBTX, id uuid.UUID) error {
	return r.setStatus(id, listing.StatusCancelled)
}

func (r *listingRepo) setStatus(id uuid.UUID, status listing.Status) error {
	s, ok := r.st.listings[id]
	if !ok {
		return infra.WrapRepoErr(infra.KindNotFound, "listing not found", nil)
	}
	s.Status = status
	r.st.listings[id] = s
	return nil
}

func (r *listingRepo) ExpireBefore(_ context.Context, _ db.DBTX, cutoff time.Time) (int64, error) {
	var n int64
	for id, s := range r.st.listings {
		if s.Status == listing.StatusActive && s.TransactionDate.Before(cutoff) {
			s.Status = listing.StatusExpired
			r.st.listings[id] = s
			n++
		}
	}
	return n, nil
}

type orderRepo struct {
	st *state
}

func (r *orderRepo) Create(_ context.Context, _ db.DBTX, o *order.Order) error {
	if _, ok := r.st.orders[o.ID()]; ok {
		return infra.WrapRepoErr(infra.KindDuplicateKey, "order already exists", nil)
	}
	r.st.orders[o.ID()] = shared.OrderSnapshot{
		ID:              o.ID(),
		SellerID:        o.SellerID(),
		SellerName:      o.SellerName(),
		SellerStars:     o.SellerStars(),
		BuyerID:         o.BuyerID(),
		BuyerName:       o.BuyerName(),
		BuyerStars:      o.BuyerStars(),
		DiningHall:      o.DiningHall(),
		TransactionDate: o.TransactionDate(),
		PriceCents:      o.PriceCents(),
		Status:          o.Status(),
		SellerHasNotifs: o.SellerHasNotifs(),
		BuyerHasNotifs:  o.BuyerHasNotifs(),
		CreatedAt:       o.CreatedAt(),
	}
	return nil
}

func (r *orderRepo) MarkCompleted(_ context.Context, _ db.DBTX, ids []string) error {
	for _, id := range ids {
		s, ok := r.st.orders[id]
		if !ok {
			return infra.WrapRepoErr(infra.KindNotFound, "order not found", nil)
		}
		s.Status = order.StatusCompleted
		r.st.orders[id] = s
	}
	return nil
}

func (r *orderRepo) SetRating(_ context.Context, _ db.DBTX, orderID string, side order.Side, rating order.Rating) error {
	s, ok := r.st.orders[orderID]
	if !ok {
		return infra.WrapRepoErr(infra.KindNotFound, "order not found", nil)
	}
	if side == order.SideBuyer {
		s.RatingByBuyer = &rating
		s.BuyerHasRated = true
	} else {
		s.RatingBySeller = &rating
		s.SellerHasRated = true
	}
	r.st.orders[orderID] = s
	return nil
}

func (r *orderRepo) SetNotified(_ context.Context, _ db.DBTX, orderID string, side order.Side) error {
	s, ok := r.st.orders[orderID]
	if !ok {
		return infra.WrapRepoErr(infra.KindNotFound, "order not found", nil)
	}
	if side == order.SideBuyer {
		s.BuyerHasNotifs = true
	} else {
		s.SellerHasNotifs = true
	}
	r.st.orders[orderID] = s
	return nil
}

type userRepo struct {
	st *state
}

func (r *userRepo) ApplyStatsDelta(_ context.Context, _ db.DBTX, id uuid.UUID, delta user.StatsDelta) error {
	s, ok := r.st.users[id]
	if !ok {
		return infra.WrapRepoErr(infra.KindNotFound, "user not found", nil)
	}
	s.TransactionsCompleted += delta.Transactions
	s.MoneySavedCents += delta.MoneySavedCents
	s.MoneyEarnedCents += delta.MoneyEarnedCents
	r.st.users[id] = s
	return nil
}

func (r *userRepo) SetStars(_ context.Context, _ db.DBTX, id uuid.UUID, stars float64) error {
	s, ok := r.st.users[id]
	if !ok {
		return infra.WrapRepoErr(infra.KindNotFound, "user not found", nil)
	}
	s.Stars = &stars
	r.st.users[id] = s
	return nil
}

type memReads struct {
	st *state
}

func (r *memReads) ListingByID(_ context.Context, id uuid.UUID) (*shared.ListingSnapshot, error) {
	s, ok := r.st.listings[id]
	if !ok {
		return nil, infra.WrapRepoErr(infra.KindNotFound, "listing not found", nil)
	}
	return &s, nil
}

func (r *memReads) OrderByID(_ context.Context, id string) (*shared.OrderSnapshot, error) {
	s, ok := r.st.orders[id]
	if !ok {
		return nil, infra.WrapRepoErr(infra.KindNotFound, "order not found", nil)
	}
	return &s, nil
}

func (r *memReads) UserByID(_ context.Context, id uuid.UUID) (*shared.UserSnapshot, error) {
	s, ok := r.st.users[id]
	if !ok {
		return nil, infra.WrapRepoErr(infra.KindNotFound, "user not found", nil)
	}
	return &s, nil
}

func (r *memReads) ActiveOrdersBefore(_ context.Context, cutoff time.Time) ([]shared.OrderSnapshot, error) {
	var out []shared.OrderSnapshot
	for _, s := range r.st.orders {
		if s.Status == order.StatusActive && s.TransactionDate.Before(cutoff) {
			out = append(out, s)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].TransactionDate.Before(out[j].TransactionDate)
	})
	return out, nil
}

// ReadStore implements queries.ListingReadStore and queries.OrderReadStore.
type ReadStore struct {
	u *UnitOfWork
}

func (r *ReadStore) FindActive(_ context.Context, _ db.DBTX) ([]shared.ListingSnapshot, error) {
	var out []shared.ListingSnapshot
	for _, s := range r.u.st.listings {
		if s.Status == listing.StatusActive {
			out = append(out, s)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].TransactionDate.Before(out[j].TransactionDate)
	})
	return out, nil
}

func (r *ReadStore) FindByID(_ context.Context, _ db.DBTX, id string) (*shared.OrderSnapshot, error) {
	s, ok := r.u.st.orders[id]
	if !ok {
		return nil, infra.WrapRepoErr(infra.KindNotFound, "order not found", nil)
	}
	return &s, nil
}

func (r *ReadStore) FindByParticipant(_ context.Context, _ db.DBTX, userID uuid.UUID) ([]shared.OrderSnapshot, error) {
	var out []shared.OrderSnapshot
	for _, s := range r.u.st.orders {
		if s.SellerID == userID || s.BuyerID == userID {
			out = append(out, s)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		return out[j].TransactionDate.Before(out[i].TransactionDate)
	})
	return out, nil
}

func (r *ReadStore) CountUnread(_ context.Context, _ db.DBTX, userID uuid.UUID) (int, error) {
	var n int
	for _, s := range r.u.st.orders {
		if s.Status != order.StatusActive {
			continue
		}
		if (s.BuyerID == userID && s.BuyerHasNotifs) || (s.SellerID == userID && s.SellerHasNotifs) {
			n++
		}
	}
	return n, nil
}

// RecordingNotifier captures enqueued order IDs.
type RecordingNotifier struct {
	mu     sync.Mutex
	Orders []string
	Err    error
}

func (n *RecordingNotifier) OrderClaimed(_ context.Context, orderID string) error {
	n.mu.Lock()
	defer n.mu.Unlock()
	if n.Err != nil {
		return n.Err
	}
	n.Orders = append(n.Orders, orderID)
	return nil
}
