package usecase

import (
	"context"
	"errors"
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"

	"github.com/rattananon/product-store-api/internal/model"
	"github.com/rattananon/product-store-api/internal/repository"
)

type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func newFakeClock() *fakeClock {
	return &fakeClock{now: time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)}
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

func duplicateKeyError() error {
	return mongo.WriteException{WriteErrors: mongo.WriteErrors{mongo.WriteError{Code: 11000}}}
}

// fakeUserRepository is an in-memory UserRepository keyed by email.
type fakeUserRepository struct {
	mu    sync.Mutex
	users map[string]model.User
	err   error // when set, every call fails with this error
}

func newFakeUserRepository() *fakeUserRepository {
	return &fakeUserRepository{users: make(map[string]model.User)}
}

func (r *fakeUserRepository) CreateUser(_ context.Context, user *model.User) (*model.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.err != nil {
		return nil, r.err
	}
	if _, ok := r.users[user.Email]; ok {
		return nil, duplicateKeyError()
	}

	user.ID = bson.NewObjectID()
	r.users[user.Email] = *user

	copied := *user
	return &copied, nil
}

func (r *fakeUserRepository) GetUserByEmail(_ context.Context, email string) (*model.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.err != nil {
		return nil, r.err
	}

	user, ok := r.users[email]
	if !ok {
		return nil, mongo.ErrNoDocuments
	}

	copied := user
	return &copied, nil
}

func (r *fakeUserRepository) UpdateUserByEmail(
	_ context.Context,
	email string,
	params repository.UpdateUserParams,
) (*model.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.err != nil {
		return nil, r.err
	}

	user, ok := r.users[email]
	if !ok {
		return nil, mongo.ErrNoDocuments
	}

	if params.FullName != nil {
		user.FullName = *params.FullName
	}
	if params.Bio != nil {
		user.Bio = *params.Bio
	}
	if params.AvatarURL != nil {
		user.AvatarURL = *params.AvatarURL
	}
	r.users[email] = user

	copied := user
	return &copied, nil
}

func (r *fakeUserRepository) DeleteUserByEmail(_ context.Context, email string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.users[email]; !ok {
		return mongo.ErrNoDocuments
	}

	delete(r.users, email)
	return nil
}

// fakeOTPRepository is an in-memory OTPRepository keyed by email.
type fakeOTPRepository struct {
	mu      sync.Mutex
	records map[string]model.OTP
}

func newFakeOTPRepository() *fakeOTPRepository {
	return &fakeOTPRepository{records: make(map[string]model.OTP)}
}

func (r *fakeOTPRepository) GetOTP(_ context.Context, email string) (*model.OTP, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	record, ok := r.records[email]
	if !ok {
		return nil, mongo.ErrNoDocuments
	}

	copied := record
	return &copied, nil
}

func (r *fakeOTPRepository) UpsertOTP(_ context.Context, email, code string, expiresAt time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.records[email] = model.OTP{Email: email, Code: code, ExpiresAt: expiresAt}
	return nil
}

func (r *fakeOTPRepository) DeleteOTP(_ context.Context, email string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.records, email)
	return nil
}

// fakeProductRepository is an in-memory ProductRepository keyed by hex ID.
type fakeProductRepository struct {
	mu       sync.Mutex
	products map[string]model.Product
	order    []string
}

func newFakeProductRepository() *fakeProductRepository {
	return &fakeProductRepository{products: make(map[string]model.Product)}
}

func (r *fakeProductRepository) CreateProduct(_ context.Context, product *model.Product) (*model.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	product.ID = bson.NewObjectID()
	r.products[product.ID.Hex()] = *product
	r.order = append(r.order, product.ID.Hex())

	copied := *product
	return &copied, nil
}

func (r *fakeProductRepository) GetProduct(_ context.Context, id string) (*model.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	product, ok := r.products[id]
	if !ok {
		return nil, mongo.ErrNoDocuments
	}

	copied := product
	return &copied, nil
}

func (r *fakeProductRepository) ListProducts(
	_ context.Context,
	params repository.ListProductsParams,
) ([]*model.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	limit := params.Limit
	if limit == 0 {
		limit = 100
	}

	var out []*model.Product
	for i := params.Skip; i < uint64(len(r.order)) && uint64(len(out)) < limit; i++ {
		product := r.products[r.order[i]]
		out = append(out, &product)
	}

	return out, nil
}

func (r *fakeProductRepository) UpdateProduct(
	_ context.Context,
	id string,
	params repository.UpdateProductParams,
) (*model.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if params.Name == nil && params.Description == nil && params.Price == nil &&
		params.InStock == nil && params.Category == nil {
		return nil, repository.ErrNoFieldsToUpdate
	}

	product, ok := r.products[id]
	if !ok {
		return nil, mongo.ErrNoDocuments
	}

	if params.Name != nil {
		product.Name = *params.Name
	}
	if params.Description != nil {
		product.Description = *params.Description
	}
	if params.Price != nil {
		product.Price = *params.Price
	}
	if params.InStock != nil {
		product.InStock = *params.InStock
	}
	if params.Category != nil {
		product.Category = *params.Category
	}
	r.products[id] = product

	copied := product
	return &copied, nil
}

func (r *fakeProductRepository) DeleteProduct(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.products[id]; !ok {
		return mongo.ErrNoDocuments
	}

	delete(r.products, id)
	for i, pid := range r.order {
		if pid == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return nil
}

// fakeSender records delivered passcodes.
type fakeSender struct {
	mu   sync.Mutex
	sent []sentOTP
	fail bool
}

type sentOTP struct {
	to   string
	code string
}

var errSendFailed = errors.New("smtp unreachable")

func (s *fakeSender) SendOTP(to, code string, _ time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.fail {
		return errSendFailed
	}

	s.sent = append(s.sent, sentOTP{to: to, code: code})
	return nil
}

// fakeRecorder captures audit events.
type fakeRecorder struct {
	mu     sync.Mutex
	events []string
}

func (r *fakeRecorder) ProductAdded(productID, actor string) {
	r.record("added:" + productID + ":" + actor)
}

func (r *fakeRecorder) ProductEdited(productID, actor string, _ []string) {
	r.record("edited:" + productID + ":" + actor)
}

func (r *fakeRecorder) ProductDeleted(productID, actor string) {
	r.record("deleted:" + productID + ":" + actor)
}

func (r *fakeRecorder) record(event string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, event)
}
