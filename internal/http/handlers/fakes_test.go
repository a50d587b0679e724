package handlers

import (
	"context"
	"errors"
	"sync"

	"donategate/internal/domain"
)

// fakeRepo is an in-memory domain.DonationRequestRepository that records
// every mutation for assertions.
type fakeRepo struct {
	mu       sync.Mutex
	nextID   int64
	requests map[int64]*domain.DonationRequest

	createErr   error
	decisionErr error
	overrideErr error
	refErr      error

	refCalls      []refCall
	overrideCalls []overrideCall
}

type refCall struct {
	id  int64
	ref string
}

type overrideCall struct {
	id     int64
	status string
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{nextID: 6, requests: map[int64]*domain.DonationRequest{}}
}

func (f *fakeRepo) Create(_ context.Context, req *domain.DonationRequest) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.createErr != nil {
		return f.createErr
	}
	f.nextID++
	req.ID = f.nextID
	stored := *req
	f.requests[req.ID] = &stored
	return nil
}

func (f *fakeRepo) SetNotificationRef(_ context.Context, id int64, ref string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.refErr != nil {
		return f.refErr
	}
	f.refCalls = append(f.refCalls, refCall{id: id, ref: ref})
	if req, ok := f.requests[id]; ok {
		req.NotificationRef = &ref
	}
	return nil
}

func (f *fakeRepo) ApplyDecision(_ context.Context, id int64, status domain.Status) (*domain.DonationRequest, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.decisionErr != nil {
		return nil, f.decisionErr
	}
	req, ok := f.requests[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	req.Status = status
	out := *req
	return &out, nil
}

func (f *fakeRepo) OverrideStatus(_ context.Context, id int64, status string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.overrideErr != nil {
		return f.overrideErr
	}
	f.overrideCalls = append(f.overrideCalls, overrideCall{id: id, status: status})
	if req, ok := f.requests[id]; ok {
		req.Status = domain.Status(status)
	}
	return nil
}

var _ domain.DonationRequestRepository = (*fakeRepo)(nil)

// fakeNotifier records notification attempts and can be told to fail.
type fakeNotifier struct {
	ref     string
	sendErr error

	sent      []*domain.DonationRequest
	published []publishCall
	confirmed []confirmCall
}

type publishCall struct {
	ref domain.MessageRef
	req *domain.DonationRequest
}

type confirmCall struct {
	callbackID string
	status     domain.Status
}

func (f *fakeNotifier) RequestDecision(_ context.Context, req *domain.DonationRequest) (string, error) {
	if f.sendErr != nil {
		return "", f.sendErr
	}
	f.sent = append(f.sent, req)
	return f.ref, nil
}

func (f *fakeNotifier) PublishDecision(_ context.Context, ref domain.MessageRef, req *domain.DonationRequest) error {
	f.published = append(f.published, publishCall{ref: ref, req: req})
	return nil
}

func (f *fakeNotifier) ConfirmDecision(_ context.Context, callbackID string, status domain.Status) error {
	f.confirmed = append(f.confirmed, confirmCall{callbackID: callbackID, status: status})
	return nil
}

var _ domain.DecisionNotifier = (*fakeNotifier)(nil)

var errStorage = errors.New("storage down")
