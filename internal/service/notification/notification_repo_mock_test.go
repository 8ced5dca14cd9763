package notification

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/saudaghar/marketplace-backend/internal/domain"
)

var _ notificationRepo = &notificationRepoMock{}

type notificationRepoMock struct {
	CountUnreadFunc func(ctx context.Context, userID uuid.UUID) (int, error)
	ListByUserFunc  func(ctx context.Context, userID uuid.UUID, limit int, offset int) ([]domain.Notification, error)
	MarkAllReadFunc func(ctx context.Context, userID uuid.UUID) (int, error)
	MarkReadFunc    func(ctx context.Context, id uuid.UUID, userID uuid.UUID) error

	calls struct {
		CountUnread []struct {
			Ctx    context.Context
			UserID uuid.UUID
		}
		ListByUser []struct {
			Ctx    context.Context
			UserID uuid.UUID
			Limit  int
			Offset int
		}
		MarkAllRead []struct {
			Ctx    context.Context
			UserID uuid.UUID
		}
		MarkRead []struct {
			Ctx    context.Context
			ID     uuid.UUID
			UserID uuid.UUID
		}
	}
	lockCountUnread sync.RWMutex
	lockListByUser  sync.RWMutex
	lockMarkAllRead sync.RWMutex
	lockMarkRead    sync.RWMutex
}

func (mock *notificationRepoMock) CountUnread(ctx context.Context, userID uuid.UUID) (int, error) {
	if mock.CountUnreadFunc == nil {
		panic("notificationRepoMock.CountUnreadFunc: method is nil but notificationRepo.CountUnread was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID uuid.UUID
	}{Ctx: ctx, UserID: userID}
	mock.lockCountUnread.Lock()
	mock.calls.CountUnread = append(mock.calls.CountUnread, callInfo)
	mock.lockCountUnread.Unlock()
	return mock.CountUnreadFunc(ctx, userID)
}

func (mock *notificationRepoMock) CountUnreadCalls() []struct {
	Ctx    context.Context
	UserID uuid.UUID
} {
	mock.lockCountUnread.RLock()
	calls := mock.calls.CountUnread
	mock.lockCountUnread.RUnlock()
	return calls
}

func (mock *notificationRepoMock) ListByUser(ctx context.Context, userID uuid.UUID, limit int, offset int) ([]domain.Notification, error) {
	if mock.ListByUserFunc == nil {
		panic("notificationRepoMock.ListByUserFunc: method is nil but notificationRepo.ListByUser was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID uuid.UUID
		Limit  int
		Offset int
	}{Ctx: ctx, UserID: userID, Limit: limit, Offset: offset}
	mock.lockListByUser.Lock()
	mock.calls.ListByUser = append(mock.calls.ListByUser, callInfo)
	mock.lockListByUser.Unlock()
	return mock.ListByUserFunc(ctx, userID, limit, offset)
}

func (mock *notificationRepoMock) ListByUserCalls() []struct {
	Ctx    context.Context
	UserID uuid.UUID
	Limit  int
	Offset int
} {
	mock.lockListByUser.RLock()
	calls := mock.calls.ListByUser
	mock.lockListByUser.RUnlock()
	return calls
}

func (mock *notificationRepoMock) MarkAllRead(ctx context.Context, userID uuid.UUID) (int, error) {
	if mock.MarkAllReadFunc == nil {
		panic("notificationRepoMock.MarkAllReadFunc: method is nil but notificationRepo.MarkAllRead was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID uuid.UUID
	}{Ctx: ctx, UserID: userID}
	mock.lockMarkAllRead.Lock()
	mock.calls.MarkAllRead = append(mock.calls.MarkAllRead, callInfo)
	mock.lockMarkAllRead.Unlock()
	return mock.MarkAllReadFunc(ctx, userID)
}

func (mock *notificationRepoMock) MarkAllReadCalls() []struct {
	Ctx    context.Context
	UserID uuid.UUID
} {
	mock.lockMarkAllRead.RLock()
	calls := mock.calls.MarkAllRead
	mock.lockMarkAllRead.RUnlock()
	return calls
}

func (mock *notificationRepoMock) MarkRead(ctx context.Context, id uuid.UUID, userID uuid.UUID) error {
	if mock.MarkReadFunc == nil {
		panic("notificationRepoMock.MarkReadFunc: method is nil but notificationRepo.MarkRead was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		ID     uuid.UUID
		UserID uuid.UUID
	}{Ctx: ctx, ID: id, UserID: userID}
	mock.lockMarkRead.Lock()
	mock.calls.MarkRead = append(mock.calls.MarkRead, callInfo)
	mock.lockMarkRead.Unlock()
	return mock.MarkReadFunc(ctx, id, userID)
}

func (mock *notificationRepoMock) MarkReadCalls() []struct {
	Ctx    context.Context
	ID     uuid.UUID
	UserID uuid.UUID
} {
	mock.lockMarkRead.RLock()
	calls := mock.calls.MarkRead
	mock.lockMarkRead.RUnlock()
	return calls
}
