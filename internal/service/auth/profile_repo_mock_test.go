package auth

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/saudaghar/marketplace-backend/internal/domain"
)

var _ profileRepo = &profileRepoMock{}

type profileRepoMock struct {
	CreateFunc          func(ctx context.Context, p *domain.Profile, passwordHash string) (*domain.Profile, error)
	GetByIDFunc         func(ctx context.Context, id uuid.UUID) (*domain.Profile, error)
	GetCredentialsFunc  func(ctx context.Context, email string) (*domain.Profile, string, error)
	GetPasswordHashFunc func(ctx context.Context, id uuid.UUID) (string, error)
	UpdatePasswordFunc  func(ctx context.Context, id uuid.UUID, passwordHash string, at time.Time) error

	calls struct {
		Create []struct {
			Ctx          context.Context
			P            *domain.Profile
			PasswordHash string
		}
		GetByID []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
		GetCredentials []struct {
			Ctx   context.Context
			Email string
		}
		GetPasswordHash []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
		UpdatePassword []struct {
			Ctx          context.Context
			ID           uuid.UUID
			PasswordHash string
			At           time.Time
		}
	}
	lockCreate          sync.RWMutex
	lockGetByID         sync.RWMutex
	lockGetCredentials  sync.RWMutex
	lockGetPasswordHash sync.RWMutex
	lockUpdatePassword  sync.RWMutex
}

func (mock *profileRepoMock) Create(ctx context.Context, p *domain.Profile, passwordHash string) (*domain.Profile, error) {
	if mock.CreateFunc == nil {
		panic("profileRepoMock.CreateFunc: method is nil but profileRepo.Create was just called")
	}
	callInfo := struct {
		Ctx          context.Context
		P            *domain.Profile
		PasswordHash string
	}{Ctx: ctx, P: p, PasswordHash: passwordHash}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, p, passwordHash)
}

func (mock *profileRepoMock) CreateCalls() []struct {
	Ctx          context.Context
	P            *domain.Profile
	PasswordHash string
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *profileRepoMock) GetByID(ctx context.Context, id uuid.UUID) (*domain.Profile, error) {
	if mock.GetByIDFunc == nil {
		panic("profileRepoMock.GetByIDFunc: method is nil but profileRepo.GetByID was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  uuid.UUID
	}{Ctx: ctx, ID: id}
	mock.lockGetByID.Lock()
	mock.calls.GetByID = append(mock.calls.GetByID, callInfo)
	mock.lockGetByID.Unlock()
	return mock.GetByIDFunc(ctx, id)
}

func (mock *profileRepoMock) GetByIDCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
} {
	mock.lockGetByID.RLock()
	calls := mock.calls.GetByID
	mock.lockGetByID.RUnlock()
	return calls
}

func (mock *profileRepoMock) GetCredentials(ctx context.Context, email string) (*domain.Profile, string, error) {
	if mock.GetCredentialsFunc == nil {
		panic("profileRepoMock.GetCredentialsFunc: method is nil but profileRepo.GetCredentials was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Email string
	}{Ctx: ctx, Email: email}
	mock.lockGetCredentials.Lock()
	mock.calls.GetCredentials = append(mock.calls.GetCredentials, callInfo)
	mock.lockGetCredentials.Unlock()
	return mock.GetCredentialsFunc(ctx, email)
}

func (mock *profileRepoMock) GetCredentialsCalls() []struct {
	Ctx   context.Context
	Email string
} {
	mock.lockGetCredentials.RLock()
	calls := mock.calls.GetCredentials
	mock.lockGetCredentials.RUnlock()
	return calls
}

func (mock *profileRepoMock) GetPasswordHash(ctx context.Context, id uuid.UUID) (string, error) {
	if mock.GetPasswordHashFunc == nil {
		panic("profileRepoMock.GetPasswordHashFunc: method is nil but profileRepo.GetPasswordHash was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  uuid.UUID
	}{Ctx: ctx, ID: id}
	mock.lockGetPasswordHash.Lock()
	mock.calls.GetPasswordHash = append(mock.calls.GetPasswordHash, callInfo)
	mock.lockGetPasswordHash.Unlock()
	return mock.GetPasswordHashFunc(ctx, id)
}

func (mock *profileRepoMock) GetPasswordHashCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
} {
	mock.lockGetPasswordHash.RLock()
	calls := mock.calls.GetPasswordHash
	mock.lockGetPasswordHash.RUnlock()
	return calls
}

func (mock *profileRepoMock) UpdatePassword(ctx context.Context, id uuid.UUID, passwordHash string, at time.Time) error {
	if mock.UpdatePasswordFunc == nil {
		panic("profileRepoMock.UpdatePasswordFunc: method is nil but profileRepo.UpdatePassword was just called")
	}
	callInfo := struct {
		Ctx          context.Context
		ID           uuid.UUID
		PasswordHash string
		At           time.Time
	}{Ctx: ctx, ID: id, PasswordHash: passwordHash, At: at}
	mock.lockUpdatePassword.Lock()
	mock.calls.UpdatePassword = append(mock.calls.UpdatePassword, callInfo)
	mock.lockUpdatePassword.Unlock()
	return mock.UpdatePasswordFunc(ctx, id, passwordHash, at)
}

func (mock *profileRepoMock) UpdatePasswordCalls() []struct {
	Ctx          context.Context
	ID           uuid.UUID
	PasswordHash string
	At           time.Time
} {
	mock.lockUpdatePassword.RLock()
	calls := mock.calls.UpdatePassword
	mock.lockUpdatePassword.RUnlock()
	return calls
}
