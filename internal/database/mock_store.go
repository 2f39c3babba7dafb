// file: internal/database/mock_store.go
// version: 2.0.0
// guid: b2c3d4e5-f6a7-8b9c-0d1e-2f3a4b5c6d7e

package database

import "context"

// MockStore is a simple mock implementation for testing services.
// Unset funcs return zero values.
type MockStore struct {
	CloseFunc func() error

	// User methods
	CreateUserFunc        func(ctx context.Context, user *User) (*User, error)
	GetUserByIDFunc       func(ctx context.Context, id string) (*User, error)
	GetUserByUsernameFunc func(ctx context.Context, username string) (*User, error)
	CountUsersFunc        func(ctx context.Context) (int, error)

	// Word methods
	UpsertWordFunc              func(ctx context.Context, word *Word) (*Word, bool, error)
	GetWordByIDFunc             func(ctx context.Context, id string) (*Word, error)
	GetWordByFingerprintFunc    func(ctx context.Context, fingerprint string) (*Word, error)
	GetWordsByIDsFunc           func(ctx context.Context, ids []string) ([]Word, error)
	FindWordsBySubsequenceFunc  func(ctx context.Context, q SubsequenceQuery, limit int) ([]Word, error)
	DecrementWordPopularityFunc func(ctx context.Context, id string) error
	SetWordPopularityFunc       func(ctx context.Context, id string, popularity int64) error
	ListWordsFunc               func(ctx context.Context, limit, offset int) ([]Word, error)
	CountWordsFunc              func(ctx context.Context) (int, error)

	// User word methods
	CreateUserWordFunc       func(ctx context.Context, uw *UserWord) (*UserWord, error)
	GetUserWordFunc          func(ctx context.Context, userID, wordID string) (*UserWord, error)
	GetUserWordByIDFunc      func(ctx context.Context, id string) (*UserWord, error)
	ListUserWordsFunc        func(ctx context.Context, userID string) ([]UserWord, error)
	CountUserWordsByWordFunc func(ctx context.Context) (map[string]int64, error)
	RemoveUserWordFunc       func(ctx context.Context, uw *UserWord) error
}

var _ Store = (*MockStore)(nil)

func (m *MockStore) Close() error {
	if m.CloseFunc != nil {
		return m.CloseFunc()
	}
	return nil
}

func (m *MockStore) CreateUser(ctx context.Context, user *User) (*User, error) {
	if m.CreateUserFunc != nil {
		return m.CreateUserFunc(ctx, user)
	}
	return user, nil
}

func (m *MockStore) GetUserByID(ctx context.Context, id string) (*User, error) {
	if m.GetUserByIDFunc != nil {
		return m.GetUserByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *MockStore) GetUserByUsername(ctx context.Context, username string) (*User, error) {
	if m.GetUserByUsernameFunc != nil {
		return m.GetUserByUsernameFunc(ctx, username)
	}
	return nil, nil
}

func (m *MockStore) CountUsers(ctx context.Context) (int, error) {
	if m.CountUsersFunc != nil {
		return m.CountUsersFunc(ctx)
	}
	return 0, nil
}

func (m *MockStore) UpsertWord(ctx context.Context, word *Word) (*Word, bool, error) {
	if m.UpsertWordFunc != nil {
		return m.UpsertWordFunc(ctx, word)
	}
	return word, true, nil
}

func (m *MockStore) GetWordByID(ctx context.Context, id string) (*Word, error) {
	if m.GetWordByIDFunc != nil {
		return m.GetWordByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *MockStore) GetWordByFingerprint(ctx context.Context, fingerprint string) (*Word, error) {
	if m.GetWordByFingerprintFunc != nil {
		return m.GetWordByFingerprintFunc(ctx, fingerprint)
	}
	return nil, nil
}

func (m *MockStore) GetWordsByIDs(ctx context.Context, ids []string) ([]Word, error) {
	if m.GetWordsByIDsFunc != nil {
		return m.GetWordsByIDsFunc(ctx, ids)
	}
	return nil, nil
}

func (m *MockStore) FindWordsBySubsequence(ctx context.Context, q SubsequenceQuery, limit int) ([]Word, error) {
	if m.FindWordsBySubsequenceFunc != nil {
		return m.FindWordsBySubsequenceFunc(ctx, q, limit)
	}
	return nil, nil
}

func (m *MockStore) DecrementWordPopularity(ctx context.Context, id string) error {
	if m.DecrementWordPopularityFunc != nil {
		return m.DecrementWordPopularityFunc(ctx, id)
	}
	return nil
}

func (m *MockStore) SetWordPopularity(ctx context.Context, id string, popularity int64) error {
	if m.SetWordPopularityFunc != nil {
		return m.SetWordPopularityFunc(ctx, id, popularity)
	}
	return nil
}

func (m *MockStore) ListWords(ctx context.Context, limit, offset int) ([]Word, error) {
	if m.ListWordsFunc != nil {
		return m.ListWordsFunc(ctx, limit, offset)
	}
	return nil, nil
}

func (m *MockStore) CountWords(ctx context.Context) (int, error) {
	if m.CountWordsFunc != nil {
		return m.CountWordsFunc(ctx)
	}
	return 0, nil
}

func (m *MockStore) CreateUserWord(ctx context.Context, uw *UserWord) (*UserWord, error) {
	if m.CreateUserWordFunc != nil {
		return m.CreateUserWordFunc(ctx, uw)
	}
	return uw, nil
}

func (m *MockStore) GetUserWord(ctx context.Context, userID, wordID string) (*UserWord, error) {
	if m.GetUserWordFunc != nil {
		return m.GetUserWordFunc(ctx, userID, wordID)
	}
	return nil, nil
}

func (m *MockStore) GetUserWordByID(ctx context.Context, id string) (*UserWord, error) {
	if m.GetUserWordByIDFunc != nil {
		return m.GetUserWordByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *MockStore) ListUserWords(ctx context.Context, userID string) ([]UserWord, error) {
	if m.ListUserWordsFunc != nil {
		return m.ListUserWordsFunc(ctx, userID)
	}
	return nil, nil
}

func (m *MockStore) CountUserWordsByWord(ctx context.Context) (map[string]int64, error) {
	if m.CountUserWordsByWordFunc != nil {
		return m.CountUserWordsByWordFunc(ctx)
	}
	return map[string]int64{}, nil
}

func (m *MockStore) RemoveUserWord(ctx context.Context, uw *UserWord) error {
	if m.RemoveUserWordFunc != nil {
		return m.RemoveUserWordFunc(ctx, uw)
	}
	return nil
}
