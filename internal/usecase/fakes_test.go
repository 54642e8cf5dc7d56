package usecase

import (
	"context"
	"fmt"
	"sync"

	"playaround/internal/domain/repository"
	"playaround/pkg/errors"
)

// serverStamp stands in for the server-side timestamp sentinel in the
// in-memory store.
const serverStamp = "<server-timestamp>"

// fakeSeedRepository reproduces Firestore's merge and replace semantics on
// an in-memory document store.
type fakeSeedRepository struct {
	mu       sync.Mutex
	docs     map[string]map[string]interface{}
	replaced map[string]interface{}
	failPath string
}

func newFakeSeedRepository() *fakeSeedRepository {
	return &fakeSeedRepository{
		docs:     map[string]map[string]interface{}{},
		replaced: map[string]interface{}{},
	}
}

func docKey(collectionPath, id string) string {
	return collectionPath + "/" + id
}

func (f *fakeSeedRepository) Upsert(ctx context.Context, collectionPath, id string, data map[string]interface{}) error {
	if err := f.checkFail(collectionPath, id); err != nil {
		return err
	}

	payload := map[string]interface{}{"updatedAt": serverStamp}
	for k, v := range data {
		payload[k] = v
	}
	f.merge(collectionPath, id, payload)
	return nil
}

func (f *fakeSeedRepository) Merge(ctx context.Context, collectionPath, id string, data map[string]interface{}) error {
	if err := f.checkFail(collectionPath, id); err != nil {
		return err
	}

	f.merge(collectionPath, id, data)
	return nil
}

func (f *fakeSeedRepository) Replace(ctx context.Context, collectionPath, id string, data interface{}) error {
	if err := f.checkFail(collectionPath, id); err != nil {
		return err
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	f.replaced[docKey(collectionPath, id)] = data
	return nil
}

func (f *fakeSeedRepository) merge(collectionPath, id string, data map[string]interface{}) {
	f.mu.Lock()
	defer f.mu.Unlock()
	key := docKey(collectionPath, id)
	doc, ok := f.docs[key]
	if !ok {
		doc = map[string]interface{}{}
		f.docs[key] = doc
	}
	for k, v := range data {
		doc[k] = v
	}
}

func (f *fakeSeedRepository) checkFail(collectionPath, id string) error {
	if f.failPath != "" && f.failPath == docKey(collectionPath, id) {
		return fmt.Errorf("write rejected for %s", f.failPath)
	}
	return nil
}

var _ repository.SeedRepository = (*fakeSeedRepository)(nil)

type fakeAuthAccount struct {
	uid      string
	verified bool
}

// fakeAuthClient is an in-memory auth directory.
type fakeAuthClient struct {
	accounts       map[string]*fakeAuthAccount
	created        []string
	verifyCalls    int
	lookupErr      error
	nextCreatedUID string
}

func newFakeAuthClient() *fakeAuthClient {
	return &fakeAuthClient{
		accounts:       map[string]*fakeAuthAccount{},
		nextCreatedUID: "uid-created",
	}
}

func (f *fakeAuthClient) GetAccountByEmail(ctx context.Context, email string) (string, bool, error) {
	if f.lookupErr != nil {
		return "", false, f.lookupErr
	}
	account, ok := f.accounts[email]
	if !ok {
		return "", false, errors.NotFound("Auth account", nil)
	}
	return account.uid, account.verified, nil
}

func (f *fakeAuthClient) CreateAccount(ctx context.Context, email, password, displayName, photoURL string) (string, error) {
	f.created = append(f.created, email)
	f.accounts[email] = &fakeAuthAccount{uid: f.nextCreatedUID, verified: true}
	return f.nextCreatedUID, nil
}

func (f *fakeAuthClient) MarkEmailVerified(ctx context.Context, uid string) error {
	f.verifyCalls++
	for _, account := range f.accounts {
		if account.uid == uid {
			account.verified = true
		}
	}
	return nil
}

var _ FirebaseAuthClient = (*fakeAuthClient)(nil)
