package testutil

import (
	"context"
	"sync"
	"time"

	infraKafka "foodgram-go/internal/infra/kafka"
)

const fakeImageBaseURL = "http://images.test/recipe-images/"

// FakeImageStore 内存图片存储
type FakeImageStore struct {
	mu      sync.Mutex
	Objects map[string][]byte
	Removed []string
	SaveErr error
}

func NewFakeImageStore() *FakeImageStore {
	return &FakeImageStore{Objects: make(map[string][]byte)}
}

func (f *FakeImageStore) Save(_ context.Context, objectName string, data []byte, _ string) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.SaveErr != nil {
		return "", f.SaveErr
	}
	f.Objects[objectName] = data
	return fakeImageBaseURL + objectName, nil
}

func (f *FakeImageStore) Remove(_ context.Context, imageURL string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.Removed = append(f.Removed, imageURL)
	return nil
}

// Count 已保存的对象数
func (f *FakeImageStore) Count() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.Objects)
}

// FakePublisher 记录发布的菜谱事件
type FakePublisher struct {
	mu     sync.Mutex
	events []infraKafka.RecipeEvent
	Err    error
}

func (f *FakePublisher) PublishRecipeEvent(_ context.Context, event *infraKafka.RecipeEvent) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.Err != nil {
		return f.Err
	}
	f.events = append(f.events, *event)
	return nil
}

// Types 按发布顺序返回事件类型
func (f *FakePublisher) Types() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	types := make([]string, 0, len(f.events))
	for _, e := range f.events {
		types = append(types, e.Type)
	}
	return types
}

// FakeBlacklist 内存令牌黑名单
type FakeBlacklist struct {
	mu      sync.Mutex
	revoked map[string]time.Duration
}

func NewFakeBlacklist() *FakeBlacklist {
	return &FakeBlacklist{revoked: make(map[string]time.Duration)}
}

func (f *FakeBlacklist) Revoke(_ context.Context, token string, ttl time.Duration) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.revoked[token] = ttl
	return nil
}

func (f *FakeBlacklist) IsRevoked(_ context.Context, token string) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	_, ok := f.revoked[token]
	return ok, nil
}
