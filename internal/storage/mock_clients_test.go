package storage

import (
	"context"
	"fmt"
	"sync"
)

type mockRedisClient struct {
	mu     sync.Mutex
	store  map[string]string
	errMsg string
	closed bool
}

func newMockRedisClient() *mockRedisClient {
	return &mockRedisClient{store: make(map[string]string)}
}

func (m *mockRedisClient) SetError(msg string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.errMsg = msg
}

func (m *mockRedisClient) HasKey(key string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	_, ok := m.store[key]
	return ok
}

func (m *mockRedisClient) Get(_ context.Context, key string) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.errMsg != "" {
		return "", fmt.Errorf("%s", m.errMsg)
	}
	v, ok := m.store[key]
	if !ok {
		return "", errRedisNil
	}
	return v, nil
}

func (m *mockRedisClient) Set(_ context.Context, key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.errMsg != "" {
		return fmt.Errorf("%s", m.errMsg)
	}
	m.store[key] = value
	return nil
}

func (m *mockRedisClient) Del(_ context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.errMsg != "" {
		return fmt.Errorf("%s", m.errMsg)
	}
	delete(m.store, key)
	return nil
}

func (m *mockRedisClient) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.closed = true
	return nil
}

type mockS3Client struct {
	mu         sync.RWMutex
	objects    map[string][]byte
	lastBucket string
	putErr     string
}

func newMockS3Client() *mockS3Client {
	return &mockS3Client{objects: make(map[string][]byte)}
}

func (m *mockS3Client) SetPutError(msg string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.putErr = msg
}

func (m *mockS3Client) LastBucket() string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.lastBucket
}

func (m *mockS3Client) HasObject(key string) bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	_, ok := m.objects[key]
	return ok
}

func (m *mockS3Client) PutObject(_ context.Context, bucket, key string, data []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.putErr != "" {
		return fmt.Errorf("%s", m.putErr)
	}
	m.lastBucket = bucket
	m.objects[key] = append([]byte(nil), data...)
	return nil
}

func (m *mockS3Client) GetObject(_ context.Context, bucket, key string) ([]byte, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	data, ok := m.objects[key]
	if !ok {
		return nil, errObjectMissing
	}
	return append([]byte(nil), data...), nil
}

func (m *mockS3Client) DeleteObject(_ context.Context, bucket, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.objects, key)
	return nil
}
