package session

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"go.etcd.io/bbolt"
)

var sessionBucket = []byte("session")

// BoltStore 基于 bbolt 文件的会话存储，进程重启后 Token 仍在
type BoltStore struct {
	db *bbolt.DB
}

// OpenBolt 打开（必要时创建）会话文件
func OpenBolt(path string) (*BoltStore, error) {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o700); err != nil {
			return nil, fmt.Errorf("创建会话目录失败: %w", err)
		}
	}

	db, err := bbolt.Open(path, 0o600, &bbolt.Options{Timeout: time.Second})
	if err != nil {
		return nil, fmt.Errorf("打开会话文件失败: %w", err)
	}

	err = db.Update(func(tx *bbolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(sessionBucket)
		return err
	})
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("初始化会话 bucket 失败: %w", err)
	}

	return &BoltStore{db: db}, nil
}

func (s *BoltStore) SetToken(_ context.Context, token string) error {
	if token == "" {
		return ErrEmptyToken
	}
	return s.db.Update(func(tx *bbolt.Tx) error {
		return tx.Bucket(sessionBucket).Put([]byte(TokenKey), []byte(token))
	})
}

func (s *BoltStore) Token(_ context.Context) (string, bool, error) {
	var token string
	var ok bool
	err := s.db.View(func(tx *bbolt.Tx) error {
		v := tx.Bucket(sessionBucket).Get([]byte(TokenKey))
		if v != nil {
			// v 只在事务内有效
			token, ok = string(v), true
		}
		return nil
	})
	return token, ok, err
}

func (s *BoltStore) Clear(_ context.Context) error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		return tx.Bucket(sessionBucket).Delete([]byte(TokenKey))
	})
}

func (s *BoltStore) Close() error {
	return s.db.Close()
}
