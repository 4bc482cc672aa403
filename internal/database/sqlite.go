package database

import (
	"context"

	"gorm.io/gorm"
)

// SQLite stores blobs in the blobs table of a SQLite database.
type SQLite struct {
	db *gorm.DB
}

// OpenSQLite connects to the database file at path.
func OpenSQLite(path string) (*SQLite, error) {
	db, err := Connect(path)
	if err != nil {
		return nil, err
	}

	return &SQLite{db: db}, nil
}

// Get returns the value stored under key.
func (s *SQLite) Get(ctx context.Context, key string) ([]byte, error) {
	var blob Blob
	err := s.db.WithContext(ctx).Where(&Blob{Key: key}).First(&blob).Error
	if err != nil {
		return nil, err
	}

	return blob.Value, nil
}

// Put creates or replaces the value stored under key.
func (s *SQLite) Put(ctx context.Context, key string, value []byte) error {
	var blob Blob
	return s.db.WithContext(ctx).
		Where(Blob{Key: key}).
		Assign(Blob{Value: value}).
		FirstOrCreate(&blob).Error
}

// Ping verifies the database connection.
func (s *SQLite) Ping(ctx context.Context) error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}

	return sqlDB.PingContext(ctx)
}

// Close closes the database connection.
func (s *SQLite) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}

	return sqlDB.Close()
}
