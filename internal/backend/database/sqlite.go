package database

import (
	"database/sql"
	"fmt"
	"strings"

	_ "modernc.org/sqlite"
)

const inMemoryConnectionString = ":memory:"

// SQLiteDatabase stores images in an in-memory SQLite database.
// File backed connection strings are rejected; images never outlive the process.
type SQLiteDatabase struct {
	db *sql.DB
}

func NewSQLiteDatabase(connectionString string) (*SQLiteDatabase, error) {
	if connectionString == "" {
		connectionString = inMemoryConnectionString
	}
	if !isInMemoryConnectionString(connectionString) {
		return nil, fmt.Errorf("sqlite connection string %q is not in-memory", connectionString)
	}

	db, err := sql.Open("sqlite", connectionString)
	if err != nil {
		return nil, err
	}
	// every new connection to :memory: opens a separate empty database
	db.SetMaxOpenConns(1)

	return &SQLiteDatabase{db: db}, nil
}

func isInMemoryConnectionString(connectionString string) bool {
	return connectionString == inMemoryConnectionString ||
		strings.Contains(connectionString, "mode=memory")
}

// CreateDatabase creates the images table if it does not exist yet.
func (s *SQLiteDatabase) CreateDatabase() error {
	_, err := s.db.Exec(`CREATE TABLE IF NOT EXISTS images (
		seq INTEGER PRIMARY KEY AUTOINCREMENT,
		id TEXT NOT NULL UNIQUE,
		data TEXT NOT NULL,
		created_at TEXT NOT NULL,
		original_name TEXT NOT NULL,
		size INTEGER NOT NULL,
		type TEXT NOT NULL
	)`)
	return err
}

func (s *SQLiteDatabase) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

func (s *SQLiteDatabase) CreateImage(image *Image) (*Image, error) {
	if image == nil {
		return nil, ErrNilImage
	}
	id, err := generateID()
	if err != nil {
		return nil, err
	}

	stored := image.clone()
	stored.ID = id

	_, err = s.db.Exec(
		"INSERT INTO images (id, data, created_at, original_name, size, type) VALUES (?, ?, ?, ?, ?, ?)",
		stored.ID, stored.Data, stored.CreatedAt, stored.OriginalName, stored.Size, stored.Type)
	if err != nil {
		return nil, err
	}

	return stored, nil
}

func (s *SQLiteDatabase) DeleteImage(id string) error {
	_, err := s.db.Exec("DELETE FROM images WHERE id = ?", id)
	return err
}

func (s *SQLiteDatabase) DeleteAllImages() error {
	_, err := s.db.Exec("DELETE FROM images")
	return err
}

func (s *SQLiteDatabase) GetAllImages() ([]*Image, error) {
	rows, err := s.db.Query("SELECT id, data, created_at, original_name, size, type FROM images ORDER BY seq ASC")
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = rows.Close() // Explicitly ignore error as we're already returning an error from the function
	}()

	images := make([]*Image, 0)
	for rows.Next() {
		var img Image
		if err := rows.Scan(&img.ID, &img.Data, &img.CreatedAt, &img.OriginalName, &img.Size, &img.Type); err != nil {
			return nil, err
		}
		images = append(images, &img)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return images, nil
}

func (s *SQLiteDatabase) Count() (int, error) {
	var count int
	if err := s.db.QueryRow("SELECT COUNT(*) FROM images").Scan(&count); err != nil {
		return 0, err
	}
	return count, nil
}
