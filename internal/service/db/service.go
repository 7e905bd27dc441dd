package db

import (
	"context"
	"errors"
	"fmt"
	"strings"

	model "bored/activity/internal/model/db"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	_ "github.com/mattn/go-sqlite3"
)

const DefaultLimit = 5

var ErrInvalidLimit = errors.New("limit должен быть не меньше 1")

const (
	driverSQLite   = "sqlite3"
	driverPostgres = "postgres"
)

var schemas = map[string]string{
	driverSQLite: `
	CREATE TABLE IF NOT EXISTS activities (
		id INTEGER PRIMARY KEY,
		activity TEXT,
		type TEXT,
		participants INTEGER,
		price REAL,
		accessibility REAL
	)`,
	driverPostgres: `
	CREATE TABLE IF NOT EXISTS activities (
		id BIGSERIAL PRIMARY KEY,
		activity TEXT,
		type TEXT,
		participants INTEGER,
		price DOUBLE PRECISION,
		accessibility DOUBLE PRECISION
	)`,
}

type DB struct {
	db *sqlx.DB
}

// Open открывает или создаёт базу по адресу location и гарантирует наличие таблицы.
// postgres:// и postgresql:// идут через lib/pq, всё остальное - путь к файлу SQLite.
func Open(ctx context.Context, location string) (*DB, error) {
	driver := driverFor(location)

	conn, err := sqlx.ConnectContext(ctx, driver, location)
	if err != nil {
		return nil, fmt.Errorf("ошибка подключения к базе %s: %w", driver, err)
	}

	// Одно соединение на команду. Для :memory: это ещё и единственная копия данных.
	conn.SetMaxOpenConns(1)
	conn.SetMaxIdleConns(1)
	conn.SetConnMaxLifetime(0)

	db, err := NewFromConn(ctx, conn)
	if err != nil {
		conn.Close()
		return nil, err
	}
	return db, nil
}

// NewFromConn оборачивает готовое соединение и создаёт таблицу.
func NewFromConn(ctx context.Context, conn *sqlx.DB) (*DB, error) {
	schema, ok := schemas[conn.DriverName()]
	if !ok {
		return nil, fmt.Errorf("неподдерживаемый драйвер: %s", conn.DriverName())
	}
	if _, err := conn.ExecContext(ctx, schema); err != nil {
		return nil, fmt.Errorf("ошибка создания таблицы activities: %w", err)
	}
	return &DB{db: conn}, nil
}

// Save добавляет строку и возвращает присвоенный id.
func (db *DB) Save(ctx context.Context, activity *model.Activity) (int64, error) {
	query := db.db.Rebind(`
	INSERT INTO activities (activity, type, participants, price, accessibility)
	VALUES (?, ?, ?, ?, ?)
	RETURNING id`)

	var id int64
	err := db.db.QueryRowxContext(ctx, query,
		activity.Activity,
		activity.Type,
		activity.Participants,
		activity.Price,
		activity.Accessibility,
	).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("ошибка сохранения активности: %w", err)
	}
	return id, nil
}

// Latest возвращает до limit последних строк, новые первыми.
func (db *DB) Latest(ctx context.Context, limit int) ([]model.StoredActivity, error) {
	if limit < 1 {
		return nil, fmt.Errorf("%w, получено %d", ErrInvalidLimit, limit)
	}

	query := db.db.Rebind(`
	SELECT id, activity, type, participants, price, accessibility
	FROM activities
	ORDER BY id DESC
	LIMIT ?`)

	rows, err := db.db.QueryxContext(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("ошибка чтения последних активностей: %w", err)
	}
	defer rows.Close()

	activities := []model.StoredActivity{}
	for rows.Next() {
		var a model.StoredActivity
		err := rows.Scan(
			&a.ID,
			&a.Activity.Activity,
			&a.Type,
			&a.Participants,
			&a.Price,
			&a.Accessibility,
		)
		if err != nil {
			return nil, fmt.Errorf("ошибка сканирования строки: %w", err)
		}
		activities = append(activities, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("ошибка при итерации по результатам запроса: %w", err)
	}
	return activities, nil
}

func (db *DB) Close() error {
	return db.db.Close()
}

func driverFor(location string) string {
	lower := strings.ToLower(location)
	if strings.HasPrefix(lower, "postgres://") || strings.HasPrefix(lower, "postgresql://") {
		return driverPostgres
	}
	return driverSQLite
}
