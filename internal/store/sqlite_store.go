package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/avc-dev/shortlinks/internal/model"
	"github.com/google/uuid"
)

// SQLiteStore реализует хранилище поверх SQLite или libSQL (Turso).
// Время хранится в наносекундах Unix.
type SQLiteStore struct {
	db      *sql.DB
	builder sq.StatementBuilderType
}

// NewSQLiteStore создает хранилище поверх открытой базы с примененными миграциями
func NewSQLiteStore(db *sql.DB) *SQLiteStore {
	return &SQLiteStore{
		db:      db,
		builder: sq.StatementBuilder.PlaceholderFormat(sq.Question),
	}
}

func (s *SQLiteStore) CreateLink(ctx context.Context, link model.ShortLink) error {
	query := `
		INSERT INTO short_links (id, owner_id, short_code, original_url, type, deleted, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`

	_, err := s.db.ExecContext(ctx, query,
		link.ID.String(),
		link.OwnerID.String(),
		string(link.ShortCode),
		string(link.OriginalURL),
		string(link.Visibility),
		link.Deleted,
		link.CreatedAt.UnixNano(),
	)
	if err != nil {
		if isConstraintError(err, "UNIQUE") {
			return fmt.Errorf("short code %s: %w", link.ShortCode, ErrAlreadyExists)
		}
		return fmt.Errorf("failed to insert link: %w", err)
	}

	return nil
}

func (s *SQLiteStore) GetLinkByID(ctx context.Context, id uuid.UUID) (model.ShortLink, error) {
	query := `SELECT ` + linkColumns + ` FROM short_links WHERE id = ?`

	link, err := scanSQLiteLink(s.db.QueryRowContext(ctx, query, id.String()))
	if errors.Is(err, sql.ErrNoRows) {
		return model.ShortLink{}, fmt.Errorf("link %s: %w", id, ErrNotFound)
	}
	if err != nil {
		return model.ShortLink{}, fmt.Errorf("failed to read link: %w", err)
	}

	return link, nil
}

func (s *SQLiteStore) GetLinkByCode(ctx context.Context, code model.Code) (model.ShortLink, error) {
	query := `SELECT ` + linkColumns + ` FROM short_links WHERE short_code = ?`

	link, err := scanSQLiteLink(s.db.QueryRowContext(ctx, query, string(code)))
	if errors.Is(err, sql.ErrNoRows) {
		return model.ShortLink{}, fmt.Errorf("short code %s: %w", code, ErrNotFound)
	}
	if err != nil {
		return model.ShortLink{}, fmt.Errorf("failed to read link: %w", err)
	}

	return link, nil
}

func (s *SQLiteStore) ListLinksByOwner(ctx context.Context, ownerID uuid.UUID) ([]model.ShortLink, error) {
	query := `SELECT ` + linkColumns + ` FROM short_links WHERE owner_id = ? ORDER BY created_at, id`

	rows, err := s.db.QueryContext(ctx, query, ownerID.String())
	if err != nil {
		return nil, fmt.Errorf("failed to query links: %w", err)
	}
	defer rows.Close()

	var links []model.ShortLink
	for rows.Next() {
		link, err := scanSQLiteLink(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan link: %w", err)
		}
		links = append(links, link)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate links: %w", err)
	}

	return links, nil
}

// UpdateLinkState обновляет запись и перечитывает ее в одной транзакции
func (s *SQLiteStore) UpdateLinkState(ctx context.Context, id uuid.UUID, state model.LinkState) (model.ShortLink, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return model.ShortLink{}, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	result, err := tx.ExecContext(ctx,
		`UPDATE short_links SET type = ?, deleted = ? WHERE id = ?`,
		string(state.Visibility), state.Deleted, id.String(),
	)
	if err != nil {
		return model.ShortLink{}, fmt.Errorf("failed to update link: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return model.ShortLink{}, fmt.Errorf("failed to read affected rows: %w", err)
	}
	if affected == 0 {
		return model.ShortLink{}, fmt.Errorf("link %s: %w", id, ErrNotFound)
	}

	link, err := scanSQLiteLink(tx.QueryRowContext(ctx,
		`SELECT `+linkColumns+` FROM short_links WHERE id = ?`, id.String()))
	if err != nil {
		return model.ShortLink{}, fmt.Errorf("failed to read updated link: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return model.ShortLink{}, fmt.Errorf("failed to commit transaction: %w", err)
	}

	return link, nil
}

func (s *SQLiteStore) CreateClick(ctx context.Context, click model.ClickEvent) error {
	var userID sql.NullString
	if click.UserID != nil {
		userID = sql.NullString{String: click.UserID.String(), Valid: true}
	}

	_, err := s.db.ExecContext(ctx,
		`INSERT INTO click_events (id, link_id, user_id, access_time) VALUES (?, ?, ?, ?)`,
		click.ID.String(), click.LinkID.String(), userID, click.AccessTime.UnixNano(),
	)
	if err != nil {
		if isConstraintError(err, "FOREIGN KEY") {
			return fmt.Errorf("link %s: %w", click.LinkID, ErrNotFound)
		}
		return fmt.Errorf("failed to insert click: %w", err)
	}

	return nil
}

func (s *SQLiteStore) CountClicksByLinkID(ctx context.Context, linkID uuid.UUID) (int64, error) {
	var count int64

	err := s.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM click_events WHERE link_id = ?`, linkID.String(),
	).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count clicks: %w", err)
	}

	return count, nil
}

func (s *SQLiteStore) ListClicksByLinkID(ctx context.Context, linkID uuid.UUID, page model.Page) ([]model.ClickEvent, error) {
	query, args, err := clicksPageQuery(s.builder, linkID, page)
	if err != nil {
		return nil, fmt.Errorf("failed to build clicks query: %w", err)
	}
	// SQLite не допускает OFFSET без LIMIT
	if page.Limit <= 0 && page.Offset > 0 {
		query = strings.Replace(query, " OFFSET ", " LIMIT -1 OFFSET ", 1)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query clicks: %w", err)
	}
	defer rows.Close()

	var events []model.ClickEvent
	for rows.Next() {
		var (
			click      model.ClickEvent
			userID     uuid.NullUUID
			accessTime int64
		)
		if err := rows.Scan(&click.ID, &click.LinkID, &userID, &accessTime); err != nil {
			return nil, fmt.Errorf("failed to scan click: %w", err)
		}
		if userID.Valid {
			click.UserID = &userID.UUID
		}
		click.AccessTime = time.Unix(0, accessTime).UTC()
		events = append(events, click)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate clicks: %w", err)
	}

	return events, nil
}

func (s *SQLiteStore) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

func scanSQLiteLink(row interface{ Scan(dest ...any) error }) (model.ShortLink, error) {
	var (
		link       model.ShortLink
		code       string
		url        string
		visibility string
		createdAt  int64
	)

	err := row.Scan(&link.ID, &link.OwnerID, &code, &url, &visibility, &link.Deleted, &createdAt)
	if err != nil {
		return model.ShortLink{}, err
	}

	link.ShortCode = model.Code(code)
	link.OriginalURL = model.URL(url)
	link.Visibility = model.Visibility(visibility)
	link.CreatedAt = time.Unix(0, createdAt).UTC()

	return link, nil
}

// isConstraintError распознает нарушение ограничения по тексту ошибки.
// modernc и libSQL возвращают разные типы ошибок, но общий текст.
func isConstraintError(err error, constraint string) bool {
	msg := err.Error()
	return strings.Contains(msg, "constraint failed") && strings.Contains(msg, constraint)
}
