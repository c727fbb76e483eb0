package store

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/avc-dev/shortlinks/internal/config/db"
	"github.com/avc-dev/shortlinks/internal/model"
	"github.com/google/uuid"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

const linkColumns = "id, owner_id, short_code, original_url, type, deleted, created_at"

// DatabaseStore реализует хранилище поверх PostgreSQL
type DatabaseStore struct {
	pool    *pgxpool.Pool
	builder sq.StatementBuilderType
}

// NewDatabaseStore создает хранилище поверх пула с примененными миграциями
func NewDatabaseStore(database *db.PostgresDatabase) *DatabaseStore {
	return &DatabaseStore{
		pool:    database.Pool,
		builder: sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}
}

// CreateLink вставляет ссылку одним запросом.
// Нарушение уникальности short_code возвращается как ErrAlreadyExists.
func (ds *DatabaseStore) CreateLink(ctx context.Context, link model.ShortLink) error {
	query := `
		INSERT INTO short_links (id, owner_id, short_code, original_url, type, deleted, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`

	_, err := ds.pool.Exec(ctx, query,
		link.ID,
		link.OwnerID,
		string(link.ShortCode),
		string(link.OriginalURL),
		string(link.Visibility),
		link.Deleted,
		link.CreatedAt,
	)
	if err != nil {
		if isPgError(err, pgerrcode.UniqueViolation) {
			return fmt.Errorf("short code %s: %w", link.ShortCode, ErrAlreadyExists)
		}
		return fmt.Errorf("failed to insert link: %w", err)
	}

	return nil
}

func (ds *DatabaseStore) GetLinkByID(ctx context.Context, id uuid.UUID) (model.ShortLink, error) {
	query := `SELECT ` + linkColumns + ` FROM short_links WHERE id = $1`

	link, err := scanLink(ds.pool.QueryRow(ctx, query, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return model.ShortLink{}, fmt.Errorf("link %s: %w", id, ErrNotFound)
	}
	if err != nil {
		return model.ShortLink{}, fmt.Errorf("failed to read link: %w", err)
	}

	return link, nil
}

func (ds *DatabaseStore) GetLinkByCode(ctx context.Context, code model.Code) (model.ShortLink, error) {
	query := `SELECT ` + linkColumns + ` FROM short_links WHERE short_code = $1`

	link, err := scanLink(ds.pool.QueryRow(ctx, query, string(code)))
	if errors.Is(err, pgx.ErrNoRows) {
		return model.ShortLink{}, fmt.Errorf("short code %s: %w", code, ErrNotFound)
	}
	if err != nil {
		return model.ShortLink{}, fmt.Errorf("failed to read link: %w", err)
	}

	return link, nil
}

func (ds *DatabaseStore) ListLinksByOwner(ctx context.Context, ownerID uuid.UUID) ([]model.ShortLink, error) {
	query := `SELECT ` + linkColumns + ` FROM short_links WHERE owner_id = $1 ORDER BY created_at, id`

	rows, err := ds.pool.Query(ctx, query, ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to query links: %w", err)
	}
	defer rows.Close()

	var links []model.ShortLink
	for rows.Next() {
		link, err := scanLink(rows)
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

// UpdateLinkState заменяет type и deleted одним UPDATE и возвращает обновленную запись
func (ds *DatabaseStore) UpdateLinkState(ctx context.Context, id uuid.UUID, state model.LinkState) (model.ShortLink, error) {
	query := `
		UPDATE short_links SET type = $2, deleted = $3
		WHERE id = $1
		RETURNING ` + linkColumns

	link, err := scanLink(ds.pool.QueryRow(ctx, query, id, string(state.Visibility), state.Deleted))
	if errors.Is(err, pgx.ErrNoRows) {
		return model.ShortLink{}, fmt.Errorf("link %s: %w", id, ErrNotFound)
	}
	if err != nil {
		return model.ShortLink{}, fmt.Errorf("failed to update link: %w", err)
	}

	return link, nil
}

func (ds *DatabaseStore) CreateClick(ctx context.Context, click model.ClickEvent) error {
	query := `
		INSERT INTO click_events (id, link_id, user_id, access_time)
		VALUES ($1, $2, $3, $4)
	`

	_, err := ds.pool.Exec(ctx, query, click.ID, click.LinkID, click.UserID, click.AccessTime)
	if err != nil {
		if isPgError(err, pgerrcode.ForeignKeyViolation) {
			return fmt.Errorf("link %s: %w", click.LinkID, ErrNotFound)
		}
		return fmt.Errorf("failed to insert click: %w", err)
	}

	return nil
}

func (ds *DatabaseStore) CountClicksByLinkID(ctx context.Context, linkID uuid.UUID) (int64, error) {
	var count int64

	err := ds.pool.QueryRow(ctx, `SELECT COUNT(*) FROM click_events WHERE link_id = $1`, linkID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count clicks: %w", err)
	}

	return count, nil
}

// ListClicksByLinkID возвращает переходы с позициями [Offset, Limit) по возрастанию (access_time, id)
func (ds *DatabaseStore) ListClicksByLinkID(ctx context.Context, linkID uuid.UUID, page model.Page) ([]model.ClickEvent, error) {
	query, args, err := clicksPageQuery(ds.builder, linkID, page)
	if err != nil {
		return nil, fmt.Errorf("failed to build clicks query: %w", err)
	}

	rows, err := ds.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query clicks: %w", err)
	}
	defer rows.Close()

	var events []model.ClickEvent
	for rows.Next() {
		var click model.ClickEvent
		if err := rows.Scan(&click.ID, &click.LinkID, &click.UserID, &click.AccessTime); err != nil {
			return nil, fmt.Errorf("failed to scan click: %w", err)
		}
		events = append(events, click)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate clicks: %w", err)
	}

	return events, nil
}

func (ds *DatabaseStore) Ping(ctx context.Context) error {
	return ds.pool.Ping(ctx)
}

// clicksPageQuery строит запрос позиций [Offset, Limit) переходов для указанного диалекта
func clicksPageQuery(builder sq.StatementBuilderType, linkID uuid.UUID, page model.Page) (string, []any, error) {
	query := builder.
		Select("id", "link_id", "user_id", "access_time").
		From("click_events").
		Where(sq.Eq{"link_id": linkID}).
		OrderBy("access_time ASC", "id ASC")

	if page.Limit > 0 {
		query = query.Limit(uint64(page.Size()))
	}
	if page.Offset > 0 {
		query = query.Offset(uint64(page.Offset))
	}

	return query.ToSql()
}

func scanLink(row pgx.Row) (model.ShortLink, error) {
	var (
		link       model.ShortLink
		code       string
		url        string
		visibility string
	)

	err := row.Scan(&link.ID, &link.OwnerID, &code, &url, &visibility, &link.Deleted, &link.CreatedAt)
	if err != nil {
		return model.ShortLink{}, err
	}

	link.ShortCode = model.Code(code)
	link.OriginalURL = model.URL(url)
	link.Visibility = model.Visibility(visibility)

	return link, nil
}

func isPgError(err error, code string) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == code
}
