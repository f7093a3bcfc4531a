package database

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/skillbridge/service-core/internal/config"
	"github.com/skillbridge/service-core/internal/domain"
)

type Repo struct {
	pool   *pgxpool.Pool
	tables config.Tables
}

func New(pool *pgxpool.Pool, t config.Tables) *Repo { return &Repo{pool: pool, tables: t} }

func Connect(ctx context.Context, dsn string) *pgxpool.Pool {
	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		panic(err)
	}
	if err := pool.Ping(ctx); err != nil {
		panic(err)
	}
	return pool
}

func (r *Repo) qt(tbl string) string { return fmt.Sprintf(`"%s"."%s"`, r.tables.Schema, tbl) }

// ActiveListings returns active listings matching the filter, with review
// aggregates folded in. The text filter is a coarse ILIKE match, the
// relevance ordering happens above this layer.
func (r *Repo) ActiveListings(ctx context.Context, f domain.Filter) ([]domain.Listing, error) {
	where := []string{"l.active"}
	args := []any{}

	arg := func(v any) string {
		args = append(args, v)
		return fmt.Sprintf("$%d", len(args))
	}

	if f.Category != "" {
		where = append(where, "l.category = "+arg(f.Category))
	}
	if f.Tag != "" {
		where = append(where, arg(f.Tag)+" = ANY(l.tags)")
	}
	if f.Query != "" {
		p := arg("%" + f.Query + "%")
		where = append(where, fmt.Sprintf("(l.title ILIKE %s OR l.description ILIKE %s OR %s ILIKE ANY(l.tags))", p, p, arg(f.Query)))
	}
	if f.MinPrice > 0 {
		where = append(where, "l.price >= "+arg(f.MinPrice))
	}
	if f.MaxPrice > 0 {
		where = append(where, "l.price <= "+arg(f.MaxPrice))
	}

	q := fmt.Sprintf(`
		SELECT l.id, l.title, l.description, l.price, l.category, l.tags,
		       COALESCE(AVG(rv.rating), 0), COUNT(rv.rating),
		       l.provider_id, l.created_at, l.active
		FROM %s l
		LEFT JOIN %s rv ON rv.listing_id = l.id
		WHERE %s
		GROUP BY l.id
		ORDER BY l.created_at DESC
	`, r.qt(r.tables.Listing), r.qt(r.tables.Review), strings.Join(where, " AND "))

	rows, err := r.pool.Query(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.Listing
	for rows.Next() {
		var l domain.Listing
		if err := rows.Scan(
			&l.ID, &l.Title, &l.Description, &l.Price, &l.Category, &l.Tags,
			&l.RatingAvg, &l.RatingCount, &l.ProviderID, &l.CreatedAt, &l.Active,
		); err != nil {
			return nil, err
		}
		out = append(out, l)
	}
	return out, rows.Err()
}

func (r *Repo) GetListing(ctx context.Context, id string) (*domain.Listing, error) {
	var l domain.Listing
	err := r.pool.QueryRow(ctx, fmt.Sprintf(`
		SELECT l.id, l.title, l.description, l.price, l.category, l.tags,
		       COALESCE(AVG(rv.rating), 0), COUNT(rv.rating),
		       l.provider_id, l.created_at, l.active
		FROM %s l
		LEFT JOIN %s rv ON rv.listing_id = l.id
		WHERE l.id = $1
		GROUP BY l.id
	`, r.qt(r.tables.Listing), r.qt(r.tables.Review)), id).Scan(
		&l.ID, &l.Title, &l.Description, &l.Price, &l.Category, &l.Tags,
		&l.RatingAvg, &l.RatingCount, &l.ProviderID, &l.CreatedAt, &l.Active,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &l, nil
}

func (r *Repo) InsertOrder(ctx context.Context, o *domain.Order) error {
	ct, err := r.pool.Exec(ctx, fmt.Sprintf(`
		INSERT INTO %s (id, listing_id, client_id, provider_id, status, rush, created_at)
		VALUES ($1,$2,$3,$4,$5,$6,$7)
		ON CONFLICT (id) DO NOTHING
	`, r.qt(r.tables.Order)),
		o.ID, o.ListingID, o.ClientID, o.ProviderID, o.Status, o.Rush, o.CreatedAt,
	)
	if err != nil {
		return err
	}
	if ct.RowsAffected() == 0 {
		return domain.ErrDuplicateOrder
	}
	return nil
}

func (r *Repo) GetOrder(ctx context.Context, id string) (*domain.Order, error) {
	var o domain.Order
	err := r.pool.QueryRow(ctx, fmt.Sprintf(`
		SELECT id, listing_id, client_id, provider_id, status, rush, created_at
		FROM %s WHERE id = $1
	`, r.qt(r.tables.Order)), id).Scan(
		&o.ID, &o.ListingID, &o.ClientID, &o.ProviderID, &o.Status, &o.Rush, &o.CreatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &o, nil
}

func (r *Repo) UpdateOrderStatus(ctx context.Context, id string, status domain.Status) error {
	ct, err := r.pool.Exec(ctx, fmt.Sprintf(`
		UPDATE %s SET status = $2 WHERE id = $1
	`, r.qt(r.tables.Order)), id, status)
	if err != nil {
		return err
	}
	if ct.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// OrdersByClient returns a client's order history, newest first.
func (r *Repo) OrdersByClient(ctx context.Context, clientID string) ([]domain.Order, error) {
	return r.ordersBy(ctx, "client_id", clientID)
}

// OrdersByProvider returns the orders addressed to a provider, newest first.
func (r *Repo) OrdersByProvider(ctx context.Context, providerID string) ([]domain.Order, error) {
	return r.ordersBy(ctx, "provider_id", providerID)
}

func (r *Repo) ordersBy(ctx context.Context, column, value string) ([]domain.Order, error) {
	rows, err := r.pool.Query(ctx, fmt.Sprintf(`
		SELECT id, listing_id, client_id, provider_id, status, rush, created_at
		FROM %s
		WHERE %s = $1
		ORDER BY created_at DESC
	`, r.qt(r.tables.Order), column), value)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.Order
	for rows.Next() {
		var o domain.Order
		if err := rows.Scan(
			&o.ID, &o.ListingID, &o.ClientID, &o.ProviderID, &o.Status, &o.Rush, &o.CreatedAt,
		); err != nil {
			return nil, err
		}
		out = append(out, o)
	}
	return out, rows.Err()
}

// PendingOrders returns the orders still waiting for a provider, oldest
// first, so the dispatch queue can be rebuilt in arrival order.
func (r *Repo) PendingOrders(ctx context.Context) ([]domain.Order, error) {
	rows, err := r.pool.Query(ctx, fmt.Sprintf(`
		SELECT id, listing_id, client_id, provider_id, status, rush, created_at
		FROM %s
		WHERE status = 'pending'
		ORDER BY created_at ASC
	`, r.qt(r.tables.Order)))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.Order
	for rows.Next() {
		var o domain.Order
		if err := rows.Scan(
			&o.ID, &o.ListingID, &o.ClientID, &o.ProviderID, &o.Status, &o.Rush, &o.CreatedAt,
		); err != nil {
			return nil, err
		}
		out = append(out, o)
	}
	return out, rows.Err()
}
