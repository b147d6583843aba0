package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"promo-boost/internal/core/domain"
	"promo-boost/internal/core/port"
)

const campaignColumns = `
    id,
    school_id,
    school_type,
    ad_type,
    ad_content,
    COALESCE(ad_file_url, ''),
    target_audience,
    reach_count,
    duration_days,
    pricing::text,
    pricing_policy,
    status,
    payment_status,
    COALESCE(payment_reference, ''),
    impressions,
    clicks,
    COALESCE(reviewed_by, ''),
    reviewed_at,
    COALESCE(admin_notes, ''),
    expires_at,
    created_at,
    updated_at`

// CampaignRepository implements port.CampaignRepository using pgxpool for
// PostgreSQL. Pricing is written once on insert; no statement here updates
// it and the schema rejects any attempt to.
type CampaignRepository struct {
	pool *pgxpool.Pool
}

var _ port.CampaignRepository = (*CampaignRepository)(nil)

// NewCampaignRepository returns a new repository instance.
func NewCampaignRepository(pool *pgxpool.Pool) *CampaignRepository {
	return &CampaignRepository{pool: pool}
}

// CreateCampaign inserts a campaign together with its final pricing.
func (r *CampaignRepository) CreateCampaign(ctx context.Context, c *domain.Campaign) error {
	audience, err := json.Marshal(c.TargetAudience)
	if err != nil {
		return err
	}
	_, err = r.pool.Exec(ctx, `
        INSERT INTO directory_ads
            (id, school_id, school_type, ad_type, ad_content, ad_file_url, target_audience,
             reach_count, duration_days, pricing, pricing_policy, status, payment_status,
             created_at, updated_at)
        VALUES ($1,$2,$3,$4,$5,NULLIF($6,''),$7,$8,$9,$10::numeric,$11,$12,$13,$14,$15)`,
		c.ID, c.SchoolID, c.SchoolType, c.AdType, c.Content, c.FileURL, audience,
		c.ReachCount, c.DurationDays, c.Pricing.String(), c.PricingPolicy,
		string(c.Status), string(c.PaymentStatus), c.CreatedAt, c.UpdatedAt)
	return err
}

// GetCampaign returns a campaign by id.
func (r *CampaignRepository) GetCampaign(ctx context.Context, id uuid.UUID) (*domain.Campaign, error) {
	rows, err := r.pool.Query(ctx, `SELECT `+campaignColumns+` FROM directory_ads WHERE id = $1`, id)
	if err != nil {
		return nil, err
	}
	c, err := pgx.CollectExactlyOneRow(rows, scanCampaign)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrCampaignNotFound
	}
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// ListCampaigns returns campaigns matching the filter, newest first.
func (r *CampaignRepository) ListCampaigns(ctx context.Context, filter port.CampaignFilter) ([]domain.Campaign, error) {
	var (
		where []string
		args  []any
	)
	if filter.SchoolID != nil {
		args = append(args, *filter.SchoolID)
		where = append(where, fmt.Sprintf("school_id = $%d", len(args)))
	}
	if filter.Status != "" {
		args = append(args, string(filter.Status))
		where = append(where, fmt.Sprintf("status = $%d", len(args)))
	}
	query := `SELECT ` + campaignColumns + ` FROM directory_ads`
	if len(where) > 0 {
		query += ` WHERE ` + strings.Join(where, " AND ")
	}
	query += ` ORDER BY created_at DESC`
	if filter.Limit > 0 {
		args = append(args, filter.Limit)
		query += fmt.Sprintf(" LIMIT $%d", len(args))
	}

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, scanCampaign)
}

// UpdateReview stores the decision if the campaign is still pending.
func (r *CampaignRepository) UpdateReview(ctx context.Context, id uuid.UUID, review port.Review) error {
	tag, err := r.pool.Exec(ctx, `
        UPDATE directory_ads
           SET status = $2, reviewed_by = $3, admin_notes = NULLIF($4,''), reviewed_at = $5, updated_at = $5
         WHERE id = $1 AND status = 'pending'`,
		id, string(review.Status), review.ReviewedBy, review.Notes, review.ReviewedAt)
	if err != nil {
		return err
	}
	return r.checkAffected(ctx, id, tag.RowsAffected())
}

// UpdatePayment stores the payment outcome if payment is still pending.
func (r *CampaignRepository) UpdatePayment(ctx context.Context, id uuid.UUID, payment port.Payment) error {
	tag, err := r.pool.Exec(ctx, `
        UPDATE directory_ads
           SET payment_status = $2, payment_reference = NULLIF($3,''), updated_at = now()
         WHERE id = $1 AND payment_status = 'pending' AND status <> 'rejected'`,
		id, string(payment.Status), payment.Reference)
	if err != nil {
		return err
	}
	return r.checkAffected(ctx, id, tag.RowsAffected())
}

// Activate starts serving an approved, paid campaign.
func (r *CampaignRepository) Activate(ctx context.Context, id uuid.UUID, expiresAt time.Time) error {
	tag, err := r.pool.Exec(ctx, `
        UPDATE directory_ads
           SET status = 'active', expires_at = $2, updated_at = now()
         WHERE id = $1 AND status = 'approved' AND payment_status = 'paid'`,
		id, expiresAt)
	if err != nil {
		return err
	}
	return r.checkAffected(ctx, id, tag.RowsAffected())
}

// CompleteExpired closes active campaigns whose window ended before now.
func (r *CampaignRepository) CompleteExpired(ctx context.Context, now time.Time) (int64, error) {
	tag, err := r.pool.Exec(ctx, `
        UPDATE directory_ads
           SET status = 'completed', updated_at = $1
         WHERE status = 'active' AND expires_at <= $1`, now)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

// ListServing returns active, unexpired campaigns.
func (r *CampaignRepository) ListServing(ctx context.Context, now time.Time, limit int) ([]domain.Campaign, error) {
	rows, err := r.pool.Query(ctx, `SELECT `+campaignColumns+`
        FROM directory_ads
        WHERE status = 'active' AND expires_at > $1
        ORDER BY created_at DESC
        LIMIT $2`, now, limit)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, scanCampaign)
}

// IncrementEvent bumps a counter on a serving campaign in a single
// statement so concurrent events never lose updates.
func (r *CampaignRepository) IncrementEvent(ctx context.Context, id uuid.UUID, event port.EventKind, now time.Time) error {
	var column string
	switch event {
	case port.EventImpression:
		column = "impressions"
	case port.EventClick:
		column = "clicks"
	default:
		return fmt.Errorf("unknown event %q", event)
	}
	tag, err := r.pool.Exec(ctx, fmt.Sprintf(`
        UPDATE directory_ads SET %[1]s = %[1]s + 1
         WHERE id = $1 AND status = 'active' AND expires_at > $2`, column), id, now)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrCampaignNotFound
	}
	return nil
}

// GetStats aggregates status counts, events and paid revenue.
func (r *CampaignRepository) GetStats(ctx context.Context) (*port.StatsResp, error) {
	resp := &port.StatsResp{ByStatus: make(map[domain.CampaignStatus]int64)}

	rows, err := r.pool.Query(ctx, `SELECT status, count(*) FROM directory_ads GROUP BY status`)
	if err != nil {
		return nil, err
	}
	var (
		status string
		count  int64
	)
	_, err = pgx.ForEachRow(rows, []any{&status, &count}, func() error {
		resp.ByStatus[domain.CampaignStatus(status)] = count
		return nil
	})
	if err != nil {
		return nil, err
	}

	var revenue string
	err = r.pool.QueryRow(ctx, `
        SELECT COALESCE(sum(impressions),0)::bigint,
               COALESCE(sum(clicks),0)::bigint,
               COALESCE(sum(pricing) FILTER (WHERE payment_status = 'paid'), 0)::text
          FROM directory_ads`).Scan(&resp.Impressions, &resp.Clicks, &revenue)
	if err != nil {
		return nil, err
	}
	if resp.Revenue, err = decimal.NewFromString(revenue); err != nil {
		return nil, err
	}
	return resp, nil
}

// checkAffected turns a zero-row conditional update into the matching
// domain error.
func (r *CampaignRepository) checkAffected(ctx context.Context, id uuid.UUID, affected int64) error {
	if affected > 0 {
		return nil
	}
	var exists bool
	if err := r.pool.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM directory_ads WHERE id = $1)`, id).Scan(&exists); err != nil {
		return err
	}
	if !exists {
		return domain.ErrCampaignNotFound
	}
	return domain.ErrInvalidTransition
}

func scanCampaign(row pgx.CollectableRow) (domain.Campaign, error) {
	var (
		c        domain.Campaign
		audience []byte
		pricing  string
		status   string
		payment  string
	)
	err := row.Scan(
		&c.ID,
		&c.SchoolID,
		&c.SchoolType,
		&c.AdType,
		&c.Content,
		&c.FileURL,
		&audience,
		&c.ReachCount,
		&c.DurationDays,
		&pricing,
		&c.PricingPolicy,
		&status,
		&payment,
		&c.PaymentReference,
		&c.Impressions,
		&c.Clicks,
		&c.ReviewedBy,
		&c.ReviewedAt,
		&c.AdminNotes,
		&c.ExpiresAt,
		&c.CreatedAt,
		&c.UpdatedAt,
	)
	if err != nil {
		return c, err
	}
	if err = json.Unmarshal(audience, &c.TargetAudience); err != nil {
		return c, fmt.Errorf("decode target_audience of %s: %w", c.ID, err)
	}
	if c.Pricing, err = decimal.NewFromString(pricing); err != nil {
		return c, fmt.Errorf("decode pricing of %s: %w", c.ID, err)
	}
	c.Status = domain.CampaignStatus(status)
	c.PaymentStatus = domain.PaymentStatus(payment)
	return c, nil
}
