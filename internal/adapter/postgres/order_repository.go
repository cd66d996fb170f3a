package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"civic-orders/internal/core/domain"
	"civic-orders/internal/core/port"
)

// OrderRepository implements port.OrderRepository using pgxpool. An order,
// its line items and its deliverables are mutated inside one transaction
// per logical operation, with the order row locked first so concurrent
// submissions against the same order serialize.
type OrderRepository struct {
	pool *pgxpool.Pool
}

// NewOrderRepository returns a new repository instance.
func NewOrderRepository(pool *pgxpool.Pool) *OrderRepository {
	return &OrderRepository{pool: pool}
}

// storeErr classifies an unexpected driver error as a dependency failure.
func storeErr(err error) error {
	return fmt.Errorf("%w: %w", domain.ErrDependency, err)
}

// finishTx commits tx when err is nil and rolls back otherwise. A failed
// commit wrote nothing, so it surfaces as a dependency failure rather
// than success. Callers assign the result to a named error return.
func finishTx(ctx context.Context, tx pgx.Tx, err error) error {
	if err != nil {
		_ = tx.Rollback(ctx)
		return err
	}
	if cerr := tx.Commit(ctx); cerr != nil {
		return storeErr(cerr)
	}
	return nil
}

// GetCampaign returns a campaign by id.
func (r *OrderRepository) GetCampaign(ctx context.Context, id uuid.UUID) (*domain.Campaign, error) {
	var c domain.Campaign
	err := r.pool.QueryRow(ctx, `SELECT id, advertiser_id, name, source_category, budget_min, budget_max,
		start_date, end_date, status, created_at, updated_at FROM campaigns WHERE id = $1`, id).
		Scan(&c.ID, &c.AdvertiserID, &c.Name, &c.SourceCategory, &c.BudgetMin, &c.BudgetMax,
			&c.StartDate, &c.EndDate, &c.Status, &c.CreatedAt, &c.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("%w: campaign %s", domain.ErrNotFound, id)
	}
	if err != nil {
		return nil, storeErr(err)
	}
	return &c, nil
}

// PublisherExists reports whether a publisher id resolves.
func (r *OrderRepository) PublisherExists(ctx context.Context, id uuid.UUID) (bool, error) {
	var exists bool
	if err := r.pool.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM publishers WHERE id = $1)`, id).Scan(&exists); err != nil {
		return false, storeErr(err)
	}
	return exists, nil
}

// GetMatch returns a campaign match by id.
func (r *OrderRepository) GetMatch(ctx context.Context, id uuid.UUID) (*domain.CampaignMatch, error) {
	var m domain.CampaignMatch
	err := r.pool.QueryRow(ctx, `SELECT id, campaign_id, publisher_id, is_selected, created_at
		FROM campaign_matches WHERE id = $1`, id).
		Scan(&m.ID, &m.CampaignID, &m.PublisherID, &m.IsSelected, &m.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("%w: match %s", domain.ErrNotFound, id)
	}
	if err != nil {
		return nil, storeErr(err)
	}
	return &m, nil
}

// CreateOrder persists the order record set atomically. The match, when
// present, is claimed first with a conditional update so a second order
// against an already selected match fails with a conflict before anything
// is written.
func (r *OrderRepository) CreateOrder(ctx context.Context, rec port.NewOrder) (err error) {
	tx, err := r.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return storeErr(err)
	}
	defer func() { err = finishTx(ctx, tx, err) }()

	o := rec.Order
	if o.MatchID != nil {
		res, execErr := tx.Exec(ctx,
			`UPDATE campaign_matches SET is_selected = TRUE WHERE id = $1 AND NOT is_selected`, *o.MatchID)
		if execErr != nil {
			err = storeErr(execErr)
			return err
		}
		if res.RowsAffected() == 0 {
			var exists bool
			if scanErr := tx.QueryRow(ctx,
				`SELECT EXISTS (SELECT 1 FROM campaign_matches WHERE id = $1)`, *o.MatchID).Scan(&exists); scanErr != nil {
				err = storeErr(scanErr)
				return err
			}
			if exists {
				err = fmt.Errorf("%w: match %s is already selected", domain.ErrConflict, *o.MatchID)
			} else {
				err = fmt.Errorf("%w: match %s", domain.ErrNotFound, *o.MatchID)
			}
			return err
		}
	}

	_, err = tx.Exec(ctx, `INSERT INTO orders
		(id, campaign_id, publisher_id, match_id, status, procurement_status, po_number,
		 subtotal, platform_fee, total, delivery_deadline, notes, created_at, updated_at)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14)`,
		o.ID, o.CampaignID, o.PublisherID, o.MatchID, o.Status, o.ProcurementStatus, o.PONumber,
		o.Subtotal, o.PlatformFee, o.Total, o.DeliveryDeadline, o.Notes, o.CreatedAt, o.UpdatedAt)
	if err != nil {
		err = storeErr(err)
		return err
	}

	batch := &pgx.Batch{}
	for _, item := range rec.LineItems {
		batch.Queue(`INSERT INTO order_line_items
			(id, order_id, deliverable_type, platform, quantity, unit_price, total_price, description, created_at)
			VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9)`,
			item.ID, item.OrderID, item.DeliverableType, item.Platform,
			item.Quantity, item.UnitPrice, item.TotalPrice, item.Description, item.CreatedAt)
	}
	for _, d := range rec.Deliverables {
		batch.Queue(`INSERT INTO deliverables
			(id, order_id, line_item_id, platform, deliverable_type, status, created_at, updated_at)
			VALUES ($1,$2,$3,$4,$5,$6,$7,$8)`,
			d.ID, d.OrderID, d.LineItemID, d.Platform, d.DeliverableType, d.Status, d.CreatedAt, d.UpdatedAt)
	}
	batch.Queue(`INSERT INTO order_status_history (order_id, from_status, to_status, changed_at, changed_by, notes)
		VALUES ($1,$2,$3,$4,$5,$6)`,
		o.ID, domain.OrderDraft, o.Status, o.CreatedAt, "system", "order created")
	if err = tx.SendBatch(ctx, batch).Close(); err != nil {
		err = storeErr(err)
		return err
	}
	return err
}

// GetOrder returns an order by id.
func (r *OrderRepository) GetOrder(ctx context.Context, id uuid.UUID) (*domain.Order, error) {
	o, err := scanOrder(r.pool.QueryRow(ctx, `SELECT id, campaign_id, publisher_id, match_id, status,
		procurement_status, po_number, subtotal, platform_fee, total, delivery_deadline, notes,
		created_at, updated_at FROM orders WHERE id = $1`, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("%w: order %s", domain.ErrNotFound, id)
	}
	if err != nil {
		return nil, storeErr(err)
	}
	return o, nil
}

// ListLineItems returns an order's line items in creation order.
func (r *OrderRepository) ListLineItems(ctx context.Context, orderID uuid.UUID) ([]domain.OrderLineItem, error) {
	rows, err := r.pool.Query(ctx, `SELECT id, order_id, deliverable_type, platform, quantity,
		unit_price, total_price, description, created_at
		FROM order_line_items WHERE order_id = $1 ORDER BY created_at, id`, orderID)
	if err != nil {
		return nil, storeErr(err)
	}
	items, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.OrderLineItem, error) {
		var it domain.OrderLineItem
		err := row.Scan(&it.ID, &it.OrderID, &it.DeliverableType, &it.Platform, &it.Quantity,
			&it.UnitPrice, &it.TotalPrice, &it.Description, &it.CreatedAt)
		return it, err
	})
	if err != nil {
		return nil, storeErr(err)
	}
	return items, nil
}

// ListDeliverables returns an order's deliverables in creation order.
func (r *OrderRepository) ListDeliverables(ctx context.Context, orderID uuid.UUID) ([]domain.Deliverable, error) {
	rows, err := r.pool.Query(ctx, deliverableColumns+` FROM deliverables WHERE order_id = $1 ORDER BY created_at, id`, orderID)
	if err != nil {
		return nil, storeErr(err)
	}
	deliverables, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Deliverable, error) {
		return scanDeliverableRow(row)
	})
	if err != nil {
		return nil, storeErr(err)
	}
	return deliverables, nil
}

// ListStatusHistory returns the append-only status log for an order.
func (r *OrderRepository) ListStatusHistory(ctx context.Context, orderID uuid.UUID) ([]domain.StatusChange, error) {
	rows, err := r.pool.Query(ctx, `SELECT id, order_id, from_status, to_status, changed_at, changed_by, notes
		FROM order_status_history WHERE order_id = $1 ORDER BY id`, orderID)
	if err != nil {
		return nil, storeErr(err)
	}
	history, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.StatusChange, error) {
		var sc domain.StatusChange
		err := row.Scan(&sc.ID, &sc.OrderID, &sc.FromStatus, &sc.ToStatus, &sc.ChangedAt, &sc.ChangedBy, &sc.Notes)
		return sc, err
	})
	if err != nil {
		return nil, storeErr(err)
	}
	return history, nil
}

// ClaimDeliverable claims the earliest claimable deliverable of the line
// item, marks it submitted and re-evaluates auto-advance, all under a lock
// on the order row. Locking the order first serializes competing
// submissions so the final two cannot both observe "not all submitted" and
// leave the order stuck below delivered.
func (r *OrderRepository) ClaimDeliverable(ctx context.Context, orderID, lineItemID uuid.UUID, sub domain.Submission) (_ *domain.Deliverable, delivered bool, err error) {
	tx, err := r.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return nil, false, storeErr(err)
	}
	defer func() { err = finishTx(ctx, tx, err) }()

	var orderStatus domain.OrderStatus
	err = tx.QueryRow(ctx, `SELECT status FROM orders WHERE id = $1 FOR UPDATE`, orderID).Scan(&orderStatus)
	if errors.Is(err, pgx.ErrNoRows) {
		err = fmt.Errorf("%w: order %s", domain.ErrNotFound, orderID)
		return nil, false, err
	}
	if err != nil {
		err = storeErr(err)
		return nil, false, err
	}

	var itemExists bool
	if err = tx.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM order_line_items WHERE id = $1 AND order_id = $2)`,
		lineItemID, orderID).Scan(&itemExists); err != nil {
		err = storeErr(err)
		return nil, false, err
	}
	if !itemExists {
		err = fmt.Errorf("%w: line item %s on order %s", domain.ErrNotFound, lineItemID, orderID)
		return nil, false, err
	}

	// FIFO: the earliest created claimable unit is consumed first, so
	// partial fulfillment drains the pool deterministically.
	var claimedID uuid.UUID
	err = tx.QueryRow(ctx, `SELECT id FROM deliverables
		WHERE line_item_id = $1 AND status IN ($2, $3)
		ORDER BY created_at, id LIMIT 1 FOR UPDATE`,
		lineItemID, domain.DeliverablePending, domain.DeliverableRevisionRequested).Scan(&claimedID)
	if errors.Is(err, pgx.ErrNoRows) {
		err = fmt.Errorf("%w: every deliverable of line item %s is already submitted or approved",
			domain.ErrConflict, lineItemID)
		return nil, false, err
	}
	if err != nil {
		err = storeErr(err)
		return nil, false, err
	}

	now := time.Now().UTC()
	deliverable, err := scanDeliverableRow(tx.QueryRow(ctx, `UPDATE deliverables SET
			status = $2,
			submission_url = CASE WHEN $3 = '' THEN submission_url ELSE $3 END,
			screenshot_url = CASE WHEN $4 = '' THEN screenshot_url ELSE $4 END,
			submission_notes = CASE WHEN $5 = '' THEN submission_notes ELSE $5 END,
			submitted_at = $6,
			updated_at = $6
		WHERE id = $1
		RETURNING `+deliverableFields,
		claimedID, domain.DeliverableSubmitted, sub.URL, sub.ScreenshotURL, sub.Notes, now))
	if err != nil {
		err = storeErr(err)
		return nil, false, err
	}

	statuses, err := r.deliverableStatuses(ctx, tx, orderID)
	if err != nil {
		return nil, false, err
	}
	if domain.ShouldAutoAdvance(orderStatus, statuses) {
		if _, err = tx.Exec(ctx, `UPDATE orders SET status = $2, updated_at = $3 WHERE id = $1`,
			orderID, domain.OrderDelivered, now); err != nil {
			err = storeErr(err)
			return nil, false, err
		}
		if _, err = tx.Exec(ctx, `INSERT INTO order_status_history
			(order_id, from_status, to_status, changed_at, changed_by, notes)
			VALUES ($1,$2,$3,$4,$5,$6)`,
			orderID, orderStatus, domain.OrderDelivered, now, "system", "all deliverables submitted"); err != nil {
			err = storeErr(err)
			return nil, false, err
		}
		delivered = true
	}
	return &deliverable, delivered, err
}

// ReviewDeliverable applies a review verdict to a submitted deliverable.
// An order already past delivered is left alone: order status is monotonic
// and a post-delivery revision request only moves the deliverable.
func (r *OrderRepository) ReviewDeliverable(ctx context.Context, id uuid.UUID, approve bool, notes string) (_ *domain.Deliverable, err error) {
	tx, err := r.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return nil, storeErr(err)
	}
	defer func() { err = finishTx(ctx, tx, err) }()

	var status domain.DeliverableStatus
	err = tx.QueryRow(ctx, `SELECT status FROM deliverables WHERE id = $1 FOR UPDATE`, id).Scan(&status)
	if errors.Is(err, pgx.ErrNoRows) {
		err = fmt.Errorf("%w: deliverable %s", domain.ErrNotFound, id)
		return nil, err
	}
	if err != nil {
		err = storeErr(err)
		return nil, err
	}
	if status != domain.DeliverableSubmitted {
		err = fmt.Errorf("%w: deliverable %s is %s, only submitted deliverables can be reviewed",
			domain.ErrConflict, id, status)
		return nil, err
	}

	now := time.Now().UTC()
	next := domain.DeliverableRevisionRequested
	var approvedAt *time.Time
	if approve {
		next = domain.DeliverableApproved
		approvedAt = &now
	}
	deliverable, err := scanDeliverableRow(tx.QueryRow(ctx, `UPDATE deliverables SET
			status = $2,
			submission_notes = CASE WHEN $3 = '' THEN submission_notes ELSE $3 END,
			approved_at = COALESCE($4, approved_at),
			updated_at = $5
		WHERE id = $1
		RETURNING `+deliverableFields,
		id, next, notes, approvedAt, now))
	if err != nil {
		err = storeErr(err)
		return nil, err
	}
	return &deliverable, err
}

// AdvanceOrderStatus applies an externally driven transition after
// validating it against the forward graph under a row lock.
func (r *OrderRepository) AdvanceOrderStatus(ctx context.Context, orderID uuid.UUID, to domain.OrderStatus, changedBy, notes string) (_ *domain.Order, err error) {
	tx, err := r.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return nil, storeErr(err)
	}
	defer func() { err = finishTx(ctx, tx, err) }()

	var current domain.OrderStatus
	err = tx.QueryRow(ctx, `SELECT status FROM orders WHERE id = $1 FOR UPDATE`, orderID).Scan(&current)
	if errors.Is(err, pgx.ErrNoRows) {
		err = fmt.Errorf("%w: order %s", domain.ErrNotFound, orderID)
		return nil, err
	}
	if err != nil {
		err = storeErr(err)
		return nil, err
	}
	if !domain.CanTransition(current, to) {
		err = fmt.Errorf("%w: order %s cannot move from %s to %s", domain.ErrConflict, orderID, current, to)
		return nil, err
	}

	now := time.Now().UTC()
	order, err := scanOrder(tx.QueryRow(ctx, `UPDATE orders SET status = $2, updated_at = $3 WHERE id = $1
		RETURNING id, campaign_id, publisher_id, match_id, status, procurement_status, po_number,
			subtotal, platform_fee, total, delivery_deadline, notes, created_at, updated_at`,
		orderID, to, now))
	if err != nil {
		err = storeErr(err)
		return nil, err
	}
	if _, err = tx.Exec(ctx, `INSERT INTO order_status_history
		(order_id, from_status, to_status, changed_at, changed_by, notes)
		VALUES ($1,$2,$3,$4,$5,$6)`,
		orderID, current, to, now, changedBy, notes); err != nil {
		err = storeErr(err)
		return nil, err
	}
	return order, err
}

// UpdateProcurement records paperwork progress on an order.
func (r *OrderRepository) UpdateProcurement(ctx context.Context, orderID uuid.UUID, status domain.ProcurementStatus, poNumber string) (*domain.Order, error) {
	order, err := scanOrder(r.pool.QueryRow(ctx, `UPDATE orders SET
			procurement_status = $2,
			po_number = CASE WHEN $3 = '' THEN po_number ELSE $3 END,
			updated_at = $4
		WHERE id = $1
		RETURNING id, campaign_id, publisher_id, match_id, status, procurement_status, po_number,
			subtotal, platform_fee, total, delivery_deadline, notes, created_at, updated_at`,
		orderID, status, poNumber, time.Now().UTC()))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("%w: order %s", domain.ErrNotFound, orderID)
	}
	if err != nil {
		return nil, storeErr(err)
	}
	return order, nil
}

// CampaignEngagement returns the deriver's inputs for one campaign.
func (r *OrderRepository) CampaignEngagement(ctx context.Context, campaignID uuid.UUID) (*port.CampaignEngagement, error) {
	campaign, err := r.GetCampaign(ctx, campaignID)
	if err != nil {
		return nil, err
	}
	eng := port.CampaignEngagement{Campaign: *campaign}
	err = r.pool.QueryRow(ctx, `SELECT
			(SELECT count(*) FROM campaign_matches WHERE campaign_id = $1),
			(SELECT count(*) FROM orders WHERE campaign_id = $1)`,
		campaignID).Scan(&eng.MatchCount, &eng.OrderCount)
	if err != nil {
		return nil, storeErr(err)
	}
	return &eng, nil
}

// ListIncompleteOrders finds orders whose deliverable count disagrees with
// the sum of their line item quantities, or that have no line items at
// all. These are the observable leftovers of a partially committed create.
func (r *OrderRepository) ListIncompleteOrders(ctx context.Context) ([]port.IncompleteOrder, error) {
	rows, err := r.pool.Query(ctx, `SELECT o.id, o.status,
			COALESCE(li.item_count, 0), COALESCE(li.unit_count, 0), COALESCE(d.unit_count, 0)
		FROM orders o
		LEFT JOIN (SELECT order_id, count(*) AS item_count, sum(quantity) AS unit_count
			FROM order_line_items GROUP BY order_id) li ON li.order_id = o.id
		LEFT JOIN (SELECT order_id, count(*) AS unit_count
			FROM deliverables GROUP BY order_id) d ON d.order_id = o.id
		WHERE COALESCE(li.item_count, 0) = 0 OR COALESCE(li.unit_count, 0) <> COALESCE(d.unit_count, 0)
		ORDER BY o.created_at`)
	if err != nil {
		return nil, storeErr(err)
	}
	incomplete, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (port.IncompleteOrder, error) {
		var inc port.IncompleteOrder
		err := row.Scan(&inc.OrderID, &inc.Status, &inc.LineItemCount, &inc.ExpectedUnits, &inc.PersistedUnits)
		return inc, err
	})
	if err != nil {
		return nil, storeErr(err)
	}
	return incomplete, nil
}

func (r *OrderRepository) deliverableStatuses(ctx context.Context, tx pgx.Tx, orderID uuid.UUID) ([]domain.DeliverableStatus, error) {
	rows, err := tx.Query(ctx, `SELECT status FROM deliverables WHERE order_id = $1`, orderID)
	if err != nil {
		return nil, storeErr(err)
	}
	statuses, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.DeliverableStatus, error) {
		var s domain.DeliverableStatus
		err := row.Scan(&s)
		return s, err
	})
	if err != nil {
		return nil, storeErr(err)
	}
	return statuses, nil
}

const deliverableFields = `id, order_id, line_item_id, platform, deliverable_type, status,
	submission_url, screenshot_url, submission_notes, metrics, submitted_at, approved_at,
	created_at, updated_at`

const deliverableColumns = `SELECT ` + deliverableFields

// rowScanner is satisfied by both pgx.Row and pgx.CollectableRow.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanDeliverableRow(row rowScanner) (domain.Deliverable, error) {
	var (
		d          domain.Deliverable
		metricsRaw []byte
	)
	err := row.Scan(&d.ID, &d.OrderID, &d.LineItemID, &d.Platform, &d.DeliverableType, &d.Status,
		&d.SubmissionURL, &d.ScreenshotURL, &d.SubmissionNotes, &metricsRaw,
		&d.SubmittedAt, &d.ApprovedAt, &d.CreatedAt, &d.UpdatedAt)
	if err != nil {
		return d, err
	}
	if len(metricsRaw) > 0 {
		if err = json.Unmarshal(metricsRaw, &d.Metrics); err != nil {
			return d, err
		}
	}
	return d, nil
}

func scanOrder(row pgx.Row) (*domain.Order, error) {
	var o domain.Order
	err := row.Scan(&o.ID, &o.CampaignID, &o.PublisherID, &o.MatchID, &o.Status,
		&o.ProcurementStatus, &o.PONumber, &o.Subtotal, &o.PlatformFee, &o.Total,
		&o.DeliveryDeadline, &o.Notes, &o.CreatedAt, &o.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &o, nil
}
