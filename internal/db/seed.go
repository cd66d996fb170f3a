package db

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

// seedID derives a stable uuid from a label so re-running the seed is a
// no-op together with ON CONFLICT DO NOTHING.
func seedID(label string) uuid.UUID {
	return uuid.NewSHA1(uuid.NameSpaceOID, []byte("civic-orders/"+label))
}

// Seed inserts demo advertisers, publishers, campaigns and open matches
// for local runs.
func Seed(ctx context.Context, db *pgxpool.Pool) error {
	advertisers := []string{
		"Department of Public Health",
		"Office of Environment",
		"Transit Authority",
	}
	for _, name := range advertisers {
		if _, err := db.Exec(ctx, `INSERT INTO advertisers (id, name, category, created_at)
			VALUES ($1, $2, 'government', now()) ON CONFLICT DO NOTHING`,
			seedID("advertiser/"+name), name); err != nil {
			return err
		}
	}

	publishers := []string{
		"Mission Local Weekly",
		"Bayview Community Radio",
		"Chinatown Neighborhood News",
		"Sunset District Dispatch",
		"Excelsior Voice",
	}
	for _, name := range publishers {
		if _, err := db.Exec(ctx, `INSERT INTO publishers (id, name, created_at)
			VALUES ($1, $2, now()) ON CONFLICT DO NOTHING`,
			seedID("publisher/"+name), name); err != nil {
			return err
		}
	}

	start := time.Now().AddDate(0, 0, -7)
	end := time.Now().AddDate(0, 2, 0)
	for i, advertiser := range advertisers {
		campaignName := fmt.Sprintf("Outreach Campaign %d", i+1)
		campaignID := seedID("campaign/" + campaignName)
		if _, err := db.Exec(ctx, `INSERT INTO campaigns
			(id, advertiser_id, name, source_category, budget_min, budget_max, start_date, end_date, status, created_at, updated_at)
			VALUES ($1, $2, $3, 'government', $4, $5, $6, $7, 'draft', now(), now()) ON CONFLICT DO NOTHING`,
			campaignID, seedID("advertiser/"+advertiser), campaignName,
			int64(250000), int64(1500000), start, end); err != nil {
			return err
		}
		// every campaign starts with a couple of open matches
		for _, publisher := range publishers[:2+i%3] {
			if _, err := db.Exec(ctx, `INSERT INTO campaign_matches
				(id, campaign_id, publisher_id, is_selected, created_at)
				VALUES ($1, $2, $3, FALSE, now()) ON CONFLICT DO NOTHING`,
				seedID("match/"+campaignName+"/"+publisher), campaignID, seedID("publisher/"+publisher)); err != nil {
				return err
			}
		}
	}
	return nil
}
