package database

import (
	"context"
	"fmt"
	"kucukaslan/userapi/config"
	"kucukaslan/userapi/domain"
	"log"
	"time"

	"github.com/uptrace/go-clickhouse/ch"
)

var clickHouseDB *ch.DB

// InitClickHouse initializes the ClickHouse database connection
func InitClickHouse(cfg *config.ClickHouseConfig) error {
	// native protocol, no TLS
	db := ch.Connect(
		ch.WithDSN(cfg.GetClickHouseDSN()),
		ch.WithInsecure(true),
	)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := db.Ping(ctx); err != nil {
		_ = db.Close()
		return fmt.Errorf("failed to connect to ClickHouse: %w", err)
	}

	if err := InitActivityTable(ctx, db); err != nil {
		_ = db.Close()
		return fmt.Errorf("failed to initialize user_activity table: %w", err)
	}

	clickHouseDB = db
	log.Println("ClickHouse connection established successfully")
	return nil
}

// CloseClickHouse closes the ClickHouse database connection
func CloseClickHouse() error {
	if clickHouseDB != nil {
		if err := clickHouseDB.Close(); err != nil {
			return fmt.Errorf("failed to close ClickHouse connection: %w", err)
		}
		log.Println("ClickHouse connection closed")
	}
	return nil
}

// InitActivityTable creates the user_activity table if it doesn't exist
func InitActivityTable(ctx context.Context, db *ch.DB) error {
	_, err := db.NewCreateTable().
		Model((*Activity)(nil)).
		Engine("ReplacingMergeTree(ingested_at)").
		Order("occurred_at, action, user_id").
		IfNotExists().
		Exec(ctx)
	return err
}

// ClickHouseHealthCheck verifies that the ClickHouse connection is alive
func ClickHouseHealthCheck(ctx context.Context) error {
	if clickHouseDB == nil {
		return fmt.Errorf("ClickHouse connection is not initialized")
	}
	return clickHouseDB.Ping(ctx)
}

// GetClickHouseDB returns the ClickHouse database instance
func GetClickHouseDB() ClickHouseDB {
	return ClickHouseDB{clickHouseDB}
}

type ClickHouseDB struct {
	*ch.DB
}

// Activity is the row model of the user_activity table
type Activity struct {
	ch.CHModel `ch:"table:user_activity,partition:toYYYYMMDD(occurred_at)"`
	Action     string    `ch:"action,lc"`
	UserID     string    `ch:"user_id"`
	Email      string    `ch:"email"`
	OccurredAt time.Time `ch:"occurred_at"`

	IngestedAt time.Time `ch:"ingested_at,default:now()"`
}

// ActivityColumnar is the same table laid out column by column for batch inserts
type ActivityColumnar struct {
	ch.CHModel `ch:"table:user_activity,partition:toYYYYMMDD(occurred_at),columnar"`
	Action     []string    `ch:"action,lc"`
	UserID     []string    `ch:"user_id"`
	Email      []string    `ch:"email"`
	OccurredAt []time.Time `ch:"occurred_at"`

	IngestedAt []time.Time `ch:"ingested_at,default:now()"`
}

func toColumnar(events []domain.ActivityEvent, now time.Time) *ActivityColumnar {
	n := len(events)
	cols := &ActivityColumnar{
		Action:     make([]string, 0, n),
		UserID:     make([]string, 0, n),
		Email:      make([]string, 0, n),
		OccurredAt: make([]time.Time, 0, n),
		IngestedAt: make([]time.Time, 0, n),
	}
	for _, e := range events {
		cols.Action = append(cols.Action, e.Action)
		cols.UserID = append(cols.UserID, e.UserID)
		cols.Email = append(cols.Email, e.Email)
		cols.OccurredAt = append(cols.OccurredAt, e.OccurredAt)
		cols.IngestedAt = append(cols.IngestedAt, now)
	}
	return cols
}

// SaveActivities writes a batch using ClickHouse's columnar insert format
func (c ClickHouseDB) SaveActivities(ctx context.Context, events []domain.ActivityEvent) error {
	if c.DB == nil {
		return fmt.Errorf("database connection is nil")
	}
	if len(events) == 0 {
		return fmt.Errorf("no activity events to insert")
	}

	_, err := c.DB.NewInsert().
		Model(toColumnar(events, time.Now())).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to columnar insert activity events: %w", err)
	}
	return nil
}

type MetricResult struct {
	Bucket      string `ch:"bucket"`
	TotalEvents uint64 `ch:"total_events"`
	UniqueUsers uint64 `ch:"unique_users"`
}

// groupExpression maps a group_by value to SQL. Only allowlisted values produce
// an expression, which keeps user input out of the query text.
func groupExpression(groupBy *string) string {
	if groupBy == nil {
		return ""
	}
	switch *groupBy {
	case "hour":
		return "toString(toStartOfHour(occurred_at))"
	case "day":
		return "toString(toStartOfDay(occurred_at))"
	case "week":
		return "toString(toStartOfWeek(occurred_at))"
	case "month":
		return "toString(toStartOfMonth(occurred_at))"
	case "year":
		return "toString(toStartOfYear(occurred_at))"
	case "action":
		return "action"
	default:
		return ""
	}
}

// GetMetrics aggregates activity by the requested bucket
func (c ClickHouseDB) GetMetrics(ctx context.Context, request domain.MetricRequest) ([]MetricResult, error) {
	if c.DB == nil {
		return nil, fmt.Errorf("database connection is nil")
	}

	var results []MetricResult
	groupExpr := groupExpression(request.GroupBy)

	// FINAL deduplicates replaced rows before counting
	query := c.NewSelect().TableExpr("user_activity FINAL")

	if groupExpr != "" {
		query = query.ColumnExpr("? AS bucket", ch.Safe(groupExpr))
	} else {
		query = query.ColumnExpr("'total' AS bucket")
	}
	query = query.
		ColumnExpr("count() AS total_events").
		ColumnExpr("uniqExact(user_id) AS unique_users")

	if request.Action != nil && *request.Action != "" {
		query = query.Where("action = ?", *request.Action)
	}
	if request.From != nil {
		query = query.Where("occurred_at >= ?", time.Unix(*request.From, 0))
	}
	if request.To != nil {
		query = query.Where("occurred_at <= ?", time.Unix(*request.To, 0))
	}
	if groupExpr != "" {
		query = query.GroupExpr(groupExpr).OrderExpr("bucket ASC")
	}

	if err := query.Scan(ctx, &results); err != nil {
		return nil, fmt.Errorf("failed to query activity metrics: %w", err)
	}
	return results, nil
}
