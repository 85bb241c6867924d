package models

import (
	"encoding/json"
	"time"

	"github.com/uptrace/bun"
)

// Account is the stored form of one economy record. The full record lives in
// Data; the other columns are copies for lookups.
type Account struct {
	bun.BaseModel `bun:"table:accounts,alias:a"`

	Key       string          `bun:"key,pk"`
	GuildID   string          `bun:"guild_id,notnull"`
	UserID    string          `bun:"user_id,notnull"`
	Data      json.RawMessage `bun:"data,type:jsonb,notnull"`
	CreatedAt time.Time       `bun:"created_at,notnull,default:current_timestamp"`
	UpdatedAt time.Time       `bun:"updated_at,notnull,default:current_timestamp"`
}
