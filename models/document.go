package models

import (
	"encoding/json"
	"time"
)

// FavouriteRow is one favourite document as stored by the server: the raw
// JSON payload plus the columns the server indexes on. The server never
// inspects Doc beyond validating it is well-formed JSON.
type FavouriteRow struct {
	Kind      Kind            `json:"kind"`
	ItemID    int64           `json:"itemId"`
	Doc       json.RawMessage `json:"doc"`
	CreatedAt time.Time       `json:"createdAt"`
}
