package postgres

import (
	"context"
	"fmt"
)

// position conserva el orden de inserción que el resto de backends respeta.
// sales.item_id no tiene FK: la venta sobrevive al borrado del ítem.
const schema = `
CREATE TABLE IF NOT EXISTS items (
	position    BIGSERIAL,
	id          TEXT PRIMARY KEY,
	name        TEXT NOT NULL,
	description TEXT NOT NULL DEFAULT '',
	price       NUMERIC NOT NULL CHECK (price >= 0),
	quantity    INTEGER NOT NULL CHECK (quantity >= 0),
	created_at  TIMESTAMPTZ NOT NULL,
	updated_at  TIMESTAMPTZ NOT NULL
);
CREATE INDEX IF NOT EXISTS items_position_idx ON items (position);

CREATE TABLE IF NOT EXISTS sales (
	position      BIGSERIAL,
	id            TEXT PRIMARY KEY,
	item_id       TEXT NOT NULL,
	item_name     TEXT NOT NULL,
	quantity_sold INTEGER NOT NULL CHECK (quantity_sold > 0),
	sale_price    NUMERIC NOT NULL,
	sale_date     TIMESTAMPTZ NOT NULL
);
CREATE INDEX IF NOT EXISTS sales_position_idx ON sales (position);
`

// EnsureSchema crea las tablas si no existen. Es idempotente.
func EnsureSchema(ctx context.Context, q Querier) error {
	if _, err := q.Exec(ctx, schema); err != nil {
		return fmt.Errorf("ensure schema: %w", err)
	}
	return nil
}
