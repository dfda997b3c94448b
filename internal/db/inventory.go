package db

import (
	"context"
	"fmt"
	"strings"

	"mealia-backend/internal/models"
)

// NormalizeItemName is the identity rule for inventory items: matching is
// case-insensitive and ignores surrounding whitespace. Every lookup, insert
// and uniqueness check goes through this.
func NormalizeItemName(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// AddInventoryItem inserts an item or, when the owner already stocks the
// normalized name, increments its quantity by the requested amount. The
// stored unit is kept on increment.
func (db *PostgresDB) AddInventoryItem(ctx context.Context, item *models.InventoryItem) error {
	item.Name = NormalizeItemName(item.Name)
	if item.Unit == "" {
		item.Unit = models.DefaultUnit
	}

	query := `
        INSERT INTO inventory_items (owner_id, name, quantity, unit)
        VALUES ($1, $2, $3, $4)
        ON CONFLICT (owner_id, name) DO UPDATE
        SET quantity = inventory_items.quantity + EXCLUDED.quantity, updated_at = NOW()
        RETURNING id, quantity, unit, created_at, updated_at
    `

	err := db.pool.QueryRow(ctx, query,
		item.OwnerID, item.Name, item.Quantity, item.Unit,
	).Scan(&item.ID, &item.Quantity, &item.Unit, &item.CreatedAt, &item.UpdatedAt)

	if err != nil {
		return fmt.Errorf("failed to add inventory item: %w", err)
	}

	return nil
}

func (db *PostgresDB) ListInventory(ctx context.Context, ownerID int64) ([]models.InventoryItem, error) {
	query := `
        SELECT id, owner_id, name, quantity, unit, created_at, updated_at
        FROM inventory_items
        WHERE owner_id = $1
        ORDER BY name
    `

	rows, err := db.pool.Query(ctx, query, ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list inventory: %w", err)
	}
	defer rows.Close()

	var items []models.InventoryItem
	for rows.Next() {
		var item models.InventoryItem
		if err := rows.Scan(
			&item.ID, &item.OwnerID, &item.Name, &item.Quantity, &item.Unit,
			&item.CreatedAt, &item.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan inventory item: %w", err)
		}
		items = append(items, item)
	}

	return items, rows.Err()
}

// UpdateInventoryQuantity sets the absolute quantity of an item owned by
// ownerID. Returns pgx.ErrNoRows via QueryRow when the item is not theirs.
func (db *PostgresDB) UpdateInventoryQuantity(ctx context.Context, ownerID, itemID int64, quantity float64) (*models.InventoryItem, error) {
	query := `
        UPDATE inventory_items
        SET quantity = $3, updated_at = NOW()
        WHERE id = $2 AND owner_id = $1
        RETURNING id, owner_id, name, quantity, unit, created_at, updated_at
    `

	var item models.InventoryItem
	err := db.pool.QueryRow(ctx, query, ownerID, itemID, quantity).Scan(
		&item.ID, &item.OwnerID, &item.Name, &item.Quantity, &item.Unit,
		&item.CreatedAt, &item.UpdatedAt,
	)

	if err != nil {
		return nil, err
	}

	return &item, nil
}

func (db *PostgresDB) DeleteInventoryItem(ctx context.Context, ownerID, itemID int64) error {
	query := `
        DELETE FROM inventory_items
        WHERE id = $2 AND owner_id = $1
    `

	tag, err := db.pool.Exec(ctx, query, ownerID, itemID)
	if err != nil {
		return fmt.Errorf("failed to delete inventory item: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("inventory item %d not found", itemID)
	}

	return nil
}
