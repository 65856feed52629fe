package catalog

import (
	"context"
	"database/sql"
	"errors"
	"strings"
)

// PGRepo implements Repo using Postgres. List columns like colors and tags
// are stored comma-joined and split on read.
type PGRepo struct {
	DB *sql.DB
}

const itemColumns = `
id, name, brand, category, subcategory, price, stock_qty, in_stock, gender,
colors, sizes, style_tags, occasion_tags, tags, gift_suitable, featured,
image_url, product_url, created_at`

// ListAvailable returns every in-stock item.
func (r *PGRepo) ListAvailable(ctx context.Context) ([]Item, error) {
	const query = `
SELECT ` + itemColumns + `
FROM catalog_items
WHERE in_stock = TRUE AND stock_qty > 0
ORDER BY created_at DESC, id`

	rows, err := r.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Item
	for rows.Next() {
		item, err := scanItem(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, item)
	}
	return out, rows.Err()
}

// GetByID fetches one item by id.
func (r *PGRepo) GetByID(ctx context.Context, id string) (Item, error) {
	const query = `
SELECT ` + itemColumns + `
FROM catalog_items
WHERE id = $1
LIMIT 1`

	item, err := scanItem(r.DB.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Item{}, ErrNotFound
		}
		return Item{}, err
	}
	return item, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanItem(row rowScanner) (Item, error) {
	var item Item
	var brand, subcategory, gender sql.NullString
	var colors, sizes, styleTags, occasionTags, tags sql.NullString
	var imageURL, productURL sql.NullString

	err := row.Scan(
		&item.ID,
		&item.Name,
		&brand,
		&item.Category,
		&subcategory,
		&item.Price,
		&item.StockQty,
		&item.InStock,
		&gender,
		&colors,
		&sizes,
		&styleTags,
		&occasionTags,
		&tags,
		&item.GiftSuitable,
		&item.Featured,
		&imageURL,
		&productURL,
		&item.CreatedAt,
	)
	if err != nil {
		return Item{}, err
	}

	item.Brand = brand.String
	item.Subcategory = subcategory.String
	item.Gender = gender.String
	item.Colors = splitList(colors.String)
	item.Sizes = splitList(sizes.String)
	item.StyleTags = splitList(styleTags.String)
	item.OccasionTags = splitList(occasionTags.String)
	item.Tags = splitList(tags.String)
	item.ImageURL = imageURL.String
	item.ProductURL = productURL.String
	return item, nil
}

func splitList(raw string) []string {
	if strings.TrimSpace(raw) == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
