package queries

import (
	"context"

	"marketplace/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// GetCartQueryHandler reads cart lines straight from cart_items, oldest first.
type GetCartQueryHandler struct {
	db *gorm.DB
}

func NewGetCartQueryHandler(db *gorm.DB) GetCartQueryHandler {
	return GetCartQueryHandler{db: db}
}

func (h GetCartQueryHandler) Handle(ctx context.Context, query GetCartQuery) (GetCartQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetCartQueryResponse{}, err
	}

	lines, err := loadCartLines(ctx, h.db, query.UserID())
	if err != nil {
		return GetCartQueryResponse{}, err
	}

	response := GetCartQueryResponse{Items: lines, Subtotal: decimal.Zero}
	for _, line := range lines {
		response.ItemCount += line.Quantity
		response.Subtotal = response.Subtotal.Add(line.LineTotal)
	}
	return response, nil
}

func loadCartLines(ctx context.Context, db *gorm.DB, userID kernel.UUID) ([]CartLine, error) {
	rows, err := db.WithContext(ctx).Raw(`
		SELECT
			product_id,
			owner_id,
			title,
			image,
			price,
			quantity
		FROM cart_items
		WHERE user_id = ?
		ORDER BY added_at, product_id
	`, userID.Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	lines := make([]CartLine, 0)
	for rows.Next() {
		var line CartLine
		var productID, ownerID uuid.UUID

		if err = rows.Scan(&productID, &ownerID, &line.Title, &line.Image, &line.Price, &line.Quantity); err != nil {
			return nil, err
		}

		if line.ProductID, err = kernel.UUIDFromBytes(productID[:]); err != nil {
			return nil, err
		}
		if line.OwnerID, err = kernel.UUIDFromBytes(ownerID[:]); err != nil {
			return nil, err
		}
		line.LineTotal = line.Price.Mul(decimal.NewFromInt(int64(line.Quantity)))
		lines = append(lines, line)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}
	return lines, nil
}
