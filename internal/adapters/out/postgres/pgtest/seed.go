package pgtest

import (
	"marketplace/internal/core/domain/model/kernel"

	"github.com/shopspring/decimal"
)

// SeedProduct inserts a catalog product owned by ownerID and returns its id.
func (s *Suite) SeedProduct(ownerID kernel.UUID, title string, price int64, stock int) kernel.UUID {
	id := kernel.NewUUID()
	err := s.DB.Exec(
		"INSERT INTO products (id, owner_id, title, image, price, stock) VALUES (?, ?, ?, ?, ?, ?)",
		id.Bytes(), ownerID.Bytes(), title, title+".png", decimal.NewFromInt(price), stock,
	).Error
	s.Require().NoError(err)
	return id
}

// SeedProfile stores a customer profile. lat and lng may be nil.
func (s *Suite) SeedProfile(userID kernel.UUID, name string, lat, lng *float64) {
	err := s.DB.Exec(
		`INSERT INTO user_profiles (user_id, name, phone, address, city, pincode, state, lat, lng)
		 VALUES (?, ?, '9999999999', '12 MG Road', 'Bengaluru', '560001', 'KA', ?, ?)`,
		userID.Bytes(), name, lat, lng,
	).Error
	s.Require().NoError(err)
}

// SeedShop registers the shop location of ownerID.
func (s *Suite) SeedShop(ownerID kernel.UUID, lat, lng float64) {
	err := s.DB.Exec(
		"INSERT INTO shop_profiles (owner_id, lat, lng) VALUES (?, ?, ?)",
		ownerID.Bytes(), lat, lng,
	).Error
	s.Require().NoError(err)
}

// Stock reads the current stock of a product.
func (s *Suite) Stock(productID kernel.UUID) int {
	var stock int
	err := s.DB.Raw("SELECT stock FROM products WHERE id = ?", productID.Bytes()).Scan(&stock).Error
	s.Require().NoError(err)
	return stock
}
