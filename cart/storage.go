package cart

import (
	"encoding/json"
	"errors"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/driveline-rentals/carrental-api/models"
)

// ErrDecode marks a stored cart payload that could not be parsed. Load
// treats it as an empty cart rather than failing the request.
var ErrDecode = errors.New("cart: stored items are not valid JSON")

// Storage persists a customer's full line-item list. Reads and writes are
// wholesale: the entire list round-trips on every call.
type Storage interface {
	Load(customerID uint) ([]LineItem, error)
	Save(customerID uint, items []LineItem) error
}

type gormStorage struct {
	db *gorm.DB
}

// NewGormStorage returns a Storage keeping the serialized list in the
// customer's cart row.
func NewGormStorage(db *gorm.DB) Storage {
	return &gormStorage{db: db}
}

func (s *gormStorage) Load(customerID uint) ([]LineItem, error) {
	var record models.Cart
	if err := s.db.Where("customer_id = ?", customerID).First(&record).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	if len(record.ItemsJSON) == 0 {
		return nil, nil
	}

	var items []LineItem
	if err := json.Unmarshal(record.ItemsJSON, &items); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDecode, err)
	}
	return items, nil
}

func (s *gormStorage) Save(customerID uint, items []LineItem) error {
	data, err := json.Marshal(items)
	if err != nil {
		return err
	}

	record := models.Cart{CustomerID: customerID, ItemsJSON: data}
	return s.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "customer_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"items_json", "updated_at"}),
	}).Create(&record).Error
}
