package cart

import (
	"log"
	"strconv"

	"github.com/google/uuid"
)

// Field names accepted by Store.UpdateField. The derived fields (rental
// days, total price) are recomputed, never set directly.
const (
	FieldProductName     = "productName"
	FieldImage           = "image"
	FieldPricePerDay     = "pricePerDay"
	FieldPickupLocation  = "pickupLocation"
	FieldDropoffLocation = "dropoffLocation"
	FieldPickupTime      = "pickupTime"
	FieldDropoffTime     = "dropoffTime"
)

// Store owns one customer's cart: the ordered line-item list plus its
// derived fields. Every mutation recomputes the affected item and writes the
// whole list back through Storage, so the persisted list always matches the
// in-memory one. A Store is not safe for concurrent use; build one per
// request.
type Store struct {
	customerID uint
	storage    Storage
	items      []LineItem
}

func NewStore(customerID uint, storage Storage) *Store {
	return &Store{customerID: customerID, storage: storage}
}

// Load reads the persisted list. Failures (including a bad stored payload)
// are logged and leave the cart empty; a broken cart row must never take the
// page down with it.
func (s *Store) Load() {
	items, err := s.storage.Load(s.customerID)
	if err != nil {
		log.Printf("cart: load failed for customer %d: %v", s.customerID, err)
		s.items = nil
		return
	}
	s.items = items
}

// Items returns a copy of the line-item list in cart order.
func (s *Store) Items() []LineItem {
	out := make([]LineItem, len(s.items))
	copy(out, s.items)
	return out
}

// Add appends an item, assigning an ID if it has none, and persists.
func (s *Store) Add(item LineItem) LineItem {
	if item.ID == "" {
		item.ID = uuid.NewString()
	}
	item = Recompute(item)
	s.items = append(s.items, item)
	s.persist()
	return item
}

// UpdateField replaces one field on the matching item, recomputes its
// derived fields and persists. It reports false, mutating nothing, if the id
// matches no item or the field is unknown. Exactly one item changes per
// call.
func (s *Store) UpdateField(id, field, value string) bool {
	for i := range s.items {
		if s.items[i].ID != id {
			continue
		}

		updated := s.items[i]
		switch field {
		case FieldProductName:
			updated.ProductName = value
		case FieldImage:
			updated.Image = value
		case FieldPricePerDay:
			rate, err := strconv.ParseFloat(value, 64)
			if err != nil || rate < 0 {
				return false
			}
			updated.PricePerDay = rate
		case FieldPickupLocation:
			updated.PickupLocation = value
		case FieldDropoffLocation:
			updated.DropoffLocation = value
		case FieldPickupTime:
			updated.PickupTime = value
		case FieldDropoffTime:
			updated.DropoffTime = value
		default:
			return false
		}

		s.items[i] = Recompute(updated)
		s.persist()
		return true
	}
	return false
}

// Remove deletes the matching item and persists. No-op if the id is absent.
func (s *Store) Remove(id string) bool {
	for i := range s.items {
		if s.items[i].ID == id {
			s.items = append(s.items[:i], s.items[i+1:]...)
			s.persist()
			return true
		}
	}
	return false
}

// Clear empties the cart and persists.
func (s *Store) Clear() {
	s.items = nil
	s.persist()
}

// RecomputeAll re-derives every item's rental days and total. It persists
// only when something actually changed, so running it on an already
// consistent list is a no-op and cannot loop through the storage layer.
func (s *Store) RecomputeAll() {
	changed := false
	for i, item := range s.items {
		next := Recompute(item)
		if next != item {
			s.items[i] = next
			changed = true
		}
	}
	if changed {
		s.persist()
	}
}

// persist writes the full list. A storage failure is logged; the in-memory
// list stays authoritative for the rest of the request.
func (s *Store) persist() {
	if err := s.storage.Save(s.customerID, s.items); err != nil {
		log.Printf("cart: save failed for customer %d: %v", s.customerID, err)
	}
}
