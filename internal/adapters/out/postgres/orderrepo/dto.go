// Package orderrepo persists the order collection through GORM. Line items
// live in a jsonb column next to the order row.
package orderrepo

import (
	"grubdash/internal/core/domain/model/order"
)

// OrderDTO is the orders table row.
type OrderDTO struct {
	ID           string        `gorm:"primaryKey"`
	Seq          int64         `gorm:"autoIncrement;index"`
	DeliverTo    string        `gorm:"not null"`
	MobileNumber string        `gorm:"not null"`
	Status       string        `gorm:"not null;index"`
	Dishes       []LineItemDTO `gorm:"serializer:json;type:jsonb;not null"`
}

func (OrderDTO) TableName() string {
	return "orders"
}

// LineItemDTO is one element of the dishes jsonb array. Fields carries the
// client's line item object unchanged.
type LineItemDTO struct {
	DishID   string         `json:"dishId,omitempty"`
	Quantity int            `json:"quantity"`
	Fields   map[string]any `json:"fields,omitempty"`
}

func fromDomain(o *order.Order) OrderDTO {
	items := o.Dishes()
	dishes := make([]LineItemDTO, 0, len(items))
	for _, item := range items {
		dishes = append(dishes, LineItemDTO{DishID: item.DishID(), Quantity: item.Quantity(), Fields: item.Fields()})
	}

	return OrderDTO{
		ID:           o.ID(),
		DeliverTo:    o.DeliverTo(),
		MobileNumber: o.MobileNumber(),
		Status:       o.Status().String(),
		Dishes:       dishes,
	}
}

func toDomain(dto OrderDTO) (*order.Order, error) {
	items := make([]order.LineItem, 0, len(dto.Dishes))
	for _, d := range dto.Dishes {
		item, err := order.RestoreLineItem(d.DishID, d.Quantity, d.Fields)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}

	return order.RestoreOrder(dto.ID, dto.DeliverTo, dto.MobileNumber, order.Status(dto.Status), items)
}
