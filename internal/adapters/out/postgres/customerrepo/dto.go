// Package customerrepo maps the customer aggregate to the customers table.
package customerrepo

import (
	"sales/internal/core/domain/model/customer"
	"sales/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CustomerDTO is a row of the customers table. The last order price columns are
// both NULL when the customer has none.
type CustomerDTO struct {
	ID                uuid.UUID           `gorm:"type:uuid;primaryKey"`
	Name              string              `gorm:"type:varchar(255);not null"`
	LastOrderPrice    decimal.NullDecimal `gorm:"type:numeric(20,4)"`
	LastOrderCurrency *string             `gorm:"type:char(3)"`
}

// TableName specifies the database table name for customers.
func (CustomerDTO) TableName() string {
	return "customers"
}

func fromDomain(aggregate *customer.Customer) CustomerDTO {
	dto := CustomerDTO{
		ID:   aggregate.ID().Bytes(),
		Name: aggregate.Name(),
	}
	if price, ok := aggregate.LastOrderPrice(); ok {
		code := price.Currency().Code()
		dto.LastOrderPrice = decimal.NewNullDecimal(price.Amount())
		dto.LastOrderCurrency = &code
	}
	return dto
}

func toDomain(dto CustomerDTO) (*customer.Customer, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	var lastOrderPrice *kernel.Money
	if dto.LastOrderPrice.Valid && dto.LastOrderCurrency != nil {
		currency, currencyErr := kernel.NewCurrency(*dto.LastOrderCurrency)
		if currencyErr != nil {
			return nil, currencyErr
		}
		price, priceErr := kernel.NewMoney(dto.LastOrderPrice.Decimal, currency)
		if priceErr != nil {
			return nil, priceErr
		}
		lastOrderPrice = &price
	}

	return customer.RestoreCustomer(id, dto.Name, lastOrderPrice)
}
