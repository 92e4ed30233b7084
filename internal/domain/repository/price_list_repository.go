package repository

import "github.com/mtechuganda/backoffice-api/internal/domain/entity"

// PriceListRepository is the persistence port for price lists and their items.
type PriceListRepository interface {
	Create(list *entity.PriceList) error
	GetByID(id string) (*entity.PriceList, error)
	Update(list *entity.PriceList) error
	List() ([]*entity.PriceList, error)
	Delete(id string) error

	UpsertItem(item *entity.PriceListItem) error
	ListItems(priceListID string) ([]*entity.PriceListItem, error)
	DeleteItem(priceListID, productID string) error
}
