package hotel

import (
	"github.com/ijalalfrz/travel-search-service/internal/pkg/utils"
)

const (
	AddressPlaceholder = "Address N/A"
	NotAvailable       = "N/A"
)

type Display struct {
	Name     string `json:"name"`
	Address  string `json:"address"`
	Rating   string `json:"rating"`
	Price    string `json:"price"`
	Currency string `json:"currency"`
}

// Normalize resolves each display field independently: nested live field,
// then flat field, then placeholder.
func Normalize(r Record) Display {
	switch rec := r.(type) {
	case LiveRecord:
		offer := rec.firstOfferPrice()
		flat := rec.Flat.price()

		return Display{
			Name:     utils.FirstNonEmpty(rec.Hotel.Name, rec.Flat.Name),
			Address:  utils.FirstNonEmpty(rec.Hotel.Address.line(), rec.Flat.Address.line(), AddressPlaceholder),
			Rating:   utils.FirstNonEmpty(string(rec.Hotel.Rating), string(rec.Flat.Rating), NotAvailable),
			Price:    utils.FirstNonEmpty(offer.Total, flat.Total, NotAvailable),
			Currency: utils.FirstNonEmpty(offer.Currency, flat.Currency),
		}
	case MockRecord:
		flat := rec.price()

		return Display{
			Name:     rec.Name,
			Address:  utils.FirstNonEmpty(rec.Address.line(), AddressPlaceholder),
			Rating:   utils.FirstNonEmpty(string(rec.Rating), NotAvailable),
			Price:    utils.FirstNonEmpty(flat.Total, NotAvailable),
			Currency: flat.Currency,
		}
	default:
		return Display{Address: AddressPlaceholder, Rating: NotAvailable, Price: NotAvailable}
	}
}

// NormalizeAll normalizes records in order.
func NormalizeAll(records []Record) []Display {
	out := make([]Display, len(records))
	for i, r := range records {
		out[i] = Normalize(r)
	}

	return out
}

func (a Address) line() string {
	return utils.JoinNonEmpty(a.Lines, ", ")
}

func (r LiveRecord) firstOfferPrice() OfferPrice {
	if len(r.Offers) == 0 {
		return OfferPrice{}
	}

	return r.Offers[0].Price
}

func (f FlatFields) price() OfferPrice {
	if f.Price == nil {
		return OfferPrice{}
	}

	return *f.Price
}
