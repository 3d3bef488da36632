package domain

import (
	"errors"
	"time"
)

var (
	// ErrOfferNotFound indicates that no offer matched the query.
	ErrOfferNotFound = errors.New("offer not found")
	// ErrOfferAlreadyAdded indicates that the offer has already been persisted.
	ErrOfferAlreadyAdded = errors.New("offer already added")
)

// Offer holds a single marketplace offer with its seller and images fully
// resolved. An offer with a zero ID has not been persisted yet; the ID is
// assigned by the store on Add.
type Offer struct {
	ID          int64     `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Price       Price     `json:"price"`
	Seller      User      `json:"seller"`
	Images      []Image   `json:"images"`
	Location    string    `json:"location"`
	CreatedAt   time.Time `json:"created_at"`
}

// IsAdded reports whether the offer has been persisted.
func (o Offer) IsAdded() bool {
	return o.ID != 0
}

// NewOffer builds a not yet persisted offer.
func NewOffer(title, description string, price Price, seller User, images []Image, location string) Offer {
	return Offer{
		Title:       title,
		Description: description,
		Price:       price,
		Seller:      seller,
		Images:      images,
		Location:    location,
		CreatedAt:   time.Now(),
	}
}
