// Package test provides shared test helpers.
package test

import (
	"context"
	"testing"

	"github.com/piwegro/piwegro-api/internal/currencyrepo"
	"github.com/piwegro/piwegro-api/internal/domain"
	"github.com/piwegro/piwegro-api/internal/imagerepo"
	"github.com/piwegro/piwegro-api/internal/offerrepo"
	"github.com/piwegro/piwegro-api/internal/userrepo"
	"github.com/piwegro/piwegro-api/pkg/dbpkg"
	"github.com/piwegro/piwegro-api/pkg/randompkg"
)

// SeedCurrency inserts a random currency inside a test transaction.
func SeedCurrency(t *testing.T, tx dbpkg.SQLInterface) domain.Currency {
	t.Helper()

	c := domain.Currency{
		Name:         randompkg.String(10),
		Symbol:       randompkg.CurrencySymbol(),
		ExchangeRate: randompkg.FloatBetween(0.1, 10),
	}

	const query = `
	INSERT INTO currencies (name, symbol, exchange_rate)
	VALUES ($1, $2, $3)
	`

	if _, err := tx.ExecContext(context.Background(), query, c.Name, c.Symbol, c.ExchangeRate); err != nil {
		t.Fatalf("seeding currency %+v returned error: %v", c, err)
	}

	return c
}

// SeedUser creates a random user accepting the given currency inside a
// test transaction.
func SeedUser(t *testing.T, tx dbpkg.SQLInterface, currency domain.Currency) domain.User {
	t.Helper()

	arg := domain.CreateUserParams{
		UID:   randompkg.UID(),
		Email: randompkg.Email(),
		Name:  randompkg.String(10),
	}

	userRepo := userrepo.NewRepoPGS(tx)

	user, err := userRepo.Create(context.Background(), arg)
	if err != nil {
		t.Fatalf("userRepo.Create(context.Background(), %+v) returned error: %v", arg, err)
	}

	if err := userRepo.AddAcceptedCurrency(context.Background(), user.UID, currency.Symbol); err != nil {
		t.Fatalf("userRepo.AddAcceptedCurrency(context.Background(), %v, %v) returned error: %v",
			user.UID, currency.Symbol, err)
	}

	user.AcceptedCurrencies = []domain.Currency{currency}

	return user
}

// SeedImage creates a saved image row inside a test transaction.
func SeedImage(t *testing.T, tx dbpkg.SQLInterface) domain.Image {
	t.Helper()

	name := randompkg.String(8)
	img := domain.Image{
		Original:  name + "_original.jpg",
		Preview:   name + "_preview.jpg",
		Thumbnail: name + "_thumbnail.jpg",
	}

	imageRepo := imagerepo.NewRepoPGS(tx)

	id, err := imageRepo.Create(context.Background(), img.Original, img.Preview, img.Thumbnail)
	if err != nil {
		t.Fatalf("imageRepo.Create(context.Background(), %+v) returned error: %v", img, err)
	}

	img.ID = id

	return img
}

// SeedOffer creates a random offer of the seller inside a test transaction.
func SeedOffer(t *testing.T, tx dbpkg.SQLInterface, seller domain.User, currency domain.Currency) domain.Offer {
	t.Helper()

	price := domain.Price{
		Amount:   randompkg.Int64Between(1, 1_000),
		Currency: currency,
	}

	offer := domain.NewOffer(
		randompkg.String(10),
		randompkg.String(30),
		price,
		seller,
		nil,
		randompkg.String(10),
	)

	offerRepo := NewOfferRepo(tx)

	if err := offerRepo.Add(context.Background(), &offer); err != nil {
		t.Fatalf("offerRepo.Add(context.Background(), %+v) returned error: %v", offer, err)
	}

	offer.Images = []domain.Image{}

	return offer
}

// NewOfferRepo wires an offer repository with its entity dependencies on
// top of the given transaction.
func NewOfferRepo(tx dbpkg.SQLInterface) *offerrepo.RepoPGS {
	return offerrepo.NewRepoPGS(
		tx,
		userrepo.NewRepoPGS(tx),
		currencyrepo.NewRepoPGS(tx),
		imagerepo.NewRepoPGS(tx),
	)
}
