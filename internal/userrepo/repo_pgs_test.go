//go:build integration

package userrepo_test

import (
	"context"
	"log"
	"os"
	"testing"

	"github.com/piwegro/piwegro-api/internal/domain"
	"github.com/piwegro/piwegro-api/internal/test"
	"github.com/piwegro/piwegro-api/internal/userrepo"
	"github.com/piwegro/piwegro-api/pkg/configpkg"
	"github.com/piwegro/piwegro-api/pkg/dbpkg"
	"github.com/piwegro/piwegro-api/pkg/randompkg"

	"github.com/google/go-cmp/cmp"
	_ "github.com/lib/pq"
)

var (
	dbDriver string
	dbSource string
)

func TestMain(m *testing.M) {
	config, err := configpkg.Load("../../configs")
	if err != nil {
		log.Fatal("cannot load config:", err)
	}

	dbDriver = config.DBDriver
	dbSource = config.DBSource

	os.Exit(m.Run())
}

func TestCreate(t *testing.T) {
	tx := dbpkg.SetupTX(t, dbDriver, dbSource)
	repo := userrepo.NewRepoPGS(tx)

	arg := domain.CreateUserParams{
		UID:   randompkg.UID(),
		Email: randompkg.Email(),
		Name:  randompkg.String(10),
	}

	user, err := repo.Create(context.Background(), arg)
	if err != nil {
		t.Fatalf("repo.Create(context.Background(), %+v) returned error: %v", arg, err)
	}

	want := domain.User{UID: arg.UID, Email: arg.Email, Name: arg.Name}
	if diff := cmp.Diff(want, user); diff != "" {
		t.Errorf("user mismatch (-want +got):\n%s", diff)
	}

	if _, err = repo.Create(context.Background(), arg); err != domain.ErrUserAlreadyExists {
		t.Errorf("repo.Create(context.Background(), %+v) error=%v, want %v", arg, err, domain.ErrUserAlreadyExists)
	}
}

func TestGet(t *testing.T) {
	tx := dbpkg.SetupTX(t, dbDriver, dbSource)
	repo := userrepo.NewRepoPGS(tx)

	currency := test.SeedCurrency(t, tx)
	want := test.SeedUser(t, tx, currency)

	got, err := repo.Get(context.Background(), want.UID)
	if err != nil {
		t.Fatalf("repo.Get(context.Background(), %v) returned error: %v", want.UID, err)
	}

	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("user mismatch (-want +got):\n%s", diff)
	}
}

func TestGetNotFound(t *testing.T) {
	tx := dbpkg.SetupTX(t, dbDriver, dbSource)
	repo := userrepo.NewRepoPGS(tx)

	if _, err := repo.Get(context.Background(), randompkg.UID()); err != domain.ErrUserNotFound {
		t.Errorf("repo.Get error=%v, want %v", err, domain.ErrUserNotFound)
	}
}

func TestAddAcceptedCurrencyConstraintViolations(t *testing.T) {
	tx := dbpkg.SetupTX(t, dbDriver, dbSource)
	repo := userrepo.NewRepoPGS(tx)

	currency := test.SeedCurrency(t, tx)
	user := test.SeedUser(t, tx, currency)

	testCases := []struct {
		name    string
		uid     string
		symbol  string
		wantErr error
	}{
		{
			name:    "UnknownCurrency",
			uid:     user.UID,
			symbol:  "XXX",
			wantErr: domain.ErrCurrencyNotFound,
		},
		{
			name:    "UnknownUser",
			uid:     randompkg.UID(),
			symbol:  currency.Symbol,
			wantErr: domain.ErrUserNotFound,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if err := repo.AddAcceptedCurrency(context.Background(), tc.uid, tc.symbol); err != tc.wantErr {
				t.Errorf("repo.AddAcceptedCurrency(context.Background(), %v, %v) error=%v, want %v",
					tc.uid, tc.symbol, err, tc.wantErr)
			}
		})
	}
}

func TestClearAcceptedCurrencies(t *testing.T) {
	tx := dbpkg.SetupTX(t, dbDriver, dbSource)
	repo := userrepo.NewRepoPGS(tx)

	currency := test.SeedCurrency(t, tx)
	user := test.SeedUser(t, tx, currency)

	if err := repo.ClearAcceptedCurrencies(context.Background(), user.UID); err != nil {
		t.Fatalf("repo.ClearAcceptedCurrencies(context.Background(), %v) returned error: %v", user.UID, err)
	}

	got, err := repo.Get(context.Background(), user.UID)
	if err != nil {
		t.Fatalf("repo.Get(context.Background(), %v) returned error: %v", user.UID, err)
	}

	if len(got.AcceptedCurrencies) != 0 {
		t.Errorf("AcceptedCurrencies=%v, want empty", got.AcceptedCurrencies)
	}
}

func TestReplaceAcceptedCurrenciesTwiceYieldsSameSet(t *testing.T) {
	tx := dbpkg.SetupTX(t, dbDriver, dbSource)
	repo := userrepo.NewRepoPGS(tx)

	first := test.SeedCurrency(t, tx)
	second := test.SeedCurrency(t, tx)
	user := test.SeedUser(t, tx, first)

	replace := func() {
		t.Helper()

		if err := repo.ClearAcceptedCurrencies(context.Background(), user.UID); err != nil {
			t.Fatalf("repo.ClearAcceptedCurrencies(context.Background(), %v) returned error: %v", user.UID, err)
		}

		for _, c := range []domain.Currency{first, second} {
			if err := repo.AddAcceptedCurrency(context.Background(), user.UID, c.Symbol); err != nil {
				t.Fatalf("repo.AddAcceptedCurrency(context.Background(), %v, %v) returned error: %v", user.UID, c.Symbol, err)
			}
		}
	}

	replace()

	once, err := repo.Get(context.Background(), user.UID)
	if err != nil {
		t.Fatalf("repo.Get(context.Background(), %v) returned error: %v", user.UID, err)
	}

	replace()

	twice, err := repo.Get(context.Background(), user.UID)
	if err != nil {
		t.Fatalf("repo.Get(context.Background(), %v) returned error: %v", user.UID, err)
	}

	if diff := cmp.Diff(once.AcceptedCurrencies, twice.AcceptedCurrencies); diff != "" {
		t.Errorf("accepted currencies mismatch after repeat replace (-once +twice):\n%s", diff)
	}

	if len(twice.AcceptedCurrencies) != 2 {
		t.Errorf("len(AcceptedCurrencies)=%d, want 2", len(twice.AcceptedCurrencies))
	}
}

func TestFavorites(t *testing.T) {
	tx := dbpkg.SetupTX(t, dbDriver, dbSource)
	repo := userrepo.NewRepoPGS(tx)

	currency := test.SeedCurrency(t, tx)
	user := test.SeedUser(t, tx, currency)
	seller := test.SeedUser(t, tx, currency)
	offer := test.SeedOffer(t, tx, seller, currency)

	if err := repo.AddFavorite(context.Background(), user.UID, offer.ID); err != nil {
		t.Fatalf("repo.AddFavorite(context.Background(), %v, %v) returned error: %v", user.UID, offer.ID, err)
	}

	ids, err := repo.ListFavoriteOfferIDs(context.Background(), user.UID)
	if err != nil {
		t.Fatalf("repo.ListFavoriteOfferIDs(context.Background(), %v) returned error: %v", user.UID, err)
	}

	if diff := cmp.Diff([]int64{offer.ID}, ids); diff != "" {
		t.Errorf("favorite ids mismatch (-want +got):\n%s", diff)
	}

	if err := repo.RemoveFavorite(context.Background(), user.UID, offer.ID); err != nil {
		t.Fatalf("repo.RemoveFavorite(context.Background(), %v, %v) returned error: %v", user.UID, offer.ID, err)
	}

	ids, err = repo.ListFavoriteOfferIDs(context.Background(), user.UID)
	if err != nil {
		t.Fatalf("repo.ListFavoriteOfferIDs(context.Background(), %v) returned error: %v", user.UID, err)
	}

	if len(ids) != 0 {
		t.Errorf("favorite ids=%v, want empty", ids)
	}
}

func TestAddFavoriteConstraintViolations(t *testing.T) {
	tx := dbpkg.SetupTX(t, dbDriver, dbSource)
	repo := userrepo.NewRepoPGS(tx)

	currency := test.SeedCurrency(t, tx)
	user := test.SeedUser(t, tx, currency)
	offer := test.SeedOffer(t, tx, user, currency)

	if err := repo.AddFavorite(context.Background(), user.UID, offer.ID+1); err != domain.ErrOfferNotFound {
		t.Errorf("repo.AddFavorite error=%v, want %v", err, domain.ErrOfferNotFound)
	}

	if err := repo.AddFavorite(context.Background(), randompkg.UID(), offer.ID); err != domain.ErrUserNotFound {
		t.Errorf("repo.AddFavorite error=%v, want %v", err, domain.ErrUserNotFound)
	}
}
