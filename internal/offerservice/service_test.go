package offerservice

import (
	"context"
	"fmt"
	"testing"

	"github.com/piwegro/piwegro-api/internal/domain"
	"github.com/piwegro/piwegro-api/pkg/errorspkg"
	"github.com/piwegro/piwegro-api/pkg/randompkg"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/require"
)

func randomSeller() domain.User {
	return domain.User{
		UID:   randompkg.UID(),
		Email: randompkg.Email(),
		Name:  randompkg.String(10),
	}
}

func savedImage(id int64) domain.Image {
	name := randompkg.String(8)

	return domain.Image{
		ID:        id,
		Original:  name + "_original.jpg",
		Preview:   name + "_preview.jpg",
		Thumbnail: name + "_thumbnail.jpg",
	}
}

func TestCreateWithSellerID(t *testing.T) {
	testSeller := randomSeller()
	testCurrency := domain.Currency{Name: "Harnas", Symbol: "HAR", ExchangeRate: 1}
	testImage := savedImage(1)

	type input struct {
		title          string
		description    string
		currencySymbol string
		amount         int64
		sellerUID      string
		imageIDs       []int64
		location       string
	}

	testInput := input{
		title:          "Kitchen chair",
		description:    "Sturdy, barely used",
		currencySymbol: testCurrency.Symbol,
		amount:         15,
		sellerUID:      testSeller.UID,
		imageIDs:       []int64{testImage.ID},
		location:       "Warsaw",
	}

	testCases := []struct {
		name          string
		input         input
		buildStubs    func(users *MockUserGetter, currencies *MockCurrencyGetter, images *MockImageGetter)
		checkResponse func(offer domain.Offer, err error)
	}{
		{
			name:  "SellerNotFound",
			input: testInput,
			buildStubs: func(users *MockUserGetter, currencies *MockCurrencyGetter, images *MockImageGetter) {
				users.EXPECT().Get(gomock.Any(), gomock.Eq(testSeller.UID)).
					Times(1).
					Return(domain.User{}, domain.ErrUserNotFound)
				currencies.EXPECT().GetBySymbol(gomock.Any(), gomock.Any()).Times(0)
				images.EXPECT().Get(gomock.Any(), gomock.Any()).Times(0)
			},
			checkResponse: func(offer domain.Offer, err error) {
				require.Empty(t, offer)
				require.EqualError(t, err, domain.ErrUserNotFound.Error())
			},
		},
		{
			name:  "CurrencyNotFound",
			input: testInput,
			buildStubs: func(users *MockUserGetter, currencies *MockCurrencyGetter, images *MockImageGetter) {
				users.EXPECT().Get(gomock.Any(), gomock.Eq(testSeller.UID)).
					Times(1).
					Return(testSeller, nil)
				currencies.EXPECT().GetBySymbol(gomock.Any(), gomock.Eq(testCurrency.Symbol)).
					Times(1).
					Return(domain.Currency{}, domain.ErrCurrencyNotFound)
				images.EXPECT().Get(gomock.Any(), gomock.Any()).Times(0)
			},
			checkResponse: func(offer domain.Offer, err error) {
				require.Empty(t, offer)
				require.EqualError(t, err, domain.ErrCurrencyNotFound.Error())
			},
		},
		{
			name:  "ImageNotFound",
			input: testInput,
			buildStubs: func(users *MockUserGetter, currencies *MockCurrencyGetter, images *MockImageGetter) {
				users.EXPECT().Get(gomock.Any(), gomock.Eq(testSeller.UID)).
					Times(1).
					Return(testSeller, nil)
				currencies.EXPECT().GetBySymbol(gomock.Any(), gomock.Eq(testCurrency.Symbol)).
					Times(1).
					Return(testCurrency, nil)
				images.EXPECT().Get(gomock.Any(), gomock.Eq(testImage.ID)).
					Times(1).
					Return(domain.Image{}, domain.ErrImageNotFound)
			},
			checkResponse: func(offer domain.Offer, err error) {
				require.Empty(t, offer)
				require.EqualError(t, err, domain.ErrImageNotFound.Error())
			},
		},
		{
			name:  "ImageNotSaved",
			input: testInput,
			buildStubs: func(users *MockUserGetter, currencies *MockCurrencyGetter, images *MockImageGetter) {
				users.EXPECT().Get(gomock.Any(), gomock.Eq(testSeller.UID)).
					Times(1).
					Return(testSeller, nil)
				currencies.EXPECT().GetBySymbol(gomock.Any(), gomock.Eq(testCurrency.Symbol)).
					Times(1).
					Return(testCurrency, nil)
				images.EXPECT().Get(gomock.Any(), gomock.Eq(testImage.ID)).
					Times(1).
					Return(domain.Image{ID: testImage.ID}, nil)
			},
			checkResponse: func(offer domain.Offer, err error) {
				require.Empty(t, offer)
				require.EqualError(t, err, domain.ErrImageNotSaved.Error())
			},
		},
		{
			name:  "OK",
			input: testInput,
			buildStubs: func(users *MockUserGetter, currencies *MockCurrencyGetter, images *MockImageGetter) {
				users.EXPECT().Get(gomock.Any(), gomock.Eq(testSeller.UID)).
					Times(1).
					Return(testSeller, nil)
				currencies.EXPECT().GetBySymbol(gomock.Any(), gomock.Eq(testCurrency.Symbol)).
					Times(1).
					Return(testCurrency, nil)
				images.EXPECT().Get(gomock.Any(), gomock.Eq(testImage.ID)).
					Times(1).
					Return(testImage, nil)
			},
			checkResponse: func(offer domain.Offer, err error) {
				require.NoError(t, err)
				require.False(t, offer.IsAdded())
				require.Equal(t, testInput.title, offer.Title)
				require.Equal(t, testInput.description, offer.Description)
				require.Equal(t, domain.Price{Amount: testInput.amount, Currency: testCurrency}, offer.Price)
				require.Equal(t, testSeller, offer.Seller)
				require.Equal(t, []domain.Image{testImage}, offer.Images)
				require.Equal(t, testInput.location, offer.Location)
				require.NotZero(t, offer.CreatedAt)
			},
		},
	}

	for i := range testCases {
		tc := testCases[i]

		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			repo := NewMockRepo(ctrl)
			users := NewMockUserGetter(ctrl)
			currencies := NewMockCurrencyGetter(ctrl)
			images := NewMockImageGetter(ctrl)
			service := New(repo, users, currencies, images)

			tc.buildStubs(users, currencies, images)

			tc.checkResponse(service.CreateWithSellerID(
				context.Background(),
				tc.input.title,
				tc.input.description,
				tc.input.currencySymbol,
				tc.input.amount,
				tc.input.sellerUID,
				tc.input.imageIDs,
				tc.input.location,
			))
		})
	}
}

func titledOffer(id int64, title string) domain.Offer {
	return domain.Offer{ID: id, Title: title}
}

func TestSearch(t *testing.T) {
	catalog := []domain.Offer{
		titledOffer(1, "Table"),
		titledOffer(2, "Chairs"),
		titledOffer(3, "Chair"),
		titledOffer(4, "chair"),
	}

	testCases := []struct {
		name          string
		query         string
		page          int
		buildStubs    func(repo *MockRepo)
		checkResponse func(offers []domain.Offer, err error)
	}{
		{
			name:  "RepoError",
			query: "Chair",
			page:  0,
			buildStubs: func(repo *MockRepo) {
				repo.EXPECT().ListAll(gomock.Any()).
					Times(1).
					Return(nil, errorspkg.ErrInternal)
			},
			checkResponse: func(offers []domain.Offer, err error) {
				require.Nil(t, offers)
				require.EqualError(t, err, errorspkg.ErrInternal.Error())
			},
		},
		{
			name:  "EmptyQueryMatchesNothing",
			query: "",
			page:  0,
			buildStubs: func(repo *MockRepo) {
				repo.EXPECT().ListAll(gomock.Any()).
					Times(1).
					Return(catalog, nil)
			},
			checkResponse: func(offers []domain.Offer, err error) {
				require.NoError(t, err)
				require.Empty(t, offers)
			},
		},
		{
			name:  "RanksByDistance",
			query: "Chair",
			page:  0,
			buildStubs: func(repo *MockRepo) {
				repo.EXPECT().ListAll(gomock.Any()).
					Times(1).
					Return(catalog, nil)
			},
			checkResponse: func(offers []domain.Offer, err error) {
				require.NoError(t, err)
				// Exact matches first, then the one-edit-away title.
				// "Table" is too far away to match at all, and ties
				// keep catalog order.
				require.Equal(t, []domain.Offer{catalog[2], catalog[3], catalog[1]}, offers)
			},
		},
		{
			name:  "PageBeyondMatches",
			query: "Chair",
			page:  3,
			buildStubs: func(repo *MockRepo) {
				repo.EXPECT().ListAll(gomock.Any()).
					Times(1).
					Return(catalog, nil)
			},
			checkResponse: func(offers []domain.Offer, err error) {
				require.NoError(t, err)
				require.Empty(t, offers)
			},
		},
		{
			name:  "NegativePageTreatedAsFirst",
			query: "Chair",
			page:  -2,
			buildStubs: func(repo *MockRepo) {
				repo.EXPECT().ListAll(gomock.Any()).
					Times(1).
					Return(catalog, nil)
			},
			checkResponse: func(offers []domain.Offer, err error) {
				require.NoError(t, err)
				require.Equal(t, []domain.Offer{catalog[2], catalog[3], catalog[1]}, offers)
			},
		},
	}

	for i := range testCases {
		tc := testCases[i]

		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			repo := NewMockRepo(ctrl)
			service := New(repo, NewMockUserGetter(ctrl), NewMockCurrencyGetter(ctrl), NewMockImageGetter(ctrl))

			tc.buildStubs(repo)

			tc.checkResponse(service.Search(context.Background(), tc.query, tc.page))
		})
	}
}

func TestSearchPagination(t *testing.T) {
	t.Parallel()

	catalog := make([]domain.Offer, 0, 20)
	for i := 0; i < 20; i++ {
		catalog = append(catalog, titledOffer(int64(i+1), fmt.Sprintf("Bicycle %02d", i)))
	}

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := NewMockRepo(ctrl)
	service := New(repo, NewMockUserGetter(ctrl), NewMockCurrencyGetter(ctrl), NewMockImageGetter(ctrl))

	repo.EXPECT().ListAll(gomock.Any()).Times(2).Return(catalog, nil)

	firstPage, err := service.Search(context.Background(), "Bicycle 00", 0)
	require.NoError(t, err)
	require.Len(t, firstPage, ResultsPerPage)

	secondPage, err := service.Search(context.Background(), "Bicycle 00", 1)
	require.NoError(t, err)
	require.Len(t, secondPage, len(catalog)-ResultsPerPage)
	require.NotContains(t, firstPage, secondPage[0])
}
