package reviewservice

import (
	"context"
	"testing"

	"github.com/piwegro/piwegro-api/internal/domain"
	"github.com/piwegro/piwegro-api/pkg/errorspkg"
	"github.com/piwegro/piwegro-api/pkg/randompkg"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/require"
)

func randomUser() domain.User {
	return domain.User{
		UID:   randompkg.UID(),
		Email: randompkg.Email(),
		Name:  randompkg.String(10),
	}
}

func TestPut(t *testing.T) {
	testReviewer := randomUser()
	testReviewee := randomUser()
	testText := "Great seller, fast shipping."

	testCases := []struct {
		name          string
		buildStubs    func(repo *MockRepo, users *MockUserGetter)
		checkResponse func(r domain.Review, err error)
	}{
		{
			name: "ReviewerNotFound",
			buildStubs: func(repo *MockRepo, users *MockUserGetter) {
				users.EXPECT().Get(gomock.Any(), gomock.Eq(testReviewer.UID)).
					Times(1).
					Return(domain.User{}, domain.ErrUserNotFound)
				repo.EXPECT().Put(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(0)
			},
			checkResponse: func(r domain.Review, err error) {
				require.Empty(t, r)
				require.EqualError(t, err, domain.ErrUserNotFound.Error())
			},
		},
		{
			name: "RevieweeNotFound",
			buildStubs: func(repo *MockRepo, users *MockUserGetter) {
				users.EXPECT().Get(gomock.Any(), gomock.Eq(testReviewer.UID)).
					Times(1).
					Return(testReviewer, nil)
				users.EXPECT().Get(gomock.Any(), gomock.Eq(testReviewee.UID)).
					Times(1).
					Return(domain.User{}, domain.ErrUserNotFound)
				repo.EXPECT().Put(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(0)
			},
			checkResponse: func(r domain.Review, err error) {
				require.Empty(t, r)
				require.EqualError(t, err, domain.ErrUserNotFound.Error())
			},
		},
		{
			name: "RepoError",
			buildStubs: func(repo *MockRepo, users *MockUserGetter) {
				users.EXPECT().Get(gomock.Any(), gomock.Eq(testReviewer.UID)).
					Times(1).
					Return(testReviewer, nil)
				users.EXPECT().Get(gomock.Any(), gomock.Eq(testReviewee.UID)).
					Times(1).
					Return(testReviewee, nil)
				repo.EXPECT().Put(gomock.Any(), gomock.Eq(testReviewer.UID), gomock.Eq(testReviewee.UID), gomock.Eq(testText)).
					Times(1).
					Return(errorspkg.ErrInternal)
			},
			checkResponse: func(r domain.Review, err error) {
				require.Empty(t, r)
				require.EqualError(t, err, errorspkg.ErrInternal.Error())
			},
		},
		{
			name: "OK",
			buildStubs: func(repo *MockRepo, users *MockUserGetter) {
				users.EXPECT().Get(gomock.Any(), gomock.Eq(testReviewer.UID)).
					Times(1).
					Return(testReviewer, nil)
				users.EXPECT().Get(gomock.Any(), gomock.Eq(testReviewee.UID)).
					Times(1).
					Return(testReviewee, nil)
				repo.EXPECT().Put(gomock.Any(), gomock.Eq(testReviewer.UID), gomock.Eq(testReviewee.UID), gomock.Eq(testText)).
					Times(1).
					Return(nil)
			},
			checkResponse: func(r domain.Review, err error) {
				require.NoError(t, err)
				require.Equal(t, testReviewer, r.Reviewer)
				require.Equal(t, testReviewee, r.Reviewee)
				require.Equal(t, testText, r.Text)
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
			tc.buildStubs(repo, users)

			reviewService := New(repo, users)

			r, err := reviewService.Put(context.Background(), testReviewer.UID, testReviewee.UID, testText)
			tc.checkResponse(r, err)
		})
	}
}

func TestListByReviewee(t *testing.T) {
	testReviewee := randomUser()
	testReviews := []domain.Review{
		{Reviewer: randomUser(), Reviewee: testReviewee, Text: "Would buy again."},
		{Reviewer: randomUser(), Reviewee: testReviewee, Text: "Slow to respond."},
	}

	testCases := []struct {
		name          string
		buildStubs    func(repo *MockRepo, users *MockUserGetter)
		checkResponse func(reviews []domain.Review, err error)
	}{
		{
			name: "UserNotFound",
			buildStubs: func(repo *MockRepo, users *MockUserGetter) {
				users.EXPECT().Get(gomock.Any(), gomock.Eq(testReviewee.UID)).
					Times(1).
					Return(domain.User{}, domain.ErrUserNotFound)
				repo.EXPECT().ListByReviewee(gomock.Any(), gomock.Any()).Times(0)
			},
			checkResponse: func(reviews []domain.Review, err error) {
				require.Nil(t, reviews)
				require.EqualError(t, err, domain.ErrUserNotFound.Error())
			},
		},
		{
			name: "OK",
			buildStubs: func(repo *MockRepo, users *MockUserGetter) {
				users.EXPECT().Get(gomock.Any(), gomock.Eq(testReviewee.UID)).
					Times(1).
					Return(testReviewee, nil)
				repo.EXPECT().ListByReviewee(gomock.Any(), gomock.Eq(testReviewee.UID)).
					Times(1).
					Return(testReviews, nil)
			},
			checkResponse: func(reviews []domain.Review, err error) {
				require.NoError(t, err)
				require.Equal(t, testReviews, reviews)
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
			tc.buildStubs(repo, users)

			reviewService := New(repo, users)

			reviews, err := reviewService.ListByReviewee(context.Background(), testReviewee.UID)
			tc.checkResponse(reviews, err)
		})
	}
}
