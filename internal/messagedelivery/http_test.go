package messagedelivery

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"
	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/piwegro/piwegro-api/internal/domain"
	"github.com/piwegro/piwegro-api/internal/identity"
	"github.com/piwegro/piwegro-api/internal/middleware"
	"github.com/piwegro/piwegro-api/pkg/errorspkg"
	"github.com/piwegro/piwegro-api/pkg/randompkg"
	"github.com/piwegro/piwegro-api/pkg/web"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	os.Exit(m.Run())
}

func testUser() domain.User {
	return domain.User{
		UID:   randompkg.UID(),
		Email: randompkg.Email(),
		Name:  randompkg.String(10),
	}
}

func setupAuth(t *testing.T, r *http.Request, provider *identity.JWTProvider, record identity.Record) {
	t.Helper()

	token, err := provider.IssueToken(record, time.Minute)
	if err != nil {
		t.Fatalf("provider.IssueToken(%+v, time.Minute) returned error: %v", record, err)
	}

	r.Header.Set(middleware.AuthorizationHeaderKey,
		fmt.Sprintf("%s %s", middleware.AuthorizationTypeBearer, token))
}

func TestSendHandler(t *testing.T) {
	sender := testUser()
	receiver := testUser()
	record := identity.Record{UID: sender.UID, Email: sender.Email, DisplayName: sender.Name}

	sent := domain.Message{
		ID:       1,
		Sender:   sender,
		Receiver: receiver,
		Content:  "Is the chair still available?",
		SentAt:   time.Now().Truncate(time.Second).UTC(),
	}

	tokenSymmetricKey := randompkg.String(32)

	provider, err := identity.NewJWTProvider(tokenSymmetricKey)
	if err != nil {
		t.Fatalf("identity.NewJWTProvider(%v) returned error: %v", tokenSymmetricKey, err)
	}

	type requestBody struct {
		ReceiverUID string `json:"receiver_uid"`
		Content     string `json:"content"`
	}

	validBody := requestBody{ReceiverUID: receiver.UID, Content: sent.Content}

	testCases := []struct {
		name           string
		requestBody    requestBody
		setupAuth      func(t *testing.T, r *http.Request)
		buildStubs     func(service *MockService)
		wantStatusCode int
		wantError      string
		checkData      func(resData any)
	}{
		{
			name:        "OK",
			requestBody: validBody,
			setupAuth: func(t *testing.T, r *http.Request) {
				setupAuth(t, r, provider, record)
			},
			buildStubs: func(service *MockService) {
				service.EXPECT().Send(gomock.Any(),
					gomock.Eq(sender.UID), gomock.Eq(receiver.UID), gomock.Eq(sent.Content)).
					Times(1).
					Return(sent, nil)
			},
			wantStatusCode: http.StatusOK,
			checkData: func(resData any) {
				got, ok := resData.(*data)
				if !ok {
					t.Errorf("res.Data=%v, failed type conversion", resData)
				}

				// Participants serialize as uids, never as nested users.
				want := messageResponse{
					ID:          sent.ID,
					SenderUID:   sender.UID,
					ReceiverUID: receiver.UID,
					Content:     sent.Content,
					SentAt:      sent.SentAt,
				}

				compareSentAt := cmpopts.EquateApproxTime(time.Second)
				if diff := cmp.Diff(want, got.Message, compareSentAt); diff != "" {
					t.Errorf("res.Data mismatch (-want +got):\n%s", diff)
				}
			},
		},
		{
			name:        "NoAuthorization",
			requestBody: validBody,
			setupAuth:   func(t *testing.T, r *http.Request) {},
			buildStubs: func(service *MockService) {
				service.EXPECT().Send(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(0)
			},
			wantStatusCode: http.StatusUnauthorized,
		},
		{
			name:        "MissingContent",
			requestBody: requestBody{ReceiverUID: receiver.UID},
			setupAuth: func(t *testing.T, r *http.Request) {
				setupAuth(t, r, provider, record)
			},
			buildStubs: func(service *MockService) {
				service.EXPECT().Send(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(0)
			},
			wantStatusCode: http.StatusBadRequest,
			wantError:      "Content is required",
		},
		{
			name:        "ReceiverNotFound",
			requestBody: validBody,
			setupAuth: func(t *testing.T, r *http.Request) {
				setupAuth(t, r, provider, record)
			},
			buildStubs: func(service *MockService) {
				service.EXPECT().Send(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Times(1).
					Return(domain.Message{}, domain.ErrUserNotFound)
			},
			wantStatusCode: http.StatusNotFound,
			wantError:      domain.ErrUserNotFound.Error(),
		},
		{
			name:        "AlreadySent",
			requestBody: validBody,
			setupAuth: func(t *testing.T, r *http.Request) {
				setupAuth(t, r, provider, record)
			},
			buildStubs: func(service *MockService) {
				service.EXPECT().Send(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Times(1).
					Return(domain.Message{}, domain.ErrMessageAlreadySent)
			},
			wantStatusCode: http.StatusConflict,
			wantError:      domain.ErrMessageAlreadySent.Error(),
		},
	}

	for i := range testCases {
		tc := testCases[i]

		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			service := NewMockService(ctrl)
			handler := NewHandler(service)

			server := gin.New()
			server.POST("/messages", middleware.AuthMiddleware(provider), handler.Send)

			tc.buildStubs(service)

			body, err := json.Marshal(tc.requestBody)
			if err != nil {
				t.Fatalf("Encoding request body error: %v", err)
			}

			req, err := http.NewRequest(http.MethodPost, "/messages", bytes.NewReader(body))
			if err != nil {
				t.Fatalf("Creating request error: %v", err)
			}

			tc.setupAuth(t, req)

			recorder := httptest.NewRecorder()
			server.ServeHTTP(recorder, req)

			if got := recorder.Code; got != tc.wantStatusCode {
				t.Errorf("Status code: got %v, want %v", got, tc.wantStatusCode)
			}

			res := web.Response{Data: &data{}}
			if err := json.NewDecoder(recorder.Body).Decode(&res); err != nil {
				t.Errorf("Decoding response body error: %v", err)
			}

			if tc.wantStatusCode == http.StatusOK {
				tc.checkData(res.Data)
			} else if tc.wantError != "" && res.Error != tc.wantError {
				t.Errorf("res.Error=%q, want %q", res.Error, tc.wantError)
			}
		})
	}
}

func TestListBetweenHandler(t *testing.T) {
	user := testUser()
	other := testUser()
	record := identity.Record{UID: user.UID, Email: user.Email, DisplayName: user.Name}

	conversation := []domain.Message{
		{ID: 1, Sender: user, Receiver: other, Content: "Hi", SentAt: time.Now().UTC()},
		{ID: 2, Sender: other, Receiver: user, Content: "Hello", SentAt: time.Now().UTC()},
	}

	tokenSymmetricKey := randompkg.String(32)

	provider, err := identity.NewJWTProvider(tokenSymmetricKey)
	if err != nil {
		t.Fatalf("identity.NewJWTProvider(%v) returned error: %v", tokenSymmetricKey, err)
	}

	testCases := []struct {
		name           string
		buildStubs     func(service *MockService)
		wantStatusCode int
		wantError      string
		wantMessages   int
	}{
		{
			name: "OK",
			buildStubs: func(service *MockService) {
				service.EXPECT().ListBetween(gomock.Any(), gomock.Eq(user.UID), gomock.Eq(other.UID)).
					Times(1).
					Return(conversation, nil)
			},
			wantStatusCode: http.StatusOK,
			wantMessages:   2,
		},
		{
			name: "OtherUserNotFound",
			buildStubs: func(service *MockService) {
				service.EXPECT().ListBetween(gomock.Any(), gomock.Eq(user.UID), gomock.Eq(other.UID)).
					Times(1).
					Return(nil, domain.ErrUserNotFound)
			},
			wantStatusCode: http.StatusNotFound,
			wantError:      domain.ErrUserNotFound.Error(),
		},
		{
			name: "InternalServerError",
			buildStubs: func(service *MockService) {
				service.EXPECT().ListBetween(gomock.Any(), gomock.Eq(user.UID), gomock.Eq(other.UID)).
					Times(1).
					Return(nil, errorspkg.ErrInternal)
			},
			wantStatusCode: http.StatusInternalServerError,
			wantError:      errorspkg.ErrInternal.Error(),
		},
	}

	for i := range testCases {
		tc := testCases[i]

		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			service := NewMockService(ctrl)
			handler := NewHandler(service)

			server := gin.New()
			server.GET("/messages/with/:uid", middleware.AuthMiddleware(provider), handler.ListBetween)

			tc.buildStubs(service)

			req, err := http.NewRequest(http.MethodGet, "/messages/with/"+other.UID, nil)
			if err != nil {
				t.Fatalf("Creating request error: %v", err)
			}

			setupAuth(t, req, provider, record)

			recorder := httptest.NewRecorder()
			server.ServeHTTP(recorder, req)

			if got := recorder.Code; got != tc.wantStatusCode {
				t.Errorf("Status code: got %v, want %v", got, tc.wantStatusCode)
			}

			res := web.Response{Data: &dataMessages{}}
			if err := json.NewDecoder(recorder.Body).Decode(&res); err != nil {
				t.Errorf("Decoding response body error: %v", err)
			}

			if tc.wantStatusCode == http.StatusOK {
				got := res.Data.(*dataMessages)
				if len(got.Messages) != tc.wantMessages {
					t.Errorf("len(messages)=%d, want %d", len(got.Messages), tc.wantMessages)
				}
			} else if tc.wantError != "" && res.Error != tc.wantError {
				t.Errorf("res.Error=%q, want %q", res.Error, tc.wantError)
			}
		})
	}
}

func TestRecipientsHandler(t *testing.T) {
	t.Parallel()

	user := testUser()
	first := testUser()
	second := testUser()
	record := identity.Record{UID: user.UID, Email: user.Email, DisplayName: user.Name}

	tokenSymmetricKey := randompkg.String(32)

	provider, err := identity.NewJWTProvider(tokenSymmetricKey)
	if err != nil {
		t.Fatalf("identity.NewJWTProvider(%v) returned error: %v", tokenSymmetricKey, err)
	}

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service := NewMockService(ctrl)
	handler := NewHandler(service)

	server := gin.New()
	server.GET("/messages/recipients", middleware.AuthMiddleware(provider), handler.Recipients)

	service.EXPECT().Recipients(gomock.Any(), gomock.Eq(user.UID)).
		Times(1).
		Return([]domain.User{first, second}, nil)

	req, err := http.NewRequest(http.MethodGet, "/messages/recipients", nil)
	if err != nil {
		t.Fatalf("Creating request error: %v", err)
	}

	setupAuth(t, req, provider, record)

	recorder := httptest.NewRecorder()
	server.ServeHTTP(recorder, req)

	if got := recorder.Code; got != http.StatusOK {
		t.Errorf("Status code: got %v, want %v", got, http.StatusOK)
	}

	res := web.Response{Data: &dataRecipients{}}
	if err := json.NewDecoder(recorder.Body).Decode(&res); err != nil {
		t.Errorf("Decoding response body error: %v", err)
	}

	got := res.Data.(*dataRecipients)
	if diff := cmp.Diff([]string{first.UID, second.UID}, got.UIDs); diff != "" {
		t.Errorf("recipient uids mismatch (-want +got):\n%s", diff)
	}
}
