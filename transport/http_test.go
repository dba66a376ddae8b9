package transport_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/mock"

	"github.com/Samu0104/loucura-total/constant"
	accountappmocks "github.com/Samu0104/loucura-total/mocks/application/account"
	productappmocks "github.com/Samu0104/loucura-total/mocks/application/product"
	purchaseappmocks "github.com/Samu0104/loucura-total/mocks/application/purchase"
	"github.com/Samu0104/loucura-total/model"
	"github.com/Samu0104/loucura-total/transport"
	cerr "github.com/Samu0104/loucura-total/utils/errors"
)

type mocks struct {
	accountApp  *accountappmocks.AccountApp
	productApp  *productappmocks.ProductApp
	purchaseApp *purchaseappmocks.PurchaseApp
}

func newTestHandler(t *testing.T) (http.Handler, mocks) {
	t.Helper()
	m := mocks{
		accountApp:  accountappmocks.NewAccountApp(t),
		productApp:  productappmocks.NewProductApp(t),
		purchaseApp: purchaseappmocks.NewPurchaseApp(t),
	}
	return transport.NewTransport(m.accountApp, m.productApp, m.purchaseApp), m
}

func postForm(handler http.Handler, path string, form url.Values) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	return rec
}

func TestSearchProducts_EmptyTermRedirects(t *testing.T) {
	handler, _ := newTestHandler(t)

	for _, term := range []string{"", "   ", "\t"} {
		req := httptest.NewRequest(http.MethodGet, "/search?search_term="+url.QueryEscape(term), nil)
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		if rec.Code != http.StatusFound {
			t.Fatalf("search with term %q: status = %d, want %d", term, rec.Code, http.StatusFound)
		}
		if loc := rec.Header().Get("Location"); loc != "/" {
			t.Fatalf("search with term %q: Location = %q, want /", term, loc)
		}
	}
	// the product app must never have been queried; mock expectations
	// are asserted on cleanup
}

func TestSearchProducts_PassesTrimmedTerm(t *testing.T) {
	handler, m := newTestHandler(t)

	m.productApp.
		On("SearchProducts", mock.Anything, "shirt").
		Return(&model.SearchResponse{
			SearchTerm: "shirt",
			Items:      []model.ProductEntity{{ID: 1, Name: "blue shirt", Price: 49.9}},
		}, nil).
		Once()

	req := httptest.NewRequest(http.MethodGet, "/search?search_term="+url.QueryEscape("  shirt  "), nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("search status = %d, want %d", rec.Code, http.StatusOK)
	}
}

func TestRegister_MissingFieldFailsValidation(t *testing.T) {
	handler, _ := newTestHandler(t)

	form := url.Values{}
	form.Set("name", "Maria Silva")
	form.Set("dob", "1999-04-12")
	// email missing
	form.Set("password", "password123")

	rec := postForm(handler, "/register", form)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("register status = %d, want %d", rec.Code, http.StatusBadRequest)
	}

	var body struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if body.Code != constant.ErrorTypeCode[constant.ErrValidation] {
		t.Fatalf("register error code = %q, want %q", body.Code, constant.ErrorTypeCode[constant.ErrValidation])
	}
}

func TestRegister_Success(t *testing.T) {
	handler, m := newTestHandler(t)

	m.accountApp.
		On("Register", mock.Anything, &model.RegisterRequest{
			FullName:  "Maria Silva",
			BirthDate: "1999-04-12",
			Email:     "maria@example.com",
			Password:  "password123",
		}).
		Return(&model.RegisterResponse{FullName: "Maria Silva", Email: "maria@example.com"}, nil).
		Once()

	form := url.Values{}
	form.Set("name", "Maria Silva")
	form.Set("dob", "1999-04-12")
	form.Set("email", "maria@example.com")
	form.Set("password", "password123")

	rec := postForm(handler, "/register", form)

	if rec.Code != http.StatusOK {
		t.Fatalf("register status = %d, want %d: %s", rec.Code, http.StatusOK, rec.Body.String())
	}
}

func TestLogin_InvalidCredentials(t *testing.T) {
	handler, m := newTestHandler(t)

	m.accountApp.
		On("Login", mock.Anything, &model.LoginRequest{Email: "maria@example.com", Password: "wrong"}).
		Return(nil, cerr.SetCustomError(constant.ErrInvalidCredentials)).
		Once()

	form := url.Values{}
	form.Set("email", "maria@example.com")
	form.Set("password", "wrong")

	rec := postForm(handler, "/login", form)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("login status = %d, want %d", rec.Code, http.StatusBadRequest)
	}

	var body struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if body.Message != constant.ErrorTypeMessage[constant.ErrInvalidCredentials] {
		t.Fatalf("login message = %q, want %q", body.Message, constant.ErrorTypeMessage[constant.ErrInvalidCredentials])
	}
}

func TestCreatePurchase_CollectsFormFields(t *testing.T) {
	handler, m := newTestHandler(t)

	m.purchaseApp.
		On("CreatePurchase", mock.Anything, &model.PurchaseRequest{
			CustomerName: "Maria Silva",
			Email:        "maria@example.com",
			Phone:        "11987654321",
			PostalCode:   "01001-000",
			HouseNumber:  "42",
			ProductID:    "7",
			Quantity:     "3",
		}).
		Return(&model.PurchaseResponse{PurchaseID: 10}, nil).
		Once()

	form := url.Values{}
	form.Set("name", "Maria Silva")
	form.Set("email", "maria@example.com")
	form.Set("phone", "11987654321")
	form.Set("cep", "01001-000")
	form.Set("house_no", "42")
	form.Set("product_id", "7")
	form.Set("quantity", "3")

	rec := postForm(handler, "/purchase", form)

	if rec.Code != http.StatusOK {
		t.Fatalf("purchase status = %d, want %d: %s", rec.Code, http.StatusOK, rec.Body.String())
	}
}

func TestCreatePurchase_MissingFieldFailsValidation(t *testing.T) {
	handler, _ := newTestHandler(t)

	form := url.Values{}
	form.Set("name", "Maria Silva")
	form.Set("email", "maria@example.com")
	// the remaining five fields are missing

	rec := postForm(handler, "/purchase", form)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("purchase status = %d, want %d", rec.Code, http.StatusBadRequest)
	}
}

func TestCatalog_Landing(t *testing.T) {
	handler, m := newTestHandler(t)

	m.productApp.
		On("ListCatalog", mock.Anything).
		Return(&model.ProductListResponse{Items: []model.ProductEntity{{ID: 1, Name: "blue shirt", Price: 49.9}}}, nil).
		Once()

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("catalog status = %d, want %d", rec.Code, http.StatusOK)
	}
}
