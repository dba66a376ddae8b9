package transport

import (
	"net/http"
	"strings"

	"github.com/gorilla/mux"
	httpSwagger "github.com/swaggo/http-swagger"

	accountapp "github.com/Samu0104/loucura-total/application/account"
	productapp "github.com/Samu0104/loucura-total/application/product"
	purchaseapp "github.com/Samu0104/loucura-total/application/purchase"
	"github.com/Samu0104/loucura-total/constant"
	"github.com/Samu0104/loucura-total/model"
	"github.com/Samu0104/loucura-total/utils/errors"
	validatorx "github.com/Samu0104/loucura-total/utils/validator"
)

type RestHandler struct {
	AccountApp  accountapp.AccountApp
	ProductApp  productapp.ProductApp
	PurchaseApp purchaseapp.PurchaseApp
}

func NewTransport(AccountApp accountapp.AccountApp, ProductApp productapp.ProductApp, PurchaseApp purchaseapp.PurchaseApp) http.Handler {
	mux := mux.NewRouter()

	rh := &RestHandler{
		AccountApp:  AccountApp,
		ProductApp:  ProductApp,
		PurchaseApp: PurchaseApp,
	}

	// Swagger UI
	mux.PathPrefix("/swagger/").Handler(httpSwagger.WrapHandler)

	mux.HandleFunc("/", rh.Catalog).Methods(http.MethodGet)
	mux.HandleFunc("/register", rh.Register).Methods(http.MethodPost)
	mux.HandleFunc("/login", rh.Login).Methods(http.MethodPost)
	mux.HandleFunc("/account/delete", rh.DeleteAccount).Methods(http.MethodPost)
	mux.HandleFunc("/purchase", rh.CreatePurchase).Methods(http.MethodPost)
	mux.HandleFunc("/search", rh.SearchProducts).Methods(http.MethodGet)

	// middleware
	mux.Use(LoggingMiddleware())

	return mux
}

// Register handler
// @Summary Register account
// @Description Create a new storefront account
// @Tags Account
// @Accept x-www-form-urlencoded
// @Produce json
// @Param name formData string true "Full name"
// @Param dob formData string true "Date of birth"
// @Param email formData string true "Email"
// @Param password formData string true "Password"
// @Success 200 {object} model.RegisterResponse
// @Failure 400 {object} errors.CustomError
// @Router /register [post]
func (s *RestHandler) Register(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if err := r.ParseForm(); err != nil {
		writeError(w, r, errors.SetCustomError(constant.ErrValidation))
		return
	}

	req := model.RegisterRequest{
		FullName:  r.FormValue("name"),
		BirthDate: r.FormValue("dob"),
		Email:     r.FormValue("email"),
		Password:  r.FormValue("password"),
	}

	if err := validatorx.ValidateStruct(&req); err != nil {
		writeError(w, r, errors.SetCustomError(constant.ErrValidation))
		return
	}

	res, err := s.AccountApp.Register(ctx, &req)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeSuccess(w, res)
}

// Login handler
// @Summary Authenticate account
// @Description Check email and password, returns a found/not-found signal
// @Tags Account
// @Accept x-www-form-urlencoded
// @Produce json
// @Param email formData string true "Email"
// @Param password formData string true "Password"
// @Success 200 {object} model.LoginResponse
// @Failure 400 {object} errors.CustomError
// @Router /login [post]
func (s *RestHandler) Login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if err := r.ParseForm(); err != nil {
		writeError(w, r, errors.SetCustomError(constant.ErrValidation))
		return
	}

	req := model.LoginRequest{
		Email:    r.FormValue("email"),
		Password: r.FormValue("password"),
	}

	if err := validatorx.ValidateStruct(&req); err != nil {
		writeError(w, r, errors.SetCustomError(constant.ErrValidation))
		return
	}

	res, err := s.AccountApp.Login(ctx, &req)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeSuccess(w, res)
}

// DeleteAccount handler
// @Summary Delete account
// @Description Delete the account matching the submitted credentials
// @Tags Account
// @Accept x-www-form-urlencoded
// @Produce json
// @Param email formData string true "Email"
// @Param password formData string true "Password"
// @Success 200 {string} string "success"
// @Failure 400 {object} errors.CustomError
// @Router /account/delete [post]
func (s *RestHandler) DeleteAccount(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if err := r.ParseForm(); err != nil {
		writeError(w, r, errors.SetCustomError(constant.ErrValidation))
		return
	}

	req := model.DeleteAccountRequest{
		Email:    r.FormValue("email"),
		Password: r.FormValue("password"),
	}

	if err := validatorx.ValidateStruct(&req); err != nil {
		writeError(w, r, errors.SetCustomError(constant.ErrValidation))
		return
	}

	if err := s.AccountApp.DeleteAccount(ctx, &req); err != nil {
		writeError(w, r, err)
		return
	}

	writeSuccess(w, nil)
}

// CreatePurchase handler
// @Summary Submit purchase
// @Description Record a purchase for a registered account and catalog product
// @Tags Purchase
// @Accept x-www-form-urlencoded
// @Produce json
// @Param name formData string true "Purchaser name"
// @Param email formData string true "Purchaser email"
// @Param phone formData string true "Phone number"
// @Param cep formData string true "Postal code"
// @Param house_no formData string true "House number"
// @Param product_id formData string true "Product id"
// @Param quantity formData string true "Quantity"
// @Success 200 {object} model.PurchaseResponse
// @Failure 400 {object} errors.CustomError
// @Router /purchase [post]
func (s *RestHandler) CreatePurchase(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if err := r.ParseForm(); err != nil {
		writeError(w, r, errors.SetCustomError(constant.ErrValidation))
		return
	}

	req := model.PurchaseRequest{
		CustomerName: r.FormValue("name"),
		Email:        r.FormValue("email"),
		Phone:        r.FormValue("phone"),
		PostalCode:   r.FormValue("cep"),
		HouseNumber:  r.FormValue("house_no"),
		ProductID:    r.FormValue("product_id"),
		Quantity:     r.FormValue("quantity"),
	}

	if err := validatorx.ValidateStruct(&req); err != nil {
		writeError(w, r, errors.SetCustomError(constant.ErrValidation))
		return
	}

	res, err := s.PurchaseApp.CreatePurchase(ctx, &req)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeSuccess(w, res)
}

// SearchProducts handler
// @Summary Search catalog
// @Description Substring search on product name; empty terms redirect to the landing page
// @Tags Catalog
// @Produce json
// @Param search_term query string false "Search term"
// @Success 200 {object} model.SearchResponse
// @Success 302 {string} string "redirect to /"
// @Router /search [get]
func (s *RestHandler) SearchProducts(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	term := strings.TrimSpace(r.URL.Query().Get("search_term"))
	if term == "" {
		http.Redirect(w, r, "/", http.StatusFound)
		return
	}

	res, err := s.ProductApp.SearchProducts(ctx, term)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeSuccess(w, res)
}

// Catalog handler
// @Summary Catalog landing
// @Description List the catalog
// @Tags Catalog
// @Produce json
// @Success 200 {object} model.ProductListResponse
// @Router / [get]
func (s *RestHandler) Catalog(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	res, err := s.ProductApp.ListCatalog(ctx)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeSuccess(w, res)
}
