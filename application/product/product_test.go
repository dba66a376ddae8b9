package product_test

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"github.com/stretchr/testify/mock"

	appproduct "github.com/Samu0104/loucura-total/application/product"
	productmocks "github.com/Samu0104/loucura-total/mocks/repository/product"
	"github.com/Samu0104/loucura-total/model"
)

func TestProductApp_SearchProducts(t *testing.T) {
	type fields struct {
		productRepo *productmocks.ProductRepository
	}
	type args struct {
		ctx  context.Context
		term string
	}
	tests := []struct {
		name     string
		fields   fields
		args     args
		mockCall func(f fields)
		want     *model.SearchResponse
		wantErr  bool
	}{
		{
			name: "success: substring match",
			fields: fields{
				productRepo: productmocks.NewProductRepository(t),
			},
			args: args{
				ctx:  context.Background(),
				term: "shirt",
			},
			mockCall: func(f fields) {
				items := []model.ProductEntity{
					{ID: 1, Name: "blue shirt", Price: 49.9},
					{ID: 3, Name: "shirt XL", Price: 59.9},
				}
				f.productRepo.
					On("Search", mock.Anything, "shirt").
					Return(items, nil).
					Once()
			},
			want: &model.SearchResponse{
				SearchTerm: "shirt",
				Items: []model.ProductEntity{
					{ID: 1, Name: "blue shirt", Price: 49.9},
					{ID: 3, Name: "shirt XL", Price: 59.9},
				},
			},
			wantErr: false,
		},
		{
			name: "success: no matches yields empty set",
			fields: fields{
				productRepo: productmocks.NewProductRepository(t),
			},
			args: args{
				ctx:  context.Background(),
				term: "zzz",
			},
			mockCall: func(f fields) {
				f.productRepo.
					On("Search", mock.Anything, "zzz").
					Return([]model.ProductEntity{}, nil).
					Once()
			},
			want: &model.SearchResponse{
				SearchTerm: "zzz",
				Items:      []model.ProductEntity{},
			},
			wantErr: false,
		},
		{
			name: "error: storage failure",
			fields: fields{
				productRepo: productmocks.NewProductRepository(t),
			},
			args: args{
				ctx:  context.Background(),
				term: "shirt",
			},
			mockCall: func(f fields) {
				f.productRepo.
					On("Search", mock.Anything, "shirt").
					Return(nil, errors.New("disk I/O error")).
					Once()
			},
			want:    nil,
			wantErr: true,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			if tt.mockCall != nil {
				tt.mockCall(tt.fields)
			}

			app := appproduct.NewProductApp(tt.fields.productRepo)

			got, err := app.SearchProducts(tt.args.ctx, tt.args.term)
			if (err != nil) != tt.wantErr {
				t.Fatalf("SearchProducts() error = %v, wantErr %v", err, tt.wantErr)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Fatalf("SearchProducts() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestProductApp_ListCatalog(t *testing.T) {
	type fields struct {
		productRepo *productmocks.ProductRepository
	}
	tests := []struct {
		name     string
		fields   fields
		mockCall func(f fields)
		want     *model.ProductListResponse
		wantErr  bool
	}{
		{
			name: "success: full catalog",
			fields: fields{
				productRepo: productmocks.NewProductRepository(t),
			},
			mockCall: func(f fields) {
				items := []model.ProductEntity{
					{ID: 1, Name: "blue shirt", Price: 49.9},
					{ID: 2, Name: "jeans", Price: 120.0},
				}
				f.productRepo.
					On("List", mock.Anything).
					Return(items, nil).
					Once()
			},
			want: &model.ProductListResponse{
				Items: []model.ProductEntity{
					{ID: 1, Name: "blue shirt", Price: 49.9},
					{ID: 2, Name: "jeans", Price: 120.0},
				},
			},
			wantErr: false,
		},
		{
			name: "error: storage failure",
			fields: fields{
				productRepo: productmocks.NewProductRepository(t),
			},
			mockCall: func(f fields) {
				f.productRepo.
					On("List", mock.Anything).
					Return(nil, errors.New("disk I/O error")).
					Once()
			},
			want:    nil,
			wantErr: true,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			if tt.mockCall != nil {
				tt.mockCall(tt.fields)
			}

			app := appproduct.NewProductApp(tt.fields.productRepo)

			got, err := app.ListCatalog(context.Background())
			if (err != nil) != tt.wantErr {
				t.Fatalf("ListCatalog() error = %v, wantErr %v", err, tt.wantErr)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Fatalf("ListCatalog() = %v, want %v", got, tt.want)
			}
		})
	}
}
