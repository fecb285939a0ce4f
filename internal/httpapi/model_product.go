package httpapi

import productdomain "github.com/88-AL3Xtx/go-ecommerce-api/internal/domains/products/domain"

// ProductRequest is the write payload for product create/replace. Price is
// a pointer so a supplied zero price passes the required check.
type ProductRequest struct {
	ProductName string   `json:"product_name" binding:"max=100"`
	Price       *float64 `json:"price" binding:"required,gte=0"`
}

// Product is the serialized product shape.
type Product struct {
	Id          int64   `json:"id"`
	ProductName string  `json:"product_name"`
	Price       float64 `json:"price"`
}

func (r ProductRequest) toDomain() (*productdomain.Product, error) {
	var price float64
	if r.Price != nil {
		price = *r.Price
	}
	return productdomain.NewProduct(0, r.ProductName, price)
}

func fromDomainProduct(product *productdomain.Product) Product {
	if product == nil {
		return Product{}
	}
	return Product{
		Id:          product.ID,
		ProductName: product.ProductName,
		Price:       product.Price,
	}
}

func fromDomainProducts(products []*productdomain.Product) []Product {
	result := make([]Product, 0, len(products))
	for _, product := range products {
		result = append(result, fromDomainProduct(product))
	}
	return result
}
