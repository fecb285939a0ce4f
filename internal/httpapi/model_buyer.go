package httpapi

import buyerdomain "github.com/88-AL3Xtx/go-ecommerce-api/internal/domains/buyers/domain"

// BuyerRequest is the write payload for buyer create/replace.
type BuyerRequest struct {
	Name    string `json:"name" binding:"required,max=100"`
	Address string `json:"address" binding:"required,max=100"`
	Email   string `json:"email" binding:"required,email,max=100"`
}

// Buyer is the serialized buyer shape.
type Buyer struct {
	Id      int64  `json:"id"`
	Name    string `json:"name"`
	Address string `json:"address"`
	Email   string `json:"email"`
}

func (r BuyerRequest) toDomain() (*buyerdomain.Buyer, error) {
	return buyerdomain.NewBuyer(0, r.Name, r.Address, r.Email)
}

func fromDomainBuyer(buyer *buyerdomain.Buyer) Buyer {
	if buyer == nil {
		return Buyer{}
	}
	return Buyer{
		Id:      buyer.ID,
		Name:    buyer.Name,
		Address: buyer.Address,
		Email:   buyer.Email,
	}
}

func fromDomainBuyers(buyers []*buyerdomain.Buyer) []Buyer {
	result := make([]Buyer, 0, len(buyers))
	for _, buyer := range buyers {
		result = append(result, fromDomainBuyer(buyer))
	}
	return result
}
