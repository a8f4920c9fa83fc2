package servers

import (
	"time"

	openapi_types "github.com/oapi-codegen/runtime/types"
)

// Error is the body of every non 2xx response.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

type Address struct {
	FullName string `json:"fullName,omitempty"`
	Phone    string `json:"phone,omitempty"`
	Province string `json:"province"`
	District string `json:"district,omitempty"`
	Ward     string `json:"ward,omitempty"`
	Street   string `json:"street,omitempty"`
}

type Eta struct {
	MinDays int `json:"minDays"`
	MaxDays int `json:"maxDays"`
}

type NewOrder struct {
	ListingId      openapi_types.UUID `json:"listingId"`
	AddressId      openapi_types.UUID `json:"addressId"`
	ShippingMethod string             `json:"shippingMethod"`
	PaymentMethod  string             `json:"paymentMethod"`
	BuyerNote      *string            `json:"buyerNote,omitempty"`
	DeliveryNote   *string            `json:"deliveryNote,omitempty"`
}

type OrderActionRequest struct {
	Action         string  `json:"action"`
	TrackingNumber *string `json:"trackingNumber,omitempty"`
}

type CancelRequest struct {
	Reason *string `json:"reason,omitempty"`
}

type PaymentResult struct {
	Status        string  `json:"status"`
	TransactionId *string `json:"transactionId,omitempty"`
}

type RatingRequest struct {
	Rating int     `json:"rating"`
	Review *string `json:"review,omitempty"`
}

type Rating struct {
	Rating  int       `json:"rating"`
	Review  string    `json:"review,omitempty"`
	RatedAt time.Time `json:"ratedAt"`
}

type ActionDescriptor struct {
	CanAct                 bool   `json:"canAct"`
	ActionKey              string `json:"actionKey,omitempty"`
	NextStatus             string `json:"nextStatus,omitempty"`
	RequiresTrackingNumber bool   `json:"requiresTrackingNumber"`
	HumanDescription       string `json:"humanDescription"`
}

type OrderActions struct {
	Status    string           `json:"status"`
	Role      string           `json:"role"`
	Action    ActionDescriptor `json:"action"`
	CanCancel bool             `json:"canCancel"`
}

type Pricing struct {
	ItemPrice   int `json:"itemPrice"`
	ShippingFee int `json:"shippingFee"`
	PlatformFee int `json:"platformFee"`
	Total       int `json:"total"`
}

type ShippingInfo struct {
	Method          string  `json:"method"`
	Provider        string  `json:"provider,omitempty"`
	TrackingNumber  string  `json:"trackingNumber,omitempty"`
	Eta             *Eta    `json:"eta,omitempty"`
	PickupAddress   Address `json:"pickupAddress"`
	DeliveryAddress Address `json:"deliveryAddress"`
	DeliveryNote    string  `json:"deliveryNote,omitempty"`
}

type PaymentInfo struct {
	Method        string `json:"method"`
	Status        string `json:"status"`
	TransactionId string `json:"transactionId,omitempty"`
}

type OrderDetails struct {
	Id           openapi_types.UUID   `json:"id"`
	Code         string               `json:"code"`
	BuyerId      openapi_types.UUID   `json:"buyerId"`
	SellerId     openapi_types.UUID   `json:"sellerId"`
	ListingId    openapi_types.UUID   `json:"listingId"`
	Status       string               `json:"status"`
	Role         string               `json:"role"`
	Pricing      Pricing              `json:"pricing"`
	Shipping     ShippingInfo         `json:"shipping"`
	Payment      PaymentInfo          `json:"payment"`
	StatusTimes  map[string]time.Time `json:"statusTimes"`
	CancelledBy  string               `json:"cancelledBy,omitempty"`
	CancelReason string               `json:"cancelReason,omitempty"`
	BuyerRating  *Rating              `json:"buyerRating,omitempty"`
	SellerRating *Rating              `json:"sellerRating,omitempty"`
	BuyerNote    string               `json:"buyerNote,omitempty"`
	Action       ActionDescriptor     `json:"action"`
	CanCancel    bool                 `json:"canCancel"`
	CreatedAt    time.Time            `json:"createdAt"`
}

type OrderSummary struct {
	Id             openapi_types.UUID `json:"id"`
	Code           string             `json:"code"`
	ListingId      openapi_types.UUID `json:"listingId"`
	ListingTitle   string             `json:"listingTitle"`
	Role           string             `json:"role"`
	Status         string             `json:"status"`
	ShippingMethod string             `json:"shippingMethod"`
	TrackingNumber string             `json:"trackingNumber,omitempty"`
	Total          int                `json:"total"`
	CreatedAt      time.Time          `json:"createdAt"`
}

type OrderPage struct {
	Items      []OrderSummary `json:"items"`
	Page       int            `json:"page"`
	Limit      int            `json:"limit"`
	Total      int64          `json:"total"`
	TotalPages int            `json:"totalPages"`
}

type OrderStatistics struct {
	TotalOrders       int64   `json:"totalOrders"`
	ActiveOrders      int64   `json:"activeOrders"`
	CompletedOrders   int64   `json:"completedOrders"`
	CancelledOrders   int64   `json:"cancelledOrders"`
	TotalRevenue      int64   `json:"totalRevenue"`
	AverageOrderValue float64 `json:"averageOrderValue"`
	RatingCount       int64   `json:"ratingCount"`
	AverageRating     float64 `json:"averageRating"`
}

type QuoteRequest struct {
	Method      string  `json:"method"`
	From        Address `json:"from"`
	To          Address `json:"to"`
	WeightGrams *int    `json:"weightGrams,omitempty"`
}

type Quote struct {
	Method       string `json:"method"`
	ProviderName string `json:"providerName"`
	Region       string `json:"region"`
	Fee          int    `json:"fee"`
	Eta          Eta    `json:"eta"`
}

type ShippingOptionsRequest struct {
	ListingId openapi_types.UUID `json:"listingId"`
	AddressId openapi_types.UUID `json:"addressId"`
}

type MethodOption struct {
	Id   string `json:"id"`
	Name string `json:"name"`
	Fee  int    `json:"fee"`
	Eta  *Eta   `json:"eta"`
	Type string `json:"type"`
	Note string `json:"note,omitempty"`
}

type ShippingOptions struct {
	CanShip  bool           `json:"canShip"`
	Province string         `json:"province"`
	Options  []MethodOption `json:"options"`
}

type ValidateShippingRequest struct {
	ListingId openapi_types.UUID `json:"listingId"`
	Province  string             `json:"province"`
}

type ShippingValidation struct {
	CanShip      bool     `json:"canShip"`
	Regions      []string `json:"regions"`
	ShippingNote string   `json:"shippingNote,omitempty"`
}

// ListOrdersParams defines parameters for ListOrders.
type ListOrdersParams struct {
	Role   *string `form:"role,omitempty" json:"role,omitempty"`
	Status *string `form:"status,omitempty" json:"status,omitempty"`
	Page   *int    `form:"page,omitempty" json:"page,omitempty"`
	Limit  *int    `form:"limit,omitempty" json:"limit,omitempty"`
}

// GetOrderStatisticsParams defines parameters for GetOrderStatistics.
type GetOrderStatisticsParams struct {
	Role *string `form:"role,omitempty" json:"role,omitempty"`
}
