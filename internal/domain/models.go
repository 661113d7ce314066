package domain

// Product is a catalog row. Optional columns stay nullable so the
// filter/sort layer can tell "absent" from zero.
type Product struct {
	ID          string   `db:"id" json:"id"`
	ArtisanID   string   `db:"artisan_id" json:"artisan_id"`
	Name        string   `db:"name" json:"name"`
	Description string   `db:"description" json:"description,omitempty"`
	Price       float64  `db:"price" json:"price"`
	ImageURL    string   `db:"image_url" json:"image_url,omitempty"`
	Category    string   `db:"category" json:"category"`
	Rating      *float64 `db:"rating" json:"rating,omitempty"`
	ReviewsCnt  *int64   `db:"reviews_cnt" json:"reviews_cnt,omitempty"`
	InStock     *bool    `db:"in_stock" json:"in_stock,omitempty"`
	CreatedAt   string   `db:"created_at" json:"created_at"`
}

// Available treats a missing in_stock flag as available.
func (p Product) Available() bool {
	return p.InStock == nil || *p.InStock
}

// RatingOrZero is the sort value for products not yet rated.
func (p Product) RatingOrZero() float64 {
	if p.Rating == nil {
		return 0
	}
	return *p.Rating
}

type Artisan struct {
	ID              string   `db:"id" json:"id"`
	UserID          *string  `db:"user_id" json:"user_id,omitempty"`
	Name            string   `db:"name" json:"name"`
	City            string   `db:"city" json:"city,omitempty"`
	State           string   `db:"state" json:"state,omitempty"`
	Bio             string   `db:"bio" json:"bio,omitempty"`
	AvatarURL       string   `db:"avatar_url" json:"avatar_url,omitempty"`
	Phone           string   `db:"phone" json:"phone,omitempty"`
	IsPhoneVerified bool     `db:"is_phone_verified" json:"is_phone_verified"`
	Rating          *float64 `db:"rating" json:"rating,omitempty"`
	CreatedAt       string   `db:"created_at" json:"created_at"`
}

type SellerVerification struct {
	ID          string  `db:"id" json:"id"`
	UserID      string  `db:"user_id" json:"user_id"`
	ArtisanID   *string `db:"artisan_id" json:"artisan_id,omitempty"`
	DocumentURL *string `db:"document_url" json:"document_url,omitempty"`
	Status      string  `db:"status" json:"status"` // pending | approved | rejected
	Notes       *string `db:"notes" json:"notes,omitempty"`
	CreatedAt   string  `db:"created_at" json:"created_at"`
	ReviewedAt  *string `db:"reviewed_at" json:"reviewed_at,omitempty"`
}

// ArtisanInsert is the explicit write payload for a new artisan profile.
// Every optional column the store accepts is enumerated here; anything
// else is rejected before it reaches the store.
type ArtisanInsert struct {
	UserID          *string
	Name            string
	City            *string
	State           *string
	Bio             *string
	AvatarURL       *string
	Phone           *string
	IsPhoneVerified bool
	Rating          *float64
}

// VerificationInsert is the write payload for a seller-verification row.
type VerificationInsert struct {
	UserID      string
	ArtisanID   *string
	DocumentURL *string
	Status      string
	Notes       *string
}

// Availability is the JSON shape of the stock probe endpoint.
type Availability struct {
	Status string `json:"status"` // IN_STOCK | OUT_OF_STOCK
}
