package validation

import "github.com/samudra-tours/samudra-tours-api/models"

// CreateOrderRequest is the public booking intake payload. The total price is
// never accepted from the client; the server reprices from the tiers.
type CreateOrderRequest struct {
	CustomerName  string `json:"customerName" validate:"required,max=255"`
	CustomerPhone string `json:"customerPhone" validate:"required,max=64"`
	DestinationID uint   `json:"destinationId" validate:"required"`
	Participants  int    `json:"participants" validate:"required,gte=1"`
	DepartureDate string `json:"departureDate" validate:"omitempty,datetime=2006-01-02"`
	Notes         string `json:"notes" validate:"max=2000"`
}

// RecordPaymentRequest confirms one received payment against an order.
type RecordPaymentRequest struct {
	Amount float64 `json:"amount" validate:"required,gt=0"`
	Notes  string  `json:"notes" validate:"max=2000"`
}

// UpdateParticipantsRequest changes an order's group size.
type UpdateParticipantsRequest struct {
	Participants int `json:"participants" validate:"required,gte=1"`
}

// UpdateDepartureDateRequest changes or clears an order's departure date.
type UpdateDepartureDateRequest struct {
	DepartureDate string `json:"departureDate" validate:"omitempty,datetime=2006-01-02"`
}

// UpsertDestinationRequest creates or updates a catalog entry. ID zero means create.
type UpsertDestinationRequest struct {
	ID              uint                  `json:"id"`
	Slug            string                `json:"slug" validate:"required,max=255"`
	Title           string                `json:"title" validate:"required,max=255"`
	PriceTiers      []models.PriceTier    `json:"priceTiers"`
	Duration        int                   `json:"duration" validate:"gte=1"`
	MinPeople       int                   `json:"minPeople" validate:"gte=1"`
	ImageURL        string                `json:"imageUrl"`
	ImageKey        string                `json:"imageKey"`
	GalleryImages   []string              `json:"galleryImages"`
	GalleryKeys     []string              `json:"galleryKeys"`
	LongDescription string                `json:"longDescription"`
	Itinerary       []models.ItineraryDay `json:"itinerary"`
	MapLat          float64               `json:"mapLat"`
	MapLng          float64               `json:"mapLng"`
	Facilities      []string              `json:"facilities"`
	Categories      []string              `json:"categories"`
}

// UpsertBlogPostRequest creates or updates an article. ID zero means create.
type UpsertBlogPostRequest struct {
	ID       uint   `json:"id"`
	Slug     string `json:"slug" validate:"required,max=255"`
	Title    string `json:"title" validate:"required,max=255"`
	ImageURL string `json:"imageUrl"`
	ImageKey string `json:"imageKey"`
	Category string `json:"category" validate:"max=100"`
	Author   string `json:"author" validate:"max=255"`
	Content  string `json:"content" validate:"required"`
}

// CreateReviewRequest is the public review intake payload.
type CreateReviewRequest struct {
	Name          string `json:"name" validate:"required,max=255"`
	Rating        int    `json:"rating" validate:"required,gte=1,lte=5"`
	Comment       string `json:"comment" validate:"required,max=2000"`
	DestinationID *uint  `json:"destinationId"`
}

// CreateInvoiceRequest asks for a shareable invoice. The total is advisory
// only; the server always bills from the order row.
type CreateInvoiceRequest struct {
	OrderID int64   `json:"orderId" validate:"required"`
	Total   float64 `json:"total" validate:"gte=0"`
}

// UpsertSettingsRequest replaces the site-wide settings singleton.
type UpsertSettingsRequest struct {
	Theme             string             `json:"theme" validate:"omitempty,oneof=light dark"`
	AccentColor       string             `json:"accentColor" validate:"max=64"`
	BrandName         string             `json:"brandName" validate:"required,max=255"`
	Tagline           string             `json:"tagline" validate:"max=255"`
	LogoLightURL      string             `json:"logoLightUrl"`
	LogoDarkURL       string             `json:"logoDarkUrl"`
	Email             string             `json:"email" validate:"omitempty,email"`
	Address           string             `json:"address" validate:"max=1000"`
	WhatsappNumber    string             `json:"whatsappNumber" validate:"max=64"`
	FacebookURL       string             `json:"facebookUrl"`
	InstagramURL      string             `json:"instagramUrl"`
	TwitterURL        string             `json:"twitterUrl"`
	BankName          string             `json:"bankName" validate:"max=255"`
	BankAccountNumber string             `json:"bankAccountNumber" validate:"max=64"`
	BankAccountHolder string             `json:"bankAccountHolder" validate:"max=255"`
	HeroSlides        []models.HeroSlide `json:"heroSlides"`
}
