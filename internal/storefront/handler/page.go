package handler

import (
	"embed"
	"html/template"
)

//go:embed templates/*.html
var templateFS embed.FS

var pageTemplate = template.Must(template.New("store.html").ParseFS(templateFS, "templates/store.html"))

// Notices shown after a form post redirects back to the store page.
const (
	noticeCheckoutSent = "checkout-sent"
	noticeInvalidEmail = "invalid-email"
	noticeUnknownItem  = "unknown-product"
)

var noticeMessages = map[string]string{
	noticeCheckoutSent: "Thanks! We received your request.",
	noticeInvalidEmail: "Please enter a valid email address.",
	noticeUnknownItem:  "That product is no longer available.",
}

type pageData struct {
	Brand       string
	Query       string
	ResultLabel string
	Products    []productCardData
	Cart        cartPanelData
	Notice      string
}

type productCardData struct {
	ID    string
	Title string
	Price string
	Image string
}

type cartPanelData struct {
	Hidden          bool
	Empty           bool
	EmptyMessage    string
	ShowClearButton bool
	ShowEmailInput  bool
	Items           []cartRowData
	TotalQuantity   int
}

type cartRowData struct {
	ProductID string
	Title     string
	Price     string
	Image     string
	Quantity  int
}
