// Package services serves the static catalog of offerings shown on the
// booking form. The catalog has no store behind it.
package services

import (
	"encoding/json"
	"net/http"
)

// Service describes a single offering in the catalog.
type Service struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
}

// Catalog is the fixed list of offerings.
var Catalog = []Service{
	{
		ID:          "pc-repair",
		Name:        "PC/Laptop Repair & Support",
		Description: "Complete hardware and software troubleshooting, virus removal, and system optimization.",
		Icon:        "🖥️",
	},
	{
		ID:          "networking",
		Name:        "Wi-Fi & Networking",
		Description: "Network setup, Wi-Fi optimization, router configuration, and connectivity solutions.",
		Icon:        "📶",
	},
	{
		ID:          "custom-builds",
		Name:        "Custom PC Builds",
		Description: "Custom computer builds tailored to your needs - gaming, business, or workstations.",
		Icon:        "⚙️",
	},
	{
		ID:          "business-support",
		Name:        "Business IT Support",
		Description: "Comprehensive IT support for small businesses including maintenance and consulting.",
		Icon:        "🏢",
	},
	{
		ID:          "general-consult",
		Name:        "General Consultation",
		Description: "Expert IT consultation and advice for your technology needs and planning.",
		Icon:        "💡",
	},
}

// Handler serves the catalog.
type Handler struct{}

// NewHandler creates a services handler
func NewHandler() *Handler {
	return &Handler{}
}

// List handles GET /services requests
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(Catalog)
}
