// Package schemaorg builds the schema.org JSON-LD records embedded in
// storefront pages: Organization, Product, BreadcrumbList and WebSite.
package schemaorg

import (
	"strconv"

	"github.com/smesiteli/storefront/internal/catalog/domain"
	"github.com/smesiteli/storefront/internal/platform/config"
)

const (
	schemaContext = "https://schema.org"

	AvailabilityInStock    = "https://schema.org/InStock"
	AvailabilityOutOfStock = "https://schema.org/OutOfStock"
	conditionNew           = "https://schema.org/NewCondition"
)

type Organization struct {
	Context      string       `json:"@context"`
	Type         string       `json:"@type"`
	Name         string       `json:"name"`
	URL          string       `json:"url"`
	Logo         string       `json:"logo"`
	ContactPoint ContactPoint `json:"contactPoint"`
	SameAs       []string     `json:"sameAs"`
}

type ContactPoint struct {
	Type              string   `json:"@type"`
	Telephone         string   `json:"telephone"`
	ContactType       string   `json:"contactType"`
	AvailableLanguage []string `json:"availableLanguage"`
}

type Product struct {
	Context         string           `json:"@context"`
	Type            string           `json:"@type"`
	Name            string           `json:"name"`
	Image           []string         `json:"image"`
	Description     string           `json:"description"`
	Brand           Brand            `json:"brand"`
	Offers          Offer            `json:"offers"`
	AggregateRating *AggregateRating `json:"aggregateRating,omitempty"`
}

type Brand struct {
	Type string `json:"@type"`
	Name string `json:"name"`
}

type Offer struct {
	Type          string `json:"@type"`
	URL           string `json:"url"`
	PriceCurrency string `json:"priceCurrency"`
	Price         string `json:"price"`
	Availability  string `json:"availability"`
	ItemCondition string `json:"itemCondition"`
}

type AggregateRating struct {
	Type        string `json:"@type"`
	RatingValue string `json:"ratingValue"`
	ReviewCount string `json:"reviewCount"`
}

type BreadcrumbList struct {
	Context         string     `json:"@context"`
	Type            string     `json:"@type"`
	ItemListElement []ListItem `json:"itemListElement"`
}

type ListItem struct {
	Type     string `json:"@type"`
	Position int    `json:"position"`
	Name     string `json:"name"`
	Item     string `json:"item,omitempty"`
}

type WebSite struct {
	Context         string       `json:"@context"`
	Type            string       `json:"@type"`
	Name            string       `json:"name"`
	URL             string       `json:"url"`
	PotentialAction SearchAction `json:"potentialAction"`
}

type SearchAction struct {
	Type       string `json:"@type"`
	Target     string `json:"target"`
	QueryInput string `json:"query-input"`
}

// Breadcrumb is one navigational step. An empty URL marks the current,
// non-navigable page; by convention the last item of a trail omits it.
type Breadcrumb struct {
	Name string
	URL  string
}

// Builder derives JSON-LD records from the site configuration. All
// methods are pure; the same inputs always yield the same record.
type Builder struct {
	site config.SiteConfig
}

func NewBuilder(site config.SiteConfig) *Builder {
	return &Builder{site: site}
}

func (b *Builder) Organization() Organization {
	return Organization{
		Context: schemaContext,
		Type:    "Organization",
		Name:    b.site.Name,
		URL:     b.site.BaseURL,
		Logo:    b.site.BaseURL + "/logo.png",
		ContactPoint: ContactPoint{
			Type:              "ContactPoint",
			Telephone:         b.site.PhoneRaw,
			ContactType:       "customer service",
			AvailableLanguage: b.site.Languages,
		},
		SameAs: []string{
			b.site.Social.Facebook,
			b.site.Social.Instagram,
			b.site.Social.WhatsApp,
		},
	}
}

func (b *Builder) Product(p domain.Product) Product {
	out := Product{
		Context:     schemaContext,
		Type:        "Product",
		Name:        p.Name,
		Image:       p.Images,
		Description: p.Description,
		Brand: Brand{
			Type: "Brand",
			Name: b.site.Name,
		},
		Offers: Offer{
			Type:          "Offer",
			URL:           b.site.BaseURL + "/products/" + p.Slug,
			PriceCurrency: p.Currency,
			Price:         strconv.FormatInt(p.Price, 10),
			Availability:  availability(p.Availability),
			ItemCondition: conditionNew,
		},
	}
	// The aggregate rating needs both the value and the review count;
	// unrated products carry no aggregateRating member at all.
	if p.Rating != nil {
		out.AggregateRating = &AggregateRating{
			Type:        "AggregateRating",
			RatingValue: strconv.FormatFloat(p.Rating.Value, 'f', -1, 64),
			ReviewCount: strconv.Itoa(p.Rating.ReviewCount),
		}
	}
	return out
}

func (b *Builder) Breadcrumbs(items []Breadcrumb) BreadcrumbList {
	elements := make([]ListItem, len(items))
	for i, item := range items {
		el := ListItem{
			Type:     "ListItem",
			Position: i + 1,
			Name:     item.Name,
		}
		if item.URL != "" {
			el.Item = b.site.BaseURL + item.URL
		}
		elements[i] = el
	}
	return BreadcrumbList{
		Context:         schemaContext,
		Type:            "BreadcrumbList",
		ItemListElement: elements,
	}
}

func (b *Builder) WebSite() WebSite {
	return WebSite{
		Context: schemaContext,
		Type:    "WebSite",
		Name:    b.site.Name,
		URL:     b.site.BaseURL,
		PotentialAction: SearchAction{
			Type:       "SearchAction",
			Target:     b.site.BaseURL + "/search?q={search_term_string}",
			QueryInput: "required name=search_term_string",
		},
	}
}

func availability(inStock bool) string {
	if inStock {
		return AvailabilityInStock
	}
	return AvailabilityOutOfStock
}
