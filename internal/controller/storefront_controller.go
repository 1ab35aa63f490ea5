package controller

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/gofiber/fiber/v2"

	"vitrine_backend/internal/model"
	"vitrine_backend/internal/showcase"
	"vitrine_backend/internal/site"
	"vitrine_backend/pkg/database"
)

const (
	fallbackCardImage = "https://images.unsplash.com/photo-1499951360447-b19be8fe80f5?q=80&w=1600&auto=format&fit=crop"
	fallbackSoldImage = "https://images.unsplash.com/photo-1505691938895-1758d7feb511?q=80&w=1600&auto=format&fit=crop"
)

const (
	homePageSize = 12
	soldPageSize = 4
)

type homeCard struct {
	ID           string
	Title        string
	PropertyType string
	Neighborhood string
	City         string
	Price        string
	Image        string
	Beds         int
	Baths        int
	Size         float64
	Parking      int
}

type soldCard struct {
	ID           string
	Title        string
	Neighborhood string
	Price        string
	Image        string
}

type homeData struct {
	Featured      []homeCard
	Sold          []soldCard
	Cities        []string
	PropertyTypes []string
}

type detailView struct {
	ID           string
	Title        string
	PropertyType string
	Description  string
	Price        string
	City         string
	Neighborhood string
	StatusLabel  string
	Images       []string
	Beds         int
	Baths        int
	Size         float64
	Parking      int
	WhatsAppURL  string
}

// formatPrice renders a value the Brazilian way: R$ 2.850.000, no cents.
func formatPrice(value float64) string {
	n := int64(math.Round(value))

	sign := ""
	if n < 0 {
		sign = "-"
		n = -n
	}

	digits := fmt.Sprintf("%d", n)
	var groups []string
	for len(digits) > 3 {
		groups = append([]string{digits[len(digits)-3:]}, groups...)
		digits = digits[:len(digits)-3]
	}
	groups = append([]string{digits}, groups...)

	return "R$ " + sign + strings.Join(groups, ".")
}

func statusLabel(status model.PropertyStatus) string {
	switch status {
	case model.PropertyStatusSold:
		return "Vendido"
	case model.PropertyStatusReserved:
		return "Reservado"
	}
	return "Disponível"
}

func propertySpecs(property *model.Property) model.PropertySpecs {
	if property.Specs == nil {
		return model.PropertySpecs{}
	}
	return property.Specs.Data()
}

func firstImage(property *model.Property, fallback string) string {
	if len(property.Images) > 0 {
		return property.Images[0]
	}
	return fallback
}

func mapHomeCard(property *model.Property) homeCard {
	specs := propertySpecs(property)
	return homeCard{
		ID:           property.ID,
		Title:        property.Title,
		PropertyType: property.PropertyType,
		Neighborhood: property.Neighborhood,
		City:         property.City,
		Price:        formatPrice(property.Price),
		Image:        firstImage(property, fallbackCardImage),
		Beds:         specs.Beds,
		Baths:        specs.Baths,
		Size:         specs.Size,
		Parking:      specs.Parking,
	}
}

func mapSoldCard(property *model.Property) soldCard {
	return soldCard{
		ID:           property.ID,
		Title:        property.Title,
		Neighborhood: property.Neighborhood,
		Price:        "Vendido",
		Image:        firstImage(property, fallbackSoldImage),
	}
}

func showcaseHomeData() homeData {
	data := homeData{
		Cities:        showcase.Cities(),
		PropertyTypes: showcase.PropertyTypes(),
	}
	for _, listing := range showcase.Featured() {
		data.Featured = append(data.Featured, homeCard{
			ID:           listing.ID,
			Title:        listing.Title,
			PropertyType: listing.PropertyType,
			Neighborhood: listing.Neighborhood,
			City:         listing.City,
			Price:        listing.Price,
			Image:        listing.Image,
			Beds:         listing.Specs.Beds,
			Baths:        listing.Specs.Baths,
			Size:         listing.Specs.Size,
			Parking:      listing.Specs.Parking,
		})
	}
	for _, listing := range showcase.Sold() {
		data.Sold = append(data.Sold, soldCard{
			ID:           listing.ID,
			Title:        listing.Title,
			Neighborhood: listing.Neighborhood,
			Price:        listing.Price,
			Image:        listing.Image,
		})
	}
	return data
}

func loadHomeData(city, propertyType string) homeData {
	db := database.GetDB()
	if db == nil {
		return showcaseHomeData()
	}

	query := db.Where("status = ?", model.PropertyStatusActive)
	if city != "" {
		query = query.Where("city = ?", city)
	}
	if propertyType != "" {
		query = query.Where("property_type = ?", propertyType)
	}

	var activeRows []model.Property
	activeErr := query.Order("created_at desc").Limit(homePageSize).Find(&activeRows).Error

	var soldRows []model.Property
	soldErr := db.Where("status = ?", model.PropertyStatusSold).
		Order("created_at desc").Limit(soldPageSize).Find(&soldRows).Error

	type filterOption struct {
		City         string
		PropertyType string
	}
	var options []filterOption
	optionsErr := db.Model(&model.Property{}).
		Where("status = ?", model.PropertyStatusActive).
		Distinct("city", "property_type").
		Find(&options).Error

	if activeErr != nil || soldErr != nil || optionsErr != nil ||
		(len(activeRows) == 0 && len(soldRows) == 0) {
		return showcaseHomeData()
	}

	data := homeData{}
	for i := range activeRows {
		data.Featured = append(data.Featured, mapHomeCard(&activeRows[i]))
	}
	for i := range soldRows {
		data.Sold = append(data.Sold, mapSoldCard(&soldRows[i]))
	}

	citySet := map[string]bool{}
	typeSet := map[string]bool{}
	for _, option := range options {
		if option.City != "" && !citySet[option.City] {
			citySet[option.City] = true
			data.Cities = append(data.Cities, option.City)
		}
		if option.PropertyType != "" && !typeSet[option.PropertyType] {
			typeSet[option.PropertyType] = true
			data.PropertyTypes = append(data.PropertyTypes, option.PropertyType)
		}
	}
	sort.Strings(data.Cities)
	sort.Strings(data.PropertyTypes)

	return data
}

// Home renders the storefront landing page, optionally filtered by city and
// property type.
func Home(c *fiber.Ctx) error {
	city := strings.TrimSpace(c.Query("city"))
	propertyType := strings.TrimSpace(c.Query("type"))

	data := loadHomeData(city, propertyType)

	return c.Render("home", fiber.Map{
		"BrokerName":    site.BrokerName,
		"BrokerCred":    site.BrokerCredential,
		"BrokerPhone":   site.BrokerPhoneHuman,
		"WhatsAppURL":   site.BuildWhatsAppURL(site.WhatsAppBaseMessage),
		"SelectedCity":  city,
		"SelectedType":  propertyType,
		"Featured":      data.Featured,
		"Sold":          data.Sold,
		"Cities":        data.Cities,
		"PropertyTypes": data.PropertyTypes,
	})
}

func renderNotFound(c *fiber.Ctx) error {
	return c.Status(fiber.StatusNotFound).Render("notfound", fiber.Map{
		"BrokerName": site.BrokerName,
	})
}

func showcaseDetail(listing showcase.Listing) detailView {
	return detailView{
		ID:           listing.ID,
		Title:        listing.Title,
		PropertyType: listing.PropertyType,
		Description:  listing.Description,
		Price:        listing.Price,
		City:         listing.City,
		Neighborhood: listing.Neighborhood,
		StatusLabel:  "Disponível",
		Images:       []string{listing.Image},
		Beds:         listing.Specs.Beds,
		Baths:        listing.Specs.Baths,
		Size:         listing.Specs.Size,
		Parking:      listing.Specs.Parking,
		WhatsAppURL: site.BuildWhatsAppURL(fmt.Sprintf(
			"Ola, vi o imovel %s em %s, %s e tenho interesse.",
			listing.Title, listing.Neighborhood, listing.City)),
	}
}

// PropertyDetails renders a single listing page. Anything missing, failing
// or outside the public statuses is a plain not-found, never partial data.
func PropertyDetails(c *fiber.Ctx) error {
	id := c.Params("id")

	db := database.GetDB()
	if db == nil {
		listing, ok := showcase.ByID(id)
		if !ok {
			return renderNotFound(c)
		}
		return c.Render("property", fiber.Map{
			"BrokerName": site.BrokerName,
			"Property":   showcaseDetail(listing),
		})
	}

	var property model.Property
	err := db.Where("id = ? AND status IN ?", id, model.PublicStatuses()).
		First(&property).Error
	if err != nil {
		return renderNotFound(c)
	}

	specs := propertySpecs(&property)
	images := []string(property.Images)
	if len(images) == 0 {
		images = []string{fallbackCardImage}
	}

	view := detailView{
		ID:           property.ID,
		Title:        property.Title,
		PropertyType: property.PropertyType,
		Description:  property.Description,
		Price:        formatPrice(property.Price),
		City:         property.City,
		Neighborhood: property.Neighborhood,
		StatusLabel:  statusLabel(property.Status),
		Images:       images,
		Beds:         specs.Beds,
		Baths:        specs.Baths,
		Size:         specs.Size,
		Parking:      specs.Parking,
		WhatsAppURL: site.BuildWhatsAppURL(fmt.Sprintf(
			"Ola, vi o imovel %s em %s, %s e tenho interesse.",
			property.Title, property.Neighborhood, property.City)),
	}

	return c.Render("property", fiber.Map{
		"BrokerName": site.BrokerName,
		"Property":   view,
	})
}
