// Package showcase bundles a static portfolio used whenever the backing
// store is unconfigured or has nothing to show. The public pages are never
// empty.
package showcase

import "sort"

type Specs struct {
	Beds    int
	Baths   int
	Size    float64
	Parking int
}

type Listing struct {
	ID           string
	Title        string
	PropertyType string
	Description  string
	Neighborhood string
	City         string
	Price        string
	Image        string
	Specs        Specs
}

type SoldListing struct {
	ID           string
	Title        string
	Neighborhood string
	Price        string
	Image        string
}

const defaultDescription = "Imóvel de alto padrão com curadoria exclusiva. " +
	"Entre em contato para informações completas e agendamento de visita."

var featured = []Listing{
	{
		ID:           "1",
		Title:        "Cobertura Duplex com Vista Mar",
		PropertyType: "cobertura",
		Description:  defaultDescription,
		Neighborhood: "Ponta Verde",
		City:         "Maceió",
		Price:        "R$ 2.850.000",
		Image:        "https://images.unsplash.com/photo-1502005229762-cf1b2da7c5d6?q=80&w=1600&auto=format&fit=crop",
		Specs:        Specs{Beds: 4, Baths: 5, Size: 320, Parking: 3},
	},
	{
		ID:           "2",
		Title:        "Apartamento Garden Exclusivo",
		PropertyType: "apartamento",
		Description:  defaultDescription,
		Neighborhood: "Jatiúca",
		City:         "Maceió",
		Price:        "R$ 1.980.000",
		Image:        "https://images.unsplash.com/photo-1484154218962-a197022b5858?q=80&w=1600&auto=format&fit=crop",
		Specs:        Specs{Beds: 3, Baths: 4, Size: 210, Parking: 2},
	},
	{
		ID:           "3",
		Title:        "Casa Contemporânea em Condomínio",
		PropertyType: "casa",
		Description:  defaultDescription,
		Neighborhood: "Guaxuma",
		City:         "Maceió",
		Price:        "R$ 3.600.000",
		Image:        "https://images.unsplash.com/photo-1499951360447-b19be8fe80f5?q=80&w=1600&auto=format&fit=crop",
		Specs:        Specs{Beds: 5, Baths: 6, Size: 420, Parking: 4},
	},
}

var sold = []SoldListing{
	{
		ID:           "s1",
		Title:        "Apartamento Vista Atlântica",
		Neighborhood: "Pajuçara",
		Price:        "Vendido em 28 dias",
		Image:        "https://images.unsplash.com/photo-1505691938895-1758d7feb511?q=80&w=1600&auto=format&fit=crop",
	},
	{
		ID:           "s2",
		Title:        "Casa de Praia com Pé na Areia",
		Neighborhood: "Riacho Doce",
		Price:        "Vendido acima do valor",
		Image:        "https://images.unsplash.com/photo-1507089947368-19c1da9775ae?q=80&w=1600&auto=format&fit=crop",
	},
}

func Featured() []Listing {
	return featured
}

func Sold() []SoldListing {
	return sold
}

// ByID looks a showcase listing up by its identifier.
func ByID(id string) (Listing, bool) {
	for _, listing := range featured {
		if listing.ID == id {
			return listing, true
		}
	}
	return Listing{}, false
}

func Cities() []string {
	return distinct(func(l Listing) string { return l.City })
}

func PropertyTypes() []string {
	return distinct(func(l Listing) string { return l.PropertyType })
}

func distinct(pick func(Listing) string) []string {
	seen := map[string]bool{}
	var values []string
	for _, listing := range featured {
		value := pick(listing)
		if value != "" && !seen[value] {
			seen[value] = true
			values = append(values, value)
		}
	}
	sort.Strings(values)
	return values
}
