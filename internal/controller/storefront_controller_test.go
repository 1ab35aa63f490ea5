package controller

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"vitrine_backend/internal/model"
)

func seedStorefront(t *testing.T, db *gorm.DB) {
	t.Helper()

	listings := []model.Property{
		{
			Title:        "Cobertura Vista Mar",
			PropertyType: "cobertura",
			Description:  "Cobertura duplex com vista permanente para o mar de Ponta Verde.",
			Price:        2850000,
			City:         "Maceió",
			Neighborhood: "Ponta Verde",
			Status:       model.PropertyStatusActive,
			Images:       datatypes.NewJSONSlice([]string{"https://example.com/cobertura.jpg"}),
		},
		{
			Title:        "Casa no Interior",
			PropertyType: "casa",
			Description:  "Casa ampla com quintal em cidade tranquila do interior alagoano.",
			Price:        700000,
			City:         "Arapiraca",
			Neighborhood: "Centro",
			Status:       model.PropertyStatusActive,
			Images:       datatypes.NewJSONSlice([]string{"https://example.com/casa.jpg"}),
		},
		{
			Title:        "Apartamento Vendido",
			PropertyType: "apartamento",
			Description:  "Apartamento com vista para o mar vendido em tempo recorde.",
			Price:        1200000,
			City:         "Maceió",
			Neighborhood: "Pajuçara",
			Status:       model.PropertyStatusSold,
			Images:       datatypes.NewJSONSlice([]string{"https://example.com/vendido.jpg"}),
		},
	}
	for i := range listings {
		require.NoError(t, db.Create(&listings[i]).Error)
	}
}

func TestHome(t *testing.T) {
	t.Run("Unfiltered Shows Active And Sold", func(t *testing.T) {
		db := newTestDB(t)
		app := newTestApp(t, true)
		seedStorefront(t, db)

		resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/", nil), -1)
		require.NoError(t, err)
		require.Equal(t, http.StatusOK, resp.StatusCode)

		body := bodyString(t, resp)
		assert.Contains(t, body, "Cobertura Vista Mar")
		assert.Contains(t, body, "Casa no Interior")
		assert.Contains(t, body, "Apartamento Vendido")
		assert.Contains(t, body, "R$ 2.850.000")
	})

	t.Run("City And Type Filters Combine", func(t *testing.T) {
		db := newTestDB(t)
		app := newTestApp(t, true)
		seedStorefront(t, db)

		params := url.Values{}
		params.Set("city", "Maceió")
		params.Set("type", "cobertura")

		resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/?"+params.Encode(), nil), -1)
		require.NoError(t, err)
		require.Equal(t, http.StatusOK, resp.StatusCode)

		body := bodyString(t, resp)
		assert.Contains(t, body, "Cobertura Vista Mar")
		assert.NotContains(t, body, "Casa no Interior")
	})

	t.Run("Filter Options Come From Active Listings", func(t *testing.T) {
		db := newTestDB(t)
		app := newTestApp(t, true)
		seedStorefront(t, db)

		resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/", nil), -1)
		require.NoError(t, err)

		body := bodyString(t, resp)
		assert.Contains(t, body, `value="Arapiraca"`)
		assert.Contains(t, body, `value="cobertura"`)
		// sold-only values never feed the filters
		assert.NotContains(t, body, `value="apartamento"`)
	})

	t.Run("Unconfigured Store Falls Back To Showcase", func(t *testing.T) {
		app := newTestApp(t, true) // no database behind it

		resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/", nil), -1)
		require.NoError(t, err)
		require.Equal(t, http.StatusOK, resp.StatusCode)

		body := bodyString(t, resp)
		assert.Contains(t, body, "Cobertura Duplex com Vista Mar")
		assert.Contains(t, body, "Apartamento Vista Atlântica")
	})

	t.Run("Empty Store Falls Back To Showcase", func(t *testing.T) {
		newTestDB(t)
		app := newTestApp(t, true)

		resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/", nil), -1)
		require.NoError(t, err)

		body := bodyString(t, resp)
		assert.Contains(t, body, "Cobertura Duplex com Vista Mar")
	})
}

func TestPropertyDetails(t *testing.T) {
	t.Run("Renders Public Listing", func(t *testing.T) {
		db := newTestDB(t)
		app := newTestApp(t, true)

		seeded := model.Property{
			Title:        "Cobertura Vista Mar",
			PropertyType: "cobertura",
			Description:  "Cobertura duplex com vista permanente para o mar de Ponta Verde.",
			Price:        2850000,
			City:         "Maceió",
			Neighborhood: "Ponta Verde",
			Status:       model.PropertyStatusReserved,
			Images:       datatypes.NewJSONSlice([]string{"https://example.com/cobertura.jpg"}),
		}
		require.NoError(t, db.Create(&seeded).Error)

		resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/imoveis/"+seeded.ID, nil), -1)
		require.NoError(t, err)
		require.Equal(t, http.StatusOK, resp.StatusCode)

		body := bodyString(t, resp)
		assert.Contains(t, body, "Cobertura Vista Mar")
		assert.Contains(t, body, "Reservado")
		assert.Contains(t, body, "wa.me")
	})

	t.Run("Unknown Identifier Is Not Found", func(t *testing.T) {
		newTestDB(t)
		app := newTestApp(t, true)

		resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/imoveis/nao-existe", nil), -1)
		require.NoError(t, err)
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	})

	t.Run("Non Public Status Is Not Found", func(t *testing.T) {
		db := newTestDB(t)
		app := newTestApp(t, true)

		hidden := model.Property{
			Title:        "Rascunho Interno",
			PropertyType: "casa",
			Description:  "Registro interno que nunca deve aparecer na vitrine pública.",
			Price:        100000,
			City:         "Maceió",
			Neighborhood: "Centro",
			Status:       model.PropertyStatus("draft"),
		}
		require.NoError(t, db.Create(&hidden).Error)

		resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/imoveis/"+hidden.ID, nil), -1)
		require.NoError(t, err)
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	})

	t.Run("Showcase Serves Details When Unconfigured", func(t *testing.T) {
		app := newTestApp(t, true)

		resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/imoveis/1", nil), -1)
		require.NoError(t, err)
		require.Equal(t, http.StatusOK, resp.StatusCode)

		body := bodyString(t, resp)
		assert.Contains(t, body, "Cobertura Duplex com Vista Mar")
	})
}

func TestFormatPrice(t *testing.T) {
	assert.Equal(t, "R$ 2.850.000", formatPrice(2850000))
	assert.Equal(t, "R$ 950", formatPrice(950))
	assert.Equal(t, "R$ 1.000", formatPrice(1000))
	assert.Equal(t, "R$ 0", formatPrice(0))
}

func TestStatusLabel(t *testing.T) {
	assert.Equal(t, "Disponível", statusLabel(model.PropertyStatusActive))
	assert.Equal(t, "Reservado", statusLabel(model.PropertyStatusReserved))
	assert.Equal(t, "Vendido", statusLabel(model.PropertyStatusSold))
}
