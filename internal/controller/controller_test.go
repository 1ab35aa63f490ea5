package controller

import (
	"bytes"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/template/html/v2"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"vitrine_backend/internal/middleware"
	"vitrine_backend/internal/model"
	"vitrine_backend/pkg/database"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	// one connection so the in-memory database survives the whole test
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(&model.User{}, &model.Property{}, &model.Lead{}))

	database.DB = db
	t.Cleanup(func() { database.DB = nil })

	return db
}

func newTestApp(t *testing.T, configured bool) *fiber.App {
	t.Helper()

	engine := html.New("../../web/views", ".html")
	app := fiber.New(fiber.Config{Views: engine})

	app.Get("/", Home)
	app.Get("/imoveis/:id", PropertyDetails)

	api := app.Group("/api")
	if !configured {
		api.Use(ServiceNotConfigured)
	}

	auth := api.Group("/auth")
	auth.Post("/login", Login)
	auth.Get("/session", GetSession)
	auth.Post("/logout", Logout)

	protected := api.Group("/", middleware.AuthMiddleware())

	properties := protected.Group("/properties")
	properties.Get("/", ListProperties)
	properties.Post("/", CreateProperty)
	properties.Put("/:id", UpdateProperty)
	properties.Delete("/:id", DeleteProperty)

	leads := protected.Group("/leads")
	leads.Get("/", ListLeads)
	leads.Post("/", CreateLead)
	leads.Put("/:id", UpdateLead)
	leads.Delete("/:id", DeleteLead)

	return app
}

func seedAdmin(t *testing.T, db *gorm.DB, email, password string) {
	t.Helper()

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	require.NoError(t, db.Create(&model.User{Email: email, Password: string(hashed)}).Error)
}

func jsonRequest(method, target string, payload interface{}) *http.Request {
	body, _ := json.Marshal(payload)
	req := httptest.NewRequest(method, target, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	return req
}

func doRequest(t *testing.T, app *fiber.App, req *http.Request) (*http.Response, map[string]interface{}) {
	t.Helper()

	resp, err := app.Test(req, -1)
	require.NoError(t, err)

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var parsed map[string]interface{}
	if len(raw) > 0 {
		json.Unmarshal(raw, &parsed)
	}
	return resp, parsed
}

func bodyString(t *testing.T, resp *http.Response) string {
	t.Helper()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return string(raw)
}

func multipartForm(fields map[string]string, existingImages []string) (*bytes.Buffer, string) {
	body := new(bytes.Buffer)
	writer := multipart.NewWriter(body)
	for key, value := range fields {
		writer.WriteField(key, value)
	}
	for _, url := range existingImages {
		writer.WriteField("existing_images", url)
	}
	writer.Close()
	return body, writer.FormDataContentType()
}

func validPropertyFields() map[string]string {
	return map[string]string{
		"title":         "Cobertura com Vista Mar",
		"property_type": "cobertura",
		"description":   "Cobertura duplex com vista permanente para o mar e acabamento de alto padrão.",
		"price":         "2850000",
		"city":          "Maceió",
		"neighborhood":  "Ponta Verde",
		"beds":          "4",
		"baths":         "5",
		"size":          "320",
		"parking":       "3",
		"status":        "active",
	}
}
