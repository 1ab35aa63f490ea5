package controller

import (
	"fmt"
	"log"
	"mime/multipart"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"vitrine_backend/internal/model"
	"vitrine_backend/pkg/database"
	imageutil "vitrine_backend/pkg/utils/image"
	"vitrine_backend/pkg/utils/storage"
	"vitrine_backend/pkg/utils/validation"
)

type PropertyInput struct {
	Title        string  `json:"title" validate:"required,min=3"`
	PropertyType string  `json:"property_type" validate:"required,min=2"`
	Description  string  `json:"description" validate:"required,min=20"`
	Price        float64 `json:"price" validate:"required,gt=0"`
	City         string  `json:"city" validate:"required,min=2"`
	Neighborhood string  `json:"neighborhood" validate:"required,min=2"`
	Beds         int     `json:"beds" validate:"gte=0"`
	Baths        int     `json:"baths" validate:"gte=0"`
	Size         float64 `json:"size" validate:"required,gt=0"`
	Parking      int     `json:"parking" validate:"gte=0"`
	Status       string  `json:"status" validate:"required,oneof=active reserved sold"`
}

// parsePropertyInput reads the multipart fields of the listing form.
func parsePropertyInput(c *fiber.Ctx) (*PropertyInput, error) {
	input := &PropertyInput{
		Title:        strings.TrimSpace(c.FormValue("title")),
		PropertyType: strings.TrimSpace(c.FormValue("property_type")),
		Description:  strings.TrimSpace(c.FormValue("description")),
		City:         strings.TrimSpace(c.FormValue("city")),
		Neighborhood: strings.TrimSpace(c.FormValue("neighborhood")),
		Status:       strings.TrimSpace(c.FormValue("status")),
	}

	var err error
	if input.Price, err = parseFloatField(c, "price"); err != nil {
		return nil, err
	}
	if input.Size, err = parseFloatField(c, "size"); err != nil {
		return nil, err
	}
	if input.Beds, err = parseIntField(c, "beds"); err != nil {
		return nil, err
	}
	if input.Baths, err = parseIntField(c, "baths"); err != nil {
		return nil, err
	}
	if input.Parking, err = parseIntField(c, "parking"); err != nil {
		return nil, err
	}

	return input, nil
}

func parseFloatField(c *fiber.Ctx, name string) (float64, error) {
	raw := strings.TrimSpace(c.FormValue(name))
	if raw == "" {
		return 0, nil
	}
	value, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, fmt.Errorf("%s must be a number", name)
	}
	return value, nil
}

func parseIntField(c *fiber.Ctx, name string) (int, error) {
	raw := strings.TrimSpace(c.FormValue(name))
	if raw == "" {
		return 0, nil
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%s must be an integer", name)
	}
	return value, nil
}

// listingImages collects the retained image URLs and the newly staged files
// from the submitted form.
func listingImages(c *fiber.Ctx) ([]string, []*multipart.FileHeader) {
	var retained []string
	var staged []*multipart.FileHeader

	form, err := c.MultipartForm()
	if err != nil {
		return retained, staged
	}

	for _, url := range form.Value["existing_images"] {
		if trimmed := strings.TrimSpace(url); trimmed != "" {
			retained = append(retained, trimmed)
		}
	}
	staged = form.File["images"]

	return retained, staged
}

// uploadStagedImages pushes the staged files to object storage one at a
// time, in form order. The first failure aborts the rest; files already
// uploaded stay where they are and are reaped later by the storage GC.
func uploadStagedImages(c *fiber.Ctx, files []*multipart.FileHeader) ([]string, error) {
	if len(files) == 0 {
		return nil, nil
	}

	client := storage.GetClient()
	if client == nil {
		return nil, fmt.Errorf("object storage is not configured")
	}

	urls := make([]string, 0, len(files))
	for _, file := range files {
		if err := validation.ValidateImage(file); err != nil {
			return nil, fmt.Errorf("could not upload image %s: %v", file.Filename, err)
		}

		buf, contentType, err := imageutil.ProcessImage(file)
		if err != nil {
			return nil, fmt.Errorf("could not upload image %s: %v", file.Filename, err)
		}

		key := storage.NewObjectKey(file.Filename)
		if err := client.Upload(c.Context(), key, buf, contentType); err != nil {
			return nil, fmt.Errorf("could not upload image %s: %v", file.Filename, err)
		}

		urls = append(urls, client.PublicURL(key))
	}

	return urls, nil
}

func applyPropertyInput(property *model.Property, input *PropertyInput, images []string) {
	specs := datatypes.NewJSONType(model.PropertySpecs{
		Beds:    input.Beds,
		Baths:   input.Baths,
		Size:    input.Size,
		Parking: input.Parking,
	})

	property.Title = input.Title
	property.PropertyType = input.PropertyType
	property.Description = input.Description
	property.Price = input.Price
	property.City = input.City
	property.Neighborhood = input.Neighborhood
	property.Status = model.PropertyStatus(input.Status)
	property.Images = datatypes.NewJSONSlice(images)
	property.Specs = &specs
}

// ListProperties returns every listing, newest first.
func ListProperties(c *fiber.Ctx) error {
	var properties []model.Property
	if err := database.GetDB().Order("created_at desc").Find(&properties).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.JSON(properties)
}

// CreateProperty validates the listing form, uploads staged images and
// inserts a new record.
func CreateProperty(c *fiber.Ctx) error {
	input, err := parsePropertyInput(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	if err := validation.Struct(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	retained, staged := listingImages(c)
	if len(retained)+len(staged) == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Select at least one image for the listing",
		})
	}

	uploaded, err := uploadStagedImages(c, staged)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	var property model.Property
	applyPropertyInput(&property, input, append(retained, uploaded...))

	if err := database.GetDB().Create(&property).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message":  "Property created successfully",
		"property": property,
	})
}

// UpdateProperty replaces every field of an existing listing.
func UpdateProperty(c *fiber.Ctx) error {
	id := c.Params("id")

	var property model.Property
	if err := database.GetDB().Where("id = ?", id).First(&property).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Property not found",
		})
	}

	input, err := parsePropertyInput(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	if err := validation.Struct(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	retained, staged := listingImages(c)
	if len(retained)+len(staged) == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Select at least one image for the listing",
		})
	}

	uploaded, err := uploadStagedImages(c, staged)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	applyPropertyInput(&property, input, append(retained, uploaded...))

	if err := database.GetDB().Save(&property).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return c.JSON(fiber.Map{
		"message":  "Property updated successfully",
		"property": property,
	})
}

// storageKeysFromURLs keeps only the image URLs served from our bucket.
// External URLs are skipped, not errored.
func storageKeysFromURLs(urls []string, bucket string) []string {
	var keys []string
	for _, url := range urls {
		if key, ok := storage.KeyFromPublicURL(url, bucket); ok {
			keys = append(keys, key)
		}
	}
	return keys
}

// DeleteProperty removes the listing's stored images best-effort, then the
// record itself. A storage failure never blocks the record deletion.
func DeleteProperty(c *fiber.Ctx) error {
	id := c.Params("id")

	var property model.Property
	if err := database.GetDB().Where("id = ?", id).First(&property).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": "Property not found",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	if client := storage.GetClient(); client != nil {
		keys := storageKeysFromURLs(property.Images, client.Bucket())
		if len(keys) > 0 {
			if err := client.Remove(c.Context(), keys); err != nil {
				log.Printf("Could not remove stored images for property %s: %v", property.ID, err)
			}
		}
	}

	if err := database.GetDB().Delete(&property).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return c.SendStatus(fiber.StatusNoContent)
}
