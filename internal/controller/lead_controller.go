package controller

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"vitrine_backend/internal/model"
	"vitrine_backend/pkg/database"
	"vitrine_backend/pkg/utils/validation"
)

type LeadInput struct {
	Name               string `json:"name" validate:"required,min=2"`
	Phone              string `json:"phone" validate:"required,min=8"`
	Email              string `json:"email" validate:"omitempty,email"`
	Source             string `json:"source" validate:"required,min=2"`
	InterestedProperty string `json:"interested_property"`
	Notes              string `json:"notes"`
	Status             string `json:"status" validate:"required,oneof=new contacted qualified closed"`
}

func parseLeadInput(c *fiber.Ctx) (*LeadInput, error) {
	input := new(LeadInput)
	if err := c.BodyParser(input); err != nil {
		return nil, err
	}

	input.Name = strings.TrimSpace(input.Name)
	input.Phone = strings.TrimSpace(input.Phone)
	input.Email = strings.TrimSpace(input.Email)
	input.Source = strings.TrimSpace(input.Source)
	input.InterestedProperty = strings.TrimSpace(input.InterestedProperty)
	input.Notes = strings.TrimSpace(input.Notes)

	return input, nil
}

// optionalText stores blank optional fields as NULL, never as empty strings.
func optionalText(value string) *string {
	if value == "" {
		return nil
	}
	return &value
}

func applyLeadInput(lead *model.Lead, input *LeadInput) {
	lead.Name = input.Name
	lead.Phone = input.Phone
	lead.Email = optionalText(input.Email)
	lead.Source = input.Source
	lead.InterestedProperty = optionalText(input.InterestedProperty)
	lead.Notes = optionalText(input.Notes)
	lead.Status = model.LeadStatus(input.Status)
}

// ListLeads returns every lead, newest first.
func ListLeads(c *fiber.Ctx) error {
	var leads []model.Lead
	if err := database.GetDB().Order("created_at desc").Find(&leads).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.JSON(leads)
}

func CreateLead(c *fiber.Ctx) error {
	input, err := parseLeadInput(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid input"})
	}
	if err := validation.Struct(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	var lead model.Lead
	applyLeadInput(&lead, input)

	if err := database.GetDB().Create(&lead).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "Lead created successfully",
		"lead":    lead,
	})
}

// UpdateLead replaces every field of an existing lead.
func UpdateLead(c *fiber.Ctx) error {
	id := c.Params("id")

	var lead model.Lead
	if err := database.GetDB().Where("id = ?", id).First(&lead).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Lead not found",
		})
	}

	input, err := parseLeadInput(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid input"})
	}
	if err := validation.Struct(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	applyLeadInput(&lead, input)

	if err := database.GetDB().Save(&lead).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return c.JSON(fiber.Map{
		"message": "Lead updated successfully",
		"lead":    lead,
	})
}

func DeleteLead(c *fiber.Ctx) error {
	id := c.Params("id")

	var lead model.Lead
	if err := database.GetDB().Where("id = ?", id).First(&lead).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": "Lead not found",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	if err := database.GetDB().Delete(&lead).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return c.SendStatus(fiber.StatusNoContent)
}
