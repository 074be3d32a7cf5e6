package handler

import (
	"context"
	"fmt"

	"laundry_os/constants"
	"laundry_os/database"
	"laundry_os/helper"
	"laundry_os/model"
	"laundry_os/utils"

	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// UploadStainPhotos attaches photos of stains or damage noted at drop-off.
// Multipart form: one or more files under "photos", optional "note".
func UploadStainPhotos(c *fiber.Ctx) error {
	orderId, _ := c.Locals("inputId").(int)

	var order model.Order
	if err := database.DB.First(&order, orderId).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.ORDER_NOT_FOUND, err)
	}

	form, err := c.MultipartForm()
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Multipart form required", err)
	}
	files := form.File["photos"]
	if len(files) == 0 {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "No photos supplied", nil)
	}
	note := c.FormValue("note")

	cld := helper.InitCloudinary()

	var saved []model.StainPhoto
	for _, file := range files {
		f, err := file.Open()
		if err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, "Could not read upload", err)
		}

		uploadResult, err := cld.Upload.Upload(context.Background(), f, uploader.UploadParams{
			Folder:   "laundry_os/stains",
			PublicID: fmt.Sprintf("%s-%s", order.OrderNumber, uuid.NewString()[:8]),
		})
		f.Close()
		if err != nil {
			return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Upload failed", err)
		}

		photo := model.StainPhoto{
			OrderId: order.ID,
			Url:     uploadResult.SecureURL,
			Note:    note,
		}
		if err := database.DB.Create(&photo).Error; err != nil {
			// Roll back the remote asset so the store and Cloudinary agree.
			cld.Upload.Destroy(context.Background(), uploader.DestroyParams{PublicID: uploadResult.PublicID})
			return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_CREATE, err)
		}
		saved = append(saved, photo)
	}

	return utils.SuccessResponse(c, fiber.StatusCreated, saved)
}
