package utils

import (
	"context"
	"fmt"
	"log"
	"mime/multipart"
	"os"
	"strings"
	"time"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
	"github.com/google/uuid"
)

var cld *cloudinary.Cloudinary

// InitCloudinary initializes the Cloudinary connection used for
// proof-of-delivery photos
func InitCloudinary() error {
	var err error

	cloudName := os.Getenv("CLOUDINARY_CLOUD_NAME")
	apiKey := os.Getenv("CLOUDINARY_API_KEY")
	apiSecret := os.Getenv("CLOUDINARY_API_SECRET")

	if cloudName == "" || apiKey == "" || apiSecret == "" {
		return fmt.Errorf("the Cloudinary environment variables are not set")
	}

	cld, err = cloudinary.NewFromParams(cloudName, apiKey, apiSecret)
	if err != nil {
		return fmt.Errorf("error initializing Cloudinary: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	_, err = cld.Admin.Ping(ctx)
	if err != nil {
		return fmt.Errorf("error checking the Cloudinary connection: %v", err)
	}

	log.Println("Cloudinary initialized, connection verified")
	return nil
}

func boolPointer(b bool) *bool {
	return &b
}

func isValidImageType(filename string) bool {
	validExtensions := []string{".jpg", ".jpeg", ".png", ".webp"}
	lowerFilename := strings.ToLower(filename)

	for _, ext := range validExtensions {
		if strings.HasSuffix(lowerFilename, ext) {
			return true
		}
	}
	return false
}

// UploadDeliveryPhoto uploads a proof-of-delivery photo and returns its
// secure URL
func UploadDeliveryPhoto(deliveryID string, file *multipart.FileHeader) (string, error) {
	if !isValidImageType(file.Filename) {
		return "", fmt.Errorf("unsupported image format, use JPG, PNG or WEBP")
	}

	// 10MB max
	if file.Size > 10*1024*1024 {
		return "", fmt.Errorf("image too large, maximum 10MB allowed")
	}

	if cld == nil {
		if err := InitCloudinary(); err != nil {
			LogError(err, "Cloudinary initialization failed during upload")
			return "", err
		}
	}

	src, err := file.Open()
	if err != nil {
		return "", fmt.Errorf("error opening the file: %v", err)
	}
	defer src.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	publicID := fmt.Sprintf("delivery_%s_%s", deliveryID, uuid.NewString())

	uploadParams := uploader.UploadParams{
		Folder:         "delivery_photos",
		PublicID:       publicID,
		UseFilename:    boolPointer(false),
		UniqueFilename: boolPointer(true),
		Overwrite:      boolPointer(false),
		ResourceType:   "image",
	}

	uploadResult, err := cld.Upload.Upload(ctx, src, uploadParams)
	if err != nil {
		return "", fmt.Errorf("error uploading to Cloudinary: %v", err)
	}

	if uploadResult.SecureURL == "" {
		return "", fmt.Errorf("empty secure URL in the Cloudinary response")
	}

	return uploadResult.SecureURL, nil
}
